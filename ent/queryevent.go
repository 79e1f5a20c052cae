// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/priyankac/axon/ent/queryevent"
)

// QueryEvent is the model entity for the QueryEvent schema.
type QueryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Backing service: gateway, openai, anthropic, gemini
	Provider string `json:"provider,omitempty"`
	// Consumer-provided label: ask, mutation, claim-check
	Purpose string `json:"purpose,omitempty"`
	// The question as sent upstream
	Question string `json:"question,omitempty"`
	// Wall-clock time for the call
	LatencyMs int64 `json:"latency_ms,omitempty"`
	// Whether the call produced an answer
	Success bool `json:"success,omitempty"`
	// Whether the service flagged its own answer
	Hallucination bool `json:"hallucination,omitempty"`
	// Self-reported confidence of the answer
	Confidence float64 `json:"confidence,omitempty"`
	// Answer text, if any
	AnswerBody string `json:"answer_body,omitempty"`
	// Error message if failed
	ErrorMessage string `json:"error_message,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QueryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case queryevent.FieldSuccess, queryevent.FieldHallucination:
			values[i] = new(sql.NullBool)
		case queryevent.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case queryevent.FieldID, queryevent.FieldSequence, queryevent.FieldLatencyMs:
			values[i] = new(sql.NullInt64)
		case queryevent.FieldProvider, queryevent.FieldPurpose, queryevent.FieldQuestion, queryevent.FieldAnswerBody, queryevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case queryevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QueryEvent fields.
func (_m *QueryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case queryevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case queryevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case queryevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case queryevent.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case queryevent.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = value.String
			}
		case queryevent.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case queryevent.FieldLatencyMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field latency_ms", values[i])
			} else if value.Valid {
				_m.LatencyMs = value.Int64
			}
		case queryevent.FieldSuccess:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field success", values[i])
			} else if value.Valid {
				_m.Success = value.Bool
			}
		case queryevent.FieldHallucination:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field hallucination", values[i])
			} else if value.Valid {
				_m.Hallucination = value.Bool
			}
		case queryevent.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case queryevent.FieldAnswerBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field answer_body", values[i])
			} else if value.Valid {
				_m.AnswerBody = value.String
			}
		case queryevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QueryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *QueryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QueryEvent.
// Note that you need to call QueryEvent.Unwrap() before calling this method if this QueryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QueryEvent) Update() *QueryEventUpdateOne {
	return NewQueryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QueryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QueryEvent) Unwrap() *QueryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QueryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QueryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("QueryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	builder.WriteString("purpose=")
	builder.WriteString(_m.Purpose)
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("latency_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.LatencyMs))
	builder.WriteString(", ")
	builder.WriteString("success=")
	builder.WriteString(fmt.Sprintf("%v", _m.Success))
	builder.WriteString(", ")
	builder.WriteString("hallucination=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hallucination))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("answer_body=")
	builder.WriteString(_m.AnswerBody)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteByte(')')
	return builder.String()
}

// QueryEvents is a parsable slice of QueryEvent.
type QueryEvents []*QueryEvent
