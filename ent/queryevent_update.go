// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyankac/axon/ent/predicate"
	"github.com/priyankac/axon/ent/queryevent"
)

// QueryEventUpdate is the builder for updating QueryEvent entities.
type QueryEventUpdate struct {
	config
	hooks    []Hook
	mutation *QueryEventMutation
}

// Where appends a list predicates to the QueryEventUpdate builder.
func (_u *QueryEventUpdate) Where(ps ...predicate.QueryEvent) *QueryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *QueryEventUpdate) SetProvider(v string) *QueryEventUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *QueryEventUpdate) SetNillableProvider(v *string) *QueryEventUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *QueryEventUpdate) SetPurpose(v string) *QueryEventUpdate {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *QueryEventUpdate) SetNillablePurpose(v *string) *QueryEventUpdate {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QueryEventUpdate) SetQuestion(v string) *QueryEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QueryEventUpdate) SetNillableQuestion(v *string) *QueryEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *QueryEventUpdate) SetLatencyMs(v int64) *QueryEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *QueryEventUpdate) SetNillableLatencyMs(v *int64) *QueryEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *QueryEventUpdate) AddLatencyMs(v int64) *QueryEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *QueryEventUpdate) SetSuccess(v bool) *QueryEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *QueryEventUpdate) SetNillableSuccess(v *bool) *QueryEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetHallucination sets the "hallucination" field.
func (_u *QueryEventUpdate) SetHallucination(v bool) *QueryEventUpdate {
	_u.mutation.SetHallucination(v)
	return _u
}

// SetNillableHallucination sets the "hallucination" field if the given value is not nil.
func (_u *QueryEventUpdate) SetNillableHallucination(v *bool) *QueryEventUpdate {
	if v != nil {
		_u.SetHallucination(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QueryEventUpdate) SetConfidence(v float64) *QueryEventUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QueryEventUpdate) SetNillableConfidence(v *float64) *QueryEventUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QueryEventUpdate) AddConfidence(v float64) *QueryEventUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAnswerBody sets the "answer_body" field.
func (_u *QueryEventUpdate) SetAnswerBody(v string) *QueryEventUpdate {
	_u.mutation.SetAnswerBody(v)
	return _u
}

// SetNillableAnswerBody sets the "answer_body" field if the given value is not nil.
func (_u *QueryEventUpdate) SetNillableAnswerBody(v *string) *QueryEventUpdate {
	if v != nil {
		_u.SetAnswerBody(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueryEventUpdate) SetErrorMessage(v string) *QueryEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueryEventUpdate) SetNillableErrorMessage(v *string) *QueryEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the QueryEventMutation object of the builder.
func (_u *QueryEventUpdate) Mutation() *QueryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(queryevent.Table, queryevent.Columns, sqlgraph.NewFieldSpec(queryevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(queryevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(queryevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(queryevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(queryevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(queryevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(queryevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Hallucination(); ok {
		_spec.SetField(queryevent.FieldHallucination, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(queryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(queryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnswerBody(); ok {
		_spec.SetField(queryevent.FieldAnswerBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queryevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueryEventUpdateOne is the builder for updating a single QueryEvent entity.
type QueryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueryEventMutation
}

// SetProvider sets the "provider" field.
func (_u *QueryEventUpdateOne) SetProvider(v string) *QueryEventUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *QueryEventUpdateOne) SetNillableProvider(v *string) *QueryEventUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPurpose sets the "purpose" field.
func (_u *QueryEventUpdateOne) SetPurpose(v string) *QueryEventUpdateOne {
	_u.mutation.SetPurpose(v)
	return _u
}

// SetNillablePurpose sets the "purpose" field if the given value is not nil.
func (_u *QueryEventUpdateOne) SetNillablePurpose(v *string) *QueryEventUpdateOne {
	if v != nil {
		_u.SetPurpose(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QueryEventUpdateOne) SetQuestion(v string) *QueryEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QueryEventUpdateOne) SetNillableQuestion(v *string) *QueryEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *QueryEventUpdateOne) SetLatencyMs(v int64) *QueryEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *QueryEventUpdateOne) SetNillableLatencyMs(v *int64) *QueryEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *QueryEventUpdateOne) AddLatencyMs(v int64) *QueryEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetSuccess sets the "success" field.
func (_u *QueryEventUpdateOne) SetSuccess(v bool) *QueryEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *QueryEventUpdateOne) SetNillableSuccess(v *bool) *QueryEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetHallucination sets the "hallucination" field.
func (_u *QueryEventUpdateOne) SetHallucination(v bool) *QueryEventUpdateOne {
	_u.mutation.SetHallucination(v)
	return _u
}

// SetNillableHallucination sets the "hallucination" field if the given value is not nil.
func (_u *QueryEventUpdateOne) SetNillableHallucination(v *bool) *QueryEventUpdateOne {
	if v != nil {
		_u.SetHallucination(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QueryEventUpdateOne) SetConfidence(v float64) *QueryEventUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QueryEventUpdateOne) SetNillableConfidence(v *float64) *QueryEventUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QueryEventUpdateOne) AddConfidence(v float64) *QueryEventUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetAnswerBody sets the "answer_body" field.
func (_u *QueryEventUpdateOne) SetAnswerBody(v string) *QueryEventUpdateOne {
	_u.mutation.SetAnswerBody(v)
	return _u
}

// SetNillableAnswerBody sets the "answer_body" field if the given value is not nil.
func (_u *QueryEventUpdateOne) SetNillableAnswerBody(v *string) *QueryEventUpdateOne {
	if v != nil {
		_u.SetAnswerBody(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QueryEventUpdateOne) SetErrorMessage(v string) *QueryEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QueryEventUpdateOne) SetNillableErrorMessage(v *string) *QueryEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the QueryEventMutation object of the builder.
func (_u *QueryEventUpdateOne) Mutation() *QueryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueryEventUpdate builder.
func (_u *QueryEventUpdateOne) Where(ps ...predicate.QueryEvent) *QueryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueryEventUpdateOne) Select(field string, fields ...string) *QueryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueryEvent entity.
func (_u *QueryEventUpdateOne) Save(ctx context.Context) (*QueryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryEventUpdateOne) SaveX(ctx context.Context) *QueryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueryEventUpdateOne) sqlSave(ctx context.Context) (_node *QueryEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(queryevent.Table, queryevent.Columns, sqlgraph.NewFieldSpec(queryevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queryevent.FieldID)
		for _, f := range fields {
			if !queryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queryevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(queryevent.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Purpose(); ok {
		_spec.SetField(queryevent.FieldPurpose, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(queryevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(queryevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(queryevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(queryevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Hallucination(); ok {
		_spec.SetField(queryevent.FieldHallucination, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(queryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(queryevent.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AnswerBody(); ok {
		_spec.SetField(queryevent.FieldAnswerBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(queryevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &QueryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
