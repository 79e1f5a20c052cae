// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/priyankac/axon/ent/queryevent"
)

// QueryEventCreate is the builder for creating a QueryEvent entity.
type QueryEventCreate struct {
	config
	mutation *QueryEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *QueryEventCreate) SetSequence(v int64) *QueryEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QueryEventCreate) SetTimestamp(v time.Time) *QueryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *QueryEventCreate) SetNillableTimestamp(v *time.Time) *QueryEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProvider sets the "provider" field.
func (_c *QueryEventCreate) SetProvider(v string) *QueryEventCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetPurpose sets the "purpose" field.
func (_c *QueryEventCreate) SetPurpose(v string) *QueryEventCreate {
	_c.mutation.SetPurpose(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QueryEventCreate) SetQuestion(v string) *QueryEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *QueryEventCreate) SetLatencyMs(v int64) *QueryEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *QueryEventCreate) SetNillableLatencyMs(v *int64) *QueryEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetSuccess sets the "success" field.
func (_c *QueryEventCreate) SetSuccess(v bool) *QueryEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetHallucination sets the "hallucination" field.
func (_c *QueryEventCreate) SetHallucination(v bool) *QueryEventCreate {
	_c.mutation.SetHallucination(v)
	return _c
}

// SetNillableHallucination sets the "hallucination" field if the given value is not nil.
func (_c *QueryEventCreate) SetNillableHallucination(v *bool) *QueryEventCreate {
	if v != nil {
		_c.SetHallucination(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *QueryEventCreate) SetConfidence(v float64) *QueryEventCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *QueryEventCreate) SetNillableConfidence(v *float64) *QueryEventCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetAnswerBody sets the "answer_body" field.
func (_c *QueryEventCreate) SetAnswerBody(v string) *QueryEventCreate {
	_c.mutation.SetAnswerBody(v)
	return _c
}

// SetNillableAnswerBody sets the "answer_body" field if the given value is not nil.
func (_c *QueryEventCreate) SetNillableAnswerBody(v *string) *QueryEventCreate {
	if v != nil {
		_c.SetAnswerBody(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *QueryEventCreate) SetErrorMessage(v string) *QueryEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *QueryEventCreate) SetNillableErrorMessage(v *string) *QueryEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the QueryEventMutation object of the builder.
func (_c *QueryEventCreate) Mutation() *QueryEventMutation {
	return _c.mutation
}

// Save creates the QueryEvent in the database.
func (_c *QueryEventCreate) Save(ctx context.Context) (*QueryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueryEventCreate) SaveX(ctx context.Context) *QueryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueryEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := queryevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := queryevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.Hallucination(); !ok {
		v := queryevent.DefaultHallucination
		_c.mutation.SetHallucination(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := queryevent.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.AnswerBody(); !ok {
		v := queryevent.DefaultAnswerBody
		_c.mutation.SetAnswerBody(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := queryevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueryEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "QueryEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QueryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "QueryEvent.provider"`)}
	}
	if _, ok := _c.mutation.Purpose(); !ok {
		return &ValidationError{Name: "purpose", err: errors.New(`ent: missing required field "QueryEvent.purpose"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QueryEvent.question"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "QueryEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "QueryEvent.success"`)}
	}
	if _, ok := _c.mutation.Hallucination(); !ok {
		return &ValidationError{Name: "hallucination", err: errors.New(`ent: missing required field "QueryEvent.hallucination"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "QueryEvent.confidence"`)}
	}
	if _, ok := _c.mutation.AnswerBody(); !ok {
		return &ValidationError{Name: "answer_body", err: errors.New(`ent: missing required field "QueryEvent.answer_body"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "QueryEvent.error_message"`)}
	}
	return nil
}

func (_c *QueryEventCreate) sqlSave(ctx context.Context) (*QueryEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueryEventCreate) createSpec() (*QueryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &QueryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queryevent.Table, sqlgraph.NewFieldSpec(queryevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(queryevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(queryevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(queryevent.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Purpose(); ok {
		_spec.SetField(queryevent.FieldPurpose, field.TypeString, value)
		_node.Purpose = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(queryevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(queryevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(queryevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.Hallucination(); ok {
		_spec.SetField(queryevent.FieldHallucination, field.TypeBool, value)
		_node.Hallucination = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(queryevent.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.AnswerBody(); ok {
		_spec.SetField(queryevent.FieldAnswerBody, field.TypeString, value)
		_node.AnswerBody = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(queryevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// QueryEventCreateBulk is the builder for creating many QueryEvent entities in bulk.
type QueryEventCreateBulk struct {
	config
	err      error
	builders []*QueryEventCreate
}

// Save creates the QueryEvent entities in the database.
func (_c *QueryEventCreateBulk) Save(ctx context.Context) ([]*QueryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueryEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QueryEventCreateBulk) SaveX(ctx context.Context) []*QueryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
