// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingoflow/ent/activesession"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// ActiveSessionUpdate is the builder for updating ActiveSession entities.
type ActiveSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ActiveSessionMutation
}

// Where appends a list predicates to the ActiveSessionUpdate builder.
func (_u *ActiveSessionUpdate) Where(ps ...predicate.ActiveSession) *ActiveSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ActiveSessionUpdate) SetCompleted(v bool) *ActiveSessionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableCompleted(v *bool) *ActiveSessionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ActiveSessionUpdate) SetCompletedAt(v time.Time) *ActiveSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableCompletedAt(v *time.Time) *ActiveSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ActiveSessionUpdate) ClearCompletedAt() *ActiveSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ActiveSessionMutation object of the builder.
func (_u *ActiveSessionUpdate) Mutation() *ActiveSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActiveSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActiveSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActiveSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActiveSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActiveSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(activesession.Table, activesession.Columns, sqlgraph.NewFieldSpec(activesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(activesession.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(activesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(activesession.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActiveSessionUpdateOne is the builder for updating a single ActiveSession entity.
type ActiveSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActiveSessionMutation
}

// SetCompleted sets the "completed" field.
func (_u *ActiveSessionUpdateOne) SetCompleted(v bool) *ActiveSessionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableCompleted(v *bool) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ActiveSessionUpdateOne) SetCompletedAt(v time.Time) *ActiveSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ActiveSessionUpdateOne) ClearCompletedAt() *ActiveSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the ActiveSessionMutation object of the builder.
func (_u *ActiveSessionUpdateOne) Mutation() *ActiveSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActiveSessionUpdate builder.
func (_u *ActiveSessionUpdateOne) Where(ps ...predicate.ActiveSession) *ActiveSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActiveSessionUpdateOne) Select(field string, fields ...string) *ActiveSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActiveSession entity.
func (_u *ActiveSessionUpdateOne) Save(ctx context.Context) (*ActiveSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActiveSessionUpdateOne) SaveX(ctx context.Context) *ActiveSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActiveSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActiveSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ActiveSessionUpdateOne) sqlSave(ctx context.Context) (_node *ActiveSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(activesession.Table, activesession.Columns, sqlgraph.NewFieldSpec(activesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActiveSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activesession.FieldID)
		for _, f := range fields {
			if !activesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activesession.FieldID {
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
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(activesession.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(activesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(activesession.FieldCompletedAt, field.TypeTime)
	}
	_node = &ActiveSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
