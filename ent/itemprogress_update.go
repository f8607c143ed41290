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
	"github.com/abhisek/lingoflow/ent/itemprogress"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// ItemProgressUpdate is the builder for updating ItemProgress entities.
type ItemProgressUpdate struct {
	config
	hooks    []Hook
	mutation *ItemProgressMutation
}

// Where appends a list predicates to the ItemProgressUpdate builder.
func (_u *ItemProgressUpdate) Where(ps ...predicate.ItemProgress) *ItemProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObjective sets the "objective" field.
func (_u *ItemProgressUpdate) SetObjective(v string) *ItemProgressUpdate {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableObjective(v *string) *ItemProgressUpdate {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetEase sets the "ease" field.
func (_u *ItemProgressUpdate) SetEase(v float64) *ItemProgressUpdate {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableEase(v *float64) *ItemProgressUpdate {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *ItemProgressUpdate) AddEase(v float64) *ItemProgressUpdate {
	_u.mutation.AddEase(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ItemProgressUpdate) SetStreak(v int) *ItemProgressUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableStreak(v *int) *ItemProgressUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ItemProgressUpdate) AddStreak(v int) *ItemProgressUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ItemProgressUpdate) SetAttempts(v int) *ItemProgressUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableAttempts(v *int) *ItemProgressUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ItemProgressUpdate) AddAttempts(v int) *ItemProgressUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ItemProgressUpdate) SetCorrect(v int) *ItemProgressUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableCorrect(v *int) *ItemProgressUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ItemProgressUpdate) AddCorrect(v int) *ItemProgressUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ItemProgressUpdate) SetErrorCount(v int) *ItemProgressUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableErrorCount(v *int) *ItemProgressUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ItemProgressUpdate) AddErrorCount(v int) *ItemProgressUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetLastErrorType sets the "last_error_type" field.
func (_u *ItemProgressUpdate) SetLastErrorType(v string) *ItemProgressUpdate {
	_u.mutation.SetLastErrorType(v)
	return _u
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableLastErrorType(v *string) *ItemProgressUpdate {
	if v != nil {
		_u.SetLastErrorType(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ItemProgressUpdate) SetLastSeen(v time.Time) *ItemProgressUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableLastSeen(v *time.Time) *ItemProgressUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *ItemProgressUpdate) ClearLastSeen() *ItemProgressUpdate {
	_u.mutation.ClearLastSeen()
	return _u
}

// SetNextDue sets the "next_due" field.
func (_u *ItemProgressUpdate) SetNextDue(v time.Time) *ItemProgressUpdate {
	_u.mutation.SetNextDue(v)
	return _u
}

// SetNillableNextDue sets the "next_due" field if the given value is not nil.
func (_u *ItemProgressUpdate) SetNillableNextDue(v *time.Time) *ItemProgressUpdate {
	if v != nil {
		_u.SetNextDue(*v)
	}
	return _u
}

// ClearNextDue clears the value of the "next_due" field.
func (_u *ItemProgressUpdate) ClearNextDue() *ItemProgressUpdate {
	_u.mutation.ClearNextDue()
	return _u
}

// Mutation returns the ItemProgressMutation object of the builder.
func (_u *ItemProgressUpdate) Mutation() *ItemProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ItemProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(itemprogress.Table, itemprogress.Columns, sqlgraph.NewFieldSpec(itemprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(itemprogress.FieldObjective, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(itemprogress.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(itemprogress.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(itemprogress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(itemprogress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(itemprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(itemprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(itemprogress.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(itemprogress.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(itemprogress.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(itemprogress.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastErrorType(); ok {
		_spec.SetField(itemprogress.FieldLastErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(itemprogress.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(itemprogress.FieldLastSeen, field.TypeTime)
	}
	if value, ok := _u.mutation.NextDue(); ok {
		_spec.SetField(itemprogress.FieldNextDue, field.TypeTime, value)
	}
	if _u.mutation.NextDueCleared() {
		_spec.ClearField(itemprogress.FieldNextDue, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemProgressUpdateOne is the builder for updating a single ItemProgress entity.
type ItemProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemProgressMutation
}

// SetObjective sets the "objective" field.
func (_u *ItemProgressUpdateOne) SetObjective(v string) *ItemProgressUpdateOne {
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableObjective(v *string) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// SetEase sets the "ease" field.
func (_u *ItemProgressUpdateOne) SetEase(v float64) *ItemProgressUpdateOne {
	_u.mutation.ResetEase()
	_u.mutation.SetEase(v)
	return _u
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableEase(v *float64) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetEase(*v)
	}
	return _u
}

// AddEase adds value to the "ease" field.
func (_u *ItemProgressUpdateOne) AddEase(v float64) *ItemProgressUpdateOne {
	_u.mutation.AddEase(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *ItemProgressUpdateOne) SetStreak(v int) *ItemProgressUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableStreak(v *int) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *ItemProgressUpdateOne) AddStreak(v int) *ItemProgressUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ItemProgressUpdateOne) SetAttempts(v int) *ItemProgressUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableAttempts(v *int) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ItemProgressUpdateOne) AddAttempts(v int) *ItemProgressUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ItemProgressUpdateOne) SetCorrect(v int) *ItemProgressUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableCorrect(v *int) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ItemProgressUpdateOne) AddCorrect(v int) *ItemProgressUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *ItemProgressUpdateOne) SetErrorCount(v int) *ItemProgressUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableErrorCount(v *int) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *ItemProgressUpdateOne) AddErrorCount(v int) *ItemProgressUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetLastErrorType sets the "last_error_type" field.
func (_u *ItemProgressUpdateOne) SetLastErrorType(v string) *ItemProgressUpdateOne {
	_u.mutation.SetLastErrorType(v)
	return _u
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableLastErrorType(v *string) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetLastErrorType(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ItemProgressUpdateOne) SetLastSeen(v time.Time) *ItemProgressUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableLastSeen(v *time.Time) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// ClearLastSeen clears the value of the "last_seen" field.
func (_u *ItemProgressUpdateOne) ClearLastSeen() *ItemProgressUpdateOne {
	_u.mutation.ClearLastSeen()
	return _u
}

// SetNextDue sets the "next_due" field.
func (_u *ItemProgressUpdateOne) SetNextDue(v time.Time) *ItemProgressUpdateOne {
	_u.mutation.SetNextDue(v)
	return _u
}

// SetNillableNextDue sets the "next_due" field if the given value is not nil.
func (_u *ItemProgressUpdateOne) SetNillableNextDue(v *time.Time) *ItemProgressUpdateOne {
	if v != nil {
		_u.SetNextDue(*v)
	}
	return _u
}

// ClearNextDue clears the value of the "next_due" field.
func (_u *ItemProgressUpdateOne) ClearNextDue() *ItemProgressUpdateOne {
	_u.mutation.ClearNextDue()
	return _u
}

// Mutation returns the ItemProgressMutation object of the builder.
func (_u *ItemProgressUpdateOne) Mutation() *ItemProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemProgressUpdate builder.
func (_u *ItemProgressUpdateOne) Where(ps ...predicate.ItemProgress) *ItemProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemProgressUpdateOne) Select(field string, fields ...string) *ItemProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ItemProgress entity.
func (_u *ItemProgressUpdateOne) Save(ctx context.Context) (*ItemProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemProgressUpdateOne) SaveX(ctx context.Context) *ItemProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ItemProgressUpdateOne) sqlSave(ctx context.Context) (_node *ItemProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(itemprogress.Table, itemprogress.Columns, sqlgraph.NewFieldSpec(itemprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemprogress.FieldID)
		for _, f := range fields {
			if !itemprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemprogress.FieldID {
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
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(itemprogress.FieldObjective, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ease(); ok {
		_spec.SetField(itemprogress.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEase(); ok {
		_spec.AddField(itemprogress.FieldEase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(itemprogress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(itemprogress.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(itemprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(itemprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(itemprogress.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(itemprogress.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(itemprogress.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(itemprogress.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastErrorType(); ok {
		_spec.SetField(itemprogress.FieldLastErrorType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(itemprogress.FieldLastSeen, field.TypeTime, value)
	}
	if _u.mutation.LastSeenCleared() {
		_spec.ClearField(itemprogress.FieldLastSeen, field.TypeTime)
	}
	if value, ok := _u.mutation.NextDue(); ok {
		_spec.SetField(itemprogress.FieldNextDue, field.TypeTime, value)
	}
	if _u.mutation.NextDueCleared() {
		_spec.ClearField(itemprogress.FieldNextDue, field.TypeTime)
	}
	_node = &ItemProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
