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
	"github.com/abhisek/lingoflow/ent/categoryprogress"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// CategoryProgressUpdate is the builder for updating CategoryProgress entities.
type CategoryProgressUpdate struct {
	config
	hooks    []Hook
	mutation *CategoryProgressMutation
}

// Where appends a list predicates to the CategoryProgressUpdate builder.
func (_u *CategoryProgressUpdate) Where(ps ...predicate.CategoryProgress) *CategoryProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *CategoryProgressUpdate) SetMastery(v float64) *CategoryProgressUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *CategoryProgressUpdate) SetNillableMastery(v *float64) *CategoryProgressUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *CategoryProgressUpdate) AddMastery(v float64) *CategoryProgressUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *CategoryProgressUpdate) SetAttempts(v int) *CategoryProgressUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *CategoryProgressUpdate) SetNillableAttempts(v *int) *CategoryProgressUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *CategoryProgressUpdate) AddAttempts(v int) *CategoryProgressUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTotalAnswers sets the "total_answers" field.
func (_u *CategoryProgressUpdate) SetTotalAnswers(v int) *CategoryProgressUpdate {
	_u.mutation.ResetTotalAnswers()
	_u.mutation.SetTotalAnswers(v)
	return _u
}

// SetNillableTotalAnswers sets the "total_answers" field if the given value is not nil.
func (_u *CategoryProgressUpdate) SetNillableTotalAnswers(v *int) *CategoryProgressUpdate {
	if v != nil {
		_u.SetTotalAnswers(*v)
	}
	return _u
}

// AddTotalAnswers adds value to the "total_answers" field.
func (_u *CategoryProgressUpdate) AddTotalAnswers(v int) *CategoryProgressUpdate {
	_u.mutation.AddTotalAnswers(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *CategoryProgressUpdate) SetCorrectAnswers(v int) *CategoryProgressUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *CategoryProgressUpdate) SetNillableCorrectAnswers(v *int) *CategoryProgressUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *CategoryProgressUpdate) AddCorrectAnswers(v int) *CategoryProgressUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetLevelUnlocked sets the "level_unlocked" field.
func (_u *CategoryProgressUpdate) SetLevelUnlocked(v string) *CategoryProgressUpdate {
	_u.mutation.SetLevelUnlocked(v)
	return _u
}

// SetNillableLevelUnlocked sets the "level_unlocked" field if the given value is not nil.
func (_u *CategoryProgressUpdate) SetNillableLevelUnlocked(v *string) *CategoryProgressUpdate {
	if v != nil {
		_u.SetLevelUnlocked(*v)
	}
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *CategoryProgressUpdate) SetLastPracticedAt(v time.Time) *CategoryProgressUpdate {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *CategoryProgressUpdate) SetNillableLastPracticedAt(v *time.Time) *CategoryProgressUpdate {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *CategoryProgressUpdate) ClearLastPracticedAt() *CategoryProgressUpdate {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// Mutation returns the CategoryProgressMutation object of the builder.
func (_u *CategoryProgressUpdate) Mutation() *CategoryProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CategoryProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CategoryProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CategoryProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(categoryprogress.Table, categoryprogress.Columns, sqlgraph.NewFieldSpec(categoryprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(categoryprogress.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(categoryprogress.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(categoryprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(categoryprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAnswers(); ok {
		_spec.SetField(categoryprogress.FieldTotalAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAnswers(); ok {
		_spec.AddField(categoryprogress.FieldTotalAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(categoryprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(categoryprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelUnlocked(); ok {
		_spec.SetField(categoryprogress.FieldLevelUnlocked, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(categoryprogress.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(categoryprogress.FieldLastPracticedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categoryprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CategoryProgressUpdateOne is the builder for updating a single CategoryProgress entity.
type CategoryProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CategoryProgressMutation
}

// SetMastery sets the "mastery" field.
func (_u *CategoryProgressUpdateOne) SetMastery(v float64) *CategoryProgressUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *CategoryProgressUpdateOne) SetNillableMastery(v *float64) *CategoryProgressUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *CategoryProgressUpdateOne) AddMastery(v float64) *CategoryProgressUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *CategoryProgressUpdateOne) SetAttempts(v int) *CategoryProgressUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *CategoryProgressUpdateOne) SetNillableAttempts(v *int) *CategoryProgressUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *CategoryProgressUpdateOne) AddAttempts(v int) *CategoryProgressUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetTotalAnswers sets the "total_answers" field.
func (_u *CategoryProgressUpdateOne) SetTotalAnswers(v int) *CategoryProgressUpdateOne {
	_u.mutation.ResetTotalAnswers()
	_u.mutation.SetTotalAnswers(v)
	return _u
}

// SetNillableTotalAnswers sets the "total_answers" field if the given value is not nil.
func (_u *CategoryProgressUpdateOne) SetNillableTotalAnswers(v *int) *CategoryProgressUpdateOne {
	if v != nil {
		_u.SetTotalAnswers(*v)
	}
	return _u
}

// AddTotalAnswers adds value to the "total_answers" field.
func (_u *CategoryProgressUpdateOne) AddTotalAnswers(v int) *CategoryProgressUpdateOne {
	_u.mutation.AddTotalAnswers(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *CategoryProgressUpdateOne) SetCorrectAnswers(v int) *CategoryProgressUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *CategoryProgressUpdateOne) SetNillableCorrectAnswers(v *int) *CategoryProgressUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *CategoryProgressUpdateOne) AddCorrectAnswers(v int) *CategoryProgressUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetLevelUnlocked sets the "level_unlocked" field.
func (_u *CategoryProgressUpdateOne) SetLevelUnlocked(v string) *CategoryProgressUpdateOne {
	_u.mutation.SetLevelUnlocked(v)
	return _u
}

// SetNillableLevelUnlocked sets the "level_unlocked" field if the given value is not nil.
func (_u *CategoryProgressUpdateOne) SetNillableLevelUnlocked(v *string) *CategoryProgressUpdateOne {
	if v != nil {
		_u.SetLevelUnlocked(*v)
	}
	return _u
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_u *CategoryProgressUpdateOne) SetLastPracticedAt(v time.Time) *CategoryProgressUpdateOne {
	_u.mutation.SetLastPracticedAt(v)
	return _u
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_u *CategoryProgressUpdateOne) SetNillableLastPracticedAt(v *time.Time) *CategoryProgressUpdateOne {
	if v != nil {
		_u.SetLastPracticedAt(*v)
	}
	return _u
}

// ClearLastPracticedAt clears the value of the "last_practiced_at" field.
func (_u *CategoryProgressUpdateOne) ClearLastPracticedAt() *CategoryProgressUpdateOne {
	_u.mutation.ClearLastPracticedAt()
	return _u
}

// Mutation returns the CategoryProgressMutation object of the builder.
func (_u *CategoryProgressUpdateOne) Mutation() *CategoryProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the CategoryProgressUpdate builder.
func (_u *CategoryProgressUpdateOne) Where(ps ...predicate.CategoryProgress) *CategoryProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CategoryProgressUpdateOne) Select(field string, fields ...string) *CategoryProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CategoryProgress entity.
func (_u *CategoryProgressUpdateOne) Save(ctx context.Context) (*CategoryProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CategoryProgressUpdateOne) SaveX(ctx context.Context) *CategoryProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CategoryProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CategoryProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CategoryProgressUpdateOne) sqlSave(ctx context.Context) (_node *CategoryProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(categoryprogress.Table, categoryprogress.Columns, sqlgraph.NewFieldSpec(categoryprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CategoryProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, categoryprogress.FieldID)
		for _, f := range fields {
			if !categoryprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != categoryprogress.FieldID {
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
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(categoryprogress.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(categoryprogress.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(categoryprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(categoryprogress.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalAnswers(); ok {
		_spec.SetField(categoryprogress.FieldTotalAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAnswers(); ok {
		_spec.AddField(categoryprogress.FieldTotalAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(categoryprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(categoryprogress.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelUnlocked(); ok {
		_spec.SetField(categoryprogress.FieldLevelUnlocked, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastPracticedAt(); ok {
		_spec.SetField(categoryprogress.FieldLastPracticedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPracticedAtCleared() {
		_spec.ClearField(categoryprogress.FieldLastPracticedAt, field.TypeTime)
	}
	_node = &CategoryProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{categoryprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
