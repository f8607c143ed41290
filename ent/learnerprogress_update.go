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
	"github.com/abhisek/lingoflow/ent/learnerprogress"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// LearnerProgressUpdate is the builder for updating LearnerProgress entities.
type LearnerProgressUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerProgressMutation
}

// Where appends a list predicates to the LearnerProgressUpdate builder.
func (_u *LearnerProgressUpdate) Where(ps ...predicate.LearnerProgress) *LearnerProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalXp sets the "total_xp" field.
func (_u *LearnerProgressUpdate) SetTotalXp(v int) *LearnerProgressUpdate {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *LearnerProgressUpdate) SetNillableTotalXp(v *int) *LearnerProgressUpdate {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *LearnerProgressUpdate) AddTotalXp(v int) *LearnerProgressUpdate {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *LearnerProgressUpdate) SetStreakDays(v int) *LearnerProgressUpdate {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *LearnerProgressUpdate) SetNillableStreakDays(v *int) *LearnerProgressUpdate {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *LearnerProgressUpdate) AddStreakDays(v int) *LearnerProgressUpdate {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetHearts sets the "hearts" field.
func (_u *LearnerProgressUpdate) SetHearts(v int) *LearnerProgressUpdate {
	_u.mutation.ResetHearts()
	_u.mutation.SetHearts(v)
	return _u
}

// SetNillableHearts sets the "hearts" field if the given value is not nil.
func (_u *LearnerProgressUpdate) SetNillableHearts(v *int) *LearnerProgressUpdate {
	if v != nil {
		_u.SetHearts(*v)
	}
	return _u
}

// AddHearts adds value to the "hearts" field.
func (_u *LearnerProgressUpdate) AddHearts(v int) *LearnerProgressUpdate {
	_u.mutation.AddHearts(v)
	return _u
}

// SetLearnerLevel sets the "learner_level" field.
func (_u *LearnerProgressUpdate) SetLearnerLevel(v int) *LearnerProgressUpdate {
	_u.mutation.ResetLearnerLevel()
	_u.mutation.SetLearnerLevel(v)
	return _u
}

// SetNillableLearnerLevel sets the "learner_level" field if the given value is not nil.
func (_u *LearnerProgressUpdate) SetNillableLearnerLevel(v *int) *LearnerProgressUpdate {
	if v != nil {
		_u.SetLearnerLevel(*v)
	}
	return _u
}

// AddLearnerLevel adds value to the "learner_level" field.
func (_u *LearnerProgressUpdate) AddLearnerLevel(v int) *LearnerProgressUpdate {
	_u.mutation.AddLearnerLevel(v)
	return _u
}

// SetLastCompleted sets the "last_completed" field.
func (_u *LearnerProgressUpdate) SetLastCompleted(v time.Time) *LearnerProgressUpdate {
	_u.mutation.SetLastCompleted(v)
	return _u
}

// SetNillableLastCompleted sets the "last_completed" field if the given value is not nil.
func (_u *LearnerProgressUpdate) SetNillableLastCompleted(v *time.Time) *LearnerProgressUpdate {
	if v != nil {
		_u.SetLastCompleted(*v)
	}
	return _u
}

// ClearLastCompleted clears the value of the "last_completed" field.
func (_u *LearnerProgressUpdate) ClearLastCompleted() *LearnerProgressUpdate {
	_u.mutation.ClearLastCompleted()
	return _u
}

// Mutation returns the LearnerProgressMutation object of the builder.
func (_u *LearnerProgressUpdate) Mutation() *LearnerProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearnerProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerprogress.Table, learnerprogress.Columns, sqlgraph.NewFieldSpec(learnerprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(learnerprogress.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(learnerprogress.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(learnerprogress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(learnerprogress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hearts(); ok {
		_spec.SetField(learnerprogress.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHearts(); ok {
		_spec.AddField(learnerprogress.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerLevel(); ok {
		_spec.SetField(learnerprogress.FieldLearnerLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerLevel(); ok {
		_spec.AddField(learnerprogress.FieldLearnerLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCompleted(); ok {
		_spec.SetField(learnerprogress.FieldLastCompleted, field.TypeTime, value)
	}
	if _u.mutation.LastCompletedCleared() {
		_spec.ClearField(learnerprogress.FieldLastCompleted, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerProgressUpdateOne is the builder for updating a single LearnerProgress entity.
type LearnerProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerProgressMutation
}

// SetTotalXp sets the "total_xp" field.
func (_u *LearnerProgressUpdateOne) SetTotalXp(v int) *LearnerProgressUpdateOne {
	_u.mutation.ResetTotalXp()
	_u.mutation.SetTotalXp(v)
	return _u
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_u *LearnerProgressUpdateOne) SetNillableTotalXp(v *int) *LearnerProgressUpdateOne {
	if v != nil {
		_u.SetTotalXp(*v)
	}
	return _u
}

// AddTotalXp adds value to the "total_xp" field.
func (_u *LearnerProgressUpdateOne) AddTotalXp(v int) *LearnerProgressUpdateOne {
	_u.mutation.AddTotalXp(v)
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *LearnerProgressUpdateOne) SetStreakDays(v int) *LearnerProgressUpdateOne {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *LearnerProgressUpdateOne) SetNillableStreakDays(v *int) *LearnerProgressUpdateOne {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *LearnerProgressUpdateOne) AddStreakDays(v int) *LearnerProgressUpdateOne {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetHearts sets the "hearts" field.
func (_u *LearnerProgressUpdateOne) SetHearts(v int) *LearnerProgressUpdateOne {
	_u.mutation.ResetHearts()
	_u.mutation.SetHearts(v)
	return _u
}

// SetNillableHearts sets the "hearts" field if the given value is not nil.
func (_u *LearnerProgressUpdateOne) SetNillableHearts(v *int) *LearnerProgressUpdateOne {
	if v != nil {
		_u.SetHearts(*v)
	}
	return _u
}

// AddHearts adds value to the "hearts" field.
func (_u *LearnerProgressUpdateOne) AddHearts(v int) *LearnerProgressUpdateOne {
	_u.mutation.AddHearts(v)
	return _u
}

// SetLearnerLevel sets the "learner_level" field.
func (_u *LearnerProgressUpdateOne) SetLearnerLevel(v int) *LearnerProgressUpdateOne {
	_u.mutation.ResetLearnerLevel()
	_u.mutation.SetLearnerLevel(v)
	return _u
}

// SetNillableLearnerLevel sets the "learner_level" field if the given value is not nil.
func (_u *LearnerProgressUpdateOne) SetNillableLearnerLevel(v *int) *LearnerProgressUpdateOne {
	if v != nil {
		_u.SetLearnerLevel(*v)
	}
	return _u
}

// AddLearnerLevel adds value to the "learner_level" field.
func (_u *LearnerProgressUpdateOne) AddLearnerLevel(v int) *LearnerProgressUpdateOne {
	_u.mutation.AddLearnerLevel(v)
	return _u
}

// SetLastCompleted sets the "last_completed" field.
func (_u *LearnerProgressUpdateOne) SetLastCompleted(v time.Time) *LearnerProgressUpdateOne {
	_u.mutation.SetLastCompleted(v)
	return _u
}

// SetNillableLastCompleted sets the "last_completed" field if the given value is not nil.
func (_u *LearnerProgressUpdateOne) SetNillableLastCompleted(v *time.Time) *LearnerProgressUpdateOne {
	if v != nil {
		_u.SetLastCompleted(*v)
	}
	return _u
}

// ClearLastCompleted clears the value of the "last_completed" field.
func (_u *LearnerProgressUpdateOne) ClearLastCompleted() *LearnerProgressUpdateOne {
	_u.mutation.ClearLastCompleted()
	return _u
}

// Mutation returns the LearnerProgressMutation object of the builder.
func (_u *LearnerProgressUpdateOne) Mutation() *LearnerProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerProgressUpdate builder.
func (_u *LearnerProgressUpdateOne) Where(ps ...predicate.LearnerProgress) *LearnerProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerProgressUpdateOne) Select(field string, fields ...string) *LearnerProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerProgress entity.
func (_u *LearnerProgressUpdateOne) Save(ctx context.Context) (*LearnerProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProgressUpdateOne) SaveX(ctx context.Context) *LearnerProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearnerProgressUpdateOne) sqlSave(ctx context.Context) (_node *LearnerProgress, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerprogress.Table, learnerprogress.Columns, sqlgraph.NewFieldSpec(learnerprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerprogress.FieldID)
		for _, f := range fields {
			if !learnerprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerprogress.FieldID {
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
	if value, ok := _u.mutation.TotalXp(); ok {
		_spec.SetField(learnerprogress.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalXp(); ok {
		_spec.AddField(learnerprogress.FieldTotalXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(learnerprogress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(learnerprogress.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hearts(); ok {
		_spec.SetField(learnerprogress.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHearts(); ok {
		_spec.AddField(learnerprogress.FieldHearts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearnerLevel(); ok {
		_spec.SetField(learnerprogress.FieldLearnerLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLearnerLevel(); ok {
		_spec.AddField(learnerprogress.FieldLearnerLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastCompleted(); ok {
		_spec.SetField(learnerprogress.FieldLastCompleted, field.TypeTime, value)
	}
	if _u.mutation.LastCompletedCleared() {
		_spec.ClearField(learnerprogress.FieldLastCompleted, field.TypeTime)
	}
	_node = &LearnerProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
