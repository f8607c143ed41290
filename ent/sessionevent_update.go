// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingoflow/ent/predicate"
	"github.com/abhisek/lingoflow/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *SessionEventUpdate) SetDifficultyLevel(v string) *SessionEventUpdate {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDifficultyLevel(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionEventUpdate) SetScore(v int) *SessionEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableScore(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionEventUpdate) AddScore(v int) *SessionEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *SessionEventUpdate) SetMaxScore(v int) *SessionEventUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMaxScore(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *SessionEventUpdate) AddMaxScore(v int) *SessionEventUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetMistakes sets the "mistakes" field.
func (_u *SessionEventUpdate) SetMistakes(v int) *SessionEventUpdate {
	_u.mutation.ResetMistakes()
	_u.mutation.SetMistakes(v)
	return _u
}

// SetNillableMistakes sets the "mistakes" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMistakes(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetMistakes(*v)
	}
	return _u
}

// AddMistakes adds value to the "mistakes" field.
func (_u *SessionEventUpdate) AddMistakes(v int) *SessionEventUpdate {
	_u.mutation.AddMistakes(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *SessionEventUpdate) SetHintsUsed(v int) *SessionEventUpdate {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableHintsUsed(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *SessionEventUpdate) AddHintsUsed(v int) *SessionEventUpdate {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetRevealedAnswers sets the "revealed_answers" field.
func (_u *SessionEventUpdate) SetRevealedAnswers(v int) *SessionEventUpdate {
	_u.mutation.ResetRevealedAnswers()
	_u.mutation.SetRevealedAnswers(v)
	return _u
}

// SetNillableRevealedAnswers sets the "revealed_answers" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableRevealedAnswers(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetRevealedAnswers(*v)
	}
	return _u
}

// AddRevealedAnswers adds value to the "revealed_answers" field.
func (_u *SessionEventUpdate) AddRevealedAnswers(v int) *SessionEventUpdate {
	_u.mutation.AddRevealedAnswers(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *SessionEventUpdate) SetAccuracy(v float64) *SessionEventUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAccuracy(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *SessionEventUpdate) AddAccuracy(v float64) *SessionEventUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetXpGained sets the "xp_gained" field.
func (_u *SessionEventUpdate) SetXpGained(v int) *SessionEventUpdate {
	_u.mutation.ResetXpGained()
	_u.mutation.SetXpGained(v)
	return _u
}

// SetNillableXpGained sets the "xp_gained" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableXpGained(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetXpGained(*v)
	}
	return _u
}

// AddXpGained adds value to the "xp_gained" field.
func (_u *SessionEventUpdate) AddXpGained(v int) *SessionEventUpdate {
	_u.mutation.AddXpGained(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(sessionevent.FieldDifficultyLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(sessionevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(sessionevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mistakes(); ok {
		_spec.SetField(sessionevent.FieldMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMistakes(); ok {
		_spec.AddField(sessionevent.FieldMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(sessionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(sessionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevealedAnswers(); ok {
		_spec.SetField(sessionevent.FieldRevealedAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevealedAnswers(); ok {
		_spec.AddField(sessionevent.FieldRevealedAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.XpGained(); ok {
		_spec.SetField(sessionevent.FieldXpGained, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpGained(); ok {
		_spec.AddField(sessionevent.FieldXpGained, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_u *SessionEventUpdateOne) SetDifficultyLevel(v string) *SessionEventUpdateOne {
	_u.mutation.SetDifficultyLevel(v)
	return _u
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDifficultyLevel(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDifficultyLevel(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *SessionEventUpdateOne) SetScore(v int) *SessionEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableScore(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *SessionEventUpdateOne) AddScore(v int) *SessionEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *SessionEventUpdateOne) SetMaxScore(v int) *SessionEventUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMaxScore(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *SessionEventUpdateOne) AddMaxScore(v int) *SessionEventUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetMistakes sets the "mistakes" field.
func (_u *SessionEventUpdateOne) SetMistakes(v int) *SessionEventUpdateOne {
	_u.mutation.ResetMistakes()
	_u.mutation.SetMistakes(v)
	return _u
}

// SetNillableMistakes sets the "mistakes" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMistakes(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMistakes(*v)
	}
	return _u
}

// AddMistakes adds value to the "mistakes" field.
func (_u *SessionEventUpdateOne) AddMistakes(v int) *SessionEventUpdateOne {
	_u.mutation.AddMistakes(v)
	return _u
}

// SetHintsUsed sets the "hints_used" field.
func (_u *SessionEventUpdateOne) SetHintsUsed(v int) *SessionEventUpdateOne {
	_u.mutation.ResetHintsUsed()
	_u.mutation.SetHintsUsed(v)
	return _u
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableHintsUsed(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetHintsUsed(*v)
	}
	return _u
}

// AddHintsUsed adds value to the "hints_used" field.
func (_u *SessionEventUpdateOne) AddHintsUsed(v int) *SessionEventUpdateOne {
	_u.mutation.AddHintsUsed(v)
	return _u
}

// SetRevealedAnswers sets the "revealed_answers" field.
func (_u *SessionEventUpdateOne) SetRevealedAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.ResetRevealedAnswers()
	_u.mutation.SetRevealedAnswers(v)
	return _u
}

// SetNillableRevealedAnswers sets the "revealed_answers" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableRevealedAnswers(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetRevealedAnswers(*v)
	}
	return _u
}

// AddRevealedAnswers adds value to the "revealed_answers" field.
func (_u *SessionEventUpdateOne) AddRevealedAnswers(v int) *SessionEventUpdateOne {
	_u.mutation.AddRevealedAnswers(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *SessionEventUpdateOne) SetAccuracy(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAccuracy(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *SessionEventUpdateOne) AddAccuracy(v float64) *SessionEventUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetXpGained sets the "xp_gained" field.
func (_u *SessionEventUpdateOne) SetXpGained(v int) *SessionEventUpdateOne {
	_u.mutation.ResetXpGained()
	_u.mutation.SetXpGained(v)
	return _u
}

// SetNillableXpGained sets the "xp_gained" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableXpGained(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetXpGained(*v)
	}
	return _u
}

// AddXpGained adds value to the "xp_gained" field.
func (_u *SessionEventUpdateOne) AddXpGained(v int) *SessionEventUpdateOne {
	_u.mutation.AddXpGained(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
	if value, ok := _u.mutation.DifficultyLevel(); ok {
		_spec.SetField(sessionevent.FieldDifficultyLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(sessionevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(sessionevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(sessionevent.FieldMaxScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mistakes(); ok {
		_spec.SetField(sessionevent.FieldMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMistakes(); ok {
		_spec.AddField(sessionevent.FieldMistakes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HintsUsed(); ok {
		_spec.SetField(sessionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintsUsed(); ok {
		_spec.AddField(sessionevent.FieldHintsUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RevealedAnswers(); ok {
		_spec.SetField(sessionevent.FieldRevealedAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevealedAnswers(); ok {
		_spec.AddField(sessionevent.FieldRevealedAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.XpGained(); ok {
		_spec.SetField(sessionevent.FieldXpGained, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpGained(); ok {
		_spec.AddField(sessionevent.FieldXpGained, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
