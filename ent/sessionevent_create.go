// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingoflow/ent/sessionevent"
)

// SessionEventCreate is the builder for creating a SessionEvent entity.
type SessionEventCreate struct {
	config
	mutation *SessionEventMutation
	hooks    []Hook
}

// SetTimestamp sets the "timestamp" field.
func (_c *SessionEventCreate) SetTimestamp(v time.Time) *SessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableTimestamp(v *time.Time) *SessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *SessionEventCreate) SetLearnerID(v string) *SessionEventCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *SessionEventCreate) SetLanguage(v string) *SessionEventCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *SessionEventCreate) SetCategory(v string) *SessionEventCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionEventCreate) SetSessionID(v string) *SessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDifficultyLevel sets the "difficulty_level" field.
func (_c *SessionEventCreate) SetDifficultyLevel(v string) *SessionEventCreate {
	_c.mutation.SetDifficultyLevel(v)
	return _c
}

// SetNillableDifficultyLevel sets the "difficulty_level" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableDifficultyLevel(v *string) *SessionEventCreate {
	if v != nil {
		_c.SetDifficultyLevel(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *SessionEventCreate) SetScore(v int) *SessionEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableScore(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetMaxScore sets the "max_score" field.
func (_c *SessionEventCreate) SetMaxScore(v int) *SessionEventCreate {
	_c.mutation.SetMaxScore(v)
	return _c
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableMaxScore(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetMaxScore(*v)
	}
	return _c
}

// SetMistakes sets the "mistakes" field.
func (_c *SessionEventCreate) SetMistakes(v int) *SessionEventCreate {
	_c.mutation.SetMistakes(v)
	return _c
}

// SetNillableMistakes sets the "mistakes" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableMistakes(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetMistakes(*v)
	}
	return _c
}

// SetHintsUsed sets the "hints_used" field.
func (_c *SessionEventCreate) SetHintsUsed(v int) *SessionEventCreate {
	_c.mutation.SetHintsUsed(v)
	return _c
}

// SetNillableHintsUsed sets the "hints_used" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableHintsUsed(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetHintsUsed(*v)
	}
	return _c
}

// SetRevealedAnswers sets the "revealed_answers" field.
func (_c *SessionEventCreate) SetRevealedAnswers(v int) *SessionEventCreate {
	_c.mutation.SetRevealedAnswers(v)
	return _c
}

// SetNillableRevealedAnswers sets the "revealed_answers" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableRevealedAnswers(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetRevealedAnswers(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *SessionEventCreate) SetAccuracy(v float64) *SessionEventCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableAccuracy(v *float64) *SessionEventCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetXpGained sets the "xp_gained" field.
func (_c *SessionEventCreate) SetXpGained(v int) *SessionEventCreate {
	_c.mutation.SetXpGained(v)
	return _c
}

// SetNillableXpGained sets the "xp_gained" field if the given value is not nil.
func (_c *SessionEventCreate) SetNillableXpGained(v *int) *SessionEventCreate {
	if v != nil {
		_c.SetXpGained(*v)
	}
	return _c
}

// Mutation returns the SessionEventMutation object of the builder.
func (_c *SessionEventCreate) Mutation() *SessionEventMutation {
	return _c.mutation
}

// Save creates the SessionEvent in the database.
func (_c *SessionEventCreate) Save(ctx context.Context) (*SessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionEventCreate) SaveX(ctx context.Context) *SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := sessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		v := sessionevent.DefaultDifficultyLevel
		_c.mutation.SetDifficultyLevel(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := sessionevent.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		v := sessionevent.DefaultMaxScore
		_c.mutation.SetMaxScore(v)
	}
	if _, ok := _c.mutation.Mistakes(); !ok {
		v := sessionevent.DefaultMistakes
		_c.mutation.SetMistakes(v)
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		v := sessionevent.DefaultHintsUsed
		_c.mutation.SetHintsUsed(v)
	}
	if _, ok := _c.mutation.RevealedAnswers(); !ok {
		v := sessionevent.DefaultRevealedAnswers
		_c.mutation.SetRevealedAnswers(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := sessionevent.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
	if _, ok := _c.mutation.XpGained(); !ok {
		v := sessionevent.DefaultXpGained
		_c.mutation.SetXpGained(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionEventCreate) check() error {
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "SessionEvent.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := sessionevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "SessionEvent.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := sessionevent.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "SessionEvent.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := sessionevent.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DifficultyLevel(); !ok {
		return &ValidationError{Name: "difficulty_level", err: errors.New(`ent: missing required field "SessionEvent.difficulty_level"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "SessionEvent.score"`)}
	}
	if _, ok := _c.mutation.MaxScore(); !ok {
		return &ValidationError{Name: "max_score", err: errors.New(`ent: missing required field "SessionEvent.max_score"`)}
	}
	if _, ok := _c.mutation.Mistakes(); !ok {
		return &ValidationError{Name: "mistakes", err: errors.New(`ent: missing required field "SessionEvent.mistakes"`)}
	}
	if _, ok := _c.mutation.HintsUsed(); !ok {
		return &ValidationError{Name: "hints_used", err: errors.New(`ent: missing required field "SessionEvent.hints_used"`)}
	}
	if _, ok := _c.mutation.RevealedAnswers(); !ok {
		return &ValidationError{Name: "revealed_answers", err: errors.New(`ent: missing required field "SessionEvent.revealed_answers"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "SessionEvent.accuracy"`)}
	}
	if _, ok := _c.mutation.XpGained(); !ok {
		return &ValidationError{Name: "xp_gained", err: errors.New(`ent: missing required field "SessionEvent.xp_gained"`)}
	}
	return nil
}

func (_c *SessionEventCreate) sqlSave(ctx context.Context) (*SessionEvent, error) {
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

func (_c *SessionEventCreate) createSpec() (*SessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionevent.Table, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(sessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(sessionevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(sessionevent.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(sessionevent.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.DifficultyLevel(); ok {
		_spec.SetField(sessionevent.FieldDifficultyLevel, field.TypeString, value)
		_node.DifficultyLevel = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(sessionevent.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.MaxScore(); ok {
		_spec.SetField(sessionevent.FieldMaxScore, field.TypeInt, value)
		_node.MaxScore = value
	}
	if value, ok := _c.mutation.Mistakes(); ok {
		_spec.SetField(sessionevent.FieldMistakes, field.TypeInt, value)
		_node.Mistakes = value
	}
	if value, ok := _c.mutation.HintsUsed(); ok {
		_spec.SetField(sessionevent.FieldHintsUsed, field.TypeInt, value)
		_node.HintsUsed = value
	}
	if value, ok := _c.mutation.RevealedAnswers(); ok {
		_spec.SetField(sessionevent.FieldRevealedAnswers, field.TypeInt, value)
		_node.RevealedAnswers = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(sessionevent.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.XpGained(); ok {
		_spec.SetField(sessionevent.FieldXpGained, field.TypeInt, value)
		_node.XpGained = value
	}
	return _node, _spec
}

// SessionEventCreateBulk is the builder for creating many SessionEvent entities in bulk.
type SessionEventCreateBulk struct {
	config
	err      error
	builders []*SessionEventCreate
}

// Save creates the SessionEvent entities in the database.
func (_c *SessionEventCreateBulk) Save(ctx context.Context) ([]*SessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionEventMutation)
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
func (_c *SessionEventCreateBulk) SaveX(ctx context.Context) []*SessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
