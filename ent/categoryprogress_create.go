// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingoflow/ent/categoryprogress"
)

// CategoryProgressCreate is the builder for creating a CategoryProgress entity.
type CategoryProgressCreate struct {
	config
	mutation *CategoryProgressMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *CategoryProgressCreate) SetLearnerID(v string) *CategoryProgressCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *CategoryProgressCreate) SetLanguage(v string) *CategoryProgressCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *CategoryProgressCreate) SetCategory(v string) *CategoryProgressCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *CategoryProgressCreate) SetMastery(v float64) *CategoryProgressCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *CategoryProgressCreate) SetNillableMastery(v *float64) *CategoryProgressCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *CategoryProgressCreate) SetAttempts(v int) *CategoryProgressCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *CategoryProgressCreate) SetNillableAttempts(v *int) *CategoryProgressCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetTotalAnswers sets the "total_answers" field.
func (_c *CategoryProgressCreate) SetTotalAnswers(v int) *CategoryProgressCreate {
	_c.mutation.SetTotalAnswers(v)
	return _c
}

// SetNillableTotalAnswers sets the "total_answers" field if the given value is not nil.
func (_c *CategoryProgressCreate) SetNillableTotalAnswers(v *int) *CategoryProgressCreate {
	if v != nil {
		_c.SetTotalAnswers(*v)
	}
	return _c
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_c *CategoryProgressCreate) SetCorrectAnswers(v int) *CategoryProgressCreate {
	_c.mutation.SetCorrectAnswers(v)
	return _c
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_c *CategoryProgressCreate) SetNillableCorrectAnswers(v *int) *CategoryProgressCreate {
	if v != nil {
		_c.SetCorrectAnswers(*v)
	}
	return _c
}

// SetLevelUnlocked sets the "level_unlocked" field.
func (_c *CategoryProgressCreate) SetLevelUnlocked(v string) *CategoryProgressCreate {
	_c.mutation.SetLevelUnlocked(v)
	return _c
}

// SetNillableLevelUnlocked sets the "level_unlocked" field if the given value is not nil.
func (_c *CategoryProgressCreate) SetNillableLevelUnlocked(v *string) *CategoryProgressCreate {
	if v != nil {
		_c.SetLevelUnlocked(*v)
	}
	return _c
}

// SetLastPracticedAt sets the "last_practiced_at" field.
func (_c *CategoryProgressCreate) SetLastPracticedAt(v time.Time) *CategoryProgressCreate {
	_c.mutation.SetLastPracticedAt(v)
	return _c
}

// SetNillableLastPracticedAt sets the "last_practiced_at" field if the given value is not nil.
func (_c *CategoryProgressCreate) SetNillableLastPracticedAt(v *time.Time) *CategoryProgressCreate {
	if v != nil {
		_c.SetLastPracticedAt(*v)
	}
	return _c
}

// Mutation returns the CategoryProgressMutation object of the builder.
func (_c *CategoryProgressCreate) Mutation() *CategoryProgressMutation {
	return _c.mutation
}

// Save creates the CategoryProgress in the database.
func (_c *CategoryProgressCreate) Save(ctx context.Context) (*CategoryProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CategoryProgressCreate) SaveX(ctx context.Context) *CategoryProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CategoryProgressCreate) defaults() {
	if _, ok := _c.mutation.Mastery(); !ok {
		v := categoryprogress.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := categoryprogress.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.TotalAnswers(); !ok {
		v := categoryprogress.DefaultTotalAnswers
		_c.mutation.SetTotalAnswers(v)
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		v := categoryprogress.DefaultCorrectAnswers
		_c.mutation.SetCorrectAnswers(v)
	}
	if _, ok := _c.mutation.LevelUnlocked(); !ok {
		v := categoryprogress.DefaultLevelUnlocked
		_c.mutation.SetLevelUnlocked(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CategoryProgressCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "CategoryProgress.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := categoryprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "CategoryProgress.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "CategoryProgress.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := categoryprogress.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "CategoryProgress.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "CategoryProgress.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := categoryprogress.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "CategoryProgress.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "CategoryProgress.mastery"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "CategoryProgress.attempts"`)}
	}
	if _, ok := _c.mutation.TotalAnswers(); !ok {
		return &ValidationError{Name: "total_answers", err: errors.New(`ent: missing required field "CategoryProgress.total_answers"`)}
	}
	if _, ok := _c.mutation.CorrectAnswers(); !ok {
		return &ValidationError{Name: "correct_answers", err: errors.New(`ent: missing required field "CategoryProgress.correct_answers"`)}
	}
	if _, ok := _c.mutation.LevelUnlocked(); !ok {
		return &ValidationError{Name: "level_unlocked", err: errors.New(`ent: missing required field "CategoryProgress.level_unlocked"`)}
	}
	return nil
}

func (_c *CategoryProgressCreate) sqlSave(ctx context.Context) (*CategoryProgress, error) {
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

func (_c *CategoryProgressCreate) createSpec() (*CategoryProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &CategoryProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(categoryprogress.Table, sqlgraph.NewFieldSpec(categoryprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(categoryprogress.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(categoryprogress.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(categoryprogress.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(categoryprogress.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(categoryprogress.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.TotalAnswers(); ok {
		_spec.SetField(categoryprogress.FieldTotalAnswers, field.TypeInt, value)
		_node.TotalAnswers = value
	}
	if value, ok := _c.mutation.CorrectAnswers(); ok {
		_spec.SetField(categoryprogress.FieldCorrectAnswers, field.TypeInt, value)
		_node.CorrectAnswers = value
	}
	if value, ok := _c.mutation.LevelUnlocked(); ok {
		_spec.SetField(categoryprogress.FieldLevelUnlocked, field.TypeString, value)
		_node.LevelUnlocked = value
	}
	if value, ok := _c.mutation.LastPracticedAt(); ok {
		_spec.SetField(categoryprogress.FieldLastPracticedAt, field.TypeTime, value)
		_node.LastPracticedAt = &value
	}
	return _node, _spec
}

// CategoryProgressCreateBulk is the builder for creating many CategoryProgress entities in bulk.
type CategoryProgressCreateBulk struct {
	config
	err      error
	builders []*CategoryProgressCreate
}

// Save creates the CategoryProgress entities in the database.
func (_c *CategoryProgressCreateBulk) Save(ctx context.Context) ([]*CategoryProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CategoryProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CategoryProgressMutation)
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
func (_c *CategoryProgressCreateBulk) SaveX(ctx context.Context) []*CategoryProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CategoryProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CategoryProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
