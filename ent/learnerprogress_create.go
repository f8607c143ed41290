// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingoflow/ent/learnerprogress"
)

// LearnerProgressCreate is the builder for creating a LearnerProgress entity.
type LearnerProgressCreate struct {
	config
	mutation *LearnerProgressMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *LearnerProgressCreate) SetLearnerID(v string) *LearnerProgressCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetTotalXp sets the "total_xp" field.
func (_c *LearnerProgressCreate) SetTotalXp(v int) *LearnerProgressCreate {
	_c.mutation.SetTotalXp(v)
	return _c
}

// SetNillableTotalXp sets the "total_xp" field if the given value is not nil.
func (_c *LearnerProgressCreate) SetNillableTotalXp(v *int) *LearnerProgressCreate {
	if v != nil {
		_c.SetTotalXp(*v)
	}
	return _c
}

// SetStreakDays sets the "streak_days" field.
func (_c *LearnerProgressCreate) SetStreakDays(v int) *LearnerProgressCreate {
	_c.mutation.SetStreakDays(v)
	return _c
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_c *LearnerProgressCreate) SetNillableStreakDays(v *int) *LearnerProgressCreate {
	if v != nil {
		_c.SetStreakDays(*v)
	}
	return _c
}

// SetHearts sets the "hearts" field.
func (_c *LearnerProgressCreate) SetHearts(v int) *LearnerProgressCreate {
	_c.mutation.SetHearts(v)
	return _c
}

// SetNillableHearts sets the "hearts" field if the given value is not nil.
func (_c *LearnerProgressCreate) SetNillableHearts(v *int) *LearnerProgressCreate {
	if v != nil {
		_c.SetHearts(*v)
	}
	return _c
}

// SetLearnerLevel sets the "learner_level" field.
func (_c *LearnerProgressCreate) SetLearnerLevel(v int) *LearnerProgressCreate {
	_c.mutation.SetLearnerLevel(v)
	return _c
}

// SetNillableLearnerLevel sets the "learner_level" field if the given value is not nil.
func (_c *LearnerProgressCreate) SetNillableLearnerLevel(v *int) *LearnerProgressCreate {
	if v != nil {
		_c.SetLearnerLevel(*v)
	}
	return _c
}

// SetLastCompleted sets the "last_completed" field.
func (_c *LearnerProgressCreate) SetLastCompleted(v time.Time) *LearnerProgressCreate {
	_c.mutation.SetLastCompleted(v)
	return _c
}

// SetNillableLastCompleted sets the "last_completed" field if the given value is not nil.
func (_c *LearnerProgressCreate) SetNillableLastCompleted(v *time.Time) *LearnerProgressCreate {
	if v != nil {
		_c.SetLastCompleted(*v)
	}
	return _c
}

// Mutation returns the LearnerProgressMutation object of the builder.
func (_c *LearnerProgressCreate) Mutation() *LearnerProgressMutation {
	return _c.mutation
}

// Save creates the LearnerProgress in the database.
func (_c *LearnerProgressCreate) Save(ctx context.Context) (*LearnerProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerProgressCreate) SaveX(ctx context.Context) *LearnerProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerProgressCreate) defaults() {
	if _, ok := _c.mutation.TotalXp(); !ok {
		v := learnerprogress.DefaultTotalXp
		_c.mutation.SetTotalXp(v)
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		v := learnerprogress.DefaultStreakDays
		_c.mutation.SetStreakDays(v)
	}
	if _, ok := _c.mutation.Hearts(); !ok {
		v := learnerprogress.DefaultHearts
		_c.mutation.SetHearts(v)
	}
	if _, ok := _c.mutation.LearnerLevel(); !ok {
		v := learnerprogress.DefaultLearnerLevel
		_c.mutation.SetLearnerLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerProgressCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LearnerProgress.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := learnerprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearnerProgress.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalXp(); !ok {
		return &ValidationError{Name: "total_xp", err: errors.New(`ent: missing required field "LearnerProgress.total_xp"`)}
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		return &ValidationError{Name: "streak_days", err: errors.New(`ent: missing required field "LearnerProgress.streak_days"`)}
	}
	if _, ok := _c.mutation.Hearts(); !ok {
		return &ValidationError{Name: "hearts", err: errors.New(`ent: missing required field "LearnerProgress.hearts"`)}
	}
	if _, ok := _c.mutation.LearnerLevel(); !ok {
		return &ValidationError{Name: "learner_level", err: errors.New(`ent: missing required field "LearnerProgress.learner_level"`)}
	}
	return nil
}

func (_c *LearnerProgressCreate) sqlSave(ctx context.Context) (*LearnerProgress, error) {
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

func (_c *LearnerProgressCreate) createSpec() (*LearnerProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnerprogress.Table, sqlgraph.NewFieldSpec(learnerprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(learnerprogress.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.TotalXp(); ok {
		_spec.SetField(learnerprogress.FieldTotalXp, field.TypeInt, value)
		_node.TotalXp = value
	}
	if value, ok := _c.mutation.StreakDays(); ok {
		_spec.SetField(learnerprogress.FieldStreakDays, field.TypeInt, value)
		_node.StreakDays = value
	}
	if value, ok := _c.mutation.Hearts(); ok {
		_spec.SetField(learnerprogress.FieldHearts, field.TypeInt, value)
		_node.Hearts = value
	}
	if value, ok := _c.mutation.LearnerLevel(); ok {
		_spec.SetField(learnerprogress.FieldLearnerLevel, field.TypeInt, value)
		_node.LearnerLevel = value
	}
	if value, ok := _c.mutation.LastCompleted(); ok {
		_spec.SetField(learnerprogress.FieldLastCompleted, field.TypeTime, value)
		_node.LastCompleted = &value
	}
	return _node, _spec
}

// LearnerProgressCreateBulk is the builder for creating many LearnerProgress entities in bulk.
type LearnerProgressCreateBulk struct {
	config
	err      error
	builders []*LearnerProgressCreate
}

// Save creates the LearnerProgress entities in the database.
func (_c *LearnerProgressCreateBulk) Save(ctx context.Context) ([]*LearnerProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerProgressMutation)
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
func (_c *LearnerProgressCreateBulk) SaveX(ctx context.Context) []*LearnerProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
