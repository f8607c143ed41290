// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingoflow/ent/dailyxp"
)

// DailyXPCreate is the builder for creating a DailyXP entity.
type DailyXPCreate struct {
	config
	mutation *DailyXPMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *DailyXPCreate) SetLearnerID(v string) *DailyXPCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *DailyXPCreate) SetLanguage(v string) *DailyXPCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *DailyXPCreate) SetDay(v time.Time) *DailyXPCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetXp sets the "xp" field.
func (_c *DailyXPCreate) SetXp(v int) *DailyXPCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *DailyXPCreate) SetNillableXp(v *int) *DailyXPCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// Mutation returns the DailyXPMutation object of the builder.
func (_c *DailyXPCreate) Mutation() *DailyXPMutation {
	return _c.mutation
}

// Save creates the DailyXP in the database.
func (_c *DailyXPCreate) Save(ctx context.Context) (*DailyXP, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyXPCreate) SaveX(ctx context.Context) *DailyXP {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyXPCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyXPCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyXPCreate) defaults() {
	if _, ok := _c.mutation.Xp(); !ok {
		v := dailyxp.DefaultXp
		_c.mutation.SetXp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyXPCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "DailyXP.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := dailyxp.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "DailyXP.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "DailyXP.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := dailyxp.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "DailyXP.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "DailyXP.day"`)}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "DailyXP.xp"`)}
	}
	if v, ok := _c.mutation.Xp(); ok {
		if err := dailyxp.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "DailyXP.xp": %w`, err)}
		}
	}
	return nil
}

func (_c *DailyXPCreate) sqlSave(ctx context.Context) (*DailyXP, error) {
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

func (_c *DailyXPCreate) createSpec() (*DailyXP, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyXP{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailyxp.Table, sqlgraph.NewFieldSpec(dailyxp.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(dailyxp.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(dailyxp.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(dailyxp.FieldDay, field.TypeTime, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(dailyxp.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	return _node, _spec
}

// DailyXPCreateBulk is the builder for creating many DailyXP entities in bulk.
type DailyXPCreateBulk struct {
	config
	err      error
	builders []*DailyXPCreate
}

// Save creates the DailyXP entities in the database.
func (_c *DailyXPCreateBulk) Save(ctx context.Context) ([]*DailyXP, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyXP, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyXPMutation)
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
func (_c *DailyXPCreateBulk) SaveX(ctx context.Context) []*DailyXP {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyXPCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyXPCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
