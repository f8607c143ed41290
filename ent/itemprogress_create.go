// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingoflow/ent/itemprogress"
)

// ItemProgressCreate is the builder for creating a ItemProgress entity.
type ItemProgressCreate struct {
	config
	mutation *ItemProgressMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *ItemProgressCreate) SetLearnerID(v string) *ItemProgressCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ItemProgressCreate) SetLanguage(v string) *ItemProgressCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ItemProgressCreate) SetCategory(v string) *ItemProgressCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetItemID sets the "item_id" field.
func (_c *ItemProgressCreate) SetItemID(v string) *ItemProgressCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetObjective sets the "objective" field.
func (_c *ItemProgressCreate) SetObjective(v string) *ItemProgressCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableObjective(v *string) *ItemProgressCreate {
	if v != nil {
		_c.SetObjective(*v)
	}
	return _c
}

// SetEase sets the "ease" field.
func (_c *ItemProgressCreate) SetEase(v float64) *ItemProgressCreate {
	_c.mutation.SetEase(v)
	return _c
}

// SetNillableEase sets the "ease" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableEase(v *float64) *ItemProgressCreate {
	if v != nil {
		_c.SetEase(*v)
	}
	return _c
}

// SetStreak sets the "streak" field.
func (_c *ItemProgressCreate) SetStreak(v int) *ItemProgressCreate {
	_c.mutation.SetStreak(v)
	return _c
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableStreak(v *int) *ItemProgressCreate {
	if v != nil {
		_c.SetStreak(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ItemProgressCreate) SetAttempts(v int) *ItemProgressCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableAttempts(v *int) *ItemProgressCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ItemProgressCreate) SetCorrect(v int) *ItemProgressCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableCorrect(v *int) *ItemProgressCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *ItemProgressCreate) SetErrorCount(v int) *ItemProgressCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableErrorCount(v *int) *ItemProgressCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetLastErrorType sets the "last_error_type" field.
func (_c *ItemProgressCreate) SetLastErrorType(v string) *ItemProgressCreate {
	_c.mutation.SetLastErrorType(v)
	return _c
}

// SetNillableLastErrorType sets the "last_error_type" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableLastErrorType(v *string) *ItemProgressCreate {
	if v != nil {
		_c.SetLastErrorType(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *ItemProgressCreate) SetLastSeen(v time.Time) *ItemProgressCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableLastSeen(v *time.Time) *ItemProgressCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetNextDue sets the "next_due" field.
func (_c *ItemProgressCreate) SetNextDue(v time.Time) *ItemProgressCreate {
	_c.mutation.SetNextDue(v)
	return _c
}

// SetNillableNextDue sets the "next_due" field if the given value is not nil.
func (_c *ItemProgressCreate) SetNillableNextDue(v *time.Time) *ItemProgressCreate {
	if v != nil {
		_c.SetNextDue(*v)
	}
	return _c
}

// Mutation returns the ItemProgressMutation object of the builder.
func (_c *ItemProgressCreate) Mutation() *ItemProgressMutation {
	return _c.mutation
}

// Save creates the ItemProgress in the database.
func (_c *ItemProgressCreate) Save(ctx context.Context) (*ItemProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemProgressCreate) SaveX(ctx context.Context) *ItemProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemProgressCreate) defaults() {
	if _, ok := _c.mutation.Objective(); !ok {
		v := itemprogress.DefaultObjective
		_c.mutation.SetObjective(v)
	}
	if _, ok := _c.mutation.Ease(); !ok {
		v := itemprogress.DefaultEase
		_c.mutation.SetEase(v)
	}
	if _, ok := _c.mutation.Streak(); !ok {
		v := itemprogress.DefaultStreak
		_c.mutation.SetStreak(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := itemprogress.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Correct(); !ok {
		v := itemprogress.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := itemprogress.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.LastErrorType(); !ok {
		v := itemprogress.DefaultLastErrorType
		_c.mutation.SetLastErrorType(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemProgressCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "ItemProgress.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := itemprogress.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "ItemProgress.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := itemprogress.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ItemProgress.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := itemprogress.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "ItemProgress.item_id"`)}
	}
	if v, ok := _c.mutation.ItemID(); ok {
		if err := itemprogress.ItemIDValidator(v); err != nil {
			return &ValidationError{Name: "item_id", err: fmt.Errorf(`ent: validator failed for field "ItemProgress.item_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Objective(); !ok {
		return &ValidationError{Name: "objective", err: errors.New(`ent: missing required field "ItemProgress.objective"`)}
	}
	if _, ok := _c.mutation.Ease(); !ok {
		return &ValidationError{Name: "ease", err: errors.New(`ent: missing required field "ItemProgress.ease"`)}
	}
	if _, ok := _c.mutation.Streak(); !ok {
		return &ValidationError{Name: "streak", err: errors.New(`ent: missing required field "ItemProgress.streak"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ItemProgress.attempts"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ItemProgress.correct"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "ItemProgress.error_count"`)}
	}
	if _, ok := _c.mutation.LastErrorType(); !ok {
		return &ValidationError{Name: "last_error_type", err: errors.New(`ent: missing required field "ItemProgress.last_error_type"`)}
	}
	return nil
}

func (_c *ItemProgressCreate) sqlSave(ctx context.Context) (*ItemProgress, error) {
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

func (_c *ItemProgressCreate) createSpec() (*ItemProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(itemprogress.Table, sqlgraph.NewFieldSpec(itemprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(itemprogress.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(itemprogress.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(itemprogress.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ItemID(); ok {
		_spec.SetField(itemprogress.FieldItemID, field.TypeString, value)
		_node.ItemID = value
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(itemprogress.FieldObjective, field.TypeString, value)
		_node.Objective = value
	}
	if value, ok := _c.mutation.Ease(); ok {
		_spec.SetField(itemprogress.FieldEase, field.TypeFloat64, value)
		_node.Ease = value
	}
	if value, ok := _c.mutation.Streak(); ok {
		_spec.SetField(itemprogress.FieldStreak, field.TypeInt, value)
		_node.Streak = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(itemprogress.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(itemprogress.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(itemprogress.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.LastErrorType(); ok {
		_spec.SetField(itemprogress.FieldLastErrorType, field.TypeString, value)
		_node.LastErrorType = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(itemprogress.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = &value
	}
	if value, ok := _c.mutation.NextDue(); ok {
		_spec.SetField(itemprogress.FieldNextDue, field.TypeTime, value)
		_node.NextDue = &value
	}
	return _node, _spec
}

// ItemProgressCreateBulk is the builder for creating many ItemProgress entities in bulk.
type ItemProgressCreateBulk struct {
	config
	err      error
	builders []*ItemProgressCreate
}

// Save creates the ItemProgress entities in the database.
func (_c *ItemProgressCreateBulk) Save(ctx context.Context) ([]*ItemProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ItemProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemProgressMutation)
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
func (_c *ItemProgressCreateBulk) SaveX(ctx context.Context) []*ItemProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
