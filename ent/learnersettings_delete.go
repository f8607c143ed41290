// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingoflow/ent/learnersettings"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// LearnerSettingsDelete is the builder for deleting a LearnerSettings entity.
type LearnerSettingsDelete struct {
	config
	hooks    []Hook
	mutation *LearnerSettingsMutation
}

// Where appends a list predicates to the LearnerSettingsDelete builder.
func (_d *LearnerSettingsDelete) Where(ps ...predicate.LearnerSettings) *LearnerSettingsDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LearnerSettingsDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearnerSettingsDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LearnerSettingsDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(learnersettings.Table, sqlgraph.NewFieldSpec(learnersettings.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LearnerSettingsDeleteOne is the builder for deleting a single LearnerSettings entity.
type LearnerSettingsDeleteOne struct {
	_d *LearnerSettingsDelete
}

// Where appends a list predicates to the LearnerSettingsDelete builder.
func (_d *LearnerSettingsDeleteOne) Where(ps ...predicate.LearnerSettings) *LearnerSettingsDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LearnerSettingsDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{learnersettings.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearnerSettingsDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
