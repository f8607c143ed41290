// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingoflow/ent/dailyxp"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// DailyXPUpdate is the builder for updating DailyXP entities.
type DailyXPUpdate struct {
	config
	hooks    []Hook
	mutation *DailyXPMutation
}

// Where appends a list predicates to the DailyXPUpdate builder.
func (_u *DailyXPUpdate) Where(ps ...predicate.DailyXP) *DailyXPUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetXp sets the "xp" field.
func (_u *DailyXPUpdate) SetXp(v int) *DailyXPUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *DailyXPUpdate) SetNillableXp(v *int) *DailyXPUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *DailyXPUpdate) AddXp(v int) *DailyXPUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// Mutation returns the DailyXPMutation object of the builder.
func (_u *DailyXPUpdate) Mutation() *DailyXPMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyXPUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyXPUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyXPUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyXPUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyXPUpdate) check() error {
	if v, ok := _u.mutation.Xp(); ok {
		if err := dailyxp.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "DailyXP.xp": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyXPUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyxp.Table, dailyxp.Columns, sqlgraph.NewFieldSpec(dailyxp.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(dailyxp.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(dailyxp.FieldXp, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyxp.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyXPUpdateOne is the builder for updating a single DailyXP entity.
type DailyXPUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyXPMutation
}

// SetXp sets the "xp" field.
func (_u *DailyXPUpdateOne) SetXp(v int) *DailyXPUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *DailyXPUpdateOne) SetNillableXp(v *int) *DailyXPUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *DailyXPUpdateOne) AddXp(v int) *DailyXPUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// Mutation returns the DailyXPMutation object of the builder.
func (_u *DailyXPUpdateOne) Mutation() *DailyXPMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyXPUpdate builder.
func (_u *DailyXPUpdateOne) Where(ps ...predicate.DailyXP) *DailyXPUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyXPUpdateOne) Select(field string, fields ...string) *DailyXPUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyXP entity.
func (_u *DailyXPUpdateOne) Save(ctx context.Context) (*DailyXP, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyXPUpdateOne) SaveX(ctx context.Context) *DailyXP {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyXPUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyXPUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyXPUpdateOne) check() error {
	if v, ok := _u.mutation.Xp(); ok {
		if err := dailyxp.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "DailyXP.xp": %w`, err)}
		}
	}
	return nil
}

func (_u *DailyXPUpdateOne) sqlSave(ctx context.Context) (_node *DailyXP, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyxp.Table, dailyxp.Columns, sqlgraph.NewFieldSpec(dailyxp.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyXP.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailyxp.FieldID)
		for _, f := range fields {
			if !dailyxp.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailyxp.FieldID {
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
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(dailyxp.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(dailyxp.FieldXp, field.TypeInt, value)
	}
	_node = &DailyXP{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyxp.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
