// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingoflow/ent/learnersettings"
)

// LearnerSettingsCreate is the builder for creating a LearnerSettings entity.
type LearnerSettingsCreate struct {
	config
	mutation *LearnerSettingsMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *LearnerSettingsCreate) SetLearnerID(v string) *LearnerSettingsCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetNativeLanguage sets the "native_language" field.
func (_c *LearnerSettingsCreate) SetNativeLanguage(v string) *LearnerSettingsCreate {
	_c.mutation.SetNativeLanguage(v)
	return _c
}

// SetNillableNativeLanguage sets the "native_language" field if the given value is not nil.
func (_c *LearnerSettingsCreate) SetNillableNativeLanguage(v *string) *LearnerSettingsCreate {
	if v != nil {
		_c.SetNativeLanguage(*v)
	}
	return _c
}

// SetTargetLanguage sets the "target_language" field.
func (_c *LearnerSettingsCreate) SetTargetLanguage(v string) *LearnerSettingsCreate {
	_c.mutation.SetTargetLanguage(v)
	return _c
}

// SetNillableTargetLanguage sets the "target_language" field if the given value is not nil.
func (_c *LearnerSettingsCreate) SetNillableTargetLanguage(v *string) *LearnerSettingsCreate {
	if v != nil {
		_c.SetTargetLanguage(*v)
	}
	return _c
}

// SetDailyGoal sets the "daily_goal" field.
func (_c *LearnerSettingsCreate) SetDailyGoal(v int) *LearnerSettingsCreate {
	_c.mutation.SetDailyGoal(v)
	return _c
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_c *LearnerSettingsCreate) SetNillableDailyGoal(v *int) *LearnerSettingsCreate {
	if v != nil {
		_c.SetDailyGoal(*v)
	}
	return _c
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_c *LearnerSettingsCreate) SetDailyMinutes(v int) *LearnerSettingsCreate {
	_c.mutation.SetDailyMinutes(v)
	return _c
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_c *LearnerSettingsCreate) SetNillableDailyMinutes(v *int) *LearnerSettingsCreate {
	if v != nil {
		_c.SetDailyMinutes(*v)
	}
	return _c
}

// SetWeeklyGoalSessions sets the "weekly_goal_sessions" field.
func (_c *LearnerSettingsCreate) SetWeeklyGoalSessions(v int) *LearnerSettingsCreate {
	_c.mutation.SetWeeklyGoalSessions(v)
	return _c
}

// SetNillableWeeklyGoalSessions sets the "weekly_goal_sessions" field if the given value is not nil.
func (_c *LearnerSettingsCreate) SetNillableWeeklyGoalSessions(v *int) *LearnerSettingsCreate {
	if v != nil {
		_c.SetWeeklyGoalSessions(*v)
	}
	return _c
}

// SetSelfRatedLevel sets the "self_rated_level" field.
func (_c *LearnerSettingsCreate) SetSelfRatedLevel(v string) *LearnerSettingsCreate {
	_c.mutation.SetSelfRatedLevel(v)
	return _c
}

// SetNillableSelfRatedLevel sets the "self_rated_level" field if the given value is not nil.
func (_c *LearnerSettingsCreate) SetNillableSelfRatedLevel(v *string) *LearnerSettingsCreate {
	if v != nil {
		_c.SetSelfRatedLevel(*v)
	}
	return _c
}

// SetLearnerName sets the "learner_name" field.
func (_c *LearnerSettingsCreate) SetLearnerName(v string) *LearnerSettingsCreate {
	_c.mutation.SetLearnerName(v)
	return _c
}

// SetNillableLearnerName sets the "learner_name" field if the given value is not nil.
func (_c *LearnerSettingsCreate) SetNillableLearnerName(v *string) *LearnerSettingsCreate {
	if v != nil {
		_c.SetLearnerName(*v)
	}
	return _c
}

// SetLearnerBio sets the "learner_bio" field.
func (_c *LearnerSettingsCreate) SetLearnerBio(v string) *LearnerSettingsCreate {
	_c.mutation.SetLearnerBio(v)
	return _c
}

// SetNillableLearnerBio sets the "learner_bio" field if the given value is not nil.
func (_c *LearnerSettingsCreate) SetNillableLearnerBio(v *string) *LearnerSettingsCreate {
	if v != nil {
		_c.SetLearnerBio(*v)
	}
	return _c
}

// SetFocusArea sets the "focus_area" field.
func (_c *LearnerSettingsCreate) SetFocusArea(v string) *LearnerSettingsCreate {
	_c.mutation.SetFocusArea(v)
	return _c
}

// SetNillableFocusArea sets the "focus_area" field if the given value is not nil.
func (_c *LearnerSettingsCreate) SetNillableFocusArea(v *string) *LearnerSettingsCreate {
	if v != nil {
		_c.SetFocusArea(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnerSettingsCreate) SetUpdatedAt(v time.Time) *LearnerSettingsCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnerSettingsCreate) SetNillableUpdatedAt(v *time.Time) *LearnerSettingsCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearnerSettingsMutation object of the builder.
func (_c *LearnerSettingsCreate) Mutation() *LearnerSettingsMutation {
	return _c.mutation
}

// Save creates the LearnerSettings in the database.
func (_c *LearnerSettingsCreate) Save(ctx context.Context) (*LearnerSettings, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerSettingsCreate) SaveX(ctx context.Context) *LearnerSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerSettingsCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerSettingsCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerSettingsCreate) defaults() {
	if _, ok := _c.mutation.NativeLanguage(); !ok {
		v := learnersettings.DefaultNativeLanguage
		_c.mutation.SetNativeLanguage(v)
	}
	if _, ok := _c.mutation.TargetLanguage(); !ok {
		v := learnersettings.DefaultTargetLanguage
		_c.mutation.SetTargetLanguage(v)
	}
	if _, ok := _c.mutation.DailyGoal(); !ok {
		v := learnersettings.DefaultDailyGoal
		_c.mutation.SetDailyGoal(v)
	}
	if _, ok := _c.mutation.DailyMinutes(); !ok {
		v := learnersettings.DefaultDailyMinutes
		_c.mutation.SetDailyMinutes(v)
	}
	if _, ok := _c.mutation.WeeklyGoalSessions(); !ok {
		v := learnersettings.DefaultWeeklyGoalSessions
		_c.mutation.SetWeeklyGoalSessions(v)
	}
	if _, ok := _c.mutation.SelfRatedLevel(); !ok {
		v := learnersettings.DefaultSelfRatedLevel
		_c.mutation.SetSelfRatedLevel(v)
	}
	if _, ok := _c.mutation.LearnerName(); !ok {
		v := learnersettings.DefaultLearnerName
		_c.mutation.SetLearnerName(v)
	}
	if _, ok := _c.mutation.LearnerBio(); !ok {
		v := learnersettings.DefaultLearnerBio
		_c.mutation.SetLearnerBio(v)
	}
	if _, ok := _c.mutation.FocusArea(); !ok {
		v := learnersettings.DefaultFocusArea
		_c.mutation.SetFocusArea(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learnersettings.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerSettingsCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "LearnerSettings.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := learnersettings.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "LearnerSettings.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NativeLanguage(); !ok {
		return &ValidationError{Name: "native_language", err: errors.New(`ent: missing required field "LearnerSettings.native_language"`)}
	}
	if _, ok := _c.mutation.TargetLanguage(); !ok {
		return &ValidationError{Name: "target_language", err: errors.New(`ent: missing required field "LearnerSettings.target_language"`)}
	}
	if _, ok := _c.mutation.DailyGoal(); !ok {
		return &ValidationError{Name: "daily_goal", err: errors.New(`ent: missing required field "LearnerSettings.daily_goal"`)}
	}
	if _, ok := _c.mutation.DailyMinutes(); !ok {
		return &ValidationError{Name: "daily_minutes", err: errors.New(`ent: missing required field "LearnerSettings.daily_minutes"`)}
	}
	if _, ok := _c.mutation.WeeklyGoalSessions(); !ok {
		return &ValidationError{Name: "weekly_goal_sessions", err: errors.New(`ent: missing required field "LearnerSettings.weekly_goal_sessions"`)}
	}
	if _, ok := _c.mutation.SelfRatedLevel(); !ok {
		return &ValidationError{Name: "self_rated_level", err: errors.New(`ent: missing required field "LearnerSettings.self_rated_level"`)}
	}
	if _, ok := _c.mutation.LearnerName(); !ok {
		return &ValidationError{Name: "learner_name", err: errors.New(`ent: missing required field "LearnerSettings.learner_name"`)}
	}
	if _, ok := _c.mutation.LearnerBio(); !ok {
		return &ValidationError{Name: "learner_bio", err: errors.New(`ent: missing required field "LearnerSettings.learner_bio"`)}
	}
	if _, ok := _c.mutation.FocusArea(); !ok {
		return &ValidationError{Name: "focus_area", err: errors.New(`ent: missing required field "LearnerSettings.focus_area"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearnerSettings.updated_at"`)}
	}
	return nil
}

func (_c *LearnerSettingsCreate) sqlSave(ctx context.Context) (*LearnerSettings, error) {
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

func (_c *LearnerSettingsCreate) createSpec() (*LearnerSettings, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerSettings{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnersettings.Table, sqlgraph.NewFieldSpec(learnersettings.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(learnersettings.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.NativeLanguage(); ok {
		_spec.SetField(learnersettings.FieldNativeLanguage, field.TypeString, value)
		_node.NativeLanguage = value
	}
	if value, ok := _c.mutation.TargetLanguage(); ok {
		_spec.SetField(learnersettings.FieldTargetLanguage, field.TypeString, value)
		_node.TargetLanguage = value
	}
	if value, ok := _c.mutation.DailyGoal(); ok {
		_spec.SetField(learnersettings.FieldDailyGoal, field.TypeInt, value)
		_node.DailyGoal = value
	}
	if value, ok := _c.mutation.DailyMinutes(); ok {
		_spec.SetField(learnersettings.FieldDailyMinutes, field.TypeInt, value)
		_node.DailyMinutes = value
	}
	if value, ok := _c.mutation.WeeklyGoalSessions(); ok {
		_spec.SetField(learnersettings.FieldWeeklyGoalSessions, field.TypeInt, value)
		_node.WeeklyGoalSessions = value
	}
	if value, ok := _c.mutation.SelfRatedLevel(); ok {
		_spec.SetField(learnersettings.FieldSelfRatedLevel, field.TypeString, value)
		_node.SelfRatedLevel = value
	}
	if value, ok := _c.mutation.LearnerName(); ok {
		_spec.SetField(learnersettings.FieldLearnerName, field.TypeString, value)
		_node.LearnerName = value
	}
	if value, ok := _c.mutation.LearnerBio(); ok {
		_spec.SetField(learnersettings.FieldLearnerBio, field.TypeString, value)
		_node.LearnerBio = value
	}
	if value, ok := _c.mutation.FocusArea(); ok {
		_spec.SetField(learnersettings.FieldFocusArea, field.TypeString, value)
		_node.FocusArea = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learnersettings.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearnerSettingsCreateBulk is the builder for creating many LearnerSettings entities in bulk.
type LearnerSettingsCreateBulk struct {
	config
	err      error
	builders []*LearnerSettingsCreate
}

// Save creates the LearnerSettings entities in the database.
func (_c *LearnerSettingsCreateBulk) Save(ctx context.Context) ([]*LearnerSettings, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerSettings, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerSettingsMutation)
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
func (_c *LearnerSettingsCreateBulk) SaveX(ctx context.Context) []*LearnerSettings {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerSettingsCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerSettingsCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
