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
	"github.com/abhisek/lingoflow/ent/learnersettings"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// LearnerSettingsUpdate is the builder for updating LearnerSettings entities.
type LearnerSettingsUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerSettingsMutation
}

// Where appends a list predicates to the LearnerSettingsUpdate builder.
func (_u *LearnerSettingsUpdate) Where(ps ...predicate.LearnerSettings) *LearnerSettingsUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNativeLanguage sets the "native_language" field.
func (_u *LearnerSettingsUpdate) SetNativeLanguage(v string) *LearnerSettingsUpdate {
	_u.mutation.SetNativeLanguage(v)
	return _u
}

// SetNillableNativeLanguage sets the "native_language" field if the given value is not nil.
func (_u *LearnerSettingsUpdate) SetNillableNativeLanguage(v *string) *LearnerSettingsUpdate {
	if v != nil {
		_u.SetNativeLanguage(*v)
	}
	return _u
}

// SetTargetLanguage sets the "target_language" field.
func (_u *LearnerSettingsUpdate) SetTargetLanguage(v string) *LearnerSettingsUpdate {
	_u.mutation.SetTargetLanguage(v)
	return _u
}

// SetNillableTargetLanguage sets the "target_language" field if the given value is not nil.
func (_u *LearnerSettingsUpdate) SetNillableTargetLanguage(v *string) *LearnerSettingsUpdate {
	if v != nil {
		_u.SetTargetLanguage(*v)
	}
	return _u
}

// SetDailyGoal sets the "daily_goal" field.
func (_u *LearnerSettingsUpdate) SetDailyGoal(v int) *LearnerSettingsUpdate {
	_u.mutation.ResetDailyGoal()
	_u.mutation.SetDailyGoal(v)
	return _u
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_u *LearnerSettingsUpdate) SetNillableDailyGoal(v *int) *LearnerSettingsUpdate {
	if v != nil {
		_u.SetDailyGoal(*v)
	}
	return _u
}

// AddDailyGoal adds value to the "daily_goal" field.
func (_u *LearnerSettingsUpdate) AddDailyGoal(v int) *LearnerSettingsUpdate {
	_u.mutation.AddDailyGoal(v)
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *LearnerSettingsUpdate) SetDailyMinutes(v int) *LearnerSettingsUpdate {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *LearnerSettingsUpdate) SetNillableDailyMinutes(v *int) *LearnerSettingsUpdate {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *LearnerSettingsUpdate) AddDailyMinutes(v int) *LearnerSettingsUpdate {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetWeeklyGoalSessions sets the "weekly_goal_sessions" field.
func (_u *LearnerSettingsUpdate) SetWeeklyGoalSessions(v int) *LearnerSettingsUpdate {
	_u.mutation.ResetWeeklyGoalSessions()
	_u.mutation.SetWeeklyGoalSessions(v)
	return _u
}

// SetNillableWeeklyGoalSessions sets the "weekly_goal_sessions" field if the given value is not nil.
func (_u *LearnerSettingsUpdate) SetNillableWeeklyGoalSessions(v *int) *LearnerSettingsUpdate {
	if v != nil {
		_u.SetWeeklyGoalSessions(*v)
	}
	return _u
}

// AddWeeklyGoalSessions adds value to the "weekly_goal_sessions" field.
func (_u *LearnerSettingsUpdate) AddWeeklyGoalSessions(v int) *LearnerSettingsUpdate {
	_u.mutation.AddWeeklyGoalSessions(v)
	return _u
}

// SetSelfRatedLevel sets the "self_rated_level" field.
func (_u *LearnerSettingsUpdate) SetSelfRatedLevel(v string) *LearnerSettingsUpdate {
	_u.mutation.SetSelfRatedLevel(v)
	return _u
}

// SetNillableSelfRatedLevel sets the "self_rated_level" field if the given value is not nil.
func (_u *LearnerSettingsUpdate) SetNillableSelfRatedLevel(v *string) *LearnerSettingsUpdate {
	if v != nil {
		_u.SetSelfRatedLevel(*v)
	}
	return _u
}

// SetLearnerName sets the "learner_name" field.
func (_u *LearnerSettingsUpdate) SetLearnerName(v string) *LearnerSettingsUpdate {
	_u.mutation.SetLearnerName(v)
	return _u
}

// SetNillableLearnerName sets the "learner_name" field if the given value is not nil.
func (_u *LearnerSettingsUpdate) SetNillableLearnerName(v *string) *LearnerSettingsUpdate {
	if v != nil {
		_u.SetLearnerName(*v)
	}
	return _u
}

// SetLearnerBio sets the "learner_bio" field.
func (_u *LearnerSettingsUpdate) SetLearnerBio(v string) *LearnerSettingsUpdate {
	_u.mutation.SetLearnerBio(v)
	return _u
}

// SetNillableLearnerBio sets the "learner_bio" field if the given value is not nil.
func (_u *LearnerSettingsUpdate) SetNillableLearnerBio(v *string) *LearnerSettingsUpdate {
	if v != nil {
		_u.SetLearnerBio(*v)
	}
	return _u
}

// SetFocusArea sets the "focus_area" field.
func (_u *LearnerSettingsUpdate) SetFocusArea(v string) *LearnerSettingsUpdate {
	_u.mutation.SetFocusArea(v)
	return _u
}

// SetNillableFocusArea sets the "focus_area" field if the given value is not nil.
func (_u *LearnerSettingsUpdate) SetNillableFocusArea(v *string) *LearnerSettingsUpdate {
	if v != nil {
		_u.SetFocusArea(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerSettingsUpdate) SetUpdatedAt(v time.Time) *LearnerSettingsUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *LearnerSettingsUpdate) SetNillableUpdatedAt(v *time.Time) *LearnerSettingsUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the LearnerSettingsMutation object of the builder.
func (_u *LearnerSettingsUpdate) Mutation() *LearnerSettingsMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerSettingsUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerSettingsUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerSettingsUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerSettingsUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearnerSettingsUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnersettings.Table, learnersettings.Columns, sqlgraph.NewFieldSpec(learnersettings.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NativeLanguage(); ok {
		_spec.SetField(learnersettings.FieldNativeLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLanguage(); ok {
		_spec.SetField(learnersettings.FieldTargetLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyGoal(); ok {
		_spec.SetField(learnersettings.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyGoal(); ok {
		_spec.AddField(learnersettings.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(learnersettings.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(learnersettings.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeeklyGoalSessions(); ok {
		_spec.SetField(learnersettings.FieldWeeklyGoalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyGoalSessions(); ok {
		_spec.AddField(learnersettings.FieldWeeklyGoalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SelfRatedLevel(); ok {
		_spec.SetField(learnersettings.FieldSelfRatedLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerName(); ok {
		_spec.SetField(learnersettings.FieldLearnerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerBio(); ok {
		_spec.SetField(learnersettings.FieldLearnerBio, field.TypeString, value)
	}
	if value, ok := _u.mutation.FocusArea(); ok {
		_spec.SetField(learnersettings.FieldFocusArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnersettings.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnersettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerSettingsUpdateOne is the builder for updating a single LearnerSettings entity.
type LearnerSettingsUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerSettingsMutation
}

// SetNativeLanguage sets the "native_language" field.
func (_u *LearnerSettingsUpdateOne) SetNativeLanguage(v string) *LearnerSettingsUpdateOne {
	_u.mutation.SetNativeLanguage(v)
	return _u
}

// SetNillableNativeLanguage sets the "native_language" field if the given value is not nil.
func (_u *LearnerSettingsUpdateOne) SetNillableNativeLanguage(v *string) *LearnerSettingsUpdateOne {
	if v != nil {
		_u.SetNativeLanguage(*v)
	}
	return _u
}

// SetTargetLanguage sets the "target_language" field.
func (_u *LearnerSettingsUpdateOne) SetTargetLanguage(v string) *LearnerSettingsUpdateOne {
	_u.mutation.SetTargetLanguage(v)
	return _u
}

// SetNillableTargetLanguage sets the "target_language" field if the given value is not nil.
func (_u *LearnerSettingsUpdateOne) SetNillableTargetLanguage(v *string) *LearnerSettingsUpdateOne {
	if v != nil {
		_u.SetTargetLanguage(*v)
	}
	return _u
}

// SetDailyGoal sets the "daily_goal" field.
func (_u *LearnerSettingsUpdateOne) SetDailyGoal(v int) *LearnerSettingsUpdateOne {
	_u.mutation.ResetDailyGoal()
	_u.mutation.SetDailyGoal(v)
	return _u
}

// SetNillableDailyGoal sets the "daily_goal" field if the given value is not nil.
func (_u *LearnerSettingsUpdateOne) SetNillableDailyGoal(v *int) *LearnerSettingsUpdateOne {
	if v != nil {
		_u.SetDailyGoal(*v)
	}
	return _u
}

// AddDailyGoal adds value to the "daily_goal" field.
func (_u *LearnerSettingsUpdateOne) AddDailyGoal(v int) *LearnerSettingsUpdateOne {
	_u.mutation.AddDailyGoal(v)
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *LearnerSettingsUpdateOne) SetDailyMinutes(v int) *LearnerSettingsUpdateOne {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *LearnerSettingsUpdateOne) SetNillableDailyMinutes(v *int) *LearnerSettingsUpdateOne {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *LearnerSettingsUpdateOne) AddDailyMinutes(v int) *LearnerSettingsUpdateOne {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetWeeklyGoalSessions sets the "weekly_goal_sessions" field.
func (_u *LearnerSettingsUpdateOne) SetWeeklyGoalSessions(v int) *LearnerSettingsUpdateOne {
	_u.mutation.ResetWeeklyGoalSessions()
	_u.mutation.SetWeeklyGoalSessions(v)
	return _u
}

// SetNillableWeeklyGoalSessions sets the "weekly_goal_sessions" field if the given value is not nil.
func (_u *LearnerSettingsUpdateOne) SetNillableWeeklyGoalSessions(v *int) *LearnerSettingsUpdateOne {
	if v != nil {
		_u.SetWeeklyGoalSessions(*v)
	}
	return _u
}

// AddWeeklyGoalSessions adds value to the "weekly_goal_sessions" field.
func (_u *LearnerSettingsUpdateOne) AddWeeklyGoalSessions(v int) *LearnerSettingsUpdateOne {
	_u.mutation.AddWeeklyGoalSessions(v)
	return _u
}

// SetSelfRatedLevel sets the "self_rated_level" field.
func (_u *LearnerSettingsUpdateOne) SetSelfRatedLevel(v string) *LearnerSettingsUpdateOne {
	_u.mutation.SetSelfRatedLevel(v)
	return _u
}

// SetNillableSelfRatedLevel sets the "self_rated_level" field if the given value is not nil.
func (_u *LearnerSettingsUpdateOne) SetNillableSelfRatedLevel(v *string) *LearnerSettingsUpdateOne {
	if v != nil {
		_u.SetSelfRatedLevel(*v)
	}
	return _u
}

// SetLearnerName sets the "learner_name" field.
func (_u *LearnerSettingsUpdateOne) SetLearnerName(v string) *LearnerSettingsUpdateOne {
	_u.mutation.SetLearnerName(v)
	return _u
}

// SetNillableLearnerName sets the "learner_name" field if the given value is not nil.
func (_u *LearnerSettingsUpdateOne) SetNillableLearnerName(v *string) *LearnerSettingsUpdateOne {
	if v != nil {
		_u.SetLearnerName(*v)
	}
	return _u
}

// SetLearnerBio sets the "learner_bio" field.
func (_u *LearnerSettingsUpdateOne) SetLearnerBio(v string) *LearnerSettingsUpdateOne {
	_u.mutation.SetLearnerBio(v)
	return _u
}

// SetNillableLearnerBio sets the "learner_bio" field if the given value is not nil.
func (_u *LearnerSettingsUpdateOne) SetNillableLearnerBio(v *string) *LearnerSettingsUpdateOne {
	if v != nil {
		_u.SetLearnerBio(*v)
	}
	return _u
}

// SetFocusArea sets the "focus_area" field.
func (_u *LearnerSettingsUpdateOne) SetFocusArea(v string) *LearnerSettingsUpdateOne {
	_u.mutation.SetFocusArea(v)
	return _u
}

// SetNillableFocusArea sets the "focus_area" field if the given value is not nil.
func (_u *LearnerSettingsUpdateOne) SetNillableFocusArea(v *string) *LearnerSettingsUpdateOne {
	if v != nil {
		_u.SetFocusArea(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerSettingsUpdateOne) SetUpdatedAt(v time.Time) *LearnerSettingsUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *LearnerSettingsUpdateOne) SetNillableUpdatedAt(v *time.Time) *LearnerSettingsUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the LearnerSettingsMutation object of the builder.
func (_u *LearnerSettingsUpdateOne) Mutation() *LearnerSettingsMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerSettingsUpdate builder.
func (_u *LearnerSettingsUpdateOne) Where(ps ...predicate.LearnerSettings) *LearnerSettingsUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerSettingsUpdateOne) Select(field string, fields ...string) *LearnerSettingsUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerSettings entity.
func (_u *LearnerSettingsUpdateOne) Save(ctx context.Context) (*LearnerSettings, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerSettingsUpdateOne) SaveX(ctx context.Context) *LearnerSettings {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerSettingsUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerSettingsUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LearnerSettingsUpdateOne) sqlSave(ctx context.Context) (_node *LearnerSettings, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnersettings.Table, learnersettings.Columns, sqlgraph.NewFieldSpec(learnersettings.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerSettings.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnersettings.FieldID)
		for _, f := range fields {
			if !learnersettings.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnersettings.FieldID {
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
	if value, ok := _u.mutation.NativeLanguage(); ok {
		_spec.SetField(learnersettings.FieldNativeLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetLanguage(); ok {
		_spec.SetField(learnersettings.FieldTargetLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DailyGoal(); ok {
		_spec.SetField(learnersettings.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyGoal(); ok {
		_spec.AddField(learnersettings.FieldDailyGoal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(learnersettings.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(learnersettings.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeeklyGoalSessions(); ok {
		_spec.SetField(learnersettings.FieldWeeklyGoalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeeklyGoalSessions(); ok {
		_spec.AddField(learnersettings.FieldWeeklyGoalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SelfRatedLevel(); ok {
		_spec.SetField(learnersettings.FieldSelfRatedLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerName(); ok {
		_spec.SetField(learnersettings.FieldLearnerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerBio(); ok {
		_spec.SetField(learnersettings.FieldLearnerBio, field.TypeString, value)
	}
	if value, ok := _u.mutation.FocusArea(); ok {
		_spec.SetField(learnersettings.FieldFocusArea, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnersettings.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearnerSettings{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnersettings.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
