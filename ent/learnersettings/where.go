// Code generated by ent, DO NOT EDIT.

package learnersettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldLearnerID, v))
}

// NativeLanguage applies equality check predicate on the "native_language" field. It's identical to NativeLanguageEQ.
func NativeLanguage(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldNativeLanguage, v))
}

// TargetLanguage applies equality check predicate on the "target_language" field. It's identical to TargetLanguageEQ.
func TargetLanguage(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldTargetLanguage, v))
}

// DailyGoal applies equality check predicate on the "daily_goal" field. It's identical to DailyGoalEQ.
func DailyGoal(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldDailyGoal, v))
}

// DailyMinutes applies equality check predicate on the "daily_minutes" field. It's identical to DailyMinutesEQ.
func DailyMinutes(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldDailyMinutes, v))
}

// WeeklyGoalSessions applies equality check predicate on the "weekly_goal_sessions" field. It's identical to WeeklyGoalSessionsEQ.
func WeeklyGoalSessions(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldWeeklyGoalSessions, v))
}

// SelfRatedLevel applies equality check predicate on the "self_rated_level" field. It's identical to SelfRatedLevelEQ.
func SelfRatedLevel(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldSelfRatedLevel, v))
}

// LearnerName applies equality check predicate on the "learner_name" field. It's identical to LearnerNameEQ.
func LearnerName(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldLearnerName, v))
}

// LearnerBio applies equality check predicate on the "learner_bio" field. It's identical to LearnerBioEQ.
func LearnerBio(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldLearnerBio, v))
}

// FocusArea applies equality check predicate on the "focus_area" field. It's identical to FocusAreaEQ.
func FocusArea(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldFocusArea, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContainsFold(FieldLearnerID, v))
}

// NativeLanguageEQ applies the EQ predicate on the "native_language" field.
func NativeLanguageEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldNativeLanguage, v))
}

// NativeLanguageNEQ applies the NEQ predicate on the "native_language" field.
func NativeLanguageNEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldNativeLanguage, v))
}

// NativeLanguageIn applies the In predicate on the "native_language" field.
func NativeLanguageIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldNativeLanguage, vs...))
}

// NativeLanguageNotIn applies the NotIn predicate on the "native_language" field.
func NativeLanguageNotIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldNativeLanguage, vs...))
}

// NativeLanguageGT applies the GT predicate on the "native_language" field.
func NativeLanguageGT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldNativeLanguage, v))
}

// NativeLanguageGTE applies the GTE predicate on the "native_language" field.
func NativeLanguageGTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldNativeLanguage, v))
}

// NativeLanguageLT applies the LT predicate on the "native_language" field.
func NativeLanguageLT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldNativeLanguage, v))
}

// NativeLanguageLTE applies the LTE predicate on the "native_language" field.
func NativeLanguageLTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldNativeLanguage, v))
}

// NativeLanguageContains applies the Contains predicate on the "native_language" field.
func NativeLanguageContains(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContains(FieldNativeLanguage, v))
}

// NativeLanguageHasPrefix applies the HasPrefix predicate on the "native_language" field.
func NativeLanguageHasPrefix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasPrefix(FieldNativeLanguage, v))
}

// NativeLanguageHasSuffix applies the HasSuffix predicate on the "native_language" field.
func NativeLanguageHasSuffix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasSuffix(FieldNativeLanguage, v))
}

// NativeLanguageEqualFold applies the EqualFold predicate on the "native_language" field.
func NativeLanguageEqualFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEqualFold(FieldNativeLanguage, v))
}

// NativeLanguageContainsFold applies the ContainsFold predicate on the "native_language" field.
func NativeLanguageContainsFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContainsFold(FieldNativeLanguage, v))
}

// TargetLanguageEQ applies the EQ predicate on the "target_language" field.
func TargetLanguageEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldTargetLanguage, v))
}

// TargetLanguageNEQ applies the NEQ predicate on the "target_language" field.
func TargetLanguageNEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldTargetLanguage, v))
}

// TargetLanguageIn applies the In predicate on the "target_language" field.
func TargetLanguageIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldTargetLanguage, vs...))
}

// TargetLanguageNotIn applies the NotIn predicate on the "target_language" field.
func TargetLanguageNotIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldTargetLanguage, vs...))
}

// TargetLanguageGT applies the GT predicate on the "target_language" field.
func TargetLanguageGT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldTargetLanguage, v))
}

// TargetLanguageGTE applies the GTE predicate on the "target_language" field.
func TargetLanguageGTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldTargetLanguage, v))
}

// TargetLanguageLT applies the LT predicate on the "target_language" field.
func TargetLanguageLT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldTargetLanguage, v))
}

// TargetLanguageLTE applies the LTE predicate on the "target_language" field.
func TargetLanguageLTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldTargetLanguage, v))
}

// TargetLanguageContains applies the Contains predicate on the "target_language" field.
func TargetLanguageContains(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContains(FieldTargetLanguage, v))
}

// TargetLanguageHasPrefix applies the HasPrefix predicate on the "target_language" field.
func TargetLanguageHasPrefix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasPrefix(FieldTargetLanguage, v))
}

// TargetLanguageHasSuffix applies the HasSuffix predicate on the "target_language" field.
func TargetLanguageHasSuffix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasSuffix(FieldTargetLanguage, v))
}

// TargetLanguageEqualFold applies the EqualFold predicate on the "target_language" field.
func TargetLanguageEqualFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEqualFold(FieldTargetLanguage, v))
}

// TargetLanguageContainsFold applies the ContainsFold predicate on the "target_language" field.
func TargetLanguageContainsFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContainsFold(FieldTargetLanguage, v))
}

// DailyGoalEQ applies the EQ predicate on the "daily_goal" field.
func DailyGoalEQ(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldDailyGoal, v))
}

// DailyGoalNEQ applies the NEQ predicate on the "daily_goal" field.
func DailyGoalNEQ(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldDailyGoal, v))
}

// DailyGoalIn applies the In predicate on the "daily_goal" field.
func DailyGoalIn(vs ...int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldDailyGoal, vs...))
}

// DailyGoalNotIn applies the NotIn predicate on the "daily_goal" field.
func DailyGoalNotIn(vs ...int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldDailyGoal, vs...))
}

// DailyGoalGT applies the GT predicate on the "daily_goal" field.
func DailyGoalGT(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldDailyGoal, v))
}

// DailyGoalGTE applies the GTE predicate on the "daily_goal" field.
func DailyGoalGTE(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldDailyGoal, v))
}

// DailyGoalLT applies the LT predicate on the "daily_goal" field.
func DailyGoalLT(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldDailyGoal, v))
}

// DailyGoalLTE applies the LTE predicate on the "daily_goal" field.
func DailyGoalLTE(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldDailyGoal, v))
}

// DailyMinutesEQ applies the EQ predicate on the "daily_minutes" field.
func DailyMinutesEQ(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldDailyMinutes, v))
}

// DailyMinutesNEQ applies the NEQ predicate on the "daily_minutes" field.
func DailyMinutesNEQ(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldDailyMinutes, v))
}

// DailyMinutesIn applies the In predicate on the "daily_minutes" field.
func DailyMinutesIn(vs ...int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldDailyMinutes, vs...))
}

// DailyMinutesNotIn applies the NotIn predicate on the "daily_minutes" field.
func DailyMinutesNotIn(vs ...int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldDailyMinutes, vs...))
}

// DailyMinutesGT applies the GT predicate on the "daily_minutes" field.
func DailyMinutesGT(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldDailyMinutes, v))
}

// DailyMinutesGTE applies the GTE predicate on the "daily_minutes" field.
func DailyMinutesGTE(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldDailyMinutes, v))
}

// DailyMinutesLT applies the LT predicate on the "daily_minutes" field.
func DailyMinutesLT(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldDailyMinutes, v))
}

// DailyMinutesLTE applies the LTE predicate on the "daily_minutes" field.
func DailyMinutesLTE(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldDailyMinutes, v))
}

// WeeklyGoalSessionsEQ applies the EQ predicate on the "weekly_goal_sessions" field.
func WeeklyGoalSessionsEQ(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldWeeklyGoalSessions, v))
}

// WeeklyGoalSessionsNEQ applies the NEQ predicate on the "weekly_goal_sessions" field.
func WeeklyGoalSessionsNEQ(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldWeeklyGoalSessions, v))
}

// WeeklyGoalSessionsIn applies the In predicate on the "weekly_goal_sessions" field.
func WeeklyGoalSessionsIn(vs ...int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldWeeklyGoalSessions, vs...))
}

// WeeklyGoalSessionsNotIn applies the NotIn predicate on the "weekly_goal_sessions" field.
func WeeklyGoalSessionsNotIn(vs ...int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldWeeklyGoalSessions, vs...))
}

// WeeklyGoalSessionsGT applies the GT predicate on the "weekly_goal_sessions" field.
func WeeklyGoalSessionsGT(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldWeeklyGoalSessions, v))
}

// WeeklyGoalSessionsGTE applies the GTE predicate on the "weekly_goal_sessions" field.
func WeeklyGoalSessionsGTE(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldWeeklyGoalSessions, v))
}

// WeeklyGoalSessionsLT applies the LT predicate on the "weekly_goal_sessions" field.
func WeeklyGoalSessionsLT(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldWeeklyGoalSessions, v))
}

// WeeklyGoalSessionsLTE applies the LTE predicate on the "weekly_goal_sessions" field.
func WeeklyGoalSessionsLTE(v int) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldWeeklyGoalSessions, v))
}

// SelfRatedLevelEQ applies the EQ predicate on the "self_rated_level" field.
func SelfRatedLevelEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldSelfRatedLevel, v))
}

// SelfRatedLevelNEQ applies the NEQ predicate on the "self_rated_level" field.
func SelfRatedLevelNEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldSelfRatedLevel, v))
}

// SelfRatedLevelIn applies the In predicate on the "self_rated_level" field.
func SelfRatedLevelIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldSelfRatedLevel, vs...))
}

// SelfRatedLevelNotIn applies the NotIn predicate on the "self_rated_level" field.
func SelfRatedLevelNotIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldSelfRatedLevel, vs...))
}

// SelfRatedLevelGT applies the GT predicate on the "self_rated_level" field.
func SelfRatedLevelGT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldSelfRatedLevel, v))
}

// SelfRatedLevelGTE applies the GTE predicate on the "self_rated_level" field.
func SelfRatedLevelGTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldSelfRatedLevel, v))
}

// SelfRatedLevelLT applies the LT predicate on the "self_rated_level" field.
func SelfRatedLevelLT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldSelfRatedLevel, v))
}

// SelfRatedLevelLTE applies the LTE predicate on the "self_rated_level" field.
func SelfRatedLevelLTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldSelfRatedLevel, v))
}

// SelfRatedLevelContains applies the Contains predicate on the "self_rated_level" field.
func SelfRatedLevelContains(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContains(FieldSelfRatedLevel, v))
}

// SelfRatedLevelHasPrefix applies the HasPrefix predicate on the "self_rated_level" field.
func SelfRatedLevelHasPrefix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasPrefix(FieldSelfRatedLevel, v))
}

// SelfRatedLevelHasSuffix applies the HasSuffix predicate on the "self_rated_level" field.
func SelfRatedLevelHasSuffix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasSuffix(FieldSelfRatedLevel, v))
}

// SelfRatedLevelEqualFold applies the EqualFold predicate on the "self_rated_level" field.
func SelfRatedLevelEqualFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEqualFold(FieldSelfRatedLevel, v))
}

// SelfRatedLevelContainsFold applies the ContainsFold predicate on the "self_rated_level" field.
func SelfRatedLevelContainsFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContainsFold(FieldSelfRatedLevel, v))
}

// LearnerNameEQ applies the EQ predicate on the "learner_name" field.
func LearnerNameEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldLearnerName, v))
}

// LearnerNameNEQ applies the NEQ predicate on the "learner_name" field.
func LearnerNameNEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldLearnerName, v))
}

// LearnerNameIn applies the In predicate on the "learner_name" field.
func LearnerNameIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldLearnerName, vs...))
}

// LearnerNameNotIn applies the NotIn predicate on the "learner_name" field.
func LearnerNameNotIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldLearnerName, vs...))
}

// LearnerNameGT applies the GT predicate on the "learner_name" field.
func LearnerNameGT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldLearnerName, v))
}

// LearnerNameGTE applies the GTE predicate on the "learner_name" field.
func LearnerNameGTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldLearnerName, v))
}

// LearnerNameLT applies the LT predicate on the "learner_name" field.
func LearnerNameLT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldLearnerName, v))
}

// LearnerNameLTE applies the LTE predicate on the "learner_name" field.
func LearnerNameLTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldLearnerName, v))
}

// LearnerNameContains applies the Contains predicate on the "learner_name" field.
func LearnerNameContains(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContains(FieldLearnerName, v))
}

// LearnerNameHasPrefix applies the HasPrefix predicate on the "learner_name" field.
func LearnerNameHasPrefix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasPrefix(FieldLearnerName, v))
}

// LearnerNameHasSuffix applies the HasSuffix predicate on the "learner_name" field.
func LearnerNameHasSuffix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasSuffix(FieldLearnerName, v))
}

// LearnerNameEqualFold applies the EqualFold predicate on the "learner_name" field.
func LearnerNameEqualFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEqualFold(FieldLearnerName, v))
}

// LearnerNameContainsFold applies the ContainsFold predicate on the "learner_name" field.
func LearnerNameContainsFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContainsFold(FieldLearnerName, v))
}

// LearnerBioEQ applies the EQ predicate on the "learner_bio" field.
func LearnerBioEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldLearnerBio, v))
}

// LearnerBioNEQ applies the NEQ predicate on the "learner_bio" field.
func LearnerBioNEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldLearnerBio, v))
}

// LearnerBioIn applies the In predicate on the "learner_bio" field.
func LearnerBioIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldLearnerBio, vs...))
}

// LearnerBioNotIn applies the NotIn predicate on the "learner_bio" field.
func LearnerBioNotIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldLearnerBio, vs...))
}

// LearnerBioGT applies the GT predicate on the "learner_bio" field.
func LearnerBioGT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldLearnerBio, v))
}

// LearnerBioGTE applies the GTE predicate on the "learner_bio" field.
func LearnerBioGTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldLearnerBio, v))
}

// LearnerBioLT applies the LT predicate on the "learner_bio" field.
func LearnerBioLT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldLearnerBio, v))
}

// LearnerBioLTE applies the LTE predicate on the "learner_bio" field.
func LearnerBioLTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldLearnerBio, v))
}

// LearnerBioContains applies the Contains predicate on the "learner_bio" field.
func LearnerBioContains(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContains(FieldLearnerBio, v))
}

// LearnerBioHasPrefix applies the HasPrefix predicate on the "learner_bio" field.
func LearnerBioHasPrefix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasPrefix(FieldLearnerBio, v))
}

// LearnerBioHasSuffix applies the HasSuffix predicate on the "learner_bio" field.
func LearnerBioHasSuffix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasSuffix(FieldLearnerBio, v))
}

// LearnerBioEqualFold applies the EqualFold predicate on the "learner_bio" field.
func LearnerBioEqualFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEqualFold(FieldLearnerBio, v))
}

// LearnerBioContainsFold applies the ContainsFold predicate on the "learner_bio" field.
func LearnerBioContainsFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContainsFold(FieldLearnerBio, v))
}

// FocusAreaEQ applies the EQ predicate on the "focus_area" field.
func FocusAreaEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldFocusArea, v))
}

// FocusAreaNEQ applies the NEQ predicate on the "focus_area" field.
func FocusAreaNEQ(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldFocusArea, v))
}

// FocusAreaIn applies the In predicate on the "focus_area" field.
func FocusAreaIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldFocusArea, vs...))
}

// FocusAreaNotIn applies the NotIn predicate on the "focus_area" field.
func FocusAreaNotIn(vs ...string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldFocusArea, vs...))
}

// FocusAreaGT applies the GT predicate on the "focus_area" field.
func FocusAreaGT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldFocusArea, v))
}

// FocusAreaGTE applies the GTE predicate on the "focus_area" field.
func FocusAreaGTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldFocusArea, v))
}

// FocusAreaLT applies the LT predicate on the "focus_area" field.
func FocusAreaLT(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldFocusArea, v))
}

// FocusAreaLTE applies the LTE predicate on the "focus_area" field.
func FocusAreaLTE(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldFocusArea, v))
}

// FocusAreaContains applies the Contains predicate on the "focus_area" field.
func FocusAreaContains(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContains(FieldFocusArea, v))
}

// FocusAreaHasPrefix applies the HasPrefix predicate on the "focus_area" field.
func FocusAreaHasPrefix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasPrefix(FieldFocusArea, v))
}

// FocusAreaHasSuffix applies the HasSuffix predicate on the "focus_area" field.
func FocusAreaHasSuffix(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldHasSuffix(FieldFocusArea, v))
}

// FocusAreaEqualFold applies the EqualFold predicate on the "focus_area" field.
func FocusAreaEqualFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEqualFold(FieldFocusArea, v))
}

// FocusAreaContainsFold applies the ContainsFold predicate on the "focus_area" field.
func FocusAreaContainsFold(v string) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldContainsFold(FieldFocusArea, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerSettings) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerSettings) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerSettings) predicate.LearnerSettings {
	return predicate.LearnerSettings(sql.NotPredicates(p))
}
