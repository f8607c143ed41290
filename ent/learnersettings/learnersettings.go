// Code generated by ent, DO NOT EDIT.

package learnersettings

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnersettings type in the database.
	Label = "learner_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldNativeLanguage holds the string denoting the native_language field in the database.
	FieldNativeLanguage = "native_language"
	// FieldTargetLanguage holds the string denoting the target_language field in the database.
	FieldTargetLanguage = "target_language"
	// FieldDailyGoal holds the string denoting the daily_goal field in the database.
	FieldDailyGoal = "daily_goal"
	// FieldDailyMinutes holds the string denoting the daily_minutes field in the database.
	FieldDailyMinutes = "daily_minutes"
	// FieldWeeklyGoalSessions holds the string denoting the weekly_goal_sessions field in the database.
	FieldWeeklyGoalSessions = "weekly_goal_sessions"
	// FieldSelfRatedLevel holds the string denoting the self_rated_level field in the database.
	FieldSelfRatedLevel = "self_rated_level"
	// FieldLearnerName holds the string denoting the learner_name field in the database.
	FieldLearnerName = "learner_name"
	// FieldLearnerBio holds the string denoting the learner_bio field in the database.
	FieldLearnerBio = "learner_bio"
	// FieldFocusArea holds the string denoting the focus_area field in the database.
	FieldFocusArea = "focus_area"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learnersettings in the database.
	Table = "learner_settings"
)

// Columns holds all SQL columns for learnersettings fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldNativeLanguage,
	FieldTargetLanguage,
	FieldDailyGoal,
	FieldDailyMinutes,
	FieldWeeklyGoalSessions,
	FieldSelfRatedLevel,
	FieldLearnerName,
	FieldLearnerBio,
	FieldFocusArea,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultNativeLanguage holds the default value on creation for the "native_language" field.
	DefaultNativeLanguage string
	// DefaultTargetLanguage holds the default value on creation for the "target_language" field.
	DefaultTargetLanguage string
	// DefaultDailyGoal holds the default value on creation for the "daily_goal" field.
	DefaultDailyGoal int
	// DefaultDailyMinutes holds the default value on creation for the "daily_minutes" field.
	DefaultDailyMinutes int
	// DefaultWeeklyGoalSessions holds the default value on creation for the "weekly_goal_sessions" field.
	DefaultWeeklyGoalSessions int
	// DefaultSelfRatedLevel holds the default value on creation for the "self_rated_level" field.
	DefaultSelfRatedLevel string
	// DefaultLearnerName holds the default value on creation for the "learner_name" field.
	DefaultLearnerName string
	// DefaultLearnerBio holds the default value on creation for the "learner_bio" field.
	DefaultLearnerBio string
	// DefaultFocusArea holds the default value on creation for the "focus_area" field.
	DefaultFocusArea string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearnerSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByNativeLanguage orders the results by the native_language field.
func ByNativeLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNativeLanguage, opts...).ToFunc()
}

// ByTargetLanguage orders the results by the target_language field.
func ByTargetLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetLanguage, opts...).ToFunc()
}

// ByDailyGoal orders the results by the daily_goal field.
func ByDailyGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyGoal, opts...).ToFunc()
}

// ByDailyMinutes orders the results by the daily_minutes field.
func ByDailyMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyMinutes, opts...).ToFunc()
}

// ByWeeklyGoalSessions orders the results by the weekly_goal_sessions field.
func ByWeeklyGoalSessions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeeklyGoalSessions, opts...).ToFunc()
}

// BySelfRatedLevel orders the results by the self_rated_level field.
func BySelfRatedLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSelfRatedLevel, opts...).ToFunc()
}

// ByLearnerName orders the results by the learner_name field.
func ByLearnerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerName, opts...).ToFunc()
}

// ByLearnerBio orders the results by the learner_bio field.
func ByLearnerBio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerBio, opts...).ToFunc()
}

// ByFocusArea orders the results by the focus_area field.
func ByFocusArea(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocusArea, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
