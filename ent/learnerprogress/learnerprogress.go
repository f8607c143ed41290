// Code generated by ent, DO NOT EDIT.

package learnerprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnerprogress type in the database.
	Label = "learner_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldTotalXp holds the string denoting the total_xp field in the database.
	FieldTotalXp = "total_xp"
	// FieldStreakDays holds the string denoting the streak_days field in the database.
	FieldStreakDays = "streak_days"
	// FieldHearts holds the string denoting the hearts field in the database.
	FieldHearts = "hearts"
	// FieldLearnerLevel holds the string denoting the learner_level field in the database.
	FieldLearnerLevel = "learner_level"
	// FieldLastCompleted holds the string denoting the last_completed field in the database.
	FieldLastCompleted = "last_completed"
	// Table holds the table name of the learnerprogress in the database.
	Table = "learner_progresses"
)

// Columns holds all SQL columns for learnerprogress fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldTotalXp,
	FieldStreakDays,
	FieldHearts,
	FieldLearnerLevel,
	FieldLastCompleted,
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
	// DefaultTotalXp holds the default value on creation for the "total_xp" field.
	DefaultTotalXp int
	// DefaultStreakDays holds the default value on creation for the "streak_days" field.
	DefaultStreakDays int
	// DefaultHearts holds the default value on creation for the "hearts" field.
	DefaultHearts int
	// DefaultLearnerLevel holds the default value on creation for the "learner_level" field.
	DefaultLearnerLevel int
)

// OrderOption defines the ordering options for the LearnerProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByTotalXp orders the results by the total_xp field.
func ByTotalXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalXp, opts...).ToFunc()
}

// ByStreakDays orders the results by the streak_days field.
func ByStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakDays, opts...).ToFunc()
}

// ByHearts orders the results by the hearts field.
func ByHearts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHearts, opts...).ToFunc()
}

// ByLearnerLevel orders the results by the learner_level field.
func ByLearnerLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerLevel, opts...).ToFunc()
}

// ByLastCompleted orders the results by the last_completed field.
func ByLastCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastCompleted, opts...).ToFunc()
}
