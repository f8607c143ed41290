// Code generated by ent, DO NOT EDIT.

package categoryprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the categoryprogress type in the database.
	Label = "category_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldTotalAnswers holds the string denoting the total_answers field in the database.
	FieldTotalAnswers = "total_answers"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldLevelUnlocked holds the string denoting the level_unlocked field in the database.
	FieldLevelUnlocked = "level_unlocked"
	// FieldLastPracticedAt holds the string denoting the last_practiced_at field in the database.
	FieldLastPracticedAt = "last_practiced_at"
	// Table holds the table name of the categoryprogress in the database.
	Table = "category_progresses"
)

// Columns holds all SQL columns for categoryprogress fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldLanguage,
	FieldCategory,
	FieldMastery,
	FieldAttempts,
	FieldTotalAnswers,
	FieldCorrectAnswers,
	FieldLevelUnlocked,
	FieldLastPracticedAt,
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
	// LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	LanguageValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultMastery holds the default value on creation for the "mastery" field.
	DefaultMastery float64
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultTotalAnswers holds the default value on creation for the "total_answers" field.
	DefaultTotalAnswers int
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// DefaultLevelUnlocked holds the default value on creation for the "level_unlocked" field.
	DefaultLevelUnlocked string
)

// OrderOption defines the ordering options for the CategoryProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByTotalAnswers orders the results by the total_answers field.
func ByTotalAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAnswers, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByLevelUnlocked orders the results by the level_unlocked field.
func ByLevelUnlocked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevelUnlocked, opts...).ToFunc()
}

// ByLastPracticedAt orders the results by the last_practiced_at field.
func ByLastPracticedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPracticedAt, opts...).ToFunc()
}
