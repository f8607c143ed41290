// Code generated by ent, DO NOT EDIT.

package itemprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the itemprogress type in the database.
	Label = "item_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldItemID holds the string denoting the item_id field in the database.
	FieldItemID = "item_id"
	// FieldObjective holds the string denoting the objective field in the database.
	FieldObjective = "objective"
	// FieldEase holds the string denoting the ease field in the database.
	FieldEase = "ease"
	// FieldStreak holds the string denoting the streak field in the database.
	FieldStreak = "streak"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldErrorCount holds the string denoting the error_count field in the database.
	FieldErrorCount = "error_count"
	// FieldLastErrorType holds the string denoting the last_error_type field in the database.
	FieldLastErrorType = "last_error_type"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldNextDue holds the string denoting the next_due field in the database.
	FieldNextDue = "next_due"
	// Table holds the table name of the itemprogress in the database.
	Table = "item_progresses"
)

// Columns holds all SQL columns for itemprogress fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldLanguage,
	FieldCategory,
	FieldItemID,
	FieldObjective,
	FieldEase,
	FieldStreak,
	FieldAttempts,
	FieldCorrect,
	FieldErrorCount,
	FieldLastErrorType,
	FieldLastSeen,
	FieldNextDue,
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
	// ItemIDValidator is a validator for the "item_id" field. It is called by the builders before save.
	ItemIDValidator func(string) error
	// DefaultObjective holds the default value on creation for the "objective" field.
	DefaultObjective string
	// DefaultEase holds the default value on creation for the "ease" field.
	DefaultEase float64
	// DefaultStreak holds the default value on creation for the "streak" field.
	DefaultStreak int
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultCorrect holds the default value on creation for the "correct" field.
	DefaultCorrect int
	// DefaultErrorCount holds the default value on creation for the "error_count" field.
	DefaultErrorCount int
	// DefaultLastErrorType holds the default value on creation for the "last_error_type" field.
	DefaultLastErrorType string
)

// OrderOption defines the ordering options for the ItemProgress queries.
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

// ByItemID orders the results by the item_id field.
func ByItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemID, opts...).ToFunc()
}

// ByObjective orders the results by the objective field.
func ByObjective(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObjective, opts...).ToFunc()
}

// ByEase orders the results by the ease field.
func ByEase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEase, opts...).ToFunc()
}

// ByStreak orders the results by the streak field.
func ByStreak(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreak, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByErrorCount orders the results by the error_count field.
func ByErrorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCount, opts...).ToFunc()
}

// ByLastErrorType orders the results by the last_error_type field.
func ByLastErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastErrorType, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByNextDue orders the results by the next_due field.
func ByNextDue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextDue, opts...).ToFunc()
}
