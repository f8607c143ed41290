// Code generated by ent, DO NOT EDIT.

package dailyxp

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the dailyxp type in the database.
	Label = "daily_xp"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldDay holds the string denoting the day field in the database.
	FieldDay = "day"
	// FieldXp holds the string denoting the xp field in the database.
	FieldXp = "xp"
	// Table holds the table name of the dailyxp in the database.
	Table = "daily_xps"
)

// Columns holds all SQL columns for dailyxp fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldLanguage,
	FieldDay,
	FieldXp,
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
	// DefaultXp holds the default value on creation for the "xp" field.
	DefaultXp int
	// XpValidator is a validator for the "xp" field. It is called by the builders before save.
	XpValidator func(int) error
)

// OrderOption defines the ordering options for the DailyXP queries.
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

// ByDay orders the results by the day field.
func ByDay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDay, opts...).ToFunc()
}

// ByXp orders the results by the xp field.
func ByXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXp, opts...).ToFunc()
}
