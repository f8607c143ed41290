// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDifficultyLevel holds the string denoting the difficulty_level field in the database.
	FieldDifficultyLevel = "difficulty_level"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldMaxScore holds the string denoting the max_score field in the database.
	FieldMaxScore = "max_score"
	// FieldMistakes holds the string denoting the mistakes field in the database.
	FieldMistakes = "mistakes"
	// FieldHintsUsed holds the string denoting the hints_used field in the database.
	FieldHintsUsed = "hints_used"
	// FieldRevealedAnswers holds the string denoting the revealed_answers field in the database.
	FieldRevealedAnswers = "revealed_answers"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldXpGained holds the string denoting the xp_gained field in the database.
	FieldXpGained = "xp_gained"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldTimestamp,
	FieldLearnerID,
	FieldLanguage,
	FieldCategory,
	FieldSessionID,
	FieldDifficultyLevel,
	FieldScore,
	FieldMaxScore,
	FieldMistakes,
	FieldHintsUsed,
	FieldRevealedAnswers,
	FieldAccuracy,
	FieldXpGained,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	LanguageValidator func(string) error
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultDifficultyLevel holds the default value on creation for the "difficulty_level" field.
	DefaultDifficultyLevel string
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultMaxScore holds the default value on creation for the "max_score" field.
	DefaultMaxScore int
	// DefaultMistakes holds the default value on creation for the "mistakes" field.
	DefaultMistakes int
	// DefaultHintsUsed holds the default value on creation for the "hints_used" field.
	DefaultHintsUsed int
	// DefaultRevealedAnswers holds the default value on creation for the "revealed_answers" field.
	DefaultRevealedAnswers int
	// DefaultAccuracy holds the default value on creation for the "accuracy" field.
	DefaultAccuracy float64
	// DefaultXpGained holds the default value on creation for the "xp_gained" field.
	DefaultXpGained int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDifficultyLevel orders the results by the difficulty_level field.
func ByDifficultyLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyLevel, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByMaxScore orders the results by the max_score field.
func ByMaxScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxScore, opts...).ToFunc()
}

// ByMistakes orders the results by the mistakes field.
func ByMistakes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMistakes, opts...).ToFunc()
}

// ByHintsUsed orders the results by the hints_used field.
func ByHintsUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintsUsed, opts...).ToFunc()
}

// ByRevealedAnswers orders the results by the revealed_answers field.
func ByRevealedAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevealedAnswers, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByXpGained orders the results by the xp_gained field.
func ByXpGained(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpGained, opts...).ToFunc()
}
