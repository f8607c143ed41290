// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/categoryprogress"
)

// CategoryProgress is the model entity for the CategoryProgress schema.
type CategoryProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// 0-100
	Mastery float64 `json:"mastery,omitempty"`
	// Completed sessions
	Attempts int `json:"attempts,omitempty"`
	// TotalAnswers holds the value of the "total_answers" field.
	TotalAnswers int `json:"total_answers,omitempty"`
	// CorrectAnswers holds the value of the "correct_answers" field.
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// LevelUnlocked holds the value of the "level_unlocked" field.
	LevelUnlocked string `json:"level_unlocked,omitempty"`
	// LastPracticedAt holds the value of the "last_practiced_at" field.
	LastPracticedAt *time.Time `json:"last_practiced_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CategoryProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case categoryprogress.FieldMastery:
			values[i] = new(sql.NullFloat64)
		case categoryprogress.FieldID, categoryprogress.FieldAttempts, categoryprogress.FieldTotalAnswers, categoryprogress.FieldCorrectAnswers:
			values[i] = new(sql.NullInt64)
		case categoryprogress.FieldLearnerID, categoryprogress.FieldLanguage, categoryprogress.FieldCategory, categoryprogress.FieldLevelUnlocked:
			values[i] = new(sql.NullString)
		case categoryprogress.FieldLastPracticedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CategoryProgress fields.
func (_m *CategoryProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case categoryprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case categoryprogress.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case categoryprogress.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case categoryprogress.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case categoryprogress.FieldMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = value.Float64
			}
		case categoryprogress.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case categoryprogress.FieldTotalAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_answers", values[i])
			} else if value.Valid {
				_m.TotalAnswers = int(value.Int64)
			}
		case categoryprogress.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				_m.CorrectAnswers = int(value.Int64)
			}
		case categoryprogress.FieldLevelUnlocked:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level_unlocked", values[i])
			} else if value.Valid {
				_m.LevelUnlocked = value.String
			}
		case categoryprogress.FieldLastPracticedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_practiced_at", values[i])
			} else if value.Valid {
				_m.LastPracticedAt = new(time.Time)
				*_m.LastPracticedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CategoryProgress.
// This includes values selected through modifiers, order, etc.
func (_m *CategoryProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CategoryProgress.
// Note that you need to call CategoryProgress.Unwrap() before calling this method if this CategoryProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CategoryProgress) Update() *CategoryProgressUpdateOne {
	return NewCategoryProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CategoryProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CategoryProgress) Unwrap() *CategoryProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CategoryProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CategoryProgress) String() string {
	var builder strings.Builder
	builder.WriteString("CategoryProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastery))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("total_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalAnswers))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("level_unlocked=")
	builder.WriteString(_m.LevelUnlocked)
	builder.WriteString(", ")
	if v := _m.LastPracticedAt; v != nil {
		builder.WriteString("last_practiced_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// CategoryProgresses is a parsable slice of CategoryProgress.
type CategoryProgresses []*CategoryProgress
