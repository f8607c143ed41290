// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/learnerprogress"
)

// LearnerProgress is the model entity for the LearnerProgress schema.
type LearnerProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// TotalXp holds the value of the "total_xp" field.
	TotalXp int `json:"total_xp,omitempty"`
	// StreakDays holds the value of the "streak_days" field.
	StreakDays int `json:"streak_days,omitempty"`
	// Hearts holds the value of the "hearts" field.
	Hearts int `json:"hearts,omitempty"`
	// LearnerLevel holds the value of the "learner_level" field.
	LearnerLevel int `json:"learner_level,omitempty"`
	// UTC day of the last completed session
	LastCompleted *time.Time `json:"last_completed,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnerprogress.FieldID, learnerprogress.FieldTotalXp, learnerprogress.FieldStreakDays, learnerprogress.FieldHearts, learnerprogress.FieldLearnerLevel:
			values[i] = new(sql.NullInt64)
		case learnerprogress.FieldLearnerID:
			values[i] = new(sql.NullString)
		case learnerprogress.FieldLastCompleted:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerProgress fields.
func (_m *LearnerProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnerprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnerprogress.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case learnerprogress.FieldTotalXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_xp", values[i])
			} else if value.Valid {
				_m.TotalXp = int(value.Int64)
			}
		case learnerprogress.FieldStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_days", values[i])
			} else if value.Valid {
				_m.StreakDays = int(value.Int64)
			}
		case learnerprogress.FieldHearts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hearts", values[i])
			} else if value.Valid {
				_m.Hearts = int(value.Int64)
			}
		case learnerprogress.FieldLearnerLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field learner_level", values[i])
			} else if value.Valid {
				_m.LearnerLevel = int(value.Int64)
			}
		case learnerprogress.FieldLastCompleted:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_completed", values[i])
			} else if value.Valid {
				_m.LastCompleted = new(time.Time)
				*_m.LastCompleted = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerProgress.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerProgress.
// Note that you need to call LearnerProgress.Unwrap() before calling this method if this LearnerProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerProgress) Update() *LearnerProgressUpdateOne {
	return NewLearnerProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerProgress) Unwrap() *LearnerProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerProgress) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("total_xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalXp))
	builder.WriteString(", ")
	builder.WriteString("streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakDays))
	builder.WriteString(", ")
	builder.WriteString("hearts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Hearts))
	builder.WriteString(", ")
	builder.WriteString("learner_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearnerLevel))
	builder.WriteString(", ")
	if v := _m.LastCompleted; v != nil {
		builder.WriteString("last_completed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// LearnerProgresses is a parsable slice of LearnerProgress.
type LearnerProgresses []*LearnerProgress
