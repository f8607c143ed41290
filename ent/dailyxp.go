// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/dailyxp"
)

// DailyXP is the model entity for the DailyXP schema.
type DailyXP struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Midnight UTC
	Day time.Time `json:"day,omitempty"`
	// Xp holds the value of the "xp" field.
	Xp           int `json:"xp,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyXP) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailyxp.FieldID, dailyxp.FieldXp:
			values[i] = new(sql.NullInt64)
		case dailyxp.FieldLearnerID, dailyxp.FieldLanguage:
			values[i] = new(sql.NullString)
		case dailyxp.FieldDay:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyXP fields.
func (_m *DailyXP) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailyxp.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case dailyxp.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case dailyxp.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case dailyxp.FieldDay:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field day", values[i])
			} else if value.Valid {
				_m.Day = value.Time
			}
		case dailyxp.FieldXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp", values[i])
			} else if value.Valid {
				_m.Xp = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyXP.
// This includes values selected through modifiers, order, etc.
func (_m *DailyXP) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DailyXP.
// Note that you need to call DailyXP.Unwrap() before calling this method if this DailyXP
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyXP) Update() *DailyXPUpdateOne {
	return NewDailyXPClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyXP entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyXP) Unwrap() *DailyXP {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyXP is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyXP) String() string {
	var builder strings.Builder
	builder.WriteString("DailyXP(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("day=")
	builder.WriteString(_m.Day.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Xp))
	builder.WriteByte(')')
	return builder.String()
}

// DailyXPs is a parsable slice of DailyXP.
type DailyXPs []*DailyXP
