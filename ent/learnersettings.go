// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/learnersettings"
)

// LearnerSettings is the model entity for the LearnerSettings schema.
type LearnerSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// NativeLanguage holds the value of the "native_language" field.
	NativeLanguage string `json:"native_language,omitempty"`
	// TargetLanguage holds the value of the "target_language" field.
	TargetLanguage string `json:"target_language,omitempty"`
	// DailyGoal holds the value of the "daily_goal" field.
	DailyGoal int `json:"daily_goal,omitempty"`
	// DailyMinutes holds the value of the "daily_minutes" field.
	DailyMinutes int `json:"daily_minutes,omitempty"`
	// WeeklyGoalSessions holds the value of the "weekly_goal_sessions" field.
	WeeklyGoalSessions int `json:"weekly_goal_sessions,omitempty"`
	// SelfRatedLevel holds the value of the "self_rated_level" field.
	SelfRatedLevel string `json:"self_rated_level,omitempty"`
	// LearnerName holds the value of the "learner_name" field.
	LearnerName string `json:"learner_name,omitempty"`
	// LearnerBio holds the value of the "learner_bio" field.
	LearnerBio string `json:"learner_bio,omitempty"`
	// FocusArea holds the value of the "focus_area" field.
	FocusArea string `json:"focus_area,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnersettings.FieldID, learnersettings.FieldDailyGoal, learnersettings.FieldDailyMinutes, learnersettings.FieldWeeklyGoalSessions:
			values[i] = new(sql.NullInt64)
		case learnersettings.FieldLearnerID, learnersettings.FieldNativeLanguage, learnersettings.FieldTargetLanguage, learnersettings.FieldSelfRatedLevel, learnersettings.FieldLearnerName, learnersettings.FieldLearnerBio, learnersettings.FieldFocusArea:
			values[i] = new(sql.NullString)
		case learnersettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerSettings fields.
func (_m *LearnerSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnersettings.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnersettings.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case learnersettings.FieldNativeLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field native_language", values[i])
			} else if value.Valid {
				_m.NativeLanguage = value.String
			}
		case learnersettings.FieldTargetLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_language", values[i])
			} else if value.Valid {
				_m.TargetLanguage = value.String
			}
		case learnersettings.FieldDailyGoal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_goal", values[i])
			} else if value.Valid {
				_m.DailyGoal = int(value.Int64)
			}
		case learnersettings.FieldDailyMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_minutes", values[i])
			} else if value.Valid {
				_m.DailyMinutes = int(value.Int64)
			}
		case learnersettings.FieldWeeklyGoalSessions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weekly_goal_sessions", values[i])
			} else if value.Valid {
				_m.WeeklyGoalSessions = int(value.Int64)
			}
		case learnersettings.FieldSelfRatedLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field self_rated_level", values[i])
			} else if value.Valid {
				_m.SelfRatedLevel = value.String
			}
		case learnersettings.FieldLearnerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_name", values[i])
			} else if value.Valid {
				_m.LearnerName = value.String
			}
		case learnersettings.FieldLearnerBio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_bio", values[i])
			} else if value.Valid {
				_m.LearnerBio = value.String
			}
		case learnersettings.FieldFocusArea:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field focus_area", values[i])
			} else if value.Valid {
				_m.FocusArea = value.String
			}
		case learnersettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerSettings.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerSettings) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerSettings.
// Note that you need to call LearnerSettings.Unwrap() before calling this method if this LearnerSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerSettings) Update() *LearnerSettingsUpdateOne {
	return NewLearnerSettingsClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerSettings) Unwrap() *LearnerSettings {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerSettings is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerSettings) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("native_language=")
	builder.WriteString(_m.NativeLanguage)
	builder.WriteString(", ")
	builder.WriteString("target_language=")
	builder.WriteString(_m.TargetLanguage)
	builder.WriteString(", ")
	builder.WriteString("daily_goal=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyGoal))
	builder.WriteString(", ")
	builder.WriteString("daily_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyMinutes))
	builder.WriteString(", ")
	builder.WriteString("weekly_goal_sessions=")
	builder.WriteString(fmt.Sprintf("%v", _m.WeeklyGoalSessions))
	builder.WriteString(", ")
	builder.WriteString("self_rated_level=")
	builder.WriteString(_m.SelfRatedLevel)
	builder.WriteString(", ")
	builder.WriteString("learner_name=")
	builder.WriteString(_m.LearnerName)
	builder.WriteString(", ")
	builder.WriteString("learner_bio=")
	builder.WriteString(_m.LearnerBio)
	builder.WriteString(", ")
	builder.WriteString("focus_area=")
	builder.WriteString(_m.FocusArea)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnerSettingsSlice is a parsable slice of LearnerSettings.
type LearnerSettingsSlice []*LearnerSettings
