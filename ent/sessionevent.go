// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingoflow/ent/sessionevent"
)

// SessionEvent is the model entity for the SessionEvent schema.
type SessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Category holds the value of the "category" field.
	Category string `json:"category,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// DifficultyLevel holds the value of the "difficulty_level" field.
	DifficultyLevel string `json:"difficulty_level,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// Effective max score used for accuracy and XP
	MaxScore int `json:"max_score,omitempty"`
	// Mistakes holds the value of the "mistakes" field.
	Mistakes int `json:"mistakes,omitempty"`
	// HintsUsed holds the value of the "hints_used" field.
	HintsUsed int `json:"hints_used,omitempty"`
	// RevealedAnswers holds the value of the "revealed_answers" field.
	RevealedAnswers int `json:"revealed_answers,omitempty"`
	// score / max_score in [0,1]
	Accuracy float64 `json:"accuracy,omitempty"`
	// XpGained holds the value of the "xp_gained" field.
	XpGained     int `json:"xp_gained,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case sessionevent.FieldID, sessionevent.FieldScore, sessionevent.FieldMaxScore, sessionevent.FieldMistakes, sessionevent.FieldHintsUsed, sessionevent.FieldRevealedAnswers, sessionevent.FieldXpGained:
			values[i] = new(sql.NullInt64)
		case sessionevent.FieldLearnerID, sessionevent.FieldLanguage, sessionevent.FieldCategory, sessionevent.FieldSessionID, sessionevent.FieldDifficultyLevel:
			values[i] = new(sql.NullString)
		case sessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionEvent fields.
func (_m *SessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sessionevent.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case sessionevent.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case sessionevent.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case sessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionevent.FieldDifficultyLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_level", values[i])
			} else if value.Valid {
				_m.DifficultyLevel = value.String
			}
		case sessionevent.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case sessionevent.FieldMaxScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_score", values[i])
			} else if value.Valid {
				_m.MaxScore = int(value.Int64)
			}
		case sessionevent.FieldMistakes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mistakes", values[i])
			} else if value.Valid {
				_m.Mistakes = int(value.Int64)
			}
		case sessionevent.FieldHintsUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hints_used", values[i])
			} else if value.Valid {
				_m.HintsUsed = int(value.Int64)
			}
		case sessionevent.FieldRevealedAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field revealed_answers", values[i])
			} else if value.Valid {
				_m.RevealedAnswers = int(value.Int64)
			}
		case sessionevent.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = value.Float64
			}
		case sessionevent.FieldXpGained:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_gained", values[i])
			} else if value.Valid {
				_m.XpGained = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *SessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionEvent.
// Note that you need to call SessionEvent.Unwrap() before calling this method if this SessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionEvent) Update() *SessionEventUpdateOne {
	return NewSessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionEvent) Unwrap() *SessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SessionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("difficulty_level=")
	builder.WriteString(_m.DifficultyLevel)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("max_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxScore))
	builder.WriteString(", ")
	builder.WriteString("mistakes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mistakes))
	builder.WriteString(", ")
	builder.WriteString("hints_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintsUsed))
	builder.WriteString(", ")
	builder.WriteString("revealed_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.RevealedAnswers))
	builder.WriteString(", ")
	builder.WriteString("accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.Accuracy))
	builder.WriteString(", ")
	builder.WriteString("xp_gained=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpGained))
	builder.WriteByte(')')
	return builder.String()
}

// SessionEvents is a parsable slice of SessionEvent.
type SessionEvents []*SessionEvent
