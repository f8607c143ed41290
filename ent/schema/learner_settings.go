package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LearnerSettings holds learner preferences.
type LearnerSettings struct {
	ent.Schema
}

func (LearnerSettings) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("native_language").
			Default("english"),
		field.String("target_language").
			Default("spanish"),
		field.Int("daily_goal").
			Default(30),
		field.Int("daily_minutes").
			Default(20),
		field.Int("weekly_goal_sessions").
			Default(5),
		field.String("self_rated_level").
			Default("a1"),
		field.String("learner_name").
			Default("Learner"),
		field.String("learner_bio").
			Default(""),
		field.String("focus_area").
			Default(""),
		field.Time("updated_at").
			Default(time.Now),
	}
}
