package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActiveSession holds a generated question set until it is completed or
// expires.
type ActiveSession struct {
	ent.Schema
}

func (ActiveSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("language").
			NotEmpty().
			Immutable(),
		field.String("category").
			NotEmpty().
			Immutable(),
		field.String("difficulty_level").
			Immutable(),
		field.Bytes("payload").
			Immutable().
			Comment("Versioned, type-tagged question set"),
		field.Int("question_count").
			Immutable(),
		field.Time("expires_at").
			Immutable(),
		field.Bool("completed").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (ActiveSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "completed"),
		index.Fields("expires_at"),
	}
}
