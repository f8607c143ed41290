package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one completed practice session.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.String("difficulty_level").
			Default("a1"),
		field.Int("score").
			Default(0),
		field.Int("max_score").
			Default(0).
			Comment("Effective max score used for accuracy and XP"),
		field.Int("mistakes").
			Default(0),
		field.Int("hints_used").
			Default(0),
		field.Int("revealed_answers").
			Default(0),
		field.Float("accuracy").
			Default(0).
			Comment("score / max_score in [0,1]"),
		field.Int("xp_gained").
			Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "timestamp"),
	}
}
