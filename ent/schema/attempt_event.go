package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one evaluated answer of a completed session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable(),
		field.String("item_id").
			NotEmpty(),
		field.String("objective").
			Default(""),
		field.String("question_type").
			Default(""),
		field.Bool("correct"),
		field.String("error_type").
			Default("none"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("learner_id", "correct", "timestamp"),
	}
}
