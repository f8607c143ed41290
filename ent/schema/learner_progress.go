package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// LearnerProgress holds the cross-category totals of a learner.
type LearnerProgress struct {
	ent.Schema
}

func (LearnerProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Unique().
			Immutable(),
		field.Int("total_xp").
			Default(0),
		field.Int("streak_days").
			Default(0),
		field.Int("hearts").
			Default(5),
		field.Int("learner_level").
			Default(1),
		field.Time("last_completed").
			Optional().
			Nillable().
			Comment("UTC day of the last completed session"),
	}
}
