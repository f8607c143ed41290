package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DailyXP is the additive XP ledger per learner, language and UTC day.
type DailyXP struct {
	ent.Schema
}

func (DailyXP) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("language").
			NotEmpty().
			Immutable(),
		field.Time("day").
			Immutable().
			Comment("Midnight UTC"),
		field.Int("xp").
			Default(0).
			NonNegative(),
	}
}

func (DailyXP) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "language", "day").
			Unique(),
	}
}
