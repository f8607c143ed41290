package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CategoryProgress is the mastery aggregate of a learner in one category.
type CategoryProgress struct {
	ent.Schema
}

func (CategoryProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("language").
			NotEmpty().
			Immutable(),
		field.String("category").
			NotEmpty().
			Immutable(),
		field.Float("mastery").
			Default(0).
			Comment("0-100"),
		field.Int("attempts").
			Default(0).
			Comment("Completed sessions"),
		field.Int("total_answers").
			Default(0),
		field.Int("correct_answers").
			Default(0),
		field.String("level_unlocked").
			Default("a1"),
		field.Time("last_practiced_at").
			Optional().
			Nillable(),
	}
}

func (CategoryProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "language", "category").
			Unique(),
	}
}
