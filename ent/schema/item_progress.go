package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ItemProgress is the review schedule of one item for one learner.
type ItemProgress struct {
	ent.Schema
}

func (ItemProgress) Fields() []ent.Field {
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
		field.String("item_id").
			NotEmpty().
			Immutable(),
		field.String("objective").
			Default(""),
		field.Float("ease").
			Default(1.8).
			Comment("Interval growth factor in [1.3, 2.5]"),
		field.Int("streak").
			Default(0),
		field.Int("attempts").
			Default(0),
		field.Int("correct").
			Default(0),
		field.Int("error_count").
			Default(0),
		field.String("last_error_type").
			Default(""),
		field.Time("last_seen").
			Optional().
			Nillable(),
		field.Time("next_due").
			Optional().
			Nillable(),
	}
}

func (ItemProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "language", "category", "item_id").
			Unique(),
	}
}
