package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// EventMixin provides the base fields shared by the append-only history
// tables. Rows are ordered by timestamp, then by id.
type EventMixin struct {
	mixin.Schema
}

func (EventMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the event"),
		field.String("learner_id").
			NotEmpty().
			Immutable(),
		field.String("language").
			NotEmpty().
			Immutable(),
		field.String("category").
			NotEmpty().
			Immutable(),
	}
}

func (EventMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("learner_id", "language", "category"),
	}
}
