package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeEvent is an append-only record of a finished study or drill
// session, written when the learner leaves the screen.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Immutable().
			Comment("UUID of the session"),
		field.String("mode").
			NotEmpty().
			Comment("study or drill"),
		field.Int("items_seen").
			Default(0).
			Comment("Cards shown during the session"),
		field.Int("completed").
			Default(0).
			Comment("Sentences marked done (drill only)"),
		field.Int("duration_secs").
			Default(0),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (PracticeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("mode"),
	}
}
