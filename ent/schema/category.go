package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Category is a topical grouping of slang words, used for filtering
// and for display styling (badge glyph + color keyed by slug).
type Category struct {
	ent.Schema
}

func (Category) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Display name, e.g. 网络游戏"),
		field.String("slug").
			NotEmpty().
			Unique().
			Comment("English filter key, e.g. gaming"),
	}
}

func (Category) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("words", Word.Type),
	}
}
