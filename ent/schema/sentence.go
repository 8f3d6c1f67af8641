package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Sentence is an example usage tied to a word, shown on the detail
// screen and drilled in sentence practice.
type Sentence struct {
	ent.Schema
}

func (Sentence) Fields() []ent.Field {
	return []ent.Field{
		field.Text("zh").
			NotEmpty().
			Comment("Source-language example text"),
		field.Text("en").
			NotEmpty().
			Comment("English translation"),
		field.Int("display_order").
			Default(0).
			Comment("Order within the owning word"),
		field.Text("note").
			Default("").
			Comment("Optional grammar annotation"),
	}
}

func (Sentence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("word", Word.Type).
			Ref("sentences").
			Unique().
			Required(),
	}
}

func (Sentence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("display_order"),
	}
}
