package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Word is a single slang vocabulary entry. Words are loaded once per
// session and never mutated by the client.
type Word struct {
	ent.Schema
}

func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.String("hanzi").
			NotEmpty().
			Comment("Surface text of the term"),
		field.String("pinyin").
			NotEmpty().
			Comment("Pronunciation guide with tone marks"),
		field.String("meaning").
			NotEmpty().
			Comment("Short English meaning"),
		field.Text("background").
			Default("").
			Comment("Longer origin/background text"),
		field.Int("origin_year").
			Default(0).
			Comment("Year the term took off, 0 if unknown"),
		field.Int("origin_month").
			Default(0).
			Comment("Month of origin, 0 if unknown"),
		field.Int("popularity").
			Default(0).
			Comment("Popularity score, used only for sort order at the source"),
	}
}

func (Word) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("category", Category.Type).
			Ref("words").
			Unique().
			Required(),
		edge.To("sentences", Sentence.Type),
	}
}

func (Word) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("popularity"),
	}
}
