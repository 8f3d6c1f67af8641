// Code generated by ent, DO NOT EDIT.

package sentence

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldID, id))
}

// Zh applies equality check predicate on the "zh" field. It's identical to ZhEQ.
func Zh(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldZh, v))
}

// En applies equality check predicate on the "en" field. It's identical to EnEQ.
func En(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldEn, v))
}

// DisplayOrder applies equality check predicate on the "display_order" field. It's identical to DisplayOrderEQ.
func DisplayOrder(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldDisplayOrder, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldNote, v))
}

// ZhEQ applies the EQ predicate on the "zh" field.
func ZhEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldZh, v))
}

// ZhNEQ applies the NEQ predicate on the "zh" field.
func ZhNEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldZh, v))
}

// ZhIn applies the In predicate on the "zh" field.
func ZhIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldZh, vs...))
}

// ZhNotIn applies the NotIn predicate on the "zh" field.
func ZhNotIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldZh, vs...))
}

// ZhGT applies the GT predicate on the "zh" field.
func ZhGT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldZh, v))
}

// ZhGTE applies the GTE predicate on the "zh" field.
func ZhGTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldZh, v))
}

// ZhLT applies the LT predicate on the "zh" field.
func ZhLT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldZh, v))
}

// ZhLTE applies the LTE predicate on the "zh" field.
func ZhLTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldZh, v))
}

// ZhContains applies the Contains predicate on the "zh" field.
func ZhContains(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContains(FieldZh, v))
}

// ZhHasPrefix applies the HasPrefix predicate on the "zh" field.
func ZhHasPrefix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasPrefix(FieldZh, v))
}

// ZhHasSuffix applies the HasSuffix predicate on the "zh" field.
func ZhHasSuffix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasSuffix(FieldZh, v))
}

// ZhEqualFold applies the EqualFold predicate on the "zh" field.
func ZhEqualFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEqualFold(FieldZh, v))
}

// ZhContainsFold applies the ContainsFold predicate on the "zh" field.
func ZhContainsFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContainsFold(FieldZh, v))
}

// EnEQ applies the EQ predicate on the "en" field.
func EnEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldEn, v))
}

// EnNEQ applies the NEQ predicate on the "en" field.
func EnNEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldEn, v))
}

// EnIn applies the In predicate on the "en" field.
func EnIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldEn, vs...))
}

// EnNotIn applies the NotIn predicate on the "en" field.
func EnNotIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldEn, vs...))
}

// EnGT applies the GT predicate on the "en" field.
func EnGT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldEn, v))
}

// EnGTE applies the GTE predicate on the "en" field.
func EnGTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldEn, v))
}

// EnLT applies the LT predicate on the "en" field.
func EnLT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldEn, v))
}

// EnLTE applies the LTE predicate on the "en" field.
func EnLTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldEn, v))
}

// EnContains applies the Contains predicate on the "en" field.
func EnContains(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContains(FieldEn, v))
}

// EnHasPrefix applies the HasPrefix predicate on the "en" field.
func EnHasPrefix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasPrefix(FieldEn, v))
}

// EnHasSuffix applies the HasSuffix predicate on the "en" field.
func EnHasSuffix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasSuffix(FieldEn, v))
}

// EnEqualFold applies the EqualFold predicate on the "en" field.
func EnEqualFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEqualFold(FieldEn, v))
}

// EnContainsFold applies the ContainsFold predicate on the "en" field.
func EnContainsFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContainsFold(FieldEn, v))
}

// DisplayOrderEQ applies the EQ predicate on the "display_order" field.
func DisplayOrderEQ(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldDisplayOrder, v))
}

// DisplayOrderNEQ applies the NEQ predicate on the "display_order" field.
func DisplayOrderNEQ(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldDisplayOrder, v))
}

// DisplayOrderIn applies the In predicate on the "display_order" field.
func DisplayOrderIn(vs ...int) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldDisplayOrder, vs...))
}

// DisplayOrderNotIn applies the NotIn predicate on the "display_order" field.
func DisplayOrderNotIn(vs ...int) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldDisplayOrder, vs...))
}

// DisplayOrderGT applies the GT predicate on the "display_order" field.
func DisplayOrderGT(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldDisplayOrder, v))
}

// DisplayOrderGTE applies the GTE predicate on the "display_order" field.
func DisplayOrderGTE(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldDisplayOrder, v))
}

// DisplayOrderLT applies the LT predicate on the "display_order" field.
func DisplayOrderLT(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldDisplayOrder, v))
}

// DisplayOrderLTE applies the LTE predicate on the "display_order" field.
func DisplayOrderLTE(v int) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldDisplayOrder, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.Sentence {
	return predicate.Sentence(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldHasSuffix(FieldNote, v))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.Sentence {
	return predicate.Sentence(sql.FieldContainsFold(FieldNote, v))
}

// HasWord applies the HasEdge predicate on the "word" edge.
func HasWord() predicate.Sentence {
	return predicate.Sentence(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, WordTable, WordColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWordWith applies the HasEdge predicate on the "word" edge with a given conditions (other predicates).
func HasWordWith(preds ...predicate.Word) predicate.Sentence {
	return predicate.Sentence(func(s *sql.Selector) {
		step := newWordStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sentence) predicate.Sentence {
	return predicate.Sentence(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sentence) predicate.Sentence {
	return predicate.Sentence(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sentence) predicate.Sentence {
	return predicate.Sentence(sql.NotPredicates(p))
}
