// Code generated by ent, DO NOT EDIT.

package word

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldID, id))
}

// Hanzi applies equality check predicate on the "hanzi" field. It's identical to HanziEQ.
func Hanzi(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldHanzi, v))
}

// Pinyin applies equality check predicate on the "pinyin" field. It's identical to PinyinEQ.
func Pinyin(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPinyin, v))
}

// Meaning applies equality check predicate on the "meaning" field. It's identical to MeaningEQ.
func Meaning(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldMeaning, v))
}

// Background applies equality check predicate on the "background" field. It's identical to BackgroundEQ.
func Background(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldBackground, v))
}

// OriginYear applies equality check predicate on the "origin_year" field. It's identical to OriginYearEQ.
func OriginYear(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldOriginYear, v))
}

// OriginMonth applies equality check predicate on the "origin_month" field. It's identical to OriginMonthEQ.
func OriginMonth(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldOriginMonth, v))
}

// Popularity applies equality check predicate on the "popularity" field. It's identical to PopularityEQ.
func Popularity(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPopularity, v))
}

// HanziEQ applies the EQ predicate on the "hanzi" field.
func HanziEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldHanzi, v))
}

// HanziNEQ applies the NEQ predicate on the "hanzi" field.
func HanziNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldHanzi, v))
}

// HanziIn applies the In predicate on the "hanzi" field.
func HanziIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldHanzi, vs...))
}

// HanziNotIn applies the NotIn predicate on the "hanzi" field.
func HanziNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldHanzi, vs...))
}

// HanziGT applies the GT predicate on the "hanzi" field.
func HanziGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldHanzi, v))
}

// HanziGTE applies the GTE predicate on the "hanzi" field.
func HanziGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldHanzi, v))
}

// HanziLT applies the LT predicate on the "hanzi" field.
func HanziLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldHanzi, v))
}

// HanziLTE applies the LTE predicate on the "hanzi" field.
func HanziLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldHanzi, v))
}

// HanziContains applies the Contains predicate on the "hanzi" field.
func HanziContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldHanzi, v))
}

// HanziHasPrefix applies the HasPrefix predicate on the "hanzi" field.
func HanziHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldHanzi, v))
}

// HanziHasSuffix applies the HasSuffix predicate on the "hanzi" field.
func HanziHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldHanzi, v))
}

// HanziEqualFold applies the EqualFold predicate on the "hanzi" field.
func HanziEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldHanzi, v))
}

// HanziContainsFold applies the ContainsFold predicate on the "hanzi" field.
func HanziContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldHanzi, v))
}

// PinyinEQ applies the EQ predicate on the "pinyin" field.
func PinyinEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPinyin, v))
}

// PinyinNEQ applies the NEQ predicate on the "pinyin" field.
func PinyinNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldPinyin, v))
}

// PinyinIn applies the In predicate on the "pinyin" field.
func PinyinIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldPinyin, vs...))
}

// PinyinNotIn applies the NotIn predicate on the "pinyin" field.
func PinyinNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldPinyin, vs...))
}

// PinyinGT applies the GT predicate on the "pinyin" field.
func PinyinGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldPinyin, v))
}

// PinyinGTE applies the GTE predicate on the "pinyin" field.
func PinyinGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldPinyin, v))
}

// PinyinLT applies the LT predicate on the "pinyin" field.
func PinyinLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldPinyin, v))
}

// PinyinLTE applies the LTE predicate on the "pinyin" field.
func PinyinLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldPinyin, v))
}

// PinyinContains applies the Contains predicate on the "pinyin" field.
func PinyinContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldPinyin, v))
}

// PinyinHasPrefix applies the HasPrefix predicate on the "pinyin" field.
func PinyinHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldPinyin, v))
}

// PinyinHasSuffix applies the HasSuffix predicate on the "pinyin" field.
func PinyinHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldPinyin, v))
}

// PinyinEqualFold applies the EqualFold predicate on the "pinyin" field.
func PinyinEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldPinyin, v))
}

// PinyinContainsFold applies the ContainsFold predicate on the "pinyin" field.
func PinyinContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldPinyin, v))
}

// MeaningEQ applies the EQ predicate on the "meaning" field.
func MeaningEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldMeaning, v))
}

// MeaningNEQ applies the NEQ predicate on the "meaning" field.
func MeaningNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldMeaning, v))
}

// MeaningIn applies the In predicate on the "meaning" field.
func MeaningIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldMeaning, vs...))
}

// MeaningNotIn applies the NotIn predicate on the "meaning" field.
func MeaningNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldMeaning, vs...))
}

// MeaningGT applies the GT predicate on the "meaning" field.
func MeaningGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldMeaning, v))
}

// MeaningGTE applies the GTE predicate on the "meaning" field.
func MeaningGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldMeaning, v))
}

// MeaningLT applies the LT predicate on the "meaning" field.
func MeaningLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldMeaning, v))
}

// MeaningLTE applies the LTE predicate on the "meaning" field.
func MeaningLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldMeaning, v))
}

// MeaningContains applies the Contains predicate on the "meaning" field.
func MeaningContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldMeaning, v))
}

// MeaningHasPrefix applies the HasPrefix predicate on the "meaning" field.
func MeaningHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldMeaning, v))
}

// MeaningHasSuffix applies the HasSuffix predicate on the "meaning" field.
func MeaningHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldMeaning, v))
}

// MeaningEqualFold applies the EqualFold predicate on the "meaning" field.
func MeaningEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldMeaning, v))
}

// MeaningContainsFold applies the ContainsFold predicate on the "meaning" field.
func MeaningContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldMeaning, v))
}

// BackgroundEQ applies the EQ predicate on the "background" field.
func BackgroundEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldBackground, v))
}

// BackgroundNEQ applies the NEQ predicate on the "background" field.
func BackgroundNEQ(v string) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldBackground, v))
}

// BackgroundIn applies the In predicate on the "background" field.
func BackgroundIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldBackground, vs...))
}

// BackgroundNotIn applies the NotIn predicate on the "background" field.
func BackgroundNotIn(vs ...string) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldBackground, vs...))
}

// BackgroundGT applies the GT predicate on the "background" field.
func BackgroundGT(v string) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldBackground, v))
}

// BackgroundGTE applies the GTE predicate on the "background" field.
func BackgroundGTE(v string) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldBackground, v))
}

// BackgroundLT applies the LT predicate on the "background" field.
func BackgroundLT(v string) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldBackground, v))
}

// BackgroundLTE applies the LTE predicate on the "background" field.
func BackgroundLTE(v string) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldBackground, v))
}

// BackgroundContains applies the Contains predicate on the "background" field.
func BackgroundContains(v string) predicate.Word {
	return predicate.Word(sql.FieldContains(FieldBackground, v))
}

// BackgroundHasPrefix applies the HasPrefix predicate on the "background" field.
func BackgroundHasPrefix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasPrefix(FieldBackground, v))
}

// BackgroundHasSuffix applies the HasSuffix predicate on the "background" field.
func BackgroundHasSuffix(v string) predicate.Word {
	return predicate.Word(sql.FieldHasSuffix(FieldBackground, v))
}

// BackgroundEqualFold applies the EqualFold predicate on the "background" field.
func BackgroundEqualFold(v string) predicate.Word {
	return predicate.Word(sql.FieldEqualFold(FieldBackground, v))
}

// BackgroundContainsFold applies the ContainsFold predicate on the "background" field.
func BackgroundContainsFold(v string) predicate.Word {
	return predicate.Word(sql.FieldContainsFold(FieldBackground, v))
}

// OriginYearEQ applies the EQ predicate on the "origin_year" field.
func OriginYearEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldOriginYear, v))
}

// OriginYearNEQ applies the NEQ predicate on the "origin_year" field.
func OriginYearNEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldOriginYear, v))
}

// OriginYearIn applies the In predicate on the "origin_year" field.
func OriginYearIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldOriginYear, vs...))
}

// OriginYearNotIn applies the NotIn predicate on the "origin_year" field.
func OriginYearNotIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldOriginYear, vs...))
}

// OriginYearGT applies the GT predicate on the "origin_year" field.
func OriginYearGT(v int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldOriginYear, v))
}

// OriginYearGTE applies the GTE predicate on the "origin_year" field.
func OriginYearGTE(v int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldOriginYear, v))
}

// OriginYearLT applies the LT predicate on the "origin_year" field.
func OriginYearLT(v int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldOriginYear, v))
}

// OriginYearLTE applies the LTE predicate on the "origin_year" field.
func OriginYearLTE(v int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldOriginYear, v))
}

// OriginMonthEQ applies the EQ predicate on the "origin_month" field.
func OriginMonthEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldOriginMonth, v))
}

// OriginMonthNEQ applies the NEQ predicate on the "origin_month" field.
func OriginMonthNEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldOriginMonth, v))
}

// OriginMonthIn applies the In predicate on the "origin_month" field.
func OriginMonthIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldOriginMonth, vs...))
}

// OriginMonthNotIn applies the NotIn predicate on the "origin_month" field.
func OriginMonthNotIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldOriginMonth, vs...))
}

// OriginMonthGT applies the GT predicate on the "origin_month" field.
func OriginMonthGT(v int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldOriginMonth, v))
}

// OriginMonthGTE applies the GTE predicate on the "origin_month" field.
func OriginMonthGTE(v int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldOriginMonth, v))
}

// OriginMonthLT applies the LT predicate on the "origin_month" field.
func OriginMonthLT(v int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldOriginMonth, v))
}

// OriginMonthLTE applies the LTE predicate on the "origin_month" field.
func OriginMonthLTE(v int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldOriginMonth, v))
}

// PopularityEQ applies the EQ predicate on the "popularity" field.
func PopularityEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldEQ(FieldPopularity, v))
}

// PopularityNEQ applies the NEQ predicate on the "popularity" field.
func PopularityNEQ(v int) predicate.Word {
	return predicate.Word(sql.FieldNEQ(FieldPopularity, v))
}

// PopularityIn applies the In predicate on the "popularity" field.
func PopularityIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldIn(FieldPopularity, vs...))
}

// PopularityNotIn applies the NotIn predicate on the "popularity" field.
func PopularityNotIn(vs ...int) predicate.Word {
	return predicate.Word(sql.FieldNotIn(FieldPopularity, vs...))
}

// PopularityGT applies the GT predicate on the "popularity" field.
func PopularityGT(v int) predicate.Word {
	return predicate.Word(sql.FieldGT(FieldPopularity, v))
}

// PopularityGTE applies the GTE predicate on the "popularity" field.
func PopularityGTE(v int) predicate.Word {
	return predicate.Word(sql.FieldGTE(FieldPopularity, v))
}

// PopularityLT applies the LT predicate on the "popularity" field.
func PopularityLT(v int) predicate.Word {
	return predicate.Word(sql.FieldLT(FieldPopularity, v))
}

// PopularityLTE applies the LTE predicate on the "popularity" field.
func PopularityLTE(v int) predicate.Word {
	return predicate.Word(sql.FieldLTE(FieldPopularity, v))
}

// HasCategory applies the HasEdge predicate on the "category" edge.
func HasCategory() predicate.Word {
	return predicate.Word(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCategoryWith applies the HasEdge predicate on the "category" edge with a given conditions (other predicates).
func HasCategoryWith(preds ...predicate.Category) predicate.Word {
	return predicate.Word(func(s *sql.Selector) {
		step := newCategoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSentences applies the HasEdge predicate on the "sentences" edge.
func HasSentences() predicate.Word {
	return predicate.Word(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SentencesTable, SentencesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSentencesWith applies the HasEdge predicate on the "sentences" edge with a given conditions (other predicates).
func HasSentencesWith(preds ...predicate.Sentence) predicate.Word {
	return predicate.Word(func(s *sql.Selector) {
		step := newSentencesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Word) predicate.Word {
	return predicate.Word(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Word) predicate.Word {
	return predicate.Word(sql.NotPredicates(p))
}
