// Code generated by ent, DO NOT EDIT.

package word

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the word type in the database.
	Label = "word"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHanzi holds the string denoting the hanzi field in the database.
	FieldHanzi = "hanzi"
	// FieldPinyin holds the string denoting the pinyin field in the database.
	FieldPinyin = "pinyin"
	// FieldMeaning holds the string denoting the meaning field in the database.
	FieldMeaning = "meaning"
	// FieldBackground holds the string denoting the background field in the database.
	FieldBackground = "background"
	// FieldOriginYear holds the string denoting the origin_year field in the database.
	FieldOriginYear = "origin_year"
	// FieldOriginMonth holds the string denoting the origin_month field in the database.
	FieldOriginMonth = "origin_month"
	// FieldPopularity holds the string denoting the popularity field in the database.
	FieldPopularity = "popularity"
	// EdgeCategory holds the string denoting the category edge name in mutations.
	EdgeCategory = "category"
	// EdgeSentences holds the string denoting the sentences edge name in mutations.
	EdgeSentences = "sentences"
	// Table holds the table name of the word in the database.
	Table = "words"
	// CategoryTable is the table that holds the category relation/edge.
	CategoryTable = "words"
	// CategoryInverseTable is the table name for the Category entity.
	// It exists in this package in order to avoid circular dependency with the "category" package.
	CategoryInverseTable = "categories"
	// CategoryColumn is the table column denoting the category relation/edge.
	CategoryColumn = "category_words"
	// SentencesTable is the table that holds the sentences relation/edge.
	SentencesTable = "sentences"
	// SentencesInverseTable is the table name for the Sentence entity.
	// It exists in this package in order to avoid circular dependency with the "sentence" package.
	SentencesInverseTable = "sentences"
	// SentencesColumn is the table column denoting the sentences relation/edge.
	SentencesColumn = "word_sentences"
)

// Columns holds all SQL columns for word fields.
var Columns = []string{
	FieldID,
	FieldHanzi,
	FieldPinyin,
	FieldMeaning,
	FieldBackground,
	FieldOriginYear,
	FieldOriginMonth,
	FieldPopularity,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "words"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"category_words",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// HanziValidator is a validator for the "hanzi" field. It is called by the builders before save.
	HanziValidator func(string) error
	// PinyinValidator is a validator for the "pinyin" field. It is called by the builders before save.
	PinyinValidator func(string) error
	// MeaningValidator is a validator for the "meaning" field. It is called by the builders before save.
	MeaningValidator func(string) error
	// DefaultBackground holds the default value on creation for the "background" field.
	DefaultBackground string
	// DefaultOriginYear holds the default value on creation for the "origin_year" field.
	DefaultOriginYear int
	// DefaultOriginMonth holds the default value on creation for the "origin_month" field.
	DefaultOriginMonth int
	// DefaultPopularity holds the default value on creation for the "popularity" field.
	DefaultPopularity int
)

// OrderOption defines the ordering options for the Word queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHanzi orders the results by the hanzi field.
func ByHanzi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHanzi, opts...).ToFunc()
}

// ByPinyin orders the results by the pinyin field.
func ByPinyin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPinyin, opts...).ToFunc()
}

// ByMeaning orders the results by the meaning field.
func ByMeaning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeaning, opts...).ToFunc()
}

// ByBackground orders the results by the background field.
func ByBackground(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBackground, opts...).ToFunc()
}

// ByOriginYear orders the results by the origin_year field.
func ByOriginYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginYear, opts...).ToFunc()
}

// ByOriginMonth orders the results by the origin_month field.
func ByOriginMonth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginMonth, opts...).ToFunc()
}

// ByPopularity orders the results by the popularity field.
func ByPopularity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPopularity, opts...).ToFunc()
}

// ByCategoryField orders the results by category field.
func ByCategoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCategoryStep(), sql.OrderByField(field, opts...))
	}
}

// BySentencesCount orders the results by sentences count.
func BySentencesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSentencesStep(), opts...)
	}
}

// BySentences orders the results by sentences terms.
func BySentences(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSentencesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCategoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CategoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CategoryTable, CategoryColumn),
	)
}
func newSentencesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SentencesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SentencesTable, SentencesColumn),
	)
}
