// Code generated by ent, DO NOT EDIT.

package sentence

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the sentence type in the database.
	Label = "sentence"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldZh holds the string denoting the zh field in the database.
	FieldZh = "zh"
	// FieldEn holds the string denoting the en field in the database.
	FieldEn = "en"
	// FieldDisplayOrder holds the string denoting the display_order field in the database.
	FieldDisplayOrder = "display_order"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// EdgeWord holds the string denoting the word edge name in mutations.
	EdgeWord = "word"
	// Table holds the table name of the sentence in the database.
	Table = "sentences"
	// WordTable is the table that holds the word relation/edge.
	WordTable = "sentences"
	// WordInverseTable is the table name for the Word entity.
	// It exists in this package in order to avoid circular dependency with the "word" package.
	WordInverseTable = "words"
	// WordColumn is the table column denoting the word relation/edge.
	WordColumn = "word_sentences"
)

// Columns holds all SQL columns for sentence fields.
var Columns = []string{
	FieldID,
	FieldZh,
	FieldEn,
	FieldDisplayOrder,
	FieldNote,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "sentences"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"word_sentences",
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
	// ZhValidator is a validator for the "zh" field. It is called by the builders before save.
	ZhValidator func(string) error
	// EnValidator is a validator for the "en" field. It is called by the builders before save.
	EnValidator func(string) error
	// DefaultDisplayOrder holds the default value on creation for the "display_order" field.
	DefaultDisplayOrder int
	// DefaultNote holds the default value on creation for the "note" field.
	DefaultNote string
)

// OrderOption defines the ordering options for the Sentence queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByZh orders the results by the zh field.
func ByZh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldZh, opts...).ToFunc()
}

// ByEn orders the results by the en field.
func ByEn(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEn, opts...).ToFunc()
}

// ByDisplayOrder orders the results by the display_order field.
func ByDisplayOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayOrder, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByWordField orders the results by word field.
func ByWordField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWordStep(), sql.OrderByField(field, opts...))
	}
}
func newWordStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WordInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WordTable, WordColumn),
	)
}
