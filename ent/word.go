// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/category"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/word"
)

// Word is the model entity for the Word schema.
type Word struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Surface text of the term
	Hanzi string `json:"hanzi,omitempty"`
	// Pronunciation guide with tone marks
	Pinyin string `json:"pinyin,omitempty"`
	// Short English meaning
	Meaning string `json:"meaning,omitempty"`
	// Longer origin/background text
	Background string `json:"background,omitempty"`
	// Year the term took off, 0 if unknown
	OriginYear int `json:"origin_year,omitempty"`
	// Month of origin, 0 if unknown
	OriginMonth int `json:"origin_month,omitempty"`
	// Popularity score, used only for sort order at the source
	Popularity int `json:"popularity,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WordQuery when eager-loading is set.
	Edges          WordEdges `json:"edges"`
	category_words *int
	selectValues   sql.SelectValues
}

// WordEdges holds the relations/edges for other nodes in the graph.
type WordEdges struct {
	// Category holds the value of the category edge.
	Category *Category `json:"category,omitempty"`
	// Sentences holds the value of the sentences edge.
	Sentences []*Sentence `json:"sentences,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// CategoryOrErr returns the Category value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WordEdges) CategoryOrErr() (*Category, error) {
	if e.Category != nil {
		return e.Category, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: category.Label}
	}
	return nil, &NotLoadedError{edge: "category"}
}

// SentencesOrErr returns the Sentences value or an error if the edge
// was not loaded in eager-loading.
func (e WordEdges) SentencesOrErr() ([]*Sentence, error) {
	if e.loadedTypes[1] {
		return e.Sentences, nil
	}
	return nil, &NotLoadedError{edge: "sentences"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Word) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case word.FieldID, word.FieldOriginYear, word.FieldOriginMonth, word.FieldPopularity:
			values[i] = new(sql.NullInt64)
		case word.FieldHanzi, word.FieldPinyin, word.FieldMeaning, word.FieldBackground:
			values[i] = new(sql.NullString)
		case word.ForeignKeys[0]: // category_words
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Word fields.
func (_m *Word) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case word.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case word.FieldHanzi:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hanzi", values[i])
			} else if value.Valid {
				_m.Hanzi = value.String
			}
		case word.FieldPinyin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pinyin", values[i])
			} else if value.Valid {
				_m.Pinyin = value.String
			}
		case word.FieldMeaning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meaning", values[i])
			} else if value.Valid {
				_m.Meaning = value.String
			}
		case word.FieldBackground:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field background", values[i])
			} else if value.Valid {
				_m.Background = value.String
			}
		case word.FieldOriginYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field origin_year", values[i])
			} else if value.Valid {
				_m.OriginYear = int(value.Int64)
			}
		case word.FieldOriginMonth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field origin_month", values[i])
			} else if value.Valid {
				_m.OriginMonth = int(value.Int64)
			}
		case word.FieldPopularity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field popularity", values[i])
			} else if value.Valid {
				_m.Popularity = int(value.Int64)
			}
		case word.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field category_words", value)
			} else if value.Valid {
				_m.category_words = new(int)
				*_m.category_words = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Word.
// This includes values selected through modifiers, order, etc.
func (_m *Word) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCategory queries the "category" edge of the Word entity.
func (_m *Word) QueryCategory() *CategoryQuery {
	return NewWordClient(_m.config).QueryCategory(_m)
}

// QuerySentences queries the "sentences" edge of the Word entity.
func (_m *Word) QuerySentences() *SentenceQuery {
	return NewWordClient(_m.config).QuerySentences(_m)
}

// Update returns a builder for updating this Word.
// Note that you need to call Word.Unwrap() before calling this method if this Word
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Word) Update() *WordUpdateOne {
	return NewWordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Word entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Word) Unwrap() *Word {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Word is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Word) String() string {
	var builder strings.Builder
	builder.WriteString("Word(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("hanzi=")
	builder.WriteString(_m.Hanzi)
	builder.WriteString(", ")
	builder.WriteString("pinyin=")
	builder.WriteString(_m.Pinyin)
	builder.WriteString(", ")
	builder.WriteString("meaning=")
	builder.WriteString(_m.Meaning)
	builder.WriteString(", ")
	builder.WriteString("background=")
	builder.WriteString(_m.Background)
	builder.WriteString(", ")
	builder.WriteString("origin_year=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginYear))
	builder.WriteString(", ")
	builder.WriteString("origin_month=")
	builder.WriteString(fmt.Sprintf("%v", _m.OriginMonth))
	builder.WriteString(", ")
	builder.WriteString("popularity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Popularity))
	builder.WriteByte(')')
	return builder.String()
}

// Words is a parsable slice of Word.
type Words []*Word
