// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/sentence"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/word"
)

// Sentence is the model entity for the Sentence schema.
type Sentence struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Source-language example text
	Zh string `json:"zh,omitempty"`
	// English translation
	En string `json:"en,omitempty"`
	// Order within the owning word
	DisplayOrder int `json:"display_order,omitempty"`
	// Optional grammar annotation
	Note string `json:"note,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SentenceQuery when eager-loading is set.
	Edges          SentenceEdges `json:"edges"`
	word_sentences *int
	selectValues   sql.SelectValues
}

// SentenceEdges holds the relations/edges for other nodes in the graph.
type SentenceEdges struct {
	// Word holds the value of the word edge.
	Word *Word `json:"word,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// WordOrErr returns the Word value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SentenceEdges) WordOrErr() (*Word, error) {
	if e.Word != nil {
		return e.Word, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: word.Label}
	}
	return nil, &NotLoadedError{edge: "word"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Sentence) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sentence.FieldID, sentence.FieldDisplayOrder:
			values[i] = new(sql.NullInt64)
		case sentence.FieldZh, sentence.FieldEn, sentence.FieldNote:
			values[i] = new(sql.NullString)
		case sentence.ForeignKeys[0]: // word_sentences
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Sentence fields.
func (_m *Sentence) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sentence.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sentence.FieldZh:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field zh", values[i])
			} else if value.Valid {
				_m.Zh = value.String
			}
		case sentence.FieldEn:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field en", values[i])
			} else if value.Valid {
				_m.En = value.String
			}
		case sentence.FieldDisplayOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field display_order", values[i])
			} else if value.Valid {
				_m.DisplayOrder = int(value.Int64)
			}
		case sentence.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				_m.Note = value.String
			}
		case sentence.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field word_sentences", value)
			} else if value.Valid {
				_m.word_sentences = new(int)
				*_m.word_sentences = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Sentence.
// This includes values selected through modifiers, order, etc.
func (_m *Sentence) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryWord queries the "word" edge of the Sentence entity.
func (_m *Sentence) QueryWord() *WordQuery {
	return NewSentenceClient(_m.config).QueryWord(_m)
}

// Update returns a builder for updating this Sentence.
// Note that you need to call Sentence.Unwrap() before calling this method if this Sentence
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Sentence) Update() *SentenceUpdateOne {
	return NewSentenceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Sentence entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Sentence) Unwrap() *Sentence {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Sentence is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Sentence) String() string {
	var builder strings.Builder
	builder.WriteString("Sentence(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("zh=")
	builder.WriteString(_m.Zh)
	builder.WriteString(", ")
	builder.WriteString("en=")
	builder.WriteString(_m.En)
	builder.WriteString(", ")
	builder.WriteString("display_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.DisplayOrder))
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(_m.Note)
	builder.WriteByte(')')
	return builder.String()
}

// Sentences is a parsable slice of Sentence.
type Sentences []*Sentence
