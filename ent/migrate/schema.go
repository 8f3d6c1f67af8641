// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString, Unique: true},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// PracticeEventsColumns holds the columns for the "practice_events" table.
	PracticeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "items_seen", Type: field.TypeInt, Default: 0},
		{Name: "completed", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// PracticeEventsTable holds the schema information for the "practice_events" table.
	PracticeEventsTable = &schema.Table{
		Name:       "practice_events",
		Columns:    PracticeEventsColumns,
		PrimaryKey: []*schema.Column{PracticeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[6]},
			},
			{
				Name:    "practiceevent_mode",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[2]},
			},
		},
	}
	// SentencesColumns holds the columns for the "sentences" table.
	SentencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "zh", Type: field.TypeString, Size: 2147483647},
		{Name: "en", Type: field.TypeString, Size: 2147483647},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "note", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "word_sentences", Type: field.TypeInt},
	}
	// SentencesTable holds the schema information for the "sentences" table.
	SentencesTable = &schema.Table{
		Name:       "sentences",
		Columns:    SentencesColumns,
		PrimaryKey: []*schema.Column{SentencesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sentences_words_sentences",
				Columns:    []*schema.Column{SentencesColumns[5]},
				RefColumns: []*schema.Column{WordsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "sentence_display_order",
				Unique:  false,
				Columns: []*schema.Column{SentencesColumns[3]},
			},
		},
	}
	// WordsColumns holds the columns for the "words" table.
	WordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "hanzi", Type: field.TypeString},
		{Name: "pinyin", Type: field.TypeString},
		{Name: "meaning", Type: field.TypeString},
		{Name: "background", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "origin_year", Type: field.TypeInt, Default: 0},
		{Name: "origin_month", Type: field.TypeInt, Default: 0},
		{Name: "popularity", Type: field.TypeInt, Default: 0},
		{Name: "category_words", Type: field.TypeInt},
	}
	// WordsTable holds the schema information for the "words" table.
	WordsTable = &schema.Table{
		Name:       "words",
		Columns:    WordsColumns,
		PrimaryKey: []*schema.Column{WordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "words_categories_words",
				Columns:    []*schema.Column{WordsColumns[8]},
				RefColumns: []*schema.Column{CategoriesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "word_popularity",
				Unique:  false,
				Columns: []*schema.Column{WordsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		PracticeEventsTable,
		SentencesTable,
		WordsTable,
	}
)

func init() {
	SentencesTable.ForeignKeys[0].RefTable = WordsTable
	WordsTable.ForeignKeys[0].RefTable = CategoriesTable
}
