// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// PracticeEvent is the predicate function for practiceevent builders.
type PracticeEvent func(*sql.Selector)

// Sentence is the predicate function for sentence builders.
type Sentence func(*sql.Selector)

// Word is the predicate function for word builders.
type Word func(*sql.Selector)
