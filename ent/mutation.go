// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/category"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/practiceevent"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/predicate"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/sentence"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/word"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCategory      = "Category"
	TypePracticeEvent = "PracticeEvent"
	TypeSentence      = "Sentence"
	TypeWord          = "Word"
)

// CategoryMutation represents an operation that mutates the Category nodes in the graph.
type CategoryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	name          *string
	slug          *string
	clearedFields map[string]struct{}
	words         map[int]struct{}
	removedwords  map[int]struct{}
	clearedwords  bool
	done          bool
	oldValue      func(context.Context) (*Category, error)
	predicates    []predicate.Category
}

var _ ent.Mutation = (*CategoryMutation)(nil)

// categoryOption allows management of the mutation configuration using functional options.
type categoryOption func(*CategoryMutation)

// newCategoryMutation creates new mutation for the Category entity.
func newCategoryMutation(c config, op Op, opts ...categoryOption) *CategoryMutation {
	m := &CategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCategoryID sets the ID field of the mutation.
func withCategoryID(id int) categoryOption {
	return func(m *CategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Category
		)
		m.oldValue = func(ctx context.Context) (*Category, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Category.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCategory sets the old Category of the mutation.
func withCategory(node *Category) categoryOption {
	return func(m *CategoryMutation) {
		m.oldValue = func(context.Context) (*Category, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CategoryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CategoryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Category.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CategoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CategoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CategoryMutation) ResetName() {
	m.name = nil
}

// SetSlug sets the "slug" field.
func (m *CategoryMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *CategoryMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Category entity.
// If the Category object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CategoryMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *CategoryMutation) ResetSlug() {
	m.slug = nil
}

// AddWordIDs adds the "words" edge to the Word entity by ids.
func (m *CategoryMutation) AddWordIDs(ids ...int) {
	if m.words == nil {
		m.words = make(map[int]struct{})
	}
	for i := range ids {
		m.words[ids[i]] = struct{}{}
	}
}

// ClearWords clears the "words" edge to the Word entity.
func (m *CategoryMutation) ClearWords() {
	m.clearedwords = true
}

// WordsCleared reports if the "words" edge to the Word entity was cleared.
func (m *CategoryMutation) WordsCleared() bool {
	return m.clearedwords
}

// RemoveWordIDs removes the "words" edge to the Word entity by IDs.
func (m *CategoryMutation) RemoveWordIDs(ids ...int) {
	if m.removedwords == nil {
		m.removedwords = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.words, ids[i])
		m.removedwords[ids[i]] = struct{}{}
	}
}

// RemovedWords returns the removed IDs of the "words" edge to the Word entity.
func (m *CategoryMutation) RemovedWordsIDs() (ids []int) {
	for id := range m.removedwords {
		ids = append(ids, id)
	}
	return
}

// WordsIDs returns the "words" edge IDs in the mutation.
func (m *CategoryMutation) WordsIDs() (ids []int) {
	for id := range m.words {
		ids = append(ids, id)
	}
	return
}

// ResetWords resets all changes to the "words" edge.
func (m *CategoryMutation) ResetWords() {
	m.words = nil
	m.clearedwords = false
	m.removedwords = nil
}

// Where appends a list predicates to the CategoryMutation builder.
func (m *CategoryMutation) Where(ps ...predicate.Category) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Category, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Category).
func (m *CategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CategoryMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, category.FieldName)
	}
	if m.slug != nil {
		fields = append(fields, category.FieldSlug)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case category.FieldName:
		return m.Name()
	case category.FieldSlug:
		return m.Slug()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case category.FieldName:
		return m.OldName(ctx)
	case category.FieldSlug:
		return m.OldSlug(ctx)
	}
	return nil, fmt.Errorf("unknown Category field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case category.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case category.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CategoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CategoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Category numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CategoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CategoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Category nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CategoryMutation) ResetField(name string) error {
	switch name {
	case category.FieldName:
		m.ResetName()
		return nil
	case category.FieldSlug:
		m.ResetSlug()
		return nil
	}
	return fmt.Errorf("unknown Category field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.words != nil {
		edges = append(edges, category.EdgeWords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CategoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeWords:
		ids := make([]ent.Value, 0, len(m.words))
		for id := range m.words {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedwords != nil {
		edges = append(edges, category.EdgeWords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CategoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case category.EdgeWords:
		ids := make([]ent.Value, 0, len(m.removedwords))
		for id := range m.removedwords {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwords {
		edges = append(edges, category.EdgeWords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CategoryMutation) EdgeCleared(name string) bool {
	switch name {
	case category.EdgeWords:
		return m.clearedwords
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CategoryMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Category unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CategoryMutation) ResetEdge(name string) error {
	switch name {
	case category.EdgeWords:
		m.ResetWords()
		return nil
	}
	return fmt.Errorf("unknown Category edge %s", name)
}

// PracticeEventMutation represents an operation that mutates the PracticeEvent nodes in the graph.
type PracticeEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	session_id       *string
	mode             *string
	items_seen       *int
	additems_seen    *int
	completed        *int
	addcompleted     *int
	duration_secs    *int
	addduration_secs *int
	timestamp        *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*PracticeEvent, error)
	predicates       []predicate.PracticeEvent
}

var _ ent.Mutation = (*PracticeEventMutation)(nil)

// practiceeventOption allows management of the mutation configuration using functional options.
type practiceeventOption func(*PracticeEventMutation)

// newPracticeEventMutation creates new mutation for the PracticeEvent entity.
func newPracticeEventMutation(c config, op Op, opts ...practiceeventOption) *PracticeEventMutation {
	m := &PracticeEventMutation{
		config:        c,
		op:            op,
		typ:           TypePracticeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPracticeEventID sets the ID field of the mutation.
func withPracticeEventID(id int) practiceeventOption {
	return func(m *PracticeEventMutation) {
		var (
			err   error
			once  sync.Once
			value *PracticeEvent
		)
		m.oldValue = func(ctx context.Context) (*PracticeEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PracticeEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPracticeEvent sets the old PracticeEvent of the mutation.
func withPracticeEvent(node *PracticeEvent) practiceeventOption {
	return func(m *PracticeEventMutation) {
		m.oldValue = func(context.Context) (*PracticeEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PracticeEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PracticeEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PracticeEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PracticeEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PracticeEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *PracticeEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PracticeEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PracticeEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetMode sets the "mode" field.
func (m *PracticeEventMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *PracticeEventMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *PracticeEventMutation) ResetMode() {
	m.mode = nil
}

// SetItemsSeen sets the "items_seen" field.
func (m *PracticeEventMutation) SetItemsSeen(i int) {
	m.items_seen = &i
	m.additems_seen = nil
}

// ItemsSeen returns the value of the "items_seen" field in the mutation.
func (m *PracticeEventMutation) ItemsSeen() (r int, exists bool) {
	v := m.items_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldItemsSeen returns the old "items_seen" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldItemsSeen(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemsSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemsSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemsSeen: %w", err)
	}
	return oldValue.ItemsSeen, nil
}

// AddItemsSeen adds i to the "items_seen" field.
func (m *PracticeEventMutation) AddItemsSeen(i int) {
	if m.additems_seen != nil {
		*m.additems_seen += i
	} else {
		m.additems_seen = &i
	}
}

// AddedItemsSeen returns the value that was added to the "items_seen" field in this mutation.
func (m *PracticeEventMutation) AddedItemsSeen() (r int, exists bool) {
	v := m.additems_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetItemsSeen resets all changes to the "items_seen" field.
func (m *PracticeEventMutation) ResetItemsSeen() {
	m.items_seen = nil
	m.additems_seen = nil
}

// SetCompleted sets the "completed" field.
func (m *PracticeEventMutation) SetCompleted(i int) {
	m.completed = &i
	m.addcompleted = nil
}

// Completed returns the value of the "completed" field in the mutation.
func (m *PracticeEventMutation) Completed() (r int, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// AddCompleted adds i to the "completed" field.
func (m *PracticeEventMutation) AddCompleted(i int) {
	if m.addcompleted != nil {
		*m.addcompleted += i
	} else {
		m.addcompleted = &i
	}
}

// AddedCompleted returns the value that was added to the "completed" field in this mutation.
func (m *PracticeEventMutation) AddedCompleted() (r int, exists bool) {
	v := m.addcompleted
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompleted resets all changes to the "completed" field.
func (m *PracticeEventMutation) ResetCompleted() {
	m.completed = nil
	m.addcompleted = nil
}

// SetDurationSecs sets the "duration_secs" field.
func (m *PracticeEventMutation) SetDurationSecs(i int) {
	m.duration_secs = &i
	m.addduration_secs = nil
}

// DurationSecs returns the value of the "duration_secs" field in the mutation.
func (m *PracticeEventMutation) DurationSecs() (r int, exists bool) {
	v := m.duration_secs
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSecs returns the old "duration_secs" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldDurationSecs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSecs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSecs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSecs: %w", err)
	}
	return oldValue.DurationSecs, nil
}

// AddDurationSecs adds i to the "duration_secs" field.
func (m *PracticeEventMutation) AddDurationSecs(i int) {
	if m.addduration_secs != nil {
		*m.addduration_secs += i
	} else {
		m.addduration_secs = &i
	}
}

// AddedDurationSecs returns the value that was added to the "duration_secs" field in this mutation.
func (m *PracticeEventMutation) AddedDurationSecs() (r int, exists bool) {
	v := m.addduration_secs
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSecs resets all changes to the "duration_secs" field.
func (m *PracticeEventMutation) ResetDurationSecs() {
	m.duration_secs = nil
	m.addduration_secs = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *PracticeEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *PracticeEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the PracticeEvent entity.
// If the PracticeEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PracticeEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *PracticeEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// Where appends a list predicates to the PracticeEventMutation builder.
func (m *PracticeEventMutation) Where(ps ...predicate.PracticeEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PracticeEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PracticeEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PracticeEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PracticeEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PracticeEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PracticeEvent).
func (m *PracticeEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PracticeEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session_id != nil {
		fields = append(fields, practiceevent.FieldSessionID)
	}
	if m.mode != nil {
		fields = append(fields, practiceevent.FieldMode)
	}
	if m.items_seen != nil {
		fields = append(fields, practiceevent.FieldItemsSeen)
	}
	if m.completed != nil {
		fields = append(fields, practiceevent.FieldCompleted)
	}
	if m.duration_secs != nil {
		fields = append(fields, practiceevent.FieldDurationSecs)
	}
	if m.timestamp != nil {
		fields = append(fields, practiceevent.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PracticeEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case practiceevent.FieldSessionID:
		return m.SessionID()
	case practiceevent.FieldMode:
		return m.Mode()
	case practiceevent.FieldItemsSeen:
		return m.ItemsSeen()
	case practiceevent.FieldCompleted:
		return m.Completed()
	case practiceevent.FieldDurationSecs:
		return m.DurationSecs()
	case practiceevent.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PracticeEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case practiceevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case practiceevent.FieldMode:
		return m.OldMode(ctx)
	case practiceevent.FieldItemsSeen:
		return m.OldItemsSeen(ctx)
	case practiceevent.FieldCompleted:
		return m.OldCompleted(ctx)
	case practiceevent.FieldDurationSecs:
		return m.OldDurationSecs(ctx)
	case practiceevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown PracticeEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case practiceevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case practiceevent.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case practiceevent.FieldItemsSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemsSeen(v)
		return nil
	case practiceevent.FieldCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	case practiceevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSecs(v)
		return nil
	case practiceevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PracticeEventMutation) AddedFields() []string {
	var fields []string
	if m.additems_seen != nil {
		fields = append(fields, practiceevent.FieldItemsSeen)
	}
	if m.addcompleted != nil {
		fields = append(fields, practiceevent.FieldCompleted)
	}
	if m.addduration_secs != nil {
		fields = append(fields, practiceevent.FieldDurationSecs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PracticeEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case practiceevent.FieldItemsSeen:
		return m.AddedItemsSeen()
	case practiceevent.FieldCompleted:
		return m.AddedCompleted()
	case practiceevent.FieldDurationSecs:
		return m.AddedDurationSecs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PracticeEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case practiceevent.FieldItemsSeen:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddItemsSeen(v)
		return nil
	case practiceevent.FieldCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleted(v)
		return nil
	case practiceevent.FieldDurationSecs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSecs(v)
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PracticeEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PracticeEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PracticeEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PracticeEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PracticeEventMutation) ResetField(name string) error {
	switch name {
	case practiceevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case practiceevent.FieldMode:
		m.ResetMode()
		return nil
	case practiceevent.FieldItemsSeen:
		m.ResetItemsSeen()
		return nil
	case practiceevent.FieldCompleted:
		m.ResetCompleted()
		return nil
	case practiceevent.FieldDurationSecs:
		m.ResetDurationSecs()
		return nil
	case practiceevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown PracticeEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PracticeEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PracticeEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PracticeEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PracticeEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PracticeEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PracticeEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PracticeEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PracticeEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PracticeEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PracticeEvent edge %s", name)
}

// SentenceMutation represents an operation that mutates the Sentence nodes in the graph.
type SentenceMutation struct {
	config
	op               Op
	typ              string
	id               *int
	zh               *string
	en               *string
	display_order    *int
	adddisplay_order *int
	note             *string
	clearedFields    map[string]struct{}
	word             *int
	clearedword      bool
	done             bool
	oldValue         func(context.Context) (*Sentence, error)
	predicates       []predicate.Sentence
}

var _ ent.Mutation = (*SentenceMutation)(nil)

// sentenceOption allows management of the mutation configuration using functional options.
type sentenceOption func(*SentenceMutation)

// newSentenceMutation creates new mutation for the Sentence entity.
func newSentenceMutation(c config, op Op, opts ...sentenceOption) *SentenceMutation {
	m := &SentenceMutation{
		config:        c,
		op:            op,
		typ:           TypeSentence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSentenceID sets the ID field of the mutation.
func withSentenceID(id int) sentenceOption {
	return func(m *SentenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Sentence
		)
		m.oldValue = func(ctx context.Context) (*Sentence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sentence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSentence sets the old Sentence of the mutation.
func withSentence(node *Sentence) sentenceOption {
	return func(m *SentenceMutation) {
		m.oldValue = func(context.Context) (*Sentence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SentenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SentenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SentenceMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SentenceMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sentence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetZh sets the "zh" field.
func (m *SentenceMutation) SetZh(s string) {
	m.zh = &s
}

// Zh returns the value of the "zh" field in the mutation.
func (m *SentenceMutation) Zh() (r string, exists bool) {
	v := m.zh
	if v == nil {
		return
	}
	return *v, true
}

// OldZh returns the old "zh" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldZh(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldZh is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldZh requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldZh: %w", err)
	}
	return oldValue.Zh, nil
}

// ResetZh resets all changes to the "zh" field.
func (m *SentenceMutation) ResetZh() {
	m.zh = nil
}

// SetEn sets the "en" field.
func (m *SentenceMutation) SetEn(s string) {
	m.en = &s
}

// En returns the value of the "en" field in the mutation.
func (m *SentenceMutation) En() (r string, exists bool) {
	v := m.en
	if v == nil {
		return
	}
	return *v, true
}

// OldEn returns the old "en" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldEn(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEn is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEn requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEn: %w", err)
	}
	return oldValue.En, nil
}

// ResetEn resets all changes to the "en" field.
func (m *SentenceMutation) ResetEn() {
	m.en = nil
}

// SetDisplayOrder sets the "display_order" field.
func (m *SentenceMutation) SetDisplayOrder(i int) {
	m.display_order = &i
	m.adddisplay_order = nil
}

// DisplayOrder returns the value of the "display_order" field in the mutation.
func (m *SentenceMutation) DisplayOrder() (r int, exists bool) {
	v := m.display_order
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayOrder returns the old "display_order" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldDisplayOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayOrder: %w", err)
	}
	return oldValue.DisplayOrder, nil
}

// AddDisplayOrder adds i to the "display_order" field.
func (m *SentenceMutation) AddDisplayOrder(i int) {
	if m.adddisplay_order != nil {
		*m.adddisplay_order += i
	} else {
		m.adddisplay_order = &i
	}
}

// AddedDisplayOrder returns the value that was added to the "display_order" field in this mutation.
func (m *SentenceMutation) AddedDisplayOrder() (r int, exists bool) {
	v := m.adddisplay_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetDisplayOrder resets all changes to the "display_order" field.
func (m *SentenceMutation) ResetDisplayOrder() {
	m.display_order = nil
	m.adddisplay_order = nil
}

// SetNote sets the "note" field.
func (m *SentenceMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *SentenceMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the Sentence entity.
// If the Sentence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SentenceMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ResetNote resets all changes to the "note" field.
func (m *SentenceMutation) ResetNote() {
	m.note = nil
}

// SetWordID sets the "word" edge to the Word entity by id.
func (m *SentenceMutation) SetWordID(id int) {
	m.word = &id
}

// ClearWord clears the "word" edge to the Word entity.
func (m *SentenceMutation) ClearWord() {
	m.clearedword = true
}

// WordCleared reports if the "word" edge to the Word entity was cleared.
func (m *SentenceMutation) WordCleared() bool {
	return m.clearedword
}

// WordID returns the "word" edge ID in the mutation.
func (m *SentenceMutation) WordID() (id int, exists bool) {
	if m.word != nil {
		return *m.word, true
	}
	return
}

// WordIDs returns the "word" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WordID instead. It exists only for internal usage by the builders.
func (m *SentenceMutation) WordIDs() (ids []int) {
	if id := m.word; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWord resets all changes to the "word" edge.
func (m *SentenceMutation) ResetWord() {
	m.word = nil
	m.clearedword = false
}

// Where appends a list predicates to the SentenceMutation builder.
func (m *SentenceMutation) Where(ps ...predicate.Sentence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SentenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SentenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sentence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SentenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SentenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sentence).
func (m *SentenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SentenceMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.zh != nil {
		fields = append(fields, sentence.FieldZh)
	}
	if m.en != nil {
		fields = append(fields, sentence.FieldEn)
	}
	if m.display_order != nil {
		fields = append(fields, sentence.FieldDisplayOrder)
	}
	if m.note != nil {
		fields = append(fields, sentence.FieldNote)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SentenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sentence.FieldZh:
		return m.Zh()
	case sentence.FieldEn:
		return m.En()
	case sentence.FieldDisplayOrder:
		return m.DisplayOrder()
	case sentence.FieldNote:
		return m.Note()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SentenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sentence.FieldZh:
		return m.OldZh(ctx)
	case sentence.FieldEn:
		return m.OldEn(ctx)
	case sentence.FieldDisplayOrder:
		return m.OldDisplayOrder(ctx)
	case sentence.FieldNote:
		return m.OldNote(ctx)
	}
	return nil, fmt.Errorf("unknown Sentence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sentence.FieldZh:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetZh(v)
		return nil
	case sentence.FieldEn:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEn(v)
		return nil
	case sentence.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayOrder(v)
		return nil
	case sentence.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	}
	return fmt.Errorf("unknown Sentence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SentenceMutation) AddedFields() []string {
	var fields []string
	if m.adddisplay_order != nil {
		fields = append(fields, sentence.FieldDisplayOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SentenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sentence.FieldDisplayOrder:
		return m.AddedDisplayOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SentenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sentence.FieldDisplayOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDisplayOrder(v)
		return nil
	}
	return fmt.Errorf("unknown Sentence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SentenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SentenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SentenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Sentence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SentenceMutation) ResetField(name string) error {
	switch name {
	case sentence.FieldZh:
		m.ResetZh()
		return nil
	case sentence.FieldEn:
		m.ResetEn()
		return nil
	case sentence.FieldDisplayOrder:
		m.ResetDisplayOrder()
		return nil
	case sentence.FieldNote:
		m.ResetNote()
		return nil
	}
	return fmt.Errorf("unknown Sentence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SentenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.word != nil {
		edges = append(edges, sentence.EdgeWord)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SentenceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case sentence.EdgeWord:
		if id := m.word; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SentenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SentenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SentenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedword {
		edges = append(edges, sentence.EdgeWord)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SentenceMutation) EdgeCleared(name string) bool {
	switch name {
	case sentence.EdgeWord:
		return m.clearedword
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SentenceMutation) ClearEdge(name string) error {
	switch name {
	case sentence.EdgeWord:
		m.ClearWord()
		return nil
	}
	return fmt.Errorf("unknown Sentence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SentenceMutation) ResetEdge(name string) error {
	switch name {
	case sentence.EdgeWord:
		m.ResetWord()
		return nil
	}
	return fmt.Errorf("unknown Sentence edge %s", name)
}

// WordMutation represents an operation that mutates the Word nodes in the graph.
type WordMutation struct {
	config
	op               Op
	typ              string
	id               *int
	hanzi            *string
	pinyin           *string
	meaning          *string
	background       *string
	origin_year      *int
	addorigin_year   *int
	origin_month     *int
	addorigin_month  *int
	popularity       *int
	addpopularity    *int
	clearedFields    map[string]struct{}
	category         *int
	clearedcategory  bool
	sentences        map[int]struct{}
	removedsentences map[int]struct{}
	clearedsentences bool
	done             bool
	oldValue         func(context.Context) (*Word, error)
	predicates       []predicate.Word
}

var _ ent.Mutation = (*WordMutation)(nil)

// wordOption allows management of the mutation configuration using functional options.
type wordOption func(*WordMutation)

// newWordMutation creates new mutation for the Word entity.
func newWordMutation(c config, op Op, opts ...wordOption) *WordMutation {
	m := &WordMutation{
		config:        c,
		op:            op,
		typ:           TypeWord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWordID sets the ID field of the mutation.
func withWordID(id int) wordOption {
	return func(m *WordMutation) {
		var (
			err   error
			once  sync.Once
			value *Word
		)
		m.oldValue = func(ctx context.Context) (*Word, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Word.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWord sets the old Word of the mutation.
func withWord(node *Word) wordOption {
	return func(m *WordMutation) {
		m.oldValue = func(context.Context) (*Word, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Word.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHanzi sets the "hanzi" field.
func (m *WordMutation) SetHanzi(s string) {
	m.hanzi = &s
}

// Hanzi returns the value of the "hanzi" field in the mutation.
func (m *WordMutation) Hanzi() (r string, exists bool) {
	v := m.hanzi
	if v == nil {
		return
	}
	return *v, true
}

// OldHanzi returns the old "hanzi" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldHanzi(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHanzi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHanzi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHanzi: %w", err)
	}
	return oldValue.Hanzi, nil
}

// ResetHanzi resets all changes to the "hanzi" field.
func (m *WordMutation) ResetHanzi() {
	m.hanzi = nil
}

// SetPinyin sets the "pinyin" field.
func (m *WordMutation) SetPinyin(s string) {
	m.pinyin = &s
}

// Pinyin returns the value of the "pinyin" field in the mutation.
func (m *WordMutation) Pinyin() (r string, exists bool) {
	v := m.pinyin
	if v == nil {
		return
	}
	return *v, true
}

// OldPinyin returns the old "pinyin" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldPinyin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPinyin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPinyin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPinyin: %w", err)
	}
	return oldValue.Pinyin, nil
}

// ResetPinyin resets all changes to the "pinyin" field.
func (m *WordMutation) ResetPinyin() {
	m.pinyin = nil
}

// SetMeaning sets the "meaning" field.
func (m *WordMutation) SetMeaning(s string) {
	m.meaning = &s
}

// Meaning returns the value of the "meaning" field in the mutation.
func (m *WordMutation) Meaning() (r string, exists bool) {
	v := m.meaning
	if v == nil {
		return
	}
	return *v, true
}

// OldMeaning returns the old "meaning" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldMeaning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeaning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeaning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeaning: %w", err)
	}
	return oldValue.Meaning, nil
}

// ResetMeaning resets all changes to the "meaning" field.
func (m *WordMutation) ResetMeaning() {
	m.meaning = nil
}

// SetBackground sets the "background" field.
func (m *WordMutation) SetBackground(s string) {
	m.background = &s
}

// Background returns the value of the "background" field in the mutation.
func (m *WordMutation) Background() (r string, exists bool) {
	v := m.background
	if v == nil {
		return
	}
	return *v, true
}

// OldBackground returns the old "background" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldBackground(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackground is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackground requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackground: %w", err)
	}
	return oldValue.Background, nil
}

// ResetBackground resets all changes to the "background" field.
func (m *WordMutation) ResetBackground() {
	m.background = nil
}

// SetOriginYear sets the "origin_year" field.
func (m *WordMutation) SetOriginYear(i int) {
	m.origin_year = &i
	m.addorigin_year = nil
}

// OriginYear returns the value of the "origin_year" field in the mutation.
func (m *WordMutation) OriginYear() (r int, exists bool) {
	v := m.origin_year
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginYear returns the old "origin_year" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldOriginYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginYear: %w", err)
	}
	return oldValue.OriginYear, nil
}

// AddOriginYear adds i to the "origin_year" field.
func (m *WordMutation) AddOriginYear(i int) {
	if m.addorigin_year != nil {
		*m.addorigin_year += i
	} else {
		m.addorigin_year = &i
	}
}

// AddedOriginYear returns the value that was added to the "origin_year" field in this mutation.
func (m *WordMutation) AddedOriginYear() (r int, exists bool) {
	v := m.addorigin_year
	if v == nil {
		return
	}
	return *v, true
}

// ResetOriginYear resets all changes to the "origin_year" field.
func (m *WordMutation) ResetOriginYear() {
	m.origin_year = nil
	m.addorigin_year = nil
}

// SetOriginMonth sets the "origin_month" field.
func (m *WordMutation) SetOriginMonth(i int) {
	m.origin_month = &i
	m.addorigin_month = nil
}

// OriginMonth returns the value of the "origin_month" field in the mutation.
func (m *WordMutation) OriginMonth() (r int, exists bool) {
	v := m.origin_month
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginMonth returns the old "origin_month" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldOriginMonth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginMonth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginMonth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginMonth: %w", err)
	}
	return oldValue.OriginMonth, nil
}

// AddOriginMonth adds i to the "origin_month" field.
func (m *WordMutation) AddOriginMonth(i int) {
	if m.addorigin_month != nil {
		*m.addorigin_month += i
	} else {
		m.addorigin_month = &i
	}
}

// AddedOriginMonth returns the value that was added to the "origin_month" field in this mutation.
func (m *WordMutation) AddedOriginMonth() (r int, exists bool) {
	v := m.addorigin_month
	if v == nil {
		return
	}
	return *v, true
}

// ResetOriginMonth resets all changes to the "origin_month" field.
func (m *WordMutation) ResetOriginMonth() {
	m.origin_month = nil
	m.addorigin_month = nil
}

// SetPopularity sets the "popularity" field.
func (m *WordMutation) SetPopularity(i int) {
	m.popularity = &i
	m.addpopularity = nil
}

// Popularity returns the value of the "popularity" field in the mutation.
func (m *WordMutation) Popularity() (r int, exists bool) {
	v := m.popularity
	if v == nil {
		return
	}
	return *v, true
}

// OldPopularity returns the old "popularity" field's value of the Word entity.
// If the Word object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordMutation) OldPopularity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPopularity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPopularity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPopularity: %w", err)
	}
	return oldValue.Popularity, nil
}

// AddPopularity adds i to the "popularity" field.
func (m *WordMutation) AddPopularity(i int) {
	if m.addpopularity != nil {
		*m.addpopularity += i
	} else {
		m.addpopularity = &i
	}
}

// AddedPopularity returns the value that was added to the "popularity" field in this mutation.
func (m *WordMutation) AddedPopularity() (r int, exists bool) {
	v := m.addpopularity
	if v == nil {
		return
	}
	return *v, true
}

// ResetPopularity resets all changes to the "popularity" field.
func (m *WordMutation) ResetPopularity() {
	m.popularity = nil
	m.addpopularity = nil
}

// SetCategoryID sets the "category" edge to the Category entity by id.
func (m *WordMutation) SetCategoryID(id int) {
	m.category = &id
}

// ClearCategory clears the "category" edge to the Category entity.
func (m *WordMutation) ClearCategory() {
	m.clearedcategory = true
}

// CategoryCleared reports if the "category" edge to the Category entity was cleared.
func (m *WordMutation) CategoryCleared() bool {
	return m.clearedcategory
}

// CategoryID returns the "category" edge ID in the mutation.
func (m *WordMutation) CategoryID() (id int, exists bool) {
	if m.category != nil {
		return *m.category, true
	}
	return
}

// CategoryIDs returns the "category" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CategoryID instead. It exists only for internal usage by the builders.
func (m *WordMutation) CategoryIDs() (ids []int) {
	if id := m.category; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCategory resets all changes to the "category" edge.
func (m *WordMutation) ResetCategory() {
	m.category = nil
	m.clearedcategory = false
}

// AddSentenceIDs adds the "sentences" edge to the Sentence entity by ids.
func (m *WordMutation) AddSentenceIDs(ids ...int) {
	if m.sentences == nil {
		m.sentences = make(map[int]struct{})
	}
	for i := range ids {
		m.sentences[ids[i]] = struct{}{}
	}
}

// ClearSentences clears the "sentences" edge to the Sentence entity.
func (m *WordMutation) ClearSentences() {
	m.clearedsentences = true
}

// SentencesCleared reports if the "sentences" edge to the Sentence entity was cleared.
func (m *WordMutation) SentencesCleared() bool {
	return m.clearedsentences
}

// RemoveSentenceIDs removes the "sentences" edge to the Sentence entity by IDs.
func (m *WordMutation) RemoveSentenceIDs(ids ...int) {
	if m.removedsentences == nil {
		m.removedsentences = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sentences, ids[i])
		m.removedsentences[ids[i]] = struct{}{}
	}
}

// RemovedSentences returns the removed IDs of the "sentences" edge to the Sentence entity.
func (m *WordMutation) RemovedSentencesIDs() (ids []int) {
	for id := range m.removedsentences {
		ids = append(ids, id)
	}
	return
}

// SentencesIDs returns the "sentences" edge IDs in the mutation.
func (m *WordMutation) SentencesIDs() (ids []int) {
	for id := range m.sentences {
		ids = append(ids, id)
	}
	return
}

// ResetSentences resets all changes to the "sentences" edge.
func (m *WordMutation) ResetSentences() {
	m.sentences = nil
	m.clearedsentences = false
	m.removedsentences = nil
}

// Where appends a list predicates to the WordMutation builder.
func (m *WordMutation) Where(ps ...predicate.Word) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Word, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Word).
func (m *WordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.hanzi != nil {
		fields = append(fields, word.FieldHanzi)
	}
	if m.pinyin != nil {
		fields = append(fields, word.FieldPinyin)
	}
	if m.meaning != nil {
		fields = append(fields, word.FieldMeaning)
	}
	if m.background != nil {
		fields = append(fields, word.FieldBackground)
	}
	if m.origin_year != nil {
		fields = append(fields, word.FieldOriginYear)
	}
	if m.origin_month != nil {
		fields = append(fields, word.FieldOriginMonth)
	}
	if m.popularity != nil {
		fields = append(fields, word.FieldPopularity)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case word.FieldHanzi:
		return m.Hanzi()
	case word.FieldPinyin:
		return m.Pinyin()
	case word.FieldMeaning:
		return m.Meaning()
	case word.FieldBackground:
		return m.Background()
	case word.FieldOriginYear:
		return m.OriginYear()
	case word.FieldOriginMonth:
		return m.OriginMonth()
	case word.FieldPopularity:
		return m.Popularity()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case word.FieldHanzi:
		return m.OldHanzi(ctx)
	case word.FieldPinyin:
		return m.OldPinyin(ctx)
	case word.FieldMeaning:
		return m.OldMeaning(ctx)
	case word.FieldBackground:
		return m.OldBackground(ctx)
	case word.FieldOriginYear:
		return m.OldOriginYear(ctx)
	case word.FieldOriginMonth:
		return m.OldOriginMonth(ctx)
	case word.FieldPopularity:
		return m.OldPopularity(ctx)
	}
	return nil, fmt.Errorf("unknown Word field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case word.FieldHanzi:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHanzi(v)
		return nil
	case word.FieldPinyin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPinyin(v)
		return nil
	case word.FieldMeaning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeaning(v)
		return nil
	case word.FieldBackground:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackground(v)
		return nil
	case word.FieldOriginYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginYear(v)
		return nil
	case word.FieldOriginMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginMonth(v)
		return nil
	case word.FieldPopularity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPopularity(v)
		return nil
	}
	return fmt.Errorf("unknown Word field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WordMutation) AddedFields() []string {
	var fields []string
	if m.addorigin_year != nil {
		fields = append(fields, word.FieldOriginYear)
	}
	if m.addorigin_month != nil {
		fields = append(fields, word.FieldOriginMonth)
	}
	if m.addpopularity != nil {
		fields = append(fields, word.FieldPopularity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case word.FieldOriginYear:
		return m.AddedOriginYear()
	case word.FieldOriginMonth:
		return m.AddedOriginMonth()
	case word.FieldPopularity:
		return m.AddedPopularity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case word.FieldOriginYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOriginYear(v)
		return nil
	case word.FieldOriginMonth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOriginMonth(v)
		return nil
	case word.FieldPopularity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPopularity(v)
		return nil
	}
	return fmt.Errorf("unknown Word numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Word nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WordMutation) ResetField(name string) error {
	switch name {
	case word.FieldHanzi:
		m.ResetHanzi()
		return nil
	case word.FieldPinyin:
		m.ResetPinyin()
		return nil
	case word.FieldMeaning:
		m.ResetMeaning()
		return nil
	case word.FieldBackground:
		m.ResetBackground()
		return nil
	case word.FieldOriginYear:
		m.ResetOriginYear()
		return nil
	case word.FieldOriginMonth:
		m.ResetOriginMonth()
		return nil
	case word.FieldPopularity:
		m.ResetPopularity()
		return nil
	}
	return fmt.Errorf("unknown Word field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.category != nil {
		edges = append(edges, word.EdgeCategory)
	}
	if m.sentences != nil {
		edges = append(edges, word.EdgeSentences)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case word.EdgeCategory:
		if id := m.category; id != nil {
			return []ent.Value{*id}
		}
	case word.EdgeSentences:
		ids := make([]ent.Value, 0, len(m.sentences))
		for id := range m.sentences {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsentences != nil {
		edges = append(edges, word.EdgeSentences)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WordMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case word.EdgeSentences:
		ids := make([]ent.Value, 0, len(m.removedsentences))
		for id := range m.removedsentences {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcategory {
		edges = append(edges, word.EdgeCategory)
	}
	if m.clearedsentences {
		edges = append(edges, word.EdgeSentences)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WordMutation) EdgeCleared(name string) bool {
	switch name {
	case word.EdgeCategory:
		return m.clearedcategory
	case word.EdgeSentences:
		return m.clearedsentences
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WordMutation) ClearEdge(name string) error {
	switch name {
	case word.EdgeCategory:
		m.ClearCategory()
		return nil
	}
	return fmt.Errorf("unknown Word unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WordMutation) ResetEdge(name string) error {
	switch name {
	case word.EdgeCategory:
		m.ResetCategory()
		return nil
	case word.EdgeSentences:
		m.ResetSentences()
		return nil
	}
	return fmt.Errorf("unknown Word edge %s", name)
}
