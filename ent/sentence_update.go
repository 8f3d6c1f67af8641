// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/predicate"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/sentence"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/word"
)

// SentenceUpdate is the builder for updating Sentence entities.
type SentenceUpdate struct {
	config
	hooks    []Hook
	mutation *SentenceMutation
}

// Where appends a list predicates to the SentenceUpdate builder.
func (_u *SentenceUpdate) Where(ps ...predicate.Sentence) *SentenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetZh sets the "zh" field.
func (_u *SentenceUpdate) SetZh(v string) *SentenceUpdate {
	_u.mutation.SetZh(v)
	return _u
}

// SetNillableZh sets the "zh" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableZh(v *string) *SentenceUpdate {
	if v != nil {
		_u.SetZh(*v)
	}
	return _u
}

// SetEn sets the "en" field.
func (_u *SentenceUpdate) SetEn(v string) *SentenceUpdate {
	_u.mutation.SetEn(v)
	return _u
}

// SetNillableEn sets the "en" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableEn(v *string) *SentenceUpdate {
	if v != nil {
		_u.SetEn(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *SentenceUpdate) SetDisplayOrder(v int) *SentenceUpdate {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableDisplayOrder(v *int) *SentenceUpdate {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *SentenceUpdate) AddDisplayOrder(v int) *SentenceUpdate {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *SentenceUpdate) SetNote(v string) *SentenceUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *SentenceUpdate) SetNillableNote(v *string) *SentenceUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetWordID sets the "word" edge to the Word entity by ID.
func (_u *SentenceUpdate) SetWordID(id int) *SentenceUpdate {
	_u.mutation.SetWordID(id)
	return _u
}

// SetWord sets the "word" edge to the Word entity.
func (_u *SentenceUpdate) SetWord(v *Word) *SentenceUpdate {
	return _u.SetWordID(v.ID)
}

// Mutation returns the SentenceMutation object of the builder.
func (_u *SentenceUpdate) Mutation() *SentenceMutation {
	return _u.mutation
}

// ClearWord clears the "word" edge to the Word entity.
func (_u *SentenceUpdate) ClearWord() *SentenceUpdate {
	_u.mutation.ClearWord()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SentenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SentenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SentenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SentenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SentenceUpdate) check() error {
	if v, ok := _u.mutation.Zh(); ok {
		if err := sentence.ZhValidator(v); err != nil {
			return &ValidationError{Name: "zh", err: fmt.Errorf(`ent: validator failed for field "Sentence.zh": %w`, err)}
		}
	}
	if v, ok := _u.mutation.En(); ok {
		if err := sentence.EnValidator(v); err != nil {
			return &ValidationError{Name: "en", err: fmt.Errorf(`ent: validator failed for field "Sentence.en": %w`, err)}
		}
	}
	if _u.mutation.WordCleared() && len(_u.mutation.WordIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Sentence.word"`)
	}
	return nil
}

func (_u *SentenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sentence.Table, sentence.Columns, sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Zh(); ok {
		_spec.SetField(sentence.FieldZh, field.TypeString, value)
	}
	if value, ok := _u.mutation.En(); ok {
		_spec.SetField(sentence.FieldEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(sentence.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(sentence.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(sentence.FieldNote, field.TypeString, value)
	}
	if _u.mutation.WordCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.WordTable,
			Columns: []string{sentence.WordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.WordTable,
			Columns: []string{sentence.WordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sentence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SentenceUpdateOne is the builder for updating a single Sentence entity.
type SentenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SentenceMutation
}

// SetZh sets the "zh" field.
func (_u *SentenceUpdateOne) SetZh(v string) *SentenceUpdateOne {
	_u.mutation.SetZh(v)
	return _u
}

// SetNillableZh sets the "zh" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableZh(v *string) *SentenceUpdateOne {
	if v != nil {
		_u.SetZh(*v)
	}
	return _u
}

// SetEn sets the "en" field.
func (_u *SentenceUpdateOne) SetEn(v string) *SentenceUpdateOne {
	_u.mutation.SetEn(v)
	return _u
}

// SetNillableEn sets the "en" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableEn(v *string) *SentenceUpdateOne {
	if v != nil {
		_u.SetEn(*v)
	}
	return _u
}

// SetDisplayOrder sets the "display_order" field.
func (_u *SentenceUpdateOne) SetDisplayOrder(v int) *SentenceUpdateOne {
	_u.mutation.ResetDisplayOrder()
	_u.mutation.SetDisplayOrder(v)
	return _u
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableDisplayOrder(v *int) *SentenceUpdateOne {
	if v != nil {
		_u.SetDisplayOrder(*v)
	}
	return _u
}

// AddDisplayOrder adds value to the "display_order" field.
func (_u *SentenceUpdateOne) AddDisplayOrder(v int) *SentenceUpdateOne {
	_u.mutation.AddDisplayOrder(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *SentenceUpdateOne) SetNote(v string) *SentenceUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *SentenceUpdateOne) SetNillableNote(v *string) *SentenceUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// SetWordID sets the "word" edge to the Word entity by ID.
func (_u *SentenceUpdateOne) SetWordID(id int) *SentenceUpdateOne {
	_u.mutation.SetWordID(id)
	return _u
}

// SetWord sets the "word" edge to the Word entity.
func (_u *SentenceUpdateOne) SetWord(v *Word) *SentenceUpdateOne {
	return _u.SetWordID(v.ID)
}

// Mutation returns the SentenceMutation object of the builder.
func (_u *SentenceUpdateOne) Mutation() *SentenceMutation {
	return _u.mutation
}

// ClearWord clears the "word" edge to the Word entity.
func (_u *SentenceUpdateOne) ClearWord() *SentenceUpdateOne {
	_u.mutation.ClearWord()
	return _u
}

// Where appends a list predicates to the SentenceUpdate builder.
func (_u *SentenceUpdateOne) Where(ps ...predicate.Sentence) *SentenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SentenceUpdateOne) Select(field string, fields ...string) *SentenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sentence entity.
func (_u *SentenceUpdateOne) Save(ctx context.Context) (*Sentence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SentenceUpdateOne) SaveX(ctx context.Context) *Sentence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SentenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SentenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SentenceUpdateOne) check() error {
	if v, ok := _u.mutation.Zh(); ok {
		if err := sentence.ZhValidator(v); err != nil {
			return &ValidationError{Name: "zh", err: fmt.Errorf(`ent: validator failed for field "Sentence.zh": %w`, err)}
		}
	}
	if v, ok := _u.mutation.En(); ok {
		if err := sentence.EnValidator(v); err != nil {
			return &ValidationError{Name: "en", err: fmt.Errorf(`ent: validator failed for field "Sentence.en": %w`, err)}
		}
	}
	if _u.mutation.WordCleared() && len(_u.mutation.WordIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Sentence.word"`)
	}
	return nil
}

func (_u *SentenceUpdateOne) sqlSave(ctx context.Context) (_node *Sentence, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sentence.Table, sentence.Columns, sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sentence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sentence.FieldID)
		for _, f := range fields {
			if !sentence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sentence.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Zh(); ok {
		_spec.SetField(sentence.FieldZh, field.TypeString, value)
	}
	if value, ok := _u.mutation.En(); ok {
		_spec.SetField(sentence.FieldEn, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayOrder(); ok {
		_spec.SetField(sentence.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDisplayOrder(); ok {
		_spec.AddField(sentence.FieldDisplayOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(sentence.FieldNote, field.TypeString, value)
	}
	if _u.mutation.WordCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.WordTable,
			Columns: []string{sentence.WordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   sentence.WordTable,
			Columns: []string{sentence.WordColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Sentence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sentence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
