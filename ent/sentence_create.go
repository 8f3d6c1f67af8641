// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/sentence"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/word"
)

// SentenceCreate is the builder for creating a Sentence entity.
type SentenceCreate struct {
	config
	mutation *SentenceMutation
	hooks    []Hook
}

// SetZh sets the "zh" field.
func (_c *SentenceCreate) SetZh(v string) *SentenceCreate {
	_c.mutation.SetZh(v)
	return _c
}

// SetEn sets the "en" field.
func (_c *SentenceCreate) SetEn(v string) *SentenceCreate {
	_c.mutation.SetEn(v)
	return _c
}

// SetDisplayOrder sets the "display_order" field.
func (_c *SentenceCreate) SetDisplayOrder(v int) *SentenceCreate {
	_c.mutation.SetDisplayOrder(v)
	return _c
}

// SetNillableDisplayOrder sets the "display_order" field if the given value is not nil.
func (_c *SentenceCreate) SetNillableDisplayOrder(v *int) *SentenceCreate {
	if v != nil {
		_c.SetDisplayOrder(*v)
	}
	return _c
}

// SetNote sets the "note" field.
func (_c *SentenceCreate) SetNote(v string) *SentenceCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_c *SentenceCreate) SetNillableNote(v *string) *SentenceCreate {
	if v != nil {
		_c.SetNote(*v)
	}
	return _c
}

// SetWordID sets the "word" edge to the Word entity by ID.
func (_c *SentenceCreate) SetWordID(id int) *SentenceCreate {
	_c.mutation.SetWordID(id)
	return _c
}

// SetWord sets the "word" edge to the Word entity.
func (_c *SentenceCreate) SetWord(v *Word) *SentenceCreate {
	return _c.SetWordID(v.ID)
}

// Mutation returns the SentenceMutation object of the builder.
func (_c *SentenceCreate) Mutation() *SentenceMutation {
	return _c.mutation
}

// Save creates the Sentence in the database.
func (_c *SentenceCreate) Save(ctx context.Context) (*Sentence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SentenceCreate) SaveX(ctx context.Context) *Sentence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SentenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SentenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SentenceCreate) defaults() {
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		v := sentence.DefaultDisplayOrder
		_c.mutation.SetDisplayOrder(v)
	}
	if _, ok := _c.mutation.Note(); !ok {
		v := sentence.DefaultNote
		_c.mutation.SetNote(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SentenceCreate) check() error {
	if _, ok := _c.mutation.Zh(); !ok {
		return &ValidationError{Name: "zh", err: errors.New(`ent: missing required field "Sentence.zh"`)}
	}
	if v, ok := _c.mutation.Zh(); ok {
		if err := sentence.ZhValidator(v); err != nil {
			return &ValidationError{Name: "zh", err: fmt.Errorf(`ent: validator failed for field "Sentence.zh": %w`, err)}
		}
	}
	if _, ok := _c.mutation.En(); !ok {
		return &ValidationError{Name: "en", err: errors.New(`ent: missing required field "Sentence.en"`)}
	}
	if v, ok := _c.mutation.En(); ok {
		if err := sentence.EnValidator(v); err != nil {
			return &ValidationError{Name: "en", err: fmt.Errorf(`ent: validator failed for field "Sentence.en": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayOrder(); !ok {
		return &ValidationError{Name: "display_order", err: errors.New(`ent: missing required field "Sentence.display_order"`)}
	}
	if _, ok := _c.mutation.Note(); !ok {
		return &ValidationError{Name: "note", err: errors.New(`ent: missing required field "Sentence.note"`)}
	}
	if len(_c.mutation.WordIDs()) == 0 {
		return &ValidationError{Name: "word", err: errors.New(`ent: missing required edge "Sentence.word"`)}
	}
	return nil
}

func (_c *SentenceCreate) sqlSave(ctx context.Context) (*Sentence, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SentenceCreate) createSpec() (*Sentence, *sqlgraph.CreateSpec) {
	var (
		_node = &Sentence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sentence.Table, sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Zh(); ok {
		_spec.SetField(sentence.FieldZh, field.TypeString, value)
		_node.Zh = value
	}
	if value, ok := _c.mutation.En(); ok {
		_spec.SetField(sentence.FieldEn, field.TypeString, value)
		_node.En = value
	}
	if value, ok := _c.mutation.DisplayOrder(); ok {
		_spec.SetField(sentence.FieldDisplayOrder, field.TypeInt, value)
		_node.DisplayOrder = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(sentence.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if nodes := _c.mutation.WordIDs(); len(nodes) > 0 {
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
		_node.word_sentences = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SentenceCreateBulk is the builder for creating many Sentence entities in bulk.
type SentenceCreateBulk struct {
	config
	err      error
	builders []*SentenceCreate
}

// Save creates the Sentence entities in the database.
func (_c *SentenceCreateBulk) Save(ctx context.Context) ([]*Sentence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sentence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SentenceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SentenceCreateBulk) SaveX(ctx context.Context) []*Sentence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SentenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SentenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
