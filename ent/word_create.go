// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/category"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/sentence"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/word"
)

// WordCreate is the builder for creating a Word entity.
type WordCreate struct {
	config
	mutation *WordMutation
	hooks    []Hook
}

// SetHanzi sets the "hanzi" field.
func (_c *WordCreate) SetHanzi(v string) *WordCreate {
	_c.mutation.SetHanzi(v)
	return _c
}

// SetPinyin sets the "pinyin" field.
func (_c *WordCreate) SetPinyin(v string) *WordCreate {
	_c.mutation.SetPinyin(v)
	return _c
}

// SetMeaning sets the "meaning" field.
func (_c *WordCreate) SetMeaning(v string) *WordCreate {
	_c.mutation.SetMeaning(v)
	return _c
}

// SetBackground sets the "background" field.
func (_c *WordCreate) SetBackground(v string) *WordCreate {
	_c.mutation.SetBackground(v)
	return _c
}

// SetNillableBackground sets the "background" field if the given value is not nil.
func (_c *WordCreate) SetNillableBackground(v *string) *WordCreate {
	if v != nil {
		_c.SetBackground(*v)
	}
	return _c
}

// SetOriginYear sets the "origin_year" field.
func (_c *WordCreate) SetOriginYear(v int) *WordCreate {
	_c.mutation.SetOriginYear(v)
	return _c
}

// SetNillableOriginYear sets the "origin_year" field if the given value is not nil.
func (_c *WordCreate) SetNillableOriginYear(v *int) *WordCreate {
	if v != nil {
		_c.SetOriginYear(*v)
	}
	return _c
}

// SetOriginMonth sets the "origin_month" field.
func (_c *WordCreate) SetOriginMonth(v int) *WordCreate {
	_c.mutation.SetOriginMonth(v)
	return _c
}

// SetNillableOriginMonth sets the "origin_month" field if the given value is not nil.
func (_c *WordCreate) SetNillableOriginMonth(v *int) *WordCreate {
	if v != nil {
		_c.SetOriginMonth(*v)
	}
	return _c
}

// SetPopularity sets the "popularity" field.
func (_c *WordCreate) SetPopularity(v int) *WordCreate {
	_c.mutation.SetPopularity(v)
	return _c
}

// SetNillablePopularity sets the "popularity" field if the given value is not nil.
func (_c *WordCreate) SetNillablePopularity(v *int) *WordCreate {
	if v != nil {
		_c.SetPopularity(*v)
	}
	return _c
}

// SetCategoryID sets the "category" edge to the Category entity by ID.
func (_c *WordCreate) SetCategoryID(id int) *WordCreate {
	_c.mutation.SetCategoryID(id)
	return _c
}

// SetCategory sets the "category" edge to the Category entity.
func (_c *WordCreate) SetCategory(v *Category) *WordCreate {
	return _c.SetCategoryID(v.ID)
}

// AddSentenceIDs adds the "sentences" edge to the Sentence entity by IDs.
func (_c *WordCreate) AddSentenceIDs(ids ...int) *WordCreate {
	_c.mutation.AddSentenceIDs(ids...)
	return _c
}

// AddSentences adds the "sentences" edges to the Sentence entity.
func (_c *WordCreate) AddSentences(v ...*Sentence) *WordCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSentenceIDs(ids...)
}

// Mutation returns the WordMutation object of the builder.
func (_c *WordCreate) Mutation() *WordMutation {
	return _c.mutation
}

// Save creates the Word in the database.
func (_c *WordCreate) Save(ctx context.Context) (*Word, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WordCreate) SaveX(ctx context.Context) *Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WordCreate) defaults() {
	if _, ok := _c.mutation.Background(); !ok {
		v := word.DefaultBackground
		_c.mutation.SetBackground(v)
	}
	if _, ok := _c.mutation.OriginYear(); !ok {
		v := word.DefaultOriginYear
		_c.mutation.SetOriginYear(v)
	}
	if _, ok := _c.mutation.OriginMonth(); !ok {
		v := word.DefaultOriginMonth
		_c.mutation.SetOriginMonth(v)
	}
	if _, ok := _c.mutation.Popularity(); !ok {
		v := word.DefaultPopularity
		_c.mutation.SetPopularity(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WordCreate) check() error {
	if _, ok := _c.mutation.Hanzi(); !ok {
		return &ValidationError{Name: "hanzi", err: errors.New(`ent: missing required field "Word.hanzi"`)}
	}
	if v, ok := _c.mutation.Hanzi(); ok {
		if err := word.HanziValidator(v); err != nil {
			return &ValidationError{Name: "hanzi", err: fmt.Errorf(`ent: validator failed for field "Word.hanzi": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pinyin(); !ok {
		return &ValidationError{Name: "pinyin", err: errors.New(`ent: missing required field "Word.pinyin"`)}
	}
	if v, ok := _c.mutation.Pinyin(); ok {
		if err := word.PinyinValidator(v); err != nil {
			return &ValidationError{Name: "pinyin", err: fmt.Errorf(`ent: validator failed for field "Word.pinyin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Meaning(); !ok {
		return &ValidationError{Name: "meaning", err: errors.New(`ent: missing required field "Word.meaning"`)}
	}
	if v, ok := _c.mutation.Meaning(); ok {
		if err := word.MeaningValidator(v); err != nil {
			return &ValidationError{Name: "meaning", err: fmt.Errorf(`ent: validator failed for field "Word.meaning": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Background(); !ok {
		return &ValidationError{Name: "background", err: errors.New(`ent: missing required field "Word.background"`)}
	}
	if _, ok := _c.mutation.OriginYear(); !ok {
		return &ValidationError{Name: "origin_year", err: errors.New(`ent: missing required field "Word.origin_year"`)}
	}
	if _, ok := _c.mutation.OriginMonth(); !ok {
		return &ValidationError{Name: "origin_month", err: errors.New(`ent: missing required field "Word.origin_month"`)}
	}
	if _, ok := _c.mutation.Popularity(); !ok {
		return &ValidationError{Name: "popularity", err: errors.New(`ent: missing required field "Word.popularity"`)}
	}
	if len(_c.mutation.CategoryIDs()) == 0 {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required edge "Word.category"`)}
	}
	return nil
}

func (_c *WordCreate) sqlSave(ctx context.Context) (*Word, error) {
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

func (_c *WordCreate) createSpec() (*Word, *sqlgraph.CreateSpec) {
	var (
		_node = &Word{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(word.Table, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Hanzi(); ok {
		_spec.SetField(word.FieldHanzi, field.TypeString, value)
		_node.Hanzi = value
	}
	if value, ok := _c.mutation.Pinyin(); ok {
		_spec.SetField(word.FieldPinyin, field.TypeString, value)
		_node.Pinyin = value
	}
	if value, ok := _c.mutation.Meaning(); ok {
		_spec.SetField(word.FieldMeaning, field.TypeString, value)
		_node.Meaning = value
	}
	if value, ok := _c.mutation.Background(); ok {
		_spec.SetField(word.FieldBackground, field.TypeString, value)
		_node.Background = value
	}
	if value, ok := _c.mutation.OriginYear(); ok {
		_spec.SetField(word.FieldOriginYear, field.TypeInt, value)
		_node.OriginYear = value
	}
	if value, ok := _c.mutation.OriginMonth(); ok {
		_spec.SetField(word.FieldOriginMonth, field.TypeInt, value)
		_node.OriginMonth = value
	}
	if value, ok := _c.mutation.Popularity(); ok {
		_spec.SetField(word.FieldPopularity, field.TypeInt, value)
		_node.Popularity = value
	}
	if nodes := _c.mutation.CategoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   word.CategoryTable,
			Columns: []string{word.CategoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(category.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.category_words = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SentencesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   word.SentencesTable,
			Columns: []string{word.SentencesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(sentence.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WordCreateBulk is the builder for creating many Word entities in bulk.
type WordCreateBulk struct {
	config
	err      error
	builders []*WordCreate
}

// Save creates the Word entities in the database.
func (_c *WordCreateBulk) Save(ctx context.Context) ([]*Word, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Word, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WordMutation)
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
func (_c *WordCreateBulk) SaveX(ctx context.Context) []*Word {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
