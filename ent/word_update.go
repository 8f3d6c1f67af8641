// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/category"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/predicate"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/sentence"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/word"
)

// WordUpdate is the builder for updating Word entities.
type WordUpdate struct {
	config
	hooks    []Hook
	mutation *WordMutation
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdate) Where(ps ...predicate.Word) *WordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHanzi sets the "hanzi" field.
func (_u *WordUpdate) SetHanzi(v string) *WordUpdate {
	_u.mutation.SetHanzi(v)
	return _u
}

// SetNillableHanzi sets the "hanzi" field if the given value is not nil.
func (_u *WordUpdate) SetNillableHanzi(v *string) *WordUpdate {
	if v != nil {
		_u.SetHanzi(*v)
	}
	return _u
}

// SetPinyin sets the "pinyin" field.
func (_u *WordUpdate) SetPinyin(v string) *WordUpdate {
	_u.mutation.SetPinyin(v)
	return _u
}

// SetNillablePinyin sets the "pinyin" field if the given value is not nil.
func (_u *WordUpdate) SetNillablePinyin(v *string) *WordUpdate {
	if v != nil {
		_u.SetPinyin(*v)
	}
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *WordUpdate) SetMeaning(v string) *WordUpdate {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *WordUpdate) SetNillableMeaning(v *string) *WordUpdate {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetBackground sets the "background" field.
func (_u *WordUpdate) SetBackground(v string) *WordUpdate {
	_u.mutation.SetBackground(v)
	return _u
}

// SetNillableBackground sets the "background" field if the given value is not nil.
func (_u *WordUpdate) SetNillableBackground(v *string) *WordUpdate {
	if v != nil {
		_u.SetBackground(*v)
	}
	return _u
}

// SetOriginYear sets the "origin_year" field.
func (_u *WordUpdate) SetOriginYear(v int) *WordUpdate {
	_u.mutation.ResetOriginYear()
	_u.mutation.SetOriginYear(v)
	return _u
}

// SetNillableOriginYear sets the "origin_year" field if the given value is not nil.
func (_u *WordUpdate) SetNillableOriginYear(v *int) *WordUpdate {
	if v != nil {
		_u.SetOriginYear(*v)
	}
	return _u
}

// AddOriginYear adds value to the "origin_year" field.
func (_u *WordUpdate) AddOriginYear(v int) *WordUpdate {
	_u.mutation.AddOriginYear(v)
	return _u
}

// SetOriginMonth sets the "origin_month" field.
func (_u *WordUpdate) SetOriginMonth(v int) *WordUpdate {
	_u.mutation.ResetOriginMonth()
	_u.mutation.SetOriginMonth(v)
	return _u
}

// SetNillableOriginMonth sets the "origin_month" field if the given value is not nil.
func (_u *WordUpdate) SetNillableOriginMonth(v *int) *WordUpdate {
	if v != nil {
		_u.SetOriginMonth(*v)
	}
	return _u
}

// AddOriginMonth adds value to the "origin_month" field.
func (_u *WordUpdate) AddOriginMonth(v int) *WordUpdate {
	_u.mutation.AddOriginMonth(v)
	return _u
}

// SetPopularity sets the "popularity" field.
func (_u *WordUpdate) SetPopularity(v int) *WordUpdate {
	_u.mutation.ResetPopularity()
	_u.mutation.SetPopularity(v)
	return _u
}

// SetNillablePopularity sets the "popularity" field if the given value is not nil.
func (_u *WordUpdate) SetNillablePopularity(v *int) *WordUpdate {
	if v != nil {
		_u.SetPopularity(*v)
	}
	return _u
}

// AddPopularity adds value to the "popularity" field.
func (_u *WordUpdate) AddPopularity(v int) *WordUpdate {
	_u.mutation.AddPopularity(v)
	return _u
}

// SetCategoryID sets the "category" edge to the Category entity by ID.
func (_u *WordUpdate) SetCategoryID(id int) *WordUpdate {
	_u.mutation.SetCategoryID(id)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *WordUpdate) SetCategory(v *Category) *WordUpdate {
	return _u.SetCategoryID(v.ID)
}

// AddSentenceIDs adds the "sentences" edge to the Sentence entity by IDs.
func (_u *WordUpdate) AddSentenceIDs(ids ...int) *WordUpdate {
	_u.mutation.AddSentenceIDs(ids...)
	return _u
}

// AddSentences adds the "sentences" edges to the Sentence entity.
func (_u *WordUpdate) AddSentences(v ...*Sentence) *WordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSentenceIDs(ids...)
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdate) Mutation() *WordMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *WordUpdate) ClearCategory() *WordUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// ClearSentences clears all "sentences" edges to the Sentence entity.
func (_u *WordUpdate) ClearSentences() *WordUpdate {
	_u.mutation.ClearSentences()
	return _u
}

// RemoveSentenceIDs removes the "sentences" edge to Sentence entities by IDs.
func (_u *WordUpdate) RemoveSentenceIDs(ids ...int) *WordUpdate {
	_u.mutation.RemoveSentenceIDs(ids...)
	return _u
}

// RemoveSentences removes "sentences" edges to Sentence entities.
func (_u *WordUpdate) RemoveSentences(v ...*Sentence) *WordUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSentenceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdate) check() error {
	if v, ok := _u.mutation.Hanzi(); ok {
		if err := word.HanziValidator(v); err != nil {
			return &ValidationError{Name: "hanzi", err: fmt.Errorf(`ent: validator failed for field "Word.hanzi": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pinyin(); ok {
		if err := word.PinyinValidator(v); err != nil {
			return &ValidationError{Name: "pinyin", err: fmt.Errorf(`ent: validator failed for field "Word.pinyin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Meaning(); ok {
		if err := word.MeaningValidator(v); err != nil {
			return &ValidationError{Name: "meaning", err: fmt.Errorf(`ent: validator failed for field "Word.meaning": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Word.category"`)
	}
	return nil
}

func (_u *WordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Hanzi(); ok {
		_spec.SetField(word.FieldHanzi, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pinyin(); ok {
		_spec.SetField(word.FieldPinyin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(word.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Background(); ok {
		_spec.SetField(word.FieldBackground, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginYear(); ok {
		_spec.SetField(word.FieldOriginYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginYear(); ok {
		_spec.AddField(word.FieldOriginYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginMonth(); ok {
		_spec.SetField(word.FieldOriginMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginMonth(); ok {
		_spec.AddField(word.FieldOriginMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Popularity(); ok {
		_spec.SetField(word.FieldPopularity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPopularity(); ok {
		_spec.AddField(word.FieldPopularity, field.TypeInt, value)
	}
	if _u.mutation.CategoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SentencesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSentencesIDs(); len(nodes) > 0 && !_u.mutation.SentencesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SentencesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WordUpdateOne is the builder for updating a single Word entity.
type WordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WordMutation
}

// SetHanzi sets the "hanzi" field.
func (_u *WordUpdateOne) SetHanzi(v string) *WordUpdateOne {
	_u.mutation.SetHanzi(v)
	return _u
}

// SetNillableHanzi sets the "hanzi" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableHanzi(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetHanzi(*v)
	}
	return _u
}

// SetPinyin sets the "pinyin" field.
func (_u *WordUpdateOne) SetPinyin(v string) *WordUpdateOne {
	_u.mutation.SetPinyin(v)
	return _u
}

// SetNillablePinyin sets the "pinyin" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillablePinyin(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetPinyin(*v)
	}
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *WordUpdateOne) SetMeaning(v string) *WordUpdateOne {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableMeaning(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetBackground sets the "background" field.
func (_u *WordUpdateOne) SetBackground(v string) *WordUpdateOne {
	_u.mutation.SetBackground(v)
	return _u
}

// SetNillableBackground sets the "background" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableBackground(v *string) *WordUpdateOne {
	if v != nil {
		_u.SetBackground(*v)
	}
	return _u
}

// SetOriginYear sets the "origin_year" field.
func (_u *WordUpdateOne) SetOriginYear(v int) *WordUpdateOne {
	_u.mutation.ResetOriginYear()
	_u.mutation.SetOriginYear(v)
	return _u
}

// SetNillableOriginYear sets the "origin_year" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableOriginYear(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetOriginYear(*v)
	}
	return _u
}

// AddOriginYear adds value to the "origin_year" field.
func (_u *WordUpdateOne) AddOriginYear(v int) *WordUpdateOne {
	_u.mutation.AddOriginYear(v)
	return _u
}

// SetOriginMonth sets the "origin_month" field.
func (_u *WordUpdateOne) SetOriginMonth(v int) *WordUpdateOne {
	_u.mutation.ResetOriginMonth()
	_u.mutation.SetOriginMonth(v)
	return _u
}

// SetNillableOriginMonth sets the "origin_month" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillableOriginMonth(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetOriginMonth(*v)
	}
	return _u
}

// AddOriginMonth adds value to the "origin_month" field.
func (_u *WordUpdateOne) AddOriginMonth(v int) *WordUpdateOne {
	_u.mutation.AddOriginMonth(v)
	return _u
}

// SetPopularity sets the "popularity" field.
func (_u *WordUpdateOne) SetPopularity(v int) *WordUpdateOne {
	_u.mutation.ResetPopularity()
	_u.mutation.SetPopularity(v)
	return _u
}

// SetNillablePopularity sets the "popularity" field if the given value is not nil.
func (_u *WordUpdateOne) SetNillablePopularity(v *int) *WordUpdateOne {
	if v != nil {
		_u.SetPopularity(*v)
	}
	return _u
}

// AddPopularity adds value to the "popularity" field.
func (_u *WordUpdateOne) AddPopularity(v int) *WordUpdateOne {
	_u.mutation.AddPopularity(v)
	return _u
}

// SetCategoryID sets the "category" edge to the Category entity by ID.
func (_u *WordUpdateOne) SetCategoryID(id int) *WordUpdateOne {
	_u.mutation.SetCategoryID(id)
	return _u
}

// SetCategory sets the "category" edge to the Category entity.
func (_u *WordUpdateOne) SetCategory(v *Category) *WordUpdateOne {
	return _u.SetCategoryID(v.ID)
}

// AddSentenceIDs adds the "sentences" edge to the Sentence entity by IDs.
func (_u *WordUpdateOne) AddSentenceIDs(ids ...int) *WordUpdateOne {
	_u.mutation.AddSentenceIDs(ids...)
	return _u
}

// AddSentences adds the "sentences" edges to the Sentence entity.
func (_u *WordUpdateOne) AddSentences(v ...*Sentence) *WordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSentenceIDs(ids...)
}

// Mutation returns the WordMutation object of the builder.
func (_u *WordUpdateOne) Mutation() *WordMutation {
	return _u.mutation
}

// ClearCategory clears the "category" edge to the Category entity.
func (_u *WordUpdateOne) ClearCategory() *WordUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// ClearSentences clears all "sentences" edges to the Sentence entity.
func (_u *WordUpdateOne) ClearSentences() *WordUpdateOne {
	_u.mutation.ClearSentences()
	return _u
}

// RemoveSentenceIDs removes the "sentences" edge to Sentence entities by IDs.
func (_u *WordUpdateOne) RemoveSentenceIDs(ids ...int) *WordUpdateOne {
	_u.mutation.RemoveSentenceIDs(ids...)
	return _u
}

// RemoveSentences removes "sentences" edges to Sentence entities.
func (_u *WordUpdateOne) RemoveSentences(v ...*Sentence) *WordUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSentenceIDs(ids...)
}

// Where appends a list predicates to the WordUpdate builder.
func (_u *WordUpdateOne) Where(ps ...predicate.Word) *WordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WordUpdateOne) Select(field string, fields ...string) *WordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Word entity.
func (_u *WordUpdateOne) Save(ctx context.Context) (*Word, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordUpdateOne) SaveX(ctx context.Context) *Word {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordUpdateOne) check() error {
	if v, ok := _u.mutation.Hanzi(); ok {
		if err := word.HanziValidator(v); err != nil {
			return &ValidationError{Name: "hanzi", err: fmt.Errorf(`ent: validator failed for field "Word.hanzi": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Pinyin(); ok {
		if err := word.PinyinValidator(v); err != nil {
			return &ValidationError{Name: "pinyin", err: fmt.Errorf(`ent: validator failed for field "Word.pinyin": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Meaning(); ok {
		if err := word.MeaningValidator(v); err != nil {
			return &ValidationError{Name: "meaning", err: fmt.Errorf(`ent: validator failed for field "Word.meaning": %w`, err)}
		}
	}
	if _u.mutation.CategoryCleared() && len(_u.mutation.CategoryIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Word.category"`)
	}
	return nil
}

func (_u *WordUpdateOne) sqlSave(ctx context.Context) (_node *Word, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(word.Table, word.Columns, sqlgraph.NewFieldSpec(word.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Word.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, word.FieldID)
		for _, f := range fields {
			if !word.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != word.FieldID {
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
	if value, ok := _u.mutation.Hanzi(); ok {
		_spec.SetField(word.FieldHanzi, field.TypeString, value)
	}
	if value, ok := _u.mutation.Pinyin(); ok {
		_spec.SetField(word.FieldPinyin, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(word.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.Background(); ok {
		_spec.SetField(word.FieldBackground, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginYear(); ok {
		_spec.SetField(word.FieldOriginYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginYear(); ok {
		_spec.AddField(word.FieldOriginYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginMonth(); ok {
		_spec.SetField(word.FieldOriginMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOriginMonth(); ok {
		_spec.AddField(word.FieldOriginMonth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Popularity(); ok {
		_spec.SetField(word.FieldPopularity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPopularity(); ok {
		_spec.AddField(word.FieldPopularity, field.TypeInt, value)
	}
	if _u.mutation.CategoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CategoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SentencesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSentencesIDs(); len(nodes) > 0 && !_u.mutation.SentencesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SentencesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Word{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{word.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
