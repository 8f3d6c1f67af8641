// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/practiceevent"
	"github.com/Jun-ho-Kim-ops/chinese-slang-app/ent/predicate"
)

// PracticeEventUpdate is the builder for updating PracticeEvent entities.
type PracticeEventUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeEventMutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdate) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *PracticeEventUpdate) SetMode(v string) *PracticeEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableMode(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetItemsSeen sets the "items_seen" field.
func (_u *PracticeEventUpdate) SetItemsSeen(v int) *PracticeEventUpdate {
	_u.mutation.ResetItemsSeen()
	_u.mutation.SetItemsSeen(v)
	return _u
}

// SetNillableItemsSeen sets the "items_seen" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableItemsSeen(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetItemsSeen(*v)
	}
	return _u
}

// AddItemsSeen adds value to the "items_seen" field.
func (_u *PracticeEventUpdate) AddItemsSeen(v int) *PracticeEventUpdate {
	_u.mutation.AddItemsSeen(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PracticeEventUpdate) SetCompleted(v int) *PracticeEventUpdate {
	_u.mutation.ResetCompleted()
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableCompleted(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// AddCompleted adds value to the "completed" field.
func (_u *PracticeEventUpdate) AddCompleted(v int) *PracticeEventUpdate {
	_u.mutation.AddCompleted(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *PracticeEventUpdate) SetDurationSecs(v int) *PracticeEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableDurationSecs(v *int) *PracticeEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *PracticeEventUpdate) AddDurationSecs(v int) *PracticeEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdate) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := practiceevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(practiceevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsSeen(); ok {
		_spec.SetField(practiceevent.FieldItemsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsSeen(); ok {
		_spec.AddField(practiceevent.FieldItemsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(practiceevent.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompleted(); ok {
		_spec.AddField(practiceevent.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(practiceevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(practiceevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeEventUpdateOne is the builder for updating a single PracticeEvent entity.
type PracticeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeEventMutation
}

// SetMode sets the "mode" field.
func (_u *PracticeEventUpdateOne) SetMode(v string) *PracticeEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableMode(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetItemsSeen sets the "items_seen" field.
func (_u *PracticeEventUpdateOne) SetItemsSeen(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetItemsSeen()
	_u.mutation.SetItemsSeen(v)
	return _u
}

// SetNillableItemsSeen sets the "items_seen" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableItemsSeen(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetItemsSeen(*v)
	}
	return _u
}

// AddItemsSeen adds value to the "items_seen" field.
func (_u *PracticeEventUpdateOne) AddItemsSeen(v int) *PracticeEventUpdateOne {
	_u.mutation.AddItemsSeen(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *PracticeEventUpdateOne) SetCompleted(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetCompleted()
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableCompleted(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// AddCompleted adds value to the "completed" field.
func (_u *PracticeEventUpdateOne) AddCompleted(v int) *PracticeEventUpdateOne {
	_u.mutation.AddCompleted(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *PracticeEventUpdateOne) SetDurationSecs(v int) *PracticeEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableDurationSecs(v *int) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *PracticeEventUpdateOne) AddDurationSecs(v int) *PracticeEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdateOne) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdateOne) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeEventUpdateOne) Select(field string, fields ...string) *PracticeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeEvent entity.
func (_u *PracticeEventUpdateOne) Save(ctx context.Context) (*PracticeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) SaveX(ctx context.Context) *PracticeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := practiceevent.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdateOne) sqlSave(ctx context.Context) (_node *PracticeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceevent.FieldID)
		for _, f := range fields {
			if !practiceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceevent.FieldID {
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
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(practiceevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.ItemsSeen(); ok {
		_spec.SetField(practiceevent.FieldItemsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemsSeen(); ok {
		_spec.AddField(practiceevent.FieldItemsSeen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(practiceevent.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompleted(); ok {
		_spec.AddField(practiceevent.FieldCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(practiceevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(practiceevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &PracticeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
