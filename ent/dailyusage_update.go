// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sevrusik/turthsnapbot/ent/dailyusage"
	"github.com/sevrusik/turthsnapbot/ent/predicate"
	"github.com/sevrusik/turthsnapbot/ent/user"
)

// DailyUsageUpdate is the builder for updating DailyUsage entities.
type DailyUsageUpdate struct {
	config
	hooks    []Hook
	mutation *DailyUsageMutation
}

// Where appends a list predicates to the DailyUsageUpdate builder.
func (_u *DailyUsageUpdate) Where(ps ...predicate.DailyUsage) *DailyUsageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DailyUsageUpdate) SetUserID(v int64) *DailyUsageUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DailyUsageUpdate) SetNillableUserID(v *int64) *DailyUsageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *DailyUsageUpdate) SetDay(v time.Time) *DailyUsageUpdate {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *DailyUsageUpdate) SetNillableDay(v *time.Time) *DailyUsageUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *DailyUsageUpdate) SetCount(v int) *DailyUsageUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *DailyUsageUpdate) SetNillableCount(v *int) *DailyUsageUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *DailyUsageUpdate) AddCount(v int) *DailyUsageUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DailyUsageUpdate) SetUser(v *User) *DailyUsageUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the DailyUsageMutation object of the builder.
func (_u *DailyUsageUpdate) Mutation() *DailyUsageMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DailyUsageUpdate) ClearUser() *DailyUsageUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyUsageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyUsageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyUsageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyUsageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyUsageUpdate) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DailyUsage.user"`)
	}
	return nil
}

func (_u *DailyUsageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyusage.Table, dailyusage.Columns, sqlgraph.NewFieldSpec(dailyusage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(dailyusage.FieldDay, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(dailyusage.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(dailyusage.FieldCount, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dailyusage.UserTable,
			Columns: []string{dailyusage.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dailyusage.UserTable,
			Columns: []string{dailyusage.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyUsageUpdateOne is the builder for updating a single DailyUsage entity.
type DailyUsageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyUsageMutation
}

// SetUserID sets the "user_id" field.
func (_u *DailyUsageUpdateOne) SetUserID(v int64) *DailyUsageUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DailyUsageUpdateOne) SetNillableUserID(v *int64) *DailyUsageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *DailyUsageUpdateOne) SetDay(v time.Time) *DailyUsageUpdateOne {
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *DailyUsageUpdateOne) SetNillableDay(v *time.Time) *DailyUsageUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *DailyUsageUpdateOne) SetCount(v int) *DailyUsageUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *DailyUsageUpdateOne) SetNillableCount(v *int) *DailyUsageUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *DailyUsageUpdateOne) AddCount(v int) *DailyUsageUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *DailyUsageUpdateOne) SetUser(v *User) *DailyUsageUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the DailyUsageMutation object of the builder.
func (_u *DailyUsageUpdateOne) Mutation() *DailyUsageMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *DailyUsageUpdateOne) ClearUser() *DailyUsageUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the DailyUsageUpdate builder.
func (_u *DailyUsageUpdateOne) Where(ps ...predicate.DailyUsage) *DailyUsageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyUsageUpdateOne) Select(field string, fields ...string) *DailyUsageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyUsage entity.
func (_u *DailyUsageUpdateOne) Save(ctx context.Context) (*DailyUsage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyUsageUpdateOne) SaveX(ctx context.Context) *DailyUsage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyUsageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyUsageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyUsageUpdateOne) check() error {
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DailyUsage.user"`)
	}
	return nil
}

func (_u *DailyUsageUpdateOne) sqlSave(ctx context.Context) (_node *DailyUsage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailyusage.Table, dailyusage.Columns, sqlgraph.NewFieldSpec(dailyusage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyUsage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailyusage.FieldID)
		for _, f := range fields {
			if !dailyusage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailyusage.FieldID {
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
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(dailyusage.FieldDay, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(dailyusage.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(dailyusage.FieldCount, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dailyusage.UserTable,
			Columns: []string{dailyusage.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dailyusage.UserTable,
			Columns: []string{dailyusage.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DailyUsage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailyusage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
