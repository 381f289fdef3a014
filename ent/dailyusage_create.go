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
	"github.com/sevrusik/turthsnapbot/ent/user"
)

// DailyUsageCreate is the builder for creating a DailyUsage entity.
type DailyUsageCreate struct {
	config
	mutation *DailyUsageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *DailyUsageCreate) SetUserID(v int64) *DailyUsageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDay sets the "day" field.
func (_c *DailyUsageCreate) SetDay(v time.Time) *DailyUsageCreate {
	_c.mutation.SetDay(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *DailyUsageCreate) SetCount(v int) *DailyUsageCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *DailyUsageCreate) SetNillableCount(v *int) *DailyUsageCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *DailyUsageCreate) SetUser(v *User) *DailyUsageCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the DailyUsageMutation object of the builder.
func (_c *DailyUsageCreate) Mutation() *DailyUsageMutation {
	return _c.mutation
}

// Save creates the DailyUsage in the database.
func (_c *DailyUsageCreate) Save(ctx context.Context) (*DailyUsage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyUsageCreate) SaveX(ctx context.Context) *DailyUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyUsageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyUsageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyUsageCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := dailyusage.DefaultCount
		_c.mutation.SetCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyUsageCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DailyUsage.user_id"`)}
	}
	if _, ok := _c.mutation.Day(); !ok {
		return &ValidationError{Name: "day", err: errors.New(`ent: missing required field "DailyUsage.day"`)}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "DailyUsage.count"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "DailyUsage.user"`)}
	}
	return nil
}

func (_c *DailyUsageCreate) sqlSave(ctx context.Context) (*DailyUsage, error) {
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

func (_c *DailyUsageCreate) createSpec() (*DailyUsage, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyUsage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailyusage.Table, sqlgraph.NewFieldSpec(dailyusage.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Day(); ok {
		_spec.SetField(dailyusage.FieldDay, field.TypeTime, value)
		_node.Day = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(dailyusage.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DailyUsage.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DailyUsageUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DailyUsageCreate) OnConflict(opts ...sql.ConflictOption) *DailyUsageUpsertOne {
	_c.conflict = opts
	return &DailyUsageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DailyUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DailyUsageCreate) OnConflictColumns(columns ...string) *DailyUsageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DailyUsageUpsertOne{
		create: _c,
	}
}

type (
	// DailyUsageUpsertOne is the builder for "upsert"-ing
	//  one DailyUsage node.
	DailyUsageUpsertOne struct {
		create *DailyUsageCreate
	}

	// DailyUsageUpsert is the "OnConflict" setter.
	DailyUsageUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *DailyUsageUpsert) SetUserID(v int64) *DailyUsageUpsert {
	u.Set(dailyusage.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DailyUsageUpsert) UpdateUserID() *DailyUsageUpsert {
	u.SetExcluded(dailyusage.FieldUserID)
	return u
}

// SetDay sets the "day" field.
func (u *DailyUsageUpsert) SetDay(v time.Time) *DailyUsageUpsert {
	u.Set(dailyusage.FieldDay, v)
	return u
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *DailyUsageUpsert) UpdateDay() *DailyUsageUpsert {
	u.SetExcluded(dailyusage.FieldDay)
	return u
}

// SetCount sets the "count" field.
func (u *DailyUsageUpsert) SetCount(v int) *DailyUsageUpsert {
	u.Set(dailyusage.FieldCount, v)
	return u
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *DailyUsageUpsert) UpdateCount() *DailyUsageUpsert {
	u.SetExcluded(dailyusage.FieldCount)
	return u
}

// AddCount adds v to the "count" field.
func (u *DailyUsageUpsert) AddCount(v int) *DailyUsageUpsert {
	u.Add(dailyusage.FieldCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.DailyUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DailyUsageUpsertOne) UpdateNewValues() *DailyUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DailyUsage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DailyUsageUpsertOne) Ignore() *DailyUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DailyUsageUpsertOne) DoNothing() *DailyUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DailyUsageCreate.OnConflict
// documentation for more info.
func (u *DailyUsageUpsertOne) Update(set func(*DailyUsageUpsert)) *DailyUsageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DailyUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *DailyUsageUpsertOne) SetUserID(v int64) *DailyUsageUpsertOne {
	return u.Update(func(s *DailyUsageUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DailyUsageUpsertOne) UpdateUserID() *DailyUsageUpsertOne {
	return u.Update(func(s *DailyUsageUpsert) {
		s.UpdateUserID()
	})
}

// SetDay sets the "day" field.
func (u *DailyUsageUpsertOne) SetDay(v time.Time) *DailyUsageUpsertOne {
	return u.Update(func(s *DailyUsageUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *DailyUsageUpsertOne) UpdateDay() *DailyUsageUpsertOne {
	return u.Update(func(s *DailyUsageUpsert) {
		s.UpdateDay()
	})
}

// SetCount sets the "count" field.
func (u *DailyUsageUpsertOne) SetCount(v int) *DailyUsageUpsertOne {
	return u.Update(func(s *DailyUsageUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *DailyUsageUpsertOne) AddCount(v int) *DailyUsageUpsertOne {
	return u.Update(func(s *DailyUsageUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *DailyUsageUpsertOne) UpdateCount() *DailyUsageUpsertOne {
	return u.Update(func(s *DailyUsageUpsert) {
		s.UpdateCount()
	})
}

// Exec executes the query.
func (u *DailyUsageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DailyUsageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DailyUsageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DailyUsageUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DailyUsageUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DailyUsageCreateBulk is the builder for creating many DailyUsage entities in bulk.
type DailyUsageCreateBulk struct {
	config
	err      error
	builders []*DailyUsageCreate
	conflict []sql.ConflictOption
}

// Save creates the DailyUsage entities in the database.
func (_c *DailyUsageCreateBulk) Save(ctx context.Context) ([]*DailyUsage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyUsage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyUsageMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *DailyUsageCreateBulk) SaveX(ctx context.Context) []*DailyUsage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyUsageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyUsageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DailyUsage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DailyUsageUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *DailyUsageCreateBulk) OnConflict(opts ...sql.ConflictOption) *DailyUsageUpsertBulk {
	_c.conflict = opts
	return &DailyUsageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DailyUsage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DailyUsageCreateBulk) OnConflictColumns(columns ...string) *DailyUsageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DailyUsageUpsertBulk{
		create: _c,
	}
}

// DailyUsageUpsertBulk is the builder for "upsert"-ing
// a bulk of DailyUsage nodes.
type DailyUsageUpsertBulk struct {
	create *DailyUsageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DailyUsage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DailyUsageUpsertBulk) UpdateNewValues() *DailyUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DailyUsage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DailyUsageUpsertBulk) Ignore() *DailyUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DailyUsageUpsertBulk) DoNothing() *DailyUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DailyUsageCreateBulk.OnConflict
// documentation for more info.
func (u *DailyUsageUpsertBulk) Update(set func(*DailyUsageUpsert)) *DailyUsageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DailyUsageUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *DailyUsageUpsertBulk) SetUserID(v int64) *DailyUsageUpsertBulk {
	return u.Update(func(s *DailyUsageUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *DailyUsageUpsertBulk) UpdateUserID() *DailyUsageUpsertBulk {
	return u.Update(func(s *DailyUsageUpsert) {
		s.UpdateUserID()
	})
}

// SetDay sets the "day" field.
func (u *DailyUsageUpsertBulk) SetDay(v time.Time) *DailyUsageUpsertBulk {
	return u.Update(func(s *DailyUsageUpsert) {
		s.SetDay(v)
	})
}

// UpdateDay sets the "day" field to the value that was provided on create.
func (u *DailyUsageUpsertBulk) UpdateDay() *DailyUsageUpsertBulk {
	return u.Update(func(s *DailyUsageUpsert) {
		s.UpdateDay()
	})
}

// SetCount sets the "count" field.
func (u *DailyUsageUpsertBulk) SetCount(v int) *DailyUsageUpsertBulk {
	return u.Update(func(s *DailyUsageUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *DailyUsageUpsertBulk) AddCount(v int) *DailyUsageUpsertBulk {
	return u.Update(func(s *DailyUsageUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *DailyUsageUpsertBulk) UpdateCount() *DailyUsageUpsertBulk {
	return u.Update(func(s *DailyUsageUpsert) {
		s.UpdateCount()
	})
}

// Exec executes the query.
func (u *DailyUsageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DailyUsageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DailyUsageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DailyUsageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
