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
	"github.com/sevrusik/turthsnapbot/ent/analysis"
	"github.com/sevrusik/turthsnapbot/ent/dailyusage"
	"github.com/sevrusik/turthsnapbot/ent/user"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUsername sets the "username" field.
func (_c *UserCreate) SetUsername(v string) *UserCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *UserCreate) SetNillableUsername(v *string) *UserCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *UserCreate) SetFirstName(v string) *UserCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_c *UserCreate) SetNillableFirstName(v *string) *UserCreate {
	if v != nil {
		_c.SetFirstName(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *UserCreate) SetTier(v user.Tier) *UserCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *UserCreate) SetNillableTier(v *user.Tier) *UserCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetDailyChecksRemaining sets the "daily_checks_remaining" field.
func (_c *UserCreate) SetDailyChecksRemaining(v int) *UserCreate {
	_c.mutation.SetDailyChecksRemaining(v)
	return _c
}

// SetNillableDailyChecksRemaining sets the "daily_checks_remaining" field if the given value is not nil.
func (_c *UserCreate) SetNillableDailyChecksRemaining(v *int) *UserCreate {
	if v != nil {
		_c.SetDailyChecksRemaining(*v)
	}
	return _c
}

// SetQuotaResetDate sets the "quota_reset_date" field.
func (_c *UserCreate) SetQuotaResetDate(v time.Time) *UserCreate {
	_c.mutation.SetQuotaResetDate(v)
	return _c
}

// SetNillableQuotaResetDate sets the "quota_reset_date" field if the given value is not nil.
func (_c *UserCreate) SetNillableQuotaResetDate(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetQuotaResetDate(*v)
	}
	return _c
}

// SetTotalChecks sets the "total_checks" field.
func (_c *UserCreate) SetTotalChecks(v int) *UserCreate {
	_c.mutation.SetTotalChecks(v)
	return _c
}

// SetNillableTotalChecks sets the "total_checks" field if the given value is not nil.
func (_c *UserCreate) SetNillableTotalChecks(v *int) *UserCreate {
	if v != nil {
		_c.SetTotalChecks(*v)
	}
	return _c
}

// SetSubscriptionExpiresAt sets the "subscription_expires_at" field.
func (_c *UserCreate) SetSubscriptionExpiresAt(v time.Time) *UserCreate {
	_c.mutation.SetSubscriptionExpiresAt(v)
	return _c
}

// SetNillableSubscriptionExpiresAt sets the "subscription_expires_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableSubscriptionExpiresAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetSubscriptionExpiresAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *UserCreate) SetLastSeenAt(v time.Time) *UserCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastSeenAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v int64) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_c *UserCreate) AddAnalysisIDs(ids ...string) *UserCreate {
	_c.mutation.AddAnalysisIDs(ids...)
	return _c
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_c *UserCreate) AddAnalyses(v ...*Analysis) *UserCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAnalysisIDs(ids...)
}

// AddDailyUsageIDs adds the "daily_usages" edge to the DailyUsage entity by IDs.
func (_c *UserCreate) AddDailyUsageIDs(ids ...int) *UserCreate {
	_c.mutation.AddDailyUsageIDs(ids...)
	return _c
}

// AddDailyUsages adds the "daily_usages" edges to the DailyUsage entity.
func (_c *UserCreate) AddDailyUsages(v ...*DailyUsage) *UserCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDailyUsageIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.Tier(); !ok {
		v := user.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.DailyChecksRemaining(); !ok {
		v := user.DefaultDailyChecksRemaining
		_c.mutation.SetDailyChecksRemaining(v)
	}
	if _, ok := _c.mutation.QuotaResetDate(); !ok {
		v := user.DefaultQuotaResetDate()
		_c.mutation.SetQuotaResetDate(v)
	}
	if _, ok := _c.mutation.TotalChecks(); !ok {
		v := user.DefaultTotalChecks
		_c.mutation.SetTotalChecks(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		v := user.DefaultLastSeenAt()
		_c.mutation.SetLastSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "User.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := user.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "User.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DailyChecksRemaining(); !ok {
		return &ValidationError{Name: "daily_checks_remaining", err: errors.New(`ent: missing required field "User.daily_checks_remaining"`)}
	}
	if _, ok := _c.mutation.QuotaResetDate(); !ok {
		return &ValidationError{Name: "quota_reset_date", err: errors.New(`ent: missing required field "User.quota_reset_date"`)}
	}
	if _, ok := _c.mutation.TotalChecks(); !ok {
		return &ValidationError{Name: "total_checks", err: errors.New(`ent: missing required field "User.total_checks"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "User.created_at"`)}
	}
	if _, ok := _c.mutation.LastSeenAt(); !ok {
		return &ValidationError{Name: "last_seen_at", err: errors.New(`ent: missing required field "User.last_seen_at"`)}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
		_node.Username = &value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(user.FieldFirstName, field.TypeString, value)
		_node.FirstName = &value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(user.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.DailyChecksRemaining(); ok {
		_spec.SetField(user.FieldDailyChecksRemaining, field.TypeInt, value)
		_node.DailyChecksRemaining = value
	}
	if value, ok := _c.mutation.QuotaResetDate(); ok {
		_spec.SetField(user.FieldQuotaResetDate, field.TypeTime, value)
		_node.QuotaResetDate = value
	}
	if value, ok := _c.mutation.TotalChecks(); ok {
		_spec.SetField(user.FieldTotalChecks, field.TypeInt, value)
		_node.TotalChecks = value
	}
	if value, ok := _c.mutation.SubscriptionExpiresAt(); ok {
		_spec.SetField(user.FieldSubscriptionExpiresAt, field.TypeTime, value)
		_node.SubscriptionExpiresAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(user.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = value
	}
	if nodes := _c.mutation.AnalysesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AnalysesTable,
			Columns: []string{user.AnalysesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DailyUsagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.DailyUsagesTable,
			Columns: []string{user.DailyUsagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dailyusage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.Create().
//		SetUsername(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetUsername(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreate) OnConflict(opts ...sql.ConflictOption) *UserUpsertOne {
	_c.conflict = opts
	return &UserUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreate) OnConflictColumns(columns ...string) *UserUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertOne{
		create: _c,
	}
}

type (
	// UserUpsertOne is the builder for "upsert"-ing
	//  one User node.
	UserUpsertOne struct {
		create *UserCreate
	}

	// UserUpsert is the "OnConflict" setter.
	UserUpsert struct {
		*sql.UpdateSet
	}
)

// SetUsername sets the "username" field.
func (u *UserUpsert) SetUsername(v string) *UserUpsert {
	u.Set(user.FieldUsername, v)
	return u
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *UserUpsert) UpdateUsername() *UserUpsert {
	u.SetExcluded(user.FieldUsername)
	return u
}

// ClearUsername clears the value of the "username" field.
func (u *UserUpsert) ClearUsername() *UserUpsert {
	u.SetNull(user.FieldUsername)
	return u
}

// SetFirstName sets the "first_name" field.
func (u *UserUpsert) SetFirstName(v string) *UserUpsert {
	u.Set(user.FieldFirstName, v)
	return u
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *UserUpsert) UpdateFirstName() *UserUpsert {
	u.SetExcluded(user.FieldFirstName)
	return u
}

// ClearFirstName clears the value of the "first_name" field.
func (u *UserUpsert) ClearFirstName() *UserUpsert {
	u.SetNull(user.FieldFirstName)
	return u
}

// SetTier sets the "tier" field.
func (u *UserUpsert) SetTier(v user.Tier) *UserUpsert {
	u.Set(user.FieldTier, v)
	return u
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *UserUpsert) UpdateTier() *UserUpsert {
	u.SetExcluded(user.FieldTier)
	return u
}

// SetDailyChecksRemaining sets the "daily_checks_remaining" field.
func (u *UserUpsert) SetDailyChecksRemaining(v int) *UserUpsert {
	u.Set(user.FieldDailyChecksRemaining, v)
	return u
}

// UpdateDailyChecksRemaining sets the "daily_checks_remaining" field to the value that was provided on create.
func (u *UserUpsert) UpdateDailyChecksRemaining() *UserUpsert {
	u.SetExcluded(user.FieldDailyChecksRemaining)
	return u
}

// AddDailyChecksRemaining adds v to the "daily_checks_remaining" field.
func (u *UserUpsert) AddDailyChecksRemaining(v int) *UserUpsert {
	u.Add(user.FieldDailyChecksRemaining, v)
	return u
}

// SetQuotaResetDate sets the "quota_reset_date" field.
func (u *UserUpsert) SetQuotaResetDate(v time.Time) *UserUpsert {
	u.Set(user.FieldQuotaResetDate, v)
	return u
}

// UpdateQuotaResetDate sets the "quota_reset_date" field to the value that was provided on create.
func (u *UserUpsert) UpdateQuotaResetDate() *UserUpsert {
	u.SetExcluded(user.FieldQuotaResetDate)
	return u
}

// SetTotalChecks sets the "total_checks" field.
func (u *UserUpsert) SetTotalChecks(v int) *UserUpsert {
	u.Set(user.FieldTotalChecks, v)
	return u
}

// UpdateTotalChecks sets the "total_checks" field to the value that was provided on create.
func (u *UserUpsert) UpdateTotalChecks() *UserUpsert {
	u.SetExcluded(user.FieldTotalChecks)
	return u
}

// AddTotalChecks adds v to the "total_checks" field.
func (u *UserUpsert) AddTotalChecks(v int) *UserUpsert {
	u.Add(user.FieldTotalChecks, v)
	return u
}

// SetSubscriptionExpiresAt sets the "subscription_expires_at" field.
func (u *UserUpsert) SetSubscriptionExpiresAt(v time.Time) *UserUpsert {
	u.Set(user.FieldSubscriptionExpiresAt, v)
	return u
}

// UpdateSubscriptionExpiresAt sets the "subscription_expires_at" field to the value that was provided on create.
func (u *UserUpsert) UpdateSubscriptionExpiresAt() *UserUpsert {
	u.SetExcluded(user.FieldSubscriptionExpiresAt)
	return u
}

// ClearSubscriptionExpiresAt clears the value of the "subscription_expires_at" field.
func (u *UserUpsert) ClearSubscriptionExpiresAt() *UserUpsert {
	u.SetNull(user.FieldSubscriptionExpiresAt)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *UserUpsert) SetLastSeenAt(v time.Time) *UserUpsert {
	u.Set(user.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *UserUpsert) UpdateLastSeenAt() *UserUpsert {
	u.SetExcluded(user.FieldLastSeenAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertOne) UpdateNewValues() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(user.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(user.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *UserUpsertOne) Ignore() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertOne) DoNothing() *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreate.OnConflict
// documentation for more info.
func (u *UserUpsertOne) Update(set func(*UserUpsert)) *UserUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetUsername sets the "username" field.
func (u *UserUpsertOne) SetUsername(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateUsername() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateUsername()
	})
}

// ClearUsername clears the value of the "username" field.
func (u *UserUpsertOne) ClearUsername() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearUsername()
	})
}

// SetFirstName sets the "first_name" field.
func (u *UserUpsertOne) SetFirstName(v string) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateFirstName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateFirstName()
	})
}

// ClearFirstName clears the value of the "first_name" field.
func (u *UserUpsertOne) ClearFirstName() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearFirstName()
	})
}

// SetTier sets the "tier" field.
func (u *UserUpsertOne) SetTier(v user.Tier) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateTier() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTier()
	})
}

// SetDailyChecksRemaining sets the "daily_checks_remaining" field.
func (u *UserUpsertOne) SetDailyChecksRemaining(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetDailyChecksRemaining(v)
	})
}

// AddDailyChecksRemaining adds v to the "daily_checks_remaining" field.
func (u *UserUpsertOne) AddDailyChecksRemaining(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddDailyChecksRemaining(v)
	})
}

// UpdateDailyChecksRemaining sets the "daily_checks_remaining" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateDailyChecksRemaining() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDailyChecksRemaining()
	})
}

// SetQuotaResetDate sets the "quota_reset_date" field.
func (u *UserUpsertOne) SetQuotaResetDate(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetQuotaResetDate(v)
	})
}

// UpdateQuotaResetDate sets the "quota_reset_date" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateQuotaResetDate() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateQuotaResetDate()
	})
}

// SetTotalChecks sets the "total_checks" field.
func (u *UserUpsertOne) SetTotalChecks(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetTotalChecks(v)
	})
}

// AddTotalChecks adds v to the "total_checks" field.
func (u *UserUpsertOne) AddTotalChecks(v int) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.AddTotalChecks(v)
	})
}

// UpdateTotalChecks sets the "total_checks" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateTotalChecks() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTotalChecks()
	})
}

// SetSubscriptionExpiresAt sets the "subscription_expires_at" field.
func (u *UserUpsertOne) SetSubscriptionExpiresAt(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetSubscriptionExpiresAt(v)
	})
}

// UpdateSubscriptionExpiresAt sets the "subscription_expires_at" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateSubscriptionExpiresAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateSubscriptionExpiresAt()
	})
}

// ClearSubscriptionExpiresAt clears the value of the "subscription_expires_at" field.
func (u *UserUpsertOne) ClearSubscriptionExpiresAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.ClearSubscriptionExpiresAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *UserUpsertOne) SetLastSeenAt(v time.Time) *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *UserUpsertOne) UpdateLastSeenAt() *UserUpsertOne {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *UserUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *UserUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *UserUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
	conflict []sql.ConflictOption
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
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
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.User.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.UserUpsert) {
//			SetUsername(v+v).
//		}).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflict(opts ...sql.ConflictOption) *UserUpsertBulk {
	_c.conflict = opts
	return &UserUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *UserCreateBulk) OnConflictColumns(columns ...string) *UserUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &UserUpsertBulk{
		create: _c,
	}
}

// UserUpsertBulk is the builder for "upsert"-ing
// a bulk of User nodes.
type UserUpsertBulk struct {
	create *UserCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(user.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *UserUpsertBulk) UpdateNewValues() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(user.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(user.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.User.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *UserUpsertBulk) Ignore() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *UserUpsertBulk) DoNothing() *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the UserCreateBulk.OnConflict
// documentation for more info.
func (u *UserUpsertBulk) Update(set func(*UserUpsert)) *UserUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&UserUpsert{UpdateSet: update})
	}))
	return u
}

// SetUsername sets the "username" field.
func (u *UserUpsertBulk) SetUsername(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetUsername(v)
	})
}

// UpdateUsername sets the "username" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateUsername() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateUsername()
	})
}

// ClearUsername clears the value of the "username" field.
func (u *UserUpsertBulk) ClearUsername() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearUsername()
	})
}

// SetFirstName sets the "first_name" field.
func (u *UserUpsertBulk) SetFirstName(v string) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetFirstName(v)
	})
}

// UpdateFirstName sets the "first_name" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateFirstName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateFirstName()
	})
}

// ClearFirstName clears the value of the "first_name" field.
func (u *UserUpsertBulk) ClearFirstName() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearFirstName()
	})
}

// SetTier sets the "tier" field.
func (u *UserUpsertBulk) SetTier(v user.Tier) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateTier() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTier()
	})
}

// SetDailyChecksRemaining sets the "daily_checks_remaining" field.
func (u *UserUpsertBulk) SetDailyChecksRemaining(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetDailyChecksRemaining(v)
	})
}

// AddDailyChecksRemaining adds v to the "daily_checks_remaining" field.
func (u *UserUpsertBulk) AddDailyChecksRemaining(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddDailyChecksRemaining(v)
	})
}

// UpdateDailyChecksRemaining sets the "daily_checks_remaining" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateDailyChecksRemaining() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateDailyChecksRemaining()
	})
}

// SetQuotaResetDate sets the "quota_reset_date" field.
func (u *UserUpsertBulk) SetQuotaResetDate(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetQuotaResetDate(v)
	})
}

// UpdateQuotaResetDate sets the "quota_reset_date" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateQuotaResetDate() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateQuotaResetDate()
	})
}

// SetTotalChecks sets the "total_checks" field.
func (u *UserUpsertBulk) SetTotalChecks(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetTotalChecks(v)
	})
}

// AddTotalChecks adds v to the "total_checks" field.
func (u *UserUpsertBulk) AddTotalChecks(v int) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.AddTotalChecks(v)
	})
}

// UpdateTotalChecks sets the "total_checks" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateTotalChecks() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateTotalChecks()
	})
}

// SetSubscriptionExpiresAt sets the "subscription_expires_at" field.
func (u *UserUpsertBulk) SetSubscriptionExpiresAt(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetSubscriptionExpiresAt(v)
	})
}

// UpdateSubscriptionExpiresAt sets the "subscription_expires_at" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateSubscriptionExpiresAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateSubscriptionExpiresAt()
	})
}

// ClearSubscriptionExpiresAt clears the value of the "subscription_expires_at" field.
func (u *UserUpsertBulk) ClearSubscriptionExpiresAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.ClearSubscriptionExpiresAt()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *UserUpsertBulk) SetLastSeenAt(v time.Time) *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *UserUpsertBulk) UpdateLastSeenAt() *UserUpsertBulk {
	return u.Update(func(s *UserUpsert) {
		s.UpdateLastSeenAt()
	})
}

// Exec executes the query.
func (u *UserUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the UserCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for UserCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *UserUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
