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
	"github.com/sevrusik/turthsnapbot/ent/predicate"
	"github.com/sevrusik/turthsnapbot/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUsername sets the "username" field.
func (_u *UserUpdate) SetUsername(v string) *UserUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserUpdate) SetNillableUsername(v *string) *UserUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *UserUpdate) ClearUsername() *UserUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *UserUpdate) SetFirstName(v string) *UserUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableFirstName(v *string) *UserUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *UserUpdate) ClearFirstName() *UserUpdate {
	_u.mutation.ClearFirstName()
	return _u
}

// SetTier sets the "tier" field.
func (_u *UserUpdate) SetTier(v user.Tier) *UserUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTier(v *user.Tier) *UserUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetDailyChecksRemaining sets the "daily_checks_remaining" field.
func (_u *UserUpdate) SetDailyChecksRemaining(v int) *UserUpdate {
	_u.mutation.ResetDailyChecksRemaining()
	_u.mutation.SetDailyChecksRemaining(v)
	return _u
}

// SetNillableDailyChecksRemaining sets the "daily_checks_remaining" field if the given value is not nil.
func (_u *UserUpdate) SetNillableDailyChecksRemaining(v *int) *UserUpdate {
	if v != nil {
		_u.SetDailyChecksRemaining(*v)
	}
	return _u
}

// AddDailyChecksRemaining adds value to the "daily_checks_remaining" field.
func (_u *UserUpdate) AddDailyChecksRemaining(v int) *UserUpdate {
	_u.mutation.AddDailyChecksRemaining(v)
	return _u
}

// SetQuotaResetDate sets the "quota_reset_date" field.
func (_u *UserUpdate) SetQuotaResetDate(v time.Time) *UserUpdate {
	_u.mutation.SetQuotaResetDate(v)
	return _u
}

// SetNillableQuotaResetDate sets the "quota_reset_date" field if the given value is not nil.
func (_u *UserUpdate) SetNillableQuotaResetDate(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetQuotaResetDate(*v)
	}
	return _u
}

// SetTotalChecks sets the "total_checks" field.
func (_u *UserUpdate) SetTotalChecks(v int) *UserUpdate {
	_u.mutation.ResetTotalChecks()
	_u.mutation.SetTotalChecks(v)
	return _u
}

// SetNillableTotalChecks sets the "total_checks" field if the given value is not nil.
func (_u *UserUpdate) SetNillableTotalChecks(v *int) *UserUpdate {
	if v != nil {
		_u.SetTotalChecks(*v)
	}
	return _u
}

// AddTotalChecks adds value to the "total_checks" field.
func (_u *UserUpdate) AddTotalChecks(v int) *UserUpdate {
	_u.mutation.AddTotalChecks(v)
	return _u
}

// SetSubscriptionExpiresAt sets the "subscription_expires_at" field.
func (_u *UserUpdate) SetSubscriptionExpiresAt(v time.Time) *UserUpdate {
	_u.mutation.SetSubscriptionExpiresAt(v)
	return _u
}

// SetNillableSubscriptionExpiresAt sets the "subscription_expires_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableSubscriptionExpiresAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetSubscriptionExpiresAt(*v)
	}
	return _u
}

// ClearSubscriptionExpiresAt clears the value of the "subscription_expires_at" field.
func (_u *UserUpdate) ClearSubscriptionExpiresAt() *UserUpdate {
	_u.mutation.ClearSubscriptionExpiresAt()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *UserUpdate) SetLastSeenAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastSeenAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_u *UserUpdate) AddAnalysisIDs(ids ...string) *UserUpdate {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_u *UserUpdate) AddAnalyses(v ...*Analysis) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// AddDailyUsageIDs adds the "daily_usages" edge to the DailyUsage entity by IDs.
func (_u *UserUpdate) AddDailyUsageIDs(ids ...int) *UserUpdate {
	_u.mutation.AddDailyUsageIDs(ids...)
	return _u
}

// AddDailyUsages adds the "daily_usages" edges to the DailyUsage entity.
func (_u *UserUpdate) AddDailyUsages(v ...*DailyUsage) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDailyUsageIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// ClearAnalyses clears all "analyses" edges to the Analysis entity.
func (_u *UserUpdate) ClearAnalyses() *UserUpdate {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to Analysis entities by IDs.
func (_u *UserUpdate) RemoveAnalysisIDs(ids ...string) *UserUpdate {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to Analysis entities.
func (_u *UserUpdate) RemoveAnalyses(v ...*Analysis) *UserUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearDailyUsages clears all "daily_usages" edges to the DailyUsage entity.
func (_u *UserUpdate) ClearDailyUsages() *UserUpdate {
	_u.mutation.ClearDailyUsages()
	return _u
}

// RemoveDailyUsageIDs removes the "daily_usages" edge to DailyUsage entities by IDs.
func (_u *UserUpdate) RemoveDailyUsageIDs(ids ...int) *UserUpdate {
	_u.mutation.RemoveDailyUsageIDs(ids...)
	return _u
}

// RemoveDailyUsages removes "daily_usages" edges to DailyUsage entities.
func (_u *UserUpdate) RemoveDailyUsages(v ...*DailyUsage) *UserUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDailyUsageIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := user.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "User.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(user.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(user.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(user.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(user.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DailyChecksRemaining(); ok {
		_spec.SetField(user.FieldDailyChecksRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyChecksRemaining(); ok {
		_spec.AddField(user.FieldDailyChecksRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuotaResetDate(); ok {
		_spec.SetField(user.FieldQuotaResetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalChecks(); ok {
		_spec.SetField(user.FieldTotalChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChecks(); ok {
		_spec.AddField(user.FieldTotalChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubscriptionExpiresAt(); ok {
		_spec.SetField(user.FieldSubscriptionExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionExpiresAtCleared() {
		_spec.ClearField(user.FieldSubscriptionExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(user.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DailyUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDailyUsagesIDs(); len(nodes) > 0 && !_u.mutation.DailyUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DailyUsagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetUsername sets the "username" field.
func (_u *UserUpdateOne) SetUsername(v string) *UserUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableUsername(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *UserUpdateOne) ClearUsername() *UserUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *UserUpdateOne) SetFirstName(v string) *UserUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableFirstName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// ClearFirstName clears the value of the "first_name" field.
func (_u *UserUpdateOne) ClearFirstName() *UserUpdateOne {
	_u.mutation.ClearFirstName()
	return _u
}

// SetTier sets the "tier" field.
func (_u *UserUpdateOne) SetTier(v user.Tier) *UserUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTier(v *user.Tier) *UserUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetDailyChecksRemaining sets the "daily_checks_remaining" field.
func (_u *UserUpdateOne) SetDailyChecksRemaining(v int) *UserUpdateOne {
	_u.mutation.ResetDailyChecksRemaining()
	_u.mutation.SetDailyChecksRemaining(v)
	return _u
}

// SetNillableDailyChecksRemaining sets the "daily_checks_remaining" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableDailyChecksRemaining(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetDailyChecksRemaining(*v)
	}
	return _u
}

// AddDailyChecksRemaining adds value to the "daily_checks_remaining" field.
func (_u *UserUpdateOne) AddDailyChecksRemaining(v int) *UserUpdateOne {
	_u.mutation.AddDailyChecksRemaining(v)
	return _u
}

// SetQuotaResetDate sets the "quota_reset_date" field.
func (_u *UserUpdateOne) SetQuotaResetDate(v time.Time) *UserUpdateOne {
	_u.mutation.SetQuotaResetDate(v)
	return _u
}

// SetNillableQuotaResetDate sets the "quota_reset_date" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableQuotaResetDate(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetQuotaResetDate(*v)
	}
	return _u
}

// SetTotalChecks sets the "total_checks" field.
func (_u *UserUpdateOne) SetTotalChecks(v int) *UserUpdateOne {
	_u.mutation.ResetTotalChecks()
	_u.mutation.SetTotalChecks(v)
	return _u
}

// SetNillableTotalChecks sets the "total_checks" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableTotalChecks(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetTotalChecks(*v)
	}
	return _u
}

// AddTotalChecks adds value to the "total_checks" field.
func (_u *UserUpdateOne) AddTotalChecks(v int) *UserUpdateOne {
	_u.mutation.AddTotalChecks(v)
	return _u
}

// SetSubscriptionExpiresAt sets the "subscription_expires_at" field.
func (_u *UserUpdateOne) SetSubscriptionExpiresAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetSubscriptionExpiresAt(v)
	return _u
}

// SetNillableSubscriptionExpiresAt sets the "subscription_expires_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableSubscriptionExpiresAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetSubscriptionExpiresAt(*v)
	}
	return _u
}

// ClearSubscriptionExpiresAt clears the value of the "subscription_expires_at" field.
func (_u *UserUpdateOne) ClearSubscriptionExpiresAt() *UserUpdateOne {
	_u.mutation.ClearSubscriptionExpiresAt()
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *UserUpdateOne) SetLastSeenAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastSeenAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by IDs.
func (_u *UserUpdateOne) AddAnalysisIDs(ids ...string) *UserUpdateOne {
	_u.mutation.AddAnalysisIDs(ids...)
	return _u
}

// AddAnalyses adds the "analyses" edges to the Analysis entity.
func (_u *UserUpdateOne) AddAnalyses(v ...*Analysis) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAnalysisIDs(ids...)
}

// AddDailyUsageIDs adds the "daily_usages" edge to the DailyUsage entity by IDs.
func (_u *UserUpdateOne) AddDailyUsageIDs(ids ...int) *UserUpdateOne {
	_u.mutation.AddDailyUsageIDs(ids...)
	return _u
}

// AddDailyUsages adds the "daily_usages" edges to the DailyUsage entity.
func (_u *UserUpdateOne) AddDailyUsages(v ...*DailyUsage) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDailyUsageIDs(ids...)
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// ClearAnalyses clears all "analyses" edges to the Analysis entity.
func (_u *UserUpdateOne) ClearAnalyses() *UserUpdateOne {
	_u.mutation.ClearAnalyses()
	return _u
}

// RemoveAnalysisIDs removes the "analyses" edge to Analysis entities by IDs.
func (_u *UserUpdateOne) RemoveAnalysisIDs(ids ...string) *UserUpdateOne {
	_u.mutation.RemoveAnalysisIDs(ids...)
	return _u
}

// RemoveAnalyses removes "analyses" edges to Analysis entities.
func (_u *UserUpdateOne) RemoveAnalyses(v ...*Analysis) *UserUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAnalysisIDs(ids...)
}

// ClearDailyUsages clears all "daily_usages" edges to the DailyUsage entity.
func (_u *UserUpdateOne) ClearDailyUsages() *UserUpdateOne {
	_u.mutation.ClearDailyUsages()
	return _u
}

// RemoveDailyUsageIDs removes the "daily_usages" edge to DailyUsage entities by IDs.
func (_u *UserUpdateOne) RemoveDailyUsageIDs(ids ...int) *UserUpdateOne {
	_u.mutation.RemoveDailyUsageIDs(ids...)
	return _u
}

// RemoveDailyUsages removes "daily_usages" edges to DailyUsage entities.
func (_u *UserUpdateOne) RemoveDailyUsages(v ...*DailyUsage) *UserUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDailyUsageIDs(ids...)
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Tier(); ok {
		if err := user.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "User.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(user.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(user.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(user.FieldFirstName, field.TypeString, value)
	}
	if _u.mutation.FirstNameCleared() {
		_spec.ClearField(user.FieldFirstName, field.TypeString)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(user.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DailyChecksRemaining(); ok {
		_spec.SetField(user.FieldDailyChecksRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyChecksRemaining(); ok {
		_spec.AddField(user.FieldDailyChecksRemaining, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuotaResetDate(); ok {
		_spec.SetField(user.FieldQuotaResetDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalChecks(); ok {
		_spec.SetField(user.FieldTotalChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalChecks(); ok {
		_spec.AddField(user.FieldTotalChecks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubscriptionExpiresAt(); ok {
		_spec.SetField(user.FieldSubscriptionExpiresAt, field.TypeTime, value)
	}
	if _u.mutation.SubscriptionExpiresAtCleared() {
		_spec.ClearField(user.FieldSubscriptionExpiresAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(user.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAnalysesIDs(); len(nodes) > 0 && !_u.mutation.AnalysesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DailyUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDailyUsagesIDs(); len(nodes) > 0 && !_u.mutation.DailyUsagesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DailyUsagesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
