// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sevrusik/turthsnapbot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFirstName, v))
}

// DailyChecksRemaining applies equality check predicate on the "daily_checks_remaining" field. It's identical to DailyChecksRemainingEQ.
func DailyChecksRemaining(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDailyChecksRemaining, v))
}

// QuotaResetDate applies equality check predicate on the "quota_reset_date" field. It's identical to QuotaResetDateEQ.
func QuotaResetDate(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldQuotaResetDate, v))
}

// TotalChecks applies equality check predicate on the "total_checks" field. It's identical to TotalChecksEQ.
func TotalChecks(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalChecks, v))
}

// SubscriptionExpiresAt applies equality check predicate on the "subscription_expires_at" field. It's identical to SubscriptionExpiresAtEQ.
func SubscriptionExpiresAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSubscriptionExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// LastSeenAt applies equality check predicate on the "last_seen_at" field. It's identical to LastSeenAtEQ.
func LastSeenAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastSeenAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameIsNil applies the IsNil predicate on the "username" field.
func UsernameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldUsername))
}

// UsernameNotNil applies the NotNil predicate on the "username" field.
func UsernameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldUsername))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldUsername, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameIsNil applies the IsNil predicate on the "first_name" field.
func FirstNameIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldFirstName))
}

// FirstNameNotNil applies the NotNil predicate on the "first_name" field.
func FirstNameNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldFirstName))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldFirstName, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v Tier) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v Tier) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...Tier) predicate.User {
	return predicate.User(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...Tier) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTier, vs...))
}

// DailyChecksRemainingEQ applies the EQ predicate on the "daily_checks_remaining" field.
func DailyChecksRemainingEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldDailyChecksRemaining, v))
}

// DailyChecksRemainingNEQ applies the NEQ predicate on the "daily_checks_remaining" field.
func DailyChecksRemainingNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldDailyChecksRemaining, v))
}

// DailyChecksRemainingIn applies the In predicate on the "daily_checks_remaining" field.
func DailyChecksRemainingIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldDailyChecksRemaining, vs...))
}

// DailyChecksRemainingNotIn applies the NotIn predicate on the "daily_checks_remaining" field.
func DailyChecksRemainingNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldDailyChecksRemaining, vs...))
}

// DailyChecksRemainingGT applies the GT predicate on the "daily_checks_remaining" field.
func DailyChecksRemainingGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldDailyChecksRemaining, v))
}

// DailyChecksRemainingGTE applies the GTE predicate on the "daily_checks_remaining" field.
func DailyChecksRemainingGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldDailyChecksRemaining, v))
}

// DailyChecksRemainingLT applies the LT predicate on the "daily_checks_remaining" field.
func DailyChecksRemainingLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldDailyChecksRemaining, v))
}

// DailyChecksRemainingLTE applies the LTE predicate on the "daily_checks_remaining" field.
func DailyChecksRemainingLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldDailyChecksRemaining, v))
}

// QuotaResetDateEQ applies the EQ predicate on the "quota_reset_date" field.
func QuotaResetDateEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldQuotaResetDate, v))
}

// QuotaResetDateNEQ applies the NEQ predicate on the "quota_reset_date" field.
func QuotaResetDateNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldQuotaResetDate, v))
}

// QuotaResetDateIn applies the In predicate on the "quota_reset_date" field.
func QuotaResetDateIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldQuotaResetDate, vs...))
}

// QuotaResetDateNotIn applies the NotIn predicate on the "quota_reset_date" field.
func QuotaResetDateNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldQuotaResetDate, vs...))
}

// QuotaResetDateGT applies the GT predicate on the "quota_reset_date" field.
func QuotaResetDateGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldQuotaResetDate, v))
}

// QuotaResetDateGTE applies the GTE predicate on the "quota_reset_date" field.
func QuotaResetDateGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldQuotaResetDate, v))
}

// QuotaResetDateLT applies the LT predicate on the "quota_reset_date" field.
func QuotaResetDateLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldQuotaResetDate, v))
}

// QuotaResetDateLTE applies the LTE predicate on the "quota_reset_date" field.
func QuotaResetDateLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldQuotaResetDate, v))
}

// TotalChecksEQ applies the EQ predicate on the "total_checks" field.
func TotalChecksEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldTotalChecks, v))
}

// TotalChecksNEQ applies the NEQ predicate on the "total_checks" field.
func TotalChecksNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldTotalChecks, v))
}

// TotalChecksIn applies the In predicate on the "total_checks" field.
func TotalChecksIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldTotalChecks, vs...))
}

// TotalChecksNotIn applies the NotIn predicate on the "total_checks" field.
func TotalChecksNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldTotalChecks, vs...))
}

// TotalChecksGT applies the GT predicate on the "total_checks" field.
func TotalChecksGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldTotalChecks, v))
}

// TotalChecksGTE applies the GTE predicate on the "total_checks" field.
func TotalChecksGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldTotalChecks, v))
}

// TotalChecksLT applies the LT predicate on the "total_checks" field.
func TotalChecksLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldTotalChecks, v))
}

// TotalChecksLTE applies the LTE predicate on the "total_checks" field.
func TotalChecksLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldTotalChecks, v))
}

// SubscriptionExpiresAtEQ applies the EQ predicate on the "subscription_expires_at" field.
func SubscriptionExpiresAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldSubscriptionExpiresAt, v))
}

// SubscriptionExpiresAtNEQ applies the NEQ predicate on the "subscription_expires_at" field.
func SubscriptionExpiresAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldSubscriptionExpiresAt, v))
}

// SubscriptionExpiresAtIn applies the In predicate on the "subscription_expires_at" field.
func SubscriptionExpiresAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldSubscriptionExpiresAt, vs...))
}

// SubscriptionExpiresAtNotIn applies the NotIn predicate on the "subscription_expires_at" field.
func SubscriptionExpiresAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldSubscriptionExpiresAt, vs...))
}

// SubscriptionExpiresAtGT applies the GT predicate on the "subscription_expires_at" field.
func SubscriptionExpiresAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldSubscriptionExpiresAt, v))
}

// SubscriptionExpiresAtGTE applies the GTE predicate on the "subscription_expires_at" field.
func SubscriptionExpiresAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldSubscriptionExpiresAt, v))
}

// SubscriptionExpiresAtLT applies the LT predicate on the "subscription_expires_at" field.
func SubscriptionExpiresAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldSubscriptionExpiresAt, v))
}

// SubscriptionExpiresAtLTE applies the LTE predicate on the "subscription_expires_at" field.
func SubscriptionExpiresAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldSubscriptionExpiresAt, v))
}

// SubscriptionExpiresAtIsNil applies the IsNil predicate on the "subscription_expires_at" field.
func SubscriptionExpiresAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldSubscriptionExpiresAt))
}

// SubscriptionExpiresAtNotNil applies the NotNil predicate on the "subscription_expires_at" field.
func SubscriptionExpiresAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldSubscriptionExpiresAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// LastSeenAtEQ applies the EQ predicate on the "last_seen_at" field.
func LastSeenAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastSeenAt, v))
}

// LastSeenAtNEQ applies the NEQ predicate on the "last_seen_at" field.
func LastSeenAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastSeenAt, v))
}

// LastSeenAtIn applies the In predicate on the "last_seen_at" field.
func LastSeenAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastSeenAt, vs...))
}

// LastSeenAtNotIn applies the NotIn predicate on the "last_seen_at" field.
func LastSeenAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastSeenAt, vs...))
}

// LastSeenAtGT applies the GT predicate on the "last_seen_at" field.
func LastSeenAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastSeenAt, v))
}

// LastSeenAtGTE applies the GTE predicate on the "last_seen_at" field.
func LastSeenAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastSeenAt, v))
}

// LastSeenAtLT applies the LT predicate on the "last_seen_at" field.
func LastSeenAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastSeenAt, v))
}

// LastSeenAtLTE applies the LTE predicate on the "last_seen_at" field.
func LastSeenAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastSeenAt, v))
}

// HasAnalyses applies the HasEdge predicate on the "analyses" edge.
func HasAnalyses() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AnalysesTable, AnalysesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysesWith applies the HasEdge predicate on the "analyses" edge with a given conditions (other predicates).
func HasAnalysesWith(preds ...predicate.Analysis) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newAnalysesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDailyUsages applies the HasEdge predicate on the "daily_usages" edge.
func HasDailyUsages() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DailyUsagesTable, DailyUsagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDailyUsagesWith applies the HasEdge predicate on the "daily_usages" edge with a given conditions (other predicates).
func HasDailyUsagesWith(preds ...predicate.DailyUsage) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newDailyUsagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
