// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldTier holds the string denoting the tier field in the database.
	FieldTier = "tier"
	// FieldDailyChecksRemaining holds the string denoting the daily_checks_remaining field in the database.
	FieldDailyChecksRemaining = "daily_checks_remaining"
	// FieldQuotaResetDate holds the string denoting the quota_reset_date field in the database.
	FieldQuotaResetDate = "quota_reset_date"
	// FieldTotalChecks holds the string denoting the total_checks field in the database.
	FieldTotalChecks = "total_checks"
	// FieldSubscriptionExpiresAt holds the string denoting the subscription_expires_at field in the database.
	FieldSubscriptionExpiresAt = "subscription_expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// EdgeAnalyses holds the string denoting the analyses edge name in mutations.
	EdgeAnalyses = "analyses"
	// EdgeDailyUsages holds the string denoting the daily_usages edge name in mutations.
	EdgeDailyUsages = "daily_usages"
	// AnalysisFieldID holds the string denoting the ID field of the Analysis.
	AnalysisFieldID = "analysis_id"
	// DailyUsageFieldID holds the string denoting the ID field of the DailyUsage.
	DailyUsageFieldID = "id"
	// Table holds the table name of the user in the database.
	Table = "users"
	// AnalysesTable is the table that holds the analyses relation/edge.
	AnalysesTable = "analyses"
	// AnalysesInverseTable is the table name for the Analysis entity.
	// It exists in this package in order to avoid circular dependency with the "analysis" package.
	AnalysesInverseTable = "analyses"
	// AnalysesColumn is the table column denoting the analyses relation/edge.
	AnalysesColumn = "user_id"
	// DailyUsagesTable is the table that holds the daily_usages relation/edge.
	DailyUsagesTable = "daily_usages"
	// DailyUsagesInverseTable is the table name for the DailyUsage entity.
	// It exists in this package in order to avoid circular dependency with the "dailyusage" package.
	DailyUsagesInverseTable = "daily_usages"
	// DailyUsagesColumn is the table column denoting the daily_usages relation/edge.
	DailyUsagesColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldUsername,
	FieldFirstName,
	FieldTier,
	FieldDailyChecksRemaining,
	FieldQuotaResetDate,
	FieldTotalChecks,
	FieldSubscriptionExpiresAt,
	FieldCreatedAt,
	FieldLastSeenAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDailyChecksRemaining holds the default value on creation for the "daily_checks_remaining" field.
	DefaultDailyChecksRemaining int
	// DefaultQuotaResetDate holds the default value on creation for the "quota_reset_date" field.
	DefaultQuotaResetDate func() time.Time
	// DefaultTotalChecks holds the default value on creation for the "total_checks" field.
	DefaultTotalChecks int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastSeenAt holds the default value on creation for the "last_seen_at" field.
	DefaultLastSeenAt func() time.Time
)

// Tier defines the type for the "tier" enum field.
type Tier string

// TierFree is the default value of the Tier enum.
const DefaultTier = TierFree

// Tier values.
const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

func (t Tier) String() string {
	return string(t)
}

// TierValidator is a validator for the "tier" field enum values. It is called by the builders before save.
func TierValidator(t Tier) error {
	switch t {
	case TierFree, TierPro:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for tier field: %q", t)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByTier orders the results by the tier field.
func ByTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTier, opts...).ToFunc()
}

// ByDailyChecksRemaining orders the results by the daily_checks_remaining field.
func ByDailyChecksRemaining(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyChecksRemaining, opts...).ToFunc()
}

// ByQuotaResetDate orders the results by the quota_reset_date field.
func ByQuotaResetDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuotaResetDate, opts...).ToFunc()
}

// ByTotalChecks orders the results by the total_checks field.
func ByTotalChecks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalChecks, opts...).ToFunc()
}

// BySubscriptionExpiresAt orders the results by the subscription_expires_at field.
func BySubscriptionExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubscriptionExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByAnalysesCount orders the results by analyses count.
func ByAnalysesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAnalysesStep(), opts...)
	}
}

// ByAnalyses orders the results by analyses terms.
func ByAnalyses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAnalysesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDailyUsagesCount orders the results by daily_usages count.
func ByDailyUsagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDailyUsagesStep(), opts...)
	}
}

// ByDailyUsages orders the results by daily_usages terms.
func ByDailyUsages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDailyUsagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAnalysesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AnalysesInverseTable, AnalysisFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AnalysesTable, AnalysesColumn),
	)
}
func newDailyUsagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DailyUsagesInverseTable, DailyUsageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DailyUsagesTable, DailyUsagesColumn),
	)
}
