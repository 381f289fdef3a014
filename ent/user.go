// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sevrusik/turthsnapbot/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// Username holds the value of the "username" field.
	Username *string `json:"username,omitempty"`
	// FirstName holds the value of the "first_name" field.
	FirstName *string `json:"first_name,omitempty"`
	// Tier holds the value of the "tier" field.
	Tier user.Tier `json:"tier,omitempty"`
	// Free-tier quota; reset when quota_reset_date rolls over
	DailyChecksRemaining int `json:"daily_checks_remaining,omitempty"`
	// QuotaResetDate holds the value of the "quota_reset_date" field.
	QuotaResetDate time.Time `json:"quota_reset_date,omitempty"`
	// TotalChecks holds the value of the "total_checks" field.
	TotalChecks int `json:"total_checks,omitempty"`
	// SubscriptionExpiresAt holds the value of the "subscription_expires_at" field.
	SubscriptionExpiresAt *time.Time `json:"subscription_expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// LastSeenAt holds the value of the "last_seen_at" field.
	LastSeenAt time.Time `json:"last_seen_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UserQuery when eager-loading is set.
	Edges        UserEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UserEdges holds the relations/edges for other nodes in the graph.
type UserEdges struct {
	// Analyses holds the value of the analyses edge.
	Analyses []*Analysis `json:"analyses,omitempty"`
	// DailyUsages holds the value of the daily_usages edge.
	DailyUsages []*DailyUsage `json:"daily_usages,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AnalysesOrErr returns the Analyses value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) AnalysesOrErr() ([]*Analysis, error) {
	if e.loadedTypes[0] {
		return e.Analyses, nil
	}
	return nil, &NotLoadedError{edge: "analyses"}
}

// DailyUsagesOrErr returns the DailyUsages value or an error if the edge
// was not loaded in eager-loading.
func (e UserEdges) DailyUsagesOrErr() ([]*DailyUsage, error) {
	if e.loadedTypes[1] {
		return e.DailyUsages, nil
	}
	return nil, &NotLoadedError{edge: "daily_usages"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldID, user.FieldDailyChecksRemaining, user.FieldTotalChecks:
			values[i] = new(sql.NullInt64)
		case user.FieldUsername, user.FieldFirstName, user.FieldTier:
			values[i] = new(sql.NullString)
		case user.FieldQuotaResetDate, user.FieldSubscriptionExpiresAt, user.FieldCreatedAt, user.FieldLastSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case user.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = new(string)
				*_m.Username = value.String
			}
		case user.FieldFirstName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field first_name", values[i])
			} else if value.Valid {
				_m.FirstName = new(string)
				*_m.FirstName = value.String
			}
		case user.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = user.Tier(value.String)
			}
		case user.FieldDailyChecksRemaining:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_checks_remaining", values[i])
			} else if value.Valid {
				_m.DailyChecksRemaining = int(value.Int64)
			}
		case user.FieldQuotaResetDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field quota_reset_date", values[i])
			} else if value.Valid {
				_m.QuotaResetDate = value.Time
			}
		case user.FieldTotalChecks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_checks", values[i])
			} else if value.Valid {
				_m.TotalChecks = int(value.Int64)
			}
		case user.FieldSubscriptionExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_expires_at", values[i])
			} else if value.Valid {
				_m.SubscriptionExpiresAt = new(time.Time)
				*_m.SubscriptionExpiresAt = value.Time
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldLastSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen_at", values[i])
			} else if value.Valid {
				_m.LastSeenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAnalyses queries the "analyses" edge of the User entity.
func (_m *User) QueryAnalyses() *AnalysisQuery {
	return NewUserClient(_m.config).QueryAnalyses(_m)
}

// QueryDailyUsages queries the "daily_usages" edge of the User entity.
func (_m *User) QueryDailyUsages() *DailyUsageQuery {
	return NewUserClient(_m.config).QueryDailyUsages(_m)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.Username; v != nil {
		builder.WriteString("username=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FirstName; v != nil {
		builder.WriteString("first_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("daily_checks_remaining=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyChecksRemaining))
	builder.WriteString(", ")
	builder.WriteString("quota_reset_date=")
	builder.WriteString(_m.QuotaResetDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_checks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalChecks))
	builder.WriteString(", ")
	if v := _m.SubscriptionExpiresAt; v != nil {
		builder.WriteString("subscription_expires_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_seen_at=")
	builder.WriteString(_m.LastSeenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
