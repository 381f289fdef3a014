// Code generated by ent, DO NOT EDIT.

package dailyusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sevrusik/turthsnapbot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldEQ(FieldUserID, v))
}

// Day applies equality check predicate on the "day" field. It's identical to DayEQ.
func Day(v time.Time) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldEQ(FieldDay, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldEQ(FieldCount, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldNotIn(FieldUserID, vs...))
}

// DayEQ applies the EQ predicate on the "day" field.
func DayEQ(v time.Time) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldEQ(FieldDay, v))
}

// DayNEQ applies the NEQ predicate on the "day" field.
func DayNEQ(v time.Time) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldNEQ(FieldDay, v))
}

// DayIn applies the In predicate on the "day" field.
func DayIn(vs ...time.Time) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldIn(FieldDay, vs...))
}

// DayNotIn applies the NotIn predicate on the "day" field.
func DayNotIn(vs ...time.Time) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldNotIn(FieldDay, vs...))
}

// DayGT applies the GT predicate on the "day" field.
func DayGT(v time.Time) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldGT(FieldDay, v))
}

// DayGTE applies the GTE predicate on the "day" field.
func DayGTE(v time.Time) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldGTE(FieldDay, v))
}

// DayLT applies the LT predicate on the "day" field.
func DayLT(v time.Time) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldLT(FieldDay, v))
}

// DayLTE applies the LTE predicate on the "day" field.
func DayLTE(v time.Time) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldLTE(FieldDay, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.DailyUsage {
	return predicate.DailyUsage(sql.FieldLTE(FieldCount, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.DailyUsage {
	return predicate.DailyUsage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.DailyUsage {
	return predicate.DailyUsage(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyUsage) predicate.DailyUsage {
	return predicate.DailyUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyUsage) predicate.DailyUsage {
	return predicate.DailyUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyUsage) predicate.DailyUsage {
	return predicate.DailyUsage(sql.NotPredicates(p))
}
