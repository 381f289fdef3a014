// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Analysis is the predicate function for analysis builders.
type Analysis func(*sql.Selector)

// AnalysisJob is the predicate function for analysisjob builders.
type AnalysisJob func(*sql.Selector)

// DailyUsage is the predicate function for dailyusage builders.
type DailyUsage func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
