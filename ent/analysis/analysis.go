// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the analysis type in the database.
	Label = "analysis"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "analysis_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldScenario holds the string denoting the scenario field in the database.
	FieldScenario = "scenario"
	// FieldVerdict holds the string denoting the verdict field in the database.
	FieldVerdict = "verdict"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldVerdictReason holds the string denoting the verdict_reason field in the database.
	FieldVerdictReason = "verdict_reason"
	// FieldImageSha256 holds the string denoting the image_sha256 field in the database.
	FieldImageSha256 = "image_sha256"
	// FieldPhash holds the string denoting the phash field in the database.
	FieldPhash = "phash"
	// FieldBlobKey holds the string denoting the blob_key field in the database.
	FieldBlobKey = "blob_key"
	// FieldPreserveExif holds the string denoting the preserve_exif field in the database.
	FieldPreserveExif = "preserve_exif"
	// FieldProcessingTimeMs holds the string denoting the processing_time_ms field in the database.
	FieldProcessingTimeMs = "processing_time_ms"
	// FieldResultBlob holds the string denoting the result_blob field in the database.
	FieldResultBlob = "result_blob"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeUser holds the string denoting the user edge name in mutations.
	EdgeUser = "user"
	// UserFieldID holds the string denoting the ID field of the User.
	UserFieldID = "user_id"
	// Table holds the table name of the analysis in the database.
	Table = "analyses"
	// UserTable is the table that holds the user relation/edge.
	UserTable = "analyses"
	// UserInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	UserInverseTable = "users"
	// UserColumn is the table column denoting the user relation/edge.
	UserColumn = "user_id"
)

// Columns holds all SQL columns for analysis fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldScenario,
	FieldVerdict,
	FieldConfidence,
	FieldVerdictReason,
	FieldImageSha256,
	FieldPhash,
	FieldBlobKey,
	FieldPreserveExif,
	FieldProcessingTimeMs,
	FieldResultBlob,
	FieldCreatedAt,
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
	// DefaultPreserveExif holds the default value on creation for the "preserve_exif" field.
	DefaultPreserveExif bool
	// DefaultProcessingTimeMs holds the default value on creation for the "processing_time_ms" field.
	DefaultProcessingTimeMs int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Scenario defines the type for the "scenario" enum field.
type Scenario string

// ScenarioGeneral is the default value of the Scenario enum.
const DefaultScenario = ScenarioGeneral

// Scenario values.
const (
	ScenarioAdultBlackmail Scenario = "adult_blackmail"
	ScenarioTeenagerSos    Scenario = "teenager_sos"
	ScenarioGeneral        Scenario = "general"
)

func (s Scenario) String() string {
	return string(s)
}

// ScenarioValidator is a validator for the "scenario" field enum values. It is called by the builders before save.
func ScenarioValidator(s Scenario) error {
	switch s {
	case ScenarioAdultBlackmail, ScenarioTeenagerSos, ScenarioGeneral:
		return nil
	default:
		return fmt.Errorf("analysis: invalid enum value for scenario field: %q", s)
	}
}

// Verdict defines the type for the "verdict" enum field.
type Verdict string

// Verdict values.
const (
	VerdictReal         Verdict = "real"
	VerdictAiGenerated  Verdict = "ai_generated"
	VerdictManipulated  Verdict = "manipulated"
	VerdictInconclusive Verdict = "inconclusive"
)

func (v Verdict) String() string {
	return string(v)
}

// VerdictValidator is a validator for the "verdict" field enum values. It is called by the builders before save.
func VerdictValidator(v Verdict) error {
	switch v {
	case VerdictReal, VerdictAiGenerated, VerdictManipulated, VerdictInconclusive:
		return nil
	default:
		return fmt.Errorf("analysis: invalid enum value for verdict field: %q", v)
	}
}

// OrderOption defines the ordering options for the Analysis queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByScenario orders the results by the scenario field.
func ByScenario(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenario, opts...).ToFunc()
}

// ByVerdict orders the results by the verdict field.
func ByVerdict(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdict, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByVerdictReason orders the results by the verdict_reason field.
func ByVerdictReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVerdictReason, opts...).ToFunc()
}

// ByImageSha256 orders the results by the image_sha256 field.
func ByImageSha256(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageSha256, opts...).ToFunc()
}

// ByPhash orders the results by the phash field.
func ByPhash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhash, opts...).ToFunc()
}

// ByBlobKey orders the results by the blob_key field.
func ByBlobKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobKey, opts...).ToFunc()
}

// ByPreserveExif orders the results by the preserve_exif field.
func ByPreserveExif(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreserveExif, opts...).ToFunc()
}

// ByProcessingTimeMs orders the results by the processing_time_ms field.
func ByProcessingTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingTimeMs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUserField orders the results by user field.
func ByUserField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUserStep(), sql.OrderByField(field, opts...))
	}
}
func newUserStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UserInverseTable, UserFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
	)
}
