// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/sevrusik/turthsnapbot/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldUserID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldConfidence, v))
}

// VerdictReason applies equality check predicate on the "verdict_reason" field. It's identical to VerdictReasonEQ.
func VerdictReason(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldVerdictReason, v))
}

// ImageSha256 applies equality check predicate on the "image_sha256" field. It's identical to ImageSha256EQ.
func ImageSha256(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldImageSha256, v))
}

// Phash applies equality check predicate on the "phash" field. It's identical to PhashEQ.
func Phash(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPhash, v))
}

// BlobKey applies equality check predicate on the "blob_key" field. It's identical to BlobKeyEQ.
func BlobKey(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldBlobKey, v))
}

// PreserveExif applies equality check predicate on the "preserve_exif" field. It's identical to PreserveExifEQ.
func PreserveExif(v bool) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPreserveExif, v))
}

// ProcessingTimeMs applies equality check predicate on the "processing_time_ms" field. It's identical to ProcessingTimeMsEQ.
func ProcessingTimeMs(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldUserID, vs...))
}

// ScenarioEQ applies the EQ predicate on the "scenario" field.
func ScenarioEQ(v Scenario) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldScenario, v))
}

// ScenarioNEQ applies the NEQ predicate on the "scenario" field.
func ScenarioNEQ(v Scenario) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldScenario, v))
}

// ScenarioIn applies the In predicate on the "scenario" field.
func ScenarioIn(vs ...Scenario) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldScenario, vs...))
}

// ScenarioNotIn applies the NotIn predicate on the "scenario" field.
func ScenarioNotIn(vs ...Scenario) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldScenario, vs...))
}

// VerdictEQ applies the EQ predicate on the "verdict" field.
func VerdictEQ(v Verdict) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldVerdict, v))
}

// VerdictNEQ applies the NEQ predicate on the "verdict" field.
func VerdictNEQ(v Verdict) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldVerdict, v))
}

// VerdictIn applies the In predicate on the "verdict" field.
func VerdictIn(vs ...Verdict) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldVerdict, vs...))
}

// VerdictNotIn applies the NotIn predicate on the "verdict" field.
func VerdictNotIn(vs ...Verdict) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldVerdict, vs...))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldConfidence, v))
}

// VerdictReasonEQ applies the EQ predicate on the "verdict_reason" field.
func VerdictReasonEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldVerdictReason, v))
}

// VerdictReasonNEQ applies the NEQ predicate on the "verdict_reason" field.
func VerdictReasonNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldVerdictReason, v))
}

// VerdictReasonIn applies the In predicate on the "verdict_reason" field.
func VerdictReasonIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldVerdictReason, vs...))
}

// VerdictReasonNotIn applies the NotIn predicate on the "verdict_reason" field.
func VerdictReasonNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldVerdictReason, vs...))
}

// VerdictReasonGT applies the GT predicate on the "verdict_reason" field.
func VerdictReasonGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldVerdictReason, v))
}

// VerdictReasonGTE applies the GTE predicate on the "verdict_reason" field.
func VerdictReasonGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldVerdictReason, v))
}

// VerdictReasonLT applies the LT predicate on the "verdict_reason" field.
func VerdictReasonLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldVerdictReason, v))
}

// VerdictReasonLTE applies the LTE predicate on the "verdict_reason" field.
func VerdictReasonLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldVerdictReason, v))
}

// VerdictReasonContains applies the Contains predicate on the "verdict_reason" field.
func VerdictReasonContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldVerdictReason, v))
}

// VerdictReasonHasPrefix applies the HasPrefix predicate on the "verdict_reason" field.
func VerdictReasonHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldVerdictReason, v))
}

// VerdictReasonHasSuffix applies the HasSuffix predicate on the "verdict_reason" field.
func VerdictReasonHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldVerdictReason, v))
}

// VerdictReasonIsNil applies the IsNil predicate on the "verdict_reason" field.
func VerdictReasonIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldVerdictReason))
}

// VerdictReasonNotNil applies the NotNil predicate on the "verdict_reason" field.
func VerdictReasonNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldVerdictReason))
}

// VerdictReasonEqualFold applies the EqualFold predicate on the "verdict_reason" field.
func VerdictReasonEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldVerdictReason, v))
}

// VerdictReasonContainsFold applies the ContainsFold predicate on the "verdict_reason" field.
func VerdictReasonContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldVerdictReason, v))
}

// ImageSha256EQ applies the EQ predicate on the "image_sha256" field.
func ImageSha256EQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldImageSha256, v))
}

// ImageSha256NEQ applies the NEQ predicate on the "image_sha256" field.
func ImageSha256NEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldImageSha256, v))
}

// ImageSha256In applies the In predicate on the "image_sha256" field.
func ImageSha256In(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldImageSha256, vs...))
}

// ImageSha256NotIn applies the NotIn predicate on the "image_sha256" field.
func ImageSha256NotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldImageSha256, vs...))
}

// ImageSha256GT applies the GT predicate on the "image_sha256" field.
func ImageSha256GT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldImageSha256, v))
}

// ImageSha256GTE applies the GTE predicate on the "image_sha256" field.
func ImageSha256GTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldImageSha256, v))
}

// ImageSha256LT applies the LT predicate on the "image_sha256" field.
func ImageSha256LT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldImageSha256, v))
}

// ImageSha256LTE applies the LTE predicate on the "image_sha256" field.
func ImageSha256LTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldImageSha256, v))
}

// ImageSha256Contains applies the Contains predicate on the "image_sha256" field.
func ImageSha256Contains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldImageSha256, v))
}

// ImageSha256HasPrefix applies the HasPrefix predicate on the "image_sha256" field.
func ImageSha256HasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldImageSha256, v))
}

// ImageSha256HasSuffix applies the HasSuffix predicate on the "image_sha256" field.
func ImageSha256HasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldImageSha256, v))
}

// ImageSha256EqualFold applies the EqualFold predicate on the "image_sha256" field.
func ImageSha256EqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldImageSha256, v))
}

// ImageSha256ContainsFold applies the ContainsFold predicate on the "image_sha256" field.
func ImageSha256ContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldImageSha256, v))
}

// PhashEQ applies the EQ predicate on the "phash" field.
func PhashEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPhash, v))
}

// PhashNEQ applies the NEQ predicate on the "phash" field.
func PhashNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldPhash, v))
}

// PhashIn applies the In predicate on the "phash" field.
func PhashIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldPhash, vs...))
}

// PhashNotIn applies the NotIn predicate on the "phash" field.
func PhashNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldPhash, vs...))
}

// PhashGT applies the GT predicate on the "phash" field.
func PhashGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldPhash, v))
}

// PhashGTE applies the GTE predicate on the "phash" field.
func PhashGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldPhash, v))
}

// PhashLT applies the LT predicate on the "phash" field.
func PhashLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldPhash, v))
}

// PhashLTE applies the LTE predicate on the "phash" field.
func PhashLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldPhash, v))
}

// PhashContains applies the Contains predicate on the "phash" field.
func PhashContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldPhash, v))
}

// PhashHasPrefix applies the HasPrefix predicate on the "phash" field.
func PhashHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldPhash, v))
}

// PhashHasSuffix applies the HasSuffix predicate on the "phash" field.
func PhashHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldPhash, v))
}

// PhashIsNil applies the IsNil predicate on the "phash" field.
func PhashIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldPhash))
}

// PhashNotNil applies the NotNil predicate on the "phash" field.
func PhashNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldPhash))
}

// PhashEqualFold applies the EqualFold predicate on the "phash" field.
func PhashEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldPhash, v))
}

// PhashContainsFold applies the ContainsFold predicate on the "phash" field.
func PhashContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldPhash, v))
}

// BlobKeyEQ applies the EQ predicate on the "blob_key" field.
func BlobKeyEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldBlobKey, v))
}

// BlobKeyNEQ applies the NEQ predicate on the "blob_key" field.
func BlobKeyNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldBlobKey, v))
}

// BlobKeyIn applies the In predicate on the "blob_key" field.
func BlobKeyIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldBlobKey, vs...))
}

// BlobKeyNotIn applies the NotIn predicate on the "blob_key" field.
func BlobKeyNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldBlobKey, vs...))
}

// BlobKeyGT applies the GT predicate on the "blob_key" field.
func BlobKeyGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldBlobKey, v))
}

// BlobKeyGTE applies the GTE predicate on the "blob_key" field.
func BlobKeyGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldBlobKey, v))
}

// BlobKeyLT applies the LT predicate on the "blob_key" field.
func BlobKeyLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldBlobKey, v))
}

// BlobKeyLTE applies the LTE predicate on the "blob_key" field.
func BlobKeyLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldBlobKey, v))
}

// BlobKeyContains applies the Contains predicate on the "blob_key" field.
func BlobKeyContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldBlobKey, v))
}

// BlobKeyHasPrefix applies the HasPrefix predicate on the "blob_key" field.
func BlobKeyHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldBlobKey, v))
}

// BlobKeyHasSuffix applies the HasSuffix predicate on the "blob_key" field.
func BlobKeyHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldBlobKey, v))
}

// BlobKeyIsNil applies the IsNil predicate on the "blob_key" field.
func BlobKeyIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldBlobKey))
}

// BlobKeyNotNil applies the NotNil predicate on the "blob_key" field.
func BlobKeyNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldBlobKey))
}

// BlobKeyEqualFold applies the EqualFold predicate on the "blob_key" field.
func BlobKeyEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldBlobKey, v))
}

// BlobKeyContainsFold applies the ContainsFold predicate on the "blob_key" field.
func BlobKeyContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldBlobKey, v))
}

// PreserveExifEQ applies the EQ predicate on the "preserve_exif" field.
func PreserveExifEQ(v bool) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPreserveExif, v))
}

// PreserveExifNEQ applies the NEQ predicate on the "preserve_exif" field.
func PreserveExifNEQ(v bool) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldPreserveExif, v))
}

// ProcessingTimeMsEQ applies the EQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsNEQ applies the NEQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIn applies the In predicate on the "processing_time_ms" field.
func ProcessingTimeMsIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsNotIn applies the NotIn predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsGT applies the GT predicate on the "processing_time_ms" field.
func ProcessingTimeMsGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsGTE applies the GTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLT applies the LT predicate on the "processing_time_ms" field.
func ProcessingTimeMsLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLTE applies the LTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldProcessingTimeMs, v))
}

// ResultBlobIsNil applies the IsNil predicate on the "result_blob" field.
func ResultBlobIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldResultBlob))
}

// ResultBlobNotNil applies the NotNil predicate on the "result_blob" field.
func ResultBlobNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldResultBlob))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.NotPredicates(p))
}
