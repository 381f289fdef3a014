// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sevrusik/turthsnapbot/ent/analysis"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
	"github.com/sevrusik/turthsnapbot/ent/dailyusage"
	"github.com/sevrusik/turthsnapbot/ent/predicate"
	"github.com/sevrusik/turthsnapbot/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnalysis    = "Analysis"
	TypeAnalysisJob = "AnalysisJob"
	TypeDailyUsage  = "DailyUsage"
	TypeUser        = "User"
)

// AnalysisMutation represents an operation that mutates the Analysis nodes in the graph.
type AnalysisMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	scenario              *analysis.Scenario
	verdict               *analysis.Verdict
	confidence            *float64
	addconfidence         *float64
	verdict_reason        *string
	image_sha256          *string
	phash                 *string
	blob_key              *string
	preserve_exif         *bool
	processing_time_ms    *int
	addprocessing_time_ms *int
	result_blob           *map[string]interface{}
	created_at            *time.Time
	clearedFields         map[string]struct{}
	user                  *int64
	cleareduser           bool
	done                  bool
	oldValue              func(context.Context) (*Analysis, error)
	predicates            []predicate.Analysis
}

var _ ent.Mutation = (*AnalysisMutation)(nil)

// analysisOption allows management of the mutation configuration using functional options.
type analysisOption func(*AnalysisMutation)

// newAnalysisMutation creates new mutation for the Analysis entity.
func newAnalysisMutation(c config, op Op, opts ...analysisOption) *AnalysisMutation {
	m := &AnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisID sets the ID field of the mutation.
func withAnalysisID(id string) analysisOption {
	return func(m *AnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *Analysis
		)
		m.oldValue = func(ctx context.Context) (*Analysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Analysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysis sets the old Analysis of the mutation.
func withAnalysis(node *Analysis) analysisOption {
	return func(m *AnalysisMutation) {
		m.oldValue = func(context.Context) (*Analysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Analysis entities.
func (m *AnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Analysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *AnalysisMutation) SetUserID(i int64) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnalysisMutation) UserID() (r int64, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnalysisMutation) ResetUserID() {
	m.user = nil
}

// SetScenario sets the "scenario" field.
func (m *AnalysisMutation) SetScenario(a analysis.Scenario) {
	m.scenario = &a
}

// Scenario returns the value of the "scenario" field in the mutation.
func (m *AnalysisMutation) Scenario() (r analysis.Scenario, exists bool) {
	v := m.scenario
	if v == nil {
		return
	}
	return *v, true
}

// OldScenario returns the old "scenario" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldScenario(ctx context.Context) (v analysis.Scenario, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenario is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenario requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenario: %w", err)
	}
	return oldValue.Scenario, nil
}

// ResetScenario resets all changes to the "scenario" field.
func (m *AnalysisMutation) ResetScenario() {
	m.scenario = nil
}

// SetVerdict sets the "verdict" field.
func (m *AnalysisMutation) SetVerdict(a analysis.Verdict) {
	m.verdict = &a
}

// Verdict returns the value of the "verdict" field in the mutation.
func (m *AnalysisMutation) Verdict() (r analysis.Verdict, exists bool) {
	v := m.verdict
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdict returns the old "verdict" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldVerdict(ctx context.Context) (v analysis.Verdict, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdict: %w", err)
	}
	return oldValue.Verdict, nil
}

// ResetVerdict resets all changes to the "verdict" field.
func (m *AnalysisMutation) ResetVerdict() {
	m.verdict = nil
}

// SetConfidence sets the "confidence" field.
func (m *AnalysisMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *AnalysisMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *AnalysisMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *AnalysisMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *AnalysisMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetVerdictReason sets the "verdict_reason" field.
func (m *AnalysisMutation) SetVerdictReason(s string) {
	m.verdict_reason = &s
}

// VerdictReason returns the value of the "verdict_reason" field in the mutation.
func (m *AnalysisMutation) VerdictReason() (r string, exists bool) {
	v := m.verdict_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldVerdictReason returns the old "verdict_reason" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldVerdictReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVerdictReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVerdictReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVerdictReason: %w", err)
	}
	return oldValue.VerdictReason, nil
}

// ClearVerdictReason clears the value of the "verdict_reason" field.
func (m *AnalysisMutation) ClearVerdictReason() {
	m.verdict_reason = nil
	m.clearedFields[analysis.FieldVerdictReason] = struct{}{}
}

// VerdictReasonCleared returns if the "verdict_reason" field was cleared in this mutation.
func (m *AnalysisMutation) VerdictReasonCleared() bool {
	_, ok := m.clearedFields[analysis.FieldVerdictReason]
	return ok
}

// ResetVerdictReason resets all changes to the "verdict_reason" field.
func (m *AnalysisMutation) ResetVerdictReason() {
	m.verdict_reason = nil
	delete(m.clearedFields, analysis.FieldVerdictReason)
}

// SetImageSha256 sets the "image_sha256" field.
func (m *AnalysisMutation) SetImageSha256(s string) {
	m.image_sha256 = &s
}

// ImageSha256 returns the value of the "image_sha256" field in the mutation.
func (m *AnalysisMutation) ImageSha256() (r string, exists bool) {
	v := m.image_sha256
	if v == nil {
		return
	}
	return *v, true
}

// OldImageSha256 returns the old "image_sha256" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldImageSha256(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageSha256 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageSha256 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageSha256: %w", err)
	}
	return oldValue.ImageSha256, nil
}

// ResetImageSha256 resets all changes to the "image_sha256" field.
func (m *AnalysisMutation) ResetImageSha256() {
	m.image_sha256 = nil
}

// SetPhash sets the "phash" field.
func (m *AnalysisMutation) SetPhash(s string) {
	m.phash = &s
}

// Phash returns the value of the "phash" field in the mutation.
func (m *AnalysisMutation) Phash() (r string, exists bool) {
	v := m.phash
	if v == nil {
		return
	}
	return *v, true
}

// OldPhash returns the old "phash" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldPhash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhash: %w", err)
	}
	return oldValue.Phash, nil
}

// ClearPhash clears the value of the "phash" field.
func (m *AnalysisMutation) ClearPhash() {
	m.phash = nil
	m.clearedFields[analysis.FieldPhash] = struct{}{}
}

// PhashCleared returns if the "phash" field was cleared in this mutation.
func (m *AnalysisMutation) PhashCleared() bool {
	_, ok := m.clearedFields[analysis.FieldPhash]
	return ok
}

// ResetPhash resets all changes to the "phash" field.
func (m *AnalysisMutation) ResetPhash() {
	m.phash = nil
	delete(m.clearedFields, analysis.FieldPhash)
}

// SetBlobKey sets the "blob_key" field.
func (m *AnalysisMutation) SetBlobKey(s string) {
	m.blob_key = &s
}

// BlobKey returns the value of the "blob_key" field in the mutation.
func (m *AnalysisMutation) BlobKey() (r string, exists bool) {
	v := m.blob_key
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobKey returns the old "blob_key" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldBlobKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobKey: %w", err)
	}
	return oldValue.BlobKey, nil
}

// ClearBlobKey clears the value of the "blob_key" field.
func (m *AnalysisMutation) ClearBlobKey() {
	m.blob_key = nil
	m.clearedFields[analysis.FieldBlobKey] = struct{}{}
}

// BlobKeyCleared returns if the "blob_key" field was cleared in this mutation.
func (m *AnalysisMutation) BlobKeyCleared() bool {
	_, ok := m.clearedFields[analysis.FieldBlobKey]
	return ok
}

// ResetBlobKey resets all changes to the "blob_key" field.
func (m *AnalysisMutation) ResetBlobKey() {
	m.blob_key = nil
	delete(m.clearedFields, analysis.FieldBlobKey)
}

// SetPreserveExif sets the "preserve_exif" field.
func (m *AnalysisMutation) SetPreserveExif(b bool) {
	m.preserve_exif = &b
}

// PreserveExif returns the value of the "preserve_exif" field in the mutation.
func (m *AnalysisMutation) PreserveExif() (r bool, exists bool) {
	v := m.preserve_exif
	if v == nil {
		return
	}
	return *v, true
}

// OldPreserveExif returns the old "preserve_exif" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldPreserveExif(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreserveExif is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreserveExif requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreserveExif: %w", err)
	}
	return oldValue.PreserveExif, nil
}

// ResetPreserveExif resets all changes to the "preserve_exif" field.
func (m *AnalysisMutation) ResetPreserveExif() {
	m.preserve_exif = nil
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *AnalysisMutation) SetProcessingTimeMs(i int) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *AnalysisMutation) ProcessingTimeMs() (r int, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldProcessingTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *AnalysisMutation) AddProcessingTimeMs(i int) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *AnalysisMutation) AddedProcessingTimeMs() (r int, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *AnalysisMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
}

// SetResultBlob sets the "result_blob" field.
func (m *AnalysisMutation) SetResultBlob(value map[string]interface{}) {
	m.result_blob = &value
}

// ResultBlob returns the value of the "result_blob" field in the mutation.
func (m *AnalysisMutation) ResultBlob() (r map[string]interface{}, exists bool) {
	v := m.result_blob
	if v == nil {
		return
	}
	return *v, true
}

// OldResultBlob returns the old "result_blob" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldResultBlob(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultBlob is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultBlob requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultBlob: %w", err)
	}
	return oldValue.ResultBlob, nil
}

// ClearResultBlob clears the value of the "result_blob" field.
func (m *AnalysisMutation) ClearResultBlob() {
	m.result_blob = nil
	m.clearedFields[analysis.FieldResultBlob] = struct{}{}
}

// ResultBlobCleared returns if the "result_blob" field was cleared in this mutation.
func (m *AnalysisMutation) ResultBlobCleared() bool {
	_, ok := m.clearedFields[analysis.FieldResultBlob]
	return ok
}

// ResetResultBlob resets all changes to the "result_blob" field.
func (m *AnalysisMutation) ResetResultBlob() {
	m.result_blob = nil
	delete(m.clearedFields, analysis.FieldResultBlob)
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *AnalysisMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[analysis.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *AnalysisMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *AnalysisMutation) UserIDs() (ids []int64) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *AnalysisMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the AnalysisMutation builder.
func (m *AnalysisMutation) Where(ps ...predicate.Analysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Analysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Analysis).
func (m *AnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.user != nil {
		fields = append(fields, analysis.FieldUserID)
	}
	if m.scenario != nil {
		fields = append(fields, analysis.FieldScenario)
	}
	if m.verdict != nil {
		fields = append(fields, analysis.FieldVerdict)
	}
	if m.confidence != nil {
		fields = append(fields, analysis.FieldConfidence)
	}
	if m.verdict_reason != nil {
		fields = append(fields, analysis.FieldVerdictReason)
	}
	if m.image_sha256 != nil {
		fields = append(fields, analysis.FieldImageSha256)
	}
	if m.phash != nil {
		fields = append(fields, analysis.FieldPhash)
	}
	if m.blob_key != nil {
		fields = append(fields, analysis.FieldBlobKey)
	}
	if m.preserve_exif != nil {
		fields = append(fields, analysis.FieldPreserveExif)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, analysis.FieldProcessingTimeMs)
	}
	if m.result_blob != nil {
		fields = append(fields, analysis.FieldResultBlob)
	}
	if m.created_at != nil {
		fields = append(fields, analysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldUserID:
		return m.UserID()
	case analysis.FieldScenario:
		return m.Scenario()
	case analysis.FieldVerdict:
		return m.Verdict()
	case analysis.FieldConfidence:
		return m.Confidence()
	case analysis.FieldVerdictReason:
		return m.VerdictReason()
	case analysis.FieldImageSha256:
		return m.ImageSha256()
	case analysis.FieldPhash:
		return m.Phash()
	case analysis.FieldBlobKey:
		return m.BlobKey()
	case analysis.FieldPreserveExif:
		return m.PreserveExif()
	case analysis.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case analysis.FieldResultBlob:
		return m.ResultBlob()
	case analysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysis.FieldUserID:
		return m.OldUserID(ctx)
	case analysis.FieldScenario:
		return m.OldScenario(ctx)
	case analysis.FieldVerdict:
		return m.OldVerdict(ctx)
	case analysis.FieldConfidence:
		return m.OldConfidence(ctx)
	case analysis.FieldVerdictReason:
		return m.OldVerdictReason(ctx)
	case analysis.FieldImageSha256:
		return m.OldImageSha256(ctx)
	case analysis.FieldPhash:
		return m.OldPhash(ctx)
	case analysis.FieldBlobKey:
		return m.OldBlobKey(ctx)
	case analysis.FieldPreserveExif:
		return m.OldPreserveExif(ctx)
	case analysis.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case analysis.FieldResultBlob:
		return m.OldResultBlob(ctx)
	case analysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Analysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case analysis.FieldScenario:
		v, ok := value.(analysis.Scenario)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenario(v)
		return nil
	case analysis.FieldVerdict:
		v, ok := value.(analysis.Verdict)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdict(v)
		return nil
	case analysis.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case analysis.FieldVerdictReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVerdictReason(v)
		return nil
	case analysis.FieldImageSha256:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageSha256(v)
		return nil
	case analysis.FieldPhash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhash(v)
		return nil
	case analysis.FieldBlobKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobKey(v)
		return nil
	case analysis.FieldPreserveExif:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreserveExif(v)
		return nil
	case analysis.FieldProcessingTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case analysis.FieldResultBlob:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultBlob(v)
		return nil
	case analysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence != nil {
		fields = append(fields, analysis.FieldConfidence)
	}
	if m.addprocessing_time_ms != nil {
		fields = append(fields, analysis.FieldProcessingTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldConfidence:
		return m.AddedConfidence()
	case analysis.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case analysis.FieldProcessingTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysis.FieldVerdictReason) {
		fields = append(fields, analysis.FieldVerdictReason)
	}
	if m.FieldCleared(analysis.FieldPhash) {
		fields = append(fields, analysis.FieldPhash)
	}
	if m.FieldCleared(analysis.FieldBlobKey) {
		fields = append(fields, analysis.FieldBlobKey)
	}
	if m.FieldCleared(analysis.FieldResultBlob) {
		fields = append(fields, analysis.FieldResultBlob)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisMutation) ClearField(name string) error {
	switch name {
	case analysis.FieldVerdictReason:
		m.ClearVerdictReason()
		return nil
	case analysis.FieldPhash:
		m.ClearPhash()
		return nil
	case analysis.FieldBlobKey:
		m.ClearBlobKey()
		return nil
	case analysis.FieldResultBlob:
		m.ClearResultBlob()
		return nil
	}
	return fmt.Errorf("unknown Analysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisMutation) ResetField(name string) error {
	switch name {
	case analysis.FieldUserID:
		m.ResetUserID()
		return nil
	case analysis.FieldScenario:
		m.ResetScenario()
		return nil
	case analysis.FieldVerdict:
		m.ResetVerdict()
		return nil
	case analysis.FieldConfidence:
		m.ResetConfidence()
		return nil
	case analysis.FieldVerdictReason:
		m.ResetVerdictReason()
		return nil
	case analysis.FieldImageSha256:
		m.ResetImageSha256()
		return nil
	case analysis.FieldPhash:
		m.ResetPhash()
		return nil
	case analysis.FieldBlobKey:
		m.ResetBlobKey()
		return nil
	case analysis.FieldPreserveExif:
		m.ResetPreserveExif()
		return nil
	case analysis.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case analysis.FieldResultBlob:
		m.ResetResultBlob()
		return nil
	case analysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, analysis.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysis.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, analysis.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case analysis.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisMutation) ClearEdge(name string) error {
	switch name {
	case analysis.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown Analysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisMutation) ResetEdge(name string) error {
	switch name {
	case analysis.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown Analysis edge %s", name)
}

// AnalysisJobMutation represents an operation that mutates the AnalysisJob nodes in the graph.
type AnalysisJobMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	status                 *analysisjob.Status
	priority               *analysisjob.Priority
	user_id                *int64
	adduser_id             *int64
	chat_id                *int64
	addchat_id             *int64
	source_message_id      *int64
	addsource_message_id   *int64
	progress_message_id    *int64
	addprogress_message_id *int64
	blob_key               *string
	file_ext               *string
	scenario               *string
	tier                   *analysisjob.Tier
	preserve_exif          *bool
	attempts               *int
	addattempts            *int
	next_attempt_at        *time.Time
	created_at             *time.Time
	started_at             *time.Time
	finished_at            *time.Time
	last_heartbeat_at      *time.Time
	pod_id                 *string
	error_message          *string
	analysis_id            *string
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*AnalysisJob, error)
	predicates             []predicate.AnalysisJob
}

var _ ent.Mutation = (*AnalysisJobMutation)(nil)

// analysisjobOption allows management of the mutation configuration using functional options.
type analysisjobOption func(*AnalysisJobMutation)

// newAnalysisJobMutation creates new mutation for the AnalysisJob entity.
func newAnalysisJobMutation(c config, op Op, opts ...analysisjobOption) *AnalysisJobMutation {
	m := &AnalysisJobMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysisJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisJobID sets the ID field of the mutation.
func withAnalysisJobID(id string) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		var (
			err   error
			once  sync.Once
			value *AnalysisJob
		)
		m.oldValue = func(ctx context.Context) (*AnalysisJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnalysisJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysisJob sets the old AnalysisJob of the mutation.
func withAnalysisJob(node *AnalysisJob) analysisjobOption {
	return func(m *AnalysisJobMutation) {
		m.oldValue = func(context.Context) (*AnalysisJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AnalysisJob entities.
func (m *AnalysisJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnalysisJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStatus sets the "status" field.
func (m *AnalysisJobMutation) SetStatus(a analysisjob.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AnalysisJobMutation) Status() (r analysisjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldStatus(ctx context.Context) (v analysisjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AnalysisJobMutation) ResetStatus() {
	m.status = nil
}

// SetPriority sets the "priority" field.
func (m *AnalysisJobMutation) SetPriority(a analysisjob.Priority) {
	m.priority = &a
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AnalysisJobMutation) Priority() (r analysisjob.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldPriority(ctx context.Context) (v analysisjob.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *AnalysisJobMutation) ResetPriority() {
	m.priority = nil
}

// SetUserID sets the "user_id" field.
func (m *AnalysisJobMutation) SetUserID(i int64) {
	m.user_id = &i
	m.adduser_id = nil
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AnalysisJobMutation) UserID() (r int64, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// AddUserID adds i to the "user_id" field.
func (m *AnalysisJobMutation) AddUserID(i int64) {
	if m.adduser_id != nil {
		*m.adduser_id += i
	} else {
		m.adduser_id = &i
	}
}

// AddedUserID returns the value that was added to the "user_id" field in this mutation.
func (m *AnalysisJobMutation) AddedUserID() (r int64, exists bool) {
	v := m.adduser_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AnalysisJobMutation) ResetUserID() {
	m.user_id = nil
	m.adduser_id = nil
}

// SetChatID sets the "chat_id" field.
func (m *AnalysisJobMutation) SetChatID(i int64) {
	m.chat_id = &i
	m.addchat_id = nil
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *AnalysisJobMutation) ChatID() (r int64, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldChatID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// AddChatID adds i to the "chat_id" field.
func (m *AnalysisJobMutation) AddChatID(i int64) {
	if m.addchat_id != nil {
		*m.addchat_id += i
	} else {
		m.addchat_id = &i
	}
}

// AddedChatID returns the value that was added to the "chat_id" field in this mutation.
func (m *AnalysisJobMutation) AddedChatID() (r int64, exists bool) {
	v := m.addchat_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *AnalysisJobMutation) ResetChatID() {
	m.chat_id = nil
	m.addchat_id = nil
}

// SetSourceMessageID sets the "source_message_id" field.
func (m *AnalysisJobMutation) SetSourceMessageID(i int64) {
	m.source_message_id = &i
	m.addsource_message_id = nil
}

// SourceMessageID returns the value of the "source_message_id" field in the mutation.
func (m *AnalysisJobMutation) SourceMessageID() (r int64, exists bool) {
	v := m.source_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceMessageID returns the old "source_message_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldSourceMessageID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceMessageID: %w", err)
	}
	return oldValue.SourceMessageID, nil
}

// AddSourceMessageID adds i to the "source_message_id" field.
func (m *AnalysisJobMutation) AddSourceMessageID(i int64) {
	if m.addsource_message_id != nil {
		*m.addsource_message_id += i
	} else {
		m.addsource_message_id = &i
	}
}

// AddedSourceMessageID returns the value that was added to the "source_message_id" field in this mutation.
func (m *AnalysisJobMutation) AddedSourceMessageID() (r int64, exists bool) {
	v := m.addsource_message_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceMessageID resets all changes to the "source_message_id" field.
func (m *AnalysisJobMutation) ResetSourceMessageID() {
	m.source_message_id = nil
	m.addsource_message_id = nil
}

// SetProgressMessageID sets the "progress_message_id" field.
func (m *AnalysisJobMutation) SetProgressMessageID(i int64) {
	m.progress_message_id = &i
	m.addprogress_message_id = nil
}

// ProgressMessageID returns the value of the "progress_message_id" field in the mutation.
func (m *AnalysisJobMutation) ProgressMessageID() (r int64, exists bool) {
	v := m.progress_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProgressMessageID returns the old "progress_message_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldProgressMessageID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgressMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgressMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgressMessageID: %w", err)
	}
	return oldValue.ProgressMessageID, nil
}

// AddProgressMessageID adds i to the "progress_message_id" field.
func (m *AnalysisJobMutation) AddProgressMessageID(i int64) {
	if m.addprogress_message_id != nil {
		*m.addprogress_message_id += i
	} else {
		m.addprogress_message_id = &i
	}
}

// AddedProgressMessageID returns the value that was added to the "progress_message_id" field in this mutation.
func (m *AnalysisJobMutation) AddedProgressMessageID() (r int64, exists bool) {
	v := m.addprogress_message_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgressMessageID resets all changes to the "progress_message_id" field.
func (m *AnalysisJobMutation) ResetProgressMessageID() {
	m.progress_message_id = nil
	m.addprogress_message_id = nil
}

// SetBlobKey sets the "blob_key" field.
func (m *AnalysisJobMutation) SetBlobKey(s string) {
	m.blob_key = &s
}

// BlobKey returns the value of the "blob_key" field in the mutation.
func (m *AnalysisJobMutation) BlobKey() (r string, exists bool) {
	v := m.blob_key
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobKey returns the old "blob_key" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldBlobKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobKey: %w", err)
	}
	return oldValue.BlobKey, nil
}

// ResetBlobKey resets all changes to the "blob_key" field.
func (m *AnalysisJobMutation) ResetBlobKey() {
	m.blob_key = nil
}

// SetFileExt sets the "file_ext" field.
func (m *AnalysisJobMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *AnalysisJobMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *AnalysisJobMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetScenario sets the "scenario" field.
func (m *AnalysisJobMutation) SetScenario(s string) {
	m.scenario = &s
}

// Scenario returns the value of the "scenario" field in the mutation.
func (m *AnalysisJobMutation) Scenario() (r string, exists bool) {
	v := m.scenario
	if v == nil {
		return
	}
	return *v, true
}

// OldScenario returns the old "scenario" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldScenario(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScenario is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScenario requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScenario: %w", err)
	}
	return oldValue.Scenario, nil
}

// ResetScenario resets all changes to the "scenario" field.
func (m *AnalysisJobMutation) ResetScenario() {
	m.scenario = nil
}

// SetTier sets the "tier" field.
func (m *AnalysisJobMutation) SetTier(a analysisjob.Tier) {
	m.tier = &a
}

// Tier returns the value of the "tier" field in the mutation.
func (m *AnalysisJobMutation) Tier() (r analysisjob.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldTier(ctx context.Context) (v analysisjob.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *AnalysisJobMutation) ResetTier() {
	m.tier = nil
}

// SetPreserveExif sets the "preserve_exif" field.
func (m *AnalysisJobMutation) SetPreserveExif(b bool) {
	m.preserve_exif = &b
}

// PreserveExif returns the value of the "preserve_exif" field in the mutation.
func (m *AnalysisJobMutation) PreserveExif() (r bool, exists bool) {
	v := m.preserve_exif
	if v == nil {
		return
	}
	return *v, true
}

// OldPreserveExif returns the old "preserve_exif" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldPreserveExif(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreserveExif is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreserveExif requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreserveExif: %w", err)
	}
	return oldValue.PreserveExif, nil
}

// ResetPreserveExif resets all changes to the "preserve_exif" field.
func (m *AnalysisJobMutation) ResetPreserveExif() {
	m.preserve_exif = nil
}

// SetAttempts sets the "attempts" field.
func (m *AnalysisJobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *AnalysisJobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *AnalysisJobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *AnalysisJobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *AnalysisJobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *AnalysisJobMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *AnalysisJobMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldNextAttemptAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *AnalysisJobMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AnalysisJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AnalysisJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AnalysisJobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[analysisjob.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AnalysisJobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AnalysisJobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, analysisjob.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *AnalysisJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *AnalysisJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *AnalysisJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[analysisjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *AnalysisJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *AnalysisJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, analysisjob.FieldFinishedAt)
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (m *AnalysisJobMutation) SetLastHeartbeatAt(t time.Time) {
	m.last_heartbeat_at = &t
}

// LastHeartbeatAt returns the value of the "last_heartbeat_at" field in the mutation.
func (m *AnalysisJobMutation) LastHeartbeatAt() (r time.Time, exists bool) {
	v := m.last_heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastHeartbeatAt returns the old "last_heartbeat_at" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldLastHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastHeartbeatAt: %w", err)
	}
	return oldValue.LastHeartbeatAt, nil
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (m *AnalysisJobMutation) ClearLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	m.clearedFields[analysisjob.FieldLastHeartbeatAt] = struct{}{}
}

// LastHeartbeatAtCleared returns if the "last_heartbeat_at" field was cleared in this mutation.
func (m *AnalysisJobMutation) LastHeartbeatAtCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldLastHeartbeatAt]
	return ok
}

// ResetLastHeartbeatAt resets all changes to the "last_heartbeat_at" field.
func (m *AnalysisJobMutation) ResetLastHeartbeatAt() {
	m.last_heartbeat_at = nil
	delete(m.clearedFields, analysisjob.FieldLastHeartbeatAt)
}

// SetPodID sets the "pod_id" field.
func (m *AnalysisJobMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *AnalysisJobMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *AnalysisJobMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[analysisjob.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *AnalysisJobMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *AnalysisJobMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, analysisjob.FieldPodID)
}

// SetErrorMessage sets the "error_message" field.
func (m *AnalysisJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AnalysisJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AnalysisJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[analysisjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AnalysisJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AnalysisJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, analysisjob.FieldErrorMessage)
}

// SetAnalysisID sets the "analysis_id" field.
func (m *AnalysisJobMutation) SetAnalysisID(s string) {
	m.analysis_id = &s
}

// AnalysisID returns the value of the "analysis_id" field in the mutation.
func (m *AnalysisJobMutation) AnalysisID() (r string, exists bool) {
	v := m.analysis_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisID returns the old "analysis_id" field's value of the AnalysisJob entity.
// If the AnalysisJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisJobMutation) OldAnalysisID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisID: %w", err)
	}
	return oldValue.AnalysisID, nil
}

// ClearAnalysisID clears the value of the "analysis_id" field.
func (m *AnalysisJobMutation) ClearAnalysisID() {
	m.analysis_id = nil
	m.clearedFields[analysisjob.FieldAnalysisID] = struct{}{}
}

// AnalysisIDCleared returns if the "analysis_id" field was cleared in this mutation.
func (m *AnalysisJobMutation) AnalysisIDCleared() bool {
	_, ok := m.clearedFields[analysisjob.FieldAnalysisID]
	return ok
}

// ResetAnalysisID resets all changes to the "analysis_id" field.
func (m *AnalysisJobMutation) ResetAnalysisID() {
	m.analysis_id = nil
	delete(m.clearedFields, analysisjob.FieldAnalysisID)
}

// Where appends a list predicates to the AnalysisJobMutation builder.
func (m *AnalysisJobMutation) Where(ps ...predicate.AnalysisJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnalysisJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnalysisJob).
func (m *AnalysisJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisJobMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.status != nil {
		fields = append(fields, analysisjob.FieldStatus)
	}
	if m.priority != nil {
		fields = append(fields, analysisjob.FieldPriority)
	}
	if m.user_id != nil {
		fields = append(fields, analysisjob.FieldUserID)
	}
	if m.chat_id != nil {
		fields = append(fields, analysisjob.FieldChatID)
	}
	if m.source_message_id != nil {
		fields = append(fields, analysisjob.FieldSourceMessageID)
	}
	if m.progress_message_id != nil {
		fields = append(fields, analysisjob.FieldProgressMessageID)
	}
	if m.blob_key != nil {
		fields = append(fields, analysisjob.FieldBlobKey)
	}
	if m.file_ext != nil {
		fields = append(fields, analysisjob.FieldFileExt)
	}
	if m.scenario != nil {
		fields = append(fields, analysisjob.FieldScenario)
	}
	if m.tier != nil {
		fields = append(fields, analysisjob.FieldTier)
	}
	if m.preserve_exif != nil {
		fields = append(fields, analysisjob.FieldPreserveExif)
	}
	if m.attempts != nil {
		fields = append(fields, analysisjob.FieldAttempts)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, analysisjob.FieldNextAttemptAt)
	}
	if m.created_at != nil {
		fields = append(fields, analysisjob.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, analysisjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, analysisjob.FieldFinishedAt)
	}
	if m.last_heartbeat_at != nil {
		fields = append(fields, analysisjob.FieldLastHeartbeatAt)
	}
	if m.pod_id != nil {
		fields = append(fields, analysisjob.FieldPodID)
	}
	if m.error_message != nil {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.analysis_id != nil {
		fields = append(fields, analysisjob.FieldAnalysisID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysisjob.FieldStatus:
		return m.Status()
	case analysisjob.FieldPriority:
		return m.Priority()
	case analysisjob.FieldUserID:
		return m.UserID()
	case analysisjob.FieldChatID:
		return m.ChatID()
	case analysisjob.FieldSourceMessageID:
		return m.SourceMessageID()
	case analysisjob.FieldProgressMessageID:
		return m.ProgressMessageID()
	case analysisjob.FieldBlobKey:
		return m.BlobKey()
	case analysisjob.FieldFileExt:
		return m.FileExt()
	case analysisjob.FieldScenario:
		return m.Scenario()
	case analysisjob.FieldTier:
		return m.Tier()
	case analysisjob.FieldPreserveExif:
		return m.PreserveExif()
	case analysisjob.FieldAttempts:
		return m.Attempts()
	case analysisjob.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case analysisjob.FieldCreatedAt:
		return m.CreatedAt()
	case analysisjob.FieldStartedAt:
		return m.StartedAt()
	case analysisjob.FieldFinishedAt:
		return m.FinishedAt()
	case analysisjob.FieldLastHeartbeatAt:
		return m.LastHeartbeatAt()
	case analysisjob.FieldPodID:
		return m.PodID()
	case analysisjob.FieldErrorMessage:
		return m.ErrorMessage()
	case analysisjob.FieldAnalysisID:
		return m.AnalysisID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysisjob.FieldStatus:
		return m.OldStatus(ctx)
	case analysisjob.FieldPriority:
		return m.OldPriority(ctx)
	case analysisjob.FieldUserID:
		return m.OldUserID(ctx)
	case analysisjob.FieldChatID:
		return m.OldChatID(ctx)
	case analysisjob.FieldSourceMessageID:
		return m.OldSourceMessageID(ctx)
	case analysisjob.FieldProgressMessageID:
		return m.OldProgressMessageID(ctx)
	case analysisjob.FieldBlobKey:
		return m.OldBlobKey(ctx)
	case analysisjob.FieldFileExt:
		return m.OldFileExt(ctx)
	case analysisjob.FieldScenario:
		return m.OldScenario(ctx)
	case analysisjob.FieldTier:
		return m.OldTier(ctx)
	case analysisjob.FieldPreserveExif:
		return m.OldPreserveExif(ctx)
	case analysisjob.FieldAttempts:
		return m.OldAttempts(ctx)
	case analysisjob.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case analysisjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case analysisjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case analysisjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case analysisjob.FieldLastHeartbeatAt:
		return m.OldLastHeartbeatAt(ctx)
	case analysisjob.FieldPodID:
		return m.OldPodID(ctx)
	case analysisjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case analysisjob.FieldAnalysisID:
		return m.OldAnalysisID(ctx)
	}
	return nil, fmt.Errorf("unknown AnalysisJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysisjob.FieldStatus:
		v, ok := value.(analysisjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case analysisjob.FieldPriority:
		v, ok := value.(analysisjob.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case analysisjob.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case analysisjob.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case analysisjob.FieldSourceMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceMessageID(v)
		return nil
	case analysisjob.FieldProgressMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgressMessageID(v)
		return nil
	case analysisjob.FieldBlobKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobKey(v)
		return nil
	case analysisjob.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case analysisjob.FieldScenario:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScenario(v)
		return nil
	case analysisjob.FieldTier:
		v, ok := value.(analysisjob.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case analysisjob.FieldPreserveExif:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreserveExif(v)
		return nil
	case analysisjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case analysisjob.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case analysisjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case analysisjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case analysisjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case analysisjob.FieldLastHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastHeartbeatAt(v)
		return nil
	case analysisjob.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case analysisjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case analysisjob.FieldAnalysisID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisID(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisJobMutation) AddedFields() []string {
	var fields []string
	if m.adduser_id != nil {
		fields = append(fields, analysisjob.FieldUserID)
	}
	if m.addchat_id != nil {
		fields = append(fields, analysisjob.FieldChatID)
	}
	if m.addsource_message_id != nil {
		fields = append(fields, analysisjob.FieldSourceMessageID)
	}
	if m.addprogress_message_id != nil {
		fields = append(fields, analysisjob.FieldProgressMessageID)
	}
	if m.addattempts != nil {
		fields = append(fields, analysisjob.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysisjob.FieldUserID:
		return m.AddedUserID()
	case analysisjob.FieldChatID:
		return m.AddedChatID()
	case analysisjob.FieldSourceMessageID:
		return m.AddedSourceMessageID()
	case analysisjob.FieldProgressMessageID:
		return m.AddedProgressMessageID()
	case analysisjob.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysisjob.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUserID(v)
		return nil
	case analysisjob.FieldChatID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChatID(v)
		return nil
	case analysisjob.FieldSourceMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceMessageID(v)
		return nil
	case analysisjob.FieldProgressMessageID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgressMessageID(v)
		return nil
	case analysisjob.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysisjob.FieldStartedAt) {
		fields = append(fields, analysisjob.FieldStartedAt)
	}
	if m.FieldCleared(analysisjob.FieldFinishedAt) {
		fields = append(fields, analysisjob.FieldFinishedAt)
	}
	if m.FieldCleared(analysisjob.FieldLastHeartbeatAt) {
		fields = append(fields, analysisjob.FieldLastHeartbeatAt)
	}
	if m.FieldCleared(analysisjob.FieldPodID) {
		fields = append(fields, analysisjob.FieldPodID)
	}
	if m.FieldCleared(analysisjob.FieldErrorMessage) {
		fields = append(fields, analysisjob.FieldErrorMessage)
	}
	if m.FieldCleared(analysisjob.FieldAnalysisID) {
		fields = append(fields, analysisjob.FieldAnalysisID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ClearField(name string) error {
	switch name {
	case analysisjob.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case analysisjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case analysisjob.FieldLastHeartbeatAt:
		m.ClearLastHeartbeatAt()
		return nil
	case analysisjob.FieldPodID:
		m.ClearPodID()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case analysisjob.FieldAnalysisID:
		m.ClearAnalysisID()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisJobMutation) ResetField(name string) error {
	switch name {
	case analysisjob.FieldStatus:
		m.ResetStatus()
		return nil
	case analysisjob.FieldPriority:
		m.ResetPriority()
		return nil
	case analysisjob.FieldUserID:
		m.ResetUserID()
		return nil
	case analysisjob.FieldChatID:
		m.ResetChatID()
		return nil
	case analysisjob.FieldSourceMessageID:
		m.ResetSourceMessageID()
		return nil
	case analysisjob.FieldProgressMessageID:
		m.ResetProgressMessageID()
		return nil
	case analysisjob.FieldBlobKey:
		m.ResetBlobKey()
		return nil
	case analysisjob.FieldFileExt:
		m.ResetFileExt()
		return nil
	case analysisjob.FieldScenario:
		m.ResetScenario()
		return nil
	case analysisjob.FieldTier:
		m.ResetTier()
		return nil
	case analysisjob.FieldPreserveExif:
		m.ResetPreserveExif()
		return nil
	case analysisjob.FieldAttempts:
		m.ResetAttempts()
		return nil
	case analysisjob.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case analysisjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case analysisjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case analysisjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case analysisjob.FieldLastHeartbeatAt:
		m.ResetLastHeartbeatAt()
		return nil
	case analysisjob.FieldPodID:
		m.ResetPodID()
		return nil
	case analysisjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case analysisjob.FieldAnalysisID:
		m.ResetAnalysisID()
		return nil
	}
	return fmt.Errorf("unknown AnalysisJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnalysisJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnalysisJob edge %s", name)
}

// DailyUsageMutation represents an operation that mutates the DailyUsage nodes in the graph.
type DailyUsageMutation struct {
	config
	op            Op
	typ           string
	id            *int
	day           *time.Time
	count         *int
	addcount      *int
	clearedFields map[string]struct{}
	user          *int64
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*DailyUsage, error)
	predicates    []predicate.DailyUsage
}

var _ ent.Mutation = (*DailyUsageMutation)(nil)

// dailyusageOption allows management of the mutation configuration using functional options.
type dailyusageOption func(*DailyUsageMutation)

// newDailyUsageMutation creates new mutation for the DailyUsage entity.
func newDailyUsageMutation(c config, op Op, opts ...dailyusageOption) *DailyUsageMutation {
	m := &DailyUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyUsageID sets the ID field of the mutation.
func withDailyUsageID(id int) dailyusageOption {
	return func(m *DailyUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyUsage
		)
		m.oldValue = func(ctx context.Context) (*DailyUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyUsage sets the old DailyUsage of the mutation.
func withDailyUsage(node *DailyUsage) dailyusageOption {
	return func(m *DailyUsageMutation) {
		m.oldValue = func(context.Context) (*DailyUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyUsageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyUsageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *DailyUsageMutation) SetUserID(i int64) {
	m.user = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DailyUsageMutation) UserID() (r int64, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DailyUsage entity.
// If the DailyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyUsageMutation) OldUserID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DailyUsageMutation) ResetUserID() {
	m.user = nil
}

// SetDay sets the "day" field.
func (m *DailyUsageMutation) SetDay(t time.Time) {
	m.day = &t
}

// Day returns the value of the "day" field in the mutation.
func (m *DailyUsageMutation) Day() (r time.Time, exists bool) {
	v := m.day
	if v == nil {
		return
	}
	return *v, true
}

// OldDay returns the old "day" field's value of the DailyUsage entity.
// If the DailyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyUsageMutation) OldDay(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDay: %w", err)
	}
	return oldValue.Day, nil
}

// ResetDay resets all changes to the "day" field.
func (m *DailyUsageMutation) ResetDay() {
	m.day = nil
}

// SetCount sets the "count" field.
func (m *DailyUsageMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *DailyUsageMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the DailyUsage entity.
// If the DailyUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyUsageMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *DailyUsageMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *DailyUsageMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *DailyUsageMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *DailyUsageMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[dailyusage.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *DailyUsageMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *DailyUsageMutation) UserIDs() (ids []int64) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *DailyUsageMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the DailyUsageMutation builder.
func (m *DailyUsageMutation) Where(ps ...predicate.DailyUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyUsage).
func (m *DailyUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyUsageMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.user != nil {
		fields = append(fields, dailyusage.FieldUserID)
	}
	if m.day != nil {
		fields = append(fields, dailyusage.FieldDay)
	}
	if m.count != nil {
		fields = append(fields, dailyusage.FieldCount)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailyusage.FieldUserID:
		return m.UserID()
	case dailyusage.FieldDay:
		return m.Day()
	case dailyusage.FieldCount:
		return m.Count()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailyusage.FieldUserID:
		return m.OldUserID(ctx)
	case dailyusage.FieldDay:
		return m.OldDay(ctx)
	case dailyusage.FieldCount:
		return m.OldCount(ctx)
	}
	return nil, fmt.Errorf("unknown DailyUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailyusage.FieldUserID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case dailyusage.FieldDay:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDay(v)
		return nil
	case dailyusage.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	}
	return fmt.Errorf("unknown DailyUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyUsageMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, dailyusage.FieldCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dailyusage.FieldCount:
		return m.AddedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dailyusage.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	}
	return fmt.Errorf("unknown DailyUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyUsageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyUsageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DailyUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyUsageMutation) ResetField(name string) error {
	switch name {
	case dailyusage.FieldUserID:
		m.ResetUserID()
		return nil
	case dailyusage.FieldDay:
		m.ResetDay()
		return nil
	case dailyusage.FieldCount:
		m.ResetCount()
		return nil
	}
	return fmt.Errorf("unknown DailyUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, dailyusage.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyUsageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dailyusage.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, dailyusage.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyUsageMutation) EdgeCleared(name string) bool {
	switch name {
	case dailyusage.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyUsageMutation) ClearEdge(name string) error {
	switch name {
	case dailyusage.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown DailyUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyUsageMutation) ResetEdge(name string) error {
	switch name {
	case dailyusage.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown DailyUsage edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int64
	username                  *string
	first_name                *string
	tier                      *user.Tier
	daily_checks_remaining    *int
	adddaily_checks_remaining *int
	quota_reset_date          *time.Time
	total_checks              *int
	addtotal_checks           *int
	subscription_expires_at   *time.Time
	created_at                *time.Time
	last_seen_at              *time.Time
	clearedFields             map[string]struct{}
	analyses                  map[string]struct{}
	removedanalyses           map[string]struct{}
	clearedanalyses           bool
	daily_usages              map[int]struct{}
	removeddaily_usages       map[int]struct{}
	cleareddaily_usages       bool
	done                      bool
	oldValue                  func(context.Context) (*User, error)
	predicates                []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int64) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id int64) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int64, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int64, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int64{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ClearUsername clears the value of the "username" field.
func (m *UserMutation) ClearUsername() {
	m.username = nil
	m.clearedFields[user.FieldUsername] = struct{}{}
}

// UsernameCleared returns if the "username" field was cleared in this mutation.
func (m *UserMutation) UsernameCleared() bool {
	_, ok := m.clearedFields[user.FieldUsername]
	return ok
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
	delete(m.clearedFields, user.FieldUsername)
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ClearFirstName clears the value of the "first_name" field.
func (m *UserMutation) ClearFirstName() {
	m.first_name = nil
	m.clearedFields[user.FieldFirstName] = struct{}{}
}

// FirstNameCleared returns if the "first_name" field was cleared in this mutation.
func (m *UserMutation) FirstNameCleared() bool {
	_, ok := m.clearedFields[user.FieldFirstName]
	return ok
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
	delete(m.clearedFields, user.FieldFirstName)
}

// SetTier sets the "tier" field.
func (m *UserMutation) SetTier(u user.Tier) {
	m.tier = &u
}

// Tier returns the value of the "tier" field in the mutation.
func (m *UserMutation) Tier() (r user.Tier, exists bool) {
	v := m.tier
	if v == nil {
		return
	}
	return *v, true
}

// OldTier returns the old "tier" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTier(ctx context.Context) (v user.Tier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTier: %w", err)
	}
	return oldValue.Tier, nil
}

// ResetTier resets all changes to the "tier" field.
func (m *UserMutation) ResetTier() {
	m.tier = nil
}

// SetDailyChecksRemaining sets the "daily_checks_remaining" field.
func (m *UserMutation) SetDailyChecksRemaining(i int) {
	m.daily_checks_remaining = &i
	m.adddaily_checks_remaining = nil
}

// DailyChecksRemaining returns the value of the "daily_checks_remaining" field in the mutation.
func (m *UserMutation) DailyChecksRemaining() (r int, exists bool) {
	v := m.daily_checks_remaining
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyChecksRemaining returns the old "daily_checks_remaining" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDailyChecksRemaining(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyChecksRemaining is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyChecksRemaining requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyChecksRemaining: %w", err)
	}
	return oldValue.DailyChecksRemaining, nil
}

// AddDailyChecksRemaining adds i to the "daily_checks_remaining" field.
func (m *UserMutation) AddDailyChecksRemaining(i int) {
	if m.adddaily_checks_remaining != nil {
		*m.adddaily_checks_remaining += i
	} else {
		m.adddaily_checks_remaining = &i
	}
}

// AddedDailyChecksRemaining returns the value that was added to the "daily_checks_remaining" field in this mutation.
func (m *UserMutation) AddedDailyChecksRemaining() (r int, exists bool) {
	v := m.adddaily_checks_remaining
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyChecksRemaining resets all changes to the "daily_checks_remaining" field.
func (m *UserMutation) ResetDailyChecksRemaining() {
	m.daily_checks_remaining = nil
	m.adddaily_checks_remaining = nil
}

// SetQuotaResetDate sets the "quota_reset_date" field.
func (m *UserMutation) SetQuotaResetDate(t time.Time) {
	m.quota_reset_date = &t
}

// QuotaResetDate returns the value of the "quota_reset_date" field in the mutation.
func (m *UserMutation) QuotaResetDate() (r time.Time, exists bool) {
	v := m.quota_reset_date
	if v == nil {
		return
	}
	return *v, true
}

// OldQuotaResetDate returns the old "quota_reset_date" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldQuotaResetDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuotaResetDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuotaResetDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuotaResetDate: %w", err)
	}
	return oldValue.QuotaResetDate, nil
}

// ResetQuotaResetDate resets all changes to the "quota_reset_date" field.
func (m *UserMutation) ResetQuotaResetDate() {
	m.quota_reset_date = nil
}

// SetTotalChecks sets the "total_checks" field.
func (m *UserMutation) SetTotalChecks(i int) {
	m.total_checks = &i
	m.addtotal_checks = nil
}

// TotalChecks returns the value of the "total_checks" field in the mutation.
func (m *UserMutation) TotalChecks() (r int, exists bool) {
	v := m.total_checks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalChecks returns the old "total_checks" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTotalChecks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalChecks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalChecks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalChecks: %w", err)
	}
	return oldValue.TotalChecks, nil
}

// AddTotalChecks adds i to the "total_checks" field.
func (m *UserMutation) AddTotalChecks(i int) {
	if m.addtotal_checks != nil {
		*m.addtotal_checks += i
	} else {
		m.addtotal_checks = &i
	}
}

// AddedTotalChecks returns the value that was added to the "total_checks" field in this mutation.
func (m *UserMutation) AddedTotalChecks() (r int, exists bool) {
	v := m.addtotal_checks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalChecks resets all changes to the "total_checks" field.
func (m *UserMutation) ResetTotalChecks() {
	m.total_checks = nil
	m.addtotal_checks = nil
}

// SetSubscriptionExpiresAt sets the "subscription_expires_at" field.
func (m *UserMutation) SetSubscriptionExpiresAt(t time.Time) {
	m.subscription_expires_at = &t
}

// SubscriptionExpiresAt returns the value of the "subscription_expires_at" field in the mutation.
func (m *UserMutation) SubscriptionExpiresAt() (r time.Time, exists bool) {
	v := m.subscription_expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionExpiresAt returns the old "subscription_expires_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldSubscriptionExpiresAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionExpiresAt: %w", err)
	}
	return oldValue.SubscriptionExpiresAt, nil
}

// ClearSubscriptionExpiresAt clears the value of the "subscription_expires_at" field.
func (m *UserMutation) ClearSubscriptionExpiresAt() {
	m.subscription_expires_at = nil
	m.clearedFields[user.FieldSubscriptionExpiresAt] = struct{}{}
}

// SubscriptionExpiresAtCleared returns if the "subscription_expires_at" field was cleared in this mutation.
func (m *UserMutation) SubscriptionExpiresAtCleared() bool {
	_, ok := m.clearedFields[user.FieldSubscriptionExpiresAt]
	return ok
}

// ResetSubscriptionExpiresAt resets all changes to the "subscription_expires_at" field.
func (m *UserMutation) ResetSubscriptionExpiresAt() {
	m.subscription_expires_at = nil
	delete(m.clearedFields, user.FieldSubscriptionExpiresAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastSeenAt sets the "last_seen_at" field.
func (m *UserMutation) SetLastSeenAt(t time.Time) {
	m.last_seen_at = &t
}

// LastSeenAt returns the value of the "last_seen_at" field in the mutation.
func (m *UserMutation) LastSeenAt() (r time.Time, exists bool) {
	v := m.last_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenAt returns the old "last_seen_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenAt: %w", err)
	}
	return oldValue.LastSeenAt, nil
}

// ResetLastSeenAt resets all changes to the "last_seen_at" field.
func (m *UserMutation) ResetLastSeenAt() {
	m.last_seen_at = nil
}

// AddAnalysisIDs adds the "analyses" edge to the Analysis entity by ids.
func (m *UserMutation) AddAnalysisIDs(ids ...string) {
	if m.analyses == nil {
		m.analyses = make(map[string]struct{})
	}
	for i := range ids {
		m.analyses[ids[i]] = struct{}{}
	}
}

// ClearAnalyses clears the "analyses" edge to the Analysis entity.
func (m *UserMutation) ClearAnalyses() {
	m.clearedanalyses = true
}

// AnalysesCleared reports if the "analyses" edge to the Analysis entity was cleared.
func (m *UserMutation) AnalysesCleared() bool {
	return m.clearedanalyses
}

// RemoveAnalysisIDs removes the "analyses" edge to the Analysis entity by IDs.
func (m *UserMutation) RemoveAnalysisIDs(ids ...string) {
	if m.removedanalyses == nil {
		m.removedanalyses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.analyses, ids[i])
		m.removedanalyses[ids[i]] = struct{}{}
	}
}

// RemovedAnalyses returns the removed IDs of the "analyses" edge to the Analysis entity.
func (m *UserMutation) RemovedAnalysesIDs() (ids []string) {
	for id := range m.removedanalyses {
		ids = append(ids, id)
	}
	return
}

// AnalysesIDs returns the "analyses" edge IDs in the mutation.
func (m *UserMutation) AnalysesIDs() (ids []string) {
	for id := range m.analyses {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyses resets all changes to the "analyses" edge.
func (m *UserMutation) ResetAnalyses() {
	m.analyses = nil
	m.clearedanalyses = false
	m.removedanalyses = nil
}

// AddDailyUsageIDs adds the "daily_usages" edge to the DailyUsage entity by ids.
func (m *UserMutation) AddDailyUsageIDs(ids ...int) {
	if m.daily_usages == nil {
		m.daily_usages = make(map[int]struct{})
	}
	for i := range ids {
		m.daily_usages[ids[i]] = struct{}{}
	}
}

// ClearDailyUsages clears the "daily_usages" edge to the DailyUsage entity.
func (m *UserMutation) ClearDailyUsages() {
	m.cleareddaily_usages = true
}

// DailyUsagesCleared reports if the "daily_usages" edge to the DailyUsage entity was cleared.
func (m *UserMutation) DailyUsagesCleared() bool {
	return m.cleareddaily_usages
}

// RemoveDailyUsageIDs removes the "daily_usages" edge to the DailyUsage entity by IDs.
func (m *UserMutation) RemoveDailyUsageIDs(ids ...int) {
	if m.removeddaily_usages == nil {
		m.removeddaily_usages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.daily_usages, ids[i])
		m.removeddaily_usages[ids[i]] = struct{}{}
	}
}

// RemovedDailyUsages returns the removed IDs of the "daily_usages" edge to the DailyUsage entity.
func (m *UserMutation) RemovedDailyUsagesIDs() (ids []int) {
	for id := range m.removeddaily_usages {
		ids = append(ids, id)
	}
	return
}

// DailyUsagesIDs returns the "daily_usages" edge IDs in the mutation.
func (m *UserMutation) DailyUsagesIDs() (ids []int) {
	for id := range m.daily_usages {
		ids = append(ids, id)
	}
	return
}

// ResetDailyUsages resets all changes to the "daily_usages" edge.
func (m *UserMutation) ResetDailyUsages() {
	m.daily_usages = nil
	m.cleareddaily_usages = false
	m.removeddaily_usages = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.tier != nil {
		fields = append(fields, user.FieldTier)
	}
	if m.daily_checks_remaining != nil {
		fields = append(fields, user.FieldDailyChecksRemaining)
	}
	if m.quota_reset_date != nil {
		fields = append(fields, user.FieldQuotaResetDate)
	}
	if m.total_checks != nil {
		fields = append(fields, user.FieldTotalChecks)
	}
	if m.subscription_expires_at != nil {
		fields = append(fields, user.FieldSubscriptionExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.last_seen_at != nil {
		fields = append(fields, user.FieldLastSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldTier:
		return m.Tier()
	case user.FieldDailyChecksRemaining:
		return m.DailyChecksRemaining()
	case user.FieldQuotaResetDate:
		return m.QuotaResetDate()
	case user.FieldTotalChecks:
		return m.TotalChecks()
	case user.FieldSubscriptionExpiresAt:
		return m.SubscriptionExpiresAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldLastSeenAt:
		return m.LastSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldTier:
		return m.OldTier(ctx)
	case user.FieldDailyChecksRemaining:
		return m.OldDailyChecksRemaining(ctx)
	case user.FieldQuotaResetDate:
		return m.OldQuotaResetDate(ctx)
	case user.FieldTotalChecks:
		return m.OldTotalChecks(ctx)
	case user.FieldSubscriptionExpiresAt:
		return m.OldSubscriptionExpiresAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldLastSeenAt:
		return m.OldLastSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldTier:
		v, ok := value.(user.Tier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTier(v)
		return nil
	case user.FieldDailyChecksRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyChecksRemaining(v)
		return nil
	case user.FieldQuotaResetDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuotaResetDate(v)
		return nil
	case user.FieldTotalChecks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalChecks(v)
		return nil
	case user.FieldSubscriptionExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionExpiresAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldLastSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.adddaily_checks_remaining != nil {
		fields = append(fields, user.FieldDailyChecksRemaining)
	}
	if m.addtotal_checks != nil {
		fields = append(fields, user.FieldTotalChecks)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldDailyChecksRemaining:
		return m.AddedDailyChecksRemaining()
	case user.FieldTotalChecks:
		return m.AddedTotalChecks()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldDailyChecksRemaining:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyChecksRemaining(v)
		return nil
	case user.FieldTotalChecks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalChecks(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldUsername) {
		fields = append(fields, user.FieldUsername)
	}
	if m.FieldCleared(user.FieldFirstName) {
		fields = append(fields, user.FieldFirstName)
	}
	if m.FieldCleared(user.FieldSubscriptionExpiresAt) {
		fields = append(fields, user.FieldSubscriptionExpiresAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ClearUsername()
		return nil
	case user.FieldFirstName:
		m.ClearFirstName()
		return nil
	case user.FieldSubscriptionExpiresAt:
		m.ClearSubscriptionExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldTier:
		m.ResetTier()
		return nil
	case user.FieldDailyChecksRemaining:
		m.ResetDailyChecksRemaining()
		return nil
	case user.FieldQuotaResetDate:
		m.ResetQuotaResetDate()
		return nil
	case user.FieldTotalChecks:
		m.ResetTotalChecks()
		return nil
	case user.FieldSubscriptionExpiresAt:
		m.ResetSubscriptionExpiresAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldLastSeenAt:
		m.ResetLastSeenAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.analyses != nil {
		edges = append(edges, user.EdgeAnalyses)
	}
	if m.daily_usages != nil {
		edges = append(edges, user.EdgeDailyUsages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.analyses))
		for id := range m.analyses {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeDailyUsages:
		ids := make([]ent.Value, 0, len(m.daily_usages))
		for id := range m.daily_usages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedanalyses != nil {
		edges = append(edges, user.EdgeAnalyses)
	}
	if m.removeddaily_usages != nil {
		edges = append(edges, user.EdgeDailyUsages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.removedanalyses))
		for id := range m.removedanalyses {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeDailyUsages:
		ids := make([]ent.Value, 0, len(m.removeddaily_usages))
		for id := range m.removeddaily_usages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedanalyses {
		edges = append(edges, user.EdgeAnalyses)
	}
	if m.cleareddaily_usages {
		edges = append(edges, user.EdgeDailyUsages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeAnalyses:
		return m.clearedanalyses
	case user.EdgeDailyUsages:
		return m.cleareddaily_usages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeAnalyses:
		m.ResetAnalyses()
		return nil
	case user.EdgeDailyUsages:
		m.ResetDailyUsages()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
