// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sevrusik/turthsnapbot/ent/analysis"
	"github.com/sevrusik/turthsnapbot/ent/predicate"
	"github.com/sevrusik/turthsnapbot/ent/user"
)

// AnalysisUpdate is the builder for updating Analysis entities.
type AnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisMutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdate) Where(ps ...predicate.Analysis) *AnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnalysisUpdate) SetUserID(v int64) *AnalysisUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableUserID(v *int64) *AnalysisUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScenario sets the "scenario" field.
func (_u *AnalysisUpdate) SetScenario(v analysis.Scenario) *AnalysisUpdate {
	_u.mutation.SetScenario(v)
	return _u
}

// SetNillableScenario sets the "scenario" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableScenario(v *analysis.Scenario) *AnalysisUpdate {
	if v != nil {
		_u.SetScenario(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AnalysisUpdate) SetVerdict(v analysis.Verdict) *AnalysisUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableVerdict(v *analysis.Verdict) *AnalysisUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalysisUpdate) SetConfidence(v float64) *AnalysisUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableConfidence(v *float64) *AnalysisUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalysisUpdate) AddConfidence(v float64) *AnalysisUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetVerdictReason sets the "verdict_reason" field.
func (_u *AnalysisUpdate) SetVerdictReason(v string) *AnalysisUpdate {
	_u.mutation.SetVerdictReason(v)
	return _u
}

// SetNillableVerdictReason sets the "verdict_reason" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableVerdictReason(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetVerdictReason(*v)
	}
	return _u
}

// ClearVerdictReason clears the value of the "verdict_reason" field.
func (_u *AnalysisUpdate) ClearVerdictReason() *AnalysisUpdate {
	_u.mutation.ClearVerdictReason()
	return _u
}

// SetImageSha256 sets the "image_sha256" field.
func (_u *AnalysisUpdate) SetImageSha256(v string) *AnalysisUpdate {
	_u.mutation.SetImageSha256(v)
	return _u
}

// SetNillableImageSha256 sets the "image_sha256" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableImageSha256(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetImageSha256(*v)
	}
	return _u
}

// SetPhash sets the "phash" field.
func (_u *AnalysisUpdate) SetPhash(v string) *AnalysisUpdate {
	_u.mutation.SetPhash(v)
	return _u
}

// SetNillablePhash sets the "phash" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillablePhash(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetPhash(*v)
	}
	return _u
}

// ClearPhash clears the value of the "phash" field.
func (_u *AnalysisUpdate) ClearPhash() *AnalysisUpdate {
	_u.mutation.ClearPhash()
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *AnalysisUpdate) SetBlobKey(v string) *AnalysisUpdate {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableBlobKey(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// ClearBlobKey clears the value of the "blob_key" field.
func (_u *AnalysisUpdate) ClearBlobKey() *AnalysisUpdate {
	_u.mutation.ClearBlobKey()
	return _u
}

// SetPreserveExif sets the "preserve_exif" field.
func (_u *AnalysisUpdate) SetPreserveExif(v bool) *AnalysisUpdate {
	_u.mutation.SetPreserveExif(v)
	return _u
}

// SetNillablePreserveExif sets the "preserve_exif" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillablePreserveExif(v *bool) *AnalysisUpdate {
	if v != nil {
		_u.SetPreserveExif(*v)
	}
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *AnalysisUpdate) SetProcessingTimeMs(v int) *AnalysisUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableProcessingTimeMs(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *AnalysisUpdate) AddProcessingTimeMs(v int) *AnalysisUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetResultBlob sets the "result_blob" field.
func (_u *AnalysisUpdate) SetResultBlob(v map[string]interface{}) *AnalysisUpdate {
	_u.mutation.SetResultBlob(v)
	return _u
}

// ClearResultBlob clears the value of the "result_blob" field.
func (_u *AnalysisUpdate) ClearResultBlob() *AnalysisUpdate {
	_u.mutation.ClearResultBlob()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *AnalysisUpdate) SetUser(v *User) *AnalysisUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdate) Mutation() *AnalysisMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *AnalysisUpdate) ClearUser() *AnalysisUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdate) check() error {
	if v, ok := _u.mutation.Scenario(); ok {
		if err := analysis.ScenarioValidator(v); err != nil {
			return &ValidationError{Name: "scenario", err: fmt.Errorf(`ent: validator failed for field "Analysis.scenario": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := analysis.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Analysis.verdict": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.user"`)
	}
	return nil
}

func (_u *AnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scenario(); ok {
		_spec.SetField(analysis.FieldScenario, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(analysis.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analysis.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analysis.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VerdictReason(); ok {
		_spec.SetField(analysis.FieldVerdictReason, field.TypeString, value)
	}
	if _u.mutation.VerdictReasonCleared() {
		_spec.ClearField(analysis.FieldVerdictReason, field.TypeString)
	}
	if value, ok := _u.mutation.ImageSha256(); ok {
		_spec.SetField(analysis.FieldImageSha256, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phash(); ok {
		_spec.SetField(analysis.FieldPhash, field.TypeString, value)
	}
	if _u.mutation.PhashCleared() {
		_spec.ClearField(analysis.FieldPhash, field.TypeString)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(analysis.FieldBlobKey, field.TypeString, value)
	}
	if _u.mutation.BlobKeyCleared() {
		_spec.ClearField(analysis.FieldBlobKey, field.TypeString)
	}
	if value, ok := _u.mutation.PreserveExif(); ok {
		_spec.SetField(analysis.FieldPreserveExif, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(analysis.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(analysis.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultBlob(); ok {
		_spec.SetField(analysis.FieldResultBlob, field.TypeJSON, value)
	}
	if _u.mutation.ResultBlobCleared() {
		_spec.ClearField(analysis.FieldResultBlob, field.TypeJSON)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.UserTable,
			Columns: []string{analysis.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.UserTable,
			Columns: []string{analysis.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisUpdateOne is the builder for updating a single Analysis entity.
type AnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisMutation
}

// SetUserID sets the "user_id" field.
func (_u *AnalysisUpdateOne) SetUserID(v int64) *AnalysisUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableUserID(v *int64) *AnalysisUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetScenario sets the "scenario" field.
func (_u *AnalysisUpdateOne) SetScenario(v analysis.Scenario) *AnalysisUpdateOne {
	_u.mutation.SetScenario(v)
	return _u
}

// SetNillableScenario sets the "scenario" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableScenario(v *analysis.Scenario) *AnalysisUpdateOne {
	if v != nil {
		_u.SetScenario(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *AnalysisUpdateOne) SetVerdict(v analysis.Verdict) *AnalysisUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableVerdict(v *analysis.Verdict) *AnalysisUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *AnalysisUpdateOne) SetConfidence(v float64) *AnalysisUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableConfidence(v *float64) *AnalysisUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *AnalysisUpdateOne) AddConfidence(v float64) *AnalysisUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetVerdictReason sets the "verdict_reason" field.
func (_u *AnalysisUpdateOne) SetVerdictReason(v string) *AnalysisUpdateOne {
	_u.mutation.SetVerdictReason(v)
	return _u
}

// SetNillableVerdictReason sets the "verdict_reason" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableVerdictReason(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetVerdictReason(*v)
	}
	return _u
}

// ClearVerdictReason clears the value of the "verdict_reason" field.
func (_u *AnalysisUpdateOne) ClearVerdictReason() *AnalysisUpdateOne {
	_u.mutation.ClearVerdictReason()
	return _u
}

// SetImageSha256 sets the "image_sha256" field.
func (_u *AnalysisUpdateOne) SetImageSha256(v string) *AnalysisUpdateOne {
	_u.mutation.SetImageSha256(v)
	return _u
}

// SetNillableImageSha256 sets the "image_sha256" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableImageSha256(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetImageSha256(*v)
	}
	return _u
}

// SetPhash sets the "phash" field.
func (_u *AnalysisUpdateOne) SetPhash(v string) *AnalysisUpdateOne {
	_u.mutation.SetPhash(v)
	return _u
}

// SetNillablePhash sets the "phash" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillablePhash(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetPhash(*v)
	}
	return _u
}

// ClearPhash clears the value of the "phash" field.
func (_u *AnalysisUpdateOne) ClearPhash() *AnalysisUpdateOne {
	_u.mutation.ClearPhash()
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *AnalysisUpdateOne) SetBlobKey(v string) *AnalysisUpdateOne {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableBlobKey(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// ClearBlobKey clears the value of the "blob_key" field.
func (_u *AnalysisUpdateOne) ClearBlobKey() *AnalysisUpdateOne {
	_u.mutation.ClearBlobKey()
	return _u
}

// SetPreserveExif sets the "preserve_exif" field.
func (_u *AnalysisUpdateOne) SetPreserveExif(v bool) *AnalysisUpdateOne {
	_u.mutation.SetPreserveExif(v)
	return _u
}

// SetNillablePreserveExif sets the "preserve_exif" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillablePreserveExif(v *bool) *AnalysisUpdateOne {
	if v != nil {
		_u.SetPreserveExif(*v)
	}
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *AnalysisUpdateOne) SetProcessingTimeMs(v int) *AnalysisUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableProcessingTimeMs(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *AnalysisUpdateOne) AddProcessingTimeMs(v int) *AnalysisUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetResultBlob sets the "result_blob" field.
func (_u *AnalysisUpdateOne) SetResultBlob(v map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.SetResultBlob(v)
	return _u
}

// ClearResultBlob clears the value of the "result_blob" field.
func (_u *AnalysisUpdateOne) ClearResultBlob() *AnalysisUpdateOne {
	_u.mutation.ClearResultBlob()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *AnalysisUpdateOne) SetUser(v *User) *AnalysisUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdateOne) Mutation() *AnalysisMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *AnalysisUpdateOne) ClearUser() *AnalysisUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdateOne) Where(ps ...predicate.Analysis) *AnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisUpdateOne) Select(field string, fields ...string) *AnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Analysis entity.
func (_u *AnalysisUpdateOne) Save(ctx context.Context) (*Analysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdateOne) SaveX(ctx context.Context) *Analysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdateOne) check() error {
	if v, ok := _u.mutation.Scenario(); ok {
		if err := analysis.ScenarioValidator(v); err != nil {
			return &ValidationError{Name: "scenario", err: fmt.Errorf(`ent: validator failed for field "Analysis.scenario": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Verdict(); ok {
		if err := analysis.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Analysis.verdict": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.user"`)
	}
	return nil
}

func (_u *AnalysisUpdateOne) sqlSave(ctx context.Context) (_node *Analysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Analysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysis.FieldID)
		for _, f := range fields {
			if !analysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysis.FieldID {
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
	if value, ok := _u.mutation.Scenario(); ok {
		_spec.SetField(analysis.FieldScenario, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(analysis.FieldVerdict, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(analysis.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(analysis.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.VerdictReason(); ok {
		_spec.SetField(analysis.FieldVerdictReason, field.TypeString, value)
	}
	if _u.mutation.VerdictReasonCleared() {
		_spec.ClearField(analysis.FieldVerdictReason, field.TypeString)
	}
	if value, ok := _u.mutation.ImageSha256(); ok {
		_spec.SetField(analysis.FieldImageSha256, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phash(); ok {
		_spec.SetField(analysis.FieldPhash, field.TypeString, value)
	}
	if _u.mutation.PhashCleared() {
		_spec.ClearField(analysis.FieldPhash, field.TypeString)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(analysis.FieldBlobKey, field.TypeString, value)
	}
	if _u.mutation.BlobKeyCleared() {
		_spec.ClearField(analysis.FieldBlobKey, field.TypeString)
	}
	if value, ok := _u.mutation.PreserveExif(); ok {
		_spec.SetField(analysis.FieldPreserveExif, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(analysis.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(analysis.FieldProcessingTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultBlob(); ok {
		_spec.SetField(analysis.FieldResultBlob, field.TypeJSON, value)
	}
	if _u.mutation.ResultBlobCleared() {
		_spec.ClearField(analysis.FieldResultBlob, field.TypeJSON)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.UserTable,
			Columns: []string{analysis.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   analysis.UserTable,
			Columns: []string{analysis.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Analysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
