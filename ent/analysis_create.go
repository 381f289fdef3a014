// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sevrusik/turthsnapbot/ent/analysis"
	"github.com/sevrusik/turthsnapbot/ent/user"
)

// AnalysisCreate is the builder for creating a Analysis entity.
type AnalysisCreate struct {
	config
	mutation *AnalysisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *AnalysisCreate) SetUserID(v int64) *AnalysisCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetScenario sets the "scenario" field.
func (_c *AnalysisCreate) SetScenario(v analysis.Scenario) *AnalysisCreate {
	_c.mutation.SetScenario(v)
	return _c
}

// SetNillableScenario sets the "scenario" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableScenario(v *analysis.Scenario) *AnalysisCreate {
	if v != nil {
		_c.SetScenario(*v)
	}
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *AnalysisCreate) SetVerdict(v analysis.Verdict) *AnalysisCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *AnalysisCreate) SetConfidence(v float64) *AnalysisCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetVerdictReason sets the "verdict_reason" field.
func (_c *AnalysisCreate) SetVerdictReason(v string) *AnalysisCreate {
	_c.mutation.SetVerdictReason(v)
	return _c
}

// SetNillableVerdictReason sets the "verdict_reason" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableVerdictReason(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetVerdictReason(*v)
	}
	return _c
}

// SetImageSha256 sets the "image_sha256" field.
func (_c *AnalysisCreate) SetImageSha256(v string) *AnalysisCreate {
	_c.mutation.SetImageSha256(v)
	return _c
}

// SetPhash sets the "phash" field.
func (_c *AnalysisCreate) SetPhash(v string) *AnalysisCreate {
	_c.mutation.SetPhash(v)
	return _c
}

// SetNillablePhash sets the "phash" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillablePhash(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetPhash(*v)
	}
	return _c
}

// SetBlobKey sets the "blob_key" field.
func (_c *AnalysisCreate) SetBlobKey(v string) *AnalysisCreate {
	_c.mutation.SetBlobKey(v)
	return _c
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableBlobKey(v *string) *AnalysisCreate {
	if v != nil {
		_c.SetBlobKey(*v)
	}
	return _c
}

// SetPreserveExif sets the "preserve_exif" field.
func (_c *AnalysisCreate) SetPreserveExif(v bool) *AnalysisCreate {
	_c.mutation.SetPreserveExif(v)
	return _c
}

// SetNillablePreserveExif sets the "preserve_exif" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillablePreserveExif(v *bool) *AnalysisCreate {
	if v != nil {
		_c.SetPreserveExif(*v)
	}
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *AnalysisCreate) SetProcessingTimeMs(v int) *AnalysisCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableProcessingTimeMs(v *int) *AnalysisCreate {
	if v != nil {
		_c.SetProcessingTimeMs(*v)
	}
	return _c
}

// SetResultBlob sets the "result_blob" field.
func (_c *AnalysisCreate) SetResultBlob(v map[string]interface{}) *AnalysisCreate {
	_c.mutation.SetResultBlob(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisCreate) SetCreatedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCreatedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisCreate) SetID(v string) *AnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *AnalysisCreate) SetUser(v *User) *AnalysisCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_c *AnalysisCreate) Mutation() *AnalysisMutation {
	return _c.mutation
}

// Save creates the Analysis in the database.
func (_c *AnalysisCreate) Save(ctx context.Context) (*Analysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisCreate) SaveX(ctx context.Context) *Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisCreate) defaults() {
	if _, ok := _c.mutation.Scenario(); !ok {
		v := analysis.DefaultScenario
		_c.mutation.SetScenario(v)
	}
	if _, ok := _c.mutation.PreserveExif(); !ok {
		v := analysis.DefaultPreserveExif
		_c.mutation.SetPreserveExif(v)
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		v := analysis.DefaultProcessingTimeMs
		_c.mutation.SetProcessingTimeMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Analysis.user_id"`)}
	}
	if _, ok := _c.mutation.Scenario(); !ok {
		return &ValidationError{Name: "scenario", err: errors.New(`ent: missing required field "Analysis.scenario"`)}
	}
	if v, ok := _c.mutation.Scenario(); ok {
		if err := analysis.ScenarioValidator(v); err != nil {
			return &ValidationError{Name: "scenario", err: fmt.Errorf(`ent: validator failed for field "Analysis.scenario": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "Analysis.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := analysis.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "Analysis.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Analysis.confidence"`)}
	}
	if _, ok := _c.mutation.ImageSha256(); !ok {
		return &ValidationError{Name: "image_sha256", err: errors.New(`ent: missing required field "Analysis.image_sha256"`)}
	}
	if _, ok := _c.mutation.PreserveExif(); !ok {
		return &ValidationError{Name: "preserve_exif", err: errors.New(`ent: missing required field "Analysis.preserve_exif"`)}
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		return &ValidationError{Name: "processing_time_ms", err: errors.New(`ent: missing required field "Analysis.processing_time_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Analysis.created_at"`)}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`ent: missing required edge "Analysis.user"`)}
	}
	return nil
}

func (_c *AnalysisCreate) sqlSave(ctx context.Context) (*Analysis, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Analysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisCreate) createSpec() (*Analysis, *sqlgraph.CreateSpec) {
	var (
		_node = &Analysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysis.Table, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Scenario(); ok {
		_spec.SetField(analysis.FieldScenario, field.TypeEnum, value)
		_node.Scenario = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(analysis.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(analysis.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.VerdictReason(); ok {
		_spec.SetField(analysis.FieldVerdictReason, field.TypeString, value)
		_node.VerdictReason = value
	}
	if value, ok := _c.mutation.ImageSha256(); ok {
		_spec.SetField(analysis.FieldImageSha256, field.TypeString, value)
		_node.ImageSha256 = value
	}
	if value, ok := _c.mutation.Phash(); ok {
		_spec.SetField(analysis.FieldPhash, field.TypeString, value)
		_node.Phash = value
	}
	if value, ok := _c.mutation.BlobKey(); ok {
		_spec.SetField(analysis.FieldBlobKey, field.TypeString, value)
		_node.BlobKey = value
	}
	if value, ok := _c.mutation.PreserveExif(); ok {
		_spec.SetField(analysis.FieldPreserveExif, field.TypeBool, value)
		_node.PreserveExif = value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(analysis.FieldProcessingTimeMs, field.TypeInt, value)
		_node.ProcessingTimeMs = value
	}
	if value, ok := _c.mutation.ResultBlob(); ok {
		_spec.SetField(analysis.FieldResultBlob, field.TypeJSON, value)
		_node.ResultBlob = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Analysis.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisCreate) OnConflict(opts ...sql.ConflictOption) *AnalysisUpsertOne {
	_c.conflict = opts
	return &AnalysisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisCreate) OnConflictColumns(columns ...string) *AnalysisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisUpsertOne{
		create: _c,
	}
}

type (
	// AnalysisUpsertOne is the builder for "upsert"-ing
	//  one Analysis node.
	AnalysisUpsertOne struct {
		create *AnalysisCreate
	}

	// AnalysisUpsert is the "OnConflict" setter.
	AnalysisUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *AnalysisUpsert) SetUserID(v int64) *AnalysisUpsert {
	u.Set(analysis.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateUserID() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldUserID)
	return u
}

// SetScenario sets the "scenario" field.
func (u *AnalysisUpsert) SetScenario(v analysis.Scenario) *AnalysisUpsert {
	u.Set(analysis.FieldScenario, v)
	return u
}

// UpdateScenario sets the "scenario" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateScenario() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldScenario)
	return u
}

// SetVerdict sets the "verdict" field.
func (u *AnalysisUpsert) SetVerdict(v analysis.Verdict) *AnalysisUpsert {
	u.Set(analysis.FieldVerdict, v)
	return u
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateVerdict() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldVerdict)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *AnalysisUpsert) SetConfidence(v float64) *AnalysisUpsert {
	u.Set(analysis.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateConfidence() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *AnalysisUpsert) AddConfidence(v float64) *AnalysisUpsert {
	u.Add(analysis.FieldConfidence, v)
	return u
}

// SetVerdictReason sets the "verdict_reason" field.
func (u *AnalysisUpsert) SetVerdictReason(v string) *AnalysisUpsert {
	u.Set(analysis.FieldVerdictReason, v)
	return u
}

// UpdateVerdictReason sets the "verdict_reason" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateVerdictReason() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldVerdictReason)
	return u
}

// ClearVerdictReason clears the value of the "verdict_reason" field.
func (u *AnalysisUpsert) ClearVerdictReason() *AnalysisUpsert {
	u.SetNull(analysis.FieldVerdictReason)
	return u
}

// SetImageSha256 sets the "image_sha256" field.
func (u *AnalysisUpsert) SetImageSha256(v string) *AnalysisUpsert {
	u.Set(analysis.FieldImageSha256, v)
	return u
}

// UpdateImageSha256 sets the "image_sha256" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateImageSha256() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldImageSha256)
	return u
}

// SetPhash sets the "phash" field.
func (u *AnalysisUpsert) SetPhash(v string) *AnalysisUpsert {
	u.Set(analysis.FieldPhash, v)
	return u
}

// UpdatePhash sets the "phash" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdatePhash() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldPhash)
	return u
}

// ClearPhash clears the value of the "phash" field.
func (u *AnalysisUpsert) ClearPhash() *AnalysisUpsert {
	u.SetNull(analysis.FieldPhash)
	return u
}

// SetBlobKey sets the "blob_key" field.
func (u *AnalysisUpsert) SetBlobKey(v string) *AnalysisUpsert {
	u.Set(analysis.FieldBlobKey, v)
	return u
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateBlobKey() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldBlobKey)
	return u
}

// ClearBlobKey clears the value of the "blob_key" field.
func (u *AnalysisUpsert) ClearBlobKey() *AnalysisUpsert {
	u.SetNull(analysis.FieldBlobKey)
	return u
}

// SetPreserveExif sets the "preserve_exif" field.
func (u *AnalysisUpsert) SetPreserveExif(v bool) *AnalysisUpsert {
	u.Set(analysis.FieldPreserveExif, v)
	return u
}

// UpdatePreserveExif sets the "preserve_exif" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdatePreserveExif() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldPreserveExif)
	return u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (u *AnalysisUpsert) SetProcessingTimeMs(v int) *AnalysisUpsert {
	u.Set(analysis.FieldProcessingTimeMs, v)
	return u
}

// UpdateProcessingTimeMs sets the "processing_time_ms" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateProcessingTimeMs() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldProcessingTimeMs)
	return u
}

// AddProcessingTimeMs adds v to the "processing_time_ms" field.
func (u *AnalysisUpsert) AddProcessingTimeMs(v int) *AnalysisUpsert {
	u.Add(analysis.FieldProcessingTimeMs, v)
	return u
}

// SetResultBlob sets the "result_blob" field.
func (u *AnalysisUpsert) SetResultBlob(v map[string]interface{}) *AnalysisUpsert {
	u.Set(analysis.FieldResultBlob, v)
	return u
}

// UpdateResultBlob sets the "result_blob" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateResultBlob() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldResultBlob)
	return u
}

// ClearResultBlob clears the value of the "result_blob" field.
func (u *AnalysisUpsert) ClearResultBlob() *AnalysisUpsert {
	u.SetNull(analysis.FieldResultBlob)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisUpsertOne) UpdateNewValues() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(analysis.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(analysis.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnalysisUpsertOne) Ignore() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisUpsertOne) DoNothing() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisCreate.OnConflict
// documentation for more info.
func (u *AnalysisUpsertOne) Update(set func(*AnalysisUpsert)) *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AnalysisUpsertOne) SetUserID(v int64) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateUserID() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateUserID()
	})
}

// SetScenario sets the "scenario" field.
func (u *AnalysisUpsertOne) SetScenario(v analysis.Scenario) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetScenario(v)
	})
}

// UpdateScenario sets the "scenario" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateScenario() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateScenario()
	})
}

// SetVerdict sets the "verdict" field.
func (u *AnalysisUpsertOne) SetVerdict(v analysis.Verdict) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetVerdict(v)
	})
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateVerdict() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateVerdict()
	})
}

// SetConfidence sets the "confidence" field.
func (u *AnalysisUpsertOne) SetConfidence(v float64) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *AnalysisUpsertOne) AddConfidence(v float64) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateConfidence() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateConfidence()
	})
}

// SetVerdictReason sets the "verdict_reason" field.
func (u *AnalysisUpsertOne) SetVerdictReason(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetVerdictReason(v)
	})
}

// UpdateVerdictReason sets the "verdict_reason" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateVerdictReason() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateVerdictReason()
	})
}

// ClearVerdictReason clears the value of the "verdict_reason" field.
func (u *AnalysisUpsertOne) ClearVerdictReason() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearVerdictReason()
	})
}

// SetImageSha256 sets the "image_sha256" field.
func (u *AnalysisUpsertOne) SetImageSha256(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetImageSha256(v)
	})
}

// UpdateImageSha256 sets the "image_sha256" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateImageSha256() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateImageSha256()
	})
}

// SetPhash sets the "phash" field.
func (u *AnalysisUpsertOne) SetPhash(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetPhash(v)
	})
}

// UpdatePhash sets the "phash" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdatePhash() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdatePhash()
	})
}

// ClearPhash clears the value of the "phash" field.
func (u *AnalysisUpsertOne) ClearPhash() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearPhash()
	})
}

// SetBlobKey sets the "blob_key" field.
func (u *AnalysisUpsertOne) SetBlobKey(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetBlobKey(v)
	})
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateBlobKey() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateBlobKey()
	})
}

// ClearBlobKey clears the value of the "blob_key" field.
func (u *AnalysisUpsertOne) ClearBlobKey() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearBlobKey()
	})
}

// SetPreserveExif sets the "preserve_exif" field.
func (u *AnalysisUpsertOne) SetPreserveExif(v bool) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetPreserveExif(v)
	})
}

// UpdatePreserveExif sets the "preserve_exif" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdatePreserveExif() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdatePreserveExif()
	})
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (u *AnalysisUpsertOne) SetProcessingTimeMs(v int) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetProcessingTimeMs(v)
	})
}

// AddProcessingTimeMs adds v to the "processing_time_ms" field.
func (u *AnalysisUpsertOne) AddProcessingTimeMs(v int) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddProcessingTimeMs(v)
	})
}

// UpdateProcessingTimeMs sets the "processing_time_ms" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateProcessingTimeMs() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateProcessingTimeMs()
	})
}

// SetResultBlob sets the "result_blob" field.
func (u *AnalysisUpsertOne) SetResultBlob(v map[string]interface{}) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetResultBlob(v)
	})
}

// UpdateResultBlob sets the "result_blob" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateResultBlob() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateResultBlob()
	})
}

// ClearResultBlob clears the value of the "result_blob" field.
func (u *AnalysisUpsertOne) ClearResultBlob() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearResultBlob()
	})
}

// Exec executes the query.
func (u *AnalysisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnalysisUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AnalysisUpsertOne.ID is not supported by MySQL driver. Use AnalysisUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnalysisUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnalysisCreateBulk is the builder for creating many Analysis entities in bulk.
type AnalysisCreateBulk struct {
	config
	err      error
	builders []*AnalysisCreate
	conflict []sql.ConflictOption
}

// Save creates the Analysis entities in the database.
func (_c *AnalysisCreateBulk) Save(ctx context.Context) ([]*Analysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Analysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisCreateBulk) SaveX(ctx context.Context) []*Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Analysis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnalysisUpsertBulk {
	_c.conflict = opts
	return &AnalysisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisCreateBulk) OnConflictColumns(columns ...string) *AnalysisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisUpsertBulk{
		create: _c,
	}
}

// AnalysisUpsertBulk is the builder for "upsert"-ing
// a bulk of Analysis nodes.
type AnalysisUpsertBulk struct {
	create *AnalysisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisUpsertBulk) UpdateNewValues() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(analysis.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(analysis.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnalysisUpsertBulk) Ignore() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisUpsertBulk) DoNothing() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisCreateBulk.OnConflict
// documentation for more info.
func (u *AnalysisUpsertBulk) Update(set func(*AnalysisUpsert)) *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *AnalysisUpsertBulk) SetUserID(v int64) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateUserID() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateUserID()
	})
}

// SetScenario sets the "scenario" field.
func (u *AnalysisUpsertBulk) SetScenario(v analysis.Scenario) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetScenario(v)
	})
}

// UpdateScenario sets the "scenario" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateScenario() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateScenario()
	})
}

// SetVerdict sets the "verdict" field.
func (u *AnalysisUpsertBulk) SetVerdict(v analysis.Verdict) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetVerdict(v)
	})
}

// UpdateVerdict sets the "verdict" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateVerdict() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateVerdict()
	})
}

// SetConfidence sets the "confidence" field.
func (u *AnalysisUpsertBulk) SetConfidence(v float64) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *AnalysisUpsertBulk) AddConfidence(v float64) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateConfidence() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateConfidence()
	})
}

// SetVerdictReason sets the "verdict_reason" field.
func (u *AnalysisUpsertBulk) SetVerdictReason(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetVerdictReason(v)
	})
}

// UpdateVerdictReason sets the "verdict_reason" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateVerdictReason() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateVerdictReason()
	})
}

// ClearVerdictReason clears the value of the "verdict_reason" field.
func (u *AnalysisUpsertBulk) ClearVerdictReason() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearVerdictReason()
	})
}

// SetImageSha256 sets the "image_sha256" field.
func (u *AnalysisUpsertBulk) SetImageSha256(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetImageSha256(v)
	})
}

// UpdateImageSha256 sets the "image_sha256" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateImageSha256() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateImageSha256()
	})
}

// SetPhash sets the "phash" field.
func (u *AnalysisUpsertBulk) SetPhash(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetPhash(v)
	})
}

// UpdatePhash sets the "phash" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdatePhash() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdatePhash()
	})
}

// ClearPhash clears the value of the "phash" field.
func (u *AnalysisUpsertBulk) ClearPhash() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearPhash()
	})
}

// SetBlobKey sets the "blob_key" field.
func (u *AnalysisUpsertBulk) SetBlobKey(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetBlobKey(v)
	})
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateBlobKey() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateBlobKey()
	})
}

// ClearBlobKey clears the value of the "blob_key" field.
func (u *AnalysisUpsertBulk) ClearBlobKey() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearBlobKey()
	})
}

// SetPreserveExif sets the "preserve_exif" field.
func (u *AnalysisUpsertBulk) SetPreserveExif(v bool) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetPreserveExif(v)
	})
}

// UpdatePreserveExif sets the "preserve_exif" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdatePreserveExif() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdatePreserveExif()
	})
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (u *AnalysisUpsertBulk) SetProcessingTimeMs(v int) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetProcessingTimeMs(v)
	})
}

// AddProcessingTimeMs adds v to the "processing_time_ms" field.
func (u *AnalysisUpsertBulk) AddProcessingTimeMs(v int) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddProcessingTimeMs(v)
	})
}

// UpdateProcessingTimeMs sets the "processing_time_ms" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateProcessingTimeMs() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateProcessingTimeMs()
	})
}

// SetResultBlob sets the "result_blob" field.
func (u *AnalysisUpsertBulk) SetResultBlob(v map[string]interface{}) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetResultBlob(v)
	})
}

// UpdateResultBlob sets the "result_blob" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateResultBlob() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateResultBlob()
	})
}

// ClearResultBlob clears the value of the "result_blob" field.
func (u *AnalysisUpsertBulk) ClearResultBlob() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearResultBlob()
	})
}

// Exec executes the query.
func (u *AnalysisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnalysisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
