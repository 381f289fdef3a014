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
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
)

// AnalysisJobCreate is the builder for creating a AnalysisJob entity.
type AnalysisJobCreate struct {
	config
	mutation *AnalysisJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetStatus sets the "status" field.
func (_c *AnalysisJobCreate) SetStatus(v analysisjob.Status) *AnalysisJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableStatus(v *analysisjob.Status) *AnalysisJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *AnalysisJobCreate) SetPriority(v analysisjob.Priority) *AnalysisJobCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillablePriority(v *analysisjob.Priority) *AnalysisJobCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AnalysisJobCreate) SetUserID(v int64) *AnalysisJobCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *AnalysisJobCreate) SetChatID(v int64) *AnalysisJobCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetSourceMessageID sets the "source_message_id" field.
func (_c *AnalysisJobCreate) SetSourceMessageID(v int64) *AnalysisJobCreate {
	_c.mutation.SetSourceMessageID(v)
	return _c
}

// SetProgressMessageID sets the "progress_message_id" field.
func (_c *AnalysisJobCreate) SetProgressMessageID(v int64) *AnalysisJobCreate {
	_c.mutation.SetProgressMessageID(v)
	return _c
}

// SetBlobKey sets the "blob_key" field.
func (_c *AnalysisJobCreate) SetBlobKey(v string) *AnalysisJobCreate {
	_c.mutation.SetBlobKey(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *AnalysisJobCreate) SetFileExt(v string) *AnalysisJobCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableFileExt(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetFileExt(*v)
	}
	return _c
}

// SetScenario sets the "scenario" field.
func (_c *AnalysisJobCreate) SetScenario(v string) *AnalysisJobCreate {
	_c.mutation.SetScenario(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *AnalysisJobCreate) SetTier(v analysisjob.Tier) *AnalysisJobCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableTier(v *analysisjob.Tier) *AnalysisJobCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetPreserveExif sets the "preserve_exif" field.
func (_c *AnalysisJobCreate) SetPreserveExif(v bool) *AnalysisJobCreate {
	_c.mutation.SetPreserveExif(v)
	return _c
}

// SetNillablePreserveExif sets the "preserve_exif" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillablePreserveExif(v *bool) *AnalysisJobCreate {
	if v != nil {
		_c.SetPreserveExif(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *AnalysisJobCreate) SetAttempts(v int) *AnalysisJobCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableAttempts(v *int) *AnalysisJobCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *AnalysisJobCreate) SetNextAttemptAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableNextAttemptAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisJobCreate) SetCreatedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCreatedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AnalysisJobCreate) SetStartedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableStartedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *AnalysisJobCreate) SetFinishedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableFinishedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_c *AnalysisJobCreate) SetLastHeartbeatAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetLastHeartbeatAt(v)
	return _c
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableLastHeartbeatAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetLastHeartbeatAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *AnalysisJobCreate) SetPodID(v string) *AnalysisJobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillablePodID(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisJobCreate) SetErrorMessage(v string) *AnalysisJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableErrorMessage(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetAnalysisID sets the "analysis_id" field.
func (_c *AnalysisJobCreate) SetAnalysisID(v string) *AnalysisJobCreate {
	_c.mutation.SetAnalysisID(v)
	return _c
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableAnalysisID(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetAnalysisID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisJobCreate) SetID(v string) *AnalysisJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_c *AnalysisJobCreate) Mutation() *AnalysisJobMutation {
	return _c.mutation
}

// Save creates the AnalysisJob in the database.
func (_c *AnalysisJobCreate) Save(ctx context.Context) (*AnalysisJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisJobCreate) SaveX(ctx context.Context) *AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := analysisjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := analysisjob.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		v := analysisjob.DefaultFileExt
		_c.mutation.SetFileExt(v)
	}
	if _, ok := _c.mutation.Tier(); !ok {
		v := analysisjob.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.PreserveExif(); !ok {
		v := analysisjob.DefaultPreserveExif
		_c.mutation.SetPreserveExif(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := analysisjob.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		v := analysisjob.DefaultNextAttemptAt()
		_c.mutation.SetNextAttemptAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisJobCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "AnalysisJob.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := analysisjob.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AnalysisJob.user_id"`)}
	}
	if _, ok := _c.mutation.ChatID(); !ok {
		return &ValidationError{Name: "chat_id", err: errors.New(`ent: missing required field "AnalysisJob.chat_id"`)}
	}
	if _, ok := _c.mutation.SourceMessageID(); !ok {
		return &ValidationError{Name: "source_message_id", err: errors.New(`ent: missing required field "AnalysisJob.source_message_id"`)}
	}
	if _, ok := _c.mutation.ProgressMessageID(); !ok {
		return &ValidationError{Name: "progress_message_id", err: errors.New(`ent: missing required field "AnalysisJob.progress_message_id"`)}
	}
	if _, ok := _c.mutation.BlobKey(); !ok {
		return &ValidationError{Name: "blob_key", err: errors.New(`ent: missing required field "AnalysisJob.blob_key"`)}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "AnalysisJob.file_ext"`)}
	}
	if _, ok := _c.mutation.Scenario(); !ok {
		return &ValidationError{Name: "scenario", err: errors.New(`ent: missing required field "AnalysisJob.scenario"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "AnalysisJob.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := analysisjob.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PreserveExif(); !ok {
		return &ValidationError{Name: "preserve_exif", err: errors.New(`ent: missing required field "AnalysisJob.preserve_exif"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "AnalysisJob.attempts"`)}
	}
	if _, ok := _c.mutation.NextAttemptAt(); !ok {
		return &ValidationError{Name: "next_attempt_at", err: errors.New(`ent: missing required field "AnalysisJob.next_attempt_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisJob.created_at"`)}
	}
	return nil
}

func (_c *AnalysisJobCreate) sqlSave(ctx context.Context) (*AnalysisJob, error) {
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
			return nil, fmt.Errorf("unexpected AnalysisJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisJobCreate) createSpec() (*AnalysisJob, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisjob.Table, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(analysisjob.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(analysisjob.FieldUserID, field.TypeInt64, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(analysisjob.FieldChatID, field.TypeInt64, value)
		_node.ChatID = value
	}
	if value, ok := _c.mutation.SourceMessageID(); ok {
		_spec.SetField(analysisjob.FieldSourceMessageID, field.TypeInt64, value)
		_node.SourceMessageID = value
	}
	if value, ok := _c.mutation.ProgressMessageID(); ok {
		_spec.SetField(analysisjob.FieldProgressMessageID, field.TypeInt64, value)
		_node.ProgressMessageID = value
	}
	if value, ok := _c.mutation.BlobKey(); ok {
		_spec.SetField(analysisjob.FieldBlobKey, field.TypeString, value)
		_node.BlobKey = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(analysisjob.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.Scenario(); ok {
		_spec.SetField(analysisjob.FieldScenario, field.TypeString, value)
		_node.Scenario = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(analysisjob.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.PreserveExif(); ok {
		_spec.SetField(analysisjob.FieldPreserveExif, field.TypeBool, value)
		_node.PreserveExif = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(analysisjob.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(analysisjob.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(analysisjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(analysisjob.FieldLastHeartbeatAt, field.TypeTime, value)
		_node.LastHeartbeatAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(analysisjob.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.AnalysisID(); ok {
		_spec.SetField(analysisjob.FieldAnalysisID, field.TypeString, value)
		_node.AnalysisID = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnalysisJob.Create().
//		SetStatus(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisJobUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisJobCreate) OnConflict(opts ...sql.ConflictOption) *AnalysisJobUpsertOne {
	_c.conflict = opts
	return &AnalysisJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnalysisJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisJobCreate) OnConflictColumns(columns ...string) *AnalysisJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisJobUpsertOne{
		create: _c,
	}
}

type (
	// AnalysisJobUpsertOne is the builder for "upsert"-ing
	//  one AnalysisJob node.
	AnalysisJobUpsertOne struct {
		create *AnalysisJobCreate
	}

	// AnalysisJobUpsert is the "OnConflict" setter.
	AnalysisJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *AnalysisJobUpsert) SetStatus(v analysisjob.Status) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateStatus() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *AnalysisJobUpsert) SetPriority(v analysisjob.Priority) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdatePriority() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldPriority)
	return u
}

// SetUserID sets the "user_id" field.
func (u *AnalysisJobUpsert) SetUserID(v int64) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateUserID() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldUserID)
	return u
}

// AddUserID adds v to the "user_id" field.
func (u *AnalysisJobUpsert) AddUserID(v int64) *AnalysisJobUpsert {
	u.Add(analysisjob.FieldUserID, v)
	return u
}

// SetChatID sets the "chat_id" field.
func (u *AnalysisJobUpsert) SetChatID(v int64) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldChatID, v)
	return u
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateChatID() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldChatID)
	return u
}

// AddChatID adds v to the "chat_id" field.
func (u *AnalysisJobUpsert) AddChatID(v int64) *AnalysisJobUpsert {
	u.Add(analysisjob.FieldChatID, v)
	return u
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *AnalysisJobUpsert) SetSourceMessageID(v int64) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldSourceMessageID, v)
	return u
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateSourceMessageID() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldSourceMessageID)
	return u
}

// AddSourceMessageID adds v to the "source_message_id" field.
func (u *AnalysisJobUpsert) AddSourceMessageID(v int64) *AnalysisJobUpsert {
	u.Add(analysisjob.FieldSourceMessageID, v)
	return u
}

// SetProgressMessageID sets the "progress_message_id" field.
func (u *AnalysisJobUpsert) SetProgressMessageID(v int64) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldProgressMessageID, v)
	return u
}

// UpdateProgressMessageID sets the "progress_message_id" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateProgressMessageID() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldProgressMessageID)
	return u
}

// AddProgressMessageID adds v to the "progress_message_id" field.
func (u *AnalysisJobUpsert) AddProgressMessageID(v int64) *AnalysisJobUpsert {
	u.Add(analysisjob.FieldProgressMessageID, v)
	return u
}

// SetBlobKey sets the "blob_key" field.
func (u *AnalysisJobUpsert) SetBlobKey(v string) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldBlobKey, v)
	return u
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateBlobKey() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldBlobKey)
	return u
}

// SetFileExt sets the "file_ext" field.
func (u *AnalysisJobUpsert) SetFileExt(v string) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldFileExt, v)
	return u
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateFileExt() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldFileExt)
	return u
}

// SetScenario sets the "scenario" field.
func (u *AnalysisJobUpsert) SetScenario(v string) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldScenario, v)
	return u
}

// UpdateScenario sets the "scenario" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateScenario() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldScenario)
	return u
}

// SetTier sets the "tier" field.
func (u *AnalysisJobUpsert) SetTier(v analysisjob.Tier) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldTier, v)
	return u
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateTier() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldTier)
	return u
}

// SetPreserveExif sets the "preserve_exif" field.
func (u *AnalysisJobUpsert) SetPreserveExif(v bool) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldPreserveExif, v)
	return u
}

// UpdatePreserveExif sets the "preserve_exif" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdatePreserveExif() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldPreserveExif)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *AnalysisJobUpsert) SetAttempts(v int) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateAttempts() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *AnalysisJobUpsert) AddAttempts(v int) *AnalysisJobUpsert {
	u.Add(analysisjob.FieldAttempts, v)
	return u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *AnalysisJobUpsert) SetNextAttemptAt(v time.Time) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldNextAttemptAt, v)
	return u
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateNextAttemptAt() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldNextAttemptAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *AnalysisJobUpsert) SetStartedAt(v time.Time) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateStartedAt() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AnalysisJobUpsert) ClearStartedAt() *AnalysisJobUpsert {
	u.SetNull(analysisjob.FieldStartedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *AnalysisJobUpsert) SetFinishedAt(v time.Time) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateFinishedAt() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *AnalysisJobUpsert) ClearFinishedAt() *AnalysisJobUpsert {
	u.SetNull(analysisjob.FieldFinishedAt)
	return u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *AnalysisJobUpsert) SetLastHeartbeatAt(v time.Time) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldLastHeartbeatAt, v)
	return u
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateLastHeartbeatAt() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldLastHeartbeatAt)
	return u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *AnalysisJobUpsert) ClearLastHeartbeatAt() *AnalysisJobUpsert {
	u.SetNull(analysisjob.FieldLastHeartbeatAt)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *AnalysisJobUpsert) SetPodID(v string) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdatePodID() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *AnalysisJobUpsert) ClearPodID() *AnalysisJobUpsert {
	u.SetNull(analysisjob.FieldPodID)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *AnalysisJobUpsert) SetErrorMessage(v string) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateErrorMessage() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AnalysisJobUpsert) ClearErrorMessage() *AnalysisJobUpsert {
	u.SetNull(analysisjob.FieldErrorMessage)
	return u
}

// SetAnalysisID sets the "analysis_id" field.
func (u *AnalysisJobUpsert) SetAnalysisID(v string) *AnalysisJobUpsert {
	u.Set(analysisjob.FieldAnalysisID, v)
	return u
}

// UpdateAnalysisID sets the "analysis_id" field to the value that was provided on create.
func (u *AnalysisJobUpsert) UpdateAnalysisID() *AnalysisJobUpsert {
	u.SetExcluded(analysisjob.FieldAnalysisID)
	return u
}

// ClearAnalysisID clears the value of the "analysis_id" field.
func (u *AnalysisJobUpsert) ClearAnalysisID() *AnalysisJobUpsert {
	u.SetNull(analysisjob.FieldAnalysisID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AnalysisJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysisjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisJobUpsertOne) UpdateNewValues() *AnalysisJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(analysisjob.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(analysisjob.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnalysisJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnalysisJobUpsertOne) Ignore() *AnalysisJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisJobUpsertOne) DoNothing() *AnalysisJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisJobCreate.OnConflict
// documentation for more info.
func (u *AnalysisJobUpsertOne) Update(set func(*AnalysisJobUpsert)) *AnalysisJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *AnalysisJobUpsertOne) SetStatus(v analysisjob.Status) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateStatus() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *AnalysisJobUpsertOne) SetPriority(v analysisjob.Priority) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdatePriority() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdatePriority()
	})
}

// SetUserID sets the "user_id" field.
func (u *AnalysisJobUpsertOne) SetUserID(v int64) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *AnalysisJobUpsertOne) AddUserID(v int64) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateUserID() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateUserID()
	})
}

// SetChatID sets the "chat_id" field.
func (u *AnalysisJobUpsertOne) SetChatID(v int64) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetChatID(v)
	})
}

// AddChatID adds v to the "chat_id" field.
func (u *AnalysisJobUpsertOne) AddChatID(v int64) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.AddChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateChatID() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateChatID()
	})
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *AnalysisJobUpsertOne) SetSourceMessageID(v int64) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetSourceMessageID(v)
	})
}

// AddSourceMessageID adds v to the "source_message_id" field.
func (u *AnalysisJobUpsertOne) AddSourceMessageID(v int64) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.AddSourceMessageID(v)
	})
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateSourceMessageID() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateSourceMessageID()
	})
}

// SetProgressMessageID sets the "progress_message_id" field.
func (u *AnalysisJobUpsertOne) SetProgressMessageID(v int64) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetProgressMessageID(v)
	})
}

// AddProgressMessageID adds v to the "progress_message_id" field.
func (u *AnalysisJobUpsertOne) AddProgressMessageID(v int64) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.AddProgressMessageID(v)
	})
}

// UpdateProgressMessageID sets the "progress_message_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateProgressMessageID() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateProgressMessageID()
	})
}

// SetBlobKey sets the "blob_key" field.
func (u *AnalysisJobUpsertOne) SetBlobKey(v string) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetBlobKey(v)
	})
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateBlobKey() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateBlobKey()
	})
}

// SetFileExt sets the "file_ext" field.
func (u *AnalysisJobUpsertOne) SetFileExt(v string) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetFileExt(v)
	})
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateFileExt() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateFileExt()
	})
}

// SetScenario sets the "scenario" field.
func (u *AnalysisJobUpsertOne) SetScenario(v string) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetScenario(v)
	})
}

// UpdateScenario sets the "scenario" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateScenario() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateScenario()
	})
}

// SetTier sets the "tier" field.
func (u *AnalysisJobUpsertOne) SetTier(v analysisjob.Tier) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateTier() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateTier()
	})
}

// SetPreserveExif sets the "preserve_exif" field.
func (u *AnalysisJobUpsertOne) SetPreserveExif(v bool) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetPreserveExif(v)
	})
}

// UpdatePreserveExif sets the "preserve_exif" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdatePreserveExif() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdatePreserveExif()
	})
}

// SetAttempts sets the "attempts" field.
func (u *AnalysisJobUpsertOne) SetAttempts(v int) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *AnalysisJobUpsertOne) AddAttempts(v int) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateAttempts() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *AnalysisJobUpsertOne) SetNextAttemptAt(v time.Time) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateNextAttemptAt() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AnalysisJobUpsertOne) SetStartedAt(v time.Time) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateStartedAt() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AnalysisJobUpsertOne) ClearStartedAt() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *AnalysisJobUpsertOne) SetFinishedAt(v time.Time) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateFinishedAt() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *AnalysisJobUpsertOne) ClearFinishedAt() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *AnalysisJobUpsertOne) SetLastHeartbeatAt(v time.Time) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateLastHeartbeatAt() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *AnalysisJobUpsertOne) ClearLastHeartbeatAt() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *AnalysisJobUpsertOne) SetPodID(v string) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdatePodID() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *AnalysisJobUpsertOne) ClearPodID() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearPodID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AnalysisJobUpsertOne) SetErrorMessage(v string) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateErrorMessage() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AnalysisJobUpsertOne) ClearErrorMessage() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetAnalysisID sets the "analysis_id" field.
func (u *AnalysisJobUpsertOne) SetAnalysisID(v string) *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetAnalysisID(v)
	})
}

// UpdateAnalysisID sets the "analysis_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertOne) UpdateAnalysisID() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateAnalysisID()
	})
}

// ClearAnalysisID clears the value of the "analysis_id" field.
func (u *AnalysisJobUpsertOne) ClearAnalysisID() *AnalysisJobUpsertOne {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearAnalysisID()
	})
}

// Exec executes the query.
func (u *AnalysisJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnalysisJobUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AnalysisJobUpsertOne.ID is not supported by MySQL driver. Use AnalysisJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnalysisJobUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnalysisJobCreateBulk is the builder for creating many AnalysisJob entities in bulk.
type AnalysisJobCreateBulk struct {
	config
	err      error
	builders []*AnalysisJobCreate
	conflict []sql.ConflictOption
}

// Save creates the AnalysisJob entities in the database.
func (_c *AnalysisJobCreateBulk) Save(ctx context.Context) ([]*AnalysisJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisJobMutation)
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
func (_c *AnalysisJobCreateBulk) SaveX(ctx context.Context) []*AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AnalysisJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisJobUpsert) {
//			SetStatus(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnalysisJobUpsertBulk {
	_c.conflict = opts
	return &AnalysisJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AnalysisJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisJobCreateBulk) OnConflictColumns(columns ...string) *AnalysisJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisJobUpsertBulk{
		create: _c,
	}
}

// AnalysisJobUpsertBulk is the builder for "upsert"-ing
// a bulk of AnalysisJob nodes.
type AnalysisJobUpsertBulk struct {
	create *AnalysisJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AnalysisJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysisjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisJobUpsertBulk) UpdateNewValues() *AnalysisJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(analysisjob.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(analysisjob.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AnalysisJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnalysisJobUpsertBulk) Ignore() *AnalysisJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisJobUpsertBulk) DoNothing() *AnalysisJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisJobCreateBulk.OnConflict
// documentation for more info.
func (u *AnalysisJobUpsertBulk) Update(set func(*AnalysisJobUpsert)) *AnalysisJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *AnalysisJobUpsertBulk) SetStatus(v analysisjob.Status) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateStatus() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *AnalysisJobUpsertBulk) SetPriority(v analysisjob.Priority) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdatePriority() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdatePriority()
	})
}

// SetUserID sets the "user_id" field.
func (u *AnalysisJobUpsertBulk) SetUserID(v int64) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetUserID(v)
	})
}

// AddUserID adds v to the "user_id" field.
func (u *AnalysisJobUpsertBulk) AddUserID(v int64) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.AddUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateUserID() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateUserID()
	})
}

// SetChatID sets the "chat_id" field.
func (u *AnalysisJobUpsertBulk) SetChatID(v int64) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetChatID(v)
	})
}

// AddChatID adds v to the "chat_id" field.
func (u *AnalysisJobUpsertBulk) AddChatID(v int64) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.AddChatID(v)
	})
}

// UpdateChatID sets the "chat_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateChatID() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateChatID()
	})
}

// SetSourceMessageID sets the "source_message_id" field.
func (u *AnalysisJobUpsertBulk) SetSourceMessageID(v int64) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetSourceMessageID(v)
	})
}

// AddSourceMessageID adds v to the "source_message_id" field.
func (u *AnalysisJobUpsertBulk) AddSourceMessageID(v int64) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.AddSourceMessageID(v)
	})
}

// UpdateSourceMessageID sets the "source_message_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateSourceMessageID() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateSourceMessageID()
	})
}

// SetProgressMessageID sets the "progress_message_id" field.
func (u *AnalysisJobUpsertBulk) SetProgressMessageID(v int64) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetProgressMessageID(v)
	})
}

// AddProgressMessageID adds v to the "progress_message_id" field.
func (u *AnalysisJobUpsertBulk) AddProgressMessageID(v int64) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.AddProgressMessageID(v)
	})
}

// UpdateProgressMessageID sets the "progress_message_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateProgressMessageID() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateProgressMessageID()
	})
}

// SetBlobKey sets the "blob_key" field.
func (u *AnalysisJobUpsertBulk) SetBlobKey(v string) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetBlobKey(v)
	})
}

// UpdateBlobKey sets the "blob_key" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateBlobKey() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateBlobKey()
	})
}

// SetFileExt sets the "file_ext" field.
func (u *AnalysisJobUpsertBulk) SetFileExt(v string) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetFileExt(v)
	})
}

// UpdateFileExt sets the "file_ext" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateFileExt() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateFileExt()
	})
}

// SetScenario sets the "scenario" field.
func (u *AnalysisJobUpsertBulk) SetScenario(v string) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetScenario(v)
	})
}

// UpdateScenario sets the "scenario" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateScenario() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateScenario()
	})
}

// SetTier sets the "tier" field.
func (u *AnalysisJobUpsertBulk) SetTier(v analysisjob.Tier) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetTier(v)
	})
}

// UpdateTier sets the "tier" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateTier() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateTier()
	})
}

// SetPreserveExif sets the "preserve_exif" field.
func (u *AnalysisJobUpsertBulk) SetPreserveExif(v bool) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetPreserveExif(v)
	})
}

// UpdatePreserveExif sets the "preserve_exif" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdatePreserveExif() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdatePreserveExif()
	})
}

// SetAttempts sets the "attempts" field.
func (u *AnalysisJobUpsertBulk) SetAttempts(v int) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *AnalysisJobUpsertBulk) AddAttempts(v int) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateAttempts() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateAttempts()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *AnalysisJobUpsertBulk) SetNextAttemptAt(v time.Time) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateNextAttemptAt() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *AnalysisJobUpsertBulk) SetStartedAt(v time.Time) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateStartedAt() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *AnalysisJobUpsertBulk) ClearStartedAt() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearStartedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *AnalysisJobUpsertBulk) SetFinishedAt(v time.Time) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateFinishedAt() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *AnalysisJobUpsertBulk) ClearFinishedAt() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearFinishedAt()
	})
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (u *AnalysisJobUpsertBulk) SetLastHeartbeatAt(v time.Time) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetLastHeartbeatAt(v)
	})
}

// UpdateLastHeartbeatAt sets the "last_heartbeat_at" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateLastHeartbeatAt() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateLastHeartbeatAt()
	})
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (u *AnalysisJobUpsertBulk) ClearLastHeartbeatAt() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearLastHeartbeatAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *AnalysisJobUpsertBulk) SetPodID(v string) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdatePodID() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *AnalysisJobUpsertBulk) ClearPodID() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearPodID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *AnalysisJobUpsertBulk) SetErrorMessage(v string) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateErrorMessage() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *AnalysisJobUpsertBulk) ClearErrorMessage() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetAnalysisID sets the "analysis_id" field.
func (u *AnalysisJobUpsertBulk) SetAnalysisID(v string) *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.SetAnalysisID(v)
	})
}

// UpdateAnalysisID sets the "analysis_id" field to the value that was provided on create.
func (u *AnalysisJobUpsertBulk) UpdateAnalysisID() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.UpdateAnalysisID()
	})
}

// ClearAnalysisID clears the value of the "analysis_id" field.
func (u *AnalysisJobUpsertBulk) ClearAnalysisID() *AnalysisJobUpsertBulk {
	return u.Update(func(s *AnalysisJobUpsert) {
		s.ClearAnalysisID()
	})
}

// Exec executes the query.
func (u *AnalysisJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnalysisJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
