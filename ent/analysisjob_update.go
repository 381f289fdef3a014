// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sevrusik/turthsnapbot/ent/analysisjob"
	"github.com/sevrusik/turthsnapbot/ent/predicate"
)

// AnalysisJobUpdate is the builder for updating AnalysisJob entities.
type AnalysisJobUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdate) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdate) SetStatus(v analysisjob.Status) *AnalysisJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableStatus(v *analysisjob.Status) *AnalysisJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AnalysisJobUpdate) SetPriority(v analysisjob.Priority) *AnalysisJobUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillablePriority(v *analysisjob.Priority) *AnalysisJobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnalysisJobUpdate) SetUserID(v int64) *AnalysisJobUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableUserID(v *int64) *AnalysisJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *AnalysisJobUpdate) AddUserID(v int64) *AnalysisJobUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *AnalysisJobUpdate) SetChatID(v int64) *AnalysisJobUpdate {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableChatID(v *int64) *AnalysisJobUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *AnalysisJobUpdate) AddChatID(v int64) *AnalysisJobUpdate {
	_u.mutation.AddChatID(v)
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *AnalysisJobUpdate) SetSourceMessageID(v int64) *AnalysisJobUpdate {
	_u.mutation.ResetSourceMessageID()
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableSourceMessageID(v *int64) *AnalysisJobUpdate {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// AddSourceMessageID adds value to the "source_message_id" field.
func (_u *AnalysisJobUpdate) AddSourceMessageID(v int64) *AnalysisJobUpdate {
	_u.mutation.AddSourceMessageID(v)
	return _u
}

// SetProgressMessageID sets the "progress_message_id" field.
func (_u *AnalysisJobUpdate) SetProgressMessageID(v int64) *AnalysisJobUpdate {
	_u.mutation.ResetProgressMessageID()
	_u.mutation.SetProgressMessageID(v)
	return _u
}

// SetNillableProgressMessageID sets the "progress_message_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableProgressMessageID(v *int64) *AnalysisJobUpdate {
	if v != nil {
		_u.SetProgressMessageID(*v)
	}
	return _u
}

// AddProgressMessageID adds value to the "progress_message_id" field.
func (_u *AnalysisJobUpdate) AddProgressMessageID(v int64) *AnalysisJobUpdate {
	_u.mutation.AddProgressMessageID(v)
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *AnalysisJobUpdate) SetBlobKey(v string) *AnalysisJobUpdate {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableBlobKey(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *AnalysisJobUpdate) SetFileExt(v string) *AnalysisJobUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableFileExt(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetScenario sets the "scenario" field.
func (_u *AnalysisJobUpdate) SetScenario(v string) *AnalysisJobUpdate {
	_u.mutation.SetScenario(v)
	return _u
}

// SetNillableScenario sets the "scenario" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableScenario(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetScenario(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AnalysisJobUpdate) SetTier(v analysisjob.Tier) *AnalysisJobUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableTier(v *analysisjob.Tier) *AnalysisJobUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetPreserveExif sets the "preserve_exif" field.
func (_u *AnalysisJobUpdate) SetPreserveExif(v bool) *AnalysisJobUpdate {
	_u.mutation.SetPreserveExif(v)
	return _u
}

// SetNillablePreserveExif sets the "preserve_exif" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillablePreserveExif(v *bool) *AnalysisJobUpdate {
	if v != nil {
		_u.SetPreserveExif(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AnalysisJobUpdate) SetAttempts(v int) *AnalysisJobUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableAttempts(v *int) *AnalysisJobUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AnalysisJobUpdate) AddAttempts(v int) *AnalysisJobUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *AnalysisJobUpdate) SetNextAttemptAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableNextAttemptAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisJobUpdate) SetStartedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableStartedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisJobUpdate) ClearStartedAt() *AnalysisJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AnalysisJobUpdate) SetFinishedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableFinishedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AnalysisJobUpdate) ClearFinishedAt() *AnalysisJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AnalysisJobUpdate) SetLastHeartbeatAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableLastHeartbeatAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AnalysisJobUpdate) ClearLastHeartbeatAt() *AnalysisJobUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AnalysisJobUpdate) SetPodID(v string) *AnalysisJobUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillablePodID(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AnalysisJobUpdate) ClearPodID() *AnalysisJobUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdate) SetErrorMessage(v string) *AnalysisJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableErrorMessage(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdate) ClearErrorMessage() *AnalysisJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *AnalysisJobUpdate) SetAnalysisID(v string) *AnalysisJobUpdate {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableAnalysisID(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// ClearAnalysisID clears the value of the "analysis_id" field.
func (_u *AnalysisJobUpdate) ClearAnalysisID() *AnalysisJobUpdate {
	_u.mutation.ClearAnalysisID()
	return _u
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdate) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := analysisjob.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := analysisjob.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(analysisjob.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(analysisjob.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(analysisjob.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(analysisjob.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(analysisjob.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(analysisjob.FieldSourceMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSourceMessageID(); ok {
		_spec.AddField(analysisjob.FieldSourceMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProgressMessageID(); ok {
		_spec.SetField(analysisjob.FieldProgressMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProgressMessageID(); ok {
		_spec.AddField(analysisjob.FieldProgressMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(analysisjob.FieldBlobKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(analysisjob.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scenario(); ok {
		_spec.SetField(analysisjob.FieldScenario, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(analysisjob.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PreserveExif(); ok {
		_spec.SetField(analysisjob.FieldPreserveExif, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(analysisjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(analysisjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(analysisjob.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysisjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(analysisjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(analysisjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(analysisjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(analysisjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(analysisjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(analysisjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisID(); ok {
		_spec.SetField(analysisjob.FieldAnalysisID, field.TypeString, value)
	}
	if _u.mutation.AnalysisIDCleared() {
		_spec.ClearField(analysisjob.FieldAnalysisID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisJobUpdateOne is the builder for updating a single AnalysisJob entity.
type AnalysisJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdateOne) SetStatus(v analysisjob.Status) *AnalysisJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableStatus(v *analysisjob.Status) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *AnalysisJobUpdateOne) SetPriority(v analysisjob.Priority) *AnalysisJobUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillablePriority(v *analysisjob.Priority) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AnalysisJobUpdateOne) SetUserID(v int64) *AnalysisJobUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableUserID(v *int64) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *AnalysisJobUpdateOne) AddUserID(v int64) *AnalysisJobUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *AnalysisJobUpdateOne) SetChatID(v int64) *AnalysisJobUpdateOne {
	_u.mutation.ResetChatID()
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableChatID(v *int64) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// AddChatID adds value to the "chat_id" field.
func (_u *AnalysisJobUpdateOne) AddChatID(v int64) *AnalysisJobUpdateOne {
	_u.mutation.AddChatID(v)
	return _u
}

// SetSourceMessageID sets the "source_message_id" field.
func (_u *AnalysisJobUpdateOne) SetSourceMessageID(v int64) *AnalysisJobUpdateOne {
	_u.mutation.ResetSourceMessageID()
	_u.mutation.SetSourceMessageID(v)
	return _u
}

// SetNillableSourceMessageID sets the "source_message_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableSourceMessageID(v *int64) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetSourceMessageID(*v)
	}
	return _u
}

// AddSourceMessageID adds value to the "source_message_id" field.
func (_u *AnalysisJobUpdateOne) AddSourceMessageID(v int64) *AnalysisJobUpdateOne {
	_u.mutation.AddSourceMessageID(v)
	return _u
}

// SetProgressMessageID sets the "progress_message_id" field.
func (_u *AnalysisJobUpdateOne) SetProgressMessageID(v int64) *AnalysisJobUpdateOne {
	_u.mutation.ResetProgressMessageID()
	_u.mutation.SetProgressMessageID(v)
	return _u
}

// SetNillableProgressMessageID sets the "progress_message_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableProgressMessageID(v *int64) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetProgressMessageID(*v)
	}
	return _u
}

// AddProgressMessageID adds value to the "progress_message_id" field.
func (_u *AnalysisJobUpdateOne) AddProgressMessageID(v int64) *AnalysisJobUpdateOne {
	_u.mutation.AddProgressMessageID(v)
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *AnalysisJobUpdateOne) SetBlobKey(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableBlobKey(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *AnalysisJobUpdateOne) SetFileExt(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableFileExt(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetScenario sets the "scenario" field.
func (_u *AnalysisJobUpdateOne) SetScenario(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetScenario(v)
	return _u
}

// SetNillableScenario sets the "scenario" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableScenario(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetScenario(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AnalysisJobUpdateOne) SetTier(v analysisjob.Tier) *AnalysisJobUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableTier(v *analysisjob.Tier) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetPreserveExif sets the "preserve_exif" field.
func (_u *AnalysisJobUpdateOne) SetPreserveExif(v bool) *AnalysisJobUpdateOne {
	_u.mutation.SetPreserveExif(v)
	return _u
}

// SetNillablePreserveExif sets the "preserve_exif" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillablePreserveExif(v *bool) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetPreserveExif(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *AnalysisJobUpdateOne) SetAttempts(v int) *AnalysisJobUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableAttempts(v *int) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *AnalysisJobUpdateOne) AddAttempts(v int) *AnalysisJobUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *AnalysisJobUpdateOne) SetNextAttemptAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableNextAttemptAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisJobUpdateOne) SetStartedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableStartedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisJobUpdateOne) ClearStartedAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *AnalysisJobUpdateOne) SetFinishedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableFinishedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *AnalysisJobUpdateOne) ClearFinishedAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *AnalysisJobUpdateOne) SetLastHeartbeatAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *AnalysisJobUpdateOne) ClearLastHeartbeatAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AnalysisJobUpdateOne) SetPodID(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillablePodID(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AnalysisJobUpdateOne) ClearPodID() *AnalysisJobUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdateOne) SetErrorMessage(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableErrorMessage(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdateOne) ClearErrorMessage() *AnalysisJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetAnalysisID sets the "analysis_id" field.
func (_u *AnalysisJobUpdateOne) SetAnalysisID(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetAnalysisID(v)
	return _u
}

// SetNillableAnalysisID sets the "analysis_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableAnalysisID(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetAnalysisID(*v)
	}
	return _u
}

// ClearAnalysisID clears the value of the "analysis_id" field.
func (_u *AnalysisJobUpdateOne) ClearAnalysisID() *AnalysisJobUpdateOne {
	_u.mutation.ClearAnalysisID()
	return _u
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdateOne) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdateOne) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisJobUpdateOne) Select(field string, fields ...string) *AnalysisJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisJob entity.
func (_u *AnalysisJobUpdateOne) Save(ctx context.Context) (*AnalysisJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) SaveX(ctx context.Context) *AnalysisJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := analysisjob.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := analysisjob.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.tier": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisJobUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisjob.FieldID)
		for _, f := range fields {
			if !analysisjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(analysisjob.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(analysisjob.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(analysisjob.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(analysisjob.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedChatID(); ok {
		_spec.AddField(analysisjob.FieldChatID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.SourceMessageID(); ok {
		_spec.SetField(analysisjob.FieldSourceMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSourceMessageID(); ok {
		_spec.AddField(analysisjob.FieldSourceMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ProgressMessageID(); ok {
		_spec.SetField(analysisjob.FieldProgressMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProgressMessageID(); ok {
		_spec.AddField(analysisjob.FieldProgressMessageID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(analysisjob.FieldBlobKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(analysisjob.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scenario(); ok {
		_spec.SetField(analysisjob.FieldScenario, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(analysisjob.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PreserveExif(); ok {
		_spec.SetField(analysisjob.FieldPreserveExif, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(analysisjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(analysisjob.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(analysisjob.FieldNextAttemptAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysisjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(analysisjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(analysisjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(analysisjob.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(analysisjob.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(analysisjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(analysisjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisID(); ok {
		_spec.SetField(analysisjob.FieldAnalysisID, field.TypeString, value)
	}
	if _u.mutation.AnalysisIDCleared() {
		_spec.ClearField(analysisjob.FieldAnalysisID, field.TypeString)
	}
	_node = &AnalysisJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
