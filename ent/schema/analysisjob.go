package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisJob holds the schema definition for the AnalysisJob entity.
// Durable work item for the analysis pipeline. Claimed by workers with
// FOR UPDATE SKIP LOCKED; retried jobs go back to pending with a
// next_attempt_at in the future.
type AnalysisJob struct {
	ent.Schema
}

// Fields of the AnalysisJob.
func (AnalysisJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("pending", "in_progress", "succeeded", "failed", "dead").
			Default("pending"),
		field.Enum("priority").
			Values("high", "default", "low").
			Default("default"),
		field.Int64("user_id"),
		field.Int64("chat_id"),
		field.Int64("source_message_id"),
		field.Int64("progress_message_id"),
		field.String("blob_key"),
		field.String("file_ext").
			Default("jpg"),
		field.String("scenario").
			Comment("Validated against the closed enum at execution; unknown values dead-letter"),
		field.Enum("tier").
			Values("free", "pro").
			Default("free"),
		field.Bool("preserve_exif").
			Default(false),
		field.Int("attempts").
			Default(0),
		field.Time("next_attempt_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("analysis_id").
			Optional().
			Nillable().
			Comment("Set once the analysis record is persisted"),
	}
}

// Indexes of the AnalysisJob.
func (AnalysisJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "priority", "next_attempt_at"),
		index.Fields("status", "finished_at"),
		index.Fields("user_id"),
	}
}
