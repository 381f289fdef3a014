package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Analysis holds the schema definition for the Analysis entity.
// One row per completed verification; the durable history a user can
// reference long after the uploaded image itself has expired.
type Analysis struct {
	ent.Schema
}

// Fields of the Analysis.
func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable().
			Comment("User-visible id, ANL-YYYYMMDD-<hex8>"),
		field.Int64("user_id"),
		field.Enum("scenario").
			Values("adult_blackmail", "teenager_sos", "general").
			Default("general"),
		field.Enum("verdict").
			Values("real", "ai_generated", "manipulated", "inconclusive"),
		field.Float("confidence"),
		field.String("verdict_reason").
			Optional(),
		field.String("image_sha256").
			Comment("Canonical cryptographic identifier used in forensic messages"),
		field.String("phash").
			Optional().
			Comment("Perceptual hash computed at upload time"),
		field.String("blob_key").
			Optional().
			Comment("May dangle after the bucket's 24h TTL"),
		field.Bool("preserve_exif").
			Default(false),
		field.Int("processing_time_ms").
			Default(0),
		field.JSON("result_blob", map[string]interface{}{}).
			Optional().
			Comment("Opaque detector response, kept verbatim for PDF rendering"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Analysis.
func (Analysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("analyses").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the Analysis.
func (Analysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("image_sha256"),
		index.Fields("scenario"),
	}
}
