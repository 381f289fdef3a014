package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// The primary key is the chat platform's stable 64-bit user id.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("user_id").
			Unique().
			Immutable(),
		field.String("username").
			Optional().
			Nillable(),
		field.String("first_name").
			Optional().
			Nillable(),
		field.Enum("tier").
			Values("free", "pro").
			Default("free"),
		field.Int("daily_checks_remaining").
			Default(3).
			Comment("Free-tier quota; reset when quota_reset_date rolls over"),
		field.Time("quota_reset_date").
			Default(time.Now),
		field.Int("total_checks").
			Default(0),
		field.Time("subscription_expires_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_seen_at").
			Default(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("analyses", Analysis.Type),
		edge.To("daily_usages", DailyUsage.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tier"),
	}
}
