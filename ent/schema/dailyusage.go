package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DailyUsage holds the schema definition for the DailyUsage entity.
// One row per (user, day), bumped on every charged analysis.
type DailyUsage struct {
	ent.Schema
}

// Fields of the DailyUsage.
func (DailyUsage) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("user_id"),
		field.Time("day").
			SchemaType(map[string]string{"postgres": "date"}),
		field.Int("count").
			Default(0),
	}
}

// Edges of the DailyUsage.
func (DailyUsage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("daily_usages").
			Field("user_id").
			Unique().
			Required(),
	}
}

// Indexes of the DailyUsage.
func (DailyUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "day").
			Unique(),
	}
}
