package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// JobEvent holds the schema definition for the JobEvent entity.
// Events are append-only and totally ordered per job by event_index.
type JobEvent struct {
	ent.Schema
}

// Fields of the JobEvent.
func (JobEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("job_id").
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.Int("event_index").
			Immutable().
			Comment("Monotonic per (job_id, event_type); duplicate appends are no-ops"),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the JobEvent.
func (JobEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("events").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the JobEvent.
func (JobEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "created_at"),

		// Idempotence key: re-delivered events land on this constraint.
		index.Fields("job_id", "event_type", "event_index").
			Unique(),
	}
}
