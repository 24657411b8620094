package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("organisation_id").
			Comment("Tenant scope for the job"),
		field.String("job_type").
			Comment("Message type the payload contract is registered under"),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Typed request payload, parsed by the handler contract"),
		field.JSON("headers", map[string]string{}).
			Optional(),
		field.Enum("status").
			Values("queued", "running", "succeeded", "failed", "cancelled").
			Default("queued"),
		field.Int("priority").
			Default(0).
			Comment("Higher values claim first"),
		field.Int("attempt").
			Default(0),
		field.Int("max_attempts").
			Default(3),
		field.String("lock_owner").
			Optional().
			Nillable().
			Comment("Worker id holding the lease; null when unclaimed"),
		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Lease expiry; an expired lease makes a running job reclaimable"),
		field.Int("progress").
			Default(0).
			Comment("0..100"),
		field.String("status_message").
			Optional().
			Nillable(),
		field.JSON("result", map[string]interface{}{}).
			Optional(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("scheduled_for").
			Optional().
			Nillable().
			Comment("Retry backoff: the job is not claimable before this time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", JobEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organisation_id"),
		index.Fields("job_type"),

		// Runnable scan: claim queries filter on status and lease expiry and
		// order by priority then age. The DESC on priority is applied by a
		// migration hook in pkg/database/migrations.go.
		index.Fields("status", "locked_until", "priority", "created_at"),
	}
}
