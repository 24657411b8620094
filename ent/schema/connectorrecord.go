package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConnectorRecord holds the schema definition for a registered SQL connector.
// Credentials are referenced by secret name, never stored inline.
type ConnectorRecord struct {
	ent.Schema
}

// Fields of the ConnectorRecord.
func (ConnectorRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("connector_id").
			Unique().
			Immutable(),
		field.String("organisation_id"),
		field.String("name"),
		field.String("dialect").
			Comment("Target SQL dialect (postgres, tsql, trino, ...)"),
		field.String("dsn_secret").
			Comment("Name of the secret holding the connection string"),
		field.JSON("options", map[string]string{}).
			Optional(),
		field.Bool("enabled").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ConnectorRecord.
func (ConnectorRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organisation_id"),
		index.Fields("organisation_id", "name").
			Unique(),
	}
}
