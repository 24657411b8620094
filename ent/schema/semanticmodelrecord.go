package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SemanticModelRecord holds the schema definition for a stored semantic model.
// The definition column carries the canonical YAML form; it is parsed and
// validated on read.
type SemanticModelRecord struct {
	ent.Schema
}

// Fields of the SemanticModelRecord.
func (SemanticModelRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("model_id").
			Unique().
			Immutable(),
		field.String("organisation_id"),
		field.String("name"),
		field.String("connector_id").
			Comment("Source connector the model's tables resolve against"),
		field.Text("definition").
			Comment("Canonical YAML semantic model"),
		field.JSON("tags", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SemanticModelRecord.
func (SemanticModelRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organisation_id"),
		index.Fields("organisation_id", "name").
			Unique(),
	}
}
