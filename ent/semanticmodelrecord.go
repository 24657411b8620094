// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quillhq/quill/ent/semanticmodelrecord"
)

// SemanticModelRecord is the model entity for the SemanticModelRecord schema.
type SemanticModelRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrganisationID holds the value of the "organisation_id" field.
	OrganisationID string `json:"organisation_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Source connector the model's tables resolve against
	ConnectorID string `json:"connector_id,omitempty"`
	// Canonical YAML semantic model
	Definition string `json:"definition,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SemanticModelRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case semanticmodelrecord.FieldTags:
			values[i] = new([]byte)
		case semanticmodelrecord.FieldID, semanticmodelrecord.FieldOrganisationID, semanticmodelrecord.FieldName, semanticmodelrecord.FieldConnectorID, semanticmodelrecord.FieldDefinition:
			values[i] = new(sql.NullString)
		case semanticmodelrecord.FieldCreatedAt, semanticmodelrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SemanticModelRecord fields.
func (_m *SemanticModelRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case semanticmodelrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case semanticmodelrecord.FieldOrganisationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organisation_id", values[i])
			} else if value.Valid {
				_m.OrganisationID = value.String
			}
		case semanticmodelrecord.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case semanticmodelrecord.FieldConnectorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field connector_id", values[i])
			} else if value.Valid {
				_m.ConnectorID = value.String
			}
		case semanticmodelrecord.FieldDefinition:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field definition", values[i])
			} else if value.Valid {
				_m.Definition = value.String
			}
		case semanticmodelrecord.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case semanticmodelrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case semanticmodelrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SemanticModelRecord.
// This includes values selected through modifiers, order, etc.
func (_m *SemanticModelRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SemanticModelRecord.
// Note that you need to call SemanticModelRecord.Unwrap() before calling this method if this SemanticModelRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SemanticModelRecord) Update() *SemanticModelRecordUpdateOne {
	return NewSemanticModelRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SemanticModelRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SemanticModelRecord) Unwrap() *SemanticModelRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SemanticModelRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SemanticModelRecord) String() string {
	var builder strings.Builder
	builder.WriteString("SemanticModelRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organisation_id=")
	builder.WriteString(_m.OrganisationID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("connector_id=")
	builder.WriteString(_m.ConnectorID)
	builder.WriteString(", ")
	builder.WriteString("definition=")
	builder.WriteString(_m.Definition)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SemanticModelRecords is a parsable slice of SemanticModelRecord.
type SemanticModelRecords []*SemanticModelRecord
