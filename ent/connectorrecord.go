// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quillhq/quill/ent/connectorrecord"
)

// ConnectorRecord is the model entity for the ConnectorRecord schema.
type ConnectorRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrganisationID holds the value of the "organisation_id" field.
	OrganisationID string `json:"organisation_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Target SQL dialect (postgres, tsql, trino, ...)
	Dialect string `json:"dialect,omitempty"`
	// Name of the secret holding the connection string
	DsnSecret string `json:"dsn_secret,omitempty"`
	// Options holds the value of the "options" field.
	Options map[string]string `json:"options,omitempty"`
	// Enabled holds the value of the "enabled" field.
	Enabled bool `json:"enabled,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ConnectorRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case connectorrecord.FieldOptions:
			values[i] = new([]byte)
		case connectorrecord.FieldEnabled:
			values[i] = new(sql.NullBool)
		case connectorrecord.FieldID, connectorrecord.FieldOrganisationID, connectorrecord.FieldName, connectorrecord.FieldDialect, connectorrecord.FieldDsnSecret:
			values[i] = new(sql.NullString)
		case connectorrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ConnectorRecord fields.
func (_m *ConnectorRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case connectorrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case connectorrecord.FieldOrganisationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field organisation_id", values[i])
			} else if value.Valid {
				_m.OrganisationID = value.String
			}
		case connectorrecord.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case connectorrecord.FieldDialect:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dialect", values[i])
			} else if value.Valid {
				_m.Dialect = value.String
			}
		case connectorrecord.FieldDsnSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dsn_secret", values[i])
			} else if value.Valid {
				_m.DsnSecret = value.String
			}
		case connectorrecord.FieldOptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field options", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Options); err != nil {
					return fmt.Errorf("unmarshal field options: %w", err)
				}
			}
		case connectorrecord.FieldEnabled:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field enabled", values[i])
			} else if value.Valid {
				_m.Enabled = value.Bool
			}
		case connectorrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ConnectorRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ConnectorRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ConnectorRecord.
// Note that you need to call ConnectorRecord.Unwrap() before calling this method if this ConnectorRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ConnectorRecord) Update() *ConnectorRecordUpdateOne {
	return NewConnectorRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ConnectorRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ConnectorRecord) Unwrap() *ConnectorRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ConnectorRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ConnectorRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ConnectorRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("organisation_id=")
	builder.WriteString(_m.OrganisationID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("dialect=")
	builder.WriteString(_m.Dialect)
	builder.WriteString(", ")
	builder.WriteString("dsn_secret=")
	builder.WriteString(_m.DsnSecret)
	builder.WriteString(", ")
	builder.WriteString("options=")
	builder.WriteString(fmt.Sprintf("%v", _m.Options))
	builder.WriteString(", ")
	builder.WriteString("enabled=")
	builder.WriteString(fmt.Sprintf("%v", _m.Enabled))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ConnectorRecords is a parsable slice of ConnectorRecord.
type ConnectorRecords []*ConnectorRecord
