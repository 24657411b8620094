// Code generated by ent, DO NOT EDIT.

package connectorrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the connectorrecord type in the database.
	Label = "connector_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "connector_id"
	// FieldOrganisationID holds the string denoting the organisation_id field in the database.
	FieldOrganisationID = "organisation_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDialect holds the string denoting the dialect field in the database.
	FieldDialect = "dialect"
	// FieldDsnSecret holds the string denoting the dsn_secret field in the database.
	FieldDsnSecret = "dsn_secret"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldEnabled holds the string denoting the enabled field in the database.
	FieldEnabled = "enabled"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the connectorrecord in the database.
	Table = "connector_records"
)

// Columns holds all SQL columns for connectorrecord fields.
var Columns = []string{
	FieldID,
	FieldOrganisationID,
	FieldName,
	FieldDialect,
	FieldDsnSecret,
	FieldOptions,
	FieldEnabled,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEnabled holds the default value on creation for the "enabled" field.
	DefaultEnabled bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ConnectorRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrganisationID orders the results by the organisation_id field.
func ByOrganisationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganisationID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDialect orders the results by the dialect field.
func ByDialect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDialect, opts...).ToFunc()
}

// ByDsnSecret orders the results by the dsn_secret field.
func ByDsnSecret(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDsnSecret, opts...).ToFunc()
}

// ByEnabled orders the results by the enabled field.
func ByEnabled(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnabled, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
