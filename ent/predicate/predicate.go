// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ConnectorRecord is the predicate function for connectorrecord builders.
type ConnectorRecord func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobEvent is the predicate function for jobevent builders.
type JobEvent func(*sql.Selector)

// SemanticModelRecord is the predicate function for semanticmodelrecord builders.
type SemanticModelRecord func(*sql.Selector)
