// Package semantic defines the declarative semantic model: named tables with
// dimensions, measures and reusable metrics, plus the relationships that let
// the SQL generator join them. Models are loaded from YAML, validated once,
// and treated as read-only for the lifetime of a request.
package semantic

import (
	"fmt"
	"strings"
)

// DataType enumerates the column types a dimension or measure may carry.
type DataType string

const (
	TypeString    DataType = "string"
	TypeInteger   DataType = "integer"
	TypeDecimal   DataType = "decimal"
	TypeFloat     DataType = "float"
	TypeDate      DataType = "date"
	TypeTimestamp DataType = "timestamp"
	TypeBoolean   DataType = "boolean"
)

// IsTemporal reports whether the type participates in date-range compilation.
func (t DataType) IsTemporal() bool {
	return t == TypeDate || t == TypeTimestamp
}

// Aggregation enumerates measure aggregation functions.
type Aggregation string

const (
	AggSum           Aggregation = "sum"
	AggAvg           Aggregation = "avg"
	AggMin           Aggregation = "min"
	AggMax           Aggregation = "max"
	AggCount         Aggregation = "count"
	AggCountDistinct Aggregation = "count_distinct"
	AggNone          Aggregation = "none"
)

// RelationshipType enumerates supported join semantics between two tables.
type RelationshipType string

const (
	RelInner     RelationshipType = "inner"
	RelLeft      RelationshipType = "left"
	RelRight     RelationshipType = "right"
	RelFull      RelationshipType = "full"
	RelOneToMany RelationshipType = "one_to_many"
	RelManyToOne RelationshipType = "many_to_one"
	RelOneToOne  RelationshipType = "one_to_one"
)

// JoinKind is the SQL join keyword a relationship type maps to.
func (r RelationshipType) JoinKind() string {
	switch r {
	case RelInner:
		return "INNER"
	case RelRight:
		return "RIGHT"
	case RelFull:
		return "FULL"
	default:
		// left and the cardinality types all join LEFT so optional rows
		// never drop measure rows from the base table.
		return "LEFT"
	}
}

// Dimension is a queryable attribute of a table.
// Expression defaults to the bare column name when empty.
type Dimension struct {
	Name        string   `yaml:"name" json:"name"`
	Type        DataType `yaml:"type" json:"type"`
	Expression  string   `yaml:"expression,omitempty" json:"expression,omitempty"`
	PrimaryKey  bool     `yaml:"primary_key,omitempty" json:"primaryKey,omitempty"`
	Synonyms    []string `yaml:"synonyms,omitempty" json:"synonyms,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`

	// Vectorized marks a dimension whose distinct values are embedded into a
	// vector index for entity matching during analyst question augmentation.
	Vectorized  bool   `yaml:"vectorized,omitempty" json:"vectorized,omitempty"`
	VectorIndex string `yaml:"vector_index,omitempty" json:"vectorIndex,omitempty"`
}

// SQLExpression returns the physical expression for the dimension.
func (d *Dimension) SQLExpression() string {
	if d.Expression != "" {
		return d.Expression
	}
	return d.Name
}

// Measure is an aggregated numeric attribute of a table.
type Measure struct {
	Name        string      `yaml:"name" json:"name"`
	Type        DataType    `yaml:"type" json:"type"`
	Aggregation Aggregation `yaml:"aggregation" json:"aggregation"`
	Expression  string      `yaml:"expression,omitempty" json:"expression,omitempty"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty"`
}

// SQLExpression returns the physical expression for the measure.
func (m *Measure) SQLExpression() string {
	if m.Expression != "" {
		return m.Expression
	}
	return m.Name
}

// NamedFilter is a reusable boolean condition stored on a table. A query
// references it as a segment `<table>.<filter>`.
type NamedFilter struct {
	Condition   string `yaml:"condition" json:"condition"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Table maps a business entity to a physical table.
type Table struct {
	Catalog     string                 `yaml:"catalog,omitempty" json:"catalog,omitempty"`
	Schema      string                 `yaml:"schema,omitempty" json:"schema,omitempty"`
	Name        string                 `yaml:"name" json:"name"`
	Synonyms    []string               `yaml:"synonyms,omitempty" json:"synonyms,omitempty"`
	Dimensions  []Dimension            `yaml:"dimensions,omitempty" json:"dimensions,omitempty"`
	Measures    []Measure              `yaml:"measures,omitempty" json:"measures,omitempty"`
	Filters     map[string]NamedFilter `yaml:"filters,omitempty" json:"filters,omitempty"`
	Description string                 `yaml:"description,omitempty" json:"description,omitempty"`
}

// QualifiedName renders the physical reference with every populated layer.
func (t *Table) QualifiedName() string {
	parts := make([]string, 0, 3)
	if t.Catalog != "" {
		parts = append(parts, t.Catalog)
	}
	if t.Schema != "" {
		parts = append(parts, t.Schema)
	}
	parts = append(parts, t.Name)
	return strings.Join(parts, ".")
}

// Dimension returns the named dimension, if defined.
func (t *Table) Dimension(name string) (*Dimension, bool) {
	for i := range t.Dimensions {
		if t.Dimensions[i].Name == name {
			return &t.Dimensions[i], true
		}
	}
	return nil, false
}

// Measure returns the named measure, if defined.
func (t *Table) Measure(name string) (*Measure, bool) {
	for i := range t.Measures {
		if t.Measures[i].Name == name {
			return &t.Measures[i], true
		}
	}
	return nil, false
}

// PrimaryKey returns the primary-key dimension, if one is declared.
func (t *Table) PrimaryKey() (*Dimension, bool) {
	for i := range t.Dimensions {
		if t.Dimensions[i].PrimaryKey {
			return &t.Dimensions[i], true
		}
	}
	return nil, false
}

// Relationship declares a join edge between two table keys. JoinOn is an SQL
// boolean expression referencing `<table_key>.<column>` on both sides.
type Relationship struct {
	Name      string           `yaml:"name" json:"name"`
	FromTable string           `yaml:"from_table" json:"fromTable"`
	ToTable   string           `yaml:"to_table" json:"toTable"`
	Type      RelationshipType `yaml:"type" json:"type"`
	JoinOn    string           `yaml:"join_on" json:"joinOn"`
}

// Metric is a reusable SQL expression over measures and dimensions of one or
// more tables, referenced by bare name in queries.
type Metric struct {
	Expression  string `yaml:"expression" json:"expression"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Model is a named semantic schema. Table iteration order is significant
// (base-table selection, join tie-breaks), so keys are kept ordered.
type Model struct {
	Name          string            `yaml:"name" json:"name"`
	Description   string            `yaml:"description,omitempty" json:"description,omitempty"`
	Dialect       string            `yaml:"dialect,omitempty" json:"dialect,omitempty"`
	Tags          []string          `yaml:"tags,omitempty" json:"tags,omitempty"`
	Tables        map[string]*Table `yaml:"tables" json:"tables"`
	TableOrder    []string          `yaml:"-" json:"-"`
	Relationships []Relationship    `yaml:"relationships,omitempty" json:"relationships,omitempty"`
	Metrics       map[string]Metric `yaml:"metrics,omitempty" json:"metrics,omitempty"`
}

// Table returns the table for a key.
func (m *Model) Table(key string) (*Table, bool) {
	t, ok := m.Tables[key]
	return t, ok
}

// OrderedTableKeys returns table keys in declaration order. Falls back to the
// map when the model was built programmatically without recording order.
func (m *Model) OrderedTableKeys() []string {
	if len(m.TableOrder) == len(m.Tables) {
		return m.TableOrder
	}
	keys := make([]string, 0, len(m.Tables))
	for k := range m.Tables {
		keys = append(keys, k)
	}
	sortStrings(keys)
	return keys
}

// Clone returns a deep copy of the model. Tenant-aware rewriting mutates the
// copy so the shared model stays read-only.
func (m *Model) Clone() *Model {
	out := &Model{
		Name:        m.Name,
		Description: m.Description,
		Dialect:     m.Dialect,
		Tags:        append([]string(nil), m.Tags...),
		Tables:      make(map[string]*Table, len(m.Tables)),
		TableOrder:  append([]string(nil), m.TableOrder...),
		Metrics:     make(map[string]Metric, len(m.Metrics)),
	}
	for key, tbl := range m.Tables {
		cp := *tbl
		cp.Synonyms = append([]string(nil), tbl.Synonyms...)
		cp.Dimensions = append([]Dimension(nil), tbl.Dimensions...)
		for i := range cp.Dimensions {
			cp.Dimensions[i].Synonyms = append([]string(nil), tbl.Dimensions[i].Synonyms...)
		}
		cp.Measures = append([]Measure(nil), tbl.Measures...)
		if tbl.Filters != nil {
			cp.Filters = make(map[string]NamedFilter, len(tbl.Filters))
			for fk, fv := range tbl.Filters {
				cp.Filters[fk] = fv
			}
		}
		out.Tables[key] = &cp
	}
	out.Relationships = append([]Relationship(nil), m.Relationships...)
	for k, v := range m.Metrics {
		out.Metrics[k] = v
	}
	return out
}

// FindMember resolves a bare member name across all tables. Returns the
// owning table keys so the caller can report ambiguity.
func (m *Model) FindMember(name string) []string {
	var owners []string
	for _, key := range m.OrderedTableKeys() {
		tbl := m.Tables[key]
		if _, ok := tbl.Dimension(name); ok {
			owners = append(owners, key)
			continue
		}
		if _, ok := tbl.Measure(name); ok {
			owners = append(owners, key)
		}
	}
	return owners
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

// MemberRef is a parsed member reference: bare, table-qualified, or
// schema-qualified.
type MemberRef struct {
	Schema string
	Table  string
	Column string
}

// ParseMemberRef splits a member reference on dots. One part is a bare name,
// two parts table.column, three parts schema.table.column.
func ParseMemberRef(member string) (MemberRef, error) {
	parts := strings.Split(member, ".")
	switch len(parts) {
	case 1:
		return MemberRef{Column: parts[0]}, nil
	case 2:
		return MemberRef{Table: parts[0], Column: parts[1]}, nil
	case 3:
		return MemberRef{Schema: parts[0], Table: parts[1], Column: parts[2]}, nil
	default:
		return MemberRef{}, fmt.Errorf("invalid member reference %q: at most schema.table.column", member)
	}
}
