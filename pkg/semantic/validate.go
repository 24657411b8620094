package semantic

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidModel is the sentinel for all model validation failures.
var ErrInvalidModel = errors.New("invalid semantic model")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidModel, fmt.Sprintf(format, args...))
}

var validDataTypes = map[DataType]bool{
	TypeString: true, TypeInteger: true, TypeDecimal: true, TypeFloat: true,
	TypeDate: true, TypeTimestamp: true, TypeBoolean: true,
}

var validAggregations = map[Aggregation]bool{
	AggSum: true, AggAvg: true, AggMin: true, AggMax: true,
	AggCount: true, AggCountDistinct: true, AggNone: true,
}

var validRelTypes = map[RelationshipType]bool{
	RelInner: true, RelLeft: true, RelRight: true, RelFull: true,
	RelOneToMany: true, RelManyToOne: true, RelOneToOne: true,
}

// tableRefPattern matches `<table_key>.<column>` references inside join_on
// and metric expressions.
var tableRefPattern = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\.([A-Za-z_][A-Za-z0-9_]*)`)

// Validate checks the loader invariants: named model, at least one table,
// unique member names within each table, known relationship endpoints, and
// join_on expressions that reference exactly two known tables.
func Validate(m *Model) error {
	if m.Name == "" {
		return invalid("model name is required")
	}
	if len(m.Tables) == 0 {
		return invalid("model %q declares no tables", m.Name)
	}

	for _, key := range m.OrderedTableKeys() {
		tbl := m.Tables[key]
		if tbl == nil {
			return invalid("table %q has no definition", key)
		}
		if tbl.Name == "" {
			return invalid("table %q is missing a physical name", key)
		}
		if err := validateTableMembers(key, tbl); err != nil {
			return err
		}
	}

	for i := range m.Relationships {
		if err := validateRelationship(m, &m.Relationships[i]); err != nil {
			return err
		}
	}

	for name, metric := range m.Metrics {
		if strings.TrimSpace(metric.Expression) == "" {
			return invalid("metric %q has an empty expression", name)
		}
	}
	return nil
}

func validateTableMembers(key string, tbl *Table) error {
	seen := make(map[string]string)
	for i := range tbl.Dimensions {
		d := &tbl.Dimensions[i]
		if d.Name == "" {
			return invalid("table %q has an unnamed dimension", key)
		}
		if !validDataTypes[d.Type] {
			return invalid("dimension %s.%s has unknown type %q", key, d.Name, d.Type)
		}
		if prev, dup := seen[d.Name]; dup {
			return invalid("table %q defines %q as both %s and dimension", key, d.Name, prev)
		}
		seen[d.Name] = "dimension"
	}
	for i := range tbl.Measures {
		me := &tbl.Measures[i]
		if me.Name == "" {
			return invalid("table %q has an unnamed measure", key)
		}
		if !validDataTypes[me.Type] {
			return invalid("measure %s.%s has unknown type %q", key, me.Name, me.Type)
		}
		if !validAggregations[me.Aggregation] {
			return invalid("measure %s.%s has unknown aggregation %q", key, me.Name, me.Aggregation)
		}
		if prev, dup := seen[me.Name]; dup {
			return invalid("table %q defines %q as both %s and measure", key, me.Name, prev)
		}
		seen[me.Name] = "measure"
	}
	return nil
}

func validateRelationship(m *Model, rel *Relationship) error {
	if rel.Name == "" {
		return invalid("relationship between %q and %q is unnamed", rel.FromTable, rel.ToTable)
	}
	if !validRelTypes[rel.Type] {
		return invalid("relationship %q has unknown type %q", rel.Name, rel.Type)
	}
	from, fromOK := m.Tables[rel.FromTable]
	if !fromOK {
		return invalid("relationship %q references unknown table %q", rel.Name, rel.FromTable)
	}
	to, toOK := m.Tables[rel.ToTable]
	if !toOK {
		return invalid("relationship %q references unknown table %q", rel.Name, rel.ToTable)
	}

	// join_on must reference exactly the two endpoint tables.
	referenced := make(map[string]bool)
	for _, match := range tableRefPattern.FindAllStringSubmatch(rel.JoinOn, -1) {
		referenced[match[1]] = true
	}
	if len(referenced) != 2 || !referenced[rel.FromTable] || !referenced[rel.ToTable] {
		return invalid("relationship %q join_on must reference exactly %q and %q, got %q",
			rel.Name, rel.FromTable, rel.ToTable, rel.JoinOn)
	}

	// The "one" side of a cardinality relationship needs a declared primary
	// key so the generator can trust join uniqueness.
	switch rel.Type {
	case RelManyToOne, RelOneToOne:
		if _, ok := to.PrimaryKey(); !ok {
			return invalid("relationship %q requires a primary_key dimension on %q", rel.Name, rel.ToTable)
		}
	case RelOneToMany:
		if _, ok := from.PrimaryKey(); !ok {
			return invalid("relationship %q requires a primary_key dimension on %q", rel.Name, rel.FromTable)
		}
	}
	return nil
}
