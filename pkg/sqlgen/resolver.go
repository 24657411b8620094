package sqlgen

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/quillhq/quill/pkg/semantic"
)

// MemberKind classifies a resolved member.
type MemberKind int

const (
	KindDimension MemberKind = iota
	KindMeasure
	KindMetric
)

// ResolvedMember maps a user-visible member reference onto physical schema.
type ResolvedMember struct {
	Kind       MemberKind
	TableKey   string // empty for metrics
	Column     string
	Expression string // physical expression, table refs not yet aliased
	DataType   semantic.DataType

	Dimension *semantic.Dimension
	Measure   *semantic.Measure
	Metric    *semantic.Metric
}

// Resolver resolves member references against one model.
type Resolver struct {
	model *semantic.Model
}

// NewResolver builds a resolver for the model.
func NewResolver(model *semantic.Model) *Resolver {
	return &Resolver{model: model}
}

// Model returns the underlying model.
func (r *Resolver) Model() *semantic.Model { return r.model }

// ResolveDimension resolves a member expected to be a dimension.
// Lookup precedence: exact <table>.<column>, then schema-qualified, then
// bare name (erroring when more than one table defines it).
func (r *Resolver) ResolveDimension(member string) (*ResolvedMember, error) {
	ref, err := semantic.ParseMemberRef(member)
	if err != nil {
		return nil, err
	}
	if ref.Table != "" {
		tbl, key, err := r.lookupTable(ref)
		if err != nil {
			return nil, err
		}
		if dim, ok := tbl.Dimension(ref.Column); ok {
			return dimensionMember(key, dim), nil
		}
		return nil, fmt.Errorf("%w: no dimension %q on table %q", ErrUnknownMember, ref.Column, key)
	}
	return r.resolveBare(ref.Column, true, false)
}

// ResolveMeasure resolves a member expected to be a measure, falling back to
// the metrics namespace for bare names that match no measure.
func (r *Resolver) ResolveMeasure(member string) (*ResolvedMember, error) {
	ref, err := semantic.ParseMemberRef(member)
	if err != nil {
		return nil, err
	}
	if ref.Table != "" {
		tbl, key, err := r.lookupTable(ref)
		if err != nil {
			return nil, err
		}
		if me, ok := tbl.Measure(ref.Column); ok {
			return measureMember(key, me), nil
		}
		return nil, fmt.Errorf("%w: no measure %q on table %q", ErrUnknownMember, ref.Column, key)
	}
	if m, err := r.resolveBare(ref.Column, false, true); err == nil {
		return m, nil
	} else if isAmbiguous(err) {
		return nil, err
	}
	if metric, ok := r.model.Metrics[ref.Column]; ok {
		return metricMember(ref.Column, metric), nil
	}
	return nil, fmt.Errorf("%w: %q is neither a measure nor a metric", ErrUnknownMember, member)
}

// ResolveMetric resolves a name in the metrics namespace only.
func (r *Resolver) ResolveMetric(name string) (*ResolvedMember, error) {
	metric, ok := r.model.Metrics[name]
	if !ok {
		return nil, fmt.Errorf("%w: no metric %q", ErrUnknownMember, name)
	}
	return metricMember(name, metric), nil
}

// ResolveAny resolves a member as dimension, then measure, then metric.
// Used for filters and order-by targets where the member class is unknown.
func (r *Resolver) ResolveAny(member string) (*ResolvedMember, error) {
	if m, err := r.ResolveDimension(member); err == nil {
		return m, nil
	} else if isAmbiguous(err) {
		return nil, err
	}
	if m, err := r.ResolveMeasure(member); err == nil {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMember, member)
}

// lookupTable finds the table for a qualified reference. A schema qualifier
// must match the table's declared schema when one is present.
func (r *Resolver) lookupTable(ref semantic.MemberRef) (*semantic.Table, string, error) {
	tbl, ok := r.model.Table(ref.Table)
	if !ok {
		return nil, "", fmt.Errorf("%w: unknown table %q in member %q", ErrUnknownMember, ref.Table, ref.Table+"."+ref.Column)
	}
	if ref.Schema != "" && tbl.Schema != "" && tbl.Schema != ref.Schema && tbl.Catalog != ref.Schema {
		return nil, "", fmt.Errorf("%w: table %q is in schema %q, not %q",
			ErrUnknownMember, ref.Table, tbl.Schema, ref.Schema)
	}
	return tbl, ref.Table, nil
}

// resolveBare scans all tables for a bare member name. More than one owner
// is an ambiguity error listing the candidate tables.
func (r *Resolver) resolveBare(name string, wantDimension, wantMeasure bool) (*ResolvedMember, error) {
	var owners []string
	var found *ResolvedMember
	for _, key := range r.model.OrderedTableKeys() {
		tbl := r.model.Tables[key]
		if wantDimension {
			if dim, ok := tbl.Dimension(name); ok {
				owners = append(owners, key)
				found = dimensionMember(key, dim)
				continue
			}
		}
		if wantMeasure {
			if me, ok := tbl.Measure(name); ok {
				owners = append(owners, key)
				found = measureMember(key, me)
			}
		}
	}
	switch len(owners) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMember, name)
	case 1:
		return found, nil
	default:
		return nil, &AmbiguousMemberError{Member: name, Candidates: owners}
	}
}

// MetricTables returns the table keys a metric expression references, in
// model declaration order.
func (r *Resolver) MetricTables(metric *semantic.Metric) []string {
	referenced := make(map[string]bool)
	for _, match := range memberRefPattern.FindAllStringSubmatch(metric.Expression, -1) {
		referenced[match[1]] = true
	}
	var keys []string
	for _, key := range r.model.OrderedTableKeys() {
		if referenced[key] {
			keys = append(keys, key)
		}
	}
	return keys
}

var memberRefPattern = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\.([A-Za-z_][A-Za-z0-9_]*)`)

func dimensionMember(tableKey string, d *semantic.Dimension) *ResolvedMember {
	return &ResolvedMember{
		Kind:       KindDimension,
		TableKey:   tableKey,
		Column:     d.Name,
		Expression: d.SQLExpression(),
		DataType:   d.Type,
		Dimension:  d,
	}
}

func measureMember(tableKey string, m *semantic.Measure) *ResolvedMember {
	return &ResolvedMember{
		Kind:       KindMeasure,
		TableKey:   tableKey,
		Column:     m.Name,
		Expression: m.SQLExpression(),
		DataType:   m.Type,
		Measure:    m,
	}
}

func metricMember(name string, m semantic.Metric) *ResolvedMember {
	metric := m
	return &ResolvedMember{
		Kind:       KindMetric,
		Column:     name,
		Expression: metric.Expression,
		DataType:   semantic.TypeDecimal,
		Metric:     &metric,
	}
}

func isAmbiguous(err error) bool {
	var ambErr *AmbiguousMemberError
	return errors.As(err, &ambErr)
}
