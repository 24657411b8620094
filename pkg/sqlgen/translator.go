package sqlgen

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/quillhq/quill/pkg/semantic"
	"github.com/quillhq/quill/pkg/semantic/query"
)

// Translator compiles semantic queries against one model for one dialect.
// Translation is deterministic: the same (model, query, dialect) triple
// always yields the same SQL.
type Translator struct {
	model    *semantic.Model
	resolver *Resolver
	dialect  Dialect
}

// NewTranslator builds a translator. An empty dialect falls back to the
// model's declared dialect, then to the canonical dialect.
func NewTranslator(model *semantic.Model, dialect Dialect) (*Translator, error) {
	if dialect == "" {
		dialect = Dialect(model.Dialect)
	}
	if dialect == "" {
		dialect = Canonical
	}
	if !dialect.Known() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
	return &Translator{model: model, resolver: NewResolver(model), dialect: dialect}, nil
}

// Dialect returns the target dialect.
func (t *Translator) Dialect() Dialect { return t.dialect }

// Compiled is the translation output.
type Compiled struct {
	SQL       string
	BaseTable string
	Plan      *JoinPlan
	// Aliases holds the projected output aliases in SELECT order.
	Aliases []string
}

// selectItem is one projected expression.
type selectItem struct {
	expr    string
	alias   string
	grouped bool // dimensions and time dimensions enter GROUP BY
}

// Translate compiles the query to SQL.
func (t *Translator) Translate(q *query.Query) (*Compiled, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	res, err := t.resolveQuery(q)
	if err != nil {
		return nil, err
	}

	base, err := t.selectBaseTable(q, res)
	if err != nil {
		return nil, err
	}

	plan, err := PlanJoins(t.model, base, res.requiredTables(base))
	if err != nil {
		return nil, err
	}

	return t.emit(q, res, plan)
}

// resolvedQuery carries every resolved member, parallel to the AST slices.
type resolvedQuery struct {
	dimensions []*ResolvedMember
	timeDims   []*ResolvedMember
	measures   []*ResolvedMember
	filters    []*ResolvedMember
	segments   []segmentRef
	metricTabs map[string][]string // metric name -> referenced tables
}

type segmentRef struct {
	name      string
	tableKey  string
	condition string
}

func (t *Translator) resolveQuery(q *query.Query) (*resolvedQuery, error) {
	res := &resolvedQuery{metricTabs: make(map[string][]string)}

	for _, member := range q.Dimensions {
		m, err := t.resolver.ResolveDimension(member)
		if err != nil {
			return nil, err
		}
		res.dimensions = append(res.dimensions, m)
	}
	for i := range q.TimeDimensions {
		m, err := t.resolver.ResolveDimension(q.TimeDimensions[i].Dimension)
		if err != nil {
			return nil, err
		}
		if !m.DataType.IsTemporal() {
			return nil, fmt.Errorf("%w: %q is not a date or timestamp dimension",
				ErrUnknownMember, q.TimeDimensions[i].Dimension)
		}
		res.timeDims = append(res.timeDims, m)
	}
	for _, member := range q.Measures {
		m, err := t.resolver.ResolveMeasure(member)
		if err != nil {
			return nil, err
		}
		res.measures = append(res.measures, m)
		if m.Kind == KindMetric {
			res.metricTabs[m.Column] = t.resolver.MetricTables(m.Metric)
		}
	}
	for i := range q.Filters {
		m, err := t.resolveFilterTarget(&q.Filters[i])
		if err != nil {
			return nil, err
		}
		res.filters = append(res.filters, m)
		if m != nil && m.Kind == KindMetric {
			res.metricTabs[m.Column] = t.resolver.MetricTables(m.Metric)
		}
	}
	for _, seg := range q.Segments {
		ref, err := t.resolveSegment(seg)
		if err != nil {
			return nil, err
		}
		res.segments = append(res.segments, ref)
	}
	return res, nil
}

// resolveFilterTarget respects the alias field used: a measure-alias filter
// resolves in the measure/metric namespace, everything else tries dimension
// first.
func (t *Translator) resolveFilterTarget(f *query.FilterItem) (*ResolvedMember, error) {
	if f.IsMeasureFilter() {
		return t.resolver.ResolveMeasure(f.Target())
	}
	return t.resolver.ResolveAny(f.Target())
}

// resolveSegment parses `<table>.<filter>` into the stored condition.
func (t *Translator) resolveSegment(name string) (segmentRef, error) {
	parts := strings.SplitN(name, ".", 2)
	if len(parts) != 2 {
		return segmentRef{}, fmt.Errorf("%w: segment %q must be <table>.<filter>", ErrUnknownSegment, name)
	}
	tbl, ok := t.model.Table(parts[0])
	if !ok {
		return segmentRef{}, fmt.Errorf("%w: unknown table %q in segment %q", ErrUnknownSegment, parts[0], name)
	}
	filter, ok := tbl.Filters[parts[1]]
	if !ok {
		return segmentRef{}, fmt.Errorf("%w: table %q has no filter %q", ErrUnknownSegment, parts[0], parts[1])
	}
	return segmentRef{name: name, tableKey: parts[0], condition: filter.Condition}, nil
}

// selectBaseTable applies the precedence chain: measures, then metric
// tables, then time dimensions, dimensions, filter targets, segments.
func (t *Translator) selectBaseTable(q *query.Query, res *resolvedQuery) (string, error) {
	for _, m := range res.measures {
		if m.Kind == KindMeasure && m.TableKey != "" {
			return m.TableKey, nil
		}
	}
	for _, m := range res.measures {
		if m.Kind == KindMetric {
			if tabs := res.metricTabs[m.Column]; len(tabs) > 0 {
				return tabs[0], nil
			}
		}
	}
	for _, m := range res.timeDims {
		if m.TableKey != "" {
			return m.TableKey, nil
		}
	}
	for _, m := range res.dimensions {
		if m.TableKey != "" {
			return m.TableKey, nil
		}
	}
	for _, m := range res.filters {
		if m != nil && m.TableKey != "" {
			return m.TableKey, nil
		}
	}
	for _, seg := range res.segments {
		return seg.tableKey, nil
	}
	return "", ErrNoBaseTable
}

// requiredTables lists every table the query touches, base excluded last.
func (res *resolvedQuery) requiredTables(base string) []string {
	var out []string
	seen := map[string]bool{base: true}
	add := func(key string) {
		if key != "" && !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	for _, m := range res.dimensions {
		add(m.TableKey)
	}
	for _, m := range res.timeDims {
		add(m.TableKey)
	}
	for _, m := range res.measures {
		add(m.TableKey)
		if m.Kind == KindMetric {
			for _, tab := range res.metricTabs[m.Column] {
				add(tab)
			}
		}
	}
	for _, m := range res.filters {
		if m == nil {
			continue
		}
		add(m.TableKey)
		if m.Kind == KindMetric {
			for _, tab := range res.metricTabs[m.Column] {
				add(tab)
			}
		}
	}
	for _, seg := range res.segments {
		add(seg.tableKey)
	}
	return out
}

// memberExpr renders the aliased physical expression for a member.
func (t *Translator) memberExpr(m *ResolvedMember, plan *JoinPlan) string {
	if m.Kind == KindMetric {
		return plan.RewriteRefs(m.Expression, t.dialect)
	}
	if bareIdentPattern.MatchString(m.Expression) {
		return plan.Alias(m.TableKey) + "." + t.dialect.QuoteIdent(m.Expression)
	}
	return plan.RewriteRefs(m.Expression, t.dialect)
}

var bareIdentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// aggregateExpr wraps a measure expression in its aggregation function.
func aggregateExpr(m *semantic.Measure, expr string) string {
	switch m.Aggregation {
	case semantic.AggSum:
		return fmt.Sprintf("SUM(%s)", expr)
	case semantic.AggAvg:
		return fmt.Sprintf("AVG(%s)", expr)
	case semantic.AggMin:
		return fmt.Sprintf("MIN(%s)", expr)
	case semantic.AggMax:
		return fmt.Sprintf("MAX(%s)", expr)
	case semantic.AggCount:
		return fmt.Sprintf("COUNT(%s)", expr)
	case semantic.AggCountDistinct:
		return fmt.Sprintf("COUNT(DISTINCT %s)", expr)
	default:
		return expr
	}
}

// outputAlias builds the deterministic projection alias
// `<table>__<column>[_<granularity>]` with dots and spaces flattened.
func outputAlias(tableKey, column string, g query.Granularity) string {
	alias := sanitizeAliasPart(tableKey) + "__" + sanitizeAliasPart(column)
	if g != "" {
		alias += "_" + string(g)
	}
	return alias
}

func sanitizeAliasPart(s string) string {
	s = strings.ReplaceAll(s, ".", "_")
	return strings.ReplaceAll(s, " ", "_")
}

// emit serializes the SELECT tree.
func (t *Translator) emit(q *query.Query, res *resolvedQuery, plan *JoinPlan) (*Compiled, error) {
	d := t.dialect

	var items []selectItem
	// aliasIndex registers every known spelling of a projected member so
	// ORDER BY can resolve to the alias instead of repeating the column.
	aliasIndex := make(map[string]string)
	register := func(alias string, m *ResolvedMember, g query.Granularity) {
		spellings := memberSpellings(t.model, m, g)
		for _, s := range spellings {
			if _, taken := aliasIndex[s]; !taken {
				aliasIndex[s] = alias
			}
		}
	}

	// Selection order: dimensions, time dimensions, measures, metrics.
	for _, m := range res.dimensions {
		alias := outputAlias(m.TableKey, m.Column, "")
		items = append(items, selectItem{expr: t.memberExpr(m, plan), alias: alias, grouped: true})
		register(alias, m, "")
	}
	for i, m := range res.timeDims {
		td := &q.TimeDimensions[i]
		expr := t.memberExpr(m, plan)
		if td.Granularity != "" {
			truncated, err := d.DateTrunc(td.Granularity, expr)
			if err != nil {
				return nil, err
			}
			expr = truncated
		}
		alias := outputAlias(m.TableKey, m.Column, td.Granularity)
		items = append(items, selectItem{expr: expr, alias: alias, grouped: true})
		register(alias, m, td.Granularity)
	}
	var metricItems []selectItem
	for _, m := range res.measures {
		if m.Kind == KindMetric {
			alias := sanitizeAliasPart(m.Column)
			metricItems = append(metricItems, selectItem{expr: t.memberExpr(m, plan), alias: alias})
			aliasIndex[m.Column] = alias
			continue
		}
		alias := outputAlias(m.TableKey, m.Column, "")
		expr := aggregateExpr(m.Measure, t.memberExpr(m, plan))
		items = append(items, selectItem{expr: expr, alias: alias})
		register(alias, m, "")
	}
	items = append(items, metricItems...)

	if err := checkAliasUniqueness(items); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.expr)
		sb.WriteString(" AS ")
		sb.WriteString(d.QuoteIdent(item.alias))
	}

	baseTable := t.model.Tables[plan.BaseTable]
	sb.WriteString(" FROM ")
	sb.WriteString(d.QuoteQualified(baseTable.Catalog, baseTable.Schema, baseTable.Name))
	sb.WriteString(" AS t0")

	for _, step := range plan.Steps {
		rel := &t.model.Relationships[step.RelIndex]
		joined := t.model.Tables[step.Table]
		sb.WriteString(fmt.Sprintf(" %s JOIN %s AS %s ON %s",
			step.Kind,
			d.QuoteQualified(joined.Catalog, joined.Schema, joined.Name),
			step.Alias,
			plan.RewriteRefs(rel.JoinOn, d)))
	}

	where, having, err := t.compilePredicates(q, res, plan)
	if err != nil {
		return nil, err
	}
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}

	var groupExprs []string
	seenGroup := map[string]bool{}
	for _, item := range items {
		if item.grouped && !seenGroup[item.expr] {
			seenGroup[item.expr] = true
			groupExprs = append(groupExprs, item.expr)
		}
	}
	if len(groupExprs) > 0 && t.hasAggregates(res) {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(groupExprs, ", "))
	}

	if len(having) > 0 {
		sb.WriteString(" HAVING ")
		sb.WriteString(strings.Join(having, " AND "))
	}

	orderSQL, err := t.compileOrder(q, plan, aliasIndex)
	if err != nil {
		return nil, err
	}
	needsOrderForPaging := d == DialectTSQL && (q.Limit != nil || q.Offset != nil)
	if orderSQL == "" && needsOrderForPaging {
		orderSQL = "1"
	}
	if orderSQL != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(orderSQL)
	}

	if q.Limit != nil || q.Offset != nil {
		limit := math.MaxInt32
		if q.Limit != nil {
			limit = *q.Limit
		}
		offset := 0
		if q.Offset != nil {
			offset = *q.Offset
		}
		sb.WriteString(" ")
		sb.WriteString(d.LimitClause(limit, offset))
	}

	aliases := make([]string, 0, len(items))
	for _, item := range items {
		aliases = append(aliases, item.alias)
	}
	return &Compiled{SQL: sb.String(), BaseTable: plan.BaseTable, Plan: plan, Aliases: aliases}, nil
}

func (t *Translator) hasAggregates(res *resolvedQuery) bool {
	for _, m := range res.measures {
		if m.Kind == KindMetric {
			return true
		}
		if m.Measure != nil && m.Measure.Aggregation != semantic.AggNone {
			return true
		}
	}
	return false
}

func checkAliasUniqueness(items []selectItem) error {
	seen := map[string]bool{}
	for _, item := range items {
		if seen[item.alias] {
			return fmt.Errorf("duplicate projection alias %q", item.alias)
		}
		seen[item.alias] = true
	}
	return nil
}

// memberSpellings lists every reference spelling that should resolve to a
// projected alias: table-qualified, schema-qualified, catalog-qualified, and
// the bare column name.
func memberSpellings(model *semantic.Model, m *ResolvedMember, g query.Granularity) []string {
	if m.TableKey == "" {
		return []string{m.Column}
	}
	tbl := model.Tables[m.TableKey]
	spellings := []string{
		m.TableKey + "." + m.Column,
		m.Column,
	}
	if tbl.Schema != "" {
		spellings = append(spellings, tbl.Schema+"."+m.TableKey+"."+m.Column)
		if tbl.Catalog != "" {
			spellings = append(spellings, tbl.Catalog+"."+tbl.Schema+"."+m.TableKey+"."+m.Column)
		}
	}
	_ = g
	return spellings
}

// compilePredicates splits filters between WHERE and HAVING and appends
// time-dimension ranges and segments to WHERE.
func (t *Translator) compilePredicates(q *query.Query, res *resolvedQuery, plan *JoinPlan) (where, having []string, err error) {
	for i := range q.TimeDimensions {
		td := &q.TimeDimensions[i]
		if td.DateRange == nil {
			continue
		}
		m := res.timeDims[i]
		pred, err := compileDateRange(t.dialect, t.memberExpr(m, plan), m.DataType, td.DateRange)
		if err != nil {
			return nil, nil, err
		}
		where = append(where, pred)
	}

	for i := range q.Filters {
		f := &q.Filters[i]
		m := res.filters[i]
		expr := t.memberExpr(m, plan)
		aggregated := m.Kind == KindMetric
		if m.Kind == KindMeasure {
			expr = aggregateExpr(m.Measure, expr)
			aggregated = m.Measure.Aggregation != semantic.AggNone
		}
		pred, err := t.compileFilter(f, m, expr)
		if err != nil {
			return nil, nil, err
		}
		if aggregated {
			having = append(having, pred)
		} else {
			where = append(where, pred)
		}
	}

	for _, seg := range res.segments {
		where = append(where, "("+plan.RewriteRefs(seg.condition, t.dialect)+")")
	}
	return where, having, nil
}

// compileFilter renders one filter predicate.
func (t *Translator) compileFilter(f *query.FilterItem, m *ResolvedMember, expr string) (string, error) {
	d := t.dialect
	lits := func() []string {
		out := make([]string, 0, len(f.Values))
		for _, v := range f.Values {
			out = append(out, t.valueLiteral(v))
		}
		return out
	}

	switch f.Operator {
	case query.OpEquals, query.OpIn:
		values := lits()
		if len(values) == 1 && f.Operator == query.OpEquals {
			return fmt.Sprintf("%s = %s", expr, values[0]), nil
		}
		return fmt.Sprintf("%s IN (%s)", expr, strings.Join(values, ", ")), nil
	case query.OpNotEquals, query.OpNotIn:
		values := lits()
		if len(values) == 1 && f.Operator == query.OpNotEquals {
			return fmt.Sprintf("%s <> %s", expr, values[0]), nil
		}
		return fmt.Sprintf("%s NOT IN (%s)", expr, strings.Join(values, ", ")), nil
	case query.OpContains:
		return fmt.Sprintf("%s LIKE %s", expr, d.StringLiteral("%"+f.Values[0]+"%")), nil
	case query.OpNotContains:
		return fmt.Sprintf("%s NOT LIKE %s", expr, d.StringLiteral("%"+f.Values[0]+"%")), nil
	case query.OpStartsWith:
		return fmt.Sprintf("%s LIKE %s", expr, d.StringLiteral(f.Values[0]+"%")), nil
	case query.OpEndsWith:
		return fmt.Sprintf("%s LIKE %s", expr, d.StringLiteral("%"+f.Values[0])), nil
	case query.OpGt:
		return fmt.Sprintf("%s > %s", expr, t.valueLiteral(f.Values[0])), nil
	case query.OpGte:
		return fmt.Sprintf("%s >= %s", expr, t.valueLiteral(f.Values[0])), nil
	case query.OpLt:
		return fmt.Sprintf("%s < %s", expr, t.valueLiteral(f.Values[0])), nil
	case query.OpLte:
		return fmt.Sprintf("%s <= %s", expr, t.valueLiteral(f.Values[0])), nil
	case query.OpBeforeDate:
		return fmt.Sprintf("%s < %s", expr, d.StringLiteral(f.Values[0])), nil
	case query.OpAfterDate:
		return fmt.Sprintf("%s > %s", expr, d.StringLiteral(f.Values[0])), nil
	case query.OpInDateRange, query.OpNotInDateRange:
		if len(f.Values) != 2 {
			return "", fmt.Errorf("%s on %q needs exactly [start, end]", f.Operator, f.Target())
		}
		pred, err := compileAbsoluteRange(d, expr, f.Values[0], f.Values[1])
		if err != nil {
			return "", err
		}
		if f.Operator == query.OpNotInDateRange {
			return "NOT (" + pred + ")", nil
		}
		return pred, nil
	case query.OpSet:
		return fmt.Sprintf("%s IS NOT NULL", expr), nil
	case query.OpNotSet:
		return fmt.Sprintf("%s IS NULL", expr), nil
	default:
		return "", fmt.Errorf("unknown operator %q", f.Operator)
	}
}

var numericPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// valueLiteral renders a filter value: numbers raw, booleans per dialect,
// everything else as a quoted string.
func (t *Translator) valueLiteral(v string) string {
	if numericPattern.MatchString(v) {
		return v
	}
	switch strings.ToLower(v) {
	case "true":
		if t.dialect == DialectTSQL || t.dialect == DialectSQLite {
			return "1"
		}
		return "TRUE"
	case "false":
		if t.dialect == DialectTSQL || t.dialect == DialectSQLite {
			return "0"
		}
		return "FALSE"
	}
	return t.dialect.StringLiteral(v)
}

// compileOrder resolves each order member by projected alias first, then by
// member resolution. Direction defaults to ASC.
func (t *Translator) compileOrder(q *query.Query, plan *JoinPlan, aliasIndex map[string]string) (string, error) {
	if len(q.Order) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(q.Order))
	for _, item := range q.Order {
		var expr string
		if alias, ok := aliasIndex[item.Member]; ok {
			expr = t.dialect.QuoteIdent(alias)
		} else {
			m, err := t.resolver.ResolveAny(item.Member)
			if err != nil {
				return "", fmt.Errorf("order by: %w", err)
			}
			if plan.Alias(m.TableKey) == "" && m.Kind != KindMetric {
				return "", fmt.Errorf("order by %q references an unjoined table %q", item.Member, m.TableKey)
			}
			expr = t.memberExpr(m, plan)
			if m.Kind == KindMeasure {
				expr = aggregateExpr(m.Measure, expr)
			}
		}
		if item.Desc {
			expr += " DESC"
		} else {
			expr += " ASC"
		}
		parts = append(parts, expr)
	}
	return strings.Join(parts, ", "), nil
}
