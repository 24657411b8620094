package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/semantic"
	"github.com/quillhq/quill/pkg/semantic/query"
)

func fixtureModel() *semantic.Model {
	return &semantic.Model{
		Name:       "ecommerce",
		TableOrder: []string{"orders", "customers", "regions"},
		Tables: map[string]*semantic.Table{
			"orders": {
				Schema: "public",
				Name:   "orders",
				Dimensions: []semantic.Dimension{
					{Name: "id", Type: semantic.TypeInteger, PrimaryKey: true},
					{Name: "status", Type: semantic.TypeString},
					{Name: "created_at", Type: semantic.TypeTimestamp},
					{Name: "customer_id", Type: semantic.TypeInteger},
				},
				Measures: []semantic.Measure{
					{Name: "amount", Type: semantic.TypeDecimal, Aggregation: semantic.AggSum},
					{Name: "order_count", Type: semantic.TypeInteger, Aggregation: semantic.AggCount, Expression: "id"},
				},
				Filters: map[string]semantic.NamedFilter{
					"completed": {Condition: "orders.status = 'completed'"},
				},
			},
			"customers": {
				Schema: "public",
				Name:   "customers",
				Dimensions: []semantic.Dimension{
					{Name: "id", Type: semantic.TypeInteger, PrimaryKey: true},
					{Name: "name", Type: semantic.TypeString},
					{Name: "country", Type: semantic.TypeString},
					{Name: "region_id", Type: semantic.TypeInteger},
					{Name: "signed_up_at", Type: semantic.TypeDate},
				},
			},
			"regions": {
				Schema: "public",
				Name:   "regions",
				Dimensions: []semantic.Dimension{
					{Name: "id", Type: semantic.TypeInteger, PrimaryKey: true},
					{Name: "region_name", Type: semantic.TypeString},
				},
			},
		},
		Relationships: []semantic.Relationship{
			{
				Name:      "orders_customers",
				FromTable: "orders",
				ToTable:   "customers",
				Type:      semantic.RelManyToOne,
				JoinOn:    "orders.customer_id = customers.id",
			},
			{
				Name:      "customers_regions",
				FromTable: "customers",
				ToTable:   "regions",
				Type:      semantic.RelManyToOne,
				JoinOn:    "customers.region_id = regions.id",
			},
		},
		Metrics: map[string]semantic.Metric{
			"average_order_value": {Expression: "SUM(orders.amount) / COUNT(DISTINCT orders.id)"},
		},
	}
}

func translate(t *testing.T, d Dialect, q *query.Query) *Compiled {
	t.Helper()
	tr, err := NewTranslator(fixtureModel(), d)
	require.NoError(t, err)
	compiled, err := tr.Translate(q)
	require.NoError(t, err)
	return compiled
}

func TestTranslateDailyRevenue(t *testing.T) {
	compiled := translate(t, DialectPostgres, &query.Query{
		Measures: []string{"orders.amount"},
		TimeDimensions: []query.TimeDimension{
			{Dimension: "orders.created_at", Granularity: query.GranDay},
		},
		Order: query.Order{{Member: "orders.created_at", Desc: true}},
	})

	assert.Equal(t,
		`SELECT DATE_TRUNC('DAY', t0."created_at") AS "orders__created_at_day", `+
			`SUM(t0."amount") AS "orders__amount" `+
			`FROM "public"."orders" AS t0 `+
			`GROUP BY DATE_TRUNC('DAY', t0."created_at") `+
			`ORDER BY "orders__created_at_day" DESC`,
		compiled.SQL)
	assert.Equal(t, "orders", compiled.BaseTable)
	assert.Equal(t, []string{"orders__created_at_day", "orders__amount"}, compiled.Aliases)
}

func TestTranslateJoinsAcrossRelationships(t *testing.T) {
	compiled := translate(t, DialectPostgres, &query.Query{
		Measures:   []string{"orders.amount"},
		Dimensions: []string{"customers.name"},
	})

	assert.Contains(t, compiled.SQL, `FROM "public"."orders" AS t0`)
	assert.Contains(t, compiled.SQL, `LEFT JOIN "public"."customers" AS t1 ON t0."customer_id" = t1."id"`)
	assert.Contains(t, compiled.SQL, `t1."name" AS "customers__name"`)
	assert.Contains(t, compiled.SQL, `GROUP BY t1."name"`)
}

func TestTranslateTwoHopJoinPath(t *testing.T) {
	compiled := translate(t, DialectPostgres, &query.Query{
		Measures:   []string{"orders.amount"},
		Dimensions: []string{"regions.region_name"},
	})

	// The intermediate table joins first and keeps its alias stable.
	assert.Contains(t, compiled.SQL, `LEFT JOIN "public"."customers" AS t1 ON t0."customer_id" = t1."id"`)
	assert.Contains(t, compiled.SQL, `LEFT JOIN "public"."regions" AS t2 ON t1."region_id" = t2."id"`)
	assert.Equal(t, []string{"orders", "customers", "regions"}, compiled.Plan.Tables())
}

func TestTranslateBaseTablePrecedence(t *testing.T) {
	tests := []struct {
		name string
		q    *query.Query
		base string
	}{
		{
			name: "measure table wins over dimension table",
			q: &query.Query{
				Measures:   []string{"orders.amount"},
				Dimensions: []string{"customers.name"},
			},
			base: "orders",
		},
		{
			name: "metric falls back to first referenced table",
			q: &query.Query{
				Measures:   []string{"average_order_value"},
				Dimensions: []string{"customers.country"},
			},
			base: "orders",
		},
		{
			name: "time dimension wins over plain dimension",
			q: &query.Query{
				Dimensions: []string{"customers.name"},
				TimeDimensions: []query.TimeDimension{
					{Dimension: "orders.created_at", Granularity: query.GranMonth},
				},
			},
			base: "orders",
		},
		{
			name: "dimensions only",
			q:    &query.Query{Dimensions: []string{"customers.country"}},
			base: "customers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled := translate(t, DialectPostgres, tt.q)
			assert.Equal(t, tt.base, compiled.BaseTable)
		})
	}
}

func TestTranslateAbsoluteDateRangeWidensDateOnlyUpperBound(t *testing.T) {
	r, err := query.ParseDateRange([]string{"2025-01-01", "2025-01-31"})
	require.NoError(t, err)

	compiled := translate(t, DialectPostgres, &query.Query{
		Measures: []string{"orders.amount"},
		TimeDimensions: []query.TimeDimension{
			{Dimension: "orders.created_at", Granularity: query.GranDay, DateRange: r},
		},
	})

	// The end day stays inclusive for timestamp columns.
	assert.Contains(t, compiled.SQL,
		`WHERE t0."created_at" >= '2025-01-01' AND t0."created_at" < '2025-02-01'`)
}

func TestTranslateLastThirtyDays(t *testing.T) {
	r, err := query.ParseDateRangeString("last 30 days")
	require.NoError(t, err)

	compiled := translate(t, DialectPostgres, &query.Query{
		Measures: []string{"orders.amount"},
		TimeDimensions: []query.TimeDimension{
			{Dimension: "orders.created_at", Granularity: query.GranDay, DateRange: r},
		},
	})

	assert.Contains(t, compiled.SQL,
		`t0."created_at" >= (CURRENT_DATE - INTERVAL '29 DAY') AND t0."created_at" < (CURRENT_DATE + INTERVAL '1 DAY')`)
}

func TestTranslateFiltersSplitWhereAndHaving(t *testing.T) {
	compiled := translate(t, DialectPostgres, &query.Query{
		Measures:   []string{"orders.amount"},
		Dimensions: []string{"orders.status"},
		Filters: []query.FilterItem{
			{Dimension: "orders.status", Operator: query.OpEquals, Values: []string{"completed"}},
			{Measure: "orders.amount", Operator: query.OpGt, Values: []string{"100"}},
		},
	})

	assert.Contains(t, compiled.SQL, `WHERE t0."status" = 'completed'`)
	assert.Contains(t, compiled.SQL, `HAVING SUM(t0."amount") > 100`)
}

func TestTranslateFilterOperators(t *testing.T) {
	tests := []struct {
		name   string
		filter query.FilterItem
		want   string
	}{
		{
			name:   "equals with several values becomes IN",
			filter: query.FilterItem{Dimension: "orders.status", Operator: query.OpEquals, Values: []string{"completed", "shipped"}},
			want:   `t0."status" IN ('completed', 'shipped')`,
		},
		{
			name:   "notEquals single value",
			filter: query.FilterItem{Dimension: "orders.status", Operator: query.OpNotEquals, Values: []string{"cancelled"}},
			want:   `t0."status" <> 'cancelled'`,
		},
		{
			name:   "contains",
			filter: query.FilterItem{Dimension: "customers.name", Operator: query.OpContains, Values: []string{"acme"}},
			want:   `t1."name" LIKE '%acme%'`,
		},
		{
			name:   "startsWith",
			filter: query.FilterItem{Dimension: "customers.name", Operator: query.OpStartsWith, Values: []string{"A"}},
			want:   `t1."name" LIKE 'A%'`,
		},
		{
			name:   "set ignores values",
			filter: query.FilterItem{Dimension: "orders.status", Operator: query.OpSet},
			want:   `t0."status" IS NOT NULL`,
		},
		{
			name:   "notSet",
			filter: query.FilterItem{Dimension: "orders.status", Operator: query.OpNotSet},
			want:   `t0."status" IS NULL`,
		},
		{
			name:   "inDateRange rewrites to half-open window",
			filter: query.FilterItem{Dimension: "orders.created_at", Operator: query.OpInDateRange, Values: []string{"2025-03-01", "2025-03-31"}},
			want:   `t0."created_at" >= '2025-03-01' AND t0."created_at" < '2025-04-01'`,
		},
		{
			name:   "notInDateRange negates the window",
			filter: query.FilterItem{Dimension: "orders.created_at", Operator: query.OpNotInDateRange, Values: []string{"2025-03-01", "2025-03-31"}},
			want:   `NOT (t0."created_at" >= '2025-03-01' AND t0."created_at" < '2025-04-01')`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compiled := translate(t, DialectPostgres, &query.Query{
				Measures:   []string{"orders.amount"},
				Dimensions: []string{"customers.name"},
				Filters:    []query.FilterItem{tt.filter},
			})
			assert.Contains(t, compiled.SQL, tt.want)
		})
	}
}

func TestTranslateSegments(t *testing.T) {
	compiled := translate(t, DialectPostgres, &query.Query{
		Measures: []string{"orders.amount"},
		Segments: []string{"orders.completed"},
	})

	assert.Contains(t, compiled.SQL, `WHERE (t0."status" = 'completed')`)
}

func TestTranslateUnknownSegment(t *testing.T) {
	tr, err := NewTranslator(fixtureModel(), DialectPostgres)
	require.NoError(t, err)

	_, err = tr.Translate(&query.Query{
		Measures: []string{"orders.amount"},
		Segments: []string{"orders.nonexistent"},
	})
	assert.ErrorIs(t, err, ErrUnknownSegment)
}

func TestTranslateOrderByQualifiedSpellings(t *testing.T) {
	// Every spelling of a projected member resolves to its output alias.
	for _, member := range []string{"orders.created_at", "public.orders.created_at", "orders__created_at_day"} {
		compiled := translate(t, DialectPostgres, &query.Query{
			Measures: []string{"orders.amount"},
			TimeDimensions: []query.TimeDimension{
				{Dimension: "orders.created_at", Granularity: query.GranDay},
			},
			Order: query.Order{{Member: member, Desc: true}},
		})
		assert.Contains(t, compiled.SQL, `ORDER BY "orders__created_at_day" DESC`, "member spelling %q", member)
	}
}

func TestTranslateMetricProjection(t *testing.T) {
	compiled := translate(t, DialectPostgres, &query.Query{
		Measures:   []string{"average_order_value"},
		Dimensions: []string{"customers.country"},
	})

	assert.Contains(t, compiled.SQL,
		`SUM(t0."amount") / COUNT(DISTINCT t0."id") AS "average_order_value"`)
	assert.Contains(t, compiled.SQL, `GROUP BY t1."country"`)
}

func TestTranslateLimitDefaults(t *testing.T) {
	limit := 10
	offset := 20

	compiled := translate(t, DialectPostgres, &query.Query{
		Dimensions: []string{"customers.name"},
		Limit:      &limit,
	})
	assert.Contains(t, compiled.SQL, "LIMIT 10")

	compiled = translate(t, DialectPostgres, &query.Query{
		Dimensions: []string{"customers.name"},
		Limit:      &limit,
		Offset:     &offset,
	})
	assert.Contains(t, compiled.SQL, "LIMIT 10 OFFSET 20")

	// Offset without limit pages to the end.
	compiled = translate(t, DialectPostgres, &query.Query{
		Dimensions: []string{"customers.name"},
		Offset:     &offset,
	})
	assert.Contains(t, compiled.SQL, "LIMIT 2147483647 OFFSET 20")
}

func TestTranslateTSQL(t *testing.T) {
	limit := 5
	compiled := translate(t, DialectTSQL, &query.Query{
		Measures: []string{"orders.amount"},
		TimeDimensions: []query.TimeDimension{
			{Dimension: "orders.created_at", Granularity: query.GranMonth},
		},
		Order: query.Order{{Member: "orders.created_at", Desc: false}},
		Limit: &limit,
	})

	assert.Contains(t, compiled.SQL,
		`DATEADD(MONTH, DATEDIFF(MONTH, 0, t0.[created_at]), 0) AS [orders__created_at_month]`)
	assert.Contains(t, compiled.SQL, `FROM [public].[orders] AS t0`)
	assert.Contains(t, compiled.SQL, `ORDER BY [orders__created_at_month] ASC`)
	assert.Contains(t, compiled.SQL, `OFFSET 0 ROWS FETCH NEXT 5 ROWS ONLY`)
}

func TestTranslateTSQLPagingWithoutOrderGetsStableOrder(t *testing.T) {
	limit := 5
	compiled := translate(t, DialectTSQL, &query.Query{
		Dimensions: []string{"customers.name"},
		Limit:      &limit,
	})
	assert.Contains(t, compiled.SQL, "ORDER BY 1 OFFSET 0 ROWS FETCH NEXT 5 ROWS ONLY")
}

func TestTranslateBigQueryTrunc(t *testing.T) {
	compiled := translate(t, DialectBigQuery, &query.Query{
		Measures: []string{"orders.amount"},
		TimeDimensions: []query.TimeDimension{
			{Dimension: "orders.created_at", Granularity: query.GranWeek},
		},
	})
	assert.Contains(t, compiled.SQL, "DATE_TRUNC(t0.`created_at`, WEEK)")
}

func TestTranslateAmbiguousBareMember(t *testing.T) {
	tr, err := NewTranslator(fixtureModel(), DialectPostgres)
	require.NoError(t, err)

	// "id" exists on all three tables.
	_, err = tr.Translate(&query.Query{Dimensions: []string{"id"}})
	assert.ErrorIs(t, err, ErrAmbiguousMember)

	var amb *AmbiguousMemberError
	require.ErrorAs(t, err, &amb)
	assert.Equal(t, []string{"orders", "customers", "regions"}, amb.Candidates)
}

func TestTranslateBareMemberResolvesUniqueOwner(t *testing.T) {
	compiled := translate(t, DialectPostgres, &query.Query{
		Dimensions: []string{"region_name"},
	})
	assert.Contains(t, compiled.SQL, `t0."region_name" AS "regions__region_name"`)
	assert.Equal(t, "regions", compiled.BaseTable)
}

func TestTranslateUnknownMember(t *testing.T) {
	tr, err := NewTranslator(fixtureModel(), DialectPostgres)
	require.NoError(t, err)

	_, err = tr.Translate(&query.Query{Dimensions: []string{"orders.no_such_column"}})
	assert.ErrorIs(t, err, ErrUnknownMember)
}

func TestTranslateRejectsNonTemporalTimeDimension(t *testing.T) {
	tr, err := NewTranslator(fixtureModel(), DialectPostgres)
	require.NoError(t, err)

	_, err = tr.Translate(&query.Query{
		TimeDimensions: []query.TimeDimension{{Dimension: "orders.status", Granularity: query.GranDay}},
	})
	assert.ErrorIs(t, err, ErrUnknownMember)
}

func TestTranslateEmptyQuery(t *testing.T) {
	tr, err := NewTranslator(fixtureModel(), DialectPostgres)
	require.NoError(t, err)

	_, err = tr.Translate(&query.Query{})
	assert.Error(t, err)
}

func TestNewTranslatorRejectsUnknownDialect(t *testing.T) {
	_, err := NewTranslator(fixtureModel(), Dialect("oracle"))
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func TestTranslateCatalogQualifiedTables(t *testing.T) {
	m := fixtureModel()
	m.Tables["orders"].Catalog = "org_acme__src_prod"

	tr, err := NewTranslator(m, DialectTrino)
	require.NoError(t, err)
	compiled, err := tr.Translate(&query.Query{Measures: []string{"orders.amount"}})
	require.NoError(t, err)

	assert.Contains(t, compiled.SQL, `FROM "org_acme__src_prod"."public"."orders" AS t0`)
}
