package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryValidate(t *testing.T) {
	limit := 10

	q := &Query{
		Measures:   []string{"orders.amount"},
		Dimensions: []string{"orders.status"},
		TimeDimensions: []TimeDimension{
			{Dimension: "orders.created_at", Granularity: GranMonth},
		},
		Filters: []FilterItem{
			{Dimension: "orders.status", Operator: OpEquals, Values: []string{"shipped"}},
			{Member: "orders.created_at", Operator: OpSet},
		},
		Limit: &limit,
	}
	assert.NoError(t, q.Validate())
}

func TestQueryValidateRejectsEmptySelection(t *testing.T) {
	err := (&Query{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selects no")
}

func TestQueryValidateRejectsBadGranularity(t *testing.T) {
	q := &Query{TimeDimensions: []TimeDimension{
		{Dimension: "orders.created_at", Granularity: "fortnight"},
	}}
	err := q.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fortnight")
}

func TestQueryValidateRejectsBadFilters(t *testing.T) {
	base := Query{Measures: []string{"orders.amount"}}

	q := base
	q.Filters = []FilterItem{{Operator: OpEquals, Values: []string{"x"}}}
	assert.ErrorContains(t, q.Validate(), "names no member")

	q = base
	q.Filters = []FilterItem{{Dimension: "orders.status", Operator: "matches", Values: []string{"x"}}}
	assert.ErrorContains(t, q.Validate(), "unknown operator")

	// Every operator except set/notSet needs values.
	q = base
	q.Filters = []FilterItem{{Dimension: "orders.status", Operator: OpEquals}}
	assert.ErrorContains(t, q.Validate(), "at least one value")
}

func TestFilterItemTargetAliases(t *testing.T) {
	assert.Equal(t, "a", (&FilterItem{Member: "a", Dimension: "b"}).Target())
	assert.Equal(t, "b", (&FilterItem{Dimension: "b"}).Target())
	assert.Equal(t, "c", (&FilterItem{Measure: "c"}).Target())
	assert.Equal(t, "d", (&FilterItem{TimeDimensionRef: "d"}).Target())

	assert.True(t, (&FilterItem{Measure: "c"}).IsMeasureFilter())
	assert.False(t, (&FilterItem{Dimension: "b"}).IsMeasureFilter())
}

func TestOrderUnmarshalObjectPreservesKeyOrder(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal(
		[]byte(`{"orders.amount": "desc", "orders.status": "asc", "orders.id": "desc"}`), &o))

	assert.Equal(t, Order{
		{Member: "orders.amount", Desc: true},
		{Member: "orders.status"},
		{Member: "orders.id", Desc: true},
	}, o)
}

func TestOrderUnmarshalArrayForms(t *testing.T) {
	var pairs Order
	require.NoError(t, json.Unmarshal(
		[]byte(`[["orders.amount","desc"],["orders.status","asc"]]`), &pairs))
	assert.Equal(t, Order{
		{Member: "orders.amount", Desc: true},
		{Member: "orders.status"},
	}, pairs)

	var objs Order
	require.NoError(t, json.Unmarshal(
		[]byte(`[{"orders.amount":"desc"},{"orders.status":"asc"}]`), &objs))
	assert.Equal(t, pairs, objs)

	var bad Order
	assert.Error(t, json.Unmarshal([]byte(`"orders.amount"`), &bad))
}

func TestOrderMarshalIsStable(t *testing.T) {
	o := Order{
		{Member: "orders.amount", Desc: true},
		{Member: "orders.status"},
	}
	out, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `[["orders.amount","desc"],["orders.status","asc"]]`, string(out))
}

func TestQueryJSONWireContract(t *testing.T) {
	raw := `{
		"measures": ["orders.amount"],
		"timeDimensions": [
			{"dimension": "orders.created_at", "granularity": "month", "dateRange": "last_3_months"}
		],
		"filters": [
			{"dimension": "orders.status", "operator": "notEquals", "values": ["cancelled"]}
		],
		"order": {"orders.created_at": "asc"},
		"limit": 500,
		"timezone": "UTC"
	}`

	var q Query
	require.NoError(t, json.Unmarshal([]byte(raw), &q))
	require.NoError(t, q.Validate())

	require.Len(t, q.TimeDimensions, 1)
	td := q.TimeDimensions[0]
	assert.Equal(t, GranMonth, td.Granularity)
	require.NotNil(t, td.DateRange)
	assert.Equal(t, RangeRelative, td.DateRange.Kind)
	assert.Equal(t, 3, td.DateRange.N)
	assert.Equal(t, GranMonth, td.DateRange.Unit)
	require.NotNil(t, q.Limit)
	assert.Equal(t, 500, *q.Limit)
}
