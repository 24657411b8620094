package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/semantic"
	"github.com/quillhq/quill/pkg/sqlgen"
)

func salesModel() *semantic.Model {
	return &semantic.Model{
		Name:        "sales",
		Description: "Order and customer analytics.",
		Tags:        []string{"revenue"},
		TableOrder:  []string{"orders", "customers"},
		Tables: map[string]*semantic.Table{
			"orders": {
				Schema: "public",
				Name:   "orders",
				Dimensions: []semantic.Dimension{
					{Name: "id", Type: "integer", PrimaryKey: true},
					{Name: "created_at", Type: "timestamp", Description: "order placement time"},
				},
				Measures: []semantic.Measure{
					{Name: "total", Type: "decimal", Aggregation: "sum", Expression: "amount_cents / 100.0"},
				},
				Filters: map[string]semantic.NamedFilter{
					"completed": {Condition: "orders.status = 'completed'"},
				},
			},
			"customers": {
				Schema:   "public",
				Name:     "customers",
				Synonyms: []string{"clients"},
				Dimensions: []semantic.Dimension{
					{Name: "name", Type: "string", Synonyms: []string{"customer name"}, Vectorized: true},
				},
			},
		},
		Relationships: []semantic.Relationship{
			{Name: "order_customer", FromTable: "orders", ToTable: "customers", Type: "many_to_one", JoinOn: "orders.customer_id = customers.id"},
		},
		Metrics: map[string]semantic.Metric{
			"aov": {Expression: "SUM(orders.total) / COUNT(DISTINCT orders.id)", Description: "average order value"},
		},
	}
}

func TestRenderModel(t *testing.T) {
	out := RenderModel(salesModel(), sqlgen.DialectPostgres)

	assert.Contains(t, out, "## Schema: sales")
	assert.Contains(t, out, `### Table orders ("public"."orders")`)
	assert.Contains(t, out, "id (integer) [primary key]")
	assert.Contains(t, out, "total (sum decimal) = amount_cents / 100.0")
	assert.Contains(t, out, "orders.completed: orders.status = 'completed'")
	assert.Contains(t, out, "aka customer name")
	assert.Contains(t, out, "order_customer: orders many_to_one customers ON orders.customer_id = customers.id")
	assert.Contains(t, out, "aov = SUM(orders.total) / COUNT(DISTINCT orders.id) -- average order value")

	// Table order follows the model, not map iteration.
	require.Less(t, strings.Index(out, "### Table orders"), strings.Index(out, "### Table customers"))
}

func TestRenderModelDialectQuoting(t *testing.T) {
	out := RenderModel(salesModel(), sqlgen.DialectMySQL)
	assert.Contains(t, out, "### Table orders (`public`.`orders`)")
}

func TestAnalystPrompts(t *testing.T) {
	system := AnalystSystem("## Schema: sales")
	assert.Contains(t, system, "SELECT statements only")
	assert.Contains(t, system, "## Schema: sales")

	question := AnalystQuestion("top customers", map[string]string{
		"customers.name": "Acme Corp",
	}, 100, "previous answer covered Q3")
	assert.Contains(t, question, "Question: top customers")
	assert.Contains(t, question, "customers.name = Acme Corp")
	assert.Contains(t, question, "at most 100 rows")
	assert.Contains(t, question, "previous answer covered Q3")

	correction := SQLCorrection("## Schema: sales", "SELECT broken", `column "broken" does not exist`)
	assert.Contains(t, correction, "SELECT broken")
	assert.Contains(t, correction, "does not exist")
	assert.Contains(t, correction, "corrected query only")
}
