package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceModel(name, tableKey string) *Model {
	return &Model{
		Name:       name,
		TableOrder: []string{tableKey},
		Tables: map[string]*Table{
			tableKey: {
				Name: tableKey,
				Dimensions: []Dimension{
					{Name: "id", Type: TypeInteger, PrimaryKey: true},
				},
				Measures: []Measure{
					{Name: "total", Type: TypeDecimal, Aggregation: AggSum},
				},
			},
		},
	}
}

func TestComposeMergesSources(t *testing.T) {
	unified, byTable, err := Compose([]Source{
		{ConnectorID: "wh-1", Model: sourceModel("sales", "orders")},
		{ConnectorID: "wh-2", Model: sourceModel("crm", "accounts")},
	}, ComposeOptions{
		Dialect: "trino",
		Joins: []Relationship{{
			Name:      "order_account",
			FromTable: "orders",
			ToTable:   "accounts",
			Type:      RelManyToOne,
			JoinOn:    "orders.id = accounts.id",
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "sales+crm", unified.Name)
	assert.Equal(t, []string{"orders", "accounts"}, unified.OrderedTableKeys())
	assert.Len(t, unified.Relationships, 1)
	assert.Equal(t, map[string]string{"orders": "wh-1", "accounts": "wh-2"}, byTable)
}

func TestComposeRejectsDuplicateTableKey(t *testing.T) {
	_, _, err := Compose([]Source{
		{ConnectorID: "wh-1", Model: sourceModel("a", "orders")},
		{ConnectorID: "wh-2", Model: sourceModel("b", "orders")},
	}, ComposeOptions{})
	require.ErrorIs(t, err, ErrDuplicateTable)
	assert.Contains(t, err.Error(), "orders")
}

func TestComposeRejectsMetricCollision(t *testing.T) {
	a := sourceModel("a", "orders")
	a.Metrics = map[string]Metric{"revenue": {Expression: "SUM(orders.total)"}}
	b := sourceModel("b", "accounts")
	b.Metrics = map[string]Metric{"revenue": {Expression: "SUM(accounts.total)"}}

	_, _, err := Compose([]Source{
		{ConnectorID: "wh-1", Model: a},
		{ConnectorID: "wh-2", Model: b},
	}, ComposeOptions{})
	require.ErrorIs(t, err, ErrInvalidModel)
	assert.Contains(t, err.Error(), "revenue")
}

func TestComposeLeavesSourcesUntouched(t *testing.T) {
	src := sourceModel("sales", "orders")
	_, _, err := Compose([]Source{{ConnectorID: "wh-1", Model: src}}, ComposeOptions{
		Metrics: map[string]Metric{"m": {Expression: "SUM(orders.total)"}},
	})
	require.NoError(t, err)
	assert.Empty(t, src.Metrics)
}

func TestTenantCatalogTokenFormat(t *testing.T) {
	// Lowercased, non-alphanumerics stripped, both halves truncated to 12.
	got := TenantCatalog("Org-1234567890ABC", "Conn_ABCDEFGHIJKLMN")
	assert.Equal(t, "org_org123456789__src_connabcdefgh", got)

	assert.Equal(t, "org_acme__src_wh1", TenantCatalog("acme", "wh-1"))
}

func TestApplyTenantAwareContext(t *testing.T) {
	m := &Model{
		Name:       "sales",
		TableOrder: []string{"orders", "legacy", "fixed"},
		Tables: map[string]*Table{
			"orders": {Name: "orders"},
			"legacy": {Name: "legacy", Schema: "warehouse.public"},
			"fixed":  {Name: "fixed", Catalog: "hive"},
		},
	}

	out := ApplyTenantAwareContext(m, "acme", "wh-exec", map[string]string{"orders": "wh-1"})

	assert.Equal(t, "org_acme__src_wh1", out.Tables["orders"].Catalog)

	// A dotted schema splits into catalog.schema and wins over assignment.
	assert.Equal(t, "warehouse", out.Tables["legacy"].Catalog)
	assert.Equal(t, "public", out.Tables["legacy"].Schema)

	// An explicit catalog is never overwritten.
	assert.Equal(t, "hive", out.Tables["fixed"].Catalog)

	// The input model stays read-only.
	assert.Empty(t, m.Tables["orders"].Catalog)
}

func TestApplyTenantAwareContextFallsBackToExecutionConnector(t *testing.T) {
	m := &Model{
		Name:       "sales",
		TableOrder: []string{"orders"},
		Tables:     map[string]*Table{"orders": {Name: "orders"}},
	}
	out := ApplyTenantAwareContext(m, "acme", "wh-exec", nil)
	assert.Equal(t, "org_acme__src_whexec", out.Tables["orders"].Catalog)
}
