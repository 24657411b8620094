package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeYAML = `
name: store
dialect: postgres
tables:
  orders:
    schema: public
    name: orders
    dimensions:
      - name: id
        type: integer
        primary_key: true
      - name: status
        type: string
      - name: created_at
        type: timestamp
      - name: customer_id
        type: integer
    measures:
      - name: amount
        type: decimal
        aggregation: sum
  customers:
    schema: public
    name: customers
    dimensions:
      - name: id
        type: integer
        primary_key: true
      - name: country
        type: string
relationships:
  - name: order_customer
    from_table: orders
    to_table: customers
    type: many_to_one
    join_on: orders.customer_id = customers.id
metrics:
  aov:
    expression: SUM(orders.amount) / COUNT(DISTINCT orders.id)
`

func TestParseModelPreservesTableOrder(t *testing.T) {
	m, err := ParseModel([]byte(storeYAML))
	require.NoError(t, err)

	// Declaration order, not map order: orders was declared first and stays
	// the base-table candidate.
	assert.Equal(t, []string{"orders", "customers"}, m.OrderedTableKeys())
	assert.Equal(t, "store", m.Name)
	assert.Len(t, m.Relationships, 1)
	assert.Contains(t, m.Metrics, "aov")
}

func TestParseModelRejectsUnknownDimensionType(t *testing.T) {
	bad := `
name: m
tables:
  t:
    name: t
    dimensions:
      - name: id
        type: uuid
`
	_, err := ParseModel([]byte(bad))
	assert.ErrorIs(t, err, ErrInvalidModel)
}

func TestValidateRejectsDuplicateMemberName(t *testing.T) {
	m := &Model{
		Name: "m",
		Tables: map[string]*Table{
			"t": {
				Name:       "t",
				Dimensions: []Dimension{{Name: "amount", Type: TypeDecimal}},
				Measures:   []Measure{{Name: "amount", Type: TypeDecimal, Aggregation: AggSum}},
			},
		},
	}
	err := Validate(m)
	require.ErrorIs(t, err, ErrInvalidModel)
	assert.Contains(t, err.Error(), "amount")
}

func TestValidateRejectsJoinOnForeignTable(t *testing.T) {
	m, err := ParseModel([]byte(storeYAML))
	require.NoError(t, err)

	m.Relationships[0].JoinOn = "orders.customer_id = shipments.id"
	err = Validate(m)
	require.ErrorIs(t, err, ErrInvalidModel)
	assert.Contains(t, err.Error(), "join_on")
}

func TestValidateRequiresPrimaryKeyOnOneSide(t *testing.T) {
	m, err := ParseModel([]byte(storeYAML))
	require.NoError(t, err)

	for i := range m.Tables["customers"].Dimensions {
		m.Tables["customers"].Dimensions[i].PrimaryKey = false
	}
	err = Validate(m)
	require.ErrorIs(t, err, ErrInvalidModel)
	assert.Contains(t, err.Error(), "primary_key")
}

func TestSerializeRoundTrip(t *testing.T) {
	m, err := ParseModel([]byte(storeYAML))
	require.NoError(t, err)

	out, err := Serialize(m)
	require.NoError(t, err)

	again, err := ParseModel(out)
	require.NoError(t, err)
	assert.Equal(t, m.Name, again.Name)
	// Marshalling sorts map keys, so table order is preserved as a set only.
	assert.ElementsMatch(t, m.OrderedTableKeys(), again.OrderedTableKeys())
	assert.Equal(t, m.Tables, again.Tables)
	assert.Equal(t, m.Relationships, again.Relationships)
	assert.Equal(t, m.Metrics, again.Metrics)
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := ParseModel([]byte(storeYAML))
	require.NoError(t, err)

	cp := m.Clone()
	cp.Tables["orders"].Catalog = "org_acme__src_wh"
	cp.Tables["orders"].Dimensions[0].Name = "renamed"

	assert.Empty(t, m.Tables["orders"].Catalog)
	assert.Equal(t, "id", m.Tables["orders"].Dimensions[0].Name)
}

func TestFindMemberReportsAllOwners(t *testing.T) {
	m, err := ParseModel([]byte(storeYAML))
	require.NoError(t, err)

	// "id" lives in both tables, in declaration order.
	assert.Equal(t, []string{"orders", "customers"}, m.FindMember("id"))
	assert.Equal(t, []string{"orders"}, m.FindMember("amount"))
	assert.Empty(t, m.FindMember("missing"))
}

func TestParseMemberRef(t *testing.T) {
	ref, err := ParseMemberRef("orders.status")
	require.NoError(t, err)
	assert.Equal(t, MemberRef{Table: "orders", Column: "status"}, ref)

	ref, err = ParseMemberRef("public.orders.status")
	require.NoError(t, err)
	assert.Equal(t, MemberRef{Schema: "public", Table: "orders", Column: "status"}, ref)

	_, err = ParseMemberRef("a.b.c.d")
	assert.Error(t, err)
}
