package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/semantic"
)

func TestPlanJoinsReverseTraversal(t *testing.T) {
	// customers is only reachable from regions against the declared edge
	// direction.
	plan, err := PlanJoins(fixtureModel(), "regions", []string{"customers"})
	require.NoError(t, err)

	require.Len(t, plan.Steps, 1)
	assert.Equal(t, "customers", plan.Steps[0].Table)
	assert.True(t, plan.Steps[0].Reversed)
	assert.Equal(t, "t1", plan.Alias("customers"))
}

func TestPlanJoinsSharedPrefix(t *testing.T) {
	// Two targets sharing a path segment must not join the segment twice.
	plan, err := PlanJoins(fixtureModel(), "orders", []string{"customers", "regions"})
	require.NoError(t, err)

	require.Len(t, plan.Steps, 2)
	assert.Equal(t, "customers", plan.Steps[0].Table)
	assert.Equal(t, "regions", plan.Steps[1].Table)
}

func TestPlanJoinsUnreachable(t *testing.T) {
	m := fixtureModel()
	m.Tables["island"] = &semantic.Table{Schema: "public", Name: "island"}
	m.TableOrder = append(m.TableOrder, "island")

	_, err := PlanJoins(m, "orders", []string{"island"})
	assert.ErrorIs(t, err, ErrUnreachableTable)

	var unreachable *UnreachableTableError
	require.ErrorAs(t, err, &unreachable)
	assert.Equal(t, "orders", unreachable.BaseTable)
	assert.Equal(t, "island", unreachable.Target)
}

func TestPlanJoinsDeclarationOrderTieBreak(t *testing.T) {
	m := fixtureModel()
	// A second one-hop edge to regions competes with the two-hop path; the
	// shorter path wins regardless of declaration position.
	m.Relationships = append(m.Relationships, semantic.Relationship{
		Name:      "orders_regions_direct",
		FromTable: "orders",
		ToTable:   "regions",
		Type:      semantic.RelManyToOne,
		JoinOn:    "orders.region_id = regions.id",
	})

	plan, err := PlanJoins(m, "orders", []string{"regions"})
	require.NoError(t, err)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, "orders_regions_direct", m.Relationships[plan.Steps[0].RelIndex].Name)
}

func TestRewriteRefsLeavesUnplannedTablesAlone(t *testing.T) {
	plan, err := PlanJoins(fixtureModel(), "orders", nil)
	require.NoError(t, err)

	out := plan.RewriteRefs("orders.amount > customers.credit", DialectPostgres)
	assert.Equal(t, `t0."amount" > customers.credit`, out)
}
