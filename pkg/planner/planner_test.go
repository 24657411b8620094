package planner

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/agent"
)

func newPlanner() *Planner {
	return New(slog.New(slog.DiscardHandler))
}

func plan(t *testing.T, question string, ctx *PlanningContext, mutate ...func(*PlanningConstraints)) *Plan {
	t.Helper()
	c := DefaultConstraints()
	for _, m := range mutate {
		m(&c)
	}
	p, err := newPlanner().Plan(PlannerRequest{Question: question, Context: ctx, Constraints: c})
	require.NoError(t, err)
	return p
}

func TestRouteSimpleAnalyst(t *testing.T) {
	p := plan(t, "how many orders did Acme place last month?", nil)
	assert.Equal(t, RouteSimpleAnalyst, p.Route)
	require.Len(t, p.Steps, 1)
	assert.Equal(t, agent.AgentAnalyst, p.Steps[0].Agent)
	require.NotNil(t, p.Steps[0].Input.Analyst)
	assert.Equal(t, "how many orders did Acme place last month?", p.Steps[0].Input.Analyst.Question)
}

func TestRouteAnalystThenVisual(t *testing.T) {
	p := plan(t, "plot the revenue trend over time by month?", nil)
	assert.Equal(t, RouteAnalystThenVisual, p.Route)
	require.Len(t, p.Steps, 2)
	assert.Equal(t, agent.AgentVisual, p.Steps[1].Agent)
	require.NotNil(t, p.Steps[1].Input.Visual)
	assert.Equal(t, p.Steps[0].ID, p.Steps[1].Input.Visual.RowsRef)
	assert.Equal(t, "time_series_comparison", p.Steps[1].Input.Visual.UserIntent)
}

func TestHardVizRule(t *testing.T) {
	p := plan(t, "count orders per region for Acme this year?", nil,
		func(c *PlanningConstraints) { c.RequireVizWhenChartable = true })
	assert.Equal(t, RouteAnalystThenVisual, p.Route)

	// Budget of one step disables the hard rule.
	p = plan(t, "count orders per region for Acme this year?", nil,
		func(c *PlanningConstraints) { c.RequireVizWhenChartable = true; c.MaxSteps = 1 })
	assert.Equal(t, RouteSimpleAnalyst, p.Route)
}

func TestRouteWebSearch(t *testing.T) {
	p := plan(t, "what is the latest news about warehouse automation online?", nil)
	assert.Equal(t, RouteWebSearch, p.Route)
	require.Len(t, p.Steps, 1)
	ws := p.Steps[0].Input.WebSearch
	require.NotNil(t, ws)
	assert.Equal(t, defaultWebSearchResults, ws.MaxResults)
	assert.True(t, ws.SafeSearch)
}

func TestRouteDeepResearch(t *testing.T) {
	p := plan(t, "research the competitive landscape of discount grocery retail?", nil)
	assert.Equal(t, RouteDeepResearch, p.Route)
	require.NotEmpty(t, p.Steps)
	assert.Equal(t, agent.AgentDocRetrieval, p.Steps[0].Agent)
}

func TestClarifyGates(t *testing.T) {
	tests := []struct {
		name     string
		question string
	}{
		{"ambiguity phrase", "can you show me performance please"},
		{"too short", "sales update now"},
		{"performance without entity", "how is performance trending lately overall"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := plan(t, tt.question, nil)
			assert.Equal(t, RouteClarify, p.Route)
			require.Len(t, p.Steps, 1)
			require.NotNil(t, p.Steps[0].Input.Clarify)
			assert.NotEmpty(t, p.Steps[0].Input.Clarify.Question)
		})
	}
}

func TestClarifyBudgetExhaustedRoutesBestEffort(t *testing.T) {
	ctx := &PlanningContext{}

	first := plan(t, "Show me performance.", ctx)
	assert.Equal(t, RouteClarify, first.Route)
	require.NotNil(t, ctx.Reasoning.Clarification)
	assert.Equal(t, 1, ctx.Reasoning.Clarification.Attempts)

	// Same ambiguous question, unchanged context: the gate stands down and
	// the plan records the assumption instead of asking again.
	second := plan(t, "Show me performance.", ctx)
	assert.NotEqual(t, RouteClarify, second.Route)
	assert.Contains(t, second.Rationale, "best-effort assumptions")
	assert.Equal(t, 1, ctx.Reasoning.Clarification.Attempts)
}

func TestShortQuestionWithWebCueNotClarified(t *testing.T) {
	p := plan(t, "latest fed news", nil)
	assert.NotEqual(t, RouteClarify, p.Route)
}

func TestForceRouteBypassesGates(t *testing.T) {
	ctx := &PlanningContext{Routing: RoutingOverrides{ForceRoute: RouteWebSearch}}
	p := plan(t, "update me", ctx)
	assert.Equal(t, RouteWebSearch, p.Route)
}

func TestAvoidRouteRemovesCandidate(t *testing.T) {
	ctx := &PlanningContext{Routing: RoutingOverrides{AvoidRoutes: []Route{RouteSimpleAnalyst, RouteAnalystThenVisual}}}
	p := plan(t, "count orders for Acme by region this year?", ctx)
	assert.NotEqual(t, RouteSimpleAnalyst, p.Route)
	assert.NotEqual(t, RouteAnalystThenVisual, p.Route)
}

func TestPreferAndPreviousRoute(t *testing.T) {
	// Prefer tips a near-tie; previous-route penalty pushes away from a repeat.
	ctx := &PlanningContext{Routing: RoutingOverrides{
		PreferRoutes:  []Route{RouteAnalystThenVisual},
		PreviousRoute: RouteSimpleAnalyst,
	}}
	p := plan(t, "how many orders did Acme place last month?", ctx)
	assert.Equal(t, RouteAnalystThenVisual, p.Route)
}

func TestRequireDeepResearchOverride(t *testing.T) {
	ctx := &PlanningContext{Routing: RoutingOverrides{RequireDeepResearch: true, AvoidRoutes: []Route{RouteSimpleAnalyst, RouteAnalystThenVisual}}}
	p := plan(t, "summarize revenue drivers for Acme this quarter?", ctx)
	assert.Equal(t, RouteDeepResearch, p.Route)
}

func TestTimeboxExcludesDeepResearch(t *testing.T) {
	p := plan(t, "research the competitive landscape of grocery retail?", nil,
		func(c *PlanningConstraints) { c.TimeboxSeconds = 20 })
	assert.NotEqual(t, RouteDeepResearch, p.Route)
}

func TestEntityResolutionProbePlan(t *testing.T) {
	ctx := &PlanningContext{Reasoning: ReasoningContext{EntityResolution: &EntityResolution{
		EntityType:       "store",
		EntityPhrase:     "Delhi Central",
		OriginalQuestion: "how many orders did store Delhi Central take last month?",
		ProbeQuestion:    "List all stores",
		Attempts:         1,
	}}}
	p := plan(t, "how many orders did store Delhi Central take last month?", ctx)
	assert.Equal(t, RouteSimpleAnalyst, p.Route)
	require.Len(t, p.Steps, 2)

	probe := p.Steps[0].Input.Analyst
	require.NotNil(t, probe)
	assert.Equal(t, "List all stores", probe.Question)

	retry := p.Steps[1].Input.Analyst
	require.NotNil(t, retry)
	assert.Equal(t, p.Steps[0].ID, retry.SourceStepRef)
	assert.Contains(t, retry.FollowUp, "Delhi Central")
}

func TestDeepResearchWithWebPrecursor(t *testing.T) {
	ctx := &PlanningContext{Routing: RoutingOverrides{
		ForceRoute:       RouteDeepResearch,
		RequireWebSearch: true,
	}}
	p := plan(t, "summarize the market outlook for our top products", ctx)
	require.GreaterOrEqual(t, len(p.Steps), 2)
	assert.Equal(t, agent.AgentWebSearch, p.Steps[0].Agent)
	assert.Equal(t, agent.AgentDocRetrieval, p.Steps[1].Agent)
	assert.Equal(t, p.Steps[0].ID, p.Steps[1].Input.DocRetrieval.SourceStepRef)

	// With documents already in context the precursor is skipped.
	ctx.Reasoning.Documents = []agent.Document{{ID: "doc-1", Content: "c"}}
	p = plan(t, "summarize the market outlook for our top products", ctx)
	assert.Equal(t, agent.AgentDocRetrieval, p.Steps[0].Agent)
}

func TestDeepResearchValidatingAnalystAndViz(t *testing.T) {
	ctx := &PlanningContext{Routing: RoutingOverrides{ForceRoute: RouteDeepResearch}}
	p := plan(t, "research and chart the revenue trend over time for Acme", ctx,
		func(c *PlanningConstraints) { c.RequireVizWhenChartable = true })

	agents := make([]string, len(p.Steps))
	for i, s := range p.Steps {
		agents[i] = s.Agent
	}
	assert.Equal(t, []string{agent.AgentDocRetrieval, agent.AgentAnalyst, agent.AgentVisual}, agents)
	assert.LessOrEqual(t, len(p.Steps), 4)
}

func TestPlanDeterminism(t *testing.T) {
	for i := 0; i < 20; i++ {
		a := plan(t, "plot the top products by revenue this quarter?", nil)
		b := plan(t, "plot the top products by revenue this quarter?", nil)
		assert.Equal(t, a, b)
	}
}

func TestEmptyQuestion(t *testing.T) {
	_, err := newPlanner().Plan(PlannerRequest{Question: "  ", Constraints: DefaultConstraints()})
	assert.ErrorIs(t, err, ErrEmptyQuestion)
}

func TestInferUserIntent(t *testing.T) {
	tests := map[string]string{
		"revenue trend over time":         "time_series_comparison",
		"acme vs globex revenue":          "comparative_view",
		"top 10 products":                 "ranked_highlights",
		"distribution of order sizes":     "distribution_analysis",
		"something something interesting": "insight_visualization",
	}
	for q, want := range tests {
		assert.Equal(t, want, inferUserIntent(q), "question %q", q)
	}
}

func TestEntityAliasPhrase(t *testing.T) {
	alias, phrase, ok := entityAliasPhrase("how many orders did store Delhi Central take")
	require.True(t, ok)
	assert.Equal(t, "store", alias)
	assert.Equal(t, "Delhi Central", phrase)

	_, _, ok = entityAliasPhrase("how many orders last month")
	assert.False(t, ok)
}
