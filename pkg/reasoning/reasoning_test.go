package reasoning

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/planner"
)

func newController() *Controller {
	return New(slog.New(slog.DiscardHandler))
}

func analystPlan() *planner.Plan {
	return &planner.Plan{Route: planner.RouteSimpleAnalyst}
}

func baseInput(a *agent.PlanExecutionArtifacts) Input {
	return Input{
		Iteration:     0,
		MaxIterations: 3,
		Question:      "how many orders did store Delhi Central take last month?",
		Plan:          analystPlan(),
		Artifacts:     a,
	}
}

func TestStopOnClarifyingQuestion(t *testing.T) {
	d := newController().Decide(baseInput(&agent.PlanExecutionArtifacts{
		ClarifyingQuestion: "which time period?",
	}))
	assert.False(t, d.ContinuePlanning)
}

func TestNeverContinuesPastIterationBudget(t *testing.T) {
	in := baseInput(&agent.PlanExecutionArtifacts{}) // empty: would retry
	in.Iteration = 2
	in.MaxIterations = 3
	d := newController().Decide(in)
	assert.False(t, d.ContinuePlanning)
	assert.Contains(t, d.Rationale, "budget exhausted")
}

func TestStopOnRepeatedAnalystError(t *testing.T) {
	a := &agent.PlanExecutionArtifacts{AnalystResult: &agent.AnalystQueryResponse{
		Error: "relation  \"orders\"   does not exist",
	}}
	in := baseInput(a)
	in.Context.Reasoning.LastAnalystError = `relation "orders" does not exist`
	d := newController().Decide(in)
	assert.False(t, d.ContinuePlanning)
	assert.Contains(t, d.Rationale, "repeated analyst error")
}

func TestAnalystErrorFlipsRoute(t *testing.T) {
	a := &agent.PlanExecutionArtifacts{AnalystResult: &agent.AnalystQueryResponse{
		Error: `relation "orders" does not exist`,
	}}
	d := newController().Decide(baseInput(a))
	require.True(t, d.ContinuePlanning)
	require.NotNil(t, d.UpdatedContext)
	assert.Equal(t, planner.RouteWebSearch, d.UpdatedContext.Routing.ForceRoute)
	assert.Equal(t, planner.RouteSimpleAnalyst, d.UpdatedContext.Routing.PreviousRoute)
	assert.Equal(t, `relation "orders" does not exist`, d.UpdatedContext.Reasoning.RetryDueToError)
	assert.Equal(t, d.UpdatedContext.Reasoning.RetryDueToError, d.UpdatedContext.Reasoning.LastAnalystError)
}

func TestNoRowsTriggersEntityResolution(t *testing.T) {
	a := &agent.PlanExecutionArtifacts{
		AnalystResult: &agent.AnalystQueryResponse{
			Result: &agent.QueryResult{Columns: []string{"n"}, Rows: [][]any{}},
		},
	}
	d := newController().Decide(baseInput(a))
	require.True(t, d.ContinuePlanning)
	er := d.UpdatedContext.Reasoning.EntityResolution
	require.NotNil(t, er)
	assert.Equal(t, "store", er.EntityType)
	assert.Equal(t, "Delhi Central", er.EntityPhrase)
	assert.Equal(t, "List all stores", er.ProbeQuestion)
	assert.Equal(t, 1, er.Attempts)
}

func TestEntityResolutionAttemptBudget(t *testing.T) {
	a := &agent.PlanExecutionArtifacts{
		AnalystResult: &agent.AnalystQueryResponse{
			Result: &agent.QueryResult{Columns: []string{"n"}},
		},
	}
	in := baseInput(a)
	in.Context.Reasoning.EntityResolution = &planner.EntityResolution{Attempts: 1}
	d := newController().Decide(in)
	assert.False(t, d.ContinuePlanning)
}

func TestNoRowsWithoutEntityMentionStops(t *testing.T) {
	a := &agent.PlanExecutionArtifacts{
		AnalystResult: &agent.AnalystQueryResponse{
			Result: &agent.QueryResult{Columns: []string{"n"}},
		},
	}
	in := baseInput(a)
	in.Question = "how many orders came in last month?"
	d := newController().Decide(in)
	assert.False(t, d.ContinuePlanning)
}

func TestEmptyArtifactsRetriesFlipped(t *testing.T) {
	in := baseInput(&agent.PlanExecutionArtifacts{})
	in.Plan = &planner.Plan{Route: planner.RouteWebSearch}
	d := newController().Decide(in)
	require.True(t, d.ContinuePlanning)
	assert.Equal(t, planner.RouteSimpleAnalyst, d.UpdatedContext.Routing.ForceRoute)
	assert.True(t, d.UpdatedContext.Reasoning.RetryDueToEmpty)
}

func TestWebSourcesEscalateToDeepResearch(t *testing.T) {
	a := &agent.PlanExecutionArtifacts{
		WebSearchResult: &agent.WebSearchResult{
			Query: "q",
			Sources: []agent.WebSource{
				{Title: "One", URL: "https://a.example/1", Snippet: "s1"},
				{Title: "Two", URL: "https://b.example/2", Snippet: "s2"},
			},
		},
	}
	in := baseInput(a)
	in.Plan = &planner.Plan{Route: planner.RouteWebSearch}
	d := newController().Decide(in)
	require.True(t, d.ContinuePlanning)
	assert.Equal(t, planner.RouteDeepResearch, d.UpdatedContext.Routing.ForceRoute)
	docs := d.UpdatedContext.Reasoning.Documents
	require.Len(t, docs, 2)
	assert.Equal(t, "web-1", docs[0].ID)
	assert.Equal(t, "https://a.example/1", docs[0].URL)
}

func TestUnsourcedResearchFallsBackToWebSearch(t *testing.T) {
	a := &agent.PlanExecutionArtifacts{
		ResearchResult: &agent.ResearchResult{Synthesis: "There were no documents to analyze."},
	}
	in := baseInput(a)
	in.Plan = &planner.Plan{Route: planner.RouteDeepResearch}
	d := newController().Decide(in)
	require.True(t, d.ContinuePlanning)
	assert.Equal(t, planner.RouteWebSearch, d.UpdatedContext.Routing.ForceRoute)
	assert.True(t, d.UpdatedContext.Reasoning.RetryDueToLowSources)
}

func TestCompleteArtifactsStop(t *testing.T) {
	a := &agent.PlanExecutionArtifacts{
		AnalystResult: &agent.AnalystQueryResponse{
			Result: &agent.QueryResult{Columns: []string{"n"}, Rows: [][]any{{1}}, RowCount: 1},
		},
		DataPayload: &agent.QueryResult{RowCount: 1},
	}
	d := newController().Decide(baseInput(a))
	assert.False(t, d.ContinuePlanning)
	assert.Equal(t, "artifacts complete", d.Rationale)
}

func TestResearchWithFindingsStops(t *testing.T) {
	a := &agent.PlanExecutionArtifacts{
		ResearchResult: &agent.ResearchResult{
			Synthesis: "Solid summary.",
			Findings:  []agent.Finding{{Statement: "s", EvidenceIDs: []string{"web-1"}}},
		},
		WebSearchResult: &agent.WebSearchResult{Sources: []agent.WebSource{{URL: "https://a.example/"}}},
	}
	in := baseInput(a)
	in.Plan = &planner.Plan{Route: planner.RouteDeepResearch}
	d := newController().Decide(in)
	assert.False(t, d.ContinuePlanning)
}

func TestNormalizeError(t *testing.T) {
	assert.Equal(t, "a b c", normalizeError("  a\n\tb   c "))
	long := strings.Repeat("x", 500)
	assert.Len(t, normalizeError(long), errorNormalizeLimit)
}
