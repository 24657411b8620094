package orchestrator

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/agent/visual"
	"github.com/quillhq/quill/pkg/planner"
	"github.com/quillhq/quill/pkg/reasoning"
)

type fakeAnalyst struct {
	responses []*agent.AnalystQueryResponse
	requests  []agent.AnalystQueryRequest
}

func (f *fakeAnalyst) Query(_ context.Context, req agent.AnalystQueryRequest) *agent.AnalystQueryResponse {
	f.requests = append(f.requests, req)
	i := len(f.requests) - 1
	if i < len(f.responses) {
		return f.responses[i]
	}
	return &agent.AnalystQueryResponse{Error: "analyst called more times than scripted"}
}

type fakeVisual struct {
	viz  *agent.Visualization
	reqs []visual.Request
}

func (f *fakeVisual) Render(_ context.Context, req visual.Request) (*agent.Visualization, error) {
	f.reqs = append(f.reqs, req)
	return f.viz, nil
}

type fakeSearch struct {
	result  *agent.WebSearchResult
	err     error
	queries []string
}

func (f *fakeSearch) Search(_ context.Context, query string) (*agent.WebSearchResult, error) {
	f.queries = append(f.queries, query)
	return f.result, f.err
}

type fakeResearch struct {
	result *agent.ResearchResult
	err    error
	seeds  [][]agent.Document
}

func (f *fakeResearch) Research(_ context.Context, _ string, seed []agent.Document) (*agent.ResearchResult, error) {
	f.seeds = append(f.seeds, seed)
	return f.result, f.err
}

func rowsResponse(n int) *agent.AnalystQueryResponse {
	rows := make([][]any, n)
	for i := range rows {
		rows[i] = []any{i}
	}
	return &agent.AnalystQueryResponse{
		SQLCanonical:  "SELECT 1",
		SQLExecutable: "SELECT 1",
		Result:        &agent.QueryResult{Columns: []string{"n"}, Rows: rows, RowCount: n},
	}
}

func newSupervisor(a AnalystAgent, opts ...Option) *Supervisor {
	logger := slog.New(slog.DiscardHandler)
	return New(planner.New(logger), reasoning.New(logger), a, logger, opts...)
}

func TestRunSimpleAnalyst(t *testing.T) {
	analystAgent := &fakeAnalyst{responses: []*agent.AnalystQueryResponse{rowsResponse(3)}}
	s := newSupervisor(analystAgent)

	res, err := s.Run(context.Background(), Request{
		Question:    "how many orders did Acme place last month?",
		Constraints: planner.DefaultConstraints(),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Diagnostics.Iterations)
	assert.Equal(t, []planner.Route{planner.RouteSimpleAnalyst}, res.Diagnostics.Routes)
	require.NotNil(t, res.Result)
	assert.Equal(t, 3, res.Result.RowCount)
	assert.Equal(t, "3 rows returned", res.Summary)
	require.Len(t, res.ToolCalls, 1)
	assert.Equal(t, agent.AgentAnalyst, res.ToolCalls[0].Agent)
	assert.Equal(t, "step-1", res.ToolCalls[0].StepID)
}

func TestRunAnalystThenVisual(t *testing.T) {
	analystAgent := &fakeAnalyst{responses: []*agent.AnalystQueryResponse{rowsResponse(2)}}
	vis := &fakeVisual{viz: &agent.Visualization{ChartType: "line", XField: "n"}}
	s := newSupervisor(analystAgent, WithVisualAgent(vis))

	res, err := s.Run(context.Background(), Request{
		Question:    "plot the revenue trend over time by month?",
		Constraints: planner.DefaultConstraints(),
	})
	require.NoError(t, err)

	require.NotNil(t, res.Visualization)
	assert.Equal(t, "line", res.Visualization.ChartType)
	require.Len(t, vis.reqs, 1)
	assert.Equal(t, "time_series_comparison", vis.reqs[0].UserIntent)
	require.NotNil(t, vis.reqs[0].Data)
	assert.Equal(t, 2, vis.reqs[0].Data.RowCount)
	assert.Len(t, res.ToolCalls, 2)
}

func TestRunClarifyStopsImmediately(t *testing.T) {
	s := newSupervisor(&fakeAnalyst{})

	res, err := s.Run(context.Background(), Request{
		Question:    "update me",
		Constraints: planner.DefaultConstraints(),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ClarifyingQuestion)
	assert.Equal(t, res.ClarifyingQuestion, res.Summary)
	assert.Equal(t, 1, res.Diagnostics.Iterations)
	assert.Equal(t, []planner.Route{planner.RouteClarify}, res.Diagnostics.Routes)
}

func TestRunClarifiesOnceThenProceedsBestEffort(t *testing.T) {
	analystAgent := &fakeAnalyst{responses: []*agent.AnalystQueryResponse{rowsResponse(4)}}
	s := newSupervisor(analystAgent)
	planningCtx := &planner.PlanningContext{}

	first, err := s.Run(context.Background(), Request{
		Question:    "Show me performance.",
		Constraints: planner.DefaultConstraints(),
		Context:     planningCtx,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ClarifyingQuestion)

	// The user re-asks the same ambiguous question without clarifying. The
	// budget is spent, so the second run answers instead of asking again.
	second, err := s.Run(context.Background(), Request{
		Question:    "Show me performance.",
		Constraints: planner.DefaultConstraints(),
		Context:     planningCtx,
	})
	require.NoError(t, err)
	assert.Empty(t, second.ClarifyingQuestion)
	require.NotNil(t, second.Result)
	assert.Equal(t, 4, second.Result.RowCount)
	assert.NotContains(t, second.Diagnostics.Routes, planner.RouteClarify)
}

func TestRunEntityResolutionReplan(t *testing.T) {
	// Iteration 1: zero rows. Iteration 2: probe step then rewritten query.
	analystAgent := &fakeAnalyst{responses: []*agent.AnalystQueryResponse{
		rowsResponse(0),
		{Result: &agent.QueryResult{Columns: []string{"store"}, Rows: [][]any{{"Delhi Central"}}, RowCount: 1}},
		rowsResponse(5),
	}}
	s := newSupervisor(analystAgent)

	res, err := s.Run(context.Background(), Request{
		Question:    "how many orders did store Delhi Central take last month?",
		Constraints: planner.DefaultConstraints(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Diagnostics.Iterations)
	require.Len(t, analystAgent.requests, 3)
	assert.Equal(t, "List all stores", analystAgent.requests[1].Question)
	// The retry question carries the probe's sample values and the match
	// instruction.
	assert.Contains(t, analystAgent.requests[2].Question, "Delhi Central")
	assert.Contains(t, analystAgent.requests[2].Question, "sample values")
	require.NotNil(t, res.Result)
	assert.Equal(t, 5, res.Result.RowCount)
}

func TestRunWebSearchEscalatesToResearch(t *testing.T) {
	search := &fakeSearch{result: &agent.WebSearchResult{
		Query: "latest news",
		Sources: []agent.WebSource{
			{Title: "One", URL: "https://a.example/1", Snippet: "s1"},
		},
	}}
	research := &fakeResearch{result: &agent.ResearchResult{
		Synthesis: "Summarized.",
		Findings:  []agent.Finding{{Statement: "s", EvidenceIDs: []string{"web-1"}}},
	}}
	s := newSupervisor(&fakeAnalyst{}, WithWebSearchAgent(search), WithResearchAgent(research))

	res, err := s.Run(context.Background(), Request{
		Question:    "what is the latest news about warehouse automation online?",
		Constraints: planner.DefaultConstraints(),
	})
	require.NoError(t, err)

	// Iteration 1 searched; reasoning escalated to DeepResearch; iteration 2
	// researched over the promoted documents.
	assert.Equal(t, 2, res.Diagnostics.Iterations)
	assert.Equal(t, []planner.Route{planner.RouteWebSearch, planner.RouteDeepResearch}, res.Diagnostics.Routes)
	require.Len(t, research.seeds, 1)
	require.NotEmpty(t, research.seeds[0])
	assert.Equal(t, "https://a.example/1", research.seeds[0][0].URL)
	assert.Equal(t, "Summarized.", res.Summary)
}

func TestRunStopsOnRepeatedAnalystError(t *testing.T) {
	failed := &agent.AnalystQueryResponse{Error: `relation "orders" does not exist`}
	analystAgent := &fakeAnalyst{responses: []*agent.AnalystQueryResponse{failed, failed, failed}}
	search := &fakeSearch{result: &agent.WebSearchResult{Query: "q"}}
	s := newSupervisor(analystAgent, WithWebSearchAgent(search))

	res, err := s.Run(context.Background(), Request{
		Question:    "how many orders did Acme place last month?",
		Constraints: planner.DefaultConstraints(),
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Diagnostics.Iterations, 3)
	assert.Contains(t, res.Summary, "query failed")
}

func TestRunMissingAgentFails(t *testing.T) {
	s := newSupervisor(&fakeAnalyst{})

	_, err := s.Run(context.Background(), Request{
		Question:    "plot the revenue trend over time by month?",
		Constraints: planner.DefaultConstraints(),
	})
	assert.ErrorIs(t, err, ErrNoAgent)
}

func TestRunHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newSupervisor(&fakeAnalyst{responses: []*agent.AnalystQueryResponse{rowsResponse(1)}})

	_, err := s.Run(ctx, Request{
		Question:    "how many orders did Acme place last month?",
		Constraints: planner.DefaultConstraints(),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDistillToolContext(t *testing.T) {
	out := &agent.PlanExecutionArtifacts{
		ResearchResult: &agent.ResearchResult{
			Synthesis: "A long synthesis. " + string(make([]byte, 500)),
			Findings: []agent.Finding{
				{Statement: "f1"}, {Statement: "f2"}, {Statement: "f3"}, {Statement: "f4"},
			},
		},
		WebSearchResult: &agent.WebSearchResult{Sources: []agent.WebSource{
			{Title: "s1", URL: "https://a/1"}, {Title: "s2", URL: "https://a/2"},
			{Title: "s3", URL: "https://a/3"}, {Title: "s4", URL: "https://a/4"},
		}},
		DataPayload: &agent.QueryResult{
			Columns: []string{"store"},
			Rows:    [][]any{{"A"}, {"B"}, {"C"}, {"D"}, {"E"}, {"F"}},
		},
	}

	got := distillToolContext(out)
	assert.Contains(t, got, "Research synthesis: ")
	assert.Contains(t, got, "Finding: f3")
	assert.NotContains(t, got, "Finding: f4")
	assert.Contains(t, got, "Source: s3")
	assert.NotContains(t, got, "Source: s4")
	assert.Contains(t, got, "Column store sample values: A, B, C, D")
	assert.NotContains(t, got, "E")

	assert.Empty(t, distillToolContext(nil))
}
