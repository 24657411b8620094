// Package orchestrator implements the supervisor loop: plan, dispatch steps
// to agents, collect artifacts, and let the reasoning controller decide
// whether another iteration is worth it.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/agent/visual"
	"github.com/quillhq/quill/pkg/planner"
	"github.com/quillhq/quill/pkg/reasoning"
)

// ErrNoAgent indicates a plan step for an agent the supervisor was not
// wired with.
var ErrNoAgent = errors.New("agent not configured")

const defaultMaxIterations = 3

// AnalystAgent answers warehouse questions. Satisfied by *analyst.Agent.
type AnalystAgent interface {
	Query(ctx context.Context, req agent.AnalystQueryRequest) *agent.AnalystQueryResponse
}

// VisualAgent renders chart specs. Satisfied by *visual.Agent.
type VisualAgent interface {
	Render(ctx context.Context, req visual.Request) (*agent.Visualization, error)
}

// WebSearchAgent runs ranked web searches. Satisfied by *websearch.Agent.
type WebSearchAgent interface {
	Search(ctx context.Context, query string) (*agent.WebSearchResult, error)
}

// ResearchAgent produces cited research reports. Satisfied by
// *research.Agent.
type ResearchAgent interface {
	Research(ctx context.Context, question string, seed []agent.Document) (*agent.ResearchResult, error)
}

// Request is one orchestrated question.
type Request struct {
	Question    string
	Constraints planner.PlanningConstraints
	Context     *planner.PlanningContext
}

// Diagnostics records how the loop ran.
type Diagnostics struct {
	Iterations int             `json:"iterations"`
	Routes     []planner.Route `json:"routes"`
	Rationales []string        `json:"rationales"`
}

// Result is the supervisor's answer.
type Result struct {
	Result             *agent.QueryResult    `json:"result,omitempty"`
	Visualization      *agent.Visualization  `json:"visualization,omitempty"`
	Research           *agent.ResearchResult `json:"research,omitempty"`
	ClarifyingQuestion string                `json:"clarifying_question,omitempty"`
	Summary            string                `json:"summary"`
	Diagnostics        Diagnostics           `json:"diagnostics"`
	ToolCalls          []agent.ToolCall      `json:"tool_calls"`
}

// Supervisor owns one request at a time; instances are safe for concurrent
// Run calls because all per-request state lives on the stack.
type Supervisor struct {
	planner  *planner.Planner
	reasoner *reasoning.Controller
	analyst  AnalystAgent
	visual   VisualAgent
	search   WebSearchAgent
	research ResearchAgent
	logger   *slog.Logger

	maxIterations int
}

type Option func(*Supervisor)

func WithMaxIterations(n int) Option {
	return func(s *Supervisor) { s.maxIterations = n }
}

func WithVisualAgent(v VisualAgent) Option       { return func(s *Supervisor) { s.visual = v } }
func WithWebSearchAgent(w WebSearchAgent) Option { return func(s *Supervisor) { s.search = w } }
func WithResearchAgent(r ResearchAgent) Option   { return func(s *Supervisor) { s.research = r } }

func New(p *planner.Planner, r *reasoning.Controller, analystAgent AnalystAgent, logger *slog.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		planner:       p,
		reasoner:      r,
		analyst:       analystAgent,
		logger:        logger.With("component", "supervisor"),
		maxIterations: defaultMaxIterations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the plan/dispatch/reason loop for one question.
func (s *Supervisor) Run(ctx context.Context, req Request) (*Result, error) {
	planningCtx := req.Context
	if planningCtx == nil {
		planningCtx = &planner.PlanningContext{}
	}

	total := &agent.PlanExecutionArtifacts{}
	diag := Diagnostics{}

	for iteration := 0; iteration < s.maxIterations; iteration++ {
		plan, err := s.planner.Plan(planner.PlannerRequest{
			Question:    req.Question,
			Context:     planningCtx,
			Constraints: req.Constraints,
		})
		if err != nil {
			return nil, fmt.Errorf("planning iteration %d: %w", iteration, err)
		}
		diag.Iterations = iteration + 1
		diag.Routes = append(diag.Routes, plan.Route)

		artifacts, err := s.executePlan(ctx, plan, planningCtx)
		if err != nil {
			return nil, err
		}
		total.Merge(artifacts)

		decision := s.reasoner.Decide(reasoning.Input{
			Iteration:     iteration,
			MaxIterations: s.maxIterations,
			Question:      req.Question,
			Plan:          plan,
			Artifacts:     artifacts,
			Context:       *planningCtx,
		})
		diag.Rationales = append(diag.Rationales, decision.Rationale)
		if !decision.ContinuePlanning {
			break
		}
		planningCtx = decision.UpdatedContext
	}

	return s.assemble(total, diag), nil
}

// executePlan dispatches every step in order, stopping at a Clarify step.
func (s *Supervisor) executePlan(ctx context.Context, plan *planner.Plan, planningCtx *planner.PlanningContext) (*agent.PlanExecutionArtifacts, error) {
	artifacts := &agent.PlanExecutionArtifacts{}
	outputs := map[string]*agent.PlanExecutionArtifacts{}

	for _, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		stepArtifacts, call, err := s.dispatch(ctx, step, outputs, planningCtx)
		if err != nil {
			return nil, err
		}
		artifacts.ToolCalls = append(artifacts.ToolCalls, call)
		if stepArtifacts != nil {
			outputs[step.ID] = stepArtifacts
			merged := *stepArtifacts
			merged.ToolCalls = nil
			artifacts.Merge(&merged)
		}
		if step.Agent == agent.AgentClarify {
			break
		}
	}
	return artifacts, nil
}

// dispatch runs one step and records its tool call.
func (s *Supervisor) dispatch(ctx context.Context, step planner.PlanStep, outputs map[string]*agent.PlanExecutionArtifacts, planningCtx *planner.PlanningContext) (*agent.PlanExecutionArtifacts, agent.ToolCall, error) {
	call := agent.ToolCall{
		StepID:    step.ID,
		Agent:     step.Agent,
		StartedAt: time.Now(),
	}
	finish := func(a *agent.PlanExecutionArtifacts, err error) (*agent.PlanExecutionArtifacts, agent.ToolCall, error) {
		call.DurationMS = time.Since(call.StartedAt).Milliseconds()
		if err != nil {
			call.Error = err.Error()
		}
		return a, call, nil
	}

	switch {
	case step.Input.Analyst != nil:
		if s.analyst == nil {
			return nil, call, fmt.Errorf("%w: %s", ErrNoAgent, step.Agent)
		}
		in := step.Input.Analyst
		question := in.Question
		if toolCtx := distillToolContext(outputs[in.SourceStepRef]); toolCtx != "" {
			question = question + "\n\nContext from previous steps:\n" + toolCtx
		}
		if in.FollowUp != "" {
			question += "\n" + in.FollowUp
		}
		call.Arguments = map[string]any{"question": in.Question, "source_step_ref": in.SourceStepRef}

		resp := s.analyst.Query(ctx, agent.AnalystQueryRequest{
			Question: question,
			Filters:  in.Filters,
		})
		out := &agent.PlanExecutionArtifacts{AnalystResult: resp}
		if resp.Result != nil {
			out.DataPayload = resp.Result
		}
		if resp.Error != "" {
			call.Summary = "analyst error: " + resp.Error
		} else if resp.Result != nil {
			call.Summary = fmt.Sprintf("%d rows in %dms", resp.Result.RowCount, resp.ExecutionTimeMS)
		}
		return finish(out, nil)

	case step.Input.Visual != nil:
		if s.visual == nil {
			return nil, call, fmt.Errorf("%w: %s", ErrNoAgent, step.Agent)
		}
		in := step.Input.Visual
		call.Arguments = map[string]any{"rows_ref": in.RowsRef, "user_intent": in.UserIntent}

		data := resolveRows(outputs[in.RowsRef])
		if data == nil {
			return finish(nil, fmt.Errorf("rows_ref %q produced no data", in.RowsRef))
		}
		viz, err := s.visual.Render(ctx, visual.Request{
			Question:   in.Question,
			UserIntent: in.UserIntent,
			Data:       data,
		})
		if err != nil {
			return finish(nil, err)
		}
		call.Summary = viz.ChartType + " chart"
		return finish(&agent.PlanExecutionArtifacts{Visualization: viz}, nil)

	case step.Input.WebSearch != nil:
		if s.search == nil {
			return nil, call, fmt.Errorf("%w: %s", ErrNoAgent, step.Agent)
		}
		in := step.Input.WebSearch
		call.Arguments = map[string]any{"query": in.Query, "max_results": in.MaxResults}

		res, err := s.search.Search(ctx, in.Query)
		if err != nil {
			return finish(nil, err)
		}
		call.Summary = fmt.Sprintf("%d sources", len(res.Sources))
		return finish(&agent.PlanExecutionArtifacts{WebSearchResult: res}, nil)

	case step.Input.DocRetrieval != nil:
		if s.research == nil {
			return nil, call, fmt.Errorf("%w: %s", ErrNoAgent, step.Agent)
		}
		in := step.Input.DocRetrieval
		call.Arguments = map[string]any{"question": in.Question, "source_step_ref": in.SourceStepRef}

		seed := append([]agent.Document(nil), planningCtx.Reasoning.Documents...)
		if src := outputs[in.SourceStepRef]; src != nil && src.WebSearchResult != nil {
			seed = append(seed, promote(src.WebSearchResult.Sources)...)
		}
		res, err := s.research.Research(ctx, in.Question, seed)
		if err != nil {
			call.Summary = "research failed"
			return finish(nil, err)
		}
		call.Summary = fmt.Sprintf("%d findings over %d documents", len(res.Findings), len(res.Evidence))
		return finish(&agent.PlanExecutionArtifacts{ResearchResult: res}, nil)

	case step.Input.Clarify != nil:
		call.Arguments = map[string]any{"question": step.Input.Clarify.Question}
		call.Summary = "clarification requested"
		call.DurationMS = 0
		return &agent.PlanExecutionArtifacts{ClarifyingQuestion: step.Input.Clarify.Question}, call, nil
	}

	return nil, call, fmt.Errorf("%w: step %s has no input payload", ErrNoAgent, step.ID)
}

// resolveRows picks the tabular payload out of a referenced step's output:
// an analyst's data payload directly, or a research result projected to a
// findings table.
func resolveRows(out *agent.PlanExecutionArtifacts) *agent.QueryResult {
	if out == nil {
		return nil
	}
	if out.DataPayload != nil {
		return out.DataPayload
	}
	if out.ResearchResult != nil {
		rows := make([][]any, 0, len(out.ResearchResult.Findings))
		for _, f := range out.ResearchResult.Findings {
			rows = append(rows, []any{f.Statement, f.Confidence})
		}
		return &agent.QueryResult{
			Columns:  []string{"finding", "confidence"},
			Rows:     rows,
			RowCount: len(rows),
		}
	}
	return nil
}

func promote(sources []agent.WebSource) []agent.Document {
	docs := make([]agent.Document, 0, len(sources))
	for i, s := range sources {
		docs = append(docs, agent.Document{
			ID:      fmt.Sprintf("web-%d", i+1),
			Title:   s.Title,
			URL:     s.URL,
			Content: s.Snippet,
		})
	}
	return docs
}

// assemble folds accumulated artifacts into the response shape.
func (s *Supervisor) assemble(total *agent.PlanExecutionArtifacts, diag Diagnostics) *Result {
	res := &Result{
		Result:             total.DataPayload,
		Visualization:      total.Visualization,
		Research:           total.ResearchResult,
		ClarifyingQuestion: total.ClarifyingQuestion,
		Diagnostics:        diag,
		ToolCalls:          total.ToolCalls,
	}
	switch {
	case res.ClarifyingQuestion != "":
		res.Summary = res.ClarifyingQuestion
	case total.ResearchResult != nil && total.ResearchResult.Synthesis != "":
		res.Summary = total.ResearchResult.Synthesis
	case total.DataPayload != nil:
		res.Summary = fmt.Sprintf("%d rows returned", total.DataPayload.RowCount)
	case total.AnalystResult != nil && total.AnalystResult.Error != "":
		res.Summary = "query failed: " + total.AnalystResult.Error
	case total.WebSearchResult != nil:
		res.Summary = fmt.Sprintf("%d web sources found", len(total.WebSearchResult.Sources))
	default:
		res.Summary = "no results"
	}
	return res
}
