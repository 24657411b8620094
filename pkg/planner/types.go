// Package planner classifies a question into a route and produces an
// ordered plan of agent steps. Routing is deterministic: keyword-family
// signals feed a scoring table, context overrides adjust it, and ties break
// on a fixed priority order.
package planner

import (
	"github.com/quillhq/quill/pkg/agent"
)

// Route identifies a planning strategy.
type Route string

const (
	RouteSimpleAnalyst     Route = "SimpleAnalyst"
	RouteAnalystThenVisual Route = "AnalystThenVisual"
	RouteWebSearch         Route = "WebSearch"
	RouteDeepResearch      Route = "DeepResearch"
	RouteClarify           Route = "Clarify"
)

// routePriority breaks score ties; lower wins.
var routePriority = map[Route]int{
	RouteSimpleAnalyst:     0,
	RouteAnalystThenVisual: 1,
	RouteWebSearch:         2,
	RouteDeepResearch:      3,
}

// CostSensitivity biases the deep-research score.
type CostSensitivity string

const (
	CostSensitivityLow    CostSensitivity = "low"
	CostSensitivityNormal CostSensitivity = "normal"
	CostSensitivityHigh   CostSensitivity = "high"
)

// PlanningConstraints bound what the planner may emit.
type PlanningConstraints struct {
	MaxSteps                int             `json:"max_steps"`
	PreferLowLatency        bool            `json:"prefer_low_latency"`
	RequireVizWhenChartable bool            `json:"require_viz_when_chartable"`
	AllowSQLAnalyst         bool            `json:"allow_sql_analyst"`
	AllowWebSearch          bool            `json:"allow_web_search"`
	AllowDeepResearch       bool            `json:"allow_deep_research"`
	TimeboxSeconds          int             `json:"timebox_seconds,omitempty"`
	CostSensitivity         CostSensitivity `json:"cost_sensitivity,omitempty"`
}

// DefaultConstraints permit every route with a four-step budget.
func DefaultConstraints() PlanningConstraints {
	return PlanningConstraints{
		MaxSteps:          4,
		AllowSQLAnalyst:   true,
		AllowWebSearch:    true,
		AllowDeepResearch: true,
		CostSensitivity:   CostSensitivityNormal,
	}
}

// RoutingOverrides come from the reasoning controller between iterations.
type RoutingOverrides struct {
	ForceRoute          Route   `json:"force_route,omitempty"`
	PreferRoutes        []Route `json:"prefer_routes,omitempty"`
	AvoidRoutes         []Route `json:"avoid_routes,omitempty"`
	RequireWebSearch    bool    `json:"require_web_search,omitempty"`
	RequireVisual       bool    `json:"require_visual,omitempty"`
	RequireDeepResearch bool    `json:"require_deep_research,omitempty"`
	RequireSQL          bool    `json:"require_sql,omitempty"`
	PreviousRoute       Route   `json:"previous_route,omitempty"`
}

// EntityResolution tracks the probe-then-retry state machine for entity
// phrases the warehouse did not match.
type EntityResolution struct {
	EntityType       string `json:"entity_type"`
	EntityPhrase     string `json:"entity_phrase"`
	OriginalQuestion string `json:"original_question"`
	ProbeQuestion    string `json:"probe_question"`
	Attempts         int    `json:"attempts"`
}

// ClarificationState counts how often a question has already bounced back
// to the user for clarification. Once the budget is spent the clarify gate
// stands down and routing proceeds on best-effort assumptions.
type ClarificationState struct {
	Attempts int    `json:"attempts"`
	Reason   string `json:"reason,omitempty"`
}

// ReasoningContext carries reasoning-controller state into the next plan.
type ReasoningContext struct {
	EntityResolution     *EntityResolution   `json:"entity_resolution,omitempty"`
	Clarification        *ClarificationState `json:"clarification,omitempty"`
	RetryDueToError      string              `json:"retry_due_to_error,omitempty"`
	RetryDueToEmpty      bool                `json:"retry_due_to_empty,omitempty"`
	RetryDueToLowSources bool                `json:"retry_due_to_low_sources,omitempty"`
	Documents            []agent.Document    `json:"documents,omitempty"`
	LastAnalystError     string              `json:"last_analyst_error,omitempty"`
}

// PlanningContext is the mutable state threaded through supervisor
// iterations.
type PlanningContext struct {
	Routing   RoutingOverrides `json:"routing,omitempty"`
	Reasoning ReasoningContext `json:"reasoning,omitempty"`
}

// PlannerRequest is one planning invocation.
type PlannerRequest struct {
	Question    string              `json:"question"`
	Context     *PlanningContext    `json:"context,omitempty"`
	Constraints PlanningConstraints `json:"constraints"`
}

// AnalystInput is the payload of an Analyst step.
type AnalystInput struct {
	Question      string            `json:"question"`
	Filters       map[string]string `json:"filters,omitempty"`
	FollowUp      string            `json:"follow_up,omitempty"`
	SourceStepRef string            `json:"source_step_ref,omitempty"`
}

// VisualInput is the payload of a Visual step. RowsRef names the step whose
// data payload feeds the chart.
type VisualInput struct {
	RowsRef    string `json:"rows_ref"`
	Title      string `json:"title,omitempty"`
	Question   string `json:"question"`
	UserIntent string `json:"user_intent"`
}

// WebSearchInput is the payload of a WebSearch step.
type WebSearchInput struct {
	Query          string `json:"query"`
	MaxResults     int    `json:"max_results"`
	Region         string `json:"region,omitempty"`
	SafeSearch     bool   `json:"safe_search"`
	TimeboxSeconds int    `json:"timebox_seconds,omitempty"`
}

// DocRetrievalInput is the payload of a DocRetrieval (deep research) step.
type DocRetrievalInput struct {
	Question      string `json:"question"`
	SourceStepRef string `json:"source_step_ref,omitempty"`
}

// ClarifyInput is the payload of a Clarify step.
type ClarifyInput struct {
	Question string `json:"question"`
}

// StepInput is a tagged variant: exactly one field is set, matching the
// step's agent.
type StepInput struct {
	Analyst      *AnalystInput      `json:"analyst,omitempty"`
	Visual       *VisualInput       `json:"visual,omitempty"`
	WebSearch    *WebSearchInput    `json:"web_search,omitempty"`
	DocRetrieval *DocRetrievalInput `json:"doc_retrieval,omitempty"`
	Clarify      *ClarifyInput      `json:"clarify,omitempty"`
}

// PlanStep is one dispatch to an agent.
type PlanStep struct {
	ID             string    `json:"id"`
	Agent          string    `json:"agent"`
	Input          StepInput `json:"input"`
	ExpectedOutput string    `json:"expected_output,omitempty"`
}

// Plan is an ordered list of steps under one route. Step references
// (rows_ref, source_step_ref) always point at earlier steps.
type Plan struct {
	Route     Route      `json:"route"`
	Rationale string     `json:"rationale"`
	Steps     []PlanStep `json:"steps"`
}
