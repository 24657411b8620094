// Package reasoning implements the post-iteration decision controller: it
// inspects one iteration's artifacts and either stops the supervisor loop or
// emits context overrides that reshape the next plan.
package reasoning

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/planner"
)

// errorNormalizeLimit trims normalized analyst errors before comparison.
// Prefixes this short can collide across distinct errors; acceptable, since
// a false match only stops a retry loop early.
const errorNormalizeLimit = 240

// entityResolutionMaxAttempts bounds the probe-then-retry state machine.
const entityResolutionMaxAttempts = 1

// Decision is the controller's verdict for one iteration.
type Decision struct {
	ContinuePlanning bool                     `json:"continue_planning"`
	UpdatedContext   *planner.PlanningContext `json:"updated_context,omitempty"`
	Rationale        string                   `json:"rationale"`
}

// Input is everything the controller sees for one iteration.
type Input struct {
	Iteration     int // zero-based
	MaxIterations int
	Question      string
	Plan          *planner.Plan
	Artifacts     *agent.PlanExecutionArtifacts
	Context       planner.PlanningContext
}

// Controller applies the deterministic decision rules in order.
type Controller struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Controller {
	return &Controller{logger: logger.With("component", "reasoning")}
}

// Decide runs the rules. It never returns a continue decision unless
// another full iteration fits under MaxIterations.
func (c *Controller) Decide(in Input) Decision {
	d := c.decide(in)
	if d.ContinuePlanning && in.Iteration+1 >= in.MaxIterations {
		return Decision{Rationale: "iteration budget exhausted: " + d.Rationale}
	}
	if d.ContinuePlanning {
		c.logger.Debug("Continuing planning", "iteration", in.Iteration, "rationale", d.Rationale)
	}
	return d
}

func (c *Controller) decide(in Input) Decision {
	a := in.Artifacts
	if a == nil {
		a = &agent.PlanExecutionArtifacts{}
	}

	// Rule 1: a clarifying question goes back to the user; nothing to retry.
	if a.ClarifyingQuestion != "" {
		return Decision{Rationale: "clarifying question emitted"}
	}

	analystErr := ""
	if a.AnalystResult != nil {
		analystErr = normalizeError(a.AnalystResult.Error)
	}

	// Rule 2: the same analyst error twice means retries are not helping.
	if analystErr != "" && analystErr == in.Context.Reasoning.LastAnalystError {
		return Decision{Rationale: "repeated analyst error, stopping retry loop"}
	}

	// Rule 3: no rows on an analyst route with an entity mention: probe the
	// warehouse for valid entity names before giving up.
	if analystRoute(in.Plan) && a.AnalystResult != nil && analystErr == "" &&
		a.AnalystResult.Result != nil && a.AnalystResult.Result.RowCount == 0 {
		attempts := 0
		if er := in.Context.Reasoning.EntityResolution; er != nil {
			attempts = er.Attempts
		}
		if er, ok := planner.DetectEntityMention(in.Question); ok && attempts < entityResolutionMaxAttempts {
			// The probe retries the same analyst route, so no previous-route
			// penalty here.
			er.Attempts = attempts + 1
			next := in.Context
			next.Reasoning.EntityResolution = er
			return Decision{
				ContinuePlanning: true,
				UpdatedContext:   &next,
				Rationale: fmt.Sprintf("no rows for %s %q, probing entity names",
					er.EntityType, er.EntityPhrase),
			}
		}
	}

	// Rule 4: analyst failed and nothing else answered; try the other
	// retrieval route.
	if analystErr != "" && a.WebSearchResult == nil && a.ResearchResult == nil {
		next := in.Context
		next.Routing.ForceRoute = flipRoute(in.Plan)
		next.Routing.PreviousRoute = in.Plan.Route
		next.Reasoning.RetryDueToError = analystErr
		next.Reasoning.LastAnalystError = analystErr
		return Decision{
			ContinuePlanning: true,
			UpdatedContext:   &next,
			Rationale:        "analyst error, retrying on " + string(next.Routing.ForceRoute),
		}
	}

	// Rule 5: the iteration produced nothing at all.
	if a.Empty() {
		next := in.Context
		next.Routing.ForceRoute = flipRoute(in.Plan)
		next.Routing.PreviousRoute = in.Plan.Route
		next.Reasoning.RetryDueToEmpty = true
		return Decision{
			ContinuePlanning: true,
			UpdatedContext:   &next,
			Rationale:        "empty artifacts, retrying on " + string(next.Routing.ForceRoute),
		}
	}

	// Rule 6: raw web sources without a synthesis deserve a research pass.
	if a.WebSearchResult != nil && len(a.WebSearchResult.Sources) > 0 && a.ResearchResult == nil {
		next := in.Context
		next.Routing.ForceRoute = planner.RouteDeepResearch
		next.Routing.PreviousRoute = in.Plan.Route
		next.Reasoning.Documents = promoteSources(a.WebSearchResult.Sources)
		return Decision{
			ContinuePlanning: true,
			UpdatedContext:   &next,
			Rationale:        "web sources found, escalating to deep research for synthesis",
		}
	}

	// Rule 7: research that found nothing needs fresh sources.
	if a.ResearchResult != nil && researchUnsourced(a.ResearchResult) {
		next := in.Context
		next.Routing.ForceRoute = planner.RouteWebSearch
		next.Routing.PreviousRoute = in.Plan.Route
		next.Reasoning.RetryDueToLowSources = true
		return Decision{
			ContinuePlanning: true,
			UpdatedContext:   &next,
			Rationale:        "research produced no sourced findings, falling back to web search",
		}
	}

	// Rule 8.
	return Decision{Rationale: "artifacts complete"}
}

func analystRoute(p *planner.Plan) bool {
	if p == nil {
		return false
	}
	return p.Route == planner.RouteSimpleAnalyst || p.Route == planner.RouteAnalystThenVisual
}

// flipRoute swaps between the warehouse and web retrieval families.
func flipRoute(p *planner.Plan) planner.Route {
	if analystRoute(p) {
		return planner.RouteWebSearch
	}
	return planner.RouteSimpleAnalyst
}

func researchUnsourced(r *agent.ResearchResult) bool {
	return len(r.Findings) == 0 ||
		strings.Contains(strings.ToLower(r.Synthesis), "no documents")
}

func promoteSources(sources []agent.WebSource) []agent.Document {
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

// normalizeError collapses whitespace and trims so transient formatting
// differences do not defeat the repeated-error check.
func normalizeError(msg string) string {
	normalized := strings.Join(strings.Fields(msg), " ")
	if len(normalized) > errorNormalizeLimit {
		normalized = normalized[:errorNormalizeLimit]
	}
	return normalized
}
