package planner

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
)

// ErrEmptyQuestion rejects planning over a blank question.
var ErrEmptyQuestion = errors.New("empty question")

const defaultWebSearchResults = 8

// clarificationMaxAttempts bounds how often the same question may bounce
// back for clarification before routing proceeds without an answer.
const clarificationMaxAttempts = 1

// bestEffortAssumption opens the rationale when the clarify gate stands down
// for a question that already consumed its clarification budget.
const bestEffortAssumption = "Proceeding with best-effort assumptions because clarification budget was exhausted"

// Planner is stateless; all per-request state arrives in the request.
type Planner struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Planner {
	return &Planner{logger: logger.With("component", "planner")}
}

// Plan routes the question and constructs the step list. Identical inputs
// always produce identical plans.
func (p *Planner) Plan(req PlannerRequest) (*Plan, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}
	ctx := req.Context
	if ctx == nil {
		ctx = &PlanningContext{}
	}

	sig := extractSignals(question)

	route, rationale := p.route(question, sig, req.Constraints, ctx)
	plan := &Plan{Route: route, Rationale: rationale}
	plan.Steps = p.buildSteps(route, question, sig, req.Constraints, ctx)

	p.logger.Debug("Plan constructed",
		"route", route, "steps", len(plan.Steps), "rationale", rationale)
	return plan, nil
}

func (p *Planner) route(question string, sig signals, c PlanningConstraints, ctx *PlanningContext) (Route, string) {
	// A forced route overrides every gate: the reasoning controller uses it
	// to steer retries.
	if f := ctx.Routing.ForceRoute; f != "" {
		return f, fmt.Sprintf("route forced to %s by reasoning context", f)
	}

	if reason, clarify := clarifyReason(sig); clarify {
		st := ctx.Reasoning.Clarification
		if st == nil {
			st = &ClarificationState{}
			ctx.Reasoning.Clarification = st
		}
		if st.Attempts < clarificationMaxAttempts {
			st.Attempts++
			st.Reason = reason
			return RouteClarify, reason
		}
		// Budget spent: the same ambiguity must not clarify twice.
		route, rationale := p.pick(sig, c, ctx)
		return route, bestEffortAssumption + "; " + rationale
	}

	return p.pick(sig, c, ctx)
}

// pick runs the hard visualization rule and the scoring table; the clarify
// gate has already had its say.
func (p *Planner) pick(sig signals, c PlanningConstraints, ctx *PlanningContext) (Route, string) {
	if c.RequireVizWhenChartable && sig.chartable && c.AllowSQLAnalyst && c.MaxSteps >= 2 {
		return RouteAnalystThenVisual, "chartable question with visualization required"
	}

	scores := p.score(sig, c, ctx)
	if len(scores) == 0 {
		return RouteClarify, "no permitted route for this question"
	}

	routes := make([]Route, 0, len(scores))
	for r := range scores {
		routes = append(routes, r)
	}
	sort.Slice(routes, func(i, j int) bool {
		a, b := routes[i], routes[j]
		if scores[a] != scores[b] {
			return scores[a] > scores[b]
		}
		return routePriority[a] < routePriority[b]
	})

	best := routes[0]
	return best, fmt.Sprintf("scored %s=%.2f (sql=%d visual=%d research=%d web=%d)",
		best, scores[best], sig.sql, sig.visual, sig.research, sig.web)
}

// clarifyReason applies the ambiguity gates.
func clarifyReason(sig signals) (string, bool) {
	switch {
	case sig.ambiguous:
		return "question matches a known ambiguity phrase", true
	case sig.tokenCount <= 4 && !sig.hasQuestion && sig.research == 0 && sig.web == 0:
		return "question too short to route", true
	case sig.mentionsPerf && !sig.hasEntity && sig.research == 0 && sig.web == 0:
		return "performance question without a concrete entity", true
	}
	return "", false
}

func (p *Planner) score(sig signals, c PlanningConstraints, ctx *PlanningContext) map[Route]float64 {
	scores := map[Route]float64{}

	if c.AllowSQLAnalyst {
		s := 3*float64(min(sig.sql, 1)) + boolScore(sig.hasEntity, 1) +
			boolScore(sig.hasTime, 1) + boolScore(sig.chartable, 0.5) -
			1.5*float64(min(sig.research, 1))
		scores[RouteSimpleAnalyst] = s
		if c.MaxSteps >= 2 {
			scores[RouteAnalystThenVisual] = s + 2*boolScore(sig.chartable, 1) + 1.5*float64(min(sig.visual, 1))
		}
	}

	if c.AllowWebSearch && (sig.web > 0 || ctx.Routing.RequireWebSearch) {
		scores[RouteWebSearch] = 3 + float64(min(sig.research, 1)) -
			2*float64(min(sig.sql, 1)) + boolScore(c.PreferLowLatency, 0.5)
	}

	// Tight timeboxes exclude deep research entirely.
	if c.AllowDeepResearch && !(c.TimeboxSeconds > 0 && c.TimeboxSeconds < 60) {
		var s float64
		switch {
		case sig.research > 0:
			s = 3.5
		case sig.web > 0:
			s = 1.2
		default:
			s = -1.25
		}
		if sig.sql == 0 {
			s++
		}
		if sig.sql > 0 && (sig.research > 0 || sig.web > 0) {
			s += 0.5 // mixed retrieval signals
		}
		if c.PreferLowLatency {
			s -= 2
		}
		switch c.CostSensitivity {
		case CostSensitivityLow:
			s++
		case CostSensitivityHigh:
			s--
		}
		scores[RouteDeepResearch] = s
	}

	applyOverrides(scores, ctx.Routing)
	return scores
}

func applyOverrides(scores map[Route]float64, o RoutingOverrides) {
	for _, r := range o.AvoidRoutes {
		delete(scores, r)
	}
	for _, r := range o.PreferRoutes {
		if _, ok := scores[r]; ok {
			scores[r] += 1.5
		}
	}
	bump := func(r Route, by float64) {
		if _, ok := scores[r]; ok {
			scores[r] += by
		}
	}
	if o.RequireSQL {
		bump(RouteSimpleAnalyst, 2.0)
		bump(RouteAnalystThenVisual, 2.0)
	}
	if o.RequireVisual {
		bump(RouteAnalystThenVisual, 2.0)
	}
	if o.RequireWebSearch {
		bump(RouteWebSearch, 2.5)
	}
	if o.RequireDeepResearch {
		bump(RouteDeepResearch, 2.5)
	}
	if o.PreviousRoute != "" {
		bump(o.PreviousRoute, -1)
	}
	// Guard against accidental -Inf leaking in from arithmetic.
	for r, s := range scores {
		if math.IsInf(s, -1) {
			delete(scores, r)
		}
	}
}

func boolScore(b bool, v float64) float64 {
	if b {
		return v
	}
	return 0
}
