package planner

import (
	"fmt"
	"strings"

	"github.com/quillhq/quill/pkg/agent"
)

func stepID(n int) string { return fmt.Sprintf("step-%d", n) }

func (p *Planner) buildSteps(route Route, question string, sig signals, c PlanningConstraints, ctx *PlanningContext) []PlanStep {
	switch route {
	case RouteSimpleAnalyst:
		return analystSteps(question, ctx)
	case RouteAnalystThenVisual:
		steps := analystSteps(question, ctx)
		dataStep := steps[len(steps)-1].ID
		steps = append(steps, PlanStep{
			ID:    stepID(len(steps) + 1),
			Agent: agent.AgentVisual,
			Input: StepInput{Visual: &VisualInput{
				RowsRef:    dataStep,
				Question:   question,
				UserIntent: inferUserIntent(question),
			}},
			ExpectedOutput: "chart specification",
		})
		return steps
	case RouteWebSearch:
		return []PlanStep{{
			ID:    stepID(1),
			Agent: agent.AgentWebSearch,
			Input: StepInput{WebSearch: &WebSearchInput{
				Query:          question,
				MaxResults:     defaultWebSearchResults,
				SafeSearch:     true,
				TimeboxSeconds: c.TimeboxSeconds,
			}},
			ExpectedOutput: "ranked web sources",
		}}
	case RouteDeepResearch:
		return deepResearchSteps(question, sig, c, ctx)
	case RouteClarify:
		return []PlanStep{{
			ID:             stepID(1),
			Agent:          agent.AgentClarify,
			Input:          StepInput{Clarify: &ClarifyInput{Question: clarifyQuestion(sig)}},
			ExpectedOutput: "clarified question from the user",
		}}
	}
	return nil
}

// analystSteps builds the one-step analyst plan, or the probe-then-retry
// pair when entity resolution is in flight.
func analystSteps(question string, ctx *PlanningContext) []PlanStep {
	er := ctx.Reasoning.EntityResolution
	if er == nil {
		return []PlanStep{{
			ID:             stepID(1),
			Agent:          agent.AgentAnalyst,
			Input:          StepInput{Analyst: &AnalystInput{Question: question}},
			ExpectedOutput: "tabular result",
		}}
	}

	original := er.OriginalQuestion
	if original == "" {
		original = question
	}
	return []PlanStep{
		{
			ID:             stepID(1),
			Agent:          agent.AgentAnalyst,
			Input:          StepInput{Analyst: &AnalystInput{Question: er.ProbeQuestion}},
			ExpectedOutput: fmt.Sprintf("list of known %s", pluralize(er.EntityType)),
		},
		{
			ID:    stepID(2),
			Agent: agent.AgentAnalyst,
			Input: StepInput{Analyst: &AnalystInput{
				Question: original,
				FollowUp: fmt.Sprintf(
					"Match %q against the %s names from the previous step and use the closest one.",
					er.EntityPhrase, er.EntityType),
				SourceStepRef: stepID(1),
			}},
			ExpectedOutput: "tabular result",
		},
	}
}

func deepResearchSteps(question string, sig signals, c PlanningConstraints, ctx *PlanningContext) []PlanStep {
	budget := c.MaxSteps
	if budget <= 0 || budget > 4 {
		budget = 4
	}

	var steps []PlanStep
	retrievalRef := ""
	if ctx.Routing.RequireWebSearch && len(ctx.Reasoning.Documents) == 0 && budget >= 2 {
		steps = append(steps, PlanStep{
			ID:    stepID(1),
			Agent: agent.AgentWebSearch,
			Input: StepInput{WebSearch: &WebSearchInput{
				Query:          question,
				MaxResults:     defaultWebSearchResults,
				SafeSearch:     true,
				TimeboxSeconds: c.TimeboxSeconds,
			}},
			ExpectedOutput: "seed sources for research",
		})
		retrievalRef = stepID(1)
	}

	steps = append(steps, PlanStep{
		ID:    stepID(len(steps) + 1),
		Agent: agent.AgentDocRetrieval,
		Input: StepInput{DocRetrieval: &DocRetrievalInput{
			Question:      question,
			SourceStepRef: retrievalRef,
		}},
		ExpectedOutput: "research report with cited findings",
	})

	if sig.sql > 0 && len(steps) < budget {
		steps = append(steps, PlanStep{
			ID:    stepID(len(steps) + 1),
			Agent: agent.AgentAnalyst,
			Input: StepInput{Analyst: &AnalystInput{
				Question:      question,
				SourceStepRef: steps[len(steps)-1].ID,
			}},
			ExpectedOutput: "warehouse numbers validating the research",
		})
	}

	if sig.chartable && c.RequireVizWhenChartable && len(steps) < budget {
		steps = append(steps, PlanStep{
			ID:    stepID(len(steps) + 1),
			Agent: agent.AgentVisual,
			Input: StepInput{Visual: &VisualInput{
				RowsRef:    steps[len(steps)-1].ID,
				Question:   question,
				UserIntent: inferUserIntent(question),
			}},
			ExpectedOutput: "chart specification",
		})
	}
	return steps
}

// inferUserIntent maps question keywords to a visualization intent.
func inferUserIntent(question string) string {
	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "trend") || strings.Contains(q, "over time"):
		return "time_series_comparison"
	case strings.Contains(q, " vs ") || strings.Contains(q, "versus") || strings.Contains(q, "compare"):
		return "comparative_view"
	case strings.Contains(q, "top ") || strings.Contains(q, "rank"):
		return "ranked_highlights"
	case strings.Contains(q, "distribution") || strings.Contains(q, "histogram"):
		return "distribution_analysis"
	default:
		return "insight_visualization"
	}
}

// clarifyQuestion enumerates the slots the question leaves open.
func clarifyQuestion(sig signals) string {
	var missing []string
	if sig.sql == 0 {
		missing = append(missing, "which metric or measure you want")
	}
	if !sig.hasTime {
		missing = append(missing, "the time period to cover")
	}
	if !sig.hasEntity {
		missing = append(missing, "which entity (customer, product, region, ...) to focus on")
	}
	if len(missing) == 0 {
		return "Could you rephrase your question with a bit more detail about what you want to see?"
	}
	return "To answer precisely I need to know " + strings.Join(missing, ", and ") + "."
}
