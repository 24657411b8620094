// Package visual implements the visualization agent: it asks the LLM for a
// chart specification over an existing data payload.
package visual

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/llm"
	"github.com/quillhq/quill/pkg/transpile"
)

// sampleRows bounds how much of the payload is shown to the model; the
// column list plus a handful of rows is enough to pick axes.
const sampleRows = 5

var chartTypes = []string{"line", "bar", "pie", "scatter", "area", "table"}

// Request asks for a chart over a data payload.
type Request struct {
	Question   string
	UserIntent string
	Data       *agent.QueryResult
}

// Agent produces chart specs through a Completer.
type Agent struct {
	completer agent.Completer
	logger    *slog.Logger
}

func New(completer agent.Completer, logger *slog.Logger) *Agent {
	return &Agent{completer: completer, logger: logger.With("agent", agent.AgentVisual)}
}

// Render asks the model for a chart spec and validates it against the
// payload's columns. Invalid field references fall back to a tabular view
// rather than failing the step.
func (a *Agent) Render(ctx context.Context, req Request) (*agent.Visualization, error) {
	if req.Data == nil || len(req.Data.Columns) == 0 {
		return nil, fmt.Errorf("no data payload to visualize")
	}

	raw, err := a.completer.Complete(ctx, llm.Request{
		System:   systemPrompt,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: renderPayload(req)}},
	})
	if err != nil {
		return nil, fmt.Errorf("chart specification: %w", err)
	}

	var viz agent.Visualization
	if err := json.Unmarshal([]byte(transpile.StripFence(raw)), &viz); err != nil {
		return nil, fmt.Errorf("chart specification not valid JSON: %w", err)
	}

	a.sanitize(&viz, req.Data.Columns)
	return &viz, nil
}

// sanitize clamps the spec to known chart types and existing columns.
func (a *Agent) sanitize(viz *agent.Visualization, columns []string) {
	if !slices.Contains(chartTypes, viz.ChartType) {
		a.logger.Warn("Unknown chart type, falling back to table", "chart_type", viz.ChartType)
		viz.ChartType = "table"
	}
	if viz.XField != "" && !slices.Contains(columns, viz.XField) {
		a.logger.Warn("Chart x field not in payload, falling back to table", "x_field", viz.XField)
		viz.ChartType = "table"
		viz.XField = ""
		viz.YFields = nil
		return
	}
	kept := viz.YFields[:0]
	for _, y := range viz.YFields {
		if slices.Contains(columns, y) {
			kept = append(kept, y)
		} else {
			a.logger.Warn("Dropping unknown chart y field", "y_field", y)
		}
	}
	viz.YFields = kept
}

const systemPrompt = `You are a data visualization specialist. Given a question, an intent hint, and a query result, respond with a single JSON object describing the best chart:

{"chart_type": "line|bar|pie|scatter|area|table", "title": "...", "x_field": "<column>", "y_fields": ["<column>", ...], "insight": "<one sentence about what the chart shows>"}

Use only column names present in the result. Respond with JSON only.`

func renderPayload(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question: %s\n", req.Question)
	if req.UserIntent != "" {
		fmt.Fprintf(&b, "Intent: %s\n", req.UserIntent)
	}
	fmt.Fprintf(&b, "Columns: %s\n", strings.Join(req.Data.Columns, ", "))
	fmt.Fprintf(&b, "Rows: %d\n", req.Data.RowCount)

	n := len(req.Data.Rows)
	if n > sampleRows {
		n = sampleRows
	}
	if n > 0 {
		b.WriteString("Sample:\n")
		for _, row := range req.Data.Rows[:n] {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = fmt.Sprint(v)
			}
			fmt.Fprintf(&b, "  %s\n", strings.Join(cells, " | "))
		}
	}
	return b.String()
}
