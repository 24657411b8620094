package visual

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/llm"
)

type fixedCompleter struct {
	response string
	err      error
	request  llm.Request
}

func (f *fixedCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	f.request = req
	return f.response, f.err
}

func payload() *agent.QueryResult {
	return &agent.QueryResult{
		Columns:  []string{"month", "revenue"},
		Rows:     [][]any{{"2026-01", 1200}, {"2026-02", 1350}},
		RowCount: 2,
	}
}

func TestRender(t *testing.T) {
	completer := &fixedCompleter{response: "```json\n" +
		`{"chart_type":"line","title":"Monthly revenue","x_field":"month","y_fields":["revenue"],"insight":"Revenue is growing."}` +
		"\n```"}
	a := New(completer, slog.New(slog.DiscardHandler))

	viz, err := a.Render(context.Background(), Request{
		Question:   "revenue by month",
		UserIntent: "time_series_comparison",
		Data:       payload(),
	})
	require.NoError(t, err)
	assert.Equal(t, "line", viz.ChartType)
	assert.Equal(t, "month", viz.XField)
	assert.Equal(t, []string{"revenue"}, viz.YFields)
	assert.Equal(t, "Revenue is growing.", viz.Insight)

	// The prompt shows columns, intent, and sample rows.
	assert.Contains(t, completer.request.Messages[0].Content, "month, revenue")
	assert.Contains(t, completer.request.Messages[0].Content, "time_series_comparison")
	assert.Contains(t, completer.request.Messages[0].Content, "2026-01 | 1200")
}

func TestRenderUnknownFieldsFallBack(t *testing.T) {
	completer := &fixedCompleter{
		response: `{"chart_type":"bar","x_field":"quarter","y_fields":["revenue"]}`,
	}
	a := New(completer, slog.New(slog.DiscardHandler))

	viz, err := a.Render(context.Background(), Request{Question: "q", Data: payload()})
	require.NoError(t, err)
	assert.Equal(t, "table", viz.ChartType)
	assert.Empty(t, viz.XField)
	assert.Empty(t, viz.YFields)
}

func TestRenderUnknownChartType(t *testing.T) {
	completer := &fixedCompleter{
		response: `{"chart_type":"hologram","x_field":"month","y_fields":["revenue"]}`,
	}
	a := New(completer, slog.New(slog.DiscardHandler))

	viz, err := a.Render(context.Background(), Request{Question: "q", Data: payload()})
	require.NoError(t, err)
	assert.Equal(t, "table", viz.ChartType)
	assert.Equal(t, []string{"revenue"}, viz.YFields)
}

func TestRenderErrors(t *testing.T) {
	a := New(&fixedCompleter{response: "not json"}, slog.New(slog.DiscardHandler))
	_, err := a.Render(context.Background(), Request{Question: "q", Data: payload()})
	assert.ErrorContains(t, err, "not valid JSON")

	a = New(&fixedCompleter{err: errors.New("rate limited")}, slog.New(slog.DiscardHandler))
	_, err = a.Render(context.Background(), Request{Question: "q", Data: payload()})
	assert.ErrorContains(t, err, "rate limited")

	_, err = a.Render(context.Background(), Request{Question: "q"})
	assert.ErrorContains(t, err, "no data payload")
}
