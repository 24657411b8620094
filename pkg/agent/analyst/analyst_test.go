package analyst

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/llm"
	"github.com/quillhq/quill/pkg/semantic"
	"github.com/quillhq/quill/pkg/sqlgen"
)

type scriptedCompleter struct {
	responses []string
	errs      []error
	requests  []llm.Request
}

func (s *scriptedCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	s.requests = append(s.requests, req)
	i := len(s.requests) - 1
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	if err != nil {
		return "", err
	}
	if i >= len(s.responses) {
		return "", errors.New("completer called more times than scripted")
	}
	return s.responses[i], nil
}

type fakeConnector struct {
	dialect  sqlgen.Dialect
	result   *agent.QueryResult
	errs     []error
	executed []string
	maxRows  []int
}

func (f *fakeConnector) Dialect() sqlgen.Dialect {
	if f.dialect == "" {
		return sqlgen.DialectPostgres
	}
	return f.dialect
}

func (f *fakeConnector) Execute(_ context.Context, sql string, maxRows int) (*agent.QueryResult, error) {
	f.executed = append(f.executed, sql)
	f.maxRows = append(f.maxRows, maxRows)
	if i := len(f.executed) - 1; i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if f.result != nil {
		return f.result, nil
	}
	return &agent.QueryResult{Columns: []string{"n"}, Rows: [][]any{{1}}, RowCount: 1, SourceSQL: sql}, nil
}

func (f *fakeConnector) RewriteExpression(expr string) string { return expr }

func testModel() *semantic.Model {
	return &semantic.Model{
		Name:       "sales",
		TableOrder: []string{"orders"},
		Tables: map[string]*semantic.Table{
			"orders": {
				Schema: "public",
				Name:   "orders",
				Dimensions: []semantic.Dimension{
					{Name: "id", Type: "integer", PrimaryKey: true},
				},
			},
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestQueryHappyPath(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		"```sql\nSELECT COUNT(*) AS n FROM \"public\".\"orders\"\n```",
	}}
	conn := &fakeConnector{dialect: sqlgen.DialectMySQL}
	a := New(completer, conn, testModel(), testLogger())

	resp := a.Query(context.Background(), agent.AnalystQueryRequest{Question: "how many orders?"})

	assert.Empty(t, resp.Error)
	assert.Equal(t, `SELECT COUNT(*) AS n FROM "public"."orders"`, resp.SQLCanonical)
	assert.Equal(t, "SELECT COUNT(*) AS n FROM `public`.`orders`", resp.SQLExecutable)
	assert.Equal(t, "mysql", resp.Dialect)
	assert.Equal(t, "sales", resp.ModelName)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 1, resp.Result.RowCount)

	require.Len(t, conn.maxRows, 1)
	assert.Equal(t, defaultRowLimit, conn.maxRows[0])

	// The prompt carries the rendered schema.
	require.Len(t, completer.requests, 1)
	assert.Contains(t, completer.requests[0].System, "### Table orders")
}

func TestQueryRequestLimitWins(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{"SELECT 1"}}
	conn := &fakeConnector{}
	a := New(completer, conn, testModel(), testLogger(), WithRowLimit(500))

	a.Query(context.Background(), agent.AnalystQueryRequest{Question: "q", Limit: 25})
	require.Len(t, conn.maxRows, 1)
	assert.Equal(t, 25, conn.maxRows[0])
}

func TestQueryRejectsNonSelect(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{"DELETE FROM orders"}}
	conn := &fakeConnector{}
	a := New(completer, conn, testModel(), testLogger())

	resp := a.Query(context.Background(), agent.AnalystQueryRequest{Question: "wipe orders"})

	assert.Contains(t, resp.Error, "generated SQL rejected")
	assert.Empty(t, resp.SQLExecutable)
	assert.Empty(t, conn.executed)
}

func TestQueryCompleterError(t *testing.T) {
	completer := &scriptedCompleter{errs: []error{errors.New("rate limited")}}
	a := New(completer, &fakeConnector{}, testModel(), testLogger())

	resp := a.Query(context.Background(), agent.AnalystQueryRequest{Question: "q"})
	assert.Contains(t, resp.Error, "sql generation failed")
	assert.Contains(t, resp.Error, "rate limited")
}

func TestQuerySelfCorrection(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		"SELECT brokn FROM \"public\".\"orders\"",
		"```sql\nSELECT COUNT(*) AS n FROM \"public\".\"orders\"\n```",
	}}
	conn := &fakeConnector{errs: []error{errors.New(`column "brokn" does not exist`)}}
	a := New(completer, conn, testModel(), testLogger())

	resp := a.Query(context.Background(), agent.AnalystQueryRequest{Question: "count orders"})

	assert.Empty(t, resp.Error)
	assert.Equal(t, `SELECT COUNT(*) AS n FROM "public"."orders"`, resp.SQLCanonical)
	require.NotNil(t, resp.Result)
	require.Len(t, conn.executed, 2)

	// The correction prompt includes the failed SQL and the warehouse error.
	require.Len(t, completer.requests, 2)
	assert.Contains(t, completer.requests[1].Messages[0].Content, "brokn")
	assert.Contains(t, completer.requests[1].Messages[0].Content, "does not exist")
}

func TestQueryCorrectionAlsoFails(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		"SELECT brokn FROM orders",
		"SELECT still_brokn FROM orders",
	}}
	conn := &fakeConnector{errs: []error{
		errors.New("first failure"),
		errors.New("second failure"),
	}}
	a := New(completer, conn, testModel(), testLogger())

	resp := a.Query(context.Background(), agent.AnalystQueryRequest{Question: "q"})

	// The original error is reported; the correction attempt stays internal.
	assert.Contains(t, resp.Error, "first failure")
	assert.Nil(t, resp.Result)
	assert.Len(t, conn.executed, 2)
}

type fixedEmbedder struct {
	byPhrase map[string][]float32
}

func (f *fixedEmbedder) Embed(_ context.Context, inputs []string) ([][]float32, error) {
	out := make([][]float32, len(inputs))
	for i, in := range inputs {
		if v, ok := f.byPhrase[in]; ok {
			out[i] = v
		} else {
			out[i] = []float32{0, 0, 1}
		}
	}
	return out, nil
}

func TestQueryEntityAugmentation(t *testing.T) {
	ctx := context.Background()
	vectors := agent.NewMemoryVectorDB()
	require.NoError(t, vectors.CreateIndex(ctx, 3))
	require.NoError(t, vectors.UpsertVectors(ctx,
		[][]float32{{1, 0, 0}},
		[]map[string]string{{"id": "acme", "value": "Acme Corp", "column": "customers.name"}}))

	embedder := &fixedEmbedder{byPhrase: map[string][]float32{"Acme": {1, 0, 0}}}
	completer := &scriptedCompleter{responses: []string{"SELECT 1"}}
	a := New(completer, &fakeConnector{}, testModel(), testLogger(),
		WithEntityAugmentation(embedder, vectors))

	a.Query(ctx, agent.AnalystQueryRequest{Question: "revenue for Acme last month"})

	require.Len(t, completer.requests, 1)
	content := completer.requests[0].Messages[0].Content
	// The match lands in the filter list and in the question text itself.
	assert.Contains(t, content, "customers.name = Acme Corp")
	assert.Contains(t, content, `revenue for Acme last month (resolved: customers.name is "Acme Corp")`)
}

func TestAugmentQuestion(t *testing.T) {
	assert.Equal(t, "q", augmentQuestion("q", nil))

	got := augmentQuestion("revenue for Acme", map[string]string{
		"stores.city":    "Delhi",
		"customers.name": "Acme Corp",
	})
	assert.Equal(t, `revenue for Acme (resolved: customers.name is "Acme Corp", stores.city is "Delhi")`, got)
}

func TestQueryAugmentationBelowThreshold(t *testing.T) {
	ctx := context.Background()
	vectors := agent.NewMemoryVectorDB()
	require.NoError(t, vectors.CreateIndex(ctx, 3))
	require.NoError(t, vectors.UpsertVectors(ctx,
		[][]float32{{1, 0, 0}},
		[]map[string]string{{"id": "acme", "value": "Acme Corp", "column": "customers.name"}}))

	// Orthogonal embedding: score 0 stays under the cutoff.
	embedder := &fixedEmbedder{byPhrase: map[string][]float32{"Acme": {0, 1, 0}}}
	completer := &scriptedCompleter{responses: []string{"SELECT 1"}}
	a := New(completer, &fakeConnector{}, testModel(), testLogger(),
		WithEntityAugmentation(embedder, vectors))

	a.Query(ctx, agent.AnalystQueryRequest{Question: "revenue for Acme"})
	assert.NotContains(t, completer.requests[0].Messages[0].Content, "customers.name")
}

func TestExtractPhrases(t *testing.T) {
	tests := []struct {
		question string
		want     []string
	}{
		{`revenue for "Acme Corp" last quarter`, []string{"Acme Corp", "Acme"}},
		{"orders from Globex in EMEA", []string{"Globex", "EMEA"}},
		{"Show Acme Corp revenue by region", []string{"Acme Corp", "region"}},
		{"how many orders last month", nil},
	}
	for _, tt := range tests {
		got := extractPhrases(tt.question)
		for _, want := range tt.want {
			assert.Contains(t, got, want, "question %q", tt.question)
		}
	}
}
