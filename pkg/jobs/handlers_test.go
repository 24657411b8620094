package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/events"
	"github.com/quillhq/quill/pkg/orchestrator"
	"github.com/quillhq/quill/pkg/queue"
	"github.com/quillhq/quill/pkg/semantic"
	"github.com/quillhq/quill/pkg/services"
	"github.com/quillhq/quill/pkg/sqlgen"
)

type emittedEvent struct {
	jobID     string
	eventType string
	index     int
	details   map[string]any
}

// fakeEmitter mimics the events table's unique key: a repeated
// (job, type, index) triple is dropped.
type fakeEmitter struct {
	events   []emittedEvent
	progress []int
	seen     map[string]bool
}

func (f *fakeEmitter) EmitAt(_ context.Context, jobID, eventType string, index int, details map[string]any) (bool, error) {
	key := fmt.Sprintf("%s|%s|%d", jobID, eventType, index)
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	if f.seen[key] {
		return false, nil
	}
	f.seen[key] = true
	f.events = append(f.events, emittedEvent{jobID: jobID, eventType: eventType, index: index, details: details})
	return true, nil
}

func (f *fakeEmitter) Progress(_ context.Context, _ string, progress int, _ string) error {
	f.progress = append(f.progress, progress)
	return nil
}

func (f *fakeEmitter) types() []string {
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.eventType
	}
	return out
}

type fakeRunner struct {
	result   *orchestrator.Result
	err      error
	requests []orchestrator.Request
}

func (f *fakeRunner) Run(_ context.Context, req orchestrator.Request) (*orchestrator.Result, error) {
	f.requests = append(f.requests, req)
	return f.result, f.err
}

type fakeBuilder struct {
	runner *fakeRunner
	err    error
	orgs   []string
}

func (f *fakeBuilder) ForModel(_ context.Context, orgID, _ string) (Runner, error) {
	f.orgs = append(f.orgs, orgID)
	if f.err != nil {
		return nil, f.err
	}
	return f.runner, nil
}

func discardLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func semanticQueryJob(payload map[string]any) *ent.Job {
	return &ent.Job{
		ID:             "job-1",
		OrganisationID: "org-1",
		JobType:        events.MessageTypeSemanticQuery,
		Payload:        payload,
	}
}

func TestSemanticQueryHandlerSuccess(t *testing.T) {
	runner := &fakeRunner{result: &orchestrator.Result{
		Summary: "3 rows returned",
		Result:  &agent.QueryResult{Columns: []string{"n"}, Rows: [][]any{{1}, {2}, {3}}, RowCount: 3},
	}}
	emitter := &fakeEmitter{}
	h := NewSemanticQueryHandler(&fakeBuilder{runner: runner}, emitter, discardLogger())

	result, err := h.Handle(context.Background(), semanticQueryJob(map[string]any{
		"question": "how many orders last month?",
		"model_id": "model-1",
	}))
	require.NoError(t, err)

	assert.Equal(t, "3 rows returned", result["summary"])
	assert.Contains(t, emitter.types(), events.EventTypeSemanticQueryStarted)
	assert.Contains(t, emitter.types(), events.EventTypeSemanticQueryCompleted)
	require.Len(t, runner.requests, 1)
	assert.Equal(t, "how many orders last month?", runner.requests[0].Question)
	assert.Equal(t, 4, runner.requests[0].Constraints.MaxSteps)
}

func TestSemanticQueryHandlerRedeliveryCollapsesLifecycleEvents(t *testing.T) {
	runner := &fakeRunner{result: &orchestrator.Result{Summary: "1 rows returned"}}
	emitter := &fakeEmitter{}
	h := NewSemanticQueryHandler(&fakeBuilder{runner: runner}, emitter, discardLogger())

	job := semanticQueryJob(map[string]any{"question": "q?", "model_id": "model-1"})
	job.Attempt = 1

	_, err := h.Handle(context.Background(), job)
	require.NoError(t, err)

	// A lease expiry hands the same attempt to another worker; the second
	// run's lifecycle events land on the same indices and collapse.
	_, err = h.Handle(context.Background(), job)
	require.NoError(t, err)

	counts := map[string]int{}
	for _, e := range emitter.events {
		counts[e.eventType]++
	}
	assert.Equal(t, 1, counts[events.EventTypeSemanticQueryStarted])
	assert.Equal(t, 1, counts[events.EventTypeSemanticQueryCompleted])
}

func TestSemanticQueryHandlerFailedEventPerAttempt(t *testing.T) {
	runner := &fakeRunner{err: errors.New("llm unavailable")}
	emitter := &fakeEmitter{}
	h := NewSemanticQueryHandler(&fakeBuilder{runner: runner}, emitter, discardLogger())

	job := semanticQueryJob(map[string]any{"question": "q?", "model_id": "model-1"})

	job.Attempt = 1
	_, err := h.Handle(context.Background(), job)
	require.Error(t, err)

	job.Attempt = 2
	_, err = h.Handle(context.Background(), job)
	require.Error(t, err)

	var failedIndices []int
	for _, e := range emitter.events {
		if e.eventType == events.EventTypeSemanticQueryFailed {
			failedIndices = append(failedIndices, e.index)
		}
	}
	assert.Equal(t, []int{0, 1}, failedIndices)
}

func TestSemanticQueryHandlerInvalidPayloadIsPermanent(t *testing.T) {
	h := NewSemanticQueryHandler(&fakeBuilder{}, &fakeEmitter{}, discardLogger())

	_, err := h.Handle(context.Background(), semanticQueryJob(map[string]any{"model_id": "model-1"}))
	require.Error(t, err)
	assert.True(t, queue.IsPermanent(err))

	_, err = h.Handle(context.Background(), semanticQueryJob(map[string]any{"question": "q"}))
	require.Error(t, err)
	assert.True(t, queue.IsPermanent(err))
}

func TestSemanticQueryHandlerUnknownModelIsPermanent(t *testing.T) {
	h := NewSemanticQueryHandler(&fakeBuilder{err: services.ErrNotFound}, &fakeEmitter{}, discardLogger())

	_, err := h.Handle(context.Background(), semanticQueryJob(map[string]any{
		"question": "q?", "model_id": "missing",
	}))
	require.Error(t, err)
	assert.True(t, queue.IsPermanent(err))
}

func TestSemanticQueryHandlerRunErrorRetries(t *testing.T) {
	runner := &fakeRunner{err: errors.New("llm unavailable")}
	emitter := &fakeEmitter{}
	h := NewSemanticQueryHandler(&fakeBuilder{runner: runner}, emitter, discardLogger())

	_, err := h.Handle(context.Background(), semanticQueryJob(map[string]any{
		"question": "q?", "model_id": "model-1",
	}))
	require.Error(t, err)
	assert.False(t, queue.IsPermanent(err))
	assert.Contains(t, emitter.types(), events.EventTypeSemanticQueryFailed)
}

type fakeResearcher struct {
	result *agent.ResearchResult
	err    error
}

func (f *fakeResearcher) Research(context.Context, string, []agent.Document) (*agent.ResearchResult, error) {
	return f.result, f.err
}

func TestDeepResearchHandler(t *testing.T) {
	r := &fakeResearcher{result: &agent.ResearchResult{
		Question:  "state of warehouse automation?",
		Synthesis: "Growing fast.",
		Findings:  []agent.Finding{{Statement: "s", EvidenceIDs: []string{"doc-1"}, Confidence: 0.8}},
		Evidence:  []agent.Document{{ID: "doc-1"}},
	}}
	h := NewDeepResearchHandler(r, &fakeEmitter{}, discardLogger())

	result, err := h.Handle(context.Background(), &ent.Job{
		ID: "job-2", JobType: events.MessageTypeDeepResearch,
		Payload: map[string]any{"question": "state of warehouse automation?"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Growing fast.", result["synthesis"])
	assert.Equal(t, 1, result["evidence_count"])
}

func TestDeepResearchHandlerMissingQuestion(t *testing.T) {
	h := NewDeepResearchHandler(&fakeResearcher{}, &fakeEmitter{}, discardLogger())
	_, err := h.Handle(context.Background(), &ent.Job{ID: "job-2", Payload: map[string]any{}})
	require.Error(t, err)
	assert.True(t, queue.IsPermanent(err))
}

type fakeCatalog struct {
	rec   *ent.SemanticModelRecord
	model *semantic.Model
	err   error
}

func (f *fakeCatalog) Get(context.Context, string) (*ent.SemanticModelRecord, *semantic.Model, error) {
	return f.rec, f.model, f.err
}

type scriptedConnector struct {
	results map[string]*agent.QueryResult
	queries []string
}

func (c *scriptedConnector) Dialect() sqlgen.Dialect { return sqlgen.DialectPostgres }

func (c *scriptedConnector) Execute(_ context.Context, sql string, _ int) (*agent.QueryResult, error) {
	c.queries = append(c.queries, sql)
	for fragment, res := range c.results {
		if strings.Contains(sql, fragment) {
			return res, nil
		}
	}
	return nil, errors.New("unexpected query: " + sql)
}

func (c *scriptedConnector) RewriteExpression(expr string) string { return expr }

type fakeOpener struct {
	conn agent.SqlConnector
	err  error
}

func (f *fakeOpener) Open(context.Context, string) (agent.SqlConnector, error) {
	return f.conn, f.err
}

type stubEmbedder struct{}

func (stubEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = []float32{float32(len(text)), 1, 0}
	}
	return vectors, nil
}

func refreshModel() *semantic.Model {
	return &semantic.Model{
		Name:       "sales",
		TableOrder: []string{"stores"},
		Tables: map[string]*semantic.Table{
			"stores": {
				Schema: "public",
				Name:   "stores",
				Dimensions: []semantic.Dimension{
					{Name: "id", Type: semantic.TypeInteger, PrimaryKey: true},
					{Name: "name", Type: semantic.TypeString, Vectorized: true},
				},
			},
		},
	}
}

func TestModelRefreshHandlerIndexesVectorizedDimensions(t *testing.T) {
	conn := &scriptedConnector{results: map[string]*agent.QueryResult{
		`"name"`: {
			Columns:  []string{"name"},
			Rows:     [][]any{{"Delhi Central"}, {"Mumbai West"}, {nil}},
			RowCount: 3,
		},
	}}
	vectors := agent.NewMemoryVectorDB()
	h := NewModelRefreshHandler(
		&fakeCatalog{rec: &ent.SemanticModelRecord{ID: "model-1", ConnectorID: "conn-1"}, model: refreshModel()},
		&fakeOpener{conn: conn},
		stubEmbedder{},
		vectors,
		&fakeEmitter{},
		discardLogger(),
	)

	result, err := h.Handle(context.Background(), &ent.Job{
		ID: "job-3", OrganisationID: "org-1",
		Payload: map[string]any{"model_id": "model-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result["dimensions"])
	assert.Equal(t, 2, result["values_indexed"])

	require.Len(t, conn.queries, 1)
	assert.Contains(t, conn.queries[0], "SELECT DISTINCT")
	assert.Contains(t, conn.queries[0], `"public"."stores"`)

	// The indexed values are searchable with matching metadata.
	vec, err := stubEmbedder{}.Embed(context.Background(), []string{"Delhi Central"})
	require.NoError(t, err)
	matches, err := vectors.Search(context.Background(), vec[0], 1, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "stores.name", matches[0].Metadata["column"])
	assert.Equal(t, "Delhi Central", matches[0].Metadata["value"])
}

func TestModelRefreshHandlerUnknownModelIsPermanent(t *testing.T) {
	h := NewModelRefreshHandler(&fakeCatalog{err: services.ErrNotFound}, &fakeOpener{},
		stubEmbedder{}, agent.NewMemoryVectorDB(), &fakeEmitter{}, discardLogger())

	_, err := h.Handle(context.Background(), &ent.Job{ID: "job-3", Payload: map[string]any{"model_id": "x"}})
	require.Error(t, err)
	assert.True(t, queue.IsPermanent(err))
}

func TestBuilderRejectsCrossTenantModel(t *testing.T) {
	b := NewBuilder(
		&fakeCatalog{rec: &ent.SemanticModelRecord{ID: "model-1", OrganisationID: "org-2", ConnectorID: "conn-1"}, model: refreshModel()},
		&fakeOpener{conn: &scriptedConnector{}},
		nil,
		discardLogger(),
	)
	_, err := b.ForModel(context.Background(), "org-1", "model-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestRecordOpenerDisabledConnector(t *testing.T) {
	o := NewRecordOpener(&staticRegistry{rec: &ent.ConnectorRecord{ID: "conn-1", Enabled: false}}, EnvSecrets, 0)
	_, err := o.Open(context.Background(), "conn-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrConnectorDisabled)
}

type staticRegistry struct {
	rec *ent.ConnectorRecord
}

func (s *staticRegistry) Get(context.Context, string) (*ent.ConnectorRecord, error) {
	return s.rec, nil
}
