package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/pkg/models"
	"github.com/quillhq/quill/pkg/queue"
	"github.com/quillhq/quill/pkg/semantic"
	"github.com/quillhq/quill/pkg/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeJobStore struct {
	jobs      map[string]*ent.Job
	created   []*models.CreateJobRequest
	cancelled []string
	createErr error
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[string]*ent.Job{}}
}

func (f *fakeJobStore) Create(_ context.Context, req *models.CreateJobRequest) (*ent.Job, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	j := &ent.Job{
		ID:             "job-1",
		OrganisationID: req.OrganisationID,
		JobType:        req.JobType,
		Payload:        req.Payload,
		Headers:        req.Headers,
	}
	f.jobs[j.ID] = j
	return j, nil
}

func (f *fakeJobStore) Get(_ context.Context, jobID string) (*ent.Job, error) {
	j, ok := f.jobs[jobID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobStore) List(_ context.Context, filters *models.JobFilters) (*models.JobListResponse, error) {
	jobs := make([]*ent.Job, 0, len(f.jobs))
	for _, j := range f.jobs {
		jobs = append(jobs, j)
	}
	return &models.JobListResponse{Jobs: jobs, TotalCount: len(jobs), Limit: filters.Limit}, nil
}

func (f *fakeJobStore) Cancel(_ context.Context, jobID string) (*ent.Job, error) {
	j, ok := f.jobs[jobID]
	if !ok {
		return nil, services.ErrNotFound
	}
	f.cancelled = append(f.cancelled, jobID)
	return j, nil
}

type fakeEventStore struct {
	events map[string][]*ent.JobEvent
}

func (f *fakeEventStore) List(_ context.Context, jobID string) ([]*ent.JobEvent, error) {
	return f.events[jobID], nil
}

type fakeModelStore struct {
	records map[string]*ent.SemanticModelRecord
	parsed  map[string]*semantic.Model
}

func newFakeModelStore() *fakeModelStore {
	return &fakeModelStore{
		records: map[string]*ent.SemanticModelRecord{},
		parsed:  map[string]*semantic.Model{},
	}
}

func (f *fakeModelStore) Create(_ context.Context, req *models.CreateModelRequest) (*ent.SemanticModelRecord, error) {
	parsed, err := semantic.ParseModel([]byte(req.Definition))
	if err != nil {
		return nil, services.NewValidationError("definition", err.Error())
	}
	rec := &ent.SemanticModelRecord{
		ID:             "model-1",
		OrganisationID: req.OrganisationID,
		Name:           req.Name,
		ConnectorID:    req.ConnectorID,
		Definition:     req.Definition,
	}
	f.records[rec.ID] = rec
	f.parsed[rec.ID] = parsed
	return rec, nil
}

func (f *fakeModelStore) Get(_ context.Context, modelID string) (*ent.SemanticModelRecord, *semantic.Model, error) {
	rec, ok := f.records[modelID]
	if !ok {
		return nil, nil, services.ErrNotFound
	}
	return rec, f.parsed[modelID], nil
}

func (f *fakeModelStore) List(_ context.Context, _ string) ([]*ent.SemanticModelRecord, error) {
	recs := make([]*ent.SemanticModelRecord, 0, len(f.records))
	for _, r := range f.records {
		recs = append(recs, r)
	}
	return recs, nil
}

func (f *fakeModelStore) Update(_ context.Context, modelID, definition string, tags []string) (*ent.SemanticModelRecord, error) {
	rec, ok := f.records[modelID]
	if !ok {
		return nil, services.ErrNotFound
	}
	rec.Definition = definition
	rec.Tags = tags
	return rec, nil
}

func (f *fakeModelStore) Delete(_ context.Context, modelID string) error {
	if _, ok := f.records[modelID]; !ok {
		return services.ErrNotFound
	}
	delete(f.records, modelID)
	return nil
}

type fakeConnectorStore struct {
	records map[string]*ent.ConnectorRecord
	enabled map[string]bool
}

func newFakeConnectorStore() *fakeConnectorStore {
	return &fakeConnectorStore{
		records: map[string]*ent.ConnectorRecord{},
		enabled: map[string]bool{},
	}
}

func (f *fakeConnectorStore) Create(_ context.Context, req *models.CreateConnectorRequest) (*ent.ConnectorRecord, error) {
	rec := &ent.ConnectorRecord{
		ID:             "conn-1",
		OrganisationID: req.OrganisationID,
		Name:           req.Name,
		Dialect:        req.Dialect,
	}
	f.records[rec.ID] = rec
	return rec, nil
}

func (f *fakeConnectorStore) Get(_ context.Context, connectorID string) (*ent.ConnectorRecord, error) {
	rec, ok := f.records[connectorID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return rec, nil
}

func (f *fakeConnectorStore) List(_ context.Context, _ string) ([]*ent.ConnectorRecord, error) {
	recs := make([]*ent.ConnectorRecord, 0, len(f.records))
	for _, r := range f.records {
		recs = append(recs, r)
	}
	return recs, nil
}

func (f *fakeConnectorStore) SetEnabled(_ context.Context, connectorID string, enabled bool) error {
	if _, ok := f.records[connectorID]; !ok {
		return services.ErrNotFound
	}
	f.enabled[connectorID] = enabled
	return nil
}

type fakeBroker struct {
	streams  []string
	payloads []any
	err      error
}

func (f *fakeBroker) Publish(_ context.Context, stream string, payload any) error {
	if f.err != nil {
		return f.err
	}
	f.streams = append(f.streams, stream)
	f.payloads = append(f.payloads, payload)
	return nil
}

func (f *fakeBroker) Subscribe(context.Context, string, string, string, func(context.Context, []byte) error) error {
	return nil
}

func (f *fakeBroker) Close() error { return nil }

type fakePool struct {
	health        *queue.PoolHealth
	cancelled     []string
	cancelHandled bool
}

func (f *fakePool) Health() *queue.PoolHealth {
	if f.health != nil {
		return f.health
	}
	return &queue.PoolHealth{IsHealthy: true}
}

func (f *fakePool) CancelJob(jobID string) bool {
	f.cancelled = append(f.cancelled, jobID)
	return f.cancelHandled
}

type serverFixture struct {
	server     *Server
	router     *gin.Engine
	jobs       *fakeJobStore
	eventLog   *fakeEventStore
	models     *fakeModelStore
	connectors *fakeConnectorStore
}

func newFixture(t *testing.T, opts ...Option) *serverFixture {
	t.Helper()
	f := &serverFixture{
		jobs:       newFakeJobStore(),
		eventLog:   &fakeEventStore{events: map[string][]*ent.JobEvent{}},
		models:     newFakeModelStore(),
		connectors: newFakeConnectorStore(),
	}
	logger := slog.New(slog.DiscardHandler)
	f.server = NewServer(f.jobs, f.eventLog, f.models, f.connectors, logger, opts...)
	f.router = f.server.Router()
	return f
}

func (f *serverFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSecurityHeaders(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
