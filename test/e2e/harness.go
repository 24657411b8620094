// Package e2e exercises the full intake path: HTTP API → job table → worker
// pool → terminal state and event log, against a real PostgreSQL schema.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/api"
	"github.com/quillhq/quill/pkg/config"
	"github.com/quillhq/quill/pkg/database"
	"github.com/quillhq/quill/pkg/events"
	"github.com/quillhq/quill/pkg/queue"
	"github.com/quillhq/quill/pkg/services"
	testdb "github.com/quillhq/quill/test/database"
)

// App is one running replica: database, services, worker pool, and HTTP
// server, wired the way cmd/quill does it (broker omitted — the durable log
// is what the assertions read).
type App struct {
	DB         *database.Client
	Jobs       *services.JobService
	Events     *services.EventService
	Models     *services.ModelService
	Connectors *services.ConnectorService
	Emitter    *events.Emitter
	Pool       *queue.WorkerPool
	Server     *httptest.Server
}

// NewApp starts a replica with the given handlers registered. Cleanup is
// bound to the test.
func NewApp(t *testing.T, handlers ...queue.JobHandler) *App {
	t.Helper()

	client := testdb.NewTestClient(t)

	jobService := services.NewJobService(client.Client)
	eventService := services.NewEventService(client.Client)
	modelService := services.NewModelService(client.Client)
	connectorService := services.NewConnectorService(client.Client)
	emitter := events.NewEmitter(jobService, eventService, nil)

	registry := queue.NewHandlerRegistry()
	for _, h := range handlers {
		require.NoError(t, registry.Register(h))
	}

	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 0
	cfg.JobTimeout = 30 * time.Second

	pool := queue.NewWorkerPool("e2e-pod", client.Client, cfg, jobService, registry, emitter)
	require.NoError(t, pool.Start(context.Background()))
	t.Cleanup(pool.Stop)

	server := api.NewServer(jobService, eventService, modelService, connectorService,
		slog.Default(),
		api.WithPool(pool),
		api.WithDB(client.DB()),
	)
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	return &App{
		DB:         client,
		Jobs:       jobService,
		Events:     eventService,
		Models:     modelService,
		Connectors: connectorService,
		Emitter:    emitter,
		Pool:       pool,
		Server:     ts,
	}
}

// Post sends a JSON request and decodes the JSON response.
func (a *App) Post(t *testing.T, path string, body any) (int, map[string]any) {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(a.Server.URL+path, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return decode(t, resp)
}

// Get fetches a path and decodes the JSON response.
func (a *App) Get(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Get(a.Server.URL + path)
	require.NoError(t, err)
	return decode(t, resp)
}

func decode(t *testing.T, resp *http.Response) (int, map[string]any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(data) > 0 {
		require.NoError(t, json.Unmarshal(data, &out), "body: %s", data)
	}
	return resp.StatusCode, out
}

// WaitForStatus polls the job endpoint until it reports the wanted status.
func (a *App) WaitForStatus(t *testing.T, jobID, want string) map[string]any {
	t.Helper()
	var last map[string]any
	require.Eventually(t, func() bool {
		code, body := a.Get(t, "/api/v1/jobs/"+jobID)
		if code != http.StatusOK {
			return false
		}
		last = body
		return body["status"] == want
	}, 15*time.Second, 50*time.Millisecond, "job %s never reached %s (last: %v)", jobID, want, last)
	return last
}
