package e2e

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/pkg/queue"
)

// recordingHandler answers semantic_query_request jobs with a canned result
// and an event trail, standing in for the orchestrator.
type recordingHandler struct {
	emit func(ctx context.Context, jobID string)
	fail error
}

func (h *recordingHandler) JobType() string { return "semantic_query_request" }

func (h *recordingHandler) Handle(ctx context.Context, j *ent.Job) (map[string]any, error) {
	if h.emit != nil {
		h.emit(ctx, j.ID)
	}
	if h.fail != nil {
		return nil, h.fail
	}
	return map[string]any{"summary": "2 rows returned"}, nil
}

// blockingHandler holds the job until its context is cancelled.
type blockingHandler struct {
	started chan string
}

func (h *blockingHandler) JobType() string { return "semantic_query_request" }

func (h *blockingHandler) Handle(ctx context.Context, j *ent.Job) (map[string]any, error) {
	h.started <- j.ID
	<-ctx.Done()
	return nil, ctx.Err()
}

func submitJob(t *testing.T, app *App) string {
	t.Helper()
	code, body := app.Post(t, "/api/v1/jobs", map[string]any{
		"organisation_id": "org-1",
		"job_type":        "semantic_query_request",
		"payload":         map[string]any{"question": "how many orders?", "model_id": "model-1"},
	})
	require.Equal(t, http.StatusCreated, code)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestJobLifecycleSucceeds(t *testing.T) {
	var app *App
	app = NewApp(t, &recordingHandler{
		emit: func(ctx context.Context, jobID string) {
			_, _ = app.Emitter.Emit(ctx, jobID, "semantic_query_started", map[string]any{"question": "how many orders?"})
			_ = app.Emitter.Progress(ctx, jobID, 50, "executing")
			_, _ = app.Emitter.Emit(ctx, jobID, "semantic_query_completed", map[string]any{"summary": "2 rows returned"})
		},
	})

	jobID := submitJob(t, app)
	final := app.WaitForStatus(t, jobID, "succeeded")

	result, ok := final["result"].(map[string]any)
	require.True(t, ok, "final job payload: %v", final)
	assert.Equal(t, "2 rows returned", result["summary"])
	assert.EqualValues(t, 100, final["progress"])

	code, body := app.Get(t, "/api/v1/jobs/"+jobID+"/events")
	require.Equal(t, http.StatusOK, code)
	events, ok := body["events"].([]any)
	require.True(t, ok)
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.(map[string]any)["event_type"].(string))
	}
	assert.Contains(t, types, "semantic_query_started")
	assert.Contains(t, types, "semantic_query_completed")
}

func TestJobRetriesThenFailsPermanently(t *testing.T) {
	app := NewApp(t, &recordingHandler{fail: queue.Permanent(errors.New("model not found"))})

	code, body := app.Post(t, "/api/v1/jobs", map[string]any{
		"organisation_id": "org-1",
		"job_type":        "semantic_query_request",
		"payload":         map[string]any{"question": "q", "model_id": "missing"},
		"max_attempts":    3,
	})
	require.Equal(t, http.StatusCreated, code)
	jobID := body["id"].(string)

	final := app.WaitForStatus(t, jobID, "failed")
	assert.Contains(t, final["error_message"], "model not found")
	// A permanent failure stops after the first attempt.
	assert.EqualValues(t, 1, final["attempt"])
}

func TestCancelRunningJobThroughAPI(t *testing.T) {
	h := &blockingHandler{started: make(chan string, 1)}
	app := NewApp(t, h)

	jobID := submitJob(t, app)

	select {
	case <-h.started:
	case <-time.After(10 * time.Second):
		t.Fatal("job never started")
	}

	code, body := app.Post(t, "/api/v1/jobs/"+jobID+"/cancel", nil)
	require.Equal(t, http.StatusAccepted, code)
	assert.Equal(t, "cancelling", body["status"])

	app.WaitForStatus(t, jobID, "cancelled")
}

func TestCancelQueuedJobThroughAPI(t *testing.T) {
	app := NewApp(t, &recordingHandler{})

	// Scheduled in the future so no worker claims it before the cancel.
	created, err := app.DB.Job.Create().
		SetID("job-scheduled").
		SetOrganisationID("org-1").
		SetJobType("semantic_query_request").
		SetPayload(map[string]any{"question": "q"}).
		SetScheduledFor(time.Now().Add(time.Hour)).
		SetMaxAttempts(3).
		Save(context.Background())
	require.NoError(t, err)

	code, cancelled := app.Post(t, "/api/v1/jobs/"+created.ID+"/cancel", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "cancelled", cancelled["status"])
}

func TestUnknownJobTypeFailsPermanently(t *testing.T) {
	app := NewApp(t, &recordingHandler{})

	code, body := app.Post(t, "/api/v1/jobs", map[string]any{
		"organisation_id": "org-1",
		"job_type":        "deep_research_request",
		"payload":         map[string]any{"question": "q"},
	})
	require.Equal(t, http.StatusCreated, code)
	jobID := body["id"].(string)

	final := app.WaitForStatus(t, jobID, "failed")
	assert.Contains(t, final["error_message"], "deep_research_request")
}
