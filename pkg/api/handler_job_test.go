package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/pkg/config"
	"github.com/quillhq/quill/pkg/events"
	"github.com/quillhq/quill/pkg/models"
	"github.com/quillhq/quill/pkg/queue"
)

func jobRequest() *models.CreateJobRequest {
	return &models.CreateJobRequest{
		OrganisationID: "org-1",
		JobType:        events.MessageTypeSemanticQuery,
		Payload:        map[string]any{"question": "how many orders last month?", "model_name": "sales"},
	}
}

func TestCreateJobPublishesRequest(t *testing.T) {
	broker := &fakeBroker{}
	f := newFixture(t, WithBroker(broker))

	w := f.do(t, http.MethodPost, "/api/v1/jobs", jobRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "job-1", body["id"])

	require.Len(t, broker.streams, 1)
	assert.Equal(t, events.RequestStream(events.MessageTypeSemanticQuery), broker.streams[0])
	envelope, ok := broker.payloads[0].(events.RequestEnvelope)
	require.True(t, ok)
	assert.Equal(t, "job-1", envelope.JobID)
	assert.Equal(t, events.MessageTypeSemanticQuery, envelope.MessageType)
}

func TestCreateJobSurvivesPublishFailure(t *testing.T) {
	broker := &fakeBroker{err: assert.AnError}
	f := newFixture(t, WithBroker(broker))

	w := f.do(t, http.MethodPost, "/api/v1/jobs", jobRequest())
	// The claim loop polls the jobs table, so a dropped wake-up only delays
	// pickup.
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateJobGuardrailRejects(t *testing.T) {
	g, err := NewGuardrail(&config.Guardrails{
		Denylist:          []string{`drop\s+table`},
		EscalationMessage: "contact your administrator",
	})
	require.NoError(t, err)
	f := newFixture(t, WithGuardrail(g))

	req := jobRequest()
	req.Payload["question"] = "please DROP TABLE orders"
	w := f.do(t, http.MethodPost, "/api/v1/jobs", req)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "contact your administrator")
	assert.Empty(t, f.jobs.created)
}

func TestCreateJobSaturationReturns503(t *testing.T) {
	pool := &fakePool{health: &queue.PoolHealth{IsHealthy: true, QueueDepth: maxQueueDepth}}
	f := newFixture(t, WithPool(pool))

	w := f.do(t, http.MethodPost, "/api/v1/jobs", jobRequest())
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Empty(t, f.jobs.created)
}

func TestGetJobNotFound(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/v1/jobs/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListJobsBindsQueryFilters(t *testing.T) {
	f := newFixture(t)
	f.jobs.jobs["job-1"] = &ent.Job{ID: "job-1"}

	w := f.do(t, http.MethodGet, "/api/v1/jobs?limit=5&status=queued", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.EqualValues(t, 5, body["limit"])
	assert.EqualValues(t, 1, body["total_count"])
}

func TestCancelQueuedJob(t *testing.T) {
	f := newFixture(t)
	f.jobs.jobs["job-1"] = &ent.Job{ID: "job-1", Status: job.StatusQueued}

	w := f.do(t, http.MethodPost, "/api/v1/jobs/job-1/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"job-1"}, f.jobs.cancelled)
}

func TestCancelRunningJobGoesThroughPool(t *testing.T) {
	pool := &fakePool{cancelHandled: true}
	f := newFixture(t, WithPool(pool))
	f.jobs.jobs["job-1"] = &ent.Job{ID: "job-1", Status: job.StatusRunning}

	w := f.do(t, http.MethodPost, "/api/v1/jobs/job-1/cancel", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []string{"job-1"}, pool.cancelled)
	assert.Empty(t, f.jobs.cancelled)
}

func TestCancelRunningJobOnAnotherPod(t *testing.T) {
	pool := &fakePool{cancelHandled: false}
	f := newFixture(t, WithPool(pool))
	f.jobs.jobs["job-1"] = &ent.Job{ID: "job-1", Status: job.StatusRunning}

	w := f.do(t, http.MethodPost, "/api/v1/jobs/job-1/cancel", nil)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestListJobEventsUnknownJob(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/v1/jobs/missing/events", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListJobEvents(t *testing.T) {
	f := newFixture(t)
	f.jobs.jobs["job-1"] = &ent.Job{ID: "job-1"}
	f.eventLog.events["job-1"] = []*ent.JobEvent{
		{JobID: "job-1", EventType: events.EventTypeJobProgress, EventIndex: 0},
		{JobID: "job-1", EventType: events.EventTypeJobProgress, EventIndex: 1},
	}

	w := f.do(t, http.MethodGet, "/api/v1/jobs/job-1/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["events"], 2)
}

func TestHealthUnhealthyPool(t *testing.T) {
	pool := &fakePool{health: &queue.PoolHealth{IsHealthy: false}}
	f := newFixture(t, WithPool(pool))

	w := f.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "unhealthy", body["status"])
}
