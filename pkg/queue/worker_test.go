package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/pkg/config"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             5,
		MaxConcurrentJobs:       10,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseDuration:           2 * time.Minute,
		LeaseRenewalInterval:    30 * time.Second,
		ClaimRetries:            3,
		JobTimeout:              10 * time.Minute,
		GracefulShutdownTimeout: 10 * time.Minute,
		RetryBackoffBase:        15 * time.Second,
		DefaultMaxAttempts:      3,
		LeaseSweepInterval:      1 * time.Minute,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentJobID)
	assert.Equal(t, 0, h.JobsProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "job-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "job-abc", h.CurrentJobID)
}

func TestPermanentError(t *testing.T) {
	base := errors.New("payload missing connector_id")

	assert.False(t, IsPermanent(base))
	assert.Nil(t, Permanent(nil))

	perm := Permanent(base)
	assert.True(t, IsPermanent(perm))
	assert.ErrorIs(t, perm, base)
	assert.Equal(t, base.Error(), perm.Error())

	// Wrapping survives fmt.Errorf chains.
	wrapped := fmt.Errorf("dispatching: %w", perm)
	assert.True(t, IsPermanent(wrapped))
}

type stubHandler struct {
	jobType string
}

func (h *stubHandler) JobType() string { return h.jobType }
func (h *stubHandler) Handle(_ context.Context, _ *ent.Job) (map[string]any, error) {
	return map[string]any{"ok": true}, nil
}

func TestHandlerRegistry(t *testing.T) {
	reg := NewHandlerRegistry()

	require.NoError(t, reg.Register(&stubHandler{jobType: "semantic_query"}))
	require.NoError(t, reg.Register(&stubHandler{jobType: "deep_research"}))

	h, err := reg.Get("semantic_query")
	require.NoError(t, err)
	assert.Equal(t, "semantic_query", h.JobType())

	_, err = reg.Get("no_such_type")
	assert.ErrorIs(t, err, ErrUnknownJobType)

	// Duplicate registration is rejected
	err = reg.Register(&stubHandler{jobType: "semantic_query"})
	assert.Error(t, err)

	assert.ElementsMatch(t, []string{"semantic_query", "deep_research"}, reg.JobTypes())
}

func TestDispatchUnknownTypeIsPermanent(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, NewHandlerRegistry(), nil, nil)

	_, err := w.dispatch(context.Background(), &ent.Job{JobType: "mystery"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownJobType)
	assert.True(t, IsPermanent(err), "unroutable jobs must not burn the retry budget")
}
