package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/pkg/config"
	"github.com/quillhq/quill/pkg/models"
	"github.com/quillhq/quill/pkg/services"
	testdb "github.com/quillhq/quill/test/database"
)

func newClaimWorker(id string, client *ent.Client) *Worker {
	return &Worker{
		id:     id,
		podID:  "pod-1",
		client: client,
		config: config.DefaultQueueConfig(),
		jobs:   services.NewJobService(client),
	}
}

func enqueue(t *testing.T, client *ent.Client, priority int, opts ...func(*ent.JobCreate)) *ent.Job {
	t.Helper()
	create := client.Job.Create().
		SetID(uuid.NewString()).
		SetOrganisationID("org-1").
		SetJobType("semantic_query_request").
		SetPayload(map[string]any{"question": "q"}).
		SetPriority(priority).
		SetMaxAttempts(3)
	for _, opt := range opts {
		opt(create)
	}
	j, err := create.Save(context.Background())
	require.NoError(t, err)
	return j
}

func TestClaimOrderIsPriorityThenAge(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	low := enqueue(t, client, 0)
	// Older of the two high-priority jobs must win the tie.
	highOld := enqueue(t, client, 5, func(c *ent.JobCreate) {
		c.SetCreatedAt(time.Now().Add(-time.Minute))
	})
	highNew := enqueue(t, client, 5)

	w := newClaimWorker("pod-1-worker-0", client)

	first, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, highOld.ID, first.ID)
	assert.Equal(t, job.StatusRunning, first.Status)
	assert.Equal(t, 1, first.Attempt)
	require.NotNil(t, first.LockOwner)
	assert.Equal(t, "pod-1-worker-0", *first.LockOwner)

	second, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, highNew.ID, second.ID)

	third, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, low.ID, third.ID)

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimSkipsScheduledFuture(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	enqueue(t, client, 0, func(c *ent.JobCreate) {
		c.SetScheduledFor(time.Now().Add(time.Hour))
	})
	due := enqueue(t, client, 0, func(c *ent.JobCreate) {
		c.SetScheduledFor(time.Now().Add(-time.Second))
	})

	w := newClaimWorker("pod-1-worker-0", client)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, due.ID, claimed.ID)

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimReclaimsExpiredLease(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	abandoned := enqueue(t, client, 0, func(c *ent.JobCreate) {
		c.SetStatus(job.StatusRunning).
			SetLockOwner("pod-dead-worker-0").
			SetLockedUntil(time.Now().Add(-time.Minute)).
			SetAttempt(1)
	})

	w := newClaimWorker("pod-1-worker-0", client)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, abandoned.ID, claimed.ID)
	assert.Equal(t, 2, claimed.Attempt)
	require.NotNil(t, claimed.LockOwner)
	assert.Equal(t, "pod-1-worker-0", *claimed.LockOwner)
}

func TestClaimLeavesExhaustedExpiredLease(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	enqueue(t, client, 0, func(c *ent.JobCreate) {
		c.SetStatus(job.StatusRunning).
			SetLockOwner("pod-dead-worker-0").
			SetLockedUntil(time.Now().Add(-time.Minute)).
			SetAttempt(3)
	})

	w := newClaimWorker("pod-1-worker-0", client)

	// No attempt budget left — only the sweep may touch it.
	_, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestClaimAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t).Client
	clientB := shared.NewClient(t).Client
	ctx := context.Background()

	first := enqueue(t, clientA, 0, func(c *ent.JobCreate) {
		c.SetCreatedAt(time.Now().Add(-time.Minute))
	})
	second := enqueue(t, clientA, 0)

	workerA := newClaimWorker("pod-a-worker-0", clientA)
	workerB := newClaimWorker("pod-b-worker-0", clientB)

	claimedA, err := workerA.claimNextJob(ctx)
	require.NoError(t, err)
	claimedB, err := workerB.claimNextJob(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.ID, claimedA.ID)
	assert.Equal(t, second.ID, claimedB.ID)
	assert.NotEqual(t, *claimedA.LockOwner, *claimedB.LockOwner)
}

func TestFailExhaustedLeasesSweep(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	exhausted := enqueue(t, client, 0, func(c *ent.JobCreate) {
		c.SetStatus(job.StatusRunning).
			SetLockOwner("pod-dead-worker-0").
			SetLockedUntil(time.Now().Add(-time.Minute)).
			SetAttempt(3)
	})
	healthy := enqueue(t, client, 0, func(c *ent.JobCreate) {
		c.SetStatus(job.StatusRunning).
			SetLockOwner("pod-1-worker-0").
			SetLockedUntil(time.Now().Add(time.Minute)).
			SetAttempt(1)
	})

	pool := &WorkerPool{
		client: client,
		config: config.DefaultQueueConfig(),
	}
	require.NoError(t, pool.failExhaustedLeases(ctx))

	swept, err := client.Job.Get(ctx, exhausted.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, swept.Status)
	require.NotNil(t, swept.ErrorMessage)
	assert.Contains(t, *swept.ErrorMessage, "lease expired")
	assert.Nil(t, swept.LockOwner)

	untouched, err := client.Job.Get(ctx, healthy.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, untouched.Status)
}

func TestRecoverStartupLeases(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	retryable := enqueue(t, client, 0, func(c *ent.JobCreate) {
		c.SetStatus(job.StatusRunning).
			SetLockOwner("pod-1-worker-0").
			SetLockedUntil(time.Now().Add(time.Minute)).
			SetAttempt(1)
	})
	exhausted := enqueue(t, client, 0, func(c *ent.JobCreate) {
		c.SetStatus(job.StatusRunning).
			SetLockOwner("pod-1-worker-3").
			SetLockedUntil(time.Now().Add(time.Minute)).
			SetAttempt(3)
	})
	otherPod := enqueue(t, client, 0, func(c *ent.JobCreate) {
		c.SetStatus(job.StatusRunning).
			SetLockOwner("pod-2-worker-0").
			SetLockedUntil(time.Now().Add(time.Minute)).
			SetAttempt(1)
	})

	require.NoError(t, RecoverStartupLeases(ctx, client, "pod-1"))

	requeued, err := client.Job.Get(ctx, retryable.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, requeued.Status)
	assert.Nil(t, requeued.LockOwner)

	failed, err := client.Job.Get(ctx, exhausted.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, failed.Status)

	untouched, err := client.Job.Get(ctx, otherPod.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusRunning, untouched.Status)
	assert.Equal(t, "pod-2-worker-0", *untouched.LockOwner)
}

// End-to-end through the pool: a registered handler processes a queued job and
// the terminal state lands with a result.
func TestPoolProcessesJobEndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t).Client
	ctx := context.Background()

	jobs := services.NewJobService(client)
	created, err := jobs.Create(ctx, &models.CreateJobRequest{
		OrganisationID: "org-1",
		JobType:        "echo",
		Payload:        map[string]any{"question": "q"},
	})
	require.NoError(t, err)

	handlers := NewHandlerRegistry()
	require.NoError(t, handlers.Register(echoHandler{}))

	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 1
	cfg.PollInterval = 20 * time.Millisecond
	cfg.PollIntervalJitter = 0

	pool := NewWorkerPool("pod-1", client, cfg, jobs, handlers, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		j, err := jobs.Get(ctx, created.ID)
		return err == nil && j.Status == job.StatusSucceeded
	}, 10*time.Second, 50*time.Millisecond)

	done, err := jobs.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"echo": "q"}, done.Result)
	assert.Equal(t, 100, done.Progress)
}

type echoHandler struct{}

func (echoHandler) JobType() string { return "echo" }

func (echoHandler) Handle(_ context.Context, j *ent.Job) (map[string]any, error) {
	return map[string]any{"echo": j.Payload["question"]}, nil
}
