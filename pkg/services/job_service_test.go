package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/pkg/models"
	"github.com/quillhq/quill/pkg/services"
	testdb "github.com/quillhq/quill/test/database"
)

func newJobService(t *testing.T) (*ent.Client, *services.JobService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client.Client, services.NewJobService(client.Client)
}

func createJob(t *testing.T, svc *services.JobService, req *models.CreateJobRequest) *ent.Job {
	t.Helper()
	if req == nil {
		req = &models.CreateJobRequest{}
	}
	if req.OrganisationID == "" {
		req.OrganisationID = "org-1"
	}
	if req.JobType == "" {
		req.JobType = "semantic_query_request"
	}
	if req.Payload == nil {
		req.Payload = map[string]any{"question": "how many orders?"}
	}
	j, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	return j
}

// claim moves a job to running with a lease, the way a worker does.
func claim(t *testing.T, client *ent.Client, jobID, owner string) {
	t.Helper()
	err := client.Job.UpdateOneID(jobID).
		SetStatus(job.StatusRunning).
		SetLockOwner(owner).
		SetLockedUntil(time.Now().Add(time.Minute)).
		AddAttempt(1).
		SetStartedAt(time.Now()).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestJobService_CreateDefaults(t *testing.T) {
	_, svc := newJobService(t)

	j := createJob(t, svc, nil)
	assert.NotEmpty(t, j.ID)
	assert.Equal(t, job.StatusQueued, j.Status)
	assert.Equal(t, 3, j.MaxAttempts)
	assert.Zero(t, j.Attempt)
}

func TestJobService_CreateValidation(t *testing.T) {
	_, svc := newJobService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateJobRequest{JobType: "x", Payload: map[string]any{}})
	assert.Error(t, err)

	_, err = svc.Create(ctx, &models.CreateJobRequest{OrganisationID: "org-1", Payload: map[string]any{}})
	assert.Error(t, err)

	_, err = svc.Create(ctx, &models.CreateJobRequest{OrganisationID: "org-1", JobType: "x"})
	assert.Error(t, err)
}

func TestJobService_CreateDuplicateID(t *testing.T) {
	_, svc := newJobService(t)

	id := uuid.NewString()
	createJob(t, svc, &models.CreateJobRequest{JobID: id})

	_, err := svc.Create(context.Background(), &models.CreateJobRequest{
		JobID:          id,
		OrganisationID: "org-1",
		JobType:        "semantic_query_request",
		Payload:        map[string]any{},
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestJobService_GetNotFound(t *testing.T) {
	_, svc := newJobService(t)
	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestJobService_ListFilters(t *testing.T) {
	_, svc := newJobService(t)
	ctx := context.Background()

	createJob(t, svc, &models.CreateJobRequest{OrganisationID: "org-a"})
	createJob(t, svc, &models.CreateJobRequest{OrganisationID: "org-a", JobType: "model_refresh_request"})
	createJob(t, svc, &models.CreateJobRequest{OrganisationID: "org-b"})

	resp, err := svc.List(ctx, &models.JobFilters{OrganisationID: "org-a"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalCount)

	resp, err = svc.List(ctx, &models.JobFilters{OrganisationID: "org-a", JobType: "model_refresh_request"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)

	resp, err = svc.List(ctx, &models.JobFilters{Status: string(job.StatusQueued), Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Len(t, resp.Jobs, 2)
}

func TestJobService_MarkSucceeded(t *testing.T) {
	client, svc := newJobService(t)
	ctx := context.Background()

	j := createJob(t, svc, nil)
	claim(t, client, j.ID, "pod-1-worker-0")

	updated, err := svc.MarkSucceeded(ctx, j.ID, "pod-1-worker-0", map[string]any{"rows": 3})
	require.NoError(t, err)
	assert.Equal(t, job.StatusSucceeded, updated.Status)
	assert.Equal(t, 100, updated.Progress)
	assert.NotNil(t, updated.FinishedAt)
	assert.Nil(t, updated.LockOwner)
}

func TestJobService_TerminalRejectsNonOwner(t *testing.T) {
	client, svc := newJobService(t)

	j := createJob(t, svc, nil)
	claim(t, client, j.ID, "pod-1-worker-0")

	_, err := svc.MarkSucceeded(context.Background(), j.ID, "pod-2-worker-3", nil)
	assert.ErrorIs(t, err, services.ErrLeaseHeld)
}

func TestJobService_TerminalRejectsInvalidTransition(t *testing.T) {
	_, svc := newJobService(t)

	j := createJob(t, svc, nil)

	// queued → succeeded skips running
	_, err := svc.MarkSucceeded(context.Background(), j.ID, "pod-1", nil)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestJobService_RetryBudget(t *testing.T) {
	client, svc := newJobService(t)
	ctx := context.Background()

	j := createJob(t, svc, &models.CreateJobRequest{MaxAttempts: 2})
	claim(t, client, j.ID, "pod-1-worker-0")
	_, err := svc.MarkFailed(ctx, j.ID, "pod-1-worker-0", "boom")
	require.NoError(t, err)

	requeued, err := svc.Retry(ctx, j.ID, time.Second)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, requeued.Status)
	assert.Nil(t, requeued.FinishedAt)
	require.NotNil(t, requeued.ScheduledFor)
	assert.True(t, requeued.ScheduledFor.After(time.Now()))

	// Second failure exhausts the budget.
	claim(t, client, j.ID, "pod-1-worker-0")
	_, err = svc.MarkFailed(ctx, j.ID, "pod-1-worker-0", "boom again")
	require.NoError(t, err)

	_, err = svc.Retry(ctx, j.ID, time.Second)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestJobService_CancelQueuedOnly(t *testing.T) {
	client, svc := newJobService(t)
	ctx := context.Background()

	j := createJob(t, svc, nil)
	cancelled, err := svc.Cancel(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, cancelled.Status)

	running := createJob(t, svc, nil)
	claim(t, client, running.ID, "pod-1-worker-0")
	_, err = svc.Cancel(ctx, running.ID)
	assert.ErrorIs(t, err, services.ErrInvalidTransition)
}

func TestJobService_SetProgressClamps(t *testing.T) {
	_, svc := newJobService(t)
	ctx := context.Background()

	j := createJob(t, svc, nil)

	require.NoError(t, svc.SetProgress(ctx, j.ID, 150, "almost"))
	fetched, err := svc.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, fetched.Progress)
	require.NotNil(t, fetched.StatusMessage)
	assert.Equal(t, "almost", *fetched.StatusMessage)

	require.NoError(t, svc.SetProgress(ctx, j.ID, -5, ""))
	fetched, err = svc.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Zero(t, fetched.Progress)
}

func TestJobService_RenewLease(t *testing.T) {
	client, svc := newJobService(t)
	ctx := context.Background()

	j := createJob(t, svc, nil)
	claim(t, client, j.ID, "pod-1-worker-0")

	require.NoError(t, svc.RenewLease(ctx, j.ID, "pod-1-worker-0", 5*time.Minute))

	err := svc.RenewLease(ctx, j.ID, "pod-2-worker-0", 5*time.Minute)
	assert.ErrorIs(t, err, services.ErrLeaseHeld)
}

func TestJobService_PurgeFinished(t *testing.T) {
	client, svc := newJobService(t)
	ctx := context.Background()

	stale := createJob(t, svc, nil)
	err := client.Job.UpdateOneID(stale.ID).
		SetStatus(job.StatusFailed).
		SetFinishedAt(time.Now().Add(-45 * 24 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	fresh := createJob(t, svc, nil)

	n, err := svc.PurgeFinished(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = svc.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}
