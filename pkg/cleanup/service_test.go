package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/ent/jobevent"
	"github.com/quillhq/quill/pkg/config"
	"github.com/quillhq/quill/pkg/database"
	"github.com/quillhq/quill/pkg/models"
	"github.com/quillhq/quill/pkg/services"
	testdb "github.com/quillhq/quill/test/database"
)

func setupJobService(t *testing.T) (*database.Client, *services.JobService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, services.NewJobService(client.Client)
}

func finishedJob(t *testing.T, client *database.Client, jobService *services.JobService, finishedAt time.Time) *ent.Job {
	t.Helper()
	ctx := context.Background()

	created, err := jobService.Create(ctx, &models.CreateJobRequest{
		JobID:          uuid.NewString(),
		OrganisationID: "org-1",
		JobType:        "semantic_query_request",
		Payload:        map[string]any{"question": "q"},
	})
	require.NoError(t, err)

	err = client.Job.UpdateOneID(created.ID).
		SetStatus(job.StatusSucceeded).
		SetFinishedAt(finishedAt).
		Exec(ctx)
	require.NoError(t, err)
	return created
}

func TestService_PurgesOldFinishedJobs(t *testing.T) {
	client, jobService := setupJobService(t)
	eventService := services.NewEventService(client.Client)
	ctx := context.Background()

	old := finishedJob(t, client, jobService, time.Now().Add(-40*24*time.Hour))

	// The job's event log must go with it.
	created, err := eventService.Append(ctx, old.ID, "semantic_query_completed", 0, map[string]any{})
	require.NoError(t, err)
	require.True(t, created)

	cfg := &config.RetentionConfig{
		JobRetentionDays: 30,
		CleanupInterval:  1 * time.Hour,
	}
	svc := NewService(cfg, jobService)
	svc.purgeFinishedJobs(ctx)

	_, err = jobService.Get(ctx, old.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	remaining, err := client.JobEvent.Query().
		Where(jobevent.JobIDEQ(old.ID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, remaining, "event rows should cascade with the job")
}

func TestService_PreservesRecentFinishedJobs(t *testing.T) {
	client, jobService := setupJobService(t)
	ctx := context.Background()

	recent := finishedJob(t, client, jobService, time.Now())

	cfg := &config.RetentionConfig{
		JobRetentionDays: 30,
		CleanupInterval:  1 * time.Hour,
	}
	svc := NewService(cfg, jobService)
	svc.purgeFinishedJobs(ctx)

	_, err := jobService.Get(ctx, recent.ID)
	assert.NoError(t, err)
}

func TestService_PreservesQueuedJobs(t *testing.T) {
	client, jobService := setupJobService(t)
	ctx := context.Background()

	queued, err := jobService.Create(ctx, &models.CreateJobRequest{
		JobID:          uuid.NewString(),
		OrganisationID: "org-1",
		JobType:        "semantic_query_request",
		Payload:        map[string]any{"question": "q"},
	})
	require.NoError(t, err)

	// Backdate creation far past retention — a queued job still never purges.
	// created_at is immutable in the schema, so go through raw SQL.
	_, err = client.DB().ExecContext(ctx,
		`UPDATE jobs SET created_at = $1 WHERE job_id = $2`,
		time.Now().Add(-400*24*time.Hour), queued.ID)
	require.NoError(t, err)

	cfg := &config.RetentionConfig{
		JobRetentionDays: 30,
		CleanupInterval:  1 * time.Hour,
	}
	svc := NewService(cfg, jobService)
	svc.purgeFinishedJobs(ctx)

	fetched, err := jobService.Get(ctx, queued.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, fetched.Status)
}

func TestService_StartStop(t *testing.T) {
	_, jobService := setupJobService(t)

	cfg := &config.RetentionConfig{
		JobRetentionDays: 30,
		CleanupInterval:  1 * time.Hour,
	}
	svc := NewService(cfg, jobService)
	svc.Start(context.Background())
	svc.Stop()
}
