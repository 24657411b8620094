package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/pkg/models"
)

// validTransitions is the job status graph. failed→queued is only reachable
// through Retry, which also checks the attempt budget.
var validTransitions = map[job.Status][]job.Status{
	job.StatusQueued:  {job.StatusRunning, job.StatusCancelled},
	job.StatusRunning: {job.StatusSucceeded, job.StatusFailed, job.StatusCancelled},
	job.StatusFailed:  {job.StatusQueued},
}

func transitionAllowed(from, to job.Status) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// JobService handles job CRUD and status transitions. Claiming and lease
// renewal live in pkg/queue, which owns the worker side of the lifecycle.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new job service.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// Create enqueues a new job. A missing JobID is generated.
func (s *JobService) Create(ctx context.Context, req *models.CreateJobRequest) (*ent.Job, error) {
	if req.OrganisationID == "" {
		return nil, NewValidationError("organisation_id", "required")
	}
	if req.JobType == "" {
		return nil, NewValidationError("job_type", "required")
	}
	if req.Payload == nil {
		return nil, NewValidationError("payload", "required")
	}

	id := req.JobID
	if id == "" {
		id = uuid.NewString()
	}
	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	created, err := s.client.Job.Create().
		SetID(id).
		SetOrganisationID(req.OrganisationID).
		SetJobType(req.JobType).
		SetPayload(req.Payload).
		SetHeaders(req.Headers).
		SetPriority(req.Priority).
		SetMaxAttempts(maxAttempts).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: job %s", ErrAlreadyExists, id)
		}
		return nil, fmt.Errorf("creating job: %w", err)
	}

	slog.Info("Job enqueued", "job_id", created.ID, "job_type", created.JobType,
		"organisation_id", created.OrganisationID, "priority", created.Priority)
	return created, nil
}

// Get returns a job by id.
func (s *JobService) Get(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return nil, fmt.Errorf("getting job: %w", err)
	}
	return j, nil
}

// List returns jobs matching the filters, newest first.
func (s *JobService) List(ctx context.Context, filters *models.JobFilters) (*models.JobListResponse, error) {
	q := s.client.Job.Query()
	if filters.OrganisationID != "" {
		q = q.Where(job.OrganisationIDEQ(filters.OrganisationID))
	}
	if filters.Status != "" {
		q = q.Where(job.StatusEQ(job.Status(filters.Status)))
	}
	if filters.JobType != "" {
		q = q.Where(job.JobTypeEQ(filters.JobType))
	}
	if filters.CreatedAfter != nil {
		q = q.Where(job.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		q = q.Where(job.CreatedAtLT(*filters.CreatedBefore))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("counting jobs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	jobs, err := q.
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	return &models.JobListResponse{
		Jobs:       jobs,
		TotalCount: total,
		Limit:      limit,
		Offset:     filters.Offset,
	}, nil
}

// MarkSucceeded writes the terminal success state. Only the lease holder may
// call it.
func (s *JobService) MarkSucceeded(ctx context.Context, jobID, owner string, result map[string]any) (*ent.Job, error) {
	return s.terminal(ctx, jobID, owner, job.StatusSucceeded, func(u *ent.JobUpdateOne) {
		u.SetProgress(100).
			SetResult(result).
			ClearErrorMessage()
	})
}

// MarkFailed writes the terminal failure state.
func (s *JobService) MarkFailed(ctx context.Context, jobID, owner, errMsg string) (*ent.Job, error) {
	return s.terminal(ctx, jobID, owner, job.StatusFailed, func(u *ent.JobUpdateOne) {
		u.SetErrorMessage(errMsg)
	})
}

// MarkCancelled writes the terminal cancelled state.
func (s *JobService) MarkCancelled(ctx context.Context, jobID, owner string) (*ent.Job, error) {
	return s.terminal(ctx, jobID, owner, job.StatusCancelled, nil)
}

func (s *JobService) terminal(ctx context.Context, jobID, owner string, to job.Status, customize func(*ent.JobUpdateOne)) (*ent.Job, error) {
	j, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(j.Status, to) {
		return nil, fmt.Errorf("%w: %s → %s", ErrInvalidTransition, j.Status, to)
	}
	if j.LockOwner != nil && *j.LockOwner != owner {
		return nil, fmt.Errorf("%w: job %s owned by %s", ErrLeaseHeld, jobID, *j.LockOwner)
	}

	update := j.Update().
		SetStatus(to).
		SetFinishedAt(time.Now()).
		ClearLockOwner().
		ClearLockedUntil()
	if customize != nil {
		customize(update)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("updating job terminal status: %w", err)
	}
	slog.Info("Job reached terminal state", "job_id", jobID, "status", to)
	return updated, nil
}

// Retry re-queues a failed job with a backoff delay. Callers check the error
// is retryable before calling; the attempt budget is enforced here.
func (s *JobService) Retry(ctx context.Context, jobID string, backoff time.Duration) (*ent.Job, error) {
	j, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != job.StatusFailed {
		return nil, fmt.Errorf("%w: retry from %s", ErrInvalidTransition, j.Status)
	}
	if j.Attempt >= j.MaxAttempts {
		return nil, fmt.Errorf("%w: attempt budget exhausted (%d/%d)", ErrInvalidTransition, j.Attempt, j.MaxAttempts)
	}

	updated, err := j.Update().
		SetStatus(job.StatusQueued).
		SetScheduledFor(time.Now().Add(backoff)).
		ClearLockOwner().
		ClearLockedUntil().
		ClearFinishedAt().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("re-queueing job: %w", err)
	}
	slog.Info("Job re-queued for retry", "job_id", jobID,
		"attempt", updated.Attempt, "max_attempts", updated.MaxAttempts, "backoff", backoff)
	return updated, nil
}

// Cancel cancels a queued job. Running jobs are cancelled by the worker pool
// through context cancellation; this only covers jobs no worker holds.
func (s *JobService) Cancel(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.Status != job.StatusQueued {
		return nil, fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, j.Status)
	}
	updated, err := j.Update().
		SetStatus(job.StatusCancelled).
		SetFinishedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("cancelling job: %w", err)
	}
	return updated, nil
}

// SetProgress updates progress and status message for a running job. Values
// outside [0,100] are clamped.
func (s *JobService) SetProgress(ctx context.Context, jobID string, progress int, message string) error {
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	update := s.client.Job.UpdateOneID(jobID).SetProgress(progress)
	if message != "" {
		update = update.SetStatusMessage(message)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: job %s", ErrNotFound, jobID)
		}
		return fmt.Errorf("updating job progress: %w", err)
	}
	return nil
}

// PurgeFinished deletes terminal jobs whose finished_at is older than the
// retention window. Event rows go with them through the cascade. Idempotent
// and safe to run from multiple pods.
func (s *JobService) PurgeFinished(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	n, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusSucceeded, job.StatusFailed, job.StatusCancelled),
			job.FinishedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("purging finished jobs: %w", err)
	}
	return n, nil
}

// RenewLease extends the lease for the owning worker.
func (s *JobService) RenewLease(ctx context.Context, jobID, owner string, lease time.Duration) error {
	n, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.StatusRunning),
			job.LockOwnerEQ(owner),
		).
		SetLockedUntil(time.Now().Add(lease)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("renewing lease: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: job %s", ErrLeaseHeld, jobID)
	}
	return nil
}
