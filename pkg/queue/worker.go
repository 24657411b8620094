package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/ent/predicate"
	"github.com/quillhq/quill/pkg/config"
	"github.com/quillhq/quill/pkg/events"
	"github.com/quillhq/quill/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that claims and processes jobs. The worker
// id doubles as the lease owner written to job.lock_owner.
type Worker struct {
	id       string
	podID    string
	client   *ent.Client
	config   *config.QueueConfig
	jobs     *services.JobService
	handlers *HandlerRegistry
	emitter  *events.Emitter
	pool     JobRegistry
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of WorkerPool used by Worker for cancel
// registration.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
}

// NewWorker creates a new queue worker.
// emitter may be nil (event publishing disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, jobs *services.JobService, handlers *HandlerRegistry, pool JobRegistry, emitter *events.Emitter) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		jobs:         jobs,
		handlers:     handlers,
		emitter:      emitter,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a job, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	runningCount, err := w.client.Job.Query().
		Where(job.StatusEQ(job.StatusRunning)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking running jobs: %w", err)
	}
	if runningCount >= w.config.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	// 2. Claim next runnable job
	claimed, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", claimed.ID, "job_type", claimed.JobType,
		"attempt", claimed.Attempt, "worker_id", w.id)
	log.Info("Job claimed")

	w.publishStatus(ctx, claimed, job.StatusRunning, "")

	w.setStatus(WorkerStatusWorking, claimed.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create job context with timeout
	jobCtx, cancelJob := context.WithTimeout(ctx, w.config.JobTimeout)
	defer cancelJob()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterJob(claimed.ID, cancelJob)
	defer w.pool.UnregisterJob(claimed.ID)

	// 5. Renew the lease in the background. Losing the lease cancels the job
	//    context: another worker may already be re-running it.
	renewCtx, stopRenewal := context.WithCancel(jobCtx)
	defer stopRenewal()
	go w.runLeaseRenewal(renewCtx, claimed.ID, cancelJob)

	// 6. Dispatch to the registered handler
	result, handleErr := w.dispatch(jobCtx, claimed)

	// 7. Stop lease renewal before the terminal write
	stopRenewal()

	// 8. Write terminal status (background context — job ctx may be cancelled)
	if err := w.finishJob(context.Background(), jobCtx, claimed, result, handleErr); err != nil {
		if errors.Is(err, services.ErrLeaseHeld) {
			// Another worker re-claimed the job after our lease expired. Its
			// terminal write wins; ours is dropped.
			log.Warn("Job re-claimed by another worker, skipping terminal write")
			return nil
		}
		log.Error("Failed to finish job", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete")
	return nil
}

// attemptBudgetLeft matches jobs whose attempt counter has not reached the
// per-job budget. Field-to-field comparison, so it needs a raw selector.
func attemptBudgetLeft() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		s.Where(sql.ColumnsLT(s.C(job.FieldAttempt), s.C(job.FieldMaxAttempts)))
	})
}

// runnableNow matches jobs this worker may claim: queued jobs whose schedule
// has arrived, plus running jobs whose lease expired and that still have
// attempt budget.
func runnableNow(now time.Time) predicate.Job {
	return job.Or(
		job.And(
			job.StatusEQ(job.StatusQueued),
			job.Or(job.ScheduledForIsNil(), job.ScheduledForLTE(now)),
		),
		job.And(
			job.StatusEQ(job.StatusRunning),
			job.LockedUntilNotNil(),
			job.LockedUntilLT(now),
			attemptBudgetLeft(),
		),
	)
}

// claimNextJob atomically claims the next runnable job using FOR UPDATE SKIP
// LOCKED. Highest priority first, oldest first within a priority. The
// expired-lease branch of the predicate is what makes delivery at-least-once:
// a crashed worker's job becomes claimable again once locked_until passes.
func (w *Worker) claimNextJob(ctx context.Context) (*ent.Job, error) {
	var claimed *ent.Job
	for attempt := 0; ; attempt++ {
		j, err := w.tryClaim(ctx)
		if err == nil {
			claimed = j
			break
		}
		if errors.Is(err, ErrNoJobsAvailable) {
			return nil, err
		}
		// Claim races surface as commit errors; retry a bounded number of
		// times before giving the poll loop another turn.
		if attempt >= w.config.ClaimRetries {
			return nil, fmt.Errorf("claiming job after %d retries: %w", attempt, err)
		}
		slog.Debug("Claim race, retrying", "worker_id", w.id, "error", err)
	}
	return claimed, nil
}

func (w *Worker) tryClaim(ctx context.Context) (*ent.Job, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	j, err := tx.Job.Query().
		Where(runnableNow(now)).
		Order(ent.Desc(job.FieldPriority), ent.Asc(job.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query runnable job: %w", err)
	}

	update := j.Update().
		SetStatus(job.StatusRunning).
		SetLockOwner(w.id).
		SetLockedUntil(now.Add(w.config.LeaseDuration)).
		SetAttempt(j.Attempt + 1)
	if j.StartedAt == nil {
		update = update.SetStartedAt(now)
	}
	j, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return j, nil
}

// runLeaseRenewal periodically extends this worker's lease. A failed renewal
// means another worker holds the job now; the running handler is cancelled.
func (w *Worker) runLeaseRenewal(ctx context.Context, jobID string, cancelJob context.CancelFunc) {
	ticker := time.NewTicker(w.config.LeaseRenewalInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := w.jobs.RenewLease(ctx, jobID, w.id, w.config.LeaseDuration)
			if err == nil {
				continue
			}
			if errors.Is(err, services.ErrLeaseHeld) {
				slog.Warn("Lease lost, cancelling job execution",
					"job_id", jobID, "worker_id", w.id)
				cancelJob()
				return
			}
			slog.Warn("Lease renewal failed", "job_id", jobID, "error", err)
		}
	}
}

// dispatch routes the job to its handler. A missing handler is a permanent
// failure: retrying cannot fix an unroutable job.
func (w *Worker) dispatch(ctx context.Context, j *ent.Job) (map[string]any, error) {
	handler, err := w.handlers.Get(j.JobType)
	if err != nil {
		return nil, Permanent(err)
	}
	return handler.Handle(ctx, j)
}

// finishJob writes the terminal state and publishes the status transition.
// jobCtx distinguishes timeout and cancellation from handler failures.
func (w *Worker) finishJob(ctx, jobCtx context.Context, j *ent.Job, result map[string]any, handleErr error) error {
	switch {
	case handleErr == nil:
		if _, err := w.jobs.MarkSucceeded(ctx, j.ID, w.id, result); err != nil {
			return err
		}
		w.publishStatus(ctx, j, job.StatusSucceeded, "")
		return nil

	case errors.Is(jobCtx.Err(), context.Canceled) && !IsPermanent(handleErr):
		if _, err := w.jobs.MarkCancelled(ctx, j.ID, w.id); err != nil {
			return err
		}
		w.publishStatus(ctx, j, job.StatusCancelled, "")
		return nil

	case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
		timeoutErr := fmt.Errorf("job timed out after %v", w.config.JobTimeout)
		return w.fail(ctx, j, timeoutErr, false)

	default:
		return w.fail(ctx, j, handleErr, IsPermanent(handleErr))
	}
}

// fail marks the job failed and, for retryable failures with budget left,
// re-queues it with linear backoff.
func (w *Worker) fail(ctx context.Context, j *ent.Job, handleErr error, permanent bool) error {
	failed, err := w.jobs.MarkFailed(ctx, j.ID, w.id, handleErr.Error())
	if err != nil {
		return err
	}
	w.publishStatus(ctx, failed, job.StatusFailed, handleErr.Error())

	if permanent || failed.Attempt >= failed.MaxAttempts {
		slog.Info("Job failed terminally", "job_id", j.ID,
			"attempt", failed.Attempt, "max_attempts", failed.MaxAttempts,
			"permanent", permanent)
		return nil
	}

	backoff := w.config.RetryBackoffBase * time.Duration(failed.Attempt)
	requeued, err := w.jobs.Retry(ctx, j.ID, backoff)
	if err != nil {
		return fmt.Errorf("re-queueing after failure: %w", err)
	}
	w.publishStatus(ctx, requeued, job.StatusQueued, "")
	return nil
}

// publishStatus emits a status transition to the broker streams. Non-blocking:
// broker errors are swallowed by the emitter.
func (w *Worker) publishStatus(ctx context.Context, j *ent.Job, status job.Status, errMsg string) {
	if w.emitter == nil {
		return
	}
	w.emitter.Status(ctx, j.ID, string(status), j.Attempt, errMsg)
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
