package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/ent/predicate"
)

// sweepState tracks lease sweep metrics (thread-safe).
type sweepState struct {
	mu       sync.Mutex
	lastScan time.Time
	expired  int
}

// runLeaseSweep periodically fails running jobs whose lease expired and whose
// attempt budget is exhausted. Jobs with budget left need no sweep — the
// claim predicate picks them up directly.
func (p *WorkerPool) runLeaseSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.LeaseSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.failExhaustedLeases(ctx); err != nil {
				slog.Error("Lease sweep failed", "error", err)
			}
		}
	}
}

// attemptBudgetSpent matches jobs whose attempt counter reached the budget.
func attemptBudgetSpent() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		s.Where(sql.ColumnsGTE(s.C(job.FieldAttempt), s.C(job.FieldMaxAttempts)))
	})
}

// failExhaustedLeases finds running jobs with an expired lease and no attempt
// budget left and marks them failed.
func (p *WorkerPool) failExhaustedLeases(ctx context.Context) error {
	now := time.Now()
	stale, err := p.client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.LockedUntilNotNil(),
			job.LockedUntilLT(now),
			attemptBudgetSpent(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query expired leases: %w", err)
	}

	if len(stale) == 0 {
		p.sweep.mu.Lock()
		p.sweep.lastScan = now
		p.sweep.mu.Unlock()
		return nil
	}

	slog.Warn("Detected expired leases with exhausted attempt budget", "count", len(stale))

	swept := 0
	for _, j := range stale {
		owner := "unknown"
		if j.LockOwner != nil {
			owner = *j.LockOwner
		}
		err := j.Update().
			SetStatus(job.StatusFailed).
			SetFinishedAt(now).
			SetErrorMessage(fmt.Sprintf("lease expired: no renewal from worker %s, attempt budget exhausted (%d/%d)",
				owner, j.Attempt, j.MaxAttempts)).
			ClearLockOwner().
			ClearLockedUntil().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to fail expired lease",
				"job_id", j.ID,
				"error", err)
			continue
		}
		if p.emitter != nil {
			p.emitter.Status(ctx, j.ID, string(job.StatusFailed), j.Attempt, "lease expired")
		}
		slog.Warn("Expired lease marked as failed", "job_id", j.ID, "old_owner", owner)
		swept++
	}

	p.sweep.mu.Lock()
	p.sweep.lastScan = now
	p.sweep.expired += swept
	p.sweep.mu.Unlock()

	return nil
}

// RecoverStartupLeases performs a one-time recovery of jobs this pod held
// when it previously crashed. Jobs with attempt budget left go back to
// queued for immediate re-claim; exhausted jobs are failed.
// Called once during startup, before the worker pool begins processing.
func RecoverStartupLeases(ctx context.Context, client *ent.Client, podID string) error {
	held, err := client.Job.Query().
		Where(
			job.StatusEQ(job.StatusRunning),
			job.LockOwnerHasPrefix(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup leases: %w", err)
	}

	if len(held) == 0 {
		return nil
	}

	slog.Warn("Found leases held from previous run",
		"pod_id", podID,
		"count", len(held))

	now := time.Now()
	for _, j := range held {
		var update *ent.JobUpdateOne
		if j.Attempt < j.MaxAttempts {
			update = j.Update().
				SetStatus(job.StatusQueued).
				ClearLockOwner().
				ClearLockedUntil()
		} else {
			update = j.Update().
				SetStatus(job.StatusFailed).
				SetFinishedAt(now).
				SetErrorMessage(fmt.Sprintf("worker pod %s restarted while job was running, attempt budget exhausted (%d/%d)",
					podID, j.Attempt, j.MaxAttempts)).
				ClearLockOwner().
				ClearLockedUntil()
		}
		if err := update.Exec(ctx); err != nil {
			slog.Error("Failed to recover startup lease",
				"job_id", j.ID,
				"error", err)
			continue
		}
		slog.Info("Startup lease recovered", "job_id", j.ID, "attempt", j.Attempt)
	}

	return nil
}
