// Package queue provides lease-based job claiming and worker pool
// infrastructure. Delivery is at-least-once: a job whose lease expires is
// re-claimed by another worker, so handlers write their side effects through
// the idempotent event log.
package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/quillhq/quill/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no runnable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrUnknownJobType indicates no handler is registered for a job's type.
	ErrUnknownJobType = errors.New("unknown job type")
)

// PermanentError wraps a handler error that must not be retried: the job goes
// straight to failed regardless of remaining attempts. Validation failures
// and guardrail rejections are permanent; transient infrastructure errors
// are not.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent marks err as non-retryable.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err carries a PermanentError anywhere in its
// chain.
func IsPermanent(err error) bool {
	var pe *PermanentError
	return errors.As(err, &pe)
}

// JobHandler processes one job type. Handle returns the job result on
// success; errors wrapped with Permanent skip the retry budget.
//
// The worker owns claiming, lease renewal, and terminal status. Handlers own
// everything in between and report progress through the events.Emitter.
type JobHandler interface {
	JobType() string
	Handle(ctx context.Context, j *ent.Job) (map[string]any, error)
}

// HandlerRegistry maps job types to handlers.
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string]JobHandler
}

// NewHandlerRegistry creates an empty registry.
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[string]JobHandler)}
}

// Register adds a handler. Registering the same job type twice is a
// programming error.
func (r *HandlerRegistry) Register(h JobHandler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[h.JobType()]; ok {
		return fmt.Errorf("handler already registered for job type %q", h.JobType())
	}
	r.handlers[h.JobType()] = h
	return nil
}

// Get returns the handler for a job type.
func (r *HandlerRegistry) Get(jobType string) (JobHandler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[jobType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownJobType, jobType)
	}
	return h, nil
}

// JobTypes returns the registered job types.
func (r *HandlerRegistry) JobTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.handlers))
	for t := range r.handlers {
		types = append(types, t)
	}
	return types
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	RunningJobs   int            `json:"running_jobs"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	LastLeaseScan time.Time      `json:"last_lease_scan"`
	LeasesExpired int            `json:"leases_expired"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
