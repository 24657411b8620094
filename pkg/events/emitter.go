package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quillhq/quill/pkg/services"
)

// Emitter is the handler-facing event surface: one call appends the durable
// JobEventRecord, updates the job's progress columns, and publishes to the
// broker. Broker failures are logged, never returned — the durable log is
// the source of truth.
type Emitter struct {
	jobs   *services.JobService
	log    *services.EventService
	broker MessageBroker
}

// NewEmitter creates an emitter. broker may be nil (publishing disabled).
func NewEmitter(jobs *services.JobService, log *services.EventService, broker MessageBroker) *Emitter {
	return &Emitter{jobs: jobs, log: log, broker: broker}
}

// Emit appends one event at the next monotonic index and publishes it.
// Returns false when the event already existed (duplicate delivery).
func (e *Emitter) Emit(ctx context.Context, jobID, eventType string, details map[string]any) (bool, error) {
	index, err := e.log.NextIndex(ctx, jobID, eventType)
	if err != nil {
		return false, err
	}
	return e.EmitAt(ctx, jobID, eventType, index, details)
}

// EmitAt appends one event at an explicit index. Handlers that re-run after
// a lease expiry pass the same index so the duplicate collapses.
func (e *Emitter) EmitAt(ctx context.Context, jobID, eventType string, index int, details map[string]any) (bool, error) {
	created, err := e.log.Append(ctx, jobID, eventType, index, details)
	if err != nil {
		return false, fmt.Errorf("emitting %s for job %s: %w", eventType, jobID, err)
	}
	if !created {
		slog.Debug("Duplicate event dropped", "job_id", jobID, "event_type", eventType, "event_index", index)
		return false, nil
	}
	e.publish(ctx, JobStream(jobID), map[string]any{
		"base":    NewBasePayload(eventType, jobID),
		"details": details,
	})
	return true, nil
}

// Progress updates the job's progress columns and publishes to both the job
// stream and the global stream. No event-log append: progress is transient
// state on the job row.
func (e *Emitter) Progress(ctx context.Context, jobID string, progress int, message string) error {
	if err := e.jobs.SetProgress(ctx, jobID, progress, message); err != nil {
		return err
	}
	payload := JobProgressPayload{
		BasePayload:   NewBasePayload(EventTypeJobProgress, jobID),
		Progress:      progress,
		StatusMessage: message,
	}
	e.publish(ctx, JobStream(jobID), payload)
	e.publish(ctx, GlobalJobsStream, payload)
	return nil
}

// Status publishes a job status transition to both streams. The durable
// state lives on the job row; no event-log append here.
func (e *Emitter) Status(ctx context.Context, jobID, status string, attempt int, errMsg string) {
	payload := JobStatusPayload{
		BasePayload:  NewBasePayload(EventTypeJobStatus, jobID),
		Status:       status,
		Attempt:      attempt,
		ErrorMessage: errMsg,
	}
	e.publish(ctx, JobStream(jobID), payload)
	e.publish(ctx, GlobalJobsStream, payload)
}

func (e *Emitter) publish(ctx context.Context, stream string, payload any) {
	if e.broker == nil {
		return
	}
	if err := e.broker.Publish(ctx, stream, payload); err != nil {
		slog.Warn("Broker publish failed", "stream", stream, "error", err)
	}
}
