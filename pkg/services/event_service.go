package services

import (
	"context"
	"fmt"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/ent/jobevent"
)

// EventService appends and reads the per-job event log. Appends are
// idempotent on (job_id, event_type, event_index): a re-delivered event lands
// on the unique constraint and is dropped.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new event service.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Append writes one event. Returns (created, nil) on a fresh append and
// (false, nil) when the same (job_id, event_type, event_index) already exists.
func (s *EventService) Append(ctx context.Context, jobID, eventType string, index int, details map[string]any) (bool, error) {
	err := s.client.JobEvent.Create().
		SetJobID(jobID).
		SetEventType(eventType).
		SetEventIndex(index).
		SetDetails(details).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("appending job event: %w", err)
	}
	return true, nil
}

// NextIndex returns the next monotonic index for (job_id, event_type).
func (s *EventService) NextIndex(ctx context.Context, jobID, eventType string) (int, error) {
	last, err := s.client.JobEvent.Query().
		Where(
			jobevent.JobIDEQ(jobID),
			jobevent.EventTypeEQ(eventType),
		).
		Order(ent.Desc(jobevent.FieldEventIndex)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("querying last event index: %w", err)
	}
	return last.EventIndex + 1, nil
}

// List returns all events for a job in append order.
func (s *EventService) List(ctx context.Context, jobID string) ([]*ent.JobEvent, error) {
	events, err := s.client.JobEvent.Query().
		Where(jobevent.JobIDEQ(jobID)).
		Order(ent.Asc(jobevent.FieldCreatedAt), ent.Asc(jobevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing job events: %w", err)
	}
	return events, nil
}

// CountByType returns how many events of one type a job has recorded. Used by
// at-least-once tests and duplicate-delivery checks.
func (s *EventService) CountByType(ctx context.Context, jobID, eventType string) (int, error) {
	n, err := s.client.JobEvent.Query().
		Where(
			jobevent.JobIDEQ(jobID),
			jobevent.EventTypeEQ(eventType),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting job events: %w", err)
	}
	return n, nil
}
