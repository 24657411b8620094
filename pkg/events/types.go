// Package events provides job lifecycle event delivery: a Redis-streams
// message broker for cross-process distribution plus an emitter that appends
// the durable per-job event log.
//
// Two layers carry every event:
//
//   - JobEventRecord rows (ent) — the durable, totally-ordered log per job.
//     Appends are idempotent on (job_id, event_type, event_index).
//   - Broker streams — at-least-once pub/sub keyed by message type, consumed
//     by API subscribers and by workers picking up queued requests.
//
// Consumers MUST tolerate duplicate deliveries; the durable log's unique
// index is the deduplication point.
package events

// Job lifecycle event types (persisted + published).
const (
	EventTypeJobStatus   = "job.status"
	EventTypeJobProgress = "job.progress"

	EventTypeSemanticQueryStarted   = "semantic_query.started"
	EventTypeSemanticQueryCompleted = "semantic_query.completed"
	EventTypeSemanticQueryFailed    = "semantic_query.failed"

	EventTypeAnalystCall     = "analyst.call"
	EventTypePlanIssued      = "plan.issued"
	EventTypeReasoningResult = "reasoning.decision"
)

// Message types for broker routing. Workers subscribe by message type;
// the job_type column carries the same value.
const (
	MessageTypeSemanticQuery = "semantic_query_request"
	MessageTypeDeepResearch  = "deep_research_request"
	MessageTypeModelRefresh  = "model_refresh_request"
)

// GlobalJobsStream is the stream carrying job-level status events for
// dashboard subscribers.
const GlobalJobsStream = "quill:jobs"

// JobStream returns the stream name for a single job's events.
func JobStream(jobID string) string {
	return "quill:job:" + jobID
}

// RequestStream returns the stream workers consume for a message type.
func RequestStream(messageType string) string {
	return "quill:requests:" + messageType
}
