package events

import "time"

// BasePayload carries the fields common to every published event.
type BasePayload struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Timestamp string `json:"timestamp"`
}

// NewBasePayload stamps a payload with the current time.
func NewBasePayload(eventType, jobID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		JobID:     jobID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}

// JobStatusPayload announces a job status transition.
type JobStatusPayload struct {
	BasePayload
	Status       string `json:"status"`
	Attempt      int    `json:"attempt,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// JobProgressPayload carries incremental progress for a running job.
type JobProgressPayload struct {
	BasePayload
	Progress      int    `json:"progress"`
	StatusMessage string `json:"status_message,omitempty"`
}

// StepPayload describes one orchestrator plan step execution.
type StepPayload struct {
	BasePayload
	StepID     string `json:"step_id"`
	Agent      string `json:"agent"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// RequestEnvelope is the broker message workers consume. Payload is the raw
// job payload; the job row is the source of truth for status.
type RequestEnvelope struct {
	JobID          string            `json:"job_id"`
	OrganisationID string            `json:"organisation_id"`
	MessageType    string            `json:"message_type"`
	Payload        map[string]any    `json:"payload"`
	Headers        map[string]string `json:"headers,omitempty"`
}
