// Package models defines request/response shapes shared between the API
// surface and the service layer.
package models

import (
	"time"

	"github.com/quillhq/quill/ent"
)

// CreateJobRequest contains fields for enqueueing a new job.
type CreateJobRequest struct {
	JobID          string            `json:"job_id,omitempty"`
	OrganisationID string            `json:"organisation_id"`
	JobType        string            `json:"job_type"`
	Payload        map[string]any    `json:"payload"`
	Headers        map[string]string `json:"headers,omitempty"`
	Priority       int               `json:"priority,omitempty"`
	MaxAttempts    int               `json:"max_attempts,omitempty"`
}

// JobFilters contains filtering options for listing jobs. The form tags bind
// URL query parameters on the list endpoint.
type JobFilters struct {
	OrganisationID string     `json:"organisation_id,omitempty" form:"organisation_id"`
	Status         string     `json:"status,omitempty" form:"status"`
	JobType        string     `json:"job_type,omitempty" form:"job_type"`
	CreatedAfter   *time.Time `json:"created_after,omitempty" form:"created_after" time_format:"2006-01-02T15:04:05Z07:00"`
	CreatedBefore  *time.Time `json:"created_before,omitempty" form:"created_before" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit          int        `json:"limit,omitempty" form:"limit"`
	Offset         int        `json:"offset,omitempty" form:"offset"`
}

// JobListResponse contains a paginated job list.
type JobListResponse struct {
	Jobs       []*ent.Job `json:"jobs"`
	TotalCount int        `json:"total_count"`
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
}
