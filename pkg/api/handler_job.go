package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill/ent/job"
	"github.com/quillhq/quill/pkg/events"
	"github.com/quillhq/quill/pkg/models"
)

// maxQueueDepth is the backlog above which submission returns 503. Workers
// drain the queue in priority order, so a backlog this deep means intake is
// outpacing capacity.
const maxQueueDepth = 10_000

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.guardrail != nil {
		if question, ok := req.Payload["question"].(string); ok {
			if msg := s.guardrail.Check(question); msg != "" {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg})
				return
			}
		}
	}

	if s.pool != nil {
		if h := s.pool.Health(); h.QueueDepth >= maxQueueDepth {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "queue saturated"})
			return
		}
	}

	created, err := s.jobs.Create(c.Request.Context(), &req)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	// Wake idle workers. Delivery is best effort; the claim loop polls the
	// jobs table regardless.
	if s.broker != nil {
		envelope := events.RequestEnvelope{
			JobID:          created.ID,
			OrganisationID: created.OrganisationID,
			MessageType:    created.JobType,
			Payload:        created.Payload,
			Headers:        created.Headers,
		}
		if err := s.broker.Publish(c.Request.Context(), events.RequestStream(created.JobType), envelope); err != nil {
			s.logger.Warn("Failed to publish job request", "job_id", created.ID, "error", err)
		}
	}

	c.JSON(http.StatusCreated, created)
}

// GetJob handles GET /api/v1/jobs/:id.
func (s *Server) GetJob(c *gin.Context) {
	j, err := s.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

// ListJobs handles GET /api/v1/jobs.
func (s *Server) ListJobs(c *gin.Context) {
	var filters models.JobFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp, err := s.jobs.List(c.Request.Context(), &filters)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelJob handles POST /api/v1/jobs/:id/cancel. Queued jobs flip to
// cancelled directly; running jobs are cancelled through the worker pool's
// context registry and finish asynchronously.
func (s *Server) CancelJob(c *gin.Context) {
	jobID := c.Param("id")

	j, err := s.jobs.Get(c.Request.Context(), jobID)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	if j.Status == job.StatusRunning {
		if s.pool != nil && s.pool.CancelJob(jobID) {
			c.JSON(http.StatusAccepted, gin.H{"job_id": jobID, "status": "cancelling"})
			return
		}
		// Not running on this pod; lease expiry will requeue or the owning
		// pod handles its own cancel requests.
		c.JSON(http.StatusConflict, gin.H{"error": "job is running on another worker"})
		return
	}

	cancelled, err := s.jobs.Cancel(c.Request.Context(), jobID)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// ListJobEvents handles GET /api/v1/jobs/:id/events.
func (s *Server) ListJobEvents(c *gin.Context) {
	jobID := c.Param("id")

	// 404 for unknown jobs rather than an empty list.
	if _, err := s.jobs.Get(c.Request.Context(), jobID); err != nil {
		s.mapServiceError(c, err)
		return
	}

	evts, err := s.eventLog.List(c.Request.Context(), jobID)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job_id": jobID, "events": evts})
}
