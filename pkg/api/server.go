// Package api exposes the HTTP intake surface: job submission and status,
// the per-job event log, model and connector registries, a synchronous
// AST-to-SQL compile endpoint, and health.
package api

import (
	"context"
	stdsql "database/sql"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/pkg/events"
	"github.com/quillhq/quill/pkg/models"
	"github.com/quillhq/quill/pkg/queue"
	"github.com/quillhq/quill/pkg/semantic"
)

// JobStore is the slice of JobService the API needs.
type JobStore interface {
	Create(ctx context.Context, req *models.CreateJobRequest) (*ent.Job, error)
	Get(ctx context.Context, jobID string) (*ent.Job, error)
	List(ctx context.Context, filters *models.JobFilters) (*models.JobListResponse, error)
	Cancel(ctx context.Context, jobID string) (*ent.Job, error)
}

// EventStore reads the durable per-job event log.
type EventStore interface {
	List(ctx context.Context, jobID string) ([]*ent.JobEvent, error)
}

// ModelStore is the slice of ModelService the API needs.
type ModelStore interface {
	Create(ctx context.Context, req *models.CreateModelRequest) (*ent.SemanticModelRecord, error)
	Get(ctx context.Context, modelID string) (*ent.SemanticModelRecord, *semantic.Model, error)
	List(ctx context.Context, orgID string) ([]*ent.SemanticModelRecord, error)
	Update(ctx context.Context, modelID, definition string, tags []string) (*ent.SemanticModelRecord, error)
	Delete(ctx context.Context, modelID string) error
}

// ConnectorStore is the slice of ConnectorService the API needs.
type ConnectorStore interface {
	Create(ctx context.Context, req *models.CreateConnectorRequest) (*ent.ConnectorRecord, error)
	Get(ctx context.Context, connectorID string) (*ent.ConnectorRecord, error)
	List(ctx context.Context, orgID string) ([]*ent.ConnectorRecord, error)
	SetEnabled(ctx context.Context, connectorID string, enabled bool) error
}

// Pool is the worker-pool slice the API needs for health and cancellation.
type Pool interface {
	Health() *queue.PoolHealth
	CancelJob(jobID string) bool
}

// Server holds the handler dependencies.
type Server struct {
	jobs       JobStore
	eventLog   EventStore
	models     ModelStore
	connectors ConnectorStore
	logger     *slog.Logger

	broker    events.MessageBroker
	pool      Pool
	db        *stdsql.DB
	guardrail *Guardrail
}

// Option configures optional server dependencies.
type Option func(*Server)

// WithBroker wires the message broker; job submission publishes a request
// envelope so idle workers wake without waiting for the next poll.
func WithBroker(b events.MessageBroker) Option {
	return func(s *Server) { s.broker = b }
}

// WithPool wires the worker pool for health reporting and running-job
// cancellation.
func WithPool(p Pool) Option {
	return func(s *Server) { s.pool = p }
}

// WithDB wires the database handle used by the health endpoint.
func WithDB(db *stdsql.DB) Option {
	return func(s *Server) { s.db = db }
}

// WithGuardrail screens inbound questions before a job is accepted.
func WithGuardrail(g *Guardrail) Option {
	return func(s *Server) { s.guardrail = g }
}

// NewServer creates the API server.
func NewServer(jobs JobStore, eventLog EventStore, modelStore ModelStore, connectors ConnectorStore, logger *slog.Logger, opts ...Option) *Server {
	s := &Server{
		jobs:       jobs,
		eventLog:   eventLog,
		models:     modelStore,
		connectors: connectors,
		logger:     logger.With("component", "api"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), securityHeaders(), requestLogger(s.logger))

	r.GET("/health", s.HealthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/jobs", s.CreateJob)
		v1.GET("/jobs", s.ListJobs)
		v1.GET("/jobs/:id", s.GetJob)
		v1.POST("/jobs/:id/cancel", s.CancelJob)
		v1.GET("/jobs/:id/events", s.ListJobEvents)

		v1.POST("/compile", s.Compile)

		v1.POST("/models", s.CreateModel)
		v1.GET("/models", s.ListModels)
		v1.GET("/models/:id", s.GetModel)
		v1.PUT("/models/:id", s.UpdateModel)
		v1.DELETE("/models/:id", s.DeleteModel)

		v1.POST("/connectors", s.CreateConnector)
		v1.GET("/connectors", s.ListConnectors)
		v1.GET("/connectors/:id", s.GetConnector)
		v1.POST("/connectors/:id/enabled", s.SetConnectorEnabled)
	}

	return r
}
