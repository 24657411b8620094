package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/pkg/events"
	"github.com/quillhq/quill/pkg/orchestrator"
	"github.com/quillhq/quill/pkg/planner"
	"github.com/quillhq/quill/pkg/queue"
	"github.com/quillhq/quill/pkg/services"
)

// Runner runs one orchestrated question. Satisfied by
// *orchestrator.Supervisor.
type Runner interface {
	Run(ctx context.Context, req orchestrator.Request) (*orchestrator.Result, error)
}

// SupervisorBuilder assembles a supervisor bound to one organisation's
// semantic model: the analyst agent needs the parsed model and its
// connector, so the supervisor is built per job rather than shared.
type SupervisorBuilder interface {
	ForModel(ctx context.Context, orgID, modelID string) (Runner, error)
}

// SemanticQueryHandler orchestrates semantic_query_request jobs.
type SemanticQueryHandler struct {
	builder SupervisorBuilder
	emitter Emitter
	logger  *slog.Logger
}

func NewSemanticQueryHandler(builder SupervisorBuilder, emitter Emitter, logger *slog.Logger) *SemanticQueryHandler {
	return &SemanticQueryHandler{
		builder: builder,
		emitter: emitter,
		logger:  logger.With("component", "semantic_query_handler"),
	}
}

func (h *SemanticQueryHandler) JobType() string { return events.MessageTypeSemanticQuery }

// Handle runs the supervisor loop and returns the orchestrator result as the
// job result. Contract violations are permanent; orchestration errors retry.
func (h *SemanticQueryHandler) Handle(ctx context.Context, j *ent.Job) (map[string]any, error) {
	var p SemanticQueryPayload
	if err := decodePayload(j.Payload, &p); err != nil {
		return nil, queue.Permanent(err)
	}
	if p.Question == "" {
		return nil, queue.Permanent(errors.New("payload question is required"))
	}
	if p.ModelID == "" {
		return nil, queue.Permanent(errors.New("payload model_id is required"))
	}

	// Index 0 is fixed: a lease-expiry re-run collapses on the unique key
	// instead of appending a second started event.
	if _, err := h.emitter.EmitAt(ctx, j.ID, events.EventTypeSemanticQueryStarted, 0, map[string]any{
		"question": p.Question,
		"model_id": p.ModelID,
	}); err != nil {
		h.logger.Warn("Failed to emit started event", "job_id", j.ID, "error", err)
	}
	_ = h.emitter.Progress(ctx, j.ID, 10, "planning")

	runner, err := h.builder.ForModel(ctx, j.OrganisationID, p.ModelID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) || errors.Is(err, services.ErrConnectorDisabled) {
			return nil, queue.Permanent(err)
		}
		return nil, fmt.Errorf("building supervisor: %w", err)
	}

	constraints := planner.DefaultConstraints()
	if p.Constraints != nil {
		constraints = *p.Constraints
	}
	var planningCtx *planner.PlanningContext
	if p.Routing != nil {
		planningCtx = &planner.PlanningContext{Routing: *p.Routing}
	}

	res, err := runner.Run(ctx, orchestrator.Request{
		Question:    p.Question,
		Constraints: constraints,
		Context:     planningCtx,
	})
	if err != nil {
		// One failed event per attempt; a duplicate delivery of the same
		// attempt collapses.
		if _, emitErr := h.emitter.EmitAt(ctx, j.ID, events.EventTypeSemanticQueryFailed, max(j.Attempt-1, 0), map[string]any{
			"error":   err.Error(),
			"attempt": j.Attempt,
		}); emitErr != nil {
			h.logger.Warn("Failed to emit failed event", "job_id", j.ID, "error", emitErr)
		}
		return nil, err
	}

	_ = h.emitter.Progress(ctx, j.ID, 90, "assembling result")
	if _, err := h.emitter.EmitAt(ctx, j.ID, events.EventTypeSemanticQueryCompleted, 0, map[string]any{
		"summary":    res.Summary,
		"iterations": res.Diagnostics.Iterations,
	}); err != nil {
		h.logger.Warn("Failed to emit completed event", "job_id", j.ID, "error", err)
	}

	return resultMap(res)
}

// resultMap converts the orchestrator result to the jobs table's JSON result
// shape.
func resultMap(res *orchestrator.Result) (map[string]any, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding result: %w", err)
	}
	return m, nil
}
