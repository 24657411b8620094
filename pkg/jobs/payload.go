// Package jobs implements the queue handlers for the registered message
// types: semantic query orchestration, standalone deep research, and
// semantic model vector refresh.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/quillhq/quill/pkg/planner"
)

// Emitter is the event surface handlers report through. Satisfied by
// *events.Emitter. Lifecycle events carry fixed indices so a re-delivered
// job collapses onto the already-appended row instead of duplicating it.
type Emitter interface {
	EmitAt(ctx context.Context, jobID, eventType string, index int, details map[string]any) (bool, error)
	Progress(ctx context.Context, jobID string, progress int, message string) error
}

// SemanticQueryPayload is the contract for semantic_query_request jobs.
type SemanticQueryPayload struct {
	Question    string                       `json:"question"`
	ModelID     string                       `json:"model_id"`
	Constraints *planner.PlanningConstraints `json:"constraints,omitempty"`
	Routing     *planner.RoutingOverrides    `json:"routing,omitempty"`
}

// DeepResearchPayload is the contract for deep_research_request jobs.
type DeepResearchPayload struct {
	Question string `json:"question"`
}

// ModelRefreshPayload is the contract for model_refresh_request jobs.
type ModelRefreshPayload struct {
	ModelID string `json:"model_id"`
}

// decodePayload round-trips the stored JSON payload into a typed contract.
// Unknown fields are ignored; type mismatches fail.
func decodePayload(raw map[string]any, out any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encoding payload: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding payload: %w", err)
	}
	return nil
}
