package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/agent/research"
	"github.com/quillhq/quill/pkg/events"
	"github.com/quillhq/quill/pkg/queue"
)

// Researcher runs one research question. Satisfied by *research.Agent.
type Researcher interface {
	Research(ctx context.Context, question string, seed []agent.Document) (*agent.ResearchResult, error)
}

// DeepResearchHandler runs deep_research_request jobs outside the supervisor
// loop: one research pass, no warehouse involvement.
type DeepResearchHandler struct {
	researcher Researcher
	emitter    Emitter
	logger     *slog.Logger
}

func NewDeepResearchHandler(researcher Researcher, emitter Emitter, logger *slog.Logger) *DeepResearchHandler {
	return &DeepResearchHandler{
		researcher: researcher,
		emitter:    emitter,
		logger:     logger.With("component", "deep_research_handler"),
	}
}

func (h *DeepResearchHandler) JobType() string { return events.MessageTypeDeepResearch }

func (h *DeepResearchHandler) Handle(ctx context.Context, j *ent.Job) (map[string]any, error) {
	var p DeepResearchPayload
	if err := decodePayload(j.Payload, &p); err != nil {
		return nil, queue.Permanent(err)
	}
	if p.Question == "" {
		return nil, queue.Permanent(errors.New("payload question is required"))
	}

	_ = h.emitter.Progress(ctx, j.ID, 10, "researching")

	result, err := h.researcher.Research(ctx, p.Question, nil)
	if err != nil {
		// No documents is a question problem, not an infrastructure problem.
		if errors.Is(err, research.ErrNoDocuments) {
			return nil, queue.Permanent(err)
		}
		return nil, err
	}

	findings := make([]map[string]any, 0, len(result.Findings))
	for _, f := range result.Findings {
		findings = append(findings, map[string]any{
			"statement":    f.Statement,
			"evidence_ids": f.EvidenceIDs,
			"confidence":   f.Confidence,
		})
	}
	return map[string]any{
		"question":       result.Question,
		"synthesis":      result.Synthesis,
		"findings":       findings,
		"evidence_count": len(result.Evidence),
	}, nil
}
