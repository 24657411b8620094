// Package analyst implements the natural-language-to-SQL pipeline: entity
// augmentation, SQL generation, canonical parse, dialect transpilation, and
// execution against the connector.
package analyst

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/llm"
	"github.com/quillhq/quill/pkg/prompt"
	"github.com/quillhq/quill/pkg/semantic"
	"github.com/quillhq/quill/pkg/sqlgen"
	"github.com/quillhq/quill/pkg/transpile"
)

const (
	// defaultMatchThreshold is the cosine score below which an entity match
	// is discarded rather than injected.
	defaultMatchThreshold = 0.83

	// defaultRowLimit caps result sets when the request carries none.
	defaultRowLimit = 1000
)

// Agent runs analyst queries against one semantic model + connector pair.
type Agent struct {
	completer agent.Completer
	embedder  agent.Embedder        // optional: nil disables augmentation
	vectors   agent.ManagedVectorDB // optional: nil disables augmentation
	connector agent.SqlConnector
	model     *semantic.Model
	logger    *slog.Logger

	matchThreshold float32
	rowLimit       int
}

// Option tunes an Agent.
type Option func(*Agent)

// WithEntityAugmentation enables vector-backed entity matching.
func WithEntityAugmentation(e agent.Embedder, v agent.ManagedVectorDB) Option {
	return func(a *Agent) {
		a.embedder = e
		a.vectors = v
	}
}

// WithMatchThreshold overrides the cosine score cutoff for entity injection.
func WithMatchThreshold(t float32) Option {
	return func(a *Agent) { a.matchThreshold = t }
}

// WithRowLimit overrides the default result row cap.
func WithRowLimit(n int) Option {
	return func(a *Agent) { a.rowLimit = n }
}

func New(completer agent.Completer, connector agent.SqlConnector, model *semantic.Model, logger *slog.Logger, opts ...Option) *Agent {
	a := &Agent{
		completer:      completer,
		connector:      connector,
		model:          model,
		logger:         logger.With("agent", agent.AgentAnalyst, "model", model.Name),
		matchThreshold: defaultMatchThreshold,
		rowLimit:       defaultRowLimit,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Query runs the full pipeline. It never returns a Go error: every failure
// mode lands in the response's Error field so the supervisor and reasoning
// layers can act on it.
func (a *Agent) Query(ctx context.Context, req agent.AnalystQueryRequest) *agent.AnalystQueryResponse {
	start := time.Now()
	resp := &agent.AnalystQueryResponse{
		Dialect:   string(a.connector.Dialect()),
		ModelName: a.model.Name,
	}
	defer func() {
		resp.ExecutionTimeMS = time.Since(start).Milliseconds()
	}()

	limit := req.Limit
	if limit <= 0 {
		limit = a.rowLimit
	}

	question := req.Question
	filters := make(map[string]string, len(req.Filters))
	for k, v := range req.Filters {
		filters[k] = v
	}
	if a.embedder != nil && a.vectors != nil {
		resolved := a.resolveEntities(ctx, question)
		for col, val := range resolved {
			if _, taken := filters[col]; !taken {
				filters[col] = val
			}
		}
		// The resolved values ride along in the question text as well, so
		// generation ties the phrase to the exact stored spelling.
		question = augmentQuestion(question, resolved)
	}

	schema := prompt.RenderModel(a.model, sqlgen.Canonical)
	request := llm.Request{
		System: prompt.AnalystSystem(schema),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt.AnalystQuestion(question, filters, limit, req.ConversationContext)},
		},
	}

	raw, err := a.completer.Complete(ctx, request)
	if err != nil {
		resp.Error = "sql generation failed: " + err.Error()
		return resp
	}

	canonical := transpile.StripFence(raw)
	executable, err := a.compile(canonical)
	if err != nil {
		resp.SQLCanonical = canonical
		resp.Error = err.Error()
		return resp
	}
	resp.SQLCanonical = canonical
	resp.SQLExecutable = executable

	result, execErr := a.connector.Execute(ctx, executable, limit)
	if execErr != nil {
		// One self-correction pass: show the model the error and retry.
		corrected, retryErr := a.correct(ctx, schema, canonical, execErr, limit)
		if retryErr != nil {
			a.logger.Warn("Query failed after correction attempt",
				"error", execErr, "correction_error", retryErr)
			resp.Error = execErr.Error()
			return resp
		}
		resp.SQLCanonical = corrected.canonical
		resp.SQLExecutable = corrected.executable
		result = corrected.result
	}

	resp.Result = result
	return resp
}

type correctedQuery struct {
	canonical  string
	executable string
	result     *agent.QueryResult
}

// correct asks the completer to repair a failed query once, then re-runs the
// parse/transpile/execute tail of the pipeline.
func (a *Agent) correct(ctx context.Context, schema, failedSQL string, execErr error, limit int) (*correctedQuery, error) {
	raw, err := a.completer.Complete(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt.SQLCorrection(schema, failedSQL, execErr.Error())},
		},
	})
	if err != nil {
		return nil, err
	}
	canonical := transpile.StripFence(raw)
	executable, err := a.compile(canonical)
	if err != nil {
		return nil, err
	}
	result, err := a.connector.Execute(ctx, executable, limit)
	if err != nil {
		return nil, err
	}
	return &correctedQuery{canonical: canonical, executable: executable, result: result}, nil
}

// compile gates generated SQL (SELECT-only, parseable) and transpiles it to
// the connector dialect.
func (a *Agent) compile(canonical string) (string, error) {
	if _, err := transpile.Parse(canonical); err != nil {
		return "", errors.Join(errors.New("generated SQL rejected"), err)
	}
	executable, err := transpile.Transpile(canonical, a.connector.Dialect())
	if err != nil {
		return "", err
	}
	return a.connector.RewriteExpression(executable), nil
}
