// Package agent defines the capability interfaces the agents consume and the
// artifact types they produce. Concrete implementations are injected:
// pkg/llm provides completions and embeddings, pkg/connector wraps SQL
// warehouses, and the vector index ships with an in-memory reference
// implementation.
package agent

import (
	"context"
	"errors"
	"time"

	"github.com/quillhq/quill/pkg/llm"
	"github.com/quillhq/quill/pkg/sqlgen"
)

// Completer and Embedder are the LLM capabilities; agents share pkg/llm's
// definitions rather than redeclaring them.
type (
	Completer = llm.Completer
	Embedder  = llm.Embedder
)

// ErrVectorDimension indicates a vector whose dimensionality does not match
// the index.
var ErrVectorDimension = errors.New("vector dimension mismatch")

// QueryResult is the normalized shape every SqlConnector returns.
type QueryResult struct {
	Columns   []string `json:"columns"`
	Rows      [][]any  `json:"rows"`
	RowCount  int      `json:"rowcount"`
	ElapsedMS int64    `json:"elapsed_ms"`
	SourceSQL string   `json:"source_sql"`
}

// SqlConnector executes SQL against one warehouse. Implementations must be
// safe for concurrent Execute calls.
type SqlConnector interface {
	// Dialect identifies the SQL dialect the warehouse speaks.
	Dialect() sqlgen.Dialect

	// Execute runs sql and returns the normalized result. maxRows <= 0 means
	// no cap; timeouts are the connector's own.
	Execute(ctx context.Context, sql string, maxRows int) (*QueryResult, error)

	// RewriteExpression optionally adapts a compiled expression to
	// warehouse-local quirks. Implementations with no quirks return expr
	// unchanged.
	RewriteExpression(expr string) string
}

// VectorMatch is one search hit from a vector index.
type VectorMatch struct {
	ID       string
	Score    float32
	Metadata map[string]string
}

// ManagedVectorDB stores value vectors for entity matching. The analyst
// searches it during question augmentation; the model-refresh job upserts.
type ManagedVectorDB interface {
	CreateIndex(ctx context.Context, dim int) error
	UpsertVectors(ctx context.Context, vectors [][]float32, metadata []map[string]string) error
	Search(ctx context.Context, vector []float32, topK int, filters map[string]string) ([]VectorMatch, error)
	DeleteIndex(ctx context.Context) error
	TestConnection(ctx context.Context) error
}

// ToolCall records one agent invocation for diagnostics. The supervisor
// appends them in execution order.
type ToolCall struct {
	StepID     string         `json:"step_id"`
	Agent      string         `json:"agent"`
	Arguments  map[string]any `json:"arguments,omitempty"`
	Summary    string         `json:"summary,omitempty"`
	DurationMS int64          `json:"duration_ms"`
	Error      string         `json:"error,omitempty"`
	StartedAt  time.Time      `json:"started_at"`
}
