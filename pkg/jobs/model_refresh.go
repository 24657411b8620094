package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/events"
	"github.com/quillhq/quill/pkg/queue"
	"github.com/quillhq/quill/pkg/semantic"
	"github.com/quillhq/quill/pkg/services"
)

const (
	// distinctValueCap bounds the values pulled per vectorized dimension.
	distinctValueCap = 1000
	embedBatchSize   = 64
)

// ModelCatalog loads a stored semantic model. Satisfied by
// *services.ModelService.
type ModelCatalog interface {
	Get(ctx context.Context, modelID string) (*ent.SemanticModelRecord, *semantic.Model, error)
}

// ConnectorOpener opens a live SQL connector by record id.
type ConnectorOpener interface {
	Open(ctx context.Context, connectorID string) (agent.SqlConnector, error)
}

// ModelRefreshHandler rebuilds the entity vector index for one model: it
// pulls distinct values of every vectorized dimension from the warehouse,
// embeds them, and upserts them so analyst question augmentation can match
// entity phrases to real values.
type ModelRefreshHandler struct {
	catalog    ModelCatalog
	connectors ConnectorOpener
	embedder   agent.Embedder
	vectors    agent.ManagedVectorDB
	emitter    Emitter
	logger     *slog.Logger
}

func NewModelRefreshHandler(catalog ModelCatalog, connectors ConnectorOpener, embedder agent.Embedder, vectors agent.ManagedVectorDB, emitter Emitter, logger *slog.Logger) *ModelRefreshHandler {
	return &ModelRefreshHandler{
		catalog:    catalog,
		connectors: connectors,
		embedder:   embedder,
		vectors:    vectors,
		emitter:    emitter,
		logger:     logger.With("component", "model_refresh_handler"),
	}
}

func (h *ModelRefreshHandler) JobType() string { return events.MessageTypeModelRefresh }

func (h *ModelRefreshHandler) Handle(ctx context.Context, j *ent.Job) (map[string]any, error) {
	var p ModelRefreshPayload
	if err := decodePayload(j.Payload, &p); err != nil {
		return nil, queue.Permanent(err)
	}
	if p.ModelID == "" {
		return nil, queue.Permanent(errors.New("payload model_id is required"))
	}

	rec, model, err := h.catalog.Get(ctx, p.ModelID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, queue.Permanent(err)
		}
		return nil, fmt.Errorf("loading model: %w", err)
	}

	conn, err := h.connectors.Open(ctx, rec.ConnectorID)
	if err != nil {
		return nil, fmt.Errorf("opening connector %s: %w", rec.ConnectorID, err)
	}

	indexed := 0
	dimensions := 0
	created := false
	tableKeys := model.OrderedTableKeys()
	for ti, key := range tableKeys {
		tbl, _ := model.Table(key)
		for i := range tbl.Dimensions {
			dim := &tbl.Dimensions[i]
			if !dim.Vectorized {
				continue
			}
			dimensions++
			n, err := h.refreshDimension(ctx, conn, key, tbl, dim, &created)
			if err != nil {
				// One bad dimension should not abort the whole refresh.
				h.logger.Warn("Dimension refresh failed",
					"model_id", p.ModelID, "table", key, "dimension", dim.Name, "error", err)
				continue
			}
			indexed += n
		}
		_ = h.emitter.Progress(ctx, j.ID, 10+80*(ti+1)/len(tableKeys), "indexed "+key)
	}

	h.logger.Info("Model refresh complete",
		"model_id", p.ModelID, "dimensions", dimensions, "values_indexed", indexed)
	return map[string]any{
		"model_id":       p.ModelID,
		"dimensions":     dimensions,
		"values_indexed": indexed,
	}, nil
}

// refreshDimension pulls distinct values and upserts their embeddings. The
// index is created lazily from the first embedding's dimensionality, which
// also drops stale values from the previous refresh.
func (h *ModelRefreshHandler) refreshDimension(ctx context.Context, conn agent.SqlConnector, tableKey string, tbl *semantic.Table, dim *semantic.Dimension, created *bool) (int, error) {
	values, err := distinctValues(ctx, conn, tbl, dim)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, nil
	}

	column := tableKey + "." + dim.Name
	total := 0
	for start := 0; start < len(values); start += embedBatchSize {
		end := min(start+embedBatchSize, len(values))
		batch := values[start:end]

		vectors, err := h.embedder.Embed(ctx, batch)
		if err != nil {
			return total, fmt.Errorf("embedding values: %w", err)
		}
		if len(vectors) != len(batch) {
			return total, fmt.Errorf("embedder returned %d vectors for %d values", len(vectors), len(batch))
		}

		if !*created && len(vectors) > 0 {
			if err := h.vectors.CreateIndex(ctx, len(vectors[0])); err != nil {
				return total, fmt.Errorf("creating index: %w", err)
			}
			*created = true
		}

		metadata := make([]map[string]string, len(batch))
		for i, v := range batch {
			metadata[i] = map[string]string{
				"id":     column + ":" + v,
				"table":  tableKey,
				"column": column,
				"value":  v,
			}
		}
		if err := h.vectors.UpsertVectors(ctx, vectors, metadata); err != nil {
			return total, fmt.Errorf("upserting vectors: %w", err)
		}
		total += len(batch)
	}
	return total, nil
}

func distinctValues(ctx context.Context, conn agent.SqlConnector, tbl *semantic.Table, dim *semantic.Dimension) ([]string, error) {
	d := conn.Dialect()
	expr := dim.Expression
	if expr == "" {
		expr = d.QuoteIdent(dim.Name)
	}
	sql := fmt.Sprintf("SELECT DISTINCT %s FROM %s %s",
		expr,
		d.QuoteQualified(tbl.Catalog, tbl.Schema, tbl.Name),
		d.LimitClause(distinctValueCap, 0))
	sql = conn.RewriteExpression(sql)

	res, err := conn.Execute(ctx, sql, distinctValueCap)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		if len(row) == 0 || row[0] == nil {
			continue
		}
		v := fmt.Sprint(row[0])
		if v != "" {
			values = append(values, v)
		}
	}
	return values, nil
}
