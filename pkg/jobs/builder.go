package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/agent/analyst"
	"github.com/quillhq/quill/pkg/agent/research"
	"github.com/quillhq/quill/pkg/agent/visual"
	"github.com/quillhq/quill/pkg/agent/websearch"
	"github.com/quillhq/quill/pkg/connector"
	"github.com/quillhq/quill/pkg/orchestrator"
	"github.com/quillhq/quill/pkg/planner"
	"github.com/quillhq/quill/pkg/reasoning"
	"github.com/quillhq/quill/pkg/services"
	"github.com/quillhq/quill/pkg/sqlgen"
)

// SecretResolver maps a secret name to its value.
type SecretResolver func(name string) (string, error)

// EnvSecrets resolves secret names as environment variables. Deployments
// with a real secret store swap in their own resolver.
func EnvSecrets(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("secret %q not set", name)
	}
	return v, nil
}

// ConnectorRegistry reads connector records. Satisfied by
// *services.ConnectorService.
type ConnectorRegistry interface {
	Get(ctx context.Context, connectorID string) (*ent.ConnectorRecord, error)
}

// RecordOpener opens live connectors from stored records, resolving the DSN
// through the secret resolver.
type RecordOpener struct {
	registry     ConnectorRegistry
	secrets      SecretResolver
	queryTimeout time.Duration
}

func NewRecordOpener(registry ConnectorRegistry, secrets SecretResolver, queryTimeout time.Duration) *RecordOpener {
	return &RecordOpener{registry: registry, secrets: secrets, queryTimeout: queryTimeout}
}

func (o *RecordOpener) Open(ctx context.Context, connectorID string) (agent.SqlConnector, error) {
	rec, err := o.registry.Get(ctx, connectorID)
	if err != nil {
		return nil, err
	}
	if !rec.Enabled {
		return nil, fmt.Errorf("%w: %s", services.ErrConnectorDisabled, connectorID)
	}
	dsn, err := o.secrets(rec.DsnSecret)
	if err != nil {
		return nil, fmt.Errorf("resolving connector DSN: %w", err)
	}
	return connector.Open(ctx, connector.Config{
		Dialect:      sqlgen.Dialect(rec.Dialect),
		DSN:          dsn,
		QueryTimeout: o.queryTimeout,
	})
}

// Builder assembles a per-job supervisor: the analyst agent is bound to the
// job's semantic model and its connector, so supervisors cannot be shared
// across models.
type Builder struct {
	catalog    ModelCatalog
	connectors ConnectorOpener
	completer  agent.Completer
	logger     *slog.Logger

	embedder agent.Embedder
	vectors  agent.ManagedVectorDB
	provider websearch.Provider
}

// BuilderOption configures optional capabilities.
type BuilderOption func(*Builder)

// WithEntityAugmentation enables analyst question augmentation against the
// entity vector index.
func WithEntityAugmentation(e agent.Embedder, v agent.ManagedVectorDB) BuilderOption {
	return func(b *Builder) {
		b.embedder = e
		b.vectors = v
	}
}

// WithWebSearch enables the web search and deep research routes.
func WithWebSearch(p websearch.Provider) BuilderOption {
	return func(b *Builder) { b.provider = p }
}

func NewBuilder(catalog ModelCatalog, connectors ConnectorOpener, completer agent.Completer, logger *slog.Logger, opts ...BuilderOption) *Builder {
	b := &Builder{
		catalog:    catalog,
		connectors: connectors,
		completer:  completer,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ForModel builds a supervisor for one stored model. Tenant isolation is
// enforced here: a model belonging to another organisation reads as not
// found.
func (b *Builder) ForModel(ctx context.Context, orgID, modelID string) (Runner, error) {
	rec, model, err := b.catalog.Get(ctx, modelID)
	if err != nil {
		return nil, err
	}
	if rec.OrganisationID != orgID {
		return nil, fmt.Errorf("%w: model %s", services.ErrNotFound, modelID)
	}

	conn, err := b.connectors.Open(ctx, rec.ConnectorID)
	if err != nil {
		return nil, err
	}

	var analystOpts []analyst.Option
	if b.embedder != nil && b.vectors != nil {
		analystOpts = append(analystOpts, analyst.WithEntityAugmentation(b.embedder, b.vectors))
	}
	analystAgent := analyst.New(b.completer, conn, model, b.logger, analystOpts...)

	supOpts := []orchestrator.Option{
		orchestrator.WithVisualAgent(visual.New(b.completer, b.logger)),
	}
	if b.provider != nil {
		searchAgent := websearch.New(b.provider, b.logger)
		supOpts = append(supOpts,
			orchestrator.WithWebSearchAgent(searchAgent),
			orchestrator.WithResearchAgent(research.New(b.completer, searchAgent, b.logger)))
	}

	return orchestrator.New(planner.New(b.logger), reasoning.New(b.logger), analystAgent, b.logger, supOpts...), nil
}
