package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/ent/connectorrecord"
	"github.com/quillhq/quill/pkg/models"
	"github.com/quillhq/quill/pkg/sqlgen"
)

// ConnectorService stores connector registrations and enforces the data
// access policy on lookup.
type ConnectorService struct {
	client *ent.Client
}

// NewConnectorService creates a new connector service.
func NewConnectorService(client *ent.Client) *ConnectorService {
	return &ConnectorService{client: client}
}

// Create registers a connector. The organisation must exist before the
// connector references it; callers resolve the organisation first.
func (s *ConnectorService) Create(ctx context.Context, req *models.CreateConnectorRequest) (*ent.ConnectorRecord, error) {
	if req.OrganisationID == "" {
		return nil, NewValidationError("organisation_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if !sqlgen.Dialect(req.Dialect).Known() {
		return nil, NewValidationError("dialect", fmt.Sprintf("unsupported dialect %q", req.Dialect))
	}
	if req.DSNSecret == "" {
		return nil, NewValidationError("dsn_secret", "required")
	}

	id := req.ConnectorID
	if id == "" {
		id = uuid.NewString()
	}

	rec, err := s.client.ConnectorRecord.Create().
		SetID(id).
		SetOrganisationID(req.OrganisationID).
		SetName(req.Name).
		SetDialect(req.Dialect).
		SetDsnSecret(req.DSNSecret).
		SetOptions(req.Options).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: connector %q in organisation %s", ErrAlreadyExists, req.Name, req.OrganisationID)
		}
		return nil, fmt.Errorf("creating connector record: %w", err)
	}
	return rec, nil
}

// Get returns an enabled connector by id.
func (s *ConnectorService) Get(ctx context.Context, connectorID string) (*ent.ConnectorRecord, error) {
	rec, err := s.client.ConnectorRecord.Get(ctx, connectorID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: connector %s", ErrNotFound, connectorID)
		}
		return nil, fmt.Errorf("getting connector record: %w", err)
	}
	if !rec.Enabled {
		return nil, fmt.Errorf("%w: connector %s", ErrConnectorDisabled, connectorID)
	}
	return rec, nil
}

// GetAllowed returns the connector only when the access policy permits it.
// An empty allow-list permits everything not denied.
func (s *ConnectorService) GetAllowed(ctx context.Context, connectorID string, allowed, denied []string) (*ent.ConnectorRecord, error) {
	for _, d := range denied {
		if d == connectorID {
			return nil, fmt.Errorf("%w: connector %s denied by policy", ErrConnectorDisabled, connectorID)
		}
	}
	if len(allowed) > 0 {
		permitted := false
		for _, a := range allowed {
			if a == connectorID {
				permitted = true
				break
			}
		}
		if !permitted {
			return nil, fmt.Errorf("%w: connector %s not in allow-list", ErrConnectorDisabled, connectorID)
		}
	}
	return s.Get(ctx, connectorID)
}

// List returns all connectors for an organisation, disabled included.
func (s *ConnectorService) List(ctx context.Context, orgID string) ([]*ent.ConnectorRecord, error) {
	recs, err := s.client.ConnectorRecord.Query().
		Where(connectorrecord.OrganisationIDEQ(orgID)).
		Order(ent.Asc(connectorrecord.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing connector records: %w", err)
	}
	return recs, nil
}

// SetEnabled flips a connector's enabled flag.
func (s *ConnectorService) SetEnabled(ctx context.Context, connectorID string, enabled bool) error {
	if err := s.client.ConnectorRecord.UpdateOneID(connectorID).
		SetEnabled(enabled).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: connector %s", ErrNotFound, connectorID)
		}
		return fmt.Errorf("updating connector record: %w", err)
	}
	return nil
}
