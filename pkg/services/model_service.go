package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/ent/semanticmodelrecord"
	"github.com/quillhq/quill/pkg/models"
	"github.com/quillhq/quill/pkg/semantic"
)

// ModelService stores and loads semantic model definitions. Definitions are
// validated on write; reads return the parsed, validated model.
type ModelService struct {
	client *ent.Client
}

// NewModelService creates a new model service.
func NewModelService(client *ent.Client) *ModelService {
	return &ModelService{client: client}
}

// Create validates and stores a semantic model definition.
func (s *ModelService) Create(ctx context.Context, req *models.CreateModelRequest) (*ent.SemanticModelRecord, error) {
	if req.OrganisationID == "" {
		return nil, NewValidationError("organisation_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.ConnectorID == "" {
		return nil, NewValidationError("connector_id", "required")
	}

	model, err := semantic.ParseModel([]byte(req.Definition))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := semantic.Validate(model); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	id := req.ModelID
	if id == "" {
		id = uuid.NewString()
	}

	rec, err := s.client.SemanticModelRecord.Create().
		SetID(id).
		SetOrganisationID(req.OrganisationID).
		SetName(req.Name).
		SetConnectorID(req.ConnectorID).
		SetDefinition(req.Definition).
		SetTags(req.Tags).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: model %q in organisation %s", ErrAlreadyExists, req.Name, req.OrganisationID)
		}
		return nil, fmt.Errorf("creating semantic model record: %w", err)
	}
	return rec, nil
}

// Get returns the stored record and the parsed model.
func (s *ModelService) Get(ctx context.Context, modelID string) (*ent.SemanticModelRecord, *semantic.Model, error) {
	rec, err := s.client.SemanticModelRecord.Get(ctx, modelID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: semantic model %s", ErrNotFound, modelID)
		}
		return nil, nil, fmt.Errorf("getting semantic model record: %w", err)
	}
	model, err := semantic.ParseModel([]byte(rec.Definition))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing stored model %s: %w", modelID, err)
	}
	return rec, model, nil
}

// GetByName resolves a model by organisation and name.
func (s *ModelService) GetByName(ctx context.Context, orgID, name string) (*ent.SemanticModelRecord, *semantic.Model, error) {
	rec, err := s.client.SemanticModelRecord.Query().
		Where(
			semanticmodelrecord.OrganisationIDEQ(orgID),
			semanticmodelrecord.NameEQ(name),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil, fmt.Errorf("%w: semantic model %q in organisation %s", ErrNotFound, name, orgID)
		}
		return nil, nil, fmt.Errorf("querying semantic model record: %w", err)
	}
	model, err := semantic.ParseModel([]byte(rec.Definition))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing stored model %q: %w", name, err)
	}
	return rec, model, nil
}

// List returns all model records for an organisation.
func (s *ModelService) List(ctx context.Context, orgID string) ([]*ent.SemanticModelRecord, error) {
	recs, err := s.client.SemanticModelRecord.Query().
		Where(semanticmodelrecord.OrganisationIDEQ(orgID)).
		Order(ent.Asc(semanticmodelrecord.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing semantic model records: %w", err)
	}
	return recs, nil
}

// Update replaces a model's definition after validating it.
func (s *ModelService) Update(ctx context.Context, modelID, definition string, tags []string) (*ent.SemanticModelRecord, error) {
	model, err := semantic.ParseModel([]byte(definition))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := semantic.Validate(model); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	update := s.client.SemanticModelRecord.UpdateOneID(modelID).
		SetDefinition(definition)
	if tags != nil {
		update = update.SetTags(tags)
	}
	rec, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: semantic model %s", ErrNotFound, modelID)
		}
		return nil, fmt.Errorf("updating semantic model record: %w", err)
	}
	return rec, nil
}

// Delete removes a stored model.
func (s *ModelService) Delete(ctx context.Context, modelID string) error {
	if err := s.client.SemanticModelRecord.DeleteOneID(modelID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: semantic model %s", ErrNotFound, modelID)
		}
		return fmt.Errorf("deleting semantic model record: %w", err)
	}
	return nil
}
