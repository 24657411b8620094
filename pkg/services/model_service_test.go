package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/models"
	"github.com/quillhq/quill/pkg/services"
	testdb "github.com/quillhq/quill/test/database"
)

const salesModelYAML = `
name: sales
tables:
  orders:
    schema: public
    name: orders
    dimensions:
      - name: id
        type: integer
        primary_key: true
      - name: status
        type: string
    measures:
      - name: amount
        type: decimal
        aggregation: sum
`

func newModelService(t *testing.T) *services.ModelService {
	t.Helper()
	client := testdb.NewTestClient(t)
	return services.NewModelService(client.Client)
}

func TestModelService_CreateAndGet(t *testing.T) {
	svc := newModelService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, &models.CreateModelRequest{
		OrganisationID: "org-1",
		Name:           "sales",
		ConnectorID:    "conn-1",
		Definition:     salesModelYAML,
		Tags:           []string{"finance"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)

	fetched, parsed, err := svc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "sales", fetched.Name)
	require.NotNil(t, parsed)
	_, ok := parsed.Table("orders")
	assert.True(t, ok)

	byName, _, err := svc.GetByName(ctx, "org-1", "sales")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, byName.ID)
}

func TestModelService_CreateRejectsInvalidDefinition(t *testing.T) {
	svc := newModelService(t)

	_, err := svc.Create(context.Background(), &models.CreateModelRequest{
		OrganisationID: "org-1",
		Name:           "broken",
		ConnectorID:    "conn-1",
		Definition:     "tables: [not a map]",
	})
	assert.ErrorIs(t, err, services.ErrInvalidInput)
}

func TestModelService_DuplicateNamePerOrganisation(t *testing.T) {
	svc := newModelService(t)
	ctx := context.Background()

	req := &models.CreateModelRequest{
		OrganisationID: "org-1",
		Name:           "sales",
		ConnectorID:    "conn-1",
		Definition:     salesModelYAML,
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, &models.CreateModelRequest{
		OrganisationID: "org-1",
		Name:           "sales",
		ConnectorID:    "conn-1",
		Definition:     salesModelYAML,
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	// Same name is fine in another organisation.
	_, err = svc.Create(ctx, &models.CreateModelRequest{
		OrganisationID: "org-2",
		Name:           "sales",
		ConnectorID:    "conn-1",
		Definition:     salesModelYAML,
	})
	assert.NoError(t, err)
}

func TestModelService_UpdateAndDelete(t *testing.T) {
	svc := newModelService(t)
	ctx := context.Background()

	rec, err := svc.Create(ctx, &models.CreateModelRequest{
		OrganisationID: "org-1",
		Name:           "sales",
		ConnectorID:    "conn-1",
		Definition:     salesModelYAML,
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, rec.ID, "tables: [not a map]", nil)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	updated, err := svc.Update(ctx, rec.ID, salesModelYAML, []string{"revenue"})
	require.NoError(t, err)
	assert.Equal(t, []string{"revenue"}, updated.Tags)

	require.NoError(t, svc.Delete(ctx, rec.ID))
	_, _, err = svc.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	err = svc.Delete(ctx, rec.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestModelService_ListByOrganisation(t *testing.T) {
	svc := newModelService(t)
	ctx := context.Background()

	for _, name := range []string{"sales", "inventory"} {
		_, err := svc.Create(ctx, &models.CreateModelRequest{
			OrganisationID: "org-1",
			Name:           name,
			ConnectorID:    "conn-1",
			Definition:     salesModelYAML,
		})
		require.NoError(t, err)
	}

	recs, err := svc.List(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, recs, 2)
	// Sorted by name.
	assert.Equal(t, "inventory", recs[0].Name)
	assert.Equal(t, "sales", recs[1].Name)
}
