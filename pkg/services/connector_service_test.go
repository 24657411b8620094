package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/ent"
	"github.com/quillhq/quill/pkg/models"
	"github.com/quillhq/quill/pkg/services"
	testdb "github.com/quillhq/quill/test/database"
)

func newConnectorService(t *testing.T) *services.ConnectorService {
	t.Helper()
	client := testdb.NewTestClient(t)
	return services.NewConnectorService(client.Client)
}

func createConnector(t *testing.T, svc *services.ConnectorService, name string) *ent.ConnectorRecord {
	t.Helper()
	rec, err := svc.Create(context.Background(), &models.CreateConnectorRequest{
		OrganisationID: "org-1",
		Name:           name,
		Dialect:        "postgres",
		DSNSecret:      "WAREHOUSE_DSN",
	})
	require.NoError(t, err)
	return rec
}

func TestConnectorService_CreateAndGet(t *testing.T) {
	svc := newConnectorService(t)

	rec := createConnector(t, svc, "warehouse")
	assert.True(t, rec.Enabled)

	fetched, err := svc.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "warehouse", fetched.Name)
	assert.Equal(t, "postgres", fetched.Dialect)
}

func TestConnectorService_CreateRejectsUnknownDialect(t *testing.T) {
	svc := newConnectorService(t)

	_, err := svc.Create(context.Background(), &models.CreateConnectorRequest{
		OrganisationID: "org-1",
		Name:           "legacy",
		Dialect:        "oracle",
		DSNSecret:      "LEGACY_DSN",
	})
	require.Error(t, err)
	var ve *services.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestConnectorService_DisabledConnectorHiddenFromGet(t *testing.T) {
	svc := newConnectorService(t)
	ctx := context.Background()

	rec := createConnector(t, svc, "warehouse")
	require.NoError(t, svc.SetEnabled(ctx, rec.ID, false))

	_, err := svc.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, services.ErrConnectorDisabled)

	// Still visible in the listing for management.
	recs, err := svc.List(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.False(t, recs[0].Enabled)

	require.NoError(t, svc.SetEnabled(ctx, rec.ID, true))
	_, err = svc.Get(ctx, rec.ID)
	assert.NoError(t, err)
}

func TestConnectorService_GetAllowedPolicy(t *testing.T) {
	svc := newConnectorService(t)
	ctx := context.Background()

	rec := createConnector(t, svc, "warehouse")

	_, err := svc.GetAllowed(ctx, rec.ID, nil, []string{rec.ID})
	assert.ErrorIs(t, err, services.ErrConnectorDisabled)

	_, err = svc.GetAllowed(ctx, rec.ID, []string{"other"}, nil)
	assert.ErrorIs(t, err, services.ErrConnectorDisabled)

	got, err := svc.GetAllowed(ctx, rec.ID, []string{rec.ID}, nil)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)

	// Empty allow-list permits everything not denied.
	_, err = svc.GetAllowed(ctx, rec.ID, nil, nil)
	assert.NoError(t, err)
}

func TestConnectorService_DuplicateNamePerOrganisation(t *testing.T) {
	svc := newConnectorService(t)

	createConnector(t, svc, "warehouse")
	_, err := svc.Create(context.Background(), &models.CreateConnectorRequest{
		OrganisationID: "org-1",
		Name:           "warehouse",
		Dialect:        "postgres",
		DSNSecret:      "WAREHOUSE_DSN",
	})
	assert.ErrorIs(t, err, services.ErrAlreadyExists)

	rec, err := svc.Create(context.Background(), &models.CreateConnectorRequest{
		OrganisationID: "org-2",
		Name:           "warehouse",
		Dialect:        "postgres",
		DSNSecret:      "WAREHOUSE_DSN",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
}
