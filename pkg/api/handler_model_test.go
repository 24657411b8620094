package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelCRUD(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/models", map[string]any{
		"organisation_id": "org-1",
		"name":            "sales",
		"connector_id":    "conn-1",
		"definition":      compileModelYAML,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodGet, "/api/v1/models/model-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "sales", body["name"])

	w = f.do(t, http.MethodGet, "/api/v1/models?organisation_id=org-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["models"], 1)

	w = f.do(t, http.MethodPut, "/api/v1/models/model-1", map[string]any{
		"definition": compileModelYAML,
		"tags":       []string{"finance"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(t, http.MethodDelete, "/api/v1/models/model-1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(t, http.MethodGet, "/api/v1/models/model-1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateModelInvalidDefinition(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPost, "/api/v1/models", map[string]any{
		"organisation_id": "org-1",
		"name":            "bad",
		"connector_id":    "conn-1",
		"definition":      "tables: [not a map]",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListModelsRequiresOrg(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/v1/models", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
