package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectorLifecycle(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/connectors", map[string]any{
		"organisation_id": "org-1",
		"name":            "warehouse",
		"dialect":         "postgres",
		"dsn_secret":      "warehouse-dsn",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodGet, "/api/v1/connectors/conn-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "warehouse", decodeBody(t, w)["name"])

	w = f.do(t, http.MethodGet, "/api/v1/connectors?organisation_id=org-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["connectors"], 1)

	w = f.do(t, http.MethodPost, "/api/v1/connectors/conn-1/enabled", map[string]any{"enabled": false})
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, f.connectors.enabled["conn-1"])
}

func TestSetEnabledRequiresBody(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPost, "/api/v1/connectors/conn-1/enabled", map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConnectorNotFound(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodGet, "/api/v1/connectors/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
