package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const compileModelYAML = `
name: ecommerce
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

func compileBody(extra map[string]any) map[string]any {
	body := map[string]any{
		"definition": compileModelYAML,
		"query":      json.RawMessage(`{"measures": ["orders.amount"], "dimensions": ["orders.status"]}`),
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

func TestCompileInlineDefinition(t *testing.T) {
	f := newFixture(t)

	w := f.do(t, http.MethodPost, "/api/v1/compile", compileBody(nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	sql, _ := body["sql"].(string)
	assert.Contains(t, sql, "SELECT")
	assert.Contains(t, sql, `"public"."orders"`)
	assert.Equal(t, "orders", body["base_table"])
	assert.Equal(t, "postgres", body["dialect"])
}

func TestCompileStoredModel(t *testing.T) {
	f := newFixture(t)
	createBody := map[string]any{
		"organisation_id": "org-1",
		"name":            "sales",
		"connector_id":    "conn-1",
		"definition":      compileModelYAML,
	}
	w := f.do(t, http.MethodPost, "/api/v1/models", createBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(t, http.MethodPost, "/api/v1/compile", map[string]any{
		"model_id": "model-1",
		"dialect":  "mysql",
		"query":    json.RawMessage(`{"measures": ["orders.amount"]}`),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	sql, _ := body["sql"].(string)
	assert.Contains(t, sql, "`public`.`orders`")
	assert.Equal(t, "mysql", body["dialect"])
}

func TestCompileUnknownDialect(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPost, "/api/v1/compile", compileBody(map[string]any{"dialect": "oracle"}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown dialect")
}

func TestCompileMissingModel(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPost, "/api/v1/compile", map[string]any{
		"query": json.RawMessage(`{"measures": ["orders.amount"]}`),
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompileInvalidQuery(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPost, "/api/v1/compile", compileBody(map[string]any{
		"query": json.RawMessage(`{"measures": []}`),
	}))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompileUnknownStoredModel(t *testing.T) {
	f := newFixture(t)
	w := f.do(t, http.MethodPost, "/api/v1/compile", map[string]any{
		"model_id": "missing",
		"query":    json.RawMessage(`{"measures": ["orders.amount"]}`),
	})
	require.Equal(t, http.StatusNotFound, w.Code)
}
