package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryVectorDBSearch(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryVectorDB()
	require.NoError(t, db.CreateIndex(ctx, 3))

	err := db.UpsertVectors(ctx,
		[][]float32{
			{1, 0, 0},
			{0, 1, 0},
			{0.9, 0.1, 0},
		},
		[]map[string]string{
			{"id": "acme", "value": "Acme Corp", "column": "customers.name"},
			{"id": "globex", "value": "Globex", "column": "customers.name"},
			{"id": "acme-region", "value": "Acme Corp", "column": "customers.region"},
		})
	require.NoError(t, err)

	matches, err := db.Search(ctx, []float32{1, 0, 0}, 2, nil)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "acme", matches[0].ID)
	assert.InDelta(t, 1.0, float64(matches[0].Score), 1e-6)
	assert.Equal(t, "acme-region", matches[1].ID)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestMemoryVectorDBFilters(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryVectorDB()
	require.NoError(t, db.CreateIndex(ctx, 2))
	require.NoError(t, db.UpsertVectors(ctx,
		[][]float32{{1, 0}, {1, 0}},
		[]map[string]string{
			{"id": "a", "column": "orders.status"},
			{"id": "b", "column": "customers.name"},
		}))

	matches, err := db.Search(ctx, []float32{1, 0}, 10, map[string]string{"column": "customers.name"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "b", matches[0].ID)
}

func TestMemoryVectorDBUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryVectorDB()
	require.NoError(t, db.CreateIndex(ctx, 2))

	require.NoError(t, db.UpsertVectors(ctx,
		[][]float32{{1, 0}},
		[]map[string]string{{"id": "a", "value": "old"}}))
	require.NoError(t, db.UpsertVectors(ctx,
		[][]float32{{0, 1}},
		[]map[string]string{{"id": "a", "value": "new"}}))

	matches, err := db.Search(ctx, []float32{0, 1}, 10, nil)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "new", matches[0].Metadata["value"])
}

func TestMemoryVectorDBDimensionChecks(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryVectorDB()

	// Operations before CreateIndex fail.
	_, err := db.Search(ctx, []float32{1}, 1, nil)
	assert.ErrorIs(t, err, ErrIndexNotFound)

	require.NoError(t, db.CreateIndex(ctx, 3))
	err = db.UpsertVectors(ctx, [][]float32{{1, 0}}, []map[string]string{{}})
	assert.ErrorIs(t, err, ErrVectorDimension)

	_, err = db.Search(ctx, []float32{1, 0}, 1, nil)
	assert.ErrorIs(t, err, ErrVectorDimension)

	assert.ErrorIs(t, db.CreateIndex(ctx, 0), ErrVectorDimension)
}

func TestMemoryVectorDBDeleteIndex(t *testing.T) {
	ctx := context.Background()
	db := NewMemoryVectorDB()
	require.NoError(t, db.CreateIndex(ctx, 2))
	require.NoError(t, db.UpsertVectors(ctx, [][]float32{{1, 0}}, []map[string]string{{"id": "a"}}))
	require.NoError(t, db.DeleteIndex(ctx))

	_, err := db.Search(ctx, []float32{1, 0}, 1, nil)
	assert.ErrorIs(t, err, ErrIndexNotFound)
	assert.NoError(t, db.TestConnection(ctx))
}
