package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/services"
	testdb "github.com/quillhq/quill/test/database"
)

func TestEventService_AppendIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	events := services.NewEventService(client.Client)
	ctx := context.Background()

	j := createJob(t, jobs, nil)

	created, err := events.Append(ctx, j.ID, "semantic_query_started", 0, map[string]any{"question": "q"})
	require.NoError(t, err)
	assert.True(t, created)

	// Re-delivery of the same (job, type, index) collapses.
	created, err = events.Append(ctx, j.ID, "semantic_query_started", 0, map[string]any{"question": "q"})
	require.NoError(t, err)
	assert.False(t, created)

	n, err := events.CountByType(ctx, j.ID, "semantic_query_started")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEventService_NextIndex(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	events := services.NewEventService(client.Client)
	ctx := context.Background()

	j := createJob(t, jobs, nil)

	idx, err := events.NextIndex(ctx, j.ID, "analyst_call")
	require.NoError(t, err)
	assert.Zero(t, idx)

	_, err = events.Append(ctx, j.ID, "analyst_call", 0, nil)
	require.NoError(t, err)
	_, err = events.Append(ctx, j.ID, "analyst_call", 1, nil)
	require.NoError(t, err)

	idx, err = events.NextIndex(ctx, j.ID, "analyst_call")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	// Indexes are scoped per event type.
	idx, err = events.NextIndex(ctx, j.ID, "plan_issued")
	require.NoError(t, err)
	assert.Zero(t, idx)
}

func TestEventService_ListAppendOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	jobs := services.NewJobService(client.Client)
	events := services.NewEventService(client.Client)
	ctx := context.Background()

	j := createJob(t, jobs, nil)
	other := createJob(t, jobs, nil)

	_, err := events.Append(ctx, j.ID, "semantic_query_started", 0, nil)
	require.NoError(t, err)
	_, err = events.Append(ctx, j.ID, "analyst_call", 0, nil)
	require.NoError(t, err)
	_, err = events.Append(ctx, other.ID, "semantic_query_started", 0, nil)
	require.NoError(t, err)

	list, err := events.List(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "semantic_query_started", list[0].EventType)
	assert.Equal(t, "analyst_call", list[1].EventType)
}
