package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolRegisterAndCancelJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	// Register a job
	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterJob("job-1", cancel)

	// Cancel should succeed for registered job
	assert.True(t, pool.CancelJob("job-1"))
	assert.Error(t, ctx.Err()) // Context should be cancelled

	// Cancel should return false for unknown job
	assert.False(t, pool.CancelJob("unknown"))
}

func TestPoolUnregisterJob(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	pool.RegisterJob("job-1", cancel)

	pool.UnregisterJob("job-1")

	// Should not find it anymore
	assert.False(t, pool.CancelJob("job-1"))
}

func TestPoolGetActiveJobIDs(t *testing.T) {
	pool := &WorkerPool{
		activeJobs: make(map[string]context.CancelFunc),
	}

	// Empty initially
	assert.Empty(t, pool.getActiveJobIDs())

	_, cancel1 := context.WithCancel(context.Background())
	defer cancel1()
	_, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	pool.RegisterJob("job-1", cancel1)
	pool.RegisterJob("job-2", cancel2)

	assert.ElementsMatch(t, []string{"job-1", "job-2"}, pool.getActiveJobIDs())
}
