package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/quillhq/quill/ent"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (CI_DATABASE_URL set) it connects to an external PostgreSQL
// service container; locally it spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	} else {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration is enough for tests; production uses the embedded SQL.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateRuntimeIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestJobEventIdempotenceKey(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Job.Create().
		SetID("job-1").
		SetOrganisationID("org-1").
		SetJobType("semantic_query").
		SetPayload(map[string]interface{}{"question": "how many orders?"}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.JobEvent.Create().
		SetJobID("job-1").
		SetEventType("progress").
		SetEventIndex(0).
		Save(ctx)
	require.NoError(t, err)

	// A redelivered event lands on the unique (job_id, event_type, event_index)
	// constraint instead of duplicating.
	_, err = client.JobEvent.Create().
		SetJobID("job-1").
		SetEventType("progress").
		SetEventIndex(0).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	_, err = client.JobEvent.Create().
		SetJobID("job-1").
		SetEventType("progress").
		SetEventIndex(1).
		Save(ctx)
	require.NoError(t, err)
}

func TestJobEventCascadeDelete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Job.Create().
		SetID("job-2").
		SetOrganisationID("org-1").
		SetJobType("semantic_query").
		SetPayload(map[string]interface{}{}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.JobEvent.Create().
		SetJobID("job-2").
		SetEventType("progress").
		SetEventIndex(0).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.DB().ExecContext(ctx, `DELETE FROM jobs WHERE job_id = $1`, "job-2")
	require.NoError(t, err)

	var n int
	err = client.DB().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM job_events WHERE job_id = $1`, "job-2").Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestPayloadContainmentQuery(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Job.Create().
		SetID("job-3").
		SetOrganisationID("org-1").
		SetJobType("semantic_query").
		SetPayload(map[string]interface{}{"model_name": "sales", "question": "revenue by region"}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Job.Create().
		SetID("job-4").
		SetOrganisationID("org-1").
		SetJobType("semantic_query").
		SetPayload(map[string]interface{}{"model_name": "inventory"}).
		Save(ctx)
	require.NoError(t, err)

	// The GIN payload index serves containment lookups on request fields.
	rows, err := client.DB().QueryContext(ctx,
		`SELECT job_id FROM jobs WHERE payload @> $1`, `{"model_name": "sales"}`)
	require.NoError(t, err)
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"job-3"}, ids)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}
	clear := func() {
		for _, key := range envKeys {
			os.Unsetenv(key)
		}
	}

	t.Run("defaults", func(t *testing.T) {
		clear()
		t.Cleanup(clear)

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "quill", cfg.User)
		assert.Equal(t, "quill", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		clear()
		t.Cleanup(clear)
		os.Setenv("DB_HOST", "db.example.com")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("DB_USER", "admin")
		os.Setenv("DB_NAME", "production")
		os.Setenv("DB_MAX_OPEN_CONNS", "50")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, 50, cfg.MaxOpenConns)
	})

	t.Run("invalid port", func(t *testing.T) {
		clear()
		t.Cleanup(clear)
		os.Setenv("DB_PORT", "not_a_number")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should be under a second")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	// Durations serialize as milliseconds, not nanoseconds.
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.Less(t, responseTime, float64(1000000))

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.GreaterOrEqual(t, waitDuration, float64(0))
}
