package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateRuntimeIndexes creates the PostgreSQL indexes that Ent/Atlas cannot
// express: the claim scan needs priority ordered DESC inside a partial index,
// and payload search needs GIN.
func CreateRuntimeIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Claim scan: workers select the oldest highest-priority job whose lease
	// is free or expired. Terminal jobs never match, so the index stays small.
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_runnable
		ON jobs (priority DESC, created_at ASC)
		WHERE status IN ('queued', 'running')`)
	if err != nil {
		return fmt.Errorf("failed to create runnable jobs index: %w", err)
	}

	// Lease recovery scans running jobs by expiry.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_lease_expiry
		ON jobs (locked_until)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create lease expiry index: %w", err)
	}

	// GIN index over job payloads for containment queries on request fields.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_payload_gin
		ON jobs USING gin(payload)`)
	if err != nil {
		return fmt.Errorf("failed to create payload GIN index: %w", err)
	}

	return nil
}
