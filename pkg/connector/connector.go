// Package connector implements the SqlConnector capability on database/sql.
// Any registered driver works; postgres warehouses use the pgx stdlib
// driver registered by pkg/database.
package connector

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/sqlgen"
)

var (
	// ErrUnreachable indicates the warehouse did not answer a connection probe.
	ErrUnreachable = errors.New("warehouse unreachable")

	// ErrExecution wraps warehouse-side query failures.
	ErrExecution = errors.New("query execution failed")
)

// driverForDialect maps a SQL dialect to its database/sql driver name.
// Overridable per connector for warehouses reached through a different
// driver (e.g. a trino gateway speaking postgres wire protocol).
var driverForDialect = map[sqlgen.Dialect]string{
	sqlgen.DialectPostgres:  "pgx",
	sqlgen.DialectMySQL:     "mysql",
	sqlgen.DialectSQLite:    "sqlite3",
	sqlgen.DialectTSQL:      "sqlserver",
	sqlgen.DialectTrino:     "trino",
	sqlgen.DialectBigQuery:  "bigquery",
	sqlgen.DialectSnowflake: "snowflake",
}

// Config describes one warehouse connection.
type Config struct {
	Dialect sqlgen.Dialect
	DSN     string
	// Driver overrides the dialect's default database/sql driver name.
	Driver string
	// QueryTimeout bounds each Execute call. Zero means the caller's
	// context is the only bound.
	QueryTimeout time.Duration
	// RewriteExpression optionally adapts compiled expressions to
	// warehouse-local quirks.
	RewriteExpression func(expr string) string
}

// DBConnector is a SqlConnector over a database/sql pool.
type DBConnector struct {
	db      *sql.DB
	dialect sqlgen.Dialect
	timeout time.Duration
	rewrite func(string) string
}

var _ agent.SqlConnector = (*DBConnector)(nil)

// Open creates a connector and verifies reachability.
func Open(ctx context.Context, cfg Config) (*DBConnector, error) {
	if !cfg.Dialect.Known() {
		return nil, fmt.Errorf("%w: %q", sqlgen.ErrUnknownDialect, cfg.Dialect)
	}
	driver := cfg.Driver
	if driver == "" {
		driver = driverForDialect[cfg.Dialect]
	}
	db, err := sql.Open(driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s connector: %w", cfg.Dialect, err)
	}
	c := New(db, cfg)
	if err := c.TestConnection(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

// New wraps an existing pool. The caller keeps ownership of db's lifecycle
// unless Close is used.
func New(db *sql.DB, cfg Config) *DBConnector {
	return &DBConnector{
		db:      db,
		dialect: cfg.Dialect,
		timeout: cfg.QueryTimeout,
		rewrite: cfg.RewriteExpression,
	}
}

func (c *DBConnector) Dialect() sqlgen.Dialect { return c.dialect }

// RewriteExpression applies the configured hook, or returns expr unchanged.
func (c *DBConnector) RewriteExpression(expr string) string {
	if c.rewrite == nil {
		return expr
	}
	return c.rewrite(expr)
}

// TestConnection probes the warehouse.
func (c *DBConnector) TestConnection(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return nil
}

// Execute runs sqlText and normalizes the result set. Rows beyond maxRows
// are discarded; maxRows <= 0 means unbounded.
func (c *DBConnector) Execute(ctx context.Context, sqlText string, maxRows int) (*agent.QueryResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	rows, err := c.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecution, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecution, err)
	}

	result := &agent.QueryResult{
		Columns:   columns,
		Rows:      [][]any{},
		SourceSQL: sqlText,
	}
	for rows.Next() {
		if maxRows > 0 && result.RowCount >= maxRows {
			break
		}
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExecution, err)
		}
		for i, v := range values {
			values[i] = normalizeValue(v)
		}
		result.Rows = append(result.Rows, values)
		result.RowCount++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecution, err)
	}
	result.ElapsedMS = time.Since(start).Milliseconds()
	return result, nil
}

// Close releases the underlying pool.
func (c *DBConnector) Close() error {
	return c.db.Close()
}

// normalizeValue makes driver values JSON-friendly: []byte becomes string,
// time stays time.Time for the encoder to render RFC 3339.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case []byte:
		return string(val)
	default:
		return v
	}
}
