package connector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/sqlgen"
)

func newMockConnector(t *testing.T, cfg Config) (*DBConnector, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	if cfg.Dialect == "" {
		cfg.Dialect = sqlgen.DialectPostgres
	}
	return New(db, cfg), mock
}

func TestExecuteNormalizesRows(t *testing.T) {
	c, mock := newMockConnector(t, Config{})

	mock.ExpectQuery(`SELECT "name", "total" FROM "orders"`).WillReturnRows(
		sqlmock.NewRows([]string{"name", "total"}).
			AddRow([]byte("acme"), 42).
			AddRow("globex", nil))

	res, err := c.Execute(context.Background(), `SELECT "name", "total" FROM "orders"`, 0)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, []string{"name", "total"}, res.Columns)
	assert.Equal(t, 2, res.RowCount)
	// []byte values come back as strings.
	assert.Equal(t, "acme", res.Rows[0][0])
	assert.EqualValues(t, 42, res.Rows[0][1])
	assert.Nil(t, res.Rows[1][1])
	assert.Equal(t, `SELECT "name", "total" FROM "orders"`, res.SourceSQL)
}

func TestExecuteCapsRows(t *testing.T) {
	c, mock := newMockConnector(t, Config{})

	rows := sqlmock.NewRows([]string{"n"})
	for i := 0; i < 5; i++ {
		rows.AddRow(i)
	}
	mock.ExpectQuery(`SELECT n FROM t`).WillReturnRows(rows)

	res, err := c.Execute(context.Background(), `SELECT n FROM t`, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, res.RowCount)
	assert.Len(t, res.Rows, 3)
}

func TestExecuteQueryError(t *testing.T) {
	c, mock := newMockConnector(t, Config{})
	mock.ExpectQuery(`SELECT broken`).WillReturnError(errors.New(`column "broken" does not exist`))

	_, err := c.Execute(context.Background(), `SELECT broken`, 0)
	assert.ErrorIs(t, err, ErrExecution)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestExecuteTimeout(t *testing.T) {
	c, mock := newMockConnector(t, Config{QueryTimeout: 10 * time.Millisecond})
	mock.ExpectQuery(`SELECT pg_sleep(1)`).
		WillDelayFor(200 * time.Millisecond).
		WillReturnRows(sqlmock.NewRows([]string{"pg_sleep"}))

	_, err := c.Execute(context.Background(), `SELECT pg_sleep(1)`, 0)
	assert.ErrorIs(t, err, ErrExecution)
}

func TestTestConnection(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	c := New(db, Config{Dialect: sqlgen.DialectPostgres})

	mock.ExpectPing()
	assert.NoError(t, c.TestConnection(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.ErrorIs(t, c.TestConnection(context.Background()), ErrUnreachable)
}

func TestRewriteExpression(t *testing.T) {
	plain, _ := newMockConnector(t, Config{})
	assert.Equal(t, "a + b", plain.RewriteExpression("a + b"))

	custom, _ := newMockConnector(t, Config{
		RewriteExpression: func(expr string) string { return "(" + expr + ")" },
	})
	assert.Equal(t, "(a + b)", custom.RewriteExpression("a + b"))
}

func TestDialect(t *testing.T) {
	c, _ := newMockConnector(t, Config{Dialect: sqlgen.DialectSnowflake})
	assert.Equal(t, sqlgen.DialectSnowflake, c.Dialect())
}

func TestOpenRejectsUnknownDialect(t *testing.T) {
	_, err := Open(context.Background(), Config{Dialect: "oracle"})
	assert.ErrorIs(t, err, sqlgen.ErrUnknownDialect)
}
