package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/sqlgen"
)

func TestStripFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare", "SELECT 1", "SELECT 1"},
		{"sql fence", "```sql\nSELECT 1\n```", "SELECT 1"},
		{"anonymous fence", "```\nSELECT 1\n```", "SELECT 1"},
		{"trailing semicolon", "SELECT 1;", "SELECT 1"},
		{"fence and semicolon", "```sql\nSELECT 1;\n```", "SELECT 1"},
		{"surrounding whitespace", "  \nSELECT 1\n ", "SELECT 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripFence(tt.in))
		})
	}
}

func TestParseAcceptsSelect(t *testing.T) {
	stmt, err := Parse(`SELECT "orders"."amount" FROM "public"."orders" WHERE "orders"."status" = 'completed'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"public.orders"}, Tables(stmt))
}

func TestParseAcceptsUnion(t *testing.T) {
	stmt, err := Parse(`SELECT id FROM a UNION SELECT id FROM b`)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, Tables(stmt))
}

func TestParseNormalizesCanonicalForms(t *testing.T) {
	// Interval literals and bare CURRENT_DATE are postgres-isms the parser
	// grammar rejects without normalization.
	_, err := Parse(`SELECT id FROM orders WHERE created_at >= (CURRENT_DATE - INTERVAL '29 DAY')`)
	require.NoError(t, err)
}

func TestParseRejectsNonSelect(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"delete", "DELETE FROM orders"},
		{"update", "UPDATE orders SET status = 'x'"},
		{"insert", "INSERT INTO orders (id) VALUES (1)"},
		{"drop", "DROP TABLE orders"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.sql)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrEmptySQL)
		})
	}
}

func TestParseEmptyStatement(t *testing.T) {
	_, err := Parse("   ")
	assert.ErrorIs(t, err, ErrEmptySQL)

	_, err = Parse("```sql\n```")
	assert.ErrorIs(t, err, ErrEmptySQL)
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse("SELEKT *** FROM")
	assert.ErrorIs(t, err, ErrParse)
}

func TestTranspilePostgresPassthrough(t *testing.T) {
	canonical := `SELECT "t"."a" FROM "t" LIMIT 10`
	out, err := Transpile(canonical, sqlgen.DialectPostgres)
	require.NoError(t, err)
	assert.Equal(t, canonical, out)
}

func TestTranspileQuoting(t *testing.T) {
	canonical := `SELECT "orders"."amount" FROM "public"."orders"`

	out, err := Transpile(canonical, sqlgen.DialectMySQL)
	require.NoError(t, err)
	assert.Equal(t, "SELECT `orders`.`amount` FROM `public`.`orders`", out)

	out, err = Transpile(canonical, sqlgen.DialectTSQL)
	require.NoError(t, err)
	assert.Equal(t, `SELECT [orders].[amount] FROM [public].[orders]`, out)

	out, err = Transpile(canonical, sqlgen.DialectSnowflake)
	require.NoError(t, err)
	assert.Equal(t, canonical, out)
}

func TestTranspileDateTrunc(t *testing.T) {
	canonical := `SELECT DATE_TRUNC('DAY', "t"."created_at") FROM "t"`

	out, err := Transpile(canonical, sqlgen.DialectBigQuery)
	require.NoError(t, err)
	assert.Equal(t, "SELECT DATE_TRUNC(`t`.`created_at`, DAY) FROM `t`", out)

	out, err = Transpile(canonical, sqlgen.DialectTSQL)
	require.NoError(t, err)
	assert.Equal(t, `SELECT DATEADD(DAY, DATEDIFF(DAY, 0, [t].[created_at]), 0) FROM [t]`, out)

	out, err = Transpile(canonical, sqlgen.DialectMySQL)
	require.NoError(t, err)
	assert.Equal(t, "SELECT DATE(`t`.`created_at`) FROM `t`", out)

	// Trino keeps the canonical spelling.
	out, err = Transpile(canonical, sqlgen.DialectTrino)
	require.NoError(t, err)
	assert.Equal(t, `SELECT DATE_TRUNC('DAY', "t"."created_at") FROM "t"`, out)
}

func TestTranspileIntervalArithmetic(t *testing.T) {
	canonical := `SELECT id FROM t WHERE created_at >= (CURRENT_DATE - INTERVAL '29 DAY')`

	out, err := Transpile(canonical, sqlgen.DialectMySQL)
	require.NoError(t, err)
	assert.Contains(t, out, "INTERVAL 29 DAY")

	out, err = Transpile(canonical, sqlgen.DialectTSQL)
	require.NoError(t, err)
	assert.Contains(t, out, "DATEADD(DAY, -29, CAST(GETDATE() AS DATE))")

	// CURRENT_DATE inside the shifted operand is rewritten afterwards.
	out, err = Transpile(canonical, sqlgen.DialectSQLite)
	require.NoError(t, err)
	assert.Contains(t, out, "date(date('now'), '-29 days')")
}

func TestTranspileCurrentDate(t *testing.T) {
	canonical := `SELECT id FROM t WHERE d < CURRENT_DATE`

	out, err := Transpile(canonical, sqlgen.DialectBigQuery)
	require.NoError(t, err)
	assert.Contains(t, out, "CURRENT_DATE()")

	out, err = Transpile(canonical, sqlgen.DialectTSQL)
	require.NoError(t, err)
	assert.Contains(t, out, "CAST(GETDATE() AS DATE)")
}

func TestTranspileBooleansAndILike(t *testing.T) {
	canonical := `SELECT id FROM t WHERE active = TRUE AND name ILIKE '%acme%'`

	out, err := Transpile(canonical, sqlgen.DialectTSQL)
	require.NoError(t, err)
	assert.Contains(t, out, "= 1")
	assert.Contains(t, out, "LIKE '%acme%'")
	assert.NotContains(t, out, "ILIKE")

	// String literals are never rewritten.
	canonical = `SELECT id FROM t WHERE note = 'TRUE ILIKE CURRENT_DATE'`
	out, err = Transpile(canonical, sqlgen.DialectTSQL)
	require.NoError(t, err)
	assert.Contains(t, out, "'TRUE ILIKE CURRENT_DATE'")
}

func TestTranspileLimitTSQL(t *testing.T) {
	out, err := Transpile(`SELECT id FROM t ORDER BY id LIMIT 5 OFFSET 10`, sqlgen.DialectTSQL)
	require.NoError(t, err)
	assert.Contains(t, out, "ORDER BY id OFFSET 10 ROWS FETCH NEXT 5 ROWS ONLY")

	// No ORDER BY: one is synthesized, since OFFSET..FETCH requires it.
	out, err = Transpile(`SELECT id FROM t LIMIT 5`, sqlgen.DialectTSQL)
	require.NoError(t, err)
	assert.Contains(t, out, "ORDER BY 1 OFFSET 0 ROWS FETCH NEXT 5 ROWS ONLY")

	// A LIMIT inside a subquery is left alone.
	out, err = Transpile(`SELECT id FROM (SELECT id FROM t LIMIT 3) sub`, sqlgen.DialectTSQL)
	require.NoError(t, err)
	assert.Contains(t, out, "LIMIT 3")
}

func TestTranspileRejectsInvalidInput(t *testing.T) {
	_, err := Transpile("DELETE FROM t", sqlgen.DialectMySQL)
	assert.ErrorIs(t, err, ErrNotSelect)

	_, err = Transpile("SELECT 1", "oracle")
	assert.ErrorIs(t, err, sqlgen.ErrUnknownDialect)
}
