// Package sqlgen compiles a semantic query AST against a semantic model into
// dialect-specific SQL. Resolution maps member references to physical
// columns, the join planner computes a minimal alias-mapped join path, and
// the translator builds a SELECT tree that each dialect emitter serializes.
package sqlgen

import (
	"fmt"
	"strings"

	"github.com/quillhq/quill/pkg/semantic/query"
)

// Dialect identifies a target SQL dialect.
type Dialect string

const (
	DialectPostgres  Dialect = "postgres"
	DialectTSQL      Dialect = "tsql"
	DialectTrino     Dialect = "trino"
	DialectMySQL     Dialect = "mysql"
	DialectBigQuery  Dialect = "bigquery"
	DialectSnowflake Dialect = "snowflake"
	DialectSQLite    Dialect = "sqlite"
)

// Canonical is the dialect the analyst LLM emits and the transpiler starts
// from.
const Canonical = DialectPostgres

// Known reports whether the dialect has an emitter.
func (d Dialect) Known() bool {
	switch d {
	case DialectPostgres, DialectTSQL, DialectTrino, DialectMySQL,
		DialectBigQuery, DialectSnowflake, DialectSQLite:
		return true
	}
	return false
}

// QuoteIdent quotes a single identifier part for the dialect.
func (d Dialect) QuoteIdent(name string) string {
	switch d {
	case DialectMySQL:
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	case DialectBigQuery:
		return "`" + name + "`"
	case DialectTSQL:
		return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
	default:
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
}

// QuoteQualified quotes each non-empty part of a qualified name.
func (d Dialect) QuoteQualified(parts ...string) string {
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		quoted = append(quoted, d.QuoteIdent(p))
	}
	return strings.Join(quoted, ".")
}

// StringLiteral quotes a string value, doubling embedded quotes.
func (d Dialect) StringLiteral(v string) string {
	return "'" + strings.ReplaceAll(v, "'", "''") + "'"
}

// CurrentDate is the dialect's current-date expression, the anchor for all
// relative date ranges.
func (d Dialect) CurrentDate() string {
	switch d {
	case DialectTSQL:
		return "CAST(GETDATE() AS DATE)"
	case DialectBigQuery:
		return "CURRENT_DATE()"
	case DialectSQLite:
		return "date('now')"
	default:
		return "CURRENT_DATE"
	}
}

// CurrentTimestamp is the dialect's current-timestamp expression.
func (d Dialect) CurrentTimestamp() string {
	switch d {
	case DialectTSQL:
		return "GETDATE()"
	case DialectBigQuery:
		return "CURRENT_TIMESTAMP()"
	case DialectSQLite:
		return "datetime('now')"
	default:
		return "CURRENT_TIMESTAMP"
	}
}

// DateTrunc truncates expr to the granularity. Postgres-class dialects use
// DATE_TRUNC; T-SQL uses the DATEADD(DATEDIFF) idiom; MySQL and SQLite have
// no generic truncation function and are handled per unit.
func (d Dialect) DateTrunc(g query.Granularity, expr string) (string, error) {
	if !g.Valid() {
		return "", fmt.Errorf("%w: granularity %q", ErrUnsupportedGranularity, g)
	}
	unit := strings.ToUpper(string(g))
	switch d {
	case DialectPostgres, DialectTrino, DialectSnowflake:
		return fmt.Sprintf("DATE_TRUNC('%s', %s)", unit, expr), nil
	case DialectBigQuery:
		return fmt.Sprintf("DATE_TRUNC(%s, %s)", expr, unit), nil
	case DialectTSQL:
		return fmt.Sprintf("DATEADD(%s, DATEDIFF(%s, 0, %s), 0)", unit, unit, expr), nil
	case DialectMySQL:
		return mysqlDateTrunc(g, expr)
	case DialectSQLite:
		return sqliteDateTrunc(g, expr)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, d)
	}
}

func mysqlDateTrunc(g query.Granularity, expr string) (string, error) {
	switch g {
	case query.GranDay:
		return fmt.Sprintf("DATE(%s)", expr), nil
	case query.GranWeek:
		return fmt.Sprintf("DATE_SUB(DATE(%s), INTERVAL WEEKDAY(%s) DAY)", expr, expr), nil
	case query.GranMonth:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m-01')", expr), nil
	case query.GranQuarter:
		return fmt.Sprintf("MAKEDATE(YEAR(%s), 1) + INTERVAL (QUARTER(%s) - 1) QUARTER", expr, expr), nil
	case query.GranYear:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-01-01')", expr), nil
	case query.GranHour:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m-%%d %%H:00:00')", expr), nil
	case query.GranMinute:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m-%%d %%H:%%i:00')", expr), nil
	case query.GranSecond:
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m-%%d %%H:%%i:%%s')", expr), nil
	}
	return "", fmt.Errorf("%w: granularity %q", ErrUnsupportedGranularity, g)
}

func sqliteDateTrunc(g query.Granularity, expr string) (string, error) {
	switch g {
	case query.GranDay:
		return fmt.Sprintf("date(%s)", expr), nil
	case query.GranWeek:
		return fmt.Sprintf("date(%s, 'weekday 0', '-6 days')", expr), nil
	case query.GranMonth:
		return fmt.Sprintf("date(%s, 'start of month')", expr), nil
	case query.GranYear:
		return fmt.Sprintf("date(%s, 'start of year')", expr), nil
	case query.GranQuarter:
		return fmt.Sprintf("date(%s, 'start of month', '-' || ((strftime('%%m', %s) - 1) %% 3) || ' months')", expr, expr), nil
	case query.GranHour:
		return fmt.Sprintf("strftime('%%Y-%%m-%%d %%H:00:00', %s)", expr), nil
	case query.GranMinute:
		return fmt.Sprintf("strftime('%%Y-%%m-%%d %%H:%%M:00', %s)", expr), nil
	case query.GranSecond:
		return fmt.Sprintf("strftime('%%Y-%%m-%%d %%H:%%M:%%S', %s)", expr), nil
	}
	return "", fmt.Errorf("%w: granularity %q", ErrUnsupportedGranularity, g)
}

// AddUnits shifts expr by n units (n may be negative).
func (d Dialect) AddUnits(expr string, n int, g query.Granularity) string {
	unit := strings.ToUpper(string(g))
	switch d {
	case DialectPostgres:
		if n < 0 {
			return fmt.Sprintf("(%s - INTERVAL '%d %s')", expr, -n, unit)
		}
		return fmt.Sprintf("(%s + INTERVAL '%d %s')", expr, n, unit)
	case DialectTrino:
		return fmt.Sprintf("DATE_ADD('%s', %d, %s)", strings.ToLower(string(g)), n, expr)
	case DialectMySQL:
		if n < 0 {
			return fmt.Sprintf("DATE_SUB(%s, INTERVAL %d %s)", expr, -n, unit)
		}
		return fmt.Sprintf("DATE_ADD(%s, INTERVAL %d %s)", expr, n, unit)
	case DialectBigQuery:
		if n < 0 {
			return fmt.Sprintf("DATE_SUB(%s, INTERVAL %d %s)", expr, -n, unit)
		}
		return fmt.Sprintf("DATE_ADD(%s, INTERVAL %d %s)", expr, n, unit)
	case DialectTSQL, DialectSnowflake:
		return fmt.Sprintf("DATEADD(%s, %d, %s)", unit, n, expr)
	case DialectSQLite:
		return fmt.Sprintf("date(%s, '%+d %s')", expr, n, strings.ToLower(string(g))+"s")
	default:
		return expr
	}
}

// LimitClause renders LIMIT/OFFSET the dialect's way. T-SQL requires the
// OFFSET..FETCH form, which is only legal after ORDER BY; the translator
// guarantees an ORDER BY exists when paging is used on tsql.
func (d Dialect) LimitClause(limit, offset int) string {
	if d == DialectTSQL {
		return fmt.Sprintf("OFFSET %d ROWS FETCH NEXT %d ROWS ONLY", offset, limit)
	}
	if offset > 0 {
		return fmt.Sprintf("LIMIT %d OFFSET %d", limit, offset)
	}
	return fmt.Sprintf("LIMIT %d", limit)
}
