// Package transpile converts canonical (postgres-flavoured) SELECT
// statements into a connector's target dialect. The analyst pipeline parses
// the LLM output here before anything reaches a warehouse: non-SELECT
// statements are rejected outright, and referenced tables are surfaced for
// policy checks.
package transpile

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/xwb1989/sqlparser"

	"github.com/quillhq/quill/pkg/sqlgen"
)

// Sentinel errors for the parse/transpile boundary.
var (
	// ErrEmptySQL indicates there was no statement to parse.
	ErrEmptySQL = errors.New("empty sql statement")

	// ErrNotSelect indicates the statement is not a SELECT. Mutating
	// statements never reach a connector.
	ErrNotSelect = errors.New("statement is not a select")

	// ErrParse wraps parser failures on canonical SQL.
	ErrParse = errors.New("canonical sql parse failed")
)

// fenceRe matches an optional markdown code fence around LLM output.
var fenceRe = regexp.MustCompile("(?s)^```(?:sql)?\\s*(.*?)\\s*```$")

// StripFence removes a surrounding ```sql fence, if present, and trims
// whitespace and a trailing semicolon.
func StripFence(s string) string {
	s = strings.TrimSpace(s)
	if m := fenceRe.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	return strings.TrimSuffix(strings.TrimSpace(s), ";")
}

// intervalLiteralRe matches the postgres interval literal form the canonical
// dialect uses, e.g. INTERVAL '29 DAY'.
var intervalLiteralRe = regexp.MustCompile(`(?i)INTERVAL\s+'(\d+)\s+([A-Za-z]+)'`)

// Parse validates that sqlText is a single SELECT (or UNION of SELECTs) and
// returns the parsed statement. The canonical dialect is normalized to the
// parser's grammar first: double-quoted identifiers become backticks and
// postgres interval literals become unquoted.
func Parse(sqlText string) (sqlparser.Statement, error) {
	sqlText = StripFence(sqlText)
	if sqlText == "" {
		return nil, ErrEmptySQL
	}

	normalized := requote(scan(sqlText), sqlgen.DialectMySQL)
	normalized = intervalLiteralRe.ReplaceAllString(normalized, "INTERVAL $1 $2")
	// Bare keyword forms the MySQL grammar has no production for.
	normalized = replaceWord(normalized, sqlgen.DialectMySQL, "CURRENT_DATE", "CURDATE()")
	normalized = replaceWord(normalized, sqlgen.DialectMySQL, "CURRENT_TIMESTAMP", "NOW()")

	stmt, err := sqlparser.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	switch stmt.(type) {
	case *sqlparser.Select, *sqlparser.Union, *sqlparser.ParenSelect:
		return stmt, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotSelect, stmt)
	}
}

// Tables returns the distinct table names referenced by the statement, in
// first-appearance order. Qualified names keep their qualifier.
func Tables(stmt sqlparser.Statement) []string {
	var tables []string
	seen := make(map[string]bool)
	_ = sqlparser.Walk(func(node sqlparser.SQLNode) (bool, error) {
		tn, ok := node.(sqlparser.TableName)
		if !ok || tn.Name.IsEmpty() {
			return true, nil
		}
		name := tn.Name.String()
		if !tn.Qualifier.IsEmpty() {
			name = tn.Qualifier.String() + "." + name
		}
		if !seen[name] {
			seen[name] = true
			tables = append(tables, name)
		}
		return true, nil
	}, stmt)
	return tables
}

// Transpile converts a canonical SELECT into the target dialect. The input
// is parsed first; a statement the parser rejects never reaches emission.
func Transpile(canonical string, target sqlgen.Dialect) (string, error) {
	if !target.Known() {
		return "", fmt.Errorf("%w: %q", sqlgen.ErrUnknownDialect, target)
	}
	canonical = StripFence(canonical)
	if _, err := Parse(canonical); err != nil {
		return "", err
	}
	if target == sqlgen.Canonical {
		return canonical, nil
	}
	return emit(canonical, target)
}

// emit applies the target dialect's surface rewrites to a parsed-valid
// canonical statement.
func emit(canonical string, target sqlgen.Dialect) (string, error) {
	out := requote(scan(canonical), target)

	var err error
	switch target {
	case sqlgen.DialectTrino, sqlgen.DialectSnowflake:
		// DATE_TRUNC and interval arithmetic carry over as-is.
	default:
		if out, err = rewriteDateTrunc(out, target); err != nil {
			return "", err
		}
	}

	if out, err = rewriteIntervals(out, target); err != nil {
		return "", err
	}

	out = replaceWord(out, target, "CURRENT_DATE", target.CurrentDate())
	out = replaceWord(out, target, "CURRENT_TIMESTAMP", target.CurrentTimestamp())

	switch target {
	case sqlgen.DialectTSQL, sqlgen.DialectSQLite:
		out = replaceWord(out, target, "TRUE", "1")
		out = replaceWord(out, target, "FALSE", "0")
	}
	out = replaceWord(out, target, "ILIKE", "LIKE")

	if target == sqlgen.DialectTSQL {
		out = rewriteLimitForTSQL(out)
	}
	return out, nil
}
