package transpile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quillhq/quill/pkg/semantic/query"
	"github.com/quillhq/quill/pkg/sqlgen"
)

// segKind classifies a scanned segment of a SQL string.
type segKind int

const (
	segCode segKind = iota
	segString
	segIdent
)

// segment is one lexical region: plain code, a string literal (text includes
// the quotes), or a quoted identifier (text is the unescaped name).
type segment struct {
	kind segKind
	text string
}

// scan splits canonical SQL into code, string-literal, and quoted-identifier
// segments. Both double quotes and backticks open an identifier, so LLM
// output in either spelling is accepted.
func scan(sqlText string) []segment {
	var segs []segment
	var code strings.Builder
	flushCode := func() {
		if code.Len() > 0 {
			segs = append(segs, segment{kind: segCode, text: code.String()})
			code.Reset()
		}
	}

	for i := 0; i < len(sqlText); {
		switch c := sqlText[i]; c {
		case '\'':
			flushCode()
			j := i + 1
			for j < len(sqlText) {
				if sqlText[j] == '\'' {
					if j+1 < len(sqlText) && sqlText[j+1] == '\'' {
						j += 2
						continue
					}
					break
				}
				j++
			}
			if j >= len(sqlText) {
				j = len(sqlText) - 1
			}
			segs = append(segs, segment{kind: segString, text: sqlText[i : j+1]})
			i = j + 1
		case '"', '`':
			flushCode()
			quote := c
			j := i + 1
			var name strings.Builder
			for j < len(sqlText) {
				if sqlText[j] == quote {
					if j+1 < len(sqlText) && sqlText[j+1] == quote {
						name.WriteByte(quote)
						j += 2
						continue
					}
					break
				}
				name.WriteByte(sqlText[j])
				j++
			}
			segs = append(segs, segment{kind: segIdent, text: name.String()})
			i = j + 1
		default:
			code.WriteByte(c)
			i++
		}
	}
	flushCode()
	return segs
}

// requote re-renders the segments with the target dialect's identifier
// quoting. String literals pass through untouched.
func requote(segs []segment, d sqlgen.Dialect) string {
	var b strings.Builder
	for _, s := range segs {
		switch s.kind {
		case segIdent:
			b.WriteString(d.QuoteIdent(s.text))
		default:
			b.WriteString(s.text)
		}
	}
	return b.String()
}

// skipRegion returns the index just past a string literal or quoted
// identifier starting at i, or i if none starts there. Quoting is the target
// dialect's, so this runs on requoted text.
func skipRegion(s string, i int, d sqlgen.Dialect) int {
	if i >= len(s) {
		return i
	}
	var close byte
	switch s[i] {
	case '\'':
		close = '\''
	case '"':
		close = '"'
	case '`':
		close = '`'
	case '[':
		if d == sqlgen.DialectTSQL {
			close = ']'
		} else {
			return i
		}
	default:
		return i
	}
	j := i + 1
	for j < len(s) {
		if s[j] == close {
			if j+1 < len(s) && s[j+1] == close {
				j += 2
				continue
			}
			return j + 1
		}
		j++
	}
	return len(s)
}

func isWordByte(c byte) bool {
	return c == '_' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// wordAt reports whether the identifier word starting at i equals word
// (case-insensitive, whole-word).
func wordAt(s string, i int, word string) bool {
	if i+len(word) > len(s) {
		return false
	}
	if !strings.EqualFold(s[i:i+len(word)], word) {
		return false
	}
	if i > 0 && isWordByte(s[i-1]) {
		return false
	}
	if i+len(word) < len(s) && isWordByte(s[i+len(word)]) {
		return false
	}
	return true
}

// replaceWord substitutes every whole-word occurrence of word outside
// literals, skipping occurrences followed by an open paren (those are
// function calls, not the bare keyword).
func replaceWord(s string, d sqlgen.Dialect, word, replacement string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if j := skipRegion(s, i, d); j > i {
			b.WriteString(s[i:j])
			i = j
			continue
		}
		if wordAt(s, i, word) {
			rest := strings.TrimLeft(s[i+len(word):], " \t")
			if !strings.HasPrefix(rest, "(") {
				b.WriteString(replacement)
				i += len(word)
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// parseGranularity maps an interval/truncation unit to a granularity.
// Plural forms are accepted.
func parseGranularity(unit string) (query.Granularity, bool) {
	g := query.Granularity(strings.TrimSuffix(strings.ToLower(unit), "s"))
	if !g.Valid() {
		return "", false
	}
	return g, true
}

// splitArgs splits a function argument list at top-level commas. start is
// the index just past the open paren; the returned end is the index of the
// matching close paren.
func splitArgs(s string, start int, d sqlgen.Dialect) (args []string, end int, ok bool) {
	depth := 0
	argStart := start
	for i := start; i < len(s); {
		if j := skipRegion(s, i, d); j > i {
			i = j
			continue
		}
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[argStart:i]))
				return args, i, true
			}
			depth--
		case ',':
			if depth == 0 {
				args = append(args, strings.TrimSpace(s[argStart:i]))
				argStart = i + 1
			}
		}
		i++
	}
	return nil, 0, false
}

// rewriteDateTrunc converts DATE_TRUNC('unit', expr) calls into the target
// dialect's truncation idiom. Calls whose first argument is not a unit
// literal are left for the warehouse to reject.
func rewriteDateTrunc(s string, d sqlgen.Dialect) (string, error) {
	const fn = "DATE_TRUNC"
	var b strings.Builder
	for i := 0; i < len(s); {
		if j := skipRegion(s, i, d); j > i {
			b.WriteString(s[i:j])
			i = j
			continue
		}
		if !wordAt(s, i, fn) {
			b.WriteByte(s[i])
			i++
			continue
		}
		open := i + len(fn)
		for open < len(s) && (s[open] == ' ' || s[open] == '\t') {
			open++
		}
		if open >= len(s) || s[open] != '(' {
			b.WriteString(s[i : i+len(fn)])
			i += len(fn)
			continue
		}
		args, end, ok := splitArgs(s, open+1, d)
		if !ok || len(args) != 2 {
			b.WriteString(s[i : i+len(fn)])
			i += len(fn)
			continue
		}
		unit := strings.Trim(args[0], "'")
		g, valid := parseGranularity(unit)
		if !valid {
			b.WriteString(s[i : end+1])
			i = end + 1
			continue
		}
		// Inner expression first, so nested DATE_TRUNCs resolve too.
		inner, err := rewriteDateTrunc(args[1], d)
		if err != nil {
			return "", err
		}
		expr, err := d.DateTrunc(g, inner)
		if err != nil {
			return "", fmt.Errorf("transpiling DATE_TRUNC: %w", err)
		}
		b.WriteString(expr)
		i = end + 1
	}
	return b.String(), nil
}

// operandStart finds the start index of the operand ending at end
// (exclusive): a parenthesized group, a function call, or a dotted
// identifier chain in the target quoting.
func operandStart(s string, end int, d sqlgen.Dialect) int {
	i := end
	for i > 0 && (s[i-1] == ' ' || s[i-1] == '\t') {
		i--
	}
	if i == 0 {
		return 0
	}
	switch s[i-1] {
	case ')':
		depth := 1
		j := i - 1
		for j > 0 && depth > 0 {
			j--
			switch s[j] {
			case ')':
				depth++
			case '(':
				depth--
			}
		}
		// Include a function name directly before the group.
		for j > 0 && isWordByte(s[j-1]) {
			j--
		}
		return j
	default:
		closeQuote := map[sqlgen.Dialect]byte{
			sqlgen.DialectMySQL:    '`',
			sqlgen.DialectBigQuery: '`',
			sqlgen.DialectTSQL:     ']',
		}[d]
		openQuote := closeQuote
		if d == sqlgen.DialectTSQL {
			openQuote = '['
		}
		if closeQuote == 0 {
			openQuote, closeQuote = '"', '"'
		}
		j := i
		for j > 0 {
			c := s[j-1]
			if isWordByte(c) || c == '.' {
				j--
				continue
			}
			if c == closeQuote {
				j--
				for j > 0 && s[j-1] != openQuote {
					j--
				}
				if j > 0 {
					j--
				}
				continue
			}
			break
		}
		return j
	}
}

// rewriteIntervals converts `operand ± INTERVAL 'n unit'` arithmetic into
// the target dialect's date-shift form. Dialects with native interval
// arithmetic only need the literal unquoted.
func rewriteIntervals(s string, d sqlgen.Dialect) (string, error) {
	switch d {
	case sqlgen.DialectMySQL, sqlgen.DialectBigQuery:
		return intervalLiteralRe.ReplaceAllString(s, "INTERVAL $1 $2"), nil
	case sqlgen.DialectTSQL, sqlgen.DialectSQLite:
	default:
		return s, nil
	}

	for {
		loc := intervalLiteralRe.FindStringSubmatchIndex(s)
		if loc == nil {
			return s, nil
		}
		n, err := strconv.Atoi(s[loc[2]:loc[3]])
		if err != nil {
			return "", fmt.Errorf("transpiling interval: %w", err)
		}
		g, ok := parseGranularity(s[loc[4]:loc[5]])
		if !ok {
			return "", fmt.Errorf("transpiling interval: %w: %q",
				sqlgen.ErrUnsupportedGranularity, s[loc[4]:loc[5]])
		}

		// Find the operator and operand to the left of INTERVAL.
		opEnd := loc[0]
		for opEnd > 0 && (s[opEnd-1] == ' ' || s[opEnd-1] == '\t') {
			opEnd--
		}
		if opEnd == 0 || (s[opEnd-1] != '+' && s[opEnd-1] != '-') {
			return "", fmt.Errorf("transpiling interval: no operator before INTERVAL at offset %d", loc[0])
		}
		if s[opEnd-1] == '-' {
			n = -n
		}
		lhsEnd := opEnd - 1
		lhsStart := operandStart(s, lhsEnd, d)
		lhs := strings.TrimSpace(s[lhsStart:lhsEnd])

		shifted := d.AddUnits(lhs, n, g)
		s = s[:lhsStart] + shifted + s[loc[1]:]
	}
}

// rewriteLimitForTSQL converts a trailing top-level LIMIT n [OFFSET m] into
// OFFSET..FETCH, synthesizing ORDER BY 1 when the statement has no top-level
// ORDER BY (the T-SQL form is only legal after one).
func rewriteLimitForTSQL(s string) string {
	depth := 0
	limitIdx := -1
	orderIdx := -1
	for i := 0; i < len(s); {
		if j := skipRegion(s, i, sqlgen.DialectTSQL); j > i {
			i = j
			continue
		}
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			if wordAt(s, i, "LIMIT") {
				limitIdx = i
			}
			if wordAt(s, i, "ORDER") {
				orderIdx = i
			}
		}
		i++
	}
	if limitIdx < 0 {
		return s
	}

	tail := s[limitIdx:]
	fields := strings.Fields(tail)
	// Expected shapes: LIMIT n | LIMIT n OFFSET m
	if len(fields) < 2 {
		return s
	}
	limit, err := strconv.Atoi(strings.TrimRight(fields[1], ";"))
	if err != nil {
		return s
	}
	offset := 0
	if len(fields) >= 4 && strings.EqualFold(fields[2], "OFFSET") {
		if v, err := strconv.Atoi(strings.TrimRight(fields[3], ";")); err == nil {
			offset = v
		}
	}

	head := strings.TrimRight(s[:limitIdx], " \t")
	if orderIdx < 0 || orderIdx > limitIdx {
		head += " ORDER BY 1"
	}
	return head + " " + sqlgen.DialectTSQL.LimitClause(limit, offset)
}
