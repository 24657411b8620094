package prompt

import (
	"fmt"
	"strings"
)

// AnalystSystem is the system prompt for SQL generation. Canonical SQL is
// always postgres; transpilation to the warehouse dialect happens after
// parsing, so the model never needs to know the target.
func AnalystSystem(schema string) string {
	var b strings.Builder
	b.WriteString(`You are a SQL analyst. Generate a single PostgreSQL SELECT statement that answers the user's question against the schema below.

Rules:
- Output only SQL, inside a fenced code block.
- SELECT statements only. Never modify data.
- Use the exact quoted table and column references shown in the schema.
- Prefer the named metrics and filters over re-deriving them.
- Always include a LIMIT unless the question asks for a single aggregate.

`)
	b.WriteString(schema)
	return b.String()
}

// AnalystQuestion renders the user turn: the question plus any injected
// entity filters and conversation context.
func AnalystQuestion(question string, filters map[string]string, limit int, conversationContext string) string {
	var b strings.Builder
	if conversationContext != "" {
		b.WriteString("Conversation context:\n")
		b.WriteString(conversationContext)
		b.WriteString("\n\n")
	}
	b.WriteString("Question: ")
	b.WriteString(question)
	b.WriteString("\n")
	if len(filters) > 0 {
		b.WriteString("Apply these filters:\n")
		for _, col := range sortedKeys(filters) {
			fmt.Fprintf(&b, "  - %s = %s\n", col, filters[col])
		}
	}
	if limit > 0 {
		fmt.Fprintf(&b, "Return at most %d rows.\n", limit)
	}
	return b.String()
}

// SQLCorrection asks the model to repair SQL the warehouse rejected. Used
// for the single self-correction retry after an execution error.
func SQLCorrection(schema, failedSQL, execError string) string {
	return fmt.Sprintf(`The following PostgreSQL query failed against the schema.

Query:
%s

Error:
%s

%s

Return the corrected query only, inside a fenced code block. Keep the original intent; fix only what the error requires.`, failedSQL, execError, schema)
}
