package orchestrator

import (
	"fmt"
	"strings"

	"github.com/quillhq/quill/pkg/agent"
)

// Tool-context distillation limits: upstream artifacts are compressed to a
// short structured block before entering the next prompt.
const (
	synthesisTrimChars    = 360
	topFindingsInContext  = 3
	topSourcesInContext   = 3
	sampleValuesPerColumn = 4
)

// distillToolContext compresses a referenced step's output into a prompt
// fragment: trimmed synthesis, top findings, top web sources, and a few
// sample values per data column.
func distillToolContext(out *agent.PlanExecutionArtifacts) string {
	if out == nil {
		return ""
	}
	var b strings.Builder

	if r := out.ResearchResult; r != nil {
		if r.Synthesis != "" {
			b.WriteString("Research synthesis: ")
			b.WriteString(trimTo(r.Synthesis, synthesisTrimChars))
			b.WriteString("\n")
		}
		for i, f := range r.Findings {
			if i >= topFindingsInContext {
				break
			}
			fmt.Fprintf(&b, "Finding: %s\n", f.Statement)
		}
	}

	if w := out.WebSearchResult; w != nil {
		for i, src := range w.Sources {
			if i >= topSourcesInContext {
				break
			}
			fmt.Fprintf(&b, "Source: %s (%s)\n", src.Title, src.URL)
		}
	}

	if d := out.DataPayload; d != nil && len(d.Columns) > 0 {
		for ci, col := range d.Columns {
			values := make([]string, 0, sampleValuesPerColumn)
			for _, row := range d.Rows {
				if len(values) >= sampleValuesPerColumn {
					break
				}
				if ci < len(row) {
					values = append(values, fmt.Sprint(row[ci]))
				}
			}
			if len(values) > 0 {
				fmt.Fprintf(&b, "Column %s sample values: %s\n", col, strings.Join(values, ", "))
			}
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func trimTo(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
