// Package prompt renders semantic models and agent instructions into the
// text blocks the LLM agents send as context.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quillhq/quill/pkg/semantic"
	"github.com/quillhq/quill/pkg/sqlgen"
)

// RenderModel serializes a semantic model into a schema description for the
// analyst prompt. Tables keep model order; physical references are rendered
// the way the canonical dialect quotes them so the LLM sees the exact
// identifiers it should emit.
func RenderModel(m *semantic.Model, d sqlgen.Dialect) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Schema: %s\n", m.Name)
	if m.Description != "" {
		b.WriteString(m.Description)
		b.WriteString("\n")
	}
	if len(m.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(m.Tags, ", "))
	}

	for _, key := range m.OrderedTableKeys() {
		t := m.Tables[key]
		b.WriteString("\n")
		fmt.Fprintf(&b, "### Table %s (%s)\n", key, quoteQualifiedTable(t, d))
		if t.Description != "" {
			b.WriteString(t.Description)
			b.WriteString("\n")
		}
		if len(t.Synonyms) > 0 {
			fmt.Fprintf(&b, "Also known as: %s\n", strings.Join(t.Synonyms, ", "))
		}

		if len(t.Dimensions) > 0 {
			b.WriteString("Dimensions:\n")
			for i := range t.Dimensions {
				writeDimension(&b, &t.Dimensions[i])
			}
		}
		if len(t.Measures) > 0 {
			b.WriteString("Measures:\n")
			for i := range t.Measures {
				writeMeasure(&b, &t.Measures[i])
			}
		}
		if len(t.Filters) > 0 {
			b.WriteString("Named filters:\n")
			for _, name := range sortedKeys(t.Filters) {
				f := t.Filters[name]
				fmt.Fprintf(&b, "  - %s.%s: %s", key, name, f.Condition)
				if f.Description != "" {
					fmt.Fprintf(&b, " -- %s", f.Description)
				}
				b.WriteString("\n")
			}
		}
	}

	if len(m.Relationships) > 0 {
		b.WriteString("\n### Relationships\n")
		for _, r := range m.Relationships {
			fmt.Fprintf(&b, "  - %s: %s %s %s ON %s\n",
				r.Name, r.FromTable, r.Type, r.ToTable, r.JoinOn)
		}
	}

	if len(m.Metrics) > 0 {
		b.WriteString("\n### Metrics\n")
		for _, name := range sortedKeys(m.Metrics) {
			metric := m.Metrics[name]
			fmt.Fprintf(&b, "  - %s = %s", name, metric.Expression)
			if metric.Description != "" {
				fmt.Fprintf(&b, " -- %s", metric.Description)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeDimension(b *strings.Builder, d *semantic.Dimension) {
	fmt.Fprintf(b, "  - %s (%s)", d.Name, d.Type)
	if d.PrimaryKey {
		b.WriteString(" [primary key]")
	}
	if d.Expression != "" {
		fmt.Fprintf(b, " = %s", d.Expression)
	}
	if len(d.Synonyms) > 0 {
		fmt.Fprintf(b, ", aka %s", strings.Join(d.Synonyms, "/"))
	}
	if d.Description != "" {
		fmt.Fprintf(b, " -- %s", d.Description)
	}
	b.WriteString("\n")
}

func writeMeasure(b *strings.Builder, m *semantic.Measure) {
	fmt.Fprintf(b, "  - %s (%s %s)", m.Name, m.Aggregation, m.Type)
	if m.Expression != "" {
		fmt.Fprintf(b, " = %s", m.Expression)
	}
	if m.Description != "" {
		fmt.Fprintf(b, " -- %s", m.Description)
	}
	b.WriteString("\n")
}

// quoteQualifiedTable renders the physical table reference in the dialect's
// quoting style.
func quoteQualifiedTable(t *semantic.Table, d sqlgen.Dialect) string {
	parts := make([]string, 0, 3)
	if t.Catalog != "" {
		parts = append(parts, t.Catalog)
	}
	if t.Schema != "" {
		parts = append(parts, t.Schema)
	}
	parts = append(parts, t.Name)
	return d.QuoteQualified(parts...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
