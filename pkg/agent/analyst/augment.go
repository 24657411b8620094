package analyst

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// entityTopK bounds the vector search per extracted phrase; only the best
// match above the threshold is injected.
const entityTopK = 3

// prepositions whose following tokens often name an entity ("orders from
// Acme", "revenue in EMEA").
var entityPrepositions = map[string]bool{
	"in": true, "at": true, "for": true, "from": true, "by": true, "with": true,
}

var phraseStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "and": true, "or": true,
	"last": true, "this": true, "next": true, "all": true, "each": true,
	"show": true, "list": true, "what": true, "how": true, "which": true,
}

// resolveEntities extracts candidate entity phrases from the question,
// embeds them, and searches the vector index. Matches at or above the
// threshold come back as `<table>.<column>` -> value filters. Augmentation
// is best effort: any failure logs and returns nothing.
func (a *Agent) resolveEntities(ctx context.Context, question string) map[string]string {
	phrases := extractPhrases(question)
	if len(phrases) == 0 {
		return nil
	}

	vectors, err := a.embedder.Embed(ctx, phrases)
	if err != nil {
		a.logger.Warn("Entity embedding failed, skipping augmentation", "error", err)
		return nil
	}
	if len(vectors) != len(phrases) {
		a.logger.Warn("Entity embedding count mismatch, skipping augmentation",
			"phrases", len(phrases), "vectors", len(vectors))
		return nil
	}

	filters := make(map[string]string)
	for i, vec := range vectors {
		matches, err := a.vectors.Search(ctx, vec, entityTopK, nil)
		if err != nil {
			a.logger.Warn("Entity vector search failed", "phrase", phrases[i], "error", err)
			continue
		}
		for _, m := range matches {
			if m.Score < a.matchThreshold {
				continue
			}
			col, val := m.Metadata["column"], m.Metadata["value"]
			if col == "" || val == "" {
				continue
			}
			if _, taken := filters[col]; !taken {
				a.logger.Debug("Resolved entity",
					"phrase", phrases[i], "column", col, "value", val, "score", m.Score)
				filters[col] = val
			}
			break
		}
	}
	return filters
}

// augmentQuestion appends the resolved entity spellings to the question
// text. Columns are sorted so the rendered prompt is deterministic.
func augmentQuestion(question string, resolved map[string]string) string {
	if len(resolved) == 0 {
		return question
	}
	cols := make([]string, 0, len(resolved))
	for col := range resolved {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	parts := make([]string, 0, len(cols))
	for _, col := range cols {
		parts = append(parts, col+" is "+strconv.Quote(resolved[col]))
	}
	return question + " (resolved: " + strings.Join(parts, ", ") + ")"
}

// extractPhrases pulls candidate entity mentions out of a question:
// quoted spans, capitalized word runs, and tokens following entity-bearing
// prepositions. Results are deduplicated case-insensitively.
func extractPhrases(question string) []string {
	var phrases []string
	seen := map[string]bool{}
	add := func(p string) {
		p = strings.TrimSpace(strings.Trim(p, `.,;:!?'"`))
		if p == "" || phraseStopwords[strings.ToLower(p)] {
			return
		}
		key := strings.ToLower(p)
		if !seen[key] {
			seen[key] = true
			phrases = append(phrases, p)
		}
	}

	for _, quote := range []byte{'"', '\''} {
		rest := question
		for {
			open := strings.IndexByte(rest, quote)
			if open < 0 {
				break
			}
			close := strings.IndexByte(rest[open+1:], quote)
			if close < 0 {
				break
			}
			add(rest[open+1 : open+1+close])
			rest = rest[open+close+2:]
		}
	}

	words := strings.Fields(question)

	// Capitalized runs. The first word of the question only counts when the
	// run extends past it, so "Show revenue" contributes nothing.
	var run []string
	runStart := -1
	flush := func() {
		// Drop capitalized imperatives at the sentence start ("Show", "List").
		for len(run) > 0 && phraseStopwords[strings.ToLower(run[0])] {
			run = run[1:]
			runStart++
		}
		if len(run) > 0 && !(runStart == 0 && len(run) == 1) {
			add(strings.Join(run, " "))
		}
		run = nil
	}
	for i, w := range words {
		trimmed := strings.Trim(w, `.,;:!?'"`)
		if trimmed != "" && unicode.IsUpper(rune(trimmed[0])) {
			if len(run) == 0 {
				runStart = i
			}
			run = append(run, trimmed)
		} else {
			flush()
		}
	}
	flush()

	// Tokens after prepositions.
	for i, w := range words {
		if entityPrepositions[strings.ToLower(w)] && i+1 < len(words) {
			add(words[i+1])
		}
	}

	return phrases
}
