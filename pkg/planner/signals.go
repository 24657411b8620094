package planner

import (
	"strings"
	"unicode"
)

// Keyword families. Multi-word entries match as substrings of the lowered
// question; single words match whole tokens.
var (
	sqlKeywords = []string{
		"show", "list", "count", "top", "avg", "average", "sum", "total",
		"min", "max", "how many", "per", "group", "breakdown", "trend",
		"over time", "compare", "revenue", "sales", "orders",
	}
	aggregationKeywords = []string{
		"count", "avg", "average", "sum", "total", "top", "trend",
		"over time", "per", "breakdown",
	}
	visualKeywords = []string{
		"chart", "plot", "graph", "dashboard", "visualize", "visualise",
		"visualization", "pie", "histogram", "bar chart", "line chart",
	}
	researchKeywords = []string{
		"summarize", "summarise", "summary", "whitepaper", "report",
		"research", "investigate", "deep dive", "overview", "literature",
		"landscape", "state of",
	}
	webKeywords = []string{
		"web", "internet", "google", "news", "online", "website",
		"search the web", "latest",
	}
	timeKeywords = []string{
		"today", "yesterday", "month", "week", "year", "quarter", "day",
		"q1", "q2", "q3", "q4", "last", "this", "next", "ytd", "date",
	}

	// entityAliases are generic nouns that usually precede a concrete
	// entity mention ("store Delhi", "client Acme").
	entityAliases = []string{
		"store", "shop", "outlet", "client", "customer", "product",
		"region", "branch", "vendor", "supplier", "account", "brand",
		"category", "warehouse",
	}

	// ambiguityPhrases short-circuit routing into Clarify.
	ambiguityPhrases = []string{
		"show me performance", "update me", "how are we doing",
		"what's new", "whats new", "give me an update", "status update",
		"how is it going",
	}
)

// signals is everything routing needs to know about a question.
type signals struct {
	sql          int
	aggregation  int
	visual       int
	research     int
	web          int
	hasEntity    bool
	hasTime      bool
	chartable    bool
	tokenCount   int
	hasQuestion  bool // a literal '?'
	ambiguous    bool // matches a known ambiguity phrase
	mentionsPerf bool
}

func extractSignals(question string) signals {
	lowered := strings.ToLower(question)
	tokens := strings.Fields(lowered)

	s := signals{
		tokenCount:   len(tokens),
		hasQuestion:  strings.Contains(question, "?"),
		mentionsPerf: containsToken(tokens, lowered, "performance"),
	}

	s.sql = countFamily(tokens, lowered, sqlKeywords)
	s.aggregation = countFamily(tokens, lowered, aggregationKeywords)
	s.visual = countFamily(tokens, lowered, visualKeywords)
	s.research = countFamily(tokens, lowered, researchKeywords)
	s.web = countFamily(tokens, lowered, webKeywords)
	s.hasTime = countFamily(tokens, lowered, timeKeywords) > 0
	s.hasEntity = hasEntityReference(question, tokens)
	s.chartable = s.visual > 0 || (s.sql > 0 && s.aggregation > 0)

	for _, phrase := range ambiguityPhrases {
		if strings.Contains(lowered, phrase) {
			s.ambiguous = true
			break
		}
	}
	return s
}

func countFamily(tokens []string, lowered string, family []string) int {
	n := 0
	for _, kw := range family {
		if strings.Contains(kw, " ") {
			if strings.Contains(lowered, kw) {
				n++
			}
		} else if containsToken(tokens, lowered, kw) {
			n++
		}
	}
	return n
}

func containsToken(tokens []string, _ string, word string) bool {
	for _, t := range tokens {
		if strings.Trim(t, `.,;:!?'"`) == word {
			return true
		}
	}
	return false
}

// hasEntityReference detects a concrete entity mention: a quoted span, a
// capitalized word past the sentence start, or an entity-alias noun
// followed by another token.
func hasEntityReference(question string, tokens []string) bool {
	if strings.ContainsAny(question, `"'`) {
		return true
	}
	for i, w := range strings.Fields(question) {
		trimmed := strings.Trim(w, `.,;:!?'"`)
		if i > 0 && trimmed != "" && unicode.IsUpper(rune(trimmed[0])) {
			return true
		}
	}
	for i, t := range tokens {
		word := strings.Trim(t, `.,;:!?'"`)
		for _, alias := range entityAliases {
			if word == alias && i+1 < len(tokens) {
				return true
			}
		}
	}
	return false
}

// entityAliasPhrase finds an entity-alias token followed by a proper-noun
// phrase, returning the alias and the phrase. Used by the reasoning
// controller's entity-resolution rule.
func entityAliasPhrase(question string) (alias, phrase string, ok bool) {
	words := strings.Fields(question)
	for i, w := range words {
		word := strings.ToLower(strings.Trim(w, `.,;:!?'"`))
		for _, a := range entityAliases {
			if word != a || i+1 >= len(words) {
				continue
			}
			var run []string
			for _, next := range words[i+1:] {
				trimmed := strings.Trim(next, `.,;:!?'"`)
				if trimmed == "" || !unicode.IsUpper(rune(trimmed[0])) {
					break
				}
				run = append(run, trimmed)
			}
			if len(run) > 0 {
				return a, strings.Join(run, " "), true
			}
		}
	}
	return "", "", false
}

// DetectEntityMention finds an entity-alias noun followed by a proper-noun
// phrase and returns the zero-attempt resolution state for it. The reasoning
// controller bumps the attempt counter before injecting it.
func DetectEntityMention(question string) (*EntityResolution, bool) {
	alias, phrase, ok := entityAliasPhrase(question)
	if !ok {
		return nil, false
	}
	return &EntityResolution{
		EntityType:       alias,
		EntityPhrase:     phrase,
		OriginalQuestion: question,
		ProbeQuestion:    "List all " + pluralize(alias),
	}, true
}

// pluralize is deliberately naive; probe questions read fine with a bare
// "s" for the alias nouns in use.
func pluralize(noun string) string {
	switch {
	case strings.HasSuffix(noun, "s"), strings.HasSuffix(noun, "x"),
		strings.HasSuffix(noun, "ch"), strings.HasSuffix(noun, "sh"):
		return noun + "es"
	case strings.HasSuffix(noun, "y"):
		return noun[:len(noun)-1] + "ies"
	default:
		return noun + "s"
	}
}
