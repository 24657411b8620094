package research

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/llm"
)

type scriptedCompleter struct {
	responses []string
	requests  []llm.Request
	err       error
}

func (s *scriptedCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	i := len(s.requests) - 1
	if i >= len(s.responses) {
		return "", errors.New("completer called more times than scripted")
	}
	return s.responses[i], nil
}

type scriptedSearcher struct {
	results []*agent.WebSearchResult
	err     error
	queries []string
}

func (s *scriptedSearcher) Search(_ context.Context, query string) (*agent.WebSearchResult, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return nil, s.err
	}
	i := len(s.queries) - 1
	if i >= len(s.results) {
		return &agent.WebSearchResult{Query: query}, nil
	}
	return s.results[i], nil
}

func testLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func sourcesOnHosts(hosts ...string) []agent.WebSource {
	out := make([]agent.WebSource, len(hosts))
	for i, h := range hosts {
		out[i] = agent.WebSource{
			Title:   "page on " + h,
			URL:     fmt.Sprintf("https://%s/article-%d", h, i),
			Snippet: "snippet from " + h,
		}
	}
	return out
}

const synthesisJSON = `{"synthesis":"Summary.","findings":[{"statement":"Fact.","evidence_ids":["web-1"],"confidence":0.8}]}`

func TestResearchStopsWhenCovered(t *testing.T) {
	searcher := &scriptedSearcher{results: []*agent.WebSearchResult{
		{Sources: sourcesOnHosts("a.example", "b.example", "c.example", "d.example", "e.example")},
	}}
	completer := &scriptedCompleter{responses: []string{synthesisJSON}}
	a := New(completer, searcher, testLogger())

	res, err := a.Research(context.Background(), "state of the market", nil)
	require.NoError(t, err)

	// Coverage (5 docs) and diversity (5 hosts) met after one step: no
	// refinement call, one synthesis call.
	assert.Len(t, searcher.queries, 1)
	assert.Len(t, completer.requests, 1)
	assert.Len(t, res.Evidence, 5)
	assert.Equal(t, "Summary.", res.Synthesis)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, []string{"web-1"}, res.Findings[0].EvidenceIDs)
}

func TestResearchRefinesUntilBudget(t *testing.T) {
	searcher := &scriptedSearcher{results: []*agent.WebSearchResult{
		{Sources: sourcesOnHosts("a.example")},
		{Sources: sourcesOnHosts("b.example")},
		{Sources: sourcesOnHosts("c.example")},
	}}
	completer := &scriptedCompleter{responses: []string{
		"market size 2026",
		"market growth drivers",
		synthesisJSON,
	}}
	a := New(completer, searcher, testLogger(), WithMaxSteps(3))

	res, err := a.Research(context.Background(), "state of the market", nil)
	require.NoError(t, err)

	require.Len(t, searcher.queries, 3)
	assert.Equal(t, "state of the market", searcher.queries[0])
	assert.Equal(t, "market size 2026", searcher.queries[1])
	assert.Equal(t, "market growth drivers", searcher.queries[2])
	assert.Len(t, res.Evidence, 3)
}

func TestResearchNoDocuments(t *testing.T) {
	searcher := &scriptedSearcher{err: errors.New("backend down")}
	a := New(&scriptedCompleter{}, searcher, testLogger())

	_, err := a.Research(context.Background(), "q", nil)
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestResearchSeedOnlyNoSearcher(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		`{"synthesis":"From seeds.","findings":[{"statement":"S.","evidence_ids":["doc-1"],"confidence":0.9}]}`,
	}}
	a := New(completer, nil, testLogger())

	res, err := a.Research(context.Background(), "q", []agent.Document{
		{Content: "seed content one"},
		{Content: "seed content two"},
	})
	require.NoError(t, err)
	assert.Len(t, res.Evidence, 2)
	assert.Equal(t, "doc-1", res.Evidence[0].ID)
	require.Len(t, res.Findings, 1)

	// The synthesis prompt embeds the labeled evidence.
	prompt := completer.requests[0].Messages[0].Content
	assert.Contains(t, prompt, "[doc-1]")
	assert.Contains(t, prompt, "seed content two")
}

func TestResearchDropsUnknownCitations(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{
		`{"synthesis":"S.","findings":[
			{"statement":"cited","evidence_ids":["doc-1","ghost-9"],"confidence":0.5},
			{"statement":"uncited","evidence_ids":["ghost-1"],"confidence":0.5}
		]}`,
	}}
	a := New(completer, nil, testLogger())

	res, err := a.Research(context.Background(), "q", []agent.Document{{Content: "c"}})
	require.NoError(t, err)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, []string{"doc-1"}, res.Findings[0].EvidenceIDs)

	// Invariant: every cited id exists in the evidence set.
	known := map[string]bool{}
	for _, d := range res.Evidence {
		known[d.ID] = true
	}
	for _, f := range res.Findings {
		for _, id := range f.EvidenceIDs {
			assert.True(t, known[id], "unknown evidence id %s", id)
		}
	}
}

func TestResearchDedupsSeedAndWebOverlap(t *testing.T) {
	seed := []agent.Document{{ID: "doc-1", URL: "https://a.example/article-0", Content: "seed"}}
	searcher := &scriptedSearcher{results: []*agent.WebSearchResult{
		{Sources: sourcesOnHosts("a.example", "b.example")},
	}}
	completer := &scriptedCompleter{responses: []string{synthesisJSON, synthesisJSON, synthesisJSON}}
	a := New(completer, searcher, testLogger(), WithMaxSteps(1))

	res, err := a.Research(context.Background(), "q", seed)
	require.NoError(t, err)
	// The a.example URL from search is already seeded.
	require.Len(t, res.Evidence, 2)
	urls := []string{res.Evidence[0].URL, res.Evidence[1].URL}
	assert.Contains(t, urls, "https://a.example/article-0")
	assert.True(t, strings.HasPrefix(res.Evidence[1].URL, "https://b.example/"))
}

func TestResearchSynthesisNotJSON(t *testing.T) {
	completer := &scriptedCompleter{responses: []string{"plain prose"}}
	a := New(completer, nil, testLogger())

	_, err := a.Research(context.Background(), "q", []agent.Document{{Content: "c"}})
	assert.ErrorContains(t, err, "not valid JSON")
}
