// Package research implements the deep research agent: iterative evidence
// gathering over web search and caller documents, stop conditions on
// coverage and diversity, and a synthesized report whose findings cite the
// evidence set.
package research

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/quillhq/quill/pkg/agent"
	"github.com/quillhq/quill/pkg/llm"
	"github.com/quillhq/quill/pkg/transpile"
)

// ErrNoDocuments indicates the research loop ended with an empty evidence
// set; there is nothing to synthesize from.
var ErrNoDocuments = errors.New("no documents")

const (
	defaultMaxSteps        = 3
	defaultCoverageTarget  = 5 // distinct evidence documents
	defaultDiversityTarget = 3 // distinct source hosts
	snippetDocMaxChars     = 2000
)

// Searcher is the web search capability the loop draws evidence from.
// Satisfied by *websearch.Agent.
type Searcher interface {
	Search(ctx context.Context, query string) (*agent.WebSearchResult, error)
}

// Agent runs the research loop.
type Agent struct {
	completer agent.Completer
	searcher  Searcher // nil: synthesize over caller documents only
	logger    *slog.Logger

	maxSteps        int
	coverageTarget  int
	diversityTarget int
}

type Option func(*Agent)

func WithMaxSteps(n int) Option        { return func(a *Agent) { a.maxSteps = n } }
func WithCoverageTarget(n int) Option  { return func(a *Agent) { a.coverageTarget = n } }
func WithDiversityTarget(n int) Option { return func(a *Agent) { a.diversityTarget = n } }

func New(completer agent.Completer, searcher Searcher, logger *slog.Logger, opts ...Option) *Agent {
	a := &Agent{
		completer:       completer,
		searcher:        searcher,
		logger:          logger.With("agent", agent.AgentDocRetrieval),
		maxSteps:        defaultMaxSteps,
		coverageTarget:  defaultCoverageTarget,
		diversityTarget: defaultDiversityTarget,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Research gathers evidence and synthesizes a report. Seed documents count
// toward coverage; search steps stop as soon as both the coverage and
// diversity targets are met or the step budget runs out.
func (a *Agent) Research(ctx context.Context, question string, seed []agent.Document) (*agent.ResearchResult, error) {
	evidence := dedupDocuments(seed)

	query := question
	for step := 0; a.searcher != nil && step < a.maxSteps; step++ {
		if a.satisfied(evidence) {
			break
		}

		res, err := a.searcher.Search(ctx, query)
		if err != nil {
			a.logger.Warn("Research search step failed", "step", step, "query", query, "error", err)
			break
		}
		evidence = mergeSources(evidence, res.Sources)

		if a.satisfied(evidence) || step == a.maxSteps-1 {
			break
		}
		next, err := a.refineQuery(ctx, question, query, evidence)
		if err != nil {
			a.logger.Warn("Query refinement failed, stopping evidence gathering", "error", err)
			break
		}
		query = next
	}

	if len(evidence) == 0 {
		return nil, ErrNoDocuments
	}
	return a.synthesize(ctx, question, evidence)
}

// satisfied reports whether the evidence set meets both stop conditions.
func (a *Agent) satisfied(evidence []agent.Document) bool {
	if len(evidence) < a.coverageTarget {
		return false
	}
	hosts := map[string]bool{}
	for _, d := range evidence {
		if u, err := url.Parse(d.URL); err == nil && u.Host != "" {
			hosts[strings.TrimPrefix(strings.ToLower(u.Host), "www.")] = true
		}
	}
	return len(hosts) >= a.diversityTarget
}

func dedupDocuments(docs []agent.Document) []agent.Document {
	seen := map[string]bool{}
	var out []agent.Document
	for i, d := range docs {
		if d.ID == "" {
			d.ID = fmt.Sprintf("doc-%d", i+1)
		}
		key := d.URL
		if key == "" {
			key = d.ID
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}

// mergeSources promotes web sources into evidence documents, skipping URLs
// already present.
func mergeSources(evidence []agent.Document, sources []agent.WebSource) []agent.Document {
	seen := map[string]bool{}
	for _, d := range evidence {
		if d.URL != "" {
			seen[d.URL] = true
		}
	}
	for _, s := range sources {
		if s.URL == "" || seen[s.URL] {
			continue
		}
		seen[s.URL] = true
		content := s.Snippet
		if len(content) > snippetDocMaxChars {
			content = content[:snippetDocMaxChars]
		}
		evidence = append(evidence, agent.Document{
			ID:      fmt.Sprintf("web-%d", len(evidence)+1),
			Title:   s.Title,
			URL:     s.URL,
			Content: content,
		})
	}
	return evidence
}

// refineQuery asks the model for the next search query given what evidence
// is already in hand.
func (a *Agent) refineQuery(ctx context.Context, question, lastQuery string, evidence []agent.Document) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Research question: %s\nLast query: %s\nEvidence so far:\n", question, lastQuery)
	for _, d := range evidence {
		fmt.Fprintf(&b, "  - %s (%s)\n", d.Title, d.URL)
	}
	b.WriteString("Respond with a single refined web search query that covers an aspect the evidence misses. Plain text, no quotes.")

	out, err := a.completer.Complete(ctx, llm.Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
	})
	if err != nil {
		return "", err
	}
	refined := strings.TrimSpace(strings.Trim(strings.TrimSpace(out), `"`))
	if refined == "" {
		return lastQuery, nil
	}
	return refined, nil
}

type synthesisResponse struct {
	Synthesis string `json:"synthesis"`
	Findings  []struct {
		Statement   string   `json:"statement"`
		EvidenceIDs []string `json:"evidence_ids"`
		Confidence  float64  `json:"confidence"`
	} `json:"findings"`
}

// synthesize produces the report. Findings citing unknown evidence ids have
// those ids dropped; a finding left with no citations is discarded so the
// evidence_ids invariant holds.
func (a *Agent) synthesize(ctx context.Context, question string, evidence []agent.Document) (*agent.ResearchResult, error) {
	known := map[string]bool{}
	var b strings.Builder
	fmt.Fprintf(&b, "Research question: %s\n\nEvidence:\n", question)
	for _, d := range evidence {
		known[d.ID] = true
		fmt.Fprintf(&b, "[%s] %s (%s)\n%s\n\n", d.ID, d.Title, d.URL, d.Content)
	}

	raw, err := a.completer.Complete(ctx, llm.Request{
		System:   synthesisSystemPrompt,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
	})
	if err != nil {
		return nil, fmt.Errorf("synthesis: %w", err)
	}

	var parsed synthesisResponse
	if err := json.Unmarshal([]byte(transpile.StripFence(raw)), &parsed); err != nil {
		return nil, fmt.Errorf("synthesis not valid JSON: %w", err)
	}

	result := &agent.ResearchResult{
		Question:  question,
		Synthesis: parsed.Synthesis,
		Evidence:  evidence,
	}
	for _, f := range parsed.Findings {
		ids := make([]string, 0, len(f.EvidenceIDs))
		for _, id := range f.EvidenceIDs {
			if known[id] {
				ids = append(ids, id)
			} else {
				a.logger.Warn("Dropping citation of unknown evidence", "evidence_id", id)
			}
		}
		if len(ids) == 0 {
			continue
		}
		result.Findings = append(result.Findings, agent.Finding{
			Statement:   f.Statement,
			EvidenceIDs: ids,
			Confidence:  f.Confidence,
		})
	}
	return result, nil
}

const synthesisSystemPrompt = `You are a research analyst. Given a question and a set of evidence documents labeled [id], respond with a single JSON object:

{"synthesis": "<a few paragraphs answering the question>", "findings": [{"statement": "...", "evidence_ids": ["<id>", ...], "confidence": 0.0}]}

Every finding must cite at least one evidence id that appears in the evidence list. Respond with JSON only.`
