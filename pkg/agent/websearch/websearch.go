// Package websearch implements the web search agent: a pluggable search
// provider behind timeout, dedup, and ranking.
package websearch

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/quillhq/quill/pkg/agent"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultMaxResults = 8
)

// ErrNoResults indicates the provider answered but found nothing.
var ErrNoResults = errors.New("no web results")

// Provider is a search backend. Implementations return raw hits in the
// backend's own order; the agent dedups and ranks.
type Provider interface {
	Search(ctx context.Context, query string, max int) ([]agent.WebSource, error)
}

// Agent wraps a Provider with the search policy.
type Agent struct {
	provider   Provider
	logger     *slog.Logger
	timeout    time.Duration
	maxResults int
}

type Option func(*Agent)

func WithTimeout(d time.Duration) Option {
	return func(a *Agent) { a.timeout = d }
}

func WithMaxResults(n int) Option {
	return func(a *Agent) { a.maxResults = n }
}

func New(provider Provider, logger *slog.Logger, opts ...Option) *Agent {
	a := &Agent{
		provider:   provider,
		logger:     logger.With("agent", agent.AgentWebSearch),
		timeout:    defaultTimeout,
		maxResults: defaultMaxResults,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Search runs the query, dedups by URL host+path, scores, and returns the
// top results in descending score order.
func (a *Agent) Search(ctx context.Context, query string) (*agent.WebSearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	// Over-fetch so dedup still fills the result set.
	hits, err := a.provider.Search(ctx, query, a.maxResults*2)
	if err != nil {
		return nil, err
	}

	sources := rank(dedup(hits), query)
	if len(sources) == 0 {
		return nil, ErrNoResults
	}
	if len(sources) > a.maxResults {
		sources = sources[:a.maxResults]
	}
	a.logger.Debug("Web search complete", "query", query, "sources", len(sources))
	return &agent.WebSearchResult{Query: query, Sources: sources}, nil
}

// dedup drops later hits whose URL host+path was already seen. Scheme,
// query string and fragment do not distinguish results.
func dedup(hits []agent.WebSource) []agent.WebSource {
	seen := map[string]bool{}
	out := hits[:0]
	for _, h := range hits {
		key := hostPathKey(h.URL)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}
	return out
}

func hostPathKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	return host + strings.TrimSuffix(u.Path, "/")
}

// rank scores hits by provider position with boosts for query terms in the
// title and for having a snippet at all.
func rank(hits []agent.WebSource, query string) []agent.WebSource {
	terms := strings.Fields(strings.ToLower(query))
	for i := range hits {
		score := 1.0 - 0.05*float64(i)
		if score < 0 {
			score = 0
		}
		title := strings.ToLower(hits[i].Title)
		for _, t := range terms {
			if strings.Contains(title, t) {
				score += 0.1
			}
		}
		if hits[i].Snippet != "" {
			score += 0.05
		}
		hits[i].Score = score
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	return hits
}
