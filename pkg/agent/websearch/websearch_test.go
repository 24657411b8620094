package websearch

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/agent"
)

type stubProvider struct {
	hits []agent.WebSource
	err  error
	ctx  context.Context
}

func (s *stubProvider) Search(ctx context.Context, _ string, _ int) ([]agent.WebSource, error) {
	s.ctx = ctx
	return s.hits, s.err
}

func testLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestSearchDedupsByHostPath(t *testing.T) {
	provider := &stubProvider{hits: []agent.WebSource{
		{Title: "Go", URL: "https://go.dev/doc/", Snippet: "docs"},
		{Title: "Go again", URL: "http://www.go.dev/doc?utm=x", Snippet: "dup"},
		{Title: "Spec", URL: "https://go.dev/ref/spec", Snippet: "spec"},
	}}
	a := New(provider, testLogger())

	res, err := a.Search(context.Background(), "golang")
	require.NoError(t, err)
	require.Len(t, res.Sources, 2)
	assert.Equal(t, "https://go.dev/doc/", res.Sources[0].URL)
	assert.Equal(t, "https://go.dev/ref/spec", res.Sources[1].URL)
}

func TestSearchRanking(t *testing.T) {
	provider := &stubProvider{hits: []agent.WebSource{
		{Title: "unrelated page", URL: "https://a.example/one"},
		{Title: "quarterly revenue report", URL: "https://b.example/two", Snippet: "numbers"},
	}}
	a := New(provider, testLogger())

	res, err := a.Search(context.Background(), "revenue report")
	require.NoError(t, err)
	// Term matches plus snippet outweigh provider position.
	assert.Equal(t, "https://b.example/two", res.Sources[0].URL)
	assert.Greater(t, res.Sources[0].Score, res.Sources[1].Score)
}

func TestSearchCapsResults(t *testing.T) {
	var hits []agent.WebSource
	for i := 0; i < 10; i++ {
		hits = append(hits, agent.WebSource{
			Title: "page",
			URL:   "https://example.com/p" + string(rune('a'+i)),
		})
	}
	a := New(&stubProvider{hits: hits}, testLogger(), WithMaxResults(3))

	res, err := a.Search(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, res.Sources, 3)
}

func TestSearchErrors(t *testing.T) {
	a := New(&stubProvider{err: errors.New("backend down")}, testLogger())
	_, err := a.Search(context.Background(), "q")
	assert.ErrorContains(t, err, "backend down")

	a = New(&stubProvider{}, testLogger())
	_, err = a.Search(context.Background(), "q")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestSearchTimeoutPropagates(t *testing.T) {
	provider := &stubProvider{hits: []agent.WebSource{{Title: "t", URL: "https://x.example/"}}}
	a := New(provider, testLogger(), WithTimeout(time.Minute))

	_, err := a.Search(context.Background(), "q")
	require.NoError(t, err)
	deadline, ok := provider.ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestDuckDuckGoProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "golang workers", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		_, _ = w.Write([]byte(`{
			"Heading": "Go",
			"AbstractText": "Go is a programming language.",
			"AbstractURL": "https://go.dev/",
			"RelatedTopics": [
				{"Text": "Goroutines", "FirstURL": "https://go.dev/tour/concurrency"},
				{"Topics": [{"Text": "Channels", "FirstURL": "https://go.dev/ref/spec#Channel_types"}]},
				{"Text": "no url topic"}
			]
		}`))
	}))
	defer srv.Close()

	p := NewDuckDuckGoProvider(srv.Client())
	p.endpoint = srv.URL + "/"

	sources, err := p.Search(context.Background(), "golang workers", 10)
	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, "Go", sources[0].Title)
	assert.Equal(t, "https://go.dev/", sources[0].URL)
	assert.Equal(t, "https://go.dev/tour/concurrency", sources[1].URL)
	assert.Equal(t, "https://go.dev/ref/spec#Channel_types", sources[2].URL)
}

func TestDuckDuckGoProviderStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewDuckDuckGoProvider(srv.Client())
	p.endpoint = srv.URL + "/"

	_, err := p.Search(context.Background(), "q", 5)
	assert.ErrorContains(t, err, "status 502")
}
