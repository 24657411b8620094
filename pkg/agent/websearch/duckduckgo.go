package websearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/quillhq/quill/pkg/agent"
)

const duckDuckGoEndpoint = "https://api.duckduckgo.com/"

// DuckDuckGoProvider searches through the DuckDuckGo Instant Answer API.
// No API key required; abstract and related topics become sources.
type DuckDuckGoProvider struct {
	client   *http.Client
	endpoint string
}

func NewDuckDuckGoProvider(client *http.Client) *DuckDuckGoProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &DuckDuckGoProvider{client: client, endpoint: duckDuckGoEndpoint}
}

type ddgResponse struct {
	Heading       string     `json:"Heading"`
	AbstractText  string     `json:"AbstractText"`
	AbstractURL   string     `json:"AbstractURL"`
	RelatedTopics []ddgTopic `json:"RelatedTopics"`
}

type ddgTopic struct {
	Text     string     `json:"Text"`
	FirstURL string     `json:"FirstURL"`
	Topics   []ddgTopic `json:"Topics"` // nested category groups
}

func (p *DuckDuckGoProvider) Search(ctx context.Context, query string, max int) ([]agent.WebSource, error) {
	u := p.endpoint + "?" + url.Values{
		"q":           {query},
		"format":      {"json"},
		"no_redirect": {"1"},
		"no_html":     {"1"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo status %d", resp.StatusCode)
	}

	var body ddgResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("duckduckgo response: %w", err)
	}

	var sources []agent.WebSource
	if body.AbstractURL != "" {
		sources = append(sources, agent.WebSource{
			Title:   body.Heading,
			URL:     body.AbstractURL,
			Snippet: body.AbstractText,
		})
	}
	sources = appendTopics(sources, body.RelatedTopics, max)
	if max > 0 && len(sources) > max {
		sources = sources[:max]
	}
	return sources, nil
}

func appendTopics(sources []agent.WebSource, topics []ddgTopic, max int) []agent.WebSource {
	for _, t := range topics {
		if max > 0 && len(sources) >= max {
			break
		}
		if len(t.Topics) > 0 {
			sources = appendTopics(sources, t.Topics, max)
			continue
		}
		if t.FirstURL == "" {
			continue
		}
		sources = append(sources, agent.WebSource{
			Title:   t.Text,
			URL:     t.FirstURL,
			Snippet: t.Text,
		})
	}
	return sources
}
