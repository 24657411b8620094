// Package llm provides provider-agnostic completion and embedding clients.
// Agents depend on the Completer and Embedder interfaces; the OpenAI and
// Anthropic adapters translate to their respective SDKs.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/quillhq/quill/pkg/config"
)

// Sentinel errors for provider construction and calls.
var (
	// ErrMissingAPIKey indicates the provider's api_key_env variable is unset.
	ErrMissingAPIKey = errors.New("missing api key")

	// ErrEmptyResponse indicates the provider returned no usable content.
	ErrEmptyResponse = errors.New("empty model response")

	// ErrNoEmbeddings indicates the provider has no embedding surface.
	ErrNoEmbeddings = errors.New("provider does not support embeddings")
)

// Role identifies the author of a message.
type Role string

// Message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Request is a provider-agnostic completion request. Zero-valued fields fall
// back to the provider configuration.
type Request struct {
	System      string
	Messages    []Message
	Temperature *float64
	MaxTokens   int
}

// Completer produces one completion for a conversation.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Embedder embeds texts into vectors. Order is preserved.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// apiKey resolves the provider's API key from its configured env variable.
func apiKey(cfg *config.LLMProviderConfig) (string, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrMissingAPIKey, cfg.APIKeyEnv)
	}
	return key, nil
}

// NewCompleter builds a Completer for the provider configuration.
func NewCompleter(cfg *config.LLMProviderConfig) (Completer, error) {
	switch cfg.Type {
	case config.ProviderOpenAI:
		return newOpenAIClient(cfg)
	case config.ProviderAnthropic:
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unknown provider type %q", cfg.Type)
	}
}

// NewEmbedder builds an Embedder for the provider configuration. Only OpenAI
// providers carry an embedding model.
func NewEmbedder(cfg *config.LLMProviderConfig) (Embedder, error) {
	if cfg.Type != config.ProviderOpenAI || cfg.EmbeddingModel == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoEmbeddings, cfg.Type)
	}
	return newOpenAIClient(cfg)
}
