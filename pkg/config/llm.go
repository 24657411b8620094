package config

import (
	"fmt"
	"sync"
)

// LLMProviderType selects the SDK binding.
type LLMProviderType string

const (
	ProviderOpenAI    LLMProviderType = "openai"
	ProviderAnthropic LLMProviderType = "anthropic"
)

// LLMProviderConfig defines a completion/embedding provider.
type LLMProviderConfig struct {
	Type LLMProviderType `yaml:"type"`

	// Model is the completion model identifier.
	Model string `yaml:"model"`

	// EmbeddingModel is set only for providers used as embedders.
	EmbeddingModel string `yaml:"embedding_model,omitempty"`

	// APIKeyEnv names the env var carrying the key; never the key itself.
	APIKeyEnv string `yaml:"api_key_env"`

	// BaseURL overrides the provider endpoint (proxies, compatible servers).
	BaseURL string `yaml:"base_url,omitempty"`

	Temperature *float64 `yaml:"temperature,omitempty"`
	MaxTokens   int      `yaml:"max_tokens,omitempty"`
}

// LLMProviderRegistry stores provider configurations with thread-safe access.
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new provider registry.
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{providers: copied}
}

// Get retrieves a provider configuration by name (thread-safe).
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return p, nil
}

// Names returns all registered provider names.
func (r *LLMProviderRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for k := range r.providers {
		names = append(names, k)
	}
	return names
}

// Len returns the number of providers in the registry (thread-safe).
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
