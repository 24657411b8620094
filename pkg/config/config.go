package config

// Config is the umbrella configuration object returned by Initialize and
// used throughout the application.
type Config struct {
	configDir string

	// System-wide defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Retention of finished jobs
	Retention *RetentionConfig

	// API server settings
	Server *ServerConfig

	// Message broker settings
	Redis *RedisConfig

	// Web search provider settings
	WebSearch *WebSearchConfig

	// Component registries
	AgentRegistry       *AgentRegistry
	LLMProviderRegistry *LLMProviderRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Agents       int
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.AgentRegistry != nil {
		s.Agents = c.AgentRegistry.Len()
	}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAgent retrieves an agent definition by name.
func (c *Config) GetAgent(name string) (*AgentDefinition, error) {
	return c.AgentRegistry.Get(name)
}

// GetLLMProvider retrieves an LLM provider configuration by name.
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// ProviderForAgent resolves the provider an agent should use, falling back
// to the system default.
func (c *Config) ProviderForAgent(agent *AgentDefinition) (*LLMProviderConfig, error) {
	name := agent.LLMProvider
	if name == "" {
		name = c.Defaults.LLMProvider
	}
	return c.LLMProviderRegistry.Get(name)
}
