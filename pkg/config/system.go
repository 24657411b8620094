package config

// ServerConfig holds the API server settings.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr,omitempty"`
}

// RedisConfig holds the message broker connection settings. The password
// comes through env expansion, never a literal in YAML.
type RedisConfig struct {
	Addr     string `yaml:"addr,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
}

// WebSearchConfig holds the web search provider settings.
type WebSearchConfig struct {
	Provider   string `yaml:"provider,omitempty"` // "duckduckgo" or "stub"
	APIKeyEnv  string `yaml:"api_key_env,omitempty"`
	MaxResults int    `yaml:"max_results,omitempty"`
	Region     string `yaml:"region,omitempty"`
}
