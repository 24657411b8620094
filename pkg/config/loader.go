package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// QuillYAMLConfig represents the complete quill.yaml file structure
type QuillYAMLConfig struct {
	System   *SystemYAMLConfig          `yaml:"system"`
	Agents   map[string]AgentDefinition `yaml:"agents"`
	Defaults *Defaults                  `yaml:"defaults"`
	Queue    *QueueConfig               `yaml:"queue"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	Redis     *RedisConfig     `yaml:"redis"`
	WebSearch *WebSearchConfig `yaml:"web_search"`
	Retention *RetentionConfig `yaml:"retention"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Merge built-in + user-defined components
//  4. Build in-memory registries
//  5. Apply default values
//  6. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"llm_providers", stats.LLMProviders)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	quillConfig, err := loader.loadQuillYAML()
	if err != nil {
		return nil, NewLoadError("quill.yaml", err)
	}

	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	builtin := GetBuiltinConfig()

	agents := mergeAgents(builtin.Agents, quillConfig.Agents)
	providers := mergeLLMProviders(builtin.LLMProviders, llmProviders)

	agentRegistry := NewAgentRegistry(agents)
	providerRegistry := NewLLMProviderRegistry(providers)

	defaults := quillConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	defaults.applyBuiltinDefaults()

	// Resolve queue config: start with defaults, merge user config on top so
	// unset fields keep their defaults.
	queueConfig := DefaultQueueConfig()
	if quillConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, quillConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Queue:               queueConfig,
		Retention:           resolveRetentionConfig(quillConfig.System),
		Server:              resolveServerConfig(quillConfig.System),
		Redis:               resolveRedisConfig(quillConfig.System),
		WebSearch:           resolveWebSearchConfig(quillConfig.System),
		AgentRegistry:       agentRegistry,
		LLMProviderRegistry: providerRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return nil
}

func (l *configLoader) loadQuillYAML() (*QuillYAMLConfig, error) {
	var config QuillYAMLConfig
	config.Agents = make(map[string]AgentDefinition)

	if err := l.loadYAML("quill.yaml", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}
	return config.LLMProviders, nil
}

func resolveServerConfig(sys *SystemYAMLConfig) *ServerConfig {
	cfg := &ServerConfig{ListenAddr: ":8080"}
	if sys != nil && sys.Server != nil && sys.Server.ListenAddr != "" {
		cfg.ListenAddr = sys.Server.ListenAddr
	}
	return cfg
}

func resolveRedisConfig(sys *SystemYAMLConfig) *RedisConfig {
	cfg := &RedisConfig{Addr: "localhost:6379"}
	if sys == nil || sys.Redis == nil {
		return cfg
	}
	r := sys.Redis
	if r.Addr != "" {
		cfg.Addr = r.Addr
	}
	cfg.Password = r.Password
	cfg.DB = r.DB
	return cfg
}

func resolveWebSearchConfig(sys *SystemYAMLConfig) *WebSearchConfig {
	cfg := &WebSearchConfig{
		Provider:   "duckduckgo",
		MaxResults: 8,
		Region:     "us-en",
	}
	if sys == nil || sys.WebSearch == nil {
		return cfg
	}
	w := sys.WebSearch
	if w.Provider != "" {
		cfg.Provider = w.Provider
	}
	if w.APIKeyEnv != "" {
		cfg.APIKeyEnv = w.APIKeyEnv
	}
	if w.MaxResults > 0 {
		cfg.MaxResults = w.MaxResults
	}
	if w.Region != "" {
		cfg.Region = w.Region
	}
	return cfg
}

func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()
	if sys == nil || sys.Retention == nil {
		return cfg
	}
	r := sys.Retention
	if r.JobRetentionDays > 0 {
		cfg.JobRetentionDays = r.JobRetentionDays
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}
	return cfg
}
