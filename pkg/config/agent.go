// Package config provides configuration management for the Quill system,
// including agent definitions, LLM providers, queue tuning, and guardrails.
package config

import (
	"fmt"
	"sync"
)

// ExecutionMode selects how an agent's orchestrator loop runs.
type ExecutionMode string

const (
	ExecutionSingleStep ExecutionMode = "single_step"
	ExecutionIterative  ExecutionMode = "iterative"
)

// ResponseMode shapes the final answer rendering.
type ResponseMode string

const (
	ResponseAnalyst   ResponseMode = "analyst"
	ResponseChat      ResponseMode = "chat"
	ResponseExecutive ResponseMode = "executive"
	ResponseExplainer ResponseMode = "explainer"
)

// MemoryStrategy controls conversation memory handling.
type MemoryStrategy string

const (
	MemorySystemManaged MemoryStrategy = "system_managed"
	MemoryNone          MemoryStrategy = "none"
)

// OutputFormat is the agent's declared output contract.
type OutputFormat string

const (
	OutputText     OutputFormat = "text"
	OutputMarkdown OutputFormat = "markdown"
	OutputJSON     OutputFormat = "json"
)

// AgentTools flags which capabilities the agent may dispatch to.
type AgentTools struct {
	SQLModels    []string `yaml:"sql_models,omitempty"`
	WebSearch    bool     `yaml:"web_search,omitempty"`
	DeepResearch bool     `yaml:"deep_research,omitempty"`
	Visualize    bool     `yaml:"visualize,omitempty"`
}

// Guardrails holds pre-dispatch request screening.
type Guardrails struct {
	ModerationEnabled bool     `yaml:"moderation_enabled,omitempty"`
	Denylist          []string `yaml:"denylist,omitempty"` // regex patterns
	EscalationMessage string   `yaml:"escalation_message,omitempty"`
}

// DataAccessPolicy restricts which connectors an agent may execute against.
// An empty allow-list permits everything not denied.
type DataAccessPolicy struct {
	AllowedConnectors []string `yaml:"allowed_connectors,omitempty"`
	DeniedConnectors  []string `yaml:"denied_connectors,omitempty"`
}

// AgentDefinition is the full per-agent contract.
type AgentDefinition struct {
	Description string `yaml:"description,omitempty"`

	// SystemPrompt is prepended to every LLM call the agent makes.
	SystemPrompt string `yaml:"system_prompt,omitempty"`

	Memory         MemoryStrategy `yaml:"memory,omitempty"`
	MemoryTTLHours int            `yaml:"memory_ttl_hours,omitempty"`

	Tools AgentTools `yaml:"tools,omitempty"`

	ExecutionMode         ExecutionMode `yaml:"execution_mode,omitempty"`
	MaxIterations         *int          `yaml:"max_iterations,omitempty"`
	MaxStepsPerIteration  *int          `yaml:"max_steps_per_iteration,omitempty"`

	ResponseMode ResponseMode `yaml:"response_mode,omitempty"`
	OutputFormat OutputFormat `yaml:"output_format,omitempty"`
	OutputSchema string       `yaml:"output_schema,omitempty"` // JSON schema, only with OutputJSON

	// LLMProvider names an entry in llm-providers.yaml; empty uses the default.
	LLMProvider string `yaml:"llm_provider,omitempty"`

	Guardrails *Guardrails       `yaml:"guardrails,omitempty"`
	DataAccess *DataAccessPolicy `yaml:"data_access,omitempty"`
}

// AgentRegistry stores agent definitions in memory with thread-safe access.
type AgentRegistry struct {
	agents map[string]*AgentDefinition
	mu     sync.RWMutex
}

// NewAgentRegistry creates a new agent registry.
func NewAgentRegistry(agents map[string]*AgentDefinition) *AgentRegistry {
	copied := make(map[string]*AgentDefinition, len(agents))
	for k, v := range agents {
		copied[k] = v
	}
	return &AgentRegistry{agents: copied}
}

// Get retrieves an agent definition by name (thread-safe).
func (r *AgentRegistry) Get(name string) (*AgentDefinition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agent, exists := r.agents[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrAgentNotFound, name)
	}
	return agent, nil
}

// GetAll returns all agent definitions (thread-safe, returns copy).
func (r *AgentRegistry) GetAll() map[string]*AgentDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*AgentDefinition, len(r.agents))
	for k, v := range r.agents {
		result[k] = v
	}
	return result
}

// Has checks if an agent exists in the registry (thread-safe).
func (r *AgentRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.agents[name]
	return exists
}

// Len returns the number of agents in the registry (thread-safe).
func (r *AgentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.agents)
}
