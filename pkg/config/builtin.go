package config

// BuiltinConfig holds the agents and providers shipped with the binary.
// User YAML overrides built-ins by name.
type BuiltinConfig struct {
	Agents       map[string]*AgentDefinition
	LLMProviders map[string]*LLMProviderConfig
}

// GetBuiltinConfig returns the built-in component definitions.
func GetBuiltinConfig() *BuiltinConfig {
	iterations := 3
	steps := 4
	one := 1

	return &BuiltinConfig{
		Agents: map[string]*AgentDefinition{
			"analyst": {
				Description:          "Answers data questions against registered semantic models",
				Memory:               MemorySystemManaged,
				Tools:                AgentTools{Visualize: true},
				ExecutionMode:        ExecutionIterative,
				MaxIterations:        &iterations,
				MaxStepsPerIteration: &steps,
				ResponseMode:         ResponseAnalyst,
				OutputFormat:         OutputMarkdown,
			},
			"researcher": {
				Description:          "Gathers and synthesizes evidence from web and document sources",
				Memory:               MemorySystemManaged,
				Tools:                AgentTools{WebSearch: true, DeepResearch: true},
				ExecutionMode:        ExecutionIterative,
				MaxIterations:        &iterations,
				MaxStepsPerIteration: &steps,
				ResponseMode:         ResponseExplainer,
				OutputFormat:         OutputMarkdown,
			},
			"executive": {
				Description:          "Single-shot summaries for dashboard panels",
				Memory:               MemoryNone,
				ExecutionMode:        ExecutionSingleStep,
				MaxIterations:        &one,
				MaxStepsPerIteration: &one,
				ResponseMode:         ResponseExecutive,
				OutputFormat:         OutputText,
			},
		},
		LLMProviders: map[string]*LLMProviderConfig{
			"openai-default": {
				Type:           ProviderOpenAI,
				Model:          "gpt-4o",
				EmbeddingModel: "text-embedding-3-small",
				APIKeyEnv:      "OPENAI_API_KEY",
			},
			"anthropic-default": {
				Type:      ProviderAnthropic,
				Model:     "claude-sonnet-4-5",
				APIKeyEnv: "ANTHROPIC_API_KEY",
			},
		},
	}
}
