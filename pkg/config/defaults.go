package config

// Defaults holds system-wide fallbacks applied when an agent definition or
// request leaves a knob unset.
type Defaults struct {
	// LLMProvider is the provider used when an agent names none.
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// EmbeddingProvider is used for entity-vector augmentation.
	EmbeddingProvider string `yaml:"embedding_provider,omitempty"`

	MaxIterations        int `yaml:"max_iterations,omitempty"`
	MaxStepsPerIteration int `yaml:"max_steps_per_iteration,omitempty"`

	// AnalystRowLimit caps result rows when a request sets no limit.
	AnalystRowLimit int `yaml:"analyst_row_limit,omitempty"`
}

// applyBuiltinDefaults fills zero values.
func (d *Defaults) applyBuiltinDefaults() {
	if d.LLMProvider == "" {
		d.LLMProvider = "openai-default"
	}
	if d.EmbeddingProvider == "" {
		d.EmbeddingProvider = d.LLMProvider
	}
	if d.MaxIterations <= 0 {
		d.MaxIterations = 3
	}
	if d.MaxStepsPerIteration <= 0 {
		d.MaxStepsPerIteration = 4
	}
	if d.AnalystRowLimit <= 0 {
		d.AnalystRowLimit = 1000
	}
}
