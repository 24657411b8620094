package config

// mergeAgents merges built-in and user-defined agents. A user definition
// replaces the built-in of the same name wholesale.
func mergeAgents(builtin map[string]*AgentDefinition, user map[string]AgentDefinition) map[string]*AgentDefinition {
	merged := make(map[string]*AgentDefinition, len(builtin)+len(user))
	for name, def := range builtin {
		merged[name] = def
	}
	for name := range user {
		def := user[name]
		merged[name] = &def
	}
	return merged
}

// mergeLLMProviders merges built-in and user-defined providers; user wins.
func mergeLLMProviders(builtin map[string]*LLMProviderConfig, user map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	merged := make(map[string]*LLMProviderConfig, len(builtin)+len(user))
	for name, p := range builtin {
		merged[name] = p
	}
	for name := range user {
		p := user[name]
		merged[name] = &p
	}
	return merged
}
