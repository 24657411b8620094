package config

import (
	"fmt"
	"regexp"
)

// Validator checks a loaded Config for internal consistency.
type Validator struct {
	cfg *Config
}

// NewValidator creates a validator for the config.
func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateAll validates every component. The first error aborts.
func (v *Validator) ValidateAll() error {
	if err := v.validateQueue(); err != nil {
		return err
	}
	if err := v.validateProviders(); err != nil {
		return err
	}
	if err := v.validateAgents(); err != nil {
		return err
	}
	return nil
}

func (v *Validator) validateQueue() error {
	q := v.cfg.Queue
	if q.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count", ErrInvalidValue)
	}
	if q.LeaseDuration <= 0 {
		return NewValidationError("queue", "queue", "lease_duration", ErrInvalidValue)
	}
	if q.LeaseRenewalInterval <= 0 || q.LeaseRenewalInterval >= q.LeaseDuration {
		return NewValidationError("queue", "queue", "lease_renewal_interval",
			fmt.Errorf("%w: must be positive and below lease_duration", ErrInvalidValue))
	}
	if q.DefaultMaxAttempts < 1 {
		return NewValidationError("queue", "queue", "default_max_attempts", ErrInvalidValue)
	}
	return nil
}

func (v *Validator) validateProviders() error {
	for _, name := range v.cfg.LLMProviderRegistry.Names() {
		p, _ := v.cfg.LLMProviderRegistry.Get(name)
		switch p.Type {
		case ProviderOpenAI, ProviderAnthropic:
		default:
			return NewValidationError("llm_provider", name, "type",
				fmt.Errorf("%w: %q", ErrInvalidValue, p.Type))
		}
		if p.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if p.APIKeyEnv == "" {
			return NewValidationError("llm_provider", name, "api_key_env", ErrMissingRequiredField)
		}
	}

	// The system default must exist.
	if _, err := v.cfg.LLMProviderRegistry.Get(v.cfg.Defaults.LLMProvider); err != nil {
		return NewValidationError("defaults", "defaults", "llm_provider",
			fmt.Errorf("%w: %v", ErrInvalidReference, err))
	}
	return nil
}

func (v *Validator) validateAgents() error {
	for name, agent := range v.cfg.AgentRegistry.GetAll() {
		switch agent.ExecutionMode {
		case "", ExecutionSingleStep, ExecutionIterative:
		default:
			return NewValidationError("agent", name, "execution_mode",
				fmt.Errorf("%w: %q", ErrInvalidValue, agent.ExecutionMode))
		}
		switch agent.ResponseMode {
		case "", ResponseAnalyst, ResponseChat, ResponseExecutive, ResponseExplainer:
		default:
			return NewValidationError("agent", name, "response_mode",
				fmt.Errorf("%w: %q", ErrInvalidValue, agent.ResponseMode))
		}
		switch agent.OutputFormat {
		case "", OutputText, OutputMarkdown, OutputJSON:
		default:
			return NewValidationError("agent", name, "output_format",
				fmt.Errorf("%w: %q", ErrInvalidValue, agent.OutputFormat))
		}
		if agent.OutputSchema != "" && agent.OutputFormat != OutputJSON {
			return NewValidationError("agent", name, "output_schema",
				fmt.Errorf("%w: schema requires output_format: json", ErrInvalidValue))
		}
		if agent.MaxIterations != nil && *agent.MaxIterations < 1 {
			return NewValidationError("agent", name, "max_iterations", ErrInvalidValue)
		}
		if agent.MaxStepsPerIteration != nil && *agent.MaxStepsPerIteration < 1 {
			return NewValidationError("agent", name, "max_steps_per_iteration", ErrInvalidValue)
		}
		if agent.LLMProvider != "" {
			if _, err := v.cfg.LLMProviderRegistry.Get(agent.LLMProvider); err != nil {
				return NewValidationError("agent", name, "llm_provider",
					fmt.Errorf("%w: %v", ErrInvalidReference, err))
			}
		}
		if agent.Guardrails != nil {
			for _, pattern := range agent.Guardrails.Denylist {
				if _, err := regexp.Compile(pattern); err != nil {
					return NewValidationError("agent", name, "guardrails.denylist",
						fmt.Errorf("%w: %q does not compile: %v", ErrInvalidValue, pattern, err))
				}
			}
		}
	}
	return nil
}
