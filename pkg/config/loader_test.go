package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T, quillYAML, providersYAML string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quill.yaml"), []byte(quillYAML), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(providersYAML), 0o644))
	return dir
}

const minimalProvidersYAML = `
llm_providers:
  test-openai:
    type: openai
    model: gpt-4o
    api_key_env: OPENAI_API_KEY
`

func TestInitializeMinimalConfig(t *testing.T) {
	dir := writeConfigDir(t, `
defaults:
  llm_provider: test-openai
`, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	// Built-in agents are available alongside the defaults.
	assert.True(t, cfg.AgentRegistry.Has("analyst"))
	assert.True(t, cfg.AgentRegistry.Has("researcher"))

	assert.Equal(t, "test-openai", cfg.Defaults.LLMProvider)
	assert.Equal(t, 3, cfg.Defaults.MaxIterations)
	assert.Equal(t, 1000, cfg.Defaults.AnalystRowLimit)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
}

func TestInitializeMergesQueueOverDefaults(t *testing.T) {
	dir := writeConfigDir(t, `
defaults:
  llm_provider: test-openai
queue:
  worker_count: 2
  lease_duration: 5m
`, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Minute, cfg.Queue.LeaseDuration)
	// Unset values keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Queue.LeaseRenewalInterval)
	assert.Equal(t, 3, cfg.Queue.DefaultMaxAttempts)
}

func TestInitializeUserAgentOverridesBuiltin(t *testing.T) {
	dir := writeConfigDir(t, `
defaults:
  llm_provider: test-openai
agents:
  analyst:
    description: "custom analyst"
    execution_mode: single_step
    response_mode: chat
`, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	agent, err := cfg.GetAgent("analyst")
	require.NoError(t, err)
	assert.Equal(t, "custom analyst", agent.Description)
	assert.Equal(t, ExecutionSingleStep, agent.ExecutionMode)
}

func TestInitializeRejectsUnknownDefaultProvider(t *testing.T) {
	dir := writeConfigDir(t, `
defaults:
  llm_provider: no-such-provider
`, minimalProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestInitializeRejectsBadGuardrailRegex(t *testing.T) {
	dir := writeConfigDir(t, `
defaults:
  llm_provider: test-openai
agents:
  locked-down:
    guardrails:
      denylist:
        - "([unclosed"
`, minimalProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestInitializeMissingConfigFile(t *testing.T) {
	_, err := Initialize(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestExpandEnvTemplateSyntax(t *testing.T) {
	t.Setenv("QUILL_TEST_HOST", "redis.internal")

	out := ExpandEnv([]byte("addr: {{.QUILL_TEST_HOST}}:6379"))
	assert.Equal(t, "addr: redis.internal:6379", string(out))

	// Literal $ survives untouched.
	out = ExpandEnv([]byte(`denylist: ["^drop table.*$"]`))
	assert.Equal(t, `denylist: ["^drop table.*$"]`, string(out))

	// Missing variables expand to empty.
	out = ExpandEnv([]byte("key: {{.QUILL_TEST_MISSING_VAR}}"))
	assert.Equal(t, "key: ", string(out))
}

func TestProviderForAgentFallsBackToDefault(t *testing.T) {
	dir := writeConfigDir(t, `
defaults:
  llm_provider: test-openai
`, minimalProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	agent, err := cfg.GetAgent("analyst")
	require.NoError(t, err)
	provider, err := cfg.ProviderForAgent(agent)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", provider.Model)
}
