package llm

import (
	"context"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/pkg/config"
)

type mockChatService struct {
	response *openai.ChatCompletion
	err      error
	captured openai.ChatCompletionNewParams
}

func (m *mockChatService) New(_ context.Context, body openai.ChatCompletionNewParams, _ ...option.RequestOption) (*openai.ChatCompletion, error) {
	m.captured = body
	return m.response, m.err
}

type mockEmbeddingService struct {
	response *openai.CreateEmbeddingResponse
	err      error
	captured openai.EmbeddingNewParams
}

func (m *mockEmbeddingService) New(_ context.Context, body openai.EmbeddingNewParams, _ ...option.RequestOption) (*openai.CreateEmbeddingResponse, error) {
	m.captured = body
	return m.response, m.err
}

func TestOpenAIComplete(t *testing.T) {
	mock := &mockChatService{
		response: &openai.ChatCompletion{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: "SELECT 1"}},
			},
		},
	}
	client := &OpenAIClient{chat: mock, model: "gpt-4o", maxTokens: 2048}

	out, err := client.Complete(context.Background(), Request{
		System:   "You write SQL.",
		Messages: []Message{{Role: RoleUser, Content: "count orders"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", out)

	assert.Equal(t, openai.ChatModel("gpt-4o"), mock.captured.Model)
	require.Len(t, mock.captured.Messages, 2) // system + user
	assert.EqualValues(t, 2048, mock.captured.MaxTokens.Value)
}

func TestOpenAICompleteEmptyChoices(t *testing.T) {
	mock := &mockChatService{response: &openai.ChatCompletion{}}
	client := &OpenAIClient{chat: mock, model: "gpt-4o"}

	_, err := client.Complete(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAIEmbed(t *testing.T) {
	mock := &mockEmbeddingService{
		response: &openai.CreateEmbeddingResponse{
			Data: []openai.Embedding{
				{Embedding: []float64{0.1, 0.2}},
				{Embedding: []float64{0.3, 0.4}},
			},
		},
	}
	client := &OpenAIClient{embeddings: mock, embeddingModel: "text-embedding-3-small"}

	vecs, err := client.Embed(context.Background(), []string{"acme", "globex"})
	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.InDelta(t, 0.1, vecs[0][0], 1e-6)
	assert.InDelta(t, 0.4, vecs[1][1], 1e-6)
}

func TestOpenAIEmbedCountMismatch(t *testing.T) {
	mock := &mockEmbeddingService{
		response: &openai.CreateEmbeddingResponse{
			Data: []openai.Embedding{{Embedding: []float64{0.1}}},
		},
	}
	client := &OpenAIClient{embeddings: mock, embeddingModel: "text-embedding-3-small"}

	_, err := client.Embed(context.Background(), []string{"a", "b"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAIEmbedNoModel(t *testing.T) {
	client := &OpenAIClient{}
	_, err := client.Embed(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, ErrNoEmbeddings)

	// Empty input short-circuits before the model check.
	vecs, err := client.Embed(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, vecs)
}

type mockMessagesService struct {
	response *sdk.Message
	err      error
	captured sdk.MessageNewParams
}

func (m *mockMessagesService) New(_ context.Context, body sdk.MessageNewParams, _ ...anthropicopt.RequestOption) (*sdk.Message, error) {
	m.captured = body
	return m.response, m.err
}

func TestAnthropicComplete(t *testing.T) {
	mock := &mockMessagesService{
		response: &sdk.Message{
			Content: []sdk.ContentBlockUnion{
				{Type: "text", Text: "SELECT "},
				{Type: "text", Text: "1"},
			},
		},
	}
	client := &AnthropicClient{messages: mock, model: "claude-sonnet-4-5"}

	out, err := client.Complete(context.Background(), Request{
		System: "You write SQL.",
		Messages: []Message{
			{Role: RoleUser, Content: "count orders"},
			{Role: RoleSystem, Content: "limit 100 rows"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", out)

	// System turns fold into the system prompt, not the message list.
	assert.Len(t, mock.captured.System, 2)
	assert.Len(t, mock.captured.Messages, 1)
	assert.EqualValues(t, defaultAnthropicMaxTokens, mock.captured.MaxTokens)
}

func TestAnthropicCompleteEmpty(t *testing.T) {
	mock := &mockMessagesService{response: &sdk.Message{}}
	client := &AnthropicClient{messages: mock, model: "claude-sonnet-4-5"}

	_, err := client.Complete(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
	})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestNewCompleterMissingKey(t *testing.T) {
	t.Setenv("QUILL_TEST_NO_KEY", "")
	_, err := NewCompleter(&config.LLMProviderConfig{
		Type:      config.ProviderOpenAI,
		Model:     "gpt-4o",
		APIKeyEnv: "QUILL_TEST_NO_KEY",
	})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewEmbedderRequiresOpenAI(t *testing.T) {
	_, err := NewEmbedder(&config.LLMProviderConfig{
		Type:      config.ProviderAnthropic,
		Model:     "claude-sonnet-4-5",
		APIKeyEnv: "ANTHROPIC_API_KEY",
	})
	assert.ErrorIs(t, err, ErrNoEmbeddings)
}
