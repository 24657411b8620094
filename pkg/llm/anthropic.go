package llm

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/quillhq/quill/pkg/config"
)

// defaultAnthropicMaxTokens caps completions when neither the request nor
// the provider config sets one; the Messages API requires an explicit value.
const defaultAnthropicMaxTokens = 4096

// messagesService captures the subset of the Anthropic SDK used by the
// adapter. Satisfied by *sdk.MessageService; tests pass a mock.
type messagesService interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicClient implements Completer on the Claude Messages API.
type AnthropicClient struct {
	messages    messagesService
	model       string
	temperature *float64
	maxTokens   int
}

func newAnthropicClient(cfg *config.LLMProviderConfig) (*AnthropicClient, error) {
	key, err := apiKey(cfg)
	if err != nil {
		return nil, err
	}
	opts := []option.RequestOption{option.WithAPIKey(key)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := sdk.NewClient(opts...)
	return &AnthropicClient{
		messages:    &client.Messages,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Complete renders a completion through the Messages API. System-role turns
// in the message list are folded into the system prompt.
func (c *AnthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	var system []sdk.TextBlockParam
	if req.System != "" {
		system = append(system, sdk.TextBlockParam{Text: req.System})
	}

	messages := make([]sdk.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, sdk.TextBlockParam{Text: m.Content})
		case RoleAssistant:
			messages = append(messages, sdk.NewAssistantMessage(sdk.NewTextBlock(m.Content)))
		default:
			messages = append(messages, sdk.NewUserMessage(sdk.NewTextBlock(m.Content)))
		}
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}
	if maxTokens <= 0 {
		maxTokens = defaultAnthropicMaxTokens
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: int64(maxTokens),
		System:    system,
		Messages:  messages,
	}
	temp := req.Temperature
	if temp == nil {
		temp = c.temperature
	}
	if temp != nil {
		params.Temperature = sdk.Float(*temp)
	}

	msg, err := c.messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("anthropic completion: %w", err)
	}
	if msg == nil {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}
