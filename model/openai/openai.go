// Package openai adapts the OpenAI Chat Completions API to the epitome model
// contract.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/epitome-ai/epitome"
)

// Config tunes the OpenAI-backed model. Model falls back to a small default
// when unset; Temperature and MaxTokens are sent only when non-nil.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature *float64
	MaxTokens   *int
}

// Client implements epitome.Model over the OpenAI Chat Completions API.
type Client struct {
	client      openai.Client
	model       openai.ChatModel
	temperature *float64
	maxTokens   *int
}

// New builds a chat-completions client from the given configuration.
func New(cfg Config) (*Client, error) {
	model := openai.ChatModel(cfg.Model)
	if model == "" {
		model = openai.ChatModelGPT4_1Mini
	}

	var opts []option.RequestOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client:      openai.NewClient(opts...),
		model:       model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}

// Invoke sends the prompt and blocks until the completion arrives.
func (c *Client) Invoke(ctx context.Context, messages []epitome.Message) (epitome.Response, error) {
	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: convert(messages),
	}
	if c.temperature != nil {
		params.Temperature = openai.Float(*c.temperature)
	}
	if c.maxTokens != nil {
		params.MaxCompletionTokens = openai.Int(int64(*c.maxTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	return &response{completion: completion}, nil
}

// InvokeAsync drives Invoke on its own goroutine. The returned channel
// delivers exactly one result and is then closed.
func (c *Client) InvokeAsync(ctx context.Context, messages []epitome.Message) <-chan epitome.Invocation {
	out := make(chan epitome.Invocation, 1)
	go func() {
		defer close(out)
		resp, err := c.Invoke(ctx, messages)
		out <- epitome.Invocation{Response: resp, Err: err}
	}()
	return out
}

// convert maps prompt messages onto the OpenAI message union.
func convert(messages []epitome.Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case epitome.RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}
	return params
}

// response wraps a chat completion.
type response struct {
	completion *openai.ChatCompletion
}

// Text returns the first choice's message content.
func (r *response) Text() (string, error) {
	if len(r.completion.Choices) == 0 {
		return "", fmt.Errorf("chat completion choices are missing")
	}
	return r.completion.Choices[0].Message.Content, nil
}
