package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/adveng/tata-car-advisor/internal/config"
)

// Client speaks to any OpenAI-compatible completion endpoint. Both Gemini
// and Groq expose one, so a single implementation covers the whole chain.
type Client struct {
	client *openai.Client
	cfg    config.ProviderConfig
}

var ErrEmptyCompletion = fmt.Errorf("provider returned an empty completion")

func NewClient(cfg config.ProviderConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key not configured", cfg.Name)
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.Endpoint),
		option.WithRequestTimeout(cfg.Timeout),
	)

	return &Client{
		client: client,
		cfg:    cfg,
	}, nil
}

func (c *Client) Name() string {
	return c.cfg.Name
}

func (c *Client) Model() string {
	return c.cfg.Model
}

func (c *Client) Analyze(ctx context.Context, systemMessage, userMessage string, opts ...Option) (*Response, error) {
	options := &Options{
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}
	for _, opt := range opts {
		opt(options)
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.F(c.cfg.Model),
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemMessage),
			openai.UserMessage(userMessage),
		}),
		Temperature: openai.F(options.Temperature),
		MaxTokens:   openai.F(options.MaxTokens),
	}
	if len(options.Tools) > 0 {
		params.Tools = openai.F(options.Tools)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("provider %s: %w", c.cfg.Name, err)
	}

	response := &Response{
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("provider %s: %w", c.cfg.Name, ErrEmptyCompletion)
	}

	msg := resp.Choices[0].Message
	if len(msg.ToolCalls) > 0 {
		response.FunctionCall = &FunctionResponse{
			Name:      msg.ToolCalls[0].Function.Name,
			Arguments: msg.ToolCalls[0].Function.Arguments,
		}
	} else if msg.Content != "" {
		response.Content = msg.Content
	} else {
		// no content and no tool call is a malformed completion
		return nil, fmt.Errorf("provider %s: %w", c.cfg.Name, ErrEmptyCompletion)
	}

	return response, nil
}
