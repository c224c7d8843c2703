package llm

import (
	"context"

	"github.com/openai/openai-go"
)

type Provider interface {
	// Name identifies the provider in responses and logs ("gemini", "groq").
	Name() string

	// Model is the model the provider completes with.
	Model() string

	// Analyze sends one system + user message pair and returns a structured
	// response. Tool definitions are passed per call via options.
	Analyze(ctx context.Context, systemMessage, userMessage string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	MaxTokens   int64
	Temperature float64
	Tools       []openai.ChatCompletionToolParam
}

func WithTools(tools []openai.ChatCompletionToolParam) Option {
	return func(o *Options) { o.Tools = tools }
}

func WithMaxTokens(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxTokens = n
		}
	}
}

func WithTemperature(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.Temperature = t
		}
	}
}

// FunctionResponse represents a tool call requested by the model.
type FunctionResponse struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Response is either final content or a function call, never both.
type Response struct {
	Content      string
	FunctionCall *FunctionResponse
	Usage        Usage
}
