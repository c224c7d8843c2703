package apimodels

import "github.com/adveng/tata-car-advisor/internal/catalog"

type ChatResponse struct {
	// The assistant's answer text
	Answer string `json:"answer"`

	// Provider that produced the answer ("gemini", "groq", "guardrail")
	Provider string `json:"provider"`

	// Model used for the completion, empty for guardrail replies
	Model string `json:"model,omitempty"`

	// FallbackUsed is true when the primary provider failed over
	FallbackUsed bool `json:"fallbackUsed"`

	// Tool invocations consulted while answering
	ToolLog []ToolCall `json:"toolLog,omitempty"`

	// Metadata about the run
	Metadata ChatMetadata `json:"metadata"`
}

type ToolCall struct {
	Step      int    `json:"step"`
	Tool      string `json:"tool"`
	Arguments string `json:"arguments"`
}

type ChatMetadata struct {
	// RequestID correlates the response with server logs
	RequestID string `json:"requestId"`

	// Time taken for the full run
	Duration string `json:"duration"`

	// Tokens used across provider calls
	TokensUsed int64 `json:"tokensUsed"`

	// Agent steps taken
	Steps int `json:"steps"`
}

type FilterResponse struct {
	TotalMatches int               `json:"totalMatches"`
	Cars         []catalog.CarSpec `json:"cars"`
}

type StatusResponse struct {
	Status    string   `json:"status"`
	Providers []string `json:"providers"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
