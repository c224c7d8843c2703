// Package advisor runs the per-request agent loop: guardrail first, then a
// bounded tool-calling conversation against an ordered chain of completion
// providers, falling back to the next provider when one fails.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adveng/tata-car-advisor/apimodels"
	"github.com/adveng/tata-car-advisor/internal/guardrail"
	"github.com/adveng/tata-car-advisor/internal/llm"
	"github.com/adveng/tata-car-advisor/internal/tools"
)

const (
	MaxSteps     = 8
	maxAnswerLen = 5000
)

// ErrUnavailable is returned when every provider in the chain has failed.
var ErrUnavailable = errors.New("assistant temporarily unavailable")

const systemPrompt = `You are the Tata Car Buying Advisor — an expert AI helping
Indian customers choose the perfect Tata Motors car.

STRICT SCOPE: you ONLY advise on Tata Motors vehicles.

You have access to tools for city weather, the Tata car catalog, fuel prices,
and total cost of ownership. Call tools to gather facts before answering;
do not guess numbers the tools can provide. Do not repeat a tool call with
the same arguments — results do not change within a conversation.

When you have enough information, synthesize a warm, clear recommendation.`

type Advisor struct {
	guard     *guardrail.Guardrail
	registry  *tools.Registry
	providers []llm.Provider
}

// New builds an advisor over an ordered provider chain. The first provider is
// primary; each later one is tried only after the previous fails.
func New(guard *guardrail.Guardrail, registry *tools.Registry, providers ...llm.Provider) *Advisor {
	return &Advisor{
		guard:     guard,
		registry:  registry,
		providers: providers,
	}
}

type stepData struct {
	StepNumber int
	Tool       string
	Arguments  json.RawMessage
	Result     string
}

type agentState struct {
	Steps    int
	Gathered []stepData
	Query    string
	Usage    int64
}

// Advise answers one buyer query. The guardrail runs before any tool or
// provider work; a block is a normal answer, not an error.
func (a *Advisor) Advise(ctx context.Context, req apimodels.ChatRequest) (*apimodels.ChatResponse, error) {
	requestID := uuid.NewString()
	start := time.Now()
	slog.Info("starting advisory run", "requestId", requestID, "query", req.Query)

	if res := a.guard.Check(req.Query); res.Blocked {
		slog.Info("query blocked by guardrail", "requestId", requestID, "brand", res.Brand)
		return &apimodels.ChatResponse{
			Answer:   res.Message,
			Provider: "guardrail",
			Metadata: apimodels.ChatMetadata{
				RequestID: requestID,
				Duration:  time.Since(start).String(),
			},
		}, nil
	}

	chain := a.providers
	if req.ForceFallback && len(chain) > 1 {
		chain = chain[1:]
	}

	var lastErr error
	for i, provider := range chain {
		resp, err := a.runAgent(ctx, provider, req, requestID, start)
		if err == nil {
			resp.FallbackUsed = i > 0
			return resp, nil
		}
		lastErr = err
		slog.Warn("provider failed", "requestId", requestID, "provider", provider.Name(), "error", err)
	}

	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

// runAgent drives the bounded tool-calling loop against one provider. Any
// provider error aborts the run so the caller can fall back.
func (a *Advisor) runAgent(ctx context.Context, provider llm.Provider, req apimodels.ChatRequest, requestID string, start time.Time) (*apimodels.ChatResponse, error) {
	state := &agentState{Query: req.Query}

	opts := []llm.Option{
		llm.WithTools(a.registry.Definitions()),
		llm.WithMaxTokens(req.Options.MaxTokens),
		llm.WithTemperature(req.Options.Temperature),
	}

	for state.Steps < MaxSteps {
		systemContent := fmt.Sprintf("%s\n\nCurrent step: %d/%d\nPrevious findings:\n%s\n\n%s",
			systemPrompt, state.Steps+1, MaxSteps, summarizeFindings(state.Gathered), historyReminder(state.Gathered))

		resp, err := provider.Analyze(ctx, systemContent, state.Query, opts...)
		if err != nil {
			return nil, err
		}
		state.Usage += resp.Usage.TotalTokens

		if resp.FunctionCall == nil {
			return a.finalResponse(provider, state, requestID, start, resp.Content), nil
		}

		a.handleToolCall(ctx, state, resp.FunctionCall)
	}

	// out of steps, ask for a summary without tools
	return a.summarize(ctx, provider, req, state, requestID, start)
}

func (a *Advisor) handleToolCall(ctx context.Context, state *agentState, call *llm.FunctionResponse) {
	args := json.RawMessage(call.Arguments)

	// reuse previous results when the model repeats itself
	for _, sd := range state.Gathered {
		if sd.Tool == call.Name && jsonEqual(sd.Arguments, args) {
			slog.Debug("repeated tool call, reusing result", "tool", call.Name)
			state.Gathered = append(state.Gathered, stepData{
				StepNumber: state.Steps + 1,
				Tool:       call.Name,
				Arguments:  args,
				Result:     sd.Result,
			})
			state.Steps++
			return
		}
	}

	result := a.registry.Dispatch(ctx, call.Name, args)
	state.Gathered = append(state.Gathered, stepData{
		StepNumber: state.Steps + 1,
		Tool:       call.Name,
		Arguments:  args,
		Result:     truncateString(result, maxAnswerLen),
	})
	state.Steps++
}

func (a *Advisor) summarize(ctx context.Context, provider llm.Provider, req apimodels.ChatRequest, state *agentState, requestID string, start time.Time) (*apimodels.ChatResponse, error) {
	systemContent := fmt.Sprintf(`You have reached the maximum steps (%d). Provide a final recommendation now.
Original query: %s

Previous findings:
%s

Give a truthful, concise answer reflecting all the data gathered.`,
		MaxSteps, req.Query, summarizeFindings(state.Gathered))

	resp, err := provider.Analyze(ctx, systemContent, "",
		llm.WithMaxTokens(req.Options.MaxTokens),
		llm.WithTemperature(req.Options.Temperature))
	if err != nil {
		return nil, err
	}
	state.Usage += resp.Usage.TotalTokens

	return a.finalResponse(provider, state, requestID, start, resp.Content), nil
}

func (a *Advisor) finalResponse(provider llm.Provider, state *agentState, requestID string, start time.Time, answer string) *apimodels.ChatResponse {
	toolLog := make([]apimodels.ToolCall, len(state.Gathered))
	for i, sd := range state.Gathered {
		toolLog[i] = apimodels.ToolCall{
			Step:      sd.StepNumber,
			Tool:      sd.Tool,
			Arguments: string(sd.Arguments),
		}
	}

	return &apimodels.ChatResponse{
		Answer:   truncateString(answer, maxAnswerLen),
		Provider: provider.Name(),
		Model:    provider.Model(),
		ToolLog:  toolLog,
		Metadata: apimodels.ChatMetadata{
			RequestID:  requestID,
			Duration:   time.Since(start).String(),
			TokensUsed: state.Usage,
			Steps:      state.Steps,
		},
	}
}

func summarizeFindings(data []stepData) string {
	if len(data) == 0 {
		return "No previous findings."
	}
	summary := ""
	for _, sd := range data {
		summary += fmt.Sprintf("Step %d:\n  Tool: %s\n  Arguments: %s\n  Result: %s\n\n",
			sd.StepNumber, sd.Tool, string(sd.Arguments), sd.Result)
	}
	return summary
}

func historyReminder(data []stepData) string {
	if len(data) == 0 {
		return "No tool calls have been made yet."
	}
	reminder := "Previously called tools (do not repeat these exact calls):\n"
	seen := make(map[string]bool)
	for _, sd := range data {
		key := sd.Tool + string(sd.Arguments)
		if !seen[key] {
			reminder += fmt.Sprintf("- %s %s\n", sd.Tool, string(sd.Arguments))
			seen[key] = true
		}
	}
	return reminder
}

func truncateString(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "\n[truncated]"
	}
	return s
}

func jsonEqual(a, b json.RawMessage) bool {
	var ja, jb interface{}
	_ = json.Unmarshal(a, &ja)
	_ = json.Unmarshal(b, &jb)
	return fmt.Sprintf("%v", ja) == fmt.Sprintf("%v", jb)
}
