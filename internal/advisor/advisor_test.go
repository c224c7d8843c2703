package advisor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adveng/tata-car-advisor/apimodels"
	"github.com/adveng/tata-car-advisor/internal/guardrail"
	"github.com/adveng/tata-car-advisor/internal/llm"
	"github.com/adveng/tata-car-advisor/internal/tools"
	"github.com/adveng/tata-car-advisor/internal/weather"
)

// fakeProvider replays a script of responses and records how often it was
// called. A nil script entry simulates a provider failure.
type fakeProvider struct {
	name   string
	script []*llm.Response
	calls  int
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return f.name + "-model" }

func (f *fakeProvider) Analyze(_ context.Context, _, _ string, _ ...llm.Option) (*llm.Response, error) {
	f.calls++
	if len(f.script) == 0 {
		return nil, errors.New("provider exploded")
	}
	resp := f.script[0]
	f.script = f.script[1:]
	if resp == nil {
		return nil, errors.New("provider exploded")
	}
	return resp, nil
}

func failing(name string) *fakeProvider {
	return &fakeProvider{name: name}
}

func answering(name, answer string) *fakeProvider {
	return &fakeProvider{name: name, script: []*llm.Response{
		{Content: answer, Usage: llm.Usage{TotalTokens: 10}},
	}}
}

func testRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(ts.Close)
	return tools.NewRegistry(weather.NewClient(ts.URL, time.Second))
}

func newTestAdvisor(t *testing.T, providers ...llm.Provider) *Advisor {
	t.Helper()
	guard := guardrail.New([]string{"maruti", "hyundai", "kia", "toyota"})
	return New(guard, testRegistry(t), providers...)
}

func TestGuardrailBlocksBeforeAnyProviderCall(t *testing.T) {
	primary := answering("gemini", "should never be used")
	fallback := answering("groq", "should never be used")
	a := newTestAdvisor(t, primary, fallback)

	resp, err := a.Advise(context.Background(), apimodels.ChatRequest{
		Query: "How does Tata Nexon compare to Maruti Brezza?",
	})
	require.NoError(t, err)

	assert.Equal(t, "guardrail", resp.Provider)
	assert.Equal(t, guardrail.RefusalMessage, resp.Answer)
	assert.Empty(t, resp.ToolLog)
	assert.Zero(t, primary.calls, "no provider call may happen for a blocked query")
	assert.Zero(t, fallback.calls)
}

func TestPrimarySuccess(t *testing.T) {
	primary := answering("gemini", "The Nexon fits you well.")
	fallback := answering("groq", "unused")
	a := newTestAdvisor(t, primary, fallback)

	resp, err := a.Advise(context.Background(), apimodels.ChatRequest{Query: "Which Tata for Pune?"})
	require.NoError(t, err)

	assert.Equal(t, "gemini", resp.Provider)
	assert.Equal(t, "gemini-model", resp.Model)
	assert.False(t, resp.FallbackUsed)
	assert.Equal(t, "The Nexon fits you well.", resp.Answer)
	assert.EqualValues(t, 10, resp.Metadata.TokensUsed)
	assert.NotEmpty(t, resp.Metadata.RequestID)
	assert.Zero(t, fallback.calls)
}

func TestFallbackInvokedExactlyOnce(t *testing.T) {
	primary := failing("gemini")
	fallback := answering("groq", "fallback answer")
	a := newTestAdvisor(t, primary, fallback)

	resp, err := a.Advise(context.Background(), apimodels.ChatRequest{Query: "Which Tata for Delhi?"})
	require.NoError(t, err)

	assert.Equal(t, "groq", resp.Provider)
	assert.True(t, resp.FallbackUsed)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestBothProvidersFail(t *testing.T) {
	primary := failing("gemini")
	fallback := failing("groq")
	a := newTestAdvisor(t, primary, fallback)

	_, err := a.Advise(context.Background(), apimodels.ChatRequest{Query: "Which Tata for Delhi?"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 1, primary.calls, "no retries beyond the single chain pass")
	assert.Equal(t, 1, fallback.calls)
}

func TestForceFallbackSkipsPrimary(t *testing.T) {
	primary := answering("gemini", "unused")
	fallback := answering("groq", "direct fallback answer")
	a := newTestAdvisor(t, primary, fallback)

	resp, err := a.Advise(context.Background(), apimodels.ChatRequest{
		Query:         "Which Tata for Jaipur?",
		ForceFallback: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "groq", resp.Provider)
	assert.Zero(t, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestAgentLoopDispatchesTools(t *testing.T) {
	primary := &fakeProvider{name: "gemini", script: []*llm.Response{
		{FunctionCall: &llm.FunctionResponse{
			Name:      "get_fuel_price",
			Arguments: `{"city": "Mumbai", "fuel_type": "Petrol"}`,
		}, Usage: llm.Usage{TotalTokens: 5}},
		{Content: "Petrol in Mumbai costs about 104/L.", Usage: llm.Usage{TotalTokens: 7}},
	}}
	a := newTestAdvisor(t, primary)

	resp, err := a.Advise(context.Background(), apimodels.ChatRequest{Query: "Petrol price in Mumbai?"})
	require.NoError(t, err)

	require.Len(t, resp.ToolLog, 1)
	assert.Equal(t, "get_fuel_price", resp.ToolLog[0].Tool)
	assert.Equal(t, 1, resp.Metadata.Steps)
	assert.EqualValues(t, 12, resp.Metadata.TokensUsed)
	assert.Equal(t, 2, primary.calls)
}

func TestRepeatedToolCallIsNotReExecuted(t *testing.T) {
	call := &llm.FunctionResponse{
		Name:      "get_fuel_price",
		Arguments: `{"city": "Pune", "fuel_type": "Diesel"}`,
	}
	primary := &fakeProvider{name: "gemini", script: []*llm.Response{
		{FunctionCall: call},
		{FunctionCall: call},
		{Content: "done"},
	}}
	a := newTestAdvisor(t, primary)

	resp, err := a.Advise(context.Background(), apimodels.ChatRequest{Query: "Diesel price in Pune?"})
	require.NoError(t, err)

	require.Len(t, resp.ToolLog, 2)
	assert.Equal(t, resp.ToolLog[0].Tool, resp.ToolLog[1].Tool)
	assert.Equal(t, 2, resp.Metadata.Steps)
}

func TestMaxStepsTriggersSummary(t *testing.T) {
	script := make([]*llm.Response, 0, MaxSteps+1)
	for i := 0; i < MaxSteps; i++ {
		script = append(script, &llm.Response{FunctionCall: &llm.FunctionResponse{
			Name:      "get_city_weather",
			Arguments: `{"city": "Shimla"}`,
		}})
	}
	script = append(script, &llm.Response{Content: "summary answer"})
	primary := &fakeProvider{name: "gemini", script: script}
	a := newTestAdvisor(t, primary)

	resp, err := a.Advise(context.Background(), apimodels.ChatRequest{Query: "endless"})
	require.NoError(t, err)

	assert.Equal(t, "summary answer", resp.Answer)
	assert.Equal(t, MaxSteps, resp.Metadata.Steps)
	assert.Equal(t, MaxSteps+1, primary.calls)
}
