// Package tools exposes the four deterministic functions the advisor's LLM
// can call, as openai tool definitions plus a dispatcher keyed by name.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"

	"github.com/adveng/tata-car-advisor/internal/weather"
)

type ToolFunc func(ctx context.Context, args json.RawMessage) (interface{}, error)

type Definition struct {
	Spec     openai.ChatCompletionToolParam
	Function ToolFunc
}

// Registry holds the tool set. Tools are registered once at construction;
// the registry is read-only afterwards and safe for concurrent dispatch.
type Registry struct {
	weather     *weather.Client
	definitions []Definition
	byName      map[string]ToolFunc
}

func NewRegistry(weatherClient *weather.Client) *Registry {
	r := &Registry{
		weather: weatherClient,
		byName:  map[string]ToolFunc{},
	}
	r.register(cityWeatherSpec, r.getCityWeather)
	r.register(tataCarsSpec, r.getTataCars)
	r.register(fuelPriceSpec, r.getFuelPrice)
	r.register(calculateTCOSpec, r.calculateTCO)
	return r
}

func (r *Registry) register(spec openai.ChatCompletionToolParam, fn ToolFunc) {
	r.definitions = append(r.definitions, Definition{Spec: spec, Function: fn})
	r.byName[spec.Function.Value.Name.Value] = fn
}

// Definitions returns the tool specs to advertise to a provider.
func (r *Registry) Definitions() []openai.ChatCompletionToolParam {
	specs := make([]openai.ChatCompletionToolParam, len(r.definitions))
	for i, d := range r.definitions {
		specs[i] = d.Spec
	}
	return specs
}

// Names lists the registered tool names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.definitions))
	for _, d := range r.definitions {
		names = append(names, d.Spec.Function.Value.Name.Value)
	}
	return names
}

// Dispatch executes a tool by name and returns the result as a JSON string.
// Unknown tools and bad arguments come back as error payloads rather than Go
// errors so the agent loop can feed them to the model and carry on.
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) string {
	slog.Info("dispatching tool", "tool", name, "arguments", string(args))

	fn, ok := r.byName[name]
	if !ok {
		return errorJSON(fmt.Sprintf("unknown tool %q, available: %v", name, r.Names()))
	}

	result, err := fn(ctx, args)
	if err != nil {
		return errorJSON(fmt.Sprintf("%s: %v", name, err))
	}

	out, err := json.Marshal(result)
	if err != nil {
		slog.Error("failed to marshal tool result", "tool", name, "error", err)
		return errorJSON(fmt.Sprintf("%s: failed to encode result", name))
	}
	return string(out)
}

func errorJSON(msg string) string {
	out, _ := json.Marshal(map[string]string{"error": msg})
	return string(out)
}
