package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

type cityWeatherArgs struct {
	City string `json:"city"`
}

func (r *Registry) getCityWeather(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var in cityWeatherArgs
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if in.City == "" {
		return nil, fmt.Errorf("city is required")
	}

	report, ok := r.weather.Lookup(ctx, in.City)
	if !ok {
		return map[string]string{
			"error": fmt.Sprintf("no weather or climate data for city %q", in.City),
		}, nil
	}
	return report, nil
}
