package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adveng/tata-car-advisor/internal/catalog"
)

type tataCarsArgs struct {
	BudgetMinLakhs float64 `json:"budget_min_lakhs"`
	BudgetMaxLakhs float64 `json:"budget_max_lakhs"`
	FuelPreference string  `json:"fuel_preference"`
	MinSeats       int     `json:"min_seats"`
}

type tataCarsResult struct {
	TotalMatches   int               `json:"totalMatches"`
	SearchCriteria map[string]string `json:"searchCriteria"`
	MatchingCars   []catalog.CarSpec `json:"matchingCars"`
}

func (r *Registry) getTataCars(_ context.Context, args json.RawMessage) (interface{}, error) {
	in := tataCarsArgs{FuelPreference: "any", MinSeats: 4}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if in.BudgetMaxLakhs <= 0 {
		in.BudgetMaxLakhs = 100
	}

	matches := catalog.FilterCars(in.BudgetMinLakhs, in.BudgetMaxLakhs, in.FuelPreference, in.MinSeats)

	return tataCarsResult{
		TotalMatches: len(matches),
		SearchCriteria: map[string]string{
			"budget":   fmt.Sprintf("%.1f-%.1f lakhs", in.BudgetMinLakhs, in.BudgetMaxLakhs),
			"fuel":     in.FuelPreference,
			"minSeats": fmt.Sprintf("%d", in.MinSeats),
		},
		MatchingCars: matches,
	}, nil
}
