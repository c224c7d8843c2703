package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/adveng/tata-car-advisor/internal/catalog"
)

// Average Indian private-car usage, used for the monthly estimate.
const assumedMonthlyKm = 1500.0

type fuelPriceArgs struct {
	City     string `json:"city"`
	FuelType string `json:"fuel_type"`
}

type fuelPriceResult struct {
	City                string  `json:"city"`
	FuelType            string  `json:"fuelType"`
	PricePerLitre       float64 `json:"pricePerLitre"`
	Currency            string  `json:"currency"`
	Source              string  `json:"source"`
	MonthlyCostEstimate int     `json:"monthlyCostEstimate"`
	AnnualCostEstimate  int     `json:"annualCostEstimate"`
	Assumptions         string  `json:"assumptions"`
}

func (r *Registry) getFuelPrice(_ context.Context, args json.RawMessage) (interface{}, error) {
	in := fuelPriceArgs{FuelType: "Petrol"}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if in.City == "" {
		return nil, fmt.Errorf("city is required")
	}

	fuel, avgMileage := fuelAssumptions(in.FuelType)
	pricePerLitre := catalog.FuelPrice(in.City, fuel)
	monthlyCost := FuelCost(assumedMonthlyKm, avgMileage, pricePerLitre)

	return fuelPriceResult{
		City:                in.City,
		FuelType:            fuel,
		PricePerLitre:       pricePerLitre,
		Currency:            "INR",
		Source:              "reference_data_feb2026",
		MonthlyCostEstimate: int(math.Round(monthlyCost)),
		AnnualCostEstimate:  int(math.Round(monthlyCost * 12)),
		Assumptions:         fmt.Sprintf("%.0f km/month, %.1f kmpl avg", assumedMonthlyKm, avgMileage),
	}, nil
}

// FuelCost returns the cost of covering distanceKm at the given mileage and
// pump price.
func FuelCost(distanceKm, mileageKmpl, pricePerLitre float64) float64 {
	if mileageKmpl <= 0 {
		return 0
	}
	return distanceKm / mileageKmpl * pricePerLitre
}

// fuelAssumptions normalizes the fuel name and pairs it with the segment
// average mileage used for cost estimates.
func fuelAssumptions(fuelType string) (string, float64) {
	switch normalized := normalizeFuelName(fuelType); normalized {
	case "CNG":
		return normalized, 26.0
	case "Diesel":
		return normalized, 18.0
	default:
		return "Petrol", 17.0
	}
}

func normalizeFuelName(fuelType string) string {
	switch {
	case strings.EqualFold(fuelType, "diesel"):
		return "Diesel"
	case strings.EqualFold(fuelType, "cng"):
		return "CNG"
	default:
		return "Petrol"
	}
}
