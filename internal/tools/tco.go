package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/adveng/tata-car-advisor/internal/catalog"
)

// Loan and running-cost assumptions behind the TCO estimate.
const (
	downPaymentShare = 0.20
	loanAPR          = 0.085
	loanMonths       = 7 * 12
	insuranceShare   = 0.03    // of ex-showroom price, per year
	serviceCostInr   = 10000.0 // per 10,000 km
	serviceKm        = 10000.0
	evKwhPer100Km    = 15.0
	evInrPerKwh      = 7.0
	defaultMileage   = 18.0
)

type tcoArgs struct {
	CarName        string  `json:"car_name"`
	City           string  `json:"city"`
	DailyKm        float64 `json:"daily_km"`
	OwnershipYears int     `json:"ownership_years"`
	FuelType       string  `json:"fuel_type"`
}

type TCOResult struct {
	Car               string       `json:"car"`
	Variant           string       `json:"variant"`
	ExShowroomLakhs   float64      `json:"exShowroomLakhs"`
	DownPayment       int          `json:"downPayment"`
	MonthlyBreakdown  TCOBreakdown `json:"monthlyBreakdown"`
	AnnualTotal       int          `json:"annualTotal"`
	OwnershipYears    int          `json:"ownershipYears"`
	TotalCost         int          `json:"totalCost"`
	ResaleAfter5Lakhs float64      `json:"estimatedResale5yrLakhs"`
	FuelNote          string       `json:"fuelNote"`
	DailyKmAssumption float64      `json:"dailyKmAssumption"`
}

type TCOBreakdown struct {
	EMI          int `json:"emi"`
	FuelCost     int `json:"fuelCost"`
	Insurance    int `json:"insurance"`
	Maintenance  int `json:"maintenance"`
	TotalMonthly int `json:"totalMonthly"`
}

func (r *Registry) calculateTCO(_ context.Context, args json.RawMessage) (interface{}, error) {
	in := tcoArgs{OwnershipYears: 5, FuelType: "Petrol"}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if in.CarName == "" || in.City == "" {
		return nil, fmt.Errorf("car_name and city are required")
	}
	if in.DailyKm < 0 || in.OwnershipYears < 1 {
		return nil, fmt.Errorf("daily_km must be >= 0 and ownership_years >= 1")
	}

	spec, err := catalog.Car(in.CarName)
	if err != nil {
		if errors.Is(err, catalog.ErrCarNotFound) {
			return map[string]string{"error": err.Error()}, nil
		}
		return nil, err
	}

	result := EstimateTCO(spec, in.City, in.DailyKm, in.OwnershipYears, in.FuelType)
	return result, nil
}

// EstimateTCO projects the full cost of owning a car: EMI on an 80% loan,
// fuel, insurance, and scheduled maintenance, plus the down payment. The
// result is monotonically non-decreasing in ownership years and daily km.
func EstimateTCO(spec catalog.CarSpec, city string, dailyKm float64, ownershipYears int, fuelType string) TCOResult {
	priceInr := spec.PriceMinLakhs * 100000 // base variant

	downPayment := priceInr * downPaymentShare
	loanAmount := priceInr * (1 - downPaymentShare)
	monthlyRate := loanAPR / 12
	factor := math.Pow(1+monthlyRate, loanMonths)
	emi := loanAmount * monthlyRate * factor / (factor - 1)

	monthlyKm := dailyKm * 30
	var monthlyFuel float64
	var fuelNote string
	if strings.EqualFold(fuelType, "ev") {
		monthlyFuel = monthlyKm / 100 * evKwhPer100Km * evInrPerKwh
		fuelNote = fmt.Sprintf("EV: ₹%.0f/kWh home charging, %.0f kWh/100 km", evInrPerKwh, evKwhPer100Km)
	} else {
		pricePerLitre := catalog.FuelPrice(city, fuelType)
		mileage := spec.MileageKmpl
		if mileage == 0 {
			mileage = defaultMileage
		}
		monthlyFuel = FuelCost(monthlyKm, mileage, pricePerLitre)
		fuelNote = fmt.Sprintf("₹%.2f/L at %.2f kmpl", pricePerLitre, mileage)
	}

	monthlyInsurance := priceInr * insuranceShare / 12

	annualKm := dailyKm * 365
	servicesPerYear := math.Max(1, annualKm/serviceKm)
	monthlyMaintenance := servicesPerYear * serviceCostInr / 12

	monthlyTotal := emi + monthlyFuel + monthlyInsurance + monthlyMaintenance
	annualTotal := monthlyTotal * 12
	totalCost := annualTotal*float64(ownershipYears) + downPayment

	// 20% year 1, 15% years 2-3, 10% years 4-5
	resale5yr := priceInr * 0.80 * 0.85 * 0.85 * 0.90 * 0.90

	return TCOResult{
		Car:             spec.Name,
		Variant:         "Base variant",
		ExShowroomLakhs: spec.PriceMinLakhs,
		DownPayment:     int(math.Round(downPayment)),
		MonthlyBreakdown: TCOBreakdown{
			EMI:          int(math.Round(emi)),
			FuelCost:     int(math.Round(monthlyFuel)),
			Insurance:    int(math.Round(monthlyInsurance)),
			Maintenance:  int(math.Round(monthlyMaintenance)),
			TotalMonthly: int(math.Round(monthlyTotal)),
		},
		AnnualTotal:       int(math.Round(annualTotal)),
		OwnershipYears:    ownershipYears,
		TotalCost:         int(math.Round(totalCost)),
		ResaleAfter5Lakhs: math.Round(resale5yr/1000) / 100,
		FuelNote:          fuelNote,
		DailyKmAssumption: dailyKm,
	}
}
