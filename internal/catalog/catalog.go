// Package catalog holds the static car, city, and fuel-price data the
// advisor works from. Everything here is loaded once and never mutated.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCarNotFound  = errors.New("car not found")
	ErrCityNotFound = errors.New("city not found")
)

// CarSpec describes one Tata model. Prices are ex-showroom INR lakhs.
type CarSpec struct {
	Name            string   `json:"name"`
	Segment         string   `json:"segment"`
	PriceMinLakhs   float64  `json:"priceMinLakhs"`
	PriceMaxLakhs   float64  `json:"priceMaxLakhs"`
	FuelTypes       []string `json:"fuelTypes"`
	MileageKmpl     float64  `json:"mileageKmpl,omitempty"` // ARAI, zero for EV-only models
	EngineCC        int      `json:"engineCc,omitempty"`
	PowerPS         int      `json:"powerPs"`
	BootLitres      int      `json:"bootLitres"`
	Seats           int      `json:"seats"`
	GroundClearance int      `json:"groundClearanceMm"`
	SafetyStars     int      `json:"safetyStars"`
	ACQuality       string   `json:"acQuality"`
	BestFor         []string `json:"bestFor"`
	NotGoodFor      []string `json:"notGoodFor"`
	EMIMin          int      `json:"emiApproxInr"`
	EVRangeKm       int      `json:"evRangeKm,omitempty"`
	USP             string   `json:"usp"`
}

// CityProfile is the climate fallback used when the live weather source is
// unavailable.
type CityProfile struct {
	Name     string `json:"name"`
	Humidity string `json:"humidity"` // very_low, low, moderate, high, very_high
	Terrain  string `json:"terrain"`
	Type     string `json:"type"`
}

// Car returns the spec for the given model name. Exact match first, then the
// same case-insensitive substring match the advisor's users type ("nexon",
// "Tata Nexon EV").
func Car(name string) (CarSpec, error) {
	if s, ok := cars[name]; ok {
		return s, nil
	}
	lower := strings.ToLower(name)
	for key, s := range cars {
		k := strings.ToLower(key)
		if strings.Contains(k, lower) || strings.Contains(lower, k) {
			return s, nil
		}
	}
	return CarSpec{}, fmt.Errorf("%w: %q (available: %s)", ErrCarNotFound, name, strings.Join(CarNames(), ", "))
}

// City returns the climate profile for a city, matched case-insensitively.
func City(name string) (CityProfile, error) {
	for key, p := range cities {
		if strings.EqualFold(key, name) {
			return p, nil
		}
	}
	return CityProfile{}, fmt.Errorf("%w: %q", ErrCityNotFound, name)
}

// FuelPrice returns the reference price per litre for a fuel type in a city.
// Unknown cities fall back to a national default, matching the source tables.
func FuelPrice(city, fuelType string) float64 {
	table, ok := fuelPrices[normalizeFuel(fuelType)]
	if !ok {
		table = fuelPrices["Petrol"]
	}
	for key, price := range table {
		if key != defaultPriceKey && strings.Contains(strings.ToLower(city), strings.ToLower(key)) {
			return price
		}
	}
	return table[defaultPriceKey]
}

// FilterCars returns all models with at least one variant inside the budget
// range, matching the fuel preference, and seating at least minSeats.
func FilterCars(budgetMin, budgetMax float64, fuelPreference string, minSeats int) []CarSpec {
	matches := []CarSpec{}
	for _, name := range carOrder {
		s := cars[name]
		if s.PriceMinLakhs > budgetMax || s.PriceMaxLakhs < budgetMin {
			continue
		}
		if !fuelMatches(s.FuelTypes, fuelPreference) {
			continue
		}
		if s.Seats < minSeats {
			continue
		}
		matches = append(matches, s)
	}
	return matches
}

// CarNames lists all known models in catalog order.
func CarNames() []string {
	names := make([]string, len(carOrder))
	copy(names, carOrder)
	return names
}

func fuelMatches(fuelTypes []string, preference string) bool {
	p := strings.ToLower(strings.TrimSpace(preference))
	if p == "" || p == "any" || p == "no preference" {
		return true
	}
	for _, f := range fuelTypes {
		if strings.Contains(strings.ToLower(f), p) {
			return true
		}
	}
	return false
}

func normalizeFuel(fuelType string) string {
	switch strings.ToLower(strings.TrimSpace(fuelType)) {
	case "diesel":
		return "Diesel"
	case "cng":
		return "CNG"
	default:
		return "Petrol"
	}
}
