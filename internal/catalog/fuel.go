package catalog

// Reference pump prices, Feb 2026, INR per litre. Cities missing from a
// table use the DEFAULT entry.

const defaultPriceKey = "DEFAULT"

var fuelPrices = map[string]map[string]float64{
	"Petrol": {
		"Mumbai": 104.21, "Delhi": 94.72, "Chennai": 100.29,
		"Bangalore": 102.86, "Kolkata": 105.41, "Hyderabad": 107.41,
		"Pune": 104.29, "Ahmedabad": 96.63, "Kochi": 107.71,
		"Jaipur": 99.72, "Lucknow": 94.76, "Shimla": 103.42,
		defaultPriceKey: 100.00,
	},
	"Diesel": {
		"Mumbai": 92.15, "Delhi": 87.62, "Chennai": 92.44,
		"Bangalore": 88.94, "Kolkata": 92.76, "Hyderabad": 95.65,
		"Pune": 91.42, "Ahmedabad": 89.33, "Kochi": 96.26,
		"Jaipur": 90.21, "Lucknow": 87.61, "Shimla": 91.10,
		defaultPriceKey: 91.00,
	},
	"CNG": {
		"Mumbai": 73.00, "Delhi": 74.09, "Pune": 75.50,
		"Ahmedabad": 68.15,
		defaultPriceKey: 74.00,
	},
}
