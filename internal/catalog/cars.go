package catalog

// Tata lineup as of Feb 2026. Prices ex-showroom INR lakhs.

var carOrder = []string{
	"Tata Punch",
	"Tata Tiago",
	"Tata Tigor",
	"Tata Nexon",
	"Tata Altroz",
	"Tata Harrier",
	"Tata Safari",
	"Tata Curvv",
	"Tata Sierra EV",
}

var cars = map[string]CarSpec{
	"Tata Punch": {
		Name:            "Tata Punch",
		Segment:         "Micro SUV",
		PriceMinLakhs:   6.13,
		PriceMaxLakhs:   9.99,
		FuelTypes:       []string{"Petrol", "CNG", "EV"},
		MileageKmpl:     18.82,
		EngineCC:        1199,
		PowerPS:         86,
		BootLitres:      366,
		Seats:           5,
		GroundClearance: 190,
		SafetyStars:     5,
		ACQuality:       "Standard",
		BestFor:         []string{"City commute", "First car", "Budget buyers"},
		NotGoodFor:      []string{"Long highway runs", "Hills at speed"},
		EMIMin:          8500,
		EVRangeKm:       315,
		USP:             "5-star safety in segment, rugged SUV stance",
	},
	"Tata Tiago": {
		Name:            "Tata Tiago",
		Segment:         "Hatchback",
		PriceMinLakhs:   5.60,
		PriceMaxLakhs:   8.49,
		FuelTypes:       []string{"Petrol", "CNG", "EV"},
		MileageKmpl:     19.80,
		EngineCC:        1199,
		PowerPS:         86,
		BootLitres:      242,
		Seats:           5,
		GroundClearance: 165,
		SafetyStars:     4,
		ACQuality:       "Standard",
		BestFor:         []string{"Tight budget", "City parking", "CNG savings"},
		NotGoodFor:      []string{"Rough roads", "Large families"},
		EMIMin:          7800,
		EVRangeKm:       250,
		USP:             "Most fuel-efficient Tata, lowest price of entry",
	},
	"Tata Tigor": {
		Name:            "Tata Tigor",
		Segment:         "Compact Sedan",
		PriceMinLakhs:   7.99,
		PriceMaxLakhs:   11.29,
		FuelTypes:       []string{"Petrol", "CNG", "EV"},
		MileageKmpl:     19.85,
		EngineCC:        1199,
		PowerPS:         86,
		BootLitres:      316,
		Seats:           5,
		GroundClearance: 170,
		SafetyStars:     4,
		ACQuality:       "Standard",
		BestFor:         []string{"Executive look", "CNG savings", "Sedan lovers"},
		NotGoodFor:      []string{"Rough roads", "Hills"},
		EMIMin:          11100,
		EVRangeKm:       306,
		USP:             "Only EV sedan in India under ₹12 lakhs",
	},
	"Tata Nexon": {
		Name:            "Tata Nexon",
		Segment:         "Compact SUV",
		PriceMinLakhs:   8.10,
		PriceMaxLakhs:   15.50,
		FuelTypes:       []string{"Petrol", "Diesel", "EV"},
		MileageKmpl:     17.01,
		EngineCC:        1497,
		PowerPS:         115,
		BootLitres:      382,
		Seats:           5,
		GroundClearance: 208,
		SafetyStars:     5,
		ACQuality:       "Good",
		BestFor:         []string{"City + highway", "Young families", "EV early adopters"},
		NotGoodFor:      []string{"Large families needing 7 seats"},
		EMIMin:          11200,
		EVRangeKm:       465,
		USP:             "India's #1 selling EV, 5-star safety, highly versatile",
	},
	"Tata Altroz": {
		Name:            "Tata Altroz",
		Segment:         "Premium Hatchback",
		PriceMinLakhs:   6.60,
		PriceMaxLakhs:   10.89,
		FuelTypes:       []string{"Petrol", "Diesel", "CNG"},
		MileageKmpl:     19.38,
		EngineCC:        1199,
		PowerPS:         100,
		BootLitres:      345,
		Seats:           5,
		GroundClearance: 165,
		SafetyStars:     5,
		ACQuality:       "Excellent",
		BestFor:         []string{"Urban comfort", "Hot humid cities", "City professionals"},
		NotGoodFor:      []string{"Bad roads", "Off-road use"},
		EMIMin:          9200,
		USP:             "Best AC in class, 5-star safety, premium cabin feel",
	},
	"Tata Harrier": {
		Name:            "Tata Harrier",
		Segment:         "Midsize SUV",
		PriceMinLakhs:   15.49,
		PriceMaxLakhs:   26.44,
		FuelTypes:       []string{"Diesel"},
		MileageKmpl:     16.35,
		EngineCC:        1956,
		PowerPS:         170,
		BootLitres:      425,
		Seats:           5,
		GroundClearance: 205,
		SafetyStars:     5,
		ACQuality:       "Excellent",
		BestFor:         []string{"Highway cruising", "Family trips", "Hilly terrain", "Status"},
		NotGoodFor:      []string{"Tight city parking", "Petrol preference"},
		EMIMin:          21500,
		USP:             "ADAS safety features, most powerful Tata, commanding presence",
	},
	"Tata Safari": {
		Name:            "Tata Safari",
		Segment:         "Full-size SUV",
		PriceMinLakhs:   16.19,
		PriceMaxLakhs:   27.34,
		FuelTypes:       []string{"Diesel"},
		MileageKmpl:     14.69,
		EngineCC:        1956,
		PowerPS:         170,
		BootLitres:      447, // 5-seater config
		Seats:           7,
		GroundClearance: 205,
		SafetyStars:     5,
		ACQuality:       "Excellent",
		BestFor:         []string{"Large families", "7-seater need", "Long highway trips"},
		NotGoodFor:      []string{"City parking", "Tight budgets"},
		EMIMin:          22500,
		USP:             "Only 7-seater in Tata lineup, massive presence, highway master",
	},
	"Tata Curvv": {
		Name:            "Tata Curvv",
		Segment:         "Coupe SUV",
		PriceMinLakhs:   10.00,
		PriceMaxLakhs:   19.00,
		FuelTypes:       []string{"Petrol", "Diesel", "EV"},
		MileageKmpl:     18.01,
		EngineCC:        1497,
		PowerPS:         125,
		BootLitres:      500,
		Seats:           5,
		GroundClearance: 200,
		SafetyStars:     5,
		ACQuality:       "Excellent",
		BestFor:         []string{"Style seekers", "Tech lovers", "EV transition"},
		NotGoodFor:      []string{"Rear legroom sensitive buyers", "Very tight budgets"},
		EMIMin:          13900,
		EVRangeKm:       502,
		USP:             "Largest boot in segment, best EV range, futuristic design",
	},
	"Tata Sierra EV": {
		Name:            "Tata Sierra EV",
		Segment:         "Electric SUV",
		PriceMinLakhs:   25.00,
		PriceMaxLakhs:   30.00,
		FuelTypes:       []string{"EV"},
		PowerPS:         200,
		BootLitres:      510,
		Seats:           5,
		GroundClearance: 210,
		SafetyStars:     5,
		ACQuality:       "Excellent",
		BestFor:         []string{"EV enthusiasts", "Premium segment", "Green buyers"},
		NotGoodFor:      []string{"Long trips without chargers", "Budget buyers"},
		EMIMin:          34700,
		EVRangeKm:       420,
		USP:             "Iconic nameplate reborn as EV, most powerful Tata passenger car",
	},
}
