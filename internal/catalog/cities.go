package catalog

// City climate profiles, used as the fallback when the live weather source
// is unreachable.
var cities = map[string]CityProfile{
	"Mumbai":    {Name: "Mumbai", Humidity: "very_high", Terrain: "flat", Type: "coastal"},
	"Chennai":   {Name: "Chennai", Humidity: "very_high", Terrain: "flat", Type: "coastal"},
	"Kochi":     {Name: "Kochi", Humidity: "very_high", Terrain: "flat", Type: "coastal"},
	"Kolkata":   {Name: "Kolkata", Humidity: "high", Terrain: "flat", Type: "plains"},
	"Bangalore": {Name: "Bangalore", Humidity: "moderate", Terrain: "flat", Type: "highland"},
	"Pune":      {Name: "Pune", Humidity: "moderate", Terrain: "hilly", Type: "highland"},
	"Delhi":     {Name: "Delhi", Humidity: "low", Terrain: "flat", Type: "plains"},
	"Lucknow":   {Name: "Lucknow", Humidity: "moderate", Terrain: "flat", Type: "plains"},
	"Hyderabad": {Name: "Hyderabad", Humidity: "low", Terrain: "flat", Type: "semi-arid"},
	"Ahmedabad": {Name: "Ahmedabad", Humidity: "low", Terrain: "flat", Type: "semi-arid"},
	"Jaipur":    {Name: "Jaipur", Humidity: "very_low", Terrain: "flat", Type: "desert"},
	"Shimla":    {Name: "Shimla", Humidity: "low", Terrain: "steep_hills", Type: "mountain"},
}
