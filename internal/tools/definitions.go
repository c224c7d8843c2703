package tools

import (
	"github.com/openai/openai-go"
)

var cityWeatherSpec = openai.ChatCompletionToolParam{
	Type: openai.F(openai.ChatCompletionToolTypeFunction),
	Function: openai.F(openai.FunctionDefinitionParam{
		Name:        openai.String("get_city_weather"),
		Description: openai.String("Get current weather and terrain data for an Indian city"),
		Parameters: openai.F(openai.FunctionParameters{
			"type": "object",
			"properties": map[string]interface{}{
				"city": map[string]string{
					"type":        "string",
					"description": "Indian city name, e.g. Mumbai, Delhi, Shimla",
				},
			},
			"required": []string{"city"},
		}),
	}),
}

var tataCarsSpec = openai.ChatCompletionToolParam{
	Type: openai.F(openai.ChatCompletionToolTypeFunction),
	Function: openai.F(openai.FunctionDefinitionParam{
		Name:        openai.String("get_tata_cars"),
		Description: openai.String("Filter Tata cars by budget, fuel type, and seat count"),
		Parameters: openai.F(openai.FunctionParameters{
			"type": "object",
			"properties": map[string]interface{}{
				"budget_min_lakhs": map[string]string{
					"type":        "number",
					"description": "Minimum budget in INR lakhs, e.g. 8.0",
				},
				"budget_max_lakhs": map[string]string{
					"type":        "number",
					"description": "Maximum budget in INR lakhs, e.g. 16.0",
				},
				"fuel_preference": map[string]string{
					"type":        "string",
					"description": "Petrol, Diesel, CNG, EV, or any",
				},
				"min_seats": map[string]string{
					"type":        "integer",
					"description": "Minimum seats required, default 4",
				},
			},
			"required": []string{"budget_min_lakhs", "budget_max_lakhs"},
		}),
	}),
}

var fuelPriceSpec = openai.ChatCompletionToolParam{
	Type: openai.F(openai.ChatCompletionToolTypeFunction),
	Function: openai.F(openai.FunctionDefinitionParam{
		Name:        openai.String("get_fuel_price"),
		Description: openai.String("Get the fuel price per litre in an Indian city with monthly cost estimate"),
		Parameters: openai.F(openai.FunctionParameters{
			"type": "object",
			"properties": map[string]interface{}{
				"city": map[string]string{
					"type":        "string",
					"description": "Indian city name",
				},
				"fuel_type": map[string]string{
					"type":        "string",
					"description": "Petrol, Diesel, or CNG",
				},
			},
			"required": []string{"city", "fuel_type"},
		}),
	}),
}

var calculateTCOSpec = openai.ChatCompletionToolParam{
	Type: openai.F(openai.ChatCompletionToolTypeFunction),
	Function: openai.F(openai.FunctionDefinitionParam{
		Name:        openai.String("calculate_tco"),
		Description: openai.String("Calculate total cost of ownership for a Tata car over a holding period"),
		Parameters: openai.F(openai.FunctionParameters{
			"type": "object",
			"properties": map[string]interface{}{
				"car_name": map[string]string{
					"type":        "string",
					"description": "Tata car name, e.g. Tata Nexon",
				},
				"city": map[string]string{
					"type":        "string",
					"description": "City for fuel price lookup",
				},
				"daily_km": map[string]string{
					"type":        "number",
					"description": "Average km driven per day",
				},
				"ownership_years": map[string]string{
					"type":        "integer",
					"description": "Years to project, default 5",
				},
				"fuel_type": map[string]string{
					"type":        "string",
					"description": "Petrol, Diesel, CNG, or EV",
				},
			},
			"required": []string{"car_name", "city", "daily_km"},
		}),
	}),
}
