package apimodels

type ChatRequest struct {
	// Query is the natural language question from the buyer
	Query string `json:"query"`

	// ForceFallback skips the primary provider entirely
	ForceFallback bool `json:"forceFallback,omitempty"`

	// Optional parameters to control provider behavior
	Options ChatOptions `json:"options,omitempty"`
}

type ChatOptions struct {
	// MaxTokens limits the LLM response length
	MaxTokens int64 `json:"maxTokens,omitempty"`

	// Temperature controls randomness (0.0-1.0)
	Temperature float64 `json:"temperature,omitempty"`
}

type FilterRequest struct {
	// Budget range in INR lakhs
	BudgetMin float64 `json:"budgetMin"`
	BudgetMax float64 `json:"budgetMax"`

	// Fuel is one of Petrol, Diesel, CNG, EV or "any"
	Fuel string `json:"fuel,omitempty"`

	// MinSeats is the minimum seat count required
	MinSeats int `json:"minSeats,omitempty"`
}
