// Package guardrail pre-filters queries that mention competitor brands so
// they never reach a tool or a provider. Running this first keeps blocked
// queries from spending provider quota.
package guardrail

import "strings"

const RefusalMessage = "I can only advise on Tata Motors vehicles, so I can't " +
	"compare against other brands. Ask me about any Tata model — Punch, Tiago, " +
	"Tigor, Nexon, Altroz, Harrier, Safari, Curvv, or Sierra EV — and I'll help " +
	"you find the right fit."

// Guardrail holds the competitor brand set. The zero value blocks nothing.
type Guardrail struct {
	brands []string
}

func New(blockedBrands []string) *Guardrail {
	brands := make([]string, 0, len(blockedBrands))
	for _, b := range blockedBrands {
		b = strings.ToLower(strings.TrimSpace(b))
		if b != "" {
			brands = append(brands, b)
		}
	}
	return &Guardrail{brands: brands}
}

// Result reports whether a query was blocked and which brand triggered it.
type Result struct {
	Blocked bool
	Brand   string
	Message string
}

// Check matches the raw query text case-insensitively against the brand set.
// It always returns a result; there is no error path.
func (g *Guardrail) Check(query string) Result {
	lower := strings.ToLower(query)
	for _, brand := range g.brands {
		if strings.Contains(lower, brand) {
			return Result{Blocked: true, Brand: brand, Message: RefusalMessage}
		}
	}
	return Result{}
}
