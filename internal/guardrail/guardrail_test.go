package guardrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testBrands = []string{"maruti", "suzuki", "hyundai", "kia", "mahindra", "toyota", "honda"}

func TestCheckBlocksCompetitorBrands(t *testing.T) {
	g := New(testBrands)

	tests := []struct {
		name    string
		query   string
		blocked bool
		brand   string
	}{
		{"plain mention", "How does Tata Nexon compare to Maruti Brezza?", true, "maruti"},
		{"upper case", "IS THE HYUNDAI CRETA BETTER?", true, "hyundai"},
		{"mixed case", "tata punch vs KiA sonet", true, "kia"},
		{"embedded in sentence", "thinking about a mahindra, talk me out of it", true, "mahindra"},
		{"tata only", "Which Tata car suits Mumbai traffic?", false, ""},
		{"empty query", "", false, ""},
		{"tool-style query", "Fuel cost for 500km at 18 km/l, diesel price 90", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := g.Check(tt.query)
			assert.Equal(t, tt.blocked, res.Blocked)
			assert.Equal(t, tt.brand, res.Brand)
			if tt.blocked {
				assert.Equal(t, RefusalMessage, res.Message)
			} else {
				assert.Empty(t, res.Message)
			}
		})
	}
}

func TestCheckBlocksEvenWithValidToolRequest(t *testing.T) {
	// brand mention wins over an otherwise answerable lookup
	g := New(testBrands)
	res := g.Check("What's the TCO of a Toyota Fortuner vs Tata Safari in Pune?")
	assert.True(t, res.Blocked)
}

func TestNewNormalizesBrandList(t *testing.T) {
	g := New([]string{" Maruti ", "", "SUZUKI"})
	assert.True(t, g.Check("maruti 800").Blocked)
	assert.True(t, g.Check("suzuki swift").Blocked)
	assert.False(t, g.Check("tata tiago").Blocked)
}

func TestZeroBrandsBlocksNothing(t *testing.T) {
	g := New(nil)
	assert.False(t, g.Check("maruti hyundai kia").Blocked)
}
