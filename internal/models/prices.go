// ABOUTME: PriceDefaults holds per-category default unit prices.
// ABOUTME: Missing values fall back to hardcoded product defaults.
package models

// Fallback prices used when the profile does not provide a value.
const (
	FallbackPricePerGramHerb  = 10.0
	FallbackPricePerGramHash  = 15.0
	FallbackPricePerCigarette = 0.5
)

// PriceDefaults holds default unit prices per category: currency per gram
// for the weighed categories, currency per unit for cigarettes.
type PriceDefaults struct {
	PerGramHerb  float64
	PerGramHash  float64
	PerCigarette float64
}

// Resolve returns a copy with zero or negative values replaced by the
// fallback constants, so every category always has a usable price.
func (p PriceDefaults) Resolve() PriceDefaults {
	if p.PerGramHerb <= 0 {
		p.PerGramHerb = FallbackPricePerGramHerb
	}
	if p.PerGramHash <= 0 {
		p.PerGramHash = FallbackPricePerGramHash
	}
	if p.PerCigarette <= 0 {
		p.PerCigarette = FallbackPricePerCigarette
	}
	return p
}

// UnitPrice returns the resolved default price for one unit of the
// category: one gram for weighed categories, one cigarette otherwise.
func (p PriceDefaults) UnitPrice(c Category) float64 {
	r := p.Resolve()
	switch c {
	case CategoryHerb:
		return r.PerGramHerb
	case CategoryHash:
		return r.PerGramHash
	default:
		return r.PerCigarette
	}
}
