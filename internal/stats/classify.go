// ABOUTME: Per-event classification into count, weight, and cost contributions.
// ABOUTME: Explicit prices override pricing derived from profile defaults.
package stats

import (
	"github.com/jdufour/taper/internal/models"
)

// Breakdown is the contribution of a single event to the aggregates.
type Breakdown struct {
	Count  float64
	Weight float64
	Cost   float64
}

// Classify computes the count, weight, and cost attributed to one event.
//
// Weighed categories count as one session per event regardless of
// magnitude; cigarettes contribute their literal parsed quantity, which
// may be fractional. Weight is only carried by weighed categories.
// Cost uses the explicit event price when present and positive,
// otherwise magnitude times the category's default unit price.
func Classify(e *models.ConsumptionEvent, prices models.PriceDefaults) Breakdown {
	magnitude := ParseQuantity(e.QuantityText, e.Category)

	var b Breakdown
	if models.IsWeighed(e.Category) {
		b.Count = 1
		b.Weight = magnitude
	} else {
		b.Count = magnitude
	}

	if e.Price != nil && *e.Price > 0 {
		b.Cost = *e.Price
	} else if models.IsWeighed(e.Category) {
		b.Cost = b.Weight * prices.UnitPrice(e.Category)
	} else {
		b.Cost = b.Count * prices.UnitPrice(e.Category)
	}

	return b
}
