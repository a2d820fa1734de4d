// ABOUTME: Free-text quantity parsing for consumption events.
// ABOUTME: Extracts the first numeric token as grams or unit count.
package stats

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jdufour/taper/internal/models"
)

// Quantity text is free form ("0.5g", "2", "1 cig", "0,5"); only the
// first numeric token matters. Comma decimals are accepted.
var quantityPattern = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

// ParseQuantity extracts the numeric magnitude from a quantity string.
// For weighed categories the result is grams, defaulting to 0 when no
// number is present. For cigarettes it is a unit count (possibly
// fractional), defaulting to 1: a bare entry is assumed to be one unit.
// Never fails.
func ParseQuantity(text string, category models.Category) float64 {
	match := quantityPattern.FindString(text)
	if match == "" {
		if models.IsWeighed(category) {
			return 0
		}
		return 1
	}

	value, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
	if err != nil {
		// Unreachable for strings matched by the pattern, but keep the
		// same defaults as the no-match case.
		if models.IsWeighed(category) {
			return 0
		}
		return 1
	}
	return value
}
