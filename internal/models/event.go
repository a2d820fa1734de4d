// ABOUTME: ConsumptionEvent model and Category enum for consumption data.
// ABOUTME: Defines the three tracked categories: herbe, hash, cigarette.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Category represents the kind of consumable being tracked.
type Category string

const (
	// Weight-measured categories (grams)
	CategoryHerb Category = "herbe"
	CategoryHash Category = "hash"

	// Unit-counted category
	CategoryCigarette Category = "cigarette"
)

// AllCategories returns all valid categories.
var AllCategories = []Category{
	CategoryHerb, CategoryHash, CategoryCigarette,
}

// CategoryUnits maps categories to their display units.
var CategoryUnits = map[Category]string{
	CategoryHerb:      "g",
	CategoryHash:      "g",
	CategoryCigarette: "unit",
}

// IsValidCategory checks if a string is a valid category.
func IsValidCategory(s string) bool {
	for _, c := range AllCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// IsWeighed reports whether a category is measured by weight in grams.
// The cigarette category is counted in units instead.
func IsWeighed(c Category) bool {
	return c == CategoryHerb || c == CategoryHash
}

// ConsumptionEvent represents a single logged consumption.
// Events are immutable once created; they are only ever deleted.
type ConsumptionEvent struct {
	ID           uuid.UUID
	Category     Category
	QuantityText string
	ConsumedAt   time.Time
	Price        *float64
	Note         *string
	CreatedAt    time.Time
}

// NewEvent creates a new ConsumptionEvent with generated UUID and current timestamp.
// QuantityText is free text; the stats package extracts the magnitude from it.
func NewEvent(category Category, quantityText string) *ConsumptionEvent {
	now := time.Now()
	return &ConsumptionEvent{
		ID:           uuid.New(),
		Category:     category,
		QuantityText: quantityText,
		ConsumedAt:   now,
		CreatedAt:    now,
	}
}

// WithConsumedAt sets a custom consumption timestamp.
func (e *ConsumptionEvent) WithConsumedAt(t time.Time) *ConsumptionEvent {
	e.ConsumedAt = t
	return e
}

// WithPrice sets an explicit price, overriding derived pricing.
func (e *ConsumptionEvent) WithPrice(price float64) *ConsumptionEvent {
	e.Price = &price
	return e
}

// WithNote sets a note on the event.
func (e *ConsumptionEvent) WithNote(note string) *ConsumptionEvent {
	e.Note = &note
	return e
}
