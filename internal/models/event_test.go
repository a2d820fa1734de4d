// ABOUTME: Tests for ConsumptionEvent model and Category.
// ABOUTME: Validates category constants, units mapping, and constructor.
package models

import (
	"testing"
	"time"
)

func TestCategoryUnits(t *testing.T) {
	tests := []struct {
		category Category
		wantUnit string
	}{
		{CategoryHerb, "g"},
		{CategoryHash, "g"},
		{CategoryCigarette, "unit"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			got := CategoryUnits[tt.category]
			if got != tt.wantUnit {
				t.Errorf("CategoryUnits[%s] = %s, want %s", tt.category, got, tt.wantUnit)
			}
		})
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range AllCategories {
		if !IsValidCategory(string(c)) {
			t.Errorf("expected %s to be valid", c)
		}
	}
	if IsValidCategory("vodka") {
		t.Error("expected vodka to be invalid")
	}
	if IsValidCategory("") {
		t.Error("expected empty string to be invalid")
	}
}

func TestIsWeighed(t *testing.T) {
	if !IsWeighed(CategoryHerb) || !IsWeighed(CategoryHash) {
		t.Error("expected herbe and hash to be weighed")
	}
	if IsWeighed(CategoryCigarette) {
		t.Error("expected cigarette to be unit-counted")
	}
}

func TestNewEvent(t *testing.T) {
	e := NewEvent(CategoryHerb, "0.5g")

	if e.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if e.Category != CategoryHerb {
		t.Errorf("Category = %s, want herbe", e.Category)
	}
	if e.QuantityText != "0.5g" {
		t.Errorf("QuantityText = %s, want 0.5g", e.QuantityText)
	}
	if e.ConsumedAt.IsZero() {
		t.Error("expected ConsumedAt to be set")
	}
	if e.Price != nil {
		t.Error("expected Price to be nil by default")
	}
}

func TestEventBuilders(t *testing.T) {
	at := time.Date(2026, 3, 14, 21, 30, 0, 0, time.Local)
	e := NewEvent(CategoryHash, "1").
		WithConsumedAt(at).
		WithPrice(7.5).
		WithNote("soirée")

	if !e.ConsumedAt.Equal(at) {
		t.Errorf("ConsumedAt = %v, want %v", e.ConsumedAt, at)
	}
	if e.Price == nil || *e.Price != 7.5 {
		t.Errorf("Price = %v, want 7.5", e.Price)
	}
	if e.Note == nil || *e.Note != "soirée" {
		t.Errorf("Note = %v, want soirée", e.Note)
	}
}

func TestPriceDefaultsResolve(t *testing.T) {
	tests := []struct {
		name string
		in   PriceDefaults
		want PriceDefaults
	}{
		{
			name: "empty falls back",
			in:   PriceDefaults{},
			want: PriceDefaults{PerGramHerb: 10.0, PerGramHash: 15.0, PerCigarette: 0.5},
		},
		{
			name: "partial keeps set values",
			in:   PriceDefaults{PerGramHerb: 8},
			want: PriceDefaults{PerGramHerb: 8, PerGramHash: 15.0, PerCigarette: 0.5},
		},
		{
			name: "negative falls back",
			in:   PriceDefaults{PerCigarette: -1},
			want: PriceDefaults{PerGramHerb: 10.0, PerGramHash: 15.0, PerCigarette: 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Resolve()
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnitPrice(t *testing.T) {
	p := PriceDefaults{PerGramHerb: 12, PerGramHash: 18, PerCigarette: 0.6}
	if got := p.UnitPrice(CategoryHerb); got != 12 {
		t.Errorf("UnitPrice(herbe) = %f, want 12", got)
	}
	if got := p.UnitPrice(CategoryHash); got != 18 {
		t.Errorf("UnitPrice(hash) = %f, want 18", got)
	}
	if got := p.UnitPrice(CategoryCigarette); got != 0.6 {
		t.Errorf("UnitPrice(cigarette) = %f, want 0.6", got)
	}
}
