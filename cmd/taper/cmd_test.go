// ABOUTME: Tests for CLI helper functions and config key handling.
// ABOUTME: Tests parseTime, truncate, padRight, bar, and config get/set.
package main

import (
	"testing"
	"time"

	"github.com/jdufour/taper/internal/config"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "date and time with space", input: "2026-01-31 08:30"},
		{name: "date and time with T", input: "2026-01-31T08:30"},
		{name: "date only", input: "2026-01-31"},
		{name: "RFC3339", input: "2026-01-31T08:30:00Z"},
		{name: "RFC3339 with offset", input: "2026-01-31T08:30:00+05:00"},
		{name: "invalid format", input: "31-01-2026", wantErr: true},
		{name: "invalid random string", input: "not a date", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseTimeLocalZone(t *testing.T) {
	// Timestamps without a zone are local time, so near-midnight events
	// land on the calendar day the user typed.
	got, err := parseTime("2026-01-02 23:30")
	if err != nil {
		t.Fatalf("parseTime failed: %v", err)
	}
	want := time.Date(2026, 1, 2, 23, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("parseTime = %v, want %v", got, want)
	}
	if got.Format("2006-01-02") != "2026-01-02" {
		t.Errorf("local date = %s, want 2026-01-02", got.Format("2006-01-02"))
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 30); got != "short" {
		t.Errorf("truncate = %q, want unchanged", got)
	}
	got := truncate("a very long note that keeps going and going", 20)
	if len(got) != 20 {
		t.Errorf("truncate length = %d, want 20", len(got))
	}
	if got[len(got)-3:] != "..." {
		t.Errorf("truncate = %q, want ... suffix", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 6); got != "abc   " {
		t.Errorf("padRight = %q, want %q", got, "abc   ")
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight = %q, want unchanged", got)
	}
}

func TestBar(t *testing.T) {
	if got := bar(0); got != "" {
		t.Errorf("bar(0) = %q, want empty", got)
	}
	if got := bar(3.7); got != "███" {
		t.Errorf("bar(3.7) = %q, want 3 cells", got)
	}
	if got := bar(100); len([]rune(got)) != 20 {
		t.Errorf("bar(100) = %d cells, want capped at 20", len([]rune(got)))
	}
}

func TestConfigGetSet(t *testing.T) {
	c := &config.Config{}

	if err := setConfigValue(c, "price_per_gram_herbe", "11.5"); err != nil {
		t.Fatalf("setConfigValue failed: %v", err)
	}
	got, err := getConfigValue(c, "price_per_gram_herbe")
	if err != nil {
		t.Fatalf("getConfigValue failed: %v", err)
	}
	if got != "11.50" {
		t.Errorf("got %q, want 11.50", got)
	}

	if err := setConfigValue(c, "backend", "papyrus"); err == nil {
		t.Error("expected invalid backend error")
	}
	if err := setConfigValue(c, "price_per_cigarette", "-1"); err == nil {
		t.Error("expected negative price error")
	}
	if err := setConfigValue(c, "nope", "1"); err == nil {
		t.Error("expected unknown key error")
	}
	if _, err := getConfigValue(c, "nope"); err == nil {
		t.Error("expected unknown key error")
	}
}
