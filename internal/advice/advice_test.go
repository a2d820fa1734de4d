// ABOUTME: Tests for advice prompt construction, HTTP client, and cache.
// ABOUTME: Uses httptest for the endpoint and a temp badger dir for the cache.
package advice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jdufour/taper/internal/models"
	"github.com/jdufour/taper/internal/stats"
)

var testPrices = models.PriceDefaults{
	PerGramHerb:  10.0,
	PerGramHash:  15.0,
	PerCigarette: 0.5,
}

func TestBuildPromptDeterministic(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	events := []*models.ConsumptionEvent{
		models.NewEvent(models.CategoryHerb, "0.5g").WithConsumedAt(now.AddDate(0, 0, -1)),
		models.NewEvent(models.CategoryCigarette, "3").WithConsumedAt(now.AddDate(0, 0, -2)),
	}

	a := BuildPrompt(stats.Compute(events, testPrices, now))
	b := BuildPrompt(stats.Compute(events, testPrices, now))
	if a != b {
		t.Error("expected identical prompts for identical snapshots")
	}

	if !strings.Contains(a, "herbe") || !strings.Contains(a, "cigarette") {
		t.Errorf("prompt missing categories:\n%s", a)
	}
	if !strings.Contains(a, "Active days in the month: 2") {
		t.Errorf("prompt missing active days:\n%s", a)
	}
	if !strings.Contains(a, "0.50 g") {
		t.Errorf("prompt missing weekly weight:\n%s", a)
	}
}

func TestClientGetAdvice(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Write([]byte(`{"advice":"Essaie de repousser la première de 30 minutes."}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	got, err := c.GetAdvice(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("GetAdvice failed: %v", err)
	}
	if !strings.Contains(got, "30 minutes") {
		t.Errorf("unexpected advice: %s", got)
	}
}

func TestClientSendsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("Authorization = %q, want Bearer sk-test", got)
		}
		w.Write([]byte(`{"advice":"ok"}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL, APIKey: "sk-test"}
	if _, err := c.GetAdvice(context.Background(), "prompt"); err != nil {
		t.Fatalf("GetAdvice failed: %v", err)
	}
}

func TestClientOmitsAuthWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("Authorization = %q, want unset", got)
		}
		w.Write([]byte(`{"advice":"ok"}`))
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.GetAdvice(context.Background(), "prompt"); err != nil {
		t.Fatalf("GetAdvice failed: %v", err)
	}
}

func TestClientGetAdviceErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := &Client{BaseURL: srv.URL}
	if _, err := c.GetAdvice(context.Background(), "prompt"); err == nil {
		t.Error("expected error on 500 response")
	}

	unset := &Client{}
	if _, err := unset.GetAdvice(context.Background(), "prompt"); err == nil {
		t.Error("expected error when endpoint not configured")
	}
}

func TestCachePerUserPerDay(t *testing.T) {
	cache, err := OpenCache(t.TempDir())
	if err != nil {
		t.Fatalf("OpenCache failed: %v", err)
	}
	defer cache.Close()

	day1 := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	cache.WithClock(func() time.Time { return day1 })

	// Empty cache
	if _, ok, err := cache.Get("alice"); err != nil || ok {
		t.Fatalf("Get on empty cache = ok=%v err=%v", ok, err)
	}

	if err := cache.Put("alice", "advice for day 1"); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := cache.Get("alice")
	if err != nil || !ok {
		t.Fatalf("Get after Put = ok=%v err=%v", ok, err)
	}
	if got != "advice for day 1" {
		t.Errorf("Get = %q, want advice for day 1", got)
	}

	// Another user does not see it
	if _, ok, _ := cache.Get("bob"); ok {
		t.Error("expected cache miss for different user")
	}

	// Same user next day is a miss
	cache.WithClock(func() time.Time { return day1.AddDate(0, 0, 1) })
	if _, ok, _ := cache.Get("alice"); ok {
		t.Error("expected cache miss after day rollover")
	}
}
