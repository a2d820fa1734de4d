// ABOUTME: Tests for export and import functionality.
// ABOUTME: Verifies JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jdufour/taper/internal/models"
	"gopkg.in/yaml.v3"
)

func TestExportJSON(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := models.NewEvent(models.CategoryHerb, "0.5g").WithNote("test note")
	if err := db.CreateEvent(e); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	data, err := db.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("Failed to parse export: %v", err)
	}

	if export.Tool != "taper" {
		t.Errorf("Tool = %s, want taper", export.Tool)
	}
	if len(export.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(export.Events))
	}
	if export.Events[0].Category != "herbe" {
		t.Errorf("Category = %s, want herbe", export.Events[0].Category)
	}
	if export.Events[0].QuantityText != "0.5g" {
		t.Errorf("QuantityText = %s, want 0.5g", export.Events[0].QuantityText)
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := models.NewEvent(models.CategoryCigarette, "2").WithPrice(1.0)
	if err := db.CreateEvent(e); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	data, err := db.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	var export ExportData
	if err := yaml.Unmarshal(data, &export); err != nil {
		t.Fatalf("Failed to parse YAML export: %v", err)
	}
	if len(export.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(export.Events))
	}
	if export.Events[0].Price == nil || *export.Events[0].Price != 1.0 {
		t.Errorf("Price = %v, want 1.0", export.Events[0].Price)
	}
}

func TestExportMarkdown(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	e := models.NewEvent(models.CategoryHash, "1g").WithNote("avec | pipe")
	if err := db.CreateEvent(e); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	md, err := db.ExportMarkdown(nil, nil)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}

	if !strings.Contains(md, "| hash |") {
		t.Errorf("expected hash row in markdown, got:\n%s", md)
	}
	if !strings.Contains(md, "avec \\| pipe") {
		t.Errorf("expected escaped pipe in note, got:\n%s", md)
	}
}

func TestExportMarkdownSince(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	old := models.NewEvent(models.CategoryHerb, "1g").
		WithConsumedAt(time.Now().AddDate(0, 0, -60))
	recent := models.NewEvent(models.CategoryCigarette, "3").
		WithConsumedAt(time.Now())
	for _, e := range []*models.ConsumptionEvent{old, recent} {
		if err := db.CreateEvent(e); err != nil {
			t.Fatalf("CreateEvent failed: %v", err)
		}
	}

	since := time.Now().AddDate(0, 0, -30)
	md, err := db.ExportMarkdown(nil, &since)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if strings.Contains(md, "herbe") {
		t.Errorf("expected old herbe event to be filtered out, got:\n%s", md)
	}
	if !strings.Contains(md, "cigarette") {
		t.Errorf("expected recent cigarette event, got:\n%s", md)
	}
}

func TestImportRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	defer src.Close()

	e := models.NewEvent(models.CategoryHerb, "0.8g").WithPrice(8.0)
	if err := src.CreateEvent(e); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}

	data, err := src.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst := setupTestDB(t)
	defer dst.Close()

	n, err := dst.ImportJSON(data)
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	if n != 1 {
		t.Errorf("imported %d events, want 1", n)
	}

	got, err := dst.GetEvent(e.ID.String())
	if err != nil {
		t.Fatalf("GetEvent after import failed: %v", err)
	}
	if got.QuantityText != "0.8g" {
		t.Errorf("QuantityText = %s, want 0.8g", got.QuantityText)
	}
	if got.Price == nil || *got.Price != 8.0 {
		t.Errorf("Price = %v, want 8.0", got.Price)
	}
}

func TestImportRejectsUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	bad := []byte(`{"version":"1.0","tool":"taper","events":[{"id":"x","category":"vodka","quantity_text":"1","consumed_at":"2026-01-01T00:00:00Z","created_at":"2026-01-01T00:00:00Z"}]}`)
	if _, err := db.ImportJSON(bad); err == nil {
		t.Error("expected import of unknown category to fail")
	}
}
