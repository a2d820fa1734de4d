// ABOUTME: Export and import functionality for consumption data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jdufour/taper/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for consumption data.
type ExportData struct {
	Version    string         `json:"version" yaml:"version"`
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	Tool       string         `json:"tool" yaml:"tool"`
	Events     []*ExportEvent `json:"events" yaml:"events"`
}

// ExportEvent is the serialized form of a ConsumptionEvent.
type ExportEvent struct {
	ID           string   `json:"id" yaml:"id"`
	Category     string   `json:"category" yaml:"category"`
	QuantityText string   `json:"quantity_text" yaml:"quantity_text"`
	ConsumedAt   string   `json:"consumed_at" yaml:"consumed_at"`
	Price        *float64 `json:"price,omitempty" yaml:"price,omitempty"`
	Note         *string  `json:"note,omitempty" yaml:"note,omitempty"`
	CreatedAt    string   `json:"created_at" yaml:"created_at"`
}

// NewExportData wraps a list of events in the export envelope.
func NewExportData(events []*models.ConsumptionEvent) *ExportData {
	out := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "taper",
	}
	for _, e := range events {
		out.Events = append(out.Events, &ExportEvent{
			ID:           e.ID.String(),
			Category:     string(e.Category),
			QuantityText: e.QuantityText,
			ConsumedAt:   e.ConsumedAt.Format(time.RFC3339),
			Price:        e.Price,
			Note:         e.Note,
			CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

// ToEvents converts export records back into model events, validating
// categories and timestamps.
func (x *ExportData) ToEvents() ([]*models.ConsumptionEvent, error) {
	var events []*models.ConsumptionEvent
	for _, rec := range x.Events {
		if !models.IsValidCategory(rec.Category) {
			return nil, fmt.Errorf("unknown category %q", rec.Category)
		}
		consumedAt, err := time.Parse(time.RFC3339, rec.ConsumedAt)
		if err != nil {
			return nil, fmt.Errorf("parse consumed_at: %w", err)
		}
		e := models.NewEvent(models.Category(rec.Category), rec.QuantityText).
			WithConsumedAt(consumedAt)
		if id, err := uuid.Parse(rec.ID); err == nil {
			e.ID = id
		}
		if rec.Price != nil {
			e.WithPrice(*rec.Price)
		}
		if rec.Note != nil {
			e.WithNote(*rec.Note)
		}
		if createdAt, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
			e.CreatedAt = createdAt
		}
		events = append(events, e)
	}
	return events, nil
}

// EncodeJSON renders export data as indented JSON.
func EncodeJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// EncodeYAML renders export data as YAML.
func EncodeYAML(data *ExportData) ([]byte, error) {
	return yaml.Marshal(data)
}

// MarkdownTable renders events as a Markdown table, optionally filtered
// by start date. Events are expected newest first and are rendered
// oldest first for reading.
func MarkdownTable(events []*models.ConsumptionEvent, since *time.Time) string {
	var b strings.Builder
	b.WriteString("# Consumption log\n\n")
	b.WriteString("| Date | Category | Quantity | Price | Note |\n")
	b.WriteString("|------|----------|----------|-------|------|\n")

	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		if since != nil && e.ConsumedAt.Before(*since) {
			continue
		}
		price := ""
		if e.Price != nil {
			price = fmt.Sprintf("%.2f", *e.Price)
		}
		note := ""
		if e.Note != nil {
			note = strings.ReplaceAll(*e.Note, "|", "\\|")
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			e.ConsumedAt.Format("2006-01-02 15:04"),
			e.Category,
			e.QuantityText,
			price,
			note)
	}

	return b.String()
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	events, err := d.ListEvents(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return NewExportData(events), nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	events, err := data.ToEvents()
	if err != nil {
		return fmt.Errorf("import event: %w", err)
	}
	for _, e := range events {
		if err := d.CreateEvent(e); err != nil {
			return fmt.Errorf("import event: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return EncodeJSON(data)
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return EncodeYAML(data)
}

// ExportMarkdown exports events as a Markdown table, optionally
// filtered by category and start date.
func (d *DB) ExportMarkdown(category *models.Category, since *time.Time) (string, error) {
	events, err := d.ListEvents(category, 0)
	if err != nil {
		return "", err
	}
	return MarkdownTable(events, since), nil
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) (int, error) {
	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		return 0, fmt.Errorf("parse import file: %w", err)
	}
	if err := d.ImportData(&export); err != nil {
		return 0, err
	}
	return len(export.Events), nil
}
