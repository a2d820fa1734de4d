// ABOUTME: Event CRUD operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side filtering.
package charm

import (
	"fmt"
	"sort"
	"time"

	"github.com/jdufour/taper/internal/models"
	"github.com/jdufour/taper/internal/storage"
)

// Compile-time check that Client implements Repository.
var _ storage.Repository = (*Client)(nil)

// CreateEvent stores a new consumption event in the KV store.
func (c *Client) CreateEvent(e *models.ConsumptionEvent) error {
	key := EventPrefix + e.ID.String()
	data, err := marshalJSON(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	return c.set(key, data)
}

// GetEvent retrieves an event by ID or ID prefix.
func (c *Client) GetEvent(idOrPrefix string) (*models.ConsumptionEvent, error) {
	data, err := c.getByIDPrefix(EventPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	event, err := unmarshalJSON[models.ConsumptionEvent](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}

	return event, nil
}

// ListEvents retrieves events with optional filtering by category.
// Results are sorted by ConsumedAt descending (most recent first).
func (c *Client) ListEvents(category *models.Category, limit int) ([]*models.ConsumptionEvent, error) {
	allData, err := c.listByPrefix(EventPrefix)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events, err := decodeEvents(allData)
	if err != nil {
		return nil, err
	}

	// Filter by category if specified
	if category != nil {
		filtered := events[:0]
		for _, e := range events {
			if e.Category == *category {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	// Sort by ConsumedAt descending
	sort.Slice(events, func(i, j int) bool {
		return events[i].ConsumedAt.After(events[j].ConsumedAt)
	})

	// Apply limit
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}

	return events, nil
}

// decodeEvents unmarshals raw KV values into events. An entry that does
// not decode is corrupt data and rejected rather than silently dropped,
// matching the SQLite backend's scan policy.
func decodeEvents(raw [][]byte) ([]*models.ConsumptionEvent, error) {
	var events []*models.ConsumptionEvent
	for _, data := range raw {
		e, err := unmarshalJSON[models.ConsumptionEvent](data)
		if err != nil {
			return nil, fmt.Errorf("decode stored event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}

// ListEventsSince retrieves all events consumed at or after the given
// time, most recent first.
func (c *Client) ListEventsSince(since time.Time) ([]*models.ConsumptionEvent, error) {
	all, err := c.ListEvents(nil, 0)
	if err != nil {
		return nil, err
	}

	// all is sorted newest first; keep the leading run inside the window.
	cut := len(all)
	for i, e := range all {
		if e.ConsumedAt.Before(since) {
			cut = i
			break
		}
	}
	return all[:cut], nil
}

// DeleteEvent removes an event by ID or prefix.
func (c *Client) DeleteEvent(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(EventPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	events, err := c.ListEvents(nil, 0)
	if err != nil {
		return nil, err
	}
	return storage.NewExportData(events), nil
}

// ImportData imports data from an export file.
func (c *Client) ImportData(data *storage.ExportData) error {
	events, err := data.ToEvents()
	if err != nil {
		return err
	}
	for _, e := range events {
		if err := c.CreateEvent(e); err != nil {
			return fmt.Errorf("import event: %w", err)
		}
	}
	return nil
}
