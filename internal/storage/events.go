// ABOUTME: Event CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for consumption events.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jdufour/taper/internal/models"
)

// CreateEvent stores a new consumption event in the database.
func (d *DB) CreateEvent(e *models.ConsumptionEvent) error {
	query := `
		INSERT INTO events (id, category, quantity_text, consumed_at, price, note, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		e.ID.String(),
		string(e.Category),
		e.QuantityText,
		e.ConsumedAt.Format(time.RFC3339),
		e.Price,
		e.Note,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// GetEvent retrieves an event by ID or ID prefix.
func (d *DB) GetEvent(idOrPrefix string) (*models.ConsumptionEvent, error) {
	id, err := d.resolveEventID(idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, category, quantity_text, consumed_at, price, note, created_at
		FROM events
		WHERE id = ?
	`
	return d.scanEvent(d.db.QueryRow(query, id))
}

// ListEvents retrieves events with optional filtering by category.
// Results are sorted by ConsumedAt descending (most recent first).
func (d *DB) ListEvents(category *models.Category, limit int) ([]*models.ConsumptionEvent, error) {
	var query string
	var args []interface{}

	if category != nil {
		query = `
			SELECT id, category, quantity_text, consumed_at, price, note, created_at
			FROM events
			WHERE category = ?
			ORDER BY consumed_at DESC
		`
		args = append(args, string(*category))
	} else {
		query = `
			SELECT id, category, quantity_text, consumed_at, price, note, created_at
			FROM events
			ORDER BY consumed_at DESC
		`
	}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return d.scanEvents(rows)
}

// ListEventsSince retrieves all events consumed at or after the given
// time, most recent first.
func (d *DB) ListEventsSince(since time.Time) ([]*models.ConsumptionEvent, error) {
	query := `
		SELECT id, category, quantity_text, consumed_at, price, note, created_at
		FROM events
		WHERE consumed_at >= ?
		ORDER BY consumed_at DESC
	`
	rows, err := d.db.Query(query, since.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("list events since: %w", err)
	}
	defer rows.Close()

	return d.scanEvents(rows)
}

// DeleteEvent removes an event by ID or prefix.
func (d *DB) DeleteEvent(idOrPrefix string) error {
	id, err := d.resolveEventID(idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	return nil
}

// resolveEventID finds the full ID from a prefix.
func (d *DB) resolveEventID(idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := `SELECT id FROM events WHERE id LIKE ? || '%'`
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve event ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan event ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

// scanEvent scans a single row into a ConsumptionEvent struct.
func (d *DB) scanEvent(row *sql.Row) (*models.ConsumptionEvent, error) {
	var e models.ConsumptionEvent
	var idStr, category, consumedAt, createdAt string
	var price sql.NullFloat64
	var note sql.NullString

	err := row.Scan(&idStr, &category, &e.QuantityText, &consumedAt, &price, &note, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("not found")
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return fillEvent(&e, idStr, category, consumedAt, createdAt, price, note)
}

// scanEvents scans multiple rows into a slice of events.
func (d *DB) scanEvents(rows *sql.Rows) ([]*models.ConsumptionEvent, error) {
	var events []*models.ConsumptionEvent

	for rows.Next() {
		var e models.ConsumptionEvent
		var idStr, category, consumedAt, createdAt string
		var price sql.NullFloat64
		var note sql.NullString

		err := rows.Scan(&idStr, &category, &e.QuantityText, &consumedAt, &price, &note, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}

		ev, err := fillEvent(&e, idStr, category, consumedAt, createdAt, price, note)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	return events, rows.Err()
}

// fillEvent populates an event from scanned columns. Timestamps are
// written as RFC3339 at ingestion; a row that fails to parse here is
// corrupt and rejected rather than silently misplaced in a window.
func fillEvent(e *models.ConsumptionEvent, idStr, category, consumedAt, createdAt string, price sql.NullFloat64, note sql.NullString) (*models.ConsumptionEvent, error) {
	var err error
	e.ID, err = uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("parse event id %q: %w", idStr, err)
	}
	e.Category = models.Category(category)
	e.ConsumedAt, err = time.Parse(time.RFC3339, consumedAt)
	if err != nil {
		return nil, fmt.Errorf("parse consumed_at for %s: %w", idStr[:8], err)
	}
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parse created_at for %s: %w", idStr[:8], err)
	}
	if price.Valid {
		e.Price = &price.Float64
	}
	if note.Valid {
		e.Note = &note.String
	}
	return e, nil
}
