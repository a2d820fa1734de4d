// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the events table and its time/category indexes.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		quantity_text TEXT NOT NULL,
		consumed_at DATETIME NOT NULL,
		price REAL,
		note TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_events_category ON events(category);
	CREATE INDEX IF NOT EXISTS idx_events_consumed ON events(consumed_at DESC);
	CREATE INDEX IF NOT EXISTS idx_events_category_consumed ON events(category, consumed_at DESC);
	`

	_, err := d.db.Exec(schema)
	return err
}
