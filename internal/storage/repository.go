// ABOUTME: Repository interface for consumption event storage.
// ABOUTME: Single canonical contract implemented by SQLite and Charm KV.
package storage

import (
	"time"

	"github.com/jdufour/taper/internal/models"
)

// Repository defines the storage interface for consumption events.
// All backends adapt to this one contract so every consumer of the
// stats engine sees the same event stream.
type Repository interface {
	// Event operations
	CreateEvent(e *models.ConsumptionEvent) error
	GetEvent(idOrPrefix string) (*models.ConsumptionEvent, error)
	ListEvents(category *models.Category, limit int) ([]*models.ConsumptionEvent, error)
	ListEventsSince(since time.Time) ([]*models.ConsumptionEvent, error)
	DeleteEvent(idOrPrefix string) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
