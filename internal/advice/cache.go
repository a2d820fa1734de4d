// ABOUTME: Badger-backed cache for one advice response per user per day.
// ABOUTME: Keys are (user, calendar date); the clock is injected for tests.
package advice

import (
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v3"
)

// Cache stores at most one advice response per user per calendar day.
type Cache struct {
	db  *badger.DB
	now func() time.Time
}

// OpenCache opens (or creates) the cache database at dir.
func OpenCache(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open advice cache: %w", err)
	}
	return &Cache{db: db, now: time.Now}, nil
}

// WithClock replaces the clock, for tests.
func (c *Cache) WithClock(now func() time.Time) *Cache {
	c.now = now
	return c
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) key(user string) []byte {
	return []byte(fmt.Sprintf("advice:%s:%s", user, c.now().Format("2006-01-02")))
}

// Get returns today's cached advice for the user, if any.
func (c *Cache) Get(user string) (string, bool, error) {
	var advice string
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(c.key(user))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			advice = string(val)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read advice cache: %w", err)
	}
	return advice, true, nil
}

// Put stores today's advice for the user. Entries carry a TTL so stale
// days are reclaimed; the date in the key is what enforces one response
// per day.
func (c *Cache) Put(user, advice string) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(c.key(user), []byte(advice)).WithTTL(48 * time.Hour)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("write advice cache: %w", err)
	}
	return nil
}
