package completion

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/sqlpane/sqlpane/internal/db"
)

// Fetcher loads column metadata for a table from the connected database.
type Fetcher func(ctx context.Context, table string) ([]db.ColumnInfo, error)

// Cache maps table names to their column metadata, populated lazily.
// Entries live for the session and are never evicted. Lookups run inside
// tea.Cmd goroutines, so the map is lock-protected and concurrent misses
// for the same table share one fetch.
type Cache struct {
	mu      sync.Mutex
	entries map[string][]db.ColumnInfo
	group   singleflight.Group
	fetch   Fetcher
}

// NewCache creates a schema cache backed by the given fetcher.
func NewCache(fetch Fetcher) *Cache {
	return &Cache{
		entries: make(map[string][]db.ColumnInfo),
		fetch:   fetch,
	}
}

// Lookup returns the cached columns for a table without fetching.
func (c *Cache) Lookup(table string) ([]db.ColumnInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cols, ok := c.entries[table]
	return cols, ok
}

// Columns returns the columns for a table, fetching on a miss. A failed
// fetch stores nothing and returns the error, so the next call retries.
func (c *Cache) Columns(ctx context.Context, table string) ([]db.ColumnInfo, error) {
	if cols, ok := c.Lookup(table); ok {
		return cols, nil
	}

	v, err, _ := c.group.Do(table, func() (any, error) {
		cols, err := c.fetch(ctx, table)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[table] = cols
		c.mu.Unlock()
		return cols, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]db.ColumnInfo), nil
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
