package market

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// DefaultCacheTTL is how long a snapshot stays valid. A TTL of 0 disables
// expiry, matching the original never-expire behavior.
const DefaultCacheTTL = 7 * 24 * time.Hour

// Cache persists MarketSnapshots keyed by exact career title in a single flat
// JSON file, read in full and rewritten in full on every update. A missing
// file is an empty cache, not an error. The mutex serializes read-modify-write
// cycles within the process; across processes the last writer wins.
type Cache struct {
	path string
	ttl  time.Duration
	mu   sync.Mutex
}

// NewCache creates a cache stored at path with the given TTL.
func NewCache(path string, ttl time.Duration) *Cache {
	return &Cache{path: path, ttl: ttl}
}

// Get returns the cached snapshot for title. Entries older than the TTL are
// treated as misses and will be overwritten by the next Put.
func (c *Cache) Get(title string) (types.MarketSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.load()
	snapshot, ok := entries[title]
	if !ok {
		return types.MarketSnapshot{}, false
	}
	if c.expired(snapshot) {
		return types.MarketSnapshot{}, false
	}
	return snapshot, true
}

// Put stores a snapshot under the exact title key, rewriting the whole file.
func (c *Cache) Put(title string, snapshot types.MarketSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.load()
	entries[title] = snapshot

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode market cache: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write market cache %s: %w", c.path, err)
	}
	return nil
}

func (c *Cache) expired(snapshot types.MarketSnapshot) bool {
	if c.ttl == 0 {
		return false
	}
	// Entries written before FetchedAt existed have unknown age; treat them
	// as expired so they get refreshed once.
	if snapshot.FetchedAt.IsZero() {
		return true
	}
	return time.Since(snapshot.FetchedAt) > c.ttl
}

func (c *Cache) load() map[string]types.MarketSnapshot {
	entries := make(map[string]types.MarketSnapshot)

	data, err := os.ReadFile(c.path)
	if err != nil {
		return entries
	}
	// A corrupt cache file is treated as empty; the next Put rewrites it.
	_ = json.Unmarshal(data, &entries)
	return entries
}
