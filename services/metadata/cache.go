package metadata

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	// Soft ceiling on live entries; crossing it triggers a batch eviction
	// before the next insert.
	cacheMaxEntries = 10000
	cacheEvictBatch = 1000
)

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

// memCache is a bounded in-memory TTL store for raw upstream payloads.
// Entries expire lazily on read. When the store outgrows the ceiling the
// oldest-inserted entries are evicted in a fixed batch; insertion order
// keeps eviction O(batch) with no access bookkeeping, at the cost that a
// hot key inserted early can be evicted before a cold one inserted later.
// Failed lookups are never stored.
type memCache struct {
	clk clock.Clock

	mu    sync.Mutex
	store map[string]cacheEntry
	// Keys in insertion order. May contain stale keys already dropped by
	// lazy expiry; eviction skips those.
	order []string
}

func newMemCache(clk clock.Clock) *memCache {
	if clk == nil {
		clk = clock.New()
	}
	return &memCache{clk: clk, store: make(map[string]cacheEntry)}
}

func (c *memCache) get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.store[key]
	if !ok {
		return nil, false
	}
	if c.clk.Now().After(entry.expiresAt) {
		delete(c.store, key)
		return nil, false
	}
	return entry.value, true
}

func (c *memCache) set(key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.store) >= cacheMaxEntries {
		c.evictOldest(cacheEvictBatch)
	}
	if _, exists := c.store[key]; !exists {
		c.order = append(c.order, key)
	}
	c.store[key] = cacheEntry{value: value, expiresAt: c.clk.Now().Add(ttl)}
}

// evictOldest removes up to n live entries in insertion order, skipping keys
// that lazy expiry already dropped. Caller holds the lock.
func (c *memCache) evictOldest(n int) {
	removed := 0
	i := 0
	for ; i < len(c.order) && removed < n; i++ {
		if _, ok := c.store[c.order[i]]; ok {
			delete(c.store, c.order[i])
			removed++
		}
	}
	c.order = c.order[i:]
}

func (c *memCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.store)
}
