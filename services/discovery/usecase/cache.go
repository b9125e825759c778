package usecase

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
)

// DefaultCacheTTL is how long a detail record stays servable
const DefaultCacheTTL = 15 * time.Minute

// ProviderCache is a bounded-lifetime in-memory map from provider ID to a
// previously fetched detailed record. Presence is an optimization only:
// every read path has a live-fetch fallback, and an expired entry behaves
// exactly like one never cached. Never persisted across restarts.
type ProviderCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clockwork.Clock
	entries map[string]cacheEntry
}

type cacheEntry struct {
	record   models.ProviderRecord
	cachedAt time.Time
}

// NewProviderCache creates a cache with the given TTL. A nil clock uses
// real time; tests inject a fake.
func NewProviderCache(ttl time.Duration, clock clockwork.Clock) *ProviderCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ProviderCache{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns a copy of a non-expired entry. Expired entries are evicted
// lazily and reported as absent.
func (c *ProviderCache) Get(id string) (*models.ProviderRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	if c.clock.Since(entry.cachedAt) > c.ttl {
		delete(c.entries, id)
		return nil, false
	}

	record := entry.record.Clone()
	return &record, true
}

// Put unconditionally overwrites the entry, resetting its age
func (c *ProviderCache) Put(id string, record models.ProviderRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[id] = cacheEntry{
		record:   record.Clone(),
		cachedAt: c.clock.Now(),
	}
}

// SweepExpired removes expired entries and returns how many were purged.
// Purely memory hygiene; a swept miss is identical to a not-yet-cached miss.
func (c *ProviderCache) SweepExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	purged := 0
	for id, entry := range c.entries {
		if c.clock.Since(entry.cachedAt) > c.ttl {
			delete(c.entries, id)
			purged++
		}
	}
	return purged
}

// Len returns the number of stored entries, expired or not
func (c *ProviderCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
