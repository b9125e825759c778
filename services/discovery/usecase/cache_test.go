package usecase

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestProviderCache_HitWithinTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cache := NewProviderCache(15*time.Minute, clock)

	cache.Put("p1", models.ProviderRecord{ID: "p1", BaseRating: 4.5})

	clock.Advance(14 * time.Minute)

	record, ok := cache.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, 4.5, record.BaseRating)
}

func TestProviderCache_MissAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cache := NewProviderCache(15*time.Minute, clock)

	cache.Put("p1", models.ProviderRecord{ID: "p1"})

	clock.Advance(16 * time.Minute)

	_, ok := cache.Get("p1")
	assert.False(t, ok)
	// Lazy eviction removed the entry
	assert.Equal(t, 0, cache.Len())
}

func TestProviderCache_PutResetsAge(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cache := NewProviderCache(15*time.Minute, clock)

	cache.Put("p1", models.ProviderRecord{ID: "p1"})
	clock.Advance(14 * time.Minute)
	cache.Put("p1", models.ProviderRecord{ID: "p1", BaseRating: 3.0})
	clock.Advance(14 * time.Minute)

	record, ok := cache.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, 3.0, record.BaseRating)
}

func TestProviderCache_GetReturnsCopy(t *testing.T) {
	cache := NewProviderCache(15*time.Minute, clockwork.NewFakeClock())
	cache.Put("p1", models.ProviderRecord{ID: "p1", ServiceTags: []string{"plumbing"}})

	record, ok := cache.Get("p1")
	assert.True(t, ok)
	record.ServiceTags[0] = "mutated"
	record.BaseRating = 9.9

	again, ok := cache.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, "plumbing", again.ServiceTags[0])
	assert.Equal(t, 0.0, again.BaseRating)
}

func TestProviderCache_MissUnknownID(t *testing.T) {
	cache := NewProviderCache(15*time.Minute, clockwork.NewFakeClock())
	_, ok := cache.Get("nope")
	assert.False(t, ok)
}

func TestProviderCache_SweepExpired(t *testing.T) {
	clock := clockwork.NewFakeClock()
	cache := NewProviderCache(15*time.Minute, clock)

	cache.Put("old1", models.ProviderRecord{ID: "old1"})
	cache.Put("old2", models.ProviderRecord{ID: "old2"})
	clock.Advance(16 * time.Minute)
	cache.Put("fresh", models.ProviderRecord{ID: "fresh"})

	purged := cache.SweepExpired()

	assert.Equal(t, 2, purged)
	assert.Equal(t, 1, cache.Len())

	_, ok := cache.Get("fresh")
	assert.True(t, ok)
}

func TestProviderCache_DefaultTTL(t *testing.T) {
	cache := NewProviderCache(0, nil)
	assert.Equal(t, DefaultCacheTTL, cache.ttl)
}
