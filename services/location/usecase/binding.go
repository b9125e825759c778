package usecase

import (
	"context"
	"sync"

	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/services/location"
)

// Binding ties one consumer's lifetime to the store subscription and exposes
// derived fields. After Close no further updates are observed, so a torn-down
// consumer never receives state changes.
type Binding struct {
	mu          sync.Mutex
	store       location.LocationUC
	unsubscribe func()
	active      bool
	snapshot    models.LocationSnapshot
	seen        bool
}

// NewBinding subscribes against the store and returns the consumer adapter
func NewBinding(store location.LocationUC) *Binding {
	b := &Binding{store: store, active: true}
	b.unsubscribe = store.Subscribe(location.ListenerFunc(b.onSnapshot))
	return b
}

func (b *Binding) onSnapshot(snapshot models.LocationSnapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.active {
		return
	}
	b.snapshot = snapshot
	b.seen = true
}

// AddressText returns the human-readable address of the current snapshot
func (b *Binding) AddressText() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot.Address.FreeText
}

// Region returns the resolved region, if known
func (b *Binding) Region() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot.Address.Region
}

// Subregion returns the resolved subregion, if known
func (b *Binding) Subregion() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot.Address.Subregion
}

// HasError reports whether the last resolution failed
func (b *Binding) HasError() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot.HasError
}

// IsResolving reports whether a resolution is currently in flight
func (b *Binding) IsResolving() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshot.IsResolving
}

// Position returns a copy of the current position, or nil when none exists
func (b *Binding) Position() *models.Position {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.seen || b.snapshot.Position == nil {
		return nil
	}
	pos := *b.snapshot.Position
	return &pos
}

// Retry forces a fresh resolution through the store
func (b *Binding) Retry(ctx context.Context) (models.LocationSnapshot, error) {
	b.mu.Lock()
	active := b.active
	b.mu.Unlock()
	if !active {
		return models.LocationSnapshot{}, context.Canceled
	}
	return b.store.RequestLocation(ctx, true)
}

// Close tears down the subscription; safe to call more than once
func (b *Binding) Close() {
	b.mu.Lock()
	if !b.active {
		b.mu.Unlock()
		return
	}
	b.active = false
	unsubscribe := b.unsubscribe
	b.unsubscribe = nil
	b.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
