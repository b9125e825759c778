package usecase

import (
	"context"
	"errors"

	"github.com/rdwiputra/jasaku/internal/pkg/logger"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/internal/pkg/notify"
	"github.com/rdwiputra/jasaku/services/location"
)

const (
	addressUnavailable = "Location unavailable"
	addressDenied      = "Location access denied"
)

// Subscribe registers a listener. If a snapshot already exists the listener
// fires immediately with it, so subscribing is never blind to stale-but-valid
// state. The returned function unsubscribes.
func (s *LocationStore) Subscribe(l location.Listener) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, listener: l})
	replay := s.snapshot
	s.mu.Unlock()

	if replay != nil {
		l.OnSnapshot(*replay)
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

// RequestLocation resolves the device position. If a resolution is already
// in flight the caller awaits that same operation. If a snapshot exists and
// forceRefresh is false it is returned without touching hardware. Resolution
// failures settle into an error snapshot rather than an error return, so
// callers never retry in a loop; retry is caller-driven via forceRefresh.
func (s *LocationStore) RequestLocation(ctx context.Context, forceRefresh bool) (models.LocationSnapshot, error) {
	s.mu.Lock()

	if fl := s.inflight; fl != nil {
		s.mu.Unlock()
		select {
		case <-fl.done:
			return fl.snapshot, nil
		case <-ctx.Done():
			return models.LocationSnapshot{}, ctx.Err()
		}
	}

	if s.snapshot != nil && !forceRefresh {
		snap := *s.snapshot
		s.mu.Unlock()
		return snap, nil
	}

	fl := &inflight{done: make(chan struct{})}
	s.inflight = fl
	generation := s.generation

	// The transitional resolving broadcast is scoped to forced refreshes;
	// a first, non-forced resolution broadcasts only its settled result.
	var subs []subscriber
	transitional := models.LocationSnapshot{IsResolving: true}
	if forceRefresh {
		if s.snapshot != nil {
			transitional = *s.snapshot
			transitional.IsResolving = true
			transitional.HasError = false
		}
		s.snapshot = &transitional
		subs = append([]subscriber(nil), s.subscribers...)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub.listener.OnSnapshot(transitional)
	}

	snap := s.performResolution(ctx)

	s.mu.Lock()
	settled := snap
	fl.snapshot = settled
	if s.generation == generation {
		s.snapshot = &settled
		if s.inflight == fl {
			s.inflight = nil
		}
		subs = append([]subscriber(nil), s.subscribers...)
	} else {
		// Reset happened mid-resolution; the result is discarded.
		subs = nil
	}
	s.mu.Unlock()

	// Subscribers see the settled snapshot before waiters are released.
	for _, sub := range subs {
		sub.listener.OnSnapshot(settled)
	}
	close(fl.done)

	return settled, nil
}

// performResolution runs the full ladder and always produces a settled
// snapshot; failures become error snapshots with a human-readable fallback
// address.
func (s *LocationStore) performResolution(ctx context.Context) models.LocationSnapshot {
	pos, err := s.resolver.resolve(ctx)
	if err != nil {
		text := addressUnavailable
		if errors.Is(err, location.ErrPermissionDenied) {
			text = addressDenied
		}
		logger.Warn("location resolution failed", logger.Err(err))
		return models.LocationSnapshot{
			Address:     models.ResolvedAddress{FreeText: text},
			HasError:    true,
			Initialized: true,
		}
	}

	addr := s.resolver.reverseGeocode(ctx, *pos)

	if s.repo != nil {
		if err := s.repo.StoreLastPosition(ctx, *pos); err != nil {
			logger.Warn("failed to record last position", logger.Err(err))
		}
	}

	return models.LocationSnapshot{
		Position:    pos,
		Address:     addr,
		Initialized: true,
	}
}

// CurrentSnapshot returns the last broadcast snapshot, if any
func (s *LocationStore) CurrentSnapshot() (models.LocationSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return models.LocationSnapshot{}, false
	}
	return *s.snapshot, true
}

// IsInitialized reports whether any resolution has settled
func (s *LocationStore) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot != nil && s.snapshot.Initialized
}

// Reset clears snapshot, in-flight state and the subscriber list. The next
// RequestLocation performs a full resolution.
func (s *LocationStore) Reset() {
	s.mu.Lock()
	s.snapshot = nil
	s.inflight = nil
	s.subscribers = nil
	s.generation++
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Notify(context.Background(), notify.MsgStateReset)
	}
}
