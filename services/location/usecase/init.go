package usecase

import (
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/internal/pkg/notify"
	"github.com/rdwiputra/jasaku/services/location"
)

// LocationStore owns the single current LocationSnapshot for the process.
// It is constructed once at startup and handed to consumers explicitly.
type LocationStore struct {
	mu       sync.Mutex
	resolver *positionResolver
	repo     location.PositionRepo
	notifier notify.Notifier

	subscribers []subscriber
	nextSubID   int
	snapshot    *models.LocationSnapshot
	inflight    *inflight
	// generation invalidates in-flight resolutions across Reset boundaries
	generation int
}

type subscriber struct {
	id       int
	listener location.Listener
}

// inflight represents the single resolution allowed to be in flight at a
// time. Waiters block on done and then read snapshot.
type inflight struct {
	done     chan struct{}
	snapshot models.LocationSnapshot
}

// NewLocationStore creates the location store. repo may be nil when no
// position trail is wired; notifier may be nil when no notice surface exists.
func NewLocationStore(
	geolocator location.Geolocator,
	repo location.PositionRepo,
	notifier notify.Notifier,
	clock clockwork.Clock,
) *LocationStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &LocationStore{
		resolver: newPositionResolver(geolocator, clock),
		repo:     repo,
		notifier: notifier,
	}
}
