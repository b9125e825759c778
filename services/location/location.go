package location

import (
	"context"

	"github.com/rdwiputra/jasaku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_location.go -package=mocks github.com/rdwiputra/jasaku/services/location Geolocator,PositionRepo,LocationUC

// Geolocator is the device geolocation/geocoding capability. Calls may
// reject; the usecase owns the timeout and accuracy-fallback ladder.
type Geolocator interface {
	// RequestPermission asks for location permission, reporting whether it
	// was granted.
	RequestPermission(ctx context.Context) (bool, error)

	// CurrentPosition acquires a fix at the given accuracy tier.
	CurrentPosition(ctx context.Context, tier models.AccuracyTier) (*models.Position, error)

	// ReverseGeocode converts coordinates to a human-readable address.
	ReverseGeocode(ctx context.Context, lat, lng float64) (*models.ResolvedAddress, error)
}

// Listener receives location snapshot broadcasts
type Listener interface {
	OnSnapshot(snapshot models.LocationSnapshot)
}

// ListenerFunc adapts a function to the Listener interface
type ListenerFunc func(snapshot models.LocationSnapshot)

// OnSnapshot calls the wrapped function
func (f ListenerFunc) OnSnapshot(snapshot models.LocationSnapshot) {
	f(snapshot)
}

// PositionRepo persists the last resolved position for diagnostics
type PositionRepo interface {
	StoreLastPosition(ctx context.Context, pos models.Position) error
	LastPosition(ctx context.Context) (*models.Position, error)
}

// LocationUC is the process-wide location state contract
type LocationUC interface {
	// Subscribe registers a listener and returns its unsubscribe function.
	// If a snapshot already exists the listener fires immediately with it.
	Subscribe(l Listener) func()

	// RequestLocation resolves the device position. Concurrent calls
	// coalesce onto one in-flight resolution; when a snapshot exists and
	// forceRefresh is false it is returned without touching hardware.
	RequestLocation(ctx context.Context, forceRefresh bool) (models.LocationSnapshot, error)

	// CurrentSnapshot returns the last broadcast snapshot, if any.
	CurrentSnapshot() (models.LocationSnapshot, bool)

	// IsInitialized reports whether any resolution has settled.
	IsInitialized() bool

	// Reset clears snapshot, in-flight state and subscribers. Used only at
	// account-logout boundaries.
	Reset()
}
