package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rdwiputra/jasaku/internal/pkg/bound"
	"github.com/rdwiputra/jasaku/internal/pkg/logger"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/services/location"
)

const (
	// balancedAcquireTimeout bounds the first, higher-accuracy attempt
	balancedAcquireTimeout = 10 * time.Second
	// lowAcquireTimeout bounds the degraded fallback attempt
	lowAcquireTimeout = 8 * time.Second
	// geocodeTimeout bounds the best-effort reverse geocode
	geocodeTimeout = 5 * time.Second

	// fallbackAddressText is used when geocoding fails but a fix exists
	fallbackAddressText = "Location found"
)

// positionResolver applies the timeout-bounded, accuracy-degrading retry
// ladder over the device geolocation capability.
type positionResolver struct {
	geolocator location.Geolocator
	clock      clockwork.Clock
}

func newPositionResolver(geolocator location.Geolocator, clock clockwork.Clock) *positionResolver {
	return &positionResolver{geolocator: geolocator, clock: clock}
}

// resolve attempts a balanced-accuracy fix first, then degrades to the low
// tier. A (0,0) fix is rejected as the platform "no fix" sentinel.
func (r *positionResolver) resolve(ctx context.Context) (*models.Position, error) {
	granted, err := r.geolocator.RequestPermission(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", location.ErrPermissionDenied, err)
	}
	if !granted {
		return nil, location.ErrPermissionDenied
	}

	pos, firstErr := r.acquire(ctx, models.AccuracyBalanced, balancedAcquireTimeout)
	if firstErr == nil {
		return pos, nil
	}

	logger.Warn("balanced-tier acquisition failed, degrading",
		logger.Err(firstErr))

	pos, secondErr := r.acquire(ctx, models.AccuracyLow, lowAcquireTimeout)
	if secondErr == nil {
		return pos, nil
	}

	return nil, secondErr
}

func (r *positionResolver) acquire(ctx context.Context, tier models.AccuracyTier, timeout time.Duration) (*models.Position, error) {
	res := bound.Run(ctx, timeout, func(ctx context.Context) (*models.Position, error) {
		return r.geolocator.CurrentPosition(ctx, tier)
	})

	switch res.Outcome {
	case bound.TimedOut:
		return nil, fmt.Errorf("%w: %s tier", location.ErrPositionTimeout, tier)
	case bound.Errored:
		return nil, fmt.Errorf("failed to acquire position at %s tier: %w", tier, res.Err)
	}

	pos := res.Value
	if pos == nil || pos.IsZero() {
		return nil, location.ErrPositionInvalid
	}

	fixed := *pos
	fixed.Accuracy = tier
	fixed.CapturedAt = r.clock.Now()
	return &fixed, nil
}

// reverseGeocode is best-effort: failure degrades the free text to a
// generic placeholder and never fails the caller.
func (r *positionResolver) reverseGeocode(ctx context.Context, pos models.Position) models.ResolvedAddress {
	res := bound.Run(ctx, geocodeTimeout, func(ctx context.Context) (*models.ResolvedAddress, error) {
		return r.geolocator.ReverseGeocode(ctx, pos.Latitude, pos.Longitude)
	})

	if res.Outcome != bound.Ok || res.Value == nil {
		if res.Err != nil {
			logger.Debug("reverse geocode failed", logger.Err(res.Err))
		}
		return models.ResolvedAddress{FreeText: fallbackAddressText}
	}

	addr := *res.Value
	if addr.FreeText == "" {
		addr.FreeText = composeAddress(addr.Subregion, addr.Region)
	}
	if addr.FreeText == "" {
		addr.FreeText = fallbackAddressText
	}
	return addr
}

// composeAddress joins subregion and region, omitting the comma when the
// subregion is empty.
func composeAddress(subregion, region string) string {
	subregion = strings.TrimSpace(subregion)
	region = strings.TrimSpace(region)

	if subregion == "" {
		return region
	}
	if region == "" {
		return subregion
	}
	return subregion + ", " + region
}
