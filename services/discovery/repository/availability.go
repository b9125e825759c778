package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rdwiputra/jasaku/internal/pkg/constants"
	"github.com/rdwiputra/jasaku/internal/pkg/geo"
	"github.com/rdwiputra/jasaku/internal/pkg/logger"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
)

// geohashPrecision ~ neighborhood level cells
const geohashPrecision = 6

// SetAvailability updates the database flag, converges the Redis pool and
// publishes an availability event for other instances.
func (r *ProviderRepo) SetAvailability(ctx context.Context, providerID string, available bool, loc *models.Location) error {
	query := `
		UPDATE providers
		SET available = $2, updated_at = $3
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, providerID, available, time.Now()); err != nil {
		return fmt.Errorf("failed to update availability: %w", err)
	}

	if err := r.applyAvailability(ctx, providerID, available, loc); err != nil {
		return err
	}

	if r.producer != nil {
		event := models.AvailabilityEvent{
			ProviderID: providerID,
			Available:  available,
			Location:   loc,
			Timestamp:  time.Now(),
		}
		if err := r.producer.Publish(constants.TopicAvailabilityUpdates, event); err != nil {
			// The local pool is already converged; downstream instances
			// catch up on the next toggle.
			logger.Warn("failed to publish availability event",
				logger.String("provider_id", providerID),
				logger.Err(err))
		}
	}

	return nil
}

// applyAvailability converges the Redis availability pool for one provider
func (r *ProviderRepo) applyAvailability(ctx context.Context, providerID string, available bool, loc *models.Location) error {
	if !available {
		if err := r.redisClient.SRem(ctx, constants.KeyAvailableProviders, providerID); err != nil {
			return fmt.Errorf("failed to remove provider from pool: %w", err)
		}
		return nil
	}

	if err := r.redisClient.SAdd(ctx, constants.KeyAvailableProviders, providerID); err != nil {
		return fmt.Errorf("failed to add provider to pool: %w", err)
	}

	if loc != nil {
		geoKey := fmt.Sprintf(constants.KeyProviderGeo, providerID)
		fields := map[string]interface{}{
			constants.FieldLatitude:  strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
			constants.FieldLongitude: strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
			constants.FieldGeohash:   geo.Encode(loc.Latitude, loc.Longitude, geohashPrecision),
			constants.FieldTimestamp: strconv.FormatInt(time.Now().Unix(), 10),
		}
		if err := r.redisClient.HSet(ctx, geoKey, fields); err != nil {
			return fmt.Errorf("failed to store provider coordinates: %w", err)
		}
	}

	return nil
}

// ApplyAvailabilityEvent converges the pool from a consumed event
func (r *ProviderRepo) ApplyAvailabilityEvent(ctx context.Context, event models.AvailabilityEvent) error {
	return r.applyAvailability(ctx, event.ProviderID, event.Available, event.Location)
}

// AvailableProviderIDs returns the IDs currently in the pool
func (r *ProviderRepo) AvailableProviderIDs(ctx context.Context) ([]string, error) {
	ids, err := r.redisClient.SMembers(ctx, constants.KeyAvailableProviders)
	if err != nil {
		return nil, fmt.Errorf("failed to read availability pool: %w", err)
	}
	return ids, nil
}
