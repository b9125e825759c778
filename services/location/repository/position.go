package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rdwiputra/jasaku/internal/pkg/constants"
	"github.com/rdwiputra/jasaku/internal/pkg/database"
	"github.com/rdwiputra/jasaku/internal/pkg/geo"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/services/location"
)

const (
	// positionTTL keeps the diagnostic trail for a day
	positionTTL = 24 * time.Hour

	// geohashPrecision ~ neighborhood level cells
	geohashPrecision = 6
)

type positionRepo struct {
	redisClient *database.RedisClient
}

// NewPositionRepo creates the Redis-backed last-position trail
func NewPositionRepo(redisClient *database.RedisClient) location.PositionRepo {
	return &positionRepo{redisClient: redisClient}
}

// StoreLastPosition writes the resolved position to the trail hash
func (r *positionRepo) StoreLastPosition(ctx context.Context, pos models.Position) error {
	fields := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(pos.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(pos.Longitude, 'f', -1, 64),
		constants.FieldAccuracy:  string(pos.Accuracy),
		constants.FieldGeohash:   geo.Encode(pos.Latitude, pos.Longitude, geohashPrecision),
		constants.FieldTimestamp: strconv.FormatInt(pos.CapturedAt.Unix(), 10),
	}

	if err := r.redisClient.HSet(ctx, constants.KeyLastPosition, fields); err != nil {
		return fmt.Errorf("failed to store last position: %w", err)
	}
	if err := r.redisClient.Expire(ctx, constants.KeyLastPosition, positionTTL); err != nil {
		return fmt.Errorf("failed to set position TTL: %w", err)
	}
	return nil
}

// LastPosition reads the trail hash back, if present
func (r *positionRepo) LastPosition(ctx context.Context) (*models.Position, error) {
	values, err := r.redisClient.HMGet(ctx, constants.KeyLastPosition,
		constants.FieldLatitude,
		constants.FieldLongitude,
		constants.FieldAccuracy,
		constants.FieldTimestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get last position: %w", err)
	}

	hasValue := false
	for _, v := range values {
		if v != "" {
			hasValue = true
			break
		}
	}
	if !hasValue || len(values) != 4 {
		return nil, fmt.Errorf("no position recorded")
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	ts, err := strconv.ParseInt(values[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.Position{
		Latitude:   lat,
		Longitude:  lng,
		Accuracy:   models.AccuracyTier(values[2]),
		CapturedAt: time.Unix(ts, 0),
	}, nil
}
