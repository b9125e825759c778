package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/services/discovery"
)

// providerRow maps the providers table. Service tags are stored as a
// comma-separated string and split on read.
type providerRow struct {
	ID          string          `db:"id"`
	OwnerUserID string          `db:"owner_user_id"`
	ServiceTags string          `db:"service_tags"`
	Available   bool            `db:"available"`
	BaseRating  float64         `db:"base_rating"`
	ReviewCount int             `db:"review_count"`
	Latitude    sql.NullFloat64 `db:"latitude"`
	Longitude   sql.NullFloat64 `db:"longitude"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (row providerRow) toRecord() models.ProviderRecord {
	record := models.ProviderRecord{
		ID:          row.ID,
		OwnerUserID: row.OwnerUserID,
		Available:   row.Available,
		BaseRating:  row.BaseRating,
		ReviewCount: row.ReviewCount,
		CreatedAt:   row.CreatedAt,
	}
	if row.ServiceTags != "" {
		record.ServiceTags = strings.Split(row.ServiceTags, ",")
	}
	if row.Latitude.Valid && row.Longitude.Valid {
		record.Location = &models.Location{
			Latitude:  row.Latitude.Float64,
			Longitude: row.Longitude.Float64,
		}
	}
	return record
}

// ListProviders returns available providers ordered by recency, excluding
// the requesting identity's own listing.
func (r *ProviderRepo) ListProviders(ctx context.Context, q discovery.ProviderQuery) ([]models.ProviderRecord, error) {
	query := `
		SELECT id, owner_user_id, service_tags, available, base_rating,
			review_count, latitude, longitude, created_at
		FROM providers
		WHERE available = TRUE
		  AND owner_user_id <> $1
		  AND ($2 = '' OR service_tags ILIKE '%' || $2 || '%')
		ORDER BY created_at DESC
		OFFSET $3 LIMIT $4
	`

	var rows []providerRow
	if err := r.db.SelectContext(ctx, &rows, query, q.ExcludeUserID, q.Search, q.Offset, q.Limit); err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	records := make([]models.ProviderRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toRecord()
	}
	return records, nil
}

// ListReviews returns all reviews for a provider
func (r *ProviderRepo) ListReviews(ctx context.Context, providerID string) ([]models.Review, error) {
	query := `
		SELECT id, provider_id, rating, comment, created_at
		FROM reviews
		WHERE provider_id = $1
		ORDER BY created_at DESC
	`

	var reviews []models.Review
	if err := r.db.SelectContext(ctx, &reviews, query, providerID); err != nil {
		return nil, fmt.Errorf("failed to list reviews for provider %s: %w", providerID, err)
	}
	return reviews, nil
}

// GetProvider returns the detailed record for one provider
func (r *ProviderRepo) GetProvider(ctx context.Context, id string) (*models.ProviderRecord, error) {
	query := `
		SELECT id, owner_user_id, service_tags, available, base_rating,
			review_count, latitude, longitude, created_at
		FROM providers
		WHERE id = $1
	`

	var row providerRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("provider %s not found", id)
		}
		return nil, fmt.Errorf("failed to get provider %s: %w", id, err)
	}

	record := row.toRecord()
	return &record, nil
}
