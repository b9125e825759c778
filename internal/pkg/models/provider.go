package models

import "time"

// ProviderRecord represents a service provider as shown on the discovery
// screen. ComputedRating stays nil until the rating enrichment pass has run
// for the record; consumers treat BaseRating as the provisional value.
// DistanceKm is nil when either the device position or the provider
// coordinates are unknown.
type ProviderRecord struct {
	ID             string    `json:"id"`
	OwnerUserID    string    `json:"owner_user_id"`
	ServiceTags    []string  `json:"service_tags"`
	Available      bool      `json:"available"`
	BaseRating     float64   `json:"base_rating"`
	ComputedRating *float64  `json:"computed_rating,omitempty"`
	ReviewCount    int       `json:"review_count"`
	Location       *Location `json:"location,omitempty"`
	DistanceKm     *float64  `json:"distance_km,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Clone returns a deep copy so callers cannot mutate shared pipeline or
// cache state through returned records.
func (p ProviderRecord) Clone() ProviderRecord {
	out := p
	if p.ServiceTags != nil {
		out.ServiceTags = append([]string(nil), p.ServiceTags...)
	}
	if p.ComputedRating != nil {
		v := *p.ComputedRating
		out.ComputedRating = &v
	}
	if p.Location != nil {
		loc := *p.Location
		out.Location = &loc
	}
	if p.DistanceKm != nil {
		d := *p.DistanceKm
		out.DistanceKm = &d
	}
	return out
}

// Review represents a single customer review of a provider
type Review struct {
	ID         string    `json:"id" db:"id"`
	ProviderID string    `json:"provider_id" db:"provider_id"`
	Rating     float64   `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// AvailabilityEvent is published when a provider toggles availability
type AvailabilityEvent struct {
	ProviderID string    `json:"provider_id"`
	Available  bool      `json:"available"`
	Location   *Location `json:"location,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
