package models

import "time"

// AccuracyTier names a precision/power tradeoff level for geolocation
// acquisition. Balanced is tried first; Low is the degraded fallback.
type AccuracyTier string

const (
	AccuracyBalanced AccuracyTier = "balanced"
	AccuracyLow      AccuracyTier = "low"
)

// Location represents a plain coordinate pair
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Position is a device fix captured at a given accuracy tier. It is
// immutable once captured and replaced wholesale on refresh.
type Position struct {
	Latitude   float64      `json:"latitude"`
	Longitude  float64      `json:"longitude"`
	Accuracy   AccuracyTier `json:"accuracy"`
	CapturedAt time.Time    `json:"captured_at"`
}

// IsZero reports whether the fix carries the (0,0) "no fix" sentinel
func (p Position) IsZero() bool {
	return p.Latitude == 0 && p.Longitude == 0
}

// ResolvedAddress is the human-readable form of a Position. It may be
// empty when reverse geocoding fails; the Position stays usable without it.
type ResolvedAddress struct {
	FreeText  string `json:"free_text"`
	Region    string `json:"region"`
	Subregion string `json:"subregion"`
}

// LocationSnapshot is the unit broadcast to location subscribers: the last
// resolved position plus its address and resolution flags.
type LocationSnapshot struct {
	Position    *Position       `json:"position,omitempty"`
	Address     ResolvedAddress `json:"address"`
	HasError    bool            `json:"has_error"`
	IsResolving bool            `json:"is_resolving"`
	Initialized bool            `json:"initialized"`
}
