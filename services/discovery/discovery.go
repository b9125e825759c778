package discovery

import (
	"context"

	"github.com/rdwiputra/jasaku/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_discovery.go -package=mocks github.com/rdwiputra/jasaku/services/discovery ProviderBackend,AvailabilityRepo
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/rdwiputra/jasaku/services/discovery DiscoveryUC

// State names the pipeline phase of the current fetch cycle
type State int

const (
	StateIdle State = iota
	StateFetching
	StateEnriching
	StateSettled
	StateFailed
	StateTimedOut
)

// String returns the lowercase phase name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateEnriching:
		return "enriching"
	case StateSettled:
		return "settled"
	case StateFailed:
		return "failed"
	case StateTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// ProviderQuery describes a provider list fetch
type ProviderQuery struct {
	// ExcludeUserID removes the requesting identity's own listing
	ExcludeUserID string
	// Search filters on service tags; empty means no filter
	Search string
	Offset int
	Limit  int
}

// ProviderBackend is the remote data source for provider records. The core
// treats it purely as a request/response collaborator.
type ProviderBackend interface {
	// ListProviders returns available providers ordered by recency.
	ListProviders(ctx context.Context, q ProviderQuery) ([]models.ProviderRecord, error)

	// ListReviews returns all reviews for one provider.
	ListReviews(ctx context.Context, providerID string) ([]models.Review, error)

	// GetProvider returns the detailed record for one provider.
	GetProvider(ctx context.Context, id string) (*models.ProviderRecord, error)
}

// AvailabilityRepo maintains the availability pool
type AvailabilityRepo interface {
	SetAvailability(ctx context.Context, providerID string, available bool, loc *models.Location) error
	AvailableProviderIDs(ctx context.Context) ([]string, error)
}

// PositionSource supplies the current device position, or nil when no
// position signal exists.
type PositionSource interface {
	Position() *models.Position
}

// DiscoveryUC is the provider discovery pipeline contract
type DiscoveryUC interface {
	// Fetch runs a full fetch cycle if none is in progress.
	Fetch(ctx context.Context) error

	// Refresh forces a full fetch cycle, resetting the page cursor.
	Refresh(ctx context.Context) error

	// LoadMore appends the next page; only valid when idle-settled, no
	// search filter is active and no nearby-ranked results exist.
	LoadMore(ctx context.Context) error

	// SetSearchQuery changes the search filter and refetches when it changed.
	SetSearchQuery(ctx context.Context, query string) error

	// Detail returns a provider record, served from the short-term cache
	// when fresh and fetched live otherwise.
	Detail(ctx context.Context, id string) (*models.ProviderRecord, error)

	// Providers returns a copy of the currently settled list.
	Providers() []models.ProviderRecord

	// State returns the current pipeline phase.
	State() State

	// OnBackground records the moment the app left the foreground.
	OnBackground()

	// OnForeground refreshes if the app was backgrounded long enough.
	OnForeground(ctx context.Context) error
}
