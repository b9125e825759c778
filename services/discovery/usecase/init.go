package usecase

import (
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/internal/pkg/notify"
	"github.com/rdwiputra/jasaku/services/discovery"
)

// Pipeline orchestrates the provider discovery flow: remote fetch,
// progressive rating enrichment, distance ranking, pagination and the
// short-term detail cache.
type Pipeline struct {
	mu       sync.Mutex
	backend  discovery.ProviderBackend
	cache    *ProviderCache
	position discovery.PositionSource
	notifier notify.Notifier
	clock    clockwork.Clock
	rng      *rand.Rand

	ownerUserID string

	pageSize        int
	displayLimit    int
	nearbyMinKm     float64
	nearbyMaxKm     float64
	enrichBatchSize int
	fetchTimeout    time.Duration
	enrichTimeout   time.Duration
	resumeAfter     time.Duration

	state        discovery.State
	providers    []models.ProviderRecord
	nearbyRanked bool
	hasSettled   bool
	page         int
	search       string

	// cycle invalidates late completions of superseded fetches
	cycle uint64

	backgroundedAt time.Time

	enrichWG sync.WaitGroup
}

// NewPipeline creates the discovery pipeline. ownerUserID is the requesting
// identity excluded from listings. A nil clock uses real time.
func NewPipeline(
	backend discovery.ProviderBackend,
	position discovery.PositionSource,
	notifier notify.Notifier,
	cfg models.DiscoveryConfig,
	ownerUserID string,
	clock clockwork.Clock,
) *Pipeline {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if notifier == nil {
		notifier = notify.LoggerNotifier{}
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.DisplayLimit <= 0 {
		cfg.DisplayLimit = 10
	}
	if cfg.NearbyMaxKm <= 0 {
		cfg.NearbyMaxKm = 15.0
	}
	if cfg.NearbyMinKm <= 0 {
		cfg.NearbyMinKm = 0.1
	}
	if cfg.EnrichBatchSize <= 0 {
		cfg.EnrichBatchSize = 5
	}
	if cfg.FetchTimeoutSec <= 0 {
		cfg.FetchTimeoutSec = 20
	}
	if cfg.EnrichTimeoutSec <= 0 {
		cfg.EnrichTimeoutSec = 5
	}
	if cfg.ResumeAfterMin <= 0 {
		cfg.ResumeAfterMin = 5
	}
	if cfg.CacheTTLMin <= 0 {
		cfg.CacheTTLMin = 15
	}

	return &Pipeline{
		backend:         backend,
		cache:           NewProviderCache(time.Duration(cfg.CacheTTLMin)*time.Minute, clock),
		position:        position,
		notifier:        notifier,
		clock:           clock,
		rng:             rand.New(rand.NewSource(clock.Now().UnixNano())),
		ownerUserID:     ownerUserID,
		pageSize:        cfg.PageSize,
		displayLimit:    cfg.DisplayLimit,
		nearbyMinKm:     cfg.NearbyMinKm,
		nearbyMaxKm:     cfg.NearbyMaxKm,
		enrichBatchSize: cfg.EnrichBatchSize,
		fetchTimeout:    time.Duration(cfg.FetchTimeoutSec) * time.Second,
		enrichTimeout:   time.Duration(cfg.EnrichTimeoutSec) * time.Second,
		resumeAfter:     time.Duration(cfg.ResumeAfterMin) * time.Minute,
		state:           discovery.StateIdle,
	}
}

// Cache exposes the detail cache for wiring a periodic sweep
func (p *Pipeline) Cache() *ProviderCache {
	return p.cache
}
