package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rdwiputra/jasaku/internal/pkg/bound"
	"github.com/rdwiputra/jasaku/internal/pkg/logger"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/internal/pkg/notify"
	"github.com/rdwiputra/jasaku/services/discovery"
)

// Fetch runs a full fetch cycle unless one is already in progress
func (p *Pipeline) Fetch(ctx context.Context) error {
	p.mu.Lock()
	if p.state == discovery.StateFetching || p.state == discovery.StateEnriching {
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	return p.runCycle(ctx, notify.MsgLoadTimedOut)
}

// Refresh forces a full fetch cycle, resetting the page cursor. A cycle
// already in progress is superseded: its late completion is discarded.
func (p *Pipeline) Refresh(ctx context.Context) error {
	return p.runCycle(ctx, notify.MsgRefreshTimedOut)
}

// SetSearchQuery changes the search filter; an actual change resets the
// page cursor and triggers a refetch.
func (p *Pipeline) SetSearchQuery(ctx context.Context, query string) error {
	p.mu.Lock()
	if query == p.search {
		p.mu.Unlock()
		return nil
	}
	p.search = query
	p.mu.Unlock()

	return p.runCycle(ctx, notify.MsgLoadTimedOut)
}

// runCycle performs fetch, ranking and asynchronous enrichment for one
// cycle. timeoutMsg is the user notice emitted when the fetch phase expires.
func (p *Pipeline) runCycle(ctx context.Context, timeoutMsg string) error {
	p.mu.Lock()
	p.cycle++
	cycle := p.cycle
	p.page = 0
	p.state = discovery.StateFetching
	query := discovery.ProviderQuery{
		ExcludeUserID: p.ownerUserID,
		Search:        p.search,
		Offset:        0,
		Limit:         p.pageSize,
	}
	p.mu.Unlock()

	res := bound.Run(ctx, p.fetchTimeout, func(ctx context.Context) ([]models.ProviderRecord, error) {
		return p.backend.ListProviders(ctx, query)
	})

	switch res.Outcome {
	case bound.TimedOut:
		// Prior data is preserved; exactly one notice per expiry.
		if p.settleFailure(cycle, discovery.StateTimedOut) {
			p.notifier.Notify(ctx, timeoutMsg)
		}
		return discovery.ErrFetchTimeout
	case bound.Errored:
		p.settleFailure(cycle, discovery.StateFailed)
		return fmt.Errorf("%w: %v", discovery.ErrFetchFailed, res.Err)
	}

	fetched := res.Value
	if len(fetched) == 0 {
		p.mu.Lock()
		if p.cycle == cycle {
			p.providers = nil
			p.nearbyRanked = false
			p.hasSettled = true
			p.state = discovery.StateSettled
		}
		p.mu.Unlock()
		return nil
	}

	pos := p.currentPosition()
	ranked := AnnotateAndRank(fetched, pos)
	nearby := NearbyFilter(ranked, p.nearbyMinKm, p.nearbyMaxKm)

	display := nearby
	nearbyRanked := len(nearby) > 0
	if !nearbyRanked {
		// Shuffled once here, per cycle, so the displayed order stays put
		// until the next fetch.
		display = FallbackSample(ranked, p.displayLimit, p.rng)
	}

	p.mu.Lock()
	if p.cycle != cycle {
		p.mu.Unlock()
		return nil
	}
	p.providers = display
	p.nearbyRanked = nearbyRanked
	p.hasSettled = true
	p.state = discovery.StateEnriching
	p.mu.Unlock()

	// Enrichment never blocks the caller and never fails the cycle.
	snapshot := cloneRecords(display)
	p.enrichWG.Add(1)
	go func() {
		defer p.enrichWG.Done()
		p.enrich(context.Background(), cycle, snapshot)
	}()

	return nil
}

// settleFailure moves a failed or timed-out cycle to its terminal state,
// preserving previously settled data. Returns false when the cycle was
// superseded meanwhile.
func (p *Pipeline) settleFailure(cycle uint64, state discovery.State) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cycle != cycle {
		return false
	}
	p.state = state
	return true
}

// enrich computes aggregate ratings for the fetched records in fixed-size
// sub-batches: parallel within a batch, batches sequential, bounding
// concurrent outbound calls. Per-record failures are swallowed.
func (p *Pipeline) enrich(ctx context.Context, cycle uint64, records []models.ProviderRecord) {
	for start := 0; start < len(records); start += p.enrichBatchSize {
		end := start + p.enrichBatchSize
		if end > len(records) {
			end = len(records)
		}

		var wg sync.WaitGroup
		for _, record := range records[start:end] {
			wg.Add(1)
			go func(rec models.ProviderRecord) {
				defer wg.Done()
				p.enrichOne(ctx, cycle, rec.ID)
			}(record)
		}
		wg.Wait()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cycle != cycle || p.state != discovery.StateEnriching {
		return
	}
	// Re-apply the ranking so consumers observe one consistent settled list
	// instead of a flicker of per-record updates. The randomized fallback
	// keeps its memoized order.
	if p.nearbyRanked {
		p.providers = AnnotateAndRank(p.providers, p.positionLocked())
	}
	p.state = discovery.StateSettled
}

// enrichOne fetches the reviews of one provider and applies the computed
// rating when the cycle is still current. The review query runs under its
// own deadline so a hung backend cannot keep the cycle in Enriching.
func (p *Pipeline) enrichOne(ctx context.Context, cycle uint64, providerID string) {
	res := bound.Run(ctx, p.enrichTimeout, func(ctx context.Context) ([]models.Review, error) {
		return p.backend.ListReviews(ctx, providerID)
	})
	if res.Outcome != bound.Ok {
		// The record keeps its provisional base rating.
		logger.Debug("rating enrichment failed",
			logger.String("provider_id", providerID),
			logger.Err(res.Err))
		return
	}
	reviews := res.Value
	if len(reviews) == 0 {
		// No reviews yet: ComputedRating stays nil, distinct from a zero
		// rating.
		return
	}

	sum := 0.0
	for _, review := range reviews {
		sum += review.Rating
	}
	rating := math.Round(sum/float64(len(reviews))*10) / 10

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cycle != cycle {
		return
	}
	for i := range p.providers {
		if p.providers[i].ID == providerID {
			p.providers[i].ComputedRating = &rating
			p.providers[i].ReviewCount = len(reviews)
			return
		}
	}
}

// LoadMore appends the next page. Paginated browsing is the fallback UX for
// the no-location / no-nearby case, so it is rejected while a cycle is in
// progress, while a search filter is active, when nearby-ranked results
// are on screen, or before a first cycle has settled.
func (p *Pipeline) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.state == discovery.StateFetching || p.state == discovery.StateEnriching {
		p.mu.Unlock()
		return discovery.ErrLoadMoreUnavailable
	}
	if p.search != "" || p.nearbyRanked {
		p.mu.Unlock()
		return discovery.ErrLoadMoreUnavailable
	}
	if !p.hasSettled {
		// No page zero has been fetched yet; there is nothing to append to.
		p.mu.Unlock()
		return discovery.ErrLoadMoreUnavailable
	}
	cycle := p.cycle
	nextPage := p.page + 1
	p.state = discovery.StateFetching
	query := discovery.ProviderQuery{
		ExcludeUserID: p.ownerUserID,
		Offset:        nextPage * p.pageSize,
		Limit:         p.pageSize,
	}
	p.mu.Unlock()

	res := bound.Run(ctx, p.fetchTimeout, func(ctx context.Context) ([]models.ProviderRecord, error) {
		return p.backend.ListProviders(ctx, query)
	})

	switch res.Outcome {
	case bound.TimedOut:
		if p.settleFailure(cycle, discovery.StateTimedOut) {
			p.notifier.Notify(ctx, notify.MsgLoadTimedOut)
		}
		return discovery.ErrFetchTimeout
	case bound.Errored:
		p.settleFailure(cycle, discovery.StateFailed)
		return fmt.Errorf("%w: %v", discovery.ErrFetchFailed, res.Err)
	}

	fetched := res.Value
	if len(fetched) == 0 {
		p.mu.Lock()
		if p.cycle == cycle {
			p.state = discovery.StateSettled
		}
		p.mu.Unlock()
		return nil
	}

	// Page entries are enriched before they are merged: parallel within a
	// sub-batch, sub-batches sequential.
	p.enrichRecords(ctx, fetched)

	pos := p.currentPosition()
	annotated := AnnotateAndRank(fetched, pos)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cycle != cycle {
		// A refresh superseded this page; discard it.
		return nil
	}
	p.page = nextPage
	if pos != nil {
		p.providers = insertByDistance(p.providers, annotated)
	} else {
		p.providers = append(p.providers, annotated...)
	}
	p.state = discovery.StateSettled
	return nil
}

// enrichRecords mutates the given records in place with computed ratings
func (p *Pipeline) enrichRecords(ctx context.Context, records []models.ProviderRecord) {
	for start := 0; start < len(records); start += p.enrichBatchSize {
		end := start + p.enrichBatchSize
		if end > len(records) {
			end = len(records)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				res := bound.Run(ctx, p.enrichTimeout, func(ctx context.Context) ([]models.Review, error) {
					return p.backend.ListReviews(ctx, records[idx].ID)
				})
				reviews := res.Value
				if res.Outcome != bound.Ok || len(reviews) == 0 {
					return
				}
				sum := 0.0
				for _, review := range reviews {
					sum += review.Rating
				}
				rating := math.Round(sum/float64(len(reviews))*10) / 10
				records[idx].ComputedRating = &rating
				records[idx].ReviewCount = len(reviews)
			}(i)
		}
		wg.Wait()
	}
}

// insertByDistance inserts each entry at its distance rank while strictly
// preserving the relative order of the existing list. Unknown distances go
// to the end.
func insertByDistance(existing, entries []models.ProviderRecord) []models.ProviderRecord {
	out := existing
	for _, entry := range entries {
		if entry.DistanceKm == nil {
			out = append(out, entry)
			continue
		}
		idx := len(out)
		for i := range out {
			if out[i].DistanceKm == nil || *out[i].DistanceKm > *entry.DistanceKm {
				idx = i
				break
			}
		}
		out = append(out, models.ProviderRecord{})
		copy(out[idx+1:], out[idx:])
		out[idx] = entry
	}
	return out
}

// Detail returns a provider record. A fresh cache entry is served directly;
// a miss falls back to a live fetch that repopulates the cache, producing
// the same eventual data either way.
func (p *Pipeline) Detail(ctx context.Context, id string) (*models.ProviderRecord, error) {
	if record, ok := p.cache.Get(id); ok {
		return record, nil
	}

	record, err := p.backend.GetProvider(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get provider %s: %w", id, err)
	}
	p.cache.Put(id, *record)

	out := record.Clone()
	return &out, nil
}

// Providers returns a copy of the currently settled list
func (p *Pipeline) Providers() []models.ProviderRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return cloneRecords(p.providers)
}

// State returns the current pipeline phase
func (p *Pipeline) State() discovery.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// OnBackground records the moment the app left the foreground
func (p *Pipeline) OnBackground() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.backgroundedAt = p.clock.Now()
}

// OnForeground refreshes only when the app was backgrounded for longer than
// the resume threshold; shorter absences do nothing.
func (p *Pipeline) OnForeground(ctx context.Context) error {
	p.mu.Lock()
	backgroundedAt := p.backgroundedAt
	p.backgroundedAt = time.Time{}
	p.mu.Unlock()

	if backgroundedAt.IsZero() {
		return nil
	}
	if p.clock.Since(backgroundedAt) <= p.resumeAfter {
		return nil
	}
	return p.Refresh(ctx)
}

func (p *Pipeline) currentPosition() *models.Position {
	if p.position == nil {
		return nil
	}
	return p.position.Position()
}

// positionLocked is currentPosition for call sites already holding p.mu;
// the position source has its own synchronization.
func (p *Pipeline) positionLocked() *models.Position {
	if p.position == nil {
		return nil
	}
	return p.position.Position()
}

func cloneRecords(records []models.ProviderRecord) []models.ProviderRecord {
	out := make([]models.ProviderRecord, len(records))
	for i, record := range records {
		out[i] = record.Clone()
	}
	return out
}
