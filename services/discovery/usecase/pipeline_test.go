package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/internal/pkg/notify"
	"github.com/rdwiputra/jasaku/services/discovery"
	"github.com/rdwiputra/jasaku/services/discovery/mocks"
	"github.com/stretchr/testify/assert"
)

type fakePositionSource struct {
	pos *models.Position
}

func (f *fakePositionSource) Position() *models.Position {
	if f.pos == nil {
		return nil
	}
	pos := *f.pos
	return &pos
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

func testConfig() models.DiscoveryConfig {
	return models.DiscoveryConfig{
		PageSize:        10,
		DisplayLimit:    10,
		NearbyMinKm:     0.1,
		NearbyMaxKm:     15.0,
		EnrichBatchSize: 5,
		FetchTimeoutSec: 1,
		ResumeAfterMin:  5,
		CacheTTLMin:     15,
	}
}

func jakartaPosition() *models.Position {
	return &models.Position{Latitude: -6.2088, Longitude: 106.8456}
}

func TestFetch_NearbyRankedAndEnriched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return([]models.ProviderRecord{
		{ID: "far", Location: &models.Location{Latitude: -6.3, Longitude: 106.9}},
		{ID: "near", Location: &models.Location{Latitude: -6.21, Longitude: 106.85}},
		{ID: "nowhere"},
	}, nil)
	backend.EXPECT().ListReviews(gomock.Any(), "near").Return([]models.Review{
		{Rating: 4.0}, {Rating: 5.0},
	}, nil)
	backend.EXPECT().ListReviews(gomock.Any(), "far").Return(nil, nil)

	p := NewPipeline(backend, &fakePositionSource{pos: jakartaPosition()}, nil, testConfig(), "", clockwork.NewFakeClock())

	err := p.Fetch(context.Background())
	assert.NoError(t, err)
	p.enrichWG.Wait()

	assert.Equal(t, discovery.StateSettled, p.State())

	providers := p.Providers()
	assert.Len(t, providers, 2)
	assert.Equal(t, "near", providers[0].ID)
	assert.Equal(t, "far", providers[1].ID)

	// 4.0 and 5.0 average to 4.5
	assert.NotNil(t, providers[0].ComputedRating)
	assert.Equal(t, 4.5, *providers[0].ComputedRating)
	assert.Equal(t, 2, providers[0].ReviewCount)

	// No reviews yet: rating stays provisional
	assert.Nil(t, providers[1].ComputedRating)
}

func TestFetch_EnrichmentFailureKeepsBaseRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return([]models.ProviderRecord{
		{ID: "p1", BaseRating: 4.2, Location: &models.Location{Latitude: -6.21, Longitude: 106.85}},
	}, nil)
	backend.EXPECT().ListReviews(gomock.Any(), "p1").Return(nil, errors.New("reviews unavailable"))

	p := NewPipeline(backend, &fakePositionSource{pos: jakartaPosition()}, nil, testConfig(), "", clockwork.NewFakeClock())

	err := p.Fetch(context.Background())
	assert.NoError(t, err)
	p.enrichWG.Wait()

	providers := p.Providers()
	assert.Len(t, providers, 1)
	assert.Equal(t, 4.2, providers[0].BaseRating)
	assert.Nil(t, providers[0].ComputedRating)
	assert.Equal(t, discovery.StateSettled, p.State())
}

func TestFetch_HungEnrichmentStillSettles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	defer close(release)

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return([]models.ProviderRecord{
		{ID: "p1", BaseRating: 4.1, Location: &models.Location{Latitude: -6.21, Longitude: 106.85}},
	}, nil)
	backend.EXPECT().ListReviews(gomock.Any(), "p1").DoAndReturn(
		func(ctx context.Context, providerID string) ([]models.Review, error) {
			<-release
			return nil, nil
		})
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return(nil, nil)

	cfg := testConfig()
	cfg.EnrichTimeoutSec = 1
	p := NewPipeline(backend, &fakePositionSource{pos: jakartaPosition()}, nil, cfg, "", clockwork.NewFakeClock())

	err := p.Fetch(context.Background())
	assert.NoError(t, err)
	p.enrichWG.Wait()

	// A review query that never returns expires on its own deadline; the
	// cycle still reaches Settled and the record keeps its base rating.
	assert.Equal(t, discovery.StateSettled, p.State())
	providers := p.Providers()
	assert.Len(t, providers, 1)
	assert.Equal(t, 4.1, providers[0].BaseRating)
	assert.Nil(t, providers[0].ComputedRating)

	// The pipeline is not wedged: a follow-up fetch runs a new cycle.
	assert.NoError(t, p.Fetch(context.Background()))
}

func TestFetch_EmptyResultSettles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return(nil, nil)

	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clockwork.NewFakeClock())

	err := p.Fetch(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, discovery.StateSettled, p.State())
	assert.Empty(t, p.Providers())
}

func TestRefresh_TimeoutPreservesPriorDataAndNotifiesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return([]models.ProviderRecord{
		{ID: "p1", Location: &models.Location{Latitude: -6.21, Longitude: 106.85}},
	}, nil)
	backend.EXPECT().ListReviews(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, q discovery.ProviderQuery) ([]models.ProviderRecord, error) {
			time.Sleep(1500 * time.Millisecond)
			return nil, nil
		})

	notifier := &recordingNotifier{}
	p := NewPipeline(backend, &fakePositionSource{pos: jakartaPosition()}, notifier, testConfig(), "", clockwork.NewFakeClock())

	err := p.Fetch(context.Background())
	assert.NoError(t, err)
	p.enrichWG.Wait()

	err = p.Refresh(context.Background())
	assert.ErrorIs(t, err, discovery.ErrFetchTimeout)

	assert.Equal(t, discovery.StateTimedOut, p.State())
	// The stale-but-valid list stays on screen
	assert.Len(t, p.Providers(), 1)
	assert.Equal(t, []string{notify.MsgRefreshTimedOut}, notifier.Messages())
}

func TestRefresh_FailurePreservesPriorData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return([]models.ProviderRecord{
		{ID: "p1", Location: &models.Location{Latitude: -6.21, Longitude: 106.85}},
	}, nil)
	backend.EXPECT().ListReviews(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return(nil, errors.New("backend down"))

	notifier := &recordingNotifier{}
	p := NewPipeline(backend, &fakePositionSource{pos: jakartaPosition()}, notifier, testConfig(), "", clockwork.NewFakeClock())

	err := p.Fetch(context.Background())
	assert.NoError(t, err)
	p.enrichWG.Wait()

	err = p.Refresh(context.Background())
	assert.ErrorIs(t, err, discovery.ErrFetchFailed)

	assert.Equal(t, discovery.StateFailed, p.State())
	assert.Len(t, p.Providers(), 1)
	// Failures are not timeouts; no notice is emitted
	assert.Empty(t, notifier.Messages())
}

func TestFetch_NoPositionFallsBackToSample(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return([]models.ProviderRecord{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}, nil)
	backend.EXPECT().ListReviews(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clockwork.NewFakeClock())

	err := p.Fetch(context.Background())
	assert.NoError(t, err)
	p.enrichWG.Wait()

	first := p.Providers()
	assert.Len(t, first, 3)

	// The shuffled order is memoized for the cycle; repeated reads agree
	second := p.Providers()
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestLoadMore_AppendsNextPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return([]models.ProviderRecord{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}, nil)
	backend.EXPECT().ListReviews(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, q discovery.ProviderQuery) ([]models.ProviderRecord, error) {
			assert.Equal(t, 10, q.Offset)
			assert.Equal(t, 10, q.Limit)
			return []models.ProviderRecord{{ID: "d"}, {ID: "e"}}, nil
		})

	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clockwork.NewFakeClock())

	err := p.Fetch(context.Background())
	assert.NoError(t, err)
	p.enrichWG.Wait()

	err = p.LoadMore(context.Background())
	assert.NoError(t, err)

	assert.Len(t, p.Providers(), 5)
	assert.Equal(t, discovery.StateSettled, p.State())
}

func TestLoadMore_EmptyPageKeepsCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return([]models.ProviderRecord{
		{ID: "a"},
	}, nil)
	backend.EXPECT().ListReviews(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)

	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clockwork.NewFakeClock())

	err := p.Fetch(context.Background())
	assert.NoError(t, err)
	p.enrichWG.Wait()

	// An exhausted page does not advance the cursor; the next attempt asks
	// for the same offset again.
	assert.NoError(t, p.LoadMore(context.Background()))
	assert.NoError(t, p.LoadMore(context.Background()))
	assert.Len(t, p.Providers(), 1)
}

func TestLoadMore_RejectedBeforeFirstFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clockwork.NewFakeClock())

	// Page zero has never been fetched; there is no list to extend.
	err := p.LoadMore(context.Background())
	assert.ErrorIs(t, err, discovery.ErrLoadMoreUnavailable)
}

func TestLoadMore_RejectedWhenNearbyRanked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return([]models.ProviderRecord{
		{ID: "near", Location: &models.Location{Latitude: -6.21, Longitude: 106.85}},
	}, nil)
	backend.EXPECT().ListReviews(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	p := NewPipeline(backend, &fakePositionSource{pos: jakartaPosition()}, nil, testConfig(), "", clockwork.NewFakeClock())

	err := p.Fetch(context.Background())
	assert.NoError(t, err)
	p.enrichWG.Wait()

	err = p.LoadMore(context.Background())
	assert.ErrorIs(t, err, discovery.ErrLoadMoreUnavailable)
}

func TestLoadMore_RejectedWhileSearchActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, q discovery.ProviderQuery) ([]models.ProviderRecord, error) {
			assert.Equal(t, "plumbing", q.Search)
			return []models.ProviderRecord{{ID: "a"}}, nil
		})
	backend.EXPECT().ListReviews(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clockwork.NewFakeClock())

	err := p.SetSearchQuery(context.Background(), "plumbing")
	assert.NoError(t, err)
	p.enrichWG.Wait()

	err = p.LoadMore(context.Background())
	assert.ErrorIs(t, err, discovery.ErrLoadMoreUnavailable)
}

func TestSetSearchQuery_UnchangedIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)

	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clockwork.NewFakeClock())

	// Empty to empty: no fetch
	assert.NoError(t, p.SetSearchQuery(context.Background(), ""))
}

func TestDetail_CachesLiveFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().GetProvider(gomock.Any(), "p1").Return(&models.ProviderRecord{
		ID: "p1", BaseRating: 4.8,
	}, nil).Times(1)

	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clockwork.NewFakeClock())

	first, err := p.Detail(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, 4.8, first.BaseRating)

	// Served from the cache, no second round trip
	second, err := p.Detail(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestDetail_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().GetProvider(gomock.Any(), "missing").Return(nil, errors.New("not found"))

	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clockwork.NewFakeClock())

	_, err := p.Detail(context.Background(), "missing")
	assert.Error(t, err)
}

func TestOnForeground_RefreshesAfterLongAbsence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := clockwork.NewFakeClock()
	backend := mocks.NewMockProviderBackend(ctrl)
	backend.EXPECT().ListProviders(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clock)

	p.OnBackground()
	clock.Advance(6 * time.Minute)

	assert.NoError(t, p.OnForeground(context.Background()))
}

func TestOnForeground_ShortAbsenceDoesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := clockwork.NewFakeClock()
	backend := mocks.NewMockProviderBackend(ctrl)

	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clock)

	p.OnBackground()
	clock.Advance(time.Minute)

	assert.NoError(t, p.OnForeground(context.Background()))
}

func TestOnForeground_WithoutBackgroundIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	backend := mocks.NewMockProviderBackend(ctrl)
	p := NewPipeline(backend, &fakePositionSource{}, nil, testConfig(), "", clockwork.NewFakeClock())

	assert.NoError(t, p.OnForeground(context.Background()))
}

var _ discovery.DiscoveryUC = (*Pipeline)(nil)
