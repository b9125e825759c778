package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/rdwiputra/jasaku/internal/pkg/models"
	"github.com/rdwiputra/jasaku/internal/pkg/notify"
	"github.com/rdwiputra/jasaku/services/location"
	"github.com/rdwiputra/jasaku/services/location/mocks"
	"github.com/stretchr/testify/assert"
)

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

type recordingListener struct {
	mu        sync.Mutex
	snapshots []models.LocationSnapshot
}

func (l *recordingListener) OnSnapshot(snapshot models.LocationSnapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.snapshots = append(l.snapshots, snapshot)
}

func (l *recordingListener) Snapshots() []models.LocationSnapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.LocationSnapshot(nil), l.snapshots...)
}

func expectSuccessfulResolution(mockGeo *mocks.MockGeolocator) {
	mockGeo.EXPECT().RequestPermission(gomock.Any()).Return(true, nil)
	mockGeo.EXPECT().CurrentPosition(gomock.Any(), models.AccuracyBalanced).
		Return(&models.Position{Latitude: -6.2088, Longitude: 106.8456}, nil)
	mockGeo.EXPECT().ReverseGeocode(gomock.Any(), -6.2088, 106.8456).
		Return(&models.ResolvedAddress{FreeText: "Jl. Sudirman No. 1", Region: "DKI Jakarta"}, nil)
}

func TestRequestLocation_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeo := mocks.NewMockGeolocator(ctrl)
	mockRepo := mocks.NewMockPositionRepo(ctrl)

	expectSuccessfulResolution(mockGeo)
	mockRepo.EXPECT().StoreLastPosition(gomock.Any(), gomock.Any()).Return(nil)

	store := NewLocationStore(mockGeo, mockRepo, nil, clockwork.NewFakeClock())

	snap, err := store.RequestLocation(context.Background(), false)

	assert.NoError(t, err)
	assert.True(t, snap.Initialized)
	assert.False(t, snap.HasError)
	assert.Equal(t, "Jl. Sudirman No. 1", snap.Address.FreeText)
	assert.Equal(t, -6.2088, snap.Position.Latitude)
	assert.True(t, store.IsInitialized())
}

func TestRequestLocation_CachedSnapshotSkipsHardware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeo := mocks.NewMockGeolocator(ctrl)
	mockRepo := mocks.NewMockPositionRepo(ctrl)

	// Exactly one resolution for two non-forced requests
	expectSuccessfulResolution(mockGeo)
	mockRepo.EXPECT().StoreLastPosition(gomock.Any(), gomock.Any()).Return(nil)

	store := NewLocationStore(mockGeo, mockRepo, nil, clockwork.NewFakeClock())

	first, err := store.RequestLocation(context.Background(), false)
	assert.NoError(t, err)

	second, err := store.RequestLocation(context.Background(), false)
	assert.NoError(t, err)
	assert.Equal(t, first.Address, second.Address)
}

func TestRequestLocation_ForceRefreshResolvesAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeo := mocks.NewMockGeolocator(ctrl)
	mockRepo := mocks.NewMockPositionRepo(ctrl)

	expectSuccessfulResolution(mockGeo)
	expectSuccessfulResolution(mockGeo)
	mockRepo.EXPECT().StoreLastPosition(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	store := NewLocationStore(mockGeo, mockRepo, nil, clockwork.NewFakeClock())

	_, err := store.RequestLocation(context.Background(), false)
	assert.NoError(t, err)

	_, err = store.RequestLocation(context.Background(), true)
	assert.NoError(t, err)
}

func TestRequestLocation_ConcurrentCallsCoalesce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeo := mocks.NewMockGeolocator(ctrl)

	mockGeo.EXPECT().RequestPermission(gomock.Any()).Return(true, nil).Times(1)
	mockGeo.EXPECT().CurrentPosition(gomock.Any(), models.AccuracyBalanced).
		DoAndReturn(func(ctx context.Context, tier models.AccuracyTier) (*models.Position, error) {
			time.Sleep(100 * time.Millisecond)
			return &models.Position{Latitude: -6.2, Longitude: 106.8}, nil
		}).Times(1)
	mockGeo.EXPECT().ReverseGeocode(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.ResolvedAddress{FreeText: "Jakarta"}, nil).Times(1)

	store := NewLocationStore(mockGeo, nil, nil, clockwork.NewFakeClock())

	var wg sync.WaitGroup
	results := make([]models.LocationSnapshot, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = store.RequestLocation(context.Background(), false)
	}()

	// Let the first request claim the in-flight slot
	time.Sleep(20 * time.Millisecond)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = store.RequestLocation(context.Background(), true)
	}()

	wg.Wait()

	assert.Equal(t, results[0].Address, results[1].Address)
	assert.True(t, results[0].Initialized)
}

func TestRequestLocation_FailureSettlesAsErrorSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeo := mocks.NewMockGeolocator(ctrl)
	mockGeo.EXPECT().RequestPermission(gomock.Any()).Return(false, nil)

	store := NewLocationStore(mockGeo, nil, nil, clockwork.NewFakeClock())

	snap, err := store.RequestLocation(context.Background(), false)

	// Failures settle into state, not into an error return
	assert.NoError(t, err)
	assert.True(t, snap.HasError)
	assert.True(t, snap.Initialized)
	assert.Equal(t, "Location access denied", snap.Address.FreeText)
	assert.Nil(t, snap.Position)
}

func TestSubscribe_ReplaysExistingSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeo := mocks.NewMockGeolocator(ctrl)
	expectSuccessfulResolution(mockGeo)

	store := NewLocationStore(mockGeo, nil, nil, clockwork.NewFakeClock())
	_, err := store.RequestLocation(context.Background(), false)
	assert.NoError(t, err)

	listener := &recordingListener{}
	unsubscribe := store.Subscribe(listener)
	defer unsubscribe()

	snapshots := listener.Snapshots()
	assert.Len(t, snapshots, 1)
	assert.Equal(t, "Jl. Sudirman No. 1", snapshots[0].Address.FreeText)
}

func TestSubscribe_ForcedRefreshObservesTransitionalThenSettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeo := mocks.NewMockGeolocator(ctrl)
	expectSuccessfulResolution(mockGeo)

	store := NewLocationStore(mockGeo, nil, nil, clockwork.NewFakeClock())

	listener := &recordingListener{}
	unsubscribe := store.Subscribe(listener)
	defer unsubscribe()

	_, err := store.RequestLocation(context.Background(), true)
	assert.NoError(t, err)

	snapshots := listener.Snapshots()
	assert.Len(t, snapshots, 2)
	assert.True(t, snapshots[0].IsResolving)
	assert.False(t, snapshots[1].IsResolving)
	assert.True(t, snapshots[1].Initialized)
}

func TestSubscribe_InitialResolutionBroadcastsOnlySettled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeo := mocks.NewMockGeolocator(ctrl)
	expectSuccessfulResolution(mockGeo)

	store := NewLocationStore(mockGeo, nil, nil, clockwork.NewFakeClock())

	listener := &recordingListener{}
	unsubscribe := store.Subscribe(listener)
	defer unsubscribe()

	// Non-forced first resolution: no resolving intermediate is broadcast.
	_, err := store.RequestLocation(context.Background(), false)
	assert.NoError(t, err)

	snapshots := listener.Snapshots()
	assert.Len(t, snapshots, 1)
	assert.False(t, snapshots[0].IsResolving)
	assert.True(t, snapshots[0].Initialized)
}

func TestUnsubscribe_StopsUpdates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeo := mocks.NewMockGeolocator(ctrl)
	expectSuccessfulResolution(mockGeo)

	store := NewLocationStore(mockGeo, nil, nil, clockwork.NewFakeClock())

	listener := &recordingListener{}
	unsubscribe := store.Subscribe(listener)
	unsubscribe()

	_, err := store.RequestLocation(context.Background(), false)
	assert.NoError(t, err)

	assert.Empty(t, listener.Snapshots())
}

func TestReset_ClearsStateAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeo := mocks.NewMockGeolocator(ctrl)
	expectSuccessfulResolution(mockGeo)

	notifier := &recordingNotifier{}
	store := NewLocationStore(mockGeo, nil, notifier, clockwork.NewFakeClock())

	listener := &recordingListener{}
	store.Subscribe(listener)

	_, err := store.RequestLocation(context.Background(), false)
	assert.NoError(t, err)
	assert.True(t, store.IsInitialized())

	store.Reset()

	assert.False(t, store.IsInitialized())
	_, ok := store.CurrentSnapshot()
	assert.False(t, ok)
	assert.Equal(t, []string{notify.MsgStateReset}, notifier.Messages())

	// Old subscribers were dropped with the rest of the state
	before := len(listener.Snapshots())
	expectSuccessfulResolution(mockGeo)
	_, err = store.RequestLocation(context.Background(), false)
	assert.NoError(t, err)
	assert.Len(t, listener.Snapshots(), before)
}

var _ location.LocationUC = (*LocationStore)(nil)
