package geolocation

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transhub/shuttletrack/internal/pkg/models"
)

// fakeProvider hands out scripted fixes and counts underlying watches
type fakeProvider struct {
	mu          sync.Mutex
	fix         models.Position
	err         error
	watchCount  int
	activeWatch int
	emit        func(models.Position)
}

func (f *fakeProvider) CurrentPosition(ctx context.Context) (models.Position, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Position{}, f.err
	}
	return f.fix, nil
}

func (f *fakeProvider) Watch(ctx context.Context, onFix func(models.Position)) (func(), error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.watchCount++
	f.activeWatch++
	f.emit = onFix
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.activeWatch--
		f.emit = nil
	}, nil
}

func (f *fakeProvider) emitFix(fix models.Position) {
	f.mu.Lock()
	emit := f.emit
	f.mu.Unlock()
	if emit != nil {
		emit(fix)
	}
}

func somePosition(lat, lon float64) models.Position {
	return models.Position{
		Latitude:       lat,
		Longitude:      lon,
		AccuracyMeters: 5,
		CapturedAt:     time.Now(),
	}
}

func TestCurrentPosition_AcquiresFreshFix(t *testing.T) {
	provider := &fakeProvider{fix: somePosition(40.7128, -74.0060)}
	source := NewSource(provider, Options{})

	fix, err := source.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40.7128, fix.Latitude)

	last, ok := source.LastKnown()
	assert.True(t, ok)
	assert.Equal(t, fix.Latitude, last.Latitude)
}

func TestCurrentPosition_ReusesCachedFixWithinMaxAge(t *testing.T) {
	provider := &fakeProvider{fix: somePosition(1, 1)}
	source := NewSource(provider, Options{})

	first, err := source.CurrentPosition(context.Background())
	require.NoError(t, err)

	// Provider now fails; the cached fix should still be served
	provider.mu.Lock()
	provider.err = ErrPositionUnavailable
	provider.mu.Unlock()

	second, err := source.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCurrentPosition_ExpiredCacheForcesReacquisition(t *testing.T) {
	provider := &fakeProvider{fix: somePosition(1, 1)}
	source := NewSource(provider, Options{OneShotMaxFixAge: time.Nanosecond})

	_, err := source.CurrentPosition(context.Background())
	require.NoError(t, err)

	provider.mu.Lock()
	provider.err = ErrPositionUnavailable
	provider.mu.Unlock()

	time.Sleep(2 * time.Millisecond)
	_, err = source.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, ErrPositionUnavailable)
}

func TestRefresh_BypassesCachedFix(t *testing.T) {
	provider := &fakeProvider{fix: somePosition(1, 1)}
	source := NewSource(provider, Options{})

	_, err := source.CurrentPosition(context.Background())
	require.NoError(t, err)

	// The cache is still fresh, but Refresh must hit the provider anyway
	provider.mu.Lock()
	provider.fix = somePosition(9, 9)
	provider.mu.Unlock()

	fix, err := source.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9.0, fix.Latitude)

	last, ok := source.LastKnown()
	require.True(t, ok)
	assert.Equal(t, 9.0, last.Latitude)
}

func TestRefresh_SurfacesProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: ErrPositionUnavailable}
	source := NewSource(provider, Options{})

	_, err := source.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrPositionUnavailable)
}

func TestProviderWatch_StopWaitsForEmitter(t *testing.T) {
	provider := NewSimulatedProvider(-6.2, 106.8, 42)
	provider.Interval = time.Millisecond

	var emitted int32
	stop, err := provider.Watch(context.Background(), func(models.Position) {
		atomic.AddInt32(&emitted, 1)
	})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	stop()

	count := atomic.LoadInt32(&emitted)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, count, atomic.LoadInt32(&emitted), "no fix may land after stop returns")
}

func TestCurrentPosition_TimeoutIsTyped(t *testing.T) {
	provider := &blockingProvider{}
	source := NewSource(provider, Options{AcquisitionTimeout: 20 * time.Millisecond})

	_, err := source.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, ErrAcquisitionTimeout)
}

// blockingProvider never produces a fix, only honors cancellation
type blockingProvider struct{}

func (b *blockingProvider) CurrentPosition(ctx context.Context) (models.Position, error) {
	<-ctx.Done()
	return models.Position{}, ctx.Err()
}

func (b *blockingProvider) Watch(ctx context.Context, onFix func(models.Position)) (func(), error) {
	return func() {}, nil
}

func TestStartTracking_IsIdempotent(t *testing.T) {
	provider := &fakeProvider{fix: somePosition(1, 1)}
	source := NewSource(provider, Options{})

	var mu sync.Mutex
	updates := 0
	onUpdate := func(models.Position) {
		mu.Lock()
		updates++
		mu.Unlock()
	}

	require.NoError(t, source.StartTracking(onUpdate))
	require.NoError(t, source.StartTracking(nil)) // second call, no new watch

	provider.mu.Lock()
	watches := provider.watchCount
	provider.mu.Unlock()
	assert.Equal(t, 1, watches)

	provider.emitFix(somePosition(2, 2))

	mu.Lock()
	count := updates
	mu.Unlock()
	assert.Equal(t, 1, count, "one position change delivers one update")

	source.StopTracking()
}

func TestStopTracking_ReleasesWatchAndListeners(t *testing.T) {
	provider := &fakeProvider{fix: somePosition(1, 1)}
	source := NewSource(provider, Options{})

	delivered := 0
	require.NoError(t, source.StartTracking(func(models.Position) { delivered++ }))

	source.StopTracking()
	source.StopTracking() // safe to call again

	provider.mu.Lock()
	active := provider.activeWatch
	provider.mu.Unlock()
	assert.Equal(t, 0, active)

	provider.emitFix(somePosition(3, 3))
	assert.Equal(t, 0, delivered)
}

func TestTrackingUpdatesRefreshLastKnown(t *testing.T) {
	provider := &fakeProvider{fix: somePosition(1, 1)}
	source := NewSource(provider, Options{})

	require.NoError(t, source.StartTracking(nil))
	defer source.StopTracking()

	provider.emitFix(somePosition(5, 6))

	last, ok := source.LastKnown()
	require.True(t, ok)
	assert.Equal(t, 5.0, last.Latitude)
	assert.Equal(t, 6.0, last.Longitude)
}

func TestCheckPermission(t *testing.T) {
	granted := NewSource(&fakeProvider{fix: somePosition(1, 1)}, Options{})
	assert.True(t, granted.CheckPermission(context.Background()))

	denied := NewSource(&fakeProvider{err: ErrPermissionDenied}, Options{})
	assert.False(t, denied.CheckPermission(context.Background()))
	assert.False(t, denied.RequestPermission(context.Background()))
}
