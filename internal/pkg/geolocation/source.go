package geolocation

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/transhub/shuttletrack/internal/pkg/logger"
	"github.com/transhub/shuttletrack/internal/pkg/models"
)

// Typed acquisition outcomes. Every failure of the underlying capability is
// surfaced as one of these, never swallowed.
var (
	ErrPermissionDenied    = errors.New("geolocation: permission denied")
	ErrPositionUnavailable = errors.New("geolocation: position unavailable")
	ErrAcquisitionTimeout  = errors.New("geolocation: acquisition timed out")
)

// Provider is the platform location capability behind the Source. It is an
// explicit constructor argument so tests and simulators can substitute one.
type Provider interface {
	// CurrentPosition blocks until a fix is available or ctx is done
	CurrentPosition(ctx context.Context) (models.Position, error)

	// Watch delivers fixes to onFix until the returned stop function is
	// called. Implementations must not call onFix after stop returns.
	Watch(ctx context.Context, onFix func(models.Position)) (stop func(), err error)
}

// Options bound how long acquisition may take and how stale a cached fix
// may be before a fresh one is demanded.
type Options struct {
	AcquisitionTimeout time.Duration
	OneShotMaxFixAge   time.Duration
	TrackingMaxFixAge  time.Duration
}

// DefaultOptions mirror the reference behavior: 10s bounded wait, cached
// fixes up to 60s old for one-shot calls and 30s while tracking.
func DefaultOptions() Options {
	return Options{
		AcquisitionTimeout: 10 * time.Second,
		OneShotMaxFixAge:   60 * time.Second,
		TrackingMaxFixAge:  30 * time.Second,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.AcquisitionTimeout <= 0 {
		o.AcquisitionTimeout = d.AcquisitionTimeout
	}
	if o.OneShotMaxFixAge <= 0 {
		o.OneShotMaxFixAge = d.OneShotMaxFixAge
	}
	if o.TrackingMaxFixAge <= 0 {
		o.TrackingMaxFixAge = d.TrackingMaxFixAge
	}
	return o
}

// Source wraps a Provider with fix caching, idempotent continuous tracking,
// and permission probing. The device capability is a single shared resource:
// no matter how many times StartTracking is called, at most one underlying
// watch exists.
type Source struct {
	provider Provider
	opts     Options

	mu        sync.Mutex
	lastFix   *models.Position
	listeners []func(models.Position)
	watchStop func()
	tracking  bool

	now func() time.Time
}

// NewSource creates a Source over the given provider
func NewSource(provider Provider, opts Options) *Source {
	return &Source{
		provider: provider,
		opts:     opts.withDefaults(),
		now:      time.Now,
	}
}

// CurrentPosition returns a fix, reusing a cached one no older than the
// configured max age. Acquisition waits at most AcquisitionTimeout; the
// deadline surfaces as ErrAcquisitionTimeout.
func (s *Source) CurrentPosition(ctx context.Context) (models.Position, error) {
	maxAge := s.opts.OneShotMaxFixAge
	s.mu.Lock()
	if s.tracking {
		maxAge = s.opts.TrackingMaxFixAge
	}
	if s.lastFix != nil && s.now().Sub(s.lastFix.CapturedAt) <= maxAge {
		fix := *s.lastFix
		s.mu.Unlock()
		return fix, nil
	}
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh forces a provider acquisition, bypassing any cached fix. The new
// fix replaces the cache so subsequent reads see it.
func (s *Source) Refresh(ctx context.Context) (models.Position, error) {
	acquireCtx, cancel := context.WithTimeout(ctx, s.opts.AcquisitionTimeout)
	defer cancel()

	fix, err := s.provider.CurrentPosition(acquireCtx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return models.Position{}, ErrAcquisitionTimeout
		}
		return models.Position{}, err
	}

	s.recordFix(fix)
	return fix, nil
}

// LastKnown returns the most recent fix, if any was ever acquired
func (s *Source) LastKnown() (models.Position, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastFix == nil {
		return models.Position{}, false
	}
	return *s.lastFix, true
}

// StartTracking begins continuous tracking and registers onUpdate for every
// new fix. Calling it while tracking adds the listener without creating a
// second underlying watch.
func (s *Source) StartTracking(onUpdate func(models.Position)) error {
	s.mu.Lock()
	if onUpdate != nil {
		s.listeners = append(s.listeners, onUpdate)
	}
	if s.tracking {
		s.mu.Unlock()
		return nil
	}
	s.tracking = true
	s.mu.Unlock()

	stop, err := s.provider.Watch(context.Background(), s.dispatch)
	if err != nil {
		s.mu.Lock()
		s.tracking = false
		s.listeners = nil
		s.mu.Unlock()
		logger.Error("failed to start location watch", logger.Err(err))
		return err
	}

	s.mu.Lock()
	s.watchStop = stop
	s.mu.Unlock()
	return nil
}

// StopTracking cancels the underlying watch and releases every registered
// listener. Safe to call when not tracking, and safe to call repeatedly.
func (s *Source) StopTracking() {
	s.mu.Lock()
	stop := s.watchStop
	s.watchStop = nil
	s.tracking = false
	s.listeners = nil
	s.mu.Unlock()

	if stop != nil {
		stop()
	}
}

// CheckPermission probes the capability by attempting a one-shot fix
func (s *Source) CheckPermission(ctx context.Context) bool {
	_, err := s.CurrentPosition(ctx)
	return err == nil
}

// RequestPermission attempts a one-shot fix and reports whether the
// capability granted it, logging the refusal
func (s *Source) RequestPermission(ctx context.Context) bool {
	if _, err := s.CurrentPosition(ctx); err != nil {
		logger.Warn("location permission not granted", logger.Err(err))
		return false
	}
	return true
}

func (s *Source) dispatch(fix models.Position) {
	s.recordFix(fix)

	s.mu.Lock()
	listeners := make([]func(models.Position), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(fix)
	}
}

func (s *Source) recordFix(fix models.Position) {
	if fix.CapturedAt.IsZero() {
		fix.CapturedAt = s.now()
	}
	s.mu.Lock()
	s.lastFix = &fix
	s.mu.Unlock()
}
