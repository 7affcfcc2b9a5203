package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/transhub/shuttletrack/internal/pkg/geolocation"
	"github.com/transhub/shuttletrack/internal/pkg/logger"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/services/agent"
)

// ErrPermissionDenied is returned by Start when the device refuses to
// share its position
var ErrPermissionDenied = errors.New("location permission denied")

// Publisher shares the driver's position with the backend on a fixed
// interval. Start and Stop bracket a sharing session; a session survives
// individual publish failures and only ends on Stop.
type Publisher struct {
	gw       agent.AgentGW
	source   *geolocation.Source
	interval time.Duration

	mu            sync.Mutex
	state         agent.SharingState
	cancel        context.CancelFunc
	done          chan struct{}
	stopRequested bool
	inFlight      bool
	motion        models.MotionSample
	lastSnapshot  *models.DriverLocationSnapshot
	lastErr       error
}

// NewPublisher creates a publisher. Interval zero falls back to 10 seconds.
func NewPublisher(gw agent.AgentGW, source *geolocation.Source, interval time.Duration) *Publisher {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Publisher{
		gw:       gw,
		source:   source,
		interval: interval,
		state:    agent.StateIdle,
	}
}

// State returns the current session state
func (p *Publisher) State() agent.SharingState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// LastSnapshot returns the most recent server snapshot and publish error
func (p *Publisher) LastSnapshot() (*models.DriverLocationSnapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSnapshot, p.lastErr
}

// SetMotion updates the motion sample attached to the next publish
func (p *Publisher) SetMotion(sample models.MotionSample) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.motion = sample
}

// Start begins a sharing session: permission check, an immediate publish,
// then the periodic loop. Calling Start on a running session is a no-op.
func (p *Publisher) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.state != agent.StateIdle {
		p.mu.Unlock()
		return nil
	}
	p.state = agent.StatePermissionPending
	p.stopRequested = false
	p.mu.Unlock()

	if !p.source.RequestPermission(ctx) {
		p.mu.Lock()
		p.state = agent.StateIdle
		p.stopRequested = false
		p.mu.Unlock()
		return ErrPermissionDenied
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	p.mu.Lock()
	// Stop may have arrived while the permission probe was in flight; the
	// session is abandoned before anything is published
	if p.stopRequested {
		p.state = agent.StateIdle
		p.stopRequested = false
		p.mu.Unlock()
		cancel()
		return nil
	}
	p.state = agent.StateSharing
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	// First publish happens before the ticker so riders see the driver
	// as soon as sharing starts
	p.publishTick(ctx)

	go p.loop(loopCtx, done)

	return nil
}

// Stop ends the session. The loop is cancelled before this returns, so no
// further publishes happen afterwards; the backend is then told the driver
// went offline.
func (p *Publisher) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.state == agent.StatePermissionPending {
		// A probe is in flight; Start observes the flag once it resolves
		// and never reaches Sharing
		p.stopRequested = true
		p.mu.Unlock()
		return nil
	}
	if p.state != agent.StateSharing {
		p.mu.Unlock()
		return nil
	}
	cancel := p.cancel
	done := p.done
	p.state = agent.StateIdle
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	cancel()
	<-done

	if err := p.gw.GoOffline(ctx); err != nil {
		logger.Warn("failed to notify backend of offline state", logger.Err(err))
		return err
	}

	return nil
}

// PublishNow forces a publish outside the regular cadence
func (p *Publisher) PublishNow(ctx context.Context) error {
	return p.publishOnce(ctx)
}

// RefreshFix forces a fresh device fix without publishing it. The fix lands
// in the source cache, so the next scheduled publish carries it; the loop
// cadence is untouched.
func (p *Publisher) RefreshFix(ctx context.Context) (models.Position, error) {
	fix, err := p.source.Refresh(ctx)
	if err != nil {
		logger.Warn("manual fix refresh failed", logger.Err(err))
		return models.Position{}, err
	}
	return fix, nil
}

func (p *Publisher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.publishTick(ctx)
		}
	}
}

// publishTick is the re-entrancy guard around publishOnce: a tick that
// lands while the previous publish is still in flight is skipped rather
// than queued.
func (p *Publisher) publishTick(ctx context.Context) {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return
	}
	p.inFlight = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()

	if err := p.publishOnce(ctx); err != nil {
		// A failed publish never ends the session, the next tick retries
		logger.Warn("location publish failed", logger.Err(err))
	}
}

func (p *Publisher) publishOnce(ctx context.Context) error {
	fix, err := p.source.CurrentPosition(ctx)
	if err != nil {
		// Fall back to the last known fix rather than skipping the beat
		last, ok := p.source.LastKnown()
		if !ok {
			p.recordResult(nil, err)
			return err
		}
		fix = last
	}

	p.mu.Lock()
	update := &models.LocationUpdate{
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		Accuracy:  fix.AccuracyMeters,
		Speed:     p.motion.SpeedKmh,
		Heading:   p.motion.HeadingDegrees,
	}
	p.mu.Unlock()

	snapshot, err := p.gw.PublishLocation(ctx, update)
	p.recordResult(snapshot, err)
	return err
}

func (p *Publisher) recordResult(snapshot *models.DriverLocationSnapshot, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if snapshot != nil {
		p.lastSnapshot = snapshot
	}
	p.lastErr = err
}
