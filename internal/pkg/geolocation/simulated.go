package geolocation

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/transhub/shuttletrack/internal/pkg/models"
)

// SimulatedProvider produces a random walk around a starting coordinate so
// the driver agent can run without location hardware. Each step moves the
// point along the current heading at the configured speed, with small
// random course corrections.
type SimulatedProvider struct {
	Interval time.Duration // time between watch fixes
	SpeedKmh float64       // simulated travel speed
	Accuracy float64       // reported accuracy in meters

	mu      sync.Mutex
	lat     float64
	lon     float64
	heading float64
	rng     *rand.Rand
}

// NewSimulatedProvider starts the walk at the given coordinate. A zero seed
// derives one from the clock.
func NewSimulatedProvider(lat, lon float64, seed int64) *SimulatedProvider {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return &SimulatedProvider{
		Interval: 5 * time.Second,
		SpeedKmh: 30,
		Accuracy: 8,
		lat:      lat,
		lon:      lon,
		heading:  rng.Float64() * 360,
		rng:      rng,
	}
}

// CurrentPosition advances the walk one step and returns the new point
func (p *SimulatedProvider) CurrentPosition(ctx context.Context) (models.Position, error) {
	select {
	case <-ctx.Done():
		return models.Position{}, ctx.Err()
	default:
	}
	return p.step(p.Interval), nil
}

// Watch emits a fix every Interval until stop is called. Stop waits for the
// emit goroutine, so no fix lands after it returns.
func (p *SimulatedProvider) Watch(ctx context.Context, onFix func(models.Position)) (func(), error) {
	watchCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-watchCtx.Done():
				return
			case <-ticker.C:
				onFix(p.step(p.Interval))
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}, nil
}

// Heading returns the walk's current course
func (p *SimulatedProvider) Heading() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.heading
}

func (p *SimulatedProvider) step(elapsed time.Duration) models.Position {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Drift the heading a little each step so the route bends like a road
	p.heading += (p.rng.Float64() - 0.5) * 30
	p.heading = math.Mod(p.heading+360, 360)

	distanceKm := p.SpeedKmh * elapsed.Hours()
	rad := p.heading * math.Pi / 180

	// 1 degree of latitude spans ~111 km; longitude shrinks with latitude
	p.lat += distanceKm * math.Cos(rad) / 111.0
	lonScale := 111.0 * math.Cos(p.lat*math.Pi/180)
	if lonScale > 0.001 {
		p.lon += distanceKm * math.Sin(rad) / lonScale
	}

	return models.Position{
		Latitude:       p.lat,
		Longitude:      p.lon,
		AccuracyMeters: p.Accuracy,
		CapturedAt:     time.Now(),
	}
}
