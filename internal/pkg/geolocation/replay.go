package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/transhub/shuttletrack/internal/pkg/models"
)

// ReplayProvider plays back a recorded list of fixes, useful for demos and
// for reproducing a reported route. Once the recording is exhausted the
// last fix repeats.
type ReplayProvider struct {
	Interval time.Duration

	mu    sync.Mutex
	fixes []models.Position
	index int
}

// NewReplayProvider creates a provider over an in-memory recording
func NewReplayProvider(fixes []models.Position, interval time.Duration) (*ReplayProvider, error) {
	if len(fixes) == 0 {
		return nil, fmt.Errorf("replay requires at least one fix")
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &ReplayProvider{Interval: interval, fixes: fixes}, nil
}

// LoadReplayFile reads a JSON array of positions from disk
func LoadReplayFile(path string, interval time.Duration) (*ReplayProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read replay file: %w", err)
	}

	var fixes []models.Position
	if err := json.Unmarshal(data, &fixes); err != nil {
		return nil, fmt.Errorf("failed to parse replay file: %w", err)
	}

	return NewReplayProvider(fixes, interval)
}

// CurrentPosition returns the next recorded fix
func (p *ReplayProvider) CurrentPosition(ctx context.Context) (models.Position, error) {
	select {
	case <-ctx.Done():
		return models.Position{}, ctx.Err()
	default:
	}
	return p.next(), nil
}

// Watch emits a recorded fix every Interval until stop is called. Stop waits
// for the emit goroutine, so no fix lands after it returns.
func (p *ReplayProvider) Watch(ctx context.Context, onFix func(models.Position)) (func(), error) {
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
				onFix(p.next())
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}, nil
}

func (p *ReplayProvider) next() models.Position {
	p.mu.Lock()
	defer p.mu.Unlock()

	fix := p.fixes[p.index]
	if p.index < len(p.fixes)-1 {
		p.index++
	}
	fix.CapturedAt = time.Now()
	return fix
}
