package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/transhub/shuttletrack/internal/pkg/apiclient"
	"github.com/transhub/shuttletrack/internal/pkg/logger"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/internal/utils"
	"github.com/transhub/shuttletrack/services/rider"
)

// AssignmentState names the monitor's view of the rider's assignment
type AssignmentState string

// Assignment states
const (
	StateLoading       AssignmentState = "loading"
	StateHasAssignment AssignmentState = "has_assignment"
	StateNoAssignment  AssignmentState = "no_assignment"
	StateError         AssignmentState = "error"
)

// View is the monitor's current snapshot for display. Distances come from
// the backend; DistanceToPickup and DistanceToDrop are already formatted
// ("450m", "2.3km") and read "Calculating..." until the backend has both
// the driver position and the waypoints.
type View struct {
	State            AssignmentState
	Assignment       *models.Assignment
	DriverLocation   *models.DriverLocationSnapshot
	LocationKnown    bool
	StatusMessage    string
	DistanceToPickup string
	DistanceToDrop   string
}

const distancePending = "Calculating..."

// Monitor polls the backend for the rider's assignment and the assigned
// driver's location on independent cadences. A fresh assignment triggers an
// immediate location refresh rather than waiting out the location interval.
type Monitor struct {
	gw                 rider.RiderGW
	assignmentInterval time.Duration
	locationInterval   time.Duration

	mu      sync.Mutex
	view    View
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewMonitor creates a monitor. Zero intervals fall back to 10s for the
// assignment poll and 30s for the location poll.
func NewMonitor(gw rider.RiderGW, assignmentInterval, locationInterval time.Duration) *Monitor {
	if assignmentInterval <= 0 {
		assignmentInterval = 10 * time.Second
	}
	if locationInterval <= 0 {
		locationInterval = 30 * time.Second
	}
	return &Monitor{
		gw:                 gw,
		assignmentInterval: assignmentInterval,
		locationInterval:   locationInterval,
		view:               View{State: StateLoading},
	}
}

// View returns the current display snapshot
func (m *Monitor) View() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}

// Start performs an immediate refresh and begins the polling loops.
// Calling Start on a running monitor is a no-op.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return
	}
	loopCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	m.running = true
	m.cancel = cancel
	m.done = done
	m.mu.Unlock()

	m.RefreshAssignment(ctx)

	go m.loop(loopCtx, done)
}

// Stop cancels both polling loops. No refresh runs after Stop returns.
func (m *Monitor) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	cancel := m.cancel
	done := m.done
	m.running = false
	m.cancel = nil
	m.done = nil
	m.mu.Unlock()

	cancel()
	<-done
}

func (m *Monitor) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	assignmentTicker := time.NewTicker(m.assignmentInterval)
	defer assignmentTicker.Stop()
	locationTicker := time.NewTicker(m.locationInterval)
	defer locationTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-assignmentTicker.C:
			m.RefreshAssignment(ctx)
		case <-locationTicker.C:
			m.RefreshLocation(ctx)
		}
	}
}

// RefreshAssignment polls the assignment endpoint. A 404 is the normal
// no-assignment branch; a successful fetch immediately refreshes the
// driver location as well.
func (m *Monitor) RefreshAssignment(ctx context.Context) {
	assignment, err := m.gw.Assignment(ctx)
	if err != nil {
		if apiclient.IsNotFound(err) {
			m.mu.Lock()
			m.view = View{
				State:         StateNoAssignment,
				StatusMessage: "No active assignment",
			}
			m.mu.Unlock()
			return
		}
		if ctx.Err() != nil {
			return
		}
		logger.Warn("assignment refresh failed", logger.Err(err))
		m.mu.Lock()
		m.view.State = StateError
		m.view.StatusMessage = userMessage(err)
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	m.view.State = StateHasAssignment
	m.view.Assignment = assignment
	m.view.StatusMessage = ""
	m.mu.Unlock()

	m.RefreshLocation(ctx)
}

// RefreshLocation polls the driver location endpoint. Without an active
// assignment the poll is skipped; a 404 means the driver is offline or has
// not shared a position yet.
func (m *Monitor) RefreshLocation(ctx context.Context) {
	m.mu.Lock()
	hasAssignment := m.view.State == StateHasAssignment
	m.mu.Unlock()
	if !hasAssignment {
		return
	}

	snapshot, err := m.gw.DriverLocation(ctx)
	if err != nil {
		if apiclient.IsNotFound(err) {
			m.mu.Lock()
			m.view.DriverLocation = nil
			m.view.LocationKnown = false
			m.view.StatusMessage = "Driver is offline or hasn't shared their location yet"
			m.view.DistanceToPickup = ""
			m.view.DistanceToDrop = ""
			m.mu.Unlock()
			return
		}
		if ctx.Err() != nil {
			return
		}
		logger.Warn("driver location refresh failed", logger.Err(err))
		m.mu.Lock()
		m.view.StatusMessage = userMessage(err)
		m.mu.Unlock()
		return
	}

	m.mu.Lock()
	m.view.DriverLocation = snapshot
	m.view.LocationKnown = true
	m.view.StatusMessage = ""
	m.view.DistanceToPickup = formatDistance(snapshot.DistanceToPickupKm)
	m.view.DistanceToDrop = formatDistance(snapshot.DistanceToDropKm)
	m.mu.Unlock()
}

func formatDistance(km *float64) string {
	if km == nil {
		return distancePending
	}
	return utils.FormatDistanceKm(*km)
}

// userMessage surfaces the backend's message when it has one
func userMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return "Unable to reach the tracking service"
}
