package agent

import (
	"context"

	"github.com/google/uuid"

	"github.com/transhub/shuttletrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/transhub/shuttletrack/services/agent AgentGW

// AgentGW is the driver agent's view of the tracking backend
type AgentGW interface {
	// Login signs in with the driver credentials and returns the session
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)

	// PublishLocation sends one position and returns the server's snapshot,
	// distances included
	PublishLocation(ctx context.Context, update *models.LocationUpdate) (*models.DriverLocationSnapshot, error)

	// GoOffline tells the backend the driver stopped sharing
	GoOffline(ctx context.Context) error

	// ActiveAssignment returns the driver's active assignment, or a
	// not-found error when none exists
	ActiveAssignment(ctx context.Context) (*models.Assignment, error)

	// UpdateRiderStatus moves one rider between pending/picked/dropped
	UpdateRiderStatus(ctx context.Context, assignmentID uuid.UUID, req *models.UpdateRiderStatusRequest) (*models.Assignment, error)
}
