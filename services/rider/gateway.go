package rider

import (
	"context"

	"github.com/transhub/shuttletrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/transhub/shuttletrack/services/rider RiderGW

// RiderGW is the rider's view of the tracking backend
type RiderGW interface {
	// Login signs in with the rider credentials and returns the session
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)

	// Assignment returns the rider's active assignment, or a not-found
	// error when none exists
	Assignment(ctx context.Context) (*models.Assignment, error)

	// DriverLocation returns the assigned driver's last-known snapshot, or
	// a not-found error when the driver has never shared a position
	DriverLocation(ctx context.Context) (*models.DriverLocationSnapshot, error)
}
