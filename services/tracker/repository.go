package tracker

import (
	"context"

	"github.com/google/uuid"

	"github.com/transhub/shuttletrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/transhub/shuttletrack/services/tracker LocationRepo,AccountRepo,AssignmentRepo

// LocationRepo persists driver location state in Redis
type LocationRepo interface {
	// SaveSnapshot stores the driver's last-known snapshot and indexes the
	// position in the geo set
	SaveSnapshot(ctx context.Context, snapshot *models.DriverLocationSnapshot) error

	// GetSnapshot returns the driver's last-known snapshot, or
	// ErrLocationNotFound when the driver has never shared a position
	GetSnapshot(ctx context.Context, driverID uuid.UUID) (*models.DriverLocationSnapshot, error)

	// MarkOffline flips the online flag without touching the position
	MarkOffline(ctx context.Context, driverID uuid.UUID) error

	// AppendHistory records a position in the driver's daily trail
	AppendHistory(ctx context.Context, driverID uuid.UUID, update *models.LocationUpdate) error

	// NearbyDrivers queries the geo set for drivers within radiusKm
	NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyDriver, error)
}

// AccountRepo persists accounts and driver profiles in Postgres
type AccountRepo interface {
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	Create(ctx context.Context, account *models.Account, passwordHash string) error
	ListByRole(ctx context.Context, role string) ([]models.Account, error)
}

// AssignmentRepo persists driver-rider assignments in Postgres
type AssignmentRepo interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error)

	// GetActiveForUser returns the rider's active assignment, or
	// ErrAssignmentNotFound when none exists
	GetActiveForUser(ctx context.Context, userID uuid.UUID) (*models.Assignment, error)

	// GetActiveForDriver returns the driver's active assignment, or
	// ErrAssignmentNotFound when none exists
	GetActiveForDriver(ctx context.Context, driverID uuid.UUID) (*models.Assignment, error)

	List(ctx context.Context) ([]models.Assignment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateRiderStatus(ctx context.Context, assignmentID, userID uuid.UUID, status string) error
}
