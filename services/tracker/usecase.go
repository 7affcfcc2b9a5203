package tracker

import (
	"context"

	"github.com/google/uuid"

	"github.com/transhub/shuttletrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/transhub/shuttletrack/services/tracker AuthUC,LocationUC,AssignmentUC

// AuthUC defines the authentication and account management business logic
type AuthUC interface {
	Login(ctx context.Context, role string, req *models.LoginRequest) (*models.LoginResponse, error)
	Register(ctx context.Context, role string, req *models.RegisterAccountRequest) (*models.Account, error)
	ListAccounts(ctx context.Context, role string) ([]models.Account, error)
}

// LocationUC defines the driver location business logic
type LocationUC interface {
	// PublishUpdate records a driver's position, computes route distances
	// against the active assignment, and marks the driver online
	PublishUpdate(ctx context.Context, driverID uuid.UUID, update *models.LocationUpdate) (*models.DriverLocationSnapshot, error)

	// GoOffline marks the driver offline, keeping the last position
	GoOffline(ctx context.Context, driverID uuid.UUID) error

	// SnapshotForRider resolves the rider's assigned driver and returns the
	// driver's last-known snapshot with staleness applied
	SnapshotForRider(ctx context.Context, userID uuid.UUID) (*models.DriverLocationSnapshot, error)

	// NearbyDrivers lists driver IDs within radiusKm of a point, nearest
	// first, for the admin map
	NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyDriver, error)
}

// AssignmentUC defines the driver-rider assignment business logic
type AssignmentUC interface {
	Create(ctx context.Context, req *models.CreateAssignmentRequest) (*models.Assignment, error)
	GetForUser(ctx context.Context, userID uuid.UUID) (*models.Assignment, error)
	GetForDriver(ctx context.Context, driverID uuid.UUID) (*models.Assignment, error)
	List(ctx context.Context) ([]models.Assignment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateRiderStatus(ctx context.Context, assignmentID uuid.UUID, actorID uuid.UUID, actorRole string, req *models.UpdateRiderStatusRequest) (*models.Assignment, error)
}
