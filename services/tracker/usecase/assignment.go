package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/services/tracker"
)

// AssignmentUsecase implements tracker.AssignmentUC
type AssignmentUsecase struct {
	assignmentRepo tracker.AssignmentRepo
	accountRepo    tracker.AccountRepo
}

// NewAssignmentUsecase creates a new assignment use case
func NewAssignmentUsecase(assignmentRepo tracker.AssignmentRepo, accountRepo tracker.AccountRepo) *AssignmentUsecase {
	return &AssignmentUsecase{
		assignmentRepo: assignmentRepo,
		accountRepo:    accountRepo,
	}
}

// Create validates the driver and riders, then stores a new active assignment
func (uc *AssignmentUsecase) Create(ctx context.Context, req *models.CreateAssignmentRequest) (*models.Assignment, error) {
	if req == nil {
		return nil, fmt.Errorf("assignment request is required")
	}
	if req.DriverID == uuid.Nil {
		return nil, fmt.Errorf("driver is required")
	}
	if len(req.UserIDs) == 0 {
		return nil, fmt.Errorf("at least one rider is required")
	}

	driver, err := uc.accountRepo.GetByID(ctx, req.DriverID)
	if err != nil {
		return nil, err
	}
	if driver.Role != models.RoleDriver {
		return nil, fmt.Errorf("account %s is not a driver", req.DriverID)
	}

	pickup := req.Pickup
	if pickup.Label == "" {
		pickup.Label = req.PickupLabel
	}
	drop := req.Drop
	if drop.Label == "" {
		drop.Label = req.DropLabel
	}

	assignment := &models.Assignment{
		DriverID: req.DriverID,
		Pickup:   pickup,
		Drop:     drop,
		Status:   models.AssignmentStatusActive,
		Notes:    req.Notes,
	}
	for _, userID := range req.UserIDs {
		rider, err := uc.accountRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if rider.Role != models.RoleUser {
			return nil, fmt.Errorf("account %s is not a rider", userID)
		}
		assignment.AssignedRiders = append(assignment.AssignedRiders, models.AssignedRider{
			UserID:   userID,
			FullName: rider.FullName,
			Status:   models.RiderStatusPending,
		})
	}

	if err := uc.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	assignment.DriverName = driver.FullName
	if driver.DriverInfo != nil {
		assignment.BusNumber = driver.DriverInfo.BusNumber
	}

	return assignment, nil
}

// GetForUser returns the rider's active assignment
func (uc *AssignmentUsecase) GetForUser(ctx context.Context, userID uuid.UUID) (*models.Assignment, error) {
	return uc.assignmentRepo.GetActiveForUser(ctx, userID)
}

// GetForDriver returns the driver's active assignment
func (uc *AssignmentUsecase) GetForDriver(ctx context.Context, driverID uuid.UUID) (*models.Assignment, error) {
	return uc.assignmentRepo.GetActiveForDriver(ctx, driverID)
}

// List returns all assignments, newest first
func (uc *AssignmentUsecase) List(ctx context.Context) ([]models.Assignment, error) {
	return uc.assignmentRepo.List(ctx)
}

// Delete removes an assignment
func (uc *AssignmentUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.assignmentRepo.Delete(ctx, id)
}

// UpdateRiderStatus moves one rider between pending/picked/dropped. Drivers
// may only touch their own assignment; admins may touch any.
func (uc *AssignmentUsecase) UpdateRiderStatus(ctx context.Context, assignmentID uuid.UUID, actorID uuid.UUID, actorRole string, req *models.UpdateRiderStatusRequest) (*models.Assignment, error) {
	if req == nil || req.UserID == uuid.Nil {
		return nil, fmt.Errorf("rider is required")
	}
	switch req.Status {
	case models.RiderStatusPending, models.RiderStatusPicked, models.RiderStatusDropped:
	default:
		return nil, fmt.Errorf("invalid rider status: %s", req.Status)
	}

	assignment, err := uc.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	if actorRole == models.RoleDriver && assignment.DriverID != actorID {
		return nil, fmt.Errorf("assignment belongs to another driver")
	}

	if err := uc.assignmentRepo.UpdateRiderStatus(ctx, assignmentID, req.UserID, req.Status); err != nil {
		return nil, err
	}

	return uc.assignmentRepo.GetByID(ctx, assignmentID)
}
