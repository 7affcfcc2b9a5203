package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/services/tracker/mocks"
)

func TestCreateAssignment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAsgRepo := mocks.NewMockAssignmentRepo(ctrl)
	mockAccRepo := mocks.NewMockAccountRepo(ctrl)

	driverID := uuid.New()
	riderID := uuid.New()

	mockAccRepo.EXPECT().GetByID(gomock.Any(), driverID).Return(&models.Account{
		ID:       driverID,
		FullName: "Driver One",
		Role:     models.RoleDriver,
		DriverInfo: &models.DriverInfo{
			UserID:    driverID,
			BusNumber: "B-7",
		},
	}, nil)
	mockAccRepo.EXPECT().GetByID(gomock.Any(), riderID).Return(&models.Account{
		ID:       riderID,
		FullName: "Rider One",
		Role:     models.RoleUser,
	}, nil)
	mockAsgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, assignment *models.Assignment) error {
			assert.Equal(t, models.AssignmentStatusActive, assignment.Status)
			require.Len(t, assignment.AssignedRiders, 1)
			assert.Equal(t, models.RiderStatusPending, assignment.AssignedRiders[0].Status)
			return nil
		})

	uc := NewAssignmentUsecase(mockAsgRepo, mockAccRepo)

	assignment, err := uc.Create(context.Background(), &models.CreateAssignmentRequest{
		DriverID: driverID,
		UserIDs:  []uuid.UUID{riderID},
		Pickup:   models.Waypoint{Label: "Depot", Latitude: -6.2, Longitude: 106.8},
		Drop:     models.Waypoint{Label: "Campus", Latitude: -6.3, Longitude: 106.9},
	})

	require.NoError(t, err)
	assert.Equal(t, "Driver One", assignment.DriverName)
	assert.Equal(t, "B-7", assignment.BusNumber)
}

func TestCreateAssignment_NonDriverRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccRepo := mocks.NewMockAccountRepo(ctrl)
	notADriver := uuid.New()
	mockAccRepo.EXPECT().GetByID(gomock.Any(), notADriver).Return(&models.Account{
		ID:   notADriver,
		Role: models.RoleUser,
	}, nil)

	uc := NewAssignmentUsecase(mocks.NewMockAssignmentRepo(ctrl), mockAccRepo)

	_, err := uc.Create(context.Background(), &models.CreateAssignmentRequest{
		DriverID: notADriver,
		UserIDs:  []uuid.UUID{uuid.New()},
	})

	assert.Error(t, err)
}

func TestCreateAssignment_RequiresRiders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAssignmentUsecase(mocks.NewMockAssignmentRepo(ctrl), mocks.NewMockAccountRepo(ctrl))

	_, err := uc.Create(context.Background(), &models.CreateAssignmentRequest{
		DriverID: uuid.New(),
	})

	assert.Error(t, err)
}

func TestUpdateRiderStatus_DriverOwnsAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAsgRepo := mocks.NewMockAssignmentRepo(ctrl)

	driverID := uuid.New()
	riderID := uuid.New()
	assignmentID := uuid.New()
	assignment := &models.Assignment{
		ID:       assignmentID,
		DriverID: driverID,
		AssignedRiders: []models.AssignedRider{
			{UserID: riderID, Status: models.RiderStatusPending},
		},
	}

	mockAsgRepo.EXPECT().GetByID(gomock.Any(), assignmentID).Return(assignment, nil)
	mockAsgRepo.EXPECT().UpdateRiderStatus(gomock.Any(), assignmentID, riderID, models.RiderStatusPicked).Return(nil)
	updated := &models.Assignment{
		ID:       assignmentID,
		DriverID: driverID,
		AssignedRiders: []models.AssignedRider{
			{UserID: riderID, Status: models.RiderStatusPicked},
		},
	}
	mockAsgRepo.EXPECT().GetByID(gomock.Any(), assignmentID).Return(updated, nil)

	uc := NewAssignmentUsecase(mockAsgRepo, mocks.NewMockAccountRepo(ctrl))

	result, err := uc.UpdateRiderStatus(context.Background(), assignmentID, driverID, models.RoleDriver,
		&models.UpdateRiderStatusRequest{UserID: riderID, Status: models.RiderStatusPicked})

	require.NoError(t, err)
	assert.Equal(t, models.RiderStatusPicked, result.AssignedRiders[0].Status)
}

func TestUpdateRiderStatus_OtherDriverForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAsgRepo := mocks.NewMockAssignmentRepo(ctrl)

	assignmentID := uuid.New()
	mockAsgRepo.EXPECT().GetByID(gomock.Any(), assignmentID).Return(&models.Assignment{
		ID:       assignmentID,
		DriverID: uuid.New(),
	}, nil)

	uc := NewAssignmentUsecase(mockAsgRepo, mocks.NewMockAccountRepo(ctrl))

	_, err := uc.UpdateRiderStatus(context.Background(), assignmentID, uuid.New(), models.RoleDriver,
		&models.UpdateRiderStatusRequest{UserID: uuid.New(), Status: models.RiderStatusPicked})

	assert.Error(t, err)
}

func TestUpdateRiderStatus_InvalidStatusRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewAssignmentUsecase(mocks.NewMockAssignmentRepo(ctrl), mocks.NewMockAccountRepo(ctrl))

	_, err := uc.UpdateRiderStatus(context.Background(), uuid.New(), uuid.New(), models.RoleAdmin,
		&models.UpdateRiderStatusRequest{UserID: uuid.New(), Status: "teleported"})

	assert.Error(t, err)
}
