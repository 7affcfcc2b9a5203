package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transhub/shuttletrack/internal/pkg/geocode"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/services/tracker"
	"github.com/transhub/shuttletrack/services/tracker/mocks"
)

func trackingConfig() *models.Config {
	return &models.Config{
		Tracking: models.TrackingConfig{
			StalenessTimeout: 90 * time.Second,
		},
	}
}

func TestPublishUpdate_ComputesDistancesToWaypoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocRepo := mocks.NewMockLocationRepo(ctrl)
	mockAsgRepo := mocks.NewMockAssignmentRepo(ctrl)
	mockGW := mocks.NewMockTrackerGW(ctrl)

	driverID := uuid.New()
	assignment := &models.Assignment{
		ID:       uuid.New(),
		DriverID: driverID,
		Pickup:   models.Waypoint{Label: "Depot", Latitude: -6.2000, Longitude: 106.8167},
		Drop:     models.Waypoint{Label: "Campus", Latitude: -6.3000, Longitude: 106.9000},
		Status:   models.AssignmentStatusActive,
	}

	mockAsgRepo.EXPECT().GetActiveForDriver(gomock.Any(), driverID).Return(assignment, nil)

	var saved *models.DriverLocationSnapshot
	mockLocRepo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.DriverLocationSnapshot) error {
			saved = s
			return nil
		})
	mockLocRepo.EXPECT().AppendHistory(gomock.Any(), driverID, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLocationEvent(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewLocationUsecase(mockLocRepo, mockAsgRepo, mockGW, geocode.Noop{}, trackingConfig())

	update := &models.LocationUpdate{Latitude: -6.2000, Longitude: 106.8167, Accuracy: 12, Speed: 30, Heading: 90}
	snapshot, err := uc.PublishUpdate(context.Background(), driverID, update)

	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.True(t, snapshot.IsOnline)
	require.NotNil(t, snapshot.DistanceToPickupKm)
	require.NotNil(t, snapshot.DistanceToDropKm)
	// Driver is standing on the pickup waypoint
	assert.InDelta(t, 0, *snapshot.DistanceToPickupKm, 0.001)
	assert.Greater(t, *snapshot.DistanceToDropKm, 10.0)
	assert.Equal(t, saved, snapshot)
}

func TestPublishUpdate_NoAssignmentLeavesDistancesNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocRepo := mocks.NewMockLocationRepo(ctrl)
	mockAsgRepo := mocks.NewMockAssignmentRepo(ctrl)
	mockGW := mocks.NewMockTrackerGW(ctrl)

	driverID := uuid.New()
	mockAsgRepo.EXPECT().GetActiveForDriver(gomock.Any(), driverID).
		Return(nil, tracker.ErrAssignmentNotFound)
	mockLocRepo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	mockLocRepo.EXPECT().AppendHistory(gomock.Any(), driverID, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLocationEvent(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewLocationUsecase(mockLocRepo, mockAsgRepo, mockGW, geocode.Noop{}, trackingConfig())

	snapshot, err := uc.PublishUpdate(context.Background(), driverID,
		&models.LocationUpdate{Latitude: 1, Longitude: 2})

	require.NoError(t, err)
	assert.Nil(t, snapshot.DistanceToPickupKm)
	assert.Nil(t, snapshot.DistanceToDropKm)
}

func TestPublishUpdate_RejectsInvalidCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewLocationUsecase(
		mocks.NewMockLocationRepo(ctrl),
		mocks.NewMockAssignmentRepo(ctrl),
		mocks.NewMockTrackerGW(ctrl),
		geocode.Noop{},
		trackingConfig(),
	)

	_, err := uc.PublishUpdate(context.Background(), uuid.New(),
		&models.LocationUpdate{Latitude: 91, Longitude: 0})
	assert.Error(t, err)

	_, err = uc.PublishUpdate(context.Background(), uuid.New(),
		&models.LocationUpdate{Latitude: 0, Longitude: 181})
	assert.Error(t, err)

	_, err = uc.PublishUpdate(context.Background(), uuid.New(), nil)
	assert.Error(t, err)
}

func TestPublishUpdate_EventFailureDoesNotFailUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocRepo := mocks.NewMockLocationRepo(ctrl)
	mockAsgRepo := mocks.NewMockAssignmentRepo(ctrl)
	mockGW := mocks.NewMockTrackerGW(ctrl)

	driverID := uuid.New()
	mockAsgRepo.EXPECT().GetActiveForDriver(gomock.Any(), driverID).
		Return(nil, tracker.ErrAssignmentNotFound)
	mockLocRepo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	mockLocRepo.EXPECT().AppendHistory(gomock.Any(), driverID, gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishLocationEvent(gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	uc := NewLocationUsecase(mockLocRepo, mockAsgRepo, mockGW, geocode.Noop{}, trackingConfig())

	_, err := uc.PublishUpdate(context.Background(), driverID,
		&models.LocationUpdate{Latitude: 1, Longitude: 2})
	assert.NoError(t, err)
}

func TestGoOffline_PublishesOfflineEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocRepo := mocks.NewMockLocationRepo(ctrl)
	mockGW := mocks.NewMockTrackerGW(ctrl)

	driverID := uuid.New()
	mockLocRepo.EXPECT().MarkOffline(gomock.Any(), driverID).Return(nil)
	mockGW.EXPECT().PublishLocationEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.LocationEvent) error {
			assert.False(t, event.Online)
			assert.Equal(t, driverID.String(), event.DriverID)
			return nil
		})

	uc := NewLocationUsecase(mockLocRepo, mocks.NewMockAssignmentRepo(ctrl), mockGW, geocode.Noop{}, trackingConfig())

	assert.NoError(t, uc.GoOffline(context.Background(), driverID))
}

func TestSnapshotForRider_NoAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAsgRepo := mocks.NewMockAssignmentRepo(ctrl)
	userID := uuid.New()
	mockAsgRepo.EXPECT().GetActiveForUser(gomock.Any(), userID).
		Return(nil, tracker.ErrAssignmentNotFound)

	uc := NewLocationUsecase(mocks.NewMockLocationRepo(ctrl), mockAsgRepo, nil, geocode.Noop{}, trackingConfig())

	_, err := uc.SnapshotForRider(context.Background(), userID)
	assert.ErrorIs(t, err, tracker.ErrAssignmentNotFound)
}

func TestSnapshotForRider_DriverNeverShared(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocRepo := mocks.NewMockLocationRepo(ctrl)
	mockAsgRepo := mocks.NewMockAssignmentRepo(ctrl)

	userID := uuid.New()
	driverID := uuid.New()
	mockAsgRepo.EXPECT().GetActiveForUser(gomock.Any(), userID).
		Return(&models.Assignment{ID: uuid.New(), DriverID: driverID}, nil)
	mockLocRepo.EXPECT().GetSnapshot(gomock.Any(), driverID).
		Return(nil, tracker.ErrLocationNotFound)

	uc := NewLocationUsecase(mockLocRepo, mockAsgRepo, nil, geocode.Noop{}, trackingConfig())

	_, err := uc.SnapshotForRider(context.Background(), userID)
	assert.ErrorIs(t, err, tracker.ErrLocationNotFound)
}

func TestSnapshotForRider_StaleSnapshotReadsOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocRepo := mocks.NewMockLocationRepo(ctrl)
	mockAsgRepo := mocks.NewMockAssignmentRepo(ctrl)

	userID := uuid.New()
	driverID := uuid.New()
	mockAsgRepo.EXPECT().GetActiveForUser(gomock.Any(), userID).
		Return(&models.Assignment{ID: uuid.New(), DriverID: driverID}, nil)
	mockLocRepo.EXPECT().GetSnapshot(gomock.Any(), driverID).
		Return(&models.DriverLocationSnapshot{
			DriverID:    driverID.String(),
			IsOnline:    true,
			LastUpdated: time.Now().Add(-2 * time.Minute),
		}, nil)

	uc := NewLocationUsecase(mockLocRepo, mockAsgRepo, nil, geocode.Noop{}, trackingConfig())

	snapshot, err := uc.SnapshotForRider(context.Background(), userID)
	require.NoError(t, err)
	assert.False(t, snapshot.IsOnline)
}

func TestSnapshotForRider_FreshSnapshotStaysOnline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocRepo := mocks.NewMockLocationRepo(ctrl)
	mockAsgRepo := mocks.NewMockAssignmentRepo(ctrl)

	userID := uuid.New()
	driverID := uuid.New()
	mockAsgRepo.EXPECT().GetActiveForUser(gomock.Any(), userID).
		Return(&models.Assignment{ID: uuid.New(), DriverID: driverID}, nil)
	mockLocRepo.EXPECT().GetSnapshot(gomock.Any(), driverID).
		Return(&models.DriverLocationSnapshot{
			DriverID:    driverID.String(),
			IsOnline:    true,
			LastUpdated: time.Now().Add(-10 * time.Second),
		}, nil)

	uc := NewLocationUsecase(mockLocRepo, mockAsgRepo, nil, geocode.Noop{}, trackingConfig())

	snapshot, err := uc.SnapshotForRider(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, snapshot.IsOnline)
}

func TestNearbyDrivers_DefaultsRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLocRepo := mocks.NewMockLocationRepo(ctrl)
	mockLocRepo.EXPECT().NearbyDrivers(gomock.Any(), -6.2, 106.8, 5.0).
		Return([]models.NearbyDriver{}, nil)

	uc := NewLocationUsecase(mockLocRepo, mocks.NewMockAssignmentRepo(ctrl), nil, geocode.Noop{}, trackingConfig())

	_, err := uc.NearbyDrivers(context.Background(), -6.2, 106.8, 0)
	assert.NoError(t, err)
}
