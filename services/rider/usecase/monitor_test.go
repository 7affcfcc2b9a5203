package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transhub/shuttletrack/internal/pkg/apiclient"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/services/rider/mocks"
)

func notFound() error {
	return fmt.Errorf("/driver-assignment/user: %w", apiclient.ErrNotFound)
}

func activeAssignment() *models.Assignment {
	return &models.Assignment{
		ID:         uuid.New(),
		DriverID:   uuid.New(),
		DriverName: "Driver One",
		BusNumber:  "B-7",
		Pickup:     models.Waypoint{Label: "Depot", Latitude: -6.2, Longitude: 106.8},
		Drop:       models.Waypoint{Label: "Campus", Latitude: -6.3, Longitude: 106.9},
		Status:     models.AssignmentStatusActive,
	}
}

func TestRefreshAssignment_NoAssignmentSkipsLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRiderGW(ctrl)
	mockGW.EXPECT().Assignment(gomock.Any()).Return(nil, notFound())
	// No DriverLocation call may follow a 404 assignment

	m := NewMonitor(mockGW, time.Hour, time.Hour)
	m.RefreshAssignment(context.Background())

	view := m.View()
	assert.Equal(t, StateNoAssignment, view.State)
	assert.Nil(t, view.Assignment)
	assert.Nil(t, view.DriverLocation)
	assert.Equal(t, "No active assignment", view.StatusMessage)
}

func TestRefreshAssignment_TriggersLocationRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dist := 2.345
	mockGW := mocks.NewMockRiderGW(ctrl)
	mockGW.EXPECT().Assignment(gomock.Any()).Return(activeAssignment(), nil)
	mockGW.EXPECT().DriverLocation(gomock.Any()).Return(&models.DriverLocationSnapshot{
		DriverID:           uuid.New().String(),
		Latitude:           -6.25,
		Longitude:          106.85,
		IsOnline:           true,
		LastUpdated:        time.Now(),
		DistanceToPickupKm: &dist,
	}, nil)

	m := NewMonitor(mockGW, time.Hour, time.Hour)
	m.RefreshAssignment(context.Background())

	view := m.View()
	assert.Equal(t, StateHasAssignment, view.State)
	require.NotNil(t, view.Assignment)
	assert.True(t, view.LocationKnown)
	assert.Equal(t, "2.3km", view.DistanceToPickup)
	// Drop distance not reported yet
	assert.Equal(t, "Calculating...", view.DistanceToDrop)
}

func TestRefreshLocation_DriverNotSharing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRiderGW(ctrl)
	mockGW.EXPECT().Assignment(gomock.Any()).Return(activeAssignment(), nil)
	mockGW.EXPECT().DriverLocation(gomock.Any()).Return(nil, notFound())

	m := NewMonitor(mockGW, time.Hour, time.Hour)
	m.RefreshAssignment(context.Background())

	view := m.View()
	// A missing location is not an error state, the assignment stays
	assert.Equal(t, StateHasAssignment, view.State)
	assert.False(t, view.LocationKnown)
	assert.Nil(t, view.DriverLocation)
	assert.Equal(t, "Driver is offline or hasn't shared their location yet", view.StatusMessage)
}

func TestRefreshAssignment_BackendErrorIsRecoverable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRiderGW(ctrl)
	mockGW.EXPECT().Assignment(gomock.Any()).Return(nil, &apiclient.APIError{
		StatusCode: 500,
		Message:    "database unavailable",
	})

	m := NewMonitor(mockGW, time.Hour, time.Hour)
	m.RefreshAssignment(context.Background())

	view := m.View()
	assert.Equal(t, StateError, view.State)
	assert.Equal(t, "database unavailable", view.StatusMessage)

	// The next poll recovers
	mockGW.EXPECT().Assignment(gomock.Any()).Return(activeAssignment(), nil)
	mockGW.EXPECT().DriverLocation(gomock.Any()).Return(nil, notFound())
	m.RefreshAssignment(context.Background())
	assert.Equal(t, StateHasAssignment, m.View().State)
}

func TestRefreshLocation_WithoutAssignmentIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRiderGW(ctrl)
	// No gateway calls expected at all

	m := NewMonitor(mockGW, time.Hour, time.Hour)
	m.RefreshLocation(context.Background())

	assert.Equal(t, StateLoading, m.View().State)
}

func TestMonitor_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockRiderGW(ctrl)
	mockGW.EXPECT().Assignment(gomock.Any()).Return(nil, notFound()).MinTimes(1)

	m := NewMonitor(mockGW, time.Hour, time.Hour)
	m.Start(context.Background())
	assert.Equal(t, StateNoAssignment, m.View().State)

	m.Stop()
	// Idempotent
	m.Stop()
}

func TestView_FormatsShortDistancesInMeters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pickup := 0.45
	drop := 12.0
	mockGW := mocks.NewMockRiderGW(ctrl)
	mockGW.EXPECT().Assignment(gomock.Any()).Return(activeAssignment(), nil)
	mockGW.EXPECT().DriverLocation(gomock.Any()).Return(&models.DriverLocationSnapshot{
		IsOnline:           true,
		LastUpdated:        time.Now(),
		DistanceToPickupKm: &pickup,
		DistanceToDropKm:   &drop,
	}, nil)

	m := NewMonitor(mockGW, time.Hour, time.Hour)
	m.RefreshAssignment(context.Background())

	view := m.View()
	assert.Equal(t, "450m", view.DistanceToPickup)
	assert.Equal(t, "12.0km", view.DistanceToDrop)
}
