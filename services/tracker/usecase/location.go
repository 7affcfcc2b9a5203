package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/transhub/shuttletrack/internal/pkg/geocode"
	"github.com/transhub/shuttletrack/internal/pkg/logger"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/internal/utils"
	"github.com/transhub/shuttletrack/services/tracker"
)

// LocationUsecase implements tracker.LocationUC
type LocationUsecase struct {
	locationRepo   tracker.LocationRepo
	assignmentRepo tracker.AssignmentRepo
	gw             tracker.TrackerGW
	geocoder       geocode.Geocoder
	cfg            *models.Config
}

// NewLocationUsecase creates a new location use case
func NewLocationUsecase(
	locationRepo tracker.LocationRepo,
	assignmentRepo tracker.AssignmentRepo,
	gw tracker.TrackerGW,
	geocoder geocode.Geocoder,
	cfg *models.Config,
) *LocationUsecase {
	return &LocationUsecase{
		locationRepo:   locationRepo,
		assignmentRepo: assignmentRepo,
		gw:             gw,
		geocoder:       geocoder,
		cfg:            cfg,
	}
}

// PublishUpdate records a driver position, computes distances to the active
// assignment's waypoints, and marks the driver online
func (uc *LocationUsecase) PublishUpdate(ctx context.Context, driverID uuid.UUID, update *models.LocationUpdate) (*models.DriverLocationSnapshot, error) {
	if err := validateUpdate(update); err != nil {
		return nil, err
	}

	snapshot := &models.DriverLocationSnapshot{
		DriverID:    driverID.String(),
		Latitude:    update.Latitude,
		Longitude:   update.Longitude,
		Accuracy:    update.Accuracy,
		Speed:       update.Speed,
		Heading:     update.Heading,
		IsOnline:    true,
		LastUpdated: time.Now(),
	}

	// Distances are computed here, against the stored waypoints, so that
	// every reader sees the same figures
	assignment, err := uc.assignmentRepo.GetActiveForDriver(ctx, driverID)
	switch {
	case err == nil:
		pickup := utils.DistanceKm(update.Latitude, update.Longitude,
			assignment.Pickup.Latitude, assignment.Pickup.Longitude)
		drop := utils.DistanceKm(update.Latitude, update.Longitude,
			assignment.Drop.Latitude, assignment.Drop.Longitude)
		snapshot.DistanceToPickupKm = &pickup
		snapshot.DistanceToDropKm = &drop
	case errors.Is(err, tracker.ErrAssignmentNotFound):
		// No active assignment, position is still worth recording
	default:
		return nil, err
	}

	if uc.cfg.Tracking.GeocodeEnabled {
		// Best effort, a failed lookup never blocks the update
		address, gerr := uc.geocoder.ReverseGeocode(ctx, update.Latitude, update.Longitude)
		if gerr != nil {
			logger.Warn("reverse geocode failed",
				logger.String("driver_id", driverID.String()),
				logger.Err(gerr))
		} else {
			snapshot.ResolvedAddress = address
		}
	}

	if err := uc.locationRepo.SaveSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}
	if err := uc.locationRepo.AppendHistory(ctx, driverID, update); err != nil {
		logger.Warn("failed to append location history",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}

	uc.publishEvent(ctx, &models.LocationEvent{
		DriverID:  driverID.String(),
		Latitude:  update.Latitude,
		Longitude: update.Longitude,
		Speed:     update.Speed,
		Heading:   update.Heading,
		Geohash:   utils.EncodeGeohash(update.Latitude, update.Longitude, 7),
		Online:    true,
		Timestamp: snapshot.LastUpdated,
	})

	return snapshot, nil
}

// GoOffline flips the driver's online flag while keeping the last position
func (uc *LocationUsecase) GoOffline(ctx context.Context, driverID uuid.UUID) error {
	if err := uc.locationRepo.MarkOffline(ctx, driverID); err != nil {
		return err
	}

	uc.publishEvent(ctx, &models.LocationEvent{
		DriverID:  driverID.String(),
		Online:    false,
		Timestamp: time.Now(),
	})

	return nil
}

// SnapshotForRider resolves the rider's assigned driver and returns that
// driver's last-known snapshot. A snapshot older than the staleness timeout
// is reported offline.
func (uc *LocationUsecase) SnapshotForRider(ctx context.Context, userID uuid.UUID) (*models.DriverLocationSnapshot, error) {
	assignment, err := uc.assignmentRepo.GetActiveForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot, err := uc.locationRepo.GetSnapshot(ctx, assignment.DriverID)
	if err != nil {
		return nil, err
	}

	if snapshot.IsOnline && time.Since(snapshot.LastUpdated) > uc.cfg.Tracking.StalenessTimeout {
		snapshot.IsOnline = false
	}

	return snapshot, nil
}

// NearbyDrivers lists drivers within radiusKm of a point, nearest first
func (uc *LocationUsecase) NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyDriver, error) {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = 5
	}

	return uc.locationRepo.NearbyDrivers(ctx, latitude, longitude, radiusKm)
}

func (uc *LocationUsecase) publishEvent(ctx context.Context, event *models.LocationEvent) {
	if uc.gw == nil {
		return
	}
	if err := uc.gw.PublishLocationEvent(ctx, event); err != nil {
		logger.Warn("failed to publish location event",
			logger.String("driver_id", event.DriverID),
			logger.Err(err))
	}
}

func validateUpdate(update *models.LocationUpdate) error {
	if update == nil {
		return fmt.Errorf("location update is required")
	}
	if err := validateCoordinates(update.Latitude, update.Longitude); err != nil {
		return err
	}
	if update.Accuracy < 0 {
		return fmt.Errorf("accuracy must be non-negative")
	}
	return nil
}

func validateCoordinates(latitude, longitude float64) error {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}
