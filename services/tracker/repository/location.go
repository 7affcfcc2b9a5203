package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/transhub/shuttletrack/internal/pkg/database"
	"github.com/transhub/shuttletrack/internal/pkg/models"
	"github.com/transhub/shuttletrack/internal/utils"
	"github.com/transhub/shuttletrack/services/tracker"
)

const (
	keyDriverLocation = "driver:location:%s"
	keyDriverHistory  = "driver:history:%s:%s"
	keyDriversGeo     = "drivers:geo"

	// HistoryTTL keeps per-day position trails long enough for route review
	HistoryTTL = 24 * time.Hour

	// geohashPrecision of 7 resolves to roughly a city block
	geohashPrecision = 7
)

const (
	fieldLatitude   = "latitude"
	fieldLongitude  = "longitude"
	fieldAccuracy   = "accuracy"
	fieldSpeed      = "speed"
	fieldHeading    = "heading"
	fieldOnline     = "online"
	fieldUpdatedAt  = "updated_at"
	fieldGeohash    = "geohash"
	fieldAddress    = "address"
	fieldDistPickup = "dist_pickup"
	fieldDistDrop   = "dist_drop"
)

type locationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository creates a Redis-backed location repository
func NewLocationRepository(redisClient *database.RedisClient) tracker.LocationRepo {
	return &locationRepo{
		redisClient: redisClient,
	}
}

// SaveSnapshot stores the driver's last-known state in a hash and indexes
// the position in the geo set for radius queries
func (r *locationRepo) SaveSnapshot(ctx context.Context, snapshot *models.DriverLocationSnapshot) error {
	key := fmt.Sprintf(keyDriverLocation, snapshot.DriverID)

	fields := map[string]interface{}{
		fieldLatitude:  strconv.FormatFloat(snapshot.Latitude, 'f', -1, 64),
		fieldLongitude: strconv.FormatFloat(snapshot.Longitude, 'f', -1, 64),
		fieldAccuracy:  strconv.FormatFloat(snapshot.Accuracy, 'f', -1, 64),
		fieldSpeed:     strconv.FormatFloat(snapshot.Speed, 'f', -1, 64),
		fieldHeading:   strconv.FormatFloat(snapshot.Heading, 'f', -1, 64),
		fieldOnline:    strconv.FormatBool(snapshot.IsOnline),
		fieldUpdatedAt: strconv.FormatInt(snapshot.LastUpdated.Unix(), 10),
		fieldGeohash:   utils.EncodeGeohash(snapshot.Latitude, snapshot.Longitude, geohashPrecision),
		fieldAddress:   snapshot.ResolvedAddress,
	}
	if snapshot.DistanceToPickupKm != nil {
		fields[fieldDistPickup] = strconv.FormatFloat(*snapshot.DistanceToPickupKm, 'f', -1, 64)
	}
	if snapshot.DistanceToDropKm != nil {
		fields[fieldDistDrop] = strconv.FormatFloat(*snapshot.DistanceToDropKm, 'f', -1, 64)
	}

	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, keyDriversGeo, snapshot.Longitude, snapshot.Latitude, snapshot.DriverID); err != nil {
		return fmt.Errorf("failed to index driver position: %w", err)
	}

	return nil
}

// GetSnapshot reads the driver's last-known state from the location hash
func (r *locationRepo) GetSnapshot(ctx context.Context, driverID uuid.UUID) (*models.DriverLocationSnapshot, error) {
	key := fmt.Sprintf(keyDriverLocation, driverID.String())

	values, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	if len(values) == 0 {
		return nil, tracker.ErrLocationNotFound
	}

	snapshot := &models.DriverLocationSnapshot{
		DriverID:        driverID.String(),
		ResolvedAddress: values[fieldAddress],
	}

	if snapshot.Latitude, err = strconv.ParseFloat(values[fieldLatitude], 64); err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	if snapshot.Longitude, err = strconv.ParseFloat(values[fieldLongitude], 64); err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	snapshot.Accuracy, _ = strconv.ParseFloat(values[fieldAccuracy], 64)
	snapshot.Speed, _ = strconv.ParseFloat(values[fieldSpeed], 64)
	snapshot.Heading, _ = strconv.ParseFloat(values[fieldHeading], 64)
	snapshot.IsOnline, _ = strconv.ParseBool(values[fieldOnline])

	ts, err := strconv.ParseInt(values[fieldUpdatedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}
	snapshot.LastUpdated = time.Unix(ts, 0)

	if raw, ok := values[fieldDistPickup]; ok && raw != "" {
		if d, perr := strconv.ParseFloat(raw, 64); perr == nil {
			snapshot.DistanceToPickupKm = &d
		}
	}
	if raw, ok := values[fieldDistDrop]; ok && raw != "" {
		if d, perr := strconv.ParseFloat(raw, 64); perr == nil {
			snapshot.DistanceToDropKm = &d
		}
	}

	return snapshot, nil
}

// MarkOffline flips the online flag while keeping the last position readable
func (r *locationRepo) MarkOffline(ctx context.Context, driverID uuid.UUID) error {
	key := fmt.Sprintf(keyDriverLocation, driverID.String())

	existing, err := r.redisClient.HGetAll(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to read driver location: %w", err)
	}
	if len(existing) == 0 {
		// Driver never shared a position, nothing to flip
		return nil
	}

	fields := map[string]interface{}{
		fieldOnline: strconv.FormatBool(false),
	}
	if err := r.redisClient.HMSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to mark driver offline: %w", err)
	}

	return nil
}

// AppendHistory pushes the raw update onto the driver's daily trail
func (r *locationRepo) AppendHistory(ctx context.Context, driverID uuid.UUID, update *models.LocationUpdate) error {
	day := time.Now().UTC().Format("2006-01-02")
	key := fmt.Sprintf(keyDriverHistory, driverID.String(), day)

	payload, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal location history entry: %w", err)
	}

	if err := r.redisClient.RPush(ctx, key, payload); err != nil {
		return fmt.Errorf("failed to append location history: %w", err)
	}
	if err := r.redisClient.Expire(ctx, key, HistoryTTL); err != nil {
		return fmt.Errorf("failed to set history TTL: %w", err)
	}

	return nil
}

// NearbyDrivers queries the geo set for drivers within radiusKm, nearest first
func (r *locationRepo) NearbyDrivers(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.NearbyDriver, error) {
	results, err := r.redisClient.GeoRadius(ctx, keyDriversGeo, longitude, latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby drivers: %w", err)
	}

	drivers := make([]models.NearbyDriver, 0, len(results))
	for _, loc := range results {
		drivers = append(drivers, models.NearbyDriver{
			DriverID:   loc.Name,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
			DistanceKm: loc.Dist,
		})
	}

	return drivers, nil
}
