package models

import "time"

// Position is a single acquired device fix with accuracy metadata.
// Positions are ephemeral: they live in memory for the current session only.
type Position struct {
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters float64   `json:"accuracy"`
	CapturedAt     time.Time `json:"capturedAt"`
}

// MotionSample carries the speed and heading attached to a published position
type MotionSample struct {
	SpeedKmh       float64 `json:"speed"`
	HeadingDegrees float64 `json:"heading"`
}

// LocationUpdate is the payload a driver publishes to the tracking backend
type LocationUpdate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
	Speed     float64 `json:"speed"`
	Heading   float64 `json:"heading"`
}

// DriverLocationSnapshot is the server-held last-known state of a driver,
// read by riders. Distance fields stay nil until both the driver position
// and the relevant waypoint are known.
type DriverLocationSnapshot struct {
	DriverID           string    `json:"driverId"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	Accuracy           float64   `json:"accuracy"`
	Speed              float64   `json:"speed"`
	Heading            float64   `json:"heading"`
	IsOnline           bool      `json:"isOnline"`
	LastUpdated        time.Time `json:"lastUpdated"`
	DistanceToPickupKm *float64  `json:"distanceToPickup"`
	DistanceToDropKm   *float64  `json:"distanceToDrop"`
	ResolvedAddress    string    `json:"address,omitempty"`
}

// NearbyDriver is a geo-radius query result, nearest first
type NearbyDriver struct {
	DriverID   string  `json:"driverId"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distanceKm"`
}

// LocationEvent is published to NSQ whenever a driver shares or stops
// sharing their position.
type LocationEvent struct {
	DriverID  string    `json:"driver_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Speed     float64   `json:"speed"`
	Heading   float64   `json:"heading"`
	Geohash   string    `json:"geohash,omitempty"`
	Online    bool      `json:"online"`
	Timestamp time.Time `json:"timestamp"`
}
