package utils

import (
	"fmt"
	"math"

	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the Haversine formula. NaN inputs propagate as NaN.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	rlat1 := lat1 * math.Pi / 180.0
	rlon1 := lon1 * math.Pi / 180.0
	rlat2 := lat2 * math.Pi / 180.0
	rlon2 := lon2 * math.Pi / 180.0

	dLat := rlat2 - rlat1
	dLon := rlon2 - rlon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// Distance calculates the distance between two GeoPoints in kilometers
func Distance(p1, p2 GeoPoint) float64 {
	return DistanceKm(p1.Latitude, p1.Longitude, p2.Latitude, p2.Longitude)
}

// FormatDistanceKm renders a distance for display: values below 1 km are
// shown in whole meters ("450m"), everything else in kilometers with one
// decimal ("2.3km").
func FormatDistanceKm(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0fm", km*1000)
	}
	return fmt.Sprintf("%.1fkm", km)
}

// EncodeGeohash converts a coordinate pair to a geohash cell of the given
// precision
func EncodeGeohash(latitude, longitude float64, precision uint) string {
	return geohash.EncodeWithPrecision(latitude, longitude, precision)
}

// DecodeGeohash converts a geohash string back to its cell center
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// GeohashNeighbors returns the neighboring cells of a geohash
func GeohashNeighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
