package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	points := []GeoPoint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 40.7128, Longitude: -74.0060},
		{Latitude: -6.2088, Longitude: 106.8456},
		{Latitude: 89.9, Longitude: 179.9},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p.Latitude, p.Longitude, p.Latitude, p.Longitude))
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	cases := []struct {
		a, b GeoPoint
	}{
		{GeoPoint{40.7128, -74.0060}, GeoPoint{34.0522, -118.2437}},
		{GeoPoint{-6.2088, 106.8456}, GeoPoint{-6.1751, 106.8650}},
		{GeoPoint{51.5074, -0.1278}, GeoPoint{48.8566, 2.3522}},
		{GeoPoint{0, 179.9}, GeoPoint{0, -179.9}},
	}

	for _, tc := range cases {
		forward := Distance(tc.a, tc.b)
		backward := Distance(tc.b, tc.a)
		assert.InDelta(t, forward, backward, 1e-9)
	}
}

func TestDistanceKm_OneDegreeLongitudeAtNewYork(t *testing.T) {
	// One degree of longitude at New York's latitude spans about 84.4 km
	got := DistanceKm(40.7128, -74.0060, 40.7128, -73.0060)
	assert.InDelta(t, 84.4, got, 1.0)
}

func TestDistanceKm_KnownCityPair(t *testing.T) {
	// London to Paris is roughly 344 km great-circle
	got := DistanceKm(51.5074, -0.1278, 48.8566, 2.3522)
	assert.InDelta(t, 344, got, 5)
}

func TestDistanceKm_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(DistanceKm(math.NaN(), 0, 0, 0)))
	assert.True(t, math.IsNaN(DistanceKm(0, 0, 0, math.NaN())))
}

func TestFormatDistanceKm(t *testing.T) {
	cases := []struct {
		km       float64
		expected string
	}{
		{0.45, "450m"},
		{1.0, "1.0km"},
		{0.999, "999m"},
		{2.345, "2.3km"},
		{0, "0m"},
		{12.06, "12.1km"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, FormatDistanceKm(tc.km))
	}
}

func TestGeohashRoundTrip(t *testing.T) {
	hash := EncodeGeohash(40.7128, -74.0060, 7)
	assert.Len(t, hash, 7)

	lat, lon := DecodeGeohash(hash)
	assert.InDelta(t, 40.7128, lat, 0.01)
	assert.InDelta(t, -74.0060, lon, 0.01)
}

func TestGeohashNeighbors(t *testing.T) {
	neighbors := GeohashNeighbors(EncodeGeohash(40.7128, -74.0060, 6))
	assert.Len(t, neighbors, 8)
}
