// Package geo holds the pure geographic primitives used by the discovery
// ranking path.
package geo

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula
const earthRadiusKm = 6371.0

// HaversineKm computes the great-circle distance between two coordinates in
// kilometers. Pure and deterministic: identical inputs always produce
// identical output regardless of call order.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180.0
	rLon1 := lon1 * math.Pi / 180.0
	rLat2 := lat2 * math.Pi / 180.0
	rLon2 := lon2 * math.Pi / 180.0

	dLat := rLat2 - rLat1
	dLon := rLon2 - rLon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// Encode converts coordinates to a geohash string at the given precision
func Encode(lat, lng float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// Decode converts a geohash string back to coordinates
func Decode(hash string) (lat, lng float64) {
	return geohash.Decode(hash)
}

// Neighbors returns the neighboring geohash cells of a given cell
func Neighbors(hash string) []string {
	return geohash.Neighbors(hash)
}
