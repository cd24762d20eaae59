// Package geo provides great-circle distance between coordinates.
package geo

import (
	"math"

	"route-evaluator/entities"
)

// EarthRadiusMiles is the mean radius of Earth in miles.
const EarthRadiusMiles = 3958.8

// Haversine returns the great-circle distance in miles between two points
// given in decimal degrees. NaN inputs yield NaN.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := degreesToRadians(lat1)
	lat2Rad := degreesToRadians(lat2)
	deltaLat := degreesToRadians(lat2 - lat1)
	deltaLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMiles * c
}

// Distance returns the haversine distance in miles between a and b.
func Distance(a, b entities.Coordinate) float64 {
	return Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
}

// IsValid reports whether c lies within latitude [-90, 90] and longitude [-180, 180].
func IsValid(c entities.Coordinate) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
