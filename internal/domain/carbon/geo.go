// Package carbon implements the freight carbon footprint calculation
// engine: great-circle distance, emission factor resolution, and the
// footprint metrics derived from them.
//
// Every function in this package is pure. There is no I/O, no shared
// mutable state, and no error surface; all exported functions are safe
// for concurrent use from any number of goroutines.
package carbon

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// GeoPoint is a geographic coordinate in decimal degrees. Latitude is
// expected in [-90, 90] and longitude in [-180, 180]; callers are
// responsible for range validation.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Distance returns the great-circle distance between two points in
// kilometers using the haversine formula.
//
// The function is total over finite coordinates: out-of-range values
// produce a mathematically defined but semantically meaningless result
// rather than an error. Distance is symmetric, never negative, and
// Distance(a, a) == 0.
func Distance(a, b GeoPoint) float64 {
	latARad := a.Latitude * math.Pi / 180
	latBRad := b.Latitude * math.Pi / 180
	deltaLat := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(latARad)*math.Cos(latBRad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
