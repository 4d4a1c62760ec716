package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_QuarterGreatCircle(t *testing.T) {
	// Equator to 90 degrees east is a quarter of the great circle.
	origin := GeoPoint{Latitude: 0, Longitude: 0}
	destination := GeoPoint{Latitude: 0, Longitude: 90}

	distance := Distance(origin, destination)

	assert.InDelta(t, 10007.5, distance, 0.1)
}

func TestDistance_Symmetry(t *testing.T) {
	points := []struct {
		name string
		a, b GeoPoint
	}{
		{"taipei to tokyo", GeoPoint{25.0330, 121.5654}, GeoPoint{35.6762, 139.6503}},
		{"rotterdam to shanghai", GeoPoint{51.9244, 4.4777}, GeoPoint{31.2304, 121.4737}},
		{"across the antimeridian", GeoPoint{-36.8485, 174.7633}, GeoPoint{37.7749, -122.4194}},
		{"pole to pole", GeoPoint{90, 0}, GeoPoint{-90, 0}},
	}

	for _, tt := range points {
		t.Run(tt.name, func(t *testing.T) {
			forward := Distance(tt.a, tt.b)
			backward := Distance(tt.b, tt.a)

			assert.Equal(t, forward, backward)
			assert.GreaterOrEqual(t, forward, 0.0)
		})
	}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	points := []GeoPoint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 51.9244, Longitude: 4.4777},
		{Latitude: -90, Longitude: 180},
	}

	for _, p := range points {
		assert.Zero(t, Distance(p, p))
	}
}

func TestDistance_KnownRoute(t *testing.T) {
	// Rotterdam to Hamburg is roughly 440 km as the crow flies.
	rotterdam := GeoPoint{Latitude: 51.9244, Longitude: 4.4777}
	hamburg := GeoPoint{Latitude: 53.5511, Longitude: 9.9937}

	distance := Distance(rotterdam, hamburg)

	assert.InDelta(t, 440, distance, 10)
}
