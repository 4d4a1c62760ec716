package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_SameOriginAndDestination(t *testing.T) {
	point := GeoPoint{Latitude: 48.8566, Longitude: 2.3522}
	input := Input{
		Quantity:      10,
		Unit:          "pallet",
		TonnesPerUnit: 1,
		TransportMode: ModeTrain,
		Origin:        point,
		Destination:   point,
	}

	result := Compute(input)

	assert.Equal(t, 10.0, result.TotalWeightTonnes)
	assert.Zero(t, result.DistanceKm)
	assert.Zero(t, result.CarbonFootprintKg)
	assert.Zero(t, result.TreesNeeded)
	assert.InDelta(t, 0.03, result.EmissionFactor, 1e-12)
}

func TestCompute_ShipRoute(t *testing.T) {
	input := Input{
		Quantity:      200,
		Unit:          "container",
		TonnesPerUnit: 2.5,
		TransportMode: ModeShip,
		Origin:        GeoPoint{Latitude: 51.9244, Longitude: 4.4777},   // Rotterdam
		Destination:   GeoPoint{Latitude: 31.2304, Longitude: 121.4737}, // Shanghai
	}

	result := Compute(input)

	assert.Equal(t, 500.0, result.TotalWeightTonnes)
	assert.InDelta(t, 0.04, result.EmissionFactor, 1e-12)
	assert.Greater(t, result.DistanceKm, 8000.0)

	// Footprint must match weight x distance x factor within the rounding
	// tolerance of the presented distance.
	expected := result.TotalWeightTonnes * result.DistanceKm * 0.04
	assert.InDelta(t, expected, result.CarbonFootprintKg, expected*0.001)
	assert.Equal(t, treesNeeded(result.CarbonFootprintKg), result.TreesNeeded)
	assert.Positive(t, result.TreesNeeded)
}

func TestCompute_Deterministic(t *testing.T) {
	input := Input{
		Quantity:      7.3,
		Unit:          "tonne",
		TonnesPerUnit: 1,
		TransportMode: ModeTruck,
		Fuels:         FuelSelection{FuelHVO, FuelCNG},
		Cooled:        true,
		Origin:        GeoPoint{Latitude: 40.4168, Longitude: -3.7038},
		Destination:   GeoPoint{Latitude: 52.5200, Longitude: 13.4050},
	}

	first := Compute(input)
	second := Compute(input)

	require.Equal(t, first, second)
}

func TestCompute_RoundingPrecision(t *testing.T) {
	input := Input{
		Quantity:      3,
		Unit:          "pallet",
		TonnesPerUnit: 0.7,
		TransportMode: ModeTruck,
		Fuels:         FuelSelection{FuelDiesel, FuelCNG, FuelBEV},
		Cooled:        true,
		Origin:        GeoPoint{Latitude: 45.4642, Longitude: 9.1900},
		Destination:   GeoPoint{Latitude: 48.2082, Longitude: 16.3738},
	}

	result := Compute(input)

	// (0.12+0.10+0.04)/3 * 1.3 rounded to 4 decimals.
	assert.InDelta(t, 0.1127, result.EmissionFactor, 1e-12)
	assert.Equal(t, roundTo(result.DistanceKm, 2), result.DistanceKm)
	assert.Equal(t, roundTo(result.CarbonFootprintKg, 2), result.CarbonFootprintKg)
}

func TestTreesNeeded(t *testing.T) {
	tests := []struct {
		name        string
		footprintKg float64
		expected    int
	}{
		{"zero footprint", 0, 0},
		{"below one tree", 1.5, 1},
		{"exactly one tree", 21.0, 1},
		{"just above one tree", 21.01, 2},
		{"large footprint", 420.0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, treesNeeded(tt.footprintKg))
		})
	}
}
