package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmissionFactor_BaseTable(t *testing.T) {
	tests := []struct {
		name     string
		mode     TransportMode
		expected float64
	}{
		{"truck default", ModeTruck, 0.12},
		{"ship", ModeShip, 0.04},
		{"plane", ModePlane, 0.5},
		{"train", ModeTrain, 0.03},
		{"intermodal", ModeIntermodal, 0.08},
		{"other", ModeOther, 0.10},
		{"unrecognized mode", TransportMode("hovercraft"), 0.10},
		{"empty mode", TransportMode(""), 0.10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EmissionFactor(tt.mode, nil, false), 1e-12)
		})
	}
}

func TestEmissionFactor_TruckFuelMix(t *testing.T) {
	tests := []struct {
		name     string
		fuels    FuelSelection
		expected float64
	}{
		{"no fuels keeps base", nil, 0.12},
		{"empty selection keeps base", FuelSelection{}, 0.12},
		{"diesel only", FuelSelection{FuelDiesel}, 0.12},
		{"diesel and bev averaged", FuelSelection{FuelDiesel, FuelBEV}, 0.08},
		{"cng and hvo averaged", FuelSelection{FuelCNG, FuelHVO}, 0.09},
		{"all four fuels", FuelSelection{FuelDiesel, FuelCNG, FuelBEV, FuelHVO}, 0.085},
		// Unknown fuel tags are averaged at the diesel factor.
		{"unknown fuel counts as diesel", FuelSelection{FuelBEV, FuelType("hydrogen")}, 0.08},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EmissionFactor(ModeTruck, tt.fuels, false), 1e-12)
		})
	}
}

func TestEmissionFactor_CoolingPenalty(t *testing.T) {
	// The 30% penalty applies after mode and fuel resolution, for every mode.
	assert.InDelta(t, 0.65, EmissionFactor(ModePlane, nil, true), 1e-12)
	assert.InDelta(t, 0.04*1.3, EmissionFactor(ModeShip, nil, true), 1e-12)
	assert.InDelta(t, 0.08*1.3, EmissionFactor(ModeTruck, FuelSelection{FuelDiesel, FuelBEV}, true), 1e-12)
	assert.InDelta(t, 0.10*1.3, EmissionFactor(TransportMode("unknown"), nil, true), 1e-12)
}

func TestEmissionFactor_FuelsIgnoredForNonTruckModes(t *testing.T) {
	fuels := FuelSelection{FuelBEV}

	assert.InDelta(t, 0.04, EmissionFactor(ModeShip, fuels, false), 1e-12)
	assert.InDelta(t, 0.03, EmissionFactor(ModeTrain, fuels, false), 1e-12)
}
