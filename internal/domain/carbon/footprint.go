package carbon

import "math"

// treeAbsorptionKgPerYear is the approximate amount of CO2 one tree
// absorbs in a year, used for the trees-needed equivalence.
const treeAbsorptionKgPerYear = 21.0

// Input carries everything needed for one footprint calculation. It is
// constructed per request and never mutated.
type Input struct {
	Quantity      float64
	Unit          string
	TonnesPerUnit float64
	TransportMode TransportMode
	Fuels         FuelSelection
	Cooled        bool
	Origin        GeoPoint
	Destination   GeoPoint
}

// Result holds the derived footprint metrics. Every field is a
// deterministic function of the Input that produced it; two calls with
// identical inputs yield bit-identical results.
type Result struct {
	TotalWeightTonnes float64 `json:"total_weight_tonnes"`
	DistanceKm        float64 `json:"distance_km"`         // rounded to 2 decimals
	EmissionFactor    float64 `json:"emission_factor"`     // kg CO2 per tonne-km, rounded to 4 decimals
	CarbonFootprintKg float64 `json:"carbon_footprint_kg"` // rounded to 2 decimals
	TreesNeeded       int     `json:"trees_needed"`
}

// Compute derives the carbon footprint metrics for the given input.
//
// The chained arithmetic uses unrounded intermediate values; rounding is
// applied only to the returned presentation fields. Validation of
// quantity, tonnesPerUnit and coordinate ranges belongs to the caller.
func Compute(input Input) Result {
	totalWeight := input.Quantity * input.TonnesPerUnit
	distance := Distance(input.Origin, input.Destination)
	factor := EmissionFactor(input.TransportMode, input.Fuels, input.Cooled)

	footprint := roundTo(totalWeight*distance*factor, 2)

	return Result{
		TotalWeightTonnes: totalWeight,
		DistanceKm:        roundTo(distance, 2),
		EmissionFactor:    roundTo(factor, 4),
		CarbonFootprintKg: footprint,
		TreesNeeded:       treesNeeded(footprint),
	}
}

// treesNeeded converts a footprint in kg CO2 into the number of trees
// needed to absorb it within a year, rounding up.
func treesNeeded(footprintKg float64) int {
	return int(math.Ceil(footprintKg / treeAbsorptionKgPerYear))
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))

	return math.Round(v*scale) / scale
}
