package carbon

// TransportMode identifies how cargo is moved.
type TransportMode string

const (
	ModeTruck      TransportMode = "truck"
	ModeShip       TransportMode = "ship"
	ModePlane      TransportMode = "plane"
	ModeTrain      TransportMode = "train"
	ModeIntermodal TransportMode = "intermodal"
	ModeOther      TransportMode = "other"
)

// FuelType identifies a truck fuel option.
type FuelType string

const (
	FuelDiesel FuelType = "diesel"
	FuelCNG    FuelType = "cng"
	FuelBEV    FuelType = "bev"
	FuelHVO    FuelType = "hvo"
)

// FuelSelection is the set of fuel types selected for truck transport.
// It may be empty and is only meaningful when the transport mode is
// truck. Callers supply each fuel at most once.
type FuelSelection []FuelType

// Base emission factors in kg CO2 per tonne-kilometer.
const (
	factorTruck      = 0.12
	factorShip       = 0.04
	factorPlane      = 0.5
	factorTrain      = 0.03
	factorIntermodal = 0.08
	factorFallback   = 0.10

	// coolingPenalty is the flat multiplier applied for refrigerated
	// cargo, after mode and fuel resolution.
	coolingPenalty = 1.3
)

// fuelFactors holds the per-fuel emission factors used for the truck
// fuel-mix average.
var fuelFactors = map[FuelType]float64{
	FuelDiesel: 0.12,
	FuelCNG:    0.10,
	FuelBEV:    0.04,
	FuelHVO:    0.08,
}

// EmissionFactor resolves the emission factor in kg CO2 per
// tonne-kilometer for the given transport configuration.
//
// Unrecognized transport modes degrade to the 0.10 fallback factor and
// unrecognized truck fuels are averaged at the diesel factor; bad input
// never causes an error.
func EmissionFactor(mode TransportMode, fuels FuelSelection, cooled bool) float64 {
	var factor float64
	switch mode {
	case ModeTruck:
		factor = truckFactor(fuels)
	case ModeShip:
		factor = factorShip
	case ModePlane:
		factor = factorPlane
	case ModeTrain:
		factor = factorTrain
	case ModeIntermodal:
		factor = factorIntermodal
	default:
		// "other" and anything unrecognized share the fallback factor.
		factor = factorFallback
	}

	if cooled {
		factor *= coolingPenalty
	}

	return factor
}

// truckFactor averages the selected fuel factors, keeping the base
// truck factor when no fuels are selected.
func truckFactor(fuels FuelSelection) float64 {
	if len(fuels) == 0 {
		return factorTruck
	}

	sum := 0.0
	for _, fuel := range fuels {
		if f, ok := fuelFactors[fuel]; ok {
			sum += f
		} else {
			// Unknown fuel tags count as diesel.
			sum += factorTruck
		}
	}

	return sum / float64(len(fuels))
}
