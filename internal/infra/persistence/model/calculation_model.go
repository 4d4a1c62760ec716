package model

import (
	"time"

	"freightprint/internal/domain/carbon"
	"freightprint/internal/domain/entity"

	"github.com/google/uuid"
)

// CalculationModel is the Firestore-specific struct for calculation
// documents. The document ID mirrors the ID field.
type CalculationModel struct {
	ID     string `firestore:"id"`
	UserID string `firestore:"userId"`

	Quantity         float64  `firestore:"quantity"`
	Unit             string   `firestore:"unit"`
	TonnesPerUnit    float64  `firestore:"tonnesPerUnit"`
	TransportMode    string   `firestore:"transportMode"`
	Fuels            []string `firestore:"fuels"`
	Cooled           bool     `firestore:"cooled"`
	OriginLabel      string   `firestore:"originLabel"`
	OriginLat        float64  `firestore:"originLat"`
	OriginLng        float64  `firestore:"originLng"`
	DestinationLabel string   `firestore:"destinationLabel"`
	DestinationLat   float64  `firestore:"destinationLat"`
	DestinationLng   float64  `firestore:"destinationLng"`

	TotalWeightTonnes float64 `firestore:"totalWeightTonnes"`
	DistanceKm        float64 `firestore:"distanceKm"`
	EmissionFactor    float64 `firestore:"emissionFactor"`
	CarbonFootprintKg float64 `firestore:"carbonFootprintKg"`
	TreesNeeded       int     `firestore:"treesNeeded"`

	CreatedAt time.Time `firestore:"createdAt"`
}

// FromCalculationDomain converts a domain entity into its Firestore model.
func FromCalculationDomain(calculation *entity.Calculation) *CalculationModel {
	fuels := make([]string, 0, len(calculation.Fuels))
	for _, fuel := range calculation.Fuels {
		fuels = append(fuels, string(fuel))
	}

	return &CalculationModel{
		ID:                calculation.ID.String(),
		UserID:            calculation.UserID,
		Quantity:          calculation.Quantity,
		Unit:              calculation.Unit,
		TonnesPerUnit:     calculation.TonnesPerUnit,
		TransportMode:     string(calculation.TransportMode),
		Fuels:             fuels,
		Cooled:            calculation.Cooled,
		OriginLabel:       calculation.OriginLabel,
		OriginLat:         calculation.Origin.Latitude,
		OriginLng:         calculation.Origin.Longitude,
		DestinationLabel:  calculation.DestinationLabel,
		DestinationLat:    calculation.Destination.Latitude,
		DestinationLng:    calculation.Destination.Longitude,
		TotalWeightTonnes: calculation.TotalWeightTonnes,
		DistanceKm:        calculation.DistanceKm,
		EmissionFactor:    calculation.EmissionFactor,
		CarbonFootprintKg: calculation.CarbonFootprintKg,
		TreesNeeded:       calculation.TreesNeeded,
		CreatedAt:         calculation.CreatedAt,
	}
}

// ToCalculationDomain converts a Firestore model back into the domain
// entity. A malformed ID yields uuid.Nil rather than an error; the
// document ID is authoritative and set by the repository.
func ToCalculationDomain(calculationM *CalculationModel) *entity.Calculation {
	id, err := uuid.Parse(calculationM.ID)
	if err != nil {
		id = uuid.Nil
	}

	fuels := make(carbon.FuelSelection, 0, len(calculationM.Fuels))
	for _, fuel := range calculationM.Fuels {
		fuels = append(fuels, carbon.FuelType(fuel))
	}

	return &entity.Calculation{
		ID:            id,
		UserID:        calculationM.UserID,
		Quantity:      calculationM.Quantity,
		Unit:          calculationM.Unit,
		TonnesPerUnit: calculationM.TonnesPerUnit,
		TransportMode: carbon.TransportMode(calculationM.TransportMode),
		Fuels:         fuels,
		Cooled:        calculationM.Cooled,
		OriginLabel:   calculationM.OriginLabel,
		Origin: carbon.GeoPoint{
			Latitude:  calculationM.OriginLat,
			Longitude: calculationM.OriginLng,
		},
		DestinationLabel: calculationM.DestinationLabel,
		Destination: carbon.GeoPoint{
			Latitude:  calculationM.DestinationLat,
			Longitude: calculationM.DestinationLng,
		},
		TotalWeightTonnes: calculationM.TotalWeightTonnes,
		DistanceKm:        calculationM.DistanceKm,
		EmissionFactor:    calculationM.EmissionFactor,
		CarbonFootprintKg: calculationM.CarbonFootprintKg,
		TreesNeeded:       calculationM.TreesNeeded,
		CreatedAt:         calculationM.CreatedAt,
	}
}
