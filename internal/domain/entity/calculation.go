// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"freightprint/internal/domain/carbon"

	"github.com/google/uuid"
)

// Calculation is one persisted footprint calculation for a user. It
// snapshots both the request input and the derived result so stored
// history never needs recomputation. A calculation is immutable after
// creation.
type Calculation struct {
	ID     uuid.UUID `json:"id"`      // The unique identifier of the calculation document.
	UserID string    `json:"user_id"` // The user this calculation belongs to.

	// Input snapshot.
	Quantity         float64              `json:"quantity"`
	Unit             string               `json:"unit"`
	TonnesPerUnit    float64              `json:"tonnes_per_unit"`
	TransportMode    carbon.TransportMode `json:"transport_mode"`
	Fuels            carbon.FuelSelection `json:"fuels,omitempty"`
	Cooled           bool                 `json:"cooled"`
	OriginLabel      string               `json:"origin_label"`
	Origin           carbon.GeoPoint      `json:"origin"`
	DestinationLabel string               `json:"destination_label"`
	Destination      carbon.GeoPoint      `json:"destination"`

	// Derived result.
	TotalWeightTonnes float64 `json:"total_weight_tonnes"`
	DistanceKm        float64 `json:"distance_km"`
	EmissionFactor    float64 `json:"emission_factor"`
	CarbonFootprintKg float64 `json:"carbon_footprint_kg"`
	TreesNeeded       int     `json:"trees_needed"`

	CreatedAt time.Time `json:"created_at"` // Timestamp of when this calculation was stored.
}
