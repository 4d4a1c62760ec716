package usecase

import (
	"context"

	"freightprint/internal/domain/carbon"
	"freightprint/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCalculationInput represents the input for computing and storing
// a footprint calculation. Mode and fuel strings are passed through to
// the engine untyped; unrecognized values degrade to documented
// fallback factors instead of being rejected.
type CreateCalculationInput struct {
	Quantity         float64         `json:"quantity"`
	Unit             string          `json:"unit"`
	TonnesPerUnit    float64         `json:"tonnes_per_unit"`
	TransportMode    string          `json:"transport_mode"`
	Fuels            []string        `json:"fuels,omitempty"`
	Cooled           bool            `json:"cooled"`
	OriginLabel      string          `json:"origin_label"`
	Origin           carbon.GeoPoint `json:"origin"`
	DestinationLabel string          `json:"destination_label"`
	Destination      carbon.GeoPoint `json:"destination"`
}

// UserSummary aggregates a user's stored calculations.
type UserSummary struct {
	UserID            string  `json:"user_id"`
	Calculations      int64   `json:"calculations"`
	TotalFootprintKg  float64 `json:"total_footprint_kg"`
	TotalTreesNeeded  int     `json:"total_trees_needed"`
	TotalTonneKm      float64 `json:"total_tonne_km"`
	TotalDistanceKm   float64 `json:"total_distance_km"`
	TotalWeightTonnes float64 `json:"total_weight_tonnes"`
}

// CalculationUsecase defines the footprint calculation use cases.
type CalculationUsecase interface {
	// CreateCalculation computes the footprint for the input and
	// persists the result for the user.
	CreateCalculation(ctx context.Context, userID string, input *CreateCalculationInput) (*entity.Calculation, error)

	// GetCalculation retrieves one stored calculation owned by the user.
	GetCalculation(ctx context.Context, userID string, id uuid.UUID) (*entity.Calculation, error)

	// ListUserCalculations returns the user's calculation history,
	// newest first, capped by the configured history limit.
	ListUserCalculations(ctx context.Context, userID string, limit int) ([]*entity.Calculation, error)

	// DeleteCalculation removes one stored calculation owned by the user.
	DeleteCalculation(ctx context.Context, userID string, id uuid.UUID) error

	// GetUserSummary returns aggregate totals over the user's history.
	GetUserSummary(ctx context.Context, userID string) (*UserSummary, error)
}
