package impl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"freightprint/config"
	"freightprint/internal/domain/carbon"
	"freightprint/internal/domain/entity"
	"freightprint/internal/domain/repository"
	"freightprint/internal/domain/service"
	"freightprint/internal/infra/metrics"
	"freightprint/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var (
	// ErrCalculationNotFound is returned when a calculation is not found
	ErrCalculationNotFound = errors.New("calculation not found")
	// ErrNotOwner is returned when a user tries to access a calculation they don't own
	ErrNotOwner = errors.New("calculation belongs to another user")
)

type calculationService struct {
	calcRepo repository.CalculationRepository
	cache    service.SummaryCache
	config   *config.Config
	logger   *slog.Logger
}

// CalculationServiceParams holds dependencies for the calculation
// service, injected by Fx.
type CalculationServiceParams struct {
	fx.In

	CalcRepo repository.CalculationRepository
	Cache    service.SummaryCache `optional:"true"`
	Config   *config.Config
	Logger   *slog.Logger
}

// NewCalculationService creates a new calculation service instance
func NewCalculationService(params CalculationServiceParams) usecase.CalculationUsecase {
	cfg := params.Config
	if cfg.Engine == nil {
		cfg.Engine = &config.EngineConfig{
			HistoryLimit:    50,
			SummaryCacheTTL: 5 * time.Minute,
		}
	}

	return &calculationService{
		calcRepo: params.CalcRepo,
		cache:    params.Cache,
		config:   cfg,
		logger:   params.Logger,
	}
}

// CreateCalculation computes the footprint for the input and persists
// the result for the user.
func (s *calculationService) CreateCalculation(ctx context.Context, userID string, input *usecase.CreateCalculationInput) (*entity.Calculation, error) {
	fuels := make(carbon.FuelSelection, 0, len(input.Fuels))
	for _, fuel := range input.Fuels {
		fuels = append(fuels, carbon.FuelType(fuel))
	}

	result := carbon.Compute(carbon.Input{
		Quantity:      input.Quantity,
		Unit:          input.Unit,
		TonnesPerUnit: input.TonnesPerUnit,
		TransportMode: carbon.TransportMode(input.TransportMode),
		Fuels:         fuels,
		Cooled:        input.Cooled,
		Origin:        input.Origin,
		Destination:   input.Destination,
	})

	calculation := &entity.Calculation{
		ID:               uuid.New(),
		UserID:           userID,
		Quantity:         input.Quantity,
		Unit:             input.Unit,
		TonnesPerUnit:    input.TonnesPerUnit,
		TransportMode:    carbon.TransportMode(input.TransportMode),
		Fuels:            fuels,
		Cooled:           input.Cooled,
		OriginLabel:      input.OriginLabel,
		Origin:           input.Origin,
		DestinationLabel: input.DestinationLabel,
		Destination:      input.Destination,

		TotalWeightTonnes: result.TotalWeightTonnes,
		DistanceKm:        result.DistanceKm,
		EmissionFactor:    result.EmissionFactor,
		CarbonFootprintKg: result.CarbonFootprintKg,
		TreesNeeded:       result.TreesNeeded,

		CreatedAt: time.Now().UTC(),
	}

	if err := s.calcRepo.Create(ctx, calculation); err != nil {
		return nil, fmt.Errorf("failed to create calculation: %w", err)
	}

	metrics.CalculationsTotal.WithLabelValues(string(calculation.TransportMode)).Inc()
	metrics.FootprintKg.Observe(calculation.CarbonFootprintKg)

	s.invalidateSummary(ctx, userID)

	return calculation, nil
}

// GetCalculation retrieves one stored calculation owned by the user.
func (s *calculationService) GetCalculation(ctx context.Context, userID string, id uuid.UUID) (*entity.Calculation, error) {
	calculation, err := s.calcRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCalculationNotFound) {
			return nil, ErrCalculationNotFound
		}

		return nil, fmt.Errorf("failed to find calculation by ID: %w", err)
	}

	if calculation.UserID != userID {
		return nil, ErrNotOwner
	}

	return calculation, nil
}

// ListUserCalculations returns the user's calculation history, newest first.
func (s *calculationService) ListUserCalculations(ctx context.Context, userID string, limit int) ([]*entity.Calculation, error) {
	maxLimit := s.config.Engine.HistoryLimit
	if limit <= 0 || limit > maxLimit {
		limit = maxLimit
	}

	calculations, err := s.calcRepo.FindByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find calculations by user: %w", err)
	}

	return calculations, nil
}

// DeleteCalculation removes one stored calculation owned by the user.
func (s *calculationService) DeleteCalculation(ctx context.Context, userID string, id uuid.UUID) error {
	calculation, err := s.calcRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCalculationNotFound) {
			return ErrCalculationNotFound
		}

		return fmt.Errorf("failed to find calculation by ID: %w", err)
	}

	if calculation.UserID != userID {
		return ErrNotOwner
	}

	if err := s.calcRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete calculation: %w", err)
	}

	s.invalidateSummary(ctx, userID)

	return nil
}

// GetUserSummary returns aggregate totals over the user's full history.
// The serialized summary is cached with a TTL and invalidated on writes.
func (s *calculationService) GetUserSummary(ctx context.Context, userID string) (*usecase.UserSummary, error) {
	cacheKey := summaryCacheKey(userID)

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, cacheKey); ok {
			summary := &usecase.UserSummary{}
			if err := json.Unmarshal([]byte(cached), summary); err == nil {
				metrics.SummaryCacheHits.Inc()

				return summary, nil
			}
			// A corrupt cache entry falls through to a direct read.
		}

		metrics.SummaryCacheMisses.Inc()
	}

	// The stored count comes from a server-side aggregation; totals
	// still need the full history.
	count, err := s.calcRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count calculations by user: %w", err)
	}

	calculations, err := s.calcRepo.FindByUser(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find calculations by user: %w", err)
	}

	summary := &usecase.UserSummary{UserID: userID, Calculations: count}
	for _, calculation := range calculations {
		summary.TotalFootprintKg += calculation.CarbonFootprintKg
		summary.TotalTreesNeeded += calculation.TreesNeeded
		summary.TotalTonneKm += calculation.TotalWeightTonnes * calculation.DistanceKm
		summary.TotalDistanceKm += calculation.DistanceKm
		summary.TotalWeightTonnes += calculation.TotalWeightTonnes
	}

	if s.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), s.config.Engine.SummaryCacheTTL); err != nil {
				s.logger.Warn("failed to cache user summary",
					slog.String("user_id", userID),
					slog.Any("error", err),
				)
			}
		}
	}

	return summary, nil
}

// invalidateSummary drops the cached summary after a write. Cache
// failures only degrade freshness, so they are logged and swallowed.
func (s *calculationService) invalidateSummary(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, summaryCacheKey(userID)); err != nil {
		s.logger.Warn("failed to invalidate summary cache",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}
}

func summaryCacheKey(userID string) string {
	return "summary:" + userID
}
