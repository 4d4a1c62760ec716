package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"freightprint/config"
	"freightprint/internal/domain/carbon"
	"freightprint/internal/domain/entity"
	"freightprint/internal/domain/repository"
	mockRepo "freightprint/internal/mocks/repository"
	mockService "freightprint/internal/mocks/service"
	"freightprint/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Engine = &config.EngineConfig{
		HistoryLimit:    50,
		SummaryCacheTTL: 5 * time.Minute,
	}

	return cfg
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newServiceWithCache(t *testing.T) (usecase.CalculationUsecase, *mockRepo.MockCalculationRepository, *mockService.MockSummaryCache) {
	repo := mockRepo.NewMockCalculationRepository(t)
	cache := mockService.NewMockSummaryCache(t)
	service := NewCalculationService(CalculationServiceParams{
		CalcRepo: repo,
		Cache:    cache,
		Config:   testConfig(),
		Logger:   testLogger(),
	})

	return service, repo, cache
}

func newServiceWithoutCache(t *testing.T) (usecase.CalculationUsecase, *mockRepo.MockCalculationRepository) {
	repo := mockRepo.NewMockCalculationRepository(t)
	service := NewCalculationService(CalculationServiceParams{
		CalcRepo: repo,
		Config:   testConfig(),
		Logger:   testLogger(),
	})

	return service, repo
}

func TestCalculationService_CreateCalculation_Success(t *testing.T) {
	service, repo, cache := newServiceWithCache(t)

	ctx := context.Background()
	userID := "user-1"
	input := &usecase.CreateCalculationInput{
		Quantity:         10,
		Unit:             "pallet",
		TonnesPerUnit:    1,
		TransportMode:    "train",
		OriginLabel:      "Paris",
		Origin:           carbon.GeoPoint{Latitude: 48.8566, Longitude: 2.3522},
		DestinationLabel: "Paris",
		Destination:      carbon.GeoPoint{Latitude: 48.8566, Longitude: 2.3522},
	}

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Calculation")).
		Return(nil)

	cache.EXPECT().
		Delete(ctx, "summary:user-1").
		Return(nil)

	calculation, err := service.CreateCalculation(ctx, userID, input)
	require.NoError(t, err)
	require.NotNil(t, calculation)

	assert.NotEqual(t, uuid.Nil, calculation.ID)
	assert.Equal(t, userID, calculation.UserID)
	assert.Equal(t, carbon.ModeTrain, calculation.TransportMode)
	assert.Equal(t, 10.0, calculation.TotalWeightTonnes)
	assert.False(t, calculation.CreatedAt.IsZero())

	// Same origin and destination: zero distance, zero footprint.
	assert.Zero(t, calculation.DistanceKm)
	assert.Zero(t, calculation.CarbonFootprintKg)
	assert.Zero(t, calculation.TreesNeeded)
}

func TestCalculationService_CreateCalculation_CooledPlane(t *testing.T) {
	service, repo, cache := newServiceWithCache(t)

	ctx := context.Background()
	input := &usecase.CreateCalculationInput{
		Quantity:         2,
		Unit:             "container",
		TonnesPerUnit:    5,
		TransportMode:    "plane",
		Cooled:           true,
		Origin:           carbon.GeoPoint{Latitude: 50.0379, Longitude: 8.5622},  // FRA
		Destination:      carbon.GeoPoint{Latitude: 40.6413, Longitude: -73.7781}, // JFK
		OriginLabel:      "Frankfurt",
		DestinationLabel: "New York",
	}

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Calculation")).
		Return(nil)

	cache.EXPECT().
		Delete(ctx, "summary:user-2").
		Return(nil)

	calculation, err := service.CreateCalculation(ctx, "user-2", input)
	require.NoError(t, err)

	assert.InDelta(t, 0.65, calculation.EmissionFactor, 1e-12)
	assert.Positive(t, calculation.CarbonFootprintKg)
	assert.Positive(t, calculation.TreesNeeded)
}

func TestCalculationService_CreateCalculation_RepoError(t *testing.T) {
	service, repo := newServiceWithoutCache(t)

	ctx := context.Background()
	input := &usecase.CreateCalculationInput{
		Quantity:      1,
		Unit:          "tonne",
		TonnesPerUnit: 1,
		TransportMode: "ship",
	}

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Calculation")).
		Return(assert.AnError)

	calculation, err := service.CreateCalculation(ctx, "user-1", input)
	assert.Error(t, err)
	assert.Nil(t, calculation)
}

func TestCalculationService_GetCalculation_Success(t *testing.T) {
	service, repo := newServiceWithoutCache(t)

	ctx := context.Background()
	calcID := uuid.New()
	expected := &entity.Calculation{ID: calcID, UserID: "user-1"}

	repo.EXPECT().
		FindByID(ctx, calcID).
		Return(expected, nil)

	calculation, err := service.GetCalculation(ctx, "user-1", calcID)
	require.NoError(t, err)
	assert.Equal(t, expected, calculation)
}

func TestCalculationService_GetCalculation_NotFound(t *testing.T) {
	service, repo := newServiceWithoutCache(t)

	ctx := context.Background()
	calcID := uuid.New()

	repo.EXPECT().
		FindByID(ctx, calcID).
		Return(nil, repository.ErrCalculationNotFound)

	calculation, err := service.GetCalculation(ctx, "user-1", calcID)
	assert.Error(t, err)
	assert.Nil(t, calculation)
	assert.Equal(t, ErrCalculationNotFound, err)
}

func TestCalculationService_GetCalculation_NotOwner(t *testing.T) {
	service, repo := newServiceWithoutCache(t)

	ctx := context.Background()
	calcID := uuid.New()

	repo.EXPECT().
		FindByID(ctx, calcID).
		Return(&entity.Calculation{ID: calcID, UserID: "someone-else"}, nil)

	calculation, err := service.GetCalculation(ctx, "user-1", calcID)
	assert.Error(t, err)
	assert.Nil(t, calculation)
	assert.Equal(t, ErrNotOwner, err)
}

func TestCalculationService_ListUserCalculations_CapsLimit(t *testing.T) {
	service, repo := newServiceWithoutCache(t)

	ctx := context.Background()
	expected := []*entity.Calculation{
		{ID: uuid.New(), UserID: "user-1"},
	}

	// Both a zero limit and an oversized limit collapse to the
	// configured history limit.
	repo.EXPECT().
		FindByUser(ctx, "user-1", 50).
		Return(expected, nil).
		Twice()

	calculations, err := service.ListUserCalculations(ctx, "user-1", 0)
	require.NoError(t, err)
	assert.Equal(t, expected, calculations)

	calculations, err = service.ListUserCalculations(ctx, "user-1", 500)
	require.NoError(t, err)
	assert.Equal(t, expected, calculations)
}

func TestCalculationService_ListUserCalculations_PassesSmallLimit(t *testing.T) {
	service, repo := newServiceWithoutCache(t)

	ctx := context.Background()

	repo.EXPECT().
		FindByUser(ctx, "user-1", 10).
		Return([]*entity.Calculation{}, nil)

	calculations, err := service.ListUserCalculations(ctx, "user-1", 10)
	require.NoError(t, err)
	assert.Empty(t, calculations)
}

func TestCalculationService_DeleteCalculation_Success(t *testing.T) {
	service, repo, cache := newServiceWithCache(t)

	ctx := context.Background()
	calcID := uuid.New()

	repo.EXPECT().
		FindByID(ctx, calcID).
		Return(&entity.Calculation{ID: calcID, UserID: "user-1"}, nil)

	repo.EXPECT().
		DeleteByID(ctx, calcID).
		Return(nil)

	cache.EXPECT().
		Delete(ctx, "summary:user-1").
		Return(nil)

	err := service.DeleteCalculation(ctx, "user-1", calcID)
	require.NoError(t, err)
}

func TestCalculationService_DeleteCalculation_NotOwner(t *testing.T) {
	service, repo := newServiceWithoutCache(t)

	ctx := context.Background()
	calcID := uuid.New()

	repo.EXPECT().
		FindByID(ctx, calcID).
		Return(&entity.Calculation{ID: calcID, UserID: "someone-else"}, nil)

	err := service.DeleteCalculation(ctx, "user-1", calcID)
	assert.Equal(t, ErrNotOwner, err)
}

func TestCalculationService_DeleteCalculation_NotFound(t *testing.T) {
	service, repo := newServiceWithoutCache(t)

	ctx := context.Background()
	calcID := uuid.New()

	repo.EXPECT().
		FindByID(ctx, calcID).
		Return(nil, repository.ErrCalculationNotFound)

	err := service.DeleteCalculation(ctx, "user-1", calcID)
	assert.Equal(t, ErrCalculationNotFound, err)
}

func TestCalculationService_GetUserSummary_Aggregates(t *testing.T) {
	service, repo, cache := newServiceWithCache(t)

	ctx := context.Background()
	history := []*entity.Calculation{
		{UserID: "user-1", CarbonFootprintKg: 100, TreesNeeded: 5, TotalWeightTonnes: 10, DistanceKm: 250},
		{UserID: "user-1", CarbonFootprintKg: 50, TreesNeeded: 3, TotalWeightTonnes: 4, DistanceKm: 125},
	}

	cache.EXPECT().
		Get(ctx, "summary:user-1").
		Return("", false)

	repo.EXPECT().
		CountByUser(ctx, "user-1").
		Return(int64(2), nil)

	repo.EXPECT().
		FindByUser(ctx, "user-1", 0).
		Return(history, nil)

	cache.EXPECT().
		Set(ctx, "summary:user-1", mock.AnythingOfType("string"), 5*time.Minute).
		Return(nil)

	summary, err := service.GetUserSummary(ctx, "user-1")
	require.NoError(t, err)

	assert.Equal(t, int64(2), summary.Calculations)
	assert.InDelta(t, 150, summary.TotalFootprintKg, 1e-9)
	assert.Equal(t, 8, summary.TotalTreesNeeded)
	assert.InDelta(t, 10*250+4*125, summary.TotalTonneKm, 1e-9)
	assert.InDelta(t, 375, summary.TotalDistanceKm, 1e-9)
	assert.InDelta(t, 14, summary.TotalWeightTonnes, 1e-9)
}

func TestCalculationService_GetUserSummary_CacheHit(t *testing.T) {
	service, _, cache := newServiceWithCache(t)

	ctx := context.Background()
	cached := usecase.UserSummary{UserID: "user-1", Calculations: 7, TotalFootprintKg: 321.5}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	cache.EXPECT().
		Get(ctx, "summary:user-1").
		Return(string(payload), true)

	summary, err := service.GetUserSummary(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, &cached, summary)
}

func TestCalculationService_GetUserSummary_CorruptCacheFallsBack(t *testing.T) {
	service, repo, cache := newServiceWithCache(t)

	ctx := context.Background()

	cache.EXPECT().
		Get(ctx, "summary:user-1").
		Return("{not json", true)

	repo.EXPECT().
		CountByUser(ctx, "user-1").
		Return(int64(0), nil)

	repo.EXPECT().
		FindByUser(ctx, "user-1", 0).
		Return([]*entity.Calculation{}, nil)

	cache.EXPECT().
		Set(ctx, "summary:user-1", mock.AnythingOfType("string"), 5*time.Minute).
		Return(nil)

	summary, err := service.GetUserSummary(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Calculations)
}

func TestCalculationService_GetUserSummary_NoCache(t *testing.T) {
	service, repo := newServiceWithoutCache(t)

	ctx := context.Background()

	repo.EXPECT().
		CountByUser(ctx, "user-1").
		Return(int64(0), nil)

	repo.EXPECT().
		FindByUser(ctx, "user-1", 0).
		Return([]*entity.Calculation{}, nil)

	summary, err := service.GetUserSummary(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", summary.UserID)
}

func TestCalculationService_GetUserSummary_CountError(t *testing.T) {
	service, repo := newServiceWithoutCache(t)

	ctx := context.Background()

	repo.EXPECT().
		CountByUser(ctx, "user-1").
		Return(int64(0), assert.AnError)

	summary, err := service.GetUserSummary(ctx, "user-1")
	assert.Error(t, err)
	assert.Nil(t, summary)
}
