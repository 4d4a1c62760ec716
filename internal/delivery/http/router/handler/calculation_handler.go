// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"freightprint/internal/delivery/http/response"
	"freightprint/internal/domain/carbon"
	domainerrors "freightprint/internal/domain/errors"
	"freightprint/internal/usecase"
	"freightprint/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// HeaderXUserID carries the caller's identity. Authentication happens
// upstream; the service trusts this header.
const HeaderXUserID = "X-User-Id"

// CalculationHandlerParams holds dependencies for CalculationHandler, injected by Fx.
type CalculationHandlerParams struct {
	fx.In

	CalculationUC usecase.CalculationUsecase
	Logger        *slog.Logger
}

// CalculationHandler holds dependencies for calculation-related handlers
type CalculationHandler struct {
	calculationUC usecase.CalculationUsecase
	logger        *slog.Logger
}

// NewCalculationHandler is the constructor for CalculationHandler
func NewCalculationHandler(params CalculationHandlerParams) *CalculationHandler {
	return &CalculationHandler{
		calculationUC: params.CalculationUC,
		logger:        params.Logger,
	}
}

// GeoPointRequest represents a coordinate pair in a request body
type GeoPointRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

// CreateCalculationRequest represents the request body for creating a calculation
type CreateCalculationRequest struct {
	Quantity         float64         `json:"quantity" validate:"required,gt=0"`
	Unit             string          `json:"unit" validate:"required"`
	TonnesPerUnit    float64         `json:"tonnes_per_unit" validate:"required,gt=0"`
	TransportMode    string          `json:"transport_mode" validate:"required"`
	Fuels            []string        `json:"fuels,omitempty"`
	Cooled           bool            `json:"cooled"`
	OriginLabel      string          `json:"origin_label"`
	Origin           GeoPointRequest `json:"origin"`
	DestinationLabel string          `json:"destination_label"`
	Destination      GeoPointRequest `json:"destination"`
}

// CreateCalculation handles computing and storing a new calculation
func (h *CalculationHandler) CreateCalculation(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req CreateCalculationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid calculation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateCalculationInput{
		Quantity:         req.Quantity,
		Unit:             req.Unit,
		TonnesPerUnit:    req.TonnesPerUnit,
		TransportMode:    req.TransportMode,
		Fuels:            req.Fuels,
		Cooled:           req.Cooled,
		OriginLabel:      req.OriginLabel,
		Origin:           carbon.GeoPoint{Latitude: req.Origin.Latitude, Longitude: req.Origin.Longitude},
		DestinationLabel: req.DestinationLabel,
		Destination:      carbon.GeoPoint{Latitude: req.Destination.Latitude, Longitude: req.Destination.Longitude},
	}

	calculation, err := h.calculationUC.CreateCalculation(c.Request().Context(), userID, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, calculation, "Calculation created successfully")
}

// GetCalculation handles retrieving a single calculation by ID
func (h *CalculationHandler) GetCalculation(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	calculationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid calculation ID")
	}

	calculation, err := h.calculationUC.GetCalculation(c.Request().Context(), userID, calculationID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, calculation, "Calculation retrieved successfully")
}

// ListUserCalculations handles retrieving a user's calculation history
func (h *CalculationHandler) ListUserCalculations(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return response.BadRequest(c, "INVALID_USER_ID", "User ID is required")
	}

	limit := 0
	if rawLimit := c.QueryParam("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_LIMIT", "Limit must be a non-negative integer")
		}
		limit = parsed
	}

	calculations, err := h.calculationUC.ListUserCalculations(c.Request().Context(), userID, limit)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, calculations, "Calculations retrieved successfully")
}

// DeleteCalculation handles deleting a calculation
func (h *CalculationHandler) DeleteCalculation(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	calculationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid calculation ID")
	}

	if err := h.calculationUC.DeleteCalculation(c.Request().Context(), userID, calculationID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Calculation deleted successfully"}, "Calculation deleted successfully")
}

// GetUserSummary handles retrieving aggregate totals for a user
func (h *CalculationHandler) GetUserSummary(c echo.Context) error {
	userID := c.Param("userID")
	if userID == "" {
		return response.BadRequest(c, "INVALID_USER_ID", "User ID is required")
	}

	summary, err := h.calculationUC.GetUserSummary(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary, "User summary retrieved successfully")
}

// getUserID extracts the caller identity from the request header.
// The returned AppError is surfaced by the centralized error handler;
// nothing is written here so callers can abort before touching the
// usecase layer.
func (h *CalculationHandler) getUserID(c echo.Context) (string, error) {
	userID := c.Request().Header.Get(HeaderXUserID)
	if userID == "" {
		return "", domainerrors.ErrUserIdentityMissing
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *CalculationHandler) handleAppError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrCalculationNotFound):
		return response.NotFound(c, domainerrors.ErrCalculationNotFound.ErrorCode(), domainerrors.ErrCalculationNotFound.Message())
	case errors.Is(err, impl.ErrNotOwner):
		return response.Forbidden(c, domainerrors.ErrCalculationForbidden.ErrorCode(), domainerrors.ErrCalculationForbidden.Message())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
