// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"freightprint/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CalculationHandler *handler.CalculationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	calculationHandler *handler.CalculationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		calculationHandler: params.CalculationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Prometheus metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/calculations", r.calculationHandler.CreateCalculation)
		apiGroup.GET("/calculations/:id", r.calculationHandler.GetCalculation)
		apiGroup.DELETE("/calculations/:id", r.calculationHandler.DeleteCalculation)

		apiGroup.GET("/users/:userID/calculations", r.calculationHandler.ListUserCalculations)
		apiGroup.GET("/users/:userID/summary", r.calculationHandler.GetUserSummary)
	}
}
