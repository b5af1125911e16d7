// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"slotwise/internal/delivery/api/middleware"
	"slotwise/internal/delivery/api/router/handler"
	"slotwise/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScopeSlotsSync lets a token regenerate the shop's slots.
const ScopeSlotsSync = "slots:sync"

type RouterParams struct {
	fx.In

	RecommendationHandler *handler.RecommendationHandler
	BookingHandler        *handler.BookingHandler
	AvailabilityHandler   *handler.AvailabilityHandler
	SlotHandler           *handler.SlotHandler
	AuthMiddleware        *middleware.AuthMiddleware
	Metrics               *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	recommendationHandler *handler.RecommendationHandler
	bookingHandler        *handler.BookingHandler
	availabilityHandler   *handler.AvailabilityHandler
	slotHandler           *handler.SlotHandler
	authMiddleware        *middleware.AuthMiddleware
	metrics               *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		recommendationHandler: params.RecommendationHandler,
		bookingHandler:        params.BookingHandler,
		availabilityHandler:   params.AvailabilityHandler,
		slotHandler:           params.SlotHandler,
		authMiddleware:        params.AuthMiddleware,
		metrics:               params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require a shop token

	recommendationsGroup := apiV1.Group("/recommendations")
	{
		recommendationsGroup.POST("/slots", r.recommendationHandler.RecommendSlots)
		recommendationsGroup.POST("/locations", r.recommendationHandler.RecommendLocations)
		recommendationsGroup.POST("/selections", r.recommendationHandler.RecordSelection)
	}

	bookingsGroup := apiV1.Group("/bookings")
	{
		bookingsGroup.POST("", r.bookingHandler.CreateBooking)
		bookingsGroup.GET("/:orderId", r.bookingHandler.GetBooking)
		bookingsGroup.PUT("/:orderId", r.bookingHandler.RescheduleBooking)
		bookingsGroup.DELETE("/:orderId", r.bookingHandler.CancelBooking)
	}

	apiV1.GET("/availability", r.availabilityHandler.Availability)

	slotsGroup := apiV1.Group("/slots")
	slotsGroup.Use(r.authMiddleware.RequireScope(ScopeSlotsSync))
	{
		slotsGroup.POST("/sync", r.slotHandler.Sync)
	}
}
