package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/antarin-app/antarin/internal/pkg/middleware"
)

// RegisterRoutes registers the trip lifecycle HTTP routes
func (h *TripHandler) RegisterRoutes(e *echo.Echo) {
	trips := e.Group("/trips", middleware.JWTAuth(h.cfg.JWT.Secret))

	trips.POST("", h.CreateTrip)
	trips.GET("", h.ListTrips)
	trips.GET("/:tripID", h.GetTrip)
	trips.POST("/:tripID/accept", h.AcceptTrip)
	trips.POST("/:tripID/refuse", h.RefuseTrip)
	trips.POST("/:tripID/advance", h.AdvanceTrip)
	trips.POST("/:tripID/cancel", h.CancelTrip)
	trips.POST("/:tripID/reviews", h.SubmitReview)
}
