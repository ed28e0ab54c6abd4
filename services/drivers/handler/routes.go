package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/antarin-app/antarin/internal/pkg/middleware"
)

// RegisterRoutes registers the driver matching HTTP routes
func (h *DriverHandler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/drivers", middleware.JWTAuth(h.cfg.JWT.Secret))

	group.GET("/available", h.FindDrivers)
	group.GET("/candidates/:tripID", h.FindCandidatesForTrip)
	group.POST("/location", h.UpdateLocation)
}
