package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/antarin-app/antarin/internal/pkg/middleware"
)

// RegisterRoutes registers the internal reminder routes. These are
// service-to-service endpoints guarded by API key.
func (h *ReminderHandler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	internal := e.Group("/internal/reminders", apiKey.ValidateAPIKey("scheduler-service"))

	internal.POST("/run", h.RunSweep)
}
