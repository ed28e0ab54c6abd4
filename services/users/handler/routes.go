package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/antarin-app/antarin/internal/pkg/middleware"
)

// RegisterRoutes registers onboarding and account HTTP routes
func (h *UserHandler) RegisterRoutes(e *echo.Echo, apiKey *middleware.APIKeyMiddleware) {
	// Public signup endpoints
	e.POST("/users/clients", h.RegisterClient)
	e.POST("/users/partners", h.RegisterPartner)

	// Authenticated account endpoints
	me := e.Group("/users", middleware.JWTAuth(h.cfg.JWT.Secret))
	me.GET("/me", h.GetMe)
	me.PUT("/me", h.UpdateProfile)
	me.POST("/vehicles", h.RegisterVehicle)
	me.POST("/documents/upload-url", h.RequestDocumentUpload)
	me.POST("/documents", h.ConfirmDocumentUpload)

	// Back-office verification, service-to-service only
	internal := e.Group("/internal/users", apiKey.ValidateAPIKey("backoffice-service"))
	internal.POST("/:userID/verification", h.SetVerification)
}
