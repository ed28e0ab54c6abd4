package handler

import (
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/services/drivers"
)

// DriverHandler handles HTTP requests for driver matching
type DriverHandler struct {
	cfg      *models.Config
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver matching handler
func NewDriverHandler(cfg *models.Config, driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{
		cfg:      cfg,
		driverUC: driverUC,
	}
}
