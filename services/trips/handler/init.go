package handler

import (
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/services/trips"
)

// TripHandler handles HTTP requests for trip operations
type TripHandler struct {
	cfg    *models.Config
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(cfg *models.Config, tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		cfg:    cfg,
		tripUC: tripUC,
	}
}
