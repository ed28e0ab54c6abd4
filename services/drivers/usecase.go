package drivers

import (
	"context"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/models"
)

// DriverUC defines the interface for driver availability matching
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/antarin-app/antarin/services/drivers DriverUC
type DriverUC interface {
	// FindAvailableDrivers returns eligible partners near the pickup point,
	// nearest first. An empty result is a valid outcome.
	FindAvailableDrivers(ctx context.Context, req models.FindDriversRequest) ([]models.DriverCandidate, error)

	// FindCandidatesForTrip is FindAvailableDrivers minus the partners that
	// already declined the trip
	FindCandidatesForTrip(ctx context.Context, tripID uuid.UUID, req models.FindDriversRequest) ([]models.DriverCandidate, error)

	// UpdatePartnerLocation ingests a live location beacon from a partner
	UpdatePartnerLocation(ctx context.Context, update models.PartnerLocationUpdate) error
}
