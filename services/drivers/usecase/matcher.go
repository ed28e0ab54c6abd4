package usecase

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/apperrors"
	"github.com/antarin-app/antarin/internal/pkg/logger"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/internal/utils"
	"github.com/antarin-app/antarin/services/drivers"
)

type driverUC struct {
	cfg       *models.Config
	repo      drivers.DriverRepo
	estimator drivers.DistanceEstimator
	gateway   drivers.DriverGW
}

// NewDriverUC creates a new driver availability matcher
func NewDriverUC(cfg *models.Config, repo drivers.DriverRepo, estimator drivers.DistanceEstimator, gateway drivers.DriverGW) drivers.DriverUC {
	return &driverUC{
		cfg:       cfg,
		repo:      repo,
		estimator: estimator,
		gateway:   gateway,
	}
}

// FindAvailableDrivers returns eligible partners near the pickup point,
// nearest first
func (uc *driverUC) FindAvailableDrivers(ctx context.Context, req models.FindDriversRequest) ([]models.DriverCandidate, error) {
	return uc.findCandidates(ctx, req, nil)
}

// FindCandidatesForTrip returns eligible partners for re-offering a trip,
// skipping partners that already declined it
func (uc *driverUC) FindCandidatesForTrip(ctx context.Context, tripID uuid.UUID, req models.FindDriversRequest) ([]models.DriverCandidate, error) {
	declined, err := uc.repo.GetDeclinedPartnerIDs(ctx, tripID)
	if err != nil {
		return nil, err
	}
	return uc.findCandidates(ctx, req, declined)
}

// UpdatePartnerLocation ingests a live beacon from a partner's device
func (uc *driverUC) UpdatePartnerLocation(ctx context.Context, update models.PartnerLocationUpdate) error {
	if update.PartnerID == "" {
		return apperrors.New(apperrors.KindValidation, "partner ID is required")
	}

	if err := uc.estimator.UpdateLocation(ctx, update); err != nil {
		return err
	}

	if err := uc.gateway.PublishPartnerBeacon(ctx, update); err != nil {
		logger.Warn("failed to publish partner beacon",
			logger.String("partner_id", update.PartnerID),
			logger.Err(err))
	}

	return nil
}

func (uc *driverUC) findCandidates(ctx context.Context, req models.FindDriversRequest, exclude map[uuid.UUID]bool) ([]models.DriverCandidate, error) {
	radius := req.MaxDistanceKm
	if radius <= 0 {
		radius = uc.cfg.Match.SearchRadiusKm
	}

	nearby, err := uc.estimator.NearbyPartners(ctx, req.Latitude, req.Longitude, radius)
	if err != nil {
		return nil, err
	}
	if len(nearby) == 0 {
		return []models.DriverCandidate{}, nil
	}

	ids := make([]uuid.UUID, 0, len(nearby))
	for _, partner := range nearby {
		id, err := uuid.Parse(partner.PartnerID)
		if err != nil {
			// Junk members in the geo set are skipped, not fatal
			logger.Warn("ignoring malformed partner ID in geo set",
				logger.String("member", partner.PartnerID))
			continue
		}
		if exclude[id] {
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return []models.DriverCandidate{}, nil
	}

	profiles, err := uc.repo.GetPartnerProfiles(ctx, ids, req.Category, req.MinCapacity)
	if err != nil {
		return nil, err
	}

	statuses, err := uc.repo.GetActiveTripStatuses(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Preserve the estimator's ascending distance order
	candidates := make([]models.DriverCandidate, 0, len(profiles))
	for _, partner := range nearby {
		id, err := uuid.Parse(partner.PartnerID)
		if err != nil {
			continue
		}
		profile, ok := profiles[id]
		if !ok {
			continue
		}

		availability, ok := uc.availabilityFor(statuses[id])
		if !ok {
			continue
		}

		candidates = append(candidates, models.DriverCandidate{
			ID:         profile.ID.String(),
			Name:       profile.Name,
			Vehicle:    vehicleSummary(profile.Vehicle),
			Rating:     profile.Rating,
			DistanceKm: partner.DistanceKm,
			EtaMinutes: int(math.Round(utils.EstimateTravelMinutes(partner.DistanceKm, uc.cfg.Match.AverageSpeedKmh))),
			PriceRange: uc.priceRange(profile.Vehicle),
			Status:     availability,
		})
	}

	return candidates, nil
}

// availabilityFor maps a partner's current trip status to their candidate
// availability. Partners en route or mid-trip surface as finishing_soon;
// partners that just accepted a trip are not offered at all.
func (uc *driverUC) availabilityFor(status models.TripStatus) (models.DriverAvailability, bool) {
	switch status {
	case "":
		return models.DriverAvailable, true
	case models.TripStatusDriverOnWay, models.TripStatusArrivedAtPickup, models.TripStatusInProgress:
		return models.DriverFinishingSoon, true
	default:
		return "", false
	}
}

// priceRange quotes the fare band for a candidate's vehicle
func (uc *driverUC) priceRange(vehicle models.Vehicle) models.PriceRange {
	return models.PriceRange{
		Min:      int(math.Round(vehicle.BaseFare)),
		Max:      int(math.Round(vehicle.BaseFare * 1.5)),
		Currency: uc.cfg.Pricing.Currency,
	}
}

func vehicleSummary(vehicle models.Vehicle) models.VehicleSummary {
	return models.VehicleSummary{
		ID:           vehicle.ID.String(),
		Brand:        vehicle.Brand,
		Model:        vehicle.Model,
		LicensePlate: vehicle.LicensePlate,
		Capacity:     vehicle.Capacity,
		Category:     vehicle.Category,
	}
}
