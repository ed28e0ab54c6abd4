package drivers

import (
	"context"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/models"
)

// PartnerProfile is a verified partner together with the vehicle the matcher
// offers on their behalf
type PartnerProfile struct {
	ID      uuid.UUID
	Name    string
	Rating  float64
	Vehicle models.Vehicle
}

// DriverRepo defines the interface for matcher data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/antarin-app/antarin/services/drivers DriverRepo
type DriverRepo interface {
	// GetPartnerProfiles returns verified partners from ids that have an
	// active vehicle matching the filters. Each partner is represented by
	// their first matching vehicle.
	GetPartnerProfiles(ctx context.Context, ids []uuid.UUID, category models.VehicleCategory, minCapacity int) (map[uuid.UUID]PartnerProfile, error)

	// GetDeclinedPartnerIDs returns the partners that refused the trip
	GetDeclinedPartnerIDs(ctx context.Context, tripID uuid.UUID) (map[uuid.UUID]bool, error)

	// GetActiveTripStatuses returns, for each partner in ids that currently
	// has a non-terminal trip, the status of that trip
	GetActiveTripStatuses(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.TripStatus, error)
}

// NearbyPartner is one live partner returned by the distance estimator,
// nearest first
type NearbyPartner struct {
	PartnerID  string
	DistanceKm float64
	Latitude   float64
	Longitude  float64
}

// DistanceEstimator resolves live partner positions and real distances from
// a pickup point. Backed by the Redis geo set in production.
//
//go:generate mockgen -destination=mocks/mock_estimator.go -package=mocks github.com/antarin-app/antarin/services/drivers DistanceEstimator
type DistanceEstimator interface {
	// NearbyPartners returns available partners within radiusKm of the
	// point, ordered by ascending distance
	NearbyPartners(ctx context.Context, latitude, longitude, radiusKm float64) ([]NearbyPartner, error)

	// UpdateLocation records a partner's live position and availability
	UpdateLocation(ctx context.Context, update models.PartnerLocationUpdate) error

	// RemovePartner drops a partner from the live set
	RemovePartner(ctx context.Context, partnerID string) error
}
