package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/antarin-app/antarin/internal/pkg/constants"
	"github.com/antarin-app/antarin/internal/pkg/database"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/internal/utils"
	"github.com/antarin-app/antarin/services/drivers"
)

// locationTTL bounds how long a stale beacon keeps a partner discoverable
const locationTTL = 30 * time.Minute

// LocationRepo implements the distance estimator on the Redis geo set
type LocationRepo struct {
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new live location store
func NewLocationRepository(redisClient *database.RedisClient) *LocationRepo {
	return &LocationRepo{
		redisClient: redisClient,
	}
}

// partnerLocationRecord is the cached last-known position of a partner
type partnerLocationRecord struct {
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lng"`
	Geohash   string    `json:"geohash"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateLocation records the partner's position in the geo set and flips
// availability membership
func (r *LocationRepo) UpdateLocation(ctx context.Context, update models.PartnerLocationUpdate) error {
	if !update.IsAvailable {
		return r.RemovePartner(ctx, update.PartnerID)
	}

	loc := update.Location
	if err := r.redisClient.GeoAdd(ctx, constants.KeyPartnerGeo, loc.Longitude, loc.Latitude, update.PartnerID); err != nil {
		return fmt.Errorf("failed to update partner geo position: %w", err)
	}
	if err := r.redisClient.SAdd(ctx, constants.KeyAvailablePartner, update.PartnerID); err != nil {
		return fmt.Errorf("failed to mark partner available: %w", err)
	}

	record := partnerLocationRecord{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Geohash:   utils.EncodeLocation(loc, 9),
		UpdatedAt: time.Now(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal location record: %w", err)
	}

	key := fmt.Sprintf(constants.KeyPartnerLocation, update.PartnerID)
	if err := r.redisClient.Set(ctx, key, data, locationTTL); err != nil {
		return fmt.Errorf("failed to cache partner location: %w", err)
	}

	return nil
}

// RemovePartner drops the partner from the live set
func (r *LocationRepo) RemovePartner(ctx context.Context, partnerID string) error {
	if err := r.redisClient.GeoRemove(ctx, constants.KeyPartnerGeo, partnerID); err != nil {
		return fmt.Errorf("failed to remove partner geo position: %w", err)
	}
	if err := r.redisClient.SRem(ctx, constants.KeyAvailablePartner, partnerID); err != nil {
		return fmt.Errorf("failed to unmark partner availability: %w", err)
	}
	if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyPartnerLocation, partnerID)); err != nil {
		return fmt.Errorf("failed to drop partner location cache: %w", err)
	}

	return nil
}

// NearbyPartners returns available partners within radiusKm, nearest first.
// Distances come from the GEORADIUS reply, not recomputed client-side.
func (r *LocationRepo) NearbyPartners(ctx context.Context, latitude, longitude, radiusKm float64) ([]drivers.NearbyPartner, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyPartnerGeo, longitude, latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby partners: %w", err)
	}

	nearby := make([]drivers.NearbyPartner, 0, len(locations))
	for _, loc := range locations {
		// Geo set entries outlive availability flips; the set is authoritative
		available, err := r.redisClient.SIsMember(ctx, constants.KeyAvailablePartner, loc.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check partner availability: %w", err)
		}
		if !available {
			continue
		}

		nearby = append(nearby, drivers.NearbyPartner{
			PartnerID:  loc.Name,
			DistanceKm: loc.Dist,
			Latitude:   loc.Latitude,
			Longitude:  loc.Longitude,
		})
	}

	return nearby, nil
}
