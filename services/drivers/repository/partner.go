package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/services/drivers"
)

// DriverRepo provides matcher reads on PostgreSQL
type DriverRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDriverRepository creates a new matcher repository
func NewDriverRepository(cfg *models.Config, db *sqlx.DB) *DriverRepo {
	return &DriverRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetPartnerProfiles returns verified partners with their first active
// vehicle matching the filters. DISTINCT ON picks one vehicle per partner,
// oldest registration first.
func (r *DriverRepo) GetPartnerProfiles(ctx context.Context, ids []uuid.UUID, category models.VehicleCategory, minCapacity int) (map[uuid.UUID]drivers.PartnerProfile, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]drivers.PartnerProfile{}, nil
	}

	idStrings := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrings = append(idStrings, id.String())
	}

	query := `
		SELECT DISTINCT ON (u.id)
			u.id, u.first_name, u.last_name, u.rating,
			v.id, v.owner_id, v.brand, v.model, v.year, v.license_plate,
			v.capacity, v.images, v.price_per_km, v.base_fare, v.category,
			v.status, v.featured, v.created_at, v.updated_at
		FROM users u
		JOIN vehicles v ON v.owner_id = u.id
		WHERE u.id = ANY($1)
			AND u.user_type = $2
			AND u.is_verified = TRUE
			AND v.status = $3
	`
	args := []interface{}{pq.Array(idStrings), models.UserTypePartner, models.VehicleStatusActive}

	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(` AND v.category = $%d`, len(args))
	}
	if minCapacity > 0 {
		args = append(args, minCapacity)
		query += fmt.Sprintf(` AND v.capacity >= $%d`, len(args))
	}
	query += ` ORDER BY u.id, v.created_at`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query partner profiles: %w", err)
	}
	defer rows.Close()

	profiles := make(map[uuid.UUID]drivers.PartnerProfile)
	for rows.Next() {
		var (
			firstName, lastName string
			profile             drivers.PartnerProfile
			vehicle             models.Vehicle
			images              pq.StringArray
		)
		err := rows.Scan(
			&profile.ID, &firstName, &lastName, &profile.Rating,
			&vehicle.ID, &vehicle.OwnerID, &vehicle.Brand, &vehicle.Model,
			&vehicle.Year, &vehicle.LicensePlate, &vehicle.Capacity,
			&images, &vehicle.PricePerKm, &vehicle.BaseFare, &vehicle.Category,
			&vehicle.Status, &vehicle.Featured, &vehicle.CreatedAt, &vehicle.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan partner profile: %w", err)
		}

		vehicle.Images = []string(images)
		profile.Name = firstName + " " + lastName
		profile.Vehicle = vehicle
		profiles[profile.ID] = profile
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read partner profiles: %w", err)
	}

	return profiles, nil
}

// GetDeclinedPartnerIDs returns the set of partners that refused the trip
func (r *DriverRepo) GetDeclinedPartnerIDs(ctx context.Context, tripID uuid.UUID) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		`SELECT partner_id FROM trip_declines WHERE trip_id = $1`, tripID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trip declines: %w", err)
	}

	declined := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		declined[id] = true
	}

	return declined, nil
}

// GetActiveTripStatuses returns the non-terminal trip status per partner.
// A partner has at most one active trip at a time.
func (r *DriverRepo) GetActiveTripStatuses(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.TripStatus, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]models.TripStatus{}, nil
	}

	idStrings := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrings = append(idStrings, id.String())
	}

	query := `
		SELECT partner_id, status
		FROM trips
		WHERE partner_id = ANY($1) AND status NOT IN ($2, $3)
	`

	rows, err := r.db.QueryContext(ctx, query,
		pq.Array(idStrings), models.TripStatusCompleted, models.TripStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to query active trips: %w", err)
	}
	defer rows.Close()

	statuses := make(map[uuid.UUID]models.TripStatus)
	for rows.Next() {
		var partnerID uuid.UUID
		var status models.TripStatus
		if err := rows.Scan(&partnerID, &status); err != nil {
			return nil, fmt.Errorf("failed to scan active trip: %w", err)
		}
		statuses[partnerID] = status
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read active trips: %w", err)
	}

	return statuses, nil
}
