package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/antarin-app/antarin/internal/pkg/apperrors"
	"github.com/antarin-app/antarin/internal/pkg/models"
)

// CreateVehicle inserts a vehicle
func (r *UserRepo) CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (
			id, owner_id, brand, model, year, license_plate, capacity,
			images, price_per_km, base_fare, category, status, featured,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(ctx, query,
		vehicle.ID, vehicle.OwnerID, vehicle.Brand, vehicle.Model,
		vehicle.Year, vehicle.LicensePlate, vehicle.Capacity,
		pq.StringArray(vehicle.Images), vehicle.PricePerKm, vehicle.BaseFare,
		vehicle.Category, vehicle.Status, vehicle.Featured,
		vehicle.CreatedAt, vehicle.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.New(apperrors.KindValidation, "license plate already registered")
		}
		return fmt.Errorf("failed to insert vehicle: %w", err)
	}

	return nil
}

// ListVehiclesByOwner returns the partner's fleet, oldest first
func (r *UserRepo) ListVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Vehicle, error) {
	query := `
		SELECT id, owner_id, brand, model, year, license_plate, capacity,
			images, price_per_km, base_fare, category, status, featured,
			created_at, updated_at
		FROM vehicles
		WHERE owner_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []models.Vehicle
	for rows.Next() {
		var vehicle models.Vehicle
		var images pq.StringArray
		err := rows.Scan(
			&vehicle.ID, &vehicle.OwnerID, &vehicle.Brand, &vehicle.Model,
			&vehicle.Year, &vehicle.LicensePlate, &vehicle.Capacity,
			&images, &vehicle.PricePerKm, &vehicle.BaseFare,
			&vehicle.Category, &vehicle.Status, &vehicle.Featured,
			&vehicle.CreatedAt, &vehicle.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle: %w", err)
		}
		vehicle.Images = []string(images)
		vehicles = append(vehicles, vehicle)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read vehicles: %w", err)
	}

	return vehicles, nil
}

// DeleteVehicle removes a vehicle
func (r *UserRepo) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	return nil
}

// UpsertDocument inserts or replaces the (owner, type) document. Replacing
// resets the verification flag so staff re-review the new file.
func (r *UserRepo) UpsertDocument(ctx context.Context, document *models.Document) error {
	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}
	now := time.Now()
	if document.CreatedAt.IsZero() {
		document.CreatedAt = now
	}
	document.UpdatedAt = now

	query := `
		INSERT INTO documents (
			id, owner_id, vehicle_id, type, storage_ref, status, is_verified,
			created_at, updated_at
		) VALUES (
			:id, :owner_id, :vehicle_id, :type, :storage_ref, :status, :is_verified,
			:created_at, :updated_at
		)
		ON CONFLICT (owner_id, type) DO UPDATE SET
			vehicle_id = EXCLUDED.vehicle_id,
			storage_ref = EXCLUDED.storage_ref,
			status = EXCLUDED.status,
			is_verified = FALSE,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.NamedExecContext(ctx, query, document)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	return nil
}
