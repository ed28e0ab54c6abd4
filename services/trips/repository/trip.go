package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/antarin-app/antarin/internal/pkg/apperrors"
	"github.com/antarin-app/antarin/internal/pkg/models"
)

const tripColumns = `
	id, client_id, partner_id, vehicle_id, status,
	pickup_latitude, pickup_longitude, pickup_address,
	dropoff_latitude, dropoff_longitude, dropoff_address,
	passengers, luggage, special_requests,
	is_scheduled, departure_at, arrival_at,
	estimated_duration, estimated_distance,
	base_fare, distance_fare, taxes, total_fare, currency,
	payment_method, cancellation_reason, reminders_sent,
	accepted_at, started_at, completed_at, cancelled_at,
	created_at, updated_at`

// TripRepo provides trip persistence on PostgreSQL
type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(cfg *models.Config, db *sqlx.DB) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateTrip inserts a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	dto := trip.ToDTO()

	query := `
		INSERT INTO trips (
			id, client_id, partner_id, vehicle_id, status,
			pickup_latitude, pickup_longitude, pickup_address,
			dropoff_latitude, dropoff_longitude, dropoff_address,
			passengers, luggage, special_requests,
			is_scheduled, departure_at, arrival_at,
			estimated_duration, estimated_distance,
			base_fare, distance_fare, taxes, total_fare, currency,
			payment_method, cancellation_reason, reminders_sent,
			created_at, updated_at
		) VALUES (
			:id, :client_id, :partner_id, :vehicle_id, :status,
			:pickup_latitude, :pickup_longitude, :pickup_address,
			:dropoff_latitude, :dropoff_longitude, :dropoff_address,
			:passengers, :luggage, :special_requests,
			:is_scheduled, :departure_at, :arrival_at,
			:estimated_duration, :estimated_distance,
			:base_fare, :distance_fare, :taxes, :total_fare, :currency,
			:payment_method, :cancellation_reason, :reminders_sent,
			:created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	return nil
}

// GetTrip retrieves a trip by ID
func (r *TripRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	var dto models.TripDTO
	err := r.db.GetContext(ctx, &dto, query, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("trip", tripID.String())
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	return dto.ToTrip(), nil
}

// ListTripsByUser retrieves trips where the user is client or partner,
// optionally filtered by status, newest first
func (r *TripRepo) ListTripsByUser(ctx context.Context, userID uuid.UUID, status *models.TripStatus) ([]*models.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE (client_id = $1 OR partner_id = $1)`
	args := []interface{}{userID}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	var dtos []models.TripDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}

	result := make([]*models.Trip, 0, len(dtos))
	for i := range dtos {
		result = append(result, dtos[i].ToTrip())
	}

	return result, nil
}

// AcceptTrip binds partner and vehicle in a single conditional write. The
// WHERE clause is the linearization point: only one partner can win the
// REQUESTED -> ACCEPTED transition.
func (r *TripRepo) AcceptTrip(ctx context.Context, tripID, partnerID, vehicleID uuid.UUID) (bool, error) {
	query := `
		UPDATE trips
		SET status = $1, partner_id = $2, vehicle_id = $3, accepted_at = $4, updated_at = $4
		WHERE id = $5 AND status = $6 AND partner_id IS NULL
	`

	res, err := r.db.ExecContext(ctx, query,
		models.TripStatusAccepted, partnerID, vehicleID, time.Now(),
		tripID, models.TripStatusRequested,
	)
	if err != nil {
		return false, fmt.Errorf("failed to accept trip: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows == 1, nil
}

// AdvanceStatus moves a trip to the next forward state, guarded on the
// expected predecessor and the assigned partner
func (r *TripRepo) AdvanceStatus(ctx context.Context, tripID, partnerID uuid.UUID, from, to models.TripStatus) (bool, error) {
	now := time.Now()

	query := `UPDATE trips SET status = $1, updated_at = $2`
	args := []interface{}{to, now}

	// Stamp lifecycle timestamps alongside the transition
	switch to {
	case models.TripStatusInProgress:
		query += `, started_at = $2`
	case models.TripStatusCompleted:
		query += `, completed_at = $2`
	}

	query += ` WHERE id = $3 AND status = $4 AND partner_id = $5`
	args = append(args, tripID, from, partnerID)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to advance trip status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows == 1, nil
}

// CancelTrip marks a trip cancelled unless it is already terminal
func (r *TripRepo) CancelTrip(ctx context.Context, tripID uuid.UUID, reason string) (bool, error) {
	query := `
		UPDATE trips
		SET status = $1, cancellation_reason = $2, cancelled_at = $3, updated_at = $3
		WHERE id = $4 AND status NOT IN ($5, $6)
	`

	res, err := r.db.ExecContext(ctx, query,
		models.TripStatusCancelled, reason, time.Now(),
		tripID, models.TripStatusCompleted, models.TripStatusCancelled,
	)
	if err != nil {
		return false, fmt.Errorf("failed to cancel trip: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows == 1, nil
}

// RecordDecline adds the partner to the trip's declined set. Repeated
// declines by the same partner are a no-op.
func (r *TripRepo) RecordDecline(ctx context.Context, tripID, partnerID uuid.UUID, reason string) error {
	query := `
		INSERT INTO trip_declines (trip_id, partner_id, reason, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (trip_id, partner_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, tripID, partnerID, reason, time.Now())
	if err != nil {
		return fmt.Errorf("failed to record decline: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID
func (r *TripRepo) GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, user_type, first_name, last_name, email, phone,
			profile_image_ref, rating, is_verified, verification_status,
			created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user", userID.String())
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetVehicle retrieves a vehicle by ID
func (r *TripRepo) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error) {
	query := `
		SELECT id, owner_id, brand, model, year, license_plate, capacity,
			images, price_per_km, base_fare, category, status, featured,
			created_at, updated_at
		FROM vehicles
		WHERE id = $1
	`

	var vehicle models.Vehicle
	var images pq.StringArray
	row := r.db.QueryRowContext(ctx, query, vehicleID)
	err := row.Scan(
		&vehicle.ID, &vehicle.OwnerID, &vehicle.Brand, &vehicle.Model,
		&vehicle.Year, &vehicle.LicensePlate, &vehicle.Capacity,
		&images, &vehicle.PricePerKm, &vehicle.BaseFare,
		&vehicle.Category, &vehicle.Status, &vehicle.Featured,
		&vehicle.CreatedAt, &vehicle.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("vehicle", vehicleID.String())
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	vehicle.Images = []string(images)

	return &vehicle, nil
}

// CreateNotification inserts an in-app notification record
func (r *TripRepo) CreateNotification(ctx context.Context, notification *models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO notifications (id, user_id, trip_id, kind, title, body, is_read, created_at)
		VALUES (:id, :user_id, :trip_id, :kind, :title, :body, :is_read, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, notification)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}

	return nil
}
