package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

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

// ReminderRepo provides reminder sweep persistence on PostgreSQL
type ReminderRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewReminderRepository creates a new reminder repository
func NewReminderRepository(cfg *models.Config, db *sqlx.DB) *ReminderRepo {
	return &ReminderRepo{
		cfg: cfg,
		db:  db,
	}
}

// ListUpcomingScheduledTrips returns confirmed scheduled trips departing
// within the horizon, soonest first
func (r *ReminderRepo) ListUpcomingScheduledTrips(ctx context.Context, now time.Time, horizon time.Duration) ([]*models.Trip, error) {
	query := `
		SELECT ` + tripColumns + `
		FROM trips
		WHERE status = $1
			AND is_scheduled = TRUE
			AND departure_at IS NOT NULL
			AND departure_at > $2
			AND departure_at <= $3
		ORDER BY departure_at ASC
	`

	var dtos []models.TripDTO
	err := r.db.SelectContext(ctx, &dtos, query,
		models.TripStatusAccepted, now, now.Add(horizon))
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming trips: %w", err)
	}

	result := make([]*models.Trip, 0, len(dtos))
	for i := range dtos {
		result = append(result, dtos[i].ToTrip())
	}

	return result, nil
}

// ClaimReminder appends the threshold to the trip's sent set, guarded on the
// threshold not being present yet. The conditional append makes concurrent
// sweeps resolve to a single winner per (trip, threshold).
func (r *ReminderRepo) ClaimReminder(ctx context.Context, tripID uuid.UUID, thresholdMinutes int64) (bool, error) {
	query := `
		UPDATE trips
		SET reminders_sent = array_append(reminders_sent, $1), updated_at = $2
		WHERE id = $3
			AND status = $4
			AND NOT (reminders_sent @> ARRAY[$1::bigint])
	`

	res, err := r.db.ExecContext(ctx, query,
		thresholdMinutes, time.Now(), tripID, models.TripStatusAccepted)
	if err != nil {
		return false, fmt.Errorf("failed to claim reminder: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows == 1, nil
}

// CreateNotification inserts an in-app notification record
func (r *ReminderRepo) CreateNotification(ctx context.Context, notification *models.Notification) error {
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
