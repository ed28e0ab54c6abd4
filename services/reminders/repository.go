package reminders

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/models"
)

// ReminderRepo defines the interface for reminder sweep data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/antarin-app/antarin/services/reminders ReminderRepo
type ReminderRepo interface {
	// ListUpcomingScheduledTrips returns confirmed scheduled trips departing
	// within the horizon from now
	ListUpcomingScheduledTrips(ctx context.Context, now time.Time, horizon time.Duration) ([]*models.Trip, error)

	// ClaimReminder atomically marks the threshold as sent for the trip.
	// Returns false when the threshold was already claimed, so overlapping
	// sweeps emit each reminder exactly once.
	ClaimReminder(ctx context.Context, tripID uuid.UUID, thresholdMinutes int64) (bool, error)

	CreateNotification(ctx context.Context, notification *models.Notification) error
}
