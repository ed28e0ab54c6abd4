package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/models"
)

// TripRepo defines the interface for trip data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/antarin-app/antarin/services/trips TripRepo
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	ListTripsByUser(ctx context.Context, userID uuid.UUID, status *models.TripStatus) ([]*models.Trip, error)

	// AcceptTrip binds partner and vehicle with a conditional status write.
	// It returns false when the trip was not in REQUESTED anymore.
	AcceptTrip(ctx context.Context, tripID, partnerID, vehicleID uuid.UUID) (bool, error)

	// AdvanceStatus moves the trip from the expected predecessor to next,
	// guarded on the assigned partner. Returns false when the guard failed.
	AdvanceStatus(ctx context.Context, tripID, partnerID uuid.UUID, from, to models.TripStatus) (bool, error)

	// CancelTrip marks the trip cancelled unless it already reached a
	// terminal state. Returns false when the guard failed.
	CancelTrip(ctx context.Context, tripID uuid.UUID, reason string) (bool, error)

	RecordDecline(ctx context.Context, tripID, partnerID uuid.UUID, reason string) error

	GetUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*models.Vehicle, error)

	// CreateReview inserts the review and recomputes the reviewee's average
	// rating in one transaction, returning the new average.
	CreateReview(ctx context.Context, review *models.Review) (float64, error)

	CreateNotification(ctx context.Context, notification *models.Notification) error
}
