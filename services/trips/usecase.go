package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/models"
)

// SubmitReviewRequest carries a review submission
type SubmitReviewRequest struct {
	TripID     uuid.UUID
	ReviewerID uuid.UUID
	RevieweeID uuid.UUID
	Rating     int
	Comment    string
}

// TripUC defines the interface for trip lifecycle business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/antarin-app/antarin/services/trips TripUC
type TripUC interface {
	CreateTripRequest(ctx context.Context, clientID uuid.UUID, pickup, dropoff models.Location, details models.TripDetails, timing models.TripTiming) (*models.Trip, error)
	AcceptTrip(ctx context.Context, tripID, partnerID, vehicleID uuid.UUID, etaMinutes int) (*models.Trip, error)
	RefuseTrip(ctx context.Context, tripID, partnerID uuid.UUID, reason string) error
	AdvanceTrip(ctx context.Context, tripID, partnerID uuid.UUID, next models.TripStatus) (*models.Trip, error)
	CancelTrip(ctx context.Context, tripID, actorID uuid.UUID, reason string) (*models.Trip, error)
	SubmitReview(ctx context.Context, req SubmitReviewRequest) (*models.Review, error)
	GetTrip(ctx context.Context, tripID, actorID uuid.UUID) (*models.Trip, error)
	ListTrips(ctx context.Context, userID uuid.UUID, statusFilter string) ([]*models.Trip, error)
}
