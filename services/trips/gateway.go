package trips

import (
	"context"

	"github.com/antarin-app/antarin/internal/pkg/models"
)

// TripGW defines the interface for trip event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/antarin-app/antarin/services/trips TripGW
type TripGW interface {
	PublishTripRequested(ctx context.Context, event models.TripEvent) error
	PublishTripAccepted(ctx context.Context, event models.TripEvent) error
	PublishTripDeclined(ctx context.Context, event models.TripDeclineEvent) error
	PublishTripStatusChanged(ctx context.Context, event models.TripEvent) error
	PublishTripCancelled(ctx context.Context, event models.TripEvent) error
	PublishReviewSubmitted(ctx context.Context, event models.ReviewEvent) error
}
