package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/antarin-app/antarin/internal/pkg/constants"
	natspkg "github.com/antarin-app/antarin/internal/pkg/nats"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/services/trips"
)

// TripGW publishes trip lifecycle events to NATS
type TripGW struct {
	natsClient *natspkg.Client
}

// NewTripGW creates a new trip event gateway
func NewTripGW(natsClient *natspkg.Client) trips.TripGW {
	return &TripGW{
		natsClient: natsClient,
	}
}

// PublishTripRequested publishes a trip.requested event
func (g *TripGW) PublishTripRequested(ctx context.Context, event models.TripEvent) error {
	return g.publish(constants.SubjectTripRequested, event)
}

// PublishTripAccepted publishes a trip.accepted event
func (g *TripGW) PublishTripAccepted(ctx context.Context, event models.TripEvent) error {
	return g.publish(constants.SubjectTripAccepted, event)
}

// PublishTripDeclined publishes a trip.declined event
func (g *TripGW) PublishTripDeclined(ctx context.Context, event models.TripDeclineEvent) error {
	return g.publish(constants.SubjectTripDeclined, event)
}

// PublishTripStatusChanged publishes a trip.status event. Completion gets
// its own subject so billing-style consumers only see finished trips.
func (g *TripGW) PublishTripStatusChanged(ctx context.Context, event models.TripEvent) error {
	if event.Status == models.TripStatusCompleted {
		return g.publish(constants.SubjectTripCompleted, event)
	}
	return g.publish(constants.SubjectTripStatus, event)
}

// PublishTripCancelled publishes a trip.cancelled event
func (g *TripGW) PublishTripCancelled(ctx context.Context, event models.TripEvent) error {
	return g.publish(constants.SubjectTripCancelled, event)
}

// PublishReviewSubmitted publishes a review.submitted event
func (g *TripGW) PublishReviewSubmitted(ctx context.Context, event models.ReviewEvent) error {
	return g.publish(constants.SubjectReviewSubmitted, event)
}

func (g *TripGW) publish(subject string, event interface{}) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	return nil
}
