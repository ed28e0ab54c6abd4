package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/apperrors"
	"github.com/antarin-app/antarin/internal/pkg/logger"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/internal/utils"
	"github.com/antarin-app/antarin/services/trips"
)

// ErrTripUnavailable is returned when a conditional status write loses the
// race against a concurrent transition.
var ErrTripUnavailable = apperrors.New(apperrors.KindInvalidState, "trip no longer available")

type tripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	tripGW   trips.TripGW
}

// NewTripUC creates a new trip lifecycle use case
func NewTripUC(cfg *models.Config, tripRepo trips.TripRepo, tripGW trips.TripGW) trips.TripUC {
	return &tripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		tripGW:   tripGW,
	}
}

// CreateTripRequest creates a new trip in REQUESTED with estimated
// distance, duration and pricing derived from the route
func (uc *tripUC) CreateTripRequest(ctx context.Context, clientID uuid.UUID, pickup, dropoff models.Location, details models.TripDetails, timing models.TripTiming) (*models.Trip, error) {
	client, err := uc.tripRepo.GetUser(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client.UserType != models.UserTypeClient {
		return nil, apperrors.New(apperrors.KindValidation, "only clients can request trips")
	}
	if details.Passengers <= 0 {
		return nil, apperrors.New(apperrors.KindValidation, "passengers must be positive")
	}
	if timing.IsScheduled && timing.DepartureAt == nil {
		return nil, apperrors.New(apperrors.KindValidation, "scheduled trips require a departure time")
	}

	distance := utils.CalculateDistance(
		utils.GeoPointFromLocation(pickup),
		utils.GeoPointFromLocation(dropoff),
	)
	duration := int(math.Round(utils.EstimateTravelMinutes(distance, uc.cfg.Match.AverageSpeedKmh)))

	pricing := uc.estimatePricing(distance)

	now := time.Now()
	trip := &models.Trip{
		ID:                uuid.New(),
		ClientID:          clientID,
		Status:            models.TripStatusRequested,
		PickupLocation:    pickup,
		DropoffLocation:   dropoff,
		Details:           details,
		Timing:            timing,
		EstimatedDistance: distance,
		EstimatedDuration: duration,
		Pricing:           pricing,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}

	uc.publish(ctx, "trip requested", func() error {
		return uc.tripGW.PublishTripRequested(ctx, models.TripEvent{
			TripID:     trip.ID.String(),
			ClientID:   trip.ClientID.String(),
			Status:     trip.Status,
			OccurredAt: now,
		})
	})

	return trip, nil
}

// AcceptTrip transitions REQUESTED -> ACCEPTED, binding the partner and
// vehicle. The repository write is conditional on the current status, so
// concurrent acceptances resolve to exactly one winner.
func (uc *tripUC) AcceptTrip(ctx context.Context, tripID, partnerID, vehicleID uuid.UUID, etaMinutes int) (*models.Trip, error) {
	partner, err := uc.tripRepo.GetUser(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if !partner.IsPartner() || !partner.IsVerified {
		return nil, apperrors.New(apperrors.KindUnauthorized, "partner is not verified")
	}

	vehicle, err := uc.tripRepo.GetVehicle(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.OwnerID != partnerID {
		return nil, apperrors.New(apperrors.KindValidation, "vehicle does not belong to partner")
	}
	if vehicle.Status != models.VehicleStatusActive {
		return nil, apperrors.New(apperrors.KindValidation, "vehicle is not active")
	}

	ok, err := uc.tripRepo.AcceptTrip(ctx, tripID, partnerID, vehicleID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Either the trip does not exist or another partner won the race.
		if _, err := uc.tripRepo.GetTrip(ctx, tripID); err != nil {
			return nil, err
		}
		return nil, ErrTripUnavailable
	}

	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	event := models.TripEvent{
		TripID:     trip.ID.String(),
		ClientID:   trip.ClientID.String(),
		PartnerID:  partnerID.String(),
		VehicleID:  vehicleID.String(),
		Status:     trip.Status,
		EtaMinutes: etaMinutes,
		OccurredAt: time.Now(),
	}

	uc.publish(ctx, "trip accepted", func() error {
		return uc.tripGW.PublishTripAccepted(ctx, event)
	})

	uc.notify(ctx, trip.ClientID, trip.ID, models.NotificationTripAccepted,
		"Trip confirmed",
		fmt.Sprintf("%s %s accepted your trip, arriving in about %d minutes", partner.FirstName, partner.LastName, etaMinutes))

	return trip, nil
}

// RefuseTrip records the partner in the trip's declined set. The trip stays
// REQUESTED so matching can re-offer it to other candidates.
func (uc *tripUC) RefuseTrip(ctx context.Context, tripID, partnerID uuid.UUID, reason string) error {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return err
	}
	if trip.Status != models.TripStatusRequested {
		return apperrors.New(apperrors.KindInvalidState, "trip is no longer open for offers")
	}

	if err := uc.tripRepo.RecordDecline(ctx, tripID, partnerID, reason); err != nil {
		return err
	}

	uc.publish(ctx, "trip declined", func() error {
		return uc.tripGW.PublishTripDeclined(ctx, models.TripDeclineEvent{
			TripID:     tripID.String(),
			PartnerID:  partnerID.String(),
			Reason:     reason,
			OccurredAt: time.Now(),
		})
	})

	return nil
}

// AdvanceTrip moves the trip to the next forward state. Only the assigned
// partner may advance, and only to the immediate successor of the current
// status.
func (uc *tripUC) AdvanceTrip(ctx context.Context, tripID, partnerID uuid.UUID, next models.TripStatus) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if trip.PartnerID == nil || *trip.PartnerID != partnerID {
		return nil, apperrors.New(apperrors.KindUnauthorized, "trip is not assigned to this partner")
	}
	if !trip.Status.CanAdvanceTo(next) {
		return nil, apperrors.Newf(apperrors.KindInvalidState,
			"cannot advance trip from %s to %s", trip.Status, next)
	}

	ok, err := uc.tripRepo.AdvanceStatus(ctx, tripID, partnerID, trip.Status, next)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTripUnavailable
	}

	updated, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, "trip status changed", func() error {
		return uc.tripGW.PublishTripStatusChanged(ctx, models.TripEvent{
			TripID:     updated.ID.String(),
			ClientID:   updated.ClientID.String(),
			PartnerID:  partnerID.String(),
			Status:     updated.Status,
			OccurredAt: time.Now(),
		})
	})

	uc.notify(ctx, updated.ClientID, updated.ID, models.NotificationTripStatus,
		"Trip update", statusMessage(updated.Status))

	return updated, nil
}

// CancelTrip cancels the trip on behalf of either participant. Completed
// and already-cancelled trips cannot be cancelled.
func (uc *tripUC) CancelTrip(ctx context.Context, tripID, actorID uuid.UUID, reason string) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.IsParticipant(actorID) {
		return nil, apperrors.New(apperrors.KindUnauthorized, "only trip participants can cancel")
	}
	if trip.Status.IsTerminal() {
		return nil, apperrors.Newf(apperrors.KindInvalidState, "trip is already %s", trip.Status)
	}

	ok, err := uc.tripRepo.CancelTrip(ctx, tripID, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTripUnavailable
	}

	updated, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, "trip cancelled", func() error {
		return uc.tripGW.PublishTripCancelled(ctx, models.TripEvent{
			TripID:     updated.ID.String(),
			ClientID:   updated.ClientID.String(),
			Status:     updated.Status,
			Reason:     reason,
			OccurredAt: time.Now(),
		})
	})

	// Notify the counterparty, not the actor
	if counterparty, ok := uc.counterparty(updated, actorID); ok {
		uc.notify(ctx, counterparty, updated.ID, models.NotificationTripCancelled,
			"Trip cancelled", reason)
	}

	return updated, nil
}

// GetTrip returns the trip if the actor participates in it
func (uc *tripUC) GetTrip(ctx context.Context, tripID, actorID uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if !trip.IsParticipant(actorID) {
		return nil, apperrors.New(apperrors.KindUnauthorized, "not a participant of this trip")
	}
	return trip, nil
}

// ListTrips returns the user's trips, optionally filtered. The filter
// accepts both canonical statuses and the app's filter strings.
func (uc *tripUC) ListTrips(ctx context.Context, userID uuid.UUID, statusFilter string) ([]*models.Trip, error) {
	var status *models.TripStatus
	if statusFilter != "" {
		parsed, ok := models.ParseStatusFilter(statusFilter)
		if !ok {
			return nil, apperrors.Newf(apperrors.KindValidation, "unknown status filter %q", statusFilter)
		}
		status = &parsed
	}

	return uc.tripRepo.ListTripsByUser(ctx, userID, status)
}

// estimatePricing builds the fare breakdown for an estimated distance
func (uc *tripUC) estimatePricing(distanceKm float64) models.Pricing {
	base := uc.cfg.Pricing.BaseFare
	distanceFare := uc.cfg.Pricing.PerKmRate * distanceKm
	taxes := (base + distanceFare) * uc.cfg.Pricing.TaxRate

	return models.Pricing{
		BaseFare:     base,
		DistanceFare: distanceFare,
		Taxes:        taxes,
		Total:        base + distanceFare + taxes,
		Currency:     uc.cfg.Pricing.Currency,
	}
}

// counterparty returns the participant other than the actor
func (uc *tripUC) counterparty(trip *models.Trip, actorID uuid.UUID) (uuid.UUID, bool) {
	if trip.ClientID == actorID {
		if trip.PartnerID != nil {
			return *trip.PartnerID, true
		}
		return uuid.Nil, false
	}
	return trip.ClientID, true
}

// publish runs a gateway publish and logs failures without failing the
// operation; the state change is already committed.
func (uc *tripUC) publish(ctx context.Context, name string, fn func() error) {
	if err := fn(); err != nil {
		logger.Warn("failed to publish event",
			logger.String("event", name),
			logger.Err(err))
	}
}

// notify inserts an in-app notification and logs failures
func (uc *tripUC) notify(ctx context.Context, userID, tripID uuid.UUID, kind models.NotificationKind, title, body string) {
	id := tripID
	err := uc.tripRepo.CreateNotification(ctx, &models.Notification{
		UserID: userID,
		TripID: &id,
		Kind:   kind,
		Title:  title,
		Body:   body,
	})
	if err != nil {
		logger.Warn("failed to store notification",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}
}

func statusMessage(status models.TripStatus) string {
	switch status {
	case models.TripStatusDriverOnWay:
		return "Your driver is on the way"
	case models.TripStatusArrivedAtPickup:
		return "Your driver has arrived at the pickup point"
	case models.TripStatusInProgress:
		return "Your trip has started"
	case models.TripStatusCompleted:
		return "Your trip is complete"
	default:
		return "Trip status updated"
	}
}
