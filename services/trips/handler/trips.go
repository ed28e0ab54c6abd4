package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/antarin-app/antarin/internal/pkg/logger"
	"github.com/antarin-app/antarin/internal/pkg/middleware"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/internal/utils"
	"github.com/antarin-app/antarin/services/trips"
)

// CreateTripRequest is the booking request body
type CreateTripRequest struct {
	PickupLocation  models.Location    `json:"pickup_location"`
	DropoffLocation models.Location    `json:"dropoff_location"`
	Details         models.TripDetails `json:"trip_details"`
	Timing          models.TripTiming  `json:"timing"`
}

// AcceptTripRequest is the partner acceptance body
type AcceptTripRequest struct {
	VehicleID  uuid.UUID `json:"vehicle_id"`
	EtaMinutes int       `json:"eta_minutes"`
}

// RefuseTripRequest is the partner decline body
type RefuseTripRequest struct {
	Reason string `json:"reason"`
}

// AdvanceTripRequest carries the next lifecycle status
type AdvanceTripRequest struct {
	Status models.TripStatus `json:"status"`
}

// CancelTripRequest carries the cancellation reason
type CancelTripRequest struct {
	Reason string `json:"reason"`
}

// SubmitReviewRequest is the post-trip review body
type SubmitReviewRequest struct {
	RevieweeID uuid.UUID `json:"reviewee_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
}

// CreateTrip handles POST /trips
func (h *TripHandler) CreateTrip(c echo.Context) error {
	clientID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	var req CreateTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.CreateTripRequest(c.Request().Context(), clientID,
		req.PickupLocation, req.DropoffLocation, req.Details, req.Timing)
	if err != nil {
		logger.Warn("failed to create trip",
			logger.String("client_id", clientID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip requested", trip)
}

// AcceptTrip handles POST /trips/:tripID/accept
func (h *TripHandler) AcceptTrip(c echo.Context) error {
	partnerID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req AcceptTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.AcceptTrip(c.Request().Context(), tripID, partnerID, req.VehicleID, req.EtaMinutes)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip accepted", trip)
}

// RefuseTrip handles POST /trips/:tripID/refuse
func (h *TripHandler) RefuseTrip(c echo.Context) error {
	partnerID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req RefuseTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if err := h.tripUC.RefuseTrip(c.Request().Context(), tripID, partnerID, req.Reason); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip refused", nil)
}

// AdvanceTrip handles POST /trips/:tripID/advance
func (h *TripHandler) AdvanceTrip(c echo.Context) error {
	partnerID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req AdvanceTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.Status == "" {
		return utils.BadRequestResponse(c, "Status is required")
	}

	trip, err := h.tripUC.AdvanceTrip(c.Request().Context(), tripID, partnerID, req.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip status updated", trip)
}

// CancelTrip handles POST /trips/:tripID/cancel
func (h *TripHandler) CancelTrip(c echo.Context) error {
	actorID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req CancelTripRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	trip, err := h.tripUC.CancelTrip(c.Request().Context(), tripID, actorID, req.Reason)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip cancelled", trip)
}

// SubmitReview handles POST /trips/:tripID/reviews
func (h *TripHandler) SubmitReview(c echo.Context) error {
	reviewerID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	review, err := h.tripUC.SubmitReview(c.Request().Context(), trips.SubmitReviewRequest{
		TripID:     tripID,
		ReviewerID: reviewerID,
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Review submitted", review)
}

// GetTrip handles GET /trips/:tripID
func (h *TripHandler) GetTrip(c echo.Context) error {
	actorID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	trip, err := h.tripUC.GetTrip(c.Request().Context(), tripID, actorID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", trip)
}

// ListTrips handles GET /trips?status=
func (h *TripHandler) ListTrips(c echo.Context) error {
	actorID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	result, err := h.tripUC.ListTrips(c.Request().Context(), actorID, c.QueryParam("status"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", result)
}

// actorUUID parses the authenticated user ID from the echo context
func actorUUID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(middleware.ActorID(c))
}
