package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/antarin-app/antarin/internal/pkg/middleware"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/internal/utils"
)

// FindDrivers handles GET /drivers/available
func (h *DriverHandler) FindDrivers(c echo.Context) error {
	req, err := bindFindRequest(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	candidates, err := h.driverUC.FindAvailableDrivers(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", candidates)
}

// FindCandidatesForTrip handles GET /drivers/candidates/:tripID
func (h *DriverHandler) FindCandidatesForTrip(c echo.Context) error {
	tripID, err := uuid.Parse(c.Param("tripID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	req, err := bindFindRequest(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	candidates, err := h.driverUC.FindCandidatesForTrip(c.Request().Context(), tripID, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", candidates)
}

// UpdateLocation handles POST /drivers/location
func (h *DriverHandler) UpdateLocation(c echo.Context) error {
	var update models.PartnerLocationUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	// Partners may only report their own position
	update.PartnerID = middleware.ActorID(c)

	if err := h.driverUC.UpdatePartnerLocation(c.Request().Context(), update); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", nil)
}

// bindFindRequest parses matcher query parameters
func bindFindRequest(c echo.Context) (models.FindDriversRequest, error) {
	var req models.FindDriversRequest

	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return req, errors.New("latitude is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return req, errors.New("longitude is required")
	}

	req.Latitude = lat
	req.Longitude = lng
	req.Category = models.VehicleCategory(c.QueryParam("category"))

	if v := c.QueryParam("max_distance_km"); v != "" {
		if req.MaxDistanceKm, err = strconv.ParseFloat(v, 64); err != nil {
			return req, errors.New("invalid max_distance_km")
		}
	}
	if v := c.QueryParam("min_capacity"); v != "" {
		if req.MinCapacity, err = strconv.Atoi(v); err != nil {
			return req, errors.New("invalid min_capacity")
		}
	}

	return req, nil
}
