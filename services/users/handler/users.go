package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/antarin-app/antarin/internal/pkg/jwt"
	"github.com/antarin-app/antarin/internal/pkg/middleware"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/internal/utils"
	"github.com/antarin-app/antarin/services/users"
)

// UploadDocumentRequest asks for a presigned upload slot
type UploadDocumentRequest struct {
	Type        models.DocumentType `json:"type"`
	ContentType string              `json:"content_type"`
}

// ConfirmDocumentRequest records a finished upload
type ConfirmDocumentRequest struct {
	Type       models.DocumentType `json:"type"`
	StorageRef string              `json:"storage_ref"`
	VehicleID  *uuid.UUID          `json:"vehicle_id,omitempty"`
}

// VerificationRequest sets a partner's verification outcome
type VerificationRequest struct {
	Status models.VerificationStatus `json:"status"`
}

// registrationResponse bundles the created account with a session token
type registrationResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
}

// RegisterClient handles POST /users/clients
func (h *UserHandler) RegisterClient(c echo.Context) error {
	var req users.RegisterClientRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.RegisterClient(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return h.respondWithToken(c, user)
}

// RegisterPartner handles POST /users/partners
func (h *UserHandler) RegisterPartner(c echo.Context) error {
	var req users.RegisterPartnerRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.RegisterPartner(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return h.respondWithToken(c, user)
}

// RegisterVehicle handles POST /users/vehicles
func (h *UserHandler) RegisterVehicle(c echo.Context) error {
	partnerID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	var input users.VehicleInput
	if err := c.Bind(&input); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	vehicle, err := h.userUC.RegisterVehicle(c.Request().Context(), partnerID, input)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle registered", vehicle)
}

// RequestDocumentUpload handles POST /users/documents/upload-url
func (h *UserHandler) RequestDocumentUpload(c echo.Context) error {
	ownerID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	var req UploadDocumentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	ticket, err := h.userUC.RequestDocumentUpload(c.Request().Context(), ownerID, req.Type, req.ContentType)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Upload slot created", ticket)
}

// ConfirmDocumentUpload handles POST /users/documents
func (h *UserHandler) ConfirmDocumentUpload(c echo.Context) error {
	ownerID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	var req ConfirmDocumentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	document, err := h.userUC.ConfirmDocumentUpload(c.Request().Context(), ownerID, req.Type, req.StorageRef, req.VehicleID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Document recorded", document)
}

// SetVerification handles POST /internal/users/:userID/verification
func (h *UserHandler) SetVerification(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req VerificationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.SetVerificationStatus(c.Request().Context(), userID, req.Status)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification updated", user)
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	profile, err := h.userUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := actorUUID(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	var update users.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, update)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}

func (h *UserHandler) respondWithToken(c echo.Context, user *models.User) error {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, string(user.UserType), h.cfg)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to issue token")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", registrationResponse{
		User:      user,
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// actorUUID parses the authenticated user ID from the echo context
func actorUUID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(middleware.ActorID(c))
}
