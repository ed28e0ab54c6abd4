package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/internal/pkg/storage"
)

// VehicleInput carries the fields needed to register a vehicle
type VehicleInput struct {
	Brand        string                 `json:"brand"`
	Model        string                 `json:"model"`
	Year         int                    `json:"year"`
	LicensePlate string                 `json:"license_plate"`
	Capacity     int                    `json:"capacity"`
	Category     models.VehicleCategory `json:"category"`
	PricePerKm   float64                `json:"price_per_km"`
	BaseFare     float64                `json:"base_fare"`
	Images       []string               `json:"images"`
}

// DocumentInput carries an already-uploaded onboarding document reference
type DocumentInput struct {
	Type       models.DocumentType `json:"type"`
	StorageRef string              `json:"storage_ref"`
}

// RegisterClientRequest carries a client signup
type RegisterClientRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// RegisterPartnerRequest carries a partner signup with their first vehicle
// and identity document
type RegisterPartnerRequest struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Vehicle   VehicleInput  `json:"vehicle"`
	Document  DocumentInput `json:"document"`
}

// ProfileUpdate carries profile fields to change; empty strings keep the
// current value
type ProfileUpdate struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
	ProfileImageRef string `json:"profile_image_ref"`
}

// UserProfile is a user with resolved media URLs and their fleet
type UserProfile struct {
	User            models.User      `json:"user"`
	ProfileImageURL string           `json:"profile_image_url,omitempty"`
	Vehicles        []models.Vehicle `json:"vehicles,omitempty"`
}

// UserUC defines the interface for onboarding and account maintenance
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/antarin-app/antarin/services/users UserUC
type UserUC interface {
	RegisterClient(ctx context.Context, req RegisterClientRequest) (*models.User, error)

	// RegisterPartner creates the user, their first vehicle and the initial
	// document as a saga: a failing step rolls back the earlier inserts
	RegisterPartner(ctx context.Context, req RegisterPartnerRequest) (*models.User, error)

	RegisterVehicle(ctx context.Context, partnerID uuid.UUID, input VehicleInput) (*models.Vehicle, error)

	// RequestDocumentUpload returns a presigned upload slot for a document
	RequestDocumentUpload(ctx context.Context, ownerID uuid.UUID, docType models.DocumentType, contentType string) (*storage.UploadTicket, error)

	// ConfirmDocumentUpload records the uploaded object as the current
	// (owner, type) document and resets its verification
	ConfirmDocumentUpload(ctx context.Context, ownerID uuid.UUID, docType models.DocumentType, storageRef string, vehicleID *uuid.UUID) (*models.Document, error)

	// SetVerificationStatus approves or rejects a partner; approval
	// activates their vehicles
	SetVerificationStatus(ctx context.Context, userID uuid.UUID, status models.VerificationStatus) (*models.User, error)

	GetUser(ctx context.Context, userID uuid.UUID) (*UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update ProfileUpdate) (*models.User, error)
}
