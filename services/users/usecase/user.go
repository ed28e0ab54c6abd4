package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/apperrors"
	"github.com/antarin-app/antarin/internal/pkg/logger"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/internal/pkg/storage"
	"github.com/antarin-app/antarin/services/users"
)

type userUC struct {
	cfg       *models.Config
	userRepo  users.UserRepo
	fileStore users.FileStore
}

// NewUserUC creates a new onboarding use case
func NewUserUC(cfg *models.Config, userRepo users.UserRepo, fileStore users.FileStore) users.UserUC {
	return &userUC{
		cfg:       cfg,
		userRepo:  userRepo,
		fileStore: fileStore,
	}
}

// RegisterClient creates an auto-approved client account
func (uc *userUC) RegisterClient(ctx context.Context, req users.RegisterClientRequest) (*models.User, error) {
	if err := validateIdentity(req.FirstName, req.Email); err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:                 uuid.New(),
		UserType:           models.UserTypeClient,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              strings.ToLower(req.Email),
		Phone:              req.Phone,
		IsVerified:         true,
		VerificationStatus: models.VerificationNone,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// RegisterPartner creates the partner account, their first vehicle and the
// initial onboarding document. A failure at any step rolls back the earlier
// inserts and surfaces the error.
func (uc *userUC) RegisterPartner(ctx context.Context, req users.RegisterPartnerRequest) (*models.User, error) {
	if err := validateIdentity(req.FirstName, req.Email); err != nil {
		return nil, err
	}
	if err := validateVehicleInput(req.Vehicle); err != nil {
		return nil, err
	}
	if req.Document.StorageRef == "" {
		return nil, apperrors.New(apperrors.KindValidation, "onboarding document is required")
	}

	now := time.Now()
	user := &models.User{
		ID:                 uuid.New(),
		UserType:           models.UserTypePartner,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              strings.ToLower(req.Email),
		Phone:              req.Phone,
		IsVerified:         false,
		VerificationStatus: models.VerificationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	vehicle := vehicleFromInput(user.ID, req.Vehicle)
	if err := uc.userRepo.CreateVehicle(ctx, vehicle); err != nil {
		uc.compensate(ctx, "user", func() error {
			return uc.userRepo.DeleteUser(ctx, user.ID)
		})
		return nil, fmt.Errorf("partner registration failed at vehicle step: %w", err)
	}

	document := &models.Document{
		ID:         uuid.New(),
		OwnerID:    user.ID,
		VehicleID:  &vehicle.ID,
		Type:       req.Document.Type,
		StorageRef: req.Document.StorageRef,
		Status:     models.DocumentStatusValid,
	}
	if err := uc.userRepo.UpsertDocument(ctx, document); err != nil {
		uc.compensate(ctx, "vehicle", func() error {
			return uc.userRepo.DeleteVehicle(ctx, vehicle.ID)
		})
		uc.compensate(ctx, "user", func() error {
			return uc.userRepo.DeleteUser(ctx, user.ID)
		})
		return nil, fmt.Errorf("partner registration failed at document step: %w", err)
	}

	return user, nil
}

// RegisterVehicle adds a vehicle to an existing partner's fleet. New
// vehicles start inactive until the partner is (re)verified.
func (uc *userUC) RegisterVehicle(ctx context.Context, partnerID uuid.UUID, input users.VehicleInput) (*models.Vehicle, error) {
	if err := validateVehicleInput(input); err != nil {
		return nil, err
	}

	owner, err := uc.userRepo.GetUserByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	if !owner.IsPartner() {
		return nil, apperrors.New(apperrors.KindValidation, "only partners can register vehicles")
	}

	vehicle := vehicleFromInput(partnerID, input)
	if owner.IsVerified {
		vehicle.Status = models.VehicleStatusActive
	}

	if err := uc.userRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// RequestDocumentUpload hands out a presigned upload slot for a document
func (uc *userUC) RequestDocumentUpload(ctx context.Context, ownerID uuid.UUID, docType models.DocumentType, contentType string) (*storage.UploadTicket, error) {
	if _, err := uc.userRepo.GetUserByID(ctx, ownerID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("documents/%s/%s/%s", ownerID, docType, uuid.New())
	return uc.fileStore.GenerateUploadURL(ctx, key, contentType)
}

// ConfirmDocumentUpload records the uploaded object as the current document
// for (owner, type). Replacing an existing document resets its verification.
func (uc *userUC) ConfirmDocumentUpload(ctx context.Context, ownerID uuid.UUID, docType models.DocumentType, storageRef string, vehicleID *uuid.UUID) (*models.Document, error) {
	if storageRef == "" {
		return nil, apperrors.New(apperrors.KindValidation, "storage ref is required")
	}
	if _, err := uc.userRepo.GetUserByID(ctx, ownerID); err != nil {
		return nil, err
	}

	document := &models.Document{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		VehicleID:  vehicleID,
		Type:       docType,
		StorageRef: storageRef,
		Status:     models.DocumentStatusValid,
	}
	if err := uc.userRepo.UpsertDocument(ctx, document); err != nil {
		return nil, err
	}

	return document, nil
}

// SetVerificationStatus approves or rejects a partner
func (uc *userUC) SetVerificationStatus(ctx context.Context, userID uuid.UUID, status models.VerificationStatus) (*models.User, error) {
	if status != models.VerificationApproved && status != models.VerificationRejected {
		return nil, apperrors.Newf(apperrors.KindValidation, "unsupported verification status %q", status)
	}

	if err := uc.userRepo.SetVerificationStatus(ctx, userID, status); err != nil {
		return nil, err
	}

	return uc.userRepo.GetUserByID(ctx, userID)
}

// GetUser returns the profile with resolved media URLs and, for partners,
// their fleet
func (uc *userUC) GetUser(ctx context.Context, userID uuid.UUID) (*users.UserProfile, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &users.UserProfile{User: *user}

	imageURL, err := uc.fileStore.GetURL(ctx, user.ProfileImageRef)
	if err != nil {
		// A broken media link should not hide the profile
		logger.Warn("failed to resolve profile image URL",
			logger.String("user_id", userID.String()),
			logger.Err(err))
	} else {
		profile.ProfileImageURL = imageURL
	}

	if user.IsPartner() {
		vehicles, err := uc.userRepo.ListVehiclesByOwner(ctx, userID)
		if err != nil {
			return nil, err
		}
		profile.Vehicles = vehicles
	}

	return profile, nil
}

// UpdateProfile changes the mutable profile fields; empty values keep the
// current ones
func (uc *userUC) UpdateProfile(ctx context.Context, userID uuid.UUID, update users.ProfileUpdate) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != "" {
		user.FirstName = update.FirstName
	}
	if update.LastName != "" {
		user.LastName = update.LastName
	}
	if update.Phone != "" {
		user.Phone = update.Phone
	}
	if update.ProfileImageRef != "" {
		user.ProfileImageRef = update.ProfileImageRef
	}

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// compensate runs a saga rollback step and logs failures; the original
// error is surfaced to the caller either way
func (uc *userUC) compensate(ctx context.Context, step string, fn func() error) {
	if err := fn(); err != nil {
		logger.Error("saga compensation failed",
			logger.String("step", step),
			logger.Err(err))
	}
}

func validateIdentity(firstName, email string) error {
	if firstName == "" {
		return apperrors.New(apperrors.KindValidation, "first name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return apperrors.New(apperrors.KindValidation, "a valid email is required")
	}
	return nil
}

func validateVehicleInput(input users.VehicleInput) error {
	if input.LicensePlate == "" {
		return apperrors.New(apperrors.KindValidation, "license plate is required")
	}
	if input.Capacity <= 0 {
		return apperrors.New(apperrors.KindValidation, "capacity must be positive")
	}
	return nil
}

func vehicleFromInput(ownerID uuid.UUID, input users.VehicleInput) *models.Vehicle {
	now := time.Now()
	category := input.Category
	if category == "" {
		category = models.VehicleCategoryStandard
	}

	return &models.Vehicle{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Brand:        input.Brand,
		Model:        input.Model,
		Year:         input.Year,
		LicensePlate: strings.ToUpper(strings.TrimSpace(input.LicensePlate)),
		Capacity:     input.Capacity,
		Images:       input.Images,
		PricePerKm:   input.PricePerKm,
		BaseFare:     input.BaseFare,
		Category:     category,
		Status:       models.VehicleStatusInactive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
