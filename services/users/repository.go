package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/models"
)

// UserRepo defines the interface for account and fleet data access
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/antarin-app/antarin/services/users UserRepo
type UserRepo interface {
	// CreateUser inserts a new account; duplicate email maps to Validation
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error

	// DeleteUser removes an account. Used as saga compensation during
	// partner registration.
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	// SetVerificationStatus updates the partner's verification state;
	// approval also marks the user verified and activates their vehicles,
	// all in one transaction
	SetVerificationStatus(ctx context.Context, userID uuid.UUID, status models.VerificationStatus) error

	// CreateVehicle inserts a vehicle; duplicate license plate maps to
	// Validation
	CreateVehicle(ctx context.Context, vehicle *models.Vehicle) error
	ListVehiclesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error

	// UpsertDocument inserts or replaces the (owner, type) document and
	// resets its verification flag
	UpsertDocument(ctx context.Context, document *models.Document) error
}
