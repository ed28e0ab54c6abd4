package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/antarin-app/antarin/internal/pkg/apperrors"
	"github.com/antarin-app/antarin/internal/pkg/models"
)

const userColumns = `
	id, user_type, first_name, last_name, email, phone,
	profile_image_ref, rating, is_verified, verification_status,
	created_at, updated_at`

// UserRepo provides account and fleet persistence on PostgreSQL
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateUser inserts a new account
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, user_type, first_name, last_name, email, phone,
			profile_image_ref, rating, is_verified, verification_status,
			created_at, updated_at
		) VALUES (
			:id, :user_type, :first_name, :last_name, :email, :phone,
			:profile_image_ref, :rating, :is_verified, :verification_status,
			:created_at, :updated_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.New(apperrors.KindValidation, "email already registered")
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user", userID.String())
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("user", email)
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// UpdateUser writes the mutable profile fields back
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET first_name = :first_name, last_name = :last_name, phone = :phone,
			profile_image_ref = :profile_image_ref, updated_at = :updated_at
		WHERE id = :id
	`

	res, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("user", user.ID.String())
	}

	return nil
}

// DeleteUser removes an account
func (r *UserRepo) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

// SetVerificationStatus updates the partner's verification state. Approval
// marks the user verified and activates their inactive vehicles in the same
// transaction.
func (r *UserRepo) SetVerificationStatus(ctx context.Context, userID uuid.UUID, status models.VerificationStatus) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	verified := status == models.VerificationApproved

	res, err := tx.ExecContext(ctx,
		`UPDATE users SET verification_status = $1, is_verified = $2, updated_at = $3
		 WHERE id = $4 AND user_type = $5`,
		status, verified, now, userID, models.UserTypePartner,
	)
	if err != nil {
		return fmt.Errorf("failed to update verification status: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NotFound("partner", userID.String())
	}

	if verified {
		_, err = tx.ExecContext(ctx,
			`UPDATE vehicles SET status = $1, updated_at = $2
			 WHERE owner_id = $3 AND status = $4`,
			models.VehicleStatusActive, now, userID, models.VehicleStatusInactive,
		)
		if err != nil {
			return fmt.Errorf("failed to activate vehicles: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit verification: %w", err)
	}

	return nil
}
