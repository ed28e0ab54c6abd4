package models

import (
	"time"

	"github.com/google/uuid"
)

// UserType distinguishes travellers from vehicle owners
type UserType string

const (
	UserTypeClient  UserType = "client"
	UserTypePartner UserType = "partner"
)

// VerificationStatus is the partner onboarding approval state.
// Clients are auto-approved and carry VerificationNone.
type VerificationStatus string

const (
	VerificationNone     VerificationStatus = "none"
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// User represents a client or partner account
type User struct {
	ID                 uuid.UUID          `json:"id" db:"id"`
	UserType           UserType           `json:"user_type" db:"user_type"`
	FirstName          string             `json:"first_name" db:"first_name"`
	LastName           string             `json:"last_name" db:"last_name"`
	Email              string             `json:"email" db:"email"`
	Phone              string             `json:"phone" db:"phone"`
	ProfileImageRef    string             `json:"profile_image_ref,omitempty" db:"profile_image_ref"`
	Rating             float64            `json:"rating" db:"rating"`
	IsVerified         bool               `json:"is_verified" db:"is_verified"`
	VerificationStatus VerificationStatus `json:"verification_status" db:"verification_status"`
	CreatedAt          time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at" db:"updated_at"`
}

// IsPartner reports whether the user offers trips
func (u *User) IsPartner() bool {
	return u.UserType == UserTypePartner
}
