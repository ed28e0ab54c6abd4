package models

import (
	"time"

	"github.com/google/uuid"
)

// DocumentType is the kind of a partner onboarding document
type DocumentType string

const (
	DocumentTypeDriverLicense       DocumentType = "driver_license"
	DocumentTypeVehicleRegistration DocumentType = "vehicle_registration"
	DocumentTypeInsurance           DocumentType = "insurance"
	DocumentTypeIdentityCard        DocumentType = "identity_card"
)

// DocumentStatus is the validity state of a document
type DocumentStatus string

const (
	DocumentStatusValid   DocumentStatus = "valid"
	DocumentStatusExpired DocumentStatus = "expired"
)

// Document is a partner onboarding document. At most one current document
// exists per (owner, type); re-uploading overwrites in place and resets
// verification.
type Document struct {
	ID         uuid.UUID      `json:"id" db:"id"`
	OwnerID    uuid.UUID      `json:"owner_id" db:"owner_id"`
	VehicleID  *uuid.UUID     `json:"vehicle_id,omitempty" db:"vehicle_id"`
	Type       DocumentType   `json:"type" db:"type"`
	StorageRef string         `json:"storage_ref" db:"storage_ref"`
	Status     DocumentStatus `json:"status" db:"status"`
	IsVerified bool           `json:"is_verified" db:"is_verified"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}
