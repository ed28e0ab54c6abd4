package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleCategory is the service class of a vehicle
type VehicleCategory string

const (
	VehicleCategoryStandard VehicleCategory = "standard"
	VehicleCategoryPremium  VehicleCategory = "premium"
	VehicleCategoryLuxury   VehicleCategory = "luxury"
	VehicleCategoryVan      VehicleCategory = "van"
)

// VehicleStatus is the operational state of a vehicle
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusInactive    VehicleStatus = "inactive"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// Vehicle represents a partner-owned vehicle.
// License plates are unique across the fleet; vehicles start inactive until
// the owning partner passes verification.
type Vehicle struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	OwnerID      uuid.UUID       `json:"owner_id" db:"owner_id"`
	Brand        string          `json:"brand" db:"brand"`
	Model        string          `json:"model" db:"model"`
	Year         int             `json:"year" db:"year"`
	LicensePlate string          `json:"license_plate" db:"license_plate"`
	Capacity     int             `json:"capacity" db:"capacity"`
	Images       []string        `json:"images" db:"images"`
	PricePerKm   float64         `json:"price_per_km" db:"price_per_km"`
	BaseFare     float64         `json:"base_fare" db:"base_fare"`
	Category     VehicleCategory `json:"category" db:"category"`
	Status       VehicleStatus   `json:"status" db:"status"`
	Featured     bool            `json:"featured" db:"featured"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}
