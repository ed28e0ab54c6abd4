package models

// DriverAvailability is the matcher's view of a candidate partner's state
type DriverAvailability string

const (
	DriverAvailable     DriverAvailability = "available"
	DriverFinishingSoon DriverAvailability = "finishing_soon"
)

// VehicleSummary is the candidate-facing slice of a vehicle record
type VehicleSummary struct {
	ID           string          `json:"id"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	LicensePlate string          `json:"license_plate"`
	Capacity     int             `json:"capacity"`
	Category     VehicleCategory `json:"category"`
}

// PriceRange is the fare band quoted for a candidate
type PriceRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// DriverCandidate is one eligible partner returned by the availability matcher
type DriverCandidate struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Vehicle    VehicleSummary     `json:"vehicle"`
	Rating     float64            `json:"rating"`
	DistanceKm float64            `json:"distance_km"`
	EtaMinutes int                `json:"eta_minutes"`
	PriceRange PriceRange         `json:"price_range"`
	Status     DriverAvailability `json:"status"`
}

// FindDriversRequest carries the matcher's query parameters. Zero values
// mean "no filter".
type FindDriversRequest struct {
	Latitude      float64         `json:"latitude"`
	Longitude     float64         `json:"longitude"`
	MaxDistanceKm float64         `json:"max_distance_km,omitempty"`
	Category      VehicleCategory `json:"category,omitempty"`
	MinCapacity   int             `json:"min_capacity,omitempty"`
}
