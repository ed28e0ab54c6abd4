package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// TripStatus is the canonical trip lifecycle vocabulary. The mobile app's
// filter strings ("searching", "confirmed", ...) are mapped at the handler
// boundary via ParseStatusFilter, never inside the lifecycle core.
type TripStatus string

const (
	TripStatusRequested       TripStatus = "REQUESTED"
	TripStatusAccepted        TripStatus = "ACCEPTED"
	TripStatusDriverOnWay     TripStatus = "DRIVER_ON_WAY"
	TripStatusArrivedAtPickup TripStatus = "ARRIVED_AT_PICKUP"
	TripStatusInProgress      TripStatus = "IN_PROGRESS"
	TripStatusCompleted       TripStatus = "COMPLETED"
	TripStatusCancelled       TripStatus = "CANCELLED"
)

// tripStatusOrder gives each forward state its position in the lifecycle
var tripStatusOrder = map[TripStatus]int{
	TripStatusRequested:       0,
	TripStatusAccepted:        1,
	TripStatusDriverOnWay:     2,
	TripStatusArrivedAtPickup: 3,
	TripStatusInProgress:      4,
	TripStatusCompleted:       5,
}

// IsTerminal reports whether no further transition is allowed from s
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// CanAdvanceTo reports whether next is the immediate successor of s in the
// forward lifecycle. Cancellation is handled separately.
func (s TripStatus) CanAdvanceTo(next TripStatus) bool {
	cur, ok := tripStatusOrder[s]
	if !ok {
		return false
	}
	nxt, ok := tripStatusOrder[next]
	if !ok {
		return false
	}
	return nxt == cur+1
}

// uiStatusFilters maps the app's descriptive filter strings to canonical statuses
var uiStatusFilters = map[string]TripStatus{
	"searching":       TripStatusRequested,
	"confirmed":       TripStatusAccepted,
	"driverOnTheWay":  TripStatusDriverOnWay,
	"arrivedAtPickup": TripStatusArrivedAtPickup,
	"inProgress":      TripStatusInProgress,
	"completed":       TripStatusCompleted,
	"cancelled":       TripStatusCancelled,
}

// ParseStatusFilter resolves a status filter coming from the presentation
// layer. It accepts both the canonical vocabulary and the app's filter
// strings; unknown values return false.
func ParseStatusFilter(s string) (TripStatus, bool) {
	if status, ok := uiStatusFilters[s]; ok {
		return status, true
	}
	if _, ok := tripStatusOrder[TripStatus(s)]; ok {
		return TripStatus(s), true
	}
	if TripStatus(s) == TripStatusCancelled {
		return TripStatusCancelled, true
	}
	return "", false
}

// TripDetails carries rider-supplied booking details
type TripDetails struct {
	Passengers      int    `json:"passengers" db:"passengers"`
	Luggage         int    `json:"luggage" db:"luggage"`
	SpecialRequests string `json:"special_requests,omitempty" db:"special_requests"`
}

// TripTiming carries scheduling information for a trip
type TripTiming struct {
	IsScheduled bool       `json:"is_scheduled" db:"is_scheduled"`
	DepartureAt *time.Time `json:"departure_at,omitempty" db:"departure_at"`
	ArrivalAt   *time.Time `json:"arrival_at,omitempty" db:"arrival_at"`
}

// Pricing is the fare breakdown for a trip
type Pricing struct {
	BaseFare     float64 `json:"base_fare" db:"base_fare"`
	DistanceFare float64 `json:"distance_fare" db:"distance_fare"`
	Taxes        float64 `json:"taxes" db:"taxes"`
	Total        float64 `json:"total" db:"total_fare"`
	Currency     string  `json:"currency" db:"currency"`
}

// Trip represents one booked transport request from pickup to dropoff.
// PartnerID and VehicleID stay nil until a partner accepts the trip; once
// set they never change.
type Trip struct {
	ID                 uuid.UUID   `json:"id"`
	ClientID           uuid.UUID   `json:"client_id"`
	PartnerID          *uuid.UUID  `json:"partner_id,omitempty"`
	VehicleID          *uuid.UUID  `json:"vehicle_id,omitempty"`
	Status             TripStatus  `json:"status"`
	PickupLocation     Location    `json:"pickup_location"`
	DropoffLocation    Location    `json:"dropoff_location"`
	Details            TripDetails `json:"trip_details"`
	Timing             TripTiming  `json:"timing"`
	EstimatedDuration  int         `json:"estimated_duration"` // minutes
	EstimatedDistance  float64     `json:"estimated_distance"` // kilometers
	Pricing            Pricing     `json:"pricing"`
	PaymentMethod      string      `json:"payment_method,omitempty"`
	CancellationReason string      `json:"cancellation_reason,omitempty"`
	RemindersSent      []int64     `json:"reminders_sent,omitempty"` // minute thresholds already notified
	AcceptedAt         *time.Time  `json:"accepted_at,omitempty"`
	StartedAt          *time.Time  `json:"started_at,omitempty"`
	CompletedAt        *time.Time  `json:"completed_at,omitempty"`
	CancelledAt        *time.Time  `json:"cancelled_at,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// IsParticipant reports whether userID is the trip's client or assigned partner
func (t *Trip) IsParticipant(userID uuid.UUID) bool {
	if t.ClientID == userID {
		return true
	}
	return t.PartnerID != nil && *t.PartnerID == userID
}

// TripDTO flattens the nested structs for database operations
type TripDTO struct {
	ID                 uuid.UUID      `db:"id"`
	ClientID           uuid.UUID      `db:"client_id"`
	PartnerID          *uuid.UUID     `db:"partner_id"`
	VehicleID          *uuid.UUID     `db:"vehicle_id"`
	Status             TripStatus     `db:"status"`
	PickupLatitude     float64        `db:"pickup_latitude"`
	PickupLongitude    float64        `db:"pickup_longitude"`
	PickupAddress      string         `db:"pickup_address"`
	DropoffLatitude    float64        `db:"dropoff_latitude"`
	DropoffLongitude   float64        `db:"dropoff_longitude"`
	DropoffAddress     string         `db:"dropoff_address"`
	Passengers         int            `db:"passengers"`
	Luggage            int            `db:"luggage"`
	SpecialRequests    string         `db:"special_requests"`
	IsScheduled        bool           `db:"is_scheduled"`
	DepartureAt        *time.Time     `db:"departure_at"`
	ArrivalAt          *time.Time     `db:"arrival_at"`
	EstimatedDuration  int            `db:"estimated_duration"`
	EstimatedDistance  float64        `db:"estimated_distance"`
	BaseFare           float64        `db:"base_fare"`
	DistanceFare       float64        `db:"distance_fare"`
	Taxes              float64        `db:"taxes"`
	TotalFare          float64        `db:"total_fare"`
	Currency           string         `db:"currency"`
	PaymentMethod      string         `db:"payment_method"`
	CancellationReason string         `db:"cancellation_reason"`
	RemindersSent      pq.Int64Array  `db:"reminders_sent"`
	AcceptedAt         *time.Time     `db:"accepted_at"`
	StartedAt          *time.Time     `db:"started_at"`
	CompletedAt        *time.Time     `db:"completed_at"`
	CancelledAt        *time.Time     `db:"cancelled_at"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// ToDTO converts a Trip to its flattened database representation
func (t *Trip) ToDTO() *TripDTO {
	return &TripDTO{
		ID:                 t.ID,
		ClientID:           t.ClientID,
		PartnerID:          t.PartnerID,
		VehicleID:          t.VehicleID,
		Status:             t.Status,
		PickupLatitude:     t.PickupLocation.Latitude,
		PickupLongitude:    t.PickupLocation.Longitude,
		PickupAddress:      t.PickupLocation.Address,
		DropoffLatitude:    t.DropoffLocation.Latitude,
		DropoffLongitude:   t.DropoffLocation.Longitude,
		DropoffAddress:     t.DropoffLocation.Address,
		Passengers:         t.Details.Passengers,
		Luggage:            t.Details.Luggage,
		SpecialRequests:    t.Details.SpecialRequests,
		IsScheduled:        t.Timing.IsScheduled,
		DepartureAt:        t.Timing.DepartureAt,
		ArrivalAt:          t.Timing.ArrivalAt,
		EstimatedDuration:  t.EstimatedDuration,
		EstimatedDistance:  t.EstimatedDistance,
		BaseFare:           t.Pricing.BaseFare,
		DistanceFare:       t.Pricing.DistanceFare,
		Taxes:              t.Pricing.Taxes,
		TotalFare:          t.Pricing.Total,
		Currency:           t.Pricing.Currency,
		PaymentMethod:      t.PaymentMethod,
		CancellationReason: t.CancellationReason,
		RemindersSent:      pq.Int64Array(t.RemindersSent),
		AcceptedAt:         t.AcceptedAt,
		StartedAt:          t.StartedAt,
		CompletedAt:        t.CompletedAt,
		CancelledAt:        t.CancelledAt,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

// ToTrip converts a flattened database row back to a Trip
func (dto *TripDTO) ToTrip() *Trip {
	return &Trip{
		ID:        dto.ID,
		ClientID:  dto.ClientID,
		PartnerID: dto.PartnerID,
		VehicleID: dto.VehicleID,
		Status:    dto.Status,
		PickupLocation: Location{
			Latitude:  dto.PickupLatitude,
			Longitude: dto.PickupLongitude,
			Address:   dto.PickupAddress,
		},
		DropoffLocation: Location{
			Latitude:  dto.DropoffLatitude,
			Longitude: dto.DropoffLongitude,
			Address:   dto.DropoffAddress,
		},
		Details: TripDetails{
			Passengers:      dto.Passengers,
			Luggage:         dto.Luggage,
			SpecialRequests: dto.SpecialRequests,
		},
		Timing: TripTiming{
			IsScheduled: dto.IsScheduled,
			DepartureAt: dto.DepartureAt,
			ArrivalAt:   dto.ArrivalAt,
		},
		EstimatedDuration: dto.EstimatedDuration,
		EstimatedDistance: dto.EstimatedDistance,
		Pricing: Pricing{
			BaseFare:     dto.BaseFare,
			DistanceFare: dto.DistanceFare,
			Taxes:        dto.Taxes,
			Total:        dto.TotalFare,
			Currency:     dto.Currency,
		},
		PaymentMethod:      dto.PaymentMethod,
		CancellationReason: dto.CancellationReason,
		RemindersSent:      []int64(dto.RemindersSent),
		AcceptedAt:         dto.AcceptedAt,
		StartedAt:          dto.StartedAt,
		CompletedAt:        dto.CompletedAt,
		CancelledAt:        dto.CancelledAt,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	}
}
