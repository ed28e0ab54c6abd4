package models

import "time"

// TripEvent is the payload published for trip lifecycle changes
type TripEvent struct {
	TripID     string     `json:"trip_id"`
	ClientID   string     `json:"client_id"`
	PartnerID  string     `json:"partner_id,omitempty"`
	VehicleID  string     `json:"vehicle_id,omitempty"`
	Status     TripStatus `json:"status"`
	EtaMinutes int        `json:"eta_minutes,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// TripDeclineEvent is published when a partner refuses a trip offer
type TripDeclineEvent struct {
	TripID     string    `json:"trip_id"`
	PartnerID  string    `json:"partner_id"`
	Reason     string    `json:"reason,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ReminderEvent is published for each departure reminder emission
type ReminderEvent struct {
	TripID           string    `json:"trip_id"`
	ClientID         string    `json:"client_id"`
	PartnerID        string    `json:"partner_id,omitempty"`
	ThresholdMinutes int       `json:"threshold_minutes"`
	DepartureAt      time.Time `json:"departure_at"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// ReviewEvent is published when a review is submitted
type ReviewEvent struct {
	ReviewID   string    `json:"review_id"`
	TripID     string    `json:"trip_id"`
	ReviewerID string    `json:"reviewer_id"`
	RevieweeID string    `json:"reviewee_id"`
	Rating     int       `json:"rating"`
	NewAverage float64   `json:"new_average"`
	OccurredAt time.Time `json:"occurred_at"`
}
