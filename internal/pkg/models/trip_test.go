package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanAdvanceTo(t *testing.T) {
	tests := []struct {
		name string
		from TripStatus
		to   TripStatus
		want bool
	}{
		{"requested to accepted", TripStatusRequested, TripStatusAccepted, true},
		{"accepted to driver on way", TripStatusAccepted, TripStatusDriverOnWay, true},
		{"driver on way to arrived", TripStatusDriverOnWay, TripStatusArrivedAtPickup, true},
		{"arrived to in progress", TripStatusArrivedAtPickup, TripStatusInProgress, true},
		{"in progress to completed", TripStatusInProgress, TripStatusCompleted, true},
		{"skipping a state", TripStatusAccepted, TripStatusArrivedAtPickup, false},
		{"going backwards", TripStatusInProgress, TripStatusAccepted, false},
		{"from completed", TripStatusCompleted, TripStatusCompleted, false},
		{"from cancelled", TripStatusCancelled, TripStatusAccepted, false},
		{"to cancelled", TripStatusAccepted, TripStatusCancelled, false},
		{"unknown status", TripStatus("BOGUS"), TripStatusAccepted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanAdvanceTo(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, TripStatusCompleted.IsTerminal())
	assert.True(t, TripStatusCancelled.IsTerminal())
	assert.False(t, TripStatusRequested.IsTerminal())
	assert.False(t, TripStatusInProgress.IsTerminal())
}

func TestParseStatusFilter(t *testing.T) {
	tests := []struct {
		in   string
		want TripStatus
		ok   bool
	}{
		{"searching", TripStatusRequested, true},
		{"confirmed", TripStatusAccepted, true},
		{"driverOnTheWay", TripStatusDriverOnWay, true},
		{"arrivedAtPickup", TripStatusArrivedAtPickup, true},
		{"inProgress", TripStatusInProgress, true},
		{"completed", TripStatusCompleted, true},
		{"cancelled", TripStatusCancelled, true},
		{"REQUESTED", TripStatusRequested, true},
		{"CANCELLED", TripStatusCancelled, true},
		{"bogus", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseStatusFilter(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTripIsParticipant(t *testing.T) {
	clientID := uuid.New()
	partnerID := uuid.New()
	stranger := uuid.New()

	trip := &Trip{ClientID: clientID, PartnerID: &partnerID}

	assert.True(t, trip.IsParticipant(clientID))
	assert.True(t, trip.IsParticipant(partnerID))
	assert.False(t, trip.IsParticipant(stranger))

	unassigned := &Trip{ClientID: clientID}
	assert.False(t, unassigned.IsParticipant(partnerID))
}

func TestTripDTORoundTrip(t *testing.T) {
	partnerID := uuid.New()
	trip := &Trip{
		ID:        uuid.New(),
		ClientID:  uuid.New(),
		PartnerID: &partnerID,
		Status:    TripStatusAccepted,
		PickupLocation: Location{
			Latitude:  -6.2088,
			Longitude: 106.8456,
			Address:   "Jl. Sudirman 1",
		},
		DropoffLocation: Location{
			Latitude:  -6.1751,
			Longitude: 106.8650,
			Address:   "Jl. Thamrin 10",
		},
		Details:       TripDetails{Passengers: 2, Luggage: 1},
		Timing:        TripTiming{IsScheduled: true},
		RemindersSent: []int64{30},
		Pricing: Pricing{
			BaseFare: 25000,
			Total:    37500,
			Currency: "IDR",
		},
	}

	got := trip.ToDTO().ToTrip()
	assert.Equal(t, trip, got)
}
