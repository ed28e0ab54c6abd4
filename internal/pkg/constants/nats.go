package constants

// NATS Subjects
const (
	// Trip lifecycle events
	SubjectTripRequested = "trip.requested"
	SubjectTripAccepted  = "trip.accepted"
	SubjectTripDeclined  = "trip.declined"
	SubjectTripStatus    = "trip.status"
	SubjectTripCompleted = "trip.completed"
	SubjectTripCancelled = "trip.cancelled"

	// Reminder events
	SubjectTripReminder = "trip.reminder"

	// Review events
	SubjectReviewSubmitted = "review.submitted"

	// Partner availability events
	SubjectPartnerBeacon = "partner.beacon"
)
