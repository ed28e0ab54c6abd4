package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind labels the event that produced a notification
type NotificationKind string

const (
	NotificationTripRequested NotificationKind = "trip_requested"
	NotificationTripAccepted  NotificationKind = "trip_accepted"
	NotificationTripStatus    NotificationKind = "trip_status"
	NotificationTripCancelled NotificationKind = "trip_cancelled"
	NotificationTripReminder  NotificationKind = "trip_reminder"
	NotificationReview        NotificationKind = "review"
)

// Notification is an append-only in-app notification record. Push delivery
// is handled downstream by consumers of the NATS events.
type Notification struct {
	ID        uuid.UUID        `json:"id" db:"id"`
	UserID    uuid.UUID        `json:"user_id" db:"user_id"`
	TripID    *uuid.UUID       `json:"trip_id,omitempty" db:"trip_id"`
	Kind      NotificationKind `json:"kind" db:"kind"`
	Title     string           `json:"title" db:"title"`
	Body      string           `json:"body" db:"body"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
