package reminders

import "context"

// SweepResult summarizes one reminder sweep
type SweepResult struct {
	Processed         int `json:"processed"`
	NotificationsSent int `json:"notifications_sent"`
}

// ReminderUC defines the interface for the departure reminder scheduler
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/antarin-app/antarin/services/reminders ReminderUC
type ReminderUC interface {
	// CheckUpcomingTrips scans confirmed scheduled trips and emits at most
	// one reminder per (trip, threshold). Safe to run concurrently.
	CheckUpcomingTrips(ctx context.Context) (SweepResult, error)
}
