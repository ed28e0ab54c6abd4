package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antarin-app/antarin/internal/pkg/logger"
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/services/reminders"
)

// reminderThresholds are the minutes-before-departure marks, largest first
var reminderThresholds = []int64{30, 15, 5}

type reminderUC struct {
	cfg     *models.Config
	repo    reminders.ReminderRepo
	gateway reminders.ReminderGW
	now     func() time.Time
}

// NewReminderUC creates a new departure reminder scheduler
func NewReminderUC(cfg *models.Config, repo reminders.ReminderRepo, gateway reminders.ReminderGW) reminders.ReminderUC {
	return &reminderUC{
		cfg:     cfg,
		repo:    repo,
		gateway: gateway,
		now:     time.Now,
	}
}

// CheckUpcomingTrips scans confirmed scheduled trips departing within the
// largest threshold and emits due reminders. The per-threshold claim in the
// repository deduplicates across overlapping sweeps.
func (uc *reminderUC) CheckUpcomingTrips(ctx context.Context) (reminders.SweepResult, error) {
	now := uc.now()

	// One poll interval of slack past the largest threshold, so a trip
	// crossing the 30-minute mark between ticks is still picked up
	interval := time.Duration(uc.cfg.Reminder.IntervalMin) * time.Minute
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	horizon := time.Duration(reminderThresholds[0])*time.Minute + interval

	trips, err := uc.repo.ListUpcomingScheduledTrips(ctx, now, horizon)
	if err != nil {
		return reminders.SweepResult{}, err
	}

	result := reminders.SweepResult{Processed: len(trips)}
	for _, trip := range trips {
		if trip.Timing.DepartureAt == nil {
			continue
		}

		minutesUntil := trip.Timing.DepartureAt.Sub(now).Minutes()
		threshold, ok := dueThreshold(minutesUntil)
		if !ok {
			continue
		}

		claimed, err := uc.repo.ClaimReminder(ctx, trip.ID, threshold)
		if err != nil {
			logger.Error("failed to claim reminder",
				logger.String("trip_id", trip.ID.String()),
				logger.Int64("threshold", threshold),
				logger.Err(err))
			continue
		}
		if !claimed {
			continue
		}

		uc.emit(ctx, trip, threshold)
		result.NotificationsSent++
	}

	return result, nil
}

// dueThreshold picks the smallest threshold that has been crossed. A trip
// 29 minutes out is inside the 30-minute mark but not yet the 15-minute one.
func dueThreshold(minutesUntil float64) (int64, bool) {
	if minutesUntil <= 0 {
		return 0, false
	}

	due := int64(0)
	for _, t := range reminderThresholds {
		if minutesUntil <= float64(t) {
			due = t
		}
	}
	if due == 0 {
		return 0, false
	}
	return due, true
}

func (uc *reminderUC) emit(ctx context.Context, trip *models.Trip, threshold int64) {
	event := models.ReminderEvent{
		TripID:           trip.ID.String(),
		ClientID:         trip.ClientID.String(),
		ThresholdMinutes: int(threshold),
		DepartureAt:      *trip.Timing.DepartureAt,
		OccurredAt:       uc.now(),
	}
	if trip.PartnerID != nil {
		event.PartnerID = trip.PartnerID.String()
	}
	if err := uc.gateway.PublishTripReminder(ctx, event); err != nil {
		logger.Warn("failed to publish reminder",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	// Both sides of the trip get the reminder; the partner is always bound
	// once the trip is ACCEPTED
	uc.notify(ctx, trip.ClientID, trip.ID, fmt.Sprintf("Your trip departs in %d minutes", threshold))
	if trip.PartnerID != nil {
		uc.notify(ctx, *trip.PartnerID, trip.ID, fmt.Sprintf("Your pickup departs in %d minutes", threshold))
	}
}

func (uc *reminderUC) notify(ctx context.Context, userID, tripID uuid.UUID, body string) {
	err := uc.repo.CreateNotification(ctx, &models.Notification{
		UserID: userID,
		TripID: &tripID,
		Kind:   models.NotificationTripReminder,
		Title:  "Upcoming trip",
		Body:   body,
	})
	if err != nil {
		logger.Warn("failed to store reminder notification",
			logger.String("trip_id", tripID.String()),
			logger.String("user_id", userID.String()),
			logger.Err(err))
	}
}
