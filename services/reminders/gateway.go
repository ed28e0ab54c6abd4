package reminders

import (
	"context"

	"github.com/antarin-app/antarin/internal/pkg/models"
)

// ReminderGW defines the interface for reminder event publishing
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/antarin-app/antarin/services/reminders ReminderGW
type ReminderGW interface {
	PublishTripReminder(ctx context.Context, event models.ReminderEvent) error
}
