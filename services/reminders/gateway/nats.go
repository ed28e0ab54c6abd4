package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/antarin-app/antarin/internal/pkg/constants"
	"github.com/antarin-app/antarin/internal/pkg/models"
	natspkg "github.com/antarin-app/antarin/internal/pkg/nats"
	"github.com/antarin-app/antarin/services/reminders"
)

// ReminderGW publishes reminder events to NATS
type ReminderGW struct {
	natsClient *natspkg.Client
}

// NewReminderGW creates a new reminder event gateway
func NewReminderGW(natsClient *natspkg.Client) reminders.ReminderGW {
	return &ReminderGW{
		natsClient: natsClient,
	}
}

// PublishTripReminder publishes a trip.reminder event
func (g *ReminderGW) PublishTripReminder(ctx context.Context, event models.ReminderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder: %w", err)
	}

	if err := g.natsClient.Publish(constants.SubjectTripReminder, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", constants.SubjectTripReminder, err)
	}

	return nil
}
