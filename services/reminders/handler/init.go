package handler

import (
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/services/reminders"
)

// ReminderHandler handles HTTP requests for the reminder scheduler
type ReminderHandler struct {
	cfg        *models.Config
	reminderUC reminders.ReminderUC
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(cfg *models.Config, reminderUC reminders.ReminderUC) *ReminderHandler {
	return &ReminderHandler{
		cfg:        cfg,
		reminderUC: reminderUC,
	}
}
