package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/antarin-app/antarin/internal/pkg/logger"
	"github.com/antarin-app/antarin/internal/utils"
)

// RunSweep handles POST /internal/reminders/run. It lets the scheduler (or
// an operator) trigger a sweep outside the ticker cadence.
func (h *ReminderHandler) RunSweep(c echo.Context) error {
	result, err := h.reminderUC.CheckUpcomingTrips(c.Request().Context())
	if err != nil {
		logger.Error("reminder sweep failed", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sweep complete", result)
}
