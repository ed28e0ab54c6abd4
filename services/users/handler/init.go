package handler

import (
	"github.com/antarin-app/antarin/internal/pkg/models"
	"github.com/antarin-app/antarin/services/users"
)

// UserHandler handles HTTP requests for onboarding and accounts
type UserHandler struct {
	cfg    *models.Config
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(cfg *models.Config, userUC users.UserUC) *UserHandler {
	return &UserHandler{
		cfg:    cfg,
		userUC: userUC,
	}
}
