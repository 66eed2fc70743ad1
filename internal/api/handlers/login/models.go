package login

import (
	authModels "github.com/sbp-team/booking-platform/internal/service/auth/models"
)

// LoginResponse HTTP response model
type LoginResponse struct {
	Message string                   `json:"message"`
	User    *authModels.UserResponse `json:"user"`
	Token   string                   `json:"token"`
}
