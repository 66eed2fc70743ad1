package register

import (
	authModels "github.com/sbp-team/booking-platform/internal/service/auth/models"
)

// RegisterResponse HTTP response model
type RegisterResponse struct {
	Message string                   `json:"message"`
	User    *authModels.UserResponse `json:"user"`
	Token   string                   `json:"token"`
}
