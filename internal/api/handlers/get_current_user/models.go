package get_current_user

import (
	authModels "github.com/sbp-team/booking-platform/internal/service/auth/models"
)

// CurrentUserResponse HTTP response model
type CurrentUserResponse struct {
	User *authModels.UserResponse `json:"user"`
}
