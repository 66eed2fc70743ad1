package login

import (
	"context"

	authModels "github.com/sbp-team/booking-platform/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, req *authModels.LoginRequest) (*authModels.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
