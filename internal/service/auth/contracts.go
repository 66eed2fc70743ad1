package auth

import (
	"context"

	"github.com/sbp-team/booking-platform/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenRepository интерфейс репозитория токенов сессий
type TokenRepository interface {
	Create(ctx context.Context, token *domain.AccessToken) (*domain.AccessToken, error)
	GetUserByToken(ctx context.Context, tokenValue string) (*domain.User, error)
	Delete(ctx context.Context, tokenValue string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
