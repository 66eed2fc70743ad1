package auth

import "errors"

var (
	// ErrInvalidToken возвращается, когда токен отсутствует, не найден или отозван
	ErrInvalidToken = errors.New("invalid or revoked token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
