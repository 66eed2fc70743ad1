package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	"github.com/sbp-team/booking-platform/internal/domain"
)

const msgUnauthenticated = "Unauthenticated."

type userContextKey struct{}
type tokenContextKey struct{}

// TokenResolver резолвит предъявленный bearer-токен в пользователя
type TokenResolver interface {
	ResolveToken(ctx context.Context, tokenValue string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth middleware аутентификации по bearer-токену
// Резолвит токен на каждом запросе и кладет пользователя и сам токен в контекст
// Отсутствующий или невалидный токен дает 401
func Auth(resolver TokenResolver, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenValue, ok := extractBearerToken(r)
			if !ok {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthenticated)
				return
			}

			user, err := resolver.ResolveToken(r.Context(), tokenValue)
			if err != nil {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthenticated)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey{}, user)
			ctx = context.WithValue(ctx, tokenContextKey{}, tokenValue)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken извлекает токен из заголовка Authorization
func extractBearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return "", false
	}

	return token, true
}

// GetUser возвращает аутентифицированного пользователя из контекста
func GetUser(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*domain.User)
	return user, ok
}

// GetToken возвращает предъявленный токен из контекста
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	return token, ok
}
