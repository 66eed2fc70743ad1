package middleware

import (
	"net/http"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
)

const msgForbidden = "Forbidden."

// RequireAdmin единая ролевая проверка для административных маршрутов
// Выполняется после Auth: неаутентифицированный запрос получает 401 еще там,
// аутентифицированный без прав администратора получает 403 здесь
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				// Auth middleware не отработал: маршрут сконфигурирован неверно
				logger.Error("%s %s - RequireAdmin without authenticated user", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthenticated)
				return
			}

			if !user.IsAdmin() {
				logger.Warn("%s %s - Access denied for user id=%d role=%s",
					r.Method, r.URL.Path, user.ID, user.Role)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
