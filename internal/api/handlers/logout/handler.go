package logout

import (
	"net/http"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	"github.com/sbp-team/booking-platform/internal/api/middleware"
)

const (
	msgLoggedOut       = "Logged out successfully"
	msgUnauthenticated = "Unauthenticated."
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/logout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Отзывается ровно тот токен, которым запрос аутентифицирован
	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /logout - Missing token in context")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.logger.Error("POST /logout - Failed to revoke token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /logout - Token revoked")
	handlers.RespondJSON(w, http.StatusOK, LogoutResponse{Message: msgLoggedOut})
}
