package get_current_user

import (
	"net/http"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	"github.com/sbp-team/booking-platform/internal/api/middleware"
	authModels "github.com/sbp-team/booking-platform/internal/service/auth/models"
)

const msgUnauthenticated = "Unauthenticated."

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/user
// Пользователь уже зарезолвлен middleware аутентификации, обращение
// к хранилищу не требуется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Warn("GET /user - Missing user in context")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CurrentUserResponse{
		User: authModels.FromDomainUser(user),
	})
}
