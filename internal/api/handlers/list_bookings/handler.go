package list_bookings

import (
	"net/http"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	"github.com/sbp-team/booking-platform/internal/api/middleware"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/bookings — бронирования текущего пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		h.logger.Error("GET /bookings - No authenticated user in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.ListForUser(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: user_id=%d, error=%v", user.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
