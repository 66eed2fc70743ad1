package login

import (
	"errors"
	"net/http"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	authModels "github.com/sbp-team/booking-platform/internal/service/auth/models"
	"github.com/sbp-team/booking-platform/internal/validation"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgLoggedIn           = "Logged in successfully"
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

// Handle POST /api/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req authModels.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// Неверные учетные данные тоже приходят ошибкой валидации (422),
		// чтобы не раскрывать существование аккаунта
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			h.logger.Warn("POST /login - Login rejected for email=%s", req.Email)
			handlers.RespondValidationErrors(w, verrs)
			return
		}

		h.logger.Error("POST /login - Failed to log in: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /login - User logged in: id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Message: msgLoggedIn,
		User:    result.User,
		Token:   result.Token,
	})
}
