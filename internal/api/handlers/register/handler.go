package register

import (
	"errors"
	"net/http"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	authModels "github.com/sbp-team/booking-platform/internal/service/auth/models"
	"github.com/sbp-team/booking-platform/internal/validation"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgRegistered         = "User registered successfully"
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

// Handle POST /api/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req authModels.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			h.logger.Warn("POST /register - Validation failed for email=%s", req.Email)
			handlers.RespondValidationErrors(w, verrs)
			return
		}

		h.logger.Error("POST /register - Failed to register user: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /register - User registered: id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, RegisterResponse{
		Message: msgRegistered,
		User:    result.User,
		Token:   result.Token,
	})
}
