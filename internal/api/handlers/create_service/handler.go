package create_service

import (
	"errors"
	"net/http"

	"github.com/sbp-team/booking-platform/internal/api/handlers"
	catalogModels "github.com/sbp-team/booking-platform/internal/service/catalog/models"
	"github.com/sbp-team/booking-platform/internal/validation"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgCreated            = "Service created successfully"
)

// Сообщения для полей, пришедших с неверным JSON-типом
var fieldTypeMessages = map[string]string{
	"name":        "The name field must be a string.",
	"description": "The description field must be a string.",
	"price":       "Price must be a number.",
	"status":      "The status field must be true or false.",
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req catalogModels.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		if verrs, ok := handlers.TypeErrors(err, fieldTypeMessages); ok {
			h.logger.Warn("POST /services - Mistyped field: %v", err)
			handlers.RespondValidationErrors(w, verrs)
			return
		}

		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			h.logger.Warn("POST /services - Validation failed: name=%s", req.Name)
			handlers.RespondValidationErrors(w, verrs)
			return
		}

		h.logger.Error("POST /services - Failed to create service: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /services - Service created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, CreateServiceResponse{
		Message: msgCreated,
		Service: result,
	})
}
