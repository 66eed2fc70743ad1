package create_service

import (
	catalogModels "github.com/sbp-team/booking-platform/internal/service/catalog/models"
)

// CreateServiceResponse HTTP response model
type CreateServiceResponse struct {
	Message string                         `json:"message"`
	Service *catalogModels.ServiceResponse `json:"service"`
}
