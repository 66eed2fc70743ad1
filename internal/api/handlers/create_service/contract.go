package create_service

import (
	"context"

	catalogModels "github.com/sbp-team/booking-platform/internal/service/catalog/models"
)

type CatalogService interface {
	Create(ctx context.Context, req *catalogModels.CreateServiceRequest) (*catalogModels.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
