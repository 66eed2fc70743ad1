package list_services

import (
	"context"

	catalogModels "github.com/sbp-team/booking-platform/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) (*catalogModels.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
