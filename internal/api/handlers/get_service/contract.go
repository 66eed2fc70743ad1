package get_service

import (
	"context"

	catalogModels "github.com/sbp-team/booking-platform/internal/service/catalog/models"
)

type CatalogService interface {
	Get(ctx context.Context, id int64) (*catalogModels.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
