package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbp-team/booking-platform/internal/domain"
	serviceRepo "github.com/sbp-team/booking-platform/internal/infra/storage/service"
	"github.com/sbp-team/booking-platform/internal/service/bookings/models"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования:
// 1. Резолвит услугу среди активных (несуществующая и неактивная неразличимы - 404)
// 2. Валидирует дату: корректный формат, строго позже сегодняшней
// 3. Вставляет бронирование со статусом pending
// 4. Возвращает бронирование вместе с услугой
// Резолв услуги и вставка выполняются в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, service=%d, date=%s",
		req.UserID, req.ServiceID, req.BookingDate)

	// Базовая валидация наличия полей до любых обращений к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Услуга должна существовать и быть активной на момент создания;
		// после создания флаг не перепроверяется
		service, err := uc.serviceRepo.GetActiveByID(txCtx, req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: active service id=%d not found", req.ServiceID)
				return ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		// Дата проверяется после резолва услуги: несуществующая услуга
		// дает NotFound даже при некорректной дате
		date, err := validateDate(req.BookingDate, uc.timeProvider.Now())
		if err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		booking := &domain.Booking{
			UserID:      req.UserID,
			ServiceID:   req.ServiceID,
			BookingDate: date,
			Status:      domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		created.Service = service
		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return models.FromDomainBooking(result), nil
}
