package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sbp-team/booking-platform/internal/domain"
	bookingRepo "github.com/sbp-team/booking-platform/internal/infra/storage/booking"
	"github.com/sbp-team/booking-platform/internal/service/bookings/models"
	"github.com/sbp-team/booking-platform/internal/validation"
)

// Сообщения ошибок валидации в формате исходного API
const (
	msgDateInvalid   = "The booking date is not a valid date."
	msgDateNotFuture = "The booking date must be a date after today."
	msgStatusInvalid = "The selected status is invalid."
)

// Service сервис для работы с бронированиями
// Создание вынесено в отдельный use case, здесь чтение, обновление и отмена
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// GetForUser получает бронирование по ID для его владельца
// Чужое бронирование неотличимо от несуществующего: оба дают ErrBookingNotFound
func (s *Service) GetForUser(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetForUser: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetForUser: booking id=%d not found for user=%d", id, userID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetForUser: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetForUser - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListForUser получает бронирования пользователя с присоединенными услугами
func (s *Service) ListForUser(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListForUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListForUser - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForUser: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// ListAll получает все бронирования с пользователями и услугами
// Ролевая проверка выполняется на уровне маршрутизации (RequireAdmin)
func (s *Service) ListAll(ctx context.Context) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Update частично обновляет бронирование его владельца
// Дата (если передана) должна быть строго в будущем, статус (если передан)
// любым из допустимого набора: переходы между статусами не ограничены
func (s *Service) Update(ctx context.Context, id int64, userID int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d for user=%d", id, userID)

	update, err := s.validateUpdate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for booking id=%d: %v", id, err)
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, id, userID, update); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found for user=%d", id, userID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	// Перечитываем строку вместе с услугой для ответа
	booking, err := s.bookingRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		s.logger.Error("Update: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("Update: booking id=%d updated", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel удаляет бронирование его владельца (физическое удаление)
// Повторная отмена дает ErrBookingNotFound, а не тихий успех
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d for user=%d", id, userID)

	if err := s.bookingRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found for user=%d", id, userID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", id)
	return nil
}

// validateUpdate валидирует переданные поля и собирает domain модель обновления
func (s *Service) validateUpdate(req *models.UpdateBookingRequest) (domain.BookingUpdate, error) {
	var update domain.BookingUpdate
	errs := validation.Errors{}

	if req.BookingDate != nil {
		date, err := time.Parse(domain.DateFormat, *req.BookingDate)
		switch {
		case err != nil:
			errs.Add("booking_date", msgDateInvalid)
		case !isAfterToday(date, s.timeProvider.Now()):
			errs.Add("booking_date", msgDateNotFuture)
		default:
			update.BookingDate = &date
		}
	}

	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		if !domain.IsValidBookingStatus(status) {
			errs.Add("status", msgStatusInvalid)
		} else {
			update.Status = &status
		}
	}

	if errs.Any() {
		return domain.BookingUpdate{}, errs
	}
	return update, nil
}

// isAfterToday проверяет, что дата строго позже сегодняшней (по дням, не по часам)
func isAfterToday(date time.Time, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return day.After(today)
}
