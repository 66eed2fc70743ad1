package models

import (
	"time"

	"github.com/sbp-team/booking-platform/internal/domain"
	authModels "github.com/sbp-team/booking-platform/internal/service/auth/models"
	catalogModels "github.com/sbp-team/booking-platform/internal/service/catalog/models"
)

// Request модели

// UpdateBookingRequest запрос на частичное обновление бронирования
// Отсутствующее поле сохраняет прежнее значение, присутствующее валидируется
type UpdateBookingRequest struct {
	BookingDate *string `json:"booking_date"`
	Status      *string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования и присоединенной услугой
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	ServiceID   int64  `json:"service_id"`
	BookingDate string `json:"booking_date"` // "2025-10-15"
	Status      string `json:"status"`

	Service *catalogModels.ServiceResponse `json:"service,omitempty"`
	User    *authModels.UserResponse       `json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
// Присоединенные услуга и пользователь попадают в ответ, только если были загружены
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		Status:      string(b.Status),
		Service:     catalogModels.FromDomainService(b.Service),
		User:        authModels.FromDomainUser(b.User),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
