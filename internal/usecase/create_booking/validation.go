package create_booking

import (
	"time"

	"github.com/sbp-team/booking-platform/internal/domain"
	"github.com/sbp-team/booking-platform/internal/validation"
)

// Сообщения ошибок валидации в формате исходного API
const (
	msgServiceIDRequired = "The service id field is required."
	msgDateRequired      = "The booking date field is required."
	msgDateInvalid       = "The booking date is not a valid date."
	msgDateNotFuture     = "The booking date must be a date after today."
)

// validateRequest проверяет наличие обязательных полей запроса
func validateRequest(req *Request) error {
	errs := validation.Errors{}

	if req.ServiceID <= 0 {
		errs.Add("service_id", msgServiceIDRequired)
	}
	if req.BookingDate == "" {
		errs.Add("booking_date", msgDateRequired)
	}

	if errs.Any() {
		return errs
	}
	return nil
}

// validateDate разбирает дату и проверяет, что она строго позже сегодняшней
func validateDate(raw string, now time.Time) (time.Time, error) {
	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, validation.Errors{"booking_date": {msgDateInvalid}}
	}

	// Сравниваем по календарным дням: бронирование на сегодня уже недопустимо
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if !day.After(today) {
		return time.Time{}, validation.Errors{"booking_date": {msgDateNotFuture}}
	}

	return date, nil
}
