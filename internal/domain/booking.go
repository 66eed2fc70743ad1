package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// ValidStatuses допустимые значения статуса бронирования
// Переходы между статусами не ограничены: любой статус можно сменить
// на любой другой из этого набора
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// IsValidBookingStatus returns true if the value is one of the enumerated statuses
func IsValidBookingStatus(s BookingStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Booking represents a reservation of one service by one user on one date
type Booking struct {
	ID          int64
	UserID      int64
	ServiceID   int64
	BookingDate time.Time
	Status      BookingStatus

	// Joined data (read side only, never written through this struct)
	Service *Service
	User    *User

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingUpdate частичное обновление бронирования
// nil-поле означает "оставить прежнее значение"
type BookingUpdate struct {
	BookingDate *time.Time
	Status      *BookingStatus
}

// IsEmpty returns true if the update changes nothing
func (u *BookingUpdate) IsEmpty() bool {
	return u.BookingDate == nil && u.Status == nil
}
