package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbp-team/booking-platform/internal/domain"
	bookingRepo "github.com/sbp-team/booking-platform/internal/infra/storage/booking"
	"github.com/sbp-team/booking-platform/internal/service/bookings/models"
	"github.com/sbp-team/booking-platform/internal/validation"
	"github.com/sbp-team/booking-platform/pkg/ptr"
)

// --- Фейки ---

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	nextID   int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*domain.Booking), nextID: 1}
}

func (f *fakeBookingRepo) add(userID int64, date time.Time, status domain.BookingStatus) *domain.Booking {
	booking := &domain.Booking{
		ID:          f.nextID,
		UserID:      userID,
		ServiceID:   1,
		BookingDate: date,
		Status:      status,
	}
	f.nextID++
	f.bookings[booking.ID] = booking
	return booking
}

func (f *fakeBookingRepo) GetByIDForUser(_ context.Context, id int64, userID int64) (*domain.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok || booking.UserID != userID {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			result = append(result, booking)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) ListAll(_ context.Context) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, booking := range f.bookings {
		result = append(result, booking)
	}
	return result, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, id int64, userID int64, update domain.BookingUpdate) error {
	booking, ok := f.bookings[id]
	if !ok || booking.UserID != userID {
		return bookingRepo.ErrBookingNotFound
	}

	if update.BookingDate != nil {
		booking.BookingDate = *update.BookingDate
	}
	if update.Status != nil {
		booking.Status = *update.Status
	}
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64, userID int64) error {
	booking, ok := f.bookings[id]
	if !ok || booking.UserID != userID {
		return bookingRepo.ErrBookingNotFound
	}
	delete(f.bookings, id)
	return nil
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestService() (*Service, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: testNow}
	return svc, repo
}

// --- GetForUser ---

func TestGetForUser_OwnBooking(t *testing.T) {
	svc, repo := newTestService()
	booking := repo.add(1, testNow.AddDate(0, 0, 5), domain.StatusPending)

	resp, err := svc.GetForUser(context.Background(), booking.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "2025-06-20", resp.BookingDate)
}

func TestGetForUser_ForeignBookingIndistinguishableFromMissing(t *testing.T) {
	svc, repo := newTestService()
	booking := repo.add(1, testNow.AddDate(0, 0, 5), domain.StatusPending)

	// Чужое бронирование
	_, err := svc.GetForUser(context.Background(), booking.ID, 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Несуществующее бронирование
	_, err = svc.GetForUser(context.Background(), 999, 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// --- ListForUser / ListAll ---

func TestListForUser_OnlyOwn(t *testing.T) {
	svc, repo := newTestService()
	repo.add(1, testNow.AddDate(0, 0, 1), domain.StatusPending)
	repo.add(1, testNow.AddDate(0, 0, 2), domain.StatusConfirmed)
	repo.add(2, testNow.AddDate(0, 0, 3), domain.StatusPending)

	resp, err := svc.ListForUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
	for _, booking := range resp.Bookings {
		assert.Equal(t, int64(1), booking.UserID)
	}
}

func TestListForUser_Empty(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.ListForUser(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

func TestListAll_AllUsers(t *testing.T) {
	svc, repo := newTestService()
	repo.add(1, testNow.AddDate(0, 0, 1), domain.StatusPending)
	repo.add(2, testNow.AddDate(0, 0, 2), domain.StatusCompleted)

	resp, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
}

// --- Update ---

func TestUpdate_DateAndStatus(t *testing.T) {
	svc, repo := newTestService()
	booking := repo.add(1, testNow.AddDate(0, 0, 5), domain.StatusPending)

	resp, err := svc.Update(context.Background(), booking.ID, 1, &models.UpdateBookingRequest{
		BookingDate: ptr.Ptr("2025-07-01"),
		Status:      ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-07-01", resp.BookingDate)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestUpdate_StatusOnly(t *testing.T) {
	svc, repo := newTestService()
	booking := repo.add(1, testNow.AddDate(0, 0, 5), domain.StatusConfirmed)

	resp, err := svc.Update(context.Background(), booking.ID, 1, &models.UpdateBookingRequest{
		Status: ptr.Ptr("cancelled"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	// Дата не передана и не изменилась
	assert.Equal(t, "2025-06-20", resp.BookingDate)
}

func TestUpdate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.UpdateBookingRequest
		field   string
		message string
	}{
		{
			name:    "malformed date",
			req:     &models.UpdateBookingRequest{BookingDate: ptr.Ptr("15-06-2025")},
			field:   "booking_date",
			message: "The booking date is not a valid date.",
		},
		{
			name:    "today is not after today",
			req:     &models.UpdateBookingRequest{BookingDate: ptr.Ptr("2025-06-15")},
			field:   "booking_date",
			message: "The booking date must be a date after today.",
		},
		{
			name:    "past date",
			req:     &models.UpdateBookingRequest{BookingDate: ptr.Ptr("2025-01-01")},
			field:   "booking_date",
			message: "The booking date must be a date after today.",
		},
		{
			name:    "unknown status",
			req:     &models.UpdateBookingRequest{Status: ptr.Ptr("rescheduled")},
			field:   "status",
			message: "The selected status is invalid.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService()
			booking := repo.add(1, testNow.AddDate(0, 0, 5), domain.StatusPending)

			_, err := svc.Update(context.Background(), booking.ID, 1, tt.req)

			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs[tt.field], tt.message)
		})
	}
}

func TestUpdate_ForeignBooking(t *testing.T) {
	svc, repo := newTestService()
	booking := repo.add(1, testNow.AddDate(0, 0, 5), domain.StatusPending)

	_, err := svc.Update(context.Background(), booking.ID, 2, &models.UpdateBookingRequest{
		Status: ptr.Ptr("confirmed"),
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

// --- Cancel ---

func TestCancel(t *testing.T) {
	svc, repo := newTestService()
	booking := repo.add(1, testNow.AddDate(0, 0, 5), domain.StatusPending)

	require.NoError(t, svc.Cancel(context.Background(), booking.ID, 1))

	// Повторная отмена дает NotFound
	assert.ErrorIs(t, svc.Cancel(context.Background(), booking.ID, 1), ErrBookingNotFound)
}

func TestCancel_ForeignBooking(t *testing.T) {
	svc, repo := newTestService()
	booking := repo.add(1, testNow.AddDate(0, 0, 5), domain.StatusPending)

	assert.ErrorIs(t, svc.Cancel(context.Background(), booking.ID, 2), ErrBookingNotFound)

	// Бронирование владельца не затронуто
	_, err := svc.GetForUser(context.Background(), booking.ID, 1)
	assert.NoError(t, err)
}
