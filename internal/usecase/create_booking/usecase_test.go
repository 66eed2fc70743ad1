package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbp-team/booking-platform/internal/domain"
	serviceRepo "github.com/sbp-team/booking-platform/internal/infra/storage/service"
	"github.com/sbp-team/booking-platform/internal/validation"
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

// passthroughTxManager выполняет функцию без реальной транзакции
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetActiveByID(_ context.Context, id int64) (*domain.Service, error) {
	service, ok := f.services[id]
	if !ok || !service.Status {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return service, nil
}

type fakeBookingRepo struct {
	created []*domain.Booking
	nextID  int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	created := *booking
	created.ID = f.nextID
	f.created = append(f.created, &created)
	return &created, nil
}

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase() (*UseCase, *fakeBookingRepo, *fakeServiceRepo, *passthroughTxManager) {
	bookings := &fakeBookingRepo{}
	services := &fakeServiceRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Plumbing", Description: "Fix leaks", Price: 50.00, Status: true},
		2: {ID: 2, Name: "Hidden", Description: "Not for sale", Price: 10.00, Status: false},
	}}
	txMgr := &passthroughTxManager{}

	uc := NewUseCase(bookings, services, txMgr, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc, bookings, services, txMgr
}

// --- Execute ---

func TestExecute_Success(t *testing.T) {
	uc, bookings, _, txMgr := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:      7,
		ServiceID:   1,
		BookingDate: "2025-06-20",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, int64(1), resp.ServiceID)
	assert.Equal(t, "2025-06-20", resp.BookingDate)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Услуга присоединена к ответу
	require.NotNil(t, resp.Service)
	assert.Equal(t, "Plumbing", resp.Service.Name)
	assert.Equal(t, 50.00, resp.Service.Price)

	require.Len(t, bookings.created, 1)
	assert.Equal(t, 1, txMgr.calls)
}

func TestExecute_MissingFields(t *testing.T) {
	uc, bookings, _, txMgr := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{UserID: 7})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["service_id"], "The service id field is required.")
	assert.Contains(t, verrs["booking_date"], "The booking date field is required.")

	// До хранилища дело не дошло
	assert.Empty(t, bookings.created)
	assert.Zero(t, txMgr.calls)
}

func TestExecute_UnknownService(t *testing.T) {
	uc, bookings, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		UserID:      7,
		ServiceID:   99,
		BookingDate: "2025-06-20",
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, bookings.created)
}

func TestExecute_InactiveServiceIndistinguishableFromMissing(t *testing.T) {
	uc, bookings, _, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		UserID:      7,
		ServiceID:   2,
		BookingDate: "2025-06-20",
	})

	// Неактивная услуга дает ту же ошибку, что и несуществующая
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Empty(t, bookings.created)
}

func TestExecute_UnknownServiceWinsOverBadDate(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	// Услуга резолвится до валидации даты: некорректная дата не
	// превращает NotFound в ошибку валидации
	_, err := uc.Execute(context.Background(), &Request{
		UserID:      7,
		ServiceID:   99,
		BookingDate: "not-a-date",
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_DateValidation(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		message string
	}{
		{
			name:    "malformed date",
			date:    "20/06/2025",
			message: "The booking date is not a valid date.",
		},
		{
			name:    "today",
			date:    "2025-06-15",
			message: "The booking date must be a date after today.",
		},
		{
			name:    "past date",
			date:    "2025-06-01",
			message: "The booking date must be a date after today.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, bookings, _, _ := newTestUseCase()

			_, err := uc.Execute(context.Background(), &Request{
				UserID:      7,
				ServiceID:   1,
				BookingDate: tt.date,
			})

			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs["booking_date"], tt.message)
			assert.Empty(t, bookings.created)
		})
	}
}

func TestExecute_TomorrowAllowed(t *testing.T) {
	uc, _, _, _ := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:      7,
		ServiceID:   1,
		BookingDate: "2025-06-16",
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-16", resp.BookingDate)
}
