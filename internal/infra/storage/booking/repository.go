package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sbp-team/booking-platform/internal/domain"
	"github.com/sbp-team/booking-platform/pkg/dbmetrics"
	"github.com/sbp-team/booking-platform/pkg/psqlbuilder"
)

// Колонки бронирования вместе с присоединенной услугой
var bookingWithServiceColumns = []string{
	"b.id",
	"b.user_id",
	"b.service_id",
	"b.booking_date",
	"b.status",
	"b.created_at",
	"b.updated_at",
	"s.id",
	"s.name",
	"s.description",
	"s.price",
	"s.status",
	"s.created_at",
	"s.updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"service_id",
			"booking_date",
			"status",
		).
		Values(
			booking.UserID,
			booking.ServiceID,
			booking.BookingDate,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByIDForUser получает бронирование по ID, принадлежащее пользователю,
// вместе с присоединенной услугой
// Проверка владения вшита в выборку: чужое бронирование неотличимо
// от несуществующего, оба дают ErrBookingNotFound
func (r *Repository) GetByIDForUser(ctx context.Context, id int64, userID int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingWithServiceColumns...).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Where(squirrel.Eq{"b.id": id, "b.user_id": userID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDForUser - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBookingWithService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDForUser - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListByUser получает список бронирований пользователя с присоединенными услугами
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingWithServiceColumns...).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.booking_date DESC, b.id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := r.scanBookingWithService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// ListAll получает все бронирования с присоединенными пользователями и услугами
// Используется административной отчетностью
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append([]string{}, bookingWithServiceColumns...)
	columns = append(columns,
		"u.id",
		"u.name",
		"u.email",
		"u.role",
		"u.created_at",
		"u.updated_at",
	)

	query, args, err := psqlbuilder.Select(columns...).
		From("bookings b").
		Join("services s ON s.id = b.service_id").
		Join("users u ON u.id = b.user_id").
		OrderBy("b.booking_date DESC, b.id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		var booking domain.Booking
		var service domain.Service
		var user domain.User
		var bCreatedAt, bUpdatedAt sql.NullTime
		var sCreatedAt, sUpdatedAt sql.NullTime
		var uCreatedAt, uUpdatedAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ServiceID,
			&booking.BookingDate,
			&booking.Status,
			&bCreatedAt,
			&bUpdatedAt,
			&service.ID,
			&service.Name,
			&service.Description,
			&service.Price,
			&service.Status,
			&sCreatedAt,
			&sUpdatedAt,
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Role,
			&uCreatedAt,
			&uUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAll - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = bCreatedAt.Time
		booking.UpdatedAt = bUpdatedAt.Time
		service.CreatedAt = sCreatedAt.Time
		service.UpdatedAt = sUpdatedAt.Time
		user.CreatedAt = uCreatedAt.Time
		user.UpdatedAt = uUpdatedAt.Time

		booking.Service = &service
		booking.User = &user

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAll - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// Update частично обновляет бронирование пользователя
// Обновление обусловлено владением: чужая строка дает ErrBookingNotFound
func (r *Repository) Update(ctx context.Context, id int64, userID int64, update domain.BookingUpdate) error {
	if update.IsEmpty() {
		// Обновлять нечего, но владение все равно нужно проверить
		if _, err := r.GetByIDForUser(ctx, id, userID); err != nil {
			return err
		}
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "user_id": userID})

	if update.BookingDate != nil {
		updateBuilder = updateBuilder.Set("booking_date", *update.BookingDate)
	}
	if update.Status != nil {
		updateBuilder = updateBuilder.Set("status", *update.Status)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование пользователя (физическое удаление)
// Повторное удаление дает ErrBookingNotFound, а не тихий успех
func (r *Repository) Delete(ctx context.Context, id int64, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanBookingWithService сканирует строку бронирования с присоединенной услугой
func (r *Repository) scanBookingWithService(row scanner) (*domain.Booking, error) {
	var booking domain.Booking
	var service domain.Service
	var bCreatedAt, bUpdatedAt sql.NullTime
	var sCreatedAt, sUpdatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ServiceID,
		&booking.BookingDate,
		&booking.Status,
		&bCreatedAt,
		&bUpdatedAt,
		&service.ID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.Status,
		&sCreatedAt,
		&sUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = bCreatedAt.Time
	booking.UpdatedAt = bUpdatedAt.Time
	service.CreatedAt = sCreatedAt.Time
	service.UpdatedAt = sUpdatedAt.Time
	booking.Service = &service

	return &booking, nil
}
