package token

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sbp-team/booking-platform/internal/domain"
	"github.com/sbp-team/booking-platform/pkg/dbmetrics"
	"github.com/sbp-team/booking-platform/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с bearer-токенами сессий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория токенов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет выданный токен
func (r *Repository) Create(ctx context.Context, token *domain.AccessToken) (*domain.AccessToken, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("access_tokens").
		Columns(
			"token",
			"user_id",
		).
		Values(
			token.Token,
			token.UserID,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&token.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	token.CreatedAt = createdAt.Time

	return token, nil
}

// GetUserByToken резолвит предъявленный токен в пользователя
// Выполняется на каждом аутентифицированном запросе
func (r *Repository) GetUserByToken(ctx context.Context, tokenValue string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"u.id",
		"u.name",
		"u.email",
		"u.password_hash",
		"u.role",
		"u.created_at",
		"u.updated_at",
	).
		From("access_tokens t").
		Join("users u ON u.id = t.user_id").
		Where(squirrel.Eq{"t.token": tokenValue}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetUserByToken - build select query: %v", ErrBuildQuery, err)
	}

	var user domain.User
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserByToken - scan user: %v", ErrScanRow, err)
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return &user, nil
}

// Delete отзывает токен
// Отзывается только предъявленный токен, остальные сессии пользователя остаются активны
func (r *Repository) Delete(ctx context.Context, tokenValue string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("access_tokens").
		Where(squirrel.Eq{"token": tokenValue}).
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
		return ErrTokenNotFound
	}

	return nil
}
