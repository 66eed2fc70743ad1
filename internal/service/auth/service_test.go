package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbp-team/booking-platform/internal/domain"
	tokenRepo "github.com/sbp-team/booking-platform/internal/infra/storage/token"
	userRepo "github.com/sbp-team/booking-platform/internal/infra/storage/user"
	"github.com/sbp-team/booking-platform/internal/service/auth/models"
	"github.com/sbp-team/booking-platform/internal/validation"
)

// --- Фейки ---

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUserRepo struct {
	users  map[string]*domain.User // по email
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := f.users[user.Email]; exists {
		return nil, userRepo.ErrEmailTaken
	}
	created := *user
	created.ID = f.nextID
	f.nextID++
	f.users[created.Email] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

type fakeTokenRepo struct {
	tokens map[string]int64 // токен -> user ID
	users  map[int64]*domain.User
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		tokens: make(map[string]int64),
		users:  make(map[int64]*domain.User),
	}
}

func (f *fakeTokenRepo) Create(_ context.Context, token *domain.AccessToken) (*domain.AccessToken, error) {
	f.tokens[token.Token] = token.UserID
	return token, nil
}

func (f *fakeTokenRepo) GetUserByToken(_ context.Context, tokenValue string) (*domain.User, error) {
	userID, ok := f.tokens[tokenValue]
	if !ok {
		return nil, tokenRepo.ErrTokenNotFound
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, tokenRepo.ErrTokenNotFound
	}
	return user, nil
}

func (f *fakeTokenRepo) Delete(_ context.Context, tokenValue string) error {
	if _, ok := f.tokens[tokenValue]; !ok {
		return tokenRepo.ErrTokenNotFound
	}
	delete(f.tokens, tokenValue)
	return nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeTokenRepo) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	// MinCost, чтобы тесты не тратили время на хеширование
	svc := NewService(users, tokens, bcrypt.MinCost, nopLogger{})
	return svc, users, tokens
}

func validRegisterRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:                 "John Doe",
		Email:                "john@example.com",
		Password:             "password123",
		PasswordConfirmation: "password123",
	}
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	svc, users, tokens := newTestService()

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, "John Doe", resp.User.Name)
	assert.Equal(t, "john@example.com", resp.User.Email)
	assert.Equal(t, string(domain.RoleCustomer), resp.User.Role)
	assert.NotEmpty(t, resp.Token)

	// Пароль сохранен хешем, не открытым текстом
	stored := users.users["john@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))

	// Токен сохранен и указывает на созданного пользователя
	assert.Equal(t, stored.ID, tokens.tokens[resp.Token])
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.RegisterRequest)
		field   string
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(r *models.RegisterRequest) { r.Name = "" },
			field:   "name",
			message: "The name field is required.",
		},
		{
			name:    "missing email",
			mutate:  func(r *models.RegisterRequest) { r.Email = "" },
			field:   "email",
			message: "The email field is required.",
		},
		{
			name:    "invalid email",
			mutate:  func(r *models.RegisterRequest) { r.Email = "not-an-email" },
			field:   "email",
			message: "The email must be a valid email address.",
		},
		{
			name: "missing password",
			mutate: func(r *models.RegisterRequest) {
				r.Password = ""
				r.PasswordConfirmation = ""
			},
			field:   "password",
			message: "The password field is required.",
		},
		{
			name: "short password",
			mutate: func(r *models.RegisterRequest) {
				r.Password = "short"
				r.PasswordConfirmation = "short"
			},
			field:   "password",
			message: "The password must be at least 8 characters.",
		},
		{
			name:    "password confirmation mismatch",
			mutate:  func(r *models.RegisterRequest) { r.PasswordConfirmation = "different123" },
			field:   "password",
			message: "The password confirmation does not match.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newTestService()

			req := validRegisterRequest()
			tt.mutate(req)

			_, err := svc.Register(context.Background(), req)

			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs[tt.field], tt.message)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterRequest())

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["email"], "The email has already been taken.")
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	svc, _, _ := newTestService()

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, registered.User.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
	// Каждый вход выдает новый токен, прежние сессии не затрагиваются
	assert.NotEqual(t, registered.Token, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "john@example.com",
		Password: "wrong-password",
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["email"], "The provided credentials are incorrect.")
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	// Несуществующий email дает ту же ошибку, что и неверный пароль
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["email"], "The provided credentials are incorrect.")
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Login(context.Background(), &models.LoginRequest{})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs["email"], "The email field is required.")
	assert.Contains(t, verrs["password"], "The password field is required.")
}

// --- Logout ---

func TestLogout_RevokesOnlyPresentedToken(t *testing.T) {
	svc, _, tokens := newTestService()

	first, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	second, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "john@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), first.Token))

	_, revoked := tokens.tokens[first.Token]
	_, alive := tokens.tokens[second.Token]
	assert.False(t, revoked)
	assert.True(t, alive)
}

func TestLogout_Idempotent(t *testing.T) {
	svc, _, _ := newTestService()

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.Token))
	// Повторный logout с уже отозванным токеном не ошибка
	require.NoError(t, svc.Logout(context.Background(), resp.Token))
}

// --- ResolveToken ---

func TestResolveToken(t *testing.T) {
	svc, users, tokens := newTestService()

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	tokens.users[resp.User.ID] = users.users["john@example.com"]

	user, err := svc.ResolveToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)

	_, err = svc.ResolveToken(context.Background(), "no-such-token")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
