package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbp-team/booking-platform/internal/domain"
	tokenRepo "github.com/sbp-team/booking-platform/internal/infra/storage/token"
	userRepo "github.com/sbp-team/booking-platform/internal/infra/storage/user"
	"github.com/sbp-team/booking-platform/internal/service/auth/models"
	"github.com/sbp-team/booking-platform/internal/validation"
)

// Сообщения ошибок валидации в формате исходного API
const (
	msgNameRequired       = "The name field is required."
	msgEmailRequired      = "The email field is required."
	msgEmailInvalid       = "The email must be a valid email address."
	msgEmailTaken         = "The email has already been taken."
	msgPasswordRequired   = "The password field is required."
	msgPasswordTooShort   = "The password must be at least 8 characters."
	msgPasswordMismatch   = "The password confirmation does not match."
	msgInvalidCredentials = "The provided credentials are incorrect."
)

// Service сервис аутентификации и управления сессиями
type Service struct {
	userRepo   UserRepository
	tokenRepo  TokenRepository
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
// bcryptCost = 0 означает bcrypt.DefaultCost
func NewService(userRepo UserRepository, tokenRepo TokenRepository, bcryptCost int, logger Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register регистрирует нового пользователя
// Роль всегда customer: привилегии при саморегистрации не выдаются
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: registering user email=%s", req.Email)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already taken", req.Email)
			return nil, validation.Errors{"email": {msgEmailTaken}}
		}
		s.logger.Error("Register: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.issueToken(ctx, created.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Register: user id=%d registered successfully", created.ID)
	return &models.AuthResponse{
		User:  models.FromDomainUser(created),
		Token: token,
	}, nil
}

// Login проверяет учетные данные и выдает новый токен сессии
// Несуществующий email и неверный пароль дают одинаковую ошибку валидации,
// чтобы не раскрывать существование аккаунта
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: attempt for email=%s", req.Email)

	if err := validateLogin(req); err != nil {
		s.logger.Warn("Login: validation failed for email=%s: %v", req.Email, err)
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, validation.Errors{"email": {msgInvalidCredentials}}
		}
		s.logger.Error("Login: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", req.Email)
		return nil, validation.Errors{"email": {msgInvalidCredentials}}
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.AuthResponse{
		User:  models.FromDomainUser(user),
		Token: token,
	}, nil
}

// Logout отзывает предъявленный токен
// Остальные сессии пользователя остаются активны
func (s *Service) Logout(ctx context.Context, tokenValue string) error {
	err := s.tokenRepo.Delete(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			// Токен уже отозван: повторный logout не ошибка
			s.logger.Warn("Logout: token already revoked")
			return nil
		}
		s.logger.Error("Logout: repository error: %v", err)
		return fmt.Errorf("%w: Logout - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: token revoked")
	return nil
}

// ResolveToken резолвит предъявленный токен в пользователя
// Вызывается middleware аутентификации на каждом защищенном запросе
func (s *Service) ResolveToken(ctx context.Context, tokenValue string) (*domain.User, error) {
	user, err := s.tokenRepo.GetUserByToken(ctx, tokenValue)
	if err != nil {
		if errors.Is(err, tokenRepo.ErrTokenNotFound) {
			return nil, ErrInvalidToken
		}
		s.logger.Error("ResolveToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: ResolveToken - repository error: %v", ErrInternal, err)
	}

	return user, nil
}

// issueToken генерирует и сохраняет новый непрозрачный токен сессии
func (s *Service) issueToken(ctx context.Context, userID int64) (string, error) {
	value := uuid.NewString()

	if _, err := s.tokenRepo.Create(ctx, &domain.AccessToken{
		Token:  value,
		UserID: userID,
	}); err != nil {
		s.logger.Error("issueToken: failed to store token for user id=%d: %v", userID, err)
		return "", fmt.Errorf("%w: issueToken - store token: %v", ErrInternal, err)
	}

	return value, nil
}

// validateRegister валидирует запрос регистрации
func validateRegister(req *models.RegisterRequest) error {
	errs := validation.Errors{}

	if req.Name == "" {
		errs.Add("name", msgNameRequired)
	}

	switch {
	case req.Email == "":
		errs.Add("email", msgEmailRequired)
	case !validation.IsValidEmail(req.Email):
		errs.Add("email", msgEmailInvalid)
	}

	switch {
	case req.Password == "":
		errs.Add("password", msgPasswordRequired)
	case len(req.Password) < domain.MinPasswordLength:
		errs.Add("password", msgPasswordTooShort)
	}
	if req.Password != req.PasswordConfirmation {
		errs.Add("password", msgPasswordMismatch)
	}

	if errs.Any() {
		return errs
	}
	return nil
}

// validateLogin валидирует запрос входа
func validateLogin(req *models.LoginRequest) error {
	errs := validation.Errors{}

	if req.Email == "" {
		errs.Add("email", msgEmailRequired)
	}
	if req.Password == "" {
		errs.Add("password", msgPasswordRequired)
	}

	if errs.Any() {
		return errs
	}
	return nil
}
