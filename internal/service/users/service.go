package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/cst-sportspot/booking-service/internal/domain"
	userRepo "github.com/cst-sportspot/booking-service/internal/infra/storage/user"
	"github.com/cst-sportspot/booking-service/internal/service/users/models"
)

const minPasswordLength = 6

// Service сервис для работы с пользователями и аутентификацией
type Service struct {
	userRepo UserRepository
	tokens   TokenManager
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, tokens TokenManager, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя и сразу выдает токен доступа.
// Пароль хранится только в виде bcrypt-хэша.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: registering user email=%s", req.Email)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Email:         strings.ToLower(req.Email),
		Name:          req.Name,
		Username:      req.Username,
		PasswordHash:  string(hash),
		StudentNumber: req.StudentNumber,
		Role:          domain.RoleStudent,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			s.logger.Warn("Register: user email=%s already exists", req.Email)
			return nil, ErrDuplicateUser
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	token, err := s.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.logger.Error("Register: failed to issue token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: user id=%d registered", user.ID)
	return &models.AuthResponse{Token: token, User: *models.FromDomainUser(user)}, nil
}

// Login проверяет учетные данные и выдает токен доступа.
// Неизвестный email и неверный пароль возвращают одну и ту же ошибку.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: login attempt email=%s", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.AuthResponse{Token: token, User: *models.FromDomainUser(user)}, nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.getUser(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}
	return models.FromDomainUser(user), nil
}

// GetDomainByID получает domain-модель пользователя.
// Используется middleware аутентификации для построения актора запроса.
func (s *Service) GetDomainByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getUser(ctx, id, "GetDomainByID")
}

// UpdateProfile обновляет профиль пользователя. Nil-поля не изменяются.
// Роль и email через профиль не меняются.
func (s *Service) UpdateProfile(ctx context.Context, id int64, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	s.logger.Info("UpdateProfile: updating profile for user id=%d", id)

	user, err := s.getUser(ctx, id, "UpdateProfile")
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		user.Name = *req.Name
	}
	if req.Username != nil {
		if *req.Username == "" {
			return nil, fmt.Errorf("%w: username must not be empty", ErrInvalidInput)
		}
		user.Username = *req.Username
	}
	if req.StudentNumber != nil {
		user.StudentNumber = req.StudentNumber
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		if errors.Is(err, userRepo.ErrDuplicateUser) {
			s.logger.Warn("UpdateProfile: username=%s already taken", user.Username)
			return nil, ErrDuplicateUser
		}
		s.logger.Error("UpdateProfile: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: profile updated for user id=%d", id)
	return models.FromDomainUser(user), nil
}

// List получает всех пользователей. Доступно только администратору.
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	s.logger.Info("List: fetching users")

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUserList(users), nil
}

// Вспомогательные методы

func (s *Service) getUser(ctx context.Context, id int64, method string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", method, id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return user, nil
}

func validateRegister(req *models.RegisterRequest) error {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Username == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return nil
}
