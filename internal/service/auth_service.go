package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/trivia-site/internal/domain/entity"
	"github.com/yourusername/trivia-site/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-site/internal/pkg/errors"
)

// AuthService предоставляет методы для регистрации и входа пользователей
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService создает новый сервис аутентификации и возвращает ошибку при проблемах
func NewAuthService(userRepo repository.UserRepository) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("UserRepository is required for AuthService")
	}
	return &AuthService{userRepo: userRepo}, nil
}

// Register регистрирует нового пользователя.
// Пароль хешируется в хуке entity.User.BeforeSave при сохранении.
func (s *AuthService) Register(email, password, name string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)

	if email == "" || password == "" || name == "" {
		return nil, fmt.Errorf("%w: email, password and name are required", apperrors.ErrValidation)
	}

	// Проверяем, существует ли пользователь с таким email
	_, err := s.userRepo.GetByEmail(email)
	if err == nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrEmailTaken, email)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}

	user := &entity.User{
		Email:    email,
		Password: password,
		Name:     name,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login проверяет учетные данные и возвращает пользователя.
// ErrUnknownEmail и ErrInvalidPassword различаются сознательно:
// страница входа показывает пользователю, что именно не так.
func (s *AuthService) Login(email, password string) (*entity.User, error) {
	user, err := s.userRepo.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnknownEmail
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.CheckPassword(password) {
		return nil, apperrors.ErrInvalidPassword
	}

	return user, nil
}

// GetUser возвращает пользователя по ID (для отображения профиля)
func (s *AuthService) GetUser(id uint) (*entity.User, error) {
	return s.userRepo.GetByID(id)
}
