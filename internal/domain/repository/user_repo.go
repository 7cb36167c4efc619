package repository

import (
	"github.com/yourusername/trivia-site/internal/domain/entity"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Create создает нового пользователя
	Create(user *entity.User) error

	// GetByID возвращает пользователя по ID
	GetByID(id uint) (*entity.User, error)

	// GetByEmail возвращает пользователя по email
	GetByEmail(email string) (*entity.User, error)
}
