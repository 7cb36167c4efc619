package repository

import (
	"github.com/yourusername/trivia-site/internal/domain/entity"
)

// QuizStateRepository хранит батч вопросов текущей викторины между
// запуском теста и его сдачей. Состояние привязано к пользователю
// и ограничено по времени жизни.
type QuizStateRepository interface {
	// Save сохраняет батч вопросов (включая правильные ответы) для пользователя
	Save(userID uint, questions []entity.QuizQuestion) error

	// Get возвращает сохраненный батч; ErrNotFound, если состояния нет
	Get(userID uint) ([]entity.QuizQuestion, error)

	// Delete удаляет состояние викторины пользователя
	Delete(userID uint) error
}
