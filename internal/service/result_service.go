package service

import (
	"fmt"

	"github.com/yourusername/trivia-site/internal/domain/entity"
	"github.com/yourusername/trivia-site/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-site/internal/pkg/errors"
)

// ResultService отвечает за запись результатов и чтение лидерборда
type ResultService struct {
	resultRepo repository.ResultRepository
}

// NewResultService создает новый сервис результатов и возвращает ошибку при проблемах
func NewResultService(resultRepo repository.ResultRepository) (*ResultService, error) {
	if resultRepo == nil {
		return nil, fmt.Errorf("ResultRepository is required for ResultService")
	}
	return &ResultService{resultRepo: resultRepo}, nil
}

// Record добавляет одну неизменяемую запись результата.
// Параллельные сдачи не дедуплицируются: каждая дает свою строку.
func (s *ResultService) Record(userID uint, score int) error {
	if score < 0 {
		return fmt.Errorf("%w: score must be non-negative", apperrors.ErrValidation)
	}

	result := &entity.Result{
		UserID: userID,
		Score:  score,
	}

	if err := s.resultRepo.Save(result); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// BestScore возвращает лучший результат пользователя, 0 если сдач не было
func (s *ResultService) BestScore(userID uint) (int, error) {
	return s.resultRepo.BestScore(userID)
}

// Leaderboard возвращает публичный лидерборд: лучший результат каждого
// пользователя с хотя бы одной сдачей, по убыванию
func (s *ResultService) Leaderboard() ([]repository.LeaderboardRow, error) {
	return s.resultRepo.Leaderboard()
}
