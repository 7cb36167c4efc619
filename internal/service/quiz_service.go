package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/yourusername/trivia-site/internal/domain/entity"
	"github.com/yourusername/trivia-site/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-site/internal/pkg/errors"
)

// QuestionSource абстрагирует внешний API вопросов (реализация — trivia.Client)
type QuestionSource interface {
	FetchBatch(ctx context.Context) ([]entity.QuizQuestion, error)
}

// QuizService управляет жизненным циклом одной викторины:
// запуск (загрузка батча в состояние сессии) и оценка сдачи.
type QuizService struct {
	source    QuestionSource
	stateRepo repository.QuizStateRepository
}

// NewQuizService создает новый сервис викторин и возвращает ошибку при проблемах
func NewQuizService(source QuestionSource, stateRepo repository.QuizStateRepository) (*QuizService, error) {
	if source == nil {
		return nil, fmt.Errorf("QuestionSource is required for QuizService")
	}
	if stateRepo == nil {
		return nil, fmt.Errorf("QuizStateRepository is required for QuizService")
	}
	return &QuizService{source: source, stateRepo: stateRepo}, nil
}

// Start запрашивает свежий батч у источника и сохраняет его целиком
// (включая правильные ответы) в состоянии сессии пользователя.
// Повторный запуск перезаписывает несданный батч.
func (s *QuizService) Start(ctx context.Context, userID uint) ([]entity.QuizQuestion, error) {
	questions, err := s.source.FetchBatch(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.stateRepo.Save(userID, questions); err != nil {
		return nil, fmt.Errorf("failed to save quiz state: %w", err)
	}

	return questions, nil
}

// Grade оценивает сдачу по сохраненному батчу: за каждый вопрос, где
// присланный ответ точно совпал с правильным, начисляется одно очко.
// Отсутствующие ответы считаются неправильными; присланные строки не
// проверяются на принадлежность к вариантам. Возвращает счет и размер батча.
//
// Батч после оценки удаляется: повторная сдача без нового запуска
// возвращает ErrNoActiveQuiz.
func (s *QuizService) Grade(userID uint, answers map[string]string) (int, int, error) {
	questions, err := s.stateRepo.Get(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return 0, 0, apperrors.ErrNoActiveQuiz
		}
		return 0, 0, fmt.Errorf("failed to load quiz state: %w", err)
	}

	score := 0
	for i := range questions {
		if selected, ok := answers[questions[i].ID]; ok && questions[i].IsCorrect(selected) {
			score++
		}
	}

	// Состояние считается использованным. Ошибка очистки не меняет счет,
	// поэтому только логируется.
	if err := s.stateRepo.Delete(userID); err != nil {
		log.Printf("[QuizService] Не удалось очистить состояние викторины user_id=%d: %v", userID, err)
	}

	return score, len(questions), nil
}
