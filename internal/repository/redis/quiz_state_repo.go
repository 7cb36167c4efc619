package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yourusername/trivia-site/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-site/internal/pkg/errors"
)

// Ключ состояния викторины одного пользователя
const quizStateKeyPrefix = "quiz:session:"

// QuizStateRepo реализует repository.QuizStateRepository поверх Redis.
// Батч хранится как JSON с TTL, так что брошенные викторины
// исчезают сами вместе с истечением сессии.
type QuizStateRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
	ctx    context.Context
}

// NewQuizStateRepo создает новый репозиторий состояния викторин и возвращает ошибку при проблемах
func NewQuizStateRepo(client redis.UniversalClient, ttl time.Duration) (*QuizStateRepo, error) {
	if client == nil {
		return nil, fmt.Errorf("Redis client cannot be nil for QuizStateRepo")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &QuizStateRepo{
		client: client,
		ttl:    ttl,
		ctx:    context.Background(),
	}, nil
}

func quizStateKey(userID uint) string {
	return fmt.Sprintf("%s%d", quizStateKeyPrefix, userID)
}

// Save сохраняет батч вопросов пользователя, перезаписывая предыдущий
func (r *QuizStateRepo) Save(userID uint, questions []entity.QuizQuestion) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, quizStateKey(userID), data, r.ttl).Err()
}

// Get возвращает сохраненный батч; ErrNotFound, если состояния нет
func (r *QuizStateRepo) Get(userID uint) ([]entity.QuizQuestion, error) {
	data, err := r.client.Get(r.ctx, quizStateKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	var questions []entity.QuizQuestion
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// Delete удаляет состояние викторины пользователя
func (r *QuizStateRepo) Delete(userID uint) error {
	return r.client.Del(r.ctx, quizStateKey(userID)).Err()
}
