package repository

import (
	"github.com/yourusername/trivia-site/internal/domain/entity"
)

// LeaderboardRow — строка публичного лидерборда: имя пользователя
// и его лучший результат по всем сдачам.
type LeaderboardRow struct {
	Name      string `json:"name"`
	BestScore int    `json:"best_score"`
}

// ResultRepository определяет методы для работы с результатами викторин
type ResultRepository interface {
	// Save добавляет одну неизменяемую запись результата
	Save(result *entity.Result) error

	// BestScore возвращает максимальный результат пользователя, 0 если записей нет
	BestScore(userID uint) (int, error)

	// GetByUser возвращает все результаты пользователя
	GetByUser(userID uint) ([]entity.Result, error)

	// Leaderboard возвращает по одной строке на пользователя с хотя бы одним
	// результатом, отсортированных по лучшему результату по убыванию
	Leaderboard() ([]LeaderboardRow, error)
}
