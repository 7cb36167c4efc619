package postgres

import (
	"gorm.io/gorm"

	"github.com/yourusername/trivia-site/internal/domain/entity"
	"github.com/yourusername/trivia-site/internal/domain/repository"
)

// ResultRepo реализует repository.ResultRepository
type ResultRepo struct {
	db *gorm.DB
}

// NewResultRepo создает новый репозиторий результатов
func NewResultRepo(db *gorm.DB) *ResultRepo {
	return &ResultRepo{db: db}
}

// Save добавляет одну запись результата. Записи не обновляются и не удаляются.
func (r *ResultRepo) Save(result *entity.Result) error {
	return r.db.Create(result).Error
}

// BestScore возвращает максимальный результат пользователя, 0 если записей нет
func (r *ResultRepo) BestScore(userID uint) (int, error) {
	var best int
	err := r.db.Model(&entity.Result{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(score), 0)").
		Scan(&best).Error
	if err != nil {
		return 0, err
	}
	return best, nil
}

// GetByUser возвращает все результаты пользователя в порядке создания
func (r *ResultRepo) GetByUser(userID uint) ([]entity.Result, error) {
	var results []entity.Result
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&results).Error
	return results, err
}

// Leaderboard возвращает лучший результат каждого пользователя, у которого
// есть хотя бы одна запись, по убыванию. При равенстве очков порядок
// стабилен за счет сортировки по ID пользователя.
func (r *ResultRepo) Leaderboard() ([]repository.LeaderboardRow, error) {
	var rows []repository.LeaderboardRow
	err := r.db.Model(&entity.Result{}).
		Select("users.name AS name, MAX(results.score) AS best_score").
		Joins("JOIN users ON users.id = results.user_id").
		Group("users.id, users.name").
		Order("best_score DESC, users.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
