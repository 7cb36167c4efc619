package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-site/internal/domain/entity"
	"github.com/yourusername/trivia-site/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-site/internal/pkg/errors"
)

// ============================================================================
// Моки для ResultService
// ============================================================================

// MockResultRepo реализует repository.ResultRepository
type MockResultRepo struct {
	mock.Mock
}

func (m *MockResultRepo) Save(result *entity.Result) error {
	args := m.Called(result)
	return args.Error(0)
}

func (m *MockResultRepo) BestScore(userID uint) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockResultRepo) GetByUser(userID uint) ([]entity.Result, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Result), args.Error(1)
}

func (m *MockResultRepo) Leaderboard() ([]repository.LeaderboardRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LeaderboardRow), args.Error(1)
}

// ============================================================================
// Тесты для ResultService
// ============================================================================

func TestResultService_Record_Success(t *testing.T) {
	// Arrange
	mockRepo := new(MockResultRepo)
	mockRepo.On("Save", mock.MatchedBy(func(r *entity.Result) bool {
		return r.UserID == 3 && r.Score == 15
	})).Return(nil)

	resultService, err := NewResultService(mockRepo)
	require.NoError(t, err)

	// Act
	err = resultService.Record(3, 15)

	// Assert
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestResultService_Record_NegativeScore(t *testing.T) {
	// Arrange
	mockRepo := new(MockResultRepo)
	resultService, err := NewResultService(mockRepo)
	require.NoError(t, err)

	// Act
	err = resultService.Record(3, -1)

	// Assert
	assert.True(t, errors.Is(err, apperrors.ErrValidation), "Отрицательный счет недопустим")
	mockRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestResultService_BestScore_ZeroWithoutResults(t *testing.T) {
	// Arrange: у пользователя нет ни одной сдачи
	mockRepo := new(MockResultRepo)
	mockRepo.On("BestScore", uint(9)).Return(0, nil)

	resultService, err := NewResultService(mockRepo)
	require.NoError(t, err)

	// Act
	best, err := resultService.BestScore(9)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 0, best, "Без результатов лучший счет равен 0")
}

func TestResultService_Leaderboard_Passthrough(t *testing.T) {
	// Arrange
	mockRepo := new(MockResultRepo)
	expected := []repository.LeaderboardRow{
		{Name: "alice", BestScore: 18},
		{Name: "bob", BestScore: 12},
	}
	mockRepo.On("Leaderboard").Return(expected, nil)

	resultService, err := NewResultService(mockRepo)
	require.NoError(t, err)

	// Act
	rows, err := resultService.Leaderboard()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, expected, rows)
}
