package postgres

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-site/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-site/internal/pkg/errors"
)

func TestUserRepo_CreateAndGetByEmail(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	user := &entity.User{Email: "a@x.com", Password: "plain-password", Name: "alice"}

	// Act
	err := repo.Create(user)
	require.NoError(t, err)
	got, err := repo.GetByEmail("a@x.com")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "alice", got.Name)
	// Хук BeforeSave отработал при вставке
	assert.NotEqual(t, "plain-password", got.Password, "Пароль должен храниться в виде bcrypt-хеша")
	assert.True(t, got.CheckPassword("plain-password"), "Хеш должен соответствовать исходному паролю")
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	// Arrange: email защищен уникальным индексом
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	require.NoError(t, repo.Create(&entity.User{Email: "a@x.com", Password: "pw", Name: "alice"}))

	// Act
	err := repo.Create(&entity.User{Email: "a@x.com", Password: "pw2", Name: "bob"})

	// Assert
	assert.Error(t, err, "Повторный email должен нарушать уникальный индекс")
}

func TestUserRepo_GetByID(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewUserRepo(db)
	user := &entity.User{Email: "a@x.com", Password: "pw", Name: "alice"}
	require.NoError(t, repo.Create(user))

	// Act
	got, err := repo.GetByID(user.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestUserRepo_GetByID_NotFound(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	// Act
	got, err := repo.GetByID(12345)

	// Assert
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "Отсутствующий пользователь должен давать ErrNotFound")
	assert.Nil(t, got)
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	// Arrange
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	// Act
	got, err := repo.GetByEmail("nobody@x.com")

	// Assert
	assert.True(t, errors.Is(err, apperrors.ErrNotFound), "Отсутствующий email должен давать ErrNotFound")
	assert.Nil(t, got)
}
