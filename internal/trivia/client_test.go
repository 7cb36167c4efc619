package trivia

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yourusername/trivia-site/internal/pkg/errors"
)

const sampleBody = `{
	"response_code": 0,
	"results": [
		{
			"question": "What does &quot;HTTP&quot; stand for?",
			"correct_answer": "HyperText Transfer Protocol",
			"incorrect_answers": ["High Transfer Text Protocol", "Hyperlink Text Protocol", "Home Tool Transfer Protocol"]
		},
		{
			"question": "2 &plus; 2 = ?",
			"correct_answer": "4",
			"incorrect_answers": ["3", "5", "22"]
		}
	]
}`

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_FetchBatch_Success(t *testing.T) {
	// Arrange
	server := newTestServer(t, http.StatusOK, sampleBody)
	client := NewClient(server.URL, 5*time.Second)

	// Act
	questions, err := client.FetchBatch(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, questions, 2, "Батч должен содержать все вопросы источника")

	first := questions[0]
	assert.Equal(t, 1, first.Number, "Нумерация начинается с 1")
	assert.Equal(t, 2, questions[1].Number)
	assert.NotEmpty(t, first.ID, "Каждому вопросу присваивается непрозрачный ID")
	assert.NotEqual(t, questions[0].ID, questions[1].ID, "ID вопросов должны быть уникальны")

	// HTML-сущности декодированы
	assert.Equal(t, `What does "HTTP" stand for?`, first.Question)

	// Набор вариантов: неправильные + правильный, порядок не фиксирован
	assert.Len(t, first.Options, 4)
	assert.ElementsMatch(t, []string{
		"HyperText Transfer Protocol",
		"High Transfer Text Protocol",
		"Hyperlink Text Protocol",
		"Home Tool Transfer Protocol",
	}, first.Options)
	assert.Contains(t, first.Options, first.Answer, "Правильный ответ должен быть среди вариантов")
	assert.Equal(t, "HyperText Transfer Protocol", first.Answer)
}

func TestClient_FetchBatch_HTTPError(t *testing.T) {
	// Arrange: источник отвечает 500
	server := newTestServer(t, http.StatusInternalServerError, `{"error": "boom"}`)
	client := NewClient(server.URL, 5*time.Second)

	// Act
	questions, err := client.FetchBatch(context.Background())

	// Assert
	assert.True(t, errors.Is(err, apperrors.ErrSourceUnavailable), "Не-2xx статус должен давать ErrSourceUnavailable")
	assert.Nil(t, questions)
}

func TestClient_FetchBatch_MalformedJSON(t *testing.T) {
	// Arrange
	server := newTestServer(t, http.StatusOK, `{"response_code": 0, "results": [`)
	client := NewClient(server.URL, 5*time.Second)

	// Act
	_, err := client.FetchBatch(context.Background())

	// Assert
	assert.True(t, errors.Is(err, apperrors.ErrSourceUnavailable), "Некорректный JSON должен давать ErrSourceUnavailable")
}

func TestClient_FetchBatch_NonZeroResponseCode(t *testing.T) {
	// Arrange: API вернул код 1 (недостаточно вопросов)
	server := newTestServer(t, http.StatusOK, `{"response_code": 1, "results": []}`)
	client := NewClient(server.URL, 5*time.Second)

	// Act
	_, err := client.FetchBatch(context.Background())

	// Assert
	assert.True(t, errors.Is(err, apperrors.ErrSourceUnavailable), "Ненулевой response_code должен давать ErrSourceUnavailable")
}

func TestClient_FetchBatch_EmptyBatch(t *testing.T) {
	// Arrange
	server := newTestServer(t, http.StatusOK, `{"response_code": 0, "results": []}`)
	client := NewClient(server.URL, 5*time.Second)

	// Act
	_, err := client.FetchBatch(context.Background())

	// Assert
	assert.True(t, errors.Is(err, apperrors.ErrSourceUnavailable), "Пустой батч считается ошибкой источника")
}

func TestClient_FetchBatch_Unreachable(t *testing.T) {
	// Arrange: сервера по этому адресу нет
	client := NewClient("http://127.0.0.1:1", 500*time.Millisecond)

	// Act
	_, err := client.FetchBatch(context.Background())

	// Assert
	assert.True(t, errors.Is(err, apperrors.ErrSourceUnavailable), "Сетевая ошибка должна давать ErrSourceUnavailable")
}
