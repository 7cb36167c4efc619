package trivia

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"math/rand"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/yourusername/trivia-site/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-site/internal/pkg/errors"
)

// Client запрашивает батч вопросов у внешнего API (формат Open Trivia DB).
// Один вызов FetchBatch — один HTTP запрос, без ретраев.
type Client struct {
	http *resty.Client
	url  string
}

// NewClient создает клиент источника вопросов с ограниченным таймаутом.
// Таймаут обязателен: медленный внешний API не должен вешать запрос пользователя.
func NewClient(apiURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		url: apiURL,
	}
}

// Формат ответа Open Trivia DB
type apiResponse struct {
	ResponseCode int         `json:"response_code"`
	Results      []apiResult `json:"results"`
}

type apiResult struct {
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// FetchBatch выполняет один запрос к источнику и нормализует ответ:
// HTML-сущности декодируются в тексте вопроса и каждом варианте,
// варианты (неправильные + правильный) перемешиваются независимо для
// каждого вопроса, каждому вопросу присваивается порядковый номер с 1
// и непрозрачный ID. Порядок вопросов источника сохраняется.
func (c *Client) FetchBatch(ctx context.Context) ([]entity.QuizQuestion, error) {
	resp, err := c.http.R().SetContext(ctx).Get(c.url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrSourceUnavailable, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: unexpected status %d", apperrors.ErrSourceUnavailable, resp.StatusCode())
	}

	var payload apiResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", apperrors.ErrSourceUnavailable, err)
	}
	// response_code != 0 — API не смог отдать запрошенный батч (мало вопросов, неверный запрос и т.д.)
	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("%w: api response code %d", apperrors.ErrSourceUnavailable, payload.ResponseCode)
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("%w: empty batch", apperrors.ErrSourceUnavailable)
	}

	questions := make([]entity.QuizQuestion, 0, len(payload.Results))
	for i, item := range payload.Results {
		options := make([]string, 0, len(item.IncorrectAnswers)+1)
		for _, opt := range item.IncorrectAnswers {
			options = append(options, html.UnescapeString(opt))
		}
		options = append(options, html.UnescapeString(item.CorrectAnswer))
		rand.Shuffle(len(options), func(a, b int) {
			options[a], options[b] = options[b], options[a]
		})

		questions = append(questions, entity.QuizQuestion{
			ID:       uuid.NewString(),
			Number:   i + 1,
			Question: html.UnescapeString(item.Question),
			Options:  options,
			Answer:   html.UnescapeString(item.CorrectAnswer),
		})
	}

	return questions, nil
}
