package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-site/internal/domain/entity"
	"github.com/yourusername/trivia-site/internal/middleware"
	apperrors "github.com/yourusername/trivia-site/internal/pkg/errors"
	"github.com/yourusername/trivia-site/internal/pkg/flash"
	"github.com/yourusername/trivia-site/internal/service"
)

// Имена полей формы теста: "q" + непрозрачный ID вопроса
const answerFieldPrefix = "q"

// QuizHandler обрабатывает запуск теста, сдачу и страницы результатов
type QuizHandler struct {
	quizService   *service.QuizService
	resultService *service.ResultService
	authService   *service.AuthService
}

// NewQuizHandler создает новый обработчик викторин
func NewQuizHandler(quizService *service.QuizService, resultService *service.ResultService, authService *service.AuthService) *QuizHandler {
	return &QuizHandler{
		quizService:   quizService,
		resultService: resultService,
		authService:   authService,
	}
}

// questionView — вопрос в виде, уходящем в шаблон.
// Поля Answer здесь нет намеренно: правильный ответ не должен
// попадать в отрендеренную разметку.
type questionView struct {
	ID       string
	Number   int
	Question string
	Options  []string
}

func toQuestionViews(questions []entity.QuizQuestion) []questionView {
	views := make([]questionView, 0, len(questions))
	for i := range questions {
		views = append(views, questionView{
			ID:       questions[i].ID,
			Number:   questions[i].Number,
			Question: questions[i].Question,
			Options:  questions[i].Options,
		})
	}
	return views
}

// StartTest запрашивает свежий батч вопросов и отдает страницу теста
func (h *QuizHandler) StartTest(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserKey)

	questions, err := h.quizService.Start(c.Request.Context(), userID)
	if err != nil {
		// Недоступный источник — не повод для 500: показываем страницу с ошибкой
		log.Printf("[QuizHandler] Не удалось запустить викторину user_id=%d: %v", userID, err)
		if errors.Is(err, apperrors.ErrSourceUnavailable) {
			flash.Add(c, "danger", "The question service is unavailable right now, please try again later.")
		} else {
			flash.Add(c, "danger", "Something went wrong, please try again.")
		}
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	render(c, http.StatusOK, "test.html", gin.H{
		"questions": toQuestionViews(questions),
	})
}

// SubmitTest оценивает сдачу по сохраненному батчу, записывает результат
// и ведет на страницу счета
func (h *QuizHandler) SubmitTest(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserKey)

	if err := c.Request.ParseForm(); err != nil {
		flash.Add(c, "danger", "Could not read your answers, please try again.")
		c.Redirect(http.StatusFound, "/test")
		return
	}

	answers := make(map[string]string)
	for field, values := range c.Request.PostForm {
		if !strings.HasPrefix(field, answerFieldPrefix) || len(values) == 0 {
			continue
		}
		answers[strings.TrimPrefix(field, answerFieldPrefix)] = values[0]
	}

	score, total, err := h.quizService.Grade(userID, answers)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveQuiz) {
			flash.Add(c, "info", "There is no quiz in progress, start a new one.")
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
		log.Printf("[QuizHandler] Ошибка оценки викторины user_id=%d: %v", userID, err)
		flash.Add(c, "danger", "Something went wrong, please try again.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if err := h.resultService.Record(userID, score); err != nil {
		log.Printf("[QuizHandler] Не удалось записать результат user_id=%d score=%d: %v", userID, score, err)
		flash.Add(c, "danger", "Your score could not be saved.")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/show_score?score=%d&total=%d", score, total))
}

// ShowScore показывает результат, переданный в query-параметрах.
// Значения чисто отображательные и ни на что не влияют.
func (h *QuizHandler) ShowScore(c *gin.Context) {
	score, err := strconv.Atoi(c.DefaultQuery("score", "0"))
	if err != nil {
		score = 0
	}
	total, err := strconv.Atoi(c.DefaultQuery("total", "20"))
	if err != nil {
		total = 20
	}

	render(c, http.StatusOK, "score.html", gin.H{
		"score": score,
		"total": total,
	})
}

// Dashboard показывает имя пользователя и его лучший результат
func (h *QuizHandler) Dashboard(c *gin.Context) {
	userID := c.GetUint(middleware.ContextUserKey)

	user, err := h.authService.GetUser(userID)
	if err != nil {
		log.Printf("[QuizHandler] Не удалось получить пользователя ID=%d: %v", userID, err)
		flash.Add(c, "danger", "Something went wrong, please log in again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	best, err := h.resultService.BestScore(userID)
	if err != nil {
		log.Printf("[QuizHandler] Не удалось получить лучший результат user_id=%d: %v", userID, err)
		best = 0
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"name":          user.Name,
		"highest_score": best,
	})
}
