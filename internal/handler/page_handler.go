package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-site/internal/service"
)

// PageHandler отдает публичные страницы сайта
type PageHandler struct {
	resultService *service.ResultService
}

// NewPageHandler создает новый обработчик страниц
func NewPageHandler(resultService *service.ResultService) *PageHandler {
	return &PageHandler{resultService: resultService}
}

// Home показывает публичный лидерборд
func (h *PageHandler) Home(c *gin.Context) {
	leaderboard, err := h.resultService.Leaderboard()
	if err != nil {
		log.Printf("[PageHandler] Не удалось получить лидерборд: %v", err)
		render(c, http.StatusInternalServerError, "index.html", gin.H{
			"leaderboard": nil,
		})
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"leaderboard": leaderboard,
	})
}

// About отдает статическую страницу "О сайте"
func (h *PageHandler) About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", nil)
}

// Contact отдает страницу с контактной формой
func (h *PageHandler) Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", nil)
}
