package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-site/internal/middleware"
	"github.com/yourusername/trivia-site/internal/pkg/flash"
)

// render дорисовывает общие поля страницы: признак входа, текущий год
// для подвала и накопленные flash-сообщения.
func render(c *gin.Context, status int, templateName string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["logged_in"] = middleware.CurrentUserID(c) != 0
	data["year"] = time.Now().Year()
	data["flashes"] = flash.Take(c)
	c.HTML(status, templateName, data)
}
