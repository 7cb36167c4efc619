package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-site/internal/pkg/flash"
	"github.com/yourusername/trivia-site/internal/service"
)

// ContactHandler обрабатывает отправку контактной формы
type ContactHandler struct {
	mail service.MailSender
}

// NewContactHandler создает новый обработчик контактной формы
func NewContactHandler(mail service.MailSender) *ContactHandler {
	return &ContactHandler{mail: mail}
}

// SendEmail шлет письма контактной формы. Любая ошибка доставки
// сворачивается в одно flash-сообщение; ответ всегда редирект на главную.
func (h *ContactHandler) SendEmail(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	message := c.PostForm("message")

	if err := h.mail.SendContactMessage(name, email, message); err != nil {
		log.Printf("[ContactHandler] Ошибка отправки письма: %v", err)
		flash.Add(c, "danger", "Error sending message, please try again later.")
	} else {
		flash.Add(c, "success", "Message sent successfully!")
	}

	c.Redirect(http.StatusFound, "/")
}
