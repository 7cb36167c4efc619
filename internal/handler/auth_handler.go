package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-site/internal/middleware"
	apperrors "github.com/yourusername/trivia-site/internal/pkg/errors"
	"github.com/yourusername/trivia-site/internal/pkg/flash"
	"github.com/yourusername/trivia-site/internal/service"
)

// AuthHandler обрабатывает регистрацию, вход и выход
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый обработчик аутентификации
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// establishSession привязывает cookie-сессию к вошедшему пользователю
func establishSession(c *gin.Context, userID uint) error {
	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserKey, userID)
	return sess.Save()
}

// ShowRegister отдает форму регистрации
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", nil)
}

// Register создает аккаунт и сразу логинит нового пользователя
func (h *AuthHandler) Register(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	name := c.PostForm("name")

	user, err := h.authService.Register(email, password, name)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrEmailTaken):
			flash.Add(c, "danger", "You've already signed up with that email, log in instead.")
			c.Redirect(http.StatusFound, "/login")
		case errors.Is(err, apperrors.ErrValidation):
			flash.Add(c, "danger", "Please fill in email, password and name.")
			c.Redirect(http.StatusFound, "/register")
		default:
			log.Printf("[AuthHandler] Ошибка регистрации: %v", err)
			flash.Add(c, "danger", "Something went wrong, please try again.")
			c.Redirect(http.StatusFound, "/register")
		}
		return
	}

	if err := establishSession(c, user.ID); err != nil {
		log.Printf("[AuthHandler] Не удалось сохранить сессию после регистрации user_id=%d: %v", user.ID, err)
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowLogin отдает форму входа
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// Login проверяет учетные данные и устанавливает сессию
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.Login(email, password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownEmail):
			flash.Add(c, "danger", "That email does not exist, please try again.")
		case errors.Is(err, apperrors.ErrInvalidPassword):
			flash.Add(c, "danger", "Password incorrect, please try again.")
		default:
			log.Printf("[AuthHandler] Ошибка входа: %v", err)
			flash.Add(c, "danger", "Something went wrong, please try again.")
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := establishSession(c, user.ID); err != nil {
		log.Printf("[AuthHandler] Не удалось сохранить сессию после входа user_id=%d: %v", user.ID, err)
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout уничтожает сессию. Идемпотентен: повторный вызов без сессии безвреден.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := sess.Save(); err != nil {
		log.Printf("[AuthHandler] Не удалось очистить сессию: %v", err)
	}
	c.Redirect(http.StatusFound, "/")
}
