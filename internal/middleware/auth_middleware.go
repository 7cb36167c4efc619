package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-site/internal/pkg/flash"
)

// SessionUserKey — ключ, под которым ID вошедшего пользователя лежит в cookie-сессии
const SessionUserKey = "user_id"

// ContextUserKey — ключ ID пользователя в контексте запроса Gin
const ContextUserKey = "user_id"

// AuthMiddleware обеспечивает аутентификацию для защищенных маршрутов
type AuthMiddleware struct{}

// NewAuthMiddleware создает новый middleware аутентификации
func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{}
}

// RequireAuth проверяет наличие вошедшего пользователя в сессии.
// Неаутентифицированные запросы получают flash-сообщение и редирект
// на страницу входа.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		userID, ok := sess.Get(SessionUserKey).(uint)
		if !ok || userID == 0 {
			flash.Add(c, "danger", "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// Устанавливаем ID пользователя в контекст запроса
		c.Set(ContextUserKey, userID)
		c.Next()
	}
}

// CurrentUserID возвращает ID вошедшего пользователя из сессии, 0 если его нет
func CurrentUserID(c *gin.Context) uint {
	sess := sessions.Default(c)
	if userID, ok := sess.Get(SessionUserKey).(uint); ok {
		return userID
	}
	return 0
}
