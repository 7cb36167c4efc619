package flash

import (
	"encoding/gob"
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Message — одноразовое уведомление, показываемое на следующей
// отрендеренной странице и после этого исчезающее.
type Message struct {
	Category string // success, info, danger
	Text     string
}

func init() {
	// Сообщения лежат в cookie-сессии, которая сериализуется через gob
	gob.Register(Message{})
}

// Add кладет сообщение во flash-хранилище сессии
func Add(c *gin.Context, category, text string) {
	sess := sessions.Default(c)
	sess.AddFlash(Message{Category: category, Text: text})
	if err := sess.Save(); err != nil {
		log.Printf("[flash] Не удалось сохранить сессию: %v", err)
	}
}

// Take забирает накопленные сообщения и очищает их в сессии
func Take(c *gin.Context) []Message {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) > 0 {
		if err := sess.Save(); err != nil {
			log.Printf("[flash] Не удалось сохранить сессию после чтения: %v", err)
		}
	}

	messages := make([]Message, 0, len(raw))
	for _, item := range raw {
		if msg, ok := item.(Message); ok {
			messages = append(messages, msg)
		}
	}
	return messages
}
