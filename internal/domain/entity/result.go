package entity

import (
	"time"
)

// Result представляет итог одной сданной викторины.
// Записи неизменяемы: одна строка на каждую сдачу, без дедупликации.
type Result struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	Score  int  `gorm:"not null;default:0" json:"score"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Result) TableName() string {
	return "results"
}
