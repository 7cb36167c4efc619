package database

import (
	"fmt"
	"log"
	"time"

	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-site/internal/domain/entity"
)

// NewPostgresDB создает новое подключение к PostgreSQL
func NewPostgresDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormPostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настройка пула соединений
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// MigrateDB создает схему приложения. Таблиц всего две и они плоские,
// поэтому достаточно AutoMigrate при старте.
func MigrateDB(db *gorm.DB) error {
	log.Println("Запуск миграции схемы базы данных...")

	if err := db.AutoMigrate(&entity.User{}, &entity.Result{}); err != nil {
		return fmt.Errorf("ошибка миграции схемы: %w", err)
	}

	log.Println("Миграция схемы завершена.")
	return nil
}
