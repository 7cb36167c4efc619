package config

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config хранит все настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
	Trivia   TriviaConfig
	Mail     MailConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// DatabaseConfig содержит настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig содержит настройки подключения к Redis
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SessionConfig содержит настройки cookie-сессий
type SessionConfig struct {
	// Secret подписывает cookie сессии; обязателен
	Secret string `mapstructure:"secret"`

	// MaxAge — время жизни сессии в секундах. Ограничивает и жизнь
	// состояния викторины, привязанного к сессии.
	MaxAge int `mapstructure:"max_age"`
}

// TriviaConfig содержит настройки внешнего API вопросов
type TriviaConfig struct {
	// URL — полный адрес запроса батча (включая amount и прочие параметры)
	URL string `mapstructure:"url"`

	// TimeoutSec — таймаут запроса к источнику в секундах
	TimeoutSec int `mapstructure:"timeout_sec"`
}

// MailConfig содержит настройки исходящего SMTP-релея
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	// Recipient — фиксированный адрес оператора для писем контактной формы
	Recipient string `mapstructure:"recipient"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.readtimeout", 10)
	vip.SetDefault("server.writetimeout", 30)
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("session.max_age", 7*24*3600)
	vip.SetDefault("trivia.timeout_sec", 10)
	vip.SetDefault("mail.port", "587")

	// 2. Привязываем переменные окружения ЯВНО
	vip.BindEnv("server.port", "SERVER_PORT")

	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")

	vip.BindEnv("redis.addr", "REDIS_ADDR")
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")

	vip.BindEnv("session.secret", "SESSION_SECRET")
	vip.BindEnv("session.max_age", "SESSION_MAX_AGE")

	vip.BindEnv("trivia.url", "TRIVIA_URL")
	vip.BindEnv("trivia.timeout_sec", "TRIVIA_TIMEOUT_SEC")

	vip.BindEnv("mail.host", "MAIL_HOST")
	vip.BindEnv("mail.port", "MAIL_PORT")
	vip.BindEnv("mail.username", "MAIL_USERNAME")
	vip.BindEnv("mail.password", "MAIL_PASSWORD")
	vip.BindEnv("mail.recipient", "MAIL_RECIPIENT")

	// 3. Пытаемся прочитать файл конфигурации (не страшно, если его нет, т.к. есть BindEnv)
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				log.Printf("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	// 4. Анмаршалим конфигурацию (Viper объединит значения из файла и привязанных env vars)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Логирование конфигурации (только в debug режиме)
	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Redis Addr: %s", cfg.Redis.Addr)
		log.Printf("Session Secret Set: %t", cfg.Session.Secret != "")
		log.Printf("Trivia URL: %s", cfg.Trivia.URL)
		log.Printf("Mail Host: %s", cfg.Mail.Host)
		log.Printf("Mail Recipient Set: %t", cfg.Mail.Recipient != "")
		log.Printf("-----------------------------------------")
	}

	// 6. Проверка обязательных параметров
	if cfg.Session.Secret == "" {
		return nil, fmt.Errorf("session secret is required in config (check SESSION_SECRET env var)")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" || cfg.Database.User == "" {
		return nil, fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
	}
	if cfg.Redis.Addr == "" {
		return nil, fmt.Errorf("redis address is required in config (check REDIS_ADDR env var)")
	}
	if cfg.Trivia.URL == "" {
		return nil, fmt.Errorf("trivia source URL is required in config (check TRIVIA_URL env var)")
	}
	// Почтовые настройки не фатальны: без них работает все, кроме контактной формы
	if cfg.Mail.Host == "" || cfg.Mail.Username == "" || cfg.Mail.Recipient == "" {
		log.Println("Warning: mail configuration is incomplete, contact form delivery will fail (check MAIL_HOST, MAIL_USERNAME, MAIL_PASSWORD, MAIL_RECIPIENT env vars)")
	}

	return &cfg, nil
}
