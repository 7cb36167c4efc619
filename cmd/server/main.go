package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-site/internal/config"
	"github.com/yourusername/trivia-site/internal/handler"
	"github.com/yourusername/trivia-site/internal/middleware"
	pgRepo "github.com/yourusername/trivia-site/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-site/internal/repository/redis"
	"github.com/yourusername/trivia-site/internal/service"
	"github.com/yourusername/trivia-site/internal/trivia"
	"github.com/yourusername/trivia-site/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis (состояние викторин)
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)

	// Состояние викторины живет не дольше самой сессии
	quizStateRepo, err := redisRepo.NewQuizStateRepo(redisClient, time.Duration(cfg.Session.MaxAge)*time.Second)
	if err != nil {
		log.Printf("Failed to initialize QuizStateRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем клиент внешнего API вопросов
	triviaClient := trivia.NewClient(cfg.Trivia.URL, time.Duration(cfg.Trivia.TimeoutSec)*time.Second)

	// Инициализируем сервисы
	authService, err := service.NewAuthService(userRepo)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}
	quizService, err := service.NewQuizService(triviaClient, quizStateRepo)
	if err != nil {
		log.Printf("Failed to initialize QuizService: %v", err)
		os.Exit(1)
	}
	resultService, err := service.NewResultService(resultRepo)
	if err != nil {
		log.Printf("Failed to initialize ResultService: %v", err)
		os.Exit(1)
	}
	var mailService service.MailSender
	if smtpService, err := service.NewSMTPMailService(cfg.Mail); err != nil {
		// Без почты сайт работает, ломается только контактная форма
		log.Printf("Warning: mail service unavailable: %v", err)
		mailService = &service.NoopMailService{}
	} else {
		mailService = smtpService
	}

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	quizHandler := handler.NewQuizHandler(quizService, resultService, authService)
	pageHandler := handler.NewPageHandler(resultService)
	contactHandler := handler.NewContactHandler(mailService)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware()

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Cookie-сессии: вошедший пользователь и flash-сообщения
	sessionStore := cookie.NewStore([]byte(cfg.Session.Secret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		Secure:   isProduction,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("trivia_session", sessionStore))

	// Настройка CORS для локальной разработки фронтовых страниц
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8000", "http://localhost:" + cfg.Server.Port},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Серверные шаблоны страниц
	router.LoadHTMLGlob("web/templates/*.html")

	// Публичные маршруты
	router.GET("/", pageHandler.Home)
	router.GET("/about", pageHandler.About)
	router.GET("/contact", pageHandler.Contact)
	router.POST("/send_email", contactHandler.SendEmail)

	router.GET("/register", authHandler.ShowRegister)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.ShowLogin)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Маршруты, требующие аутентификации
	authed := router.Group("/")
	authed.Use(authMiddleware.RequireAuth())
	{
		authed.GET("/test", quizHandler.StartTest)
		authed.POST("/submit_test", quizHandler.SubmitTest)
		authed.GET("/show_score", quizHandler.ShowScore)
		authed.GET("/dashboard", quizHandler.Dashboard)
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ждем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
