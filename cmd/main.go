package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/pigeon_guard/internal/config"
	"github.com/shenikar/pigeon_guard/internal/geofence"
	v1 "github.com/shenikar/pigeon_guard/internal/handler/http/v1"
	"github.com/shenikar/pigeon_guard/internal/metrics"
	"github.com/shenikar/pigeon_guard/internal/notifier"
	"github.com/shenikar/pigeon_guard/internal/predictor"
	"github.com/shenikar/pigeon_guard/internal/repository"
	"github.com/shenikar/pigeon_guard/internal/service"
	"github.com/shenikar/pigeon_guard/internal/webhook"
	"github.com/shenikar/pigeon_guard/pkg/logger"
	"github.com/shenikar/pigeon_guard/pkg/postgres"
	redisclient "github.com/shenikar/pigeon_guard/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/pigeon_guard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Pigeon Guard API
// @version 1.0
// @description Purchase-regret risk prediction and geofenced intervention engine.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Загрузка датасета опасных зон в геоиндекс
	geoIndex := geofence.NewIndex()
	if _, err := geofence.LoadZonesFromFile(geoIndex, cfg.DangerZonesPath, log); err != nil {
		log.Fatalf("Failed to load danger zones: %v", err)
	}

	// Инициализация движка скоринга (деградирует до эвристики без модели)
	engine := predictor.NewEngine(cfg.ModelPath, cfg.ModelMetaPath, log)
	engine.Load()

	// Генератор текста уведомлений
	renderer := notifier.NewHTTPRenderer(cfg.NotifierURL, cfg.NotifierTimeout)

	// Инициализация издателя вебхуков
	webhookPublisher := webhook.NewRedisPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	interventionRepo := repository.NewInterventionRepository(dbpool, redisClient)

	// Инициализация сервисов
	interventionService := service.NewInterventionService(interventionRepo, geoIndex, engine, renderer, webhookPublisher, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(interventionService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(metrics.Middleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Маршруты для Swagger UI и метрик Prometheus
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metrics.Handler())

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
