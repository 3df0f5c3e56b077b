package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/Dosada05/tournament-scheduler/brackets"
	"github.com/Dosada05/tournament-scheduler/config"
	"github.com/Dosada05/tournament-scheduler/db"
	_ "github.com/Dosada05/tournament-scheduler/docs"
	"github.com/Dosada05/tournament-scheduler/handlers"
	"github.com/Dosada05/tournament-scheduler/realtime"
	"github.com/Dosada05/tournament-scheduler/repositories"
	api "github.com/Dosada05/tournament-scheduler/routes"
	"github.com/Dosada05/tournament-scheduler/services"
	"github.com/Dosada05/tournament-scheduler/storage"
	"github.com/Dosada05/tournament-scheduler/timing"
	"github.com/Dosada05/tournament-scheduler/validation"
)

// @title                       Tournament Scheduler API
// @version                     1.0
// @description                 Editing sessions, validation and template generation for tournament schedules.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 10*time.Second)
	err = db.Migrate(migrateCtx, dbConn)
	cancelMigrate()
	if err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database ready")

	// Загрузчик в Cloudflare R2 необязателен
	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(context.Background(), storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		}, logger)
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2.BucketName))
	} else {
		logger.Info("Cloudflare R2 not configured, schedules are stored in the database only")
	}

	// Каталог шаблонов
	catalogue := brackets.DefaultCatalogue()
	if cfg.TemplatesFile != "" {
		catalogue, err = brackets.LoadCatalogueFile(cfg.TemplatesFile)
		if err != nil {
			logger.Error("failed to load templates", slog.String("file", cfg.TemplatesFile), slog.Any("error", err))
			os.Exit(1)
		}
	}
	logger.Info("templates loaded", slog.Int("count", len(catalogue.List())))

	// Инициализация WebSocket Hub
	wsHub := realtime.NewHub(logger)
	go wsHub.Run()
	defer wsHub.Stop()

	engine := timing.NewEngine(cfg.DefaultGameDuration, cfg.DefaultBreakDuration)
	sessions := services.NewSessionStore(services.SessionStoreConfig{
		TTL:               cfg.SessionTTL,
		Engine:            engine,
		ValidationOptions: validation.Options{DefaultDuration: engine.DefaultDuration},
		Logger:            logger,
	})
	sessions.OnEvict(func(id string) {
		wsHub.CloseRoom(realtime.RoomForSession(id))
	})
	if err := sessions.Start(); err != nil {
		logger.Error("failed to start session sweeper", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sessions.Stop(); err != nil {
			logger.Error("failed to stop session sweeper", slog.Any("error", err))
		}
	}()

	scheduleRepo := repositories.NewPostgresScheduleRepository(dbConn)
	scheduleService := services.NewScheduleService(
		sessions,
		brackets.NewGenerator(catalogue, logger),
		scheduleRepo,
		uploader,
		logger,
	)

	// Инициализация обработчиков HTTP
	sessionHandler := handlers.NewSessionHandler(scheduleService, wsHub, logger)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, engine)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, sessions, cfg.AllowedOrigins, logger)

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Options{JWTSecret: []byte(cfg.JWTSecretKey), AllowedOrigins: cfg.AllowedOrigins},
		sessionHandler,
		scheduleHandler,
		webSocketHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
