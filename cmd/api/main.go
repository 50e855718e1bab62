package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"taskboard/internal/config"
	"taskboard/internal/handlers"
	"taskboard/internal/logger"
	"taskboard/internal/middleware"
	"taskboard/internal/repository/postgres"
	"taskboard/internal/service"

	"github.com/go-chi/cors"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "конфигурация: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Development); err != nil {
		fmt.Fprintf(os.Stderr, "логгер: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()

	storage, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		logger.Error("Не удалось подключиться к базе", err)
		os.Exit(1)
	}
	defer storage.Close()

	if err := storage.Migrate(); err != nil {
		logger.Error("Не удалось применить миграции", err)
		os.Exit(1)
	}

	if err := storage.Seed(ctx); err != nil {
		logger.Error("Не удалось добавить стартовые данные", err)
		os.Exit(1)
	}

	taskService := service.NewTaskService(storage)
	commentService := service.NewCommentService(storage, storage)

	taskHandler := handlers.NewTaskHandler(&taskService)
	commentHandler := handlers.NewCommentHandler(&commentService)

	r := handlers.NewRouter(&taskHandler, &commentHandler,
		middleware.RequestID,
		middleware.Logging,
		middleware.RateLimit(cfg.Server.RateLimitRPM),
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		}),
	)

	logger.Info("Server started", zap.String("addr", cfg.GetServerAddr()))
	if err := http.ListenAndServe(cfg.GetServerAddr(), r); err != nil {
		logger.Error("Сервер остановился с ошибкой", err)
		os.Exit(1)
	}
}
