// Package main запускает HTTP-сервис администрирования организации
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"org-admin-service/internal/config"
	httpapi "org-admin-service/internal/http"
	"org-admin-service/internal/repository"
	"org-admin-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации (.env + окружение)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Подключение к БД
	db, err := repository.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to init postgres: %v", err)
	}
	defer db.Pool.Close()

	// 1. Инициализация репозиториев
	orgRepo := repository.NewOrgRepo(db)
	userRepo := repository.NewUserRepo(db)
	scheduleRepo := repository.NewScheduleRepo(db)
	sessionRepo := repository.NewSessionRepo(db)

	// 2. Инициализация Менеджера Транзакций
	txManager := repository.NewTransactionManager(db)

	// 3. Инициализация сервисов
	orgService := service.NewOrgService(orgRepo, userRepo, scheduleRepo)
	sessionService := service.NewSessionService(sessionRepo, userRepo, cfg.SessionTTLDuration())
	scheduleService := service.NewScheduleService(scheduleRepo, txManager)

	// 4. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(orgService, sessionService, scheduleService, logger)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}
