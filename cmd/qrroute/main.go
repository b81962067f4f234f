// Command qrroute запускает сервис динамических QR-маршрутов.
//
// Сборка с версией:
//
//	go build -ldflags "-X main.buildVersion=v1.0.0 -X main.buildDate=$(date +%F) -X main.buildCommit=$(git rev-parse --short HEAD)" ./cmd/qrroute
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/qr_route.git/internal/app"
	"github.com/InQaaaaGit/qr_route.git/internal/buildinfo"
	"github.com/InQaaaaGit/qr_route.git/internal/config"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// Инициализация логгера
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}()

	buildinfo.NewInfo(buildVersion, buildDate, buildCommit).Log(logger)

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatal("Error loading config", zap.Error(err))
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// run собирает приложение и обслуживает запросы до SIGINT или SIGTERM
func run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.UsesDefaultToken() {
		logger.Warn("Using default auth token; set AUTH_TOKEN before exposing the service")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("Error closing application", zap.Error(err))
		}
	}()

	return application.Run(ctx)
}
