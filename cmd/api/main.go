package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/lingora-app/lingora-api/internal/config"
	"github.com/lingora-app/lingora-api/internal/database"
	"github.com/lingora-app/lingora-api/internal/handler"
	"github.com/lingora-app/lingora-api/internal/middleware"
	"github.com/lingora-app/lingora-api/internal/repository"
	"github.com/lingora-app/lingora-api/internal/router"
	"github.com/lingora-app/lingora-api/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	snapshotRepo, cleanup, err := buildSnapshotRepository(cfg)
	if err != nil {
		log.Fatalf("failed to connect to snapshot store: %v", err)
	}
	defer cleanup()

	domain, err := store.New(context.Background(), snapshotRepo, logger)
	if err != nil {
		log.Fatalf("failed to load domain snapshot: %v", err)
	}

	if err := domain.SetFeeRate(context.Background(), cfg.FeeRate); err != nil {
		log.Fatalf("invalid fee rate: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	accountHandler := handler.NewAccountHandler(domain, validate, cfg.JWTSecret, logger)
	lessonHandler := handler.NewLessonHandler(domain, validate, logger)
	walletHandler := handler.NewWalletHandler(domain, validate, logger)
	payoutHandler := handler.NewPayoutHandler(domain, validate, logger)
	communityHandler := handler.NewCommunityHandler(domain, validate, logger)
	statsHandler := handler.NewStatsHandler(domain, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AccountHandler:   accountHandler,
		LessonHandler:    lessonHandler,
		WalletHandler:    walletHandler,
		PayoutHandler:    payoutHandler,
		CommunityHandler: communityHandler,
		StatsHandler:     statsHandler,
		JWTMiddleware:    middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// buildSnapshotRepository prefers Redis when configured and falls back to the
// in-memory repository for local development.
func buildSnapshotRepository(cfg config.Config) (repository.SnapshotRepository, func(), error) {
	if cfg.RedisURL == "" {
		return repository.NewMemorySnapshotRepository(), func() {}, nil
	}

	client, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	return repository.NewRedisSnapshotRepository(client, cfg.SnapshotKey), func() { _ = client.Close() }, nil
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
