package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/octobees/marketing-ops/api/internal/apollo"
	"github.com/octobees/marketing-ops/api/internal/auth"
	"github.com/octobees/marketing-ops/api/internal/config"
	"github.com/octobees/marketing-ops/api/internal/contact"
	"github.com/octobees/marketing-ops/api/internal/database"
	"github.com/octobees/marketing-ops/api/internal/freepik"
	"github.com/octobees/marketing-ops/api/internal/handler"
	"github.com/octobees/marketing-ops/api/internal/logger"
	middlewarepkg "github.com/octobees/marketing-ops/api/internal/middleware"
	"github.com/octobees/marketing-ops/api/internal/repository"
	"github.com/octobees/marketing-ops/api/internal/router"
	"github.com/octobees/marketing-ops/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("api stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	operatorsRepo := repository.NewPGXOperatorsRepository(pool)
	accountsRepo := repository.NewPGXAccountsRepository(pool)

	authService := service.NewAuthService(operatorsRepo, jwtManager)
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		created, err := authService.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("bootstrap admin: %w", err)
		}
		if created {
			log.Info("bootstrap admin created", zap.String("email", cfg.Admin.Email))
		}
	}

	httpClient := &http.Client{Timeout: cfg.VendorHTTPTimeout}
	apolloClient := apollo.NewClient(cfg.Apollo, httpClient, contact.NewNormalizer(cfg.PhoneDefaultRegion), log)
	freepikClient := freepik.NewClient(cfg.Freepik, httpClient, log)
	if apolloClient.MockMode() {
		log.Info("apollo client running in mock mode")
	}
	if cfg.Freepik.APIKey == "" {
		log.Warn("FREEPIK_API_KEY is not set; asset endpoints will return 503")
	}

	accountsService := service.NewAccountsService(accountsRepo, apolloClient, apolloClient, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(log))
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Enrichment:  handler.NewEnrichmentHandler(apolloClient, apolloClient),
		Assets:      handler.NewAssetsHandler(freepikClient),
		Accounts:    handler.NewAccountsHandler(accountsService),
		AdGenerator: handler.NewAdGeneratorHandler(),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	log.Info("api listening", zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	return nil
}
