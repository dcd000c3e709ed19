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

	"github.com/gin-gonic/gin"
	"github.com/sangkips/receipt-api/internal/app"
	"github.com/sangkips/receipt-api/internal/config"
	"github.com/sangkips/receipt-api/internal/presentation/http/handler"
	"github.com/sangkips/receipt-api/internal/presentation/http/routes"
	"github.com/sangkips/receipt-api/pkg/logger"
	"github.com/sangkips/receipt-api/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.App.Env, cfg.App.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.App.ConfigFile == "" {
		log.Info(".env file not found, using environment variables")
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, log, app.Options{})
	if err != nil {
		log.Fatal("failed to start receipt service", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Warn("failed to close store", zap.Error(err))
		}
	}()

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	handlers := &routes.Handlers{
		Receipt: handler.NewReceiptHandler(application.Receipts, log),
	}

	router, stopRouter := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Logger:     log,
	})
	defer stopRouter()

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Warn("graceful shutdown failed", zap.Error(err))
		}
	}()

	log.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
		zap.String("db_driver", application.Store.Driver),
		zap.Bool("auth", cfg.JWT.Enabled))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
