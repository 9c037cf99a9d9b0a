package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tallyapp/tally/internal/auth"
	"github.com/tallyapp/tally/internal/config"
	"github.com/tallyapp/tally/internal/handler"
	"github.com/tallyapp/tally/internal/middleware"
	"github.com/tallyapp/tally/internal/service"
	"github.com/tallyapp/tally/internal/storage/sqlite"
	"github.com/tallyapp/tally/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", cfg.DBPath)

	tokens := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	svcs := handler.Services{
		Auth:        service.NewAuthService(authenticator, tokens),
		Groups:      service.NewGroupService(store),
		Expenses:    service.NewExpenseService(store),
		Settlements: service.NewSettlementService(store),
		Ledger:      service.NewLedgerService(store),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, 10)
	defer limiter.Stop()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	handler.RegisterRoutes(e, svcs, tokens, limiter)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
