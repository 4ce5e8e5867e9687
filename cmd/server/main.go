package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/api"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/auth"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/config"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/db"
	"github.com/DavisKolakowski/pulse-by-mirth-systems/internal/logger"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	port := flag.Int("port", 0, "Port to run the server on (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *port != 0 {
		cfg.Server.Port = *port
	}

	logger.Init(cfg.Log.Format, cfg.Log.Level)
	slog.Info("Starting Pulse API server", "version", Version, "mode", cfg.Server.Mode)

	database, err := db.New(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	slog.Info("Database initialized", "driver", cfg.Database.Driver)

	if err := db.Migrate(database); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	// Initialize authenticator
	var authenticator auth.Authenticator
	var local *auth.LocalAuthenticator
	switch cfg.Auth.Type {
	case "oidc":
		authenticator, err = auth.NewOIDCAuthenticator(context.Background(), cfg.Auth.Auth0Domain, cfg.Auth.Auth0Audience)
		if err != nil {
			slog.Error("Failed to initialize OIDC authenticator", "error", err)
			os.Exit(1)
		}
		slog.Info("OIDC authenticator initialized", "domain", cfg.Auth.Auth0Domain)
	case "local":
		local = auth.NewLocalAuthenticator(cfg.Auth.JWTSecret)
		authenticator = local
		slog.Info("Local authenticator initialized")
	default:
		slog.Error("Unsupported auth type", "type", cfg.Auth.Type)
		os.Exit(1)
	}

	router := api.NewRouter(cfg, database, authenticator, local)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("HTTP server listening", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
