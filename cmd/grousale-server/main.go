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

	"github.com/mikepea/grousale/api/swagger"
	"github.com/mikepea/grousale/pkg/grousale/config"
	"github.com/mikepea/grousale/pkg/grousale/logging"
	"github.com/mikepea/grousale/pkg/grousale/registry"
	"github.com/mikepea/grousale/pkg/grousale/server"
)

// @title Grousale API
// @version 1.0
// @description Group-buy discount offers: shoppers join a group and unlock a discount once it fills.

// @contact.name Grousale Support
// @contact.url https://github.com/mikepea/grousale

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:10000
// @BasePath /

const shutdownTimeout = 10 * time.Second

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := server.NewStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "backend", cfg.Store)

	reg := registry.New(store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SweepInterval > 0 {
		go reg.RunSweeper(ctx, cfg.SweepInterval)
	}

	swagger.SwaggerInfo.Host = cfg.BaseURL
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.New(cfg, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "address", srv.Addr, "cors_origins", cfg.CORSOrigins)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
