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

	_ "github.com/osse101/SlotMaster_Go/docs"
	"github.com/osse101/SlotMaster_Go/internal/admin"
	"github.com/osse101/SlotMaster_Go/internal/bootstrap"
	"github.com/osse101/SlotMaster_Go/internal/clock"
	"github.com/osse101/SlotMaster_Go/internal/concurrency"
	"github.com/osse101/SlotMaster_Go/internal/config"
	"github.com/osse101/SlotMaster_Go/internal/handler"
	"github.com/osse101/SlotMaster_Go/internal/identity"
	"github.com/osse101/SlotMaster_Go/internal/ranking"
	"github.com/osse101/SlotMaster_Go/internal/reconcile"
	"github.com/osse101/SlotMaster_Go/internal/server"
)

// shutdownTimeout bounds the graceful shutdown sequence
const shutdownTimeout = 15 * time.Second

// @title SlotMaster API
// @version 1.0
// @description Sync server for the SlotMaster mobile game: identity, snapshots, daily results and ranking.
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	handler.InitValidator()

	ctx := context.Background()
	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}

	clk := clock.NewRealClock()

	identityService := identity.NewService(store, clk, cfg.TargetLocations)
	reconcileService := reconcile.NewService(store, clk, concurrency.NewLockManager(), reconcile.Config{
		Location:        cfg.Location,
		TargetLocations: cfg.TargetLocations,
		MaxLines:        cfg.MaxLines,
	})
	rankingService := ranking.NewService(store)
	adminService := admin.NewService(store, clk, cfg.Location)

	limiter, limiterCloser := bootstrap.NewLimiter(ctx, cfg, clk)
	pool, sched := bootstrap.StartMaintenance(cfg, adminService)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		AdminAPIKey:    cfg.AdminAPIKey,
		TrustedProxies: cfg.TrustedProxies,
		StoreDriver:    store.Driver(),
		Clock:          clk,
		Limiter:        limiter,
	}, store, identityService, reconcileService, rankingService, adminService)

	if cfg.AdminAPIKey == "" {
		slog.Warn("ADMIN_API_KEY not set, admin routes are open")
	}

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:        srv,
		Scheduler:     sched,
		WorkerPool:    pool,
		LimiterCloser: limiterCloser,
		Store:         store,
	})
}
