package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/osse101/SlotMaster_Go/internal/repository"
	"github.com/osse101/SlotMaster_Go/internal/scheduler"
	"github.com/osse101/SlotMaster_Go/internal/server"
	"github.com/osse101/SlotMaster_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Optional components may be nil.
type ShutdownComponents struct {
	Server        *server.Server
	Scheduler     *scheduler.Scheduler
	WorkerPool    *worker.Pool
	LimiterCloser io.Closer
	Store         repository.Store
}

// GracefulShutdown stops the components in dependency order:
// 1. HTTP server (stop accepting requests, let in-flight writes finish)
// 2. Background maintenance (scheduler first so nothing new is enqueued)
// 3. Rate limiter backend and store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil || components.WorkerPool != nil {
		slog.Info(LogMsgStoppingMaintenance)
	}
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.LimiterCloser != nil {
		if err := components.LimiterCloser.Close(); err != nil {
			slog.Error(LogMsgLimiterCloseFailed, "error", err)
		}
	}

	if components.Store != nil {
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
