package bootstrap

import (
	"log/slog"

	"github.com/osse101/SlotMaster_Go/internal/config"
	"github.com/osse101/SlotMaster_Go/internal/scheduler"
	"github.com/osse101/SlotMaster_Go/internal/worker"
)

// StartMaintenance schedules history retention when HISTORY_RETENTION_DAYS is positive.
// Both return values are nil when retention is off.
func StartMaintenance(cfg *config.Config, pruner worker.HistoryPruner) (*worker.Pool, *scheduler.Scheduler) {
	if cfg.HistoryRetentionDays <= 0 {
		slog.Info(LogMsgRetentionDisabled)
		return nil, nil
	}

	pool := worker.NewPool(MaintenanceWorkers, MaintenanceQueueSize, 0)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(cfg.RetentionInterval, worker.NewRetentionJob(pruner, cfg.HistoryRetentionDays), true)

	slog.Info(LogMsgRetentionScheduled, "days", cfg.HistoryRetentionDays, "interval", cfg.RetentionInterval)
	return pool, sched
}
