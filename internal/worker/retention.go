package worker

import (
	"context"

	"github.com/osse101/SlotMaster_Go/internal/logger"
	"github.com/osse101/SlotMaster_Go/internal/metrics"
)

// HistoryPruner deletes daily records older than a number of days
type HistoryPruner interface {
	ClearOlderThan(ctx context.Context, days int) (int64, error)
}

// RetentionJob keeps the history table to a trailing window of days
type RetentionJob struct {
	pruner HistoryPruner
	days   int
}

// NewRetentionJob creates a job that keeps the last days of history
func NewRetentionJob(pruner HistoryPruner, days int) *RetentionJob {
	return &RetentionJob{pruner: pruner, days: days}
}

func (j *RetentionJob) Name() string {
	return "history-retention"
}

func (j *RetentionJob) Process(ctx context.Context) error {
	n, err := j.pruner.ClearOlderThan(ctx, j.days)
	if err != nil {
		return err
	}
	metrics.RetentionRecordsDeleted.Add(float64(n))
	logger.FromContext(ctx).Info(LogMsgRetentionCompleted, "days", j.days, "deleted", n)
	return nil
}
