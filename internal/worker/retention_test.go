package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMaster_Go/internal/admin"
	"github.com/osse101/SlotMaster_Go/internal/clock"
	"github.com/osse101/SlotMaster_Go/internal/database/memory"
	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/testing/storetest"
)

func TestRetentionJob(t *testing.T) {
	store := memory.NewStore()
	clk := clock.NewSimulatedClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	for _, d := range []string{"2024-02-20", "2024-03-02", "2024-03-03", "2024-03-10"} {
		storetest.InsertResult(t, store, domain.DailyResult{UserID: "user_alice", GameDate: d, CreatedAt: clk.Now()})
	}

	job := NewRetentionJob(admin.NewService(store, clk, time.UTC), 7)
	assert.Equal(t, "history-retention", job.Name())
	require.NoError(t, job.Process(context.Background()))

	stats, err := store.HistoryStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalRecords)
}

func TestRetentionJob_StoreFailure(t *testing.T) {
	store := memory.NewStore()
	store.Fail(memory.OpDeleteHistory, assert.AnError)
	clk := clock.NewSimulatedClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	job := NewRetentionJob(admin.NewService(store, clk, time.UTC), 7)
	assert.ErrorIs(t, job.Process(context.Background()), domain.ErrStoreUnavailable)
}
