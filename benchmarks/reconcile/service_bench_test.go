package reconcile_bench

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/osse101/SlotMaster_Go/internal/clock"
	"github.com/osse101/SlotMaster_Go/internal/concurrency"
	"github.com/osse101/SlotMaster_Go/internal/database/memory"
	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/reconcile"
)

func newService() reconcile.Service {
	clk := clock.NewSimulatedClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	return reconcile.NewService(memory.NewStore(), clk, concurrency.NewLockManager(), reconcile.Config{Location: time.UTC})
}

// BenchmarkUpsertDailyResult_SameKey measures the merge path of one (user, day) record
func BenchmarkUpsertDailyResult_SameKey(b *testing.B) {
	svc := newService()
	ctx := context.Background()
	in := domain.DailyResultInput{UserID: "user_bench", GameDate: "2024-03-10", FinalBalance: 5000}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		in.SpinsCount = int64(i)
		if _, _, err := svc.UpsertDailyResult(ctx, in); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkUpsertDailyResult_Parallel spreads writers over many users
func BenchmarkUpsertDailyResult_Parallel(b *testing.B) {
	svc := newService()
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			in := domain.DailyResultInput{
				UserID:     fmt.Sprintf("user_%d", i%64),
				GameDate:   "2024-03-10",
				SpinsCount: int64(i),
			}
			if _, _, err := svc.UpsertDailyResult(ctx, in); err != nil {
				b.Fatal(err)
			}
			i++
		}
	})
}

// BenchmarkSaveSnapshot measures the last-write-wins snapshot path
func BenchmarkSaveSnapshot(b *testing.B) {
	svc := newService()
	ctx := context.Background()
	state := domain.NewDefaultGameState("user_bench", domain.DefaultTargetLocations)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		state.Balance = int64(i)
		if err := svc.SaveSnapshot(ctx, &state); err != nil {
			b.Fatal(err)
		}
	}
}
