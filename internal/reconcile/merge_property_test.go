package reconcile

import (
	"context"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/osse101/SlotMaster_Go/internal/clock"
	"github.com/osse101/SlotMaster_Go/internal/database/memory"
	"github.com/osse101/SlotMaster_Go/internal/domain"
)

func TestMergeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	counters := gen.SliceOfN(8, gen.Int64Range(0, 1_000_000))

	properties.Property("merged counters never decrease", prop.ForAll(
		func(spins, wins []int64) bool {
			current := domain.NewDailyResult(domain.DailyResultInput{UserID: "u", GameDate: "2024-03-10"}, testStart)
			for i := range spins {
				next := domain.MergeDailyResult(current, domain.DailyResultInput{SpinsCount: spins[i], BiggestWin: wins[i]}, testStart)
				if next.SpinsCount < current.SpinsCount || next.BiggestWin < current.BiggestWin {
					return false
				}
				current = next
			}
			return true
		},
		counters, counters,
	))

	properties.Property("final max fields do not depend on write order", prop.ForAll(
		func(spins []int64) bool {
			forward := applyUpserts(spins)
			reversed := slices.Clone(spins)
			slices.Reverse(reversed)
			backward := applyUpserts(reversed)

			want := slices.Max(spins)
			return forward.SpinsCount == want && backward.SpinsCount == want &&
				forward.BiggestWin == want && backward.BiggestWin == want
		},
		gen.SliceOfN(6, gen.Int64Range(0, 10_000)),
	))

	properties.Property("final balance follows the last write", prop.ForAll(
		func(balances []int64) bool {
			r := applyUpserts(balances)
			return r.FinalBalance == balances[len(balances)-1]
		},
		gen.SliceOfN(5, gen.Int64Range(-1000, 100_000)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// applyUpserts writes every value as balance, spins and biggest win of one day through the service
func applyUpserts(values []int64) domain.DailyResult {
	svc := NewService(memory.NewStore(), clock.NewSimulatedClock(testStart), nil, Config{})
	ctx := context.Background()

	var last *domain.DailyResult
	for _, v := range values {
		_, r, err := svc.UpsertDailyResult(ctx, domain.DailyResultInput{
			UserID:       "user_prop",
			GameDate:     "2024-03-10",
			FinalBalance: v,
			SpinsCount:   max(v, 0),
			BiggestWin:   max(v, 0),
		})
		if err != nil {
			panic(err)
		}
		last = r
	}
	return *last
}
