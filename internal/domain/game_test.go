package domain

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// applyAll folds a sequence of contributions the way the reconciliation service does
func applyAll(spins, wins []int64) []DailyResult {
	var states []DailyResult
	var current DailyResult
	for i := range spins {
		in := DailyResultInput{UserID: "user_p", GameDate: "2024-01-01", FinalBalance: int64(i), SpinsCount: spins[i], BiggestWin: wins[i]}
		if i == 0 {
			current = NewDailyResult(in, testNow)
		} else {
			current = MergeDailyResult(current, in, testNow.Add(time.Duration(i)*time.Second))
		}
		states = append(states, current)
	}
	return states
}

func TestMergeDailyResult_SpinsSequence(t *testing.T) {
	states := applyAll([]int64{5, 3, 9, 9}, []int64{0, 0, 0, 0})

	got := make([]int64, len(states))
	for i, s := range states {
		got[i] = s.SpinsCount
	}
	assert.Equal(t, []int64{5, 5, 9, 9}, got)
}

func TestMergeDailyResult_BiggestWinNeverDecreases(t *testing.T) {
	states := applyAll([]int64{0, 0, 0, 0}, []int64{5, 3, 9, 9})

	got := make([]int64, len(states))
	for i, s := range states {
		got[i] = s.BiggestWin
	}
	assert.Equal(t, []int64{5, 5, 9, 9}, got)
}

func TestMergeDailyResult_LatestBalanceAndTimestampWin(t *testing.T) {
	existing := DailyResult{ID: 7, UserID: "user_p", GameDate: "2024-01-01", FinalBalance: 9000, SpinsCount: 40, BiggestWin: 500, CreatedAt: testNow}
	later := testNow.Add(time.Hour)

	merged := MergeDailyResult(existing, DailyResultInput{UserID: "user_p", GameDate: "2024-01-01", FinalBalance: 100, SpinsCount: 2, BiggestWin: 1}, later)

	assert.Equal(t, int64(7), merged.ID)
	assert.Equal(t, int64(100), merged.FinalBalance, "balance follows the latest write even when it drops")
	assert.Equal(t, int64(40), merged.SpinsCount)
	assert.Equal(t, int64(500), merged.BiggestWin)
	assert.Equal(t, later, merged.CreatedAt)
}

func TestMergeDailyResultProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	counters := gen.SliceOfN(8, gen.Int64Range(0, 10_000))

	properties.Property("stored spins never decrease and equal the running max", prop.ForAll(
		func(spins []int64) bool {
			states := applyAll(spins, make([]int64, len(spins)))
			var runningMax int64
			for i, s := range states {
				runningMax = max(runningMax, spins[i])
				if s.SpinsCount != runningMax {
					return false
				}
				if i > 0 && s.SpinsCount < states[i-1].SpinsCount {
					return false
				}
			}
			return true
		},
		counters,
	))

	properties.Property("biggest win never decreases", prop.ForAll(
		func(wins []int64) bool {
			states := applyAll(make([]int64, len(wins)), wins)
			for i := 1; i < len(states); i++ {
				if states[i].BiggestWin < states[i-1].BiggestWin {
					return false
				}
			}
			return true
		},
		counters,
	))

	properties.Property("counter fields do not depend on delivery order", prop.ForAll(
		func(spins, wins []int64) bool {
			forward := applyAll(spins, wins)

			revSpins := make([]int64, len(spins))
			revWins := make([]int64, len(wins))
			for i := range spins {
				revSpins[len(spins)-1-i] = spins[i]
				revWins[len(wins)-1-i] = wins[i]
			}
			backward := applyAll(revSpins, revWins)

			last, lastRev := forward[len(forward)-1], backward[len(backward)-1]
			return last.SpinsCount == lastRev.SpinsCount && last.BiggestWin == lastRev.BiggestWin
		},
		counters, counters,
	))

	properties.Property("replaying the same contribution is a no-op on counters", prop.ForAll(
		func(spins, win int64) bool {
			in := DailyResultInput{UserID: "user_p", GameDate: "2024-01-01", FinalBalance: 10, SpinsCount: spins, BiggestWin: win}
			once := NewDailyResult(in, testNow)
			twice := MergeDailyResult(once, in, testNow)
			return once == twice
		},
		gen.Int64Range(0, 10_000), gen.Int64Range(0, 10_000),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestNewDefaultGameState(t *testing.T) {
	state := NewDefaultGameState("user_alice", 3)

	assert.Equal(t, "user_alice", state.UserID)
	assert.Equal(t, int64(5000), state.Balance)
	assert.Zero(t, state.SpinsCount)
	assert.Zero(t, state.BiggestWin)
	assert.Equal(t, []bool{false, false, false}, state.VisitedLocations)
	assert.Equal(t, 1, state.SelectedLines)
}
