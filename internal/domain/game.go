package domain

import "time"

// GameState is the latest full snapshot of a player's game, one per user.
// It is overwritten as a whole on every save.
type GameState struct {
	UserID           string    `json:"userId"`
	Balance          int64     `json:"balance"`
	SpinsCount       int64     `json:"spinsCount"`
	BiggestWin       int64     `json:"biggestWin"`
	VisitedLocations []bool    `json:"visitedLocations"`
	SelectedLines    int       `json:"selectedLines"`
	LastShakeTime    int64     `json:"lastShakeTime"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NewDefaultGameState returns the state a freshly registered or logged-in player starts with
func NewDefaultGameState(userID string, locations int) GameState {
	return GameState{
		UserID:           userID,
		Balance:          DefaultBalance,
		VisitedLocations: make([]bool, locations),
		SelectedLines:    DefaultSelectedLines,
	}
}

// DailyResult is the per-day summary for one user. At most one exists per (UserID, GameDate).
type DailyResult struct {
	ID           int64     `json:"id"`
	UserID       string    `json:"userId"`
	GameDate     string    `json:"gameDate"`
	FinalBalance int64     `json:"finalBalance"`
	SpinsCount   int64     `json:"spinsCount"`
	BiggestWin   int64     `json:"biggestWin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DailyResultInput is one client contribution to a day's summary
type DailyResultInput struct {
	UserID       string
	GameDate     string
	FinalBalance int64
	SpinsCount   int64
	BiggestWin   int64
}

// UpsertAction reports whether a daily upsert inserted or merged
type UpsertAction string

const (
	ActionCreated UpsertAction = "created"
	ActionUpdated UpsertAction = "updated"
)

// MergeDailyResult applies the daily reconciliation policy to an existing record.
// Counters only move forward (max wins) while the balance and timestamp always follow the latest write.
func MergeDailyResult(existing DailyResult, in DailyResultInput, now time.Time) DailyResult {
	merged := existing
	merged.SpinsCount = max(existing.SpinsCount, in.SpinsCount)
	merged.BiggestWin = max(existing.BiggestWin, in.BiggestWin)
	merged.FinalBalance = in.FinalBalance
	merged.CreatedAt = now
	return merged
}

// NewDailyResult builds the first record of a day from a client contribution
func NewDailyResult(in DailyResultInput, now time.Time) DailyResult {
	return DailyResult{
		UserID:       in.UserID,
		GameDate:     in.GameDate,
		FinalBalance: in.FinalBalance,
		SpinsCount:   in.SpinsCount,
		BiggestWin:   in.BiggestWin,
		CreatedAt:    now,
	}
}
