// Package storetest holds the behavioral suite every repository.Store backend must pass.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// Factory returns an empty store for one subtest
type Factory func(t *testing.T) repository.Store

// base is a fixed instant so backends with coarse timestamp precision compare cleanly
var base = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

// Run executes the whole suite against the backend produced by newStore
func Run(t *testing.T, newStore Factory) {
	t.Run("Credentials", func(t *testing.T) { testCredentials(t, newStore(t)) })
	t.Run("RegistrationRollback", func(t *testing.T) { testRegistrationRollback(t, newStore(t)) })
	t.Run("GameStates", func(t *testing.T) { testGameStates(t, newStore(t)) })
	t.Run("DailyResultUpsert", func(t *testing.T) { testDailyResultUpsert(t, newStore(t)) })
	t.Run("HistoryWindow", func(t *testing.T) { testHistoryWindow(t, newStore(t)) })
	t.Run("Activity", func(t *testing.T) { testActivity(t, newStore(t)) })
	t.Run("Maintenance", func(t *testing.T) { testMaintenance(t, newStore(t)) })
	t.Run("Purge", func(t *testing.T) { testPurge(t, newStore(t)) })
}

// InsertResult commits one daily record through a history transaction
func InsertResult(t *testing.T, s repository.Store, r domain.DailyResult) domain.DailyResult {
	t.Helper()
	ctx := context.Background()

	tx, err := s.BeginHistoryTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	require.NoError(t, tx.InsertDailyResult(ctx, &r))
	require.NoError(t, tx.Commit(ctx))
	return r
}

func result(userID, date string, balance, spins, win int64, at time.Time) domain.DailyResult {
	return domain.DailyResult{
		UserID:       userID,
		GameDate:     date,
		FinalBalance: balance,
		SpinsCount:   spins,
		BiggestWin:   win,
		CreatedAt:    at,
	}
}

func testCredentials(t *testing.T, s repository.Store) {
	ctx := context.Background()

	tx, err := s.BeginIdentityTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertCredential(ctx, &domain.Credential{Username: "alice", PasswordHash: "5ebe2294ecd0e0f08eab7690d2a6ee69", Created: base}))
	state := domain.NewDefaultGameState("user_alice", 3)
	state.UpdatedAt = base
	inserted, err := tx.InsertGameStateIfAbsent(ctx, &state)
	require.NoError(t, err)
	assert.True(t, inserted)
	require.NoError(t, tx.Commit(ctx))

	cred, err := s.FindCredential(ctx, "alice", "5ebe2294ecd0e0f08eab7690d2a6ee69")
	require.NoError(t, err)
	assert.Equal(t, "alice", cred.Username)

	_, err = s.FindCredential(ctx, "alice", "00000000000000000000000000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	exists, err := s.CredentialExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.CredentialExists(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	dup, err := s.BeginIdentityTx(ctx)
	require.NoError(t, err)
	err = dup.InsertCredential(ctx, &domain.Credential{Username: "alice", PasswordHash: "00000000000000000000000000000000", Created: base})
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
	repository.SafeRollback(ctx, dup)

	// The original digest still matches
	_, err = s.FindCredential(ctx, "alice", "5ebe2294ecd0e0f08eab7690d2a6ee69")
	assert.NoError(t, err)
}

func testRegistrationRollback(t *testing.T, s repository.Store) {
	ctx := context.Background()

	tx, err := s.BeginIdentityTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertCredential(ctx, &domain.Credential{Username: "bob", PasswordHash: "x", Created: base}))
	state := domain.NewDefaultGameState("user_bob", 3)
	_, err = tx.InsertGameStateIfAbsent(ctx, &state)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	exists, err := s.CredentialExists(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.GetGameState(ctx, "user_bob")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// A second rollback after the first reports a closed transaction
	assert.ErrorIs(t, tx.Rollback(ctx), domain.ErrTxClosed)
}

func testGameStates(t *testing.T, s repository.Store) {
	ctx := context.Background()

	_, err := s.GetGameState(ctx, "user_ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	saved := domain.GameState{
		UserID:           "user_carol",
		Balance:          7250,
		SpinsCount:       42,
		BiggestWin:       900,
		VisitedLocations: []bool{true, false, true},
		SelectedLines:    3,
		LastShakeTime:    1710072000000,
		UpdatedAt:        base,
	}
	require.NoError(t, s.SaveGameState(ctx, &saved))

	got, err := s.GetGameState(ctx, "user_carol")
	require.NoError(t, err)
	assertSameState(t, saved, *got)

	// Saving the same snapshot twice leaves the same row
	require.NoError(t, s.SaveGameState(ctx, &saved))
	got, err = s.GetGameState(ctx, "user_carol")
	require.NoError(t, err)
	assertSameState(t, saved, *got)

	saved.Balance = 100
	saved.VisitedLocations = []bool{true, true, true}
	saved.UpdatedAt = base.Add(time.Minute)
	require.NoError(t, s.SaveGameState(ctx, &saved))
	got, err = s.GetGameState(ctx, "user_carol")
	require.NoError(t, err)
	assertSameState(t, saved, *got)

	def := domain.NewDefaultGameState("user_carol", 3)
	inserted, err := s.InsertGameStateIfAbsent(ctx, &def)
	require.NoError(t, err)
	assert.False(t, inserted, "existing snapshot must not be replaced")
	got, err = s.GetGameState(ctx, "user_carol")
	require.NoError(t, err)
	assert.Equal(t, int64(100), got.Balance)

	require.NoError(t, s.SaveGameState(ctx, &domain.GameState{UserID: "user_dave", Balance: 100, VisitedLocations: []bool{}, SelectedLines: 1, UpdatedAt: base}))
	require.NoError(t, s.SaveGameState(ctx, &domain.GameState{UserID: "user_erin", Balance: 9000, VisitedLocations: []bool{}, SelectedLines: 1, UpdatedAt: base}))

	states, err := s.ListGameStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, 3)
	assert.Equal(t, "user_erin", states[0].UserID)
	assert.Equal(t, "user_carol", states[1].UserID)
	assert.Equal(t, "user_dave", states[2].UserID)
}

func assertSameState(t *testing.T, want, got domain.GameState) {
	t.Helper()
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Balance, got.Balance)
	assert.Equal(t, want.SpinsCount, got.SpinsCount)
	assert.Equal(t, want.BiggestWin, got.BiggestWin)
	assert.Equal(t, want.VisitedLocations, got.VisitedLocations)
	assert.Equal(t, want.SelectedLines, got.SelectedLines)
	assert.Equal(t, want.LastShakeTime, got.LastShakeTime)
	assert.WithinDuration(t, want.UpdatedAt, got.UpdatedAt, time.Second)
}

func testDailyResultUpsert(t *testing.T, s repository.Store) {
	ctx := context.Background()

	_, err := s.GetDailyResult(ctx, "user_alice", "2024-03-10")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first := InsertResult(t, s, result("user_alice", "2024-03-10", 5200, 5, 300, base))
	assert.NotZero(t, first.ID)

	// A second insert of the same key reports the race
	tx, err := s.BeginHistoryTx(ctx)
	require.NoError(t, err)
	dup := result("user_alice", "2024-03-10", 1, 1, 1, base)
	assert.ErrorIs(t, tx.InsertDailyResult(ctx, &dup), domain.ErrConflict)
	repository.SafeRollback(ctx, tx)

	tx, err = s.BeginHistoryTx(ctx)
	require.NoError(t, err)
	existing, err := tx.GetDailyResultForUpdate(ctx, "user_alice", "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, first.ID, existing.ID)

	merged := domain.MergeDailyResult(*existing, domain.DailyResultInput{
		UserID: "user_alice", GameDate: "2024-03-10", FinalBalance: 4800, SpinsCount: 3, BiggestWin: 500,
	}, base.Add(time.Hour))
	require.NoError(t, tx.UpdateDailyResult(ctx, &merged))

	_, err = tx.GetDailyResultForUpdate(ctx, "user_alice", "2024-03-11")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, tx.Commit(ctx))

	got, err := s.GetDailyResult(ctx, "user_alice", "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, "2024-03-10", got.GameDate)
	assert.Equal(t, int64(4800), got.FinalBalance)
	assert.Equal(t, int64(5), got.SpinsCount)
	assert.Equal(t, int64(500), got.BiggestWin)
	assert.WithinDuration(t, base.Add(time.Hour), got.CreatedAt, time.Second)

	stats, err := s.HistoryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRecords, "one row per (user, date)")
}

func testHistoryWindow(t *testing.T, s repository.Store) {
	ctx := context.Background()

	for i, date := range []string{"2024-02-29", "2024-03-05", "2024-03-09", "2024-03-10"} {
		InsertResult(t, s, result("user_alice", date, int64(1000+i), int64(i), int64(i), base.Add(time.Duration(i)*time.Minute)))
	}
	InsertResult(t, s, result("user_alice", "2024-03-11", 9, 9, 9, base.Add(time.Hour)))
	InsertResult(t, s, result("user_bob", "2024-03-10", 1, 1, 1, base))

	got, err := s.ListDailyResultsBetween(ctx, "user_alice", "2024-03-04", "2024-03-10", 7)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2024-03-10", got[0].GameDate)
	assert.Equal(t, "2024-03-09", got[1].GameDate)
	assert.Equal(t, "2024-03-05", got[2].GameDate)

	got, err = s.ListDailyResultsBetween(ctx, "user_alice", "2024-01-01", "2024-03-10", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = s.ListDailyResultsBetween(ctx, "user_nobody", "2024-01-01", "2024-03-10", 7)
	require.NoError(t, err)
	assert.Empty(t, got)

	n, err := s.DeleteUserHistory(ctx, "user_alice")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)

	_, err = s.GetDailyResult(ctx, "user_bob", "2024-03-10")
	assert.NoError(t, err, "other users keep their history")
}

func testActivity(t *testing.T, s repository.Store) {
	ctx := context.Background()

	_, err := s.LatestActiveUserID(ctx)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	InsertResult(t, s, result("user_alice", "2024-03-09", 1, 1, 1, base))
	InsertResult(t, s, result("user_bob_1700000000000", "2024-03-10", 2, 2, 2, base.Add(2*time.Minute)))
	InsertResult(t, s, result("user_alice", "2024-03-10", 3, 3, 3, base.Add(time.Minute)))

	latest, err := s.LatestActiveUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user_bob_1700000000000", latest)

	require.NoError(t, s.SaveGameState(ctx, &domain.GameState{UserID: "user_alice", Balance: 6100, VisitedLocations: []bool{false, false, false}, SelectedLines: 1, UpdatedAt: base}))

	users, err := s.ListRecentlyActiveUsers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "user_bob_1700000000000", users[0].UserID)
	assert.Equal(t, "bob", users[0].UserName)
	assert.Nil(t, users[0].Balance)
	assert.WithinDuration(t, base.Add(2*time.Minute), users[0].LastActivity, time.Second)

	assert.Equal(t, "user_alice", users[1].UserID)
	assert.Equal(t, "alice", users[1].UserName)
	require.NotNil(t, users[1].Balance)
	assert.Equal(t, int64(6100), *users[1].Balance)
	assert.WithinDuration(t, base.Add(time.Minute), users[1].LastActivity, time.Second)

	users, err = s.ListRecentlyActiveUsers(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func testMaintenance(t *testing.T, s repository.Store) {
	ctx := context.Background()

	stats, err := s.HistoryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.HistoryStats{}, *stats)

	old := InsertResult(t, s, result("user_alice", "2024-01-01", 10, 4, 50, base))
	InsertResult(t, s, result("user_alice", "2024-03-10", 20, 6, 700, base.Add(time.Minute)))
	newest := InsertResult(t, s, result("user_bob", "2024-03-10", 30, 10, 200, base.Add(2*time.Minute)))
	require.NoError(t, s.SaveGameState(ctx, &domain.GameState{UserID: "user_alice", Balance: 1, VisitedLocations: []bool{}, SelectedLines: 1, UpdatedAt: base}))

	stats, err = s.HistoryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.HistoryStats{TotalRecords: 3, UniqueUsers: 2, TotalSpins: 20, MaxWin: 700, TotalSnapshots: 1}, *stats)

	latest, err := s.ListLatestDailyResults(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, newest.ID, latest[0].ID)

	n, err := s.DeleteHistoryBefore(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, err = s.GetDailyResult(ctx, "user_alice", "2024-01-01")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, s.DeleteDailyResult(ctx, old.ID), domain.ErrNotFound)
	require.NoError(t, s.DeleteDailyResult(ctx, newest.ID))

	// A rolled back clear leaves everything in place
	tx, err := s.BeginAdminTx(ctx)
	require.NoError(t, err)
	_, err = tx.DeleteAllHistory(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	stats, err = s.HistoryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalRecords)

	tx, err = s.BeginAdminTx(ctx)
	require.NoError(t, err)
	n, err = tx.DeleteAllHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = tx.DeleteAllGameStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, tx.Commit(ctx))

	stats, err = s.HistoryStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.HistoryStats{}, *stats)
	_, err = s.GetGameState(ctx, "user_alice")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testPurge(t *testing.T, s repository.Store) {
	ctx := context.Background()

	tx, err := s.BeginIdentityTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.InsertCredential(ctx, &domain.Credential{Username: "alice", PasswordHash: "h", Created: base}))
	state := domain.NewDefaultGameState("user_alice", 3)
	_, err = tx.InsertGameStateIfAbsent(ctx, &state)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
	InsertResult(t, s, result("user_alice", "2024-03-09", 1, 1, 1, base))
	InsertResult(t, s, result("user_alice", "2024-03-10", 1, 1, 1, base))

	admin, err := s.BeginAdminTx(ctx)
	require.NoError(t, err)
	n, err := admin.DeleteUserHistory(ctx, "user_alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	deleted, err := admin.DeleteGameState(ctx, "user_alice")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = admin.DeleteCredential(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = admin.DeleteCredential(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, deleted)
	require.NoError(t, admin.Commit(ctx))

	exists, err := s.CredentialExists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)
	_, err = s.GetGameState(ctx, "user_alice")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
