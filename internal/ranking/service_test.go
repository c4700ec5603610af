package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMaster_Go/internal/database/memory"
	"github.com/osse101/SlotMaster_Go/internal/domain"
)

func seed(t *testing.T, store *memory.Store, userID string, balance, spins, win int64) {
	t.Helper()
	st := domain.NewDefaultGameState(userID, 3)
	st.Balance = balance
	st.SpinsCount = spins
	st.BiggestWin = win
	require.NoError(t, store.SaveGameState(context.Background(), &st))
}

func TestLeaderboard(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, "user_carol", 7000, 10, 500)
	seed(t, store, "user_bob_1700000000000", 9000, 40, 900)
	seed(t, store, "user_alice", 7000, 3, 50)
	seed(t, store, "user_dave", 100, 99, 0)

	svc := NewService(store)

	entries, err := svc.Leaderboard(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, domain.RankingEntry{Rank: 1, UserID: "user_bob_1700000000000", UserName: "bob", Balance: 9000, SpinsCount: 40, BiggestWin: 900}, entries[0])
	// Equal balances fall back to user id order
	assert.Equal(t, "user_alice", entries[1].UserID)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, "user_carol", entries[2].UserID)
	assert.Equal(t, "user_dave", entries[3].UserID)

	top, err := svc.Leaderboard(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

func TestLeaderboard_Empty(t *testing.T) {
	entries, err := NewService(memory.NewStore()).Leaderboard(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLeaderboard_StoreError(t *testing.T) {
	store := memory.NewStore()
	store.Fail(memory.OpListGameStates, errors.New("down"))

	_, err := NewService(store).Leaderboard(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
