package ranking

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/osse101/SlotMaster_Go/internal/domain"
)

// Service computes the balance leaderboard
type Service interface {
	// Leaderboard ranks every snapshot by balance. limit <= 0 returns all players.
	Leaderboard(ctx context.Context, limit int) ([]domain.RankingEntry, error)
}

// Repository provides the snapshots to rank
type Repository interface {
	ListGameStates(ctx context.Context) ([]domain.GameState, error)
}

type service struct {
	repo Repository
}

// NewService creates a new ranking service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.RankingEntry, error) {
	states, err := s.repo.ListGameStates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load game states: %w", err)
	}

	// Stores already order this way; sorting again keeps ties deterministic for every backend
	slices.SortStableFunc(states, func(a, b domain.GameState) int {
		if c := cmp.Compare(b.Balance, a.Balance); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})

	if limit > 0 && len(states) > limit {
		states = states[:limit]
	}

	entries := make([]domain.RankingEntry, len(states))
	for i, st := range states {
		entries[i] = domain.RankingEntry{
			Rank:       i + 1,
			UserID:     st.UserID,
			UserName:   domain.DisplayNameFromUserID(st.UserID),
			Balance:    st.Balance,
			SpinsCount: st.SpinsCount,
			BiggestWin: st.BiggestWin,
		}
	}
	return entries, nil
}
