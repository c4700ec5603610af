package memory

import (
	"context"
	"fmt"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// HistoryStats aggregates the history table and counts snapshots
func (s *Store) HistoryStats(ctx context.Context) (*domain.HistoryStats, error) {
	if err := s.injected(OpHistoryStats); err != nil {
		return nil, err
	}
	var st domain.HistoryStats
	s.read(func(t *tables) {
		users := map[string]struct{}{}
		for _, r := range t.history {
			st.TotalRecords++
			st.TotalSpins += r.SpinsCount
			st.MaxWin = max(st.MaxWin, r.BiggestWin)
			users[r.UserID] = struct{}{}
		}
		st.UniqueUsers = int64(len(users))
		st.TotalSnapshots = int64(len(t.states))
	})
	return &st, nil
}

// ListLatestDailyResults returns the most recently written records across all users
func (s *Store) ListLatestDailyResults(ctx context.Context, limit int) ([]domain.DailyResult, error) {
	if err := s.injected(OpListDailyResults); err != nil {
		return nil, err
	}
	return s.latest(limit), nil
}

// DeleteDailyResult removes one record by id
func (s *Store) DeleteDailyResult(ctx context.Context, id int64) error {
	if err := s.injected(OpDeleteHistory); err != nil {
		return err
	}
	var ok bool
	s.write(func(t *tables) {
		if _, ok = t.history[id]; ok {
			delete(t.history, id)
		}
	})
	if !ok {
		return fmt.Errorf("%w: daily result %d", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteHistoryBefore removes records dated strictly before gameDate
func (s *Store) DeleteHistoryBefore(ctx context.Context, gameDate string) (int64, error) {
	if err := s.injected(OpDeleteHistory); err != nil {
		return 0, err
	}
	var n int64
	s.write(func(t *tables) {
		n = deleteWhere(t, func(r domain.DailyResult) bool { return r.GameDate < gameDate })
	})
	return n, nil
}

// BeginAdminTx starts a transaction for multi-table deletes
func (s *Store) BeginAdminTx(ctx context.Context) (repository.AdminTx, error) {
	return s.begin(ctx)
}

func (t *memTx) DeleteUserHistory(ctx context.Context, userID string) (int64, error) {
	if err := t.check(OpDeleteHistory); err != nil {
		return 0, err
	}
	return deleteWhere(t.work, func(r domain.DailyResult) bool { return r.UserID == userID }), nil
}

func (t *memTx) DeleteGameState(ctx context.Context, userID string) (bool, error) {
	if err := t.check(OpSaveGameState); err != nil {
		return false, err
	}
	_, ok := t.work.states[userID]
	delete(t.work.states, userID)
	return ok, nil
}

func (t *memTx) DeleteCredential(ctx context.Context, username string) (bool, error) {
	if err := t.check(OpInsertCredential); err != nil {
		return false, err
	}
	_, ok := t.work.users[username]
	delete(t.work.users, username)
	return ok, nil
}

func (t *memTx) DeleteAllHistory(ctx context.Context) (int64, error) {
	if err := t.check(OpDeleteHistory); err != nil {
		return 0, err
	}
	return deleteWhere(t.work, func(domain.DailyResult) bool { return true }), nil
}

func (t *memTx) DeleteAllGameStates(ctx context.Context) (int64, error) {
	if err := t.check(OpSaveGameState); err != nil {
		return 0, err
	}
	n := int64(len(t.work.states))
	clear(t.work.states)
	return n, nil
}
