package memory

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// GetDailyResult loads the record for one user and day
func (s *Store) GetDailyResult(ctx context.Context, userID, gameDate string) (*domain.DailyResult, error) {
	if err := s.injected(OpGetDailyResult); err != nil {
		return nil, err
	}
	var r *domain.DailyResult
	s.read(func(t *tables) { r = findResult(t, userID, gameDate) })
	if r == nil {
		return nil, fmt.Errorf("%w: daily result %s %s", domain.ErrNotFound, userID, gameDate)
	}
	return r, nil
}

// ListDailyResultsBetween returns records dated within [fromDate, toDate], newest date first
func (s *Store) ListDailyResultsBetween(ctx context.Context, userID, fromDate, toDate string, limit int) ([]domain.DailyResult, error) {
	if err := s.injected(OpListDailyResults); err != nil {
		return nil, err
	}
	var out []domain.DailyResult
	s.read(func(t *tables) {
		for _, r := range t.history {
			if r.UserID == userID && r.GameDate >= fromDate && r.GameDate <= toDate {
				out = append(out, r)
			}
		}
	})
	slices.SortFunc(out, func(a, b domain.DailyResult) int { return cmp.Compare(b.GameDate, a.GameDate) })
	return truncate(out, limit), nil
}

// DeleteUserHistory removes every record of a user
func (s *Store) DeleteUserHistory(ctx context.Context, userID string) (int64, error) {
	if err := s.injected(OpDeleteHistory); err != nil {
		return 0, err
	}
	var n int64
	s.write(func(t *tables) { n = deleteWhere(t, func(r domain.DailyResult) bool { return r.UserID == userID }) })
	return n, nil
}

// LatestActiveUserID returns the owner of the most recently written record
func (s *Store) LatestActiveUserID(ctx context.Context) (string, error) {
	if err := s.injected(OpLatestActiveUserID); err != nil {
		return "", err
	}
	latest := s.latest(1)
	if len(latest) == 0 {
		return "", fmt.Errorf("%w: no history", domain.ErrNotFound)
	}
	return latest[0].UserID, nil
}

// ListRecentlyActiveUsers returns users ordered by their latest history write
func (s *Store) ListRecentlyActiveUsers(ctx context.Context, limit int) ([]domain.UserSummary, error) {
	if err := s.injected(OpListActiveUsers); err != nil {
		return nil, err
	}
	var users []domain.UserSummary
	s.read(func(t *tables) {
		byUser := map[string]int{}
		for _, r := range t.history {
			idx, ok := byUser[r.UserID]
			if !ok {
				byUser[r.UserID] = len(users)
				users = append(users, domain.UserSummary{
					UserID:       r.UserID,
					UserName:     domain.DisplayNameFromUserID(r.UserID),
					LastActivity: r.CreatedAt,
				})
				continue
			}
			if r.CreatedAt.After(users[idx].LastActivity) {
				users[idx].LastActivity = r.CreatedAt
			}
		}
		for i := range users {
			if st, ok := t.states[users[i].UserID]; ok {
				balance := st.Balance
				users[i].Balance = &balance
			}
		}
	})
	slices.SortFunc(users, func(a, b domain.UserSummary) int {
		if c := b.LastActivity.Compare(a.LastActivity); c != 0 {
			return c
		}
		return cmp.Compare(a.UserID, b.UserID)
	})
	return truncate(users, limit), nil
}

// BeginHistoryTx starts a read-modify-write transaction over daily records
func (s *Store) BeginHistoryTx(ctx context.Context) (repository.HistoryTx, error) {
	return s.begin(ctx)
}

func (t *memTx) GetDailyResultForUpdate(ctx context.Context, userID, gameDate string) (*domain.DailyResult, error) {
	if err := t.check(OpGetDailyResult); err != nil {
		return nil, err
	}
	r := findResult(t.work, userID, gameDate)
	if r == nil {
		return nil, fmt.Errorf("%w: daily result %s %s", domain.ErrNotFound, userID, gameDate)
	}
	return r, nil
}

func (t *memTx) InsertDailyResult(ctx context.Context, result *domain.DailyResult) error {
	if err := t.check(OpInsertDailyResult); err != nil {
		return err
	}
	if findResult(t.work, result.UserID, result.GameDate) != nil {
		return fmt.Errorf("%w: %s %s", domain.ErrConflict, result.UserID, result.GameDate)
	}
	t.work.nextID++
	result.ID = t.work.nextID
	t.work.history[result.ID] = *result
	return nil
}

func (t *memTx) UpdateDailyResult(ctx context.Context, result *domain.DailyResult) error {
	if err := t.check(OpUpdateDailyResult); err != nil {
		return err
	}
	existing, ok := t.work.history[result.ID]
	if !ok {
		return fmt.Errorf("%w: daily result %d", domain.ErrNotFound, result.ID)
	}
	existing.FinalBalance = result.FinalBalance
	existing.SpinsCount = result.SpinsCount
	existing.BiggestWin = result.BiggestWin
	existing.CreatedAt = result.CreatedAt
	t.work.history[result.ID] = existing
	return nil
}

// latest returns up to limit records, most recently written first
func (s *Store) latest(limit int) []domain.DailyResult {
	var out []domain.DailyResult
	s.read(func(t *tables) { out = slices.Collect(maps.Values(t.history)) })
	slices.SortFunc(out, func(a, b domain.DailyResult) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return truncate(out, limit)
}

func findResult(t *tables, userID, gameDate string) *domain.DailyResult {
	for _, r := range t.history {
		if r.UserID == userID && r.GameDate == gameDate {
			return &r
		}
	}
	return nil
}

func deleteWhere(t *tables, match func(domain.DailyResult) bool) int64 {
	var n int64
	for id, r := range t.history {
		if match(r) {
			delete(t.history, id)
			n++
		}
	}
	return n
}

func truncate[T any](items []T, limit int) []T {
	if items == nil {
		items = []T{}
	}
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
