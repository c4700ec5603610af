package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// HistoryStats aggregates the history table and counts snapshots
func (s *Store) HistoryStats(ctx context.Context) (*domain.HistoryStats, error) {
	var st domain.HistoryStats
	err := s.db.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(DISTINCT user_id),
			COALESCE(SUM(spins_count), 0)::bigint,
			COALESCE(MAX(biggest_win), 0),
			(SELECT COUNT(*) FROM game_state)
		FROM game_history
	`).Scan(&st.TotalRecords, &st.UniqueUsers, &st.TotalSpins, &st.MaxWin, &st.TotalSnapshots)
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToGetHistoryStats, err)
	}
	return &st, nil
}

// ListLatestDailyResults returns the most recently written records across all users
func (s *Store) ListLatestDailyResults(ctx context.Context, limit int) ([]domain.DailyResult, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+dailyResultColumns+`
		FROM game_history
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToListDailyResults, err)
	}
	return collectDailyResults(rows)
}

// DeleteDailyResult removes one record by id
func (s *Store) DeleteDailyResult(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM game_history WHERE id = $1`, id)
	if err != nil {
		return wrapStoreErr(ErrMsgFailedToDeleteDailyResult, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: daily result %d", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteHistoryBefore removes records dated strictly before gameDate
func (s *Store) DeleteHistoryBefore(ctx context.Context, gameDate string) (int64, error) {
	cutoff, err := parseGameDate(gameDate)
	if err != nil {
		return 0, err
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM game_history WHERE game_date < $1`, cutoff)
	if err != nil {
		return 0, wrapStoreErr(ErrMsgFailedToDeleteHistory, err)
	}
	return tag.RowsAffected(), nil
}

// BeginAdminTx starts a transaction for multi-table deletes
func (s *Store) BeginAdminTx(ctx context.Context) (repository.AdminTx, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &adminTx{pgxTx: tx}, nil
}

type adminTx struct {
	pgxTx
}

func (t *adminTx) DeleteUserHistory(ctx context.Context, userID string) (int64, error) {
	return deleteUserHistory(ctx, t.tx, userID)
}

func (t *adminTx) DeleteGameState(ctx context.Context, userID string) (bool, error) {
	return deleteGameState(ctx, t.tx, userID)
}

func (t *adminTx) DeleteCredential(ctx context.Context, username string) (bool, error) {
	tag, err := t.tx.Exec(ctx, `DELETE FROM users WHERE username = $1`, username)
	if err != nil {
		return false, wrapStoreErr(ErrMsgFailedToDeleteCredential, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (t *adminTx) DeleteAllHistory(ctx context.Context) (int64, error) {
	tag, err := t.tx.Exec(ctx, `DELETE FROM game_history`)
	if err != nil {
		return 0, wrapStoreErr(ErrMsgFailedToDeleteHistory, err)
	}
	return tag.RowsAffected(), nil
}

func (t *adminTx) DeleteAllGameStates(ctx context.Context) (int64, error) {
	tag, err := t.tx.Exec(ctx, `DELETE FROM game_state`)
	if err != nil {
		return 0, wrapStoreErr(ErrMsgFailedToDeleteGameState, err)
	}
	return tag.RowsAffected(), nil
}
