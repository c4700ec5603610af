package sqlite

import (
	"context"
	"fmt"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

type statsRow struct {
	TotalRecords   int64
	UniqueUsers    int64
	TotalSpins     int64
	MaxWin         int64
	TotalSnapshots int64
}

// HistoryStats aggregates the history table and counts snapshots
func (s *Store) HistoryStats(ctx context.Context) (*domain.HistoryStats, error) {
	var row statsRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_records,
			COUNT(DISTINCT user_id) AS unique_users,
			COALESCE(SUM(spins_count), 0) AS total_spins,
			COALESCE(MAX(biggest_win), 0) AS max_win,
			(SELECT COUNT(*) FROM game_state) AS total_snapshots
		FROM game_history
	`).Scan(&row).Error
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToGetHistoryStats, err)
	}
	return &domain.HistoryStats{
		TotalRecords:   row.TotalRecords,
		UniqueUsers:    row.UniqueUsers,
		TotalSpins:     row.TotalSpins,
		MaxWin:         row.MaxWin,
		TotalSnapshots: row.TotalSnapshots,
	}, nil
}

// ListLatestDailyResults returns the most recently written records across all users
func (s *Store) ListLatestDailyResults(ctx context.Context, limit int) ([]domain.DailyResult, error) {
	var ms []dailyResultModel
	err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&ms).Error
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToListDailyResults, err)
	}
	return dailyResultsFromModels(ms), nil
}

// DeleteDailyResult removes one record by id
func (s *Store) DeleteDailyResult(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&dailyResultModel{}, id)
	if res.Error != nil {
		return wrapStoreErr(ErrMsgFailedToDeleteDailyResult, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: daily result %d", domain.ErrNotFound, id)
	}
	return nil
}

// DeleteHistoryBefore removes records dated strictly before gameDate
func (s *Store) DeleteHistoryBefore(ctx context.Context, gameDate string) (int64, error) {
	res := s.db.WithContext(ctx).Where("game_date < ?", gameDate).Delete(&dailyResultModel{})
	if res.Error != nil {
		return 0, wrapStoreErr(ErrMsgFailedToDeleteHistory, res.Error)
	}
	return res.RowsAffected, nil
}

// BeginAdminTx starts a transaction for multi-table deletes
func (s *Store) BeginAdminTx(ctx context.Context) (repository.AdminTx, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &adminTx{gormTx: tx}, nil
}

type adminTx struct {
	gormTx
}

func (t *adminTx) DeleteUserHistory(ctx context.Context, userID string) (int64, error) {
	return deleteUserHistory(t.tx.WithContext(ctx), userID)
}

func (t *adminTx) DeleteGameState(ctx context.Context, userID string) (bool, error) {
	return deleteGameState(t.tx.WithContext(ctx), userID)
}

func (t *adminTx) DeleteCredential(ctx context.Context, username string) (bool, error) {
	return deleteCredential(t.tx.WithContext(ctx), username)
}

func (t *adminTx) DeleteAllHistory(ctx context.Context) (int64, error) {
	res := t.tx.WithContext(ctx).Exec(`DELETE FROM game_history`)
	if res.Error != nil {
		return 0, wrapStoreErr(ErrMsgFailedToDeleteHistory, res.Error)
	}
	return res.RowsAffected, nil
}

func (t *adminTx) DeleteAllGameStates(ctx context.Context) (int64, error) {
	res := t.tx.WithContext(ctx).Exec(`DELETE FROM game_state`)
	if res.Error != nil {
		return 0, wrapStoreErr(ErrMsgFailedToDeleteGameState, res.Error)
	}
	return res.RowsAffected, nil
}
