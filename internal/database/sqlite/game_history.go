package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// GetDailyResult loads the record for one user and day
func (s *Store) GetDailyResult(ctx context.Context, userID, gameDate string) (*domain.DailyResult, error) {
	return getDailyResult(s.db.WithContext(ctx), userID, gameDate)
}

// ListDailyResultsBetween returns records dated within [fromDate, toDate], newest date first
func (s *Store) ListDailyResultsBetween(ctx context.Context, userID, fromDate, toDate string, limit int) ([]domain.DailyResult, error) {
	var ms []dailyResultModel
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND game_date BETWEEN ? AND ?", userID, fromDate, toDate).
		Order("game_date DESC").
		Limit(limit).
		Find(&ms).Error
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToListDailyResults, err)
	}
	return dailyResultsFromModels(ms), nil
}

// DeleteUserHistory removes every record of a user
func (s *Store) DeleteUserHistory(ctx context.Context, userID string) (int64, error) {
	return deleteUserHistory(s.db.WithContext(ctx), userID)
}

// LatestActiveUserID returns the owner of the most recently written record
func (s *Store) LatestActiveUserID(ctx context.Context) (string, error) {
	var m dailyResultModel
	err := s.db.WithContext(ctx).
		Select("user_id").
		Order("created_at DESC, id DESC").
		Limit(1).
		Take(&m).Error
	if err != nil {
		return "", wrapStoreErr(ErrMsgFailedToGetLatestActivity, err)
	}
	return m.UserID, nil
}

type activeUserRow struct {
	UserID       string
	LastActivity int64
	Balance      *int64
}

// ListRecentlyActiveUsers returns users ordered by their latest history write
func (s *Store) ListRecentlyActiveUsers(ctx context.Context, limit int) ([]domain.UserSummary, error) {
	var rows []activeUserRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT h.user_id AS user_id, MAX(h.created_at) AS last_activity, gs.balance AS balance
		FROM game_history h
		LEFT JOIN game_state gs ON gs.user_id = h.user_id
		GROUP BY h.user_id, gs.balance
		ORDER BY last_activity DESC, h.user_id ASC
		LIMIT ?
	`, limit).Scan(&rows).Error
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToListActiveUsers, err)
	}

	users := make([]domain.UserSummary, 0, len(rows))
	for _, r := range rows {
		users = append(users, domain.UserSummary{
			UserID:       r.UserID,
			UserName:     domain.DisplayNameFromUserID(r.UserID),
			Balance:      r.Balance,
			LastActivity: fromMillis(r.LastActivity),
		})
	}
	return users, nil
}

// BeginHistoryTx starts a read-modify-write transaction over daily records
func (s *Store) BeginHistoryTx(ctx context.Context) (repository.HistoryTx, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &historyTx{gormTx: tx}, nil
}

type historyTx struct {
	gormTx
}

// GetDailyResultForUpdate needs no row lock: the single connection already excludes other writers
func (t *historyTx) GetDailyResultForUpdate(ctx context.Context, userID, gameDate string) (*domain.DailyResult, error) {
	return getDailyResult(t.tx.WithContext(ctx), userID, gameDate)
}

func (t *historyTx) InsertDailyResult(ctx context.Context, result *domain.DailyResult) error {
	m := dailyResultToModel(result)
	m.ID = 0
	if err := t.tx.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s %s", domain.ErrConflict, result.UserID, result.GameDate)
		}
		return wrapStoreErr(ErrMsgFailedToInsertDailyResult, err)
	}
	result.ID = m.ID
	return nil
}

func (t *historyTx) UpdateDailyResult(ctx context.Context, result *domain.DailyResult) error {
	res := t.tx.WithContext(ctx).Model(&dailyResultModel{}).
		Where("id = ?", result.ID).
		Updates(map[string]any{
			"final_balance": result.FinalBalance,
			"spins_count":   result.SpinsCount,
			"biggest_win":   result.BiggestWin,
			"created_at":    toMillis(result.CreatedAt),
		})
	if res.Error != nil {
		return wrapStoreErr(ErrMsgFailedToUpdateDailyResult, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: daily result %d", domain.ErrNotFound, result.ID)
	}
	return nil
}

func getDailyResult(db *gorm.DB, userID, gameDate string) (*domain.DailyResult, error) {
	var m dailyResultModel
	if err := db.Where("user_id = ? AND game_date = ?", userID, gameDate).Take(&m).Error; err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToGetDailyResult, err)
	}
	r := dailyResultFromModel(m)
	return &r, nil
}

func deleteUserHistory(db *gorm.DB, userID string) (int64, error) {
	res := db.Where("user_id = ?", userID).Delete(&dailyResultModel{})
	if res.Error != nil {
		return 0, wrapStoreErr(ErrMsgFailedToDeleteHistory, res.Error)
	}
	return res.RowsAffected, nil
}
