package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

const dailyResultColumns = `id, user_id, to_char(game_date, '` + dateFormat + `'), final_balance, spins_count, biggest_win, created_at`

// GetDailyResult loads the record for one user and day
func (s *Store) GetDailyResult(ctx context.Context, userID, gameDate string) (*domain.DailyResult, error) {
	return getDailyResult(ctx, s.db, userID, gameDate, false)
}

// ListDailyResultsBetween returns records dated within [fromDate, toDate], newest date first
func (s *Store) ListDailyResultsBetween(ctx context.Context, userID, fromDate, toDate string, limit int) ([]domain.DailyResult, error) {
	from, err := parseGameDate(fromDate)
	if err != nil {
		return nil, err
	}
	to, err := parseGameDate(toDate)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT `+dailyResultColumns+`
		FROM game_history
		WHERE user_id = $1 AND game_date >= $2 AND game_date <= $3
		ORDER BY game_date DESC
		LIMIT $4
	`, userID, from, to, limit)
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToListDailyResults, err)
	}
	return collectDailyResults(rows)
}

// DeleteUserHistory removes every record of a user
func (s *Store) DeleteUserHistory(ctx context.Context, userID string) (int64, error) {
	return deleteUserHistory(ctx, s.db, userID)
}

// LatestActiveUserID returns the owner of the most recently written record
func (s *Store) LatestActiveUserID(ctx context.Context) (string, error) {
	var userID string
	err := s.db.QueryRow(ctx, `
		SELECT user_id FROM game_history
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`).Scan(&userID)
	if err != nil {
		return "", wrapStoreErr(ErrMsgFailedToGetLatestActivity, err)
	}
	return userID, nil
}

// ListRecentlyActiveUsers returns users ordered by their latest history write
func (s *Store) ListRecentlyActiveUsers(ctx context.Context, limit int) ([]domain.UserSummary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT h.user_id, MAX(h.created_at) AS last_activity, gs.balance
		FROM game_history h
		LEFT JOIN game_state gs ON gs.user_id = h.user_id
		GROUP BY h.user_id, gs.balance
		ORDER BY last_activity DESC, h.user_id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToListActiveUsers, err)
	}
	defer rows.Close()

	users := []domain.UserSummary{}
	for rows.Next() {
		var u domain.UserSummary
		if err := rows.Scan(&u.UserID, &u.LastActivity, &u.Balance); err != nil {
			return nil, wrapStoreErr(ErrMsgFailedToListActiveUsers, err)
		}
		u.UserName = domain.DisplayNameFromUserID(u.UserID)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToListActiveUsers, err)
	}
	return users, nil
}

// BeginHistoryTx starts a read-modify-write transaction over daily records
func (s *Store) BeginHistoryTx(ctx context.Context) (repository.HistoryTx, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &historyTx{pgxTx: tx}, nil
}

type historyTx struct {
	pgxTx
}

func (t *historyTx) GetDailyResultForUpdate(ctx context.Context, userID, gameDate string) (*domain.DailyResult, error) {
	return getDailyResult(ctx, t.tx, userID, gameDate, true)
}

func (t *historyTx) InsertDailyResult(ctx context.Context, result *domain.DailyResult) error {
	date, err := parseGameDate(result.GameDate)
	if err != nil {
		return err
	}

	err = t.tx.QueryRow(ctx, `
		INSERT INTO game_history (user_id, game_date, final_balance, spins_count, biggest_win, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, result.UserID, date, result.FinalBalance, result.SpinsCount, result.BiggestWin, result.CreatedAt).Scan(&result.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s %s", domain.ErrConflict, result.UserID, result.GameDate)
		}
		return wrapStoreErr(ErrMsgFailedToInsertDailyResult, err)
	}
	return nil
}

func (t *historyTx) UpdateDailyResult(ctx context.Context, result *domain.DailyResult) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE game_history
		SET final_balance = $2, spins_count = $3, biggest_win = $4, created_at = $5
		WHERE id = $1
	`, result.ID, result.FinalBalance, result.SpinsCount, result.BiggestWin, result.CreatedAt)
	if err != nil {
		return wrapStoreErr(ErrMsgFailedToUpdateDailyResult, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: daily result %d", domain.ErrNotFound, result.ID)
	}
	return nil
}

func getDailyResult(ctx context.Context, q querier, userID, gameDate string, forUpdate bool) (*domain.DailyResult, error) {
	date, err := parseGameDate(gameDate)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + dailyResultColumns + ` FROM game_history WHERE user_id = $1 AND game_date = $2`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var r domain.DailyResult
	err = q.QueryRow(ctx, query, userID, date).Scan(
		&r.ID, &r.UserID, &r.GameDate, &r.FinalBalance, &r.SpinsCount, &r.BiggestWin, &r.CreatedAt)
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToGetDailyResult, err)
	}
	return &r, nil
}

func deleteUserHistory(ctx context.Context, q querier, userID string) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM game_history WHERE user_id = $1`, userID)
	if err != nil {
		return 0, wrapStoreErr(ErrMsgFailedToDeleteHistory, err)
	}
	return tag.RowsAffected(), nil
}

func collectDailyResults(rows pgx.Rows) ([]domain.DailyResult, error) {
	defer rows.Close()

	results := []domain.DailyResult{}
	for rows.Next() {
		var r domain.DailyResult
		if err := rows.Scan(&r.ID, &r.UserID, &r.GameDate, &r.FinalBalance, &r.SpinsCount, &r.BiggestWin, &r.CreatedAt); err != nil {
			return nil, wrapStoreErr(ErrMsgFailedToListDailyResults, err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToListDailyResults, err)
	}
	return results, nil
}
