package postgres

import (
	"context"

	"github.com/goccy/go-json"

	"github.com/osse101/SlotMaster_Go/internal/domain"
)

const gameStateColumns = `user_id, balance, spins_count, biggest_win, visited_locations, selected_lines, last_shake_time, updated_at`

// SaveGameState inserts the snapshot or replaces every column of the existing one
func (s *Store) SaveGameState(ctx context.Context, state *domain.GameState) error {
	locations, err := encodeLocations(state.VisitedLocations)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO game_state (`+gameStateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET
			balance = EXCLUDED.balance,
			spins_count = EXCLUDED.spins_count,
			biggest_win = EXCLUDED.biggest_win,
			visited_locations = EXCLUDED.visited_locations,
			selected_lines = EXCLUDED.selected_lines,
			last_shake_time = EXCLUDED.last_shake_time,
			updated_at = EXCLUDED.updated_at
	`, state.UserID, state.Balance, state.SpinsCount, state.BiggestWin, locations,
		state.SelectedLines, state.LastShakeTime, state.UpdatedAt)
	if err != nil {
		return wrapStoreErr(ErrMsgFailedToSaveGameState, err)
	}
	return nil
}

// GetGameState loads a snapshot; domain.ErrNotFound when none was ever saved
func (s *Store) GetGameState(ctx context.Context, userID string) (*domain.GameState, error) {
	row := s.db.QueryRow(ctx, `SELECT `+gameStateColumns+` FROM game_state WHERE user_id = $1`, userID)
	state, err := scanGameState(row)
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToGetGameState, err)
	}
	return state, nil
}

// InsertGameStateIfAbsent writes the snapshot only when the user has none
func (s *Store) InsertGameStateIfAbsent(ctx context.Context, state *domain.GameState) (bool, error) {
	return insertGameStateIfAbsent(ctx, s.db, state)
}

// ListGameStates returns every snapshot, highest balance first
func (s *Store) ListGameStates(ctx context.Context) ([]domain.GameState, error) {
	rows, err := s.db.Query(ctx, `SELECT `+gameStateColumns+` FROM game_state ORDER BY balance DESC, user_id ASC`)
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToListGameStates, err)
	}
	defer rows.Close()

	states := []domain.GameState{}
	for rows.Next() {
		state, err := scanGameState(rows)
		if err != nil {
			return nil, wrapStoreErr(ErrMsgFailedToListGameStates, err)
		}
		states = append(states, *state)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToListGameStates, err)
	}
	return states, nil
}

func insertGameStateIfAbsent(ctx context.Context, q querier, state *domain.GameState) (bool, error) {
	locations, err := encodeLocations(state.VisitedLocations)
	if err != nil {
		return false, err
	}

	tag, err := q.Exec(ctx, `
		INSERT INTO game_state (`+gameStateColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO NOTHING
	`, state.UserID, state.Balance, state.SpinsCount, state.BiggestWin, locations,
		state.SelectedLines, state.LastShakeTime, state.UpdatedAt)
	if err != nil {
		return false, wrapStoreErr(ErrMsgFailedToInsertGameState, err)
	}
	return tag.RowsAffected() == 1, nil
}

func deleteGameState(ctx context.Context, q querier, userID string) (bool, error) {
	tag, err := q.Exec(ctx, `DELETE FROM game_state WHERE user_id = $1`, userID)
	if err != nil {
		return false, wrapStoreErr(ErrMsgFailedToDeleteGameState, err)
	}
	return tag.RowsAffected() > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGameState(row rowScanner) (*domain.GameState, error) {
	var (
		state     domain.GameState
		locations []byte
	)
	if err := row.Scan(&state.UserID, &state.Balance, &state.SpinsCount, &state.BiggestWin,
		&locations, &state.SelectedLines, &state.LastShakeTime, &state.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(locations, &state.VisitedLocations); err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToDecodeLocations, err)
	}
	if state.VisitedLocations == nil {
		state.VisitedLocations = []bool{}
	}
	return &state, nil
}

func encodeLocations(locations []bool) ([]byte, error) {
	if locations == nil {
		locations = []bool{}
	}
	data, err := json.Marshal(locations)
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToEncodeLocations, err)
	}
	return data, nil
}
