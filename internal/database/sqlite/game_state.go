package sqlite

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/osse101/SlotMaster_Go/internal/domain"
)

// SaveGameState inserts the snapshot or replaces every column of the existing one
func (s *Store) SaveGameState(ctx context.Context, state *domain.GameState) error {
	m, err := gameStateToModel(state)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(&m).Error
	if err != nil {
		return wrapStoreErr(ErrMsgFailedToSaveGameState, err)
	}
	return nil
}

// GetGameState loads a snapshot; domain.ErrNotFound when none was ever saved
func (s *Store) GetGameState(ctx context.Context, userID string) (*domain.GameState, error) {
	var m gameStateModel
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Take(&m).Error; err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToGetGameState, err)
	}
	return gameStateFromModel(m)
}

// InsertGameStateIfAbsent writes the snapshot only when the user has none
func (s *Store) InsertGameStateIfAbsent(ctx context.Context, state *domain.GameState) (bool, error) {
	return insertGameStateIfAbsent(s.db.WithContext(ctx), state)
}

// ListGameStates returns every snapshot, highest balance first
func (s *Store) ListGameStates(ctx context.Context) ([]domain.GameState, error) {
	var ms []gameStateModel
	if err := s.db.WithContext(ctx).Order("balance DESC, user_id ASC").Find(&ms).Error; err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToListGameStates, err)
	}

	states := make([]domain.GameState, 0, len(ms))
	for _, m := range ms {
		state, err := gameStateFromModel(m)
		if err != nil {
			return nil, err
		}
		states = append(states, *state)
	}
	return states, nil
}

func insertGameStateIfAbsent(db *gorm.DB, state *domain.GameState) (bool, error) {
	m, err := gameStateToModel(state)
	if err != nil {
		return false, err
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
	if res.Error != nil {
		return false, wrapStoreErr(ErrMsgFailedToInsertGameState, res.Error)
	}
	return res.RowsAffected == 1, nil
}

func deleteGameState(db *gorm.DB, userID string) (bool, error) {
	res := db.Where("user_id = ?", userID).Delete(&gameStateModel{})
	if res.Error != nil {
		return false, wrapStoreErr(ErrMsgFailedToDeleteGameState, res.Error)
	}
	return res.RowsAffected > 0, nil
}
