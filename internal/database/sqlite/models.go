package sqlite

import (
	"time"

	"github.com/goccy/go-json"

	"github.com/osse101/SlotMaster_Go/internal/domain"
)

// Timestamps are stored as unix milliseconds so that ordering and MAX() work on plain integers.
// Columns carry no gorm defaults: gorm omits zero values of defaulted fields on insert.

type userModel struct {
	Username string `gorm:"primaryKey;size:64"`
	Password string `gorm:"size:32;not null"`
	Created  int64  `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

type gameStateModel struct {
	UserID           string `gorm:"primaryKey;size:128"`
	Balance          int64  `gorm:"not null;index:idx_game_state_balance"`
	SpinsCount       int64  `gorm:"not null"`
	BiggestWin       int64  `gorm:"not null"`
	VisitedLocations string `gorm:"type:text;not null"`
	SelectedLines    int    `gorm:"not null"`
	LastShakeTime    int64  `gorm:"not null"`
	UpdatedAtMs      int64  `gorm:"column:updated_at;not null"`
}

func (gameStateModel) TableName() string { return "game_state" }

type dailyResultModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	UserID       string `gorm:"size:128;not null;uniqueIndex:idx_game_history_user_date,priority:1"`
	GameDate     string `gorm:"size:10;not null;uniqueIndex:idx_game_history_user_date,priority:2;index"`
	FinalBalance int64  `gorm:"not null"`
	SpinsCount   int64  `gorm:"not null"`
	BiggestWin   int64  `gorm:"not null"`
	CreatedAtMs  int64  `gorm:"column:created_at;not null;index"`
}

func (dailyResultModel) TableName() string { return "game_history" }

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func credentialFromModel(m userModel) *domain.Credential {
	return &domain.Credential{
		Username:     m.Username,
		PasswordHash: m.Password,
		Created:      fromMillis(m.Created),
	}
}

func gameStateToModel(s *domain.GameState) (gameStateModel, error) {
	locations := s.VisitedLocations
	if locations == nil {
		locations = []bool{}
	}
	data, err := json.Marshal(locations)
	if err != nil {
		return gameStateModel{}, wrapStoreErr(ErrMsgFailedToEncodeLocations, err)
	}
	return gameStateModel{
		UserID:           s.UserID,
		Balance:          s.Balance,
		SpinsCount:       s.SpinsCount,
		BiggestWin:       s.BiggestWin,
		VisitedLocations: string(data),
		SelectedLines:    s.SelectedLines,
		LastShakeTime:    s.LastShakeTime,
		UpdatedAtMs:      toMillis(s.UpdatedAt),
	}, nil
}

func gameStateFromModel(m gameStateModel) (*domain.GameState, error) {
	state := &domain.GameState{
		UserID:        m.UserID,
		Balance:       m.Balance,
		SpinsCount:    m.SpinsCount,
		BiggestWin:    m.BiggestWin,
		SelectedLines: m.SelectedLines,
		LastShakeTime: m.LastShakeTime,
		UpdatedAt:     fromMillis(m.UpdatedAtMs),
	}
	if err := json.Unmarshal([]byte(m.VisitedLocations), &state.VisitedLocations); err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToDecodeLocations, err)
	}
	if state.VisitedLocations == nil {
		state.VisitedLocations = []bool{}
	}
	return state, nil
}

func dailyResultToModel(r *domain.DailyResult) dailyResultModel {
	return dailyResultModel{
		ID:           r.ID,
		UserID:       r.UserID,
		GameDate:     r.GameDate,
		FinalBalance: r.FinalBalance,
		SpinsCount:   r.SpinsCount,
		BiggestWin:   r.BiggestWin,
		CreatedAtMs:  toMillis(r.CreatedAt),
	}
}

func dailyResultFromModel(m dailyResultModel) domain.DailyResult {
	return domain.DailyResult{
		ID:           m.ID,
		UserID:       m.UserID,
		GameDate:     m.GameDate,
		FinalBalance: m.FinalBalance,
		SpinsCount:   m.SpinsCount,
		BiggestWin:   m.BiggestWin,
		CreatedAt:    fromMillis(m.CreatedAtMs),
	}
}

func dailyResultsFromModels(ms []dailyResultModel) []domain.DailyResult {
	out := make([]domain.DailyResult, 0, len(ms))
	for _, m := range ms {
		out = append(out, dailyResultFromModel(m))
	}
	return out
}
