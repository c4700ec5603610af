package repository

import (
	"context"

	"github.com/osse101/SlotMaster_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// IdentityTx groups the writes that make up a registration
type IdentityTx interface {
	Tx

	// InsertCredential returns domain.ErrDuplicateUser when the username is taken
	InsertCredential(ctx context.Context, cred *domain.Credential) error
	InsertGameStateIfAbsent(ctx context.Context, state *domain.GameState) (bool, error)
}

// HistoryTx is a read-modify-write transaction over one daily record
type HistoryTx interface {
	Tx

	// GetDailyResultForUpdate locks the (userID, gameDate) row; domain.ErrNotFound when absent
	GetDailyResultForUpdate(ctx context.Context, userID, gameDate string) (*domain.DailyResult, error)
	// InsertDailyResult returns domain.ErrConflict when another writer created the row first
	InsertDailyResult(ctx context.Context, result *domain.DailyResult) error
	UpdateDailyResult(ctx context.Context, result *domain.DailyResult) error
}

// AdminTx groups multi-table deletes: one user's data, or all game data
type AdminTx interface {
	Tx

	DeleteUserHistory(ctx context.Context, userID string) (int64, error)
	DeleteGameState(ctx context.Context, userID string) (bool, error)
	DeleteCredential(ctx context.Context, username string) (bool, error)

	DeleteAllHistory(ctx context.Context) (int64, error)
	DeleteAllGameStates(ctx context.Context) (int64, error)
}
