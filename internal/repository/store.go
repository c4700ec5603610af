package repository

import (
	"context"

	"github.com/osse101/SlotMaster_Go/internal/domain"
)

// Credentials defines the interface for credential persistence
type Credentials interface {
	// FindCredential matches the exact (username, digest) pair; domain.ErrNotFound otherwise
	FindCredential(ctx context.Context, username, passwordHash string) (*domain.Credential, error)
	CredentialExists(ctx context.Context, username string) (bool, error)

	BeginIdentityTx(ctx context.Context) (IdentityTx, error)
}

// GameStates defines the interface for snapshot persistence
type GameStates interface {
	// SaveGameState inserts or replaces the whole snapshot
	SaveGameState(ctx context.Context, state *domain.GameState) error
	// GetGameState returns domain.ErrNotFound when the user has never saved
	GetGameState(ctx context.Context, userID string) (*domain.GameState, error)
	InsertGameStateIfAbsent(ctx context.Context, state *domain.GameState) (bool, error)
	ListGameStates(ctx context.Context) ([]domain.GameState, error)
}

// History defines the interface for daily result persistence
type History interface {
	GetDailyResult(ctx context.Context, userID, gameDate string) (*domain.DailyResult, error)
	// ListDailyResultsBetween returns rows with fromDate <= game_date <= toDate, newest date first
	ListDailyResultsBetween(ctx context.Context, userID, fromDate, toDate string, limit int) ([]domain.DailyResult, error)
	DeleteUserHistory(ctx context.Context, userID string) (int64, error)

	// LatestActiveUserID returns the user of the most recently written record; domain.ErrNotFound on an empty table
	LatestActiveUserID(ctx context.Context) (string, error)
	ListRecentlyActiveUsers(ctx context.Context, limit int) ([]domain.UserSummary, error)

	BeginHistoryTx(ctx context.Context) (HistoryTx, error)
}

// Maintenance defines bulk and diagnostic operations over the history table
type Maintenance interface {
	HistoryStats(ctx context.Context) (*domain.HistoryStats, error)
	ListLatestDailyResults(ctx context.Context, limit int) ([]domain.DailyResult, error)
	DeleteDailyResult(ctx context.Context, id int64) error
	DeleteHistoryBefore(ctx context.Context, gameDate string) (int64, error)

	BeginAdminTx(ctx context.Context) (AdminTx, error)
}

// Store is a complete persistence backend
type Store interface {
	Credentials
	GameStates
	History
	Maintenance

	Driver() string
	Ping(ctx context.Context) error
	Close()
}
