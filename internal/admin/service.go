package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/SlotMaster_Go/internal/clock"
	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/logger"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// Service provides maintenance operations over all players' data
type Service interface {
	Stats(ctx context.Context) (*domain.HistoryStats, error)
	RecentRecords(ctx context.Context, limit int) ([]domain.DailyResult, error)
	DeleteRecord(ctx context.Context, id int64) error
	PurgeUser(ctx context.Context, userID string) (*domain.PurgeResult, error)
	// ClearAll deletes every daily record and every snapshot; credentials stay
	ClearAll(ctx context.Context) (*domain.ClearResult, error)
	// ClearOlderThan deletes history dated more than days before today
	ClearOlderThan(ctx context.Context, days int) (int64, error)
}

// Repository is the maintenance surface of the store
type Repository interface {
	repository.Maintenance
}

type service struct {
	repo  Repository
	clock clock.Clock
	loc   *time.Location
}

// NewService creates a new admin service. loc decides where "today" ends.
func NewService(repo Repository, clk clock.Clock, loc *time.Location) Service {
	if loc == nil {
		loc = time.UTC
	}
	return &service{repo: repo, clock: clk, loc: loc}
}

func (s *service) Stats(ctx context.Context) (*domain.HistoryStats, error) {
	return s.repo.HistoryStats(ctx)
}

// RecentRecords returns the latest written records across all users
func (s *service) RecentRecords(ctx context.Context, limit int) ([]domain.DailyResult, error) {
	if limit <= 0 {
		limit = DefaultRecentRecords
	}
	limit = min(limit, MaxRecentRecords)

	records, err := s.repo.ListLatestDailyResults(ctx, limit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domain.DailyResult{}
	}
	return records, nil
}

func (s *service) DeleteRecord(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgInvalidRecord)
	}
	if err := s.repo.DeleteDailyResult(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgRecordDeleted, "id", id)
	return nil
}

// PurgeUser removes history, snapshot and, for registered ids, the credential in one transaction
func (s *service) PurgeUser(ctx context.Context, userID string) (*domain.PurgeResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgUserIDRequired)
	}

	tx, err := s.repo.BeginAdminTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin purge: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	result := &domain.PurgeResult{UserID: userID}
	if result.HistoryDeleted, err = tx.DeleteUserHistory(ctx, userID); err != nil {
		return nil, err
	}
	if result.StateDeleted, err = tx.DeleteGameState(ctx, userID); err != nil {
		return nil, err
	}
	if username, ok := domain.UsernameFromUserID(userID); ok && username != "" {
		if result.CredentialDeleted, err = tx.DeleteCredential(ctx, username); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit purge: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgUserPurged,
		"user_id", userID,
		"history_deleted", result.HistoryDeleted,
		"state_deleted", result.StateDeleted,
		"credential_deleted", result.CredentialDeleted)
	return result, nil
}

func (s *service) ClearAll(ctx context.Context) (*domain.ClearResult, error) {
	tx, err := s.repo.BeginAdminTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin clear: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	result := &domain.ClearResult{}
	if result.HistoryDeleted, err = tx.DeleteAllHistory(ctx); err != nil {
		return nil, err
	}
	if result.StatesDeleted, err = tx.DeleteAllGameStates(ctx); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit clear: %w", err)
	}

	logger.FromContext(ctx).Warn(LogMsgAllDataCleared,
		"history_deleted", result.HistoryDeleted,
		"states_deleted", result.StatesDeleted)
	return result, nil
}

func (s *service) ClearOlderThan(ctx context.Context, days int) (int64, error) {
	if days < 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeDays)
	}

	cutoff, err := clock.DaysBefore(clock.GameDate(s.clock.Now(), s.loc), days)
	if err != nil {
		return 0, err
	}
	n, err := s.repo.DeleteHistoryBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Info(LogMsgOldHistory, "before", cutoff, "deleted", n)
	return n, nil
}
