package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/SlotMaster_Go/internal/clock"
	"github.com/osse101/SlotMaster_Go/internal/concurrency"
	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/logger"
	"github.com/osse101/SlotMaster_Go/internal/metrics"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// Service reconciles client writes of snapshots and daily results
type Service interface {
	SaveSnapshot(ctx context.Context, state *domain.GameState) error
	LoadSnapshot(ctx context.Context, userID string) (*domain.GameState, error)

	UpsertDailyResult(ctx context.Context, in domain.DailyResultInput) (domain.UpsertAction, *domain.DailyResult, error)
	HasTodayResult(ctx context.Context, userID string) (bool, error)
	TodayResult(ctx context.Context, userID string) (*domain.DailyResult, error)
	ListRecentHistory(ctx context.Context, userID string, days int) ([]domain.DailyResult, error)
	ClearHistory(ctx context.Context, userID string) (int64, error)

	// Today is the game date of the current instant in the configured time zone
	Today() string
}

// Repository is the subset of the store reconciliation needs
type Repository interface {
	SaveGameState(ctx context.Context, state *domain.GameState) error
	GetGameState(ctx context.Context, userID string) (*domain.GameState, error)

	GetDailyResult(ctx context.Context, userID, gameDate string) (*domain.DailyResult, error)
	ListDailyResultsBetween(ctx context.Context, userID, fromDate, toDate string, limit int) ([]domain.DailyResult, error)
	DeleteUserHistory(ctx context.Context, userID string) (int64, error)
	BeginHistoryTx(ctx context.Context) (repository.HistoryTx, error)
}

// Config holds the game rules snapshots are validated against
type Config struct {
	Location        *time.Location
	TargetLocations int
	MaxLines        int
}

type service struct {
	repo  Repository
	clock clock.Clock
	locks *concurrency.LockManager
	cfg   Config
}

// NewService creates a new reconciliation service
func NewService(repo Repository, clk clock.Clock, locks *concurrency.LockManager, cfg Config) Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.TargetLocations <= 0 {
		cfg.TargetLocations = domain.DefaultTargetLocations
	}
	if cfg.MaxLines <= 0 {
		cfg.MaxLines = domain.DefaultMaxLines
	}
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &service{repo: repo, clock: clk, locks: locks, cfg: cfg}
}

func (s *service) Today() string {
	return clock.GameDate(s.clock.Now(), s.cfg.Location)
}

// SaveSnapshot validates and overwrites the user's snapshot. The caller's UpdatedAt is ignored.
func (s *service) SaveSnapshot(ctx context.Context, state *domain.GameState) error {
	if err := s.normalizeSnapshot(state); err != nil {
		return err
	}
	state.UpdatedAt = s.clock.Now()

	if err := s.repo.SaveGameState(ctx, state); err != nil {
		return fmt.Errorf("failed to save game state: %w", err)
	}

	metrics.SnapshotsSaved.Inc()
	logger.FromContext(ctx).Debug(LogMsgSnapshotSaved, "user_id", state.UserID, "balance", state.Balance)
	return nil
}

// LoadSnapshot returns domain.ErrNotFound for users that never saved
func (s *service) LoadSnapshot(ctx context.Context, userID string) (*domain.GameState, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgUserIDRequired)
	}
	return s.repo.GetGameState(ctx, userID)
}

func (s *service) normalizeSnapshot(state *domain.GameState) error {
	if state == nil || state.UserID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgUserIDRequired)
	}
	if state.SelectedLines < 1 || state.SelectedLines > s.cfg.MaxLines {
		return fmt.Errorf("%w: %s: %d not in [1, %d]", domain.ErrInvalidArgument, ErrMsgSelectedLinesRange, state.SelectedLines, s.cfg.MaxLines)
	}
	if state.SpinsCount < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeSpins)
	}
	if state.BiggestWin < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeBiggestWin)
	}
	switch len(state.VisitedLocations) {
	case 0:
		state.VisitedLocations = make([]bool, s.cfg.TargetLocations)
	case s.cfg.TargetLocations:
	default:
		return fmt.Errorf("%w: %s: got %d, want %d", domain.ErrInvalidArgument, ErrMsgVisitedLocationsArity, len(state.VisitedLocations), s.cfg.TargetLocations)
	}
	return nil
}

// UpsertDailyResult creates or merges the record for (UserID, GameDate).
// Writers of the same key in this process are serialized by the lock manager;
// writers in other processes are caught by the store's row lock or unique constraint.
func (s *service) UpsertDailyResult(ctx context.Context, in domain.DailyResultInput) (domain.UpsertAction, *domain.DailyResult, error) {
	log := logger.FromContext(ctx)

	if err := validateDailyInput(in); err != nil {
		return "", nil, err
	}

	unlock := s.locks.Lock(in.UserID + lockKeySeparator + in.GameDate)
	defer unlock()

	for attempt := 1; attempt <= MaxUpsertAttempts; attempt++ {
		action, result, err := s.upsertOnce(ctx, in)
		if err == nil {
			metrics.DailyResultUpserts.WithLabelValues(string(action)).Inc()
			log.Debug(LogMsgDailyResultUpsert, "user_id", in.UserID, "game_date", in.GameDate, "action", action)
			return action, result, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return "", nil, err
		}
		metrics.DailyResultUpsertRetries.Inc()
		log.Warn(LogMsgUpsertConflict, "user_id", in.UserID, "game_date", in.GameDate, "attempt", attempt)
	}

	return "", nil, fmt.Errorf("%w: %s", domain.ErrConflict, ErrMsgUpsertRetriesExceeded)
}

func (s *service) upsertOnce(ctx context.Context, in domain.DailyResultInput) (domain.UpsertAction, *domain.DailyResult, error) {
	tx, err := s.repo.BeginHistoryTx(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to begin daily result upsert: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	now := s.clock.Now()
	var action domain.UpsertAction
	var result domain.DailyResult

	existing, err := tx.GetDailyResultForUpdate(ctx, in.UserID, in.GameDate)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		result = domain.NewDailyResult(in, now)
		if err := tx.InsertDailyResult(ctx, &result); err != nil {
			return "", nil, err
		}
		action = domain.ActionCreated
	case err != nil:
		return "", nil, err
	default:
		s.recordStaleFields(ctx, *existing, in)
		result = domain.MergeDailyResult(*existing, in, now)
		if err := tx.UpdateDailyResult(ctx, &result); err != nil {
			return "", nil, err
		}
		action = domain.ActionUpdated
	}

	if err := tx.Commit(ctx); err != nil {
		return "", nil, fmt.Errorf("failed to commit daily result: %w", err)
	}
	return action, &result, nil
}

// recordStaleFields counts incoming counters that fell behind the stored ones
func (s *service) recordStaleFields(ctx context.Context, existing domain.DailyResult, in domain.DailyResultInput) {
	if in.SpinsCount < existing.SpinsCount {
		metrics.DailyResultStaleWrites.WithLabelValues(metrics.FieldSpinsCount).Inc()
		logger.FromContext(ctx).Debug(LogMsgStaleWrite, "user_id", in.UserID, "field", metrics.FieldSpinsCount,
			"stored", existing.SpinsCount, "incoming", in.SpinsCount)
	}
	if in.BiggestWin < existing.BiggestWin {
		metrics.DailyResultStaleWrites.WithLabelValues(metrics.FieldBiggestWin).Inc()
		logger.FromContext(ctx).Debug(LogMsgStaleWrite, "user_id", in.UserID, "field", metrics.FieldBiggestWin,
			"stored", existing.BiggestWin, "incoming", in.BiggestWin)
	}
}

func validateDailyInput(in domain.DailyResultInput) error {
	if in.UserID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgUserIDRequired)
	}
	if _, err := time.Parse(domain.GameDateLayout, in.GameDate); err != nil {
		return fmt.Errorf("%w: %s: %q", domain.ErrInvalidArgument, ErrMsgGameDateInvalid, in.GameDate)
	}
	if in.SpinsCount < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeSpins)
	}
	if in.BiggestWin < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeBiggestWin)
	}
	return nil
}

func (s *service) HasTodayResult(ctx context.Context, userID string) (bool, error) {
	r, err := s.TodayResult(ctx, userID)
	if err != nil {
		return false, err
	}
	return r != nil, nil
}

// TodayResult returns nil without error when today has no record yet
func (s *service) TodayResult(ctx context.Context, userID string) (*domain.DailyResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgUserIDRequired)
	}
	r, err := s.repo.GetDailyResult(ctx, userID, s.Today())
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// ListRecentHistory returns at most days records from the trailing window ending today, newest first.
// Records a client dated after today are left out.
func (s *service) ListRecentHistory(ctx context.Context, userID string, days int) ([]domain.DailyResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgUserIDRequired)
	}
	if days <= 0 {
		days = domain.DefaultHistoryDays
	}

	today := s.Today()
	from, err := clock.DaysBefore(today, days-1)
	if err != nil {
		return nil, err
	}
	results, err := s.repo.ListDailyResultsBetween(ctx, userID, from, today, days)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []domain.DailyResult{}
	}
	return results, nil
}

// ClearHistory deletes every daily record of the user. The snapshot is kept.
func (s *service) ClearHistory(ctx context.Context, userID string) (int64, error) {
	if userID == "" {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgUserIDRequired)
	}
	n, err := s.repo.DeleteUserHistory(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgHistoryCleared, "user_id", userID, "deleted", n)
	return n, nil
}
