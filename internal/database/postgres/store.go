package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements repository.Store on PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

var _ repository.Store = (*Store)(nil)

// NewStore creates a new PostgreSQL backed store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Driver returns the backend name
func (s *Store) Driver() string {
	return DriverName
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// Close releases the pool
func (s *Store) Close() {
	s.db.Close()
}

func (s *Store) begin(ctx context.Context) (pgxTx, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return pgxTx{}, wrapStoreErr(ErrMsgFailedToBeginTransaction, err)
	}
	return pgxTx{tx: tx}, nil
}

// pgxTx adapts pgx.Tx to repository.Tx
type pgxTx struct {
	tx pgx.Tx
}

func (t pgxTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return wrapStoreErr(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t pgxTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return err
	}
	return nil
}

// wrapStoreErr classifies a driver error. Lookups that miss become domain.ErrNotFound,
// everything else is reported as domain.ErrStoreUnavailable with the original error attached.
func wrapStoreErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, msg, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// parseGameDate converts the domain date string into a DATE parameter
func parseGameDate(gameDate string) (time.Time, error) {
	d, err := time.Parse(domain.GameDateLayout, gameDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s %q", domain.ErrInvalidArgument, ErrMsgInvalidGameDate, gameDate)
	}
	return d, nil
}
