package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// Store implements repository.Store on an embedded SQLite database through gorm.
// All access goes through a single connection, which serializes writers.
type Store struct {
	db *gorm.DB
}

var _ repository.Store = (*Store)(nil)

// Open opens (or creates) the database at path and migrates the schema.
// Use MemoryPath for a throwaway database.
func Open(path string) (*Store, error) {
	dsn := path
	if path != MemoryPath {
		dsn += fileDSNParams
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             SlowQueryThreshold,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}
	// An in-memory database lives exactly as long as its connection
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := db.AutoMigrate(&userModel{}, &gameStateModel{}, &dailyResultModel{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	slog.Default().Info(LogMsgOpened, "path", path)
	return &Store{db: db}, nil
}

// Driver returns the backend name
func (s *Store) Driver() string {
	return DriverName
}

// Ping checks that the database file is reachable
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection
func (s *Store) Close() {
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (s *Store) begin(ctx context.Context) (gormTx, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return gormTx{}, wrapStoreErr(ErrMsgFailedToBeginTransaction, tx.Error)
	}
	return gormTx{tx: tx}, nil
}

// gormTx adapts a gorm transaction to repository.Tx
type gormTx struct {
	tx *gorm.DB
}

func (t gormTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit().Error; err != nil {
		if isTxClosed(err) {
			return domain.ErrTxClosed
		}
		return wrapStoreErr(ErrMsgFailedToCommit, err)
	}
	return nil
}

func (t gormTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback().Error; err != nil {
		if isTxClosed(err) {
			return domain.ErrTxClosed
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToRollback, err)
	}
	return nil
}

func isTxClosed(err error) bool {
	return errors.Is(err, sql.ErrTxDone) || errors.Is(err, gorm.ErrInvalidTransaction)
}

// wrapStoreErr classifies a gorm error the same way the postgres store classifies pgx errors
func wrapStoreErr(msg string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, msg, err)
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}
