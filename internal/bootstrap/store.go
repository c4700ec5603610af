package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SlotMaster_Go/internal/config"
	"github.com/osse101/SlotMaster_Go/internal/database"
	"github.com/osse101/SlotMaster_Go/internal/database/memory"
	"github.com/osse101/SlotMaster_Go/internal/database/postgres"
	"github.com/osse101/SlotMaster_Go/internal/database/sqlite"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// OpenStore builds the configured persistence backend. Postgres schemas are migrated before use.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	var (
		store repository.Store
		err   error
	)

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		store, err = openPostgres(ctx, cfg)
	case config.DriverSQLite:
		store, err = sqlite.Open(cfg.SQLitePath)
	case config.DriverMemory:
		store = memory.NewStore()
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}

	slog.Info(LogMsgStoreOpened, "driver", store.Driver())
	return store, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return postgres.NewStore(pool), nil
}
