package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
	"github.com/osse101/SlotMaster_Go/internal/testing/storetest"
)

func newMemoryStore(t *testing.T) repository.Store {
	t.Helper()
	s, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestStore(t *testing.T) {
	storetest.Run(t, newMemoryStore)
}

func TestOpen_FilePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slotmaster.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	state := domain.NewDefaultGameState("user_alice", 3)
	require.NoError(t, s.SaveGameState(ctx, &state))
	s.Close()

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.GetGameState(ctx, "user_alice")
	require.NoError(t, err)
	assert.Equal(t, int64(domain.DefaultBalance), got.Balance)
	assert.Equal(t, []bool{false, false, false}, got.VisitedLocations)
	assert.Equal(t, DriverName, reopened.Driver())
	assert.NoError(t, reopened.Ping(ctx))
}

func TestWrapStoreErr(t *testing.T) {
	assert.ErrorIs(t, wrapStoreErr("lookup", gorm.ErrRecordNotFound), domain.ErrNotFound)

	cause := errors.New("disk I/O error")
	err := wrapStoreErr("write", cause)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: users.username")))
	assert.False(t, isUniqueViolation(errors.New("database is locked")))
}
