package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/osse101/SlotMaster_Go/internal/domain"
)

func TestWrapStoreErr(t *testing.T) {
	t.Run("no rows becomes not found", func(t *testing.T) {
		err := wrapStoreErr(ErrMsgFailedToGetGameState, pgx.ErrNoRows)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)
	})

	t.Run("driver error becomes unavailable and keeps cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := wrapStoreErr(ErrMsgFailedToSaveGameState, cause)
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), ErrMsgFailedToSaveGameState)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: PgErrorCodeUniqueViolation}))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: PgErrorCodeUniqueViolation})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("23505")))
}

func TestParseGameDate(t *testing.T) {
	d, err := parseGameDate("2024-02-29")
	assert.NoError(t, err)
	assert.Equal(t, 29, d.Day())

	_, err = parseGameDate("2024-13-01")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
