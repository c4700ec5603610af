package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// FindCredential returns the credential matching both username and password digest
func (s *Store) FindCredential(ctx context.Context, username, passwordHash string) (*domain.Credential, error) {
	var c domain.Credential
	err := s.db.QueryRow(ctx, `
		SELECT username, password, created
		FROM users
		WHERE username = $1 AND password = $2
	`, username, passwordHash).Scan(&c.Username, &c.PasswordHash, &c.Created)
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToFindCredential, err)
	}
	return &c, nil
}

// CredentialExists reports whether the username is taken
func (s *Store) CredentialExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, wrapStoreErr(ErrMsgFailedToCheckCredential, err)
	}
	return exists, nil
}

// BeginIdentityTx starts a registration transaction
func (s *Store) BeginIdentityTx(ctx context.Context) (repository.IdentityTx, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &identityTx{pgxTx: tx}, nil
}

type identityTx struct {
	pgxTx
}

func (t *identityTx) InsertCredential(ctx context.Context, cred *domain.Credential) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO users (username, password, created)
		VALUES ($1, $2, $3)
	`, cred.Username, cred.PasswordHash, cred.Created)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateUser, cred.Username)
		}
		return wrapStoreErr(ErrMsgFailedToInsertCredential, err)
	}
	return nil
}

func (t *identityTx) InsertGameStateIfAbsent(ctx context.Context, state *domain.GameState) (bool, error) {
	return insertGameStateIfAbsent(ctx, t.tx, state)
}
