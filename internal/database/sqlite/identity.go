package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// FindCredential returns the credential matching both username and password digest
func (s *Store) FindCredential(ctx context.Context, username, passwordHash string) (*domain.Credential, error) {
	var m userModel
	err := s.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, passwordHash).
		Take(&m).Error
	if err != nil {
		return nil, wrapStoreErr(ErrMsgFailedToFindCredential, err)
	}
	return credentialFromModel(m), nil
}

// CredentialExists reports whether the username is taken
func (s *Store) CredentialExists(ctx context.Context, username string) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&userModel{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return false, wrapStoreErr(ErrMsgFailedToCheckCredential, err)
	}
	return n > 0, nil
}

// BeginIdentityTx starts a registration transaction
func (s *Store) BeginIdentityTx(ctx context.Context) (repository.IdentityTx, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	return &identityTx{gormTx: tx}, nil
}

type identityTx struct {
	gormTx
}

func (t *identityTx) InsertCredential(ctx context.Context, cred *domain.Credential) error {
	m := userModel{Username: cred.Username, Password: cred.PasswordHash, Created: toMillis(cred.Created)}
	if err := t.tx.WithContext(ctx).Create(&m).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateUser, cred.Username)
		}
		return wrapStoreErr(ErrMsgFailedToInsertCredential, err)
	}
	return nil
}

func (t *identityTx) InsertGameStateIfAbsent(ctx context.Context, state *domain.GameState) (bool, error) {
	return insertGameStateIfAbsent(t.tx.WithContext(ctx), state)
}

func deleteCredential(db *gorm.DB, username string) (bool, error) {
	res := db.Where("username = ?", username).Delete(&userModel{})
	if res.Error != nil {
		return false, wrapStoreErr(ErrMsgFailedToDeleteCredential, res.Error)
	}
	return res.RowsAffected > 0, nil
}
