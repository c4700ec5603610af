package identity

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/SlotMaster_Go/internal/clock"
	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/logger"
	"github.com/osse101/SlotMaster_Go/internal/metrics"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// Service issues and validates user identifiers. It is decoupled from authentication:
// guests, registered users and the shared fallback identity all use the same id space.
type Service interface {
	ResolveOrCreateSharedID(ctx context.Context) (string, error)
	CreateUser(ctx context.Context, displayName string) (userID, userName string, err error)
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	CheckLoginAvailable(ctx context.Context, username string) (bool, error)
	ListUsers(ctx context.Context) ([]domain.UserSummary, error)
}

// Repository is the subset of the store the identity service needs
type Repository interface {
	FindCredential(ctx context.Context, username, passwordHash string) (*domain.Credential, error)
	CredentialExists(ctx context.Context, username string) (bool, error)
	BeginIdentityTx(ctx context.Context) (repository.IdentityTx, error)
	InsertGameStateIfAbsent(ctx context.Context, state *domain.GameState) (bool, error)
	LatestActiveUserID(ctx context.Context) (string, error)
	ListRecentlyActiveUsers(ctx context.Context, limit int) ([]domain.UserSummary, error)
}

type service struct {
	repo            Repository
	clock           clock.Clock
	targetLocations int
	lower           cases.Caser
}

// NewService creates a new identity service. targetLocations sizes the default snapshot.
func NewService(repo Repository, clk clock.Clock, targetLocations int) Service {
	if targetLocations <= 0 {
		targetLocations = domain.DefaultTargetLocations
	}
	return &service{
		repo:            repo,
		clock:           clk,
		targetLocations: targetLocations,
		lower:           cases.Lower(language.Und),
	}
}

// ResolveOrCreateSharedID returns the id of the latest history write, or a fresh timestamp id.
// Concurrent callers on an empty store may receive different ids.
func (s *service) ResolveOrCreateSharedID(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	userID, err := s.repo.LatestActiveUserID(ctx)
	if err == nil {
		log.Debug(LogMsgSharedIDReused, "user_id", userID)
		return userID, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return "", fmt.Errorf("failed to resolve shared user id: %w", err)
	}

	userID = domain.UserIDPrefix + s.timestamp()
	metrics.IdentityEvents.WithLabelValues(metrics.EventSharedIDCreated).Inc()
	log.Info(LogMsgSharedIDCreated, "user_id", userID)
	return userID, nil
}

// CreateUser derives a guest id from a display name. Nothing is persisted.
func (s *service) CreateUser(ctx context.Context, displayName string) (string, string, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return "", "", fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgDisplayNameRequired)
	}

	suffix := "_" + s.timestamp()
	// Lower-casing can expand a rune, so the bound is applied after sanitizing
	slug := s.sanitizeDisplayName(name)
	if room := domain.MaxUserIDLength - len(domain.UserIDPrefix) - len(suffix); len(slug) > room {
		slug = slug[:room]
	}
	userID := domain.UserIDPrefix + slug + suffix
	metrics.IdentityEvents.WithLabelValues(metrics.EventGuestCreated).Inc()
	logger.FromContext(ctx).Info(LogMsgGuestCreated, "user_id", userID)
	return userID, name, nil
}

// Register stores the credential and the default snapshot in one transaction
func (s *service) Register(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(username, password); err != nil {
		return "", err
	}
	if len(password) < MinPasswordLength {
		return "", fmt.Errorf("%w: %s (minimum %d characters)", domain.ErrInvalidArgument, domain.ErrMsgPasswordTooShort, MinPasswordLength)
	}

	now := s.clock.Now()
	userID := domain.RegisteredUserID(username)
	state := domain.NewDefaultGameState(userID, s.targetLocations)
	state.UpdatedAt = now

	tx, err := s.repo.BeginIdentityTx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin registration: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	err = tx.InsertCredential(ctx, &domain.Credential{
		Username:     username,
		PasswordHash: HashPassword(password),
		Created:      now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			metrics.IdentityEvents.WithLabelValues(metrics.EventRegisterDenied).Inc()
			log.Info(LogMsgRegisterDuplicate, "username", username)
		}
		return "", err
	}

	if _, err := tx.InsertGameStateIfAbsent(ctx, &state); err != nil {
		return "", fmt.Errorf("failed to initialize game state: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("failed to commit registration: %w", err)
	}

	metrics.IdentityEvents.WithLabelValues(metrics.EventRegistered).Inc()
	log.Info(LogMsgUserRegistered, "username", username, "user_id", userID)
	return userID, nil
}

// Login checks the credential and lazily creates the default snapshot
func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(username, password); err != nil {
		return "", err
	}

	if _, err := s.repo.FindCredential(ctx, username, HashPassword(password)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.IdentityEvents.WithLabelValues(metrics.EventLoginFailed).Inc()
			log.Info(LogMsgLoginFailed, "username", username)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	userID := domain.RegisteredUserID(username)
	state := domain.NewDefaultGameState(userID, s.targetLocations)
	state.UpdatedAt = s.clock.Now()

	// Initialize-if-missing; a failure here does not fail the login
	created, err := s.repo.InsertGameStateIfAbsent(ctx, &state)
	switch {
	case err != nil:
		log.Warn(LogMsgDefaultStateFailed, "user_id", userID, "error", err)
	case created:
		log.Info(LogMsgDefaultStateCreated, "user_id", userID)
	}

	metrics.IdentityEvents.WithLabelValues(metrics.EventLoggedIn).Inc()
	log.Info(LogMsgLoginSucceeded, "username", username)
	return userID, nil
}

// CheckLoginAvailable reports whether username is still free
func (s *service) CheckLoginAvailable(ctx context.Context, username string) (bool, error) {
	if username == "" {
		return false, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgUsernameRequired)
	}
	exists, err := s.repo.CredentialExists(ctx, username)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// ListUsers returns the most recently active users
func (s *service) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	return s.repo.ListRecentlyActiveUsers(ctx, RecentUsersLimit)
}

// HashPassword returns the hex md5 digest stored for a password.
// md5 is kept for compatibility with existing credential rows; it is not a secure password hash.
func HashPassword(password string) string {
	sum := md5.Sum([]byte(password))
	return hex.EncodeToString(sum[:])
}

func validateCredentials(username, password string) error {
	if username == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgUsernameRequired)
	}
	if password == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, domain.ErrMsgPasswordRequired)
	}
	return nil
}

// sanitizeDisplayName lower-cases name and replaces every character outside [a-z0-9]
func (s *service) sanitizeDisplayName(name string) string {
	lowered := s.lower.String(name)
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(idReplacement)
		}
	}
	return b.String()
}

func (s *service) timestamp() string {
	return strconv.FormatInt(s.clock.Now().UnixMilli(), 10)
}
