// Package memory is a volatile repository.Store used for demos and service tests.
package memory

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/repository"
)

// DriverName identifies this backend in health and status output
const DriverName = "memory"

// Operation names accepted by Fail
const (
	OpFindCredential          = "FindCredential"
	OpCredentialExists        = "CredentialExists"
	OpInsertCredential        = "InsertCredential"
	OpInsertGameStateIfAbsent = "InsertGameStateIfAbsent"
	OpSaveGameState           = "SaveGameState"
	OpGetGameState            = "GetGameState"
	OpListGameStates          = "ListGameStates"
	OpGetDailyResult          = "GetDailyResult"
	OpInsertDailyResult       = "InsertDailyResult"
	OpUpdateDailyResult       = "UpdateDailyResult"
	OpListDailyResults        = "ListDailyResults"
	OpDeleteHistory           = "DeleteHistory"
	OpLatestActiveUserID      = "LatestActiveUserID"
	OpListActiveUsers         = "ListRecentlyActiveUsers"
	OpHistoryStats            = "HistoryStats"
	OpBeginTx                 = "BeginTx"
	OpCommit                  = "Commit"
	OpPing                    = "Ping"
)

// tables is one consistent copy of the data
type tables struct {
	users   map[string]domain.Credential
	states  map[string]domain.GameState
	history map[int64]domain.DailyResult
	nextID  int64
}

func (t *tables) clone() *tables {
	return &tables{
		users:   maps.Clone(t.users),
		states:  maps.Clone(t.states),
		history: maps.Clone(t.history),
		nextID:  t.nextID,
	}
}

// Store keeps all data in maps. Transactions work on a private copy that replaces the
// live tables on commit; writers (transactional or not) are serialized by writeMu.
type Store struct {
	writeMu sync.Mutex

	mu       sync.RWMutex
	data     *tables
	failures map[string]error
}

var _ repository.Store = (*Store)(nil)

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		data: &tables{
			users:   map[string]domain.Credential{},
			states:  map[string]domain.GameState{},
			history: map[int64]domain.DailyResult{},
		},
		failures: map[string]error{},
	}
}

// Fail makes every later call of op return err until Heal is called
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// Heal clears all injected failures
func (s *Store) Heal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.failures)
}

func (s *Store) injected(op string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err, ok := s.failures[op]; ok {
		return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, op, err)
	}
	return nil
}

// Driver returns the backend name
func (s *Store) Driver() string {
	return DriverName
}

// Ping succeeds unless a failure was injected
func (s *Store) Ping(ctx context.Context) error {
	return s.injected(OpPing)
}

// Close is a no-op
func (s *Store) Close() {}

// read runs fn against the committed tables
func (s *Store) read(fn func(t *tables)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.data)
}

// write runs fn against the committed tables as a single-statement transaction
func (s *Store) write(fn func(t *tables)) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}

func (s *Store) begin(ctx context.Context) (*memTx, error) {
	if err := s.injected(OpBeginTx); err != nil {
		return nil, err
	}
	s.writeMu.Lock()
	s.mu.RLock()
	work := s.data.clone()
	s.mu.RUnlock()
	return &memTx{store: s, work: work}, nil
}

// memTx holds writeMu from begin until commit or rollback
type memTx struct {
	store  *Store
	work   *tables
	closed bool
}

func (t *memTx) Commit(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	if err := t.store.injected(OpCommit); err != nil {
		t.finish()
		return err
	}
	t.store.mu.Lock()
	t.store.data = t.work
	t.store.mu.Unlock()
	t.finish()
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	t.finish()
	return nil
}

func (t *memTx) finish() {
	t.closed = true
	t.work = nil
	t.store.writeMu.Unlock()
}

func (t *memTx) check(op string) error {
	if t.closed {
		return domain.ErrTxClosed
	}
	return t.store.injected(op)
}

// ---- Credentials ----

// FindCredential returns the credential matching both username and password digest
func (s *Store) FindCredential(ctx context.Context, username, passwordHash string) (*domain.Credential, error) {
	if err := s.injected(OpFindCredential); err != nil {
		return nil, err
	}
	var (
		cred domain.Credential
		ok   bool
	)
	s.read(func(t *tables) { cred, ok = t.users[username] })
	if !ok || cred.PasswordHash != passwordHash {
		return nil, fmt.Errorf("%w: credential %s", domain.ErrNotFound, username)
	}
	return &cred, nil
}

// CredentialExists reports whether the username is taken
func (s *Store) CredentialExists(ctx context.Context, username string) (bool, error) {
	if err := s.injected(OpCredentialExists); err != nil {
		return false, err
	}
	var ok bool
	s.read(func(t *tables) { _, ok = t.users[username] })
	return ok, nil
}

// BeginIdentityTx starts a registration transaction
func (s *Store) BeginIdentityTx(ctx context.Context) (repository.IdentityTx, error) {
	return s.begin(ctx)
}

func (t *memTx) InsertCredential(ctx context.Context, cred *domain.Credential) error {
	if err := t.check(OpInsertCredential); err != nil {
		return err
	}
	if _, ok := t.work.users[cred.Username]; ok {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateUser, cred.Username)
	}
	t.work.users[cred.Username] = *cred
	return nil
}

func (t *memTx) InsertGameStateIfAbsent(ctx context.Context, state *domain.GameState) (bool, error) {
	if err := t.check(OpInsertGameStateIfAbsent); err != nil {
		return false, err
	}
	return insertStateIfAbsent(t.work, state), nil
}

// ---- Game states ----

// SaveGameState inserts or replaces the snapshot
func (s *Store) SaveGameState(ctx context.Context, state *domain.GameState) error {
	if err := s.injected(OpSaveGameState); err != nil {
		return err
	}
	s.write(func(t *tables) { t.states[state.UserID] = copyState(*state) })
	return nil
}

// GetGameState loads a snapshot; domain.ErrNotFound when none was ever saved
func (s *Store) GetGameState(ctx context.Context, userID string) (*domain.GameState, error) {
	if err := s.injected(OpGetGameState); err != nil {
		return nil, err
	}
	var (
		state domain.GameState
		ok    bool
	)
	s.read(func(t *tables) { state, ok = t.states[userID] })
	if !ok {
		return nil, fmt.Errorf("%w: game state %s", domain.ErrNotFound, userID)
	}
	state = copyState(state)
	return &state, nil
}

// InsertGameStateIfAbsent writes the snapshot only when the user has none
func (s *Store) InsertGameStateIfAbsent(ctx context.Context, state *domain.GameState) (bool, error) {
	if err := s.injected(OpInsertGameStateIfAbsent); err != nil {
		return false, err
	}
	var inserted bool
	s.write(func(t *tables) { inserted = insertStateIfAbsent(t, state) })
	return inserted, nil
}

// ListGameStates returns every snapshot, highest balance first
func (s *Store) ListGameStates(ctx context.Context) ([]domain.GameState, error) {
	if err := s.injected(OpListGameStates); err != nil {
		return nil, err
	}
	var states []domain.GameState
	s.read(func(t *tables) {
		states = make([]domain.GameState, 0, len(t.states))
		for _, st := range t.states {
			states = append(states, copyState(st))
		}
	})
	slices.SortFunc(states, func(a, b domain.GameState) int {
		if a.Balance != b.Balance {
			if a.Balance > b.Balance {
				return -1
			}
			return 1
		}
		return strings.Compare(a.UserID, b.UserID)
	})
	return states, nil
}

func insertStateIfAbsent(t *tables, state *domain.GameState) bool {
	if _, ok := t.states[state.UserID]; ok {
		return false
	}
	t.states[state.UserID] = copyState(*state)
	return true
}

func copyState(s domain.GameState) domain.GameState {
	s.VisitedLocations = slices.Clone(s.VisitedLocations)
	if s.VisitedLocations == nil {
		s.VisitedLocations = []bool{}
	}
	return s
}
