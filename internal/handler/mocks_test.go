package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/SlotMaster_Go/internal/domain"
)

// MockIdentityService mocks identity.Service
type MockIdentityService struct {
	mock.Mock
}

func (m *MockIdentityService) ResolveOrCreateSharedID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityService) CreateUser(ctx context.Context, displayName string) (string, string, error) {
	args := m.Called(ctx, displayName)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockIdentityService) Register(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityService) CheckLoginAvailable(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityService) ListUsers(ctx context.Context) ([]domain.UserSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserSummary), args.Error(1)
}

// MockReconcileService mocks reconcile.Service
type MockReconcileService struct {
	mock.Mock
}

func (m *MockReconcileService) SaveSnapshot(ctx context.Context, state *domain.GameState) error {
	return m.Called(ctx, state).Error(0)
}

func (m *MockReconcileService) LoadSnapshot(ctx context.Context, userID string) (*domain.GameState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GameState), args.Error(1)
}

func (m *MockReconcileService) UpsertDailyResult(ctx context.Context, in domain.DailyResultInput) (domain.UpsertAction, *domain.DailyResult, error) {
	args := m.Called(ctx, in)
	if args.Get(1) == nil {
		return args.Get(0).(domain.UpsertAction), nil, args.Error(2)
	}
	return args.Get(0).(domain.UpsertAction), args.Get(1).(*domain.DailyResult), args.Error(2)
}

func (m *MockReconcileService) HasTodayResult(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReconcileService) TodayResult(ctx context.Context, userID string) (*domain.DailyResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyResult), args.Error(1)
}

func (m *MockReconcileService) ListRecentHistory(ctx context.Context, userID string, days int) ([]domain.DailyResult, error) {
	args := m.Called(ctx, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyResult), args.Error(1)
}

func (m *MockReconcileService) ClearHistory(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReconcileService) Today() string {
	return m.Called().String(0)
}

// MockRankingService mocks ranking.Service
type MockRankingService struct {
	mock.Mock
}

func (m *MockRankingService) Leaderboard(ctx context.Context, limit int) ([]domain.RankingEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankingEntry), args.Error(1)
}

// MockAdminService mocks admin.Service
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Stats(ctx context.Context) (*domain.HistoryStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoryStats), args.Error(1)
}

func (m *MockAdminService) RecentRecords(ctx context.Context, limit int) ([]domain.DailyResult, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyResult), args.Error(1)
}

func (m *MockAdminService) DeleteRecord(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminService) PurgeUser(ctx context.Context, userID string) (*domain.PurgeResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurgeResult), args.Error(1)
}

func (m *MockAdminService) ClearAll(ctx context.Context) (*domain.ClearResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClearResult), args.Error(1)
}

func (m *MockAdminService) ClearOlderThan(ctx context.Context, days int) (int64, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(int64), args.Error(1)
}

// serveRoute mounts h at pattern so chi URL params resolve, then serves one request.
// A string body is sent verbatim, anything else is JSON encoded.
func serveRoute(t *testing.T, method, pattern, target string, body any, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	router := chi.NewRouter()
	router.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorder's JSON body into v
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
