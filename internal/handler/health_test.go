package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SlotMaster_Go/internal/clock"
)

// MockStorePinger mocks the database.Pool interface
type MockStorePinger struct {
	mock.Mock
}

func (m *MockStorePinger) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStorePinger) Close() {
	m.Called()
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Store reachable", func(t *testing.T) {
		mockStore := &MockStorePinger{}
		mockStore.On("Ping", mock.Anything).Return(nil)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(mockStore).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		mockStore.AssertExpectations(t)
	})

	t.Run("Store unreachable", func(t *testing.T) {
		mockStore := &MockStorePinger{}
		mockStore.On("Ping", mock.Anything).Return(assert.AnError)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(mockStore).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		mockStore.AssertExpectations(t)
	})
}

func TestHandleStatus(t *testing.T) {
	clk := clock.NewSimulatedClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))

	req := httptest.NewRequest("GET", "/status", nil)
	w := httptest.NewRecorder()

	HandleStatus("sqlite", clk).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","message":"SlotMaster API is running","timestamp":"2024-03-10T12:00:00Z","store":"sqlite"}`, w.Body.String())
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest("GET", "/version", nil)
	w := httptest.NewRecorder()

	HandleVersion().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"go_version"`)
}
