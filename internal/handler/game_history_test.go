package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SlotMaster_Go/internal/domain"
)

var sampleResult = domain.DailyResult{
	ID:           7,
	UserID:       "user_alice",
	GameDate:     "2024-03-10",
	FinalBalance: 5100,
	SpinsCount:   9,
	BiggestWin:   250,
	CreatedAt:    time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
}

func TestHandleUpsertDailyResult(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		setupMock      func(*MockReconcileService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Created",
			requestBody: `{"userId":"user_alice","gameDate":"2024-03-10","finalBalance":5100,"spinsCount":9,"biggestWin":250,"createdAt":"2024-03-10 11:59:00"}`,
			setupMock: func(m *MockReconcileService) {
				m.On("UpsertDailyResult", mock.Anything, domain.DailyResultInput{
					UserID:       "user_alice",
					GameDate:     "2024-03-10",
					FinalBalance: 5100,
					SpinsCount:   9,
					BiggestWin:   250,
				}).Return(domain.ActionCreated, &sampleResult, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"action":"created","id":7}`,
		},
		{
			name:        "Updated",
			requestBody: DailyResultRequest{UserID: "user_alice", GameDate: "2024-03-10", SpinsCount: 3},
			setupMock: func(m *MockReconcileService) {
				m.On("UpsertDailyResult", mock.Anything, mock.Anything).Return(domain.ActionUpdated, &sampleResult, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"action":"updated"`,
		},
		{
			name:           "Missing gameDate",
			requestBody:    DailyResultRequest{UserID: "user_alice"},
			setupMock:      func(m *MockReconcileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"gameDate":"This field is required"`,
		},
		{
			name:           "Bad gameDate",
			requestBody:    DailyResultRequest{UserID: "user_alice", GameDate: "10.03.2024"},
			setupMock:      func(m *MockReconcileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"gameDate":"Must be a date formatted YYYY-MM-DD"`,
		},
		{
			name:           "Negative spins",
			requestBody:    DailyResultRequest{UserID: "user_alice", GameDate: "2024-03-10", SpinsCount: -1},
			setupMock:      func(m *MockReconcileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"spinsCount"`,
		},
		{
			name:        "Conflict after retry",
			requestBody: DailyResultRequest{UserID: "user_alice", GameDate: "2024-03-10"},
			setupMock: func(m *MockReconcileService) {
				m.On("UpsertDailyResult", mock.Anything, mock.Anything).Return(domain.UpsertAction(""), nil, domain.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgConflictError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockReconcileService{}
			tt.setupMock(mockSvc)

			rec := serveRoute(t, http.MethodPost, "/game-history", "/game-history", tt.requestBody, HandleUpsertDailyResult(mockSvc))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleGetTodayResult(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		mockSvc := &MockReconcileService{}
		mockSvc.On("TodayResult", mock.Anything, "user_alice").Return(&sampleResult, nil)

		rec := serveRoute(t, http.MethodGet, "/game-history/{userId}/today", "/game-history/user_alice/today", nil, HandleGetTodayResult(mockSvc))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []domain.DailyResult
		decodeBody(t, rec, &got)
		assert.Len(t, got, 1)
		assert.Equal(t, int64(9), got[0].SpinsCount)
	})

	t.Run("Absent", func(t *testing.T) {
		mockSvc := &MockReconcileService{}
		mockSvc.On("TodayResult", mock.Anything, "user_alice").Return(nil, nil)

		rec := serveRoute(t, http.MethodGet, "/game-history/{userId}/today", "/game-history/user_alice/today", nil, HandleGetTodayResult(mockSvc))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})
}

func TestHandleGetRecentHistory(t *testing.T) {
	t.Run("Default window", func(t *testing.T) {
		mockSvc := &MockReconcileService{}
		mockSvc.On("ListRecentHistory", mock.Anything, "user_alice", domain.DefaultHistoryDays).
			Return([]domain.DailyResult{sampleResult}, nil)

		rec := serveRoute(t, http.MethodGet, "/game-history/{userId}", "/game-history/user_alice", nil, HandleGetRecentHistory(mockSvc))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"gameDate":"2024-03-10"`)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Custom window", func(t *testing.T) {
		mockSvc := &MockReconcileService{}
		mockSvc.On("ListRecentHistory", mock.Anything, "user_alice", 30).Return([]domain.DailyResult{}, nil)

		rec := serveRoute(t, http.MethodGet, "/game-history/{userId}", "/game-history/user_alice?days=30", nil, HandleGetRecentHistory(mockSvc))

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Invalid window", func(t *testing.T) {
		mockSvc := &MockReconcileService{}

		rec := serveRoute(t, http.MethodGet, "/game-history/{userId}", "/game-history/user_alice?days=abc", nil, HandleGetRecentHistory(mockSvc))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidDays)
	})
}

func TestHandleClearHistory(t *testing.T) {
	mockSvc := &MockReconcileService{}
	mockSvc.On("ClearHistory", mock.Anything, "user_alice").Return(int64(4), nil)

	rec := serveRoute(t, http.MethodDelete, "/game-history/{userId}", "/game-history/user_alice", nil, HandleClearHistory(mockSvc))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"deletedCount":4}`, rec.Body.String())
}
