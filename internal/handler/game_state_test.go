package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SlotMaster_Go/internal/domain"
)

func TestHandleSaveGameState(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    any
		setupMock      func(*MockReconcileService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			requestBody: GameStateRequest{
				UserID:           "user_alice",
				Balance:          4200,
				SpinsCount:       12,
				BiggestWin:       300,
				VisitedLocations: []bool{true, false, false},
				SelectedLines:    3,
				LastShakeTime:    1710072000000,
			},
			setupMock: func(m *MockReconcileService) {
				m.On("SaveSnapshot", mock.Anything, mock.MatchedBy(func(s *domain.GameState) bool {
					return s.UserID == "user_alice" && s.Balance == 4200 && s.SelectedLines == 3 &&
						len(s.VisitedLocations) == 3 && s.VisitedLocations[0]
				})).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true}`,
		},
		{
			name:           "Missing userId",
			requestBody:    GameStateRequest{Balance: 1},
			setupMock:      func(m *MockReconcileService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"userId":"This field is required"`,
		},
		{
			name:        "Rejected by rules",
			requestBody: GameStateRequest{UserID: "user_alice", SelectedLines: 9},
			setupMock: func(m *MockReconcileService) {
				m.On("SaveSnapshot", mock.Anything, mock.Anything).
					Return(fmt.Errorf("%w: selectedLines out of range", domain.ErrInvalidArgument))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "selectedLines out of range",
		},
		{
			name:        "Store down",
			requestBody: GameStateRequest{UserID: "user_alice", SelectedLines: 1},
			setupMock: func(m *MockReconcileService) {
				m.On("SaveSnapshot", mock.Anything, mock.Anything).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   ErrMsgGenericServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockReconcileService{}
			tt.setupMock(mockSvc)

			rec := serveRoute(t, http.MethodPost, "/game-state", "/game-state", tt.requestBody, HandleSaveGameState(mockSvc))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleGetGameState(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockSvc := &MockReconcileService{}
		mockSvc.On("LoadSnapshot", mock.Anything, "user_alice").Return(&domain.GameState{
			UserID:           "user_alice",
			Balance:          4200,
			VisitedLocations: []bool{false, true, false},
			SelectedLines:    2,
			UpdatedAt:        time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
		}, nil)

		rec := serveRoute(t, http.MethodGet, "/game-state/{userId}", "/game-state/user_alice", nil, HandleGetGameState(mockSvc))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got map[string]any
		decodeBody(t, rec, &got)
		assert.Equal(t, float64(4200), got["balance"])
		assert.Equal(t, []any{false, true, false}, got["visitedLocations"])
		assert.Equal(t, float64(2), got["selectedLines"])
	})

	t.Run("Not found is not defaulted", func(t *testing.T) {
		mockSvc := &MockReconcileService{}
		mockSvc.On("LoadSnapshot", mock.Anything, "user_nobody").
			Return(nil, fmt.Errorf("%w: game state user_nobody", domain.ErrNotFound))

		rec := serveRoute(t, http.MethodGet, "/game-state/{userId}", "/game-state/user_nobody", nil, HandleGetGameState(mockSvc))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"Game state not found"}`, rec.Body.String())
	})

	t.Run("Store down", func(t *testing.T) {
		mockSvc := &MockReconcileService{}
		mockSvc.On("LoadSnapshot", mock.Anything, "user_alice").
			Return(nil, fmt.Errorf("%w: timeout", domain.ErrStoreUnavailable))

		rec := serveRoute(t, http.MethodGet, "/game-state/{userId}", "/game-state/user_alice", nil, HandleGetGameState(mockSvc))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
