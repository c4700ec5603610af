package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/SlotMaster_Go/internal/domain"
)

func TestHandleGetRanking(t *testing.T) {
	entries := []domain.RankingEntry{
		{Rank: 1, UserID: "user_bob", UserName: "bob", Balance: 9000},
		{Rank: 2, UserID: "user_alice", UserName: "alice", Balance: 7000},
	}

	tests := []struct {
		name           string
		target         string
		setupMock      func(*MockRankingService)
		expectedStatus int
	}{
		{
			name:   "All players",
			target: "/ranking",
			setupMock: func(m *MockRankingService) {
				m.On("Leaderboard", mock.Anything, 0).Return(entries, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Limited",
			target: "/ranking?limit=1",
			setupMock: func(m *MockRankingService) {
				m.On("Leaderboard", mock.Anything, 1).Return(entries[:1], nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Negative limit",
			target:         "/ranking?limit=-3",
			setupMock:      func(m *MockRankingService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Service error",
			target: "/ranking",
			setupMock: func(m *MockRankingService) {
				m.On("Leaderboard", mock.Anything, 0).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := &MockRankingService{}
			tt.setupMock(mockSvc)

			rec := serveRoute(t, http.MethodGet, "/ranking", tt.target, nil, HandleGetRanking(mockSvc))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}
