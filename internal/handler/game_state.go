package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/reconcile"
)

// GameStateRequest is a full snapshot pushed by the client
type GameStateRequest struct {
	UserID           string `json:"userId" validate:"required"`
	Balance          int64  `json:"balance"`
	SpinsCount       int64  `json:"spinsCount"`
	BiggestWin       int64  `json:"biggestWin"`
	VisitedLocations []bool `json:"visitedLocations"`
	SelectedLines    int    `json:"selectedLines"`
	LastShakeTime    int64  `json:"lastShakeTime"`
}

// HandleSaveGameState overwrites the caller's snapshot
// @Summary Save game state
// @Description Replaces the whole snapshot of a user (last write wins)
// @Tags game-state
// @Accept json
// @Produce json
// @Param request body GameStateRequest true "Snapshot"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /game-state [post]
func HandleSaveGameState(svc reconcile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GameStateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save game state"); err != nil {
			return
		}

		state := &domain.GameState{
			UserID:           req.UserID,
			Balance:          req.Balance,
			SpinsCount:       req.SpinsCount,
			BiggestWin:       req.BiggestWin,
			VisitedLocations: req.VisitedLocations,
			SelectedLines:    req.SelectedLines,
			LastShakeTime:    req.LastShakeTime,
		}
		if err := svc.SaveSnapshot(writeContext(r), state); err != nil {
			respondServiceError(w, r, "Save game state", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// HandleGetGameState returns the stored snapshot, never a default
// @Summary Load game state
// @Tags game-state
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} domain.GameState
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /game-state/{userId} [get]
func HandleGetGameState(svc reconcile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state, err := svc.LoadSnapshot(r.Context(), chi.URLParam(r, "userId"))
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, ErrMsgGameStateNotFound)
			return
		}
		if err != nil {
			respondServiceError(w, r, "Load game state", err)
			return
		}
		respondJSON(w, http.StatusOK, state)
	}
}
