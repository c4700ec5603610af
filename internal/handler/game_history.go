package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SlotMaster_Go/internal/domain"
	"github.com/osse101/SlotMaster_Go/internal/logger"
	"github.com/osse101/SlotMaster_Go/internal/reconcile"
)

// DailyResultRequest is one client contribution to a day's summary.
// CreatedAt is accepted for compatibility with older clients and ignored.
type DailyResultRequest struct {
	UserID       string `json:"userId" validate:"required"`
	GameDate     string `json:"gameDate" validate:"required,gamedate"`
	FinalBalance int64  `json:"finalBalance"`
	SpinsCount   int64  `json:"spinsCount" validate:"gte=0"`
	BiggestWin   int64  `json:"biggestWin" validate:"gte=0"`
	CreatedAt    any    `json:"createdAt,omitempty" swaggertype:"string"`
}

// UpsertResponse reports what the daily upsert did
type UpsertResponse struct {
	Success bool                `json:"success"`
	Action  domain.UpsertAction `json:"action"`
	ID      int64               `json:"id"`
}

// HandleGetTodayResult returns today's record as a zero or one element list
// @Summary Today's daily record
// @Tags game-history
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {array} domain.DailyResult
// @Failure 500 {object} ErrorResponse
// @Router /game-history/{userId}/today [get]
func HandleGetTodayResult(svc reconcile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.TodayResult(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			respondServiceError(w, r, "Get today's result", err)
			return
		}

		results := []domain.DailyResult{}
		if result != nil {
			results = append(results, *result)
		}
		respondJSON(w, http.StatusOK, results)
	}
}

// HandleGetRecentHistory returns the trailing daily records, newest first
// @Summary Recent daily records
// @Tags game-history
// @Produce json
// @Param userId path string true "User ID"
// @Param days query int false "Window in days (default 7)"
// @Success 200 {array} domain.DailyResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /game-history/{userId} [get]
func HandleGetRecentHistory(svc reconcile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, ok := getIntQueryParam(w, r, "days", domain.DefaultHistoryDays, ErrMsgInvalidDays)
		if !ok {
			return
		}

		results, err := svc.ListRecentHistory(r.Context(), chi.URLParam(r, "userId"), days)
		if err != nil {
			respondServiceError(w, r, "Get recent history", err)
			return
		}
		respondJSON(w, http.StatusOK, results)
	}
}

// HandleUpsertDailyResult creates or merges the (user, day) record
// @Summary Upsert daily result
// @Description Counters keep their maximum, the balance follows the latest write
// @Tags game-history
// @Accept json
// @Produce json
// @Param request body DailyResultRequest true "Daily result"
// @Success 200 {object} UpsertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /game-history [post]
func HandleUpsertDailyResult(svc reconcile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DailyResultRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Upsert daily result"); err != nil {
			return
		}

		action, result, err := svc.UpsertDailyResult(writeContext(r), domain.DailyResultInput{
			UserID:       req.UserID,
			GameDate:     req.GameDate,
			FinalBalance: req.FinalBalance,
			SpinsCount:   req.SpinsCount,
			BiggestWin:   req.BiggestWin,
		})
		if err != nil {
			respondServiceError(w, r, "Upsert daily result", err)
			return
		}

		logger.FromContext(r.Context()).Info("Daily result saved",
			"user_id", req.UserID, "game_date", req.GameDate, "action", action)
		respondJSON(w, http.StatusOK, UpsertResponse{Success: true, Action: action, ID: result.ID})
	}
}

// HandleClearHistory deletes every daily record of a user
// @Summary Clear user history
// @Tags game-history
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} DeletedResponse
// @Failure 500 {object} ErrorResponse
// @Router /game-history/{userId} [delete]
func HandleClearHistory(svc reconcile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.ClearHistory(writeContext(r), chi.URLParam(r, "userId"))
		if err != nil {
			respondServiceError(w, r, "Clear history", err)
			return
		}
		respondJSON(w, http.StatusOK, DeletedResponse{Success: true, DeletedCount: n})
	}
}
