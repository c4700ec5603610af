package handler

import (
	"net/http"

	"github.com/osse101/SlotMaster_Go/internal/ranking"
)

// HandleGetRanking returns the balance leaderboard
// @Summary Balance ranking
// @Tags ranking
// @Produce json
// @Param limit query int false "Maximum entries (0 = all)"
// @Success 200 {array} domain.RankingEntry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /ranking [get]
func HandleGetRanking(svc ranking.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := getIntQueryParam(w, r, "limit", 0, ErrMsgInvalidLimit)
		if !ok {
			return
		}

		entries, err := svc.Leaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "Get ranking", err)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}
