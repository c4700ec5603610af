package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SlotMaster_Go/internal/admin"
	"github.com/osse101/SlotMaster_Go/internal/domain"
)

// HandleAdminStats aggregates the history table
// @Summary History statistics
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} domain.HistoryStats
// @Failure 500 {object} ErrorResponse
// @Router /admin/stats [get]
func HandleAdminStats(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			respondServiceError(w, r, "Admin stats", err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}

// HandleAdminRecords lists the latest written records across users
// @Summary Latest records
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum records (default 10)"
// @Success 200 {array} domain.DailyResult
// @Failure 500 {object} ErrorResponse
// @Router /admin/records [get]
func HandleAdminRecords(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := getIntQueryParam(w, r, "limit", admin.DefaultRecentRecords, ErrMsgInvalidLimit)
		if !ok {
			return
		}

		records, err := svc.RecentRecords(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, "Admin records", err)
			return
		}
		respondJSON(w, http.StatusOK, records)
	}
}

// HandleAdminDeleteRecord deletes one daily record
// @Summary Delete record
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Record ID"
// @Success 200 {object} DeletedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /admin/records/{id} [delete]
func HandleAdminDeleteRecord(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRecordID)
			return
		}

		if err := svc.DeleteRecord(writeContext(r), id); err != nil {
			respondServiceError(w, r, "Delete record", err)
			return
		}
		respondJSON(w, http.StatusOK, DeletedResponse{Success: true, DeletedCount: 1})
	}
}

// HandleAdminPurgeUser removes all data of a user
// @Summary Purge user
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param userId path string true "User ID"
// @Success 200 {object} domain.PurgeResult
// @Failure 500 {object} ErrorResponse
// @Router /admin/users/{userId} [delete]
func HandleAdminPurgeUser(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.PurgeUser(writeContext(r), chi.URLParam(r, "userId"))
		if err != nil {
			respondServiceError(w, r, "Purge user", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// ClearAllResponse reports a full game-data clear
type ClearAllResponse struct {
	Success bool `json:"success"`
	domain.ClearResult
}

// HandleAdminClearAll deletes all daily records and snapshots
// @Summary Clear all game data
// @Description Deletes every daily record and every game state. Credentials are kept.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ClearAllResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/data [delete]
func HandleAdminClearAll(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.ClearAll(writeContext(r))
		if err != nil {
			respondServiceError(w, r, "Clear all data", err)
			return
		}
		respondJSON(w, http.StatusOK, ClearAllResponse{Success: true, ClearResult: *res})
	}
}

// HandleAdminClearOldHistory deletes history older than the given number of days
// @Summary Clear old history
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param days query int false "Age in days (default 7)"
// @Success 200 {object} DeletedResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/history/old [delete]
func HandleAdminClearOldHistory(svc admin.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, ok := getIntQueryParam(w, r, "days", domain.DefaultHistoryDays, ErrMsgInvalidDays)
		if !ok {
			return
		}

		n, err := svc.ClearOlderThan(writeContext(r), days)
		if err != nil {
			respondServiceError(w, r, "Clear old history", err)
			return
		}
		respondJSON(w, http.StatusOK, DeletedResponse{Success: true, DeletedCount: n})
	}
}
