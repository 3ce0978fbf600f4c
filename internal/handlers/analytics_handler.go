package handlers

import (
	"net/http"
	"strconv"

	"github.com/Varun5711/taskhub/internal/analytics"
	"github.com/Varun5711/taskhub/internal/logger"
	"github.com/Varun5711/taskhub/internal/middleware"
)

type AnalyticsHandler struct {
	analyticsService *analytics.Service
	log              *logger.Logger
}

func NewAnalyticsHandler(service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: service,
		log:              logger.New("analytics-handler"),
	}
}

func (h *AnalyticsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	summary, err := h.analyticsService.GetSummary(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to get activity summary: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (h *AnalyticsHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	limit := 50
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 && l <= 1000 {
			limit = l
		}
	}

	entries, err := h.analyticsService.GetRecent(r.Context(), userID, limit)
	if err != nil {
		h.log.Error("Failed to get recent activity: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"activity": entries,
		"total":    len(entries),
	})
}
