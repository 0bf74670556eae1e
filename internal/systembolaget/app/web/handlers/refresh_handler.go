package handlers

import (
	"io"
	"net/http"
	"time"

	"gosystembolaget_api/internal/systembolaget/business/services/update"
	"gosystembolaget_api/pkg/logger"
)

type RefreshHandler struct {
	service *update.RefreshService
	log     logger.Logger
}

func NewRefreshHandler(service *update.RefreshService, writer io.Writer) *RefreshHandler {
	return &RefreshHandler{service: service, log: logger.NewLogger(writer, "[web]")}
}

type refreshResponse struct {
	CycleID          string `json:"cycle_id"`
	DurationMillis   int64  `json:"duration_millis"`
	Products         int    `json:"products"`
	Sites            int    `json:"sites"`
	Junctions        int    `json:"junctions"`
	JunctionsSkipped int    `json:"junctions_skipped"`
	Error            string `json:"error,omitempty"`
}

// TriggerHandler runs one refresh cycle synchronously. It waits for a
// scheduled cycle already in progress, so responses can take a while.
func (h *RefreshHandler) TriggerHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result := h.service.RunCycle(r.Context())

	resp := refreshResponse{
		CycleID:          result.CycleID,
		DurationMillis:   result.Duration.Milliseconds(),
		Products:         result.Products,
		Sites:            result.Sites,
		Junctions:        result.Junctions,
		JunctionsSkipped: result.JunctionsSkipped,
	}
	w.Header().Set("Content-Type", "application/json")
	if !result.Succeeded() {
		resp.Error = result.Err.Error()
		w.WriteHeader(http.StatusBadGateway)
	}
	writeJSON(w, h.log, resp)
}

// HealthHandler reports process liveness and the latest refresh
// counters.
func (h *RefreshHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Stats()
	writeJSON(w, h.log, map[string]interface{}{
		"status":                "ok",
		"time":                  time.Now().UTC().Format(time.RFC3339),
		"cycles_run":            stats.CyclesRun.Load(),
		"cycles_failed":         stats.CyclesFailed.Load(),
		"last_product_count":    stats.LastProductCount.Load(),
		"last_site_count":       stats.LastSiteCount.Load(),
		"last_junction_count":   stats.LastJunctionCount.Load(),
		"last_junction_skipped": stats.LastJunctionSkipped.Load(),
	})
}
