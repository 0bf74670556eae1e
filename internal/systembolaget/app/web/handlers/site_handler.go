package handlers

import (
	"context"
	"io"
	"net/http"

	"gosystembolaget_api/internal/systembolaget/business/models"
	"gosystembolaget_api/internal/systembolaget/business/models/dto/response"
	"gosystembolaget_api/pkg/logger"
)

// StoreLister is the read surface the site endpoints need.
type StoreLister interface {
	SelectStores(ctx context.Context) ([]models.Site, error)
}

type SiteHandler struct {
	repo StoreLister
	log  logger.Logger
}

func NewSiteHandler(repo StoreLister, writer io.Writer) *SiteHandler {
	return &SiteHandler{repo: repo, log: logger.NewLogger(writer, "[web]")}
}

// GetSiteNamesHandler lists stores with a non-empty name as trimmed
// {SiteId, SiteName} views.
func (h *SiteHandler) GetSiteNamesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sites, err := h.repo.SelectStores(r.Context())
	if err != nil {
		h.log.Log("Caught error responding to site names query: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	names := make([]response.SiteName, 0, len(sites))
	for _, site := range sites {
		if site.Name == "" {
			continue
		}
		names = append(names, response.SiteName{SiteID: site.SiteID, SiteName: site.Name})
	}

	writeJSON(w, h.log, names)
}
