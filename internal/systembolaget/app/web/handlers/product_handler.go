package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"gosystembolaget_api/internal/systembolaget/business/models"
	"gosystembolaget_api/internal/systembolaget/business/models/dto/request"
	"gosystembolaget_api/pkg/logger"
)

// ProductLister is the read surface the product endpoints need.
type ProductLister interface {
	SelectFiltered(ctx context.Context, filter *request.ProductFilter) ([]models.Product, error)
}

type ProductHandler struct {
	repo ProductLister
	log  logger.Logger
}

func NewProductHandler(repo ProductLister, writer io.Writer) *ProductHandler {
	return &ProductHandler{repo: repo, log: logger.NewLogger(writer, "[web]")}
}

// GetTopHandler serves the filtered, apk-ordered product listing.
func (h *ProductHandler) GetTopHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter, err := request.ParseProductFilter(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	products, err := h.repo.SelectFiltered(r.Context(), filter)
	if err != nil {
		var verr *request.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusBadRequest)
			return
		}
		h.log.Log("Caught error responding to product query: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.log, products)
}

func writeJSON(w http.ResponseWriter, log logger.Logger, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Log("Failed to encode response: %v", err)
	}
}
