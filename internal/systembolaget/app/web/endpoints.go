package web

import (
	"net/http"

	"gosystembolaget_api/internal/systembolaget/app/web/handlers"
	"gosystembolaget_api/metrics"
	"gosystembolaget_api/pkg/middleware"
)

// NewRouter wires the read endpoints, the manual refresh trigger and
// the operational endpoints behind CORS and metrics middleware.
func NewRouter(
	products *handlers.ProductHandler,
	sites *handlers.SiteHandler,
	refresh *handlers.RefreshHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/top", products.GetTopHandler)
	mux.HandleFunc("/site_names", sites.GetSiteNamesHandler)
	mux.HandleFunc("/refresh", refresh.TriggerHandler)
	mux.HandleFunc("/healthz", refresh.HealthHandler)
	mux.Handle("/metrics", metrics.MetricsHandler())

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	return middleware.Chain(mux, middleware.CorsMiddleware, middleware.PrometheusMiddleware)
}
