package rest

import (
	"log/slog"
	"net/http"

	"github.com/ksarapp/ksar-backend/internal/transport/middleware"
)

// NewRouter mounts the operational endpoints: liveness, readiness, health
// and, when metrics is non-nil, the Prometheus scrape endpoint.
func NewRouter(log *slog.Logger, health *HealthHandler, metrics http.Handler, metricsPath string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	if metrics != nil {
		mux.Handle("GET "+metricsPath, metrics)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
	)(mux)
}
