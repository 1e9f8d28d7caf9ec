package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger is anything whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Check is one dependency probed by the health endpoints. A failing optional
// dependency degrades the service but does not take it out of rotation.
type Check struct {
	Name     string
	Pinger   Pinger
	Optional bool
}

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	checks  []Check
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...Check) *HealthHandler {
	return &HealthHandler{checks: checks, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings required dependencies: 200 if all
// answer, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	for _, c := range h.checks {
		if c.Optional {
			continue
		}
		if err := c.Pinger.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    statusDown,
				Timestamp: time.Now(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings every dependency with latency
// measurement and includes the version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus, len(h.checks))
	overallStatus := statusOK

	for _, c := range h.checks {
		start := time.Now()
		err := c.Pinger.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components[c.Name] = CompStatus{Status: statusDown}
			switch {
			case !c.Optional:
				overallStatus = statusDown
			case overallStatus == statusOK:
				overallStatus = statusDegraded
			}
			continue
		}
		components[c.Name] = CompStatus{
			Status:  statusOK,
			Latency: latency.String(),
		}
	}

	status := http.StatusOK
	if overallStatus == statusDown {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
