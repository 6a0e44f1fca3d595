package rest

import (
	"context"
	"net/http"
	"os"
	"time"
)

const probeTimeout = 3 * time.Second

// storePinger checks pool store connectivity.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store       storePinger
	archivePath string
	version     string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(store storePinger, archivePath, version string) *HealthHandler {
	return &HealthHandler{store: store, archivePath: archivePath, version: version}
}

// HealthResponse is the JSON response for /live, /ready and /health.
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
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when the pool store answers, 503 if not.
// A missing archive does not make the process unready; passes over it are empty.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports the store with latency and the archive file state.
// Only the store decides the overall status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	overall := "ok"

	start := time.Now()
	if err := h.store.Ping(ctx); err != nil {
		components["store"] = CompStatus{Status: "down"}
		overall = "down"
	} else {
		components["store"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	if info, err := os.Stat(h.archivePath); err != nil {
		components["archive"] = CompStatus{Status: "missing"}
	} else {
		components["archive"] = CompStatus{Status: "ok", Detail: info.ModTime().UTC().Format(time.RFC3339)}
	}

	status := http.StatusOK
	if overall != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}
