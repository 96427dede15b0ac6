package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"newsdesk/internal/handler/http/respond"
)

// HealthResponse is the body of the /health endpoint.
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus reports one dependency's health.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// BreakerState exposes the database circuit breaker to the health probe.
type BreakerState interface {
	IsOpen() bool
}

// HealthHandler serves the liveness, readiness, and full health endpoints.
type HealthHandler struct {
	DB      *sql.DB
	Breaker BreakerState
	Version string
}

// Health performs a full dependency check: database ping plus circuit
// breaker state. Unhealthy dependencies yield 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]CheckStatus{}
	healthy := true

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		healthy = false
		checks["database"] = CheckStatus{Status: "unhealthy", Message: "ping failed"}
	} else {
		checks["database"] = CheckStatus{Status: "healthy"}
	}

	if h.Breaker != nil {
		if h.Breaker.IsOpen() {
			healthy = false
			checks["circuit_breaker"] = CheckStatus{Status: "unhealthy", Message: "open"}
		} else {
			checks["circuit_breaker"] = CheckStatus{Status: "healthy"}
		}
	}

	status := "healthy"
	code := http.StatusOK
	if !healthy {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

// Ready reports whether the service can take traffic (database reachable).
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.DB.PingContext(ctx); err != nil {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// Live reports process liveness only; it never touches dependencies.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// Register mounts the probe endpoints on mux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)
	mux.HandleFunc("GET /live", h.Live)
}
