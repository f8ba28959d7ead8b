package api

import (
	"net/http"
	"time"

	"github.com/vocino/vocino/internal/api/respond"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	serviceIsHealthy func() bool
	storeIsHealthy   func() bool
}

// NewHealthHandler creates a health handler bound to the health probes
// wired up in run.go. Nil probes report healthy.
func NewHealthHandler(service, store func() bool) *HealthHandler {
	always := func() bool { return true }
	if service == nil {
		service = always
	}
	if store == nil {
		store = always
	}
	return &HealthHandler{serviceIsHealthy: service, storeIsHealthy: store}
}

// CheckHealth handles GET /api/health.
// Always returns 200; the body reports healthy/unhealthy. 500 indicates
// handler failure only.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "unhealthy"
	if h.serviceIsHealthy() {
		status = "healthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// CheckStoreHealth handles GET /api/health/store.
func (h *HealthHandler) CheckStoreHealth(w http.ResponseWriter, r *http.Request) {
	status := "unhealthy"
	if h.storeIsHealthy() {
		status = "healthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
