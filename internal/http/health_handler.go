package http

import (
	"context"
	"net/http"
	"time"

	"github.com/tuanvumaihuynh/invoicing-api/internal/storage/db"
)

type healthResponse struct {
	Status string `json:"status"`
}

type healthHandler struct {
	checker db.HealthChecker
}

func newHealthHandler(checker db.HealthChecker) *healthHandler {
	return &healthHandler{checker: checker}
}

// Health reports 503 when the database cannot be reached.
func (h *healthHandler) Health(w http.ResponseWriter, r *http.Request) error {
	if h.checker == nil {
		return writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if ok, err := h.checker.IsHealthy(ctx); !ok || err != nil {
		return writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
	}

	return writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
