package api

import (
	"net/http"

	"github.com/okian/cribguess/pkg/logger"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	logger logger.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(log logger.Logger) *HealthHandler {
	return &HealthHandler{logger: log}
}

// HandleHealth handles GET /healthz requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, h.logger, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, map[string]string{"status": "ok"})
}
