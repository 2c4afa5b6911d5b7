package api

import (
	"net/http"

	"github.com/okian/cribguess/pkg/logger"
)

// StatsProvider defines the interface for getting game statistics.
type StatsProvider interface {
	GetStats() map[string]interface{}
}

// StatsHandler handles stats requests.
type StatsHandler struct {
	statsProvider StatsProvider
	logger        logger.Logger
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider, log logger.Logger) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider, logger: log}
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, h.logger, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
		return
	}
	writeJSON(w, r, h.logger, http.StatusOK, h.statsProvider.GetStats())
}
