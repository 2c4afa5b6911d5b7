package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/cribguess/pkg/logger"
)

// Sentinel kinds for API errors.
var (
	ErrMethodNotAllowed = errors.New("method not allowed")
)

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, status int, err error) {
	writeJSON(w, r, log, status, map[string]string{"error": err.Error()})
}

// writeJSON encodes v as the response body. Encoding failures are logged
// since the status line may already be on the wire.
func writeJSON(w http.ResponseWriter, r *http.Request, log logger.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error(r.Context(), "encode response failed",
			logger.String("path", r.URL.Path),
			logger.Error(err),
		)
	}
}
