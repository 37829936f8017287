package handler

import (
	"net/http"
	"time"
)

// Health is the liveness probe: status plus current UTC time, no side
// effects.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
