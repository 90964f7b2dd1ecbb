package handler

import (
	"net/http"
	"time"
)

// LivenessText is the GET / body.
const LivenessText = "Mind's Soul relay is running"

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HandleRoot serves the plain-text liveness probe.
func HandleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(LivenessText))
}

// HandleHealth serves a JSON health status.
func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "UP",
		Timestamp: time.Now(),
	})
}
