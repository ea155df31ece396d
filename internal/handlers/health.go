package handlers

import (
	"encoding/json"
	"net/http"

	"tangled.org/plantenwijzer.nl/plantenwijzer/internal/store"
)

type readiness struct {
	Status string      `json:"status"`
	Stats  store.Stats `json:"stats"`
	Error  string      `json:"error,omitempty"`
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// HandleReady reports whether the dataset is loaded; 503 until it is.
func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	body := readiness{Status: "ready", Stats: h.store.Stats()}
	status := http.StatusOK
	if _, err := h.store.Dataset(); err != nil {
		body.Status = "unavailable"
		body.Error = err.Error()
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
