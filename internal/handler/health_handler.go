package handlers

import (
	"net/http"
)

type HealthResponse struct {
	Status string `json:"status"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.HealthRepo.Ping(r.Context()); err != nil {
		h.Log.WithError(err).Warn("health check failed")
		WriteJSON(w, HealthResponse{Status: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}
