package server

import (
	"encoding/json"
	"net/http"

	"github.com/ipwhere/ipwhere/internal/presenter"
)

func (h *handlers) writeView(w http.ResponseWriter, view presenter.View) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	err := json.NewEncoder(w).Encode(view)
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError, "failed encoding JSON: "+err.Error())
	}
}

func (h *handlers) getState(w http.ResponseWriter, _ *http.Request) {
	view := presenter.FromState(h.orchestrator.State())
	h.writeView(w, view)
}
