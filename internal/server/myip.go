package server

import (
	"net/http"

	"github.com/ipwhere/ipwhere/internal/presenter"
)

func (h *handlers) postMyIP(w http.ResponseWriter, r *http.Request) {
	start := h.timeNow()
	state := h.orchestrator.UseMyIP(r.Context())
	h.logger.Debug("use my IP settled as " + state.Phase.String() +
		" in " + h.timeNow().Sub(start).String())

	h.writeView(w, presenter.FromState(state))
}
