package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ipwhere/ipwhere/internal/presenter"
)

type addressBody struct {
	IP string `json:"ip"`
}

func decodeAddressBody(r *http.Request) (body addressBody, err error) {
	err = json.NewDecoder(r.Body).Decode(&body)
	if err != nil && !errors.Is(err, io.EOF) { // empty body is fine
		return body, err
	}
	return body, nil
}

func (h *handlers) postLookup(w http.ResponseWriter, r *http.Request) {
	body, err := decodeAddressBody(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, "decoding request body: "+err.Error())
		return
	}

	start := h.timeNow()
	state := h.orchestrator.Lookup(r.Context(), body.IP)
	h.logger.Debug("lookup for " + state.Address + " settled as " +
		state.Phase.String() + " in " + h.timeNow().Sub(start).String())

	h.writeView(w, presenter.FromState(state))
}

func (h *handlers) postAddress(w http.ResponseWriter, r *http.Request) {
	body, err := decodeAddressBody(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, "decoding request body: "+err.Error())
		return
	}

	h.orchestrator.SetAddress(body.IP)
	h.writeView(w, presenter.FromState(h.orchestrator.State()))
}
