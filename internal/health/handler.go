package health

import (
	"net/http"
)

// handler answers GET on the root path only, so the ephemeral
// client cannot accidentally probe another route.
type handler struct {
	healthcheck func() error
}

func newHandler(healthcheck func() error) *handler {
	return &handler{
		healthcheck: healthcheck,
	}
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rootPath := r.URL.Path == "" || r.URL.Path == "/"
	if r.Method != http.MethodGet || !rootPath {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	err := h.healthcheck()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("healthy"))
}
