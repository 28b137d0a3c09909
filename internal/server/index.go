package server

import (
	_ "embed"
	"net/http"
)

//go:embed index.html
var indexHTML string

type indexData struct {
	RootURL string
	Version string
	Presets []string
}

func (h *handlers) index(w http.ResponseWriter, _ *http.Request) {
	// Prevent caching so config changes show up on reload
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := indexData{
		RootURL: h.rootURL,
		Version: h.buildInfo.Version,
		Presets: h.presets,
	}

	err := h.indexTemplate.ExecuteTemplate(w, "index.html", data)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "failed generating webpage: "+err.Error())
	}
}
