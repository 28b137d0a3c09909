package server

import (
	"net/http"
	"strings"
	"text/template"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ipwhere/ipwhere/internal/models"
)

type handlers struct {
	// Objects
	rootURL       string
	orchestrator  Orchestrator
	presets       []string
	buildInfo     models.BuildInformation
	indexTemplate *template.Template
	logger        Logger
	// Mockable functions
	timeNow func() time.Time
}

func newHandler(rootURL string, orchestrator Orchestrator,
	presets []string, buildInfo models.BuildInformation,
	logger Logger) (handler http.Handler, err error) {
	rootURL = strings.TrimSuffix(rootURL, "/")

	indexTemplate, err := template.New("index.html").Parse(indexHTML)
	if err != nil {
		return nil, err
	}

	handlers := &handlers{
		rootURL:       rootURL,
		orchestrator:  orchestrator,
		presets:       presets,
		buildInfo:     buildInfo,
		indexTemplate: indexTemplate,
		logger:        logger,
		timeNow:       time.Now,
	}

	router := chi.NewRouter()

	router.Use(middleware.CleanPath)

	router.Get(rootURL+"/", handlers.index)
	router.Get(rootURL+"/api/v1/state", handlers.getState)
	router.Post(rootURL+"/api/v1/lookup", handlers.postLookup)
	router.Post(rootURL+"/api/v1/myip", handlers.postMyIP)
	router.Post(rootURL+"/api/v1/address", handlers.postAddress)

	return router, nil
}
