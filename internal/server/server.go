package server

import (
	"github.com/ipwhere/ipwhere/internal/models"
	"github.com/qdm12/goservices/httpserver"
)

type Settings struct {
	Address      string
	RootURL      string
	Orchestrator Orchestrator
	Presets      []string
	BuildInfo    models.BuildInformation
	Logger       Logger
}

func New(settings Settings) (server *httpserver.Server, err error) {
	handler, err := newHandler(settings.RootURL, settings.Orchestrator,
		settings.Presets, settings.BuildInfo, settings.Logger)
	if err != nil {
		return nil, err
	}

	name := "server"
	return httpserver.New(httpserver.Settings{
		Handler: handler,
		Name:    &name,
		Address: &settings.Address,
		Logger:  settings.Logger,
	})
}
