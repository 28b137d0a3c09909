package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/ipwhere/ipwhere/internal/config"
	"github.com/ipwhere/ipwhere/internal/geo"
	"github.com/ipwhere/ipwhere/internal/health"
	"github.com/ipwhere/ipwhere/internal/models"
	"github.com/ipwhere/ipwhere/internal/noop"
	"github.com/ipwhere/ipwhere/internal/server"
	"github.com/ipwhere/ipwhere/internal/session"
	"github.com/ipwhere/ipwhere/pkg/publicip"
	"github.com/qdm12/goservices"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		case "healthcheck":
			// Running the program in a separate ephemeral instance,
			// through the Docker built-in healthcheck, to query the
			// long running instance of the program about its status
			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err = healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			client := health.NewClient()
			return client.Query(ctx, healthSettings.ServerAddress)
		}
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: config.Client.Timeout}
	defer client.CloseIdleConnections()

	geoBaseURL := config.Geo.APIURL
	if geoBaseURL == "" { // same origin as the web UI
		geoBaseURL = sameOriginURL(config.Server.ListeningAddress)
	}
	geoClient := geo.New(client, geoBaseURL)

	httpSettings := publicip.HTTPSettings{
		Enabled: *config.PubIP.HTTPEnabled,
		Client:  client,
		Options: config.PubIP.ToHTTPOptions(),
	}
	dnsSettings := publicip.DNSSettings{
		Enabled: *config.PubIP.DNSEnabled,
		Options: config.PubIP.ToDNSOptions(),
	}

	ipGetter, err := publicip.NewFetcher(httpSettings, dnsSettings)
	if err != nil {
		return err
	}

	checkURL := config.Geo.APIURL
	if checkURL == "" {
		checkURL = "https://github.com"
	}
	err = health.CheckHTTP(ctx, client, checkURL)
	if err != nil {
		logger.Warn(err.Error())
	}

	sessionLogger := logger.New(log.SetComponent("session"))
	orchestrator := session.New(geoClient, ipGetter, sessionLogger)

	healthServer, err := createHealthServer(client, checkURL, logger,
		config.Health.ServerAddress)
	if err != nil {
		return fmt.Errorf("creating health server: %w", err)
	}

	uiServer, err := createServer(config.Server, config.Presets.Addresses,
		logger, orchestrator, buildInfo)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	servicesSequence, err := goservices.NewSequence(goservices.SequenceSettings{
		ServicesStart: []goservices.Service{healthServer, uiServer},
		ServicesStop:  []goservices.Service{uiServer, healthServer},
	})
	if err != nil {
		return fmt.Errorf("creating services sequence: %w", err)
	}

	runError, startErr := servicesSequence.Start(ctx)
	if startErr != nil {
		return fmt.Errorf("starting services: %w", startErr)
	}

	select {
	case <-ctx.Done():
	case err = <-runError:
		return fmt.Errorf("exiting due to critical error: %w", err)
	}

	err = servicesSequence.Stop()
	if err != nil {
		return fmt.Errorf("stopping failed: %w", err)
	}

	return nil
}

// sameOriginURL mirrors the browser behavior of resolving a
// relative URL against the page origin, for the server process.
func sameOriginURL(listeningAddress string) string {
	if strings.HasPrefix(listeningAddress, ":") {
		return "http://127.0.0.1" + listeningAddress
	}
	return "http://" + listeningAddress
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "ipwhere",
		Repository: "ipwhere",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

//nolint:ireturn
func createHealthServer(client *http.Client, checkURL string,
	logger log.LoggerInterface, serverAddress string) (
	healthServer goservices.Service, err error) {
	if !health.IsDocker() {
		return noop.New("healthcheck server"), nil
	}
	healthLogger := logger.New(log.SetComponent("healthcheck server"))
	isHealthy := health.MakeIsHealthy(client, checkURL, healthLogger)
	return health.NewServer(serverAddress, healthLogger, isHealthy)
}

//nolint:ireturn
func createServer(config config.Server, presets []string,
	logger log.LoggerInterface, orchestrator server.Orchestrator,
	buildInfo models.BuildInformation) (
	service goservices.Service, err error) {
	if !*config.Enabled {
		return noop.New("server"), nil
	}
	serverLogger := logger.New(log.SetComponent("http server"))
	return server.New(server.Settings{
		Address:      config.ListeningAddress,
		RootURL:      config.RootURL,
		Orchestrator: orchestrator,
		Presets:      presets,
		BuildInfo:    buildInfo,
		Logger:       serverLogger,
	})
}
