package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cosmic-brain/internal/adapter"
	"github.com/MKhiriev/cosmic-brain/internal/client"
	"github.com/MKhiriev/cosmic-brain/internal/config"
	"github.com/MKhiriev/cosmic-brain/internal/logger"
	"github.com/MKhiriev/cosmic-brain/internal/service"
	"github.com/MKhiriev/cosmic-brain/internal/tui"
	"github.com/MKhiriev/cosmic-brain/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("cosmic-brain-client")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateClient(); err != nil {
		log.Fatal().Err(err).Msg("invalid client configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx := context.Background()
	services := service.NewClientServices(serverAdapter)
	ui := tui.New(ctx, services, buildInfo, log)

	app, err := client.NewApp(ctx, services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Println(line)
	}
}
