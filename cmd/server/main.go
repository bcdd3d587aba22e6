package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/user-admin/internal/adapter"
	"github.com/MKhiriev/user-admin/internal/config"
	"github.com/MKhiriev/user-admin/internal/flash"
	"github.com/MKhiriev/user-admin/internal/handler"
	"github.com/MKhiriev/user-admin/internal/logger"
	"github.com/MKhiriev/user-admin/internal/server"
	"github.com/MKhiriev/user-admin/internal/service"
	"github.com/MKhiriev/user-admin/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("user-admin")
	log.Info().Stringer("build", buildInfo).Msg("starting user-admin")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("api", cfg.Adapter.BaseURL).
		Str("flash_backend", cfg.Flash.Backend).
		Msg("received configs")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	api, err := adapter.NewPostgRESTAdapter(cfg.Adapter, adapter.NewMetrics(registry), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating data API adapter")
	}

	services, err := service.NewServices(api, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	flashStore, err := flash.NewStore(context.Background(), cfg.Flash, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating flash store")
	}

	handlers, err := handler.NewHandlers(services, flashStore, registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runErr := srv.RunServer()

	if closer, ok := flashStore.(io.Closer); ok {
		if err = closer.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing flash store")
		}
	}

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server stopped with error")
	}
}

func printBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
