package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-phone-auth/internal/config"
	"github.com/MKhiriev/go-phone-auth/internal/handler"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/internal/metrics"
	"github.com/MKhiriev/go-phone-auth/internal/server"
	"github.com/MKhiriev/go-phone-auth/internal/service"
	"github.com/MKhiriev/go-phone-auth/internal/store"
	"github.com/MKhiriev/go-phone-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	fmt.Println(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-phone-auth-server").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == config.DefaultVersion && buildInfo.BuildVersion() != config.DefaultVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewLogger("go-phone-auth-server")
	if cfg.Log.File != "" {
		log = logger.NewFileLogger("go-phone-auth-server", cfg.Log.File, true)
	}
	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewDB(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	log.Info().Str("driver", db.Driver()).Msg("database is ready")
	defer func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}()

	var m *metrics.Metrics
	if !cfg.Server.DisableMetrics {
		m = metrics.New()
	}

	services, err := service.NewServices(store.NewStorages(db, log), cfg.App, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = config.DefaultVersion
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
