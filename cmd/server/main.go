package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-smtp-mailer/internal/config"
	"github.com/MKhiriev/go-smtp-mailer/internal/handler"
	"github.com/MKhiriev/go-smtp-mailer/internal/logger"
	"github.com/MKhiriev/go-smtp-mailer/internal/mailer"
	"github.com/MKhiriev/go-smtp-mailer/internal/server"
	"github.com/MKhiriev/go-smtp-mailer/internal/service"
	"github.com/MKhiriev/go-smtp-mailer/internal/store"
	"github.com/MKhiriev/go-smtp-mailer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-smtp-mailer")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" && buildVersion != "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	transport := mailer.NewMailer(cfg.Mail, cfg.App.AdminEmail, log)

	services, err := service.NewServices(storages, transport, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
