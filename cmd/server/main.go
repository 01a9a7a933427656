package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-api-scaffold/internal/auth"
	"github.com/MKhiriev/go-api-scaffold/internal/config"
	myHTTP "github.com/MKhiriev/go-api-scaffold/internal/handler/http"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/server"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/internal/store"
	"github.com/MKhiriev/go-api-scaffold/internal/telemetry"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-api-scaffold")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	logger.SetGlobalLevel(cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.Version == "" && buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	ctx := context.Background()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting up telemetry")
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			log.Err(err).Msg("error shutting down telemetry")
		}
	}()

	// persistence is optional: without a database URL the user routes are
	// simply not mounted
	var storages *store.Storages
	if cfg.Storage.DB.DatabaseURL != "" {
		db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to database")
		}
		defer db.Close()

		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error running migrations")
		}

		storages = store.NewStorages(db, log)
	} else {
		log.Info().Msg("no database URL configured, persistence disabled")
	}

	services := service.NewServices(storages, cfg, log)

	tokenStore := auth.NewTokenStore(cfg.Auth.APIKeys)
	authorizer := auth.NewAuthorizer(tokenStore)

	handler := myHTTP.NewHandler(services, authorizer, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
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
}
