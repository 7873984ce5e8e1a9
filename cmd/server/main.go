package main

import (
	"context"
	"fmt"

	"github.com/watchparty/server/internal/config"
	handlerhttp "github.com/watchparty/server/internal/handler/http"
	"github.com/watchparty/server/internal/logger"
	"github.com/watchparty/server/internal/server"
	"github.com/watchparty/server/internal/service"
	"github.com/watchparty/server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("watch-party-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	var db *store.DB
	switch cfg.Storage.DB.Driver {
	case "sqlite3":
		db, err = store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	default:
		db, err = store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg.App, log)
	handler := handlerhttp.NewHandler(services, log)

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
