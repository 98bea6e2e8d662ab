package main

import (
	"club/config"
	"club/di"
	"club/helper"
	"club/shared/constant"
	"club/shared/logger"
	"context"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.Store.Driver == constant.StoreDriverPostgres && cfg.Store.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run store migrations")
		}
	}

	if cfg.App.Seed {
		if err := di.InitializeSeeder().Run(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed the store")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
