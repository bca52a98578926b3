package main

import (
	"os"

	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/db"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/auth"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/config"
	"github.com/Nicolas-Rodriguez-Ch/TableTop-BE/internal/router"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.AppEnv != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := auth.Init(cfg.JWTSecret); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize JWT")
	}

	conn, err := db.Connect(cfg.DatabaseDSN)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	defer func() {
		if err := db.Close(conn); err != nil {
			log.Error().Err(err).Msg("failed to close database")
		}
	}()

	if err := db.Migrate(conn); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	r := router.NewRouter(cfg, conn)

	log.Info().Str("port", cfg.Port).Msg("starting server")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
