package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mishasvintus/cohort_gateway/internal/config"
	"github.com/mishasvintus/cohort_gateway/internal/logging"
	"github.com/mishasvintus/cohort_gateway/internal/repository"
)

func main() {
	command := flag.String("command", "up", "migrate command (up|status|down)")
	timeout := flag.Duration("timeout", time.Minute, "command timeout")
	target := flag.Int64("target", 0, "target version for down command (optional)")
	flag.Parse()

	if err := logging.Setup("info", "console"); err != nil {
		log.Fatal().Err(err).Msg("failed to configure logger")
	}

	dbCfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := repository.NewPostgresDB(ctx, dbCfg.DSN())
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to database")
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	migrator, err := repository.NewMigrator(db)
	if err != nil {
		log.Error().Err(err).Msg("failed to configure migrations")
		os.Exit(1)
	}

	switch *command {
	case "up":
		err = migrator.Up(ctx)
	case "status":
		err = migrator.Status(ctx)
	case "down":
		err = migrator.Down(ctx, *target)
	default:
		log.Error().Str("command", *command).Msg("unsupported command")
		os.Exit(1)
	}
	if err != nil {
		log.Error().Err(err).Str("command", *command).Msg("migration command failed")
		os.Exit(1)
	}

	log.Info().Str("command", *command).Msg("migration command completed")
}
