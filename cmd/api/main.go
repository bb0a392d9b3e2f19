package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mishasvintus/cohort_gateway/internal/config"
	"github.com/mishasvintus/cohort_gateway/internal/eureka"
	"github.com/mishasvintus/cohort_gateway/internal/handler"
	"github.com/mishasvintus/cohort_gateway/internal/logging"
	"github.com/mishasvintus/cohort_gateway/internal/repository"
	"github.com/mishasvintus/cohort_gateway/internal/router"
	"github.com/mishasvintus/cohort_gateway/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if err := logging.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatal().Err(err).Msg("failed to configure logger")
	}
	gin.SetMode(cfg.Server.GinMode)

	db, err := repository.NewPostgresDB(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer func() { _ = db.Close() }()

	if cfg.Database.AutoMigrate {
		migrator, err := repository.NewMigrator(db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure migrations")
		}
		if err := migrator.Up(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	client, err := eureka.New(cfg.Eureka.BaseURL, eureka.WithTimeout(cfg.Eureka.Timeout))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create upstream client")
	}

	cohortService := service.NewCohortService(eureka.NewCohortRepository(client))
	draftService := service.NewDraftService(db, cohortService)

	r := router.SetupRoutes(
		handler.NewHealthHandler(db),
		handler.NewCohortHandler(cohortService),
		handler.NewDraftHandler(draftService),
	)

	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Str("upstream", cfg.Eureka.BaseURL).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server exited")
}
