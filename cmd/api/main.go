package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/tattoo-scheduler/internal/audit"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/tattoo-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/tattoo-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/infra/repository/memory"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/logger"
	"github.com/BruksfildServices01/tattoo-scheduler/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx := context.Background()

	cfg, dotenv, err := config.Load(ctx)
	if err != nil {
		boot := logger.New(logger.Options{})
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	if !dotenv {
		log.Debug().Msg(".env not found, using process environment")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, err := buildDeps(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to initialize storage")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", cfg.Addr()).
			Str("env", cfg.Env).
			Str("driver", cfg.DB.Driver).
			Msg("server running")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	received := <-sig
	log.Info().Str("signal", received.String()).Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	// flush pending audit events after the last request finished
	deps.Audit.Close()
	log.Info().Msg("bye")
}

func buildDeps(cfg *config.Config, log zerolog.Logger) (routes.Deps, error) {
	deps := routes.Deps{Config: cfg, Log: log}

	var auditStore audit.Store

	switch cfg.DB.Driver {
	case config.DriverMemory:
		store := memory.NewStore()
		deps.Clients = store.Clients()
		deps.Artists = store.Artists()
		deps.Appointments = store.Appointments()
		auditStore = audit.NewMemoryStore()

	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			return deps, err
		}
		deps.Clients = infraRepo.NewClientGormRepository(db)
		deps.Artists = infraRepo.NewArtistGormRepository(db)
		deps.Appointments = infraRepo.NewAppointmentGormRepository(db)
		deps.Migrate = func() error { return dbpkg.Migrate(db) }
		auditStore = audit.NewGormStore(db)
	}

	deps.AuditStore = auditStore
	deps.Audit = audit.NewDispatcher(audit.New(auditStore), log)
	return deps, nil
}
