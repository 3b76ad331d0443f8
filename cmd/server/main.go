package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foliolab/quant/internal/config"
	"github.com/foliolab/quant/internal/database"
	"github.com/foliolab/quant/internal/modules/allocation"
	"github.com/foliolab/quant/internal/modules/behavioral"
	"github.com/foliolab/quant/internal/modules/costs"
	"github.com/foliolab/quant/internal/modules/decomposition"
	"github.com/foliolab/quant/internal/modules/matrix"
	"github.com/foliolab/quant/internal/modules/metrics"
	"github.com/foliolab/quant/internal/modules/projection"
	"github.com/foliolab/quant/internal/modules/scenario"
	"github.com/foliolab/quant/internal/modules/snapshots"
	"github.com/foliolab/quant/internal/scheduler"
	"github.com/foliolab/quant/internal/server"
	"github.com/foliolab/quant/pkg/logger"
)

func main() {
	// Load configuration first so the log level is honored
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().Msg("Starting portfolio analytics service")

	// Snapshot storage (caller-side history; the engine itself is pure)
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	snapshotRepo := snapshots.NewRepository(db)

	// Engine services
	builder := matrix.NewBuilder(cfg.Engine.Seed, log)
	metricsSvc := metrics.NewService(cfg.Engine, log)
	allocationSvc := allocation.NewService(log)
	scenarioSvc := scenario.NewService(log)
	projectionSvc := projection.NewService(cfg.Engine, log)
	costsSvc := costs.NewService(cfg.Engine, log)
	decompositionSvc := decomposition.NewService(cfg.Engine, log)
	behavioralSvc := behavioral.NewService(cfg.Engine, log)

	// Background jobs
	sched := scheduler.New(log)
	retention := scheduler.NewRetentionJob(snapshotRepo, cfg.SnapshotRetentionDays, log)
	if err := sched.AddJob("0 0 3 * * *", retention); err != nil {
		log.Fatal().Err(err).Msg("Failed to register retention job")
	}
	sched.Start()
	defer sched.Stop()

	// Catch up on retention immediately rather than waiting for 3 AM
	if err := sched.RunNow(retention); err != nil {
		log.Error().Err(err).Msg("Initial snapshot pruning failed")
	}

	// HTTP server
	srv := server.New(server.Config{
		Port:    cfg.Port,
		Log:     log,
		Config:  cfg,
		DevMode: cfg.DevMode,
		Handlers: server.Handlers{
			Metrics:       metrics.NewHandler(metricsSvc, builder, log),
			Allocation:    allocation.NewHandler(allocationSvc, log),
			Scenario:      scenario.NewHandler(scenarioSvc, log),
			Projection:    projection.NewHandler(projectionSvc, log),
			Costs:         costs.NewHandler(costsSvc, log),
			Decomposition: decomposition.NewHandler(decompositionSvc, builder, log),
			Behavioral:    behavioral.NewHandler(behavioralSvc, metricsSvc, builder, log),
			Snapshots:     snapshots.NewHandler(snapshotRepo, log),
		},
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
