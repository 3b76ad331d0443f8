package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/foliolab/quant/internal/config"
	"github.com/foliolab/quant/internal/modules/allocation"
	"github.com/foliolab/quant/internal/modules/behavioral"
	"github.com/foliolab/quant/internal/modules/costs"
	"github.com/foliolab/quant/internal/modules/decomposition"
	"github.com/foliolab/quant/internal/modules/metrics"
	"github.com/foliolab/quant/internal/modules/projection"
	"github.com/foliolab/quant/internal/modules/scenario"
	"github.com/foliolab/quant/internal/modules/snapshots"
)

// Handlers gathers every module handler mounted on the router.
type Handlers struct {
	Metrics       *metrics.Handler
	Allocation    *allocation.Handler
	Scenario      *scenario.Handler
	Projection    *projection.Handler
	Costs         *costs.Handler
	Decomposition *decomposition.Handler
	Behavioral    *behavioral.Handler
	Snapshots     *snapshots.Handler
}

// Config holds server configuration
type Config struct {
	Port     int
	Log      zerolog.Logger
	Config   *config.Config
	Handlers Handlers
	DevMode  bool
}

// Server represents the HTTP server
type Server struct {
	router   *chi.Mux
	server   *http.Server
	log      zerolog.Logger
	cfg      *config.Config
	handlers Handlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		log:      cfg.Log.With().Str("component", "server").Logger(),
		cfg:      cfg.Config,
		handlers: cfg.Handlers,
	}

	s.setupMiddleware(cfg.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)

	// Monte Carlo runs can take a while at high simulation counts.
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handleSystemStatus)
		})

		r.Route("/analysis", func(r chi.Router) {
			r.Post("/metrics", s.handlers.Metrics.HandleAdvanced)
			r.Post("/matrix", s.handlers.Metrics.HandleMatrices)
			r.Post("/allocations", s.handlers.Allocation.HandleGenerate)
			r.Post("/scenarios", s.handlers.Scenario.HandleRegimes)
			r.Post("/stress", s.handlers.Scenario.HandleStressTests)
			r.Post("/stress/paths", s.handlers.Scenario.HandleStressPaths)
			r.Post("/projection", s.handlers.Projection.HandleBacktest)
			r.Post("/projection/drawdowns", s.handlers.Projection.HandleDrawdowns)
			r.Post("/projection/bands", s.handlers.Projection.HandleConfidenceBands)
			r.Post("/montecarlo", s.handlers.Projection.HandleMonteCarlo)
			r.Post("/costs", s.handlers.Costs.HandleTransactionCosts)
			r.Post("/rebalancing", s.handlers.Costs.HandleRebalancingImpact)
			r.Post("/decomposition", s.handlers.Decomposition.HandleDecompose)
			r.Post("/concentration", s.handlers.Decomposition.HandleConcentration)
			r.Post("/correlation-stress", s.handlers.Decomposition.HandleCorrelationStress)
			r.Post("/biases", s.handlers.Behavioral.HandleBiases)
			r.Post("/score", s.handlers.Behavioral.HandleScore)
			r.Post("/goal", s.handlers.Behavioral.HandleGoal)
			r.Post("/goal/montecarlo", s.handlers.Behavioral.HandleGoalMonteCarlo)
		})

		r.Route("/snapshots", func(r chi.Router) {
			r.Post("/", s.handlers.Snapshots.HandleSave)
			r.Get("/", s.handlers.Snapshots.HandleList)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.cfg.Port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs each request with method, path, status and latency
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request")
	})
}
