// Package server defines the core Server struct that composes the app's main dependencies.
//
// It contains the initialization logic to spin up the HTTP server
// and handles graceful shutdowns.
//
// It owns the lifecycle of:
//   - configuration
//   - logger + optional New Relic service wrapper
//   - PostgreSQL pool (optional)
//   - Mongo document store (optional)
//   - redis client and background job worker (optional)
//   - the local fallback store
//   - http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/estate-listings/internal/config"
	"github.com/deppfellow/estate-listings/internal/database"
	"github.com/deppfellow/estate-listings/internal/docstore"
	"github.com/deppfellow/estate-listings/internal/fallback"
	"github.com/deppfellow/estate-listings/internal/lib/job"
	"github.com/newrelic/go-agent/v3/integrations/nrredis-v9"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	loggerPkg "github.com/deppfellow/estate-listings/internal/logger"
)

const redisPingTimeout = 5 * time.Second

// Server is the application container that holds shared resources.
//
// It is not the HTTP server itself. Optional backends are nil when they are
// not configured; the repository and service layers answer 503 for them.
type Server struct {
	Config *config.Config

	Logger *zerolog.Logger

	// LoggerService holds the New Relic application. nrApp inside may be nil.
	LoggerService *loggerPkg.LoggerService

	// DB is nil when no database block is configured.
	DB *database.Database

	// Mongo is nil when no document store is configured.
	Mongo *docstore.Store

	// Redis is nil when no address is configured.
	Redis *redis.Client

	// Fallback is always present.
	Fallback *fallback.Store

	// Job is nil without Redis.
	Job *job.JobService

	httpServer *http.Server
}

// New constructs a Server and initializes core dependencies.
//
// A configured backend that cannot be reached is a startup error. Redis is
// the exception: an unreachable Redis is logged and the cache and jobs are
// left off, as listing reads do not depend on them.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
	}

	if cfg.HasDatabase() {
		db, err := database.New(cfg, logger, loggerService)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		server.DB = db
	} else {
		logger.Warn().Msg("database not configured, listing routes will answer 503")
	}

	if cfg.HasDocumentStore() {
		store, err := docstore.New(context.Background(), cfg.Mongo, logger)
		if err != nil {
			server.closeBackends(context.Background())
			return nil, fmt.Errorf("failed to initialize document store: %w", err)
		}
		server.Mongo = store
	}

	server.Fallback = newFallbackStore(cfg, logger)

	if cfg.HasRedis() {
		server.Redis = newRedisClient(cfg, logger, loggerService)
	}

	if server.Redis != nil {
		jobService := job.NewJobService(logger, cfg)
		jobService.InitHandlers(cfg, logger)

		if err := jobService.Start(); err != nil {
			server.closeBackends(context.Background())
			return nil, fmt.Errorf("failed to start job server: %w", err)
		}
		server.Job = jobService
	}

	return server, nil
}

func newFallbackStore(cfg *config.Config, logger *zerolog.Logger) *fallback.Store {
	opts := fallback.Options{
		Path:   cfg.Fallback.Path,
		Logger: logger,
	}
	if !cfg.Fallback.DisableSeed {
		opts.Seed = fallback.SeedProperties(time.Now().UTC())
	}
	return fallback.New(opts)
}

// newRedisClient returns nil when Redis does not answer a ping.
func newRedisClient(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})

	if loggerService != nil && loggerService.GetApplication() != nil {
		client.AddHook(nrredis.NewHook(client.Options()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error().Err(err).Str("address", cfg.Redis.Address).Msg("failed to connect to Redis, continuing without cache and jobs")
		_ = client.Close()
		return nil
	}
	return client
}

// SetupHTTPServer configures the internal net/http server.
// Config stores timeouts in seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Bool("database", s.DB != nil).
		Bool("document_store", s.Mongo != nil).
		Bool("redis", s.Redis != nil).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting requests, waits for in-flight ones until ctx
// expires, then releases every backend.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.Job != nil {
		s.Job.Stop()
	}

	return s.closeBackends(ctx)
}

func (s *Server) closeBackends(ctx context.Context) error {
	var errList []error

	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			errList = append(errList, fmt.Errorf("failed to close database connection: %w", err))
		}
	}

	if s.Mongo != nil {
		if err := s.Mongo.Close(ctx); err != nil {
			errList = append(errList, fmt.Errorf("failed to close document store: %w", err))
		}
	}

	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			errList = append(errList, fmt.Errorf("failed to close redis client: %w", err))
		}
	}

	return errors.Join(errList...)
}
