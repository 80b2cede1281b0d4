// Package main is the entry point for the destination ranking service.
//
//	@title						Destination Ranking API
//	@version					1.0.0
//	@description				Ranks tourist destinations with the MABAC multi-criteria decision method and exposes every intermediate stage.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/wisata-ranking/destination-ranking/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/wisata-ranking/destination-ranking/docs"

	"github.com/wisata-ranking/destination-ranking/internal/adapter/events"
	rankinghttp "github.com/wisata-ranking/destination-ranking/internal/adapter/http"
	"github.com/wisata-ranking/destination-ranking/internal/adapter/http/middleware"
	"github.com/wisata-ranking/destination-ranking/internal/adapter/repository/postgres"
	"github.com/wisata-ranking/destination-ranking/internal/adapter/repository/sqlite"
	"github.com/wisata-ranking/destination-ranking/internal/config"
	"github.com/wisata-ranking/destination-ranking/internal/criteria"
	"github.com/wisata-ranking/destination-ranking/internal/domain"
	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/logger"
	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/metrics"
	"github.com/wisata-ranking/destination-ranking/internal/infrastructure/timeutil"
	"github.com/wisata-ranking/destination-ranking/internal/usecase"
)

const (
	shutdownTimeout  = 10 * time.Second
	storeOpenTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	appLog := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("store", cfg.Store.Driver).
		Bool("events", cfg.EventsEnabled()).
		Msg("Configuration loaded")

	catalog, err := criteria.LoadFile(cfg.Ranking.CriteriaFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Ranking.CriteriaFile).Msg("Failed to load criteria catalog")
	}
	if !catalog.Balanced() {
		log.Warn().Float64("weight_sum", catalog.WeightSum()).Msg("Criteria weights do not sum to 1")
	}

	repo, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("Failed to open destination store")
	}
	defer repo.Close()

	publisher := setupPublisher(cfg, appLog)
	defer publisher.Close()

	m := metrics.New()

	rankingUseCase := usecase.NewRankingUseCase(repo, catalog,
		&usecase.Config{
			Timeout:        cfg.Ranking.Timeout,
			RecommendedTop: cfg.Ranking.RecommendedTop,
			SubjectPrefix:  cfg.Events.SubjectPrefix,
		},
		usecase.WithPublisher(publisher),
		usecase.WithRecorder(m),
		usecase.WithLocation(timeutil.MustGetLocation(cfg.App.Timezone)),
		usecase.WithLogger(appLog.WithComponent("ranking")),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.SetupWithConfig(e, appLog.Logger, m, middleware.RecoveryConfig{
		DisablePrintStack: cfg.IsProduction(),
	})

	setupRoutes(e, rankinghttp.NewRankingHandler(rankingUseCase), m)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// setupLogger configures the global logger from config and returns it.
func setupLogger(cfg *config.Config) *logger.Logger {
	return logger.Init(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
		ServiceName:  "destination-ranking",
	})
}

// openStore opens the configured destination store and prepares its schema.
func openStore(cfg *config.Config) (domain.DestinationRepository, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
	defer cancel()

	switch cfg.Store.Driver {
	case config.DriverPostgres:
		store, err := postgres.New(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil

	default:
		if dir := filepath.Dir(cfg.Store.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
		store, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		if cfg.Store.SeedFile != "" {
			n, err := store.SeedFromFile(ctx, cfg.Store.SeedFile)
			if err != nil {
				store.Close()
				return nil, fmt.Errorf("seed sqlite store: %w", err)
			}
			log.Info().Int("inserted", n).Str("file", cfg.Store.SeedFile).Msg("Destination store seeded")
		}
		return store, nil
	}
}

// setupPublisher connects to NATS when configured. A failed connection
// degrades to a no-op publisher; rankings never depend on notifications.
func setupPublisher(cfg *config.Config, appLog *logger.Logger) events.Publisher {
	if !cfg.EventsEnabled() {
		return events.NopPublisher{}
	}

	publisher, err := events.NewNATSPublisher(cfg.Events.NATSURL, appLog.WithComponent("events").Logger)
	if err != nil {
		log.Warn().Err(err).Str("url", cfg.Events.NATSURL).Msg("NATS unavailable, ranking notifications disabled")
		return events.NopPublisher{}
	}
	return publisher
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, h *rankinghttp.RankingHandler, m *metrics.Metrics) {
	rankinghttp.RegisterRoutes(e, h)

	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
