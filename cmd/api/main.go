package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sushantshrestha/health-assistant/internal/adapters/cache"
	"github.com/sushantshrestha/health-assistant/internal/adapters/providers/geolocation"
	"github.com/sushantshrestha/health-assistant/internal/adapters/search"
	"github.com/sushantshrestha/health-assistant/internal/api/handlers"
	"github.com/sushantshrestha/health-assistant/internal/api/routes"
	"github.com/sushantshrestha/health-assistant/internal/application/services"
	"github.com/sushantshrestha/health-assistant/internal/domain/providers"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/clients/openai"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/clients/redis"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/clients/typesense"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/observability"
	"github.com/sushantshrestha/health-assistant/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Redis is optional, geocode results are simply not cached without it
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, geocode caching disabled")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		logger.Info().Msg("Redis client initialized")
	}

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize Typesense client")
	}
	vectorIndex := search.NewTypesenseAdapter(tsClient, &cfg.VectorIndex)

	openaiClient, err := openai.NewClient(&cfg.OpenAI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize OpenAI client")
	}
	if openaiClient.Dimension() != cfg.VectorIndex.Dimension {
		logger.Fatal().
			Int("model_dimension", openaiClient.Dimension()).
			Int("index_dimension", cfg.VectorIndex.Dimension).
			Msg("embedding model dimension does not match vector index")
	}

	var geoProvider providers.GeolocationProvider
	switch cfg.Geolocation.Provider {
	case "google":
		geoProvider = geolocation.NewGoogleGeolocationProvider(cfg.Geolocation.APIKey, cacheProvider)
		logger.Info().Msg("using Google Maps geolocation provider")
	default:
		geoProvider = geolocation.NewMockGeolocationProvider()
		logger.Info().Msg("using mock geolocation provider")
	}

	retrievalService := services.NewRetrievalService(
		openaiClient,
		vectorIndex,
		cfg.VectorIndex.Namespace,
		cfg.VectorIndex.RelevanceThreshold,
		cfg.VectorIndex.TopK,
	)
	enrichmentService := services.NewEnrichmentService(geoProvider)
	plannerService := services.NewPlannerService(retrievalService, enrichmentService, openaiClient)
	plannerService.SetMetrics(metrics)

	planHandler := handlers.NewPlanHandler(plannerService)
	router := routes.NewRouter(planHandler, metrics)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}
	logger.Info().Msg("server exited")
}
