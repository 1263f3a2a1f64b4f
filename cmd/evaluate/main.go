package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/sushantshrestha/health-assistant/internal/adapters/cache"
	"github.com/sushantshrestha/health-assistant/internal/adapters/providers/geolocation"
	"github.com/sushantshrestha/health-assistant/internal/adapters/search"
	"github.com/sushantshrestha/health-assistant/internal/application/services"
	"github.com/sushantshrestha/health-assistant/internal/domain/providers"
	"github.com/sushantshrestha/health-assistant/internal/evaluation"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/clients/openai"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/clients/redis"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/clients/typesense"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/observability"
	"github.com/sushantshrestha/health-assistant/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Fatalf("Failed to connect to Typesense: %v", err)
	}
	vectorIndex := search.NewTypesenseAdapter(tsClient, &cfg.VectorIndex)

	openaiClient, err := openai.NewClient(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("Failed to initialize OpenAI client: %v", err)
	}
	if openaiClient.Dimension() != cfg.VectorIndex.Dimension {
		log.Fatalf("Embedding model dimension %d does not match vector index dimension %d",
			openaiClient.Dimension(), cfg.VectorIndex.Dimension)
	}

	var cacheProvider providers.CacheProvider
	if redisClient, err := redis.NewClient(&cfg.Redis); err == nil {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	var geoProvider providers.GeolocationProvider
	if cfg.Geolocation.Provider == "google" {
		geoProvider = geolocation.NewGoogleGeolocationProvider(cfg.Geolocation.APIKey, cacheProvider)
	} else {
		geoProvider = geolocation.NewMockGeolocationProvider()
	}

	retrievalService := services.NewRetrievalService(
		openaiClient,
		vectorIndex,
		cfg.VectorIndex.Namespace,
		cfg.VectorIndex.RelevanceThreshold,
		cfg.VectorIndex.TopK,
	)
	plannerService := services.NewPlannerService(
		retrievalService,
		services.NewEnrichmentService(geoProvider),
		openaiClient,
	)

	runner := evaluation.NewRunner(plannerService, evaluation.NewEvaluator())
	summary := runner.Run(context.Background(), evaluation.DefaultCases())

	for _, result := range summary.Results {
		if result.Error != "" {
			fmt.Printf("FAIL  %-24s %s\n", result.Case, result.Error)
			continue
		}
		fmt.Printf("PASS  %-24s %d/%d (%.1f%%)\n",
			result.Case, result.Quantitative.Score, result.Quantitative.MaxScore, result.Percent)
		for _, feedback := range result.Qualitative {
			fmt.Printf("      - %s\n", feedback)
		}
	}
	fmt.Printf("\nAverage: %.1f%% over %d of %d cases\n",
		summary.AveragePercent, summary.Succeeded, len(summary.Results))

	output, err := json.MarshalIndent(summary, "", "  ")
	if err == nil {
		if err := os.WriteFile("evaluation_results.json", output, 0o644); err != nil {
			log.Printf("Failed to write results file: %v", err)
		}
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
