package main

import (
	"context"
	"flag"
	"log"

	"github.com/sushantshrestha/health-assistant/internal/adapters/search"
	"github.com/sushantshrestha/health-assistant/internal/application/services"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/clients/openai"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/clients/typesense"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/observability"
	"github.com/sushantshrestha/health-assistant/pkg/config"
)

func main() {
	dataDir := flag.String("data", "./data/diseases", "directory of .txt documents to index")
	reset := flag.Bool("reset", false, "drop and recreate the vector collection before indexing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)
	logger := observability.GetLogger()

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

	ctx := context.Background()

	if *reset {
		if err := vectorIndex.DropSchema(ctx); err != nil {
			logger.Warn().Err(err).Msg("failed to drop collection, may not exist")
		}
	}
	if err := vectorIndex.InitSchema(ctx); err != nil {
		log.Fatalf("Failed to initialize vector collection: %v", err)
	}

	ingestion := services.NewIngestionService(openaiClient, vectorIndex, cfg.VectorIndex.Namespace)
	report, err := ingestion.IngestDirectory(ctx, *dataDir)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}

	logger.Info().
		Int("files_processed", report.FilesProcessed).
		Int("files_skipped", report.FilesSkipped).
		Int("chunks_indexed", report.ChunksIndexed).
		Int("total_vectors", report.TotalVectors).
		Msg("ingestion complete")
}
