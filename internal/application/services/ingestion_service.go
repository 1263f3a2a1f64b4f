package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sushantshrestha/health-assistant/internal/domain/entities"
	"github.com/sushantshrestha/health-assistant/internal/domain/providers"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/observability"
)

const (
	ingestBatchSize = 100

	// Stored snippet previews are capped; the full chunk only feeds the
	// embedding, matching how the knowledge base was originally built.
	snippetPreviewLen = 100
)

// IngestionService chunks, embeds and indexes medical knowledge documents.
type IngestionService struct {
	embedder  providers.EmbeddingProvider
	index     providers.VectorIndex
	namespace string
	chunking  ChunkConfig
}

// IngestReport summarises one ingestion run.
type IngestReport struct {
	FilesProcessed int
	FilesSkipped   int
	ChunksIndexed  int
	TotalVectors   int
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(embedder providers.EmbeddingProvider, index providers.VectorIndex, namespace string) *IngestionService {
	return &IngestionService{
		embedder:  embedder,
		index:     index,
		namespace: namespace,
		chunking:  DefaultChunkConfig(),
	}
}

// IngestDirectory processes every .txt file in dir into the vector index.
// Per-chunk embedding failures are logged and skipped; per-file read
// failures skip the file. The run only fails on index write errors.
func (s *IngestionService) IngestDirectory(ctx context.Context, dir string) (*IngestReport, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list data directory: %w", err)
	}

	logger := observability.LoggerFromContext(ctx)
	logger.Info().Int("files", len(paths)).Str("dir", dir).Msg("starting ingestion")

	report := &IngestReport{}
	for _, path := range paths {
		if err := s.ingestFile(ctx, path, report); err != nil {
			return nil, err
		}
	}

	total, err := s.index.Count(ctx, s.namespace)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read index stats")
	} else {
		report.TotalVectors = total
	}

	return report, nil
}

func (s *IngestionService) ingestFile(ctx context.Context, path string, report *IngestReport) error {
	logger := observability.LoggerFromContext(ctx)

	content, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("file", path).Msg("failed to read file, skipping")
		report.FilesSkipped++
		return nil
	}

	if strings.TrimSpace(string(content)) == "" {
		logger.Warn().Str("file", path).Msg("file is empty, skipping")
		report.FilesSkipped++
		return nil
	}

	chunks := ChunkText(string(content), s.chunking)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	logger.Info().Str("file", filepath.Base(path)).Int("chunks", len(chunks)).Msg("split file")

	batch := make([]entities.VectorRecord, 0, ingestBatchSize)
	for idx, chunk := range chunks {
		vector, err := s.embedder.Embed(ctx, chunk)
		if err != nil {
			logger.Warn().Err(err).Str("file", path).Int("chunk", idx).Msg("failed to embed chunk, skipping")
			continue
		}

		batch = append(batch, entities.VectorRecord{
			ID:         fmt.Sprintf("%s-%d-%s", stem, idx, uuid.NewString()[:8]),
			Values:     vector,
			Text:       previewText(chunk),
			SourceFile: filepath.Base(path),
			ChunkIndex: idx,
		})

		if len(batch) == ingestBatchSize {
			if err := s.flush(ctx, batch, report); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}

	if len(batch) > 0 {
		if err := s.flush(ctx, batch, report); err != nil {
			return err
		}
	}

	report.FilesProcessed++
	return nil
}

func (s *IngestionService) flush(ctx context.Context, batch []entities.VectorRecord, report *IngestReport) error {
	if err := s.index.Upsert(ctx, batch, s.namespace); err != nil {
		return fmt.Errorf("failed to upsert batch: %w", err)
	}
	report.ChunksIndexed += len(batch)
	return nil
}

func previewText(chunk string) string {
	if len(chunk) > snippetPreviewLen {
		return chunk[:snippetPreviewLen] + "..."
	}
	return chunk
}
