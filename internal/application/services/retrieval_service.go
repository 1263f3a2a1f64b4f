package services

import (
	"context"
	"strings"

	"github.com/sushantshrestha/health-assistant/internal/domain/providers"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/observability"
)

const defaultTopK = 5

// RetrievalService retrieves relevant medical knowledge for a query.
// Every call re-embeds the query and re-queries the index; retrieval results
// are deliberately not cached.
type RetrievalService struct {
	embedder  providers.EmbeddingProvider
	index     providers.VectorIndex
	namespace string
	threshold float64
	topK      int
}

// NewRetrievalService creates a new retrieval service. threshold filters
// matches by similarity score; below-threshold matches are discarded even if
// topK is not filled, so results may be shorter than topK or empty.
func NewRetrievalService(embedder providers.EmbeddingProvider, index providers.VectorIndex, namespace string, threshold float64, topK int) *RetrievalService {
	if topK <= 0 {
		topK = defaultTopK
	}
	return &RetrievalService{
		embedder:  embedder,
		index:     index,
		namespace: namespace,
		threshold: threshold,
		topK:      topK,
	}
}

// Retrieve embeds the query, searches the index and returns the relevant
// snippet texts joined by blank lines, in descending-score order.
func (s *RetrievalService) Retrieve(ctx context.Context, queryText string) (string, error) {
	ctx, span := observability.StartSpan(ctx, "retrieval.retrieve")
	defer span.End()

	vector, err := s.embedder.Embed(ctx, queryText)
	if err != nil {
		observability.RecordError(span, err)
		return "", err
	}

	matches, err := s.index.Query(ctx, vector, s.topK, s.namespace)
	if err != nil {
		observability.RecordError(span, err)
		return "", err
	}

	texts := []string{}
	for _, match := range matches {
		if match.Score > s.threshold {
			texts = append(texts, match.Text)
		}
	}

	logger := observability.LoggerFromContext(ctx)
	logger.Debug().
		Int("matches", len(matches)).
		Int("relevant", len(texts)).
		Float64("threshold", s.threshold).
		Msg("retrieved knowledge snippets")

	return strings.Join(texts, "\n\n"), nil
}
