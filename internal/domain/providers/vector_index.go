package providers

import (
	"context"

	"github.com/sushantshrestha/health-assistant/internal/domain/entities"
)

// VectorIndex defines the interface for the external vector similarity index
type VectorIndex interface {
	// Query returns the topK nearest neighbours of the vector within a
	// namespace, ordered by descending similarity score
	Query(ctx context.Context, vector []float32, topK int, namespace string) ([]entities.ScoredSnippet, error)

	// Upsert writes a batch of vector records into a namespace
	Upsert(ctx context.Context, records []entities.VectorRecord, namespace string) error

	// Count returns the number of vectors stored in a namespace
	Count(ctx context.Context, namespace string) (int, error)
}
