package providers

import (
	"context"
)

// EmbeddingProvider defines the interface for text embedding services
type EmbeddingProvider interface {
	// Embed returns a fixed-dimension embedding vector for the given text
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimension returns the embedding vector dimension
	Dimension() int
}
