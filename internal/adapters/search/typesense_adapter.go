package search

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sushantshrestha/health-assistant/internal/domain/entities"
	"github.com/sushantshrestha/health-assistant/internal/domain/providers"
	tsclient "github.com/sushantshrestha/health-assistant/internal/infrastructure/clients/typesense"
	"github.com/sushantshrestha/health-assistant/pkg/config"
	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"
)

// TypesenseAdapter implements the medical knowledge vector index on Typesense.
// Similarity is cosine; Typesense reports vector_distance, so score = 1 - distance.
type TypesenseAdapter struct {
	client     *tsclient.Client
	collection string
	dimension  int
}

// Ensure TypesenseAdapter implements VectorIndex
var _ providers.VectorIndex = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense vector index adapter
func NewTypesenseAdapter(client *tsclient.Client, cfg *config.VectorIndexConfig) *TypesenseAdapter {
	return &TypesenseAdapter{
		client:     client,
		collection: cfg.Collection,
		dimension:  cfg.Dimension,
	}
}

// InitSchema ensures the knowledge collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(a.collection).Retrieve(ctx)
	if err == nil {
		return nil // Collection exists
	}

	schema := &api.CollectionSchema{
		Name: a.collection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "text", Type: "string"},
			{Name: "namespace", Type: "string", Facet: pointer.True()},
			{Name: "source_file", Type: "string", Optional: pointer.True()},
			{Name: "chunk_index", Type: "int32", Optional: pointer.True()},
			{Name: "embedding", Type: "float[]", NumDim: pointer.Int(a.dimension)},
		},
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}

	return nil
}

// DropSchema deletes the knowledge collection if it exists
func (a *TypesenseAdapter) DropSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(a.collection).Retrieve(ctx)
	if err != nil {
		return nil // Nothing to drop
	}
	if _, err := a.client.Client().Collection(a.collection).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete typesense collection: %w", err)
	}
	return nil
}

// Upsert writes a batch of vector records into a namespace
func (a *TypesenseAdapter) Upsert(ctx context.Context, records []entities.VectorRecord, namespace string) error {
	for _, record := range records {
		if len(record.Values) != a.dimension {
			return fmt.Errorf("record %s has dimension %d, index expects %d",
				record.ID, len(record.Values), a.dimension)
		}

		document := map[string]interface{}{
			"id":          record.ID,
			"text":        record.Text,
			"namespace":   namespace,
			"source_file": record.SourceFile,
			"chunk_index": record.ChunkIndex,
			"embedding":   record.Values,
		}

		if _, err := a.client.Client().Collection(a.collection).Documents().Upsert(ctx, document); err != nil {
			return fmt.Errorf("failed to index record %s: %w", record.ID, err)
		}
	}

	return nil
}

// Query returns the topK nearest neighbours within a namespace by cosine similarity
func (a *TypesenseAdapter) Query(ctx context.Context, vector []float32, topK int, namespace string) ([]entities.ScoredSnippet, error) {
	if len(vector) != a.dimension {
		return nil, fmt.Errorf("query vector has dimension %d, index expects %d", len(vector), a.dimension)
	}

	searchParams := &api.SearchCollectionParams{
		Q:             pointer.String("*"),
		QueryBy:       pointer.String("text"),
		FilterBy:      pointer.String(fmt.Sprintf("namespace:=%s", namespace)),
		VectorQuery:   pointer.String(fmt.Sprintf("embedding:(%s, k:%d)", formatVector(vector), topK)),
		PerPage:       pointer.Int(topK),
		ExcludeFields: pointer.String("embedding"),
	}

	result, err := a.client.Client().Collection(a.collection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to query vector index: %w", err)
	}

	snippets := []entities.ScoredSnippet{}
	if result.Hits == nil {
		return snippets, nil
	}

	for _, hit := range *result.Hits {
		if hit.Document == nil || hit.VectorDistance == nil {
			continue
		}
		doc := *hit.Document
		text, ok := doc["text"].(string)
		if !ok {
			continue
		}
		snippets = append(snippets, entities.ScoredSnippet{
			Text:  text,
			Score: 1 - float64(*hit.VectorDistance),
		})
	}

	sort.SliceStable(snippets, func(i, j int) bool {
		return snippets[i].Score > snippets[j].Score
	})

	return snippets, nil
}

// Count returns the number of vectors stored in a namespace
func (a *TypesenseAdapter) Count(ctx context.Context, namespace string) (int, error) {
	searchParams := &api.SearchCollectionParams{
		Q:        pointer.String("*"),
		QueryBy:  pointer.String("text"),
		FilterBy: pointer.String(fmt.Sprintf("namespace:=%s", namespace)),
		PerPage:  pointer.Int(0),
	}

	result, err := a.client.Client().Collection(a.collection).Documents().Search(ctx, searchParams)
	if err != nil {
		return 0, fmt.Errorf("failed to count vectors: %w", err)
	}
	if result.Found == nil {
		return 0, nil
	}
	return *result.Found, nil
}

// formatVector renders a vector in the bracketed form Typesense expects.
func formatVector(vector []float32) string {
	parts := make([]string, len(vector))
	for i, v := range vector {
		parts[i] = strconv.FormatFloat(float64(v), 'f', -1, 32)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
