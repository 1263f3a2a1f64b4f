package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_VectorIndexConfig(t *testing.T) {
	os.Setenv("VECTOR_INDEX_NAME", "test-index")
	os.Setenv("VECTOR_INDEX_NAMESPACE", "conditions")
	os.Setenv("VECTOR_RELEVANCE_THRESHOLD", "0.75")
	defer func() {
		os.Unsetenv("VECTOR_INDEX_NAME")
		os.Unsetenv("VECTOR_INDEX_NAMESPACE")
		os.Unsetenv("VECTOR_RELEVANCE_THRESHOLD")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "test-index", cfg.VectorIndex.Collection)
	assert.Equal(t, "conditions", cfg.VectorIndex.Namespace)
	assert.Equal(t, 0.75, cfg.VectorIndex.RelevanceThreshold)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("VECTOR_INDEX_NAME")
	os.Unsetenv("OPENAI_CHAT_MODEL")
	os.Unsetenv("OPENAI_EMBEDDING_MODEL")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "health-assistant", cfg.VectorIndex.Collection)
	assert.Equal(t, "diseases", cfg.VectorIndex.Namespace)
	assert.Equal(t, 1536, cfg.VectorIndex.Dimension)
	assert.Equal(t, 0.8, cfg.VectorIndex.RelevanceThreshold)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.ChatModel)
	assert.Equal(t, "text-embedding-3-small", cfg.OpenAI.EmbeddingModel)
	assert.Equal(t, "mock", cfg.Geolocation.Provider)
}

func TestLoad_InvalidNumericFallsBack(t *testing.T) {
	os.Setenv("VECTOR_TOP_K", "not-a-number")
	defer os.Unsetenv("VECTOR_TOP_K")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 5, cfg.VectorIndex.TopK)
}
