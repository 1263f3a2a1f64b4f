package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushantshrestha/health-assistant/internal/application/services"
)

func TestChunkText_ShortContentSingleChunk(t *testing.T) {
	chunks := services.ChunkText("A short medical note.", services.DefaultChunkConfig())
	require.Len(t, chunks, 1)
	assert.Equal(t, "A short medical note.", chunks[0])
}

func TestChunkText_EmptyContent(t *testing.T) {
	assert.Nil(t, services.ChunkText("   \n\n  ", services.DefaultChunkConfig()))
}

func TestChunkText_RespectsSize(t *testing.T) {
	sentence := "Influenza is a contagious respiratory illness caused by influenza viruses. "
	content := strings.Repeat(sentence, 40)

	cfg := services.ChunkConfig{Size: 500, Overlap: 50}
	chunks := services.ChunkText(content, cfg)

	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		// Overlap may extend a chunk slightly beyond the target size
		assert.LessOrEqual(t, len(chunk), cfg.Size+cfg.Overlap+1, "chunk %d too large", i)
	}
}

func TestChunkText_PrefersParagraphBoundaries(t *testing.T) {
	para1 := strings.Repeat("First paragraph sentence. ", 10)
	para2 := strings.Repeat("Second paragraph sentence. ", 10)
	content := strings.TrimSpace(para1) + "\n\n" + strings.TrimSpace(para2)

	chunks := services.ChunkText(content, services.ChunkConfig{Size: 300, Overlap: 0})
	require.GreaterOrEqual(t, len(chunks), 2)
	assert.True(t, strings.HasPrefix(chunks[0], "First paragraph"))
}

func TestChunkText_OverlapCarriesTailForward(t *testing.T) {
	sentence := "Symptoms include fever chills cough and fatigue. "
	content := strings.Repeat(sentence, 30)

	chunks := services.ChunkText(content, services.ChunkConfig{Size: 200, Overlap: 50})
	require.Greater(t, len(chunks), 1)

	// Each later chunk starts with words carried over from the previous one
	tail := chunks[0][len(chunks[0])-20:]
	lastWord := tail[strings.LastIndex(tail, " ")+1:]
	assert.Contains(t, chunks[1], lastWord)
}

func TestChunkText_HardSplitsUnbrokenText(t *testing.T) {
	content := strings.Repeat("x", 1200)
	chunks := services.ChunkText(content, services.ChunkConfig{Size: 500, Overlap: 0})
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 500)
}
