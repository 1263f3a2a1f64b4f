package services

import (
	"strings"
)

// ChunkConfig controls how documents are split before embedding.
type ChunkConfig struct {
	// Size: target chunk size in characters
	Size int
	// Overlap: character overlap between adjacent chunks
	Overlap int
}

// DefaultChunkConfig matches the index the knowledge base was built with.
func DefaultChunkConfig() ChunkConfig {
	return ChunkConfig{Size: 500, Overlap: 50}
}

// separators are tried in order; the first one that produces pieces small
// enough is used, recursing on oversized pieces with the next separator.
var separators = []string{"\n\n", "\n", ". ", "! ", "? ", " "}

// ChunkText splits content into chunks of roughly config.Size characters,
// preferring paragraph and sentence boundaries, then applies overlap.
func ChunkText(content string, config ChunkConfig) []string {
	if config.Size <= 0 {
		config = DefaultChunkConfig()
	}

	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil
	}

	pieces := splitRecursive(trimmed, config.Size, 0)
	chunks := mergePieces(pieces, config.Size)
	return applyOverlap(chunks, config.Overlap)
}

func splitRecursive(text string, size int, sepIdx int) []string {
	if len(text) <= size {
		return []string{text}
	}
	if sepIdx >= len(separators) {
		// No separator left; hard-split
		var parts []string
		for len(text) > size {
			parts = append(parts, text[:size])
			text = text[size:]
		}
		if text != "" {
			parts = append(parts, text)
		}
		return parts
	}

	sep := separators[sepIdx]
	raw := strings.SplitAfter(text, sep)
	if len(raw) == 1 {
		return splitRecursive(text, size, sepIdx+1)
	}

	var parts []string
	for _, piece := range raw {
		if len(piece) > size {
			parts = append(parts, splitRecursive(piece, size, sepIdx+1)...)
		} else if strings.TrimSpace(piece) != "" {
			parts = append(parts, piece)
		}
	}
	return parts
}

// mergePieces greedily packs consecutive pieces into chunks up to size.
func mergePieces(pieces []string, size int) []string {
	var chunks []string
	var current strings.Builder

	for _, piece := range pieces {
		if current.Len() > 0 && current.Len()+len(piece) > size {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(piece)
	}
	if strings.TrimSpace(current.String()) != "" {
		chunks = append(chunks, strings.TrimSpace(current.String()))
	}

	return chunks
}

// applyOverlap prefixes each chunk after the first with the tail of the
// previous chunk, cut at a word boundary.
func applyOverlap(chunks []string, overlap int) []string {
	if overlap <= 0 || len(chunks) <= 1 {
		return chunks
	}

	result := make([]string, len(chunks))
	copy(result, chunks)

	for i := 1; i < len(result); i++ {
		prev := chunks[i-1]
		if len(prev) <= overlap {
			continue
		}
		overlapText := prev[len(prev)-overlap:]
		if spaceIdx := strings.Index(overlapText, " "); spaceIdx != -1 {
			overlapText = overlapText[spaceIdx+1:]
		}
		if overlapText != "" {
			result[i] = overlapText + " " + result[i]
		}
	}

	return result
}
