package entities

// ScoredSnippet is one retrieved knowledge fragment with its similarity score.
// Scores are cosine similarities in [0, 1].
type ScoredSnippet struct {
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// VectorRecord is one embedded chunk destined for the vector index.
type VectorRecord struct {
	ID         string    `json:"id"`
	Values     []float32 `json:"values"`
	Text       string    `json:"text"`
	SourceFile string    `json:"source_file"`
	ChunkIndex int       `json:"chunk_index"`
}
