package models

import "fmt"

// ChunkRecord is the durable unit stored in the vector index.
type ChunkRecord struct {
	Content   string    `json:"content"`
	FileName  string    `json:"file_name"`
	ChunkID   int       `json:"chunk_id"`
	Embedding []float32 `json:"embedding"`
}

// DocumentID is the composite key for a record; identical keys overwrite.
func (r ChunkRecord) DocumentID() string {
	return fmt.Sprintf("%s_%d", r.FileName, r.ChunkID)
}

// SearchHit is one k-NN result with its relevance score.
type SearchHit struct {
	Record ChunkRecord
	Score  float64
}
