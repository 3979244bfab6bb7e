package services

import "strings"

const (
	DefaultChunkSize = 1000
	DefaultOverlap   = 100

	// MinChunkChars is the shortest trimmed chunk worth embedding.
	MinChunkChars = 50
)

// Chunker splits document text into overlapping fixed-size chunks, snapping
// chunk edges to sentence boundaries where possible.
type Chunker struct {
	chunkSize int
	overlap   int
}

func NewChunker(chunkSize, overlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	return &Chunker{chunkSize: chunkSize, overlap: overlap}
}

// Split returns the ordered chunks covering text. Neighboring chunks overlap
// by the configured amount; whitespace-only chunks are dropped. Chunk start
// offsets strictly increase, so the loop terminates for any configuration.
func (c *Chunker) Split(text string) []string {
	if len(text) <= c.chunkSize {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return []string{trimmed}
	}

	var chunks []string
	start := 0
	for start < len(text) {
		end := start + c.chunkSize

		if end < len(text) {
			// Snap the edge to just after the last period, but only when it
			// falls inside the window's final 100 characters.
			if dot := strings.LastIndex(text[start:end], "."); dot >= 0 && start+dot > end-100 {
				end = start + dot + 1
			}
		}

		sliceEnd := end
		if sliceEnd > len(text) {
			sliceEnd = len(text)
		}
		if chunk := strings.TrimSpace(text[start:sliceEnd]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := end - c.overlap
		if next <= start {
			// Degenerate overlap or an aggressive snap; never move backward.
			next = sliceEnd
		}
		start = next
	}
	return chunks
}
