package services

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStoreUnavailable is returned when the vector index is not configured or
// cannot be reached. Queries degrade to empty results instead of failing.
var ErrStoreUnavailable = errors.New("vector store unavailable")

// ExtractionError reports a file whose text could not be extracted. The file
// is skipped upstream; the rest of the batch continues.
type ExtractionError struct {
	FileName string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting text from %s: %v", e.FileName, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ModelAttempt records one embedding-model candidate that was tried.
type ModelAttempt struct {
	ModelID string
	Err     error
}

// EmbeddingUnavailableError means every embedding candidate failed or
// returned an empty vector. It carries the per-model attempts.
type EmbeddingUnavailableError struct {
	Attempts []ModelAttempt
}

func (e *EmbeddingUnavailableError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %v", a.ModelID, a.Err))
	}
	return "no embedding model available: " + strings.Join(parts, "; ")
}
