package services

import (
	"context"

	"knowledgebase/models"
)

// VectorStore abstracts the document index: idempotent creation with a fixed
// schema, upsert by composite key, and k-nearest-neighbor search.
type VectorStore interface {
	EnsureIndex(ctx context.Context) error
	Upsert(ctx context.Context, record models.ChunkRecord) error
	Search(ctx context.Context, vector []float32, topK int) ([]models.SearchHit, error)
}

// disabledStore stands in when no endpoint is configured. Searches return no
// results so queries degrade gracefully; writes report the store unavailable.
type disabledStore struct{}

func NewDisabledStore() VectorStore { return disabledStore{} }

func (disabledStore) EnsureIndex(context.Context) error { return nil }

func (disabledStore) Upsert(context.Context, models.ChunkRecord) error {
	return ErrStoreUnavailable
}

func (disabledStore) Search(context.Context, []float32, int) ([]models.SearchHit, error) {
	return nil, nil
}
