package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"knowledgebase/models"
)

type fakeEmbedder struct {
	vector []float32
	err    error
	texts  []string
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.texts = append(f.texts, text)
	return f.vector, f.err
}

type fakeStore struct {
	hits      []models.SearchHit
	searchErr error
	lastTopK  int
	records   map[string]models.ChunkRecord
	upsertErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]models.ChunkRecord{}}
}

func (f *fakeStore) EnsureIndex(context.Context) error { return nil }

func (f *fakeStore) Upsert(_ context.Context, record models.ChunkRecord) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.records[record.DocumentID()] = record
	return nil
}

func (f *fakeStore) Search(_ context.Context, _ []float32, topK int) ([]models.SearchHit, error) {
	f.lastTopK = topK
	return f.hits, f.searchErr
}

type fakeGenerator struct {
	answer      string
	lastContext string
}

func (f *fakeGenerator) Generate(_ context.Context, _, contextText string) string {
	f.lastContext = contextText
	return f.answer
}

func TestQueryNoHitsReturnsFixedAnswer(t *testing.T) {
	svc := NewQueryService(&fakeEmbedder{vector: []float32{1}}, newFakeStore(), &fakeGenerator{answer: "unused"})

	resp, err := svc.Query(context.Background(), "what is this?", 5)

	require.NoError(t, err)
	assert.Equal(t, NoDocumentsAnswer, resp.Answer)
	assert.Equal(t, []models.Source{}, resp.Sources)
}

func TestQueryAssemblesContextAndSources(t *testing.T) {
	store := newFakeStore()
	store.hits = []models.SearchHit{
		{Record: models.ChunkRecord{Content: "first chunk", FileName: "a.txt", ChunkID: 0}, Score: 0.9},
		{Record: models.ChunkRecord{Content: "second chunk", FileName: "b.txt", ChunkID: 3}, Score: 0.7},
	}
	gen := &fakeGenerator{answer: "the answer"}
	svc := NewQueryService(&fakeEmbedder{vector: []float32{1}}, store, gen)

	resp, err := svc.Query(context.Background(), "what is this?", 2)

	require.NoError(t, err)
	assert.Equal(t, "the answer", resp.Answer)
	assert.Equal(t, "first chunk\n\nsecond chunk", gen.lastContext)
	assert.Equal(t, []models.Source{
		{File: "a.txt", Chunk: 0, Score: 0.9},
		{File: "b.txt", Chunk: 3, Score: 0.7},
	}, resp.Sources)
}

func TestQueryDefaultsTopK(t *testing.T) {
	store := newFakeStore()
	svc := NewQueryService(&fakeEmbedder{vector: []float32{1}}, store, &fakeGenerator{})

	_, err := svc.Query(context.Background(), "question", 0)

	require.NoError(t, err)
	assert.Equal(t, DefaultTopK, store.lastTopK)
}

func TestQueryEmbeddingFailurePropagates(t *testing.T) {
	embedder := &fakeEmbedder{err: &EmbeddingUnavailableError{Attempts: []ModelAttempt{{ModelID: "m", Err: errors.New("down")}}}}
	svc := NewQueryService(embedder, newFakeStore(), &fakeGenerator{})

	_, err := svc.Query(context.Background(), "question", 5)

	var unavailable *EmbeddingUnavailableError
	assert.ErrorAs(t, err, &unavailable)
}

func TestQueryStoreUnavailableDegradesToNoResults(t *testing.T) {
	store := newFakeStore()
	store.searchErr = fmt.Errorf("%w: connection refused", ErrStoreUnavailable)
	svc := NewQueryService(&fakeEmbedder{vector: []float32{1}}, store, &fakeGenerator{answer: "unused"})

	resp, err := svc.Query(context.Background(), "question", 5)

	require.NoError(t, err)
	assert.Equal(t, NoDocumentsAnswer, resp.Answer)
	assert.Empty(t, resp.Sources)
}

func TestQueryOtherSearchErrorsFail(t *testing.T) {
	store := newFakeStore()
	store.searchErr = errors.New("mapping mismatch")
	svc := NewQueryService(&fakeEmbedder{vector: []float32{1}}, store, &fakeGenerator{})

	_, err := svc.Query(context.Background(), "question", 5)

	assert.Error(t, err)
}
