package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"knowledgebase/models"
)

// NoDocumentsAnswer is returned when retrieval finds nothing to ground an
// answer on.
const NoDocumentsAnswer = "I couldn't find any relevant documents to answer your question."

// DefaultTopK is the number of chunks retrieved when the request leaves
// top_k unset.
const DefaultTopK = 5

// QueryService answers natural-language questions over the indexed corpus.
type QueryService interface {
	Query(ctx context.Context, question string, topK int) (*models.QueryResponse, error)
}

type queryServiceImpl struct {
	embedder  Embedder
	store     VectorStore
	generator AnswerGenerator
}

// NewQueryService creates the query orchestrator. Dependencies are injected
// so entry points construct clients once and pass them in.
func NewQueryService(embedder Embedder, store VectorStore, generator AnswerGenerator) QueryService {
	return &queryServiceImpl{embedder: embedder, store: store, generator: generator}
}

// Query embeds the question, retrieves the top-k most similar chunks, and
// asks the generator for an answer grounded in their concatenated text.
func (s *queryServiceImpl) Query(ctx context.Context, question string, topK int) (*models.QueryResponse, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}
	log.Printf("QUERY: question %q (top_k=%d)", question, topK)

	vector, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %w", err)
	}

	hits, err := s.store.Search(ctx, vector, topK)
	if err != nil {
		if !errors.Is(err, ErrStoreUnavailable) {
			return nil, fmt.Errorf("searching index: %w", err)
		}
		log.Printf("QUERY: store unavailable, returning no results: %v", err)
		hits = nil
	}

	if len(hits) == 0 {
		return &models.QueryResponse{Answer: NoDocumentsAnswer, Sources: []models.Source{}}, nil
	}

	contents := make([]string, 0, len(hits))
	sources := make([]models.Source, 0, len(hits))
	for _, h := range hits {
		contents = append(contents, h.Record.Content)
		sources = append(sources, models.Source{
			File:  h.Record.FileName,
			Chunk: h.Record.ChunkID,
			Score: h.Score,
		})
	}

	answer := s.generator.Generate(ctx, question, strings.Join(contents, "\n\n"))
	return &models.QueryResponse{Answer: answer, Sources: sources}, nil
}
