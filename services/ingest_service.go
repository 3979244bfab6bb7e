package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"knowledgebase/models"
)

// IngestService turns uploaded objects into indexed chunk records. Failures
// are isolated per chunk and per file: one bad record never aborts a batch.
type IngestService struct {
	objects  ObjectStore
	embedder Embedder
	store    VectorStore
	chunker  *Chunker
}

func NewIngestService(objects ObjectStore, embedder Embedder, store VectorStore, chunker *Chunker) *IngestService {
	if chunker == nil {
		chunker = NewChunker(DefaultChunkSize, DefaultOverlap)
	}
	return &IngestService{objects: objects, embedder: embedder, store: store, chunker: chunker}
}

// ProcessBatch ingests every referenced object, collecting per-file results.
// File failures are recorded, not propagated; the batch always completes.
func (s *IngestService) ProcessBatch(ctx context.Context, refs []models.ObjectRef) models.BatchResult {
	batchID := uuid.NewString()
	log.Printf("INGEST: batch %s: processing %d objects", batchID, len(refs))

	if err := s.store.EnsureIndex(ctx); err != nil {
		// Upserts will fail per chunk and be recorded below.
		log.Printf("INGEST: batch %s: ensure index: %v", batchID, err)
	}

	result := models.BatchResult{ProcessedFiles: len(refs)}
	for _, ref := range refs {
		fr := s.processObject(ctx, ref)
		if fr.Err != nil {
			log.Printf("INGEST: batch %s: file %s failed: %v", batchID, ref.Key, fr.Err)
		} else {
			log.Printf("INGEST: batch %s: file %s: indexed %d of %d chunks (%d too short, %d failed)",
				batchID, ref.Key, fr.Indexed, fr.Chunks, fr.Skipped, len(fr.ChunkErrors))
		}
		result.Files = append(result.Files, fr)
	}
	return result
}

func (s *IngestService) processObject(ctx context.Context, ref models.ObjectRef) models.FileResult {
	log.Printf("INGEST: processing file %s from bucket %s", ref.Key, ref.Bucket)
	data, err := s.objects.Download(ctx, ref.Bucket, ref.Key)
	if err != nil {
		return models.FileResult{Key: ref.Key, Err: err}
	}
	return s.IngestDocument(ctx, ref.Key, data)
}

// IngestDocument extracts, chunks, embeds, and indexes one document. Chunks
// shorter than MinChunkChars after trimming are skipped without embedding;
// chunk-level failures are recorded and the remaining chunks continue.
func (s *IngestService) IngestDocument(ctx context.Context, fileName string, data []byte) models.FileResult {
	result := models.FileResult{Key: fileName}

	text, err := ExtractText(fileName, data)
	if err != nil {
		result.Err = err
		return result
	}
	if strings.TrimSpace(text) == "" {
		log.Printf("INGEST: no text content extracted from %s", fileName)
		return result
	}

	chunks := s.chunker.Split(text)
	result.Chunks = len(chunks)
	log.Printf("INGEST: split %s into %d chunks", fileName, len(chunks))

	for i, chunk := range chunks {
		if len(chunk) < MinChunkChars {
			result.Skipped++
			continue
		}

		vector, err := s.embedder.Embed(ctx, chunk)
		if err != nil {
			log.Printf("INGEST: embedding chunk %d of %s: %v", i, fileName, err)
			result.ChunkErrors = append(result.ChunkErrors, models.ChunkError{Index: i, Err: err})
			continue
		}

		record := models.ChunkRecord{
			Content:   chunk,
			FileName:  fileName,
			ChunkID:   i,
			Embedding: vector,
		}
		if err := s.store.Upsert(ctx, record); err != nil {
			log.Printf("INGEST: storing chunk %d of %s: %v", i, fileName, err)
			result.ChunkErrors = append(result.ChunkErrors, models.ChunkError{Index: i, Err: err})
			continue
		}
		result.Indexed++
	}
	return result
}
