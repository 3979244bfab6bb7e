package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	opensearch "github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"knowledgebase/models"
)

// EmbeddingDimension is the vector length of the default embedding model.
const EmbeddingDimension = 1536

const indexMappingTemplate = `{
  "mappings": {
    "properties": {
      "content":   {"type": "text"},
      "file_name": {"type": "keyword"},
      "chunk_id":  {"type": "integer"},
      "embedding": {
        "type": "knn_vector",
        "dimension": %d,
        "method": {
          "name": "hnsw",
          "space_type": "cosinesimilarity"
        }
      }
    }
  }
}`

// OpenSearchStore implements VectorStore against an OpenSearch knn index.
type OpenSearchStore struct {
	client *opensearch.Client
	index  string
}

func NewOpenSearchStore(endpoint, index string) (*OpenSearchStore, error) {
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: []string{endpoint},
		Transport: &http.Transport{ResponseHeaderTimeout: 30 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("creating opensearch client: %w", err)
	}
	return &OpenSearchStore{client: client, index: index}, nil
}

// EnsureIndex creates the index with the fixed knn mapping if it does not
// exist. Concurrent first writers may both attempt creation; the one that
// loses the race observes already-exists, which is treated as success.
func (s *OpenSearchStore) EnsureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: checking index %s: %v", ErrStoreUnavailable, s.index, err)
	}
	res.Body.Close()
	if res.StatusCode == http.StatusOK {
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("checking index %s: %s", s.index, res.Status())
	}

	mapping := fmt.Sprintf(indexMappingTemplate, EmbeddingDimension)
	req := opensearchapi.IndicesCreateRequest{Index: s.index, Body: strings.NewReader(mapping)}
	cres, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("%w: creating index %s: %v", ErrStoreUnavailable, s.index, err)
	}
	defer cres.Body.Close()
	if cres.IsError() {
		body, _ := io.ReadAll(cres.Body)
		if strings.Contains(string(body), "resource_already_exists_exception") {
			return nil
		}
		return fmt.Errorf("creating index %s: %s", s.index, strings.TrimSpace(string(body)))
	}
	log.Printf("STORE: created index %s", s.index)
	return nil
}

// Upsert writes the record under its composite key; the same key overwrites.
func (s *OpenSearchStore) Upsert(ctx context.Context, record models.ChunkRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshaling record %s: %w", record.DocumentID(), err)
	}

	req := opensearchapi.IndexRequest{
		Index:      s.index,
		DocumentID: record.DocumentID(),
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("%w: indexing %s: %v", ErrStoreUnavailable, record.DocumentID(), err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("indexing %s: %s", record.DocumentID(), res.Status())
	}
	return nil
}

// Search runs a k-NN query and returns the top-k records with their scores.
func (s *OpenSearchStore) Search(ctx context.Context, vector []float32, topK int) ([]models.SearchHit, error) {
	query := map[string]any{
		"size": topK,
		"query": map[string]any{
			"knn": map[string]any{
				"embedding": map[string]any{
					"vector": vector,
					"k":      topK,
				},
			},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("marshaling knn query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{s.index},
		Body:  bytes.NewReader(body),
	}
	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("%w: searching index %s: %v", ErrStoreUnavailable, s.index, err)
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		// Nothing has been ingested yet.
		return nil, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("searching index %s: %s", s.index, res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Score  float64            `json:"_score"`
				Source models.ChunkRecord `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	hits := make([]models.SearchHit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		hits = append(hits, models.SearchHit{Record: h.Source, Score: h.Score})
	}
	return hits, nil
}
