package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"knowledgebase/models"
)

// Embedder converts text into a fixed-dimension numeric vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ModelInvoker is the slice of the Bedrock runtime client used here, kept as
// an interface so tests can substitute a fake.
type ModelInvoker interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// BedrockEmbedder generates embeddings by trying an ordered list of model
// candidates; the first one returning a non-empty vector wins.
type BedrockEmbedder struct {
	client   ModelInvoker
	modelIDs []string
}

func NewBedrockEmbedder(client ModelInvoker, modelIDs []string) *BedrockEmbedder {
	if len(modelIDs) == 0 {
		modelIDs = []string{"amazon.titan-embed-text-v1"}
	}
	return &BedrockEmbedder{client: client, modelIDs: modelIDs}
}

// Embed implements Embedder. A failed call or an empty vector advances to the
// next candidate; if all candidates are exhausted an
// EmbeddingUnavailableError carrying every attempt is returned.
func (e *BedrockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	body, err := json.Marshal(models.TitanEmbedRequest{InputText: text})
	if err != nil {
		return nil, fmt.Errorf("marshaling embedding request: %w", err)
	}

	var attempts []ModelAttempt
	for _, modelID := range e.modelIDs {
		out, err := e.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
			ModelId:     aws.String(modelID),
			Body:        body,
			ContentType: aws.String("application/json"),
			Accept:      aws.String("application/json"),
		})
		if err != nil {
			log.Printf("EMBED: model %s failed: %v", modelID, err)
			attempts = append(attempts, ModelAttempt{ModelID: modelID, Err: err})
			continue
		}

		var parsed models.TitanEmbedResponse
		if err := json.Unmarshal(out.Body, &parsed); err != nil {
			log.Printf("EMBED: model %s returned an unparseable body: %v", modelID, err)
			attempts = append(attempts, ModelAttempt{ModelID: modelID, Err: err})
			continue
		}
		if len(parsed.Embedding) == 0 {
			attempts = append(attempts, ModelAttempt{ModelID: modelID, Err: errors.New("empty embedding returned")})
			continue
		}
		return parsed.Embedding, nil
	}

	return nil, &EmbeddingUnavailableError{Attempts: attempts}
}
