package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"net/url"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"knowledgebase/config"
	"knowledgebase/models"
	"knowledgebase/services"
)

func main() {
	eventPath := flag.String("event", "", "process a local JSON file of {bucket,key} objects and exit")
	watchDir := flag.String("watch", "", "watch a local directory and ingest files as they change")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	ingestService, err := buildIngestService(ctx, cfg)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	switch {
	case os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "":
		lambda.Start(func(ctx context.Context, event events.S3Event) (models.IngestResponse, error) {
			return handleS3Event(ctx, ingestService, event), nil
		})

	case *watchDir != "":
		if err := ingestService.WatchDirectory(ctx, *watchDir); err != nil {
			log.Fatalf("FATAL: %v", err)
		}

	case *eventPath != "":
		refs, err := readLocalEvent(*eventPath)
		if err != nil {
			log.Fatalf("FATAL: %v", err)
		}
		result := ingestService.ProcessBatch(ctx, refs)
		out, _ := json.MarshalIndent(batchResponse(result), "", "  ")
		os.Stdout.Write(append(out, '\n'))

	default:
		log.Fatal("FATAL: not running in Lambda; pass -event <file.json> or -watch <dir>")
	}
}

func buildIngestService(ctx context.Context, cfg *config.Config) (*services.IngestService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.BedrockRegion))
	if err != nil {
		return nil, err
	}

	embedder := services.NewBedrockEmbedder(bedrockruntime.NewFromConfig(awsCfg), cfg.EmbeddingModels)
	objects := services.NewS3ObjectStore(s3.NewFromConfig(awsCfg))

	var store services.VectorStore
	if cfg.OpenSearchEndpoint == "" {
		log.Println("OPENSEARCH_ENDPOINT not set; vector store disabled, chunks will not be indexed.")
		store = services.NewDisabledStore()
	} else {
		store, err = services.NewOpenSearchStore(cfg.OpenSearchEndpoint, cfg.IndexName)
		if err != nil {
			return nil, err
		}
	}

	return services.NewIngestService(objects, embedder, store, nil), nil
}

// handleS3Event adapts a storage-notification batch into ingestion runs. The
// handler never fails the invocation for per-file problems; only an
// unusable event yields a 500 envelope.
func handleS3Event(ctx context.Context, svc *services.IngestService, event events.S3Event) models.IngestResponse {
	refs := make([]models.ObjectRef, 0, len(event.Records))
	for _, record := range event.Records {
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			log.Printf("INGEST: undecodable object key %q: %v", record.S3.Object.Key, err)
			return models.IngestResponse{
				StatusCode: 500,
				Body:       models.IngestResponseBody{Error: err.Error()},
			}
		}
		refs = append(refs, models.ObjectRef{Bucket: record.S3.Bucket.Name, Key: key})
	}

	return batchResponse(svc.ProcessBatch(ctx, refs))
}

func batchResponse(result models.BatchResult) models.IngestResponse {
	return models.IngestResponse{
		StatusCode: 200,
		Body: models.IngestResponseBody{
			Message:        "Processing completed",
			ProcessedFiles: result.ProcessedFiles,
		},
	}
}

func readLocalEvent(path string) ([]models.ObjectRef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var refs []models.ObjectRef
	if err := json.Unmarshal(data, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}
