package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("OPENSEARCH_ENDPOINT", "")
	t.Setenv("BEDROCK_REGION", "")
	t.Setenv("EMBEDDING_MODELS", "")
	t.Setenv("PORT", "")

	cfg := Load()

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "us-east-1", cfg.BedrockRegion)
	assert.Equal(t, "documents", cfg.IndexName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{
		"amazon.titan-embed-text-v1",
		"amazon.titan-embed-text-v2:0",
		"cohere.embed-english-v3",
	}, cfg.EmbeddingModels)
	assert.Equal(t, "not-configured", cfg.EndpointForHealth())
}

func TestLoadCustomEmbeddingModels(t *testing.T) {
	t.Setenv("EMBEDDING_MODELS", "model-a, model-b ,")

	cfg := Load()

	assert.Equal(t, []string{"model-a", "model-b"}, cfg.EmbeddingModels)
}

func TestLoadEndpointEcho(t *testing.T) {
	t.Setenv("OPENSEARCH_ENDPOINT", "https://search.example.com")

	cfg := Load()

	assert.Equal(t, "https://search.example.com", cfg.EndpointForHealth())
}
