package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment-sourced settings for both the query server
// and the ingestion handler.
type Config struct {
	Region string

	// OpenSearchEndpoint is the vector index endpoint. Empty means the store
	// is disabled: queries return no results and upserts are rejected.
	OpenSearchEndpoint string
	IndexName          string

	// EmbeddingModels is the ordered fallback list of Bedrock model ids.
	EmbeddingModels []string
	BedrockRegion   string

	GeminiAPIKey    string
	GenerationModel string

	Port string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg := &Config{
		Region:             getEnv("AWS_REGION", "us-east-1"),
		OpenSearchEndpoint: os.Getenv("OPENSEARCH_ENDPOINT"),
		IndexName:          getEnv("OPENSEARCH_INDEX", "documents"),
		BedrockRegion:      os.Getenv("BEDROCK_REGION"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GenerationModel:    getEnv("GENERATION_MODEL", "gemini-2.5-flash"),
		Port:               getEnv("PORT", "8080"),
	}
	if cfg.BedrockRegion == "" {
		cfg.BedrockRegion = cfg.Region
	}

	if models := os.Getenv("EMBEDDING_MODELS"); models != "" {
		for _, m := range strings.Split(models, ",") {
			if m = strings.TrimSpace(m); m != "" {
				cfg.EmbeddingModels = append(cfg.EmbeddingModels, m)
			}
		}
	}
	if len(cfg.EmbeddingModels) == 0 {
		cfg.EmbeddingModels = []string{
			"amazon.titan-embed-text-v1",
			"amazon.titan-embed-text-v2:0",
			"cohere.embed-english-v3",
		}
	}

	return cfg
}

// EndpointForHealth is what /health echoes for the store endpoint.
func (c *Config) EndpointForHealth() string {
	if c.OpenSearchEndpoint == "" {
		return "not-configured"
	}
	return c.OpenSearchEndpoint
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
