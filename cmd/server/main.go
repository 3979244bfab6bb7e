package main

import (
	"context"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"google.golang.org/genai"

	"knowledgebase/config"
	"knowledgebase/controller"
	"knowledgebase/services"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.BedrockRegion))
	if err != nil {
		log.Fatalf("FATAL: Failed to load AWS configuration: %v", err)
	}
	embedder := services.NewBedrockEmbedder(bedrockruntime.NewFromConfig(awsCfg), cfg.EmbeddingModels)

	var store services.VectorStore
	if cfg.OpenSearchEndpoint == "" {
		log.Println("OPENSEARCH_ENDPOINT not set; vector store disabled, queries will return no results.")
		store = services.NewDisabledStore()
	} else {
		store, err = services.NewOpenSearchStore(cfg.OpenSearchEndpoint, cfg.IndexName)
		if err != nil {
			log.Fatalf("FATAL: Failed to create vector store client: %v", err)
		}
	}

	geminiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatalf("FATAL: Failed to create Gemini client: %v. Make sure GEMINI_API_KEY is set.", err)
	}
	generator := services.NewGeminiGenerator(geminiClient, cfg.GenerationModel)

	queryService := services.NewQueryService(embedder, store, generator)
	kbController := controller.NewKBController(queryService, cfg)

	router := gin.Default()

	// Permissive CORS for testing.
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Tag every request so logs from one invocation can be correlated.
	router.Use(func(c *gin.Context) {
		c.Header("X-Request-ID", uuid.NewString())
		c.Next()
	})

	router.GET("/", kbController.Root)
	router.GET("/health", kbController.Health)
	router.GET("/test-aws", kbController.TestAWS)
	router.POST("/query", kbController.Query)

	log.Printf("Knowledge base API starting on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("FATAL: Failed to start server: %v", err)
	}
}
