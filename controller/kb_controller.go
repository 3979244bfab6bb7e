package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"knowledgebase/config"
	"knowledgebase/models"
	"knowledgebase/services"
)

// KBController handles the HTTP surface of the knowledge base API. It
// depends on the QueryService for the actual retrieval pipeline.
type KBController struct {
	queryService services.QueryService
	cfg          *config.Config

	// probeAWS is swappable for tests.
	probeAWS func(ctx context.Context, fallbackRegion string) (string, error)
}

// NewKBController is called from the server entry point to inject the
// service and configuration dependencies.
func NewKBController(queryService services.QueryService, cfg *config.Config) *KBController {
	return &KBController{
		queryService: queryService,
		cfg:          cfg,
		probeAWS:     services.ProbeAWS,
	}
}

// Root is the gin handler for GET /.
func (c *KBController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "AI Knowledge Base API",
		"status":  "running",
	})
}

// Health is the gin handler for GET /health; it echoes the effective
// environment configuration.
func (c *KBController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":              "healthy",
		"environment":         c.cfg.Region,
		"opensearch_endpoint": c.cfg.EndpointForHealth(),
	})
}

// TestAWS is the gin handler for GET /test-aws, a connectivity probe.
func (c *KBController) TestAWS(ctx *gin.Context) {
	region, err := c.probeAWS(ctx.Request.Context(), c.cfg.Region)
	if err != nil {
		ctx.JSON(http.StatusOK, gin.H{"aws_available": false, "error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"aws_available": true, "region": region})
}

// Query is the gin handler for POST /query. It parses the request, delegates
// to the service layer, and maps failures to a 500 with a detail message.
func (c *KBController) Query(ctx *gin.Context) {
	var req models.QueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body: " + err.Error()})
		return
	}

	response, err := c.queryService.Query(ctx.Request.Context(), req.Question, req.TopK)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
