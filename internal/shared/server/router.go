package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"researchspark-backend/internal/analyses"
	"researchspark-backend/internal/credentials"
	"researchspark-backend/internal/examples"
	"researchspark-backend/internal/llm/anthropic"
	"researchspark-backend/internal/openalex"
	"researchspark-backend/internal/shared/config"
	"researchspark-backend/internal/shared/metrics"
	"researchspark-backend/internal/shared/server/middleware"
	"researchspark-backend/internal/shared/server/respond"
	"researchspark-backend/internal/uploads"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := credentials.NewStore(cfg.CredentialPath)
	modelClient, err := anthropic.NewClient(cfg.AnthropicBaseURL, cfg.AnthropicModel)
	if err != nil {
		log.Fatalf("model client: %v", err)
	}
	analysisSvc := analyses.NewService(store, modelClient, cfg.AnthropicModel)
	analysisHandler := analyses.NewHandler(analysisSvc)
	uploadHandler := uploads.NewHandler()
	literatureHandler := openalex.NewHandler(openalex.NewClient(cfg.OpenAlexBaseURL, cfg.OpenAlexMailto))
	exampleHandler := examples.NewHandler()

	// A secret loaded from disk is held but unvalidated until re-probed.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		analysisSvc.RevalidateHeldCredential(ctx)
	}()

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	analysisHandler.RegisterRoutes(api)
	uploadHandler.RegisterRoutes(api)
	literatureHandler.RegisterRoutes(api)
	exampleHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
