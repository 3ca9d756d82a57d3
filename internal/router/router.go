package router

import (
	"github.com/gin-gonic/gin"

	"idvex/internal/config"
	"idvex/internal/handler"
	"idvex/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	extractH *handler.ExtractHandler,
	fetchH *handler.FetchHandler,
	tokenH *handler.TokenHandler,
	docsH *handler.DocsHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	// Extraction routes
	v1.POST("/extract", extractH.Extract)
	v1.POST("/extract/export", extractH.Export)

	// Upstream fetch - requires a bearer token for the regional API
	results := v1.Group("/results")
	results.Use(middleware.BearerToken())
	results.GET("/:requestId", fetchH.GetResult)

	// Token inspection
	v1.POST("/token/inspect", tokenH.Inspect)

	// Taxonomy documentation
	docs := v1.Group("/documentation")
	docs.GET("/processing", docsH.Processing)
	docs.GET("/risk", docsH.Risk)
	docs.GET("/primary", docsH.Primary)
	docs.GET("/categories", docsH.Categories)

	return r
}
