package http

import (
	"github.com/Liorohan10/Skin-Sage/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, limiter *IPRateLimiter) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(RecoveryMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check and metrics endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(RateLimitMiddleware(limiter))
	}
	{
		v1.POST("/analyze", handler.Analyze)

		results := v1.Group("/results")
		{
			results.GET("/:id", handler.GetResult)
			results.GET("/:id/pdf", handler.ExportResult)
		}

		v1.POST("/recommendations", handler.Recommend)
		v1.POST("/routine", handler.Routine)
		v1.GET("/concerns", handler.InferConcerns)
		v1.GET("/products", handler.ListProducts)
	}

	return router
}
