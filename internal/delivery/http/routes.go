package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/maison/backend/config"
)

// SetupRouter creates and configures the Gin router. A nil limiter disables
// rate limiting.
func SetupRouter(cfg *config.Config, handler *Handler, tokens TokenValidator, limiter *RateLimiter, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(limiter.Middleware())
	{
		v1.GET("/recommendations", OptionalAuthMiddleware(tokens), handler.GetRecommendations)

		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/:id", handler.GetProduct)
		}

		preferences := v1.Group("/preferences", RequireAuthMiddleware(tokens))
		{
			preferences.GET("", handler.GetPreferences)
			preferences.PUT("", handler.SavePreferences)
		}
	}

	return router
}
