package http

import (
	"github.com/gin-gonic/gin"
	"github.com/nutriscope/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/nutrients", handler.ListNutrients)
		v1.GET("/nutrients/:nutrient/top", handler.TopFoods)
		v1.GET("/nutrients/:nutrient/top/export", handler.ExportTopFoods)

		v1.GET("/foods/:query/nutrients", handler.FoodNutrients)

		profile := v1.Group("/profile")
		{
			profile.POST("", handler.AggregateProfile)
			profile.POST("/evaluate", handler.EvaluateProfile)
			profile.POST("/export", handler.ExportProfile)
		}

		v1.GET("/guidelines", handler.Guidelines)
	}

	return router
}
