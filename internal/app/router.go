package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"calmroute/internal/handler"
	"calmroute/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	EvaluationHandler *handler.EvaluationHandler
	SavedRouteHandler *handler.SavedRouteHandler
	PreferenceHandler *handler.PreferenceHandler
	RedisClient       *redis.Client
	NewRelicApp       *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Evaluation session routes.
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", deps.EvaluationHandler.CreateSession)
			sessions.DELETE("/:id", deps.EvaluationHandler.DeleteSession)
			sessions.POST("/:id/evaluate", deps.EvaluationHandler.Evaluate)
			sessions.GET("/:id/state", deps.EvaluationHandler.GetState)
			sessions.GET("/:id/stream", deps.EvaluationHandler.Stream)
			sessions.POST("/:id/clear-error", deps.EvaluationHandler.ClearError)
			sessions.POST("/:id/reset", deps.EvaluationHandler.Reset)
		}

		// Saved route routes.
		savedRoutes := v1.Group("/saved-routes")
		{
			savedRoutes.POST("", deps.SavedRouteHandler.Save)
			savedRoutes.GET("", deps.SavedRouteHandler.ListByUser)
			savedRoutes.GET("/:id", deps.SavedRouteHandler.GetByID)
		}

		// Preference routes.
		preferences := v1.Group("/preferences")
		{
			preferences.GET("/:userID", deps.PreferenceHandler.Get)
			preferences.PUT("/:userID", deps.PreferenceHandler.Upsert)
		}
	}

	return router
}
