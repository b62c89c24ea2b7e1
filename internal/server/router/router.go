package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agrilync/farmtrack/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(handler *handlers.JourneyHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	api := r.Group("/api")
	{
		api.GET("/farmers/:farmerID/journey", handler.GetJourney)
		api.DELETE("/farmers/:farmerID/journey", handler.CloseJourney)
		api.POST("/farmers/:farmerID/farms", handler.ProvisionFarm)
		api.PUT("/farmers/:farmerID/journey/stage", handler.SetStage)
		api.PATCH("/farmers/:farmerID/journey/stages/:stage", handler.UpdateStageMeta)
		api.POST("/farmers/:farmerID/journey/stages/:stage/activities", handler.LogActivity)

		api.GET("/catalog/:category/stages", handler.GetStages)
		api.GET("/catalog/:category/stages/:stage/schema", handler.GetStageSchema)

		api.GET("/geo/communities", handler.GetCommunities)
		api.GET("/geo/languages", handler.GetLanguages)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
