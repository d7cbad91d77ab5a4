package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SetupRoutes registers middleware and the API endpoints on router.
func SetupRoutes(router *gin.Engine, handler *Handler, allowedOrigins []string, logger *logrus.Logger) {
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(CORS(allowedOrigins))

	api := router.Group("/api")
	{
		api.POST("/analyze", handler.AnalyzeProperty)
		api.GET("/health", handler.Health)
	}
}
