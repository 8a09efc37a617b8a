package api

import (
	"github.com/gin-gonic/gin"

	"github.com/wearlytic/catalog/internal/metrics"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.GET("/health", handler.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		api.GET("/products", handler.ListProducts)
	}
}
