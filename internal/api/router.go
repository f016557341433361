package api

import (
	"log/slog"
	"net/http"

	"fdm-dividend/internal/api/handlers"
	"fdm-dividend/internal/api/middleware"
	"fdm-dividend/internal/config"
	"fdm-dividend/internal/data"

	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and routes. cache may be nil.
func NewRouter(cfg config.Server, cache *data.AdjusterCache, logger *slog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))

	gridHandler := handlers.NewGridHandler(cache, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "cache_entries": cache.Len()})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/adjust", gridHandler.Adjust)
		api.POST("/rollback", gridHandler.Rollback)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "Not found"}})
	})
	return router
}
