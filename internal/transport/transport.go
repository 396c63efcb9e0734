package transport

import (
	"github.com/ds124wfegd/ai-power-backend/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

func InitRoutes(generateHandler *GenerateHandler) *gin.Engine {
	router := gin.New()

	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(30))

	// API routes
	api := router.Group("/api/generate")
	{
		api.POST("/text", generateHandler.GenerateText)
		api.POST("/image", generateHandler.GenerateImage)
		api.POST("/script", generateHandler.GenerateScript)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "AI Power Backend ready",
		})
	})

	router.GET("/api/hello", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello from the backend API!",
		})
	})

	router.GET("/test", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"backend":  "✅ Running",
			"database": "ℹ️ Not required for this prototype",
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "ai-power-backend",
		})
	})

	return router
}
