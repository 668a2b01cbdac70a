package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configures the Gin router with middlewares and routes.
func NewRouter(
	logger *zap.Logger,
	allowedOrigins []string,
	chatH *ChatHandler,
	userH *UserHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.POST("/chat", chatH.Chat)
	api.GET("/health", chatH.Health)
	api.GET("/history/:sessionId", chatH.GetHistory)
	api.DELETE("/history/:sessionId", chatH.ClearHistory)

	// User routes need a database; they are simply absent without one.
	if userH != nil {
		users := api.Group("/users")
		users.GET("", userH.List)
		users.GET("/:id", userH.Get)
		users.POST("", userH.Create)
		users.PUT("/:id", userH.Update)
		users.DELETE("/:id", userH.Delete)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Endpoint not found",
			"success": false,
			"availableEndpoints": []string{
				"POST /api/chat",
				"GET /api/health",
				"GET /api/history/:sessionId",
				"DELETE /api/history/:sessionId",
			},
		})
	})

	return r
}

// zapLoggerMiddleware logs each request with zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
