package router

import (
	"net/http"

	"bookmark-service/internal/adapter/gin/handler"
	"bookmark-service/internal/adapter/gin/middleware"
	"bookmark-service/pkg/logger"
	"bookmark-service/pkg/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	bookmarkHandler *handler.BookmarkHandler,
	tokens *token.Manager,
	redisClient *redis.Client,
	rateCfg middleware.RateLimiterConfig,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(logger.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.RateLimiter(redisClient, rateCfg, log))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "bookmark-service",
		})
	})

	// Public routes
	auth := router.Group("/auth")
	{
		auth.POST("/signup", authHandler.SignUp)
		auth.POST("/signin", authHandler.SignIn)
	}

	// Protected routes
	protected := router.Group("")
	protected.Use(middleware.Auth(tokens, log))
	{
		users := protected.Group("/users")
		{
			users.GET("/me", userHandler.GetMe)
			users.PATCH("", userHandler.UpdateProfile)
		}

		bookmarks := protected.Group("/bookmarks")
		{
			bookmarks.GET("", bookmarkHandler.List)
			bookmarks.GET("/:id", bookmarkHandler.GetByID)
			bookmarks.POST("", bookmarkHandler.Create)
			bookmarks.PATCH("/:id", bookmarkHandler.Update)
			bookmarks.DELETE("/:id", bookmarkHandler.Delete)
		}
	}

	return router
}
