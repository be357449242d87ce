package server

import (
	"net/http"
	"time"

	ginhandler "bookmark-service/internal/adapter/gin/handler"
	"bookmark-service/internal/adapter/gin/middleware"
	ginrouter "bookmark-service/internal/adapter/gin/router"
	"bookmark-service/pkg/token"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SetupGinServer creates and configures the Gin REST API server
func SetupGinServer(
	authHandler *ginhandler.AuthHandler,
	userHandler *ginhandler.UserHandler,
	bookmarkHandler *ginhandler.BookmarkHandler,
	tokens *token.Manager,
	redisClient *goredis.Client,
	rateCfg middleware.RateLimiterConfig,
	ginAddr string,
	l *zap.Logger,
) *http.Server {
	// Setup Gin router with all middleware and routes
	router := ginrouter.SetupRouter(authHandler, userHandler, bookmarkHandler, tokens, redisClient, rateCfg, l)

	l.Info("Gin REST API configured", zap.String("address", ginAddr))

	return &http.Server{
		Addr:              ginAddr,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
