package server

import (
	"errors"
	"net/http"

	"bookmark-service/cmd/api/di"
	"bookmark-service/internal/adapter/gin/middleware"
	"bookmark-service/internal/config"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance wired from the container
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	var redisClient *goredis.Client
	if c.RedisClient != nil {
		redisClient = c.RedisClient.Client
	}

	httpServer := SetupGinServer(
		c.AuthHandler,
		c.UserHandler,
		c.BookmarkHandler,
		c.Tokens,
		redisClient,
		middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           cfg.RateLimit.Enabled,
		},
		":"+cfg.App.HTTPPort,
		l,
	)

	return &Server{
		Config: cfg,
		Logger: l,
		HTTP:   httpServer,
	}
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.Logger.Info("REST API running", zap.String("address", s.HTTP.Addr))
	if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
