package di

import (
	"fmt"
	"time"

	"bookmark-service/cmd/api/infrastructure"
	"bookmark-service/internal/adapter/cache"
	"bookmark-service/internal/adapter/db/postgres"
	ginhandler "bookmark-service/internal/adapter/gin/handler"
	"bookmark-service/internal/adapter/repository/cached"
	"bookmark-service/internal/config"
	"bookmark-service/internal/usecase/auth"
	"bookmark-service/internal/usecase/bookmark"
	"bookmark-service/internal/usecase/user"
	redisclient "bookmark-service/pkg/redis"
	"bookmark-service/pkg/security"
	"bookmark-service/pkg/token"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	Tokens      *token.Manager

	AuthUC     auth.Usecase
	UserUC     user.Usecase
	BookmarkUC bookmark.Usecase

	AuthHandler     *ginhandler.AuthHandler
	UserHandler     *ginhandler.UserHandler
	BookmarkHandler *ginhandler.BookmarkHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize database
	db, err := infrastructure.NewDatabase(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Apply schema migrations
	if err := db.AutoMigrate(&postgres.UserSchema{}, &postgres.BookmarkSchema{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepoPG(db, l)
	var bookmarkRepo bookmark.Repository = postgres.NewBookmarkRepoPG(db, l)

	// Initialize Redis-backed cache layer when enabled
	var rdb *redisclient.Client
	if cfg.Redis.Enabled {
		rdb, err = infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}

		bookmarkCache := cache.NewRedisBookmarkCache(
			rdb.Client,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			l,
		)
		bookmarkRepo = cached.NewCachedBookmarkRepository(bookmarkRepo, bookmarkCache, l)
	}

	// Initialize security primitives
	hasher := security.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := token.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)

	// Initialize use cases
	authUC := auth.New(userRepo, hasher, tokens, l)
	userUC := user.New(userRepo, l)
	bookmarkUC := bookmark.New(bookmarkRepo, l)

	// Initialize Gin handlers
	authHandler := ginhandler.NewAuthHandler(authUC, l)
	userHandler := ginhandler.NewUserHandler(userUC, l)
	bookmarkHandler := ginhandler.NewBookmarkHandler(bookmarkUC, l)

	return &Container{
		Config:          cfg,
		Logger:          l,
		DB:              db,
		RedisClient:     rdb,
		Tokens:          tokens,
		AuthUC:          authUC,
		UserUC:          userUC,
		BookmarkUC:      bookmarkUC,
		AuthHandler:     authHandler,
		UserHandler:     userHandler,
		BookmarkHandler: bookmarkHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
