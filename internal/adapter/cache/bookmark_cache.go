package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domain "bookmark-service/internal/domain/bookmark"
)

// BookmarkCache defines the interface for bookmark caching operations.
// Keys are owner-scoped so a cache hit can never leak another user's record.
type BookmarkCache interface {
	// Get retrieves a bookmark from cache. Returns nil on a miss.
	Get(ctx context.Context, ownerID, id int64) (*domain.Bookmark, error)

	// Set stores a bookmark in cache with the configured TTL.
	Set(ctx context.Context, b *domain.Bookmark) error

	// Delete removes a bookmark from cache.
	Delete(ctx context.Context, ownerID, id int64) error
}

// RedisBookmarkCache implements BookmarkCache using Redis as the backing store.
type RedisBookmarkCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisBookmarkCache creates a new Redis-backed bookmark cache.
func NewRedisBookmarkCache(client *redis.Client, ttl time.Duration, log *zap.Logger) BookmarkCache {
	return &RedisBookmarkCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

// cacheKey generates a Redis key for an owner's bookmark.
func (c *RedisBookmarkCache) cacheKey(ownerID, id int64) string {
	return fmt.Sprintf("bookmark:%d:%d", ownerID, id)
}

// Get retrieves a bookmark from Redis cache.
func (c *RedisBookmarkCache) Get(ctx context.Context, ownerID, id int64) (*domain.Bookmark, error) {
	key := c.cacheKey(ownerID, id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		// Cache miss - not an error
		c.log.Debug("cache miss", zap.Int64("bookmark_id", id), zap.Int64("user_id", ownerID))
		return nil, nil
	}
	if err != nil {
		c.log.Error("failed to get from cache", zap.Int64("bookmark_id", id), zap.Error(err))
		return nil, err
	}

	var b domain.Bookmark
	if err := json.Unmarshal(data, &b); err != nil {
		c.log.Error("failed to unmarshal cached bookmark", zap.Int64("bookmark_id", id), zap.Error(err))
		return nil, err
	}

	c.log.Debug("cache hit", zap.Int64("bookmark_id", id), zap.Int64("user_id", ownerID))
	return &b, nil
}

// Set stores a bookmark in Redis cache with TTL.
func (c *RedisBookmarkCache) Set(ctx context.Context, b *domain.Bookmark) error {
	if b == nil {
		return fmt.Errorf("cannot cache nil bookmark")
	}

	key := c.cacheKey(b.UserID, b.ID)

	data, err := json.Marshal(b)
	if err != nil {
		c.log.Error("failed to marshal bookmark for cache", zap.Int64("bookmark_id", b.ID), zap.Error(err))
		return err
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Error("failed to set cache", zap.Int64("bookmark_id", b.ID), zap.Error(err))
		return err
	}

	c.log.Debug("cached bookmark", zap.Int64("bookmark_id", b.ID), zap.Duration("ttl", c.ttl))
	return nil
}

// Delete removes a bookmark from Redis cache.
func (c *RedisBookmarkCache) Delete(ctx context.Context, ownerID, id int64) error {
	key := c.cacheKey(ownerID, id)

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.log.Error("failed to delete from cache", zap.Int64("bookmark_id", id), zap.Error(err))
		return err
	}

	c.log.Debug("deleted from cache", zap.Int64("bookmark_id", id))
	return nil
}
