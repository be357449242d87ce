package cached

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"bookmark-service/internal/adapter/cache"
	domain "bookmark-service/internal/domain/bookmark"
	"bookmark-service/internal/usecase/bookmark"
)

// CachedBookmarkRepository implements bookmark.Repository with caching support.
// It wraps a persistent repository (DB) and a cache implementation.
type CachedBookmarkRepository struct {
	dbRepo bookmark.Repository
	cache  cache.BookmarkCache
	log    *zap.Logger
	group  singleflight.Group
}

// NewCachedBookmarkRepository creates a new instance of CachedBookmarkRepository.
func NewCachedBookmarkRepository(dbRepo bookmark.Repository, cache cache.BookmarkCache, log *zap.Logger) bookmark.Repository {
	return &CachedBookmarkRepository{
		dbRepo: dbRepo,
		cache:  cache,
		log:    log,
	}
}

// Create delegates to the DB repository.
func (r *CachedBookmarkRepository) Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	return r.dbRepo.Create(ctx, b)
}

// GetByID retrieves a bookmark using the cache-aside pattern with a
// single-flight guard against stampedes on a cold key.
func (r *CachedBookmarkRepository) GetByID(ctx context.Context, ownerID, id int64) (*domain.Bookmark, error) {
	if r.cache != nil {
		cachedBookmark, err := r.cache.Get(ctx, ownerID, id)
		if err != nil {
			r.log.Warn("cache get error, falling back to database", zap.Int64("id", id), zap.Error(err))
		} else if cachedBookmark != nil {
			r.log.Debug("bookmark retrieved from cache", zap.Int64("id", id))
			return cachedBookmark, nil
		}
	}

	key := fmt.Sprintf("bookmark:%d:%d", ownerID, id)
	result, err, _ := r.group.Do(key, func() (any, error) {
		// Double-check cache in case another request populated it while we were waiting
		if r.cache != nil {
			cachedBookmark, err := r.cache.Get(ctx, ownerID, id)
			if err == nil && cachedBookmark != nil {
				r.log.Debug("bookmark retrieved from cache after single-flight wait", zap.Int64("id", id))
				return cachedBookmark, nil
			}
		}

		b, err := r.dbRepo.GetByID(ctx, ownerID, id)
		if err != nil {
			return nil, err
		}

		if r.cache != nil {
			if err := r.cache.Set(ctx, b); err != nil {
				r.log.Warn("failed to cache bookmark", zap.Int64("id", id), zap.Error(err))
			}
		}

		return b, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*domain.Bookmark), nil
}

// ListByOwner delegates to the DB repository.
func (r *CachedBookmarkRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Bookmark, error) {
	return r.dbRepo.ListByOwner(ctx, ownerID)
}

// Update updates the bookmark in DB and invalidates the cache.
func (r *CachedBookmarkRepository) Update(ctx context.Context, ownerID int64, b *domain.Bookmark) (*domain.Bookmark, error) {
	updated, err := r.dbRepo.Update(ctx, ownerID, b)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, ownerID, b.ID); err != nil {
			r.log.Warn("failed to invalidate cache after update", zap.Int64("id", b.ID), zap.Error(err))
		}
	}

	return updated, nil
}

// Delete deletes the bookmark from DB and invalidates the cache.
func (r *CachedBookmarkRepository) Delete(ctx context.Context, ownerID, id int64) (*domain.Bookmark, error) {
	deleted, err := r.dbRepo.Delete(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.Delete(ctx, ownerID, id); err != nil {
			r.log.Warn("failed to invalidate cache after delete", zap.Int64("id", id), zap.Error(err))
		}
	}

	return deleted, nil
}
