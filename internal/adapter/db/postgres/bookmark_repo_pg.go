package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"bookmark-service/internal/domain/bookmark"
	pkgerrors "bookmark-service/pkg/errors"
)

// BookmarkRepoPG implements the bookmark Repository interface using PostgreSQL and GORM.
// Every read and mutation is scoped by owner: a bookmark id belonging to a
// different user behaves exactly like a missing id.
type BookmarkRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewBookmarkRepoPG creates a new instance of BookmarkRepoPG.
func NewBookmarkRepoPG(db *gorm.DB, log *zap.Logger) *BookmarkRepoPG {
	return &BookmarkRepoPG{db: db, log: log}
}

// BookmarkSchema represents the database schema for the bookmarks table.
type BookmarkSchema struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"not null;index"` // Owning user
	Title       string `gorm:"not null"`
	Description string
	Link        string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the BookmarkSchema model.
func (BookmarkSchema) TableName() string {
	return "bookmarks"
}

// Create inserts a new bookmark owned by ownerID.
func (r *BookmarkRepoPG) Create(ctx context.Context, b *bookmark.Bookmark) (*bookmark.Bookmark, error) {
	if b == nil {
		return nil, errors.New("bookmark cannot be nil")
	}

	model := BookmarkSchema{
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Link:        b.Link,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create bookmark in db", zap.Error(err), zap.Int64("user_id", b.UserID))
		return nil, fmt.Errorf("failed to create bookmark: %w", err)
	}

	r.log.Info("bookmark created in db", zap.Int64("id", model.ID), zap.Int64("user_id", model.UserID))
	return model.toDomain(), nil
}

// GetByID retrieves the bookmark matching both id and owner.
func (r *BookmarkRepoPG) GetByID(ctx context.Context, ownerID, id int64) (*bookmark.Bookmark, error) {
	var model BookmarkSchema
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("bookmark not found", zap.Int64("id", id), zap.Int64("user_id", ownerID))
			return nil, pkgerrors.NewNotFoundError("bookmark", "")
		}
		r.log.Error("failed to get bookmark from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}

	return model.toDomain(), nil
}

// ListByOwner retrieves all bookmarks owned by ownerID in store-default order.
func (r *BookmarkRepoPG) ListByOwner(ctx context.Context, ownerID int64) ([]bookmark.Bookmark, error) {
	var models []BookmarkSchema
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Find(&models).Error; err != nil {
		r.log.Error("failed to list bookmarks from db", zap.Error(err), zap.Int64("user_id", ownerID))
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	bookmarks := make([]bookmark.Bookmark, len(models))
	for i, model := range models {
		bookmarks[i] = *model.toDomain()
	}
	return bookmarks, nil
}

// Update applies non-zero fields to the bookmark matching id and owner.
func (r *BookmarkRepoPG) Update(ctx context.Context, ownerID int64, b *bookmark.Bookmark) (*bookmark.Bookmark, error) {
	if b == nil {
		return nil, errors.New("bookmark cannot be nil")
	}

	updates := map[string]any{}
	if b.Title != "" {
		updates["title"] = b.Title
	}
	if b.Description != "" {
		updates["description"] = b.Description
	}
	if b.Link != "" {
		updates["link"] = b.Link
	}

	if len(updates) > 0 {
		res := r.db.WithContext(ctx).Model(&BookmarkSchema{}).
			Where("id = ? AND user_id = ?", b.ID, ownerID).
			Updates(updates)
		if res.Error != nil {
			r.log.Error("failed to update bookmark in db", zap.Error(res.Error), zap.Int64("id", b.ID))
			return nil, fmt.Errorf("failed to update bookmark: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			r.log.Warn("bookmark not found on update", zap.Int64("id", b.ID), zap.Int64("user_id", ownerID))
			return nil, pkgerrors.NewNotFoundError("bookmark", "")
		}
	}

	r.log.Info("bookmark updated in db", zap.Int64("id", b.ID))
	return r.GetByID(ctx, ownerID, b.ID)
}

// Delete removes the bookmark matching id and owner and returns the
// deleted record. Ownership is checked here exactly like on reads.
func (r *BookmarkRepoPG) Delete(ctx context.Context, ownerID, id int64) (*bookmark.Bookmark, error) {
	existing, err := r.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, ownerID).Delete(&BookmarkSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete bookmark in db", zap.Error(res.Error), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to delete bookmark: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("bookmark not found on delete", zap.Int64("id", id), zap.Int64("user_id", ownerID))
		return nil, pkgerrors.NewNotFoundError("bookmark", "")
	}

	r.log.Info("bookmark deleted in db", zap.Int64("id", id), zap.Int64("user_id", ownerID))
	return existing, nil
}

func (m *BookmarkSchema) toDomain() *bookmark.Bookmark {
	return &bookmark.Bookmark{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Link:        m.Link,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
