package bookmark

import (
	"context"

	domain "bookmark-service/internal/domain/bookmark"
)

// Repository defines the interface for bookmark data access operations.
// Every operation is scoped by owner; an id owned by someone else is
// indistinguishable from a missing id.
type Repository interface {
	Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	GetByID(ctx context.Context, ownerID, id int64) (*domain.Bookmark, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Bookmark, error)
	Update(ctx context.Context, ownerID int64, b *domain.Bookmark) (*domain.Bookmark, error)
	Delete(ctx context.Context, ownerID, id int64) (*domain.Bookmark, error)
}

// Usecase defines the interface for bookmark business logic operations.
type Usecase interface {
	List(ctx context.Context, ownerID int64) ([]Bookmark, error)
	GetByID(ctx context.Context, ownerID, id int64) (*Bookmark, error)
	Create(ctx context.Context, ownerID int64, in CreateBookmarkRequest) (*Bookmark, error)
	Update(ctx context.Context, ownerID, id int64, in UpdateBookmarkRequest) (*Bookmark, error)
	Delete(ctx context.Context, ownerID, id int64) (*Bookmark, error)
}
