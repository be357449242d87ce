package bookmark

import "time"

// CreateBookmarkRequest represents the request payload for creating a bookmark.
type CreateBookmarkRequest struct {
	Title       string `validate:"required,max=200"`
	Description string `validate:"omitempty,max=1000"`
	Link        string `validate:"required"`
}

// UpdateBookmarkRequest represents a partial bookmark edit.
// Zero-valued fields are left untouched.
type UpdateBookmarkRequest struct {
	Title       string `validate:"omitempty,max=200"`
	Description string `validate:"omitempty,max=1000"`
	Link        string `validate:"omitempty"`
}

// Bookmark represents a bookmark DTO for API responses.
type Bookmark struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Link        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
