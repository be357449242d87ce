package bookmark

import "time"

// Bookmark represents a saved link owned by exactly one user.
type Bookmark struct {
	ID          int64     // ID is the unique identifier for the bookmark
	UserID      int64     // UserID references the owning user
	Title       string    // Title is a required display name
	Description string    // Description is optional free text
	Link        string    // Link is the bookmarked URL
	CreatedAt   time.Time // CreatedAt is set by the store on insert
	UpdatedAt   time.Time // UpdatedAt is maintained by the store on every write
}
