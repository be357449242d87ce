package user

import "time"

// User represents a registered account.
// PasswordHash is persistence-only state; response shaping lives in the
// handler layer and never includes it.
type User struct {
	ID           int64     // ID is the unique identifier for the user
	Email        string    // Email is the unique email address of the user
	PasswordHash string    // PasswordHash is the bcrypt hash of the user's password
	FirstName    string    // FirstName is optional profile data
	LastName     string    // LastName is optional profile data
	CreatedAt    time.Time // CreatedAt is set by the store on insert
	UpdatedAt    time.Time // UpdatedAt is maintained by the store on every write
}
