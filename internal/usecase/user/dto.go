package user

import "time"

// Profile represents a user DTO for API responses.
// It deliberately has no password hash field: the persistence shape and
// the response shape are decoupled here.
type Profile struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateProfileRequest represents a partial profile edit.
// Zero-valued fields are left untouched.
type UpdateProfileRequest struct {
	Email     string `validate:"omitempty,email"`
	FirstName string `validate:"omitempty,max=100"`
	LastName  string `validate:"omitempty,max=100"`
}
