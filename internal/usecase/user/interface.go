package user

import (
	"context"

	domain "bookmark-service/internal/domain/user"
)

// Repository defines the interface for user data access operations.
// It abstracts the data layer so different stores can be used interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)        // Create a new user
	GetByID(ctx context.Context, id int64) (*domain.User, error)             // Retrieve user by ID
	GetByEmail(ctx context.Context, email string) (*domain.User, error)      // Retrieve user by email; nil when absent
	Update(ctx context.Context, u *domain.User) (*domain.User, error)        // Apply non-zero fields to an existing user
}

// Usecase defines the interface for user profile business logic.
type Usecase interface {
	GetMe(ctx context.Context, userID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int64, in UpdateProfileRequest) (*Profile, error)
}
