package auth

import (
	"time"
)

// SignUpRequest represents the request payload for creating an account.
type SignUpRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignUpResponse carries the created account without its password hash.
type SignUpResponse struct {
	ID        int64
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SignInRequest represents the request payload for exchanging credentials
// for an access token.
type SignInRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SignInResponse carries the signed access token.
type SignInResponse struct {
	AccessToken string
}
