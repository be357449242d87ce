package auth

import "context"

// Usecase defines the interface for authentication business logic.
type Usecase interface {
	SignUp(ctx context.Context, in SignUpRequest) (*SignUpResponse, error)
	SignIn(ctx context.Context, in SignInRequest) (*SignInResponse, error)
}

// TokenIssuer issues signed access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

// PasswordHasher hashes passwords on signup and verifies them on signin.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
