package security

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	pkgerrors "bookmark-service/pkg/errors"
)

// PasswordHasher hashes and verifies user passwords with bcrypt.
// The cost is fixed at construction time so every hash in the store
// was produced with a known work factor.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher with the given bcrypt cost.
// Costs outside the bcrypt-supported range fall back to the default cost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt hash of the given plaintext password.
// Empty and over-long passwords are caller input problems and come back
// as validation errors, not internal failures.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", pkgerrors.NewValidationError("password", "password cannot be empty")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", pkgerrors.NewValidationError("password", "password must be at most 72 bytes")
		}
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext password matches the stored hash.
func (h *PasswordHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
