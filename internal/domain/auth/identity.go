package auth

// Identity is the authenticated caller reconstructed from a verified
// bearer token. It is request-scoped and never persisted.
type Identity struct {
	UserID int64  // UserID is the subject claim of the token
	Email  string // Email is the email claim of the token
}
