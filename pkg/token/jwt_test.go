package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute)

	signed, err := m.Issue(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestManager_VerifyExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Issue(42, "user@example.com")
	require.NoError(t, err)

	claims, err := m.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestManager_VerifyWrongSecret(t *testing.T) {
	issuer := NewManager("issuer-secret", 15*time.Minute)
	verifier := NewManager("another-secret", 15*time.Minute)

	signed, err := issuer.Issue(42, "user@example.com")
	require.NoError(t, err)

	claims, err := verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestManager_VerifyMalformedToken(t *testing.T) {
	m := NewManager("test-secret", 15*time.Minute)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "garbage"},
		{name: "truncated jwt", token: "eyJhbGciOiJIUzI1NiJ9.e30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := m.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestClaims_UserID_NonNumericSubject(t *testing.T) {
	claims := &Claims{}
	claims.Subject = "not-a-number"

	id, err := claims.UserID()
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Zero(t, id)
}
