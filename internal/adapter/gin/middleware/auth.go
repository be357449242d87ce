package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authdomain "bookmark-service/internal/domain/auth"
	"bookmark-service/pkg/token"
)

// identityKey is the gin context key holding the authenticated identity.
const identityKey = "auth_identity"

// Auth returns a Gin middleware guarding protected routes. It extracts
// the bearer token from the Authorization header, verifies it, and
// attaches the resulting identity to the context. The middleware either
// rejects with 401 or admits; there is no partial admission.
func Auth(verifier *token.Manager, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			reject(c, "authorization header required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			reject(c, "invalid authorization header format")
			return
		}

		claims, err := verifier.Verify(parts[1])
		if err != nil {
			log.Warn("token verification failed", zap.Error(err))
			reject(c, "invalid or expired token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			log.Warn("token subject is not a user id", zap.String("subject", claims.Subject))
			reject(c, "invalid or expired token")
			return
		}

		SetIdentity(c, authdomain.Identity{
			UserID: userID,
			Email:  claims.Email,
		})
		c.Next()
	}
}

// reject terminates the request with a 401 response.
func reject(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "unauthenticated",
		"message": message,
	})
}

// SetIdentity attaches an identity to the request context. Auth calls it
// after a token verifies; tests call it to simulate an authenticated request.
func SetIdentity(c *gin.Context, identity authdomain.Identity) {
	c.Set(identityKey, identity)
}

// IdentityFromContext returns the identity attached by Auth.
// The second return value is false when the guard did not run.
func IdentityFromContext(c *gin.Context) (authdomain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return authdomain.Identity{}, false
	}
	identity, ok := v.(authdomain.Identity)
	return identity, ok
}
