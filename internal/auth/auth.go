// Package auth authenticates bearer tokens and materializes the principal's
// permission claims before authorization runs. Two authenticators exist: an
// OIDC verifier for Auth0-issued tokens and a local HS256 issuer/verifier for
// development and tests. Both produce the same Principal shape.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PrincipalContextKey is the key used to store the principal in the Gin context
const PrincipalContextKey = "principal"

var (
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrUnauthorized       = errors.New("auth: unauthorized")
)

// Principal describes the authenticated actor as seen by authorization:
// the token subject and the flattened permission codes it carries.
type Principal struct {
	Subject     string   `json:"subject"`
	Permissions []string `json:"permissions"`
}

// Authenticator validates bearer tokens and attaches the principal to the
// request context.
type Authenticator interface {
	// Middleware returns a Gin middleware that rejects unauthenticated
	// requests with 401 and stores the Principal in the context.
	Middleware() gin.HandlerFunc
}

// PrincipalFromContext extracts the authenticated principal set by an
// authenticator middleware.
func PrincipalFromContext(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(PrincipalContextKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}

// bearerToken extracts the token from the Authorization header.
// The bool reports whether an Authorization header was present at all,
// which decides between the "Requires authentication" and "Bad credentials"
// challenge messages.
func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", true
	}
	return strings.TrimSpace(parts[1]), true
}

func abortUnauthenticated(c *gin.Context, hadHeader bool) {
	message := "Requires authentication"
	if hadHeader {
		message = "Bad credentials"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
}
