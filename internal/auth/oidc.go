package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
)

// OIDCAuthenticator validates bearer tokens issued by the Auth0 tenant:
// signature against the tenant JWKS, issuer, and audience. The permissions
// claim is produced upstream by the identity provider when the token is
// minted; this authenticator only reads it.
type OIDCAuthenticator struct {
	verifier *oidc.IDTokenVerifier
	issuer   string
}

// NewOIDCAuthenticator discovers the tenant configuration and builds a
// verifier for the given audience.
func NewOIDCAuthenticator(ctx context.Context, domain, audience string) (*OIDCAuthenticator, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	issuer := fmt.Sprintf("https://%s/", domain)
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	verifier := provider.Verifier(&oidc.Config{
		ClientID: audience,
	})

	return &OIDCAuthenticator{verifier: verifier, issuer: issuer}, nil
}

// Middleware returns a Gin middleware validating Auth0 bearer tokens
func (a *OIDCAuthenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, hadHeader := bearerToken(c)
		if tokenString == "" {
			abortUnauthenticated(c, hadHeader)
			return
		}

		token, err := a.verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			slog.Debug("Bearer token verification failed", "issuer", a.issuer, "error", err)
			abortUnauthenticated(c, true)
			return
		}

		var claims struct {
			Permissions []string `json:"permissions"`
		}
		if err := token.Claims(&claims); err != nil {
			slog.Warn("Failed to parse token claims", "error", err)
			abortUnauthenticated(c, true)
			return
		}

		c.Set(PrincipalContextKey, &Principal{
			Subject:     token.Subject,
			Permissions: claims.Permissions,
		})
		c.Next()
	}
}
