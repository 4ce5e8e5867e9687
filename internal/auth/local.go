package auth

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenDuration is the validity period for locally minted tokens
const TokenDuration = 24 * time.Hour

// localIssuer identifies tokens minted by this server
const localIssuer = "pulse-local"

// Claims represents the JWT claims carried by locally minted tokens.
// The permissions claim holds the flattened permission codes, matching the
// shape the identity provider produces in production.
type Claims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// LocalAuthenticator mints and validates HS256 tokens for development and
// tests, standing in for the external identity provider.
type LocalAuthenticator struct {
	secret []byte
}

// NewLocalAuthenticator creates a local HS256 authenticator
func NewLocalAuthenticator(jwtSecret string) *LocalAuthenticator {
	return &LocalAuthenticator{secret: []byte(jwtSecret)}
}

// Mint issues a token for the given subject carrying the given permission
// codes. Claims issuance (expanding role grants into codes) happens before
// this call; the token is the only place venue scoping is reflected.
func (a *LocalAuthenticator) Mint(subject string, permissions []string) (string, error) {
	claims := Claims{
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    localIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// validateToken validates a token and returns its claims
func (a *LocalAuthenticator) validateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrUnauthorized
}

// Middleware returns a Gin middleware validating local bearer tokens
func (a *LocalAuthenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, hadHeader := bearerToken(c)
		if tokenString == "" {
			abortUnauthenticated(c, hadHeader)
			return
		}

		claims, err := a.validateToken(tokenString)
		if err != nil {
			slog.Debug("Token validation failed", "error", err)
			abortUnauthenticated(c, true)
			return
		}

		c.Set(PrincipalContextKey, &Principal{
			Subject:     claims.Subject,
			Permissions: claims.Permissions,
		})
		c.Next()
	}
}
